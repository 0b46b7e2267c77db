package ec

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-weierstrass-ecdsa/internal/crypto/arith"
)

// Element is a member of the elliptic-curve group: either an affine *Point or
// Infinity. Modelling the identity as a separate variant, rather than a
// sentinel coordinate pair, forces every group operation to handle both cases
// explicitly.
type Element interface {
	// Equal reports whether two group elements are the same. Affine points
	// compare by (x, y) and curve value; Infinity is equal only to itself.
	Equal(other Element) bool

	element()
}

// Point is an affine point on a Weierstrass curve. Points are immutable:
// the group operations return new points and never modify their operands.
type Point struct {
	X, Y *big.Int

	curve *Curve
}

// NewPoint constructs the point (x, y) on the given curve, returning
// ErrPointNotOnCurve if the coordinates do not satisfy the curve equation.
// Coordinates are stored reduced mod p, so equality and the inverse check in
// Add see one canonical representation per point.
func NewPoint(x, y *big.Int, curve *Curve) (*Point, error) {
	if !curve.IsOnCurve(x, y) {
		return nil, fmt.Errorf("%w: (%s, %s) on %s", ErrPointNotOnCurve, x, y, curve)
	}
	return &Point{
		X:     new(big.Int).Mod(x, curve.P),
		Y:     new(big.Int).Mod(y, curve.P),
		curve: curve,
	}, nil
}

// Curve returns the curve this point lies on.
func (p *Point) Curve() *Curve {
	return p.curve
}

func (p *Point) Equal(other Element) bool {
	q, ok := other.(*Point)
	if !ok {
		return false
	}
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0 && p.curve.Equal(q.curve)
}

func (p *Point) element() {}

func (p *Point) String() string {
	return fmt.Sprintf("Point(x=%s, y=%s)", p.X, p.Y)
}

// Infinity is the point at infinity, the additive identity of the group:
//
//	Inf + P = P + Inf = P
//
// for every element P. It lies on no particular curve and is equal only to
// itself.
var Infinity Element = infinity{}

type infinity struct{}

func (infinity) Equal(other Element) bool {
	_, ok := other.(infinity)
	return ok
}

func (infinity) element() {}

func (infinity) String() string { return "Infinity" }

// Add computes p + q under the group law. Adding Infinity returns the other
// operand; adding a point to its additive inverse (same x, opposite y) yields
// Infinity. Operands on unequal curves fail with ErrCurveMismatch.
func Add(p, q Element) (Element, error) {
	pp, ok := p.(*Point)
	if !ok {
		return q, nil
	}
	qq, ok := q.(*Point)
	if !ok {
		return p, nil
	}

	if !pp.curve.Equal(qq.curve) {
		return nil, fmt.Errorf("%w: %s != %s", ErrCurveMismatch, pp.curve, qq.curve)
	}

	// Vertical line through the two points: p = -q, so p + q = Inf.
	if pp.X.Cmp(qq.X) == 0 && pp.Y.Cmp(qq.Y) != 0 {
		return Infinity, nil
	}

	m, err := slope(pp, qq)
	if err != nil {
		return nil, err
	}

	// x_r = m^2 - x_p - x_q, the third root of the cubic where the line
	// meets the curve.
	xr := new(big.Int).Mul(m, m)
	xr.Sub(xr, pp.X)
	xr.Sub(xr, qq.X)
	xr.Mod(xr, pp.curve.P)

	// y_r = m*(x_p - x_r) - y_p
	yr := new(big.Int).Sub(pp.X, xr)
	yr.Mul(yr, m)
	yr.Sub(yr, pp.Y)
	yr.Mod(yr, pp.curve.P)

	return NewPoint(xr, yr, pp.curve)
}

// Double computes p + p.
func Double(p Element) (Element, error) {
	return Add(p, p)
}

// slope returns the slope of the line through p and q, or of the tangent to
// the curve when p == q.
func slope(p, q *Point) (*big.Int, error) {
	prime := p.curve.P

	if p.Equal(q) {
		// Tangent: m = (3x^2 + a) / 2y. A point with y = 0 has a
		// vertical tangent and no finite slope; the inverse failure
		// propagates to the caller.
		num := new(big.Int).Mul(p.X, p.X)
		num.Mul(num, three)
		num.Add(num, p.curve.A)

		den, err := arith.ModInverse(new(big.Int).Lsh(p.Y, 1), prime)
		if err != nil {
			return nil, err
		}
		num.Mul(num, den)
		return num.Mod(num, prime), nil
	}

	// Chord: m = (y_p - y_q) / (x_p - x_q).
	num := new(big.Int).Sub(p.Y, q.Y)
	den, err := arith.ModInverse(new(big.Int).Sub(p.X, q.X), prime)
	if err != nil {
		return nil, err
	}
	num.Mul(num, den)
	return num.Mod(num, prime), nil
}

// ScalarMult computes k * p by double-and-add over the bits of k, least
// significant first. A zero scalar yields Infinity. Negative (or nil) scalars
// fail with ErrInvalidScalar.
func ScalarMult(k *big.Int, p Element) (Element, error) {
	if k == nil || k.Sign() < 0 {
		return nil, ErrInvalidScalar
	}

	result := Infinity
	addend := p

	for i := 0; i < k.BitLen(); i++ {
		var err error
		if k.Bit(i) == 1 {
			result, err = Add(result, addend)
			if err != nil {
				return nil, err
			}
		}
		addend, err = Add(addend, addend)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}
