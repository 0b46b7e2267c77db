package ec

import (
	"fmt"
	"math/big"
)

// Curve describes a short Weierstrass curve over Z_p, p > 3: the set of
// points (x, y) satisfying
//
//	y^2 = x^3 + a*x + b mod p
//
// together with the point at infinity. The discriminant 4a^3 + 27b^2 must be
// nonzero mod p, which rules out repeated roots and self-intersections.
//
// A Curve is immutable after construction and may be shared freely between
// goroutines. Many points reference a single Curve.
type Curve struct {
	// A and B are the curve coefficients, P the prime modulus.
	A, B, P *big.Int

	// Q is the order of the subgroup generated by Generator. Both are nil
	// for curves used only for group-law arithmetic; signing requires them.
	Q         *big.Int
	Generator *Point
}

// NewCurve constructs a curve from its coefficients and prime modulus. It
// returns ErrInvalidCurveParameters if the discriminant vanishes mod p. The
// resulting curve has no subgroup order or generator and cannot be used for
// signing.
func NewCurve(a, b, p *big.Int) (*Curve, error) {
	c := &Curve{
		A: new(big.Int).Set(a),
		B: new(big.Int).Set(b),
		P: new(big.Int).Set(p),
	}
	if err := c.checkParameters(); err != nil {
		return nil, err
	}
	return c, nil
}

// NewSigningCurve constructs a curve carrying the subgroup order q and the
// generator (gx, gy), as required by ECDSA. The generator must lie on the
// curve.
func NewSigningCurve(a, b, p, q, gx, gy *big.Int) (*Curve, error) {
	c, err := NewCurve(a, b, p)
	if err != nil {
		return nil, err
	}
	c.Q = new(big.Int).Set(q)

	g, err := NewPoint(gx, gy, c)
	if err != nil {
		return nil, fmt.Errorf("%w: (%s, %s)", ErrGeneratorNotOnCurve, gx, gy)
	}
	c.Generator = g
	return c, nil
}

// checkParameters verifies 4a^3 + 27b^2 != 0 mod p.
func (c *Curve) checkParameters() error {
	// 4a^3
	d := new(big.Int).Exp(c.A, three, nil)
	d.Mul(d, four)

	// + 27b^2
	b2 := new(big.Int).Mul(c.B, c.B)
	b2.Mul(b2, twentySeven)

	d.Add(d, b2)
	d.Mod(d, c.P)
	if d.Sign() == 0 {
		return fmt.Errorf("%w: a=%s b=%s p=%s", ErrInvalidCurveParameters, c.A, c.B, c.P)
	}
	return nil
}

// IsOnCurve reports whether (x, y) satisfies y^2 - (x^3 + a*x + b) = 0 mod p.
func (c *Curve) IsOnCurve(x, y *big.Int) bool {
	// y^2
	lhs := new(big.Int).Mul(y, y)

	// x^3 + a*x + b
	rhs := new(big.Int).Exp(x, three, nil)
	ax := new(big.Int).Mul(c.A, x)
	rhs.Add(rhs, ax)
	rhs.Add(rhs, c.B)

	lhs.Sub(lhs, rhs)
	lhs.Mod(lhs, c.P)
	return lhs.Sign() == 0
}

// Equal reports whether two curves have the same a, b, p and q. The generator
// is deliberately not part of curve identity: two curves differing only in the
// chosen base point describe the same group.
func (c *Curve) Equal(other *Curve) bool {
	if c == nil || other == nil {
		return c == other
	}
	if c.A.Cmp(other.A) != 0 || c.B.Cmp(other.B) != 0 || c.P.Cmp(other.P) != 0 {
		return false
	}
	if (c.Q == nil) != (other.Q == nil) {
		return false
	}
	return c.Q == nil || c.Q.Cmp(other.Q) == 0
}

func (c *Curve) String() string {
	return fmt.Sprintf("Curve(a=%s, b=%s, p=%s)", c.A, c.B, c.P)
}

var (
	three       = big.NewInt(3)
	four        = big.NewInt(4)
	twentySeven = big.NewInt(27)
)
