// Package ecdsa implements the elliptic curve digital signature algorithm
// over a caller-supplied short Weierstrass curve.
//
// A signature is a pair (r, s) derived from a message, a private scalar and a
// single-use random nonce. The public key d*G, together with (r, s) and the
// message, is all that is needed to verify the signature without knowledge of
// the private key d.
package ecdsa

import (
	"crypto/sha256"
	"fmt"
	"math/big"

	"github.com/smallyu/go-weierstrass-ecdsa/internal/crypto/arith"
	"github.com/smallyu/go-weierstrass-ecdsa/pkg/ec"
	"github.com/smallyu/go-weierstrass-ecdsa/pkg/random"
)

// DefaultTries is the default bound on nonce-regeneration attempts in Sign.
const DefaultTries = 10

// Signature is an ECDSA signature pair.
type Signature struct {
	R *big.Int
	S *big.Int
}

// ECDSA signs and verifies messages over a fixed curve. It is safe for
// concurrent use; every Sign call draws its own fresh nonce.
type ECDSA struct {
	curve *ec.Curve
	tries int
	rand  random.Source
}

// Option configures an ECDSA instance.
type Option func(*ECDSA)

// WithTries sets the maximum number of nonce-regeneration attempts before
// Sign gives up.
func WithTries(n int) Option {
	return func(e *ECDSA) { e.tries = n }
}

// WithRandomSource replaces the nonce and key source. Production code should
// keep the default crypto/rand-backed source.
func WithRandomSource(src random.Source) Option {
	return func(e *ECDSA) { e.rand = src }
}

// New creates an ECDSA instance over the given curve. The curve must carry a
// subgroup order and generator.
func New(curve *ec.Curve, opts ...Option) (*ECDSA, error) {
	if curve == nil || curve.Q == nil || curve.Generator == nil {
		return nil, ErrIncompleteCurve
	}
	e := &ECDSA{
		curve: curve,
		tries: DefaultTries,
		rand:  random.New(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// GenerateKey draws a private key d uniformly from (0, q) and derives the
// matching public key d*G.
func (e *ECDSA) GenerateKey() (*big.Int, *ec.Point, error) {
	d, err := e.randScalar()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate private key: %w", err)
	}
	pub, err := ec.ScalarMult(d, e.curve.Generator)
	if err != nil {
		return nil, nil, err
	}
	// d in (0, q) with q the generator's order, so d*G is never Infinity.
	return d, pub.(*ec.Point), nil
}

// Sign signs the message with the private key, returning the pair (r, s).
//
// Each attempt draws a fresh nonce k in (0, q), computes R = k*G and
// s = (e + d*r) * k^-1 mod q with r = R.x and e the SHA-256 digest of the
// message read as a big-endian integer. The rare r = 0 or s = 0 outcome would
// degenerate the signature and forces a new nonce; after the configured number
// of attempts Sign fails with ErrSignatureGenerationFailed. Nonces are never
// reused and never escape a failed attempt.
func (e *ECDSA) Sign(message []byte, privateKey *big.Int) (*Signature, error) {
	order := e.curve.Q
	z := hashToInt(message)

	for i := 0; i < e.tries; i++ {
		k, err := e.randScalar()
		if err != nil {
			return nil, fmt.Errorf("failed to generate nonce: %w", err)
		}

		// R = k * G
		R, err := ec.ScalarMult(k, e.curve.Generator)
		if err != nil {
			return nil, err
		}
		rp, ok := R.(*ec.Point)
		if !ok {
			// Unreachable for k in (0, q); a fresh nonce costs nothing.
			continue
		}
		r := rp.X
		if r.Sign() == 0 {
			continue
		}

		kInv, err := arith.ModInverse(k, order)
		if err != nil {
			return nil, err
		}

		// s = (z + d*r) * k^-1 mod q
		s := new(big.Int).Mul(privateKey, r)
		s.Add(s, z)
		s.Mul(s, kInv)
		s.Mod(s, order)

		if s.Sign() != 0 {
			return &Signature{R: new(big.Int).Set(r), S: s}, nil
		}
	}
	return nil, fmt.Errorf("%w: %d tries", ErrSignatureGenerationFailed, e.tries)
}

// Verify reports whether (r, s) is a valid signature on the message under the
// given public key. It is a pure predicate: no retries, no side effects.
//
// A malformed public key is an error, not a false result: Infinity fails with
// ErrPublicKeyIsInfinity and a point off the curve (or bound to a different
// curve) fails with ErrPublicKeyNotOnCurve. A signature with s outside [1, q)
// or r < 1 is rejected as invalid; r >= q is accepted since signing emits
// r = R.x unreduced and the final comparison is taken mod q.
func (e *ECDSA) Verify(sig *Signature, message []byte, publicKey ec.Element) (bool, error) {
	pub, ok := publicKey.(*ec.Point)
	if !ok {
		return false, ErrPublicKeyIsInfinity
	}
	if !e.curve.Equal(pub.Curve()) || !e.curve.IsOnCurve(pub.X, pub.Y) {
		return false, ErrPublicKeyNotOnCurve
	}

	order := e.curve.Q
	if sig == nil || sig.R == nil || sig.S == nil {
		return false, nil
	}
	if sig.R.Sign() <= 0 {
		return false, nil
	}
	if sig.S.Sign() <= 0 || sig.S.Cmp(order) >= 0 {
		return false, nil
	}

	// w = s^-1 mod q; s was range-checked, so the inverse exists.
	w, err := arith.ModInverse(sig.S, order)
	if err != nil {
		return false, err
	}

	z := hashToInt(message)

	// u1 = w*z, u2 = w*r
	u1 := new(big.Int).Mul(w, z)
	u1.Mod(u1, order)
	u2 := new(big.Int).Mul(w, sig.R)
	u2.Mod(u2, order)

	// P = u1*G + u2*pub
	p1, err := ec.ScalarMult(u1, e.curve.Generator)
	if err != nil {
		return false, err
	}
	p2, err := ec.ScalarMult(u2, pub)
	if err != nil {
		return false, err
	}
	sum, err := ec.Add(p1, p2)
	if err != nil {
		return false, err
	}

	// Infinity has no x-coordinate; it can never match r.
	pt, ok := sum.(*ec.Point)
	if !ok {
		return false, nil
	}

	// Valid iff P.x = r mod q.
	x := new(big.Int).Mod(pt.X, order)
	r := new(big.Int).Mod(sig.R, order)
	return x.Cmp(r) == 0, nil
}

// randScalar draws a uniform scalar in (0, q).
func (e *ECDSA) randScalar() (*big.Int, error) {
	// Below(q-1) gives [0, q-1); shifting by one gives (0, q).
	bound := new(big.Int).Sub(e.curve.Q, big.NewInt(1))
	k, err := e.rand.Below(bound)
	if err != nil {
		return nil, err
	}
	return k.Add(k, big.NewInt(1)), nil
}

// hashToInt interprets the SHA-256 digest of the message as a big-endian
// integer. The digest is not reduced here; Sign and Verify reduce mod q where
// the algorithm calls for it.
func hashToInt(message []byte) *big.Int {
	digest := sha256.Sum256(message)
	return new(big.Int).SetBytes(digest[:])
}
