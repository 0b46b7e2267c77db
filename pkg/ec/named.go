package ec

import (
	"crypto/elliptic"
	"math/big"
	"sync"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Named curves ready for signing. Parameters come from well-reviewed
// implementations (decred for secp256k1, the standard library for the NIST
// curves) rather than being retyped here. The constructors are lazy
// singletons; the returned curves are immutable and shared.

var (
	secp256k1Once  sync.Once
	secp256k1Curve *Curve

	p256Once  sync.Once
	p256Curve *Curve

	p384Once  sync.Once
	p384Curve *Curve
)

// Secp256k1 returns the secp256k1 curve (y^2 = x^3 + 7) used by Bitcoin and
// Ethereum.
func Secp256k1() *Curve {
	secp256k1Once.Do(func() {
		params := secp256k1.S256().Params()
		secp256k1Curve = mustSigningCurve(new(big.Int), params.B, params.P, params.N, params.Gx, params.Gy)
	})
	return secp256k1Curve
}

// P256 returns the NIST P-256 curve.
func P256() *Curve {
	p256Once.Do(func() {
		p256Curve = fromNIST(elliptic.P256().Params())
	})
	return p256Curve
}

// P384 returns the NIST P-384 curve.
func P384() *Curve {
	p384Once.Do(func() {
		p384Curve = fromNIST(elliptic.P384().Params())
	})
	return p384Curve
}

// fromNIST builds a Curve from standard-library parameters. The NIST prime
// curves all fix a = -3 mod p, which elliptic.CurveParams leaves implicit.
func fromNIST(params *elliptic.CurveParams) *Curve {
	a := new(big.Int).Sub(params.P, big.NewInt(3))
	return mustSigningCurve(a, params.B, params.P, params.N, params.Gx, params.Gy)
}

// mustSigningCurve panics on invalid parameters. Only used for the named
// curves above, whose parameters are fixed.
func mustSigningCurve(a, b, p, q, gx, gy *big.Int) *Curve {
	c, err := NewSigningCurve(a, b, p, q, gx, gy)
	if err != nil {
		panic(err)
	}
	return c
}
