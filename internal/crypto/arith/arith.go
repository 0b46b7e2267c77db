package arith

import (
	"errors"
	"math/big"
)

// ErrNoInverse is returned when the requested modular inverse does not exist,
// i.e. the value is congruent to zero (or otherwise shares a factor with the
// modulus).
var ErrNoInverse = errors.New("arith: value has no inverse under the modulus")

// ModInverse returns the unique b in [0, p) such that a*b = 1 mod p, for a
// prime modulus p. The input a may be negative or larger than p; it is reduced
// modulo p first.
//
// big.Int.ModInverse signals a missing inverse by returning nil rather than an
// incorrect value, so the failure is surfaced explicitly here and never
// propagates silently into later arithmetic.
func ModInverse(a, p *big.Int) (*big.Int, error) {
	inv := new(big.Int).ModInverse(a, p)
	if inv == nil {
		return nil, ErrNoInverse
	}
	return inv, nil
}
