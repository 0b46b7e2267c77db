// Package random provides uniformly distributed integers from a
// cryptographically secure source. It backs both private-key generation and
// per-signature nonces, so draws must be unpredictable and independent; a
// general-purpose PRNG is not acceptable here.
package random

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"
)

// ErrInvalidBound is returned when the requested bound is nil or not positive.
var ErrInvalidBound = errors.New("random: bound must be a positive integer")

// Source draws cryptographically secure random integers. Implementations must
// be safe for concurrent use; multiple signing operations may draw nonces in
// parallel.
type Source interface {
	// Below returns a uniform random integer in [0, bound).
	Below(bound *big.Int) (*big.Int, error)
}

type readerSource struct {
	r io.Reader
}

// New returns a Source backed by crypto/rand.Reader.
func New() Source {
	return &readerSource{r: rand.Reader}
}

// NewFromReader returns a Source drawing from the given reader. The reader
// must be cryptographically secure for any production use; deterministic
// readers belong in tests only.
func NewFromReader(r io.Reader) Source {
	return &readerSource{r: r}
}

func (s *readerSource) Below(bound *big.Int) (*big.Int, error) {
	if bound == nil || bound.Sign() <= 0 {
		return nil, ErrInvalidBound
	}
	return rand.Int(s.r, bound)
}

// Below draws from the default crypto/rand source.
func Below(bound *big.Int) (*big.Int, error) {
	return New().Below(bound)
}
