package ecdsa

import "errors"

var (
	// ErrIncompleteCurve is returned by New when the curve carries no
	// subgroup order or no generator; both are required for signing.
	ErrIncompleteCurve = errors.New("ecdsa: curve must have a subgroup order and generator")

	// ErrPublicKeyIsInfinity and ErrPublicKeyNotOnCurve are verification
	// precondition failures. They are surfaced as errors, distinct from a
	// false verification result, so callers cannot mistake a malformed key
	// for a rejected signature.
	ErrPublicKeyIsInfinity = errors.New("ecdsa: public key is the point at infinity")
	ErrPublicKeyNotOnCurve = errors.New("ecdsa: public key is not on the curve")

	// ErrSignatureGenerationFailed means every nonce attempt produced
	// s = 0 and the retry budget ran out. With an honest random source
	// this is astronomically unlikely; the whole operation may be retried.
	ErrSignatureGenerationFailed = errors.New("ecdsa: could not generate a signature within the retry budget")
)
