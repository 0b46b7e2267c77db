package ec

import "errors"

// Errors returned by curve and point construction and the group operations.
var (
	ErrInvalidCurveParameters = errors.New("ec: curve discriminant is zero mod p")
	ErrPointNotOnCurve        = errors.New("ec: point does not satisfy the curve equation")
	ErrCurveMismatch          = errors.New("ec: points lie on different curves")
	ErrInvalidScalar          = errors.New("ec: scalar must be a non-negative integer")
	ErrGeneratorNotOnCurve    = errors.New("ec: generator is not on the curve")
)
