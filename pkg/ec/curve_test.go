package ec

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

// toyCurve returns the curve y^2 = x^3 + 2x + 2 mod 17, whose group is cyclic
// of order 19 with generator (5, 1).
func toyCurve(t *testing.T) *Curve {
	t.Helper()
	c, err := NewSigningCurve(
		big.NewInt(2), big.NewInt(2), big.NewInt(17),
		big.NewInt(19), big.NewInt(5), big.NewInt(1),
	)
	if err != nil {
		t.Fatalf("failed to construct toy curve: %v", err)
	}
	return c
}

func TestNewCurve(t *testing.T) {
	c, err := NewCurve(big.NewInt(2), big.NewInt(2), big.NewInt(17))
	assert.NoError(t, err)
	assert.NotNil(t, c)
	assert.Nil(t, c.Q)
	assert.Nil(t, c.Generator)
}

func TestNewCurveDegenerate(t *testing.T) {
	// 4*0 + 27*0 = 0
	_, err := NewCurve(big.NewInt(0), big.NewInt(0), big.NewInt(17))
	assert.ErrorIs(t, err, ErrInvalidCurveParameters)

	// 4*(-3)^3 + 27*2^2 = -108 + 108 = 0
	_, err = NewCurve(big.NewInt(-3), big.NewInt(2), big.NewInt(17))
	assert.ErrorIs(t, err, ErrInvalidCurveParameters)
}

func TestNewSigningCurveGeneratorOffCurve(t *testing.T) {
	_, err := NewSigningCurve(
		big.NewInt(2), big.NewInt(2), big.NewInt(17),
		big.NewInt(19), big.NewInt(5), big.NewInt(2),
	)
	assert.ErrorIs(t, err, ErrGeneratorNotOnCurve)
}

func TestIsOnCurve(t *testing.T) {
	c := toyCurve(t)

	onCurve := [][2]int64{
		{5, 1}, {6, 3}, {10, 6}, {3, 1}, {9, 16}, {16, 13}, {0, 6},
		{13, 7}, {7, 6}, {7, 11}, {13, 10}, {0, 11}, {16, 4}, {9, 1},
		{3, 16}, {10, 11}, {6, 14}, {5, 16},
	}
	for _, p := range onCurve {
		assert.True(t, c.IsOnCurve(big.NewInt(p[0]), big.NewInt(p[1])),
			"(%d, %d) should be on the curve", p[0], p[1])
	}

	offCurve := [][2]int64{
		{5, 2}, {0, 0}, {1, 1}, {6, 4}, {16, 16},
	}
	for _, p := range offCurve {
		assert.False(t, c.IsOnCurve(big.NewInt(p[0]), big.NewInt(p[1])),
			"(%d, %d) should not be on the curve", p[0], p[1])
	}
}

func TestCurveEqual(t *testing.T) {
	c1 := toyCurve(t)
	c2 := toyCurve(t)
	assert.True(t, c1.Equal(c2))

	// The generator is not part of curve identity. (6, 3) also generates
	// the full group since its order is prime.
	c3, err := NewSigningCurve(
		big.NewInt(2), big.NewInt(2), big.NewInt(17),
		big.NewInt(19), big.NewInt(6), big.NewInt(3),
	)
	assert.NoError(t, err)
	assert.True(t, c1.Equal(c3))

	// A missing subgroup order makes the curves distinct.
	c4, err := NewCurve(big.NewInt(2), big.NewInt(2), big.NewInt(17))
	assert.NoError(t, err)
	assert.False(t, c1.Equal(c4))

	// Different coefficients.
	c5, err := NewCurve(big.NewInt(2), big.NewInt(3), big.NewInt(17))
	assert.NoError(t, err)
	assert.False(t, c4.Equal(c5))
}
