package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRationalReducesToLowestTerms(t *testing.T) {
	r := NewRational(6, 8)
	assert.True(t, r.Equal(NewRational(3, 4)))
}

func TestNewRationalZeroNumerator(t *testing.T) {
	r := NewRational(0, 5)
	assert.True(t, r.Equal(Zero))
}

func TestNewRationalZeroDenominatorPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewRational(1, 0)
	})
}

func TestRationalEqualAcrossDifferentDenominators(t *testing.T) {
	assert.True(t, NewRational(1, 2).Equal(NewRational(2, 4)))
	assert.False(t, NewRational(1, 2).Equal(NewRational(1, 3)))
}

func TestRationalLess(t *testing.T) {
	assert.True(t, NewRational(1, 3).Less(NewRational(1, 2)))
	assert.False(t, NewRational(1, 2).Less(NewRational(1, 3)))
	assert.False(t, NewRational(1, 2).Less(NewRational(2, 4)))
}

func TestRationalAdd(t *testing.T) {
	sum := NewRational(1, 3).Add(NewRational(1, 6))
	assert.True(t, sum.Equal(NewRational(1, 2)))
}

func TestRationalMul(t *testing.T) {
	product := NewRational(2, 3).Mul(NewRational(3, 4))
	assert.True(t, product.Equal(NewRational(1, 2)))
}

func TestRationalDiv(t *testing.T) {
	quotient := NewRational(1, 2).Div(NewRational(1, 4))
	assert.True(t, quotient.Equal(IntRational(2)))
}

func TestRationalClampFloor(t *testing.T) {
	below := NewRational(1, 10)
	assert.True(t, below.ClampFloor().Equal(NewRational(1, 3)))

	above := NewRational(1, 2)
	assert.True(t, above.ClampFloor().Equal(above))

	exact := NewRational(1, 3)
	assert.True(t, exact.ClampFloor().Equal(exact))
}

func TestRationalFloat64(t *testing.T) {
	require.InDelta(t, 0.5, NewRational(1, 2).Float64(), 0.0001)
}
