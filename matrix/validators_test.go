package matrix_test

import (
	"testing"

	"github.com/katalvlaran/rowsteps/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValidateNotNil accepts real matrices and rejects nil.
func TestValidateNotNil(t *testing.T) {
	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)

	assert.NoError(t, matrix.ValidateNotNil(m))
	assert.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
}

// TestValidateSquare distinguishes square from rectangular shapes.
func TestValidateSquare(t *testing.T) {
	sq, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	assert.NoError(t, matrix.ValidateSquare(sq))
	assert.ErrorIs(t, matrix.ValidateSquare(rect), matrix.ErrNonSquare)
}

// TestValidateSquareNonNil composes the nil and square checks in order.
func TestValidateSquareNonNil(t *testing.T) {
	assert.ErrorIs(t, matrix.ValidateSquareNonNil(nil), matrix.ErrNilMatrix)

	rect, err := matrix.NewDense(1, 2)
	require.NoError(t, err)
	assert.ErrorIs(t, matrix.ValidateSquareNonNil(rect), matrix.ErrNonSquare)
}

// TestValidateSameShape compares rows and columns independently.
func TestValidateSameShape(t *testing.T) {
	a, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	b, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	tall, err := matrix.NewDense(3, 3)
	require.NoError(t, err)

	assert.NoError(t, matrix.ValidateSameShape(a, b))
	assert.ErrorIs(t, matrix.ValidateSameShape(a, tall), matrix.ErrDimensionMismatch)
}

// TestValidateMulCompatible checks nil guards and the inner-dimension rule.
func TestValidateMulCompatible(t *testing.T) {
	a, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	b, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	assert.NoError(t, matrix.ValidateMulCompatible(a, b))
	assert.ErrorIs(t, matrix.ValidateMulCompatible(nil, b), matrix.ErrNilMatrix)
	assert.ErrorIs(t, matrix.ValidateMulCompatible(b, b), matrix.ErrDimensionMismatch)
}
