package matrix_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/rowsteps/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDense_InvalidDimensions verifies that non-positive dimensions
// are rejected with ErrInvalidDimensions before any allocation.
func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "zero rows must error")

	_, err = matrix.NewDense(3, -1)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "negative cols must error")
}

// TestNewDense_ZeroInitialized confirms a fresh matrix is all zeros.
func TestNewDense_ZeroInitialized(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			assert.Zero(t, v.Sign(), "fresh entries must be zero")
		}
	}
}

// TestDense_AtSet_Bounds verifies ErrOutOfRange on every invalid index
// combination and round-trips a value on a valid one.
func TestDense_AtSet_Bounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	err = m.Set(2, 0, big.NewRat(1, 1))
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.NoError(t, m.Set(1, 1, big.NewRat(-3, 7)))
	v, err := m.At(1, 1)
	require.NoError(t, err)
	assert.Zero(t, v.Cmp(big.NewRat(-3, 7)), "Set/At must round-trip exactly")
}

// TestDense_SetNilEntry ensures nil rationals are rejected with ErrNilEntry.
func TestDense_SetNilEntry(t *testing.T) {
	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)

	assert.ErrorIs(t, m.Set(0, 0, nil), matrix.ErrNilEntry)
}

// TestDense_ValueSemantics verifies that neither At results nor Set inputs
// alias internal storage.
func TestDense_ValueSemantics(t *testing.T) {
	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)

	in := big.NewRat(1, 2)
	require.NoError(t, m.Set(0, 0, in))

	// Mutating the input after Set must not change the matrix.
	in.SetInt64(99)
	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Zero(t, v.Cmp(big.NewRat(1, 2)), "Set must store a copy")

	// Mutating the At result must not change the matrix either.
	v.SetInt64(42)
	again, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Zero(t, again.Cmp(big.NewRat(1, 2)), "At must return a copy")
}

// TestNewDenseFromInt64s_Ragged verifies ragged inputs are rejected.
func TestNewDenseFromInt64s_Ragged(t *testing.T) {
	_, err := matrix.NewDenseFromInt64s([][]int64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestNewDenseFromRats_NilEntry verifies nil cells are rejected.
func TestNewDenseFromRats_NilEntry(t *testing.T) {
	_, err := matrix.NewDenseFromRats([][]*big.Rat{{big.NewRat(1, 1), nil}})
	assert.ErrorIs(t, err, matrix.ErrNilEntry)
}

// TestDense_CloneIndependence confirms Clone produces a deep copy.
func TestDense_CloneIndependence(t *testing.T) {
	m, err := matrix.NewDenseFromInt64s([][]int64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, big.NewRat(100, 1)))

	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Zero(t, v.Cmp(big.NewRat(1, 1)), "mutating the clone must not touch the original")
	assert.False(t, m.Equal(c), "clone diverged, Equal must report false")
}

// TestDense_Equal covers shape mismatch, nil, and exact entry comparison.
func TestDense_Equal(t *testing.T) {
	a, err := matrix.NewDenseFromInt64s([][]int64{{1, 2}})
	require.NoError(t, err)
	b, err := matrix.NewDenseFromInt64s([][]int64{{1, 2}})
	require.NoError(t, err)
	tall, err := matrix.NewDenseFromInt64s([][]int64{{1}, {2}})
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(tall), "different shapes are never equal")
	assert.False(t, a.Equal(nil), "nil is never equal")
}

// TestDense_IsIdentity checks identity detection for square and
// non-square shapes.
func TestDense_IsIdentity(t *testing.T) {
	id, err := matrix.Identity(3)
	require.NoError(t, err)
	assert.True(t, id.IsIdentity())

	almost := id.Clone()
	require.NoError(t, almost.Set(0, 1, big.NewRat(1, 2)))
	assert.False(t, almost.IsIdentity(), "off-diagonal entry breaks identity")

	rect, err := matrix.NewDenseFromInt64s([][]int64{{1, 0, 0}, {0, 1, 0}})
	require.NoError(t, err)
	assert.False(t, rect.IsIdentity(), "non-square is never identity")
}

// TestDense_String renders entries in exact rational form.
func TestDense_String(t *testing.T) {
	m, err := matrix.NewDenseFromRats([][]*big.Rat{
		{big.NewRat(1, 2), big.NewRat(-3, 1)},
	})
	require.NoError(t, err)

	assert.Equal(t, "[1/2, -3]\n", m.String())
}
