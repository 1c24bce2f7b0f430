package eliminate_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/rowsteps/eliminate"
	"github.com/katalvlaran/rowsteps/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClassify_Swap round-trips a transposition through the classifier.
func TestClassify_Swap(t *testing.T) {
	e, err := eliminate.Swap(0, 2, 4)
	require.NoError(t, err)

	s, err := eliminate.Classify(e)
	require.NoError(t, err)
	assert.Equal(t, eliminate.SwapStep, s.Kind)
	assert.Equal(t, 0, s.Source)
	assert.Equal(t, 2, s.Target)
	assert.Nil(t, s.Scalar, "swap carries no scalar")
	assert.Equal(t, "swap rows 1 and 3", s.Describe())
}

// TestClassify_Scale round-trips a row scaling, including the exact scalar.
func TestClassify_Scale(t *testing.T) {
	e, err := eliminate.ScaleRow(1, big.NewRat(1, 2), 3)
	require.NoError(t, err)

	s, err := eliminate.Classify(e)
	require.NoError(t, err)
	assert.Equal(t, eliminate.ScaleStep, s.Kind)
	assert.Equal(t, 1, s.Target)
	assert.Zero(t, s.Scalar.Cmp(big.NewRat(1, 2)))
	assert.Equal(t, "scale row 2 by 1/2", s.Describe())
}

// TestClassify_AddUpper classifies an add-multiple whose deviation lands in
// the strict upper triangle (source row below target row). The column index
// of the non-zero entry is the source row, the row index the target.
func TestClassify_AddUpper(t *testing.T) {
	e, err := eliminate.AddScaledRow(big.NewRat(-1, 1), 2, 0, 3) // (0,2) = -1
	require.NoError(t, err)

	s, err := eliminate.Classify(e)
	require.NoError(t, err)
	assert.Equal(t, eliminate.AddStep, s.Kind)
	assert.Equal(t, 2, s.Source)
	assert.Equal(t, 0, s.Target)
	assert.Zero(t, s.Scalar.Cmp(big.NewRat(-1, 1)))
	assert.Equal(t, "add $-1$ times row 3 to row 1", s.Describe())
}

// TestClassify_AddLower classifies an add-multiple whose deviation lands in
// the strict lower triangle (source row above target row).
func TestClassify_AddLower(t *testing.T) {
	e, err := eliminate.AddScaledRow(big.NewRat(3, 4), 0, 2, 3) // (2,0) = 3/4
	require.NoError(t, err)

	s, err := eliminate.Classify(e)
	require.NoError(t, err)
	assert.Equal(t, eliminate.AddStep, s.Kind)
	assert.Equal(t, 0, s.Source)
	assert.Equal(t, 2, s.Target)
	assert.Zero(t, s.Scalar.Cmp(big.NewRat(3, 4)))
	assert.Equal(t, "add $3/4$ times row 1 to row 3", s.Describe())
}

// TestClassify_Identity verifies the explicit fatal condition: the identity
// carries no information and must be refused.
func TestClassify_Identity(t *testing.T) {
	id, err := matrix.Identity(3)
	require.NoError(t, err)

	_, err = eliminate.Classify(id)
	assert.ErrorIs(t, err, eliminate.ErrIdentityStep)
}

// TestClassify_StructuralErrors covers nil and non-square inputs.
func TestClassify_StructuralErrors(t *testing.T) {
	_, err := eliminate.Classify(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect, err := matrix.NewDenseFromInt64s([][]int64{{1, 0, 0}, {0, 1, 0}})
	require.NoError(t, err)
	_, err = eliminate.Classify(rect)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestClassify_FactoryTotality confirms every factory output classifies to
// exactly the kind that built it, across a spread of indices and scalars.
func TestClassify_FactoryTotality(t *testing.T) {
	const n = 5
	scalars := []*big.Rat{
		big.NewRat(1, 2), big.NewRat(-7, 3), big.NewRat(4, 1), big.NewRat(-1, 1),
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			sw, err := eliminate.Swap(i, j, n)
			require.NoError(t, err)
			s, err := eliminate.Classify(sw)
			require.NoError(t, err)
			assert.Equal(t, eliminate.SwapStep, s.Kind, "Swap(%d,%d)", i, j)

			for _, c := range scalars {
				ad, err := eliminate.AddScaledRow(c, i, j, n)
				require.NoError(t, err)
				s, err = eliminate.Classify(ad)
				require.NoError(t, err)
				assert.Equal(t, eliminate.AddStep, s.Kind, "AddScaledRow(%v,%d,%d)", c, i, j)
				assert.Equal(t, i, s.Source)
				assert.Equal(t, j, s.Target)
			}
		}
		for _, c := range scalars {
			sc, err := eliminate.ScaleRow(i, c, n)
			require.NoError(t, err)
			s, err := eliminate.Classify(sc)
			require.NoError(t, err)
			assert.Equal(t, eliminate.ScaleStep, s.Kind, "ScaleRow(%d,%v)", i, c)
			assert.Zero(t, s.Scalar.Cmp(c))
		}
	}
}
