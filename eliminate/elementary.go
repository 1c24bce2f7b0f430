// Package eliminate: constructors for the three elementary matrices.
// Each constructor is a pure function over the exact rational field: it
// builds an identity of the requested dimension and applies exactly one
// bounded deviation, so every result is classifiable by Classify.

package eliminate

import (
	"math/big"

	"github.com/katalvlaran/rowsteps/matrix"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opSwap     = "Swap"
	opScale    = "ScaleRow"
	opAdd      = "AddScaledRow"
	opClassify = "Classify"
	opReduce   = "Reduce"
	opApply    = "Apply"
	opRREF     = "RREF"
	opSteps    = "Steps"
	opNarrate  = "Narrate"
)

// ratOne is the multiplicative identity, shared read-only across the package.
var ratOne = big.NewRat(1, 1)

// validateRows checks dimension n and that every listed row index fits it.
// Returns matrix sentinels so callers match a single error vocabulary.
// Complexity: O(len(rows)).
func validateRows(n int, rows ...int) error {
	if n <= 0 {
		return matrix.ErrInvalidDimensions
	}
	for _, r := range rows {
		if r < 0 || r >= n {
			return matrix.ErrOutOfRange
		}
	}

	return nil
}

// Swap returns the n×n transposition matrix exchanging rows i and j:
// the identity with (i,i)=0, (j,j)=0, (i,j)=1, (j,i)=1.
// Left-multiplying a matrix by the result swaps its rows i and j.
//
// Errors: matrix.ErrInvalidDimensions (n ≤ 0), matrix.ErrOutOfRange,
// ErrSameRow (i == j — the "swap" would be the identity).
// Complexity: O(n²) for the identity allocation.
func Swap(i, j, n int) (*matrix.Dense, error) {
	if err := validateRows(n, i, j); err != nil {
		return nil, elimErrorf(opSwap, err)
	}
	if i == j {
		return nil, elimErrorf(opSwap, ErrSameRow)
	}

	e, err := matrix.Identity(n)
	if err != nil {
		return nil, elimErrorf(opSwap, err)
	}
	// Apply the transposition deviation pattern.
	zero := new(big.Rat)
	_ = e.Set(i, i, zero) // indices validated above
	_ = e.Set(j, j, zero)
	_ = e.Set(i, j, ratOne)
	_ = e.Set(j, i, ratOne)

	return e, nil
}

// ScaleRow returns the n×n identity with entry (i,i) set to c, the
// elementary matrix that multiplies row i by c under left-multiplication.
// c must be non-zero: scaling by zero is not invertible and must never be
// requested.
//
// Errors: matrix.ErrInvalidDimensions, matrix.ErrOutOfRange, ErrNilScalar,
// ErrZeroScalar.
// Complexity: O(n²).
func ScaleRow(i int, c *big.Rat, n int) (*matrix.Dense, error) {
	if err := validateRows(n, i); err != nil {
		return nil, elimErrorf(opScale, err)
	}
	if c == nil {
		return nil, elimErrorf(opScale, ErrNilScalar)
	}
	if c.Sign() == 0 {
		return nil, elimErrorf(opScale, ErrZeroScalar)
	}

	e, err := matrix.Identity(n)
	if err != nil {
		return nil, elimErrorf(opScale, err)
	}
	_ = e.Set(i, i, c) // index validated above; Set stores a copy

	return e, nil
}

// AddScaledRow returns the n×n identity with entry (dst,src) set to c, the
// elementary matrix that adds c times row src to row dst under
// left-multiplication. c must be non-zero so the result encodes an actual
// step, and src must differ from dst (the diagonal belongs to Scale).
//
// Errors: matrix.ErrInvalidDimensions, matrix.ErrOutOfRange, ErrNilScalar,
// ErrZeroScalar, ErrSameRow.
// Complexity: O(n²).
func AddScaledRow(c *big.Rat, src, dst, n int) (*matrix.Dense, error) {
	if err := validateRows(n, src, dst); err != nil {
		return nil, elimErrorf(opAdd, err)
	}
	if c == nil {
		return nil, elimErrorf(opAdd, ErrNilScalar)
	}
	if c.Sign() == 0 {
		return nil, elimErrorf(opAdd, ErrZeroScalar)
	}
	if src == dst {
		return nil, elimErrorf(opAdd, ErrSameRow)
	}

	e, err := matrix.Identity(n)
	if err != nil {
		return nil, elimErrorf(opAdd, err)
	}
	_ = e.Set(dst, src, c) // indices validated above; Set stores a copy

	return e, nil
}
