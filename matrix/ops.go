// Package matrix: exact kernels shared by the elimination core.
// All kernels use the central validators and return plain sentinels wrapped
// via matrixErrorf at the facade, mirroring the package-wide error policy.

package matrix

import (
	"fmt"
	"math/big"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul      = "Mul"
	opIdentity = "Identity"
	opAugment  = "Augment"
)

// ratOne is the multiplicative identity, shared read-only across kernels.
var ratOne = big.NewRat(1, 1)

// matrixErrorf wraps err with an operation tag, preserving the original
// error via %w so callers can still match sentinels with errors.Is.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Identity returns the n×n identity matrix.
// Stage 1 (Validate): n > 0.
// Stage 2 (Execute): allocate zeros, set diagonal to 1.
// Errors: ErrInvalidDimensions.
// Complexity: O(n²).
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	// Set diagonal entries to 1
	for i := 0; i < n; i++ {
		m.data[i*n+i].Set(ratOne)
	}

	return m, nil
}

// Mul performs exact matrix multiplication C = A × B (no aliasing).
// Stage 1 (Validate): A, B non-nil and inner dimensions match
// (A.Cols == B.Rows).
// Stage 2 (Execute): deterministic i→k→j loops with row-major strides,
// skipping zero A[i,k] to avoid useless exact multiplications.
//
// Inputs are never mutated; the result is a freshly allocated Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*n*c) Rat multiplications, Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	// Validate inputs via canonical validator
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Allocate result Dense
	aRows, aCols, bCols := a.r, a.c, b.c
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// row-major multiplication into res.data
	// a.data layout: i*aCols + k
	// b.data layout: k*bCols + j
	var (
		i, j, k                            int
		rowOffsetA, rowOffsetB, rowOffsetR int
		av                                 *big.Rat
		prod                               = new(big.Rat) // scratch for av*b[k,j]
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			if av.Sign() == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				bv := b.data[rowOffsetB+j]
				if bv.Sign() == 0 {
					continue
				}
				prod.Mul(av, bv)
				cell := res.data[rowOffsetR+j]
				cell.Add(cell, prod)
			}
		}
	}

	// Return result
	return res, nil
}

// Augment horizontally concatenates matrix a with column v, producing an
// r×(c+1) matrix. The visual subdivision between coefficient and constant
// columns is a display concern; see display.FormatAugmented.
// Stage 1 (Validate): a non-nil, len(v) == a.Rows(), entries non-nil.
// Stage 2 (Execute): copy a's entries, then append v as the last column.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNilEntry.
// Complexity: O(r*c).
func Augment(a *Dense, v []*big.Rat) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	if len(v) != a.r {
		return nil, matrixErrorf(opAugment, ErrDimensionMismatch)
	}
	for i, x := range v {
		if x == nil {
			return nil, matrixErrorf(opAugment, fmt.Errorf("row %d: %w", i, ErrNilEntry))
		}
	}

	res, err := NewDense(a.r, a.c+1)
	if err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	var i, j int
	for i = 0; i < a.r; i++ {
		for j = 0; j < a.c; j++ {
			res.data[i*res.c+j].Set(a.data[i*a.c+j])
		}
		res.data[i*res.c+a.c].Set(v[i]) // constant column, last position
	}

	return res, nil
}
