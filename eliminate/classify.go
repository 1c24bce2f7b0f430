// Package eliminate: the classifier that inverts an elementary matrix back
// into its human-readable Step.

package eliminate

import (
	"github.com/katalvlaran/rowsteps/matrix"
)

// Classify determines which primitive row operation the square matrix e
// encodes and returns it as a Step. It is total over the three elementary
// shapes produced by Swap/ScaleRow/AddScaledRow; the identity matrix is an
// explicit fatal condition (ErrIdentityStep), since an identity in an
// operation list means the producer recorded a step that did nothing.
//
// Algorithm (ordered checks, first match wins — the three shapes are
// mutually exclusive by construction, so the order is disambiguation, not
// priority resolution):
//
//  1. Scan strictly-upper-triangular entries in row-major order. On the
//     first non-zero E[i,j] (j > i): if E[i,i] == 0 the whole matrix is the
//     swap of rows i and j; otherwise it adds E[i,j] times row j to row i
//     (the column index is the source row, the row index the destination).
//  2. Scan strictly-lower-triangular entries; the first non-zero E[i,j]
//     (j < i) adds E[i,j] times row j to row i.
//  3. The matrix is diagonal: the first diagonal entry ≠ 1 scales row i by
//     E[i,i].
//  4. Nothing deviates from the identity: fail with ErrIdentityStep.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrIdentityStep.
// Complexity: O(n²) exact comparisons, Space O(1).
func Classify(e *matrix.Dense) (Step, error) {
	// Validate input non-nil and square
	if err := matrix.ValidateSquareNonNil(e); err != nil {
		return Step{}, elimErrorf(opClassify, err)
	}

	n := e.Rows()
	var i, j int

	// 1. Strictly-upper-triangular scan, row-major.
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			v, _ := e.At(i, j) // bounds validated above
			if v.Sign() == 0 {
				continue
			}
			diag, _ := e.At(i, i)
			if diag.Sign() == 0 {
				// Zero diagonal under a non-zero off-entry: transposition.
				return Step{Kind: SwapStep, Source: i, Target: j}, nil
			}

			// Add E[i,j] times row j to row i.
			return Step{Kind: AddStep, Source: j, Target: i, Scalar: v}, nil
		}
	}

	// 2. Strictly-lower-triangular scan, row-major.
	for i = 0; i < n; i++ {
		for j = 0; j < i; j++ {
			v, _ := e.At(i, j)
			if v.Sign() == 0 {
				continue
			}

			return Step{Kind: AddStep, Source: j, Target: i, Scalar: v}, nil
		}
	}

	// 3. Diagonal matrix: the first entry ≠ 1 is a row scaling.
	for i = 0; i < n; i++ {
		d, _ := e.At(i, i)
		if d.Cmp(ratOne) != 0 {
			return Step{Kind: ScaleStep, Source: i, Target: i, Scalar: d}, nil
		}
	}

	// 4. Identity: no operation to report.
	return Step{}, elimErrorf(opClassify, ErrIdentityStep)
}
