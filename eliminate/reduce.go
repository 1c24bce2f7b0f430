// Package eliminate: the recursive pivot-search-and-eliminate reducer.

package eliminate

import (
	"math/big"

	"github.com/katalvlaran/rowsteps/matrix"
)

// Reduce — Gauss–Jordan elimination with an explicit operation trail.
//
// Description:
//
//	Reduce computes the ordered list of elementary matrices whose product,
//	taken in reverse of the returned (construction) order and applied as a
//	left-multiplying chain, carries m to its reduced row-echelon form:
//
//	    (∏ reversed(ops)) · m == RREF(m)
//
// Algorithm Outline (per recursion level, on the submatrix with row ≥
// startRow and column ≥ startCol):
//  1. Pivot search: scan columns left→right from startCol; within a column
//     scan rows top→bottom from startRow; the pivot is the first non-zero
//     entry found. An all-zero submatrix is the base case: no operations.
//  2. Row swap: if the pivot row is not startRow, record and apply the
//     transposition of the two rows.
//  3. Normalize: if the pivot value is not exactly 1, record and apply a
//     scaling of row startRow by its reciprocal.
//  4. Clear column: for every other row with a non-zero entry in the pivot
//     column (increasing index order), record and apply an add-multiple of
//     −(entry) times row startRow.
//  5. Recurse at (startRow+1, pivotCol+1) and return the recursion's list
//     followed by this level's operations, latest-applied first.
//
// An operation is recorded only when the corresponding check fails — the
// identity never appears in the output, which is what keeps Classify total
// over Reduce results.
//
// The input is never mutated; every intermediate matrix is owned by the
// recursion frame that produced it.
//
// Errors:
//   - matrix.ErrNilMatrix — nil input.
//
// Complexity:
//
//	Recursion depth ≤ min(r,c). Each level performs O(r·c) exact scans plus
//	one r×r multiplication per recorded operation.
func Reduce(m *matrix.Dense) ([]*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, elimErrorf(opReduce, err)
	}

	// Work on a private copy; the caller's matrix is immutable by contract.
	return reduceFrom(m.Clone(), 0, 0)
}

// reduceFrom reduces the trailing submatrix of work at (startRow, startCol)
// and returns its operation list in construction order. work is owned by
// the caller frame and replaced, never mutated in place.
func reduceFrom(work *matrix.Dense, startRow, startCol int) ([]*matrix.Dense, error) {
	rows, cols := work.Rows(), work.Cols()
	if startRow >= rows || startCol >= cols {
		return nil, nil // nothing left to reduce
	}

	// 1. Pivot search: first non-zero entry, columns left→right, rows
	// top→bottom, restricted to the trailing submatrix.
	pivotRow, pivotCol := -1, -1
	for col := startCol; col < cols && pivotRow < 0; col++ {
		for row := startRow; row < rows; row++ {
			v, _ := work.At(row, col) // bounds fixed by the loop ranges
			if v.Sign() != 0 {
				pivotRow, pivotCol = row, col

				break
			}
		}
	}
	if pivotRow < 0 {
		return nil, nil // zero submatrix: already reduced
	}

	var (
		level []*matrix.Dense // this level's operations, chronological order
		e     *matrix.Dense
		err   error
	)

	// 2. Row swap: bring the pivot row up to startRow if needed.
	if pivotRow != startRow {
		if e, err = Swap(startRow, pivotRow, rows); err != nil {
			return nil, elimErrorf(opReduce, err)
		}
		if work, err = matrix.Mul(e, work); err != nil {
			return nil, elimErrorf(opReduce, err)
		}
		level = append(level, e)
	}

	// 3. Normalize: scale the pivot row so the pivot becomes exactly 1.
	pivot, _ := work.At(startRow, pivotCol)
	if pivot.Cmp(ratOne) != 0 {
		if e, err = ScaleRow(startRow, new(big.Rat).Inv(pivot), rows); err != nil {
			return nil, elimErrorf(opReduce, err)
		}
		if work, err = matrix.Mul(e, work); err != nil {
			return nil, elimErrorf(opReduce, err)
		}
		level = append(level, e)
	}

	// 4. Clear column: eliminate every other non-zero entry in the pivot
	// column, rows in increasing order. Arithmetic is exact, so each
	// clearing is independent.
	for row := 0; row < rows; row++ {
		if row == startRow {
			continue
		}
		v, _ := work.At(row, pivotCol)
		if v.Sign() == 0 {
			continue
		}
		if e, err = AddScaledRow(new(big.Rat).Neg(v), startRow, row, rows); err != nil {
			return nil, elimErrorf(opReduce, err)
		}
		if work, err = matrix.Mul(e, work); err != nil {
			return nil, elimErrorf(opReduce, err)
		}
		level = append(level, e)
	}

	// 5. Recurse on the trailing submatrix past the pivot.
	rest, err := reduceFrom(work, startRow+1, pivotCol+1)
	if err != nil {
		return nil, err
	}

	// Construction order: the recursion's operations come first, then this
	// level's in reverse-chronological order (latest applied first, earliest
	// real-world operation at the very end of the list).
	ops := make([]*matrix.Dense, 0, len(rest)+len(level))
	ops = append(ops, rest...)
	for i := len(level) - 1; i >= 0; i-- {
		ops = append(ops, level[i])
	}

	return ops, nil
}

// Apply folds an operation list (construction order, as returned by Reduce)
// onto m: the list is traversed in reverse so operations left-multiply in
// true chronological order. m is not mutated.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (an operation's
// dimension does not match m's row count).
// Complexity: O(len(ops) · r²·c).
func Apply(ops []*matrix.Dense, m *matrix.Dense) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, elimErrorf(opApply, err)
	}

	res := m.Clone()
	var err error
	for i := len(ops) - 1; i >= 0; i-- { // reverse of construction order
		if res, err = matrix.Mul(ops[i], res); err != nil {
			return nil, elimErrorf(opApply, err)
		}
	}

	return res, nil
}

// RREF returns the reduced row-echelon form of m, computed by replaying the
// full operation trail. Convenience over Reduce + Apply.
//
// Errors: matrix.ErrNilMatrix.
func RREF(m *matrix.Dense) (*matrix.Dense, error) {
	ops, err := Reduce(m)
	if err != nil {
		return nil, elimErrorf(opRREF, err)
	}
	res, err := Apply(ops, m)
	if err != nil {
		return nil, elimErrorf(opRREF, err)
	}

	return res, nil
}
