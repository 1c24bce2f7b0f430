// Package matrix provides core linear algebra primitives for exact
// rational computations. Dense is a concrete, row-major matrix of *big.Rat
// values, storing entries in a flat slice for cache friendliness while
// keeping strict copy-in/copy-out value semantics.
package matrix

import (
	"fmt"
	"math/big"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of exact rational values.
// r is rows, c is columns, and data holds r*c entries in row-major order.
// Every entry is a non-nil *big.Rat owned exclusively by the matrix:
// At returns copies and Set stores copies, so external code can never
// mutate internal state through a shared pointer.
type Dense struct {
	r, c int        // number of rows and columns
	data []*big.Rat // flat backing storage, length == r*c, entries non-nil
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice, one zero Rat per cell.
// Stage 3 (Finalize): return new Dense or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate flat slice with zero-valued entries
	data := make([]*big.Rat, rows*cols)
	for i := range data {
		data[i] = new(big.Rat)
	}

	// Return initialized Dense
	return &Dense{r: rows, c: cols, data: data}, nil
}

// NewDenseFromRats builds a Dense from a rectangular slice of rows.
// Every row must have the same length and every entry must be non-nil;
// entries are deep-copied, so the caller keeps ownership of its slice.
// Errors: ErrInvalidDimensions (empty input), ErrDimensionMismatch
// (ragged rows), ErrNilEntry (nil cell).
// Complexity: O(r*c).
func NewDenseFromRats(rows [][]*big.Rat) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	for i := 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("NewDenseFromRats: row %d: %w", i, ErrDimensionMismatch)
		}
		for j := 0; j < c; j++ {
			if rows[i][j] == nil {
				return nil, denseErrorf("NewDenseFromRats", i, j, ErrNilEntry)
			}
			m.data[i*c+j].Set(rows[i][j])
		}
	}

	return m, nil
}

// NewDenseFromInt64s builds a Dense from integer rows, a convenience for
// tests and demos where inputs are whole numbers.
// Errors: ErrInvalidDimensions, ErrDimensionMismatch (ragged rows).
// Complexity: O(r*c).
func NewDenseFromInt64s(rows [][]int64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	for i := 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("NewDenseFromInt64s: row %d: %w", i, ErrDimensionMismatch)
		}
		for j := 0; j < c; j++ {
			m.data[i*c+j].SetInt64(rows[i][j])
		}
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c // return stored column count
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Stage 1 (Validate): check 0 ≤ row < r and 0 ≤ col < c.
// Stage 2 (Execute): compute and return linear index.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves a copy of the element at (row, col).
// The returned *big.Rat is freshly allocated; mutating it never affects
// the matrix.
// Complexity: O(1) plus one Rat copy.
func (m *Dense) At(row, col int) (*big.Rat, error) {
	// Compute flat index or error
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return nil, err
	}

	// Return a defensive copy of the stored value
	return new(big.Rat).Set(m.data[idx]), nil
}

// Set assigns a copy of v at (row, col).
// Errors: ErrOutOfRange on bad indices, ErrNilEntry on nil v.
// Complexity: O(1) plus one Rat copy.
func (m *Dense) Set(row, col int, v *big.Rat) error {
	if v == nil {
		return denseErrorf("Set", row, col, ErrNilEntry)
	}
	// Compute flat index or error
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	// Store a defensive copy
	m.data[idx].Set(v)

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	// Allocate new slice and copy every entry by value
	copyData := make([]*big.Rat, len(m.data))
	for i, v := range m.data {
		copyData[i] = new(big.Rat).Set(v)
	}

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// Equal reports whether m and o have identical shape and entries.
// Comparison is exact (big.Rat.Cmp); there is no tolerance.
// Complexity: O(r*c).
func (m *Dense) Equal(o *Dense) bool {
	if o == nil || m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if m.data[i].Cmp(o.data[i]) != 0 {
			return false
		}
	}

	return true
}

// IsIdentity reports whether m is the identity matrix.
// Returns false for non-square matrices.
// Complexity: O(r*c).
func (m *Dense) IsIdentity() bool {
	if m.r != m.c {
		return false
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			v := m.data[i*m.c+j]
			if i == j {
				if v.Cmp(ratOne) != 0 {
					return false
				}
			} else if v.Sign() != 0 {
				return false
			}
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging.
// Entries render in exact form via RatString ("1/2", "-3", ...).
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		b.WriteString("[") // open row
		for j = 0; j < m.c; j++ { // iterate over columns
			b.WriteString(m.data[i*m.c+j].RatString())
			if j < m.c-1 {
				b.WriteString(", ") // separate values with comma
			}
		}
		b.WriteString("]\n") // close row
	}

	return b.String()
}
