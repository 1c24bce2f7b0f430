// SPDX-License-Identifier: MIT
// Package eliminate: sentinel error set (unified, consistent).
// Dimension and bounds misuse surfaces the matrix package sentinels
// unchanged (matrix.ErrOutOfRange, matrix.ErrNonSquare, ...); the sentinels
// below cover conditions specific to elementary row operations.

package eliminate

import (
	"errors"
	"fmt"
)

var (
	// ErrIdentityStep is returned by Classify when the input is the identity
	// matrix. The identity encodes no operation; receiving one means the
	// producer recorded a step that did nothing, which is an internal
	// invariant violation, not a recoverable condition.
	ErrIdentityStep = errors.New("eliminate: identity matrix encodes no operation")

	// ErrZeroScalar rejects a zero scale or add-multiple factor. Scaling by
	// zero is not invertible; adding zero times a row is a no-op and must
	// never be recorded as a step.
	ErrZeroScalar = errors.New("eliminate: scalar must be non-zero")

	// ErrNilScalar rejects a nil *big.Rat where a scalar is required.
	ErrNilScalar = errors.New("eliminate: nil scalar")

	// ErrSameRow rejects a swap or add-multiple whose source and target rows
	// coincide.
	ErrSameRow = errors.New("eliminate: source and target rows must differ")
)

// elimErrorf wraps err with an operation tag, preserving the original error
// via %w so callers can still match sentinels with errors.Is.
func elimErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
