// Package eliminate: the narrator mapping operation lists to chronological
// step descriptions.

package eliminate

import (
	"github.com/katalvlaran/rowsteps/matrix"
)

// Steps reduces m and classifies every recorded elementary matrix, returned
// in true chronological application order — the reverse of Reduce's
// construction order. This is the (matrix, description) pairing consumed by
// presentation code; index k of Steps corresponds to the k-th operation
// actually applied.
//
// Errors: matrix.ErrNilMatrix; ErrIdentityStep would indicate a reducer bug
// and is propagated as-is.
// Complexity: Reduce plus O(len(ops)·n²) classification scans.
func Steps(m *matrix.Dense) ([]Step, error) {
	ops, err := Reduce(m)
	if err != nil {
		return nil, elimErrorf(opSteps, err)
	}

	steps := make([]Step, len(ops))
	last := len(ops) - 1
	for i := range ops {
		// ops[last-i] is the i-th operation in chronological order.
		s, err := Classify(ops[last-i])
		if err != nil {
			return nil, elimErrorf(opSteps, err)
		}
		steps[i] = s
	}

	return steps, nil
}

// Narrate returns the human-readable description of every elimination step
// for m, in chronological order, 1-indexed, with exact scalar rendering.
//
// Errors: matrix.ErrNilMatrix.
func Narrate(m *matrix.Dense) ([]string, error) {
	steps, err := Steps(m)
	if err != nil {
		return nil, elimErrorf(opNarrate, err)
	}

	lines := make([]string, len(steps))
	for i, s := range steps {
		lines[i] = s.Describe()
	}

	return lines, nil
}
