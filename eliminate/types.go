// Package eliminate: step descriptions produced by the classifier.
package eliminate

import (
	"fmt"
	"math/big"
)

// StepKind identifies which of the three primitive row operations a Step
// encodes.
//
//   - SwapStep       — exchange two rows.
//   - ScaleStep      — multiply one row by a non-zero scalar.
//   - AddStep        — add a non-zero multiple of one row to another.
type StepKind int

const (
	// SwapStep exchanges rows Source and Target.
	SwapStep StepKind = iota

	// ScaleStep multiplies row Target by Scalar.
	ScaleStep

	// AddStep adds Scalar times row Source to row Target.
	AddStep
)

// String returns a short tag for logging and test diagnostics.
func (k StepKind) String() string {
	switch k {
	case SwapStep:
		return "swap"
	case ScaleStep:
		return "scale"
	case AddStep:
		return "add"
	default:
		return fmt.Sprintf("StepKind(%d)", int(k))
	}
}

// Step is the classified form of one elementary matrix: which operation it
// performs, on which rows, with which scalar. Row indices are 0-indexed;
// Describe renders them 1-indexed for display.
//
// Fields:
//   - Kind   — the operation class.
//   - Source — the row read from (swap: one of the pair; add: the row whose
//     multiple is added; scale: equals Target).
//   - Target — the row written to.
//   - Scalar — the exact factor for ScaleStep/AddStep; nil for SwapStep.
type Step struct {
	Kind   StepKind
	Source int
	Target int
	Scalar *big.Rat
}

// Describe renders the step as a display-ready sentence with 1-indexed row
// numbers and exact scalar rendering (RatString: "1/2", "-3", ...). The
// add-multiple scalar is wrapped in $...$ so a possibly negative factor
// typesets cleanly inside prose.
func (s Step) Describe() string {
	switch s.Kind {
	case SwapStep:
		return fmt.Sprintf("swap rows %d and %d", s.Source+1, s.Target+1)
	case ScaleStep:
		return fmt.Sprintf("scale row %d by %s", s.Target+1, s.Scalar.RatString())
	default:
		return fmt.Sprintf("add $%s$ times row %d to row %d",
			s.Scalar.RatString(), s.Source+1, s.Target+1)
	}
}
