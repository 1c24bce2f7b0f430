// Package rowsteps turns Gauss–Jordan elimination into an inspectable,
// step-by-step story: not just the reduced row-echelon form (RREF) of a
// matrix, but the exact sequence of elementary row operations — and their
// elementary matrices — that produce it.
//
// 🚀 What is rowsteps?
//
//	A small, exact-arithmetic library for teaching and studying the
//	textbook elimination procedure:
//		• matrix/    — dense matrices over the exact rational field (big.Rat)
//		• eliminate/ — elementary matrix factory, classifier, reducer, narrator
//		• display/   — aligned printing, augmented bars, interactive pager
//
// ✨ Why choose rowsteps?
//
//   - Exact by construction – every entry is a rational; zero-tests never lie
//   - Every step accounted for – one elementary matrix per row operation,
//     classified back into a human-readable, 1-indexed description
//   - Textbook order – pivots are found top-to-bottom, left-to-right, exactly
//     the way elimination is taught
//   - Pure Go – no cgo, no hidden deps
//
// Quick taste:
//
//	a, _ := matrix.NewDenseFromInt64s([][]int64{{0, 2, 4}, {1, 1, 3}})
//	lines, _ := eliminate.Narrate(a)
//	// lines[0] == "swap rows 1 and 2"
//	// lines[1] == "scale row 2 by 1/2"
//	// lines[2] == "add $-1$ times row 2 to row 1"
//
// See examples/ for a full interactive walkthrough of solving a linear
// system with an augmented matrix.
//
//	go get github.com/katalvlaran/rowsteps
package rowsteps
