// Package eliminate exposes Gauss–Jordan elimination as an ordered,
// inspectable list of elementary row operations over the exact rational
// field.
//
// 🚀 What is eliminate?
//
//	The textbook reduction procedure, taken apart:
//	  • Swap / ScaleRow / AddScaledRow — build the three elementary matrices
//	  • Reduce — recursive pivot search + elimination, one elementary matrix
//	    recorded per row operation actually performed
//	  • Classify — invert an elementary matrix back into a Step description
//	  • Steps / Narrate — the chronological story, 1-indexed and
//	    TeX-compatible, ready for step-by-step display
//
// ✨ Key guarantees:
//   - exact arithmetic only (big.Rat) — pivot zero-tests never lie
//   - canonical pivot order: columns left→right, rows top→bottom, restricted
//     to the not-yet-reduced trailing submatrix
//   - no no-op steps: an operation is recorded only when the corresponding
//     check fails, so the identity matrix never appears in the output
//   - Apply(Reduce(A), A) reproduces RREF(A) exactly
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/rowsteps/eliminate"
//
//	ops, err := eliminate.Reduce(a)     // elementary matrices, construction order
//	lines, err := eliminate.Narrate(a)  // descriptions, chronological order
//
// The returned operation list is in construction order: the reducer records
// each new matrix in front of the ones it already produced, so the product
// of the reversed list, applied left to right, carries A to RREF(A).
//
// Complexity: O(min(r,c)) recursion depth, O(r·c·min(r,c)) Rat operations
// for the reduction itself plus the cost of the recorded multiplications.
package eliminate
