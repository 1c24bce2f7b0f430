// Package display renders rowsteps matrices and elimination walkthroughs
// as aligned terminal text.
//
// The display package provides:
//
//   - Format / FormatAugmented — column-aligned exact rendering of a matrix
//     with a caller-supplied line prefix, optionally with the vertical bar
//     of an augmented system.
//   - StepThrough — an interactive pager that prints the starting matrix,
//     then every elimination step with its description and resulting
//     matrix, pausing for input between steps.
//
// Everything here is thin plumbing over the eliminate core: it consumes
// the recorded operation list and never performs arithmetic of its own
// beyond replaying the recorded matrices.
package display
