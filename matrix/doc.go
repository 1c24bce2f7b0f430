// Package matrix provides dense matrices over the exact rational field.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix of *big.Rat entries with copy-in/copy-out
//     value semantics, so no caller can alias internal storage.
//   - Exact kernels (Mul, Identity, Augment) with deterministic loop orders
//     and strict fail-fast validation.
//   - A single, canonical validator set shared by every facade.
//
// All arithmetic is exact: equality and zero-tests never involve rounding,
// which is what makes pivot selection in the eliminate package trustworthy.
//
// See the examples in this package and eliminate for usage patterns.
package matrix
