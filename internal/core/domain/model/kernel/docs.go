// Package kernel provides the shared domain primitives of the rental system:
//
//   - UUID: identifier value object with validation and comparison
//   - CodeId: normalized business identifier (case, whitespace and
//     punctuation insensitive) used to address records at the boundary
//
// Both types are immutable and safe for concurrent use. They enforce their
// invariants at construction so the aggregates built on top of them never see
// a half-formed identifier.
package kernel
