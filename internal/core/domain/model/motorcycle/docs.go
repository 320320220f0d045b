// Package motorcycle provides the domain entity and business logic for the
// vehicles available for rent. It implements the Motorcycle aggregate root
// with field normalization and accumulated validation.
//
// Key business rules:
//   - License plates are stripped of separators and must hold exactly
//     7 alphanumeric characters
//   - Model names are trimmed, upper-cased and bounded to 2-250 characters
//   - The manufacturing year must be 1900 or later
//   - Plate changes produce a new copy of the aggregate, never a partial update
//
// Validation failures are accumulated and reported together through the
// results package instead of stopping at the first problem.
package motorcycle
