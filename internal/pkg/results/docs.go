// Package results implements the railway-oriented outcome type used across the
// domain layer instead of exceptions-by-error-return for expected failures.
//
// A Result (payload-free) or ValueResult[T] (with payload) is either a success
// or a failure carrying an ordered, non-empty list of typed errors. Entity
// factories build results through a Builder, which accumulates every violated
// rule instead of stopping at the first, so API clients receive the complete
// set of problems in one response.
//
// Domain failures never panic. The one deliberate panic in the package is
// RequiredValue on a failed result, which raises *FatalError: that is a bug in
// the calling code, not a domain outcome, and must stay distinguishable from
// one.
package results
