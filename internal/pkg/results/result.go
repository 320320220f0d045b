package results

import (
	"fmt"
	"strings"
)

// Error is a single typed domain failure. It implements the error interface so
// callers can log or wrap it, but domain code passes it around inside Results
// rather than returning it directly.
type Error struct {
	Kind    ErrorKind
	Message string
}

// NewError creates an Error with an explicit message.
func NewError(kind ErrorKind, message string) Error {
	return Error{Kind: kind, Message: message}
}

// NewKindError creates an Error whose message is the kind's symbolic name.
func NewKindError(kind ErrorKind) Error {
	return Error{Kind: kind, Message: kind.String()}
}

func (e Error) Error() string {
	return fmt.Sprintf("%s (%d)", e.Message, e.Kind.Code())
}

// FatalError is the panic payload raised when a Result is used in a way that is
// a programming error, such as reading the value of a failed Result. It is
// deliberately not an ordinary domain failure: correct calling code never
// reaches it.
type FatalError struct {
	Reason string
	Errors []Error
}

func (e *FatalError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, err := range e.Errors {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("results: %s [%s]", e.Reason, strings.Join(msgs, "; "))
}

// Result is a payload-free outcome: either success, or failure carrying one or
// more typed errors in the order they were recorded.
type Result struct {
	errors []Error
}

// Succeed returns a successful payload-free Result.
func Succeed() Result {
	return Result{}
}

// Fail returns a failed Result with the given errors. At least one error must
// be supplied; a failure without errors is a programming error.
func Fail(errors ...Error) Result {
	if len(errors) == 0 {
		panic(&FatalError{Reason: "failed result requires at least one error"})
	}
	return Result{errors: copyErrors(errors)}
}

// FailKind returns a failed Result with a single error of the given kind.
func FailKind(kind ErrorKind) Result {
	return Fail(NewKindError(kind))
}

// IsSuccess reports whether the result carries no errors.
func (r Result) IsSuccess() bool {
	return len(r.errors) == 0
}

// IsFailure reports whether the result carries at least one error.
func (r Result) IsFailure() bool {
	return !r.IsSuccess()
}

// Errors returns the recorded errors in insertion order. The returned slice is
// a copy; mutating it does not affect the result.
func (r Result) Errors() []Error {
	return copyErrors(r.errors)
}

// FirstError returns the first recorded error, if any.
func (r Result) FirstError() (Error, bool) {
	if len(r.errors) == 0 {
		return Error{}, false
	}
	return r.errors[0], true
}

// HasKind reports whether any recorded error has the given kind.
func (r Result) HasKind(kind ErrorKind) bool {
	for _, e := range r.errors {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// ValueResult is an outcome carrying a payload on success, or one or more typed
// errors on failure. The zero value is a success wrapping the zero value of T;
// use the constructors.
type ValueResult[T any] struct {
	value  T
	errors []Error
}

// Success returns a successful ValueResult wrapping value.
func Success[T any](value T) ValueResult[T] {
	return ValueResult[T]{value: value}
}

// Failure returns a failed ValueResult with the given errors. At least one
// error must be supplied.
func Failure[T any](errors ...Error) ValueResult[T] {
	if len(errors) == 0 {
		panic(&FatalError{Reason: "failed result requires at least one error"})
	}
	return ValueResult[T]{errors: copyErrors(errors)}
}

// FailureKind returns a failed ValueResult with a single error of the given kind.
func FailureKind[T any](kind ErrorKind) ValueResult[T] {
	return Failure[T](NewKindError(kind))
}

// IsSuccess reports whether the result carries no errors.
func (r ValueResult[T]) IsSuccess() bool {
	return len(r.errors) == 0
}

// IsFailure reports whether the result carries at least one error.
func (r ValueResult[T]) IsFailure() bool {
	return !r.IsSuccess()
}

// Value returns the payload and true on success, or the zero value and false
// on failure.
func (r ValueResult[T]) Value() (T, bool) {
	if r.IsFailure() {
		var zero T
		return zero, false
	}
	return r.value, true
}

// RequiredValue returns the payload of a successful result. Calling it on a
// failed result is a programming error and panics with a *FatalError,
// distinguishable from any domain failure.
func (r ValueResult[T]) RequiredValue() T {
	if r.IsFailure() {
		panic(&FatalError{Reason: "required value read from failed result", Errors: r.Errors()})
	}
	return r.value
}

// Errors returns the recorded errors in insertion order.
func (r ValueResult[T]) Errors() []Error {
	return copyErrors(r.errors)
}

// FirstError returns the first recorded error, if any.
func (r ValueResult[T]) FirstError() (Error, bool) {
	if len(r.errors) == 0 {
		return Error{}, false
	}
	return r.errors[0], true
}

// HasKind reports whether any recorded error has the given kind.
func (r ValueResult[T]) HasKind(kind ErrorKind) bool {
	for _, e := range r.errors {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// Plain drops the payload, returning the equivalent payload-free Result.
func (r ValueResult[T]) Plain() Result {
	return Result{errors: copyErrors(r.errors)}
}

// Cast converts a failed ValueResult[T] into a failed ValueResult[U],
// preserving the error list. It exists so a validation failure can be returned
// under a different declared payload type. Casting a successful result is a
// programming error and panics with a *FatalError.
func Cast[U, T any](r ValueResult[T]) ValueResult[U] {
	if r.IsSuccess() {
		panic(&FatalError{Reason: "cast of successful result"})
	}
	return ValueResult[U]{errors: copyErrors(r.errors)}
}

func copyErrors(errors []Error) []Error {
	if len(errors) == 0 {
		return nil
	}
	out := make([]Error, len(errors))
	copy(out, errors)
	return out
}
