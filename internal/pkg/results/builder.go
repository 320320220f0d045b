package results

// Builder accumulates validation failures for a value of type T.
//
// Unlike workflow-level checks, builder checks never short-circuit: every
// AddIf is evaluated, so a caller sees all violated rules at once. When every
// check has run, CreateResult either returns the accumulated failure or invokes
// the factory and wraps its output as a success.
//
// Example:
//
//	b := results.NewBuilder[*Motorcycle]()
//	b.AddIf(year < 1900, results.InvalidYear)
//	b.AddIf(len(placa) != 7, results.InvalidPlate)
//	return b.CreateResult(func() *Motorcycle { ... })
type Builder[T any] struct {
	errors []Error
}

// NewBuilder creates an empty Builder.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{}
}

// AddIf records an error of the given kind when condition holds.
// It never short-circuits; independent checks all get evaluated.
func (b *Builder[T]) AddIf(condition bool, kind ErrorKind) {
	if condition {
		b.errors = append(b.errors, NewKindError(kind))
	}
}

// AddIfMessage records an error with an explicit message when condition holds.
func (b *Builder[T]) AddIfMessage(condition bool, kind ErrorKind, message string) {
	if condition {
		b.errors = append(b.errors, NewError(kind, message))
	}
}

// Add unconditionally records an error of the given kind.
func (b *Builder[T]) Add(kind ErrorKind) {
	b.errors = append(b.errors, NewKindError(kind))
}

// HasErrors reports whether any check has failed so far.
func (b *Builder[T]) HasErrors() bool {
	return len(b.errors) > 0
}

// Errors returns the accumulated errors in insertion order.
func (b *Builder[T]) Errors() []Error {
	return copyErrors(b.errors)
}

// CreateResult finishes the builder. If any error was accumulated it returns a
// failure carrying all of them, without invoking factory. Otherwise it invokes
// factory and wraps its output as a success; should factory panic, the fault is
// converted into a single generic failure instead of propagating.
func (b *Builder[T]) CreateResult(factory func() T) (result ValueResult[T]) {
	if len(b.errors) > 0 {
		return Failure[T](b.errors...)
	}

	defer func() {
		if recover() != nil {
			result = Failure[T](NewError(DefaultErrorKind, "failed to build result"))
		}
	}()

	return Success(factory())
}
