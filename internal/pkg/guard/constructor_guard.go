// Package guard provides a defensive-construction marker for value objects,
// entities, and commands. Embedding a ConstructorGuard lets a type distinguish
// instances built through its constructor from zero values, so invariants
// established at construction time cannot be bypassed.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is
// supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value
// fails validation; only NewConstructorGuard produces a passing guard.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking its holder as constructed.
// Call it inside the type's constructor, never elsewhere.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the holder was built through its constructor,
// otherwise the supplied error (or ErrDefaultConstructorGuard when nil).
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
