package guard_test

import (
	"errors"
	"testing"

	"rental/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNotConstructed = errors.New("thing must be created via NewThing")

type thing struct {
	guard guard.ConstructorGuard
}

func newThing() thing {
	return thing{guard: guard.NewConstructorGuard()}
}

func TestConstructorGuard(t *testing.T) {
	t.Run("constructed object passes validation", func(t *testing.T) {
		th := newThing()
		require.NoError(t, th.guard.Validate(errNotConstructed))
	})

	t.Run("zero value fails with the supplied error", func(t *testing.T) {
		var th thing
		err := th.guard.Validate(errNotConstructed)
		require.ErrorIs(t, err, errNotConstructed)
	})

	t.Run("zero value with nil error falls back to the default", func(t *testing.T) {
		var g guard.ConstructorGuard
		err := g.Validate(nil)
		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
	})

	t.Run("guard is copied by value", func(t *testing.T) {
		original := newThing()
		copied := original
		assert.NoError(t, copied.guard.Validate(errNotConstructed))
	})
}
