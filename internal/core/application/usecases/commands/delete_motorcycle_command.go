package commands

import (
	"errors"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/guard"
)

var ErrDeleteMotorcycleByCodeCommandIsNotConstructed = errors.New(
	"DeleteMotorcycleByCodeCommand must be created via NewDeleteMotorcycleByCodeCommand constructor",
)

// DeleteMotorcycleByCodeCommand represents a request to remove a motorcycle
// from the fleet, identified by its business code.
type DeleteMotorcycleByCodeCommand struct {
	code kernel.CodeId

	guard guard.ConstructorGuard
}

// NewDeleteMotorcycleByCodeCommand creates a command to remove a motorcycle.
func NewDeleteMotorcycleByCodeCommand(code string) DeleteMotorcycleByCodeCommand {
	return DeleteMotorcycleByCodeCommand{
		code:  kernel.NewCodeId(code),
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c DeleteMotorcycleByCodeCommand) Validate() error {
	return c.guard.Validate(ErrDeleteMotorcycleByCodeCommandIsNotConstructed)
}

// Code returns the normalized business code from the command.
func (c DeleteMotorcycleByCodeCommand) Code() kernel.CodeId {
	return c.code
}
