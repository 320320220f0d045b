package commands

import (
	"errors"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/guard"
)

var ErrChangeMotorcyclePlacaCommandIsNotConstructed = errors.New(
	"ChangeMotorcyclePlacaCommand must be created via NewChangeMotorcyclePlacaCommand constructor",
)

// ChangeMotorcyclePlacaCommand represents a request to change the license
// plate of a motorcycle identified by its business code.
type ChangeMotorcyclePlacaCommand struct {
	code  kernel.CodeId
	placa string

	guard guard.ConstructorGuard
}

// NewChangeMotorcyclePlacaCommand creates a command to change a motorcycle's
// plate. The code is normalized; the plate is carried raw and validated by
// the aggregate.
func NewChangeMotorcyclePlacaCommand(code, placa string) ChangeMotorcyclePlacaCommand {
	return ChangeMotorcyclePlacaCommand{
		code:  kernel.NewCodeId(code),
		placa: placa,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ChangeMotorcyclePlacaCommand) Validate() error {
	return c.guard.Validate(ErrChangeMotorcyclePlacaCommandIsNotConstructed)
}

// Code returns the normalized business code from the command.
func (c ChangeMotorcyclePlacaCommand) Code() kernel.CodeId {
	return c.code
}

// Placa returns the raw license plate from the command.
func (c ChangeMotorcyclePlacaCommand) Placa() string {
	return c.placa
}
