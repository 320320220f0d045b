package commands

import (
	"errors"

	"rental/internal/pkg/guard"
)

var ErrCreateMotorcycleCommandIsNotConstructed = errors.New(
	"CreateMotorcycleCommand must be created via NewCreateMotorcycleCommand constructor",
)

// CreateMotorcycleCommand represents a request to register a new motorcycle
// in the rental fleet. The fields carry the raw client input; normalization
// and validation happen in the motorcycle factory so every violation is
// reported with its error kind.
type CreateMotorcycleCommand struct {
	code  string
	placa string
	model string
	year  int

	guard guard.ConstructorGuard
}

// NewCreateMotorcycleCommand creates a command to register a new motorcycle.
func NewCreateMotorcycleCommand(code, placa, model string, year int) CreateMotorcycleCommand {
	return CreateMotorcycleCommand{
		code:  code,
		placa: placa,
		model: model,
		year:  year,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c CreateMotorcycleCommand) Validate() error {
	return c.guard.Validate(ErrCreateMotorcycleCommandIsNotConstructed)
}

// Code returns the raw business code from the command.
func (c CreateMotorcycleCommand) Code() string {
	return c.code
}

// Placa returns the raw license plate from the command.
func (c CreateMotorcycleCommand) Placa() string {
	return c.placa
}

// Model returns the raw model name from the command.
func (c CreateMotorcycleCommand) Model() string {
	return c.model
}

// Year returns the manufacturing year from the command.
func (c CreateMotorcycleCommand) Year() int {
	return c.year
}
