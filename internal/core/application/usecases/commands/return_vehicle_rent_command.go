package commands

import (
	"errors"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/guard"
)

var ErrReturnVehicleRentCommandIsNotConstructed = errors.New(
	"ReturnVehicleRentCommand must be created via NewReturnVehicleRentCommand constructor",
)

// ReturnVehicleRentCommand represents a request to register the devolution of
// a rented motorcycle.
type ReturnVehicleRentCommand struct {
	rentID  kernel.UUID
	endedAt time.Time

	guard guard.ConstructorGuard
}

// NewReturnVehicleRentCommand creates a command to register a devolution.
func NewReturnVehicleRentCommand(rentID kernel.UUID, endedAt time.Time) (ReturnVehicleRentCommand, error) {
	if err := rentID.Validate(); err != nil {
		return ReturnVehicleRentCommand{}, err
	}

	return ReturnVehicleRentCommand{
		rentID:  rentID,
		endedAt: endedAt,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReturnVehicleRentCommand) Validate() error {
	return c.guard.Validate(ErrReturnVehicleRentCommandIsNotConstructed)
}

// RentID returns the rental identifier from the command.
func (c ReturnVehicleRentCommand) RentID() kernel.UUID {
	return c.rentID
}

// EndedAt returns the devolution instant from the command.
func (c ReturnVehicleRentCommand) EndedAt() time.Time {
	return c.endedAt
}
