package commands

import (
	"errors"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/guard"
)

var ErrCreateVehicleRentCommandIsNotConstructed = errors.New(
	"CreateVehicleRentCommand must be created via NewCreateVehicleRentCommand constructor",
)

// CreateVehicleRentCommand represents a request to rent a motorcycle. Driver
// and vehicle are identified by their business codes; the period and plan are
// validated by the rent factory.
type CreateVehicleRentCommand struct {
	driverCode         kernel.CodeId
	vehicleCode        kernel.CodeId
	startAt            time.Time
	expectedEndingDate time.Time
	planDays           int

	guard guard.ConstructorGuard
}

// NewCreateVehicleRentCommand creates a command to rent a motorcycle.
func NewCreateVehicleRentCommand(
	driverCode string,
	vehicleCode string,
	startAt time.Time,
	expectedEndingDate time.Time,
	planDays int,
) CreateVehicleRentCommand {
	return CreateVehicleRentCommand{
		driverCode:         kernel.NewCodeId(driverCode),
		vehicleCode:        kernel.NewCodeId(vehicleCode),
		startAt:            startAt,
		expectedEndingDate: expectedEndingDate,
		planDays:           planDays,
		guard:              guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c CreateVehicleRentCommand) Validate() error {
	return c.guard.Validate(ErrCreateVehicleRentCommandIsNotConstructed)
}

// DriverCode returns the normalized driver code from the command.
func (c CreateVehicleRentCommand) DriverCode() kernel.CodeId {
	return c.driverCode
}

// VehicleCode returns the normalized vehicle code from the command.
func (c CreateVehicleRentCommand) VehicleCode() kernel.CodeId {
	return c.vehicleCode
}

// StartAt returns the requested rental start from the command.
func (c CreateVehicleRentCommand) StartAt() time.Time {
	return c.startAt
}

// ExpectedEndingDate returns the requested expected ending from the command.
func (c CreateVehicleRentCommand) ExpectedEndingDate() time.Time {
	return c.expectedEndingDate
}

// PlanDays returns the requested plan length from the command.
func (c CreateVehicleRentCommand) PlanDays() int {
	return c.planDays
}
