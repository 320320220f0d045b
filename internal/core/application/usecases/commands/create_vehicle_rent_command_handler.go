package commands

import (
	"context"
	"errors"

	"rental/internal/core/domain/model/rent"
	"rental/internal/pkg/errs"
	"rental/internal/pkg/results"
)

// CreateVehicleRentCommandHandler handles the rental workflow: resolve the
// vehicle and the driver, validate the period against the plan, check the
// driver's license category, check for booking conflicts and persist.
//
// The conflict check runs inside the same transaction as the insert, with the
// vehicle's existing rentals locked, so two concurrent requests for the same
// vehicle cannot both pass it.
type CreateVehicleRentCommandHandler struct {
	uowFactory RentalUoWFactory
}

// NewCreateVehicleRentCommandHandler creates a handler for the rental
// workflow.
func NewCreateVehicleRentCommandHandler(uowFactory RentalUoWFactory) CreateVehicleRentCommandHandler {
	return CreateVehicleRentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rental command. Workflow failures short-circuit in
// order: unknown vehicle, unknown driver, invalid period or plan, driver not
// licensed for motorcycles, booking conflict.
func (h *CreateVehicleRentCommandHandler) Handle(
	ctx context.Context,
	cmd CreateVehicleRentCommand,
) (results.ValueResult[*rent.VehicleRent], error) {
	var zero results.ValueResult[*rent.VehicleRent]

	if err := cmd.Validate(); err != nil {
		return zero, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return zero, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	moto, err := uow.MotorcycleRepository().GetByCode(ctx, cmd.VehicleCode())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return results.Failure[*rent.VehicleRent](
				results.NewError(results.NotFound, "vehicle not found")), nil
		}
		return zero, err
	}

	drv, err := uow.DriverRepository().GetByCode(ctx, cmd.DriverCode())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return results.Failure[*rent.VehicleRent](
				results.NewError(results.NotFound, "driver not found")), nil
		}
		return zero, err
	}

	created := rent.Create(
		drv.ID(), moto.ID(), cmd.StartAt(), cmd.ExpectedEndingDate(), cmd.PlanDays(), nil)
	if created.IsFailure() {
		return created, nil
	}
	newRent := created.RequiredValue()

	if !drv.CanOperateMotorcycle() {
		return results.FailureKind[*rent.VehicleRent](results.DriverHasInsufficientCategory), nil
	}

	rentRepo := uow.RentRepository()

	existing, err := rentRepo.GetForVehicleLocked(ctx, moto.ID())
	if err != nil {
		return zero, err
	}
	for _, r := range existing {
		if r.ConflictsWith(newRent.StartAt(), newRent.ExpectedEndingDate()) {
			return results.Failure[*rent.VehicleRent](
				results.NewError(results.Conflict, "vehicle is already rented in this period")), nil
		}
	}

	if err = rentRepo.Add(ctx, newRent); err != nil {
		return zero, err
	}

	if err = uow.Commit(ctx); err != nil {
		return zero, err
	}

	return created, nil
}
