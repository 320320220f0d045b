package commands

import (
	"context"
	"errors"

	"rental/internal/core/domain/model/rent"
	"rental/internal/pkg/errs"
	"rental/internal/pkg/results"
)

// ReturnVehicleRentCommandHandler handles motorcycle devolutions. Only the
// ending date is written back; the rest of the rental row stays untouched.
type ReturnVehicleRentCommandHandler struct {
	uowFactory RentalUoWFactory
}

// NewReturnVehicleRentCommandHandler creates a handler for devolutions.
func NewReturnVehicleRentCommandHandler(uowFactory RentalUoWFactory) ReturnVehicleRentCommandHandler {
	return ReturnVehicleRentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the devolution command. A late devolution is accepted; the
// rental is simply recorded as having ended after its expected date.
func (h *ReturnVehicleRentCommandHandler) Handle(
	ctx context.Context,
	cmd ReturnVehicleRentCommand,
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

	repo := uow.RentRepository()

	current, err := repo.GetByID(ctx, cmd.RentID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return results.FailureKind[*rent.VehicleRent](results.NotFound), nil
		}
		return zero, err
	}

	finished := current.Finish(cmd.EndedAt())
	if finished.IsFailure() {
		return finished, nil
	}
	updated := finished.RequiredValue()

	if err = repo.SetEndedAt(ctx, updated.ID(), *updated.EndedAt()); err != nil {
		return zero, err
	}

	if err = uow.Commit(ctx); err != nil {
		return zero, err
	}

	return finished, nil
}
