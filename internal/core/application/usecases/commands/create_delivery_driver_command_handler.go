package commands

import (
	"context"

	"rental/internal/core/domain/model/driver"
	"rental/internal/pkg/results"
)

// CreateDeliveryDriverCommandHandler handles driver registration: builds the
// aggregate and enforces CNH number, business code and CNPJ uniqueness before
// persisting.
type CreateDeliveryDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewCreateDeliveryDriverCommandHandler creates a handler for driver
// registration.
func NewCreateDeliveryDriverCommandHandler(uowFactory DriverUoWFactory) CreateDeliveryDriverCommandHandler {
	return CreateDeliveryDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver creation command. Uniqueness is checked per
// attribute, in order: CNH number, business code, CNPJ. The first collision
// wins and is reported as a Conflict.
func (h *CreateDeliveryDriverCommandHandler) Handle(
	ctx context.Context,
	cmd CreateDeliveryDriverCommand,
) (results.ValueResult[*driver.DeliveryDriver], error) {
	var zero results.ValueResult[*driver.DeliveryDriver]

	if err := cmd.Validate(); err != nil {
		return zero, err
	}

	created := driver.Create(
		cmd.Code(), cmd.Name(), cmd.Cnpj(), cmd.BirthDate(),
		cmd.CnhNumber(), cmd.CnhCategory(), cmd.CnhImageURL())
	if created.IsFailure() {
		return created, nil
	}
	drv := created.RequiredValue()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return zero, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DriverRepository()

	cnhTaken, err := repo.ExistsByCnhNumber(ctx, drv.CnhNumber())
	if err != nil {
		return zero, err
	}
	if cnhTaken {
		return results.Failure[*driver.DeliveryDriver](
			results.NewError(results.Conflict, "cnh number already registered")), nil
	}

	codeTaken, err := repo.ExistsByCode(ctx, drv.Code())
	if err != nil {
		return zero, err
	}
	if codeTaken {
		return results.Failure[*driver.DeliveryDriver](
			results.NewError(results.Conflict, "driver code already registered")), nil
	}

	cnpjTaken, err := repo.ExistsByCnpj(ctx, drv.Cnpj())
	if err != nil {
		return zero, err
	}
	if cnpjTaken {
		return results.Failure[*driver.DeliveryDriver](
			results.NewError(results.Conflict, "cnpj already registered")), nil
	}

	if err = repo.Add(ctx, drv); err != nil {
		return zero, err
	}

	if err = uow.Commit(ctx); err != nil {
		return zero, err
	}

	return created, nil
}
