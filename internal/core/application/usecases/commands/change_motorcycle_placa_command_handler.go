package commands

import (
	"context"
	"errors"

	"rental/internal/core/domain/model/motorcycle"
	"rental/internal/pkg/errs"
	"rental/internal/pkg/results"
)

// ChangeMotorcyclePlacaCommandHandler handles license plate changes. The new
// plate is validated on a copy of the aggregate before the targeted update,
// so an invalid plate never touches storage.
type ChangeMotorcyclePlacaCommandHandler struct {
	uowFactory MotorcycleUoWFactory
}

// NewChangeMotorcyclePlacaCommandHandler creates a handler for plate changes.
func NewChangeMotorcyclePlacaCommandHandler(uowFactory MotorcycleUoWFactory) ChangeMotorcyclePlacaCommandHandler {
	return ChangeMotorcyclePlacaCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the plate change command.
func (h *ChangeMotorcyclePlacaCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeMotorcyclePlacaCommand,
) (results.ValueResult[*motorcycle.Motorcycle], error) {
	var zero results.ValueResult[*motorcycle.Motorcycle]

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

	repo := uow.MotorcycleRepository()

	moto, err := repo.GetByCode(ctx, cmd.Code())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return results.FailureKind[*motorcycle.Motorcycle](results.NotFound), nil
		}
		return zero, err
	}

	changed := moto.WithPlaca(cmd.Placa())
	if changed.IsFailure() {
		return changed, nil
	}
	updated := changed.RequiredValue()

	if err = repo.UpdatePlaca(ctx, updated.ID(), updated.Placa()); err != nil {
		return zero, err
	}

	if err = uow.Commit(ctx); err != nil {
		return zero, err
	}

	return changed, nil
}
