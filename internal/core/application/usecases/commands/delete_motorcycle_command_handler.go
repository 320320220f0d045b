package commands

import (
	"context"
	"errors"

	"rental/internal/pkg/errs"
	"rental/internal/pkg/results"
)

// DeleteMotorcycleByCodeCommandHandler handles motorcycle removal.
type DeleteMotorcycleByCodeCommandHandler struct {
	uowFactory MotorcycleUoWFactory
}

// NewDeleteMotorcycleByCodeCommandHandler creates a handler for motorcycle
// removal.
func NewDeleteMotorcycleByCodeCommandHandler(uowFactory MotorcycleUoWFactory) DeleteMotorcycleByCodeCommandHandler {
	return DeleteMotorcycleByCodeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal command. An unknown code is reported as
// NotFound in the result.
func (h *DeleteMotorcycleByCodeCommandHandler) Handle(
	ctx context.Context,
	cmd DeleteMotorcycleByCodeCommand,
) (results.Result, error) {
	var zero results.Result

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
			return results.FailKind(results.NotFound), nil
		}
		return zero, err
	}

	if err = repo.Delete(ctx, moto.ID()); err != nil {
		return zero, err
	}

	if err = uow.Commit(ctx); err != nil {
		return zero, err
	}

	return results.Succeed(), nil
}
