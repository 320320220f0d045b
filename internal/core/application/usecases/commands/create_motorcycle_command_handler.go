package commands

import (
	"context"
	"time"

	"rental/internal/core/domain/model/motorcycle"
	"rental/internal/core/ports"
	"rental/internal/pkg/results"
)

// MotorcycleCreatedEventType identifies the integration event published when
// a motorcycle joins the fleet.
const MotorcycleCreatedEventType = "motorcycle.created"

// MotorcycleCreatedEvent is the payload of the motorcycle.created event.
// Consumers use it to keep their own views of the fleet, such as the
// registry of motorcycles manufactured in a given year.
type MotorcycleCreatedEvent struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Placa     string    `json:"placa"`
	Model     string    `json:"model"`
	Year      int       `json:"year"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateMotorcycleCommandHandler handles motorcycle registration: builds the
// aggregate, enforces plate and code uniqueness, persists and publishes the
// creation event.
type CreateMotorcycleCommandHandler struct {
	uowFactory MotorcycleUoWFactory
	publisher  ports.EventPublisher
}

// NewCreateMotorcycleCommandHandler creates a handler for motorcycle
// registration.
func NewCreateMotorcycleCommandHandler(
	uowFactory MotorcycleUoWFactory,
	publisher ports.EventPublisher,
) CreateMotorcycleCommandHandler {
	return CreateMotorcycleCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the motorcycle creation command. Domain rule violations
// come back in the result; infrastructure faults come back as a plain error.
// The creation event is published inside the transaction, so a broker outage
// rolls the registration back rather than losing the event.
func (h *CreateMotorcycleCommandHandler) Handle(
	ctx context.Context,
	cmd CreateMotorcycleCommand,
) (results.ValueResult[*motorcycle.Motorcycle], error) {
	var zero results.ValueResult[*motorcycle.Motorcycle]

	if err := cmd.Validate(); err != nil {
		return zero, err
	}

	created := motorcycle.Create(cmd.Code(), cmd.Placa(), cmd.Model(), cmd.Year())
	if created.IsFailure() {
		return created, nil
	}
	moto := created.RequiredValue()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return zero, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.MotorcycleRepository()

	taken, err := repo.ExistsByPlacaOrCode(ctx, moto.Placa(), moto.Code())
	if err != nil {
		return zero, err
	}
	if taken {
		return results.FailureKind[*motorcycle.Motorcycle](results.Conflict), nil
	}

	if err = repo.Add(ctx, moto); err != nil {
		return zero, err
	}

	event := MotorcycleCreatedEvent{
		ID:        moto.ID().String(),
		Code:      moto.Code().String(),
		Placa:     moto.Placa(),
		Model:     moto.Model(),
		Year:      moto.Year(),
		CreatedAt: moto.CreatedAt(),
	}
	if err = h.publisher.Publish(ctx, MotorcycleCreatedEventType, event); err != nil {
		return zero, err
	}

	if err = uow.Commit(ctx); err != nil {
		return zero, err
	}

	return created, nil
}
