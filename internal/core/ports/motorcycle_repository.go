// Package ports defines the contracts between the rental core and its
// infrastructure: repositories, the unit of work, event publishing and file
// storage. These interfaces enable dependency inversion and testability.
package ports

import (
	"context"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/motorcycle"
)

// MotorcycleRepository defines the persistence contract for motorcycle
// aggregates.
type MotorcycleRepository interface {
	// Add persists a new motorcycle aggregate to storage.
	Add(ctx context.Context, moto *motorcycle.Motorcycle) error

	// GetByCode retrieves a motorcycle by its business code.
	// Returns errs.ObjectNotFoundError when no motorcycle carries the code.
	GetByCode(ctx context.Context, code kernel.CodeId) (*motorcycle.Motorcycle, error)

	// ExistsByPlacaOrCode reports whether any motorcycle already uses the
	// given plate or business code. Used to enforce uniqueness before Add.
	ExistsByPlacaOrCode(ctx context.Context, placa string, code kernel.CodeId) (bool, error)

	// UpdatePlaca changes the stored plate of an existing motorcycle.
	UpdatePlaca(ctx context.Context, id kernel.UUID, placa string) error

	// Delete removes a motorcycle from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}
