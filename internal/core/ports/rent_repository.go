package ports

import (
	"context"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/rent"
)

// RentRepository defines the persistence contract for vehicle rental
// aggregates.
type RentRepository interface {
	// Add persists a new rental aggregate to storage.
	Add(ctx context.Context, r *rent.VehicleRent) error

	// GetByID retrieves a rental by its unique identifier.
	// Returns errs.ObjectNotFoundError when no rental matches.
	GetByID(ctx context.Context, id kernel.UUID) (*rent.VehicleRent, error)

	// GetForVehicleLocked retrieves every rental of a vehicle while holding
	// row locks until the surrounding transaction ends. Used by the booking
	// conflict check so two concurrent rentals of the same vehicle cannot
	// both pass it.
	GetForVehicleLocked(ctx context.Context, vehicleID kernel.UUID) ([]*rent.VehicleRent, error)

	// SetEndedAt stores the actual ending instant of an existing rental.
	SetEndedAt(ctx context.Context, id kernel.UUID, endedAt time.Time) error

	// GetOverdue retrieves rentals that are still running past their
	// expected ending date at the reference instant.
	GetOverdue(ctx context.Context, now time.Time) ([]*rent.VehicleRent, error)
}
