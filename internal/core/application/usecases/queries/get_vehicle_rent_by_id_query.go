package queries

import (
	"errors"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetVehicleRentByIDQueryIsNotConstructed = errors.New(
	"GetVehicleRentByIDQuery must be created via NewGetVehicleRentByIDQuery constructor",
)

// GetVehicleRentByIDQuery retrieves a single rental by its identifier.
type GetVehicleRentByIDQuery struct {
	id kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetVehicleRentByIDQuery creates a query for one rental.
func NewGetVehicleRentByIDQuery(id kernel.UUID) (GetVehicleRentByIDQuery, error) {
	if err := id.Validate(); err != nil {
		return GetVehicleRentByIDQuery{}, err
	}

	return GetVehicleRentByIDQuery{
		id:    id,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetVehicleRentByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetVehicleRentByIDQueryIsNotConstructed)
}

// ID returns the rental identifier from the query.
func (q GetVehicleRentByIDQuery) ID() kernel.UUID {
	return q.id
}

// GetVehicleRentByIDQueryResponse represents one rental in the read model.
// EndedAt is nil while the rental is still running.
type GetVehicleRentByIDQueryResponse struct {
	ID                 kernel.UUID
	DriverID           kernel.UUID
	VehicleID          kernel.UUID
	StartAt            time.Time
	ExpectedEndingDate time.Time
	PlanDays           int
	DailyValue         decimal.Decimal
	EndedAt            *time.Time
	CreatedAt          time.Time
}
