package queries

import (
	"context"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetVehicleRentByIDQueryHandler retrieves one rental from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetVehicleRentByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetVehicleRentByIDQueryHandler creates a handler for single-rental
// queries. Requires a GORM database connection for query execution.
func NewGetVehicleRentByIDQueryHandler(db *gorm.DB) GetVehicleRentByIDQueryHandler {
	return GetVehicleRentByIDQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ObjectNotFoundError when no rental
// carries the identifier.
func (h GetVehicleRentByIDQueryHandler) Handle(
	ctx context.Context,
	query GetVehicleRentByIDQuery,
) (GetVehicleRentByIDQueryResponse, error) {
	var response GetVehicleRentByIDQueryResponse

	if err := query.Validate(); err != nil {
		return response, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			driver_id,
			vehicle_id,
			start_at,
			expected_ending_date,
			plan_days,
			daily_value,
			ended_at,
			created_at
		FROM vehicle_rents
		WHERE id = ?
	`, query.ID().Bytes()).Rows()
	if err != nil {
		return response, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return response, err
		}
		return response, errs.NewObjectNotFoundError("id", query.ID())
	}

	var id, driverID, vehicleID uuid.UUID
	err = rows.Scan(
		&id,
		&driverID,
		&vehicleID,
		&response.StartAt,
		&response.ExpectedEndingDate,
		&response.PlanDays,
		&response.DailyValue,
		&response.EndedAt,
		&response.CreatedAt,
	)
	if err != nil {
		return response, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return response, err
	}
	if response.DriverID, err = kernel.UUIDFromBytes(driverID[:]); err != nil {
		return response, err
	}
	if response.VehicleID, err = kernel.UUIDFromBytes(vehicleID[:]); err != nil {
		return response, err
	}

	return response, nil
}
