package queries

import (
	"context"

	"rental/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListDeliveryDriversQueryHandler retrieves driver information from the
// database. Uses direct SQL queries for optimal read performance in the CQRS
// pattern.
type ListDeliveryDriversQueryHandler struct {
	db *gorm.DB
}

// NewListDeliveryDriversQueryHandler creates a handler for driver queries.
// Requires a GORM database connection for query execution.
func NewListDeliveryDriversQueryHandler(db *gorm.DB) ListDeliveryDriversQueryHandler {
	return ListDeliveryDriversQueryHandler{db: db}
}

// Handle executes the query to retrieve all drivers, sorted by code.
func (h ListDeliveryDriversQueryHandler) Handle(
	ctx context.Context,
	query ListDeliveryDriversQuery,
) ([]ListDeliveryDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drivers := make([]ListDeliveryDriversQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			code,
			name,
			cnpj,
			birth_date,
			cnh_number,
			cnh_category,
			cnh_image_url,
			created_at
		FROM delivery_drivers
		ORDER BY code
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var drv ListDeliveryDriversQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&drv.Code,
			&drv.Name,
			&drv.Cnpj,
			&drv.BirthDate,
			&drv.CnhNumber,
			&drv.CnhCategory,
			&drv.CnhImageURL,
			&drv.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		driverID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		drv.ID = driverID
		drivers = append(drivers, drv)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}
