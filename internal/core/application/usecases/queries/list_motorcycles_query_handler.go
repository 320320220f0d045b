package queries

import (
	"context"

	"rental/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListMotorcyclesQueryHandler retrieves fleet information from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type ListMotorcyclesQueryHandler struct {
	db *gorm.DB
}

// NewListMotorcyclesQueryHandler creates a handler for fleet queries.
// Requires a GORM database connection for query execution.
func NewListMotorcyclesQueryHandler(db *gorm.DB) ListMotorcyclesQueryHandler {
	return ListMotorcyclesQueryHandler{db: db}
}

// Handle executes the query. Returns motorcycles sorted by code, narrowed by
// the normalized filters when they are set.
func (h ListMotorcyclesQueryHandler) Handle(
	ctx context.Context,
	query ListMotorcyclesQuery,
) ([]ListMotorcyclesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			code,
			placa,
			model,
			year,
			created_at
		FROM motorcycles
		WHERE 1 = 1
	`
	args := make([]any, 0, 2)

	if code, ok := query.Code(); ok {
		sql += " AND code = ?"
		args = append(args, code.String())
	}
	if placa, ok := query.Placa(); ok {
		sql += " AND placa = ?"
		args = append(args, placa)
	}
	sql += " ORDER BY code"

	motorcycles := make([]ListMotorcyclesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var moto ListMotorcyclesQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&moto.Code,
			&moto.Placa,
			&moto.Model,
			&moto.Year,
			&moto.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		motoID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		moto.ID = motoID
		motorcycles = append(motorcycles, moto)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return motorcycles, nil
}
