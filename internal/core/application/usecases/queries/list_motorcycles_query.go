// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/motorcycle"
	"rental/internal/pkg/guard"
)

var ErrListMotorcyclesQueryIsNotConstructed = errors.New(
	"ListMotorcyclesQuery must be created via NewListMotorcyclesQuery constructor",
)

// ListMotorcyclesQuery retrieves the fleet, optionally filtered by business
// code or license plate. Filters are normalized the same way the aggregate
// normalizes them, so clients can pass formatted values.
type ListMotorcyclesQuery struct {
	code     kernel.CodeId
	hasCode  bool
	placa    string
	hasPlaca bool

	guard guard.ConstructorGuard
}

// NewListMotorcyclesQuery creates a query over the fleet. Empty filter values
// mean no filtering. A plate filter that does not normalize to a valid plate
// matches nothing.
func NewListMotorcyclesQuery(codeFilter, placaFilter string) ListMotorcyclesQuery {
	return ListMotorcyclesQuery{
		code:     kernel.NewCodeId(codeFilter),
		hasCode:  codeFilter != "",
		placa:    motorcycle.NormalizePlaca(placaFilter),
		hasPlaca: placaFilter != "",
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListMotorcyclesQuery) Validate() error {
	return q.guard.Validate(ErrListMotorcyclesQueryIsNotConstructed)
}

// Code returns the normalized code filter and whether it is set.
func (q ListMotorcyclesQuery) Code() (kernel.CodeId, bool) {
	return q.code, q.hasCode
}

// Placa returns the normalized plate filter and whether it is set.
func (q ListMotorcyclesQuery) Placa() (string, bool) {
	return q.placa, q.hasPlaca
}

// ListMotorcyclesQueryResponse represents one motorcycle in the read model.
type ListMotorcyclesQueryResponse struct {
	ID        kernel.UUID
	Code      string
	Placa     string
	Model     string
	Year      int
	CreatedAt time.Time
}
