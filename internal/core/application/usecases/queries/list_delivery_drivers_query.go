package queries

import (
	"errors"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/guard"
)

var ErrListDeliveryDriversQueryIsNotConstructed = errors.New(
	"ListDeliveryDriversQuery must be created via NewListDeliveryDriversQuery constructor",
)

// ListDeliveryDriversQuery retrieves all registered delivery drivers.
type ListDeliveryDriversQuery struct {
	guard guard.ConstructorGuard
}

// NewListDeliveryDriversQuery creates a query to retrieve all drivers.
func NewListDeliveryDriversQuery() ListDeliveryDriversQuery {
	return ListDeliveryDriversQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListDeliveryDriversQuery) Validate() error {
	return q.guard.Validate(ErrListDeliveryDriversQueryIsNotConstructed)
}

// ListDeliveryDriversQueryResponse represents one driver in the read model.
// CnhImageURL is nil for drivers who have not attached a license image yet.
type ListDeliveryDriversQueryResponse struct {
	ID          kernel.UUID
	Code        string
	Name        string
	Cnpj        string
	BirthDate   time.Time
	CnhNumber   string
	CnhCategory string
	CnhImageURL *string
	CreatedAt   time.Time
}
