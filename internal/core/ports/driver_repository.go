package ports

import (
	"context"

	"rental/internal/core/domain/model/driver"
	"rental/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for delivery driver
// aggregates.
type DriverRepository interface {
	// Add persists a new driver aggregate to storage.
	Add(ctx context.Context, drv *driver.DeliveryDriver) error

	// GetByCode retrieves a driver by their business code.
	// Returns errs.ObjectNotFoundError when no driver carries the code.
	GetByCode(ctx context.Context, code kernel.CodeId) (*driver.DeliveryDriver, error)

	// ExistsByCode reports whether a driver already uses the business code.
	ExistsByCode(ctx context.Context, code kernel.CodeId) (bool, error)

	// ExistsByCnpj reports whether a driver is already registered under the
	// normalized CNPJ.
	ExistsByCnpj(ctx context.Context, cnpj string) (bool, error)

	// ExistsByCnhNumber reports whether a driver is already registered under
	// the normalized CNH number.
	ExistsByCnhNumber(ctx context.Context, cnhNumber string) (bool, error)

	// UpdateCnhImageURL stores the license image URL of an existing driver.
	UpdateCnhImageURL(ctx context.Context, id kernel.UUID, imageURL string) error
}
