package driverrepo

import (
	"context"
	"errors"

	"rental/internal/core/domain/model/driver"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDriverRepository implements DriverRepository using GORM.
type GormDriverRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDriverRepository creates a new GORM driver repository.
func NewGormDriverRepository(db *gorm.DB, tracker aggregateTracker) *GormDriverRepository {
	return &GormDriverRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery driver to the database.
func (r *GormDriverRepository) Add(ctx context.Context, aggregate *driver.DeliveryDriver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByCode retrieves a delivery driver by their business code.
func (r *GormDriverRepository) GetByCode(ctx context.Context, code kernel.CodeId) (*driver.DeliveryDriver, error) {
	if code.IsEmpty() {
		return nil, errs.NewValueIsRequiredError("code")
	}

	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", code.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsByCode reports whether a driver already uses the business code.
func (r *GormDriverRepository) ExistsByCode(ctx context.Context, code kernel.CodeId) (bool, error) {
	return r.exists(ctx, "code = ?", code.String())
}

// ExistsByCnpj reports whether a driver is already registered under the
// normalized CNPJ.
func (r *GormDriverRepository) ExistsByCnpj(ctx context.Context, cnpj string) (bool, error) {
	return r.exists(ctx, "cnpj = ?", cnpj)
}

// ExistsByCnhNumber reports whether a driver is already registered under the
// normalized CNH number.
func (r *GormDriverRepository) ExistsByCnhNumber(ctx context.Context, cnhNumber string) (bool, error) {
	return r.exists(ctx, "cnh_number = ?", cnhNumber)
}

// UpdateCnhImageURL stores the license image URL of an existing driver.
func (r *GormDriverRepository) UpdateCnhImageURL(ctx context.Context, id kernel.UUID, imageURL string) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&DriverDTO{}).
		Where("id = ?", id.Bytes()).
		Update("cnh_image_url", imageURL)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("driver", id.String())
	}

	return nil
}

func (r *GormDriverRepository) exists(ctx context.Context, condition string, value string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&DriverDTO{}).
		Where(condition, value).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
