package motorcyclerepo

import (
	"context"
	"errors"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/motorcycle"
	"rental/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMotorcycleRepository implements MotorcycleRepository using GORM.
type GormMotorcycleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMotorcycleRepository creates a new GORM motorcycle repository.
func NewGormMotorcycleRepository(db *gorm.DB, tracker aggregateTracker) *GormMotorcycleRepository {
	return &GormMotorcycleRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new motorcycle to the database.
func (r *GormMotorcycleRepository) Add(ctx context.Context, aggregate *motorcycle.Motorcycle) error {
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

// GetByCode retrieves a motorcycle by its business code.
func (r *GormMotorcycleRepository) GetByCode(ctx context.Context, code kernel.CodeId) (*motorcycle.Motorcycle, error) {
	if code.IsEmpty() {
		return nil, errs.NewValueIsRequiredError("code")
	}

	var dto MotorcycleDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("motorcycle", code.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsByPlacaOrCode reports whether any motorcycle already uses the given
// plate or business code.
func (r *GormMotorcycleRepository) ExistsByPlacaOrCode(ctx context.Context, placa string, code kernel.CodeId) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&MotorcycleDTO{}).
		Where("placa = ? OR code = ?", placa, code.String()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// UpdatePlaca changes the stored plate of an existing motorcycle.
func (r *GormMotorcycleRepository) UpdatePlaca(ctx context.Context, id kernel.UUID, placa string) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&MotorcycleDTO{}).
		Where("id = ?", id.Bytes()).
		Update("placa", placa)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("motorcycle", id.String())
	}

	return nil
}

// Delete removes a motorcycle from the database.
func (r *GormMotorcycleRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&MotorcycleDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("motorcycle", id.String())
	}

	return nil
}
