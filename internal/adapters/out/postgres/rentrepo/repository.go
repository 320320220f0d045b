package rentrepo

import (
	"context"
	"errors"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/rent"
	"rental/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRentRepository implements RentRepository using GORM.
type GormRentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRentRepository creates a new GORM rental repository.
func NewGormRentRepository(db *gorm.DB, tracker aggregateTracker) *GormRentRepository {
	return &GormRentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new vehicle rental to the database.
func (r *GormRentRepository) Add(ctx context.Context, aggregate *rent.VehicleRent) error {
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

// GetByID retrieves a vehicle rental by its unique identifier.
func (r *GormRentRepository) GetByID(ctx context.Context, id kernel.UUID) (*rent.VehicleRent, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rent", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForVehicleLocked retrieves every rental of a vehicle with SELECT FOR
// UPDATE. The row locks last until the surrounding transaction ends, so two
// concurrent bookings of the same vehicle serialize on the conflict check.
func (r *GormRentRepository) GetForVehicleLocked(ctx context.Context, vehicleID kernel.UUID) ([]*rent.VehicleRent, error) {
	if err := vehicleID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RentDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("vehicle_id = ?", vehicleID.Bytes()).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainSlice(dtos)
}

// SetEndedAt stores the actual ending instant of an existing rental.
func (r *GormRentRepository) SetEndedAt(ctx context.Context, id kernel.UUID, endedAt time.Time) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&RentDTO{}).
		Where("id = ?", id.Bytes()).
		Update("ended_at", endedAt)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("rent", id.String())
	}

	return nil
}

// GetOverdue retrieves rentals that are still running past their expected
// ending date at the reference instant.
func (r *GormRentRepository) GetOverdue(ctx context.Context, now time.Time) ([]*rent.VehicleRent, error) {
	var dtos []RentDTO
	err := r.db.WithContext(ctx).
		Where("ended_at IS NULL AND expected_ending_date < ?", now).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainSlice(dtos)
}

func (r *GormRentRepository) toDomainSlice(dtos []RentDTO) ([]*rent.VehicleRent, error) {
	rents := make([]*rent.VehicleRent, 0, len(dtos))
	for _, dto := range dtos {
		current, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		rents = append(rents, current)
	}

	return rents, nil
}
