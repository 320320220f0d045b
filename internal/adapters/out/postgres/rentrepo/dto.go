// Package rentrepo provides data transfer objects and mapping functions for
// vehicle rental persistence. This package implements the repository pattern
// for the rental aggregate, handling the conversion between domain entities
// and database representations.
package rentrepo

import (
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/rent"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RentDTO represents the database structure for persisting vehicle rental
// aggregates. DailyValue is the rate frozen at creation time; rows created
// under older price tables keep their original rate.
type RentDTO struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	DriverID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	VehicleID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	StartAt            time.Time       `gorm:"not null"`
	ExpectedEndingDate time.Time       `gorm:"not null"`
	PlanDays           int             `gorm:"type:int;not null"`
	DailyValue         decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	EndedAt            *time.Time
	CreatedAt          time.Time `gorm:"not null"`
}

// TableName specifies the database table name for vehicle rental entities.
func (RentDTO) TableName() string {
	return "vehicle_rents"
}

// fromDomain converts a rental domain aggregate to its database
// representation.
func fromDomain(r *rent.VehicleRent) RentDTO {
	var endedAt *time.Time
	if r.EndedAt() != nil {
		raw := *r.EndedAt()
		endedAt = &raw
	}

	return RentDTO{
		ID:                 r.ID().Bytes(),
		DriverID:           r.DriverID().Bytes(),
		VehicleID:          r.VehicleID().Bytes(),
		StartAt:            r.StartAt(),
		ExpectedEndingDate: r.ExpectedEndingDate(),
		PlanDays:           r.PlanDays(),
		DailyValue:         r.DailyValue(),
		EndedAt:            endedAt,
		CreatedAt:          r.CreatedAt(),
	}
}

// toDomain converts a database DTO to a rental domain aggregate using
// RestoreVehicleRent, which keeps the stored daily rate.
func toDomain(dto RentDTO) (*rent.VehicleRent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}

	return rent.RestoreVehicleRent(
		id,
		driverID,
		vehicleID,
		dto.StartAt,
		dto.ExpectedEndingDate,
		dto.PlanDays,
		dto.DailyValue,
		dto.EndedAt,
		dto.CreatedAt,
	)
}
