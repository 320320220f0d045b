// Package motorcyclerepo provides data transfer objects and mapping functions
// for motorcycle persistence. This package implements the repository pattern
// for the motorcycle aggregate, handling the conversion between domain
// entities and database representations.
package motorcyclerepo

import (
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/motorcycle"

	"github.com/google/uuid"
)

// MotorcycleDTO represents the database structure for persisting motorcycle
// aggregates. Code and Placa carry unique indexes so the database enforces
// the same uniqueness the registration workflow checks.
type MotorcycleDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code      string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Placa     string    `gorm:"type:varchar(7);not null;uniqueIndex"`
	Model     string    `gorm:"type:varchar(250);not null"`
	Year      int       `gorm:"type:int;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for motorcycle entities.
func (MotorcycleDTO) TableName() string {
	return "motorcycles"
}

// fromDomain converts a motorcycle domain aggregate to its database
// representation.
func fromDomain(moto *motorcycle.Motorcycle) MotorcycleDTO {
	return MotorcycleDTO{
		ID:        moto.ID().Bytes(),
		Code:      moto.Code().String(),
		Placa:     moto.Placa(),
		Model:     moto.Model(),
		Year:      moto.Year(),
		CreatedAt: moto.CreatedAt(),
	}
}

// toDomain converts a database DTO to a motorcycle domain aggregate using
// RestoreMotorcycle, which re-validates the stored values.
func toDomain(dto MotorcycleDTO) (*motorcycle.Motorcycle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return motorcycle.RestoreMotorcycle(id, kernel.NewCodeId(dto.Code), dto.Placa, dto.Model, dto.Year, dto.CreatedAt)
}
