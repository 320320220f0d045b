// Package driverrepo provides data transfer objects and mapping functions
// for delivery driver persistence. This package implements the repository
// pattern for the driver aggregate, handling the conversion between domain
// entities and database representations.
package driverrepo

import (
	"time"

	"rental/internal/core/domain/model/driver"
	"rental/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting delivery driver
// aggregates. Code, Cnpj and CnhNumber carry unique indexes so the database
// enforces the same uniqueness the registration workflow checks. Cnpj and
// CnhNumber are stored in their digits-only normalized form.
type DriverDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name        string    `gorm:"type:varchar(250);not null"`
	Cnpj        string    `gorm:"type:varchar(14);not null;uniqueIndex"`
	BirthDate   time.Time `gorm:"not null"`
	CnhNumber   string    `gorm:"type:varchar(11);not null;uniqueIndex"`
	CnhCategory string    `gorm:"type:varchar(2);not null"`
	CnhImageURL *string   `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the database table name for delivery driver entities.
func (DriverDTO) TableName() string {
	return "delivery_drivers"
}

// fromDomain converts a driver domain aggregate to its database
// representation. An empty license image URL is stored as NULL.
func fromDomain(drv *driver.DeliveryDriver) DriverDTO {
	var imageURL *string
	if drv.CnhImageURL() != "" {
		raw := drv.CnhImageURL()
		imageURL = &raw
	}

	return DriverDTO{
		ID:          drv.ID().Bytes(),
		Code:        drv.Code().String(),
		Name:        drv.Name(),
		Cnpj:        drv.Cnpj(),
		BirthDate:   drv.BirthDate(),
		CnhNumber:   drv.CnhNumber(),
		CnhCategory: drv.CnhCategory().String(),
		CnhImageURL: imageURL,
		CreatedAt:   drv.CreatedAt(),
	}
}

// toDomain converts a database DTO to a driver domain aggregate using
// RestoreDeliveryDriver, which re-validates the stored values.
func toDomain(dto DriverDTO) (*driver.DeliveryDriver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	imageURL := ""
	if dto.CnhImageURL != nil {
		imageURL = *dto.CnhImageURL
	}

	return driver.RestoreDeliveryDriver(
		id,
		kernel.NewCodeId(dto.Code),
		dto.Name,
		dto.Cnpj,
		dto.BirthDate,
		dto.CnhNumber,
		driver.CnhCategory(dto.CnhCategory),
		imageURL,
		dto.CreatedAt,
	)
}
