package commands

import (
	"errors"
	"time"

	"rental/internal/pkg/guard"
)

var ErrCreateDeliveryDriverCommandIsNotConstructed = errors.New(
	"CreateDeliveryDriverCommand must be created via NewCreateDeliveryDriverCommand constructor",
)

// CreateDeliveryDriverCommand represents a request to register a new delivery
// driver. The fields carry the raw client input; normalization and validation
// happen in the driver factory.
type CreateDeliveryDriverCommand struct {
	code        string
	name        string
	cnpj        string
	birthDate   time.Time
	cnhNumber   string
	cnhCategory string
	cnhImageURL string

	guard guard.ConstructorGuard
}

// NewCreateDeliveryDriverCommand creates a command to register a new driver.
// The image URL is optional and may be empty.
func NewCreateDeliveryDriverCommand(
	code string,
	name string,
	cnpj string,
	birthDate time.Time,
	cnhNumber string,
	cnhCategory string,
	cnhImageURL string,
) CreateDeliveryDriverCommand {
	return CreateDeliveryDriverCommand{
		code:        code,
		name:        name,
		cnpj:        cnpj,
		birthDate:   birthDate,
		cnhNumber:   cnhNumber,
		cnhCategory: cnhCategory,
		cnhImageURL: cnhImageURL,
		guard:       guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryDriverCommandIsNotConstructed)
}

// Code returns the raw business code from the command.
func (c CreateDeliveryDriverCommand) Code() string {
	return c.code
}

// Name returns the raw driver name from the command.
func (c CreateDeliveryDriverCommand) Name() string {
	return c.name
}

// Cnpj returns the raw CNPJ from the command.
func (c CreateDeliveryDriverCommand) Cnpj() string {
	return c.cnpj
}

// BirthDate returns the birth date from the command.
func (c CreateDeliveryDriverCommand) BirthDate() time.Time {
	return c.birthDate
}

// CnhNumber returns the raw CNH number from the command.
func (c CreateDeliveryDriverCommand) CnhNumber() string {
	return c.cnhNumber
}

// CnhCategory returns the raw CNH category from the command.
func (c CreateDeliveryDriverCommand) CnhCategory() string {
	return c.cnhCategory
}

// CnhImageURL returns the optional license image URL from the command.
func (c CreateDeliveryDriverCommand) CnhImageURL() string {
	return c.cnhImageURL
}
