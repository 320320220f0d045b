package driver

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"
	"rental/internal/pkg/guard"
	"rental/internal/pkg/results"
)

const (
	nameMinLength = 2
	nameMaxLength = 250

	// cnpjLength is the number of digits in a Brazilian company
	// registration number (CNPJ).
	cnpjLength = 14

	// cnhNumberLength is the number of digits in a CNH license number.
	cnhNumberLength = 11

	minBirthYear = 1900
)

// ErrDriverIsNotConstructed is returned when a DeliveryDriver instance was not
// created through Create or RestoreDeliveryDriver.
var ErrDriverIsNotConstructed = errors.New(
	"DeliveryDriver must be created via Create or RestoreDeliveryDriver constructor")

// DeliveryDriver is the aggregate root for a person allowed to rent vehicles.
//
// Invariants:
//   - name is trimmed, upper-cased and between 2 and 250 characters
//   - cnpj holds exactly 14 digits with formatting stripped
//   - cnhNumber holds exactly 11 digits and is not all zeros
//   - cnhCategory is one of A, B or AB
//   - cnhImageURL, when present, is an absolute URL
type DeliveryDriver struct {
	id          kernel.UUID
	code        kernel.CodeId
	name        string
	cnpj        string
	birthDate   time.Time
	cnhNumber   string
	cnhCategory CnhCategory
	cnhImageURL string
	createdAt   time.Time
	guard       guard.ConstructorGuard
}

// DigitsOnly strips every non-digit character from a raw string. Used to
// normalize formatted CNPJ and CNH numbers before validation.
func DigitsOnly(raw string) string {
	digits := make([]rune, 0, len(raw))
	for _, r := range raw {
		if unicode.IsDigit(r) {
			digits = append(digits, r)
		}
	}
	return string(digits)
}

// NormalizeName trims surrounding whitespace and upper-cases a raw name.
func NormalizeName(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// Create builds a new DeliveryDriver, accumulating every validation failure
// instead of stopping at the first one.
//
// Validation performed:
//   - name must not be blank and must be 2 to 250 characters after
//     normalization (InvalidName)
//   - cnpj must contain digits and normalize to exactly 14 of them (InvalidCnpj)
//   - birth date must be in 1900 or later (InvalidBirthDate)
//   - cnh number must contain digits, normalize to exactly 11 of them and not
//     be all zeros (InvalidCnhNumber)
//   - cnh category must be one of A, B or AB (InvalidCnhType)
//   - cnh image URL, when given, must be an absolute URL (InvalidCnhImage)
//
// The image URL is optional; most drivers register first and attach the
// license picture later.
func Create(
	code string,
	name string,
	cnpj string,
	birthDate time.Time,
	cnhNumber string,
	cnhCategory string,
	cnhImageURL string,
) results.ValueResult[*DeliveryDriver] {
	normalizedName := NormalizeName(name)
	nameLength := utf8.RuneCountInString(normalizedName)
	cnpjDigits := DigitsOnly(cnpj)
	cnhDigits := DigitsOnly(cnhNumber)
	category := NewCnhCategory(cnhCategory)

	builder := results.NewBuilder[*DeliveryDriver]()
	builder.AddIf(normalizedName == "", results.InvalidName)
	builder.AddIf(nameLength < nameMinLength || nameLength > nameMaxLength, results.InvalidName)
	builder.AddIf(cnpjDigits == "", results.InvalidCnpj)
	builder.AddIf(len(cnpjDigits) != cnpjLength, results.InvalidCnpj)
	builder.AddIf(birthDate.Year() < minBirthYear, results.InvalidBirthDate)
	builder.AddIf(cnhDigits == "", results.InvalidCnhNumber)
	builder.AddIf(len(cnhDigits) != cnhNumberLength || isAllZeros(cnhDigits), results.InvalidCnhNumber)
	builder.AddIf(category == "", results.InvalidCnhType)
	builder.AddIf(!category.IsValid(), results.InvalidCnhType)
	builder.AddIf(cnhImageURL != "" && !isAbsoluteURL(cnhImageURL), results.InvalidCnhImage)

	return builder.CreateResult(func() *DeliveryDriver {
		return &DeliveryDriver{
			id:          kernel.NewUUID(),
			code:        kernel.NewCodeId(code),
			name:        normalizedName,
			cnpj:        cnpjDigits,
			birthDate:   birthDate,
			cnhNumber:   cnhDigits,
			cnhCategory: category,
			cnhImageURL: cnhImageURL,
			createdAt:   time.Now().UTC(),
			guard:       guard.NewConstructorGuard(),
		}
	})
}

// RestoreDeliveryDriver reconstructs a DeliveryDriver from persistent storage.
// The stored values are expected to be in their normalized form already; the
// constructor re-validates them to catch corrupted rows.
func RestoreDeliveryDriver(
	id kernel.UUID,
	code kernel.CodeId,
	name string,
	cnpj string,
	birthDate time.Time,
	cnhNumber string,
	cnhCategory CnhCategory,
	cnhImageURL string,
	createdAt time.Time,
) (*DeliveryDriver, error) {
	drv := &DeliveryDriver{
		code:        code,
		birthDate:   birthDate,
		cnhImageURL: cnhImageURL,
		createdAt:   createdAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		drv.setID(id),
		drv.setName(name),
		drv.setCnpj(cnpj),
		drv.setCnhNumber(cnhNumber),
		drv.setCnhCategory(cnhCategory),
	); err != nil {
		return nil, err
	}

	return drv, nil
}

// WithCnhImage returns a copy of the driver carrying the new license image
// URL. The receiver is left untouched. The URL must be absolute.
func (d *DeliveryDriver) WithCnhImage(rawURL string) results.ValueResult[*DeliveryDriver] {
	builder := results.NewBuilder[*DeliveryDriver]()
	builder.AddIf(rawURL == "" || !isAbsoluteURL(rawURL), results.InvalidCnhImage)

	return builder.CreateResult(func() *DeliveryDriver {
		changed := *d
		changed.cnhImageURL = rawURL
		return &changed
	})
}

// CanOperateMotorcycle reports whether the driver's license category allows
// riding motorcycles. Only categories with the A qualification do.
func (d *DeliveryDriver) CanOperateMotorcycle() bool {
	return d.cnhCategory.AllowsMotorcycle()
}

// Validate checks that the DeliveryDriver was built through one of the
// constructors. The zero value is invalid.
func (d *DeliveryDriver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// IsEqual compares two drivers by identifier.
func (d *DeliveryDriver) IsEqual(other *DeliveryDriver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *DeliveryDriver) ID() kernel.UUID {
	return d.id
}

// Code returns the normalized business code.
func (d *DeliveryDriver) Code() kernel.CodeId {
	return d.code
}

// Name returns the normalized full name.
func (d *DeliveryDriver) Name() string {
	return d.name
}

// Cnpj returns the 14 digit company registration number.
func (d *DeliveryDriver) Cnpj() string {
	return d.cnpj
}

// BirthDate returns the driver's date of birth.
func (d *DeliveryDriver) BirthDate() time.Time {
	return d.birthDate
}

// CnhNumber returns the 11 digit license number.
func (d *DeliveryDriver) CnhNumber() string {
	return d.cnhNumber
}

// CnhCategory returns the license category.
func (d *DeliveryDriver) CnhCategory() CnhCategory {
	return d.cnhCategory
}

// CnhImageURL returns the license image URL, or the empty string when no
// image has been attached yet.
func (d *DeliveryDriver) CnhImageURL() string {
	return d.cnhImageURL
}

// CreatedAt returns the registration instant in UTC.
func (d *DeliveryDriver) CreatedAt() time.Time {
	return d.createdAt
}

func (d *DeliveryDriver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *DeliveryDriver) setName(name string) error {
	length := utf8.RuneCountInString(name)
	if length < nameMinLength || length > nameMaxLength {
		return errs.NewValueIsInvalidError("name")
	}
	d.name = name
	return nil
}

func (d *DeliveryDriver) setCnpj(cnpj string) error {
	if len(cnpj) != cnpjLength || DigitsOnly(cnpj) != cnpj {
		return errs.NewValueIsInvalidErrorWithCause("cnpj",
			fmt.Errorf("%q is not a normalized %d digit number", cnpj, cnpjLength))
	}
	d.cnpj = cnpj
	return nil
}

func (d *DeliveryDriver) setCnhNumber(cnhNumber string) error {
	if len(cnhNumber) != cnhNumberLength || DigitsOnly(cnhNumber) != cnhNumber || isAllZeros(cnhNumber) {
		return errs.NewValueIsInvalidErrorWithCause("cnh number",
			fmt.Errorf("%q is not a normalized %d digit number", cnhNumber, cnhNumberLength))
	}
	d.cnhNumber = cnhNumber
	return nil
}

func (d *DeliveryDriver) setCnhCategory(category CnhCategory) error {
	if !category.IsValid() {
		return errs.NewValueIsInvalidErrorWithCause("cnh category",
			fmt.Errorf("%q is not one of A, B, AB", string(category)))
	}
	d.cnhCategory = category
	return nil
}

func isAllZeros(digits string) bool {
	for _, r := range digits {
		if r != '0' {
			return false
		}
	}
	return len(digits) > 0
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.IsAbs() && u.Host != ""
}
