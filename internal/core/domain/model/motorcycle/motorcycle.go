package motorcycle

import (
	"errors"
	"fmt"
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
	// placaLength is the exact number of alphanumeric characters in a
	// Brazilian license plate (both the older AAA9999 format and the
	// Mercosul AAA9A99 format).
	placaLength = 7

	// modelMinLength and modelMaxLength bound the normalized model name.
	modelMinLength = 2
	modelMaxLength = 250

	// minYear is the earliest accepted manufacturing year.
	minYear = 1900
)

// ErrMotorcycleIsNotConstructed is returned when a Motorcycle instance was not
// created through Create or RestoreMotorcycle.
var ErrMotorcycleIsNotConstructed = errors.New(
	"Motorcycle must be created via Create or RestoreMotorcycle constructor")

// Motorcycle is the aggregate root for a rentable vehicle.
//
// Invariants:
//   - placa holds exactly 7 alphanumeric characters, with separators stripped
//   - model is trimmed, upper-cased and between 2 and 250 characters
//   - year is 1900 or later
//   - the business code is stored in its normalized CodeId form
//
// All fields are private; instances are built only through the constructors.
type Motorcycle struct {
	id        kernel.UUID
	code      kernel.CodeId
	placa     string
	model     string
	year      int
	createdAt time.Time
	guard     guard.ConstructorGuard
}

// NormalizePlaca strips every non-alphanumeric character from a raw plate
// string, keeping the original casing. It returns the empty string when the
// stripped value does not have exactly 7 characters, so callers can treat
// an empty result as an invalid plate.
func NormalizePlaca(raw string) string {
	stripped := make([]rune, 0, len(raw))
	for _, r := range raw {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			stripped = append(stripped, r)
		}
	}

	if len(stripped) != placaLength {
		return ""
	}
	return string(stripped)
}

// NormalizeModel trims surrounding whitespace and upper-cases a raw model name.
func NormalizeModel(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// Create builds a new Motorcycle, accumulating every validation failure
// instead of stopping at the first one.
//
// Validation performed:
//   - the plate must normalize to exactly 7 alphanumeric characters (InvalidPlate)
//   - the model, after normalization, must be 2 to 250 characters (InvalidModel)
//   - the year must be 1900 or later (InvalidYear)
//
// The business code may be empty; uniqueness against other motorcycles is the
// caller's concern, not the aggregate's.
func Create(code, placa, model string, year int) results.ValueResult[*Motorcycle] {
	normalizedPlaca := NormalizePlaca(placa)
	normalizedModel := NormalizeModel(model)
	modelLength := utf8.RuneCountInString(normalizedModel)

	builder := results.NewBuilder[*Motorcycle]()
	builder.AddIf(normalizedPlaca == "", results.InvalidPlate)
	builder.AddIf(modelLength < modelMinLength || modelLength > modelMaxLength, results.InvalidModel)
	builder.AddIf(year < minYear, results.InvalidYear)

	return builder.CreateResult(func() *Motorcycle {
		return &Motorcycle{
			id:        kernel.NewUUID(),
			code:      kernel.NewCodeId(code),
			placa:     normalizedPlaca,
			model:     normalizedModel,
			year:      year,
			createdAt: time.Now().UTC(),
			guard:     guard.NewConstructorGuard(),
		}
	})
}

// RestoreMotorcycle reconstructs a Motorcycle from persistent storage. The
// stored values are expected to be in their normalized form already; the
// constructor re-validates them to catch corrupted rows.
func RestoreMotorcycle(
	id kernel.UUID,
	code kernel.CodeId,
	placa string,
	model string,
	year int,
	createdAt time.Time,
) (*Motorcycle, error) {
	motorcycle := &Motorcycle{
		code:      code,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		motorcycle.setID(id),
		motorcycle.setPlaca(placa),
		motorcycle.setModel(model),
		motorcycle.setYear(year),
	); err != nil {
		return nil, err
	}

	return motorcycle, nil
}

// WithPlaca returns a copy of the motorcycle carrying the new plate. The
// receiver is left untouched, so a failed change cannot leave the aggregate
// half-updated.
func (m *Motorcycle) WithPlaca(raw string) results.ValueResult[*Motorcycle] {
	normalized := NormalizePlaca(raw)

	builder := results.NewBuilder[*Motorcycle]()
	builder.AddIf(normalized == "", results.InvalidPlate)

	return builder.CreateResult(func() *Motorcycle {
		changed := *m
		changed.placa = normalized
		return &changed
	})
}

// Validate checks that the Motorcycle was built through one of the
// constructors. The zero value is invalid.
func (m *Motorcycle) Validate() error {
	if m == nil {
		return ErrMotorcycleIsNotConstructed
	}
	return m.guard.Validate(ErrMotorcycleIsNotConstructed)
}

// IsEqual compares two motorcycles by identifier.
func (m *Motorcycle) IsEqual(other *Motorcycle) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the motorcycle's unique identifier.
func (m *Motorcycle) ID() kernel.UUID {
	return m.id
}

// Code returns the normalized business code. It may be empty.
func (m *Motorcycle) Code() kernel.CodeId {
	return m.code
}

// Placa returns the normalized license plate.
func (m *Motorcycle) Placa() string {
	return m.placa
}

// Model returns the normalized model name.
func (m *Motorcycle) Model() string {
	return m.model
}

// Year returns the manufacturing year.
func (m *Motorcycle) Year() int {
	return m.year
}

// CreatedAt returns the registration instant in UTC.
func (m *Motorcycle) CreatedAt() time.Time {
	return m.createdAt
}

func (m *Motorcycle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Motorcycle) setPlaca(placa string) error {
	if NormalizePlaca(placa) != placa || placa == "" {
		return errs.NewValueIsInvalidErrorWithCause("placa",
			fmt.Errorf("%q is not a normalized 7 character plate", placa))
	}
	m.placa = placa
	return nil
}

func (m *Motorcycle) setModel(model string) error {
	length := utf8.RuneCountInString(model)
	if length < modelMinLength || length > modelMaxLength {
		return errs.NewValueIsInvalidError("model")
	}
	m.model = model
	return nil
}

func (m *Motorcycle) setYear(year int) error {
	if year < minYear {
		return errs.NewValueIsInvalidErrorWithCause("year",
			fmt.Errorf("%d is before %d", year, minYear))
	}
	m.year = year
	return nil
}
