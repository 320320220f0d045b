package rent

import (
	"errors"
	"fmt"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"
	"rental/internal/pkg/guard"
	"rental/internal/pkg/results"

	"github.com/shopspring/decimal"
)

// ErrRentIsNotConstructed is returned when a VehicleRent instance was not
// created through Create or RestoreVehicleRent.
var ErrRentIsNotConstructed = errors.New(
	"VehicleRent must be created via Create or RestoreVehicleRent constructor")

// VehicleRent is the aggregate root for a motorcycle rental period.
//
// Invariants:
//   - startAt precedes expectedEndingDate
//   - the plan is one the business offers and the period covers at least the
//     plan length, counted in whole days
//   - an ending date, when present, is never before the start
//   - the daily value is fixed at creation from the plan table
type VehicleRent struct {
	id                 kernel.UUID
	driverID           kernel.UUID
	vehicleID          kernel.UUID
	startAt            time.Time
	expectedEndingDate time.Time
	planDays           int
	dailyValue         decimal.Decimal
	endedAt            *time.Time
	createdAt          time.Time
	guard              guard.ConstructorGuard
}

// Create builds a new VehicleRent, accumulating every validation failure
// instead of stopping at the first one.
//
// Validation performed:
//   - driver and vehicle identifiers must be constructed UUIDs (BadRequest)
//   - the start date must be set (InvalidStartDate)
//   - the expected ending date must be set (InvalidEstimatedEndDate)
//   - the start must precede the expected ending (InvalidRentalPeriod)
//   - an ending date must not precede the start (InvalidEndDate)
//   - an ending date past the expected ending is reported (LateReturn)
//   - the plan must be positive and one the business offers (InvalidRentalPlan)
//   - the period, in whole days, must cover the plan length (PlanMismatch)
//
// The daily value is resolved from the plan table and frozen on the
// aggregate, so later price changes never affect running rentals.
func Create(
	driverID kernel.UUID,
	vehicleID kernel.UUID,
	startAt time.Time,
	expectedEndingDate time.Time,
	planDays int,
	endedAt *time.Time,
) results.ValueResult[*VehicleRent] {
	dailyValue, planKnown := PlanDailyValue(planDays)

	builder := results.NewBuilder[*VehicleRent]()
	builder.AddIfMessage(driverID.Validate() != nil, results.BadRequest, "driver id is required")
	builder.AddIfMessage(vehicleID.Validate() != nil, results.BadRequest, "vehicle id is required")
	builder.AddIf(startAt.IsZero(), results.InvalidStartDate)
	builder.AddIf(expectedEndingDate.IsZero(), results.InvalidEstimatedEndDate)
	builder.AddIf(!expectedEndingDate.IsZero() && !startAt.Before(expectedEndingDate),
		results.InvalidRentalPeriod)
	builder.AddIf(endedAt != nil && endedAt.Before(startAt), results.InvalidEndDate)
	builder.AddIf(endedAt != nil && endedAt.After(expectedEndingDate), results.LateReturn)
	builder.AddIf(planDays <= 0, results.InvalidRentalPlan)
	builder.AddIf(planDays > 0 && !planKnown, results.InvalidRentalPlan)
	builder.AddIf(planKnown && !startAt.IsZero() && !expectedEndingDate.IsZero() &&
		truncateToDay(expectedEndingDate).Before(truncateToDay(startAt).AddDate(0, 0, planDays)),
		results.PlanMismatch)

	return builder.CreateResult(func() *VehicleRent {
		return &VehicleRent{
			id:                 kernel.NewUUID(),
			driverID:           driverID,
			vehicleID:          vehicleID,
			startAt:            startAt,
			expectedEndingDate: expectedEndingDate,
			planDays:           planDays,
			dailyValue:         dailyValue,
			endedAt:            copyTime(endedAt),
			createdAt:          time.Now().UTC(),
			guard:              guard.NewConstructorGuard(),
		}
	})
}

// RestoreVehicleRent reconstructs a VehicleRent from persistent storage.
// The daily value comes from the stored row, not the plan table, so rentals
// created under older price tables keep their original rate.
func RestoreVehicleRent(
	id kernel.UUID,
	driverID kernel.UUID,
	vehicleID kernel.UUID,
	startAt time.Time,
	expectedEndingDate time.Time,
	planDays int,
	dailyValue decimal.Decimal,
	endedAt *time.Time,
	createdAt time.Time,
) (*VehicleRent, error) {
	r := &VehicleRent{
		dailyValue: dailyValue,
		endedAt:    copyTime(endedAt),
		createdAt:  createdAt,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setDriverID(driverID),
		r.setVehicleID(vehicleID),
		r.setPeriod(startAt, expectedEndingDate),
		r.setPlanDays(planDays),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// ConflictsWith reports whether a candidate rental window overlaps this
// rental. The comparison is inclusive on both ends: a candidate starting the
// day an existing rental ends still conflicts.
func (r *VehicleRent) ConflictsWith(candidateStart, candidateEnd time.Time) bool {
	startsWithin := !candidateStart.Before(r.startAt) && !candidateStart.After(r.expectedEndingDate)
	wrapsAround := candidateStart.Before(r.startAt) && !candidateEnd.Before(r.expectedEndingDate)
	return startsWithin || wrapsAround
}

// Finish returns a copy of the rental carrying the actual ending date. The
// receiver is left untouched. Late returns are allowed here; use IsLate to
// detect them.
func (r *VehicleRent) Finish(endedAt time.Time) results.ValueResult[*VehicleRent] {
	builder := results.NewBuilder[*VehicleRent]()
	builder.AddIf(endedAt.IsZero(), results.InvalidEndDate)
	builder.AddIf(!endedAt.IsZero() && endedAt.Before(r.startAt), results.InvalidEndDate)

	return builder.CreateResult(func() *VehicleRent {
		finished := *r
		ended := endedAt
		finished.endedAt = &ended
		return &finished
	})
}

// IsFinished reports whether the vehicle has been returned.
func (r *VehicleRent) IsFinished() bool {
	return r.endedAt != nil
}

// IsLate reports whether the rental ran past its expected ending date. For a
// finished rental the actual ending date decides; for a running one the
// given reference instant does.
func (r *VehicleRent) IsLate(now time.Time) bool {
	if r.endedAt != nil {
		return r.endedAt.After(r.expectedEndingDate)
	}
	return now.After(r.expectedEndingDate)
}

// ExpectedTotalValue returns the price of the full plan period.
func (r *VehicleRent) ExpectedTotalValue() decimal.Decimal {
	return r.dailyValue.Mul(decimal.NewFromInt(int64(r.planDays)))
}

// Validate checks that the VehicleRent was built through one of the
// constructors. The zero value is invalid.
func (r *VehicleRent) Validate() error {
	if r == nil {
		return ErrRentIsNotConstructed
	}
	return r.guard.Validate(ErrRentIsNotConstructed)
}

// IsEqual compares two rentals by identifier.
func (r *VehicleRent) IsEqual(other *VehicleRent) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the rental's unique identifier.
func (r *VehicleRent) ID() kernel.UUID {
	return r.id
}

// DriverID returns the renting driver's identifier.
func (r *VehicleRent) DriverID() kernel.UUID {
	return r.driverID
}

// VehicleID returns the rented motorcycle's identifier.
func (r *VehicleRent) VehicleID() kernel.UUID {
	return r.vehicleID
}

// StartAt returns the instant the rental period begins.
func (r *VehicleRent) StartAt() time.Time {
	return r.startAt
}

// ExpectedEndingDate returns the instant the rental is expected to end.
func (r *VehicleRent) ExpectedEndingDate() time.Time {
	return r.expectedEndingDate
}

// PlanDays returns the rental plan length in days.
func (r *VehicleRent) PlanDays() int {
	return r.planDays
}

// DailyValue returns the daily price frozen at creation.
func (r *VehicleRent) DailyValue() decimal.Decimal {
	return r.dailyValue
}

// EndedAt returns the actual ending instant, or nil while the rental runs.
func (r *VehicleRent) EndedAt() *time.Time {
	return copyTime(r.endedAt)
}

// CreatedAt returns the registration instant in UTC.
func (r *VehicleRent) CreatedAt() time.Time {
	return r.createdAt
}

func (r *VehicleRent) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *VehicleRent) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("driver id", err)
	}
	r.driverID = id
	return nil
}

func (r *VehicleRent) setVehicleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vehicle id", err)
	}
	r.vehicleID = id
	return nil
}

func (r *VehicleRent) setPeriod(startAt, expectedEndingDate time.Time) error {
	if startAt.IsZero() || expectedEndingDate.IsZero() || !startAt.Before(expectedEndingDate) {
		return errs.NewValueIsInvalidErrorWithCause("rental period",
			fmt.Errorf("start %v does not precede expected ending %v", startAt, expectedEndingDate))
	}
	r.startAt = startAt
	r.expectedEndingDate = expectedEndingDate
	return nil
}

func (r *VehicleRent) setPlanDays(planDays int) error {
	if planDays <= 0 {
		return errs.NewValueIsInvalidError("plan days")
	}
	r.planDays = planDays
	return nil
}

// truncateToDay drops the time-of-day component, keeping the calendar day in
// UTC. Plan coverage is counted in whole days, so a rental starting at 23:00
// still owes the full plan length.
func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
