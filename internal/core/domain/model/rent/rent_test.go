package rent_test

import (
	"testing"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/rent"
	"rental/internal/pkg/results"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(day int) time.Time {
	return time.Date(2025, 1, day, 0, 0, 0, 0, time.UTC)
}

func createRent(t *testing.T, startDay, expectedEndDay, planDays int) *rent.VehicleRent {
	t.Helper()
	result := rent.Create(
		kernel.NewUUID(), kernel.NewUUID(), date(startDay), date(expectedEndDay), planDays, nil)
	require.True(t, result.IsSuccess(), "errors: %v", result.Errors())
	return result.RequiredValue()
}

func TestPlanDailyValue(t *testing.T) {
	testCases := []struct {
		days  int
		daily int64
	}{
		{7, 30},
		{15, 28},
		{30, 22},
		{45, 20},
		{50, 18},
	}

	for _, tc := range testCases {
		value, ok := rent.PlanDailyValue(tc.days)
		require.True(t, ok, "plan %d", tc.days)
		assert.True(t, value.Equal(decimal.NewFromInt(tc.daily)), "plan %d", tc.days)
	}

	t.Run("unknown plans do not exist", func(t *testing.T) {
		for _, days := range []int{0, 1, 8, 14, 60, -7} {
			_, ok := rent.PlanDailyValue(days)
			assert.False(t, ok, "plan %d", days)
			assert.False(t, rent.PlanExists(days))
		}
	})
}

func TestCreate(t *testing.T) {
	t.Run("should create rental with frozen daily value", func(t *testing.T) {
		r := createRent(t, 1, 31, 30)

		assert.NoError(t, r.Validate())
		assert.Equal(t, 30, r.PlanDays())
		assert.True(t, r.DailyValue().Equal(decimal.NewFromInt(22)))
		assert.True(t, r.ExpectedTotalValue().Equal(decimal.NewFromInt(660)))
		assert.False(t, r.IsFinished())
		assert.Equal(t, time.UTC, r.CreatedAt().Location())
	})

	t.Run("seven day plan costs 30 per day", func(t *testing.T) {
		r := createRent(t, 1, 8, 7)
		assert.True(t, r.DailyValue().Equal(decimal.NewFromInt(30)))
	})

	t.Run("should fail on unconstructed identifiers", func(t *testing.T) {
		result := rent.Create(kernel.UUID{}, kernel.UUID{}, date(1), date(8), 7, nil)

		require.True(t, result.IsFailure())
		assert.True(t, result.HasKind(results.BadRequest))
		assert.Len(t, filterKind(result.Errors(), results.BadRequest), 2)
	})

	t.Run("should fail on zero start date", func(t *testing.T) {
		result := rent.Create(kernel.NewUUID(), kernel.NewUUID(), time.Time{}, date(8), 7, nil)

		require.True(t, result.IsFailure())
		assert.True(t, result.HasKind(results.InvalidStartDate))
	})

	t.Run("should fail on zero expected ending date", func(t *testing.T) {
		result := rent.Create(kernel.NewUUID(), kernel.NewUUID(), date(1), time.Time{}, 7, nil)

		require.True(t, result.IsFailure())
		assert.True(t, result.HasKind(results.InvalidEstimatedEndDate))
	})

	t.Run("should fail when start does not precede expected ending", func(t *testing.T) {
		result := rent.Create(kernel.NewUUID(), kernel.NewUUID(), date(8), date(8), 7, nil)

		require.True(t, result.IsFailure())
		assert.True(t, result.HasKind(results.InvalidRentalPeriod))
	})

	t.Run("should fail when ending precedes start", func(t *testing.T) {
		ended := date(2).Add(-time.Hour * 48)
		result := rent.Create(kernel.NewUUID(), kernel.NewUUID(), date(2), date(9), 7, &ended)

		require.True(t, result.IsFailure())
		assert.True(t, result.HasKind(results.InvalidEndDate))
	})

	t.Run("should report late return when ending passes expected ending", func(t *testing.T) {
		ended := date(12)
		result := rent.Create(kernel.NewUUID(), kernel.NewUUID(), date(1), date(8), 7, &ended)

		require.True(t, result.IsFailure())
		assert.True(t, result.HasKind(results.LateReturn))
	})

	t.Run("should fail on non positive plan", func(t *testing.T) {
		result := rent.Create(kernel.NewUUID(), kernel.NewUUID(), date(1), date(8), 0, nil)

		require.True(t, result.IsFailure())
		assert.True(t, result.HasKind(results.InvalidRentalPlan))
		assert.False(t, result.HasKind(results.PlanMismatch))
	})

	t.Run("should fail on plan the business does not offer", func(t *testing.T) {
		result := rent.Create(kernel.NewUUID(), kernel.NewUUID(), date(1), date(15), 14, nil)

		require.True(t, result.IsFailure())
		assert.True(t, result.HasKind(results.InvalidRentalPlan))
	})

	t.Run("should fail when period does not cover the plan", func(t *testing.T) {
		result := rent.Create(kernel.NewUUID(), kernel.NewUUID(), date(1), date(7), 7, nil)

		require.True(t, result.IsFailure())
		assert.True(t, result.HasKind(results.PlanMismatch))
	})

	t.Run("should accept period exactly covering the plan", func(t *testing.T) {
		result := rent.Create(kernel.NewUUID(), kernel.NewUUID(), date(1), date(8), 7, nil)

		assert.True(t, result.IsSuccess())
	})

	t.Run("plan coverage is counted in whole days", func(t *testing.T) {
		lateStart := date(1).Add(23 * time.Hour)
		result := rent.Create(kernel.NewUUID(), kernel.NewUUID(), lateStart, date(8), 7, nil)

		assert.True(t, result.IsSuccess(), "errors: %v", result.Errors())
	})

	t.Run("should accumulate independent failures", func(t *testing.T) {
		result := rent.Create(kernel.NewUUID(), kernel.NewUUID(), time.Time{}, time.Time{}, 0, nil)

		require.True(t, result.IsFailure())
		assert.True(t, result.HasKind(results.InvalidStartDate))
		assert.True(t, result.HasKind(results.InvalidEstimatedEndDate))
		assert.True(t, result.HasKind(results.InvalidRentalPlan))
	})
}

func TestConflictsWith(t *testing.T) {
	// Existing rental runs Jan 10 through Jan 20.
	existing := createRent(t, 10, 20, 7)

	testCases := []struct {
		name     string
		start    int
		end      int
		conflict bool
	}{
		{"candidate starting inside the window", 15, 25, true},
		{"candidate wrapping the whole window", 1, 22, true},
		{"candidate starting on the first day", 10, 25, true},
		{"candidate starting on the last day", 20, 30, true},
		{"candidate starting after the window", 21, 30, false},
		{"candidate entirely before the window", 1, 5, false},
		{"candidate before that stops short of the ending", 1, 15, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.conflict, existing.ConflictsWith(date(tc.start), date(tc.end)))
		})
	}
}

func TestFinish(t *testing.T) {
	t.Run("should return finished copy and keep receiver running", func(t *testing.T) {
		r := createRent(t, 1, 8, 7)

		result := r.Finish(date(8))

		require.True(t, result.IsSuccess())
		finished, _ := result.Value()
		assert.True(t, finished.IsFinished())
		require.NotNil(t, finished.EndedAt())
		assert.Equal(t, date(8), *finished.EndedAt())
		assert.False(t, r.IsFinished(), "receiver must be untouched")
	})

	t.Run("late return is allowed and detectable", func(t *testing.T) {
		r := createRent(t, 1, 8, 7)

		finished := r.Finish(date(10)).RequiredValue()

		assert.True(t, finished.IsFinished())
		assert.True(t, finished.IsLate(date(10)))
	})

	t.Run("should fail on zero ending", func(t *testing.T) {
		r := createRent(t, 1, 8, 7)

		result := r.Finish(time.Time{})

		require.True(t, result.IsFailure())
		assert.True(t, result.HasKind(results.InvalidEndDate))
	})

	t.Run("should fail on ending before start", func(t *testing.T) {
		r := createRent(t, 2, 9, 7)

		result := r.Finish(date(1))

		require.True(t, result.IsFailure())
		assert.True(t, result.HasKind(results.InvalidEndDate))
	})
}

func TestIsLate(t *testing.T) {
	r := createRent(t, 1, 8, 7)

	assert.False(t, r.IsLate(date(5)))
	assert.True(t, r.IsLate(date(9)))

	onTime := r.Finish(date(7)).RequiredValue()
	assert.False(t, onTime.IsLate(date(30)), "finished rentals judge by actual ending")
}

func TestRestoreVehicleRent(t *testing.T) {
	t.Run("should restore with stored daily value", func(t *testing.T) {
		id := kernel.NewUUID()
		ended := date(8)
		storedDaily := decimal.NewFromInt(25)

		r, err := rent.RestoreVehicleRent(
			id, kernel.NewUUID(), kernel.NewUUID(),
			date(1), date(8), 7, storedDaily, &ended, date(1))

		require.NoError(t, err)
		assert.NoError(t, r.Validate())
		assert.True(t, r.ID().IsEqual(id))
		assert.True(t, r.DailyValue().Equal(storedDaily),
			"the stored rate wins over the current plan table")
		assert.True(t, r.IsFinished())
	})

	t.Run("should reject inverted period", func(t *testing.T) {
		_, err := rent.RestoreVehicleRent(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			date(8), date(1), 7, decimal.NewFromInt(30), nil, date(1))

		assert.Error(t, err)
	})

	t.Run("should reject missing driver id", func(t *testing.T) {
		_, err := rent.RestoreVehicleRent(
			kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID(),
			date(1), date(8), 7, decimal.NewFromInt(30), nil, date(1))

		assert.Error(t, err)
	})
}

func TestVehicleRent_Validate(t *testing.T) {
	t.Run("zero value is not constructed", func(t *testing.T) {
		var r rent.VehicleRent
		assert.ErrorIs(t, r.Validate(), rent.ErrRentIsNotConstructed)
	})

	t.Run("nil is not constructed", func(t *testing.T) {
		var r *rent.VehicleRent
		assert.ErrorIs(t, r.Validate(), rent.ErrRentIsNotConstructed)
	})
}

func filterKind(errors []results.Error, kind results.ErrorKind) []results.Error {
	var out []results.Error
	for _, e := range errors {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}
