package rent

import (
	"github.com/shopspring/decimal"
)

// planDailyValues maps the rental plan length in days to the daily price in
// BRL. Longer plans get a cheaper daily rate. These are the only plans the
// business offers.
var planDailyValues = map[int]int64{
	7:  30,
	15: 28,
	30: 22,
	45: 20,
	50: 18,
}

// PlanDailyValue returns the daily price for a rental plan and whether the
// plan exists at all.
func PlanDailyValue(days int) (decimal.Decimal, bool) {
	value, ok := planDailyValues[days]
	if !ok {
		return decimal.Zero, false
	}
	return decimal.NewFromInt(value), true
}

// PlanExists reports whether the business offers a plan of the given length.
func PlanExists(days int) bool {
	_, ok := planDailyValues[days]
	return ok
}
