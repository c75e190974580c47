package subscription

import (
	"time"

	"marketplace/internal/shared/biztime"
)

// EndDateFor computes when access bought at start ends. Lifetime plans never
// end and yield nil.
func EndDateFor(plan *Plan, start time.Time) *time.Time {
	if plan.IsLifetime() {
		return nil
	}

	count := plan.IntervalCount()
	if count < 1 {
		count = 1
	}

	var end time.Time
	switch plan.Interval() {
	case IntervalMonth:
		end = biztime.AddBillingMonths(start, count)
	case IntervalYear:
		end = biztime.AddBillingYears(start, count)
	default:
		return nil
	}
	return &end
}
