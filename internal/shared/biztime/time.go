// Package biztime provides time helpers used by subscription billing.
// All storage and transport use UTC. Billing periods are counted on the
// calendar of the business timezone, so month ends follow local dates.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultTimezone is the default business timezone.
	DefaultTimezone = "UTC"
)

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init initializes the business timezone. Should be called once at startup.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// Location returns the business timezone location, initializing the default when needed.
func Location() *time.Location {
	if bizLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to auto-initialize with default timezone: %v", err))
		}
	}
	return bizLocation
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// AddMonthsClamped adds n calendar months to t. When the target month is
// shorter than t's day of month, the result lands on the target month's last day.
// Jan 31 + 1 month is Feb 28 (or Feb 29 in a leap year), never Mar 2/3.
func AddMonthsClamped(t time.Time, n int) time.Time {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()

	totalMonths := int(month) - 1 + n
	targetYear := year + floorDiv(totalMonths, 12)
	targetMonth := time.Month(floorMod(totalMonths, 12) + 1)

	if last := daysIn(targetYear, targetMonth); day > last {
		day = last
	}
	return time.Date(targetYear, targetMonth, day, hour, min, sec, t.Nanosecond(), t.Location())
}

// AddYearsClamped adds n years to t. Feb 29 maps to Feb 28 in non-leap years.
func AddYearsClamped(t time.Time, n int) time.Time {
	return AddMonthsClamped(t, 12*n)
}

// AddMonthsIn adds n clamped months on the calendar of loc and returns UTC.
func AddMonthsIn(t time.Time, n int, loc *time.Location) time.Time {
	return AddMonthsClamped(t.In(loc), n).UTC()
}

// AddBillingMonths adds n clamped months on the business calendar.
func AddBillingMonths(t time.Time, n int) time.Time {
	return AddMonthsIn(t, n, Location())
}

// AddBillingYears adds n clamped years on the business calendar.
func AddBillingYears(t time.Time, n int) time.Time {
	return AddMonthsIn(t, 12*n, Location())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
