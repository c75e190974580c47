package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 30, 0, 0, time.UTC)
}

func TestAddMonthsClamped(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		n     int
		want  time.Time
	}{
		{name: "plain month", start: date(2024, time.March, 15), n: 1, want: date(2024, time.April, 15)},
		{name: "leap february clamp", start: date(2024, time.January, 31), n: 1, want: date(2024, time.February, 29)},
		{name: "non-leap february clamp", start: date(2023, time.January, 31), n: 1, want: date(2023, time.February, 28)},
		{name: "thirty day month clamp", start: date(2024, time.March, 31), n: 1, want: date(2024, time.April, 30)},
		{name: "year rollover", start: date(2024, time.November, 30), n: 3, want: date(2025, time.February, 28)},
		{name: "twelve months", start: date(2024, time.May, 5), n: 12, want: date(2025, time.May, 5)},
		{name: "negative months", start: date(2024, time.March, 31), n: -1, want: date(2024, time.February, 29)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddMonthsClamped(tt.start, tt.n))
		})
	}
}

func TestAddYearsClamped(t *testing.T) {
	assert.Equal(t, date(2025, time.February, 28), AddYearsClamped(date(2024, time.February, 29), 1))
	assert.Equal(t, date(2028, time.February, 29), AddYearsClamped(date(2024, time.February, 29), 4))
	assert.Equal(t, date(2026, time.June, 1), AddYearsClamped(date(2024, time.June, 1), 2))
}

func TestLocation_DefaultsToUTC(t *testing.T) {
	assert.NotNil(t, Location())
	assert.Equal(t, time.UTC, NowUTC().Location())
}

func TestAddMonthsIn_UsesLocalCalendar(t *testing.T) {
	dhaka, err := time.LoadLocation("Asia/Dhaka")
	require.NoError(t, err)

	// 2024-01-30 20:00 UTC is already Jan 31 in Dhaka.
	start := time.Date(2024, time.January, 30, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, time.February, 28, 20, 0, 0, 0, time.UTC), AddMonthsIn(start, 1, dhaka))
	assert.Equal(t, time.Date(2024, time.February, 29, 20, 0, 0, 0, time.UTC), AddMonthsIn(start, 1, time.UTC))
}

func TestAddBillingMonths_DefaultCalendarIsUTC(t *testing.T) {
	start := date(2024, time.January, 31)
	assert.Equal(t, date(2024, time.February, 29), AddBillingMonths(start, 1))
	assert.Equal(t, date(2026, time.January, 31), AddBillingYears(start, 2))
}
