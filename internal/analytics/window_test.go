package analytics

import (
	"testing"
	"time"

	"github.com/Sebastian1234123/sistema-farmacia/internal/entity"
	gerr "github.com/Sebastian1234123/sistema-farmacia/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lima(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Lima")
	if err != nil {
		t.Skipf("tzdata not available: %v", err)
	}
	return loc
}

func TestResolveWindow(t *testing.T) {
	loc := lima(t)
	now := time.Date(2024, time.March, 15, 14, 30, 0, 0, loc)

	tests := []struct {
		period    entity.PeriodSelector
		wantStart time.Time
		wantEnd   time.Time
	}{
		{entity.PeriodToday, time.Date(2024, 3, 15, 0, 0, 0, 0, loc), time.Date(2024, 3, 15, 23, 59, 59, int(999*time.Millisecond), loc)},
		{entity.PeriodLast7Days, time.Date(2024, 3, 8, 0, 0, 0, 0, loc), now},
		{entity.PeriodLast30Days, time.Date(2024, 2, 14, 0, 0, 0, 0, loc), now},
		{entity.PeriodLast90Days, time.Date(2023, 12, 16, 0, 0, 0, 0, loc), now},
		{entity.PeriodLastYear, time.Date(2023, 3, 15, 14, 30, 0, 0, loc), now},
	}

	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			w, err := ResolveWindow(tt.period, now)
			require.NoError(t, err)
			assert.True(t, tt.wantStart.Equal(w.Start), "start: want %s got %s", tt.wantStart, w.Start)
			assert.True(t, tt.wantEnd.Equal(w.End), "end: want %s got %s", tt.wantEnd, w.End)
			assert.True(t, w.Contains(w.Start))
			assert.True(t, w.Contains(w.End))
		})
	}
}

func TestResolveWindow_InvalidPeriod(t *testing.T) {
	_, err := ResolveWindow("last_week", time.Now())
	assert.ErrorIs(t, err, gerr.ErrInvalidPeriod)

	_, err = ResolveWindow("", time.Now())
	assert.ErrorIs(t, err, gerr.ErrInvalidPeriod)
}

func TestParsePeriod(t *testing.T) {
	p, err := ParsePeriod("last_90_days")
	assert.NoError(t, err)
	assert.Equal(t, entity.PeriodLast90Days, p)

	_, err = ParsePeriod("7d")
	assert.ErrorIs(t, err, gerr.ErrInvalidPeriod)
	assert.True(t, gerr.IsClientError(err))
}

func TestMonthToDate(t *testing.T) {
	now := time.Date(2024, time.February, 29, 8, 0, 0, 0, time.UTC)
	w := MonthToDate(now)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, now, w.End)
}

func TestCalendarDaysBetween(t *testing.T) {
	now := time.Date(2024, time.March, 15, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, 1, CalendarDaysBetween(now, time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, CalendarDaysBetween(now, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, -1, CalendarDaysBetween(now, time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 30, CalendarDaysBetween(now, now.AddDate(0, 0, 30)))
}

func TestTimeWindow_Location(t *testing.T) {
	loc := lima(t)
	w, err := ResolveWindow(entity.PeriodLast30Days, time.Date(2024, time.March, 15, 14, 30, 0, 0, loc))
	require.NoError(t, err)
	assert.Equal(t, loc, w.Location())
	assert.Equal(t, time.Local, entity.TimeWindow{}.Location())
}
