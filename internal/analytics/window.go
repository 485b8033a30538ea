// Package analytics folds raw sales, stock and lot rows into the derived
// metrics shown on the dashboard and report screens. Nothing in this package
// performs I/O or reads the wall clock: every time relative function takes
// "now" explicitly.
package analytics

import (
	"fmt"
	"time"

	"github.com/Sebastian1234123/sistema-farmacia/internal/entity"
	gerr "github.com/Sebastian1234123/sistema-farmacia/internal/errors"
)

// ParsePeriod validates a raw selector against the closed set.
func ParsePeriod(raw string) (entity.PeriodSelector, error) {
	p := entity.PeriodSelector(raw)
	if !entity.ValidPeriodSelectors[p] {
		return "", fmt.Errorf("%w: %q", gerr.ErrInvalidPeriod, raw)
	}
	return p, nil
}

// ResolveWindow turns a period selector into an absolute window anchored to
// now. Calendar boundaries are taken in now's location.
func ResolveWindow(p entity.PeriodSelector, now time.Time) (entity.TimeWindow, error) {
	switch p {
	case entity.PeriodToday:
		return DayWindow(now), nil
	case entity.PeriodLast7Days:
		return lastDays(now, 7), nil
	case entity.PeriodLast30Days:
		return lastDays(now, 30), nil
	case entity.PeriodLast90Days:
		return lastDays(now, 90), nil
	case entity.PeriodLastYear:
		return entity.TimeWindow{Start: now.AddDate(-1, 0, 0), End: now}, nil
	default:
		return entity.TimeWindow{}, fmt.Errorf("%w: %q", gerr.ErrInvalidPeriod, string(p))
	}
}

// DayWindow spans the calendar day containing now, midnight to 23:59:59.999.
func DayWindow(now time.Time) entity.TimeWindow {
	start := StartOfDay(now)
	return entity.TimeWindow{
		Start: start,
		End:   start.AddDate(0, 0, 1).Add(-time.Millisecond),
	}
}

// MonthToDate spans the first day of now's month at midnight up to now.
func MonthToDate(now time.Time) entity.TimeWindow {
	return entity.TimeWindow{
		Start: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()),
		End:   now,
	}
}

// StartOfDay returns local midnight of t's calendar day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// CalendarDaysBetween counts whole calendar days from a to b, reading each
// instant on its own calendar. Expiry dates are stored as plain dates, so
// converting them to another zone would shift them by a day.
func CalendarDaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	da := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	db := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}

func lastDays(now time.Time, n int) entity.TimeWindow {
	return entity.TimeWindow{
		Start: StartOfDay(now).AddDate(0, 0, -n),
		End:   now,
	}
}
