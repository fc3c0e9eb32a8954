package recurrence

import (
	"strconv"
	"strings"
	"time"
)

// Frequency is how often a schedule recurs.
type Frequency string

const (
	Daily   Frequency = "DAILY"
	Weekly  Frequency = "WEEKLY"
	Monthly Frequency = "MONTHLY"
	Yearly  Frequency = "YEARLY"
)

const (
	// DefaultExecuteTime is used when a schedule has no time of day.
	DefaultExecuteTime = "09:00"

	// DefaultDayOfWeek is Monday, used when a WEEKLY schedule has no weekday.
	DefaultDayOfWeek = 1
)

// Schedule holds the frequency parameters of a recurring task. DayOfMonth,
// DayOfWeek and MonthOfYear are optional; their meaning depends on Frequency.
type Schedule struct {
	Frequency   Frequency
	DayOfMonth  *int // 1-31
	DayOfWeek   *int // 0-6, Sunday = 0
	MonthOfYear *int // 1-12
	ExecuteTime string // "HH:MM", server-local
	StartDate   time.Time
}

// clock parses ExecuteTime, falling back to DefaultExecuteTime.
func (s Schedule) clock() (hour, minute int) {
	parts := strings.SplitN(s.ExecuteTime, ":", 2)
	if len(parts) != 2 {
		parts = strings.SplitN(DefaultExecuteTime, ":", 2)
	}
	hour, _ = strconv.Atoi(parts[0])
	minute, _ = strconv.Atoi(parts[1])
	return hour, minute
}

// Next computes the soonest occurrence strictly after reference. It is a pure
// function: the same inputs always yield the same timestamp.
func Next(reference time.Time, s Schedule) time.Time {
	hour, minute := s.clock()
	loc := reference.Location()
	next := time.Date(reference.Year(), reference.Month(), reference.Day(), hour, minute, 0, 0, loc)

	switch s.Frequency {
	case Daily:
		if !next.After(reference) {
			next = next.AddDate(0, 0, 1)
		}

	case Weekly:
		target := intOr(s.DayOfWeek, DefaultDayOfWeek)
		daysUntil := target - int(next.Weekday())
		if daysUntil < 0 || (daysUntil == 0 && !next.After(reference)) {
			daysUntil += 7
		}
		next = next.AddDate(0, 0, daysUntil)

	case Monthly:
		target := intOr(s.DayOfMonth, 1)
		next = onDay(next.Year(), next.Month(), target, hour, minute, loc)
		if !next.After(reference) {
			following := time.Date(next.Year(), next.Month()+1, 1, 0, 0, 0, 0, loc)
			next = onDay(following.Year(), following.Month(), target, hour, minute, loc)
		}

	case Yearly:
		month := time.Month(intOr(s.MonthOfYear, 1))
		day := intOr(s.DayOfMonth, 1)
		next = onDay(next.Year(), month, day, hour, minute, loc)
		if !next.After(reference) {
			next = onDay(next.Year()+1, month, day, hour, minute, loc)
		}
	}

	return next
}

// First computes the initial occurrence for a newly created or edited
// schedule: the advancement rule of Next anchored at the later of StartDate
// and now, so a start date in the future yields the first aligned occurrence
// on or after that date.
func First(now time.Time, s Schedule) time.Time {
	hour, minute := s.clock()
	loc := now.Location()
	start := time.Date(s.StartDate.Year(), s.StartDate.Month(), s.StartDate.Day(), hour, minute, 0, 0, loc)

	reference := now
	if start.After(now) {
		// Anchor at the start of the first valid day so an occurrence on
		// that day itself is kept.
		reference = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
	}
	return Next(reference, s)
}

// onDay builds a timestamp on the given day of month, clamping to the last
// valid day of the month instead of wrapping into the next one.
func onDay(year int, month time.Month, day, hour, minute int, loc *time.Location) time.Time {
	if last := daysIn(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, hour, minute, 0, 0, loc)
}

// daysIn returns the number of days of the given month.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func intOr(v *int, fallback int) int {
	if v != nil {
		return *v
	}
	return fallback
}
