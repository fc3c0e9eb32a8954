package recurrence

import (
	"testing"
	"time"
)

func intPtr(v int) *int { return &v }

func date(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func TestNext_DailyBeforeExecuteTime(t *testing.T) {
	s := Schedule{Frequency: Daily, ExecuteTime: "09:00"}
	reference := date(2026, time.March, 10, 8, 0)

	got := Next(reference, s)
	want := date(2026, time.March, 10, 9, 0)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestNext_DailyAfterExecuteTime(t *testing.T) {
	s := Schedule{Frequency: Daily, ExecuteTime: "09:00"}
	reference := date(2026, time.March, 10, 9, 0)

	got := Next(reference, s)
	want := date(2026, time.March, 11, 9, 0)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestNext_WeeklySameDayAfterExecuteTime(t *testing.T) {
	// 2026-03-11 is a Wednesday. Reference past the execute time must yield
	// the following Wednesday, not today.
	s := Schedule{Frequency: Weekly, DayOfWeek: intPtr(3), ExecuteTime: "09:00"}
	reference := date(2026, time.March, 11, 10, 0)

	got := Next(reference, s)
	want := date(2026, time.March, 18, 9, 0)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestNext_WeeklyUpcomingDay(t *testing.T) {
	// Monday reference, Wednesday target -> same week.
	s := Schedule{Frequency: Weekly, DayOfWeek: intPtr(3), ExecuteTime: "09:00"}
	reference := date(2026, time.March, 9, 12, 0)

	got := Next(reference, s)
	want := date(2026, time.March, 11, 9, 0)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestNext_WeeklyDefaultsToMonday(t *testing.T) {
	s := Schedule{Frequency: Weekly, ExecuteTime: "09:00"}
	reference := date(2026, time.March, 11, 10, 0) // Wednesday

	got := Next(reference, s)
	want := date(2026, time.March, 16, 9, 0) // next Monday
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestNext_MonthlyClampsShortMonth(t *testing.T) {
	// Day 31 scheduled, next month is February: clamp to the last day,
	// never roll into March.
	s := Schedule{Frequency: Monthly, DayOfMonth: intPtr(31), ExecuteTime: "09:00"}
	reference := date(2026, time.January, 31, 10, 0)

	got := Next(reference, s)
	want := date(2026, time.February, 28, 9, 0)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestNext_MonthlyClampLeapYear(t *testing.T) {
	s := Schedule{Frequency: Monthly, DayOfMonth: intPtr(31), ExecuteTime: "09:00"}
	reference := date(2028, time.January, 31, 10, 0)

	got := Next(reference, s)
	want := date(2028, time.February, 29, 9, 0)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestNext_MonthlyUpcomingDay(t *testing.T) {
	s := Schedule{Frequency: Monthly, DayOfMonth: intPtr(15), ExecuteTime: "09:00"}
	reference := date(2026, time.March, 10, 12, 0)

	got := Next(reference, s)
	want := date(2026, time.March, 15, 9, 0)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestNext_Yearly(t *testing.T) {
	s := Schedule{
		Frequency:   Yearly,
		MonthOfYear: intPtr(3),
		DayOfMonth:  intPtr(15),
		ExecuteTime: "09:00",
	}

	got := Next(date(2026, time.March, 20, 9, 0), s)
	want := date(2027, time.March, 15, 9, 0)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	got = Next(date(2026, time.February, 1, 9, 0), s)
	want = date(2026, time.March, 15, 9, 0)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestNext_Idempotent(t *testing.T) {
	s := Schedule{Frequency: Monthly, DayOfMonth: intPtr(31), ExecuteTime: "08:30"}
	reference := date(2026, time.January, 15, 12, 0)

	first := Next(reference, s)
	second := Next(reference, s)
	if !first.Equal(second) {
		t.Errorf("Next is not idempotent: %v vs %v", first, second)
	}
}

func TestNext_DefaultExecuteTime(t *testing.T) {
	s := Schedule{Frequency: Daily}
	reference := date(2026, time.March, 10, 8, 0)

	got := Next(reference, s)
	want := date(2026, time.March, 10, 9, 0)
	if !got.Equal(want) {
		t.Errorf("expected default 09:00, got %v", got)
	}
}

func TestFirst_FutureStartDate(t *testing.T) {
	s := Schedule{
		Frequency:   Daily,
		ExecuteTime: "09:00",
		StartDate:   date(2026, time.April, 1, 0, 0),
	}
	now := date(2026, time.March, 10, 12, 0)

	got := First(now, s)
	want := date(2026, time.April, 1, 9, 0)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestFirst_FutureStartDateAlignsWeekly(t *testing.T) {
	// Start date 2026-04-01 is a Wednesday; target Friday (5) must move
	// forward to 2026-04-03, never behind the start date.
	s := Schedule{
		Frequency:   Weekly,
		DayOfWeek:   intPtr(5),
		ExecuteTime: "09:00",
		StartDate:   date(2026, time.April, 1, 0, 0),
	}
	now := date(2026, time.March, 10, 12, 0)

	got := First(now, s)
	want := date(2026, time.April, 3, 9, 0)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestFirst_PastStartDateFallsBackToNow(t *testing.T) {
	s := Schedule{
		Frequency:   Daily,
		ExecuteTime: "09:00",
		StartDate:   date(2025, time.January, 1, 0, 0),
	}
	now := date(2026, time.March, 10, 10, 0)

	got := First(now, s)
	want := date(2026, time.March, 11, 9, 0)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestFirst_MonthlyFutureStart(t *testing.T) {
	// Start on the 10th with target day 1: first run is the 1st of the
	// following month.
	s := Schedule{
		Frequency:   Monthly,
		DayOfMonth:  intPtr(1),
		ExecuteTime: "09:00",
		StartDate:   date(2026, time.April, 10, 0, 0),
	}
	now := date(2026, time.March, 1, 12, 0)

	got := First(now, s)
	want := date(2026, time.May, 1, 9, 0)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
