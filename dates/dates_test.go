package dates

import (
	"testing"
	"time"
)

func day(s string, t *testing.T) time.Time {
	t.Helper()
	d, err := ParseDay(s)
	if err != nil {
		t.Fatalf("ParseDay(%q): %v", s, err)
	}
	return d
}

func TestDayKeyRoundTrip(t *testing.T) {
	d := day("2024-02-29", t)
	if got := DayKey(d); got != "2024-02-29" {
		t.Errorf("Expected 2024-02-29, got %s", got)
	}
}

func TestParseDay_Invalid(t *testing.T) {
	if _, err := ParseDay("29/02/2024"); err == nil {
		t.Error("Expected error for malformed day")
	}
}

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year, month, want int
	}{
		{2024, 2, 29}, // leap year
		{2023, 2, 28},
		{2024, 1, 31},
		{2024, 4, 30},
		{2024, 12, 31},
	}
	for _, c := range cases {
		if got := DaysInMonth(c.year, c.month); got != c.want {
			t.Errorf("DaysInMonth(%d, %d) = %d, want %d", c.year, c.month, got, c.want)
		}
	}
}

func TestDaysElapsed(t *testing.T) {
	today := day("2024-03-15", t)

	if got := DaysElapsed(2024, 3, today); got != 15 {
		t.Errorf("Current month: expected 15, got %d", got)
	}
	if got := DaysElapsed(2024, 2, today); got != 29 {
		t.Errorf("Past month: expected 29, got %d", got)
	}
	if got := DaysElapsed(2024, 4, today); got != 0 {
		t.Errorf("Future month: expected 0, got %d", got)
	}
}

func TestIsFutureMonth(t *testing.T) {
	today := day("2024-03-15", t)

	if IsFutureMonth(2024, 3, today) {
		t.Error("Current month should not be future")
	}
	if IsFutureMonth(2024, 2, today) {
		t.Error("Past month should not be future")
	}
	if !IsFutureMonth(2024, 4, today) {
		t.Error("Next month should be future")
	}
	if !IsFutureMonth(2025, 1, today) {
		t.Error("Next year should be future")
	}
}

func TestAddDays_CrossesMonthBoundary(t *testing.T) {
	d := AddDays(day("2024-01-31", t), 1)
	if DayKey(d) != "2024-02-01" {
		t.Errorf("Expected 2024-02-01, got %s", DayKey(d))
	}

	d = AddDays(day("2024-03-01", t), -1)
	if DayKey(d) != "2024-02-29" {
		t.Errorf("Expected 2024-02-29, got %s", DayKey(d))
	}
}

func TestMonthBounds(t *testing.T) {
	if got := DayKey(MonthStart(2024, 2)); got != "2024-02-01" {
		t.Errorf("Expected 2024-02-01, got %s", got)
	}
	if got := DayKey(MonthEnd(2024, 2)); got != "2024-02-29" {
		t.Errorf("Expected 2024-02-29, got %s", got)
	}
}
