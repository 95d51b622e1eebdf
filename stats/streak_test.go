package stats

import (
	"testing"
	"time"

	"github.com/Matthieu-Mary/mono-habit-sub000/dates"
)

// buckets builds a day-bucket map relative to a base day: offsets list the
// completed days, falseOffsets the days present but not completed.
func buckets(t *testing.T, base string, offsets []int, falseOffsets []int) map[string]bool {
	t.Helper()
	baseDay, err := dates.ParseDay(base)
	if err != nil {
		t.Fatalf("bad base day: %v", err)
	}
	m := make(map[string]bool)
	for _, o := range offsets {
		m[dates.DayKey(dates.AddDays(baseDay, o))] = true
	}
	for _, o := range falseOffsets {
		m[dates.DayKey(dates.AddDays(baseDay, o))] = false
	}
	return m
}

func mustDay(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := dates.ParseDay(s)
	if err != nil {
		t.Fatalf("bad day %s: %v", s, err)
	}
	return d
}

// ==================== BEST STREAK TESTS ====================

func TestBestStreak_Empty(t *testing.T) {
	if got := BestStreak(map[string]bool{}); got != 0 {
		t.Errorf("Expected 0, got %d", got)
	}
}

func TestBestStreak_NoCompletedDays(t *testing.T) {
	days := buckets(t, "2024-03-01", nil, []int{0, 1, 2})
	if got := BestStreak(days); got != 0 {
		t.Errorf("Expected 0, got %d", got)
	}
}

func TestBestStreak_SingleDay(t *testing.T) {
	days := buckets(t, "2024-03-01", []int{0}, nil)
	if got := BestStreak(days); got != 1 {
		t.Errorf("Expected 1, got %d", got)
	}
}

func TestBestStreak_GapResetsToOne(t *testing.T) {
	// Days 1,2,3 completed, day 4 missing, day 5 completed.
	days := buckets(t, "2024-03-01", []int{0, 1, 2, 4}, nil)
	if got := BestStreak(days); got != 3 {
		t.Errorf("Expected 3, got %d", got)
	}
}

func TestBestStreak_ExplicitFalseBreaksRun(t *testing.T) {
	// Day 3 logged but not completed splits two runs of 2.
	days := buckets(t, "2024-03-01", []int{0, 1, 3, 4}, []int{2})
	if got := BestStreak(days); got != 2 {
		t.Errorf("Expected 2, got %d", got)
	}
}

func TestBestStreak_FullWindow(t *testing.T) {
	offsets := make([]int, 30)
	for i := range offsets {
		offsets[i] = i
	}
	days := buckets(t, "2024-03-01", offsets, nil)
	if got := BestStreak(days); got != 30 {
		t.Errorf("Expected 30, got %d", got)
	}
}

func TestBestStreak_SevenDayScenario(t *testing.T) {
	// Days 1,2,3,5,6,7 completed, day 4 missed.
	days := buckets(t, "2024-03-01", []int{0, 1, 2, 4, 5, 6}, []int{3})
	if got := BestStreak(days); got != 3 {
		t.Errorf("Expected 3, got %d", got)
	}
}

func TestBestStreak_RunCrossesMonthBoundary(t *testing.T) {
	days := buckets(t, "2024-02-28", []int{0, 1, 2}, nil) // Feb 28, 29, Mar 1
	if got := BestStreak(days); got != 3 {
		t.Errorf("Expected 3, got %d", got)
	}
}

// ==================== CURRENT STREAK TESTS ====================

func TestCurrentStreak_Empty(t *testing.T) {
	today := mustDay(t, "2024-03-07")
	if got := CurrentStreak(map[string]bool{}, today); got != 0 {
		t.Errorf("Expected 0, got %d", got)
	}
}

func TestCurrentStreak_SingleDayToday(t *testing.T) {
	today := mustDay(t, "2024-03-07")
	days := buckets(t, "2024-03-07", []int{0}, nil)
	if got := CurrentStreak(days, today); got != 1 {
		t.Errorf("Expected 1, got %d", got)
	}
}

func TestCurrentStreak_YesterdayOnlyGracePeriod(t *testing.T) {
	today := mustDay(t, "2024-03-07")
	days := buckets(t, "2024-03-06", []int{0}, nil)
	if got := CurrentStreak(days, today); got != 1 {
		t.Errorf("Expected 1 (grace period), got %d", got)
	}
}

func TestCurrentStreak_TwoDaysAgoIsDead(t *testing.T) {
	today := mustDay(t, "2024-03-07")
	days := buckets(t, "2024-03-05", []int{0}, nil)
	if got := CurrentStreak(days, today); got != 0 {
		t.Errorf("Expected 0, got %d", got)
	}
}

func TestCurrentStreak_RunEndingYesterday(t *testing.T) {
	today := mustDay(t, "2024-03-07")
	// March 3-6 completed, nothing today.
	days := buckets(t, "2024-03-03", []int{0, 1, 2, 3}, nil)
	if got := CurrentStreak(days, today); got != 4 {
		t.Errorf("Expected 4, got %d", got)
	}
}

func TestCurrentStreak_FullThirtyDays(t *testing.T) {
	today := mustDay(t, "2024-03-30")
	offsets := make([]int, 30)
	for i := range offsets {
		offsets[i] = i
	}
	days := buckets(t, "2024-03-01", offsets, nil)
	if got := CurrentStreak(days, today); got != 30 {
		t.Errorf("Expected 30, got %d", got)
	}
}

func TestCurrentStreak_SevenDayScenario(t *testing.T) {
	// Days 1,2,3,5,6,7 completed, day 4 missed, today is day 7.
	today := mustDay(t, "2024-03-07")
	days := buckets(t, "2024-03-01", []int{0, 1, 2, 4, 5, 6}, []int{3})
	if got := CurrentStreak(days, today); got != 3 {
		t.Errorf("Expected 3, got %d", got)
	}
}

func TestCurrentStreak_FalseTodayFallsBackToYesterday(t *testing.T) {
	today := mustDay(t, "2024-03-07")
	// Today logged but not completed; March 5-6 completed.
	days := buckets(t, "2024-03-05", []int{0, 1}, []int{2})
	if got := CurrentStreak(days, today); got != 2 {
		t.Errorf("Expected 2, got %d", got)
	}
}
