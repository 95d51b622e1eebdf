package stats

import (
	"sort"
	"time"

	"github.com/Matthieu-Mary/mono-habit-sub000/dates"
)

// BestStreak returns the longest run of consecutive completed calendar
// days in the bucket map. An isolated completed day counts as a streak of
// 1: a gap resets the run to 1 at the next completed day, not 0.
func BestStreak(days map[string]bool) int {
	keys := make([]string, 0, len(days))
	for k := range days {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	best, current := 0, 0
	var prev time.Time
	for _, k := range keys {
		if !days[k] {
			continue
		}
		day, err := dates.ParseDay(k)
		if err != nil {
			continue
		}
		if !prev.IsZero() && dates.SameDay(day, dates.AddDays(prev, 1)) {
			current++
		} else {
			current = 1
		}
		if current > best {
			best = current
		}
		prev = day
	}
	return best
}

// CurrentStreak returns the run of consecutive completed days ending at
// today, with a one-day grace period: a run whose most recent completed
// day is yesterday is still alive. If neither today nor yesterday is
// completed the streak is 0.
func CurrentStreak(days map[string]bool, today time.Time) int {
	start := dates.StartOfDay(today)
	if !days[dates.DayKey(start)] {
		start = dates.AddDays(start, -1)
		if !days[dates.DayKey(start)] {
			return 0
		}
	}

	streak := 0
	for d := start; days[dates.DayKey(d)]; d = dates.AddDays(d, -1) {
		streak++
	}
	return streak
}
