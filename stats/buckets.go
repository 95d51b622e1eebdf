// Package stats implements the streak, aggregation and challenge-progress
// calculations. Everything here is a pure function over log rows already
// fetched from the repository; handlers fetch, this package computes.
package stats

import "github.com/Matthieu-Mary/mono-habit-sub000/models"

// DayBuckets collapses raw per-habit logs into one boolean per calendar
// day: a day is true if any of its logs is completed. Days with no log at
// all stay absent from the map, which keeps "no data" distinguishable from
// an explicitly incomplete day.
func DayBuckets(logs []models.HabitLog) map[string]bool {
	buckets := make(map[string]bool, len(logs))
	for _, l := range logs {
		buckets[l.Date] = buckets[l.Date] || l.Completed
	}
	return buckets
}

// CompletedCount counts log rows with status COMPLETED.
func CompletedCount(logs []models.HabitLog) int {
	n := 0
	for _, l := range logs {
		if l.Status == models.StatusCompleted {
			n++
		}
	}
	return n
}

func filterTaskType(logs []models.HabitLog, t models.TaskType) []models.HabitLog {
	var out []models.HabitLog
	for _, l := range logs {
		if l.TaskType == t {
			out = append(out, l)
		}
	}
	return out
}
