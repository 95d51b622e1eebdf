package stats

import (
	"math"
	"sort"

	"github.com/Matthieu-Mary/mono-habit-sub000/dates"
	"github.com/Matthieu-Mary/mono-habit-sub000/models"
)

// SuccessRate is the percentage of elapsed days covered by completed
// tasks, rounded to the nearest integer. The denominator is clamped to 1
// so a zero-elapsed edge case can't divide by zero.
func SuccessRate(completedTasks, daysElapsed int) int {
	if daysElapsed < 1 {
		daysElapsed = 1
	}
	return int(math.Round(float64(completedTasks) / float64(daysElapsed) * 100))
}

// FavoriteTypes returns the task type(s) with the most distinct habits in
// the given logs. Ties return every tied type (sorted, for stable JSON);
// no logged habits at all returns nil, not an empty slice.
func FavoriteTypes(logs []models.HabitLog) []models.TaskType {
	habitType := make(map[int]models.TaskType)
	for _, l := range logs {
		if l.TaskType != "" {
			habitType[l.HabitID] = l.TaskType
		}
	}
	if len(habitType) == 0 {
		return nil
	}

	counts := make(map[models.TaskType]int)
	for _, t := range habitType {
		counts[t]++
	}
	max := 0
	for _, c := range counts {
		if c > max {
			max = c
		}
	}

	var favorites []models.TaskType
	for t, c := range counts {
		if c == max {
			favorites = append(favorites, t)
		}
	}
	sort.Slice(favorites, func(i, j int) bool { return favorites[i] < favorites[j] })
	return favorites
}

// SummarizeMonth rolls one month's logs into its yearly-view entry.
func SummarizeMonth(year, month int, logs []models.HabitLog) models.MonthSummary {
	totalDays := dates.DaysInMonth(year, month)
	completed := CompletedCount(logs)
	return models.MonthSummary{
		Month:          month,
		Year:           year,
		CompletedTasks: completed,
		TotalDays:      totalDays,
		BestStreak:     BestStreak(DayBuckets(logs)),
		IsPerfect:      completed == totalDays,
		FavoriteTypes:  FavoriteTypes(logs),
	}
}

// EmptyMonth is the placeholder summary for a month still in the future.
// It carries the month's length but no data, and is emitted without
// touching the store.
func EmptyMonth(year, month int) models.MonthSummary {
	return models.MonthSummary{
		Month:     month,
		Year:      year,
		TotalDays: dates.DaysInMonth(year, month),
	}
}
