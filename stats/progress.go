package stats

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/Matthieu-Mary/mono-habit-sub000/dates"
	"github.com/Matthieu-Mary/mono-habit-sub000/models"
)

// ErrMissingTaskType means a TASK_TYPE_GOAL challenge has no task type to
// filter on.
var ErrMissingTaskType = errors.New("challenge has no task type")

// ProgressInput carries the log windows a challenge can be scored against.
// MonthLogs covers the challenge's month; TrailingLogs covers the 30 days
// ending at Today and is only read by STREAK_DAYS challenges.
type ProgressInput struct {
	MonthLogs    []models.HabitLog
	TrailingLogs []models.HabitLog
	Today        time.Time
}

// EvaluateProgress scores a challenge against the user's logs. Progress is
// the raw numerator (never clamped, so over-achieving reports e.g. 25/20)
// while the percentage is clamped to 100.
func EvaluateProgress(ch models.Challenge, in ProgressInput) (models.ChallengeProgress, error) {
	var progress, total int

	switch ch.Type {
	case models.ChallengeMonthlyTasks:
		logs := in.MonthLogs
		if ch.TaskType != nil {
			logs = filterTaskType(logs, *ch.TaskType)
		}
		progress = CompletedCount(logs)
		total = ch.Goal

	case models.ChallengeStreakDays:
		progress = CurrentStreak(DayBuckets(in.TrailingLogs), in.Today)
		total = ch.Goal

	case models.ChallengePerfectMonth:
		progress = completedDayCount(in.MonthLogs, in.Today)
		total = dates.StartOfDay(in.Today).Day()

	case models.ChallengeTaskTypeGoal:
		if ch.TaskType == nil {
			return models.ChallengeProgress{}, ErrMissingTaskType
		}
		progress = CompletedCount(filterTaskType(in.MonthLogs, *ch.TaskType))
		total = ch.Goal

	default:
		return models.ChallengeProgress{}, fmt.Errorf("unknown challenge type %q", ch.Type)
	}

	return models.ChallengeProgress{
		Challenge:  ch,
		Progress:   progress,
		Total:      total,
		Percentage: Percentage(progress, total),
	}, nil
}

// Percentage rounds progress/total to a whole percent, clamped to 100.
func Percentage(progress, total int) int {
	if total < 1 {
		total = 1
	}
	pct := int(math.Round(float64(progress) / float64(total) * 100))
	if pct > 100 {
		pct = 100
	}
	return pct
}

// completedDayCount counts distinct calendar days, from the start of the
// window through today inclusive, that have at least one completed log.
func completedDayCount(logs []models.HabitLog, today time.Time) int {
	cutoff := dates.DayKey(today)
	seen := make(map[string]struct{})
	for _, l := range logs {
		if l.Status == models.StatusCompleted && l.Date <= cutoff {
			seen[l.Date] = struct{}{}
		}
	}
	return len(seen)
}
