package stats

import (
	"errors"
	"testing"

	"github.com/Matthieu-Mary/mono-habit-sub000/models"
)

func taskTypePtr(t models.TaskType) *models.TaskType { return &t }

func challenge(typ models.ChallengeType, goal int, taskType *models.TaskType) models.Challenge {
	return models.Challenge{
		ID:       1,
		UserID:   1,
		Type:     typ,
		Goal:     goal,
		TaskType: taskType,
		Status:   models.ChallengeActive,
		Month:    3,
		Year:     2024,
	}
}

// ==================== PERCENTAGE TESTS ====================

func TestPercentage(t *testing.T) {
	cases := []struct {
		progress, total, want int
	}{
		{0, 20, 0},
		{10, 20, 50},
		{1, 3, 33},
		{2, 3, 67},
		{20, 20, 100},
		{25, 20, 100}, // clamped
		{5, 0, 100},   // denominator clamped to 1, then capped
	}
	for _, c := range cases {
		if got := Percentage(c.progress, c.total); got != c.want {
			t.Errorf("Percentage(%d, %d) = %d, want %d", c.progress, c.total, got, c.want)
		}
	}
}

// ==================== MONTHLY_TASKS TESTS ====================

func TestEvaluateProgress_MonthlyTasks(t *testing.T) {
	var logs []models.HabitLog
	for d := 1; d <= 25; d++ {
		logs = append(logs, completedLog(1, mustDayKey(t, 2024, 3, d), models.TaskSport))
	}
	logs = append(logs, missedLog(1, "2024-03-26", models.TaskSport))

	got, err := EvaluateProgress(challenge(models.ChallengeMonthlyTasks, 20, nil), ProgressInput{
		MonthLogs: logs,
		Today:     mustDay(t, "2024-03-26"),
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Over-achieving: numerator stays unclamped, percentage caps at 100.
	if got.Progress != 25 {
		t.Errorf("Expected progress 25, got %d", got.Progress)
	}
	if got.Total != 20 {
		t.Errorf("Expected total 20, got %d", got.Total)
	}
	if got.Percentage != 100 {
		t.Errorf("Expected percentage 100, got %d", got.Percentage)
	}
}

func TestEvaluateProgress_MonthlyTasksWithTypeFilter(t *testing.T) {
	logs := []models.HabitLog{
		completedLog(1, "2024-03-01", models.TaskSport),
		completedLog(2, "2024-03-01", models.TaskSante),
		completedLog(2, "2024-03-02", models.TaskSante),
	}

	got, err := EvaluateProgress(challenge(models.ChallengeMonthlyTasks, 10, taskTypePtr(models.TaskSante)), ProgressInput{
		MonthLogs: logs,
		Today:     mustDay(t, "2024-03-02"),
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got.Progress != 2 {
		t.Errorf("Expected progress 2, got %d", got.Progress)
	}
}

// ==================== STREAK_DAYS TESTS ====================

func TestEvaluateProgress_StreakDays(t *testing.T) {
	// Completed the last 5 days including today.
	var logs []models.HabitLog
	for d := 10; d <= 14; d++ {
		logs = append(logs, completedLog(1, mustDayKey(t, 2024, 3, d), models.TaskSport))
	}

	got, err := EvaluateProgress(challenge(models.ChallengeStreakDays, 10, nil), ProgressInput{
		TrailingLogs: logs,
		Today:        mustDay(t, "2024-03-14"),
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got.Progress != 5 {
		t.Errorf("Expected progress 5, got %d", got.Progress)
	}
	if got.Total != 10 {
		t.Errorf("Expected total 10, got %d", got.Total)
	}
	if got.Percentage != 50 {
		t.Errorf("Expected percentage 50, got %d", got.Percentage)
	}
}

func TestEvaluateProgress_StreakDaysGracePeriod(t *testing.T) {
	// Completed yesterday but not yet today: streak still alive.
	logs := []models.HabitLog{
		completedLog(1, "2024-03-12", models.TaskSport),
		completedLog(1, "2024-03-13", models.TaskSport),
	}

	got, err := EvaluateProgress(challenge(models.ChallengeStreakDays, 10, nil), ProgressInput{
		TrailingLogs: logs,
		Today:        mustDay(t, "2024-03-14"),
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got.Progress != 2 {
		t.Errorf("Expected progress 2, got %d", got.Progress)
	}
}

// ==================== PERFECT_MONTH TESTS ====================

func TestEvaluateProgress_PerfectMonth(t *testing.T) {
	// Two habits completed on day 1 count as one perfect day; days 2 and 3
	// completed once each; day 4 (today) not yet done.
	logs := []models.HabitLog{
		completedLog(1, "2024-03-01", models.TaskSport),
		completedLog(2, "2024-03-01", models.TaskSante),
		completedLog(1, "2024-03-02", models.TaskSport),
		completedLog(1, "2024-03-03", models.TaskSport),
		missedLog(2, "2024-03-02", models.TaskSante),
	}

	got, err := EvaluateProgress(challenge(models.ChallengePerfectMonth, 0, nil), ProgressInput{
		MonthLogs: logs,
		Today:     mustDay(t, "2024-03-04"),
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got.Progress != 3 {
		t.Errorf("Expected 3 distinct completed days, got %d", got.Progress)
	}
	// Denominator is today's day-of-month, not the full month length.
	if got.Total != 4 {
		t.Errorf("Expected total 4, got %d", got.Total)
	}
	if got.Percentage != 75 {
		t.Errorf("Expected percentage 75, got %d", got.Percentage)
	}
}

func TestEvaluateProgress_PerfectMonthIgnoresFutureLogs(t *testing.T) {
	logs := []models.HabitLog{
		completedLog(1, "2024-03-01", models.TaskSport),
		completedLog(1, "2024-03-10", models.TaskSport), // after today
	}

	got, err := EvaluateProgress(challenge(models.ChallengePerfectMonth, 0, nil), ProgressInput{
		MonthLogs: logs,
		Today:     mustDay(t, "2024-03-02"),
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got.Progress != 1 {
		t.Errorf("Expected 1, got %d", got.Progress)
	}
}

// ==================== TASK_TYPE_GOAL TESTS ====================

func TestEvaluateProgress_TaskTypeGoal(t *testing.T) {
	logs := []models.HabitLog{
		completedLog(1, "2024-03-01", models.TaskSport),
		completedLog(1, "2024-03-02", models.TaskSport),
		completedLog(1, "2024-03-03", models.TaskSport),
		completedLog(2, "2024-03-01", models.TaskTravail),
		completedLog(2, "2024-03-02", models.TaskTravail),
		completedLog(3, "2024-03-01", models.TaskLoisirs),
		completedLog(3, "2024-03-02", models.TaskLoisirs),
		completedLog(3, "2024-03-03", models.TaskLoisirs),
	}

	got, err := EvaluateProgress(challenge(models.ChallengeTaskTypeGoal, 10, taskTypePtr(models.TaskSport)), ProgressInput{
		MonthLogs: logs,
		Today:     mustDay(t, "2024-03-03"),
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got.Progress != 3 {
		t.Errorf("Expected progress 3 (SPORT only), got %d", got.Progress)
	}
	if got.Total != 10 {
		t.Errorf("Expected total 10, got %d", got.Total)
	}
}

func TestEvaluateProgress_TaskTypeGoalMissingType(t *testing.T) {
	_, err := EvaluateProgress(challenge(models.ChallengeTaskTypeGoal, 10, nil), ProgressInput{
		Today: mustDay(t, "2024-03-03"),
	})
	if !errors.Is(err, ErrMissingTaskType) {
		t.Errorf("Expected ErrMissingTaskType, got %v", err)
	}
}

func TestEvaluateProgress_UnknownType(t *testing.T) {
	_, err := EvaluateProgress(challenge("WEEKLY_TASKS", 10, nil), ProgressInput{
		Today: mustDay(t, "2024-03-03"),
	})
	if err == nil {
		t.Error("Expected error for unknown challenge type")
	}
}
