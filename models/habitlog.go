package models

// LogStatus is the lifecycle state of a single day's habit log.
type LogStatus string

const (
	StatusPending           LogStatus = "PENDING"
	StatusCompleted         LogStatus = "COMPLETED"
	StatusMissed            LogStatus = "MISSED"
	StatusFutureUnscheduled LogStatus = "FUTURE_UNSCHEDULED"
	StatusPastUnscheduled   LogStatus = "PAST_UNSCHEDULED"
)

// HabitLog is one completion-attempt row: one per (habit, calendar day).
// Invariant: Completed == true implies Status == COMPLETED. Title and
// TaskType come from the owning habit when the query joins it in.
type HabitLog struct {
	ID        int       `json:"id"`
	HabitID   int       `json:"habitId"`
	UserID    int       `json:"userId"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Completed bool      `json:"completed"`
	Status    LogStatus `json:"status"`
	Title     string    `json:"title,omitempty"`
	TaskType  TaskType  `json:"taskType,omitempty"`
}
