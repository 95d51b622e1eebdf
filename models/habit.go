package models

import "time"

// TaskType is the category of a habit.
type TaskType string

const (
	TaskSport   TaskType = "SPORT"
	TaskSante   TaskType = "SANTE"
	TaskTravail TaskType = "TRAVAIL"
	TaskLoisirs TaskType = "LOISIRS"
)

// Valid reports whether t is one of the known categories.
func (t TaskType) Valid() bool {
	switch t {
	case TaskSport, TaskSante, TaskTravail, TaskLoisirs:
		return true
	}
	return false
}

// Frequency describes how often a habit is scheduled. Only daily is offered
// today; the column exists so weekly habits won't need a schema migration.
type Frequency string

const FrequencyDaily Frequency = "DAILY"

// Habit represents a recurring task that a user wants to track
type Habit struct {
	ID          int       `json:"id"`
	UserID      int       `json:"userId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	TaskType    TaskType  `json:"taskType"`
	Frequency   Frequency `json:"frequency"`
	StartDate   string    `json:"startDate"` // YYYY-MM-DD
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateHabitRequest is the payload for creating a new habit
type CreateHabitRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	TaskType    TaskType `json:"taskType"`
	StartDate   string   `json:"startDate"` // optional, defaults to today
}

// UpdateHabitRequest is the payload for updating a habit
type UpdateHabitRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	TaskType    TaskType `json:"taskType"`
}
