package models

import "time"

// ChallengeType selects how a monthly challenge is scored.
type ChallengeType string

const (
	ChallengeMonthlyTasks ChallengeType = "MONTHLY_TASKS"
	ChallengeStreakDays   ChallengeType = "STREAK_DAYS"
	ChallengePerfectMonth ChallengeType = "PERFECT_MONTH"
	ChallengeTaskTypeGoal ChallengeType = "TASK_TYPE_GOAL"
)

// Valid reports whether t is one of the four challenge kinds.
func (t ChallengeType) Valid() bool {
	switch t {
	case ChallengeMonthlyTasks, ChallengeStreakDays, ChallengePerfectMonth, ChallengeTaskTypeGoal:
		return true
	}
	return false
}

// ChallengeStatus is the lifecycle state of a challenge.
type ChallengeStatus string

const (
	ChallengeActive    ChallengeStatus = "ACTIVE"
	ChallengeCompleted ChallengeStatus = "COMPLETED"
	ChallengeFailed    ChallengeStatus = "FAILED"
)

// Valid reports whether s is a known challenge status.
func (s ChallengeStatus) Valid() bool {
	switch s {
	case ChallengeActive, ChallengeCompleted, ChallengeFailed:
		return true
	}
	return false
}

// Challenge is a user-defined monthly goal with a reward and a penalty.
// TaskType is only set for TASK_TYPE_GOAL challenges.
type Challenge struct {
	ID        int             `json:"id"`
	UserID    int             `json:"userId"`
	Type      ChallengeType   `json:"type"`
	Goal      int             `json:"goal"`
	TaskType  *TaskType       `json:"taskType,omitempty"`
	Reward    string          `json:"reward"`
	Penalty   string          `json:"penalty"`
	Status    ChallengeStatus `json:"status"`
	Month     int             `json:"month"` // 1-12
	Year      int             `json:"year"`
	CreatedAt time.Time       `json:"createdAt"`
}

// CreateChallengeRequest is the payload for creating a challenge
type CreateChallengeRequest struct {
	Type     ChallengeType `json:"type"`
	Goal     int           `json:"goal"`
	TaskType *TaskType     `json:"taskType,omitempty"`
	Reward   string        `json:"reward"`
	Penalty  string        `json:"penalty"`
}

// UpdateChallengeStatusRequest is the payload for closing out a challenge
type UpdateChallengeStatusRequest struct {
	Status ChallengeStatus `json:"status"`
}

// ChallengeProgress is the scored state of the active challenge.
// Progress is the raw (unclamped) numerator; Percentage is clamped to [0, 100].
type ChallengeProgress struct {
	Challenge  Challenge `json:"challenge"`
	Progress   int       `json:"progress"`
	Total      int       `json:"total"`
	Percentage int       `json:"percentage"`
}
