package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Matthieu-Mary/mono-habit-sub000/models"
)

// ChallengeRepository handles database operations for monthly challenges
type ChallengeRepository struct {
	db *sql.DB
}

// NewChallengeRepository creates the challenges table and returns the repository
func NewChallengeRepository(db *sql.DB) (*ChallengeRepository, error) {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS challenges (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		type TEXT NOT NULL,
		goal INTEGER NOT NULL,
		task_type TEXT,
		reward TEXT,
		penalty TEXT,
		status TEXT NOT NULL DEFAULT 'ACTIVE',
		month INTEGER NOT NULL,
		year INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`

	if _, err := db.Exec(createTableSQL); err != nil {
		return nil, fmt.Errorf("failed to create challenges table: %w", err)
	}

	return &ChallengeRepository{db: db}, nil
}

const challengeColumns = "id, user_id, type, goal, task_type, reward, penalty, status, month, year, created_at"

func scanChallenge(row interface{ Scan(...any) error }) (*models.Challenge, error) {
	var c models.Challenge
	var taskType sql.NullString
	err := row.Scan(&c.ID, &c.UserID, &c.Type, &c.Goal, &taskType, &c.Reward, &c.Penalty, &c.Status, &c.Month, &c.Year, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	if taskType.Valid {
		t := models.TaskType(taskType.String)
		c.TaskType = &t
	}
	return &c, nil
}

// Create adds a new ACTIVE challenge for the given month
func (r *ChallengeRepository) Create(userID int, req models.CreateChallengeRequest, month, year int) (*models.Challenge, error) {
	var taskType any
	if req.TaskType != nil {
		taskType = string(*req.TaskType)
	}

	result, err := r.db.Exec(
		"INSERT INTO challenges (user_id, type, goal, task_type, reward, penalty, status, month, year, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		userID, req.Type, req.Goal, taskType, req.Reward, req.Penalty, models.ChallengeActive, month, year, time.Now(),
	)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return r.GetByID(int(id), userID)
}

// GetByID retrieves a single challenge, scoped to its owner
func (r *ChallengeRepository) GetByID(id, userID int) (*models.Challenge, error) {
	c, err := scanChallenge(r.db.QueryRow(
		"SELECT "+challengeColumns+" FROM challenges WHERE id = ? AND user_id = ?",
		id, userID,
	))

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return c, nil
}

// GetActive retrieves the user's active challenge for the given month, or
// nil when there is none. One active challenge per month is a convention,
// not a constraint; the most recent one wins.
func (r *ChallengeRepository) GetActive(userID, month, year int) (*models.Challenge, error) {
	c, err := scanChallenge(r.db.QueryRow(
		"SELECT "+challengeColumns+" FROM challenges WHERE user_id = ? AND month = ? AND year = ? AND status = ? ORDER BY created_at DESC, id DESC LIMIT 1",
		userID, month, year, models.ChallengeActive,
	))

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return c, nil
}

// List retrieves all of the user's challenges, newest first
func (r *ChallengeRepository) List(userID int) ([]models.Challenge, error) {
	rows, err := r.db.Query(
		"SELECT "+challengeColumns+" FROM challenges WHERE user_id = ? ORDER BY year DESC, month DESC, created_at DESC",
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var challenges []models.Challenge
	for rows.Next() {
		c, err := scanChallenge(rows)
		if err != nil {
			return nil, err
		}
		challenges = append(challenges, *c)
	}

	return challenges, rows.Err()
}

// UpdateStatus moves a challenge to COMPLETED or FAILED
func (r *ChallengeRepository) UpdateStatus(id, userID int, status models.ChallengeStatus) (*models.Challenge, error) {
	_, err := r.db.Exec(
		"UPDATE challenges SET status = ? WHERE id = ? AND user_id = ?",
		status, id, userID,
	)
	if err != nil {
		return nil, err
	}

	return r.GetByID(id, userID)
}

// Delete removes a challenge
func (r *ChallengeRepository) Delete(id, userID int) error {
	_, err := r.db.Exec("DELETE FROM challenges WHERE id = ? AND user_id = ?", id, userID)
	return err
}
