package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Matthieu-Mary/mono-habit-sub000/models"
)

// HabitRepository handles database operations for habits
type HabitRepository struct {
	db *sql.DB
}

// NewHabitRepository creates the habits table and returns the repository
func NewHabitRepository(db *sql.DB) (*HabitRepository, error) {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS habits (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		name TEXT NOT NULL,
		description TEXT,
		task_type TEXT NOT NULL,
		frequency TEXT NOT NULL DEFAULT 'DAILY',
		start_date TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`

	if _, err := db.Exec(createTableSQL); err != nil {
		return nil, fmt.Errorf("failed to create habits table: %w", err)
	}

	return &HabitRepository{db: db}, nil
}

const habitColumns = "id, user_id, name, description, task_type, frequency, start_date, created_at"

func scanHabit(row interface{ Scan(...any) error }) (*models.Habit, error) {
	var h models.Habit
	err := row.Scan(&h.ID, &h.UserID, &h.Name, &h.Description, &h.TaskType, &h.Frequency, &h.StartDate, &h.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// GetAll retrieves all habits owned by the user
func (r *HabitRepository) GetAll(userID int) ([]models.Habit, error) {
	rows, err := r.db.Query(
		"SELECT "+habitColumns+" FROM habits WHERE user_id = ? ORDER BY created_at DESC",
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, *h)
	}

	return habits, rows.Err()
}

// GetByID retrieves a single habit, scoped to its owner
func (r *HabitRepository) GetByID(id, userID int) (*models.Habit, error) {
	h, err := scanHabit(r.db.QueryRow(
		"SELECT "+habitColumns+" FROM habits WHERE id = ? AND user_id = ?",
		id, userID,
	))

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return h, nil
}

// Create adds a new habit for the user
func (r *HabitRepository) Create(userID int, name, description string, taskType models.TaskType, startDate string) (*models.Habit, error) {
	result, err := r.db.Exec(
		"INSERT INTO habits (user_id, name, description, task_type, frequency, start_date, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		userID, name, description, taskType, models.FrequencyDaily, startDate, time.Now(),
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

// Update modifies an existing habit's name, description and category
func (r *HabitRepository) Update(id, userID int, name, description string, taskType models.TaskType) (*models.Habit, error) {
	_, err := r.db.Exec(
		"UPDATE habits SET name = ?, description = ?, task_type = ? WHERE id = ? AND user_id = ?",
		name, description, taskType, id, userID,
	)
	if err != nil {
		return nil, err
	}

	return r.GetByID(id, userID)
}

// Delete removes a habit and every log attached to it
func (r *HabitRepository) Delete(id, userID int) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM habit_logs WHERE habit_id = ? AND user_id = ?", id, userID); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM habits WHERE id = ? AND user_id = ?", id, userID); err != nil {
		return err
	}

	return tx.Commit()
}
