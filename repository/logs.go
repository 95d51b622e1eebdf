package repository

import (
	"database/sql"
	"fmt"

	"github.com/Matthieu-Mary/mono-habit-sub000/dates"
	"github.com/Matthieu-Mary/mono-habit-sub000/models"
)

// LogRepository handles database operations for habit logs. It also owns
// the stale-log reconciliation pass that runs before every monthly read.
type LogRepository struct {
	db *sql.DB
}

// NewLogRepository creates the habit_logs table and returns the repository
func NewLogRepository(db *sql.DB) (*LogRepository, error) {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS habit_logs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		habit_id INTEGER NOT NULL,
		user_id INTEGER NOT NULL,
		date TEXT NOT NULL,
		completed INTEGER NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'PENDING',
		UNIQUE(habit_id, date)
	);
	CREATE INDEX IF NOT EXISTS idx_habit_logs_user_date ON habit_logs(user_id, date);`

	if _, err := db.Exec(createTableSQL); err != nil {
		return nil, fmt.Errorf("failed to create habit_logs table: %w", err)
	}

	return &LogRepository{db: db}, nil
}

// SeedMonth inserts one log per day of the habit's current month, from the
// first of the month through the last. Days before the habit's start date
// are recorded as unscheduled (past or future relative to today) so the
// calendar can render them; scheduled days start out PENDING.
func (r *LogRepository) SeedMonth(habit *models.Habit, today string) error {
	start, err := dates.ParseDay(today)
	if err != nil {
		return err
	}
	habitStart, err := dates.ParseDay(habit.StartDate)
	if err != nil {
		return err
	}

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	monthEnd := dates.MonthEnd(start.Year(), int(start.Month()))
	for d := dates.MonthStart(start.Year(), int(start.Month())); !d.After(monthEnd); d = dates.AddDays(d, 1) {
		status := models.StatusPending
		if d.Before(habitStart) {
			if d.After(start) {
				status = models.StatusFutureUnscheduled
			} else {
				status = models.StatusPastUnscheduled
			}
		}
		_, err := tx.Exec(
			"INSERT OR IGNORE INTO habit_logs (habit_id, user_id, date, completed, status) VALUES (?, ?, ?, 0, ?)",
			habit.ID, habit.UserID, dates.DayKey(d), status,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

const logColumns = "l.id, l.habit_id, l.user_id, l.date, l.completed, l.status, h.name, h.task_type"

// ForRange retrieves the user's logs between two day keys (inclusive),
// joined with each log's habit title and category, ordered by date.
func (r *LogRepository) ForRange(userID int, from, to string) ([]models.HabitLog, error) {
	rows, err := r.db.Query(
		`SELECT `+logColumns+`
		 FROM habit_logs l
		 JOIN habits h ON h.id = l.habit_id
		 WHERE l.user_id = ? AND l.date >= ? AND l.date <= ?
		 ORDER BY l.date, l.habit_id`,
		userID, from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.HabitLog
	for rows.Next() {
		var l models.HabitLog
		if err := rows.Scan(&l.ID, &l.HabitID, &l.UserID, &l.Date, &l.Completed, &l.Status, &l.Title, &l.TaskType); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}

	return logs, rows.Err()
}

// GetByID retrieves a single log, scoped to its owner
func (r *LogRepository) GetByID(id, userID int) (*models.HabitLog, error) {
	var l models.HabitLog
	err := r.db.QueryRow(
		`SELECT `+logColumns+`
		 FROM habit_logs l
		 JOIN habits h ON h.id = l.habit_id
		 WHERE l.id = ? AND l.user_id = ?`,
		id, userID,
	).Scan(&l.ID, &l.HabitID, &l.UserID, &l.Date, &l.Completed, &l.Status, &l.Title, &l.TaskType)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &l, nil
}

// Complete flips a PENDING log to COMPLETED. Returns false when the log
// was not pending (COMPLETED is terminal, MISSED stays missed).
func (r *LogRepository) Complete(id, userID int) (bool, error) {
	result, err := r.db.Exec(
		"UPDATE habit_logs SET completed = 1, status = ? WHERE id = ? AND user_id = ? AND status = ?",
		models.StatusCompleted, id, userID, models.StatusPending,
	)
	if err != nil {
		return false, err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ReconcileStale flips every PENDING log dated strictly before the given
// day to MISSED with completed=false. Idempotent: rows already MISSED are
// untouched, and PENDING-and-past rows only ever move toward MISSED.
func (r *LogRepository) ReconcileStale(userID int, before string) (int64, error) {
	result, err := r.db.Exec(
		"UPDATE habit_logs SET status = ?, completed = 0 WHERE user_id = ? AND status = ? AND date < ?",
		models.StatusMissed, userID, models.StatusPending, before,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// DeleteFuturePending removes the habit's PENDING logs dated strictly
// after the given day. If that leaves the habit with no logs at all, the
// orphaned habit is deleted too. Reports whether the habit was removed.
func (r *LogRepository) DeleteFuturePending(habitID, userID int, after string) (bool, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"DELETE FROM habit_logs WHERE habit_id = ? AND user_id = ? AND status = ? AND date > ?",
		habitID, userID, models.StatusPending, after,
	)
	if err != nil {
		return false, err
	}

	var remaining int
	if err := tx.QueryRow("SELECT COUNT(*) FROM habit_logs WHERE habit_id = ?", habitID).Scan(&remaining); err != nil {
		return false, err
	}

	habitDeleted := remaining == 0
	if habitDeleted {
		if _, err := tx.Exec("DELETE FROM habits WHERE id = ? AND user_id = ?", habitID, userID); err != nil {
			return false, err
		}
	}

	return habitDeleted, tx.Commit()
}
