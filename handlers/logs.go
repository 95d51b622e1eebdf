package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Matthieu-Mary/mono-habit-sub000/dates"
	"github.com/Matthieu-Mary/mono-habit-sub000/middleware"
	"github.com/Matthieu-Mary/mono-habit-sub000/models"
	"github.com/Matthieu-Mary/mono-habit-sub000/repository"
)

// LogHandler handles habit-log completion and the monthly calendar view
type LogHandler struct {
	logRepo *repository.LogRepository
	logger  *slog.Logger
}

// NewLogHandler creates a new log handler
func NewLogHandler(logRepo *repository.LogRepository, logger *slog.Logger) *LogHandler {
	return &LogHandler{
		logRepo: logRepo,
		logger:  logger,
	}
}

// CompleteLog handles PUT /api/logs/{id}/complete. Only a PENDING log can
// be completed; COMPLETED is terminal and MISSED days stay missed.
func (h *LogHandler) CompleteLog(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		h.logger.Warn("invalid log ID", "id", idStr)
		http.Error(w, "Invalid log ID", http.StatusBadRequest)
		return
	}

	userID := middleware.UserID(r)

	log, err := h.logRepo.GetByID(id, userID)
	if err != nil {
		h.logger.Error("failed to get log", "error", err, "id", id)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if log == nil {
		http.Error(w, "Log not found", http.StatusNotFound)
		return
	}

	ok, err := h.logRepo.Complete(id, userID)
	if err != nil {
		h.logger.Error("failed to complete log", "error", err, "id", id)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Log is not pending", http.StatusConflict)
		return
	}

	h.logger.Info("log completed", "log_id", id, "date", log.Date)

	updated, err := h.logRepo.GetByID(id, userID)
	if err != nil {
		h.logger.Error("failed to reload log", "error", err, "id", id)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}

// GetCalendar handles GET /api/calendar/{year}/{month}: the month's logs,
// one entry per habit per day, after reconciling stale pending rows.
func (h *LogHandler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || year < 1 {
		http.Error(w, "Invalid year", http.StatusBadRequest)
		return
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || month < 1 || month > 12 {
		http.Error(w, "Invalid month", http.StatusBadRequest)
		return
	}

	userID := middleware.UserID(r)

	// Stale PENDING rows must become MISSED before the month is read.
	if _, err := h.logRepo.ReconcileStale(userID, dates.DayKey(time.Now())); err != nil {
		h.logger.Error("failed to reconcile logs", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	logs, err := h.logRepo.ForRange(userID,
		dates.DayKey(dates.MonthStart(year, month)),
		dates.DayKey(dates.MonthEnd(year, month)),
	)
	if err != nil {
		h.logger.Error("failed to get calendar logs", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	entries := make([]models.CalendarEntry, 0, len(logs))
	for _, l := range logs {
		day, err := dates.ParseDay(l.Date)
		if err != nil {
			h.logger.Error("malformed log date", "error", err, "log_id", l.ID)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		entries = append(entries, models.CalendarEntry{
			ID:        l.ID,
			HabitID:   l.HabitID,
			Title:     l.Title,
			Status:    l.Status,
			Date:      l.Date,
			Day:       day.Day(),
			Completed: l.Completed,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.CalendarResponse{
		Month:       month,
		Year:        year,
		DaysInMonth: dates.DaysInMonth(year, month),
		Habits:      entries,
	})
}
