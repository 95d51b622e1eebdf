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

// HabitHandler handles all habit-related HTTP requests
type HabitHandler struct {
	habitRepo *repository.HabitRepository
	logRepo   *repository.LogRepository
	logger    *slog.Logger
}

// NewHabitHandler creates a new handler
func NewHabitHandler(habitRepo *repository.HabitRepository, logRepo *repository.LogRepository, logger *slog.Logger) *HabitHandler {
	return &HabitHandler{
		habitRepo: habitRepo,
		logRepo:   logRepo,
		logger:    logger,
	}
}

// GetAllHabits handles GET /api/habits
func (h *HabitHandler) GetAllHabits(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	habits, err := h.habitRepo.GetAll(userID)
	if err != nil {
		h.logger.Error("failed to get habits", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// Return empty array instead of null if no habits
	if habits == nil {
		habits = []models.Habit{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(habits)
}

// GetHabit handles GET /api/habits/{id}
func (h *HabitHandler) GetHabit(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		h.logger.Warn("invalid habit ID", "id", idStr)
		http.Error(w, "Invalid habit ID", http.StatusBadRequest)
		return
	}

	habit, err := h.habitRepo.GetByID(id, middleware.UserID(r))
	if err != nil {
		h.logger.Error("failed to get habit", "error", err, "id", id)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if habit == nil {
		http.Error(w, "Habit not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(habit)
}

// CreateHabit handles POST /api/habits. The new habit's current month is
// seeded with one log per day so the calendar and the reconciler have
// rows to work with.
func (h *HabitHandler) CreateHabit(w http.ResponseWriter, r *http.Request) {
	var req models.CreateHabitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid request body", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Name == "" {
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}
	if !req.TaskType.Valid() {
		http.Error(w, "Invalid task type", http.StatusBadRequest)
		return
	}

	today := dates.DayKey(time.Now())
	startDate := req.StartDate
	if startDate == "" {
		startDate = today
	} else if _, err := dates.ParseDay(startDate); err != nil {
		http.Error(w, "Invalid start date", http.StatusBadRequest)
		return
	}

	userID := middleware.UserID(r)
	h.logger.Info("creating habit", "name", req.Name, "user_id", userID)

	habit, err := h.habitRepo.Create(userID, req.Name, req.Description, req.TaskType, startDate)
	if err != nil {
		h.logger.Error("failed to create habit", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if err := h.logRepo.SeedMonth(habit, today); err != nil {
		h.logger.Error("failed to seed habit logs", "error", err, "habit_id", habit.ID)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(habit)
}

// UpdateHabit handles PUT /api/habits/{id}
func (h *HabitHandler) UpdateHabit(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		h.logger.Warn("invalid habit ID", "id", idStr)
		http.Error(w, "Invalid habit ID", http.StatusBadRequest)
		return
	}

	var req models.UpdateHabitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid request body", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Name == "" {
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}
	if !req.TaskType.Valid() {
		http.Error(w, "Invalid task type", http.StatusBadRequest)
		return
	}

	userID := middleware.UserID(r)

	existing, err := h.habitRepo.GetByID(id, userID)
	if err != nil {
		h.logger.Error("failed to get habit", "error", err, "id", id)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if existing == nil {
		http.Error(w, "Habit not found", http.StatusNotFound)
		return
	}

	habit, err := h.habitRepo.Update(id, userID, req.Name, req.Description, req.TaskType)
	if err != nil {
		h.logger.Error("failed to update habit", "error", err, "id", id)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(habit)
}

// DeleteHabit handles DELETE /api/habits/{id}
func (h *HabitHandler) DeleteHabit(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		h.logger.Warn("invalid habit ID", "id", idStr)
		http.Error(w, "Invalid habit ID", http.StatusBadRequest)
		return
	}

	userID := middleware.UserID(r)

	existing, err := h.habitRepo.GetByID(id, userID)
	if err != nil {
		h.logger.Error("failed to get habit", "error", err, "id", id)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if existing == nil {
		http.Error(w, "Habit not found", http.StatusNotFound)
		return
	}

	if err := h.habitRepo.Delete(id, userID); err != nil {
		h.logger.Error("failed to delete habit", "error", err, "id", id)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteFutureLogs handles DELETE /api/habits/{id}/future: it drops the
// habit's pending logs dated after today, and removes the habit itself
// when no logs remain.
func (h *HabitHandler) DeleteFutureLogs(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		h.logger.Warn("invalid habit ID", "id", idStr)
		http.Error(w, "Invalid habit ID", http.StatusBadRequest)
		return
	}

	userID := middleware.UserID(r)

	existing, err := h.habitRepo.GetByID(id, userID)
	if err != nil {
		h.logger.Error("failed to get habit", "error", err, "id", id)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if existing == nil {
		http.Error(w, "Habit not found", http.StatusNotFound)
		return
	}

	habitDeleted, err := h.logRepo.DeleteFuturePending(id, userID, dates.DayKey(time.Now()))
	if err != nil {
		h.logger.Error("failed to delete future logs", "error", err, "id", id)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.Info("future logs removed", "habit_id", id, "habit_deleted", habitDeleted)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"habitDeleted": habitDeleted})
}
