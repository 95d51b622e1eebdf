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
	"github.com/Matthieu-Mary/mono-habit-sub000/stats"
)

// ChallengeHandler handles monthly challenges and their progress scoring
type ChallengeHandler struct {
	challengeRepo *repository.ChallengeRepository
	logRepo       *repository.LogRepository
	logger        *slog.Logger
}

// NewChallengeHandler creates a new challenge handler
func NewChallengeHandler(challengeRepo *repository.ChallengeRepository, logRepo *repository.LogRepository, logger *slog.Logger) *ChallengeHandler {
	return &ChallengeHandler{
		challengeRepo: challengeRepo,
		logRepo:       logRepo,
		logger:        logger,
	}
}

// CreateChallenge handles POST /api/challenges for the current month
func (h *ChallengeHandler) CreateChallenge(w http.ResponseWriter, r *http.Request) {
	var req models.CreateChallengeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid request body", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if !req.Type.Valid() {
		http.Error(w, "Invalid challenge type", http.StatusBadRequest)
		return
	}
	if req.Goal < 1 {
		http.Error(w, "Goal must be at least 1", http.StatusBadRequest)
		return
	}
	if req.Type == models.ChallengeTaskTypeGoal && req.TaskType == nil {
		http.Error(w, "Task type is required for this challenge", http.StatusBadRequest)
		return
	}
	if req.TaskType != nil && !req.TaskType.Valid() {
		http.Error(w, "Invalid task type", http.StatusBadRequest)
		return
	}

	userID := middleware.UserID(r)
	now := time.Now()

	h.logger.Info("creating challenge", "type", req.Type, "goal", req.Goal, "user_id", userID)

	challenge, err := h.challengeRepo.Create(userID, req, int(now.Month()), now.Year())
	if err != nil {
		h.logger.Error("failed to create challenge", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(challenge)
}

// GetChallenges handles GET /api/challenges
func (h *ChallengeHandler) GetChallenges(w http.ResponseWriter, r *http.Request) {
	challenges, err := h.challengeRepo.List(middleware.UserID(r))
	if err != nil {
		h.logger.Error("failed to get challenges", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if challenges == nil {
		challenges = []models.Challenge{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(challenges)
}

// UpdateChallengeStatus handles PUT /api/challenges/{id}/status: closing a
// challenge out as COMPLETED or FAILED.
func (h *ChallengeHandler) UpdateChallengeStatus(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		h.logger.Warn("invalid challenge ID", "id", idStr)
		http.Error(w, "Invalid challenge ID", http.StatusBadRequest)
		return
	}

	var req models.UpdateChallengeStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Status != models.ChallengeCompleted && req.Status != models.ChallengeFailed {
		http.Error(w, "Status must be COMPLETED or FAILED", http.StatusBadRequest)
		return
	}

	userID := middleware.UserID(r)

	existing, err := h.challengeRepo.GetByID(id, userID)
	if err != nil {
		h.logger.Error("failed to get challenge", "error", err, "id", id)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if existing == nil {
		http.Error(w, "Challenge not found", http.StatusNotFound)
		return
	}

	challenge, err := h.challengeRepo.UpdateStatus(id, userID, req.Status)
	if err != nil {
		h.logger.Error("failed to update challenge", "error", err, "id", id)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(challenge)
}

// DeleteChallenge handles DELETE /api/challenges/{id}
func (h *ChallengeHandler) DeleteChallenge(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		h.logger.Warn("invalid challenge ID", "id", idStr)
		http.Error(w, "Invalid challenge ID", http.StatusBadRequest)
		return
	}

	userID := middleware.UserID(r)

	existing, err := h.challengeRepo.GetByID(id, userID)
	if err != nil {
		h.logger.Error("failed to get challenge", "error", err, "id", id)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if existing == nil {
		http.Error(w, "Challenge not found", http.StatusNotFound)
		return
	}

	if err := h.challengeRepo.Delete(id, userID); err != nil {
		h.logger.Error("failed to delete challenge", "error", err, "id", id)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetProgress handles GET /api/challenges/progress: scores the current
// month's ACTIVE challenge against the user's logs. No active challenge is
// a 404, not a zeroed payload.
func (h *ChallengeHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	now := time.Now()
	year, month := now.Year(), int(now.Month())

	if _, err := h.logRepo.ReconcileStale(userID, dates.DayKey(now)); err != nil {
		h.logger.Error("failed to reconcile logs", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	challenge, err := h.challengeRepo.GetActive(userID, month, year)
	if err != nil {
		h.logger.Error("failed to get active challenge", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if challenge == nil {
		http.Error(w, "No active challenge", http.StatusNotFound)
		return
	}

	monthLogs, err := h.logRepo.ForRange(userID,
		dates.DayKey(dates.MonthStart(year, month)),
		dates.DayKey(dates.MonthEnd(year, month)),
	)
	if err != nil {
		h.logger.Error("failed to get month logs", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// Trailing 30-day window ending today, for STREAK_DAYS challenges.
	trailing, err := h.logRepo.ForRange(userID,
		dates.DayKey(dates.AddDays(now, -29)),
		dates.DayKey(now),
	)
	if err != nil {
		h.logger.Error("failed to get trailing logs", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	progress, err := stats.EvaluateProgress(*challenge, stats.ProgressInput{
		MonthLogs:    monthLogs,
		TrailingLogs: trailing,
		Today:        now,
	})
	if err != nil {
		h.logger.Error("failed to evaluate challenge", "error", err, "challenge_id", challenge.ID)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(progress)
}
