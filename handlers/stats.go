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

// StatsHandler serves the monthly and yearly statistics views
type StatsHandler struct {
	logRepo       *repository.LogRepository
	challengeRepo *repository.ChallengeRepository
	logger        *slog.Logger
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(logRepo *repository.LogRepository, challengeRepo *repository.ChallengeRepository, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{
		logRepo:       logRepo,
		challengeRepo: challengeRepo,
		logger:        logger,
	}
}

// GetMonthlyStats handles GET /api/stats/monthly: the current month's
// headline numbers plus the 12-month rollup of the current year.
func (h *StatsHandler) GetMonthlyStats(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	now := time.Now()
	year, month := now.Year(), int(now.Month())

	if _, err := h.logRepo.ReconcileStale(userID, dates.DayKey(now)); err != nil {
		h.logger.Error("failed to reconcile logs", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
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

	challenge, err := h.challengeRepo.GetActive(userID, month, year)
	if err != nil {
		h.logger.Error("failed to get active challenge", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	summaries, err := h.yearSummaries(userID, year, now)
	if err != nil {
		h.logger.Error("failed to build yearly rollup", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	buckets := stats.DayBuckets(monthLogs)
	response := models.MonthlyStatsResponse{
		CurrentMonth: models.CurrentMonthStats{
			SuccessRate:   stats.SuccessRate(stats.CompletedCount(monthLogs), dates.DaysElapsed(year, month, now)),
			CurrentStreak: stats.CurrentStreak(buckets, now),
			BestStreak:    stats.BestStreak(buckets),
			FavoriteTypes: stats.FavoriteTypes(monthLogs),
			Challenge:     challenge,
		},
		MonthlyStats: summaries,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// GetYearlyStats handles GET /api/stats/yearly/{year}: an ordered array of
// 12 month summaries.
func (h *StatsHandler) GetYearlyStats(w http.ResponseWriter, r *http.Request) {
	yearStr := chi.URLParam(r, "year")
	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 1 {
		h.logger.Warn("invalid year", "year", yearStr)
		http.Error(w, "Invalid year", http.StatusBadRequest)
		return
	}

	userID := middleware.UserID(r)
	now := time.Now()

	if _, err := h.logRepo.ReconcileStale(userID, dates.DayKey(now)); err != nil {
		h.logger.Error("failed to reconcile logs", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	summaries, err := h.yearSummaries(userID, year, now)
	if err != nil {
		h.logger.Error("failed to build yearly rollup", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summaries)
}

// yearSummaries builds the 12-entry rollup for a year. Months entirely in
// the future get a zeroed placeholder without touching the store.
func (h *StatsHandler) yearSummaries(userID, year int, today time.Time) ([]models.MonthSummary, error) {
	summaries := make([]models.MonthSummary, 0, 12)
	for m := 1; m <= 12; m++ {
		if dates.IsFutureMonth(year, m, today) {
			summaries = append(summaries, stats.EmptyMonth(year, m))
			continue
		}

		logs, err := h.logRepo.ForRange(userID,
			dates.DayKey(dates.MonthStart(year, m)),
			dates.DayKey(dates.MonthEnd(year, m)),
		)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, stats.SummarizeMonth(year, m, logs))
	}
	return summaries, nil
}
