package models

// MonthSummary is one month's rollup in the yearly view. FavoriteTypes is
// nil (JSON null) when no habit had a log that month, which is distinct
// from an empty tie.
type MonthSummary struct {
	Month          int        `json:"month"` // 1-12
	Year           int        `json:"year"`
	CompletedTasks int        `json:"completedTasks"`
	TotalDays      int        `json:"totalDays"`
	BestStreak     int        `json:"bestStreak"`
	IsPerfect      bool       `json:"isPerfect"`
	FavoriteTypes  []TaskType `json:"favoriteTypes"`
}

// CurrentMonthStats is the headline block of the monthly stats view.
type CurrentMonthStats struct {
	SuccessRate   int        `json:"successRate"` // 0-100
	CurrentStreak int        `json:"currentStreak"`
	BestStreak    int        `json:"bestStreak"`
	FavoriteTypes []TaskType `json:"favoriteTypes"`
	Challenge     *Challenge `json:"challenge"`
}

// MonthlyStatsResponse is the payload of GET /api/stats/monthly.
type MonthlyStatsResponse struct {
	CurrentMonth CurrentMonthStats `json:"currentMonth"`
	MonthlyStats []MonthSummary    `json:"monthlyStats"`
}

// CalendarEntry is one habit-day cell of the monthly calendar.
type CalendarEntry struct {
	ID        int       `json:"id"`
	HabitID   int       `json:"habitId"`
	Title     string    `json:"title"`
	Status    LogStatus `json:"status"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Day       int       `json:"day"`  // day-of-month
	Completed bool      `json:"completed"`
}

// CalendarResponse is the payload of GET /api/calendar/{year}/{month}.
type CalendarResponse struct {
	Month       int             `json:"month"`
	Year        int             `json:"year"`
	DaysInMonth int             `json:"daysInMonth"`
	Habits      []CalendarEntry `json:"habits"`
}
