package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Matthieu-Mary/mono-habit-sub000/handlers"
	"github.com/Matthieu-Mary/mono-habit-sub000/middleware"
	"github.com/Matthieu-Mary/mono-habit-sub000/repository"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Create data directory if it doesn't exist
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatal("Failed to create data directory:", err)
	}

	dbPath := fmt.Sprintf("%s/monohabit.db", dataDir)
	logger.Info("using database", "path", dbPath)

	// Initialize database
	db, err := repository.Open(dbPath)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo, err := repository.NewUserRepository(db)
	if err != nil {
		log.Fatal("Failed to initialize user repository:", err)
	}
	habitRepo, err := repository.NewHabitRepository(db)
	if err != nil {
		log.Fatal("Failed to initialize habit repository:", err)
	}
	logRepo, err := repository.NewLogRepository(db)
	if err != nil {
		log.Fatal("Failed to initialize log repository:", err)
	}
	challengeRepo, err := repository.NewChallengeRepository(db)
	if err != nil {
		log.Fatal("Failed to initialize challenge repository:", err)
	}

	logger.Info("database initialized successfully")

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userRepo, logger)
	habitHandler := handlers.NewHabitHandler(habitRepo, logRepo, logger)
	logHandler := handlers.NewLogHandler(logRepo, logger)
	statsHandler := handlers.NewStatsHandler(logRepo, challengeRepo, logger)
	challengeHandler := handlers.NewChallengeHandler(challengeRepo, logRepo, logger)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Logger(logger))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"}, // Allow all origins for Docker
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Public routes
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(logger))

		r.Route("/api/habits", func(r chi.Router) {
			r.Get("/", habitHandler.GetAllHabits)
			r.Post("/", habitHandler.CreateHabit)
			r.Get("/{id}", habitHandler.GetHabit)
			r.Put("/{id}", habitHandler.UpdateHabit)
			r.Delete("/{id}", habitHandler.DeleteHabit)
			r.Delete("/{id}/future", habitHandler.DeleteFutureLogs)
		})

		r.Put("/api/logs/{id}/complete", logHandler.CompleteLog)
		r.Get("/api/calendar/{year}/{month}", logHandler.GetCalendar)

		r.Get("/api/stats/monthly", statsHandler.GetMonthlyStats)
		r.Get("/api/stats/yearly/{year}", statsHandler.GetYearlyStats)

		r.Route("/api/challenges", func(r chi.Router) {
			r.Get("/", challengeHandler.GetChallenges)
			r.Post("/", challengeHandler.CreateChallenge)
			r.Get("/progress", challengeHandler.GetProgress)
			r.Put("/{id}/status", challengeHandler.UpdateChallengeStatus)
			r.Delete("/{id}", challengeHandler.DeleteChallenge)
		})
	})

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Info("server starting", "port", port)
	fmt.Printf("🚀 Server running at http://localhost:%s\n", port)
	fmt.Println("\n📋 Public API endpoints:")
	fmt.Println("   POST   http://localhost:" + port + "/api/auth/register")
	fmt.Println("   POST   http://localhost:" + port + "/api/auth/login")
	fmt.Println("   GET    http://localhost:" + port + "/health")
	fmt.Println("\n🔒 Protected API endpoints (require JWT token):")
	fmt.Println("   CRUD   http://localhost:" + port + "/api/habits")
	fmt.Println("   PUT    http://localhost:" + port + "/api/logs/{id}/complete")
	fmt.Println("   GET    http://localhost:" + port + "/api/calendar/{year}/{month}")
	fmt.Println("   GET    http://localhost:" + port + "/api/stats/monthly")
	fmt.Println("   GET    http://localhost:" + port + "/api/stats/yearly/{year}")
	fmt.Println("   CRUD   http://localhost:" + port + "/api/challenges")
	fmt.Println("   GET    http://localhost:" + port + "/api/challenges/progress")

	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
