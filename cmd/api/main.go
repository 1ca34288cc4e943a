package main

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/homepilot/homepilot-api/internal/infra/database"
	"github.com/homepilot/homepilot-api/internal/infra/http/handlers"
	"github.com/homepilot/homepilot-api/internal/infra/http/middleware"
	"github.com/homepilot/homepilot-api/internal/infra/integration/openai"
	"github.com/homepilot/homepilot-api/internal/infra/mail"
	"github.com/homepilot/homepilot-api/internal/infra/queue"
	"github.com/homepilot/homepilot-api/internal/usecase"
)

func main() {
	godotenv.Load()
	setupLogger()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		envOr("RABBITMQ_USER", "guest"),
		envOr("RABBITMQ_PASS", "guest"),
		envOr("RABBITMQ_HOST", "localhost"),
		envOr("RABBITMQ_PORT", "5672"),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to RabbitMQ")
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// Repositories
	submissionRepo := database.NewSubmissionRepository(db)
	leadRepo := database.NewLeadRepository(db)

	// Gateways and adapters
	scorer := openai.NewClient(os.Getenv("OPENAI_API_KEY"), os.Getenv("OPENAI_URL"))
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"),
		envIntOr("MAIL_PORT", 587),
		os.Getenv("MAIL_USER"),
		os.Getenv("MAIL_PASS"),
		envOr("MAIL_FROM", "HomePilot <onboarding@homepilot.app>"),
	)

	// Notification worker consumes the queue and sends invite mail
	worker := queue.NewWorker(rabbitMQ.Ch, mailSender)
	go worker.Start(queue.QueueName)

	// Usecases
	submitSignupUC := usecase.NewSubmitSignupUseCase(submissionRepo, scorer)
	captureLeadUC := usecase.NewCaptureLeadUseCase(leadRepo)
	applyFollowupUC := usecase.NewApplyFollowupUseCase(submissionRepo, producer)
	moderateUC := usecase.NewModerateSubmissionUseCase(submissionRepo)
	exportUC := usecase.NewExportSubmissionsUseCase(submissionRepo)

	// Handlers
	signupHandler := handlers.NewSignupHandler(submitSignupUC)
	leadHandler := handlers.NewLeadHandler(captureLeadUC)
	followupHandler := handlers.NewFollowupHandler(applyFollowupUC)
	adminHandler := handlers.NewAdminHandler(moderateUC, exportUC)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	auth := middleware.NewTokenAuthenticator(os.Getenv("ADMIN_API_TOKEN"))

	// Router
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Admin-Token"},
	}))

	r.Post("/api/submit", signupHandler.Handle)
	r.Post("/api/leads", leadHandler.Handle)
	r.Post("/api/followup", followupHandler.Handle)

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.RequireOperator(auth))
		r.Get("/submissions", adminHandler.ListSubmissions)
		r.Put("/submissions/status", adminHandler.UpdateStatus)
		r.Get("/submissions/export", adminHandler.ExportCSV)
	})

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := ":" + envOr("PORT", "8080")
	log.Info().Str("port", port).Msg("HomePilot API listening")
	if err := http.ListenAndServe(port, r); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func setupLogger() {
	level, err := zerolog.ParseLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if envOr("LOG_FORMAT", "console") == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
