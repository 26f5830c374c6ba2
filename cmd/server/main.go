package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/estudotatico/backend/internal/api"
	"github.com/estudotatico/backend/internal/generator"
	"github.com/estudotatico/backend/internal/infrastructure/config"
	"github.com/estudotatico/backend/internal/scheduler"
	"github.com/estudotatico/backend/internal/service"
	"github.com/estudotatico/backend/internal/store"
	"github.com/estudotatico/backend/internal/transfer"

	_ "github.com/estudotatico/backend/docs" // generated swagger docs
)

// @title           Estudo Tático API
// @version         1.0
// @description     Exam-prep study tracker — track topic status, log question sessions, and let the revision radar schedule your reviews.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	db, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	records := store.NewRecords(db, cfg.UserID)
	gemini := generator.NewGeminiClient(cfg.AIBaseURL, cfg.AIAPIKey, cfg.AIModels)

	examSvc := service.NewExamService(records, logger)
	studySvc := service.NewStudyService(records, logger)
	revisionSvc := service.NewRevisionService(records, logger)
	dailySvc := service.NewDailyService(records, logger)
	genSvc := service.NewGenerationService(records, gemini, logger)
	deckSvc := service.NewDeckService(records, genSvc, logger)
	mockSvc := service.NewMockService(records, logger)
	syncSvc := transfer.NewService(records, logger)

	// daily counters listen to every activity source
	studySvc.RegisterTaskListener(dailySvc.HandleTask)
	revisionSvc.RegisterTaskListener(dailySvc.HandleTask)
	deckSvc.RegisterTaskListener(dailySvc.HandleTask)

	handler := api.NewHandler(examSvc, studySvc, revisionSvc, dailySvc, genSvc, deckSvc, mockSvc, syncSvc, logger)

	// ── Background jobs ─────────────────────────────────────────────
	jobs := scheduler.New(dailySvc, revisionSvc, logger)
	jobs.Start()
	defer jobs.Stop()

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress, "user", cfg.UserID)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}
