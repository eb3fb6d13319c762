package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mauv0809/roster-api/internal/auth"
	"github.com/mauv0809/roster-api/internal/config"
	"github.com/mauv0809/roster-api/internal/database"
	server "github.com/mauv0809/roster-api/internal/http"
	"github.com/mauv0809/roster-api/internal/match"
	"github.com/mauv0809/roster-api/internal/metrics"
	"github.com/mauv0809/roster-api/internal/passport"
	"github.com/mauv0809/roster-api/internal/player"
	"github.com/mauv0809/roster-api/internal/pubsub"
	"github.com/mauv0809/roster-api/internal/stats"
)

func main() {
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	} else {
		log.Warn("Unknown log level, keeping info", "level", cfg.LogLevel)
	}

	db, dbTeardown, err := database.InitDB(cfg.DB)
	dbInitDuration := time.Since(startTime)
	log.Info("Database initialization time recorded", "duration_ms", dbInitDuration.Milliseconds())
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		dbTeardown()
	}()

	ctx := context.Background()
	events := pubsub.New(ctx, cfg.ProjectID)
	defer func() {
		if err := events.Close(); err != nil {
			log.Error("Failed to close pubsub client", "error", err)
		}
	}()

	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()
	stores := server.Stores{
		DB:        db,
		Players:   player.New(db, player.WithPassportValidation(cfg.StrictPassportRefs)),
		Passports: passport.New(db),
		Stats:     stats.New(db),
		Matches:   match.New(db),
	}
	s := server.NewServer(
		stores,
		auth.New(cfg.Auth, nil),
		metricsSvc,
		metricsHandler,
		events,
		cfg,
	)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Error("Server error", "error", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
