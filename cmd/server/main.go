package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/astralis/astro-server/internal/config"
	"github.com/astralis/astro-server/internal/database"
	"github.com/astralis/astro-server/internal/events"
	"github.com/astralis/astro-server/internal/modules/charts"
	chartjobs "github.com/astralis/astro-server/internal/modules/charts/jobs"
	"github.com/astralis/astro-server/internal/modules/ephemeris"
	"github.com/astralis/astro-server/internal/modules/numerology"
	"github.com/astralis/astro-server/internal/modules/synastry"
	"github.com/astralis/astro-server/internal/modules/usage"
	usagejobs "github.com/astralis/astro-server/internal/modules/usage/jobs"
	"github.com/astralis/astro-server/internal/scheduler"
	"github.com/astralis/astro-server/internal/server"
	"github.com/astralis/astro-server/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		errLog := logger.New(logger.Config{Level: "error", Pretty: true})
		errLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize logger
	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})

	log.Info().Msg("Starting astro-server")

	// Initialize database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := db.Migrate(charts.InitSchema, usage.InitSchema); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	// Shared services
	eventManager := events.NewManager(log)

	chartService := charts.NewService(ephemeris.NewCalculator(nil), log)
	chartRepo := charts.NewRepository(db.Conn(), log)
	chartHandler := charts.NewHandler(chartService, chartRepo, eventManager, log)

	scorer := synastry.NewScorer(log)
	synastryHandler := synastry.NewHandler(scorer, chartRepo, eventManager, log)

	numerologyCalc := numerology.NewCalculator(nil, log)
	numerologyHandler := numerology.NewHandler(numerologyCalc, eventManager, log)

	usageRepo := usage.NewRepository(db.Conn(), log)
	usageService := usage.NewService(
		usageRepo,
		usage.Limits{Free: cfg.FreePlanAICalls, Pro: cfg.ProPlanAICalls},
		nil,
		eventManager,
		log,
	)
	usageHandler := usage.NewHandler(usageService, log)

	// Initialize scheduler and maintenance jobs
	sched := scheduler.New(log)

	if err := registerJobs(sched, chartRepo, usageService, cfg, eventManager, log); err != nil {
		log.Fatal().Err(err).Msg("Failed to register jobs")
	}

	sched.Start()
	defer sched.Stop()

	// Initialize HTTP server
	srv := server.New(server.Config{
		Port:              cfg.Port,
		Log:               log,
		DB:                db,
		DevMode:           cfg.DevMode,
		ChartHandler:      chartHandler,
		ChartRepo:         chartRepo,
		SynastryHandler:   synastryHandler,
		NumerologyHandler: numerologyHandler,
		UsageHandler:      usageHandler,
	})

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}

func registerJobs(
	sched *scheduler.Scheduler,
	chartRepo *charts.Repository,
	usageService *usage.Service,
	cfg *config.Config,
	eventManager *events.Manager,
	log zerolog.Logger,
) error {
	// Daily at 03:00: roll over usage counters for idle users
	if err := sched.AddJob("0 0 3 * * *", usagejobs.NewResetJob(usageService, log)); err != nil {
		return err
	}

	// Daily at 03:30: retention cleanup of stored charts
	cleanup := chartjobs.NewCleanupJob(chartRepo, cfg.ChartRetentionDays, eventManager, log)
	return sched.AddJob("0 30 3 * * *", cleanup)
}
