package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vytor/letterflash/internal/api"
	"github.com/vytor/letterflash/internal/config"
	"github.com/vytor/letterflash/internal/db"
	"github.com/vytor/letterflash/internal/eventloop"
	"github.com/vytor/letterflash/internal/game"
	"github.com/vytor/letterflash/internal/logger"
	"github.com/vytor/letterflash/internal/quiz"
	"github.com/vytor/letterflash/internal/repository/kv"
	"github.com/vytor/letterflash/internal/services"
	"github.com/vytor/letterflash/internal/timer"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("LetterFlash Server Starting")
	log.Info("===========================================")

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("quiz_seed=%d", cfg.QuizSeed)
	log.Debug("correct_delay_ms=%d", cfg.CorrectDelayMs)
	log.Debug("incorrect_delay_ms=%d", cfg.IncorrectDelayMs)
	log.Debug("event_queue_size=%d", cfg.EventQueueSize)

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	// Initialize repositories and services
	profileRepo := kv.NewProfileRepository(database, cfg.DefaultUsername)
	settingsRepo := kv.NewSettingsRepository(database)
	leaderboardRepo := kv.NewLeaderboardRepository(database)

	leaderboardService := services.NewLeaderboardService(leaderboardRepo)
	profileService := services.NewProfileService(profileRepo, leaderboardService)
	settingsService := services.NewSettingsService(settingsRepo)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Every game event, HTTP intents and timer callbacks alike, runs on the loop.
	loop := eventloop.New(cfg.EventQueueSize)
	loop.Start(ctx)

	view := api.NewView()
	machine := game.NewMachine(game.Config{
		Generator: quiz.NewGenerator(quiz.NewRNG(cfg.QuizSeed)),
		Scheduler: timer.RealScheduler{Dispatch: func(fn func()) {
			if !loop.Post(fn) {
				log.Debug("dropping timer callback: event loop stopped")
			}
		}},
		Presenter:      view,
		Store:          profileService,
		Logger:         log,
		CorrectDelay:   cfg.CorrectDelay(),
		IncorrectDelay: cfg.IncorrectDelay(),
	})

	srv := &api.Server{
		Loop:               loop,
		Machine:            machine,
		View:               view,
		ProfileService:     profileService,
		SettingsService:    settingsService,
		LeaderboardService: leaderboardService,
		DB:                 database,
		Logger:             log,
	}

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	// Abandon the session on the loop so no timer outlives it.
	if err := loop.Do(shutdownCtx, func() { machine.GoHome(shutdownCtx) }); err != nil {
		log.Warn("failed to stop the running session: %v", err)
	}
	log.Debug("stopping event loop")
	loop.Stop()

	log.Info("===========================================")
	log.Info("LetterFlash Server Stopped")
	log.Info("===========================================")
}
