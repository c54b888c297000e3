// Package main is the entry point for the Habit Tracker API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/habit-tracker/backend/config"
	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/application/usecase/category"
	"github.com/habit-tracker/backend/internal/application/usecase/record"
	"github.com/habit-tracker/backend/internal/application/usecase/tracker"
	"github.com/habit-tracker/backend/internal/infra/db"
	"github.com/habit-tracker/backend/internal/infra/server/router"
	"github.com/habit-tracker/backend/internal/integration/adapters"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/habit-tracker/backend/internal/integration/persistence"
	"github.com/habit-tracker/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Habit Tracker API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(
		&model.CategoryModel{},
		&model.TrackerModel{},
		&model.RecordModel{},
		&model.SettingModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Statistics cache is optional: without Redis the statistics
	// endpoint falls back to counting rows on every request.
	var statsCache adapter.StatsCache
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			slog.Warn("Redis connection failed, statistics cache disabled", "error", err)
		} else {
			statsCache = adapters.NewRedisStatsCache(redisClient, cfg.Redis.StatsTTL)
			slog.Info("Statistics cache initialized", "addr", cfg.Redis.Addr)
		}
	}

	// Create repositories
	categoryRepo := persistence.NewCategoryRepository(database.DB())
	trackerRepo := persistence.NewTrackerRepository(database.DB())
	recordRepo := persistence.NewRecordRepository(database.DB())
	settingRepo := persistence.NewSettingRepository(database.DB())

	clock := adapters.NewSystemClock()
	pinnedCategory := cfg.App.PinnedCategoryName

	// The pinned category is created lazily and renamed when its
	// configured display name changed since the last launch.
	ensurePinned := category.NewEnsurePinnedCategoryUseCase(categoryRepo, settingRepo, pinnedCategory)
	if err := ensurePinned.Execute(context.Background()); err != nil {
		slog.Error("Failed to prepare pinned category", "error", err)
		os.Exit(1)
	}

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo, trackerRepo, pinnedCategory)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo, pinnedCategory)

	// Create tracker use cases
	listTrackersUseCase := tracker.NewListTrackersUseCase(trackerRepo, categoryRepo, recordRepo, clock, pinnedCategory)
	createTrackerUseCase := tracker.NewCreateTrackerUseCase(trackerRepo, categoryRepo)
	updateTrackerUseCase := tracker.NewUpdateTrackerUseCase(trackerRepo, categoryRepo)
	deleteTrackerUseCase := tracker.NewDeleteTrackerUseCase(trackerRepo, statsCache)
	pinTrackerUseCase := tracker.NewPinTrackerUseCase(trackerRepo, pinnedCategory)
	unpinTrackerUseCase := tracker.NewUnpinTrackerUseCase(trackerRepo, categoryRepo)

	// Create record use cases
	toggleRecordUseCase := record.NewToggleRecordUseCase(recordRepo, trackerRepo, clock, statsCache)
	getStatisticsUseCase := record.NewGetStatisticsUseCase(recordRepo, statsCache)

	// Create controllers
	healthController := controller.NewHealthController(database.HealthCheck)
	categoryController := controller.NewCategoryController(listCategoriesUseCase, createCategoryUseCase)
	trackerController := controller.NewTrackerController(
		listTrackersUseCase,
		createTrackerUseCase,
		updateTrackerUseCase,
		deleteTrackerUseCase,
		pinTrackerUseCase,
		unpinTrackerUseCase,
	)
	recordController := controller.NewRecordController(toggleRecordUseCase, getStatisticsUseCase)

	// Setup router
	r := router.NewRouter(healthController, categoryController, trackerController, recordController)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
