package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"finbook/config"
	_ "finbook/docs" // Swagger docs
	budgetSqlite "finbook/internal/budget/repository/sqlite"
	budgetUC "finbook/internal/budget/usecase"
	"finbook/internal/db"
	"finbook/internal/httpserver"
	parsingSqlite "finbook/internal/parsing/repository/sqlite"
	"finbook/internal/scheduler"
	taskSqlite "finbook/internal/scheduledtask/repository/sqlite"
	taskUC "finbook/internal/scheduledtask/usecase"
	"finbook/pkg/log"
)

// @title       Finbook API
// @description Personal-finance bookkeeping backend: accounts, records, budgets, scheduled tasks, and AI-assisted parsing.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Finbook...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Database
	database, err := db.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open database: %v", err)
	}
	defer database.Close()
	logger.Infof(ctx, "Database ready at %s", cfg.Database.Path)

	// 4. Background poller
	if cfg.Scheduler.Enabled {
		tasks := taskUC.New(taskSqlite.New(database, logger), logger)
		audits := parsingSqlite.New(database, logger)
		budgets := budgetUC.New(logger, budgetSqlite.New(database, logger))

		poller := scheduler.New(logger, tasks, audits, budgets, scheduler.Config{
			PollInterval:         cfg.Scheduler.PollInterval,
			HousekeepingInterval: cfg.Scheduler.HousekeepingInterval,
			LogRetentionDays:     cfg.Scheduler.LogRetentionDays,
		})
		go poller.Run(ctx)
		logger.Infof(ctx, "Scheduler running, poll interval %s", cfg.Scheduler.PollInterval)
	} else {
		logger.Warn(ctx, "Scheduler disabled, scheduled tasks will not execute")
	}

	// 5. HTTP server
	srv, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		DB:              database,
		AI:              cfg.AI,
		RegionCacheSize: cfg.Region.CacheSize,
		ParsePerMinute:  cfg.RateLimit.ParsePerMinute,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to create HTTP server: %v", err)
	}

	if err := srv.Run(); err != nil {
		logger.Fatalf(ctx, "HTTP server stopped: %v", err)
	}
}
