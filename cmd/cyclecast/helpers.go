package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/terraincognita07/cyclecast/internal/api"
	"github.com/terraincognita07/cyclecast/internal/config"
	"github.com/terraincognita07/cyclecast/internal/dates"
	"github.com/terraincognita07/cyclecast/internal/db"
	"github.com/terraincognita07/cyclecast/internal/logger"
	"github.com/terraincognita07/cyclecast/internal/models"
	"gorm.io/gorm"
)

func loadConfig(opts *rootOptions, requireSecret bool) (*config.Config, error) {
	cfg, err := config.Load(requireSecret)
	if err != nil {
		return nil, err
	}
	if path := strings.TrimSpace(opts.dbPath); path != "" {
		cfg.DBPath = path
	}
	return cfg, nil
}

func resolveClock(opts *rootOptions, cfg *config.Config) (dates.Clock, error) {
	if strings.TrimSpace(opts.today) == "" {
		return dates.SystemClock{Location: cfg.Location}, nil
	}
	today, err := parseDayFlag("--today", opts.today)
	if err != nil {
		return nil, err
	}
	return dates.FixedClock(today), nil
}

// withServices opens the database for an offline command. Logging is
// discarded so command output stays clean.
func withServices(opts *rootOptions, run func(*api.Services) error) error {
	cfg, err := loadConfig(opts, false)
	if err != nil {
		return err
	}
	clock, err := resolveClock(opts, cfg)
	if err != nil {
		return err
	}

	log := logger.Discard()
	database, err := db.OpenSQLite(cfg.DBPath, log)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	defer closeDatabase(database, log)

	return run(api.NewServices(database, clock, cfg.CalendarWorkers, log))
}

func closeDatabase(database *gorm.DB, log *slog.Logger) {
	sqlDB, err := database.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Warn("close database", "error", err)
	}
}

func lookupUser(ctx context.Context, svc *api.Services, email string) (models.User, error) {
	user, err := svc.Auth.FindByEmail(ctx, email)
	if err != nil {
		return models.User{}, fmt.Errorf("user %q: %w", email, err)
	}
	return user, nil
}

func parseDayFlag(name string, raw string) (dates.Day, error) {
	day, err := dates.Parse(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q (expected YYYY-MM-DD)", name, raw)
	}
	return day, nil
}
