package services

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/terraincognita07/cyclecast/internal/dates"
	"github.com/terraincognita07/cyclecast/internal/db"
	"github.com/terraincognita07/cyclecast/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func openTestStores(t *testing.T) Stores {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "cyclecast-services.db"), testLogger())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := database.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	repos := db.NewRepositories(database)
	return Stores{
		Users:          repos.Users,
		Periods:        repos.Periods,
		OvulationTests: repos.OvulationTests,
		OvulationDays:  repos.OvulationDays,
		PillPackages:   repos.PillPackages,
		Pregnancies:    repos.Pregnancies,
	}
}

func createServiceUser(t *testing.T, stores Stores, email string, cycleLength int) models.User {
	t.Helper()

	user := models.User{
		Email:           email,
		PasswordHash:    "hash",
		Role:            models.RoleOwner,
		CycleLength:     cycleLength,
		PeriodLength:    models.DefaultPeriodLength,
		PillActiveCount: models.DefaultPillActiveCount,
		PillRestDays:    models.DefaultPillRestDays,
		CreatedAt:       time.Now().UTC(),
	}
	if err := stores.Users.Create(context.Background(), &user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func seedPeriod(t *testing.T, stores Stores, userID uint, start string, end string) models.PeriodRecord {
	t.Helper()

	record := models.PeriodRecord{UserID: userID, StartDay: dates.MustParse(start), EndDay: dates.MustParse(end)}
	if err := stores.Periods.Create(context.Background(), &record); err != nil {
		t.Fatalf("create period: %v", err)
	}
	return record
}

func fixedClock(raw string) dates.Clock {
	return dates.FixedClock(dates.MustParse(raw))
}
