package services

import (
	"context"

	"github.com/terraincognita07/cyclecast/internal/dates"
	"github.com/terraincognita07/cyclecast/internal/models"
)

type UserRepository interface {
	FindByID(ctx context.Context, userID uint) (models.User, error)
	FindByNormalizedEmail(ctx context.Context, email string) (models.User, error)
	ExistsByNormalizedEmail(ctx context.Context, email string) (bool, error)
	ListOwners(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, userID uint, passwordHash string, mustChangePassword bool) error
	UpdateByID(ctx context.Context, userID uint, updates map[string]any) error
}

type PeriodRecordRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]models.PeriodRecord, error)
	ListOverlapping(ctx context.Context, userID uint, from dates.Day, to dates.Day) ([]models.PeriodRecord, error)
	LatestEndingBefore(ctx context.Context, userID uint, day dates.Day) (models.PeriodRecord, bool, error)
	EarliestStartingAfter(ctx context.Context, userID uint, day dates.Day) (models.PeriodRecord, bool, error)
	ListRecent(ctx context.Context, userID uint, limit int) ([]models.PeriodRecord, error)
	Create(ctx context.Context, record *models.PeriodRecord) error
	Delete(ctx context.Context, userID uint, recordID string) (bool, error)
}

type OvulationTestRepository interface {
	ListRange(ctx context.Context, userID uint, from dates.Day, to dates.Day) ([]models.OvulationTest, error)
	Upsert(ctx context.Context, test *models.OvulationTest) error
	DeleteByDay(ctx context.Context, userID uint, day dates.Day) (bool, error)
}

type OvulationDayRepository interface {
	ListRange(ctx context.Context, userID uint, from dates.Day, to dates.Day) ([]models.OvulationDay, error)
	Create(ctx context.Context, day *models.OvulationDay) error
	DeleteByDay(ctx context.Context, userID uint, day dates.Day) (bool, error)
}

type PillPackageRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]models.PillPackage, error)
	ListStartingBetween(ctx context.Context, userID uint, from dates.Day, to dates.Day) ([]models.PillPackage, error)
	Create(ctx context.Context, pkg *models.PillPackage) error
	Delete(ctx context.Context, userID uint, packageID uint) (bool, error)
}

type PregnancyRepository interface {
	FindCurrent(ctx context.Context, userID uint) (models.Pregnancy, bool, error)
	Create(ctx context.Context, pregnancy *models.Pregnancy) error
	Save(ctx context.Context, pregnancy *models.Pregnancy) error
}

// Stores bundles the repositories the services read from.
type Stores struct {
	Users          UserRepository
	Periods        PeriodRecordRepository
	OvulationTests OvulationTestRepository
	OvulationDays  OvulationDayRepository
	PillPackages   PillPackageRepository
	Pregnancies    PregnancyRepository
}
