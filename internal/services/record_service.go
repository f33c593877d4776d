package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/terraincognita07/cyclecast/internal/dates"
	"github.com/terraincognita07/cyclecast/internal/models"
	"github.com/terraincognita07/cyclecast/internal/prediction"
)

const (
	maxActivePillCount = 35
	maxPillRestDays    = 14
)

// RecordService validates and stores the raw cycle data the predictions are
// computed from.
type RecordService struct {
	stores Stores
	logger *slog.Logger
}

func NewRecordService(stores Stores, logger *slog.Logger) *RecordService {
	if logger == nil {
		logger = slog.Default()
	}
	return &RecordService{stores: stores, logger: logger.With("component", "records")}
}

func (service *RecordService) ListPeriods(ctx context.Context, userID uint) ([]models.PeriodRecord, error) {
	return service.stores.Periods.ListByUser(ctx, userID)
}

// AddPeriod stores a new period record and refreshes the auto baseline.
func (service *RecordService) AddPeriod(ctx context.Context, userID uint, start dates.Day, end dates.Day) (models.PeriodRecord, error) {
	if end < start {
		return models.PeriodRecord{}, ErrPeriodRangeInvalid
	}

	overlapping, err := service.stores.Periods.ListOverlapping(ctx, userID, start, end)
	if err != nil {
		return models.PeriodRecord{}, fmt.Errorf("check overlapping periods: %w", err)
	}
	if len(overlapping) > 0 {
		return models.PeriodRecord{}, ErrPeriodOverlap
	}

	record := models.PeriodRecord{UserID: userID, StartDay: start, EndDay: end}
	if err := service.stores.Periods.Create(ctx, &record); err != nil {
		return models.PeriodRecord{}, fmt.Errorf("create period: %w", err)
	}
	if err := refreshBaseline(ctx, service.stores.Users, service.stores.Periods, userID); err != nil {
		service.logger.Warn("baseline refresh failed", "user_id", userID, "error", err)
	}
	return record, nil
}

func (service *RecordService) DeletePeriod(ctx context.Context, userID uint, recordID string) error {
	deleted, err := service.stores.Periods.Delete(ctx, userID, recordID)
	if err != nil {
		return fmt.Errorf("delete period: %w", err)
	}
	if !deleted {
		return ErrRecordNotFound
	}
	if err := refreshBaseline(ctx, service.stores.Users, service.stores.Periods, userID); err != nil {
		service.logger.Warn("baseline refresh failed", "user_id", userID, "error", err)
	}
	return nil
}

func (service *RecordService) ListOvulationTests(ctx context.Context, userID uint, from dates.Day, to dates.Day) ([]models.OvulationTest, error) {
	return service.stores.OvulationTests.ListRange(ctx, userID, from, to)
}

// RecordOvulationTest stores the outcome for day, replacing an earlier one.
func (service *RecordService) RecordOvulationTest(ctx context.Context, userID uint, day dates.Day, outcome string) (models.OvulationTest, error) {
	if !prediction.OvulationOutcome(outcome).Valid() {
		return models.OvulationTest{}, ErrOvulationOutcomeInvalid
	}
	test := models.OvulationTest{UserID: userID, Day: day, Outcome: outcome}
	if err := service.stores.OvulationTests.Upsert(ctx, &test); err != nil {
		return models.OvulationTest{}, fmt.Errorf("store ovulation test: %w", err)
	}
	return test, nil
}

func (service *RecordService) DeleteOvulationTest(ctx context.Context, userID uint, day dates.Day) error {
	deleted, err := service.stores.OvulationTests.DeleteByDay(ctx, userID, day)
	if err != nil {
		return fmt.Errorf("delete ovulation test: %w", err)
	}
	if !deleted {
		return ErrRecordNotFound
	}
	return nil
}

func (service *RecordService) ListOvulationDays(ctx context.Context, userID uint, from dates.Day, to dates.Day) ([]models.OvulationDay, error) {
	return service.stores.OvulationDays.ListRange(ctx, userID, from, to)
}

func (service *RecordService) AddOvulationDay(ctx context.Context, userID uint, day dates.Day) (models.OvulationDay, error) {
	entry := models.OvulationDay{UserID: userID, Day: day}
	if err := service.stores.OvulationDays.Create(ctx, &entry); err != nil {
		return models.OvulationDay{}, fmt.Errorf("store ovulation day: %w", err)
	}
	return entry, nil
}

func (service *RecordService) DeleteOvulationDay(ctx context.Context, userID uint, day dates.Day) error {
	deleted, err := service.stores.OvulationDays.DeleteByDay(ctx, userID, day)
	if err != nil {
		return fmt.Errorf("delete ovulation day: %w", err)
	}
	if !deleted {
		return ErrRecordNotFound
	}
	return nil
}

func (service *RecordService) ListPillPackages(ctx context.Context, userID uint) ([]models.PillPackage, error) {
	return service.stores.PillPackages.ListByUser(ctx, userID)
}

func ValidatePillCounts(activePillCount int, restDays int) error {
	if activePillCount < 1 || activePillCount > maxActivePillCount {
		return ErrPillPackageInvalid
	}
	if restDays < 0 || restDays > maxPillRestDays {
		return ErrPillPackageInvalid
	}
	return nil
}

func (service *RecordService) AddPillPackage(ctx context.Context, userID uint, start dates.Day, activePillCount int, restDays int) (models.PillPackage, error) {
	if err := ValidatePillCounts(activePillCount, restDays); err != nil {
		return models.PillPackage{}, err
	}
	pkg := models.PillPackage{UserID: userID, StartDay: start, ActivePillCount: activePillCount, RestDays: restDays}
	if err := service.stores.PillPackages.Create(ctx, &pkg); err != nil {
		return models.PillPackage{}, fmt.Errorf("store pill package: %w", err)
	}
	return pkg, nil
}

func (service *RecordService) DeletePillPackage(ctx context.Context, userID uint, packageID uint) error {
	deleted, err := service.stores.PillPackages.Delete(ctx, userID, packageID)
	if err != nil {
		return fmt.Errorf("delete pill package: %w", err)
	}
	if !deleted {
		return ErrRecordNotFound
	}
	return nil
}

type PregnancyUpdate struct {
	Start         dates.Day
	DueDate       *dates.Day
	IsEnded       bool
	IsMiscarriage bool
}

func (service *RecordService) CurrentPregnancy(ctx context.Context, userID uint) (models.Pregnancy, error) {
	pregnancy, found, err := service.stores.Pregnancies.FindCurrent(ctx, userID)
	if err != nil {
		return models.Pregnancy{}, fmt.Errorf("load pregnancy: %w", err)
	}
	if !found {
		return models.Pregnancy{}, ErrPregnancyNotFound
	}
	return pregnancy, nil
}

// SavePregnancy updates the current pregnancy or starts one. Only one
// non-deleted pregnancy exists per user.
func (service *RecordService) SavePregnancy(ctx context.Context, userID uint, update PregnancyUpdate) (models.Pregnancy, error) {
	if update.DueDate != nil && *update.DueDate <= update.Start {
		return models.Pregnancy{}, ErrPregnancyInvalid
	}
	if update.IsEnded && update.IsMiscarriage {
		return models.Pregnancy{}, ErrPregnancyInvalid
	}

	pregnancy, found, err := service.stores.Pregnancies.FindCurrent(ctx, userID)
	if err != nil {
		return models.Pregnancy{}, fmt.Errorf("load pregnancy: %w", err)
	}

	pregnancy.UserID = userID
	pregnancy.StartDay = update.Start
	pregnancy.DueDay = update.DueDate
	pregnancy.IsEnded = update.IsEnded
	pregnancy.IsMiscarriage = update.IsMiscarriage

	if found {
		err = service.stores.Pregnancies.Save(ctx, &pregnancy)
	} else {
		err = service.stores.Pregnancies.Create(ctx, &pregnancy)
	}
	if err != nil {
		return models.Pregnancy{}, fmt.Errorf("store pregnancy: %w", err)
	}
	return pregnancy, nil
}

func (service *RecordService) DeletePregnancy(ctx context.Context, userID uint) error {
	pregnancy, err := service.CurrentPregnancy(ctx, userID)
	if err != nil {
		return err
	}
	pregnancy.IsDeleted = true
	if err := service.stores.Pregnancies.Save(ctx, &pregnancy); err != nil {
		return fmt.Errorf("delete pregnancy: %w", err)
	}
	return nil
}
