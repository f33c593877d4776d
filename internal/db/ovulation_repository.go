package db

import (
	"context"

	"github.com/terraincognita07/cyclecast/internal/dates"
	"github.com/terraincognita07/cyclecast/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OvulationTestRepository struct {
	database *gorm.DB
}

func NewOvulationTestRepository(database *gorm.DB) *OvulationTestRepository {
	return &OvulationTestRepository{database: database}
}

func (repo *OvulationTestRepository) ListRange(ctx context.Context, userID uint, from dates.Day, to dates.Day) ([]models.OvulationTest, error) {
	tests := make([]models.OvulationTest, 0)
	if err := repo.database.WithContext(ctx).
		Where("user_id = ? AND day >= ? AND day <= ?", userID, from, to).
		Order("day ASC").
		Find(&tests).Error; err != nil {
		return nil, err
	}
	return tests, nil
}

// Upsert keeps one test per day; a second result for the same day replaces
// the outcome.
func (repo *OvulationTestRepository) Upsert(ctx context.Context, test *models.OvulationTest) error {
	return repo.database.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "day"}},
		DoUpdates: clause.AssignmentColumns([]string{"outcome", "updated_at"}),
	}).Create(test).Error
}

func (repo *OvulationTestRepository) DeleteByDay(ctx context.Context, userID uint, day dates.Day) (bool, error) {
	result := repo.database.WithContext(ctx).
		Where("user_id = ? AND day = ?", userID, day).
		Delete(&models.OvulationTest{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

type OvulationDayRepository struct {
	database *gorm.DB
}

func NewOvulationDayRepository(database *gorm.DB) *OvulationDayRepository {
	return &OvulationDayRepository{database: database}
}

func (repo *OvulationDayRepository) ListRange(ctx context.Context, userID uint, from dates.Day, to dates.Day) ([]models.OvulationDay, error) {
	days := make([]models.OvulationDay, 0)
	if err := repo.database.WithContext(ctx).
		Where("user_id = ? AND day >= ? AND day <= ?", userID, from, to).
		Order("day ASC").
		Find(&days).Error; err != nil {
		return nil, err
	}
	return days, nil
}

// Create ignores a repeated day.
func (repo *OvulationDayRepository) Create(ctx context.Context, day *models.OvulationDay) error {
	return repo.database.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(day).Error
}

func (repo *OvulationDayRepository) DeleteByDay(ctx context.Context, userID uint, day dates.Day) (bool, error) {
	result := repo.database.WithContext(ctx).
		Where("user_id = ? AND day = ?", userID, day).
		Delete(&models.OvulationDay{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
