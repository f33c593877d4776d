package db

import (
	"context"

	"github.com/terraincognita07/cyclecast/internal/models"
	"gorm.io/gorm"
)

type PregnancyRepository struct {
	database *gorm.DB
}

func NewPregnancyRepository(database *gorm.DB) *PregnancyRepository {
	return &PregnancyRepository{database: database}
}

// FindCurrent returns the latest pregnancy that has not been deleted.
func (repo *PregnancyRepository) FindCurrent(ctx context.Context, userID uint) (models.Pregnancy, bool, error) {
	pregnancy := models.Pregnancy{}
	result := repo.database.WithContext(ctx).
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("start_day DESC, id DESC").
		Limit(1).
		Find(&pregnancy)
	if result.Error != nil {
		return models.Pregnancy{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Pregnancy{}, false, nil
	}
	return pregnancy, true, nil
}

func (repo *PregnancyRepository) Create(ctx context.Context, pregnancy *models.Pregnancy) error {
	return repo.database.WithContext(ctx).Create(pregnancy).Error
}

func (repo *PregnancyRepository) Save(ctx context.Context, pregnancy *models.Pregnancy) error {
	return repo.database.WithContext(ctx).Save(pregnancy).Error
}
