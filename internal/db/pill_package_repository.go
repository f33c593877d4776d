package db

import (
	"context"

	"github.com/terraincognita07/cyclecast/internal/dates"
	"github.com/terraincognita07/cyclecast/internal/models"
	"gorm.io/gorm"
)

type PillPackageRepository struct {
	database *gorm.DB
}

func NewPillPackageRepository(database *gorm.DB) *PillPackageRepository {
	return &PillPackageRepository{database: database}
}

func (repo *PillPackageRepository) ListByUser(ctx context.Context, userID uint) ([]models.PillPackage, error) {
	packages := make([]models.PillPackage, 0)
	if err := repo.database.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_day ASC, id ASC").
		Find(&packages).Error; err != nil {
		return nil, err
	}
	return packages, nil
}

// ListStartingBetween returns packages started inside [from, to].
func (repo *PillPackageRepository) ListStartingBetween(ctx context.Context, userID uint, from dates.Day, to dates.Day) ([]models.PillPackage, error) {
	packages := make([]models.PillPackage, 0)
	if err := repo.database.WithContext(ctx).
		Where("user_id = ? AND start_day >= ? AND start_day <= ?", userID, from, to).
		Order("start_day ASC, id ASC").
		Find(&packages).Error; err != nil {
		return nil, err
	}
	return packages, nil
}

func (repo *PillPackageRepository) Create(ctx context.Context, pkg *models.PillPackage) error {
	return repo.database.WithContext(ctx).Create(pkg).Error
}

func (repo *PillPackageRepository) Delete(ctx context.Context, userID uint, packageID uint) (bool, error) {
	result := repo.database.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, packageID).
		Delete(&models.PillPackage{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
