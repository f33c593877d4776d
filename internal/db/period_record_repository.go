package db

import (
	"context"

	"github.com/oklog/ulid/v2"
	"github.com/terraincognita07/cyclecast/internal/dates"
	"github.com/terraincognita07/cyclecast/internal/models"
	"gorm.io/gorm"
)

type PeriodRecordRepository struct {
	database *gorm.DB
}

func NewPeriodRecordRepository(database *gorm.DB) *PeriodRecordRepository {
	return &PeriodRecordRepository{database: database}
}

func (repo *PeriodRecordRepository) ListByUser(ctx context.Context, userID uint) ([]models.PeriodRecord, error) {
	records := make([]models.PeriodRecord, 0)
	if err := repo.database.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_day ASC, id ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// ListOverlapping returns records intersecting [from, to].
func (repo *PeriodRecordRepository) ListOverlapping(ctx context.Context, userID uint, from dates.Day, to dates.Day) ([]models.PeriodRecord, error) {
	records := make([]models.PeriodRecord, 0)
	if err := repo.database.WithContext(ctx).
		Where("user_id = ? AND start_day <= ? AND end_day >= ?", userID, to, from).
		Order("start_day ASC, id ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// LatestEndingBefore returns the most recent record that ends before day.
func (repo *PeriodRecordRepository) LatestEndingBefore(ctx context.Context, userID uint, day dates.Day) (models.PeriodRecord, bool, error) {
	return repo.first(repo.database.WithContext(ctx).
		Where("user_id = ? AND end_day < ?", userID, day).
		Order("start_day DESC, id DESC"))
}

// EarliestStartingAfter returns the first record that starts after day.
func (repo *PeriodRecordRepository) EarliestStartingAfter(ctx context.Context, userID uint, day dates.Day) (models.PeriodRecord, bool, error) {
	return repo.first(repo.database.WithContext(ctx).
		Where("user_id = ? AND start_day > ?", userID, day).
		Order("start_day ASC, id ASC"))
}

func (repo *PeriodRecordRepository) ListRecent(ctx context.Context, userID uint, limit int) ([]models.PeriodRecord, error) {
	records := make([]models.PeriodRecord, 0, limit)
	if err := repo.database.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_day DESC, id DESC").
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, err
	}
	for left, right := 0, len(records)-1; left < right; left, right = left+1, right-1 {
		records[left], records[right] = records[right], records[left]
	}
	return records, nil
}

func (repo *PeriodRecordRepository) FindByID(ctx context.Context, userID uint, recordID string) (models.PeriodRecord, bool, error) {
	return repo.first(repo.database.WithContext(ctx).Where("user_id = ? AND id = ?", userID, recordID))
}

// Create assigns a ULID when the record has no ID yet.
func (repo *PeriodRecordRepository) Create(ctx context.Context, record *models.PeriodRecord) error {
	if record.ID == "" {
		record.ID = ulid.Make().String()
	}
	return repo.database.WithContext(ctx).Create(record).Error
}

func (repo *PeriodRecordRepository) Delete(ctx context.Context, userID uint, recordID string) (bool, error) {
	result := repo.database.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, recordID).
		Delete(&models.PeriodRecord{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (repo *PeriodRecordRepository) first(query *gorm.DB) (models.PeriodRecord, bool, error) {
	record := models.PeriodRecord{}
	result := query.Limit(1).Find(&record)
	if result.Error != nil {
		return models.PeriodRecord{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.PeriodRecord{}, false, nil
	}
	return record, true, nil
}
