package models

import (
	"time"

	"github.com/terraincognita07/cyclecast/internal/dates"
)

// PeriodRecord IDs are ULID strings so records stay sortable and portable
// across devices.
type PeriodRecord struct {
	ID        string    `gorm:"primaryKey;size:26"`
	UserID    uint      `gorm:"not null;index:idx_period_records_user_start"`
	StartDay  dates.Day `gorm:"not null;index:idx_period_records_user_start"`
	EndDay    dates.Day `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
