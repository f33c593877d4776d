package models

import (
	"time"

	"github.com/terraincognita07/cyclecast/internal/dates"
)

type PillPackage struct {
	ID              uint      `gorm:"primaryKey"`
	UserID          uint      `gorm:"not null;index"`
	StartDay        dates.Day `gorm:"not null"`
	ActivePillCount int       `gorm:"not null"`
	RestDays        int       `gorm:"not null"`
	CreatedAt       time.Time
}
