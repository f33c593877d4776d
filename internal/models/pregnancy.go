package models

import (
	"time"

	"github.com/terraincognita07/cyclecast/internal/dates"
)

type Pregnancy struct {
	ID            uint       `gorm:"primaryKey"`
	UserID        uint       `gorm:"not null;index"`
	StartDay      dates.Day  `gorm:"not null"`
	DueDay        *dates.Day `gorm:"column:due_day"`
	IsEnded       bool       `gorm:"not null;default:false"`
	IsMiscarriage bool       `gorm:"not null;default:false"`
	IsDeleted     bool       `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
