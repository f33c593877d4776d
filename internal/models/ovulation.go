package models

import (
	"time"

	"github.com/terraincognita07/cyclecast/internal/dates"
)

const (
	OvulationOutcomeNegative = "NEGATIVE"
	OvulationOutcomePositive = "POSITIVE"
	OvulationOutcomeUnclear  = "UNCLEAR"
)

type OvulationTest struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;uniqueIndex:uidx_ovulation_tests_user_day"`
	Day       dates.Day `gorm:"not null;uniqueIndex:uidx_ovulation_tests_user_day"`
	Outcome   string    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type OvulationDay struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;uniqueIndex:uidx_ovulation_days_user_day"`
	Day       dates.Day `gorm:"not null;uniqueIndex:uidx_ovulation_days_user_day"`
	CreatedAt time.Time
}
