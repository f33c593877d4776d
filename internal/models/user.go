package models

import "time"

const (
	RoleOwner   = "owner"
	RolePartner = "partner"
)

const (
	DefaultCycleLength  = 28
	DefaultPeriodLength = 5

	DefaultPillActiveCount = 21
	DefaultPillRestDays    = 7
)

// User doubles as the settings row: manual and auto-calculated lengths plus
// the pill calculation switch live here.
type User struct {
	ID                    uint      `gorm:"primaryKey"`
	Email                 string    `gorm:"uniqueIndex;not null"`
	PasswordHash          string    `gorm:"not null"`
	Role                  string    `gorm:"not null;default:owner"`
	MustChangePassword    bool      `gorm:"not null;default:false"`
	CycleLength           int       `gorm:"not null;default:28"`
	PeriodLength          int       `gorm:"not null;default:5"`
	AutoCycleLength       int       `gorm:"not null;default:0"`
	AutoPeriodLength      int       `gorm:"not null;default:0"`
	UseAutoCalc           bool      `gorm:"not null;default:false"`
	UsePillForCalculation bool      `gorm:"not null;default:false"`
	PillActiveCount       int       `gorm:"not null;default:21"`
	PillRestDays          int       `gorm:"not null;default:7"`
	CreatedAt             time.Time `gorm:"not null"`
}
