package services

import (
	"context"
	"fmt"

	"github.com/terraincognita07/cyclecast/internal/models"
)

type Settings struct {
	CycleLength           int  `json:"cycle_length"`
	PeriodLength          int  `json:"period_length"`
	AutoCycleLength       int  `json:"auto_cycle_length"`
	AutoPeriodLength      int  `json:"auto_period_length"`
	UseAutoCalc           bool `json:"use_auto_calc"`
	UsePillForCalculation bool `json:"use_pill_for_calculation"`
	PillActiveCount       int  `json:"pill_active_count"`
	PillRestDays          int  `json:"pill_rest_days"`
}

type SettingsUpdate struct {
	CycleLength           int  `json:"cycle_length"`
	PeriodLength          int  `json:"period_length"`
	UseAutoCalc           bool `json:"use_auto_calc"`
	UsePillForCalculation bool `json:"use_pill_for_calculation"`
	PillActiveCount       int  `json:"pill_active_count"`
	PillRestDays          int  `json:"pill_rest_days"`
}

type SettingsService struct {
	users UserRepository
}

func NewSettingsService(users UserRepository) *SettingsService {
	return &SettingsService{users: users}
}

func settingsFromUser(user models.User) Settings {
	return Settings{
		CycleLength:           user.CycleLength,
		PeriodLength:          user.PeriodLength,
		AutoCycleLength:       user.AutoCycleLength,
		AutoPeriodLength:      user.AutoPeriodLength,
		UseAutoCalc:           user.UseAutoCalc,
		UsePillForCalculation: user.UsePillForCalculation,
		PillActiveCount:       user.PillActiveCount,
		PillRestDays:          user.PillRestDays,
	}
}

func (service *SettingsService) Load(ctx context.Context, userID uint) (Settings, error) {
	user, err := service.users.FindByID(ctx, userID)
	if err != nil {
		return Settings{}, fmt.Errorf("load settings: %w", err)
	}
	return settingsFromUser(user), nil
}

// ValidateSettings checks manual lengths and pill settings. A period must
// leave room for the rest of the cycle.
func ValidateSettings(update SettingsUpdate) error {
	if !IsValidCycleLength(update.CycleLength) {
		return ErrCycleLengthOutOfRange
	}
	if !IsValidPeriodLength(update.PeriodLength) || update.PeriodLength >= update.CycleLength {
		return ErrPeriodLengthOutOfRange
	}
	return ValidatePillCounts(update.PillActiveCount, update.PillRestDays)
}

func (service *SettingsService) Save(ctx context.Context, userID uint, update SettingsUpdate) (Settings, error) {
	if err := ValidateSettings(update); err != nil {
		return Settings{}, err
	}
	if err := service.users.UpdateByID(ctx, userID, map[string]any{
		"cycle_length":             update.CycleLength,
		"period_length":            update.PeriodLength,
		"use_auto_calc":            update.UseAutoCalc,
		"use_pill_for_calculation": update.UsePillForCalculation,
		"pill_active_count":        update.PillActiveCount,
		"pill_rest_days":           update.PillRestDays,
	}); err != nil {
		return Settings{}, fmt.Errorf("save settings: %w", err)
	}
	return service.Load(ctx, userID)
}
