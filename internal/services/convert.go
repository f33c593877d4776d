package services

import (
	"github.com/terraincognita07/cyclecast/internal/models"
	"github.com/terraincognita07/cyclecast/internal/prediction"
)

func periodSettingsFromUser(user models.User) prediction.PeriodSettings {
	return prediction.PeriodSettings{
		ManualCycleLength:  user.CycleLength,
		ManualPeriodLength: user.PeriodLength,
		AutoCycleLength:    user.AutoCycleLength,
		AutoPeriodLength:   user.AutoPeriodLength,
		UseAutoCalc:        user.UseAutoCalc,
	}
}

func pillSettingsFromUser(user models.User) prediction.PillSettings {
	return prediction.PillSettings{
		UseForCalculation: user.UsePillForCalculation,
		ActivePillCount:   user.PillActiveCount,
		RestDays:          user.PillRestDays,
	}
}

func toPredictionPeriods(records []models.PeriodRecord) []prediction.PeriodRecord {
	converted := make([]prediction.PeriodRecord, 0, len(records))
	for _, record := range records {
		converted = append(converted, prediction.PeriodRecord{
			ID:    record.ID,
			Start: record.StartDay,
			End:   record.EndDay,
		})
	}
	return converted
}

func toPredictionTests(tests []models.OvulationTest) []prediction.OvulationTestResult {
	converted := make([]prediction.OvulationTestResult, 0, len(tests))
	for _, test := range tests {
		converted = append(converted, prediction.OvulationTestResult{
			Date:    test.Day,
			Outcome: prediction.OvulationOutcome(test.Outcome),
		})
	}
	return converted
}

func toPredictionOvulationDays(days []models.OvulationDay) []prediction.UserOvulationDay {
	converted := make([]prediction.UserOvulationDay, 0, len(days))
	for _, day := range days {
		converted = append(converted, prediction.UserOvulationDay{Date: day.Day})
	}
	return converted
}

func toPredictionPills(packages []models.PillPackage) []prediction.PillPackage {
	converted := make([]prediction.PillPackage, 0, len(packages))
	for _, pkg := range packages {
		converted = append(converted, prediction.PillPackage{
			Start:           pkg.StartDay,
			ActivePillCount: pkg.ActivePillCount,
			RestDays:        pkg.RestDays,
		})
	}
	return converted
}

func toPredictionPregnancy(pregnancy models.Pregnancy, found bool) *prediction.PregnancyInfo {
	if !found {
		return nil
	}
	info := &prediction.PregnancyInfo{
		Start:         pregnancy.StartDay,
		IsEnded:       pregnancy.IsEnded,
		IsMiscarriage: pregnancy.IsMiscarriage,
		IsDeleted:     pregnancy.IsDeleted,
	}
	if pregnancy.DueDay != nil {
		due := *pregnancy.DueDay
		info.DueDate = &due
	}
	return info
}
