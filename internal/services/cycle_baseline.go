package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/terraincognita07/cyclecast/internal/dates"
	"github.com/terraincognita07/cyclecast/internal/models"
)

// baselineWindow is how many recent cycles feed the auto-calculated lengths.
const baselineWindow = 6

const (
	MinCycleLength  = 15
	MaxCycleLength  = 90
	MinPeriodLength = 1
	MaxPeriodLength = 14
)

func IsValidCycleLength(value int) bool {
	return value >= MinCycleLength && value <= MaxCycleLength
}

func IsValidPeriodLength(value int) bool {
	return value >= MinPeriodLength && value <= MaxPeriodLength
}

// CycleBaseline derives the auto cycle and period lengths from stored
// records. Lengths outside the valid ranges are ignored; zero means there was
// nothing usable.
func CycleBaseline(records []models.PeriodRecord) (int, int) {
	if len(records) == 0 {
		return 0, 0
	}

	sorted := append([]models.PeriodRecord(nil), records...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartDay < sorted[j].StartDay
	})

	cycleLengths := make([]int, 0, len(sorted))
	for index := 1; index < len(sorted); index++ {
		length := dates.Gap(sorted[index-1].StartDay, sorted[index].StartDay)
		if IsValidCycleLength(length) {
			cycleLengths = append(cycleLengths, length)
		}
	}

	periodLengths := make([]int, 0, len(sorted))
	for _, record := range sorted {
		length := dates.Gap(record.StartDay, record.EndDay) + 1
		if IsValidPeriodLength(length) {
			periodLengths = append(periodLengths, length)
		}
	}

	return roundedMean(tailInts(cycleLengths, baselineWindow)), roundedMean(tailInts(periodLengths, baselineWindow))
}

// refreshBaseline recomputes the stored auto lengths after period records
// change.
func refreshBaseline(ctx context.Context, users UserRepository, periods PeriodRecordRepository, userID uint) error {
	recent, err := periods.ListRecent(ctx, userID, baselineWindow+1)
	if err != nil {
		return fmt.Errorf("load recent periods: %w", err)
	}
	cycleLength, periodLength := CycleBaseline(recent)
	if err := users.UpdateByID(ctx, userID, map[string]any{
		"auto_cycle_length":  cycleLength,
		"auto_period_length": periodLength,
	}); err != nil {
		return fmt.Errorf("store baseline: %w", err)
	}
	return nil
}

func tailInts(values []int, n int) []int {
	if len(values) <= n {
		return values
	}
	return values[len(values)-n:]
}

// roundedMean rounds half up.
func roundedMean(values []int) int {
	if len(values) == 0 {
		return 0
	}
	total := 0
	for _, value := range values {
		total += value
	}
	return (2*total + len(values)) / (2 * len(values))
}
