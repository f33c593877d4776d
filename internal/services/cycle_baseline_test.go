package services

import (
	"testing"

	"github.com/terraincognita07/cyclecast/internal/dates"
	"github.com/terraincognita07/cyclecast/internal/models"
)

func baselineRecord(start string, end string) models.PeriodRecord {
	return models.PeriodRecord{StartDay: dates.MustParse(start), EndDay: dates.MustParse(end)}
}

func TestCycleBaseline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		records      []models.PeriodRecord
		cycleLength  int
		periodLength int
	}{
		{
			name: "no records",
		},
		{
			name:         "single record has period length only",
			records:      []models.PeriodRecord{baselineRecord("2025-01-05", "2025-01-09")},
			cycleLength:  0,
			periodLength: 5,
		},
		{
			name: "mean rounds half up",
			records: []models.PeriodRecord{
				baselineRecord("2025-03-03", "2025-03-06"),
				baselineRecord("2025-01-05", "2025-01-09"),
				baselineRecord("2025-02-02", "2025-02-06"),
			},
			cycleLength:  29,
			periodLength: 5,
		},
		{
			name: "implausible gaps are ignored",
			records: []models.PeriodRecord{
				baselineRecord("2024-06-01", "2024-06-05"),
				baselineRecord("2025-01-05", "2025-01-09"),
				baselineRecord("2025-02-02", "2025-02-06"),
			},
			cycleLength:  28,
			periodLength: 5,
		},
		{
			name: "only the last six cycles count",
			records: []models.PeriodRecord{
				baselineRecord("2024-01-01", "2024-01-03"),
				baselineRecord("2024-01-21", "2024-01-23"),
				baselineRecord("2024-02-18", "2024-02-22"),
				baselineRecord("2024-03-17", "2024-03-21"),
				baselineRecord("2024-04-14", "2024-04-18"),
				baselineRecord("2024-05-12", "2024-05-16"),
				baselineRecord("2024-06-09", "2024-06-13"),
				baselineRecord("2024-07-07", "2024-07-11"),
			},
			cycleLength:  28,
			periodLength: 5,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cycleLength, periodLength := CycleBaseline(tt.records)
			if cycleLength != tt.cycleLength || periodLength != tt.periodLength {
				t.Fatalf("expected (%d, %d), got (%d, %d)", tt.cycleLength, tt.periodLength, cycleLength, periodLength)
			}
		})
	}
}

func TestRoundedMean(t *testing.T) {
	t.Parallel()

	if got := roundedMean([]int{28, 29}); got != 29 {
		t.Fatalf("expected 28.5 to round up to 29, got %d", got)
	}
	if got := roundedMean([]int{28, 28, 29}); got != 28 {
		t.Fatalf("expected 28.33 to round to 28, got %d", got)
	}
	if got := roundedMean(nil); got != 0 {
		t.Fatalf("expected 0 for empty input, got %d", got)
	}
}
