package prediction

import (
	"testing"

	"github.com/terraincognita07/cyclecast/internal/dates"
)

func mustDay(raw string) dates.Day {
	return dates.MustParse(raw)
}

func dayRange(start string, end string) DateRange {
	return NewDateRange(mustDay(start), mustDay(end))
}

func assertRanges(t *testing.T, label string, got []DateRange, want ...DateRange) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("%s: expected %d ranges %v, got %d %v", label, len(want), want, len(got), got)
	}
	for index := range want {
		if got[index] != want[index] {
			t.Fatalf("%s[%d]: expected %s..%s, got %s..%s", label, index,
				want[index].Start, want[index].End, got[index].Start, got[index].End)
		}
	}
}

func manualSettings(cycleLength int, periodLength int) PeriodSettings {
	return PeriodSettings{
		ManualCycleLength:  cycleLength,
		ManualPeriodLength: periodLength,
	}
}

func period(id string, start string, end string) PeriodRecord {
	return PeriodRecord{ID: id, Start: mustDay(start), End: mustDay(end)}
}
