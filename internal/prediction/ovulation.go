package prediction

import (
	"sort"

	"github.com/terraincognita07/cyclecast/internal/dates"
)

// CombineOvulationDates merges positive test dates and user-entered ovulation
// days inside [from, to] into an ascending, duplicate-free list.
func CombineOvulationDates(tests []OvulationTestResult, userDays []UserOvulationDay, from dates.Day, to dates.Day) []dates.Day {
	seen := make(map[dates.Day]struct{}, len(tests)+len(userDays))
	combined := make([]dates.Day, 0, len(tests)+len(userDays))
	add := func(day dates.Day) {
		if day < from || day > to {
			return
		}
		if _, exists := seen[day]; exists {
			return
		}
		seen[day] = struct{}{}
		combined = append(combined, day)
	}

	for _, test := range tests {
		if test.Outcome == OvulationPositive {
			add(test.Date)
		}
	}
	for _, userDay := range userDays {
		add(userDay.Date)
	}

	sort.Slice(combined, func(i, j int) bool {
		return combined[i] < combined[j]
	})
	return combined
}

// CompressToRanges run-length encodes sorted days: consecutive days collapse
// into one range.
func CompressToRanges(sorted []dates.Day) []DateRange {
	if len(sorted) == 0 {
		return nil
	}

	ranges := make([]DateRange, 0, len(sorted))
	current := NewDateRange(sorted[0], sorted[0])
	for _, day := range sorted[1:] {
		if dates.Gap(current.End, day) == 1 {
			current.End = day
			continue
		}
		ranges = append(ranges, current)
		current = NewDateRange(day, day)
	}
	return append(ranges, current)
}

// FertileFromOvulation widens each known ovulation range to two days before
// and one day after.
func FertileFromOvulation(ovulation []DateRange) []DateRange {
	if len(ovulation) == 0 {
		return nil
	}
	fertile := make([]DateRange, 0, len(ovulation))
	for _, r := range ovulation {
		fertile = append(fertile, NewDateRange(r.Start.AddDays(-2), r.End.AddDays(1)))
	}
	return fertile
}
