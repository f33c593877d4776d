package prediction

import "github.com/terraincognita07/cyclecast/internal/dates"

// DelayDays reports how many days the expected next period is overdue. Delay
// only exists while today lies inside the evaluated window.
func DelayDays(anchor dates.Day, from dates.Day, to dates.Day, today dates.Day, cycleLength int) int {
	if today < from || today > to {
		return 0
	}
	if dates.Gap(anchor, to)+1 <= cycleLength {
		return 0
	}
	gapToToday := dates.Gap(anchor, today)
	if gapToToday >= cycleLength-1 {
		return gapToToday - cycleLength + 1
	}
	return 0
}

// DelayRange spans the overdue days, starting on the expected period start.
func DelayRange(anchor dates.Day, from dates.Day, today dates.Day, cycleLength int, delayDays int) *DateRange {
	if delayDays <= 0 || from > today {
		return nil
	}
	start := anchor.AddDays(cycleLength)
	delay := NewDateRange(start, start.AddDays(delayDays-1))
	return &delay
}
