package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/terraincognita07/cyclecast/internal/prediction"
)

func PrintStatus(out io.Writer, status prediction.CalendarDayStatus) {
	fmt.Fprintf(out, "Date: %s\n", status.Date)
	fmt.Fprintf(out, "Classification: %s\n", status.Classification)
	if status.DayOffsetFromPeriodStart != prediction.NoDayOffset {
		fmt.Fprintf(out, "Cycle day: %d\n", status.DayOffsetFromPeriodStart+1)
	}
	fmt.Fprintf(out, "Pregnancy probability: %s\n", status.PregnancyProbability)
	if status.CycleLength > 0 {
		fmt.Fprintf(out, "Cycle length: %d days\n", status.CycleLength)
	}
	if status.DelayDays > 0 {
		fmt.Fprintf(out, "Delay: %d days\n", status.DelayDays)
	}
}

// PrintCycles writes one block per cycle. Empty range lists are skipped.
func PrintCycles(out io.Writer, cycles []prediction.CycleResult) {
	if len(cycles) == 0 {
		fmt.Fprintln(out, "No cycles in range.")
		return
	}

	for index, cycle := range cycles {
		if index > 0 {
			fmt.Fprintln(out)
		}
		header := fmt.Sprintf("Cycle %d (%d days)", index+1, cycle.CycleLength)
		if cycle.Open {
			header += " [open]"
		}
		fmt.Fprintln(out, header)

		if cycle.ActualPeriod != nil {
			fmt.Fprintf(out, "  Period: %s\n", formatRange(*cycle.ActualPeriod))
		}
		if cycle.PregnancyStartDate != nil {
			fmt.Fprintf(out, "  Pregnancy since: %s\n", *cycle.PregnancyStartDate)
		}
		printRanges(out, "Predicted", cycle.PredictedPeriods)
		printRanges(out, "Ovulation", cycle.OvulationRanges)
		printRanges(out, "Fertile", cycle.FertileRanges)
		if cycle.DelayRange != nil {
			fmt.Fprintf(out, "  Delay: %s (%d days)\n", formatRange(*cycle.DelayRange), cycle.DelayDays)
		}
		if cycle.PillBasedCycleLength != nil {
			fmt.Fprintf(out, "  Pill-based length: %d\n", *cycle.PillBasedCycleLength)
		}
		if cycle.OvulationBasedCycleLength != nil {
			fmt.Fprintf(out, "  Ovulation-based length: %d\n", *cycle.OvulationBasedCycleLength)
		}
		if cycle.RemainingRestDays != nil {
			fmt.Fprintf(out, "  Remaining rest days: %d\n", *cycle.RemainingRestDays)
		}
	}
}

func printRanges(out io.Writer, label string, ranges []prediction.DateRange) {
	if len(ranges) == 0 {
		return
	}
	formatted := make([]string, 0, len(ranges))
	for _, dateRange := range ranges {
		formatted = append(formatted, formatRange(dateRange))
	}
	fmt.Fprintf(out, "  %s: %s\n", label, strings.Join(formatted, ", "))
}

func formatRange(dateRange prediction.DateRange) string {
	if dateRange.Start == dateRange.End {
		return dateRange.Start.String()
	}
	return dateRange.Start.String() + ".." + dateRange.End.String()
}
