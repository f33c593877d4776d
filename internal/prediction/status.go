package prediction

import "github.com/terraincognita07/cyclecast/internal/dates"

type Classification string

const (
	ClassificationNone            Classification = "NONE"
	ClassificationPeriodDay       Classification = "PERIOD_DAY"
	ClassificationPredictedPeriod Classification = "PREDICTED_PERIOD"
	ClassificationOvulation       Classification = "OVULATION"
	ClassificationFertileWindow   Classification = "FERTILE_WINDOW"
	ClassificationDelay           Classification = "DELAY"
	ClassificationPregnancy       Classification = "PREGNANCY"
	ClassificationRecovery        Classification = "RECOVERY"
	ClassificationNoRecord        Classification = "NO_RECORD"
)

type PregnancyProbability string

const (
	ProbabilityUnknown           PregnancyProbability = "UNKNOWN"
	ProbabilityLow               PregnancyProbability = "LOW"
	ProbabilityMedium            PregnancyProbability = "MEDIUM"
	ProbabilityHigh              PregnancyProbability = "HIGH"
	ProbabilityPregnant          PregnancyProbability = "PREGNANT"
	ProbabilitySeekMedicalAdvice PregnancyProbability = "SEEK_MEDICAL_ATTENTION"
)

// seekMedicalDelayDays is the delay after which a missing period warrants a
// doctor's visit regardless of the day's classification.
const seekMedicalDelayDays = 8

// NoDayOffset marks a status without a known period start.
const NoDayOffset = -1

type CalendarDayStatus struct {
	Date                     dates.Day
	Classification           Classification
	DayOffsetFromPeriodStart int
	PregnancyProbability     PregnancyProbability
	CycleLength              int
	DelayDays                int
}

// StatusOnDate classifies a single day against the cycle governing it.
func StatusOnDate(input Input, date dates.Day, today dates.Day) CalendarDayStatus {
	if status, ok := pregnancyStatus(input.Pregnancy, date); ok {
		return status
	}

	p := newPlanner(input, today)
	cycles := p.cycles(date.AddDays(-1), date.AddDays(2), true)
	cycle, found := governingCycle(cycles, date)
	if !found {
		classification := ClassificationNone
		if len(input.Periods) == 0 {
			classification = ClassificationNoRecord
		}
		return CalendarDayStatus{
			Date:                     date,
			Classification:           classification,
			DayOffsetFromPeriodStart: NoDayOffset,
			PregnancyProbability:     ProbabilityUnknown,
			CycleLength:              p.cycleLength,
		}
	}

	classification := classify(cycle, date)
	return CalendarDayStatus{
		Date:                     date,
		Classification:           classification,
		DayOffsetFromPeriodStart: dayOffset(cycle, date),
		PregnancyProbability:     probability(cycle, classification),
		CycleLength:              cycle.GoverningLength(),
		DelayDays:                cycle.DelayDays,
	}
}

func pregnancyStatus(pregnancy *PregnancyInfo, date dates.Day) (CalendarDayStatus, bool) {
	if !pregnancy.IsActive() || date < pregnancy.Start {
		return CalendarDayStatus{}, false
	}
	classification := ClassificationPregnancy
	if pregnancy.DueDate != nil && date > *pregnancy.DueDate {
		classification = ClassificationRecovery
	}
	return CalendarDayStatus{
		Date:                     date,
		Classification:           classification,
		DayOffsetFromPeriodStart: dates.Gap(pregnancy.Start, date),
		PregnancyProbability:     ProbabilityPregnant,
	}, true
}

// governingCycle picks the last cycle that started on or before date, falling
// back to a cycle rebuilt from ovulation data alone.
func governingCycle(cycles []CycleResult, date dates.Day) (CycleResult, bool) {
	for index := len(cycles) - 1; index >= 0; index-- {
		cycle := cycles[index]
		if cycle.ActualPeriod != nil && cycle.ActualPeriod.Start <= date {
			return cycle, true
		}
	}
	for index := len(cycles) - 1; index >= 0; index-- {
		if cycles[index].ActualPeriod == nil {
			return cycles[index], true
		}
	}
	return CycleResult{}, false
}

func classify(cycle CycleResult, date dates.Day) Classification {
	switch {
	case cycle.ActualPeriod != nil && cycle.ActualPeriod.Contains(date):
		return ClassificationPeriodDay
	case cycle.DelayRange != nil && cycle.DelayRange.Contains(date):
		return ClassificationDelay
	case anyContains(cycle.PredictedPeriods, date):
		return ClassificationPredictedPeriod
	case anyContains(cycle.OvulationRanges, date):
		return ClassificationOvulation
	case anyContains(cycle.FertileRanges, date):
		return ClassificationFertileWindow
	default:
		return ClassificationNone
	}
}

// dayOffset positions date inside the cycle. Past the governing length the
// offset wraps into the projected cycle, then the delay is taken out.
func dayOffset(cycle CycleResult, date dates.Day) int {
	if cycle.ActualPeriod == nil {
		return NoDayOffset
	}
	raw := dates.Gap(cycle.ActualPeriod.Start, date)
	if cycle.DelayRange != nil && cycle.DelayRange.Contains(date) {
		return raw
	}

	length := cycle.GoverningLength()
	offset := raw
	if offset >= length {
		offset %= length
	}
	if cycle.DelayRange != nil && date > cycle.DelayRange.End {
		offset -= cycle.DelayDays
		if offset < 0 {
			offset += length
		}
	}
	return offset
}

func probability(cycle CycleResult, classification Classification) PregnancyProbability {
	if cycle.Open && cycle.DelayDays >= seekMedicalDelayDays {
		return ProbabilitySeekMedicalAdvice
	}

	switch classification {
	case ClassificationOvulation:
		return ProbabilityHigh
	case ClassificationFertileWindow:
		if cycle.IsOvulationUserProvided {
			return ProbabilityHigh
		}
		return ProbabilityMedium
	case ClassificationDelay:
		if cycle.DelayDays > 3 {
			return ProbabilityHigh
		}
		return ProbabilityMedium
	default:
		return ProbabilityLow
	}
}
