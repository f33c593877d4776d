package prediction

import "github.com/terraincognita07/cyclecast/internal/dates"

const (
	DefaultCycleLength  = 28
	DefaultPeriodLength = 5
)

type OvulationOutcome string

const (
	OvulationNegative OvulationOutcome = "NEGATIVE"
	OvulationPositive OvulationOutcome = "POSITIVE"
	OvulationUnclear  OvulationOutcome = "UNCLEAR"
)

func (outcome OvulationOutcome) Valid() bool {
	switch outcome {
	case OvulationNegative, OvulationPositive, OvulationUnclear:
		return true
	default:
		return false
	}
}

// PeriodRecord is one observed menstruation episode.
type PeriodRecord struct {
	ID    string
	Start dates.Day
	End   dates.Day
}

func (record PeriodRecord) normalized() PeriodRecord {
	if record.End < record.Start {
		record.End = record.Start
	}
	return record
}

type PeriodSettings struct {
	ManualCycleLength  int
	ManualPeriodLength int
	AutoCycleLength    int
	AutoPeriodLength   int
	UseAutoCalc        bool
}

// EffectiveCycleLength picks the auto value when enabled and known, then the
// manual value, then the default.
func (settings PeriodSettings) EffectiveCycleLength() int {
	return effectiveLength(settings.UseAutoCalc, settings.AutoCycleLength, settings.ManualCycleLength, DefaultCycleLength)
}

func (settings PeriodSettings) EffectivePeriodLength() int {
	return effectiveLength(settings.UseAutoCalc, settings.AutoPeriodLength, settings.ManualPeriodLength, DefaultPeriodLength)
}

func effectiveLength(useAuto bool, auto int, manual int, fallback int) int {
	if useAuto && auto > 0 {
		return auto
	}
	if manual > 0 {
		return manual
	}
	return fallback
}

type OvulationTestResult struct {
	Date    dates.Day
	Outcome OvulationOutcome
}

type UserOvulationDay struct {
	Date dates.Day
}

type PillPackage struct {
	Start           dates.Day
	ActivePillCount int
	RestDays        int
}

type PillSettings struct {
	UseForCalculation bool
	ActivePillCount   int
	RestDays          int
}

type PregnancyInfo struct {
	Start         dates.Day
	DueDate       *dates.Day
	IsEnded       bool
	IsMiscarriage bool
	IsDeleted     bool
}

func (info *PregnancyInfo) IsActive() bool {
	return info != nil && !info.IsEnded && !info.IsMiscarriage && !info.IsDeleted
}

// covers reports whether day falls inside the active pregnancy span: from the
// start through the due date, or open-ended when no due date is known.
func (info *PregnancyInfo) covers(day dates.Day) bool {
	if !info.IsActive() || day < info.Start {
		return false
	}
	return info.DueDate == nil || day <= *info.DueDate
}

// Input is everything one computation needs. The caller supplies records for
// the query window plus at most one look-back and one look-ahead record.
type Input struct {
	Periods        []PeriodRecord
	Settings       PeriodSettings
	OvulationTests []OvulationTestResult
	OvulationDays  []UserOvulationDay
	PillPackages   []PillPackage
	PillSettings   PillSettings
	Pregnancy      *PregnancyInfo
}

// CycleResult describes one cycle: observed data plus derived ranges.
type CycleResult struct {
	RecordID                  string
	ActualPeriod              *DateRange
	PredictedPeriods          []DateRange
	OvulationRanges           []DateRange
	FertileRanges             []DateRange
	DelayRange                *DateRange
	DelayDays                 int
	CycleLength               int
	PillBasedCycleLength      *int
	OvulationBasedCycleLength *int
	IsOvulationUserProvided   bool
	PregnancyStartDate        *dates.Day
	RemainingRestDays         *int
	// Open marks the latest record's cycle, which has no following record yet.
	Open bool
}

// GoverningLength is the cycle length that positions days inside this cycle:
// pill-based, then ovulation-based, then the plain length.
func (result CycleResult) GoverningLength() int {
	switch {
	case result.PillBasedCycleLength != nil && *result.PillBasedCycleLength > 0:
		return *result.PillBasedCycleLength
	case result.OvulationBasedCycleLength != nil && *result.OvulationBasedCycleLength > 0:
		return *result.OvulationBasedCycleLength
	case result.CycleLength > 0:
		return result.CycleLength
	default:
		return 1
	}
}

func (result CycleResult) hasDerivedRanges() bool {
	return len(result.PredictedPeriods) > 0 ||
		len(result.OvulationRanges) > 0 ||
		len(result.FertileRanges) > 0 ||
		result.DelayRange != nil
}
