package prediction

import (
	"sort"

	"github.com/terraincognita07/cyclecast/internal/dates"
)

// lutealPhaseDays is the assumed span from ovulation to the next period.
const lutealPhaseDays = 14

// ovulationLookaheadDays widens ovulation reconstruction past the query end.
const ovulationLookaheadDays = 2

// ComputeCycles returns one result per cycle relevant to [from, to]. With two
// or more selected records the latest one is reported as an open cycle
// without forward prediction; use Forecast for that.
func ComputeCycles(input Input, from dates.Day, to dates.Day, today dates.Day) []CycleResult {
	return newPlanner(input, today).cycles(from, to, false)
}

// Forecast runs the full single-record prediction for record over [from, to].
func Forecast(input Input, record PeriodRecord, from dates.Day, to dates.Day, today dates.Day) CycleResult {
	return newPlanner(input, today).forecast(record.normalized(), from, to)
}

type planner struct {
	input        Input
	today        dates.Day
	cycleLength  int
	periodLength int
}

func newPlanner(input Input, today dates.Day) planner {
	return planner{
		input:        input,
		today:        today,
		cycleLength:  input.Settings.EffectiveCycleLength(),
		periodLength: input.Settings.EffectivePeriodLength(),
	}
}

// cycles drives the record-count state machine. keepOpen forecasts the
// latest record unconditionally, which status classification relies on.
func (p planner) cycles(from dates.Day, to dates.Day, keepOpen bool) []CycleResult {
	if to < from {
		from, to = to, from
	}
	selected := p.selectRecords(from, to)

	switch len(selected) {
	case 0:
		return p.ovulationOnly(from, to.AddDays(ovulationLookaheadDays))
	case 1:
		result := p.forecast(selected[0], from, to)
		if keepOpen || result.hasDerivedRanges() || result.ActualPeriod.Overlaps(from, to) {
			return []CycleResult{result}
		}
		return p.ovulationOnly(from, to.AddDays(ovulationLookaheadDays))
	}

	results := make([]CycleResult, 0, len(selected))
	for index := 0; index+1 < len(selected); index++ {
		results = append(results, p.historical(selected[index], selected[index+1]))
	}
	if keepOpen {
		results = append(results, p.forecast(selected[len(selected)-1], from, to))
	} else if len(selected) == 2 {
		results = append(results, p.trailing(selected[1], to))
	}
	return results
}

// selectRecords picks the records overlapping [from, to] plus the neighbours
// needed to bound the window. Records inside an active pregnancy are ignored.
func (p planner) selectRecords(from dates.Day, to dates.Day) []PeriodRecord {
	eligible := make([]PeriodRecord, 0, len(p.input.Periods))
	for _, record := range p.input.Periods {
		record = record.normalized()
		if p.input.Pregnancy.covers(record.Start) {
			continue
		}
		eligible = append(eligible, record)
	}
	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].Start < eligible[j].Start
	})

	firstOverlap, lastOverlap := -1, -1
	for index, record := range eligible {
		if record.Start <= to && record.End >= from {
			if firstOverlap < 0 {
				firstOverlap = index
			}
			lastOverlap = index
		}
	}

	if firstOverlap < 0 {
		selected := make([]PeriodRecord, 0, 2)
		lookBack, lookAhead := -1, -1
		for index, record := range eligible {
			if record.Start < from {
				lookBack = index
			}
			if lookAhead < 0 && record.Start >= to {
				lookAhead = index
			}
		}
		if lookBack >= 0 {
			selected = append(selected, eligible[lookBack])
		}
		if lookAhead >= 0 && lookAhead != lookBack {
			selected = append(selected, eligible[lookAhead])
		}
		return selected
	}

	start, end := firstOverlap, lastOverlap
	if eligible[firstOverlap].Start > from && firstOverlap > 0 {
		start--
	}
	if lastOverlap+1 < len(eligible) {
		end++
	}
	return append([]PeriodRecord(nil), eligible[start:end+1]...)
}

// historical describes a closed cycle between two consecutive records.
func (p planner) historical(current PeriodRecord, next PeriodRecord) CycleResult {
	length := dates.Gap(current.Start, next.Start)
	actual := NewDateRange(current.Start, current.End)
	result := CycleResult{
		RecordID:     current.ID,
		ActualPeriod: &actual,
		CycleLength:  length,
	}

	lastDay := next.Start.AddDays(-1)
	combined := CombineOvulationDates(p.input.OvulationTests, p.input.OvulationDays, current.Start, lastDay)
	pillActive := p.input.PillSettings.UseForCalculation && PillActiveBetween(current.Start, next.Start, p.input.PillPackages)

	switch {
	case len(combined) > 0:
		result.OvulationRanges = CompressToRanges(combined)
		result.FertileRanges = FertileFromOvulation(result.OvulationRanges)
		result.IsOvulationUserProvided = true
	case !pillActive:
		result.OvulationRanges, result.FertileRanges = computedWindows(current.Start, current.Start, lastDay, length)
	}

	return p.applyPregnancy(result)
}

// trailing reports the latest record as an open cycle without prediction.
func (p planner) trailing(record PeriodRecord, to dates.Day) CycleResult {
	actual := NewDateRange(record.Start, record.End)
	result := CycleResult{
		RecordID:     record.ID,
		ActualPeriod: &actual,
		CycleLength:  p.cycleLength,
		Open:         true,
	}

	combined := CombineOvulationDates(p.input.OvulationTests, p.input.OvulationDays, record.Start, dates.Max(to, record.Start).AddDays(ovulationLookaheadDays))
	if len(combined) > 0 {
		result.OvulationRanges = CompressToRanges(combined)
		result.FertileRanges = FertileFromOvulation(result.OvulationRanges)
		result.IsOvulationUserProvided = true
	}
	return p.applyPregnancy(result)
}

// forecast predicts forward from the most recent record.
func (p planner) forecast(record PeriodRecord, from dates.Day, to dates.Day) CycleResult {
	anchor := record.Start
	actual := NewDateRange(record.Start, record.End)
	result := CycleResult{
		RecordID:     record.ID,
		ActualPeriod: &actual,
		CycleLength:  p.cycleLength,
		Open:         true,
	}

	combined := CombineOvulationDates(p.input.OvulationTests, p.input.OvulationDays, anchor, dates.Max(to, anchor).AddDays(ovulationLookaheadDays))
	if len(combined) > 0 {
		result.OvulationRanges = CompressToRanges(combined)
		result.FertileRanges = FertileFromOvulation(result.OvulationRanges)
		result.IsOvulationUserProvided = true
		if gap := dates.Gap(anchor, combined[len(combined)-1]); gap > 0 {
			ovulationBased := gap + lutealPhaseDays
			result.OvulationBasedCycleLength = &ovulationBased
		}
	}

	normalPredicted := anchor.AddDays(p.cycleLength)
	if pillDate := PillBasedPredictDate(anchor, normalPredicted, p.input.PillPackages, p.input.PillSettings); pillDate != nil && *pillDate > anchor {
		pillBased := dates.Gap(anchor, *pillDate)
		result.PillBasedCycleLength = &pillBased
	}

	governing := result.GoverningLength()
	result.DelayDays = DelayDays(anchor, from, to, p.today, governing)
	result.DelayRange = DelayRange(anchor, from, p.today, governing, result.DelayDays)

	queryFrom := dates.Max(from, anchor)
	if queryFrom <= to {
		result.PredictedPeriods = predictAcrossCycles(PredictRequest{
			IsPeriod:    true,
			Anchor:      anchor,
			From:        queryFrom,
			To:          to,
			CycleLength: governing,
			WindowStart: 0,
			WindowEnd:   p.periodLength - 1,
			DelayDays:   result.DelayDays,
		})
		result.PredictedPeriods = dropBefore(result.PredictedPeriods, anchor.AddDays(governing))
		if !result.IsOvulationUserProvided && result.PillBasedCycleLength == nil {
			result.OvulationRanges, result.FertileRanges = computedWindows(anchor, queryFrom, to, governing)
		}
	}

	if p.today >= anchor {
		result.RemainingRestDays = RemainingRestDays(p.today, p.input.PillPackages, p.input.PillSettings)
	}

	result = p.applyPregnancy(result)
	if result.DelayRange == nil {
		result.DelayDays = 0
	}
	return result
}

// predictAcrossCycles projects request into every cycle the query reaches.
// Predict only tests the window against the remainder span of the query, so a
// forward query that crosses a cycle boundary without wrapping would miss
// windows that sit outside that span. Such queries are split into whole
// cycles, each projected on its own.
func predictAcrossCycles(request PredictRequest) []DateRange {
	cycleLength := max(request.CycleLength, 1)
	gapStart := dates.Gap(request.Anchor, request.From)
	gapEnd := dates.Gap(request.Anchor, request.To)
	first, last := gapStart/cycleLength, gapEnd/cycleLength
	if gapStart < 0 || first == last || gapEnd%cycleLength < gapStart%cycleLength {
		return Predict(request)
	}
	if cycleLength*first+request.WindowEnd+request.DelayDays < 0 {
		return nil
	}

	var ranges []DateRange
	for index := first; index <= last; index++ {
		cycle := request
		cycle.From = request.Anchor.AddDays(cycleLength * index)
		cycle.To = cycle.From.AddDays(cycleLength - 1)
		found := Predict(cycle)
		ranges = append(ranges, found...)
		if request.SingleOccurrence && len(found) > 0 {
			break
		}
	}
	return ranges
}

// dropBefore keeps ranges starting on or after bound. A delayed window can
// otherwise land inside the anchor's own cycle.
func dropBefore(ranges []DateRange, bound dates.Day) []DateRange {
	kept := ranges[:0]
	for _, candidate := range ranges {
		if candidate.Start >= bound {
			kept = append(kept, candidate)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	return kept
}

// ovulationOnly rebuilds a cycle purely from explicit ovulation data.
func (p planner) ovulationOnly(from dates.Day, to dates.Day) []CycleResult {
	combined := CombineOvulationDates(p.input.OvulationTests, p.input.OvulationDays, from, to)
	if len(combined) == 0 {
		return nil
	}

	ovulation := CompressToRanges(combined)
	result := p.applyPregnancy(CycleResult{
		OvulationRanges:         ovulation,
		FertileRanges:           FertileFromOvulation(ovulation),
		CycleLength:             p.cycleLength,
		IsOvulationUserProvided: true,
	})
	if len(result.OvulationRanges) == 0 && len(result.FertileRanges) == 0 {
		return nil
	}
	return []CycleResult{result}
}

func (p planner) applyPregnancy(result CycleResult) CycleResult {
	pregnancy := p.input.Pregnancy
	if !pregnancy.IsActive() {
		return result
	}
	result.PredictedPeriods = FilterByPregnancy(result.PredictedPeriods, pregnancy)
	result.OvulationRanges = FilterByPregnancy(result.OvulationRanges, pregnancy)
	result.FertileRanges = FilterByPregnancy(result.FertileRanges, pregnancy)
	result.DelayRange = filterRangeByPregnancy(result.DelayRange, pregnancy)
	start := pregnancy.Start
	result.PregnancyStartDate = &start
	return result
}

// computedWindows projects the cycle-length based ovulation and fertile
// windows once for the cycle governing [from, to].
func computedWindows(anchor dates.Day, from dates.Day, to dates.Day, cycleLength int) ([]DateRange, []DateRange) {
	ovulationStart, ovulationEnd := OvulationWindowOffsets(cycleLength)
	fertileStart, fertileEnd := FertileWindowOffsets(cycleLength)

	ovulation := predictAcrossCycles(PredictRequest{
		Anchor:           anchor,
		From:             from,
		To:               to,
		CycleLength:      cycleLength,
		WindowStart:      ovulationStart,
		WindowEnd:        ovulationEnd,
		SingleOccurrence: true,
	})
	fertile := predictAcrossCycles(PredictRequest{
		Anchor:           anchor,
		From:             from,
		To:               to,
		CycleLength:      cycleLength,
		WindowStart:      fertileStart,
		WindowEnd:        fertileEnd,
		SingleOccurrence: true,
	})
	return ovulation, fertile
}
