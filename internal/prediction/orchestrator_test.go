package prediction

import "testing"

func TestComputeCyclesSingleRecordForecast(t *testing.T) {
	t.Parallel()

	input := Input{
		Periods:  []PeriodRecord{period("p1", "2025-01-05", "2025-01-09")},
		Settings: manualSettings(28, 5),
	}

	cycles := ComputeCycles(input, mustDay("2025-01-01"), mustDay("2025-02-28"), mustDay("2025-01-10"))
	if len(cycles) != 1 {
		t.Fatalf("expected 1 cycle, got %d", len(cycles))
	}
	cycle := cycles[0]
	if cycle.RecordID != "p1" || !cycle.Open {
		t.Fatalf("expected open cycle for p1, got %+v", cycle)
	}
	if cycle.ActualPeriod == nil || *cycle.ActualPeriod != dayRange("2025-01-05", "2025-01-09") {
		t.Fatalf("unexpected actual period %v", cycle.ActualPeriod)
	}
	assertRanges(t, "predicted", cycle.PredictedPeriods, dayRange("2025-02-02", "2025-02-06"))
	assertRanges(t, "ovulation", cycle.OvulationRanges, dayRange("2025-01-17", "2025-01-19"))
	assertRanges(t, "fertile", cycle.FertileRanges, dayRange("2025-01-12", "2025-01-23"))
	if cycle.DelayRange != nil || cycle.DelayDays != 0 {
		t.Fatalf("expected no delay, got %d", cycle.DelayDays)
	}
	if cycle.IsOvulationUserProvided {
		t.Fatal("expected computed ovulation")
	}
	if cycle.CycleLength != 28 {
		t.Fatalf("expected cycle length 28, got %d", cycle.CycleLength)
	}
}

func TestComputeCyclesTwoRecords(t *testing.T) {
	t.Parallel()

	input := Input{
		Periods: []PeriodRecord{
			period("p2", "2025-02-02", "2025-02-06"),
			period("p1", "2025-01-05", "2025-01-09"),
		},
		Settings: manualSettings(30, 5),
	}

	cycles := ComputeCycles(input, mustDay("2025-01-01"), mustDay("2025-02-28"), mustDay("2025-02-10"))
	if len(cycles) != 2 {
		t.Fatalf("expected 2 cycles, got %d", len(cycles))
	}

	first := cycles[0]
	if first.ActualPeriod == nil || *first.ActualPeriod != dayRange("2025-01-05", "2025-01-09") {
		t.Fatalf("unexpected first actual period %v", first.ActualPeriod)
	}
	if first.CycleLength != 28 {
		t.Fatalf("expected elapsed cycle length 28, got %d", first.CycleLength)
	}
	if first.Open {
		t.Fatal("expected first cycle to be closed")
	}
	assertRanges(t, "first ovulation", first.OvulationRanges, dayRange("2025-01-17", "2025-01-19"))
	assertRanges(t, "first fertile", first.FertileRanges, dayRange("2025-01-12", "2025-01-23"))
	if len(first.PredictedPeriods) != 0 {
		t.Fatalf("expected no predictions for a historical cycle, got %v", first.PredictedPeriods)
	}

	trailing := cycles[1]
	if trailing.RecordID != "p2" || !trailing.Open {
		t.Fatalf("expected open trailing cycle for p2, got %+v", trailing)
	}
	if len(trailing.PredictedPeriods) != 0 || len(trailing.OvulationRanges) != 0 || trailing.DelayRange != nil {
		t.Fatalf("expected trailing cycle without prediction, got %+v", trailing)
	}
	if trailing.CycleLength != 30 {
		t.Fatalf("expected settings cycle length 30, got %d", trailing.CycleLength)
	}
}

func TestComputeCyclesManyRecordsReturnsPairs(t *testing.T) {
	t.Parallel()

	input := Input{
		Periods: []PeriodRecord{
			period("p1", "2025-01-05", "2025-01-09"),
			period("p2", "2025-02-02", "2025-02-06"),
			period("p3", "2025-03-04", "2025-03-08"),
		},
		Settings: manualSettings(28, 5),
	}

	cycles := ComputeCycles(input, mustDay("2025-01-01"), mustDay("2025-03-31"), mustDay("2025-03-10"))
	if len(cycles) != 2 {
		t.Fatalf("expected 2 historical cycles, got %d", len(cycles))
	}
	if cycles[0].CycleLength != 28 || cycles[1].CycleLength != 30 {
		t.Fatalf("unexpected cycle lengths %d, %d", cycles[0].CycleLength, cycles[1].CycleLength)
	}
	assertRanges(t, "second ovulation", cycles[1].OvulationRanges, dayRange("2025-02-14", "2025-02-16"))
}

func TestComputeCyclesSelectsLookBackAndLookAhead(t *testing.T) {
	t.Parallel()

	input := Input{
		Periods: []PeriodRecord{
			period("p1", "2025-01-05", "2025-01-09"),
			period("p2", "2025-02-02", "2025-02-06"),
			period("p3", "2025-03-02", "2025-03-06"),
			period("p4", "2025-03-30", "2025-04-03"),
		},
		Settings: manualSettings(28, 5),
	}

	cycles := ComputeCycles(input, mustDay("2025-02-15"), mustDay("2025-02-20"), mustDay("2025-04-10"))
	if len(cycles) != 2 {
		t.Fatalf("expected look-back pair plus trailing entry, got %d", len(cycles))
	}
	if cycles[0].RecordID != "p2" || cycles[1].RecordID != "p3" {
		t.Fatalf("expected p2 and p3, got %s and %s", cycles[0].RecordID, cycles[1].RecordID)
	}
	if cycles[0].CycleLength != 28 {
		t.Fatalf("expected 28, got %d", cycles[0].CycleLength)
	}
}

func TestComputeCyclesUserOvulationWithoutRecords(t *testing.T) {
	t.Parallel()

	input := Input{
		Settings:      manualSettings(28, 5),
		OvulationDays: []UserOvulationDay{{Date: mustDay("2025-01-18")}},
	}

	cycles := ComputeCycles(input, mustDay("2025-01-01"), mustDay("2025-01-31"), mustDay("2025-01-20"))
	if len(cycles) != 1 {
		t.Fatalf("expected 1 cycle, got %d", len(cycles))
	}
	cycle := cycles[0]
	if !cycle.IsOvulationUserProvided {
		t.Fatal("expected user-provided ovulation")
	}
	if cycle.ActualPeriod != nil || cycle.RecordID != "" {
		t.Fatalf("expected no record data, got %+v", cycle)
	}
	assertRanges(t, "ovulation", cycle.OvulationRanges, dayRange("2025-01-18", "2025-01-18"))
	assertRanges(t, "fertile", cycle.FertileRanges, dayRange("2025-01-16", "2025-01-19"))
}

func TestComputeCyclesNoDataReturnsNothing(t *testing.T) {
	t.Parallel()

	cycles := ComputeCycles(Input{Settings: manualSettings(28, 5)}, mustDay("2025-01-01"), mustDay("2025-01-31"), mustDay("2025-01-20"))
	if len(cycles) != 0 {
		t.Fatalf("expected no cycles, got %v", cycles)
	}
}

func TestComputeCyclesUserOvulationOverridesComputedWindow(t *testing.T) {
	t.Parallel()

	input := Input{
		Periods:       []PeriodRecord{period("p1", "2025-01-05", "2025-01-09")},
		Settings:      manualSettings(28, 5),
		OvulationDays: []UserOvulationDay{{Date: mustDay("2025-01-20")}},
	}

	cycle := ComputeCycles(input, mustDay("2025-01-01"), mustDay("2025-02-28"), mustDay("2025-01-25"))[0]
	if !cycle.IsOvulationUserProvided {
		t.Fatal("expected user-provided ovulation")
	}
	assertRanges(t, "ovulation", cycle.OvulationRanges, dayRange("2025-01-20", "2025-01-20"))
	assertRanges(t, "fertile", cycle.FertileRanges, dayRange("2025-01-18", "2025-01-21"))
	if cycle.OvulationBasedCycleLength == nil || *cycle.OvulationBasedCycleLength != 29 {
		t.Fatalf("expected ovulation based length 29, got %v", cycle.OvulationBasedCycleLength)
	}
	assertRanges(t, "predicted", cycle.PredictedPeriods, dayRange("2025-02-03", "2025-02-07"))
}

func TestComputeCyclesPositiveTestsInHistoricalCycle(t *testing.T) {
	t.Parallel()

	input := Input{
		Periods: []PeriodRecord{
			period("p1", "2025-01-05", "2025-01-09"),
			period("p2", "2025-02-02", "2025-02-06"),
		},
		Settings: manualSettings(28, 5),
		OvulationTests: []OvulationTestResult{
			{Date: mustDay("2025-01-15"), Outcome: OvulationNegative},
			{Date: mustDay("2025-01-19"), Outcome: OvulationPositive},
			{Date: mustDay("2025-01-20"), Outcome: OvulationPositive},
		},
	}

	first := ComputeCycles(input, mustDay("2025-01-01"), mustDay("2025-02-28"), mustDay("2025-02-10"))[0]
	if !first.IsOvulationUserProvided {
		t.Fatal("expected test-driven ovulation")
	}
	assertRanges(t, "ovulation", first.OvulationRanges, dayRange("2025-01-19", "2025-01-20"))
	assertRanges(t, "fertile", first.FertileRanges, dayRange("2025-01-17", "2025-01-21"))
}

func TestComputeCyclesPillSuppressesOvulation(t *testing.T) {
	t.Parallel()

	input := Input{
		Periods:      []PeriodRecord{period("p1", "2025-01-05", "2025-01-09")},
		Settings:     manualSettings(28, 5),
		PillPackages: []PillPackage{{Start: mustDay("2025-01-07"), ActivePillCount: 21, RestDays: 7}},
		PillSettings: PillSettings{UseForCalculation: true, ActivePillCount: 21, RestDays: 7},
	}

	cycle := ComputeCycles(input, mustDay("2025-01-01"), mustDay("2025-02-28"), mustDay("2025-01-20"))[0]
	if cycle.PillBasedCycleLength == nil || *cycle.PillBasedCycleLength != 25 {
		t.Fatalf("expected pill based length 25, got %v", cycle.PillBasedCycleLength)
	}
	if len(cycle.OvulationRanges) != 0 || len(cycle.FertileRanges) != 0 {
		t.Fatalf("expected ovulation suppressed, got %v / %v", cycle.OvulationRanges, cycle.FertileRanges)
	}
	assertRanges(t, "predicted", cycle.PredictedPeriods,
		dayRange("2025-01-30", "2025-02-03"),
		dayRange("2025-02-24", "2025-02-28"),
	)
}

func TestComputeCyclesPillDoesNotOverrideUserOvulation(t *testing.T) {
	t.Parallel()

	input := Input{
		Periods:       []PeriodRecord{period("p1", "2025-01-05", "2025-01-09")},
		Settings:      manualSettings(28, 5),
		OvulationDays: []UserOvulationDay{{Date: mustDay("2025-01-19")}},
		PillPackages:  []PillPackage{{Start: mustDay("2025-01-07"), ActivePillCount: 21, RestDays: 7}},
		PillSettings:  PillSettings{UseForCalculation: true, ActivePillCount: 21, RestDays: 7},
	}

	cycle := ComputeCycles(input, mustDay("2025-01-01"), mustDay("2025-02-28"), mustDay("2025-01-20"))[0]
	assertRanges(t, "ovulation", cycle.OvulationRanges, dayRange("2025-01-19", "2025-01-19"))
	if cycle.GoverningLength() != 25 {
		t.Fatalf("expected pill length to govern, got %d", cycle.GoverningLength())
	}
}

func TestComputeCyclesPregnancyFiltersForecast(t *testing.T) {
	t.Parallel()

	input := Input{
		Periods:   []PeriodRecord{period("p1", "2025-01-05", "2025-01-09")},
		Settings:  manualSettings(28, 5),
		Pregnancy: activePregnancy("2025-01-15"),
	}

	cycle := ComputeCycles(input, mustDay("2025-01-01"), mustDay("2025-02-28"), mustDay("2025-01-20"))[0]
	if len(cycle.PredictedPeriods) != 0 || len(cycle.OvulationRanges) != 0 {
		t.Fatalf("expected predictions removed, got %v / %v", cycle.PredictedPeriods, cycle.OvulationRanges)
	}
	assertRanges(t, "fertile", cycle.FertileRanges, dayRange("2025-01-12", "2025-01-14"))
	if cycle.PregnancyStartDate == nil || *cycle.PregnancyStartDate != mustDay("2025-01-15") {
		t.Fatalf("expected pregnancy start date, got %v", cycle.PregnancyStartDate)
	}
}

func TestComputeCyclesIgnoresRecordsInsidePregnancy(t *testing.T) {
	t.Parallel()

	input := Input{
		Periods: []PeriodRecord{
			period("p1", "2025-01-05", "2025-01-09"),
			period("p2", "2025-02-02", "2025-02-03"),
		},
		Settings:  manualSettings(28, 5),
		Pregnancy: activePregnancy("2025-01-20"),
	}

	cycles := ComputeCycles(input, mustDay("2025-01-01"), mustDay("2025-02-28"), mustDay("2025-02-10"))
	if len(cycles) != 1 || cycles[0].RecordID != "p1" {
		t.Fatalf("expected single cycle for p1, got %+v", cycles)
	}
}

func TestComputeCyclesDelayShiftsForecast(t *testing.T) {
	t.Parallel()

	input := Input{
		Periods:  []PeriodRecord{period("p1", "2025-01-05", "2025-01-09")},
		Settings: manualSettings(30, 5),
	}

	cycle := ComputeCycles(input, mustDay("2025-02-01"), mustDay("2025-02-28"), mustDay("2025-02-10"))[0]
	if cycle.DelayDays != 7 {
		t.Fatalf("expected 7 delay days, got %d", cycle.DelayDays)
	}
	if cycle.DelayRange == nil || *cycle.DelayRange != dayRange("2025-02-04", "2025-02-10") {
		t.Fatalf("unexpected delay range %v", cycle.DelayRange)
	}
	assertRanges(t, "predicted", cycle.PredictedPeriods, dayRange("2025-02-11", "2025-02-15"))
}

func TestComputeCyclesLongDelayDropsPrediction(t *testing.T) {
	t.Parallel()

	input := Input{
		Periods:  []PeriodRecord{period("p1", "2025-01-05", "2025-01-09")},
		Settings: manualSettings(30, 5),
	}

	cycle := ComputeCycles(input, mustDay("2025-02-01"), mustDay("2025-02-28"), mustDay("2025-02-14"))[0]
	if cycle.DelayDays != 11 {
		t.Fatalf("expected 11 delay days, got %d", cycle.DelayDays)
	}
	if len(cycle.PredictedPeriods) != 0 {
		t.Fatalf("expected no predicted period, got %v", cycle.PredictedPeriods)
	}
}

func TestComputeCyclesIsDeterministic(t *testing.T) {
	t.Parallel()

	input := Input{
		Periods: []PeriodRecord{
			period("p1", "2025-01-05", "2025-01-09"),
			period("p2", "2025-02-02", "2025-02-06"),
		},
		Settings:      manualSettings(28, 5),
		OvulationDays: []UserOvulationDay{{Date: mustDay("2025-02-15")}},
	}

	first := ComputeCycles(input, mustDay("2025-01-01"), mustDay("2025-03-31"), mustDay("2025-02-20"))
	second := ComputeCycles(input, mustDay("2025-01-01"), mustDay("2025-03-31"), mustDay("2025-02-20"))
	if len(first) != len(second) {
		t.Fatalf("expected identical output lengths, got %d and %d", len(first), len(second))
	}
	for index := range first {
		if first[index].RecordID != second[index].RecordID || first[index].CycleLength != second[index].CycleLength {
			t.Fatalf("cycle %d differs between runs", index)
		}
	}
}

func TestForecastForLatestRecord(t *testing.T) {
	t.Parallel()

	input := Input{Settings: manualSettings(28, 5)}
	record := period("p2", "2025-02-02", "2025-02-06")

	cycle := Forecast(input, record, mustDay("2025-02-01"), mustDay("2025-03-31"), mustDay("2025-02-10"))
	assertRanges(t, "predicted", cycle.PredictedPeriods,
		dayRange("2025-03-02", "2025-03-06"),
		dayRange("2025-03-30", "2025-04-03"),
	)
	assertRanges(t, "ovulation", cycle.OvulationRanges, dayRange("2025-02-14", "2025-02-16"))
}

func TestPredictAcrossCyclesCoversEveryCycleReached(t *testing.T) {
	t.Parallel()

	anchor := mustDay("2025-01-05")
	request := PredictRequest{
		Anchor:      anchor,
		From:        anchor.AddDays(2),
		To:          anchor.AddDays(33),
		CycleLength: 28,
		WindowStart: 12,
		WindowEnd:   14,
	}

	assertRanges(t, "all cycles", predictAcrossCycles(request),
		dayRange("2025-01-17", "2025-01-19"),
		dayRange("2025-02-14", "2025-02-16"),
	)

	request.SingleOccurrence = true
	assertRanges(t, "single", predictAcrossCycles(request), dayRange("2025-01-17", "2025-01-19"))
}

func TestPredictAcrossCyclesDefersToPredictForWrappedQuery(t *testing.T) {
	t.Parallel()

	anchor := mustDay("2025-01-01")
	request := PredictRequest{
		Anchor:      anchor,
		From:        anchor.AddDays(20),
		To:          anchor.AddDays(40),
		CycleLength: 28,
		WindowStart: 12,
		WindowEnd:   14,
	}
	assertRanges(t, "wrapped", predictAcrossCycles(request), Predict(request)...)
}

func TestDelayedPeriodInsideAnchorCycleIsDropped(t *testing.T) {
	t.Parallel()

	anchor := mustDay("2025-01-05")
	raw := predictAcrossCycles(PredictRequest{
		IsPeriod:    true,
		Anchor:      anchor,
		From:        anchor,
		To:          anchor.AddDays(60),
		CycleLength: 28,
		WindowStart: 0,
		WindowEnd:   4,
		DelayDays:   3,
	})
	assertRanges(t, "raw", raw,
		NewDateRange(anchor.AddDays(3), anchor.AddDays(7)),
		NewDateRange(anchor.AddDays(31), anchor.AddDays(35)),
		NewDateRange(anchor.AddDays(59), anchor.AddDays(63)),
	)

	assertRanges(t, "kept", dropBefore(raw, anchor.AddDays(28)),
		NewDateRange(anchor.AddDays(31), anchor.AddDays(35)),
		NewDateRange(anchor.AddDays(59), anchor.AddDays(63)),
	)
	if got := dropBefore([]DateRange{NewDateRange(anchor.AddDays(3), anchor.AddDays(7))}, anchor.AddDays(28)); got != nil {
		t.Fatalf("expected nil when every range is dropped, got %v", got)
	}
}
