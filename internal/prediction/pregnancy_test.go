package prediction

import (
	"reflect"
	"testing"
)

func activePregnancy(start string) *PregnancyInfo {
	return &PregnancyInfo{Start: mustDay(start)}
}

func TestFilterByPregnancyTruncatesOverlap(t *testing.T) {
	t.Parallel()

	got := FilterByPregnancy([]DateRange{dayRange("2025-01-10", "2025-01-20")}, activePregnancy("2025-01-15"))
	assertRanges(t, "filtered", got, dayRange("2025-01-10", "2025-01-14"))
}

func TestFilterByPregnancyDropsRangesAfterStart(t *testing.T) {
	t.Parallel()

	got := FilterByPregnancy([]DateRange{
		dayRange("2025-01-01", "2025-01-05"),
		dayRange("2025-01-15", "2025-01-17"),
		dayRange("2025-03-01", "2025-03-05"),
	}, activePregnancy("2025-01-15"))
	assertRanges(t, "filtered", got, dayRange("2025-01-01", "2025-01-05"))
}

func TestFilterByPregnancyKeepsRangesAfterDueDate(t *testing.T) {
	t.Parallel()

	due := mustDay("2025-10-15")
	pregnancy := &PregnancyInfo{Start: mustDay("2025-01-15"), DueDate: &due}
	got := FilterByPregnancy([]DateRange{
		dayRange("2025-02-01", "2025-02-05"),
		dayRange("2025-11-01", "2025-11-05"),
	}, pregnancy)
	assertRanges(t, "filtered", got, dayRange("2025-11-01", "2025-11-05"))
}

func TestFilterByPregnancyInactiveIsUnchanged(t *testing.T) {
	t.Parallel()

	ranges := []DateRange{dayRange("2025-01-10", "2025-01-20")}
	for _, pregnancy := range []*PregnancyInfo{
		nil,
		{Start: mustDay("2025-01-15"), IsEnded: true},
		{Start: mustDay("2025-01-15"), IsMiscarriage: true},
		{Start: mustDay("2025-01-15"), IsDeleted: true},
	} {
		if got := FilterByPregnancy(ranges, pregnancy); !reflect.DeepEqual(got, ranges) {
			t.Fatalf("expected unchanged ranges, got %v", got)
		}
	}
}

func TestFilterByPregnancyIsIdempotent(t *testing.T) {
	t.Parallel()

	due := mustDay("2025-10-15")
	pregnancies := []*PregnancyInfo{
		activePregnancy("2025-01-15"),
		{Start: mustDay("2025-01-15"), DueDate: &due},
	}
	ranges := []DateRange{
		dayRange("2025-01-01", "2025-01-05"),
		dayRange("2025-01-10", "2025-01-20"),
		dayRange("2025-01-15", "2025-01-15"),
		dayRange("2025-02-10", "2025-02-14"),
		dayRange("2025-12-01", "2025-12-05"),
	}

	for _, pregnancy := range pregnancies {
		once := FilterByPregnancy(ranges, pregnancy)
		twice := FilterByPregnancy(once, pregnancy)
		if !reflect.DeepEqual(once, twice) {
			t.Fatalf("expected idempotent filter, got %v then %v", once, twice)
		}
	}
}
