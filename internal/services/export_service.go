package services

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/terraincognita07/cyclecast/internal/dates"
)

const (
	ExportKindPeriod        = "period"
	ExportKindOvulationTest = "ovulation_test"
	ExportKindOvulationDay  = "ovulation_day"
	ExportKindPillPackage   = "pill_package"
)

var ExportCSVHeaders = []string{"Kind", "Start", "End", "Detail"}

// ExportEntry is one stored record flattened for download.
type ExportEntry struct {
	Kind   string    `json:"kind"`
	Start  dates.Day `json:"start"`
	End    dates.Day `json:"end"`
	Detail string    `json:"detail,omitempty"`
}

type ExportSummary struct {
	TotalEntries int    `json:"total_entries"`
	HasData      bool   `json:"has_data"`
	DateFrom     string `json:"date_from,omitempty"`
	DateTo       string `json:"date_to,omitempty"`
}

type ExportService struct {
	stores Stores
}

func NewExportService(stores Stores) *ExportService {
	return &ExportService{stores: stores}
}

// Entries returns every record starting inside the range, ordered by start
// date and then kind.
func (service *ExportService) Entries(ctx context.Context, userID uint, exportRange ExportRange) ([]ExportEntry, error) {
	from, to := exportRange.bounds()
	inRange := func(day dates.Day) bool { return day >= from && day <= to }

	entries := make([]ExportEntry, 0)

	periods, err := service.stores.Periods.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("export periods: %w", err)
	}
	for _, record := range periods {
		if inRange(record.StartDay) {
			entries = append(entries, ExportEntry{Kind: ExportKindPeriod, Start: record.StartDay, End: record.EndDay, Detail: record.ID})
		}
	}

	tests, err := service.stores.OvulationTests.ListRange(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("export ovulation tests: %w", err)
	}
	for _, test := range tests {
		entries = append(entries, ExportEntry{Kind: ExportKindOvulationTest, Start: test.Day, End: test.Day, Detail: test.Outcome})
	}

	userDays, err := service.stores.OvulationDays.ListRange(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("export ovulation days: %w", err)
	}
	for _, day := range userDays {
		entries = append(entries, ExportEntry{Kind: ExportKindOvulationDay, Start: day.Day, End: day.Day})
	}

	packages, err := service.stores.PillPackages.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("export pill packages: %w", err)
	}
	for _, pkg := range packages {
		if !inRange(pkg.StartDay) {
			continue
		}
		entries = append(entries, ExportEntry{
			Kind:   ExportKindPillPackage,
			Start:  pkg.StartDay,
			End:    pkg.StartDay.AddDays(pkg.ActivePillCount + pkg.RestDays - 1),
			Detail: strconv.Itoa(pkg.ActivePillCount) + "+" + strconv.Itoa(pkg.RestDays),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Start != entries[j].Start {
			return entries[i].Start < entries[j].Start
		}
		return entries[i].Kind < entries[j].Kind
	})
	return entries, nil
}

func BuildExportSummary(entries []ExportEntry) ExportSummary {
	if len(entries) == 0 {
		return ExportSummary{}
	}

	first, last := entries[0].Start, entries[0].End
	for _, entry := range entries[1:] {
		first = dates.Min(first, entry.Start)
		last = dates.Max(last, entry.End)
	}
	return ExportSummary{
		TotalEntries: len(entries),
		HasData:      true,
		DateFrom:     first.String(),
		DateTo:       last.String(),
	}
}

func ExportCSVRecord(entry ExportEntry) []string {
	return []string{entry.Kind, entry.Start.String(), entry.End.String(), entry.Detail}
}
