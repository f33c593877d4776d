package prediction

import (
	"sort"

	"github.com/terraincognita07/cyclecast/internal/dates"
)

// minPillLeadDays is how far ahead of a period a package must start to count.
const minPillLeadDays = 5

// withdrawalBleedOffset is the number of days after the last active pill on
// which bleeding is expected.
const withdrawalBleedOffset = 2

// PillActiveBetween reports whether a package started in
// [cycleStart, nextCycleStart) early enough to shape that cycle.
func PillActiveBetween(cycleStart dates.Day, nextCycleStart dates.Day, packages []PillPackage) bool {
	for _, pkg := range packages {
		if pkg.Start < cycleStart || pkg.Start >= nextCycleStart {
			continue
		}
		if dates.Gap(pkg.Start, nextCycleStart) >= minPillLeadDays {
			return true
		}
	}
	return false
}

// PillBasedPredictDate returns the withdrawal-bleed date implied by packages
// started on or after cycleStart, or nil when the normal prediction applies.
func PillBasedPredictDate(cycleStart dates.Day, normalPredicted dates.Day, packages []PillPackage, settings PillSettings) *dates.Day {
	if !settings.UseForCalculation {
		return nil
	}

	qualifying := make([]PillPackage, 0, len(packages))
	for _, pkg := range packages {
		if pkg.Start >= cycleStart {
			qualifying = append(qualifying, pkg)
		}
	}
	if len(qualifying) == 0 {
		return nil
	}
	sort.Slice(qualifying, func(i, j int) bool {
		return qualifying[i].Start < qualifying[j].Start
	})

	if dates.Gap(qualifying[0].Start, normalPredicted) < minPillLeadDays {
		return nil
	}
	last := qualifying[len(qualifying)-1]
	predicted := last.Start.AddDays(activePillCount(last, settings) + withdrawalBleedOffset)
	return &predicted
}

// PillActiveOnDate reports whether day falls on an active pill of any package.
func PillActiveOnDate(day dates.Day, packages []PillPackage, settings PillSettings) bool {
	if !settings.UseForCalculation {
		return false
	}
	for _, pkg := range packages {
		lastActive := pkg.Start.AddDays(activePillCount(pkg, settings) - 1)
		if day >= pkg.Start && day <= lastActive {
			return true
		}
	}
	return false
}

// RemainingRestDays counts the rest days left, including day, when day falls
// in a package's pill-free interval.
func RemainingRestDays(day dates.Day, packages []PillPackage, settings PillSettings) *int {
	if !settings.UseForCalculation {
		return nil
	}
	for _, pkg := range packages {
		restDays := pkg.RestDays
		if restDays <= 0 {
			restDays = settings.RestDays
		}
		if restDays <= 0 {
			continue
		}
		restStart := pkg.Start.AddDays(activePillCount(pkg, settings))
		restEnd := restStart.AddDays(restDays - 1)
		if day >= restStart && day <= restEnd {
			remaining := dates.Gap(day, restEnd) + 1
			return &remaining
		}
	}
	return nil
}

func activePillCount(pkg PillPackage, settings PillSettings) int {
	if pkg.ActivePillCount > 0 {
		return pkg.ActivePillCount
	}
	return settings.ActivePillCount
}
