package prediction

import "github.com/terraincognita07/cyclecast/internal/dates"

// DateRange is inclusive on both ends.
type DateRange struct {
	Start dates.Day `json:"start"`
	End   dates.Day `json:"end"`
}

func NewDateRange(start dates.Day, end dates.Day) DateRange {
	return DateRange{Start: start, End: end}
}

func (r DateRange) Contains(day dates.Day) bool {
	return day >= r.Start && day <= r.End
}

func (r DateRange) Overlaps(start dates.Day, end dates.Day) bool {
	return r.Start <= end && r.End >= start
}

func anyContains(ranges []DateRange, day dates.Day) bool {
	for _, r := range ranges {
		if r.Contains(day) {
			return true
		}
	}
	return false
}
