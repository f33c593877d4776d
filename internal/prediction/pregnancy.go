package prediction

// FilterByPregnancy removes or truncates ranges that reach into an active
// pregnancy. With a due date the pregnancy spans start through due date, so
// ranges starting after the due date are kept. Without one, everything from
// the start on is dropped.
func FilterByPregnancy(ranges []DateRange, pregnancy *PregnancyInfo) []DateRange {
	if !pregnancy.IsActive() || len(ranges) == 0 {
		return ranges
	}

	filtered := make([]DateRange, 0, len(ranges))
	for _, r := range ranges {
		switch {
		case r.End < pregnancy.Start:
			filtered = append(filtered, r)
		case r.Start < pregnancy.Start:
			truncated := NewDateRange(r.Start, pregnancy.Start.AddDays(-1))
			if truncated.End >= truncated.Start {
				filtered = append(filtered, truncated)
			}
		case pregnancy.covers(r.Start):
			continue
		default:
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func filterRangeByPregnancy(r *DateRange, pregnancy *PregnancyInfo) *DateRange {
	if r == nil {
		return nil
	}
	filtered := FilterByPregnancy([]DateRange{*r}, pregnancy)
	if len(filtered) == 0 {
		return nil
	}
	return &filtered[0]
}
