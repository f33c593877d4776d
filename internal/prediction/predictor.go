package prediction

import "github.com/terraincognita07/cyclecast/internal/dates"

// maxTrustedDelayDays is the largest delay for which shifted windows are still
// reported.
const maxTrustedDelayDays = 7

// PredictRequest describes one repeating window to project into a query range.
type PredictRequest struct {
	IsPeriod    bool
	Anchor      dates.Day
	From        dates.Day
	To          dates.Day
	CycleLength int
	WindowStart int
	WindowEnd   int
	DelayDays   int
	// SingleOccurrence keeps only the first accepted window. Ovulation and
	// fertile windows appear once per governing period.
	SingleOccurrence bool
}

// Predict returns the occurrences of the request window for the cycles from
// the one holding From through the one holding To. The window must overlap
// the in-cycle remainder span of the query; when that span wraps, it restarts
// at the cycle start. A reversed query yields nothing.
func Predict(request PredictRequest) []DateRange {
	cycleLength := max(request.CycleLength, 1)
	if request.DelayDays > maxTrustedDelayDays || request.To < request.From {
		return nil
	}

	gapStart := dates.Gap(request.Anchor, request.From)
	gapEnd := dates.Gap(request.Anchor, request.To)
	quotientStart, remainderStart := gapStart/cycleLength, gapStart%cycleLength
	quotientEnd, remainderEnd := gapEnd/cycleLength, gapEnd%cycleLength

	if remainderEnd < remainderStart {
		remainderStart = 0
	}

	effectiveStart := request.WindowStart + request.DelayDays
	effectiveEnd := request.WindowEnd + request.DelayDays
	if !windowsOverlap(effectiveStart, effectiveEnd, remainderStart, remainderEnd) {
		return nil
	}

	ranges := make([]DateRange, 0, quotientEnd-quotientStart+1)
	for index := quotientStart; index <= quotientEnd; index++ {
		cycleStart := request.Anchor.AddDays(cycleLength * index)
		candidateStart := cycleStart.AddDays(effectiveStart)
		candidateEnd := cycleStart.AddDays(effectiveEnd)

		if candidateEnd < request.Anchor {
			return nil
		}
		if candidateStart < request.Anchor {
			candidateStart = request.Anchor
		} else if request.IsPeriod && candidateStart == request.Anchor {
			continue
		}

		ranges = append(ranges, NewDateRange(candidateStart, candidateEnd))
		if request.SingleOccurrence {
			break
		}
	}
	return ranges
}

func windowsOverlap(windowStart int, windowEnd int, spanStart int, spanEnd int) bool {
	startInside := windowStart >= spanStart && windowStart <= spanEnd
	endInside := windowEnd >= spanStart && windowEnd <= spanEnd
	spanInside := spanStart >= windowStart && spanEnd <= windowEnd
	return startInside || endInside || spanInside
}
