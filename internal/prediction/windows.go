package prediction

const (
	standardCycleMin = 26
	standardCycleMax = 32
)

// FertileWindowOffsets returns zero-based offsets from the period start.
// Cycles of 26-32 days share a fixed window; others shift linearly.
func FertileWindowOffsets(cycleLength int) (int, int) {
	if isStandardCycle(cycleLength) {
		return 7, 18
	}
	return clampOffset(cycleLength - 19), clampOffset(cycleLength - 11)
}

func OvulationWindowOffsets(cycleLength int) (int, int) {
	if isStandardCycle(cycleLength) {
		return 12, 14
	}
	return clampOffset(cycleLength - 16), clampOffset(cycleLength - 14)
}

func isStandardCycle(cycleLength int) bool {
	return cycleLength >= standardCycleMin && cycleLength <= standardCycleMax
}

func clampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
