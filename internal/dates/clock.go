package dates

import "time"

// Clock supplies "today" to code that must not read the wall clock directly.
type Clock interface {
	Today() Day
}

type SystemClock struct {
	Location *time.Location
}

func (clock SystemClock) Today() Day {
	location := clock.Location
	if location == nil {
		location = time.UTC
	}
	return FromTime(time.Now().In(location))
}

type FixedClock Day

func (clock FixedClock) Today() Day {
	return Day(clock)
}
