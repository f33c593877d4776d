package dates

import (
	"fmt"
	"time"
)

// unixEpochJulianDay is the Julian day number of 1970-01-01.
const unixEpochJulianDay = 2440588

const layoutISODate = "2006-01-02"

// Day is a calendar date expressed as a Julian day number. Consecutive
// calendar days differ by exactly one.
type Day int

func FromTime(value time.Time) Day {
	year, month, day := value.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Day(floorDiv(midnight.Unix(), 86400) + unixEpochJulianDay)
}

func FromDate(year int, month time.Month, day int) Day {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// Time returns midnight of the day in location (UTC when nil).
func (d Day) Time(location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	utc := time.Unix(int64(d-unixEpochJulianDay)*86400, 0).UTC()
	year, month, day := utc.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

func (d Day) AddDays(n int) Day {
	return d + Day(n)
}

func (d Day) Weekday() time.Weekday {
	return d.Time(time.UTC).Weekday()
}

func (d Day) Before(other Day) bool {
	return d < other
}

func (d Day) After(other Day) bool {
	return d > other
}

func (d Day) String() string {
	return d.Time(time.UTC).Format(layoutISODate)
}

func (d Day) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Day) UnmarshalText(text []byte) error {
	parsed, err := Resolve(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Gap returns the signed number of days from "from" to "to".
func Gap(from Day, to Day) int {
	return int(to - from)
}

func Parse(raw string) (Day, error) {
	parsed, err := time.ParseInLocation(layoutISODate, raw, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	return FromTime(parsed), nil
}

func MustParse(raw string) Day {
	day, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return day
}

func Min(a Day, b Day) Day {
	if a < b {
		return a
	}
	return b
}

func Max(a Day, b Day) Day {
	if a > b {
		return a
	}
	return b
}

func floorDiv(value int64, divisor int64) int64 {
	quotient := value / divisor
	if value%divisor != 0 && (value < 0) != (divisor < 0) {
		quotient--
	}
	return quotient
}
