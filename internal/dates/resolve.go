package dates

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidDate          = errors.New("invalid date")
	ErrUnsupportedDateValue = errors.New("unsupported date value")
)

// Resolve converts the loosely typed date values accepted at the API and CLI
// edges into a Day. Numbers are Julian day numbers.
func Resolve(value any) (Day, error) {
	switch typed := value.(type) {
	case Day:
		return typed, nil
	case int:
		return Day(typed), nil
	case int64:
		return Day(typed), nil
	case float64:
		if math.IsNaN(typed) || math.IsInf(typed, 0) {
			return 0, fmt.Errorf("%w: %v", ErrInvalidDate, typed)
		}
		return Day(math.Floor(typed)), nil
	case time.Time:
		if typed.IsZero() {
			return 0, fmt.Errorf("%w: zero time", ErrInvalidDate)
		}
		return FromTime(typed), nil
	case *time.Time:
		if typed == nil {
			return 0, fmt.Errorf("%w: nil time", ErrInvalidDate)
		}
		return Resolve(*typed)
	case string:
		return resolveString(typed)
	default:
		return 0, fmt.Errorf("%w: %T", ErrUnsupportedDateValue, value)
	}
}

func resolveString(raw string) (Day, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidDate)
	}
	if julian, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return Day(julian), nil
	}
	if day, err := Parse(trimmed); err == nil {
		return day, nil
	}
	if parsed, err := time.Parse(time.RFC3339, trimmed); err == nil {
		return FromTime(parsed), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
}
