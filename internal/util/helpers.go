package util

import (
	"fmt"
	"strconv"
	"strings"
)

// Clamp constrains a value to a range.
func Clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// ParseClock converts a clock-style string into whole seconds. Accepted
// forms are bare seconds ("90"), "mm:ss", and "hh:mm:ss". Fields may
// exceed their usual range ("90:00" is ninety minutes).
func ParseClock(s string) (int, error) {
	fields := strings.Split(strings.TrimSpace(s), ":")
	if len(fields) > 3 {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	total := 0
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
		total = total*60 + n
	}
	if total == 0 {
		return 0, fmt.Errorf("duration must be positive")
	}
	return total, nil
}
