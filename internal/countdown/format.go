package countdown

import (
	"fmt"
	"strings"
)

type unit int

const (
	unitHour unit = iota
	unitMinute
	unitSecond
)

// parseFormat extracts the recognized tokens ("hh", "mm", "ss") from a
// colon-separated format string. Unrecognized tokens are dropped;
// components always render in hour→minute→second order regardless of
// the order they were requested in.
func parseFormat(format string) []unit {
	var seen [3]bool
	for _, tok := range strings.Split(format, ":") {
		switch tok {
		case "hh":
			seen[unitHour] = true
		case "mm":
			seen[unitMinute] = true
		case "ss":
			seen[unitSecond] = true
		}
	}
	units := make([]unit, 0, 3)
	for u := unitHour; u <= unitSecond; u++ {
		if seen[u] {
			units = append(units, u)
		}
	}
	return units
}

// formatClock renders a non-negative seconds value using the given
// units, each zero-padded to two digits and joined with ":". Hour
// values past 99 keep their full width. An empty unit set yields an
// empty string.
func formatClock(seconds int, units []unit) string {
	parts := make([]string, 0, len(units))
	for _, u := range units {
		var v int
		switch u {
		case unitHour:
			v = seconds / 3600
		case unitMinute:
			v = seconds % 3600 / 60
		case unitSecond:
			v = seconds % 60
		}
		parts = append(parts, fmt.Sprintf("%02d", v))
	}
	return strings.Join(parts, ":")
}
