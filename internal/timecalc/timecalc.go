package timecalc

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ComputeHours converts a "HH:MM" start/end pair into worked hours, rounded
// to two decimals. An end at or before the start is taken to fall on the
// following day (overnight shift), so the result is always non-negative;
// an equal pair yields 24 hours. Malformed clock strings parse as 00:00 —
// input validation belongs to the caller.
func ComputeHours(start, end string) float64 {
	s := clockMinutes(start)
	e := clockMinutes(end)
	if e <= s {
		e += 24 * 60
	}
	return Round2(float64(e-s) / 60)
}

// Round2 rounds to two decimals, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// clockMinutes parses "HH:MM" into minutes since midnight. Anything that
// does not parse counts as zero.
func clockMinutes(clock string) int {
	h, m, ok := strings.Cut(clock, ":")
	if !ok {
		return 0
	}
	hours, err := strconv.Atoi(h)
	if err != nil {
		return 0
	}
	minutes, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return hours*60 + minutes
}

// FormatHours renders an hour count with a decimal comma and no trailing
// zeros, e.g. 8 -> "8", 2.5 -> "2,5".
func FormatHours(hours float64) string {
	return strings.ReplaceAll(strconv.FormatFloat(hours, 'f', -1, 64), ".", ",")
}

// FormatCurrency renders a monetary value as "R$ 1234,56".
func FormatCurrency(v float64) string {
	return "R$ " + strings.ReplaceAll(strconv.FormatFloat(v, 'f', 2, 64), ".", ",")
}

// FormatDateBR converts an ISO "YYYY-MM-DD" date to "DD/MM/YYYY".
// Unparseable dates are returned unchanged.
func FormatDateBR(isoDate string) string {
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return isoDate
	}
	return t.Format("02/01/2006")
}

// FormatDuration renders an hour count for terminal output, e.g. "8h00"
// or "0h30".
func FormatDuration(hours float64) string {
	totalMinutes := int(math.Round(hours * 60))
	return fmt.Sprintf("%dh%02d", totalMinutes/60, totalMinutes%60)
}
