package timecalc_test

import (
	"testing"

	"github.com/Andersonspita/tempo-pago-dash/internal/timecalc"
)

func TestComputeHours(t *testing.T) {
	tests := []struct {
		start string
		end   string
		want  float64
	}{
		{"09:00", "17:00", 8},
		{"09:00", "17:30", 8.5},
		{"08:15", "08:30", 0.25},
		{"00:00", "23:59", 23.98},
		{"09:10", "17:05", 7.92},
		// Overnight wraparound: end at or before start falls on the next day.
		{"22:00", "02:00", 4},
		{"23:00", "01:00", 2},
		{"23:30", "00:15", 0.75},
		{"17:00", "09:00", 16},
		// Equal pair is the degenerate 24h case, not an error.
		{"09:00", "09:00", 24},
	}
	for _, tt := range tests {
		got := timecalc.ComputeHours(tt.start, tt.end)
		if got != tt.want {
			t.Errorf("ComputeHours(%q, %q) = %v, want %v", tt.start, tt.end, got, tt.want)
		}
	}
}

func TestComputeHoursMalformedInput(t *testing.T) {
	// Malformed clocks parse as midnight; the function never fails.
	if got := timecalc.ComputeHours("nonsense", "04:00"); got != 4 {
		t.Errorf("ComputeHours(malformed, 04:00) = %v, want 4", got)
	}
	if got := timecalc.ComputeHours("nonsense", "more nonsense"); got != 24 {
		t.Errorf("ComputeHours(malformed, malformed) = %v, want 24", got)
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{1.004, 1},
		{1.006, 1.01},
		// Exact halves round away from zero.
		{0.125, 0.13},
		{-0.125, -0.13},
		{499.999, 500},
	}
	for _, tt := range tests {
		if got := timecalc.Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatHours(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{8, "8"},
		{2.5, "2,5"},
		{7.92, "7,92"},
		{0, "0"},
	}
	for _, tt := range tests {
		if got := timecalc.FormatHours(tt.in); got != tt.want {
			t.Errorf("FormatHours(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "R$ 0,00"},
		{50, "R$ 50,00"},
		{1234.5, "R$ 1234,50"},
		{19.99, "R$ 19,99"},
	}
	for _, tt := range tests {
		if got := timecalc.FormatCurrency(tt.in); got != tt.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDateBR(t *testing.T) {
	if got := timecalc.FormatDateBR("2024-01-31"); got != "31/01/2024" {
		t.Errorf("FormatDateBR = %q, want %q", got, "31/01/2024")
	}
	// Unparseable dates pass through unchanged.
	if got := timecalc.FormatDateBR("not a date"); got != "not a date" {
		t.Errorf("FormatDateBR passthrough = %q", got)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0h00"},
		{0.5, "0h30"},
		{8, "8h00"},
		{7.92, "7h55"},
		{24, "24h00"},
	}
	for _, tt := range tests {
		if got := timecalc.FormatDuration(tt.in); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
