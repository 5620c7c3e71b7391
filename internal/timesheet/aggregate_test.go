package timesheet_test

import (
	"math"
	"reflect"
	"sort"
	"testing"

	"github.com/Andersonspita/tempo-pago-dash/internal/model"
	"github.com/Andersonspita/tempo-pago-dash/internal/timesheet"
)

func entry(id, date, start, end string, rate float64, paid bool) model.TimeEntry {
	return model.TimeEntry{
		ID: id, Date: date, StartTime: start, EndTime: end,
		Description: "work", HourlyRate: rate, IsPaid: paid,
	}
}

func TestStatsEmptyCollection(t *testing.T) {
	stats := timesheet.Stats(nil)

	want := model.TimesheetStats{}
	if stats != want {
		t.Errorf("Stats(nil) = %+v, want all zeroes", stats)
	}
}

func TestStats(t *testing.T) {
	entries := []model.TimeEntry{
		entry("e1", "2024-01-01", "09:00", "17:00", 50, true),  // 8h, 400
		entry("e2", "2024-01-01", "18:00", "20:00", 50, false), // 2h, 100
		entry("e3", "2024-01-02", "22:00", "02:00", 60, false), // 4h overnight, 240
	}

	stats := timesheet.Stats(entries)

	if stats.TotalHours != 14 {
		t.Errorf("TotalHours = %v, want 14", stats.TotalHours)
	}
	if stats.TotalEarnings != 740 {
		t.Errorf("TotalEarnings = %v, want 740", stats.TotalEarnings)
	}
	if stats.PaidHours != 8 || stats.PaidEarnings != 400 {
		t.Errorf("paid = %v h / %v, want 8 / 400", stats.PaidHours, stats.PaidEarnings)
	}
	if stats.UnpaidHours != 6 || stats.UnpaidEarnings != 340 {
		t.Errorf("unpaid = %v h / %v, want 6 / 340", stats.UnpaidHours, stats.UnpaidEarnings)
	}
	if stats.DaysWorked != 2 {
		t.Errorf("DaysWorked = %d, want 2", stats.DaysWorked)
	}
	if stats.AverageHoursPerDay != 7 {
		t.Errorf("AverageHoursPerDay = %v, want 7", stats.AverageHoursPerDay)
	}
}

func TestStatsSumInvariant(t *testing.T) {
	// Awkward durations whose per-entry rounding would otherwise drift.
	entries := []model.TimeEntry{
		entry("e1", "2024-01-01", "09:10", "17:05", 33.33, true),
		entry("e2", "2024-01-02", "08:05", "11:50", 41.75, false),
		entry("e3", "2024-01-03", "23:10", "01:25", 27.5, true),
		entry("e4", "2024-01-03", "13:00", "13:20", 99.99, false),
	}

	stats := timesheet.Stats(entries)

	if diff := math.Abs(stats.TotalHours - (stats.PaidHours + stats.UnpaidHours)); diff > 0.01 {
		t.Errorf("hours invariant off by %v", diff)
	}
	if diff := math.Abs(stats.TotalEarnings - (stats.PaidEarnings + stats.UnpaidEarnings)); diff > 0.01 {
		t.Errorf("earnings invariant off by %v", diff)
	}
}

func TestStatsIdempotent(t *testing.T) {
	entries := []model.TimeEntry{
		entry("e1", "2024-01-01", "09:00", "17:00", 50, true),
		entry("e2", "2024-01-02", "10:00", "12:30", 75, false),
	}

	first := timesheet.Stats(entries)
	second := timesheet.Stats(entries)
	if first != second {
		t.Errorf("Stats is not idempotent: %+v vs %+v", first, second)
	}

	s1 := timesheet.DailySummaries(entries)
	s2 := timesheet.DailySummaries(entries)
	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("DailySummaries is not idempotent: %+v vs %+v", s1, s2)
	}
}

func TestDailySummariesPaidIsANDAcrossDay(t *testing.T) {
	entries := []model.TimeEntry{
		entry("e1", "2024-01-01", "09:00", "17:00", 50, true),  // 8h paid
		entry("e2", "2024-01-01", "18:00", "20:00", 50, false), // 2h unpaid
	}

	summaries := timesheet.DailySummaries(entries)
	if len(summaries) != 1 {
		t.Fatalf("summaries = %d, want 1", len(summaries))
	}

	s := summaries[0]
	if s.Date != "2024-01-01" {
		t.Errorf("date = %q", s.Date)
	}
	if s.TotalHours != 10 {
		t.Errorf("TotalHours = %v, want 10", s.TotalHours)
	}
	if s.TotalEarnings != 500 {
		t.Errorf("TotalEarnings = %v, want 500", s.TotalEarnings)
	}
	if s.EntriesCount != 2 {
		t.Errorf("EntriesCount = %d, want 2", s.EntriesCount)
	}
	if s.IsPaid {
		t.Error("day with an unpaid entry reported as paid")
	}
}

func TestDailySummariesAllPaidDay(t *testing.T) {
	entries := []model.TimeEntry{
		entry("e1", "2024-01-01", "09:00", "12:00", 50, true),
		entry("e2", "2024-01-01", "13:00", "17:00", 50, true),
	}

	summaries := timesheet.DailySummaries(entries)
	if len(summaries) != 1 || !summaries[0].IsPaid {
		t.Errorf("all-paid day not reported as paid: %+v", summaries)
	}
}

func TestDailySummariesOrderedDescending(t *testing.T) {
	entries := []model.TimeEntry{
		entry("e1", "2024-01-02", "09:00", "10:00", 50, false),
		entry("e2", "2023-12-31", "09:00", "10:00", 50, false),
		entry("e3", "2024-02-15", "09:00", "10:00", 50, false),
	}

	summaries := timesheet.DailySummaries(entries)
	want := []string{"2024-02-15", "2024-01-02", "2023-12-31"}
	for i, s := range summaries {
		if s.Date != want[i] {
			t.Errorf("summaries[%d].Date = %q, want %q", i, s.Date, want[i])
		}
	}
}

func TestDailySummariesCoverEveryDateAndEntry(t *testing.T) {
	entries := []model.TimeEntry{
		entry("e1", "2024-01-01", "09:00", "10:00", 50, false),
		entry("e2", "2024-01-01", "11:00", "12:00", 50, false),
		entry("e3", "2024-01-05", "09:00", "10:00", 50, false),
		entry("e4", "2024-02-01", "09:00", "10:00", 50, false),
	}

	summaries := timesheet.DailySummaries(entries)

	var dates []string
	total := 0
	for _, s := range summaries {
		dates = append(dates, s.Date)
		total += s.EntriesCount
	}
	sort.Strings(dates)

	if !reflect.DeepEqual(dates, []string{"2024-01-01", "2024-01-05", "2024-02-01"}) {
		t.Errorf("summary dates = %v", dates)
	}
	if total != len(entries) {
		t.Errorf("sum of EntriesCount = %d, want %d", total, len(entries))
	}
}
