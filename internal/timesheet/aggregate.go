package timesheet

import (
	"sort"

	"github.com/Andersonspita/tempo-pago-dash/internal/model"
	"github.com/Andersonspita/tempo-pago-dash/internal/timecalc"
)

// DailySummaries groups entries by date and returns one summary per
// distinct date, most recent first. A day counts as paid only when every
// one of its entries is paid. Pure function of the snapshot.
func DailySummaries(entries []model.TimeEntry) []model.DailySummary {
	byDate := make(map[string]*model.DailySummary)
	for _, e := range entries {
		hours := timecalc.ComputeHours(e.StartTime, e.EndTime)
		earnings := hours * e.HourlyRate

		if s, ok := byDate[e.Date]; ok {
			s.TotalHours += hours
			s.TotalEarnings += earnings
			s.EntriesCount++
			s.IsPaid = s.IsPaid && e.IsPaid
		} else {
			byDate[e.Date] = &model.DailySummary{
				Date:          e.Date,
				TotalHours:    hours,
				TotalEarnings: earnings,
				EntriesCount:  1,
				IsPaid:        e.IsPaid,
			}
		}
	}

	summaries := make([]model.DailySummary, 0, len(byDate))
	for _, s := range byDate {
		summaries = append(summaries, *s)
	}
	// ISO dates compare lexicographically in chronological order.
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Date > summaries[j].Date
	})
	return summaries
}

// Stats computes the global aggregates in one pass. Rounding happens once
// on the accumulated sums, never per entry, so paid and unpaid parts add
// up to the totals within a cent. Pure function of the snapshot.
func Stats(entries []model.TimeEntry) model.TimesheetStats {
	var totalHours, totalEarnings float64
	var paidHours, unpaidHours float64
	var paidEarnings, unpaidEarnings float64
	dates := make(map[string]struct{})

	for _, e := range entries {
		hours := timecalc.ComputeHours(e.StartTime, e.EndTime)
		earnings := hours * e.HourlyRate

		totalHours += hours
		totalEarnings += earnings
		if e.IsPaid {
			paidHours += hours
			paidEarnings += earnings
		} else {
			unpaidHours += hours
			unpaidEarnings += earnings
		}
		dates[e.Date] = struct{}{}
	}

	daysWorked := len(dates)
	averageHoursPerDay := 0.0
	if daysWorked > 0 {
		averageHoursPerDay = totalHours / float64(daysWorked)
	}

	return model.TimesheetStats{
		TotalHours:         timecalc.Round2(totalHours),
		TotalEarnings:      timecalc.Round2(totalEarnings),
		PaidHours:          timecalc.Round2(paidHours),
		UnpaidHours:        timecalc.Round2(unpaidHours),
		PaidEarnings:       timecalc.Round2(paidEarnings),
		UnpaidEarnings:     timecalc.Round2(unpaidEarnings),
		AverageHoursPerDay: timecalc.Round2(averageHoursPerDay),
		DaysWorked:         daysWorked,
	}
}
