package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Andersonspita/tempo-pago-dash/internal/model"
	"github.com/Andersonspita/tempo-pago-dash/internal/timecalc"
)

var (
	listDate    string
	listMonth   string
	listPending bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded entries",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listDate, "date", "", "Only entries on this date (YYYY-MM-DD)")
	listCmd.Flags().StringVar(&listMonth, "month", "", "Only entries in this month (YYYY-MM)")
	listCmd.Flags().BoolVar(&listPending, "pending", false, "Only unpaid entries")
}

func runList(cmd *cobra.Command, args []string) error {
	store, closeStore := openStore()
	defer closeStore()

	var filtered []model.TimeEntry
	for _, e := range store.Entries() {
		if listDate != "" && e.Date != listDate {
			continue
		}
		if listMonth != "" && !strings.HasPrefix(e.Date, listMonth+"-") {
			continue
		}
		if listPending && e.IsPaid {
			continue
		}
		filtered = append(filtered, e)
	}

	printEntries(filtered)
	return nil
}

// printEntries groups entries by date, most recent day first, and prints
// them with the short IDs accepted by edit/rm/paid.
func printEntries(entries []model.TimeEntry) {
	if len(entries) == 0 {
		fmt.Println("No entries found.")
		return
	}

	sorted := append([]model.TimeEntry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})

	var currentDay string
	for _, e := range sorted {
		if e.Date != currentDay {
			fmt.Println(e.Date)
			currentDay = e.Date
		}

		hours := timecalc.ComputeHours(e.StartTime, e.EndTime)
		status := "pending"
		if e.IsPaid {
			status = "paid"
		}
		fmt.Printf("  %s  %s–%s  %-6s %-10s %-8s %s\n",
			shortID(e.ID), e.StartTime, e.EndTime,
			timecalc.FormatDuration(hours),
			timecalc.FormatCurrency(hours*e.HourlyRate),
			status, e.Description)
	}
}
