package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Andersonspita/tempo-pago-dash/internal/timecalc"
	"github.com/Andersonspita/tempo-pago-dash/internal/timesheet"
)

var (
	addDate  string
	addStart string
	addEnd   string
	addDesc  string
	addRate  float64
	addPaid  bool
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a work session",
	Args:  cobra.NoArgs,
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addDate, "date", "", "Entry date (YYYY-MM-DD, default today)")
	addCmd.Flags().StringVar(&addStart, "start", "", "Start time (HH:MM)")
	addCmd.Flags().StringVar(&addEnd, "end", "", "End time (HH:MM); at or before start means overnight")
	addCmd.Flags().StringVar(&addDesc, "desc", "", "Description of the work performed")
	addCmd.Flags().Float64Var(&addRate, "rate", 0, "Hourly rate (default: configured rate)")
	addCmd.Flags().BoolVar(&addPaid, "paid", false, "Mark the entry as already paid")
	_ = addCmd.MarkFlagRequired("start")
	_ = addCmd.MarkFlagRequired("end")
	_ = addCmd.MarkFlagRequired("desc")
}

func runAdd(cmd *cobra.Command, args []string) error {
	if err := validateEntryInput(addStart, addEnd, addDesc, addRate); err != nil {
		return err
	}

	date := addDate
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}

	store, closeStore := openStore()
	defer closeStore()

	entry, err := store.Add(timesheet.EntryDraft{
		Date:        date,
		StartTime:   addStart,
		EndTime:     addEnd,
		Description: addDesc,
		IsPaid:      addPaid,
		HourlyRate:  addRate,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	hours := timecalc.ComputeHours(entry.StartTime, entry.EndTime)
	fmt.Printf("Added %s: %s %s–%s, %s at %s (%s)\n",
		shortID(entry.ID), entry.Date, entry.StartTime, entry.EndTime,
		timecalc.FormatDuration(hours),
		timecalc.FormatCurrency(entry.HourlyRate),
		timecalc.FormatCurrency(hours*entry.HourlyRate))
	return nil
}

// validateEntryInput enforces the boundary checks the store itself does
// not: clock syntax, a non-empty description and a non-negative rate.
func validateEntryInput(start, end, desc string, rate float64) error {
	for _, clock := range []string{start, end} {
		if clock == "" {
			continue
		}
		if _, err := time.Parse("15:04", clock); err != nil {
			return fmt.Errorf("invalid time %q, expected HH:MM", clock)
		}
	}
	if desc == "" {
		return fmt.Errorf("description must not be empty")
	}
	if rate < 0 {
		return fmt.Errorf("hourly rate must not be negative")
	}
	return nil
}
