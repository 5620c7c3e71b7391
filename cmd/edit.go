package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Andersonspita/tempo-pago-dash/internal/timesheet"
)

var (
	editDate  string
	editStart string
	editEnd   string
	editDesc  string
	editRate  float64
	editPaid  bool
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change fields of an entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editDate, "date", "", "New date (YYYY-MM-DD)")
	editCmd.Flags().StringVar(&editStart, "start", "", "New start time (HH:MM)")
	editCmd.Flags().StringVar(&editEnd, "end", "", "New end time (HH:MM)")
	editCmd.Flags().StringVar(&editDesc, "desc", "", "New description")
	editCmd.Flags().Float64Var(&editRate, "rate", 0, "New hourly rate")
	editCmd.Flags().BoolVar(&editPaid, "paid", false, "New payment status")
}

func runEdit(cmd *cobra.Command, args []string) error {
	store, closeStore := openStore()
	defer closeStore()

	id, err := resolveID(store, args[0])
	if err != nil {
		return err
	}

	var patch timesheet.EntryPatch
	if cmd.Flags().Changed("date") {
		if _, err := time.Parse("2006-01-02", editDate); err != nil {
			return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", editDate)
		}
		patch.Date = &editDate
	}
	if cmd.Flags().Changed("start") {
		if _, err := time.Parse("15:04", editStart); err != nil {
			return fmt.Errorf("invalid time %q, expected HH:MM", editStart)
		}
		patch.StartTime = &editStart
	}
	if cmd.Flags().Changed("end") {
		if _, err := time.Parse("15:04", editEnd); err != nil {
			return fmt.Errorf("invalid time %q, expected HH:MM", editEnd)
		}
		patch.EndTime = &editEnd
	}
	if cmd.Flags().Changed("desc") {
		if editDesc == "" {
			return fmt.Errorf("description must not be empty")
		}
		patch.Description = &editDesc
	}
	if cmd.Flags().Changed("rate") {
		if editRate <= 0 {
			return fmt.Errorf("hourly rate must be positive")
		}
		patch.HourlyRate = &editRate
	}
	if cmd.Flags().Changed("paid") {
		patch.IsPaid = &editPaid
	}

	found, err := store.Update(id, patch)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if !found {
		return fmt.Errorf("no entry with id %q", args[0])
	}

	fmt.Printf("Updated %s\n", shortID(id))
	return nil
}
