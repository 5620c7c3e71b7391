package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Andersonspita/tempo-pago-dash/internal/timecalc"
	"github.com/Andersonspita/tempo-pago-dash/internal/timesheet"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show global totals and payment aggregates",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Print stats as JSON")
}

func runStats(cmd *cobra.Command, args []string) error {
	store, closeStore := openStore()
	defer closeStore()

	stats := timesheet.Stats(store.Entries())

	if statsJSON {
		data, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, "error encoding JSON:", err)
			os.Exit(2)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Println("Timesheet")
	fmt.Println("--------------------------------")
	fmt.Printf("%-18s%s (%s)\n", "Total", timecalc.FormatDuration(stats.TotalHours), timecalc.FormatCurrency(stats.TotalEarnings))
	fmt.Printf("%-18s%s (%s)\n", "Paid", timecalc.FormatDuration(stats.PaidHours), timecalc.FormatCurrency(stats.PaidEarnings))
	fmt.Printf("%-18s%s (%s)\n", "Pending", timecalc.FormatDuration(stats.UnpaidHours), timecalc.FormatCurrency(stats.UnpaidEarnings))
	fmt.Println("--------------------------------")
	fmt.Printf("%-18s%d\n", "Days worked", stats.DaysWorked)
	fmt.Printf("%-18s%s\n", "Average per day", timecalc.FormatDuration(stats.AverageHoursPerDay))
	return nil
}
