package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Andersonspita/tempo-pago-dash/internal/timecalc"
	"github.com/Andersonspita/tempo-pago-dash/internal/timesheet"
)

var summaryJSON bool

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show per-day totals, most recent day first",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func init() {
	summaryCmd.Flags().BoolVar(&summaryJSON, "json", false, "Print summaries as JSON")
}

func runSummary(cmd *cobra.Command, args []string) error {
	store, closeStore := openStore()
	defer closeStore()

	summaries := timesheet.DailySummaries(store.Entries())

	if summaryJSON {
		data, err := json.MarshalIndent(summaries, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, "error encoding JSON:", err)
			os.Exit(2)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(summaries) == 0 {
		fmt.Println("No entries found.")
		return nil
	}

	for _, s := range summaries {
		status := "pending"
		if s.IsPaid {
			status = "paid"
		}
		fmt.Printf("%s  %-6s %-10s %d entr%s  %s\n",
			s.Date,
			timecalc.FormatDuration(s.TotalHours),
			timecalc.FormatCurrency(s.TotalEarnings),
			s.EntriesCount, plural(s.EntriesCount, "y", "ies"),
			status)
	}
	return nil
}

func plural(n int, singular, pluralSuffix string) string {
	if n == 1 {
		return singular
	}
	return pluralSuffix
}
