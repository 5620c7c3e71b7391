package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Andersonspita/tempo-pago-dash/internal/model"
	"github.com/Andersonspita/tempo-pago-dash/internal/timecalc"
)

var settingsRate float64

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change the default hourly rate",
	Args:  cobra.NoArgs,
	RunE:  runSettings,
}

func init() {
	settingsCmd.Flags().Float64Var(&settingsRate, "rate", 0, "Set the default hourly rate")
}

func runSettings(cmd *cobra.Command, args []string) error {
	store, closeStore := openStore()
	defer closeStore()

	if cmd.Flags().Changed("rate") {
		if settingsRate <= 0 {
			return fmt.Errorf("hourly rate must be positive")
		}
		if err := store.SaveSettings(model.Settings{DefaultHourlyRate: settingsRate}); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		fmt.Printf("Default hourly rate set to %s.\n", timecalc.FormatCurrency(settingsRate))
		return nil
	}

	fmt.Printf("Default hourly rate: %s\n", timecalc.FormatCurrency(store.Settings().DefaultHourlyRate))
	return nil
}
