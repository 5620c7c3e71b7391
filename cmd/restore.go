package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Andersonspita/tempo-pago-dash/internal/interchange"
)

var restoreCmd = &cobra.Command{
	Use:   "restore <backup-file>",
	Short: "Replace all data with the contents of a backup file",
	Args:  cobra.ExactArgs(1),
	RunE:  runRestore,
}

func runRestore(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading backup file: %w", err)
	}

	entries, settings, err := interchange.ImportBackup(data)
	if err != nil {
		return err
	}

	store, closeStore := openStore()
	defer closeStore()

	if err := store.AdoptSnapshot(entries, &settings); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Printf("Restored %d entries from %s\n", len(entries), args[0])
	return nil
}
