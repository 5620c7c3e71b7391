package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Andersonspita/tempo-pago-dash/internal/interchange"
)

var backupOut string

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Write a full-fidelity backup of all data",
	Args:  cobra.NoArgs,
	RunE:  runBackup,
}

func init() {
	backupCmd.Flags().StringVar(&backupOut, "out", "", "Output file (default: backup-controle-horas-<date>.json, \"-\" for stdout)")
}

func runBackup(cmd *cobra.Command, args []string) error {
	now := time.Now()

	store, closeStore := openStore()
	defer closeStore()

	data, err := interchange.ExportBackup(store.Entries(), store.Settings(), now)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if backupOut == "-" {
		fmt.Println(string(data))
		return nil
	}

	path := backupOut
	if path == "" {
		path = interchange.BackupFilename(now)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Printf("Backup written to %s\n", path)
	return nil
}
