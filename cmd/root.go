package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Andersonspita/tempo-pago-dash/internal/config"
	"github.com/Andersonspita/tempo-pago-dash/internal/storage"
	"github.com/Andersonspita/tempo-pago-dash/internal/timesheet"
)

var rootCmd = &cobra.Command{
	Use:   "horas",
	Short: "horas – a personal time-tracking and invoicing ledger",
	Long: `horas records work sessions (date, start/end time, description,
hourly rate, payment status) and derives worked hours, earnings and
payment aggregates. All data is stored locally under ~/.horas/.`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(paidCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
}

// openStore loads the configured backend and the timesheet data. The
// returned close function must be called when the command is done.
func openStore() (*timesheet.Store, func()) {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var kv storage.KV
	closeFn := func() {}
	if cfg.Storage.Backend == config.BackendSQLite {
		db, err := storage.OpenSQLite(filepath.Join(cfg.Storage.Dir, "horas.db"))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		kv = db
		closeFn = func() { _ = db.Close() }
	} else {
		kv = storage.NewFileKV(cfg.Storage.Dir)
	}

	store := timesheet.New(kv)
	if err := store.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	return store, closeFn
}

// resolveID expands an ID prefix (as shown by `horas list`) to the full
// entry ID. Exact matches win; otherwise the prefix must be unambiguous.
func resolveID(store *timesheet.Store, arg string) (string, error) {
	if _, ok := store.Find(arg); ok {
		return arg, nil
	}

	var matches []string
	for _, e := range store.Entries() {
		if strings.HasPrefix(e.ID, arg) {
			matches = append(matches, e.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no entry with id %q", arg)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("id %q is ambiguous (%d matches)", arg, len(matches))
	}
}

// shortID trims a UUID to the 8-character prefix shown in listings.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
