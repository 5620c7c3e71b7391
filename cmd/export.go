package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Andersonspita/tempo-pago-dash/internal/interchange"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export entries as a spreadsheet file",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Output format: csv, xlsx")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file (default: controle-horas-<date>.<format>, \"-\" for stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	now := time.Now()

	store, closeStore := openStore()
	defer closeStore()

	entries := store.Entries()

	var out *os.File
	path := exportOut
	if path == "-" {
		out = os.Stdout
	} else {
		if path == "" {
			switch exportFormat {
			case "xlsx":
				path = interchange.XLSXFilename(now)
			default:
				path = interchange.CSVFilename(now)
			}
		}
		f, err := os.Create(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		defer f.Close()
		out = f
	}

	var err error
	switch exportFormat {
	case "xlsx":
		err = interchange.WriteXLSX(out, entries)
	case "csv":
		err = interchange.WriteCSV(out, entries)
	default:
		return fmt.Errorf("unknown format %q (use csv or xlsx)", exportFormat)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if out != os.Stdout {
		fmt.Printf("Exported %d entries to %s\n", len(entries), path)
	}
	return nil
}
