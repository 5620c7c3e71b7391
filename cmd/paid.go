package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var paidCmd = &cobra.Command{
	Use:   "paid <id>",
	Short: "Toggle the payment status of an entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runPaid,
}

func runPaid(cmd *cobra.Command, args []string) error {
	store, closeStore := openStore()
	defer closeStore()

	id, err := resolveID(store, args[0])
	if err != nil {
		return err
	}

	found, err := store.TogglePaid(id)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if !found {
		return fmt.Errorf("no entry with id %q", args[0])
	}

	entry, _ := store.Find(id)
	status := "pending"
	if entry.IsPaid {
		status = "paid"
	}
	fmt.Printf("Entry %s is now %s.\n", shortID(id), status)
	return nil
}
