package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	rmAll   bool
	rmForce bool
)

var rmCmd = &cobra.Command{
	Use:   "rm [id]",
	Short: "Delete an entry, or all entries with --all",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRm,
}

func init() {
	rmCmd.Flags().BoolVar(&rmAll, "all", false, "Delete every entry")
	rmCmd.Flags().BoolVar(&rmForce, "force", false, "Required to confirm --all")
}

func runRm(cmd *cobra.Command, args []string) error {
	store, closeStore := openStore()
	defer closeStore()

	if rmAll {
		if len(args) != 0 {
			return fmt.Errorf("--all takes no id argument")
		}
		if !rmForce {
			return fmt.Errorf("refusing to delete all entries without --force")
		}
		count := len(store.Entries())
		if err := store.Clear(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		fmt.Printf("Deleted %d entries.\n", count)
		return nil
	}

	if len(args) != 1 {
		return fmt.Errorf("an entry id is required (or use --all)")
	}

	id, err := resolveID(store, args[0])
	if err != nil {
		return err
	}

	found, err := store.Delete(id)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if !found {
		return fmt.Errorf("no entry with id %q", args[0])
	}

	fmt.Printf("Deleted %s\n", shortID(id))
	return nil
}
