package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/riftscope/go-lol-replay/internal/replaystore"
)

var dropCmd = &cobra.Command{
	Use:   "drop <match-id>",
	Short: "Delete a stored replay",
	Args:  cobra.ExactArgs(1),
	RunE:  runDrop,
}

func runDrop(cmd *cobra.Command, args []string) error {
	store, err := replaystore.New(dataDir)
	if err != nil {
		return err
	}
	if err := store.Delete(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Deleted replay %s\n", args[0])
	return nil
}
