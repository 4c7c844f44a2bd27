package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/riftscope/go-lol-replay/internal/replaystore"
	"github.com/riftscope/go-lol-replay/internal/report"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored replays",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	store, err := replaystore.New(dataDir)
	if err != nil {
		return err
	}
	infos, err := store.List()
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Fprintln(os.Stdout, "No replays stored yet. Run 'lolreplay fetch <match-id>' to add one.")
		return nil
	}
	report.PrintReplayList(os.Stdout, infos)
	return nil
}
