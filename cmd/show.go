package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/riftscope/go-lol-replay/internal/replaystore"
	"github.com/riftscope/go-lol-replay/internal/report"
)

var showCmd = &cobra.Command{
	Use:   "show <match-id>",
	Short: "Show a stored replay's summary and roster",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	store, err := replaystore.New(dataDir)
	if err != nil {
		return err
	}
	replay, err := store.Load(args[0])
	if err != nil {
		return err
	}

	report.PrintReplaySummary(os.Stdout, replay)
	report.PrintRosterTable(os.Stdout, replay)
	return nil
}
