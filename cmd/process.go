package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/riftscope/go-lol-replay/internal/normalizer"
	"github.com/riftscope/go-lol-replay/internal/replaystore"
	"github.com/riftscope/go-lol-replay/internal/report"
)

var processCmd = &cobra.Command{
	Use:   "process <decoded.json>",
	Short: "Normalize an externally-decoded replay container and store it",
	Long: `Normalize the JSON output of an external replay decoder into a canonical
replay document. Raw .rofl decoding is not done here; run the decoder first
and pass its output.`,
	Args: cobra.ExactArgs(1),
	RunE: runProcess,
}

func runProcess(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read decoder output: %w", err)
	}

	out, err := normalizer.ParseDecoderOutput(raw)
	if err != nil {
		return err
	}
	replay, err := normalizer.FromDecoderOutput(out)
	if err != nil {
		return fmt.Errorf("normalize decoder output: %w", err)
	}

	store, err := replaystore.New(dataDir)
	if err != nil {
		return err
	}
	if err := store.Save(replay); err != nil {
		return err
	}

	report.PrintReplaySummary(os.Stdout, replay)
	report.PrintRosterTable(os.Stdout, replay)
	return nil
}
