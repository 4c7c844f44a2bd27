package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/riftscope/go-lol-replay/internal/normalizer"
	"github.com/riftscope/go-lol-replay/internal/replaystore"
	"github.com/riftscope/go-lol-replay/internal/report"
	"github.com/riftscope/go-lol-replay/internal/riot"
	"github.com/riftscope/go-lol-replay/internal/stats"
	"github.com/riftscope/go-lol-replay/internal/storage"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <match-id>",
	Short: "Fetch a match timeline and store the processed replay",
	Args:  cobra.ExactArgs(1),
	RunE:  runFetch,
}

func runFetch(cmd *cobra.Command, args []string) error {
	matchID := args[0]

	key, err := riotAPIKey()
	if err != nil {
		return err
	}
	client := riot.NewClient(key, matchCacheDir())
	ctx := cmd.Context()

	fmt.Fprintf(os.Stdout, "Fetching timeline for %s (%s)...\n", matchID, region)
	tl, err := client.Timeline(ctx, region, matchID)
	if err != nil {
		return fmt.Errorf("fetch timeline: %w", err)
	}

	// The detail payload enriches the roster and feeds the stats store; the
	// replay itself can be built without it.
	match, err := client.Match(ctx, region, matchID)
	if err != nil {
		log.Printf("fetch: match detail unavailable, roster will use placeholders: %v", err)
		match = nil
	}

	replay, err := normalizer.FromTimeline(matchID, tl, match)
	if err != nil {
		return fmt.Errorf("normalize timeline: %w", err)
	}

	store, err := replaystore.New(dataDir)
	if err != nil {
		return err
	}
	if err := store.Save(replay); err != nil {
		return err
	}

	if match != nil {
		if err := storeMatchStats(match); err != nil {
			return err
		}
	}

	report.PrintReplaySummary(os.Stdout, replay)
	report.PrintRosterTable(os.Stdout, replay)
	return nil
}

func storeMatchStats(match *riot.Match) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	summary, rows := stats.FromMatch(match)
	if err := db.InsertMatch(summary); err != nil {
		return fmt.Errorf("insert match: %w", err)
	}
	if err := db.InsertParticipantStats(rows); err != nil {
		return fmt.Errorf("insert participant stats: %w", err)
	}
	return nil
}
