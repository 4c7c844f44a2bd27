package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/riftscope/go-lol-replay/internal/report"
	"github.com/riftscope/go-lol-replay/internal/riot"
	"github.com/riftscope/go-lol-replay/internal/stats"
	"github.com/riftscope/go-lol-replay/internal/storage"
)

var statsCount int

var statsCmd = &cobra.Command{
	Use:   "stats <game-name> <tag-line>",
	Short: "Fetch recent matches for a player and show rollup stats",
	Args:  cobra.ExactArgs(2),
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().IntVar(&statsCount, "count", 10, "number of recent matches to fetch")
}

func runStats(cmd *cobra.Command, args []string) error {
	gameName, tagLine := args[0], args[1]

	key, err := riotAPIKey()
	if err != nil {
		return err
	}
	client := riot.NewClient(key, matchCacheDir())
	ctx := cmd.Context()

	account, err := client.AccountByRiotID(ctx, region, gameName, tagLine)
	if err != nil {
		return fmt.Errorf("resolve %s#%s: %w", gameName, tagLine, err)
	}

	ids, err := client.MatchIDs(ctx, region, account.PUUID, statsCount)
	if err != nil {
		return fmt.Errorf("fetch match history: %w", err)
	}

	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	for _, id := range ids {
		exists, err := db.MatchExists(id)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		match, err := client.Match(ctx, region, id)
		if err != nil {
			if errors.Is(err, riot.ErrNotFound) {
				log.Printf("stats: match %s not found upstream, skipping", id)
				continue
			}
			return fmt.Errorf("fetch match %s: %w", id, err)
		}
		summary, rows := stats.FromMatch(match)
		if err := db.InsertMatch(summary); err != nil {
			return fmt.Errorf("insert match %s: %w", id, err)
		}
		if err := db.InsertParticipantStats(rows); err != nil {
			return fmt.Errorf("insert stats for %s: %w", id, err)
		}
	}

	rows, err := db.GetPlayerStats(account.PUUID)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Fprintf(os.Stdout, "No stored matches for %s#%s yet.\n", gameName, tagLine)
		return nil
	}

	report.PrintPlayerSummary(os.Stdout, stats.AggregatePlayer(account.PUUID, rows))
	report.PrintChampionTable(os.Stdout, stats.AggregateChampions(rows))
	fmt.Fprintln(os.Stdout)
	report.PrintPositionTable(os.Stdout, stats.AggregatePositions(rows))
	return nil
}
