package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/riftscope/go-lol-replay/internal/model"
	"github.com/riftscope/go-lol-replay/internal/report"
	"github.com/riftscope/go-lol-replay/internal/storage"
	"github.com/riftscope/go-lol-replay/internal/suggest"
)

// History window for judging the current match.
const suggestHistorySize = 5

var suggestPUUID string

var suggestCmd = &cobra.Command{
	Use:   "suggest <match-id>",
	Short: "Show improvement suggestions for a player's stored match",
	Args:  cobra.ExactArgs(1),
	RunE:  runSuggest,
}

func init() {
	suggestCmd.Flags().StringVar(&suggestPUUID, "puuid", "", "player puuid (required)")
	suggestCmd.MarkFlagRequired("puuid")
}

func runSuggest(cmd *cobra.Command, args []string) error {
	matchID := args[0]

	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	summary, err := db.GetMatch(matchID)
	if err != nil {
		return err
	}
	if summary == nil {
		return fmt.Errorf("match %s not stored; run 'lolreplay fetch %s' or 'lolreplay stats' first", matchID, matchID)
	}

	rows, err := db.GetParticipantStats(matchID)
	if err != nil {
		return err
	}
	var current *model.ParticipantStats
	for i := range rows {
		if rows[i].PUUID == suggestPUUID {
			current = &rows[i]
			break
		}
	}
	if current == nil {
		return fmt.Errorf("puuid %s did not play in match %s", suggestPUUID, matchID)
	}

	all, err := db.GetPlayerStats(suggestPUUID)
	if err != nil {
		return err
	}
	history := make([]model.ParticipantStats, 0, suggestHistorySize)
	for _, r := range all {
		if r.MatchID != matchID {
			history = append(history, r)
		}
	}
	if len(history) > suggestHistorySize {
		history = history[len(history)-suggestHistorySize:]
	}

	win := "Loss"
	if current.Win {
		win = "Win"
	}
	fmt.Fprintf(os.Stdout, "\n%s on %s (%s)  |  %d/%d/%d  KDA %.2f  |  CS %d  |  Vision %d\n",
		win, current.ChampionName, current.Position,
		current.Kills, current.Deaths, current.Assists, current.KDA(),
		current.CS(), current.VisionScore)

	score := suggest.Score(*current, summary.GameDuration)
	fmt.Fprintf(os.Stdout, "Performance score: %.0f/100\n%s\n",
		score, suggest.ScoreAnalysis(score, *current, summary.GameDuration))

	report.PrintSuggestions(os.Stdout, suggest.ForMatch(*current, history, summary.GameDuration))
	return nil
}
