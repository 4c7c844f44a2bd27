package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/riftscope/go-lol-replay/internal/gamestate"
	"github.com/riftscope/go-lol-replay/internal/replaystore"
	"github.com/riftscope/go-lol-replay/internal/report"
)

var stateAt string

var stateCmd = &cobra.Command{
	Use:   "state <match-id>",
	Short: "Show the reconstructed game state at a timestamp",
	Args:  cobra.ExactArgs(1),
	RunE:  runState,
}

func init() {
	stateCmd.Flags().StringVar(&stateAt, "at", "", "query time as milliseconds or MM:SS (required)")
	stateCmd.MarkFlagRequired("at")
}

func runState(cmd *cobra.Command, args []string) error {
	at, err := parseQueryTime(stateAt)
	if err != nil {
		return err
	}

	store, err := replaystore.New(dataDir)
	if err != nil {
		return err
	}
	replay, err := store.Load(args[0])
	if err != nil {
		return err
	}

	snap, err := gamestate.At(replay, at)
	if err != nil {
		return err
	}
	report.PrintSnapshot(os.Stdout, replay, snap)
	return nil
}

// parseQueryTime accepts raw milliseconds ("930000") or a clock ("15:30").
func parseQueryTime(s string) (int64, error) {
	if mins, secs, ok := strings.Cut(s, ":"); ok {
		m, err1 := strconv.ParseInt(mins, 10, 64)
		sec, err2 := strconv.ParseInt(secs, 10, 64)
		if err1 != nil || err2 != nil || m < 0 || sec < 0 || sec > 59 {
			return 0, fmt.Errorf("invalid time %q, expected MM:SS or milliseconds", s)
		}
		return (m*60 + sec) * 1000, nil
	}
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q, expected MM:SS or milliseconds", s)
	}
	return ms, nil
}
