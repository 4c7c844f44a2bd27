package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/riftscope/go-lol-replay/internal/gamestate"
	"github.com/riftscope/go-lol-replay/internal/model"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// Clock renders a millisecond timestamp as MM:SS.
func Clock(ms int64) string {
	secs := ms / 1000
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

func shortID(puuid string) string {
	if len(puuid) > 12 {
		return puuid[:12]
	}
	return puuid
}

// PrintReplaySummary prints a one-line header plus objective timers for a replay.
func PrintReplaySummary(w io.Writer, r *model.ProcessedReplay) {
	fmt.Fprintf(w, "\nMatch: %s  |  Duration: %s  |  Participants: %d  |  Events: %d  |  Wards: %d\n",
		r.MatchID, Clock(r.GameDuration), len(r.Participants), len(r.GameEvents), len(r.WardEvents))
	if len(r.ObjectiveTimers) > 0 {
		kinds := make([]string, 0, len(r.ObjectiveTimers))
		for kind := range r.ObjectiveTimers {
			kinds = append(kinds, kind)
		}
		sort.Strings(kinds)
		for _, kind := range kinds {
			fmt.Fprintf(w, "Next %s spawn: %s\n", kind, Clock(r.ObjectiveTimers[kind]))
		}
	}
	fmt.Fprintln(w)
}

// PrintRosterTable prints the participant roster.
func PrintRosterTable(w io.Writer, r *model.ProcessedReplay) {
	table := newTable(w)
	table.Header("ID", "NAME", "CHAMPION", "TEAM", "SAMPLES")
	for _, p := range r.Participants {
		table.Append(
			shortID(p.PUUID),
			p.SummonerName,
			strconv.Itoa(p.ChampionID),
			strconv.Itoa(p.TeamID),
			strconv.Itoa(len(r.ChampionPathing[p.PUUID])),
		)
	}
	table.Render()
}

// PrintSnapshot prints a game-state snapshot: champion positions, team
// objectives, and the recent-event window.
func PrintSnapshot(w io.Writer, r *model.ProcessedReplay, snap *model.GameStateSnapshot) {
	fmt.Fprintf(w, "\nGame state at %s (match %s)\n\n", Clock(snap.Timestamp), r.MatchID)

	table := newTable(w)
	table.Header("NAME", "TEAM", "X", "Y")
	for _, p := range r.Participants {
		state, ok := snap.ChampionStates[p.PUUID]
		if !ok {
			continue // no position data for this participant
		}
		table.Append(
			p.SummonerName,
			strconv.Itoa(p.TeamID),
			fmt.Sprintf("%.0f", state.Position.X),
			fmt.Sprintf("%.0f", state.Position.Y),
		)
	}
	table.Render()

	teams := make([]string, 0, len(snap.TeamObjectives))
	for team := range snap.TeamObjectives {
		teams = append(teams, team)
	}
	sort.Strings(teams)
	fmt.Fprintln(w)
	for _, team := range teams {
		taken := snap.TeamObjectives[team]
		if len(taken) == 0 {
			fmt.Fprintf(w, "Team %s objectives: none\n", team)
			continue
		}
		fmt.Fprintf(w, "Team %s objectives:", team)
		for _, kind := range taken {
			fmt.Fprintf(w, " %s", kind)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "\nEvents within %ds:\n", gamestate.RecentEventWindowMs/1000)
	if len(snap.RecentEvents) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, ev := range snap.RecentEvents {
		fmt.Fprintf(w, "  %s  %s%s\n", Clock(ev.Timestamp), ev.Type, eventDetail(&ev))
	}
}

func eventDetail(ev *model.GameEvent) string {
	switch ev.Type {
	case model.EventChampionKill:
		return fmt.Sprintf("  killer=%d victim=%d", ev.KillerID, ev.VictimID)
	case model.EventEliteMonsterKill, model.EventObjectiveTaken:
		return fmt.Sprintf("  team=%d %s", ev.TeamID, ev.ObjectiveKind())
	case model.EventBuildingKill:
		return fmt.Sprintf("  team=%d %s %s", ev.TeamID, ev.LaneType, ev.ObjectiveKind())
	}
	return ""
}

// PrintReplayList prints stored replays, newest first.
func PrintReplayList(w io.Writer, infos []model.ReplayInfo) {
	fmt.Fprintf(w, "%-20s  %-9s  %-12s  %s\n", "MATCH", "DURATION", "PARTICIPANTS", "STORED")
	fmt.Fprintf(w, "%-20s  %-9s  %-12s  %s\n", "────────────────────", "─────────", "────────────", "──────────")
	for _, info := range infos {
		fmt.Fprintf(w, "%-20s  %-9s  %-12d  %s\n",
			info.MatchID, Clock(info.GameDuration), info.Participants,
			info.StoredAt.Format("2006-01-02 15:04"))
	}
}

// PrintPlayerSummary prints one player's rollup across stored matches.
func PrintPlayerSummary(w io.Writer, agg *model.PlayerAggregate) {
	fmt.Fprintf(w, "\n%s  |  Matches: %d  |  W/L: %d-%d (%.0f%%)  |  KDA: %.2f (%d/%d/%d)\n",
		agg.Name, agg.Matches, agg.Wins, agg.Losses(), agg.WinRate(),
		agg.KDA(), agg.Kills, agg.Deaths, agg.Assists)
	fmt.Fprintf(w, "Gold: %d  |  Damage dealt: %d  |  Damage taken: %d  |  Vision: %d\n\n",
		agg.GoldEarned, agg.DamageDealt, agg.DamageTaken, agg.VisionScore)
}

// PrintChampionTable prints per-champion splits, most played first.
func PrintChampionTable(w io.Writer, aggs []model.ChampionAggregate) {
	table := newTable(w)
	table.Header("CHAMPION", "GAMES", "WIN%", "KDA", "K", "D", "A", "AVG_GOLD", "AVG_DMG")
	for i := range aggs {
		a := &aggs[i]
		avgGold, avgDmg := 0, 0
		if a.Games > 0 {
			avgGold = a.GoldEarned / a.Games
			avgDmg = a.DamageDealt / a.Games
		}
		table.Append(
			a.ChampionName,
			strconv.Itoa(a.Games),
			fmt.Sprintf("%.0f%%", a.WinRate()),
			fmt.Sprintf("%.2f", a.KDA()),
			fmt.Sprintf("%.1f", a.AvgKills()),
			fmt.Sprintf("%.1f", a.AvgDeaths()),
			fmt.Sprintf("%.1f", a.AvgAssists()),
			strconv.Itoa(avgGold),
			strconv.Itoa(avgDmg),
		)
	}
	table.Render()
}

// PrintPositionTable prints per-role splits, most played first.
func PrintPositionTable(w io.Writer, aggs []model.PositionAggregate) {
	table := newTable(w)
	table.Header("POSITION", "GAMES", "WINS", "WIN%")
	for i := range aggs {
		a := &aggs[i]
		table.Append(
			a.Position,
			strconv.Itoa(a.Games),
			strconv.Itoa(a.Wins),
			fmt.Sprintf("%.0f%%", a.WinRate()),
		)
	}
	table.Render()
}

// PrintSuggestions prints improvement suggestions as a bullet list.
func PrintSuggestions(w io.Writer, suggestions []string) {
	fmt.Fprintln(w, "\nSuggestions:")
	for _, s := range suggestions {
		fmt.Fprintf(w, "  - %s\n", s)
	}
}
