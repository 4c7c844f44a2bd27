package stats

import (
	"testing"

	"github.com/riftscope/go-lol-replay/internal/model"
	"github.com/riftscope/go-lol-replay/internal/riot"
)

func TestFromMatch(t *testing.T) {
	m := &riot.Match{
		Metadata: riot.MatchMetadata{MatchID: "NA1_1000"},
		Info: riot.MatchInfo{
			GameCreation: 1_756_000_000_000, // 2025-08-24 UTC
			GameDuration: 1800,
			GameMode:     "CLASSIC",
			GameVersion:  "14.17.612.1234",
			QueueID:      420,
			Participants: []riot.MatchParticipant{
				{
					PUUID: "puuid-1", RiotIDGameName: "Alice",
					ChampionID: 266, ChampionName: "Aatrox",
					TeamID: model.TeamBlue, TeamPosition: "TOP", Win: true,
					Kills: 7, Deaths: 3, Assists: 5,
					GoldEarned: 13200, TotalMinionsKilled: 210, NeutralMinionsKilled: 12,
					TotalDamageDealtToChampions: 24500, TotalDamageTaken: 31000,
					VisionScore: 22, TimeCCingOthers: 38,
				},
			},
		},
	}

	summary, rows := FromMatch(m)
	if summary.MatchID != "NA1_1000" || summary.QueueID != 420 {
		t.Errorf("summary: %+v", summary)
	}
	if summary.GameDuration != 1_800_000 {
		t.Errorf("duration should be stored in ms, got %d", summary.GameDuration)
	}
	if summary.MatchDate != "2025-08-24" {
		t.Errorf("match date: %s", summary.MatchDate)
	}

	if len(rows) != 1 {
		t.Fatalf("rows: %d", len(rows))
	}
	r := rows[0]
	if r.SummonerName != "Alice" {
		t.Errorf("display name should prefer riot id, got %q", r.SummonerName)
	}
	if r.CS() != 222 {
		t.Errorf("CS: want 222, got %d", r.CS())
	}
	if got := r.KDA(); got != 4.0 {
		t.Errorf("KDA: want 4.0, got %v", got)
	}
}

func TestKDAZeroDeaths(t *testing.T) {
	r := model.ParticipantStats{Kills: 5, Deaths: 0, Assists: 3}
	if got := r.KDA(); got != 8.0 {
		t.Errorf("deathless KDA: want 8.0, got %v", got)
	}
}

func row(puuid, champion, position string, win bool, k, d, a int) model.ParticipantStats {
	return model.ParticipantStats{
		PUUID: puuid, SummonerName: "Alice",
		ChampionName: champion, Position: position, Win: win,
		Kills: k, Deaths: d, Assists: a,
	}
}

func TestAggregatePlayer(t *testing.T) {
	rows := []model.ParticipantStats{
		row("puuid-1", "Aatrox", "TOP", true, 7, 3, 5),
		row("puuid-1", "Ahri", "MIDDLE", false, 2, 6, 4),
		row("puuid-2", "Jinx", "BOTTOM", true, 10, 1, 2), // someone else's row
	}

	agg := AggregatePlayer("puuid-1", rows)
	if agg.Matches != 2 || agg.Wins != 1 || agg.Losses() != 1 {
		t.Errorf("record: %d matches, %d wins, %d losses", agg.Matches, agg.Wins, agg.Losses())
	}
	if agg.WinRate() != 50.0 {
		t.Errorf("win rate: %v", agg.WinRate())
	}
	if agg.Kills != 9 || agg.Deaths != 9 || agg.Assists != 9 {
		t.Errorf("totals: %d/%d/%d", agg.Kills, agg.Deaths, agg.Assists)
	}
	if agg.KDA() != 2.0 {
		t.Errorf("KDA: %v", agg.KDA())
	}
}

func TestAggregateChampionsOrdering(t *testing.T) {
	rows := []model.ParticipantStats{
		row("puuid-1", "Ahri", "MIDDLE", true, 4, 2, 6),
		row("puuid-1", "Aatrox", "TOP", true, 7, 3, 5),
		row("puuid-1", "Ahri", "MIDDLE", false, 2, 6, 4),
		row("puuid-1", "Jinx", "BOTTOM", false, 3, 4, 1),
	}

	aggs := AggregateChampions(rows)
	if len(aggs) != 3 {
		t.Fatalf("champions: %d", len(aggs))
	}
	if aggs[0].ChampionName != "Ahri" || aggs[0].Games != 2 {
		t.Errorf("most played first: %+v", aggs[0])
	}
	// Single-game champions break the tie alphabetically.
	if aggs[1].ChampionName != "Aatrox" || aggs[2].ChampionName != "Jinx" {
		t.Errorf("tie break: %s, %s", aggs[1].ChampionName, aggs[2].ChampionName)
	}
	if aggs[0].WinRate() != 50.0 {
		t.Errorf("ahri win rate: %v", aggs[0].WinRate())
	}
	if aggs[0].AvgKills() != 3.0 {
		t.Errorf("ahri avg kills: %v", aggs[0].AvgKills())
	}
}

func TestAggregatePositions(t *testing.T) {
	rows := []model.ParticipantStats{
		row("puuid-1", "Aatrox", "TOP", true, 7, 3, 5),
		row("puuid-1", "Ahri", "TOP", false, 2, 6, 4),
		row("puuid-1", "Jinx", "", true, 3, 4, 1), // no role recorded
	}

	aggs := AggregatePositions(rows)
	if len(aggs) != 2 {
		t.Fatalf("positions: %d", len(aggs))
	}
	if aggs[0].Position != "TOP" || aggs[0].Games != 2 || aggs[0].Wins != 1 {
		t.Errorf("top: %+v", aggs[0])
	}
	if aggs[1].Position != "UNKNOWN" || aggs[1].Games != 1 {
		t.Errorf("missing role should land in UNKNOWN: %+v", aggs[1])
	}
}
