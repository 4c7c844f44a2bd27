package storage

import (
	"path/filepath"
	"testing"

	"github.com/riftscope/go-lol-replay/internal/model"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "stats.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleMatch(id, date string) model.MatchSummary {
	return model.MatchSummary{
		MatchID:      id,
		GameMode:     "CLASSIC",
		GameVersion:  "14.17.612.1234",
		GameDuration: 1_800_000,
		MatchDate:    date,
		QueueID:      420,
	}
}

func sampleStats(matchID string) []model.ParticipantStats {
	return []model.ParticipantStats{
		{
			MatchID: matchID, PUUID: "puuid-1", SummonerName: "Alice",
			ChampionID: 266, ChampionName: "Aatrox",
			TeamID: model.TeamBlue, Position: "TOP", Win: true,
			Kills: 7, Deaths: 3, Assists: 5,
			GoldEarned: 13200, MinionsKilled: 210, NeutralKilled: 12,
			DamageDealt: 24500, DamageTaken: 31000, VisionScore: 22, TimeCCing: 38,
		},
		{
			MatchID: matchID, PUUID: "puuid-2", SummonerName: "Bob",
			ChampionID: 103, ChampionName: "Ahri",
			TeamID: model.TeamRed, Position: "MIDDLE", Win: false,
			Kills: 2, Deaths: 7, Assists: 4,
		},
	}
}

func TestMatchRoundTrip(t *testing.T) {
	db := openTestDB(t)
	want := sampleMatch("NA1_1000", "2026-08-01")

	if err := db.InsertMatch(want); err != nil {
		t.Fatalf("insert: %v", err)
	}

	exists, err := db.MatchExists("NA1_1000")
	if err != nil || !exists {
		t.Fatalf("exists = %v, %v", exists, err)
	}
	exists, err = db.MatchExists("NA1_9999")
	if err != nil || exists {
		t.Fatalf("unknown match exists = %v, %v", exists, err)
	}

	got, err := db.GetMatch("NA1_1000")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || *got != want {
		t.Errorf("round trip: want %+v, got %+v", want, got)
	}

	missing, err := db.GetMatch("NA1_9999")
	if err != nil || missing != nil {
		t.Errorf("unknown match: want nil, got %+v, %v", missing, err)
	}
}

func TestInsertMatchIdempotent(t *testing.T) {
	db := openTestDB(t)
	m := sampleMatch("NA1_1000", "2026-08-01")
	if err := db.InsertMatch(m); err != nil {
		t.Fatal(err)
	}
	m.GameMode = "ARAM"
	if err := db.InsertMatch(m); err != nil {
		t.Fatalf("re-insert: %v", err)
	}

	matches, err := db.ListMatches()
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 {
		t.Fatalf("want 1 match after re-insert, got %d", len(matches))
	}
	if matches[0].GameMode != "ARAM" {
		t.Errorf("re-insert should replace, game mode = %s", matches[0].GameMode)
	}
}

func TestParticipantStatsRoundTrip(t *testing.T) {
	db := openTestDB(t)
	if err := db.InsertMatch(sampleMatch("NA1_1000", "2026-08-01")); err != nil {
		t.Fatal(err)
	}
	want := sampleStats("NA1_1000")
	if err := db.InsertParticipantStats(want); err != nil {
		t.Fatalf("insert stats: %v", err)
	}

	got, err := db.GetParticipantStats("NA1_1000")
	if err != nil {
		t.Fatalf("get stats: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 rows, got %d", len(got))
	}
	// Ordered by team then puuid.
	if got[0].PUUID != "puuid-1" || got[1].PUUID != "puuid-2" {
		t.Errorf("row order: %s, %s", got[0].PUUID, got[1].PUUID)
	}
	if got[0] != want[0] {
		t.Errorf("row mismatch:\nwant %+v\ngot  %+v", want[0], got[0])
	}
	if got[1].Win {
		t.Error("loss stored as win")
	}
}

func TestGetPlayerStatsOrderedByDate(t *testing.T) {
	db := openTestDB(t)
	// Inserted out of date order on purpose.
	for _, m := range []model.MatchSummary{
		sampleMatch("NA1_2", "2026-08-15"),
		sampleMatch("NA1_1", "2026-08-01"),
	} {
		if err := db.InsertMatch(m); err != nil {
			t.Fatal(err)
		}
		if err := db.InsertParticipantStats(sampleStats(m.MatchID)[:1]); err != nil {
			t.Fatal(err)
		}
	}

	rows, err := db.GetPlayerStats("puuid-1")
	if err != nil {
		t.Fatalf("get player stats: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("want 2 rows, got %d", len(rows))
	}
	if rows[0].MatchID != "NA1_1" || rows[1].MatchID != "NA1_2" {
		t.Errorf("want oldest first, got %s, %s", rows[0].MatchID, rows[1].MatchID)
	}

	none, err := db.GetPlayerStats("puuid-unknown")
	if err != nil {
		t.Fatal(err)
	}
	if len(none) != 0 {
		t.Errorf("unknown player: want no rows, got %d", len(none))
	}
}

func TestListMatchesNewestFirst(t *testing.T) {
	db := openTestDB(t)
	for _, m := range []model.MatchSummary{
		sampleMatch("NA1_1", "2026-08-01"),
		sampleMatch("NA1_3", "2026-08-20"),
		sampleMatch("NA1_2", "2026-08-10"),
	} {
		if err := db.InsertMatch(m); err != nil {
			t.Fatal(err)
		}
	}

	matches, err := db.ListMatches()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"NA1_3", "NA1_2", "NA1_1"}
	for i, id := range want {
		if matches[i].MatchID != id {
			t.Errorf("position %d: want %s, got %s", i, id, matches[i].MatchID)
		}
	}
}
