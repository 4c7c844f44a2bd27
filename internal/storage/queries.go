package storage

import (
	"database/sql"
	"fmt"

	"github.com/riftscope/go-lol-replay/internal/model"
)

// MatchExists returns true if a match with the given id is already stored.
func (db *DB) MatchExists(matchID string) (bool, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(1) FROM matches WHERE match_id = ?", matchID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// InsertMatch inserts a match metadata row. Uses INSERT OR REPLACE for idempotency.
func (db *DB) InsertMatch(summary model.MatchSummary) error {
	_, err := db.conn.Exec(`
		INSERT OR REPLACE INTO matches(match_id, game_mode, game_version, game_duration, match_date, queue_id)
		VALUES (?, ?, ?, ?, ?, ?)`,
		summary.MatchID, summary.GameMode, summary.GameVersion,
		summary.GameDuration, summary.MatchDate, summary.QueueID,
	)
	return err
}

// InsertParticipantStats bulk-inserts participant rows in a transaction.
func (db *DB) InsertParticipantStats(stats []model.ParticipantStats) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO participant_stats(
			match_id, puuid, summoner_name, champion_id, champion_name,
			team_id, position, win,
			kills, deaths, assists,
			gold_earned, minions_killed, neutral_killed,
			damage_dealt, damage_taken, vision_score, time_ccing
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, s := range stats {
		_, err = stmt.Exec(
			s.MatchID, s.PUUID, s.SummonerName, s.ChampionID, s.ChampionName,
			s.TeamID, s.Position, boolInt(s.Win),
			s.Kills, s.Deaths, s.Assists,
			s.GoldEarned, s.MinionsKilled, s.NeutralKilled,
			s.DamageDealt, s.DamageTaken, s.VisionScore, s.TimeCCing,
		)
		if err != nil {
			return fmt.Errorf("insert participant_stats for %s/%s: %w", s.MatchID, s.PUUID, err)
		}
	}
	return tx.Commit()
}

// GetMatch returns one match metadata row, or nil when unknown.
func (db *DB) GetMatch(matchID string) (*model.MatchSummary, error) {
	var s model.MatchSummary
	err := db.conn.QueryRow(`
		SELECT match_id, game_mode, game_version, game_duration, match_date, queue_id
		FROM matches WHERE match_id = ?`, matchID).Scan(
		&s.MatchID, &s.GameMode, &s.GameVersion, &s.GameDuration, &s.MatchDate, &s.QueueID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListMatches returns all stored matches, newest first.
func (db *DB) ListMatches() ([]model.MatchSummary, error) {
	rows, err := db.conn.Query(`
		SELECT match_id, game_mode, game_version, game_duration, match_date, queue_id
		FROM matches ORDER BY match_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.MatchSummary
	for rows.Next() {
		var s model.MatchSummary
		if err := rows.Scan(&s.MatchID, &s.GameMode, &s.GameVersion, &s.GameDuration, &s.MatchDate, &s.QueueID); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetParticipantStats returns all participant rows for one match.
func (db *DB) GetParticipantStats(matchID string) ([]model.ParticipantStats, error) {
	return db.queryParticipants(`
		SELECT match_id, puuid, summoner_name, champion_id, champion_name,
		       team_id, position, win,
		       kills, deaths, assists,
		       gold_earned, minions_killed, neutral_killed,
		       damage_dealt, damage_taken, vision_score, time_ccing
		FROM participant_stats WHERE match_id = ? ORDER BY team_id, puuid`, matchID)
}

// GetPlayerStats returns one player's rows across all stored matches,
// oldest first (join for date ordering).
func (db *DB) GetPlayerStats(puuid string) ([]model.ParticipantStats, error) {
	return db.queryParticipants(`
		SELECT p.match_id, p.puuid, p.summoner_name, p.champion_id, p.champion_name,
		       p.team_id, p.position, p.win,
		       p.kills, p.deaths, p.assists,
		       p.gold_earned, p.minions_killed, p.neutral_killed,
		       p.damage_dealt, p.damage_taken, p.vision_score, p.time_ccing
		FROM participant_stats p
		JOIN matches m ON m.match_id = p.match_id
		WHERE p.puuid = ? ORDER BY m.match_date ASC`, puuid)
}

func (db *DB) queryParticipants(query string, args ...any) ([]model.ParticipantStats, error) {
	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ParticipantStats
	for rows.Next() {
		var s model.ParticipantStats
		var win int
		if err := rows.Scan(
			&s.MatchID, &s.PUUID, &s.SummonerName, &s.ChampionID, &s.ChampionName,
			&s.TeamID, &s.Position, &win,
			&s.Kills, &s.Deaths, &s.Assists,
			&s.GoldEarned, &s.MinionsKilled, &s.NeutralKilled,
			&s.DamageDealt, &s.DamageTaken, &s.VisionScore, &s.TimeCCing,
		); err != nil {
			return nil, err
		}
		s.Win = win != 0
		out = append(out, s)
	}
	return out, rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
