// Package stats turns match detail payloads into storable rows and
// aggregates per-player rollups across stored matches.
package stats

import (
	"sort"
	"time"

	"github.com/riftscope/go-lol-replay/internal/model"
	"github.com/riftscope/go-lol-replay/internal/riot"
)

// FromMatch converts one match detail payload into a metadata row plus one
// stats row per participant.
func FromMatch(m *riot.Match) (model.MatchSummary, []model.ParticipantStats) {
	summary := model.MatchSummary{
		MatchID:      m.Metadata.MatchID,
		GameMode:     m.Info.GameMode,
		GameVersion:  m.Info.GameVersion,
		GameDuration: m.Info.GameDuration * 1000,
		MatchDate:    time.UnixMilli(m.Info.GameCreation).UTC().Format("2006-01-02"),
		QueueID:      m.Info.QueueID,
	}

	rows := make([]model.ParticipantStats, 0, len(m.Info.Participants))
	for i := range m.Info.Participants {
		p := &m.Info.Participants[i]
		rows = append(rows, model.ParticipantStats{
			MatchID:       m.Metadata.MatchID,
			PUUID:         p.PUUID,
			SummonerName:  p.Name(),
			ChampionID:    p.ChampionID,
			ChampionName:  p.ChampionName,
			TeamID:        p.TeamID,
			Position:      p.TeamPosition,
			Win:           p.Win,
			Kills:         p.Kills,
			Deaths:        p.Deaths,
			Assists:       p.Assists,
			GoldEarned:    p.GoldEarned,
			MinionsKilled: p.TotalMinionsKilled,
			NeutralKilled: p.NeutralMinionsKilled,
			DamageDealt:   p.TotalDamageDealtToChampions,
			DamageTaken:   p.TotalDamageTaken,
			VisionScore:   p.VisionScore,
			TimeCCing:     p.TimeCCingOthers,
		})
	}
	return summary, rows
}

// AggregatePlayer sums one player's rows into a single rollup.
func AggregatePlayer(puuid string, rows []model.ParticipantStats) *model.PlayerAggregate {
	agg := &model.PlayerAggregate{PUUID: puuid}
	for _, r := range rows {
		if r.PUUID != puuid {
			continue
		}
		agg.Matches++
		if r.Win {
			agg.Wins++
		}
		agg.Kills += r.Kills
		agg.Deaths += r.Deaths
		agg.Assists += r.Assists
		agg.GoldEarned += r.GoldEarned
		agg.DamageDealt += r.DamageDealt
		agg.DamageTaken += r.DamageTaken
		agg.VisionScore += r.VisionScore
		agg.Name = r.SummonerName // most recent name wins (rows ordered oldest first)
	}
	return agg
}

// AggregateChampions splits a player's rows per champion, most played first.
func AggregateChampions(rows []model.ParticipantStats) []model.ChampionAggregate {
	byChampion := make(map[string]*model.ChampionAggregate)
	for _, r := range rows {
		agg, ok := byChampion[r.ChampionName]
		if !ok {
			agg = &model.ChampionAggregate{PUUID: r.PUUID, ChampionName: r.ChampionName}
			byChampion[r.ChampionName] = agg
		}
		agg.Games++
		if r.Win {
			agg.Wins++
		}
		agg.Kills += r.Kills
		agg.Deaths += r.Deaths
		agg.Assists += r.Assists
		agg.GoldEarned += r.GoldEarned
		agg.DamageDealt += r.DamageDealt
	}

	out := make([]model.ChampionAggregate, 0, len(byChampion))
	for _, agg := range byChampion {
		out = append(out, *agg)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Games != out[j].Games {
			return out[i].Games > out[j].Games
		}
		return out[i].ChampionName < out[j].ChampionName
	})
	return out
}

// AggregatePositions splits a player's rows per role, most played first.
func AggregatePositions(rows []model.ParticipantStats) []model.PositionAggregate {
	byPosition := make(map[string]*model.PositionAggregate)
	for _, r := range rows {
		pos := r.Position
		if pos == "" {
			pos = "UNKNOWN"
		}
		agg, ok := byPosition[pos]
		if !ok {
			agg = &model.PositionAggregate{PUUID: r.PUUID, Position: pos}
			byPosition[pos] = agg
		}
		agg.Games++
		if r.Win {
			agg.Wins++
		}
	}

	out := make([]model.PositionAggregate, 0, len(byPosition))
	for _, agg := range byPosition {
		out = append(out, *agg)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Games != out[j].Games {
			return out[i].Games > out[j].Games
		}
		return out[i].Position < out[j].Position
	})
	return out
}
