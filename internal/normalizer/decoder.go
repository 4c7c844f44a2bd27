package normalizer

import (
	"encoding/json"
	"errors"
	"log"
	"strconv"

	"github.com/riftscope/go-lol-replay/internal/model"
)

// DecoderOutput is the generic nested-object result of the external replay
// decoder. Raw-container decoding happens outside this package; we only
// consume the decoded structure. All top-level groups are optional except
// the statsJson subset carrying match id, duration and roster.
type DecoderOutput struct {
	StatsJSON       json.RawMessage `json:"statsJson"`
	ChampionPathing json.RawMessage `json:"championPathing"`
	WardEvents      json.RawMessage `json:"wardEvents"`
	GameEvents      json.RawMessage `json:"gameEvents"`
}

type decoderStats struct {
	MatchID      string               `json:"matchId"`
	GameDuration int64                `json:"gameDuration"` // ms
	Participants []decoderParticipant `json:"participants"`
	Teams        []decoderTeam        `json:"teams"`
}

type decoderParticipant struct {
	ParticipantID int    `json:"participantId"`
	PUUID         string `json:"puuid"`
	SummonerName  string `json:"summonerName"`
	ChampionID    int    `json:"championId"`
	TeamID        int    `json:"teamId"`
	Win           bool   `json:"win"`
}

type decoderTeam struct {
	TeamID     int            `json:"teamId"`
	Win        bool           `json:"win"`
	Objectives map[string]int `json:"objectives"`
}

type decoderPathEntry struct {
	Timestamp     int64   `json:"timestamp"`
	ParticipantID int     `json:"participantId"`
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
}

type decoderWardEntry struct {
	Timestamp int64   `json:"timestamp"`
	Type      string  `json:"type"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	WardType  string  `json:"wardType"`
	Duration  int64   `json:"duration"`
	Owner     int     `json:"owner"`
}

type decoderEventEntry struct {
	Timestamp      int64    `json:"timestamp"`
	Type           string   `json:"type"`
	X              *float64 `json:"x"`
	Y              *float64 `json:"y"`
	ParticipantID  int      `json:"participantId"`
	KillerID       int      `json:"killerId"`
	VictimID       int      `json:"victimId"`
	TeamID         int      `json:"teamId"`
	BuildingType   string   `json:"buildingType"`
	LaneType       string   `json:"laneType"`
	TowerType      string   `json:"towerType"`
	MonsterType    string   `json:"monsterType"`
	MonsterSubType string   `json:"monsterSubType"`
}

// ParseDecoderOutput decodes the raw decoder JSON document.
func ParseDecoderOutput(raw []byte) (*DecoderOutput, error) {
	var out DecoderOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &ExtractError{Group: "decoderOutput", Err: err}
	}
	return &out, nil
}

// FromDecoderOutput converts decoder output into a canonical replay.
//
// Each field group is extracted independently: a missing or malformed
// optional group (pathing, wards, events) is logged and replaced by an empty
// default, while a failure in the mandatory stats block fails the whole
// operation with the offending group named.
func FromDecoderOutput(out *DecoderOutput) (*model.ProcessedReplay, error) {
	if out == nil {
		return nil, &ExtractError{Group: "decoderOutput", Err: errors.New("nil output")}
	}

	stats, err := extractStats(out.StatsJSON)
	if err != nil {
		return nil, err
	}

	// Identifier for each participant: puuid when the decoder knows it,
	// otherwise the 1-based participant index as a string.
	idByIndex := make(map[int]string, len(stats.Participants))
	participants := make([]model.Participant, 0, len(stats.Participants))
	for _, dp := range stats.Participants {
		id := dp.PUUID
		if id == "" {
			id = strconv.Itoa(dp.ParticipantID)
		}
		idByIndex[dp.ParticipantID] = id
		name := dp.SummonerName
		if name == "" {
			name = "Unknown"
		}
		participants = append(participants, model.Participant{
			PUUID:        id,
			ChampionID:   dp.ChampionID,
			TeamID:       dp.TeamID,
			SummonerName: name,
		})
	}

	pathing, err := extractPathing(out.ChampionPathing, idByIndex)
	if err != nil {
		log.Printf("normalizer: champion pathing unavailable: %v", err)
		pathing = make(map[string][]model.PositionData)
	}

	wards, err := extractWards(out.WardEvents)
	if err != nil {
		log.Printf("normalizer: ward events unavailable: %v", err)
		wards = []model.WardEvent{}
	}

	events, err := extractEvents(out.GameEvents)
	if err != nil {
		log.Printf("normalizer: game events unavailable: %v", err)
		events = []model.GameEvent{}
	}
	sortEvents(events)

	// A decoder-reported duration that falls short of its own events would
	// leave those events unreachable by any in-range query.
	duration := stats.GameDuration
	if n := len(events); n > 0 && events[n-1].Timestamp > duration {
		duration = events[n-1].Timestamp
	}
	for _, samples := range pathing {
		for _, s := range samples {
			if s.Timestamp > duration {
				duration = s.Timestamp
			}
		}
	}

	return &model.ProcessedReplay{
		MatchID:         stats.MatchID,
		GameDuration:    duration,
		Participants:    participants,
		ChampionPathing: pathing,
		GameEvents:      events,
		ObjectiveTimers: ObjectiveTimers(events),
		WardEvents:      wards,
		Teams:           extractTeams(stats),
	}, nil
}

func extractStats(raw json.RawMessage) (*decoderStats, error) {
	if len(raw) == 0 {
		return nil, &ExtractError{Group: "statsJson", Err: errors.New("missing")}
	}
	var stats decoderStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, &ExtractError{Group: "statsJson", Err: err}
	}
	if stats.MatchID == "" {
		return nil, &ExtractError{Group: "statsJson.matchId", Err: errors.New("missing")}
	}
	if stats.GameDuration < 0 {
		return nil, &ExtractError{Group: "statsJson.gameDuration", Err: errors.New("negative")}
	}
	if len(stats.Participants) == 0 {
		return nil, &ExtractError{Group: "statsJson.participants", Err: errors.New("empty")}
	}
	return &stats, nil
}

func extractPathing(raw json.RawMessage, idByIndex map[int]string) (map[string][]model.PositionData, error) {
	pathing := make(map[string][]model.PositionData)
	if len(raw) == 0 {
		return pathing, nil
	}
	var entries []decoderPathEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, &ExtractError{Group: "championPathing", Err: err}
	}
	for _, e := range entries {
		id, ok := idByIndex[e.ParticipantID]
		if !ok {
			continue // sample for a participant the roster doesn't know
		}
		pathing[id] = append(pathing[id], model.PositionData{
			Timestamp: e.Timestamp,
			Position:  model.Position{X: e.X, Y: e.Y},
		})
	}
	return pathing, nil
}

func extractWards(raw json.RawMessage) ([]model.WardEvent, error) {
	if len(raw) == 0 {
		return []model.WardEvent{}, nil
	}
	var entries []decoderWardEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, &ExtractError{Group: "wardEvents", Err: err}
	}
	wards := make([]model.WardEvent, 0, len(entries))
	for _, e := range entries {
		wards = append(wards, model.WardEvent{
			Timestamp: e.Timestamp,
			Type:      e.Type,
			Position:  model.Position{X: e.X, Y: e.Y},
			WardType:  e.WardType,
			Duration:  e.Duration,
			Owner:     e.Owner,
		})
	}
	return wards, nil
}

func extractEvents(raw json.RawMessage) ([]model.GameEvent, error) {
	if len(raw) == 0 {
		return []model.GameEvent{}, nil
	}
	var entries []decoderEventEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, &ExtractError{Group: "gameEvents", Err: err}
	}
	events := make([]model.GameEvent, 0, len(entries))
	for _, e := range entries {
		ev := model.GameEvent{
			Timestamp:      e.Timestamp,
			Type:           e.Type,
			ParticipantID:  e.ParticipantID,
			KillerID:       e.KillerID,
			VictimID:       e.VictimID,
			TeamID:         e.TeamID,
			BuildingType:   e.BuildingType,
			LaneType:       e.LaneType,
			TowerType:      e.TowerType,
			MonsterType:    e.MonsterType,
			MonsterSubType: e.MonsterSubType,
		}
		if e.X != nil && e.Y != nil {
			ev.Position = &model.Position{X: *e.X, Y: *e.Y}
		}
		events = append(events, ev)
	}
	return events, nil
}

// extractTeams builds team results from the stats block. A decoder that does
// not expose authoritative team results gets the canonical pair at its
// zero/false state instead of failing.
func extractTeams(stats *decoderStats) []model.TeamResult {
	if len(stats.Teams) > 0 {
		out := make([]model.TeamResult, 0, len(stats.Teams))
		for _, t := range stats.Teams {
			objectives := t.Objectives
			if objectives == nil {
				objectives = make(map[string]int)
			}
			out = append(out, model.TeamResult{TeamID: t.TeamID, Win: t.Win, Objectives: objectives})
		}
		return out
	}
	return []model.TeamResult{
		{TeamID: model.TeamBlue, Objectives: make(map[string]int)},
		{TeamID: model.TeamRed, Objectives: make(map[string]int)},
	}
}
