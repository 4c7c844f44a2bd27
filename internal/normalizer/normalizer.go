// Package normalizer converts heterogeneous raw match data — provider
// timelines and externally-decoded replay containers — into the canonical
// ProcessedReplay representation.
package normalizer

import (
	"errors"
	"fmt"
	"sort"

	"github.com/riftscope/go-lol-replay/internal/model"
	"github.com/riftscope/go-lol-replay/internal/riot"
)

// ExtractError reports which field group of an input failed extraction.
// Mandatory-group failures abort the whole normalization; optional groups
// degrade to an empty default instead.
type ExtractError struct {
	Group string
	Err   error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("extract %s: %v", e.Group, e.Err)
}

func (e *ExtractError) Unwrap() error { return e.Err }

// FromTimeline converts a match-v5 timeline into a canonical replay. The
// match detail payload is optional: it enriches the roster with champion,
// team and display name, and supplies the authoritative game duration. The
// timeline alone carries none of those, so without it roster fields stay at
// placeholder values and the duration falls back to frameInterval × frame
// count, which may underestimate the true duration by up to one interval.
func FromTimeline(matchID string, tl *riot.Timeline, match *riot.Match) (*model.ProcessedReplay, error) {
	if tl == nil {
		return nil, &ExtractError{Group: "timeline", Err: errors.New("nil payload")}
	}
	if len(tl.Metadata.Participants) == 0 {
		return nil, &ExtractError{Group: "metadata.participants", Err: errors.New("empty roster")}
	}

	var detailByPUUID map[string]*riot.MatchParticipant
	if match != nil {
		detailByPUUID = make(map[string]*riot.MatchParticipant, len(match.Info.Participants))
		for i := range match.Info.Participants {
			p := &match.Info.Participants[i]
			detailByPUUID[p.PUUID] = p
		}
	}

	participants := make([]model.Participant, 0, len(tl.Metadata.Participants))
	for _, puuid := range tl.Metadata.Participants {
		p := model.Participant{PUUID: puuid, SummonerName: "Unknown"}
		if mp, ok := detailByPUUID[puuid]; ok {
			p.ChampionID = mp.ChampionID
			p.TeamID = mp.TeamID
			p.SummonerName = mp.Name()
		}
		participants = append(participants, p)
	}

	// Frames key participants by 1-based index matching metadata order.
	puuidByIndex := func(id int) (string, bool) {
		if id < 1 || id > len(tl.Metadata.Participants) {
			return "", false
		}
		return tl.Metadata.Participants[id-1], true
	}

	pathing := make(map[string][]model.PositionData)
	var events []model.GameEvent
	wards := []model.WardEvent{}
	var lastTimestamp int64

	for _, frame := range tl.Info.Frames {
		if frame.Timestamp > lastTimestamp {
			lastTimestamp = frame.Timestamp
		}
		for _, pf := range frame.ParticipantFrames {
			puuid, ok := puuidByIndex(pf.ParticipantID)
			if !ok {
				continue
			}
			pathing[puuid] = append(pathing[puuid], model.PositionData{
				Timestamp: frame.Timestamp,
				Position:  model.Position{X: float64(pf.Position.X), Y: float64(pf.Position.Y)},
			})
		}
		for _, ev := range frame.Events {
			if ev.Timestamp > lastTimestamp {
				lastTimestamp = ev.Timestamp
			}
			switch ev.Type {
			case model.EventChampionKill:
				events = append(events, model.GameEvent{
					Timestamp: ev.Timestamp,
					Type:      ev.Type,
					Position:  pointPtr(ev.Position),
					KillerID:  ev.KillerID,
					VictimID:  ev.VictimID,
				})
			case model.EventEliteMonsterKill, model.EventObjectiveTaken:
				events = append(events, model.GameEvent{
					Timestamp:      ev.Timestamp,
					Type:           ev.Type,
					Position:       pointPtr(ev.Position),
					KillerID:       ev.KillerID,
					TeamID:         ev.TeamID,
					MonsterType:    ev.MonsterType,
					MonsterSubType: ev.MonsterSubType,
				})
			case model.EventBuildingKill:
				events = append(events, model.GameEvent{
					Timestamp:    ev.Timestamp,
					Type:         ev.Type,
					Position:     pointPtr(ev.Position),
					KillerID:     ev.KillerID,
					TeamID:       ev.TeamID,
					BuildingType: ev.BuildingType,
					LaneType:     ev.LaneType,
					TowerType:    ev.TowerType,
				})
			case model.EventWardPlaced, model.EventWardKill:
				w := model.WardEvent{
					Timestamp: ev.Timestamp,
					Type:      ev.Type,
					WardType:  ev.WardType,
					Owner:     ev.CreatorID,
				}
				if w.Owner == 0 {
					w.Owner = ev.KillerID // WARD_KILL carries killerId, not creatorId
				}
				if ev.Position != nil {
					w.Position = model.Position{X: float64(ev.Position.X), Y: float64(ev.Position.Y)}
				}
				wards = append(wards, w)
			default:
				// Unsupported kinds are dropped: pathing reconstruction is
				// the primary value, events are auxiliary.
			}
		}
	}

	// Input frame order is not trusted; the canonical list is sorted.
	sortEvents(events)

	var duration int64
	if match != nil && match.Info.GameDuration > 0 {
		duration = match.Info.GameDuration * 1000
	} else {
		duration = tl.Info.FrameInterval * int64(len(tl.Info.Frames))
	}
	// The detail payload reports whole seconds, so end-of-game events can
	// land a few hundred ms past it. Every event must stay reachable by an
	// in-range query, so the duration covers the latest observed timestamp.
	if lastTimestamp > duration {
		duration = lastTimestamp
	}

	replay := &model.ProcessedReplay{
		MatchID:         matchID,
		GameDuration:    duration,
		Participants:    participants,
		ChampionPathing: pathing,
		GameEvents:      events,
		ObjectiveTimers: ObjectiveTimers(events),
		WardEvents:      wards,
	}
	if match != nil {
		replay.Teams = teamsFromDetail(match.Info.Teams)
	}
	return replay, nil
}

func teamsFromDetail(teams []riot.MatchTeam) []model.TeamResult {
	out := make([]model.TeamResult, 0, len(teams))
	for _, t := range teams {
		tr := model.TeamResult{
			TeamID:     t.TeamID,
			Win:        t.Win,
			Objectives: make(map[string]int, len(t.Objectives)),
		}
		for kind, obj := range t.Objectives {
			tr.Objectives[kind] = obj.Kills
		}
		out = append(out, tr)
	}
	return out
}

// ObjectiveTimers derives next-spawn timestamps for contested objectives
// from monster-kill events. The scan takes the maximum kill timestamp per
// kind — not the last seen — so it is correct on unsorted input. Objectives
// never killed are absent from the result; an event-free match yields nil.
func ObjectiveTimers(events []model.GameEvent) map[string]int64 {
	var lastDragon, lastBaron int64
	for _, ev := range events {
		if ev.Type != model.EventEliteMonsterKill && ev.Type != model.EventObjectiveTaken {
			continue
		}
		switch ev.MonsterType {
		case model.MonsterDragon:
			if ev.Timestamp > lastDragon {
				lastDragon = ev.Timestamp
			}
		case model.MonsterBaron:
			if ev.Timestamp > lastBaron {
				lastBaron = ev.Timestamp
			}
		}
	}

	timers := make(map[string]int64)
	if lastDragon > 0 {
		timers[model.MonsterDragon] = lastDragon + model.DragonRespawnMs
	}
	if lastBaron > 0 {
		timers[model.MonsterBaron] = lastBaron + model.BaronRespawnMs
	}
	if len(timers) == 0 {
		return nil
	}
	return timers
}

func sortEvents(events []model.GameEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp < events[j].Timestamp
	})
}

func pointPtr(p *riot.Point) *model.Position {
	if p == nil {
		return nil
	}
	return &model.Position{X: float64(p.X), Y: float64(p.Y)}
}
