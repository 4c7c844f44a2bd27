// Package gamestate answers point-in-time queries over a canonical replay:
// where every champion was, what happened nearby in time, and which
// objectives each team held at a given timestamp.
package gamestate

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/riftscope/go-lol-replay/internal/model"
)

// RecentEventWindowMs is the half-width of the recent-events window in ms.
// The window is symmetric around the query time: when scrubbing a recorded
// timeline, surfacing near-future events is as useful as recent past ones.
const RecentEventWindowMs = 30_000

// RangeError reports a query timestamp outside [0, game_duration]. An
// out-of-range query is meaningless, so it is rejected rather than clamped.
type RangeError struct {
	At       int64
	Duration int64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("gamestate: timestamp %dms outside [0, %dms]", e.At, e.Duration)
}

// At reconstructs the state of the game at timestamp t (milliseconds).
//
// It is a pure function of (replay, t): repeated calls yield identical
// snapshots and the replay is never mutated. Participants without position
// data are omitted from champion states rather than failing the query.
func At(replay *model.ProcessedReplay, t int64) (*model.GameStateSnapshot, error) {
	if replay == nil {
		return nil, errors.New("gamestate: nil replay")
	}
	if t < 0 || t > replay.GameDuration {
		return nil, &RangeError{At: t, Duration: replay.GameDuration}
	}

	snap := &model.GameStateSnapshot{
		Timestamp:      t,
		ChampionStates: make(map[string]model.ChampionState),
		TeamObjectives: map[string][]string{
			strconv.Itoa(model.TeamBlue): {},
			strconv.Itoa(model.TeamRed):  {},
		},
	}

	for _, p := range replay.Participants {
		samples := replay.ChampionPathing[p.PUUID]
		if len(samples) == 0 {
			continue
		}
		snap.ChampionStates[p.PUUID] = model.ChampionState{
			Position: nearestSample(samples, t),
			Level:    1,
			Items:    []int{},
		}
	}

	// Stored order is not trusted for either scan; work on a sorted copy.
	events := append([]model.GameEvent(nil), replay.GameEvents...)
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp < events[j].Timestamp
	})

	snap.RecentEvents = recentEvents(events, t)

	for _, ev := range events {
		if ev.Timestamp > t {
			break
		}
		if !ev.IsObjective() {
			continue
		}
		key := strconv.Itoa(ev.TeamID)
		if _, ok := snap.TeamObjectives[key]; !ok {
			continue
		}
		snap.TeamObjectives[key] = append(snap.TeamObjectives[key], ev.ObjectiveKind())
	}

	return snap, nil
}

// nearestSample returns the position of the sample closest in time to t.
// On an exact distance tie the earlier sample wins.
func nearestSample(samples []model.PositionData, t int64) model.Position {
	best := samples[0]
	bestDist := absDelta(best.Timestamp, t)
	for _, s := range samples[1:] {
		d := absDelta(s.Timestamp, t)
		if d < bestDist || (d == bestDist && s.Timestamp < best.Timestamp) {
			best, bestDist = s, d
		}
	}
	return best.Position
}

// recentEvents returns events inside the inclusive window [t-w, t+w],
// preserving chronological order.
func recentEvents(sorted []model.GameEvent, t int64) []model.GameEvent {
	out := []model.GameEvent{}
	for _, ev := range sorted {
		if ev.Timestamp < t-RecentEventWindowMs {
			continue
		}
		if ev.Timestamp > t+RecentEventWindowMs {
			break
		}
		out = append(out, ev)
	}
	return out
}

func absDelta(a, b int64) int64 {
	if a > b {
		return a - b
	}
	return b - a
}
