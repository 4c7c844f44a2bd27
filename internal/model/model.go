package model

import "time"

// Canonical team identifiers used by the match provider.
const (
	TeamBlue = 100
	TeamRed  = 200
)

// Position is a point in provider map-space coordinates.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PositionData is one sampled position for a participant.
type PositionData struct {
	Timestamp int64    `json:"timestamp"`
	Position  Position `json:"position"`
}

// Participant is one roster entry, created once during normalization.
type Participant struct {
	PUUID        string `json:"puuid"`
	ChampionID   int    `json:"champion_id"`
	TeamID       int    `json:"team_id"`
	SummonerName string `json:"summoner_name"`
}

// ---- Game events ----

// Event types carried into the canonical replay. Anything else the provider
// emits (item purchases, skill level-ups, ...) is dropped during normalization.
const (
	EventChampionKill     = "CHAMPION_KILL"
	EventObjectiveTaken   = "OBJECTIVE_TAKEN"
	EventEliteMonsterKill = "ELITE_MONSTER_KILL"
	EventBuildingKill     = "BUILDING_KILL"
)

// GameEvent is one entry in the flat chronological event list. Only the
// fields relevant to the event's type are populated.
type GameEvent struct {
	Timestamp      int64     `json:"timestamp"`
	Type           string    `json:"type"`
	Position       *Position `json:"position,omitempty"`
	KillerID       int       `json:"killer_id,omitempty"`
	VictimID       int       `json:"victim_id,omitempty"`
	ParticipantID  int       `json:"participant_id,omitempty"`
	TeamID         int       `json:"team_id,omitempty"`
	BuildingType   string    `json:"building_type,omitempty"`
	LaneType       string    `json:"lane_type,omitempty"`
	TowerType      string    `json:"tower_type,omitempty"`
	MonsterType    string    `json:"monster_type,omitempty"`
	MonsterSubType string    `json:"monster_sub_type,omitempty"`
}

// IsObjective reports whether the event counts toward a team's objective tally.
func (e *GameEvent) IsObjective() bool {
	switch e.Type {
	case EventObjectiveTaken, EventEliteMonsterKill, EventBuildingKill:
		return true
	}
	return false
}

// ObjectiveKind returns the label appended to a team's objective list,
// or "Unknown" for objective events with no recognizable subtype.
func (e *GameEvent) ObjectiveKind() string {
	if e.MonsterType != "" {
		return e.MonsterType
	}
	if e.BuildingType != "" {
		return e.BuildingType
	}
	return "Unknown"
}

// Ward event types.
const (
	EventWardPlaced = "WARD_PLACED"
	EventWardKill   = "WARD_KILL"
)

// WardEvent is a ward placement or removal, kept separate from the generic
// event list.
type WardEvent struct {
	Timestamp int64    `json:"timestamp"`
	Type      string   `json:"type"`
	Position  Position `json:"position"`
	WardType  string   `json:"ward_type"`
	Duration  int64    `json:"duration"`
	Owner     int      `json:"owner"`
}

// TeamResult holds per-team final results. Sources that do not expose
// authoritative results leave this at its zero state rather than failing.
type TeamResult struct {
	TeamID     int            `json:"team_id"`
	Win        bool           `json:"win"`
	Objectives map[string]int `json:"objectives"`
}

// Objective kinds tracked by the respawn-timer scan.
const (
	MonsterDragon = "DRAGON"
	MonsterBaron  = "BARON_NASHOR"
)

// Respawn intervals in milliseconds.
const (
	DragonRespawnMs = 5 * 60 * 1000
	BaronRespawnMs  = 6 * 60 * 1000
)

// ProcessedReplay is the canonical, format-independent representation of one
// match. Immutable once saved; re-processing replaces the whole record.
type ProcessedReplay struct {
	MatchID         string                    `json:"match_id"`
	GameDuration    int64                     `json:"game_duration"` // ms
	Participants    []Participant             `json:"participants"`
	ChampionPathing map[string][]PositionData `json:"champion_pathing"`
	GameEvents      []GameEvent               `json:"game_events"`
	ObjectiveTimers map[string]int64          `json:"objective_timers,omitempty"`
	WardEvents      []WardEvent               `json:"ward_events,omitempty"`
	Teams           []TeamResult              `json:"teams,omitempty"`
}

// ---- Point-in-time query results (never persisted) ----

// KDA is a kill/death/assist triple.
type KDA struct {
	Kills   int `json:"kills"`
	Deaths  int `json:"deaths"`
	Assists int `json:"assists"`
}

// ChampionState is one participant's reconstructed state at a query time.
// Position is the only time-resolved field: the canonical event stream
// carries no timestamped gold/CS/XP deltas, so gold, CS, level, KDA and
// items stay at their start-of-game values.
type ChampionState struct {
	Position Position `json:"position"`
	Gold     int      `json:"current_gold"`
	CS       int      `json:"current_cs"`
	Level    int      `json:"current_level"`
	KDA      KDA      `json:"kda"`
	Items    []int    `json:"current_items"`
}

// GameStateSnapshot is the answer to "what did the game look like at T".
// Built fresh per query; never cached or persisted.
type GameStateSnapshot struct {
	Timestamp      int64                    `json:"timestamp"`
	ChampionStates map[string]ChampionState `json:"champion_states"`
	RecentEvents   []GameEvent              `json:"recent_events"`
	TeamObjectives map[string][]string      `json:"team_objectives"`
}

// ReplayInfo is a lightweight record for listing stored replays.
type ReplayInfo struct {
	MatchID      string
	GameDuration int64
	Participants int
	StoredAt     time.Time
}

// ---- Rollup statistics (from match detail payloads, not timelines) ----

// MatchSummary is one stored match's metadata row.
type MatchSummary struct {
	MatchID      string
	GameMode     string
	GameVersion  string
	GameDuration int64 // ms
	MatchDate    string
	QueueID      int
}

// ParticipantStats is one participant's final line from a match detail payload.
type ParticipantStats struct {
	MatchID       string
	PUUID         string
	SummonerName  string
	ChampionID    int
	ChampionName  string
	TeamID        int
	Position      string
	Win           bool
	Kills         int
	Deaths        int
	Assists       int
	GoldEarned    int
	MinionsKilled int
	NeutralKilled int
	DamageDealt   int // to champions
	DamageTaken   int
	VisionScore   int
	TimeCCing     int
}

// KDA returns (kills+assists)/deaths, or kills+assists for a deathless match.
func (s *ParticipantStats) KDA() float64 {
	if s.Deaths == 0 {
		return float64(s.Kills + s.Assists)
	}
	return float64(s.Kills+s.Assists) / float64(s.Deaths)
}

// CS returns lane plus jungle minions killed.
func (s *ParticipantStats) CS() int {
	return s.MinionsKilled + s.NeutralKilled
}

// PlayerAggregate holds one player's stats summed across all stored matches.
type PlayerAggregate struct {
	PUUID   string
	Name    string
	Matches int
	Wins    int

	Kills, Deaths, Assists int
	GoldEarned             int
	DamageDealt            int
	DamageTaken            int
	VisionScore            int
}

func (a *PlayerAggregate) Losses() int {
	return a.Matches - a.Wins
}

func (a *PlayerAggregate) WinRate() float64 {
	if a.Matches == 0 {
		return 0
	}
	return float64(a.Wins) / float64(a.Matches) * 100
}

func (a *PlayerAggregate) KDA() float64 {
	if a.Deaths == 0 {
		return float64(a.Kills + a.Assists)
	}
	return float64(a.Kills+a.Assists) / float64(a.Deaths)
}

// ChampionAggregate holds one player's stats on a single champion.
type ChampionAggregate struct {
	PUUID        string
	ChampionName string
	Games        int
	Wins         int

	Kills, Deaths, Assists int
	GoldEarned             int
	DamageDealt            int
}

func (a *ChampionAggregate) WinRate() float64 {
	if a.Games == 0 {
		return 0
	}
	return float64(a.Wins) / float64(a.Games) * 100
}

func (a *ChampionAggregate) KDA() float64 {
	if a.Deaths == 0 {
		return float64(a.Kills + a.Assists)
	}
	return float64(a.Kills+a.Assists) / float64(a.Deaths)
}

func (a *ChampionAggregate) AvgKills() float64 {
	if a.Games == 0 {
		return 0
	}
	return float64(a.Kills) / float64(a.Games)
}

func (a *ChampionAggregate) AvgDeaths() float64 {
	if a.Games == 0 {
		return 0
	}
	return float64(a.Deaths) / float64(a.Games)
}

func (a *ChampionAggregate) AvgAssists() float64 {
	if a.Games == 0 {
		return 0
	}
	return float64(a.Assists) / float64(a.Games)
}

// PositionAggregate holds one player's games and wins in a single role.
type PositionAggregate struct {
	PUUID    string
	Position string
	Games    int
	Wins     int
}

func (a *PositionAggregate) WinRate() float64 {
	if a.Games == 0 {
		return 0
	}
	return float64(a.Wins) / float64(a.Games) * 100
}
