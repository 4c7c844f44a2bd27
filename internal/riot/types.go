package riot

// Account is the response from the account-v1 by-riot-id endpoint.
type Account struct {
	PUUID    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// Match is the subset of a match-v5 detail payload we consume.
type Match struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

// MatchMetadata is shared by the detail and timeline payloads. The
// participants list is ordered: index i corresponds to participantId i+1
// in frames and events.
type MatchMetadata struct {
	MatchID      string   `json:"matchId"`
	Participants []string `json:"participants"`
}

type MatchInfo struct {
	GameCreation int64              `json:"gameCreation"` // unix ms
	GameDuration int64              `json:"gameDuration"` // seconds
	GameMode     string             `json:"gameMode"`
	GameVersion  string             `json:"gameVersion"`
	QueueID      int                `json:"queueId"`
	Participants []MatchParticipant `json:"participants"`
	Teams        []MatchTeam        `json:"teams"`
}

type MatchParticipant struct {
	PUUID          string `json:"puuid"`
	SummonerName   string `json:"summonerName"`
	RiotIDGameName string `json:"riotIdGameName"`
	ChampionID     int    `json:"championId"`
	ChampionName   string `json:"championName"`
	TeamID         int    `json:"teamId"`
	TeamPosition   string `json:"teamPosition"`
	Win            bool   `json:"win"`

	Kills   int `json:"kills"`
	Deaths  int `json:"deaths"`
	Assists int `json:"assists"`

	GoldEarned                  int `json:"goldEarned"`
	TotalMinionsKilled          int `json:"totalMinionsKilled"`
	NeutralMinionsKilled        int `json:"neutralMinionsKilled"`
	TotalDamageDealtToChampions int `json:"totalDamageDealtToChampions"`
	TotalDamageTaken            int `json:"totalDamageTaken"`
	VisionScore                 int `json:"visionScore"`
	TimeCCingOthers             int `json:"timeCCingOthers"`
}

// Name returns the display name, preferring the riot-id game name over the
// legacy summoner name (empty on newer payloads).
func (p *MatchParticipant) Name() string {
	if p.RiotIDGameName != "" {
		return p.RiotIDGameName
	}
	return p.SummonerName
}

type MatchTeam struct {
	TeamID     int                      `json:"teamId"`
	Win        bool                     `json:"win"`
	Objectives map[string]TeamObjective `json:"objectives"`
}

type TeamObjective struct {
	First bool `json:"first"`
	Kills int  `json:"kills"`
}

// Timeline is the match-v5 timeline payload: fixed-interval frames of
// per-participant snapshots plus the events that fell inside each interval.
type Timeline struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     TimelineInfo  `json:"info"`
}

type TimelineInfo struct {
	FrameInterval int64           `json:"frameInterval"` // ms
	Frames        []TimelineFrame `json:"frames"`
}

// TimelineFrame's participantFrames map is keyed by participant id as a
// string ("1".."10"); participants with no updates in the interval may be
// absent.
type TimelineFrame struct {
	Timestamp         int64                       `json:"timestamp"`
	ParticipantFrames map[string]ParticipantFrame `json:"participantFrames"`
	Events            []TimelineEvent             `json:"events"`
}

type ParticipantFrame struct {
	ParticipantID       int   `json:"participantId"`
	Position            Point `json:"position"`
	CurrentGold         int   `json:"currentGold"`
	TotalGold           int   `json:"totalGold"`
	Level               int   `json:"level"`
	XP                  int   `json:"xp"`
	MinionsKilled       int   `json:"minionsKilled"`
	JungleMinionsKilled int   `json:"jungleMinionsKilled"`
}

// Point is a map-space coordinate pair as the provider emits it.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// TimelineEvent is one discrete event attached to a frame. Fields beyond
// type and timestamp are populated per event kind.
type TimelineEvent struct {
	Type           string `json:"type"`
	Timestamp      int64  `json:"timestamp"`
	KillerID       int    `json:"killerId"`
	VictimID       int    `json:"victimId"`
	ParticipantID  int    `json:"participantId"`
	CreatorID      int    `json:"creatorId"`
	TeamID         int    `json:"teamId"`
	Position       *Point `json:"position,omitempty"`
	MonsterType    string `json:"monsterType"`
	MonsterSubType string `json:"monsterSubType"`
	BuildingType   string `json:"buildingType"`
	LaneType       string `json:"laneType"`
	TowerType      string `json:"towerType"`
	WardType       string `json:"wardType"`
}
