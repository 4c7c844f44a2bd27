package normalizer

import (
	"errors"
	"testing"

	"github.com/riftscope/go-lol-replay/internal/model"
	"github.com/riftscope/go-lol-replay/internal/riot"
)

func makeTimeline() *riot.Timeline {
	return &riot.Timeline{
		Metadata: riot.MatchMetadata{
			MatchID:      "NA1_1000",
			Participants: []string{"puuid-1", "puuid-2"},
		},
		Info: riot.TimelineInfo{
			FrameInterval: 60_000,
			Frames: []riot.TimelineFrame{
				{
					Timestamp: 0,
					ParticipantFrames: map[string]riot.ParticipantFrame{
						"1": {ParticipantID: 1, Position: riot.Point{X: 500, Y: 500}},
						"2": {ParticipantID: 2, Position: riot.Point{X: 14000, Y: 14000}},
					},
				},
				{
					Timestamp: 60_000,
					ParticipantFrames: map[string]riot.ParticipantFrame{
						"1": {ParticipantID: 1, Position: riot.Point{X: 1000, Y: 1200}},
					},
					Events: []riot.TimelineEvent{
						{Type: "ITEM_PURCHASED", Timestamp: 30_000, ParticipantID: 1},
						{Type: model.EventChampionKill, Timestamp: 45_000, KillerID: 1, VictimID: 2,
							Position: &riot.Point{X: 800, Y: 900}},
						{Type: model.EventEliteMonsterKill, Timestamp: 40_000, KillerID: 2,
							TeamID: model.TeamRed, MonsterType: "DRAGON", MonsterSubType: "AIR_DRAGON"},
					},
				},
			},
		},
	}
}

func makeMatchDetail() *riot.Match {
	return &riot.Match{
		Info: riot.MatchInfo{
			GameDuration: 1800, // seconds
			Participants: []riot.MatchParticipant{
				{PUUID: "puuid-1", RiotIDGameName: "Alice", ChampionID: 266, TeamID: model.TeamBlue},
				{PUUID: "puuid-2", SummonerName: "Bob", ChampionID: 103, TeamID: model.TeamRed},
			},
			Teams: []riot.MatchTeam{
				{TeamID: model.TeamBlue, Win: true, Objectives: map[string]riot.TeamObjective{
					"dragon": {First: true, Kills: 3},
				}},
				{TeamID: model.TeamRed, Win: false},
			},
		},
	}
}

func TestFromTimeline(t *testing.T) {
	replay, err := FromTimeline("NA1_1000", makeTimeline(), makeMatchDetail())
	if err != nil {
		t.Fatalf("FromTimeline: %v", err)
	}

	if replay.MatchID != "NA1_1000" {
		t.Errorf("match id: got %q", replay.MatchID)
	}
	if replay.GameDuration != 1_800_000 {
		t.Errorf("duration: want 1800000ms from match detail, got %d", replay.GameDuration)
	}

	if len(replay.Participants) != 2 {
		t.Fatalf("participants: want 2, got %d", len(replay.Participants))
	}
	p := replay.Participants[0]
	if p.PUUID != "puuid-1" || p.SummonerName != "Alice" || p.ChampionID != 266 || p.TeamID != model.TeamBlue {
		t.Errorf("roster not enriched from match detail: %+v", p)
	}

	// Pathing is keyed by puuid, resolved through the metadata order.
	if got := len(replay.ChampionPathing["puuid-1"]); got != 2 {
		t.Errorf("puuid-1 samples: want 2, got %d", got)
	}
	if got := len(replay.ChampionPathing["puuid-2"]); got != 1 {
		t.Errorf("puuid-2 samples: want 1, got %d", got)
	}
	if x := replay.ChampionPathing["puuid-1"][1].Position.X; x != 1000 {
		t.Errorf("second sample x: want 1000, got %.0f", x)
	}

	// The item purchase is dropped; the kept events come out sorted.
	if len(replay.GameEvents) != 2 {
		t.Fatalf("events: want 2, got %d", len(replay.GameEvents))
	}
	if replay.GameEvents[0].Type != model.EventEliteMonsterKill {
		t.Errorf("events not sorted by timestamp: first is %s", replay.GameEvents[0].Type)
	}
	kill := replay.GameEvents[1]
	if kill.KillerID != 1 || kill.VictimID != 2 || kill.Position == nil || kill.Position.X != 800 {
		t.Errorf("champion kill fields lost: %+v", kill)
	}

	if len(replay.Teams) != 2 || !replay.Teams[0].Win || replay.Teams[0].Objectives["dragon"] != 3 {
		t.Errorf("team results not carried: %+v", replay.Teams)
	}
}

func TestFromTimeline_NoMatchDetail(t *testing.T) {
	replay, err := FromTimeline("NA1_1000", makeTimeline(), nil)
	if err != nil {
		t.Fatalf("FromTimeline: %v", err)
	}

	// Duration falls back to frameInterval × frame count.
	if replay.GameDuration != 120_000 {
		t.Errorf("fallback duration: want 120000, got %d", replay.GameDuration)
	}
	for _, p := range replay.Participants {
		if p.SummonerName != "Unknown" || p.ChampionID != 0 || p.TeamID != 0 {
			t.Errorf("expected placeholder roster fields, got %+v", p)
		}
	}
	if replay.Teams != nil {
		t.Errorf("expected no team results without match detail, got %+v", replay.Teams)
	}
}

func TestFromTimeline_BadInput(t *testing.T) {
	if _, err := FromTimeline("NA1_1000", nil, nil); err == nil {
		t.Error("nil timeline should fail")
	}

	empty := makeTimeline()
	empty.Metadata.Participants = nil
	_, err := FromTimeline("NA1_1000", empty, nil)
	var ee *ExtractError
	if !errors.As(err, &ee) {
		t.Fatalf("expected *ExtractError for empty roster, got %v", err)
	}
	if ee.Group != "metadata.participants" {
		t.Errorf("wrong group: %q", ee.Group)
	}
}

func TestFromTimeline_WardEvents(t *testing.T) {
	tl := makeTimeline()
	tl.Info.Frames[1].Events = append(tl.Info.Frames[1].Events,
		riot.TimelineEvent{Type: model.EventWardPlaced, Timestamp: 50_000, CreatorID: 3, WardType: "YELLOW_TRINKET"},
		riot.TimelineEvent{Type: model.EventWardKill, Timestamp: 55_000, KillerID: 7, WardType: "YELLOW_TRINKET"},
	)

	replay, err := FromTimeline("NA1_1000", tl, nil)
	if err != nil {
		t.Fatalf("FromTimeline: %v", err)
	}
	if len(replay.WardEvents) != 2 {
		t.Fatalf("ward events: want 2, got %d", len(replay.WardEvents))
	}
	if replay.WardEvents[0].Owner != 3 {
		t.Errorf("ward placement owner: want creator 3, got %d", replay.WardEvents[0].Owner)
	}
	if replay.WardEvents[1].Owner != 7 {
		t.Errorf("ward kill owner: want killer 7, got %d", replay.WardEvents[1].Owner)
	}
}

func TestFromTimeline_DurationCoversLateEvents(t *testing.T) {
	// The detail payload reports 1800s, but the final frame carries a
	// monster kill a few hundred ms past it.
	tl := makeTimeline()
	tl.Info.Frames = append(tl.Info.Frames, riot.TimelineFrame{
		Timestamp: 1_800_000,
		Events: []riot.TimelineEvent{
			{Type: model.EventEliteMonsterKill, Timestamp: 1_800_400,
				TeamID: model.TeamBlue, MonsterType: model.MonsterDragon},
		},
	})

	replay, err := FromTimeline("NA1_1000", tl, makeMatchDetail())
	if err != nil {
		t.Fatalf("FromTimeline: %v", err)
	}
	if replay.GameDuration != 1_800_400 {
		t.Errorf("duration should cover the last event, got %d", replay.GameDuration)
	}
	for _, ev := range replay.GameEvents {
		if ev.Timestamp > replay.GameDuration {
			t.Errorf("event at %d exceeds game duration %d", ev.Timestamp, replay.GameDuration)
		}
	}
}

func TestFromTimeline_NoWardEventsIsEmptySlice(t *testing.T) {
	replay, err := FromTimeline("NA1_1000", makeTimeline(), nil)
	if err != nil {
		t.Fatalf("FromTimeline: %v", err)
	}
	if replay.WardEvents == nil || len(replay.WardEvents) != 0 {
		t.Errorf("ward-free timeline should yield an empty collection, got %#v", replay.WardEvents)
	}
}

func TestObjectiveTimers_MaxNotLastSeen(t *testing.T) {
	// Unsorted input: the later dragon kill appears first. The timer must
	// come from the maximum timestamp, not the last entry scanned.
	events := []model.GameEvent{
		{Timestamp: 500_000, Type: model.EventEliteMonsterKill, MonsterType: model.MonsterDragon},
		{Timestamp: 300_000, Type: model.EventEliteMonsterKill, MonsterType: model.MonsterDragon},
		{Timestamp: 1_200_000, Type: model.EventEliteMonsterKill, MonsterType: model.MonsterBaron},
	}

	timers := ObjectiveTimers(events)
	if got := timers[model.MonsterDragon]; got != 500_000+model.DragonRespawnMs {
		t.Errorf("dragon timer: want %d, got %d", 500_000+model.DragonRespawnMs, got)
	}
	if got := timers[model.MonsterBaron]; got != 1_200_000+model.BaronRespawnMs {
		t.Errorf("baron timer: want %d, got %d", 1_200_000+model.BaronRespawnMs, got)
	}
}

func TestObjectiveTimers_Empty(t *testing.T) {
	if timers := ObjectiveTimers(nil); timers != nil {
		t.Errorf("no events should yield nil timers, got %v", timers)
	}
	events := []model.GameEvent{
		{Timestamp: 100, Type: model.EventChampionKill},
	}
	if timers := ObjectiveTimers(events); timers != nil {
		t.Errorf("no monster kills should yield nil timers, got %v", timers)
	}
}
