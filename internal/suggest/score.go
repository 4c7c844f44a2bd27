package suggest

import "github.com/riftscope/go-lol-replay/internal/model"

// Score component caps on the 0-100 scale, plus penalty thresholds. The
// stored rows carry no per-player objective counts, so the scale is spread
// across KDA, farming, vision and damage.
const (
	kdaScoreCap    = 35.0 // kda * 10
	csScoreCap     = 25.0 // cs/min * 3
	visionScoreCap = 20.0 // vision score * 0.5
	damageScoreCap = 20.0 // damage to champions / 1000

	deathPenaltyFloor  = 5 // each death past this costs 2 points
	visionPenaltyFloor = 10.0
)

// Score rates one match's line on a 0-100 scale. Deterministic: the same
// stats always produce the same score. gameDuration is in milliseconds.
func Score(s model.ParticipantStats, gameDuration int64) float64 {
	minutes := float64(gameDuration) / 60_000
	if minutes <= 0 {
		minutes = 1
	}

	score := capped(s.KDA()*10, kdaScoreCap) +
		capped(float64(s.CS())/minutes*3, csScoreCap) +
		capped(float64(s.VisionScore)*0.5, visionScoreCap) +
		capped(float64(s.DamageDealt)/1000, damageScoreCap)

	if s.Deaths > deathPenaltyFloor {
		score -= float64(s.Deaths-deathPenaltyFloor) * 2
	}
	if float64(s.VisionScore) < visionPenaltyFloor {
		score -= 5
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// ScoreAnalysis returns a one-paragraph reading of a score, with extra
// sentences for the weakest fundamentals.
func ScoreAnalysis(score float64, s model.ParticipantStats, gameDuration int64) string {
	minutes := float64(gameDuration) / 60_000
	if minutes <= 0 {
		minutes = 1
	}

	var analysis string
	switch {
	case score >= 80:
		analysis = "Exceptional performance. You dominated the game with excellent mechanics and decision-making."
	case score >= 60:
		analysis = "Good performance. You made positive contributions to the team's success."
	case score >= 40:
		analysis = "Average performance. There's room for improvement in several areas."
	default:
		analysis = "Below average performance. Focus on improving your fundamentals and decision-making."
	}

	if s.KDA() < 2 {
		analysis += " Your KDA suggests you need to work on survival and positioning."
	}
	if s.VisionScore < 20 {
		analysis += " Vision control needs improvement - focus on warding and clearing enemy vision."
	}
	if float64(s.CS())/minutes < 5 {
		analysis += " Your CS per minute is low - practice last hitting and wave management."
	}
	return analysis
}

func capped(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	return v
}
