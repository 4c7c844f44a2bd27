// Package suggest generates rule-based improvement suggestions for one
// match, judged against the player's recent history. Rules are deterministic:
// the same inputs always produce the same suggestions, in the same order.
package suggest

import (
	"fmt"

	"github.com/riftscope/go-lol-replay/internal/model"
)

// Rule thresholds. History-relative rules fire when the current match is
// meaningfully worse than the player's recent average, absolute rules when
// a stat falls below a commonly coached floor.
const (
	deathsWorseFactor = 1.3 // deaths > 1.3x recent average
	minDeathsToFlag   = 5
	kdaWorseFactor    = 0.7  // KDA < 0.7x recent average
	minCSPerMinute    = 5.0  // non-support farming floor
	minVisionPerMin   = 0.75 // vision score per minute floor
)

// ForMatch returns suggestions for the current match. History may be empty,
// in which case only absolute rules apply. gameDuration is in milliseconds.
func ForMatch(current model.ParticipantStats, history []model.ParticipantStats, gameDuration int64) []string {
	var out []string
	minutes := float64(gameDuration) / 60_000
	if minutes <= 0 {
		minutes = 1
	}

	if len(history) > 0 {
		avgDeaths, avgKDA := historyAverages(history)

		if float64(current.Deaths) > avgDeaths*deathsWorseFactor && current.Deaths >= minDeathsToFlag {
			out = append(out, fmt.Sprintf(
				"You died %d times against a recent average of %.1f. Play further back in losing matchups and track the enemy jungler before committing.",
				current.Deaths, avgDeaths))
		}
		if avgKDA > 0 && current.KDA() < avgKDA*kdaWorseFactor {
			out = append(out, fmt.Sprintf(
				"Your KDA of %.1f is well below your recent %.1f. Look for picks with teammates instead of isolated trades.",
				current.KDA(), avgKDA))
		}
	}

	isSupport := current.Position == "UTILITY"
	if !isSupport {
		csPerMin := float64(current.CS()) / minutes
		if csPerMin < minCSPerMinute {
			out = append(out, fmt.Sprintf(
				"You averaged %.1f CS per minute. Aim for at least %.0f by catching waves between fights and using resets to clear side lanes.",
				csPerMin, minCSPerMinute))
		}
	}

	visionPerMin := float64(current.VisionScore) / minutes
	if visionPerMin < minVisionPerMin {
		out = append(out, fmt.Sprintf(
			"Vision score of %d over %.0f minutes is low. Buy control wards on every back and cover the river before objectives spawn.",
			current.VisionScore, minutes))
	}

	if len(out) == 0 {
		if current.Win {
			out = append(out, "Solid game. Keep the same pace on farming and vision, and review the one or two deaths that were avoidable.")
		} else {
			out = append(out, "Your individual numbers held up. Review the lost objectives around dragon and baron timers for the next game.")
		}
	}
	return out
}

func historyAverages(history []model.ParticipantStats) (avgDeaths, avgKDA float64) {
	for _, h := range history {
		avgDeaths += float64(h.Deaths)
		avgKDA += h.KDA()
	}
	n := float64(len(history))
	return avgDeaths / n, avgKDA / n
}
