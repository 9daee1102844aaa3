package metrics

import "github.com/NickyVHDP/pokertracker/internal/model"

// CurrentStreak walks backward from the most recent session and counts
// consecutive sessions sharing its win/loss sign, stopping at the first
// sign change. Sessions must be in chronological order (oldest first).
// An empty set yields {win, 0}.
//
// This is deliberately a separate pass from LongestStreaks: the two scans
// have different directions and different stopping rules.
func CurrentStreak(sessions []*model.Session) model.Streak {
	if len(sessions) == 0 {
		return model.Streak{Type: model.StreakWin, Count: 0}
	}

	last := sessions[len(sessions)-1]
	streak := model.Streak{Type: model.StreakLoss, Count: 0}
	if IsWin(last.Profit) {
		streak.Type = model.StreakWin
	}

	for i := len(sessions) - 1; i >= 0; i-- {
		win := IsWin(sessions[i].Profit)
		if (streak.Type == model.StreakWin) != win {
			break
		}
		streak.Count++
	}

	return streak
}

// LongestStreaks scans the full session set in chronological order and
// returns the maximum run lengths of consecutive wins and consecutive
// losses. Sessions must be in chronological order (oldest first).
func LongestStreaks(sessions []*model.Session) (longestWin, longestLoss int) {
	var winRun, lossRun int
	for _, s := range sessions {
		if IsWin(s.Profit) {
			winRun++
			lossRun = 0
			if winRun > longestWin {
				longestWin = winRun
			}
		} else {
			lossRun++
			winRun = 0
			if lossRun > longestLoss {
				longestLoss = lossRun
			}
		}
	}
	return longestWin, longestLoss
}
