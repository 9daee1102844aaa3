package metrics

import "github.com/NickyVHDP/pokertracker/internal/model"

// Compute aggregates statistics over a session set. The slice must already
// be restricted to the requested date range and sorted chronologically
// (oldest first); the store's SessionsInRange provides exactly that.
//
// An empty set yields all zeros and a {win, 0} current streak. BiggestWin
// and BiggestLoss are also zero for an empty set, which conflates "no
// sessions" with "break-even"; that is long-standing behavior callers
// depend on.
func Compute(sessions []*model.Session) *model.Stats {
	stats := &model.Stats{
		TotalSessions: len(sessions),
		CurrentStreak: CurrentStreak(sessions),
	}

	var wins int
	for i, s := range sessions {
		stats.TotalHours += s.Hours
		stats.NetProfit += s.Profit
		if IsWin(s.Profit) {
			wins++
		}
		if i == 0 || s.Profit > stats.BiggestWin {
			stats.BiggestWin = s.Profit
		}
		if i == 0 || s.Profit < stats.BiggestLoss {
			stats.BiggestLoss = s.Profit
		}
	}

	if stats.TotalSessions > 0 {
		stats.WinRate = float64(wins) / float64(stats.TotalSessions) * 100
	}
	stats.HourlyRate = HourlyRate(stats.NetProfit, stats.TotalHours)
	stats.LongestWinStreak, stats.LongestLossStreak = LongestStreaks(sessions)

	return stats
}
