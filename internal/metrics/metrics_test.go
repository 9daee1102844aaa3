package metrics

import (
	"testing"
	"time"

	"github.com/NickyVHDP/pokertracker/internal/model"
)

// sessionsWithProfits builds a chronological session slice with the given
// profits, one session per day.
func sessionsWithProfits(profits ...float64) []*model.Session {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sessions := make([]*model.Session, len(profits))
	for i, p := range profits {
		sessions[i] = &model.Session{
			Profit: p,
			Hours:  2,
			Date:   base.AddDate(0, 0, i),
		}
	}
	return sessions
}

func TestProfit(t *testing.T) {
	tests := []struct {
		name     string
		buyIn    float64
		cashOut  float64
		expected float64
	}{
		{"winning session", 100, 250, 150},
		{"losing session", 200, 50, -150},
		{"break even", 100, 100, 0},
		{"busted out", 300, 0, -300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Profit(tt.buyIn, tt.cashOut)
			if result != tt.expected {
				t.Errorf("Profit(%v, %v) = %v, want %v", tt.buyIn, tt.cashOut, result, tt.expected)
			}
		})
	}
}

func TestHourlyRate(t *testing.T) {
	tests := []struct {
		name     string
		profit   float64
		hours    float64
		expected float64
	}{
		{"positive rate", 100, 4, 25},
		{"negative rate", -60, 3, -20},
		{"zero hours", 100, 0, 0},
		{"negative hours", 100, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := HourlyRate(tt.profit, tt.hours)
			if result != tt.expected {
				t.Errorf("HourlyRate(%v, %v) = %v, want %v", tt.profit, tt.hours, result, tt.expected)
			}
		})
	}
}

func TestIsWin(t *testing.T) {
	if IsWin(0) {
		t.Error("IsWin(0) = true, want false: break-even counts as a loss")
	}
	if !IsWin(0.01) {
		t.Error("IsWin(0.01) = false, want true")
	}
	if IsWin(-5) {
		t.Error("IsWin(-5) = true, want false")
	}
}

func TestCurrentStreak(t *testing.T) {
	tests := []struct {
		name     string
		profits  []float64
		expected model.Streak
	}{
		{"empty", nil, model.Streak{Type: model.StreakWin, Count: 0}},
		{"single win", []float64{50}, model.Streak{Type: model.StreakWin, Count: 1}},
		{"single loss", []float64{-50}, model.Streak{Type: model.StreakLoss, Count: 1}},
		{"win after losses", []float64{100, 50, -30, 20}, model.Streak{Type: model.StreakWin, Count: 1}},
		{"three losses running", []float64{80, -10, -20, -30}, model.Streak{Type: model.StreakLoss, Count: 3}},
		{"all wins", []float64{10, 20, 30}, model.Streak{Type: model.StreakWin, Count: 3}},
		{"break even ends win run", []float64{10, 20, 0}, model.Streak{Type: model.StreakLoss, Count: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CurrentStreak(sessionsWithProfits(tt.profits...))
			if result != tt.expected {
				t.Errorf("CurrentStreak(%v) = %+v, want %+v", tt.profits, result, tt.expected)
			}
		})
	}
}

func TestLongestStreaks(t *testing.T) {
	tests := []struct {
		name        string
		profits     []float64
		longestWin  int
		longestLoss int
	}{
		{"empty", nil, 0, 0},
		{"mixed runs", []float64{100, 50, -30, 20}, 2, 1},
		{"all losses", []float64{-1, -2, -3}, 0, 3},
		{"break even counts as loss", []float64{10, 0, 0, 10}, 1, 2},
		{"alternating", []float64{10, -10, 10, -10}, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			win, loss := LongestStreaks(sessionsWithProfits(tt.profits...))
			if win != tt.longestWin || loss != tt.longestLoss {
				t.Errorf("LongestStreaks(%v) = (%d, %d), want (%d, %d)",
					tt.profits, win, loss, tt.longestWin, tt.longestLoss)
			}
		})
	}
}

func TestComputeEmpty(t *testing.T) {
	stats := Compute(nil)

	if stats.TotalSessions != 0 || stats.TotalHours != 0 || stats.NetProfit != 0 {
		t.Errorf("Compute(nil) totals = %+v, want all zero", stats)
	}
	if stats.WinRate != 0 || stats.HourlyRate != 0 {
		t.Errorf("Compute(nil) rates = winRate %v, hourlyRate %v, want 0", stats.WinRate, stats.HourlyRate)
	}
	if stats.BiggestWin != 0 || stats.BiggestLoss != 0 {
		t.Errorf("Compute(nil) extremes = (%v, %v), want (0, 0)", stats.BiggestWin, stats.BiggestLoss)
	}
	want := model.Streak{Type: model.StreakWin, Count: 0}
	if stats.CurrentStreak != want {
		t.Errorf("Compute(nil) currentStreak = %+v, want %+v", stats.CurrentStreak, want)
	}
}

func TestCompute(t *testing.T) {
	// Four sessions: +100, +50, -30, +20 at 2 hours each.
	stats := Compute(sessionsWithProfits(100, 50, -30, 20))

	if stats.TotalSessions != 4 {
		t.Errorf("TotalSessions = %d, want 4", stats.TotalSessions)
	}
	if stats.TotalHours != 8 {
		t.Errorf("TotalHours = %v, want 8", stats.TotalHours)
	}
	if stats.NetProfit != 140 {
		t.Errorf("NetProfit = %v, want 140", stats.NetProfit)
	}
	if stats.WinRate != 75 {
		t.Errorf("WinRate = %v, want 75", stats.WinRate)
	}
	if stats.HourlyRate != 17.5 {
		t.Errorf("HourlyRate = %v, want 17.5", stats.HourlyRate)
	}
	if stats.BiggestWin != 100 {
		t.Errorf("BiggestWin = %v, want 100", stats.BiggestWin)
	}
	if stats.BiggestLoss != -30 {
		t.Errorf("BiggestLoss = %v, want -30", stats.BiggestLoss)
	}
	if stats.LongestWinStreak != 2 || stats.LongestLossStreak != 1 {
		t.Errorf("Longest streaks = (%d, %d), want (2, 1)",
			stats.LongestWinStreak, stats.LongestLossStreak)
	}
	want := model.Streak{Type: model.StreakWin, Count: 1}
	if stats.CurrentStreak != want {
		t.Errorf("CurrentStreak = %+v, want %+v", stats.CurrentStreak, want)
	}
}

func TestComputeAllLosingSessions(t *testing.T) {
	// BiggestWin tracks the maximum profit even when every session lost.
	stats := Compute(sessionsWithProfits(-10, -50, -20))

	if stats.BiggestWin != -10 {
		t.Errorf("BiggestWin = %v, want -10", stats.BiggestWin)
	}
	if stats.BiggestLoss != -50 {
		t.Errorf("BiggestLoss = %v, want -50", stats.BiggestLoss)
	}
	if stats.WinRate != 0 {
		t.Errorf("WinRate = %v, want 0", stats.WinRate)
	}
}
