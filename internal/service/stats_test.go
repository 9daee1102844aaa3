package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NickyVHDP/pokertracker/internal/model"
	"github.com/NickyVHDP/pokertracker/internal/pkg/lock"
	"github.com/NickyVHDP/pokertracker/internal/repository"
)

func TestStatsServiceCompute(t *testing.T) {
	store := repository.NewMemoryStore()
	sessions := NewSessionService(store, store, lock.NewKeyLock())
	stats := NewStatsService(store)
	ctx := context.Background()

	base := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	results := []struct {
		buyIn, cashOut float64
	}{
		{100, 200}, // +100
		{100, 150}, // +50
		{100, 70},  // -30
		{100, 120}, // +20
	}
	for i, r := range results {
		in := validInput()
		in.Date = base.AddDate(0, 0, i)
		in.BuyIn = r.buyIn
		in.CashOut = r.cashOut
		_, err := sessions.Create(ctx, in)
		require.NoError(t, err)
	}

	got, err := stats.Compute(ctx, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 4, got.TotalSessions)
	assert.Equal(t, 140.0, got.NetProfit)
	assert.Equal(t, 75.0, got.WinRate)
	assert.Equal(t, 2, got.LongestWinStreak)
	assert.Equal(t, 1, got.LongestLossStreak)
	assert.Equal(t, model.Streak{Type: model.StreakWin, Count: 1}, got.CurrentStreak)

	// Restricting the range changes what is aggregated.
	from := base.AddDate(0, 0, 2)
	got, err = stats.Compute(ctx, &from, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, got.TotalSessions)
	assert.Equal(t, -10.0, got.NetProfit)
}

func TestStatsServiceComputeEmpty(t *testing.T) {
	store := repository.NewMemoryStore()
	stats := NewStatsService(store)

	got, err := stats.Compute(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, got.TotalSessions)
	assert.Equal(t, model.Streak{Type: model.StreakWin, Count: 0}, got.CurrentStreak)
}
