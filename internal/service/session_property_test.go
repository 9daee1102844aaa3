package service

import (
	"context"
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/NickyVHDP/pokertracker/internal/model"
	"github.com/NickyVHDP/pokertracker/internal/pkg/lock"
	"github.com/NickyVHDP/pokertracker/internal/repository"
)

// TestCreateDerivationProperty checks that for any buy-in, cash-out and
// duration the stored session and its ledger entry agree: profit is
// exactly cashOut-buyIn, the hourly rate is profit/hours (zero without a
// duration), and the ledger entry carries the same amount.
func TestCreateDerivationProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		store := repository.NewMemoryStore()
		svc := NewSessionService(store, store, lock.NewKeyLock())
		ctx := context.Background()

		buyIn := rapid.Float64Range(0, 100000).Draw(t, "buyIn")
		cashOut := rapid.Float64Range(0, 100000).Draw(t, "cashOut")
		hours := rapid.Float64Range(0, 48).Draw(t, "hours")

		session, err := svc.Create(ctx, model.SessionInput{
			Location:  "Aria",
			GameType:  model.GameTypeCash,
			TableType: model.TableTypeLive,
			Stakes:    "2/5",
			Date:      time.Date(2024, 4, 20, 0, 0, 0, 0, time.UTC),
			Hours:     hours,
			BuyIn:     buyIn,
			CashOut:   cashOut,
		})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}

		if session.Profit != cashOut-buyIn {
			t.Fatalf("Profit = %v, want %v", session.Profit, cashOut-buyIn)
		}
		wantRate := 0.0
		if hours > 0 {
			wantRate = session.Profit / hours
		}
		if session.HourlyRate != wantRate {
			t.Fatalf("HourlyRate = %v, want %v", session.HourlyRate, wantRate)
		}

		txs, err := store.ListTransactions(ctx, 10, 0)
		if err != nil {
			t.Fatalf("list transactions failed: %v", err)
		}
		if len(txs) != 1 {
			t.Fatalf("got %d ledger entries, want 1", len(txs))
		}
		if txs[0].Amount != session.Profit {
			t.Fatalf("ledger amount = %v, want %v", txs[0].Amount, session.Profit)
		}
	})
}
