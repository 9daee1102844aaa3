package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/NickyVHDP/pokertracker/internal/model"
	"github.com/NickyVHDP/pokertracker/internal/repository"
)

// BankrollService handles the bankroll ledger and the key/value settings.
type BankrollService struct {
	ledger   repository.TransactionStore
	settings repository.SettingStore
}

// NewBankrollService creates a new BankrollService instance.
func NewBankrollService(ledger repository.TransactionStore, settings repository.SettingStore) *BankrollService {
	return &BankrollService{
		ledger:   ledger,
		settings: settings,
	}
}

// ListTransactions returns a page of ledger entries ordered by date
// descending, with the same pagination defaults as sessions.
func (s *BankrollService) ListTransactions(ctx context.Context, limit, offset int) ([]*model.BankrollTransaction, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return s.ledger.ListTransactions(ctx, limit, offset)
}

// CreateTransaction stores a new ledger entry. The id and timestamp are
// always server-assigned; a client-supplied date is never honored.
func (s *BankrollService) CreateTransaction(ctx context.Context, in model.TransactionInput) (*model.BankrollTransaction, error) {
	tx := &model.BankrollTransaction{
		ID:          uuid.NewString(),
		Type:        in.Type,
		Amount:      in.Amount,
		Description: in.Description,
		SessionID:   in.SessionID,
		Date:        time.Now().UTC(),
	}

	if err := s.ledger.InsertTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	log.Info().
		Str("transaction_id", tx.ID).
		Str("type", tx.Type).
		Float64("amount", tx.Amount).
		Msg("Bankroll transaction created")

	return tx, nil
}

// GetSetting retrieves a setting by key.
func (s *BankrollService) GetSetting(ctx context.Context, key string) (*model.Setting, error) {
	return s.settings.GetSetting(ctx, key)
}

// SetSetting upserts a setting.
func (s *BankrollService) SetSetting(ctx context.Context, key, value string) (*model.Setting, error) {
	return s.settings.SetSetting(ctx, key, value)
}

// EnsureDefaultSettings seeds the given settings, writing only keys that
// do not exist yet so a persisted store keeps its values across restarts.
func (s *BankrollService) EnsureDefaultSettings(ctx context.Context, defaults map[string]string) error {
	for key, value := range defaults {
		_, err := s.settings.GetSetting(ctx, key)
		if err == nil {
			continue
		}
		if !errors.Is(err, repository.ErrSettingNotFound) {
			return fmt.Errorf("failed to check setting %q: %w", key, err)
		}
		if _, err := s.settings.SetSetting(ctx, key, value); err != nil {
			return fmt.Errorf("failed to seed setting %q: %w", key, err)
		}
		log.Debug().Str("key", key).Str("value", value).Msg("Seeded default setting")
	}
	return nil
}
