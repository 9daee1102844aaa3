// Package service provides business logic implementations.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/NickyVHDP/pokertracker/internal/metrics"
	"github.com/NickyVHDP/pokertracker/internal/model"
	"github.com/NickyVHDP/pokertracker/internal/pkg/lock"
	"github.com/NickyVHDP/pokertracker/internal/repository"
)

// DefaultPageSize is the page size used when a list request does not set
// a limit.
const DefaultPageSize = 50

// SessionService owns the session lifecycle: it computes derived fields,
// posts the linked bankroll ledger entry on create, and serializes partial
// updates per session id.
type SessionService struct {
	sessions repository.SessionStore
	ledger   repository.TransactionStore
	locks    *lock.KeyLock
}

// NewSessionService creates a new SessionService instance.
func NewSessionService(sessions repository.SessionStore, ledger repository.TransactionStore, locks *lock.KeyLock) *SessionService {
	return &SessionService{
		sessions: sessions,
		ledger:   ledger,
		locks:    locks,
	}
}

// List returns a page of sessions ordered by date descending.
// A non-positive limit falls back to DefaultPageSize; a negative offset
// falls back to zero.
func (s *SessionService) List(ctx context.Context, limit, offset int) ([]*model.Session, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return s.sessions.ListSessions(ctx, limit, offset)
}

// Get retrieves a session by id.
func (s *SessionService) Get(ctx context.Context, id string) (*model.Session, error) {
	return s.sessions.GetSession(ctx, id)
}

// Create stores a new session. The id and createdAt are assigned here,
// profit and hourly rate are computed from the input, and a linked ledger
// entry carrying the session's profit is posted.
func (s *SessionService) Create(ctx context.Context, in model.SessionInput) (*model.Session, error) {
	now := time.Now().UTC()
	profit := metrics.Profit(in.BuyIn, in.CashOut)

	session := &model.Session{
		ID:         uuid.NewString(),
		Location:   in.Location,
		GameType:   in.GameType,
		TableType:  in.TableType,
		Stakes:     in.Stakes,
		Date:       in.Date,
		Hours:      in.Hours,
		BuyIn:      in.BuyIn,
		CashOut:    in.CashOut,
		Profit:     profit,
		HourlyRate: metrics.HourlyRate(profit, in.Hours),
		Hands:      in.Hands,
		Tags:       in.Tags,
		Notes:      in.Notes,
		Rating:     in.Rating,
		CreatedAt:  now,
	}
	if session.Tags == nil {
		session.Tags = []string{}
	}

	if err := s.sessions.InsertSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	tx := &model.BankrollTransaction{
		ID:          uuid.NewString(),
		Type:        model.TxTypeSession,
		Amount:      profit,
		Description: fmt.Sprintf("%s session at %s", in.GameType, in.Location),
		SessionID:   &session.ID,
		Date:        now,
	}
	if err := s.ledger.InsertTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to record session transaction: %w", err)
	}

	log.Info().
		Str("session_id", session.ID).
		Str("game_type", session.GameType).
		Str("location", session.Location).
		Float64("profit", session.Profit).
		Msg("Session created")

	return session, nil
}

// Update merges the provided fields over the existing session. Profit and
// hourly rate are recomputed only when buyIn, cashOut or hours is present
// in the partial input, combining the changed fields with the stored
// values of the others. The linked ledger entry posted at creation is
// deliberately left untouched.
//
// The per-session key lock serializes concurrent updates to the same id so
// the read-merge-write cycle cannot lose a concurrent write.
func (s *SessionService) Update(ctx context.Context, id string, in model.SessionUpdate) (*model.Session, error) {
	var updated *model.Session

	err := s.locks.WithLock(id, func() error {
		session, err := s.sessions.GetSession(ctx, id)
		if err != nil {
			return err
		}

		applyUpdate(session, in)
		if in.BuyIn != nil || in.CashOut != nil || in.Hours != nil {
			session.Profit = metrics.Profit(session.BuyIn, session.CashOut)
			session.HourlyRate = metrics.HourlyRate(session.Profit, session.Hours)
		}

		if err := s.sessions.UpdateSession(ctx, session); err != nil {
			return err
		}
		updated = session
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("session_id", id).Msg("Session updated")
	return updated, nil
}

// Delete removes a session and reports whether it existed. Its linked
// ledger entry survives with a dangling session reference.
func (s *SessionService) Delete(ctx context.Context, id string) (bool, error) {
	existed, err := s.sessions.DeleteSession(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete session: %w", err)
	}
	if existed {
		log.Info().Str("session_id", id).Msg("Session deleted")
	}
	return existed, nil
}

// Search returns sessions matching the free-text query and all set
// structured filters, ordered by date descending.
func (s *SessionService) Search(ctx context.Context, query string, filters model.SearchFilters) ([]*model.Session, error) {
	return s.sessions.SearchSessions(ctx, query, filters)
}

// applyUpdate copies every set field of the partial input onto the
// session. Derived fields and createdAt are never part of the input.
func applyUpdate(s *model.Session, in model.SessionUpdate) {
	if in.Location != nil {
		s.Location = *in.Location
	}
	if in.GameType != nil {
		s.GameType = *in.GameType
	}
	if in.TableType != nil {
		s.TableType = *in.TableType
	}
	if in.Stakes != nil {
		s.Stakes = *in.Stakes
	}
	if in.Date != nil {
		s.Date = *in.Date
	}
	if in.Hours != nil {
		s.Hours = *in.Hours
	}
	if in.BuyIn != nil {
		s.BuyIn = *in.BuyIn
	}
	if in.CashOut != nil {
		s.CashOut = *in.CashOut
	}
	if in.Hands != nil {
		s.Hands = in.Hands
	}
	if in.Tags != nil {
		s.Tags = in.Tags
	}
	if in.Notes != nil {
		s.Notes = in.Notes
	}
	if in.Rating != nil {
		s.Rating = in.Rating
	}
}
