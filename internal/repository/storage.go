// Package repository provides data access layer implementations.
// Two backends exist: an in-memory store (the default) and a PostgreSQL
// store. Both implement the same Store interface so the service layer is
// indifferent to the backend.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/NickyVHDP/pokertracker/internal/model"
)

// Common errors for store operations.
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSettingNotFound = errors.New("setting not found")
)

// SessionStore handles session persistence and querying.
type SessionStore interface {
	// ListSessions returns sessions ordered by date descending,
	// paginated by slicing the ordered sequence. An out-of-range offset
	// yields an empty slice, not an error.
	ListSessions(ctx context.Context, limit, offset int) ([]*model.Session, error)

	// GetSession returns the session or ErrSessionNotFound.
	GetSession(ctx context.Context, id string) (*model.Session, error)

	// InsertSession stores a fully populated session. The caller is
	// responsible for id, derived fields and createdAt.
	InsertSession(ctx context.Context, s *model.Session) error

	// UpdateSession replaces an existing session record.
	// Returns ErrSessionNotFound if the id is unknown.
	UpdateSession(ctx context.Context, s *model.Session) error

	// DeleteSession removes a session and reports whether it existed.
	// Linked transactions are not cascade-deleted.
	DeleteSession(ctx context.Context, id string) (bool, error)

	// SearchSessions returns sessions matching the query and all set
	// filters, ordered by date descending.
	SearchSessions(ctx context.Context, query string, filters model.SearchFilters) ([]*model.Session, error)

	// SessionsInRange returns sessions whose date falls within the
	// inclusive range (open-ended for nil bounds), in chronological
	// order (oldest first).
	SessionsInRange(ctx context.Context, from, to *time.Time) ([]*model.Session, error)
}

// TransactionStore handles bankroll ledger persistence.
type TransactionStore interface {
	// ListTransactions returns transactions ordered by date descending,
	// paginated like sessions.
	ListTransactions(ctx context.Context, limit, offset int) ([]*model.BankrollTransaction, error)

	// InsertTransaction stores a fully populated transaction.
	InsertTransaction(ctx context.Context, tx *model.BankrollTransaction) error
}

// SettingStore handles key/value settings with upsert semantics.
type SettingStore interface {
	// GetSetting returns the setting or ErrSettingNotFound.
	GetSetting(ctx context.Context, key string) (*model.Setting, error)

	// SetSetting mutates the setting in place when the key exists and
	// creates it otherwise. The unique-key invariant always holds.
	SetSetting(ctx context.Context, key, value string) (*model.Setting, error)
}

// Store is the full entity store contract.
type Store interface {
	SessionStore
	TransactionStore
	SettingStore
}
