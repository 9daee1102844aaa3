package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/NickyVHDP/pokertracker/internal/model"
)

// MemoryStore is the in-memory entity store. All state lives in process
// memory for the lifetime of the process; there is no durability.
//
// A single RWMutex serializes every mutating operation. Read operations
// take the read lock, snapshot the keyed collection and sort the snapshot,
// so scan-then-sort reads never observe a half-applied mutation.
type MemoryStore struct {
	mu           sync.RWMutex
	sessions     map[string]*model.Session
	transactions map[string]*model.BankrollTransaction
	settings     map[string]*model.Setting // keyed by id, unique on Key
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions:     make(map[string]*model.Session),
		transactions: make(map[string]*model.BankrollTransaction),
		settings:     make(map[string]*model.Setting),
	}
}

// ListSessions returns sessions ordered by date descending.
func (m *MemoryStore) ListSessions(_ context.Context, limit, offset int) ([]*model.Session, error) {
	m.mu.RLock()
	all := make([]*model.Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		all = append(all, cloneSession(s))
	}
	m.mu.RUnlock()

	SortByDateDesc(all)
	return paginate(all, limit, offset), nil
}

// GetSession returns the session or ErrSessionNotFound.
func (m *MemoryStore) GetSession(_ context.Context, id string) (*model.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return cloneSession(s), nil
}

// InsertSession stores a fully populated session.
func (m *MemoryStore) InsertSession(_ context.Context, s *model.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[s.ID] = cloneSession(s)
	return nil
}

// UpdateSession replaces an existing session record.
func (m *MemoryStore) UpdateSession(_ context.Context, s *model.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[s.ID]; !ok {
		return ErrSessionNotFound
	}
	m.sessions[s.ID] = cloneSession(s)
	return nil
}

// DeleteSession removes a session and reports whether it existed.
// Transactions keep their sessionId reference, which now dangles.
func (m *MemoryStore) DeleteSession(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.sessions[id]
	delete(m.sessions, id)
	return ok, nil
}

// SearchSessions returns sessions matching the query and all set filters,
// ordered by date descending.
func (m *MemoryStore) SearchSessions(_ context.Context, query string, filters model.SearchFilters) ([]*model.Session, error) {
	m.mu.RLock()
	matched := make([]*model.Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		if MatchesQuery(s, query) && MatchesFilters(s, filters) {
			matched = append(matched, cloneSession(s))
		}
	}
	m.mu.RUnlock()

	SortByDateDesc(matched)
	return matched, nil
}

// SessionsInRange returns sessions within the inclusive date range in
// chronological order.
func (m *MemoryStore) SessionsInRange(_ context.Context, from, to *time.Time) ([]*model.Session, error) {
	m.mu.RLock()
	matched := make([]*model.Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		if from != nil && s.Date.Before(*from) {
			continue
		}
		if to != nil && s.Date.After(*to) {
			continue
		}
		matched = append(matched, cloneSession(s))
	}
	m.mu.RUnlock()

	SortByDateAsc(matched)
	return matched, nil
}

// ListTransactions returns transactions ordered by date descending.
func (m *MemoryStore) ListTransactions(_ context.Context, limit, offset int) ([]*model.BankrollTransaction, error) {
	m.mu.RLock()
	all := make([]*model.BankrollTransaction, 0, len(m.transactions))
	for _, tx := range m.transactions {
		all = append(all, cloneTransaction(tx))
	}
	m.mu.RUnlock()

	sortTransactionsByDateDesc(all)
	return paginate(all, limit, offset), nil
}

// InsertTransaction stores a fully populated transaction.
func (m *MemoryStore) InsertTransaction(_ context.Context, tx *model.BankrollTransaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.transactions[tx.ID] = cloneTransaction(tx)
	return nil
}

// GetSetting returns the setting or ErrSettingNotFound.
func (m *MemoryStore) GetSetting(_ context.Context, key string) (*model.Setting, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, setting := range m.settings {
		if setting.Key == key {
			clone := *setting
			return &clone, nil
		}
	}
	return nil, ErrSettingNotFound
}

// SetSetting upserts a setting. An existing key is mutated in place; a new
// key gets a fresh record. No key ever appears twice.
func (m *MemoryStore) SetSetting(_ context.Context, key, value string) (*model.Setting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, setting := range m.settings {
		if setting.Key == key {
			setting.Value = value
			clone := *setting
			return &clone, nil
		}
	}

	setting := &model.Setting{ID: uuid.NewString(), Key: key, Value: value}
	m.settings[setting.ID] = setting
	clone := *setting
	return &clone, nil
}

func cloneSession(s *model.Session) *model.Session {
	clone := *s
	if s.Tags != nil {
		clone.Tags = append([]string(nil), s.Tags...)
	}
	if s.Hands != nil {
		v := *s.Hands
		clone.Hands = &v
	}
	if s.Notes != nil {
		v := *s.Notes
		clone.Notes = &v
	}
	if s.Rating != nil {
		v := *s.Rating
		clone.Rating = &v
	}
	return &clone
}

func cloneTransaction(tx *model.BankrollTransaction) *model.BankrollTransaction {
	clone := *tx
	if tx.SessionID != nil {
		v := *tx.SessionID
		clone.SessionID = &v
	}
	return &clone
}
