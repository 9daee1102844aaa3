// Package model defines the data models for the poker session tracker.
package model

import "time"

// Session represents one recorded poker-playing occurrence.
// Profit and HourlyRate are derived fields: they are always computed from
// BuyIn/CashOut/Hours by the engine and never accepted from input.
type Session struct {
	ID         string    `json:"id"`
	Location   string    `json:"location"`
	GameType   string    `json:"gameType"`
	TableType  string    `json:"tableType"`
	Stakes     string    `json:"stakes"`
	Date       time.Time `json:"date"`
	Hours      float64   `json:"hours"`
	BuyIn      float64   `json:"buyIn"`
	CashOut    float64   `json:"cashOut"`
	Profit     float64   `json:"profit"`
	HourlyRate float64   `json:"hourlyRate"`
	Hands      *int      `json:"hands,omitempty"`
	Tags       []string  `json:"tags"`
	Notes      *string   `json:"notes,omitempty"`
	Rating     *int      `json:"rating,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// BankrollTransaction represents a ledger entry affecting the tracked
// bankroll. SessionID is a weak reference: it is kept when the linked
// session is deleted and may therefore no longer resolve.
type BankrollTransaction struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	SessionID   *string   `json:"sessionId,omitempty"`
	Date        time.Time `json:"date"`
}

// Setting is a key/value record with a unique key.
type Setting struct {
	ID    string `json:"id"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Game types for sessions.
const (
	GameTypeCash       = "cash"
	GameTypeTournament = "tournament"
	GameTypeSitNGo     = "sit-n-go"
)

// Table types for sessions.
const (
	TableTypeLive   = "live"
	TableTypeOnline = "online"
	TableTypeHome   = "home"
)

// Transaction types for categorizing bankroll changes.
const (
	TxTypeSession    = "session"    // Posted automatically for a session result
	TxTypeDeposit    = "deposit"    // Money added to the bankroll
	TxTypeWithdrawal = "withdrawal" // Money taken out of the bankroll
)

// ValidGameType reports whether t is a known game type.
func ValidGameType(t string) bool {
	switch t {
	case GameTypeCash, GameTypeTournament, GameTypeSitNGo:
		return true
	}
	return false
}

// ValidTableType reports whether t is a known table type.
func ValidTableType(t string) bool {
	switch t {
	case TableTypeLive, TableTypeOnline, TableTypeHome:
		return true
	}
	return false
}

// ValidTransactionType reports whether t is a known transaction type.
func ValidTransactionType(t string) bool {
	switch t {
	case TxTypeSession, TxTypeDeposit, TxTypeWithdrawal:
		return true
	}
	return false
}

// SessionInput carries the client-settable fields for creating a session.
// Derived fields are intentionally absent.
type SessionInput struct {
	Location  string    `json:"location"`
	GameType  string    `json:"gameType"`
	TableType string    `json:"tableType"`
	Stakes    string    `json:"stakes"`
	Date      time.Time `json:"date"`
	Hours     float64   `json:"hours"`
	BuyIn     float64   `json:"buyIn"`
	CashOut   float64   `json:"cashOut"`
	Hands     *int      `json:"hands,omitempty"`
	Tags      []string  `json:"tags"`
	Notes     *string   `json:"notes,omitempty"`
	Rating    *int      `json:"rating,omitempty"`
}

// SessionUpdate carries a partial update: nil fields are left untouched.
// Changing any of BuyIn, CashOut or Hours triggers recomputation of the
// derived fields.
type SessionUpdate struct {
	Location  *string    `json:"location,omitempty"`
	GameType  *string    `json:"gameType,omitempty"`
	TableType *string    `json:"tableType,omitempty"`
	Stakes    *string    `json:"stakes,omitempty"`
	Date      *time.Time `json:"date,omitempty"`
	Hours     *float64   `json:"hours,omitempty"`
	BuyIn     *float64   `json:"buyIn,omitempty"`
	CashOut   *float64   `json:"cashOut,omitempty"`
	Hands     *int       `json:"hands,omitempty"`
	Tags      []string   `json:"tags,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
	Rating    *int       `json:"rating,omitempty"`
}

// TransactionInput carries the client-settable fields for creating a
// bankroll transaction. The timestamp is always server-assigned.
type TransactionInput struct {
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	SessionID   *string `json:"sessionId,omitempty"`
}

// SearchFilters holds the structured filter predicates for session search.
// Zero values mean "not set". All set predicates are combined with AND.
type SearchFilters struct {
	Location  string
	GameType  string
	TableType string
	DateFrom  *time.Time
	DateTo    *time.Time
	Result    string // "win" selects profit > 0, any other non-empty value selects profit <= 0
}

// Streak types.
const (
	StreakWin  = "win"
	StreakLoss = "loss"
)

// Streak describes a run of consecutive same-sign sessions ending at the
// most recent one.
type Streak struct {
	Type  string `json:"type"` // "win" or "loss"
	Count int    `json:"count"`
}

// Stats is the aggregate statistics summary over a session set.
type Stats struct {
	TotalSessions     int     `json:"totalSessions"`
	TotalHours        float64 `json:"totalHours"`
	NetProfit         float64 `json:"netProfit"`
	WinRate           float64 `json:"winRate"`
	HourlyRate        float64 `json:"hourlyRate"`
	BiggestWin        float64 `json:"biggestWin"`
	BiggestLoss       float64 `json:"biggestLoss"`
	CurrentStreak     Streak  `json:"currentStreak"`
	LongestWinStreak  int     `json:"longestWinStreak"`
	LongestLossStreak int     `json:"longestLossStreak"`
}
