package repository

import (
	"sort"
	"strings"

	"github.com/NickyVHDP/pokertracker/internal/model"
)

// MatchesQuery reports whether a session matches a free-text query:
// a case-insensitive substring match against location, game type, stakes,
// notes (when present) or any tag. An empty query matches everything.
func MatchesQuery(s *model.Session, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(s.Location), q) ||
		strings.Contains(strings.ToLower(s.GameType), q) ||
		strings.Contains(strings.ToLower(s.Stakes), q) {
		return true
	}
	if s.Notes != nil && strings.Contains(strings.ToLower(*s.Notes), q) {
		return true
	}
	for _, tag := range s.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// MatchesFilters reports whether a session satisfies every set filter.
// Unset filters (zero values) pass unconditionally.
func MatchesFilters(s *model.Session, f model.SearchFilters) bool {
	if f.Location != "" &&
		!strings.Contains(strings.ToLower(s.Location), strings.ToLower(f.Location)) {
		return false
	}
	if f.GameType != "" && s.GameType != f.GameType {
		return false
	}
	if f.TableType != "" && s.TableType != f.TableType {
		return false
	}
	if f.DateFrom != nil && s.Date.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && s.Date.After(*f.DateTo) {
		return false
	}
	if f.Result != "" {
		if f.Result == "win" {
			if s.Profit <= 0 {
				return false
			}
		} else if s.Profit > 0 {
			return false
		}
	}
	return true
}

// SortByDateDesc sorts sessions in place, newest first.
func SortByDateDesc(sessions []*model.Session) {
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].Date.After(sessions[j].Date)
	})
}

// SortByDateAsc sorts sessions in place, oldest first.
func SortByDateAsc(sessions []*model.Session) {
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].Date.Before(sessions[j].Date)
	})
}

func sortTransactionsByDateDesc(txs []*model.BankrollTransaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date.After(txs[j].Date)
	})
}

// paginate slices an already ordered sequence. Out-of-range offsets yield
// an empty slice.
func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) || offset < 0 {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
