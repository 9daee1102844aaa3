package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/NickyVHDP/pokertracker/internal/model"
)

const sessionColumns = `id, location, game_type, table_type, stakes, date, hours,
	buy_in, cash_out, profit, hourly_rate, hands, tags, notes, rating, created_at`

// PostgresStore is the pgx-backed entity store. The schema mirrors the
// in-memory store's semantics: bankroll_transactions.session_id carries no
// foreign key on purpose, so the reference may dangle after a session is
// deleted.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a PostgresStore on an existing connection pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Migrate creates the schema if it does not exist.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS sessions (
			id VARCHAR(36) PRIMARY KEY,
			location TEXT NOT NULL,
			game_type TEXT NOT NULL,
			table_type TEXT NOT NULL,
			stakes TEXT NOT NULL,
			date TIMESTAMPTZ NOT NULL,
			hours DOUBLE PRECISION NOT NULL,
			buy_in DOUBLE PRECISION NOT NULL,
			cash_out DOUBLE PRECISION NOT NULL,
			profit DOUBLE PRECISION NOT NULL,
			hourly_rate DOUBLE PRECISION NOT NULL,
			hands INT,
			tags TEXT[] NOT NULL DEFAULT '{}',
			notes TEXT,
			rating INT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_date ON sessions(date DESC);
	`)
	if err != nil {
		return fmt.Errorf("failed to create sessions table: %w", err)
	}

	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS bankroll_transactions (
			id VARCHAR(36) PRIMARY KEY,
			type TEXT NOT NULL,
			amount DOUBLE PRECISION NOT NULL,
			description TEXT NOT NULL,
			session_id VARCHAR(36),
			date TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_bankroll_transactions_date ON bankroll_transactions(date DESC);
	`)
	if err != nil {
		return fmt.Errorf("failed to create bankroll_transactions table: %w", err)
	}

	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS settings (
			id VARCHAR(36) PRIMARY KEY,
			key TEXT NOT NULL UNIQUE,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to create settings table: %w", err)
	}

	return nil
}

// ListSessions returns sessions ordered by date descending.
func (p *PostgresStore) ListSessions(ctx context.Context, limit, offset int) ([]*model.Session, error) {
	query := `SELECT ` + sessionColumns + `
		FROM sessions
		ORDER BY date DESC
		LIMIT $1 OFFSET $2`

	rows, err := p.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

// GetSession returns the session or ErrSessionNotFound.
func (p *PostgresStore) GetSession(ctx context.Context, id string) (*model.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = $1`

	s, err := scanSession(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return s, nil
}

// InsertSession stores a fully populated session.
func (p *PostgresStore) InsertSession(ctx context.Context, s *model.Session) error {
	const query = `
		INSERT INTO sessions (id, location, game_type, table_type, stakes, date, hours,
			buy_in, cash_out, profit, hourly_rate, hands, tags, notes, rating, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err := p.pool.Exec(ctx, query,
		s.ID, s.Location, s.GameType, s.TableType, s.Stakes, s.Date, s.Hours,
		s.BuyIn, s.CashOut, s.Profit, s.HourlyRate, s.Hands, s.Tags, s.Notes,
		s.Rating, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

// UpdateSession replaces an existing session record.
func (p *PostgresStore) UpdateSession(ctx context.Context, s *model.Session) error {
	const query = `
		UPDATE sessions
		SET location = $2, game_type = $3, table_type = $4, stakes = $5,
			date = $6, hours = $7, buy_in = $8, cash_out = $9, profit = $10,
			hourly_rate = $11, hands = $12, tags = $13, notes = $14, rating = $15
		WHERE id = $1
	`

	result, err := p.pool.Exec(ctx, query,
		s.ID, s.Location, s.GameType, s.TableType, s.Stakes, s.Date, s.Hours,
		s.BuyIn, s.CashOut, s.Profit, s.HourlyRate, s.Hands, s.Tags, s.Notes,
		s.Rating,
	)
	if err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// DeleteSession removes a session and reports whether it existed.
func (p *PostgresStore) DeleteSession(ctx context.Context, id string) (bool, error) {
	result, err := p.pool.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete session: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

// SearchSessions returns sessions matching the query and all set filters,
// ordered by date descending. Every predicate is pushed into SQL.
func (p *PostgresStore) SearchSessions(ctx context.Context, query string, filters model.SearchFilters) ([]*model.Session, error) {
	var conds []string
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if query != "" {
		pattern := arg("%" + query + "%")
		conds = append(conds, `(location ILIKE `+pattern+
			` OR game_type ILIKE `+pattern+
			` OR stakes ILIKE `+pattern+
			` OR COALESCE(notes, '') ILIKE `+pattern+
			` OR EXISTS (SELECT 1 FROM unnest(tags) AS tag WHERE tag ILIKE `+pattern+`))`)
	}
	if filters.Location != "" {
		conds = append(conds, `location ILIKE `+arg("%"+filters.Location+"%"))
	}
	if filters.GameType != "" {
		conds = append(conds, `game_type = `+arg(filters.GameType))
	}
	if filters.TableType != "" {
		conds = append(conds, `table_type = `+arg(filters.TableType))
	}
	if filters.DateFrom != nil {
		conds = append(conds, `date >= `+arg(*filters.DateFrom))
	}
	if filters.DateTo != nil {
		conds = append(conds, `date <= `+arg(*filters.DateTo))
	}
	if filters.Result != "" {
		if filters.Result == "win" {
			conds = append(conds, `profit > 0`)
		} else {
			conds = append(conds, `profit <= 0`)
		}
	}

	sql := `SELECT ` + sessionColumns + ` FROM sessions`
	if len(conds) > 0 {
		sql += ` WHERE ` + strings.Join(conds, " AND ")
	}
	sql += ` ORDER BY date DESC`

	rows, err := p.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search sessions: %w", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

// SessionsInRange returns sessions within the inclusive date range in
// chronological order.
func (p *PostgresStore) SessionsInRange(ctx context.Context, from, to *time.Time) ([]*model.Session, error) {
	var conds []string
	var args []any

	if from != nil {
		args = append(args, *from)
		conds = append(conds, `date >= $`+strconv.Itoa(len(args)))
	}
	if to != nil {
		args = append(args, *to)
		conds = append(conds, `date <= $`+strconv.Itoa(len(args)))
	}

	sql := `SELECT ` + sessionColumns + ` FROM sessions`
	if len(conds) > 0 {
		sql += ` WHERE ` + strings.Join(conds, " AND ")
	}
	sql += ` ORDER BY date ASC`

	rows, err := p.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get sessions in range: %w", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

// ListTransactions returns transactions ordered by date descending.
func (p *PostgresStore) ListTransactions(ctx context.Context, limit, offset int) ([]*model.BankrollTransaction, error) {
	const query = `
		SELECT id, type, amount, description, session_id, date
		FROM bankroll_transactions
		ORDER BY date DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := p.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var txs []*model.BankrollTransaction
	for rows.Next() {
		var tx model.BankrollTransaction
		err := rows.Scan(&tx.ID, &tx.Type, &tx.Amount, &tx.Description, &tx.SessionID, &tx.Date)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txs = append(txs, &tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	if txs == nil {
		txs = []*model.BankrollTransaction{}
	}
	return txs, nil
}

// InsertTransaction stores a fully populated transaction.
func (p *PostgresStore) InsertTransaction(ctx context.Context, tx *model.BankrollTransaction) error {
	const query = `
		INSERT INTO bankroll_transactions (id, type, amount, description, session_id, date)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := p.pool.Exec(ctx, query, tx.ID, tx.Type, tx.Amount, tx.Description, tx.SessionID, tx.Date)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// GetSetting returns the setting or ErrSettingNotFound.
func (p *PostgresStore) GetSetting(ctx context.Context, key string) (*model.Setting, error) {
	const query = `SELECT id, key, value FROM settings WHERE key = $1`

	var setting model.Setting
	err := p.pool.QueryRow(ctx, query, key).Scan(&setting.ID, &setting.Key, &setting.Value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSettingNotFound
		}
		return nil, fmt.Errorf("failed to get setting: %w", err)
	}
	return &setting, nil
}

// SetSetting upserts a setting; the unique key constraint guarantees no
// key ever appears twice.
func (p *PostgresStore) SetSetting(ctx context.Context, key, value string) (*model.Setting, error) {
	const query = `
		INSERT INTO settings (id, key, value)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
		RETURNING id, key, value
	`

	var setting model.Setting
	err := p.pool.QueryRow(ctx, query, uuid.NewString(), key, value).Scan(&setting.ID, &setting.Key, &setting.Value)
	if err != nil {
		return nil, fmt.Errorf("failed to set setting: %w", err)
	}
	return &setting, nil
}

func scanSession(row pgx.Row) (*model.Session, error) {
	var s model.Session
	err := row.Scan(
		&s.ID, &s.Location, &s.GameType, &s.TableType, &s.Stakes, &s.Date,
		&s.Hours, &s.BuyIn, &s.CashOut, &s.Profit, &s.HourlyRate, &s.Hands,
		&s.Tags, &s.Notes, &s.Rating, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func scanSessions(rows pgx.Rows) ([]*model.Session, error) {
	var sessions []*model.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sessions: %w", err)
	}

	if sessions == nil {
		sessions = []*model.Session{}
	}
	return sessions, nil
}
