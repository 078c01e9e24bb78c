package catalog

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore persists catalog entries to SQLite.
// It is suitable for single-process production use.
type SQLiteStore struct {
	db     *sql.DB
	mu     sync.RWMutex
	closed bool
}

// NewSQLiteStore creates a new SQLite catalog store.
// The path should be a file path (e.g., "./catalog.db") or ":memory:" for testing.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS catalog_entries (
			id TEXT NOT NULL PRIMARY KEY,
			kind TEXT NOT NULL,
			disabled INTEGER NOT NULL,
			params TEXT NOT NULL,
			sequence INTEGER NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Save implements Store.
func (s *SQLiteStore) Save(e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	params, err := json.Marshal(e.Params)
	if err != nil {
		return fmt.Errorf("encode params: %w", err)
	}

	// Overwrite by id; the original sequence survives so List order is
	// first-save order.
	_, err = s.db.Exec(`
		INSERT INTO catalog_entries (id, kind, disabled, params, sequence)
		VALUES (
			?, ?, ?, ?,
			COALESCE((SELECT MAX(sequence) FROM catalog_entries), 0) + 1
		)
		ON CONFLICT(id) DO UPDATE SET
			kind = excluded.kind,
			disabled = excluded.disabled,
			params = excluded.params
	`, e.ID, e.Kind, boolToInt(e.Disabled), string(params))

	if err != nil {
		return fmt.Errorf("save catalog entry: %w", err)
	}
	return nil
}

// Load implements Store.
func (s *SQLiteStore) Load(id string) (Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return Entry{}, ErrStoreClosed
	}

	var (
		e        Entry
		disabled int
		params   string
	)
	err := s.db.QueryRow(`
		SELECT id, kind, disabled, params FROM catalog_entries
		WHERE id = ?
	`, id).Scan(&e.ID, &e.Kind, &disabled, &params)

	if err == sql.ErrNoRows {
		return Entry{}, ErrNotFound
	}
	if err != nil {
		return Entry{}, fmt.Errorf("load catalog entry: %w", err)
	}

	e.Disabled = disabled != 0
	if err := json.Unmarshal([]byte(params), &e.Params); err != nil {
		return Entry{}, fmt.Errorf("decode params: %w", err)
	}
	return e, nil
}

// List implements Store.
func (s *SQLiteStore) List() ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	rows, err := s.db.Query(`
		SELECT id, kind, disabled, params
		FROM catalog_entries
		ORDER BY sequence
	`)
	if err != nil {
		return nil, fmt.Errorf("list catalog entries: %w", err)
	}
	defer rows.Close()

	entries := make([]Entry, 0)
	for rows.Next() {
		var (
			e        Entry
			disabled int
			params   string
		)
		if err := rows.Scan(&e.ID, &e.Kind, &disabled, &params); err != nil {
			return nil, fmt.Errorf("scan catalog entry: %w", err)
		}
		e.Disabled = disabled != 0
		if err := json.Unmarshal([]byte(params), &e.Params); err != nil {
			return nil, fmt.Errorf("decode params: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate catalog entries: %w", err)
	}

	return entries, nil
}

// Delete implements Store.
func (s *SQLiteStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	_, err := s.db.Exec(`
		DELETE FROM catalog_entries WHERE id = ?
	`, id)
	if err != nil {
		return fmt.Errorf("delete catalog entry: %w", err)
	}
	return nil
}

// Close implements Store.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.closed = true
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
