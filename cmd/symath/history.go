package main

import (
	"database/sql"
	"time"

	_ "modernc.org/sqlite"
)

// HistoryStore persists REPL inputs and outputs to SQLite. The engine core
// stays persistence-free; history belongs to the front end.
type HistoryStore struct {
	db *sql.DB
}

// HistoryEntry is one recorded dispatch.
type HistoryEntry struct {
	Session string
	Input   string
	Output  string
	At      time.Time
}

// OpenHistory opens (and if needed creates) the history database at path.
func OpenHistory(path string) (*HistoryStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS history (
		id      INTEGER PRIMARY KEY AUTOINCREMENT,
		session TEXT NOT NULL,
		input   TEXT NOT NULL,
		output  TEXT NOT NULL,
		at      TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &HistoryStore{db: db}, nil
}

// Append records one input/output pair for a session.
func (s *HistoryStore) Append(session, input, output string) error {
	_, err := s.db.Exec(
		"INSERT INTO history (session, input, output) VALUES (?, ?, ?)",
		session, input, output)
	return err
}

// Recent returns the newest n entries, most recent first.
func (s *HistoryStore) Recent(n int) ([]HistoryEntry, error) {
	rows, err := s.db.Query(
		"SELECT session, input, output, at FROM history ORDER BY id DESC LIMIT ?", n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		if err := rows.Scan(&e.Session, &e.Input, &e.Output, &e.At); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close releases the underlying database handle.
func (s *HistoryStore) Close() error {
	return s.db.Close()
}
