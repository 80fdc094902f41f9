// Package scores keeps the table of finished games in a sqlite database.
package scores

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schema string

// ErrNotFound is returned by Best when no game has been recorded.
var ErrNotFound = errors.New("not found")

// Entry is one finished game.
type Entry struct {
	ID       uuid.UUID
	Score    int
	Lines    int
	Pieces   int
	Seed     uint64
	PlayedAt time.Time
}

type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path. Use ":memory:" for a
// throwaway table.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Each connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Record saves e, replacing any entry with the same ID.
func (s *Store) Record(ctx context.Context, e Entry) error {
	q := `
	INSERT OR REPLACE INTO scores (id, score, lines, pieces, seed, played_at)
	VALUES (?, ?, ?, ?, ?, ?);
	`
	// sqlite integers are signed; the seed round-trips through int64.
	_, err := s.db.ExecContext(ctx, q, e.ID.String(), e.Score, e.Lines, e.Pieces, int64(e.Seed), e.PlayedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("failed to insert score: %w", err)
	}
	return nil
}

// Top returns up to limit entries, best score first. Ties go to the earlier game.
func (s *Store) Top(ctx context.Context, limit int) ([]Entry, error) {
	q := `
	SELECT id, score, lines, pieces, seed, played_at FROM scores
	ORDER BY score DESC, played_at ASC
	LIMIT ?;
	`
	rows, err := s.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query scores: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scan(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read scores: %w", err)
	}
	return entries, nil
}

// Best returns the highest scoring entry, or ErrNotFound.
func (s *Store) Best(ctx context.Context) (Entry, error) {
	entries, err := s.Top(ctx, 1)
	if err != nil {
		return Entry{}, err
	}
	if len(entries) == 0 {
		return Entry{}, ErrNotFound
	}
	return entries[0], nil
}

func scan(rows *sql.Rows) (Entry, error) {
	var (
		e        Entry
		id       string
		seed     int64
		playedAt int64
	)
	if err := rows.Scan(&id, &e.Score, &e.Lines, &e.Pieces, &seed, &playedAt); err != nil {
		return Entry{}, fmt.Errorf("failed to scan score: %w", err)
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to parse score id %q: %w", id, err)
	}

	e.ID = parsed
	e.Seed = uint64(seed)
	e.PlayedAt = time.Unix(0, playedAt)
	return e, nil
}
