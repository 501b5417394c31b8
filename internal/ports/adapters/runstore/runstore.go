// Package runstore persists analysis runs in SQLite so results survive
// the process. Clips are stored JSON-serialized per run, mirroring the
// manifest shape.
package runstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/forPelevin/clipmine/internal/types"
)

type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path, creating parent
// directories as needed. Migrations are idempotent.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			id         TEXT PRIMARY KEY,
			source     TEXT NOT NULL,
			status     TEXT NOT NULL DEFAULT 'analyzing',
			error      TEXT NOT NULL DEFAULT '',
			clips      TEXT NOT NULL DEFAULT '[]',
			created_at TEXT NOT NULL
		)
	`)
	return err
}

func (s *Store) CreateRun(ctx context.Context, id, source string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, source, status, created_at) VALUES (?, ?, 'analyzing', ?)
		 ON CONFLICT(id) DO UPDATE SET status='analyzing', error='', clips='[]', created_at=excluded.created_at`,
		id, source, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create run: %w", err)
	}
	return nil
}

func (s *Store) CompleteRun(ctx context.Context, id string, clips []types.Clip) error {
	if clips == nil {
		clips = []types.Clip{}
	}
	b, err := json.Marshal(clips)
	if err != nil {
		return fmt.Errorf("marshal clips: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`UPDATE runs SET status='done', clips=? WHERE id=?`, string(b), id)
	if err != nil {
		return fmt.Errorf("complete run: %w", err)
	}
	return nil
}

func (s *Store) FailRun(ctx context.Context, id, errMsg string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE runs SET status='error', error=? WHERE id=?`, errMsg, id)
	if err != nil {
		return fmt.Errorf("fail run: %w", err)
	}
	return nil
}

func (s *Store) GetRun(ctx context.Context, id string) (types.Run, error) {
	var (
		run       types.Run
		clipsJSON string
		createdAt string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, source, status, error, clips, created_at FROM runs WHERE id=?`, id,
	).Scan(&run.ID, &run.Source, &run.Status, &run.Error, &clipsJSON, &createdAt)
	if err != nil {
		return types.Run{}, fmt.Errorf("get run %s: %w", id, err)
	}
	if err := json.Unmarshal([]byte(clipsJSON), &run.Clips); err != nil {
		return types.Run{}, fmt.Errorf("decode clips for run %s: %w", id, err)
	}
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		run.CreatedAt = t
	}
	return run, nil
}

func (s *Store) Close() error { return s.db.Close() }
