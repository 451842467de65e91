// Package sqlite persiste o snapshot diário de manchetes em um banco SQLite
// local, sobrevivendo a restarts do processo.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/paraschopra/newsmadefun/internal/core/domain"
	"github.com/paraschopra/newsmadefun/internal/core/ports"
)

type SnapshotStore struct {
	db *sql.DB
}

var _ ports.SnapshotStore = (*SnapshotStore)(nil)

// Open abre (ou cria) o banco em dbPath. A criação do schema é idempotente.
func Open(dbPath string) (*SnapshotStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating snapshot dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot db: %w", err)
	}
	// Um único writer serializa upserts concorrentes do mesmo dia em
	// last-writer-wins sem corromper a linha.
	db.SetMaxOpenConns(1)

	s := &SnapshotStore{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SnapshotStore) init() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS headlines_cache (
			date      TEXT PRIMARY KEY,
			headlines TEXT NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("initializing snapshot schema: %w", err)
	}
	return nil
}

func (s *SnapshotStore) Close() error {
	return s.db.Close()
}

func (s *SnapshotStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// GetSnapshot devolve domain.ErrSnapshotMiss quando não há snapshot para a
// data ou quando o registro armazenado não decodifica.
func (s *SnapshotStore) GetSnapshot(ctx context.Context, date string) ([]domain.Headline, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, "SELECT headlines FROM headlines_cache WHERE date = ?", date).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrSnapshotMiss
	}
	if err != nil {
		return nil, fmt.Errorf("reading snapshot %s: %w", date, err)
	}

	var headlines []domain.Headline
	if err := json.Unmarshal([]byte(raw), &headlines); err != nil {
		return nil, fmt.Errorf("decoding snapshot %s: %w", date, err)
	}
	return headlines, nil
}

// PutSnapshot grava o conjunto do dia; a segunda escrita da mesma data
// substitui a primeira por inteiro.
func (s *SnapshotStore) PutSnapshot(ctx context.Context, date string, headlines []domain.Headline) error {
	raw, err := json.Marshal(headlines)
	if err != nil {
		return fmt.Errorf("encoding snapshot %s: %w", date, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO headlines_cache (date, headlines) VALUES (?, ?)
		ON CONFLICT(date) DO UPDATE SET headlines = excluded.headlines
	`, date, string(raw))
	if err != nil {
		return fmt.Errorf("writing snapshot %s: %w", date, err)
	}
	return nil
}
