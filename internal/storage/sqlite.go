//go:build sqlite

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"evogambit/internal/model"
)

func DefaultStoreKind() string { return "sqlite" }

func newSQLiteStore(path string) (Store, error) {
	return NewSQLiteStore(path), nil
}

// SQLiteStore persists snapshots in a single-file database so saves survive
// process restarts.
type SQLiteStore struct {
	path string

	mu sync.RWMutex
	db *sqlx.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return errors.New("sqlite path is required")
	}
	if s.db != nil {
		return nil
	}

	db, err := sqlx.Open("sqlite", s.path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}
	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return fmt.Errorf("migrate: %w", err)
	}

	slog.Debug("snapshot store ready", "path", s.path)
	s.db = db
	return nil
}

func (s *SQLiteStore) SaveSnapshot(ctx context.Context, slot string, data model.SaveData) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}

	if data.Checksum == "" {
		data.Checksum = data.ComputeChecksum()
	}
	payload, err := EncodeSaveData(data)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO snapshots (slot, version, timestamp, checksum, payload)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET
			version = excluded.version,
			timestamp = excluded.timestamp,
			checksum = excluded.checksum,
			payload = excluded.payload
	`, slot, data.Version, data.Timestamp, data.Checksum, payload)
	return err
}

func (s *SQLiteStore) GetSnapshot(ctx context.Context, slot string) (model.SaveData, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return model.SaveData{}, false, err
	}

	var payload []byte
	err = db.QueryRowContext(ctx, `SELECT payload FROM snapshots WHERE slot = ?`, slot).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.SaveData{}, false, nil
		}
		return model.SaveData{}, false, err
	}

	data, err := DecodeSaveData(payload)
	if err != nil {
		if errors.Is(err, ErrIntegrity) {
			return data, true, err
		}
		return model.SaveData{}, false, fmt.Errorf("decode snapshot %s: %w", slot, err)
	}
	return data, true, nil
}

func (s *SQLiteStore) ListSlots(ctx context.Context) ([]SlotInfo, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	var infos []SlotInfo
	err = db.SelectContext(ctx, &infos, `
		SELECT slot, version, timestamp, checksum
		FROM snapshots
		ORDER BY slot
	`)
	if err != nil {
		return nil, err
	}
	return infos, nil
}

func (s *SQLiteStore) DeleteSnapshot(ctx context.Context, slot string) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `DELETE FROM snapshots WHERE slot = ?`, slot)
	return err
}

func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) getDB() (*sqlx.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, errors.New("store is not initialized")
	}
	return s.db, nil
}

func migrate(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS snapshots (
			slot TEXT PRIMARY KEY,
			version TEXT NOT NULL,
			timestamp INTEGER NOT NULL,
			checksum TEXT NOT NULL,
			payload BLOB NOT NULL
		);
	`)
	return err
}
