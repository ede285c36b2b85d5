// Package backend selects the snapshot store implementation from
// configuration.
package backend

import (
	"fmt"
	"log/slog"

	"careerpulse/internal/config"
	"careerpulse/internal/storage"
	"careerpulse/internal/storage/memory"
	"careerpulse/internal/store"
)

// Type represents the type of snapshot backend.
type Type string

const (
	SQLiteBackend Type = "sqlite"
	MemoryBackend Type = "memory"
)

// String implements fmt.Stringer
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is valid.
func (t Type) IsValid() bool {
	switch t {
	case SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}

// CleanupFunc releases backend resources.
type CleanupFunc func() error

// Result contains the snapshot store and optional cleanup function.
type Result struct {
	Snapshots store.SnapshotStore
	Cleanup   CleanupFunc
}

// Open creates the snapshot store named by the config.
func Open(cfg *config.Config, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}

	t := Type(cfg.DataBackend)
	if !t.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", cfg.DataBackend)
	}

	switch t {
	case SQLiteBackend:
		repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize SQLite repository: %w", err)
		}
		logger.Info("Initialized SQLite backend", "db_path", cfg.SQLiteDBPath)
		return &Result{Snapshots: repo, Cleanup: repo.Close}, nil

	default:
		logger.Info("Initialized memory backend")
		return &Result{Snapshots: memory.New()}, nil
	}
}
