package store

import "context"

// Well-known snapshot keys in the backing store.
const (
	KeyApplications = "careerpulse/applications"
	KeySettings     = "careerpulse/settings"
)

// SnapshotStore is the outbound port for persistence. A snapshot is the
// full serialized state of one store under a well-known key; writes
// replace the previous value wholesale.
type SnapshotStore interface {
	// Load returns the snapshot under key, or ok=false when none exists.
	Load(ctx context.Context, key string) (data []byte, ok bool, err error)
	// Save overwrites the snapshot under key.
	Save(ctx context.Context, key string, data []byte) error
}
