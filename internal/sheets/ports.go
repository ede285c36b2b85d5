package sheets

import (
	"context"

	"careerpulse/internal/core"
)

// RecordMirror replaces the full application list held by an external
// sheet-like target. The local store stays the source of truth; mirrors
// are best-effort.
type RecordMirror interface {
	ReplaceAll(ctx context.Context, apps []core.Application) error
}
