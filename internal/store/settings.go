package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"careerpulse/internal/core"
)

// Settings owns the persisted preferences object, independent of the
// record collection.
type Settings struct {
	snap SnapshotStore
}

func NewSettings(snap SnapshotStore) *Settings {
	return &Settings{snap: snap}
}

// storedSettings mirrors core.Settings with optional notification fields
// so an explicitly persisted false survives a reload. Absent fields fall
// back to the documented defaults (all enabled).
type storedSettings struct {
	Theme         core.Theme `json:"theme"`
	Notifications struct {
		Email        *bool `json:"email"`
		InApp        *bool `json:"app"`
		StatusChange *bool `json:"status"`
	} `json:"notifications"`
	Profile core.Profile `json:"profile"`
}

// Load returns the persisted settings, or the defaults when nothing is
// stored yet or the stored value is malformed.
func (s *Settings) Load(ctx context.Context) core.Settings {
	data, ok, err := s.snap.Load(ctx, KeySettings)
	if err != nil {
		slog.WarnContext(ctx, "Settings load failed, using defaults", "error", err)
		return core.DefaultSettings()
	}
	if !ok {
		return core.DefaultSettings()
	}

	var stored storedSettings
	if err := json.Unmarshal(data, &stored); err != nil {
		slog.WarnContext(ctx, "Settings snapshot malformed, using defaults", "error", err)
		return core.DefaultSettings()
	}

	out := core.DefaultSettings()
	if stored.Theme.Validate() == nil {
		out.Theme = stored.Theme
	}
	if stored.Notifications.Email != nil {
		out.Notifications.Email = *stored.Notifications.Email
	}
	if stored.Notifications.InApp != nil {
		out.Notifications.InApp = *stored.Notifications.InApp
	}
	if stored.Notifications.StatusChange != nil {
		out.Notifications.StatusChange = *stored.Notifications.StatusChange
	}
	out.Profile = stored.Profile
	return out
}

// Save validates and persists the full settings object, overwriting the
// prior value. Validation failures are surfaced and nothing is written.
func (s *Settings) Save(ctx context.Context, settings core.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings snapshot: %w", err)
	}
	if err := s.snap.Save(ctx, KeySettings, data); err != nil {
		return &PersistenceError{Key: KeySettings, Err: err}
	}
	return nil
}
