package services

import (
	"context"
	"log/slog"

	"careerpulse/internal/core"
	"careerpulse/internal/store"
)

// SettingsService wraps the settings store and announces saves.
type SettingsService struct {
	settings *store.Settings
	events   EventPublisher
}

func NewSettingsService(settings *store.Settings, events EventPublisher) *SettingsService {
	return &SettingsService{settings: settings, events: events}
}

func (s *SettingsService) Load(ctx context.Context) core.Settings {
	return s.settings.Load(ctx)
}

func (s *SettingsService) Save(ctx context.Context, settings core.Settings) error {
	if err := s.settings.Save(ctx, settings); err != nil {
		return err
	}
	if s.events != nil {
		if err := s.events.PublishSettingsChanged(ctx); err != nil {
			slog.ErrorContext(ctx, "Failed to publish settings-changed event", "error", err)
		}
	}
	return nil
}
