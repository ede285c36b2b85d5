// Package worker reacts to change events: it raises user notifications
// according to the saved preferences and mirrors the application list to
// an external sheet when one is configured.
package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"careerpulse/internal/amqp"
	"careerpulse/internal/core"
	"careerpulse/internal/sheets"
	"careerpulse/internal/store"
)

type NotifyWorker struct {
	snapshots store.SnapshotStore
	settings  *store.Settings
	mirror    sheets.RecordMirror // nil when no mirror is configured
}

func NewNotifyWorker(snapshots store.SnapshotStore, settings *store.Settings, mirror sheets.RecordMirror) *NotifyWorker {
	return &NotifyWorker{
		snapshots: snapshots,
		settings:  settings,
		mirror:    mirror,
	}
}

// HandleEvent processes one change event. Errors are returned so the
// delivery can be requeued.
func (w *NotifyWorker) HandleEvent(ctx context.Context, env *amqp.Envelope) error {
	switch env.Kind {
	case amqp.KindSettings:
		slog.InfoContext(ctx, "Settings changed, preferences reloaded on next event")
		return nil
	case amqp.KindRecords:
		if env.Records == nil {
			return fmt.Errorf("records event without payload")
		}
		return w.handleRecordsChanged(ctx, env.Records)
	default:
		slog.WarnContext(ctx, "Ignoring unknown event kind", "kind", env.Kind)
		return nil
	}
}

func (w *NotifyWorker) handleRecordsChanged(ctx context.Context, msg *amqp.RecordsChangedMessage) error {
	prefs := w.settings.Load(ctx)
	w.notify(ctx, prefs, msg)

	if w.mirror == nil {
		return nil
	}
	return w.MirrorNow(ctx)
}

// notify raises the in-app notification lines the preferences allow.
// Email delivery is out of scope; the flag is honored as a log line so
// the intent stays visible.
func (w *NotifyWorker) notify(ctx context.Context, prefs core.Settings, msg *amqp.RecordsChangedMessage) {
	if msg.Op == amqp.OpUpdate && !prefs.Notifications.StatusChange {
		return
	}
	if !prefs.Notifications.InApp && !prefs.Notifications.Email {
		return
	}

	var text string
	switch msg.Op {
	case amqp.OpAdd:
		text = "Application saved"
	case amqp.OpUpdate:
		text = "Application updated"
	case amqp.OpDelete:
		text = "Application deleted"
	case amqp.OpReplace:
		text = "Applications imported"
	default:
		text = "Applications changed"
	}

	slog.InfoContext(ctx, "Notification",
		"text", text,
		"op", msg.Op,
		"record_id", msg.RecordID,
		"total", msg.Total,
		"in_app", prefs.Notifications.InApp,
		"email", prefs.Notifications.Email)
}

// MirrorNow pushes the current persisted collection to the mirror. Used
// for both event-driven and periodic mirroring.
func (w *NotifyWorker) MirrorNow(ctx context.Context) error {
	if w.mirror == nil {
		return nil
	}

	apps, err := w.loadApplications(ctx)
	if err != nil {
		return err
	}
	if err := w.mirror.ReplaceAll(ctx, apps); err != nil {
		return fmt.Errorf("mirror applications: %w", err)
	}
	return nil
}

func (w *NotifyWorker) loadApplications(ctx context.Context) ([]core.Application, error) {
	data, ok, err := w.snapshots.Load(ctx, store.KeyApplications)
	if err != nil {
		return nil, fmt.Errorf("load applications snapshot: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var apps []core.Application
	if err := json.Unmarshal(data, &apps); err != nil {
		return nil, fmt.Errorf("decode applications snapshot: %w", err)
	}
	return apps, nil
}
