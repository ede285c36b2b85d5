package worker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerpulse/internal/amqp"
	"careerpulse/internal/core"
	"careerpulse/internal/storage/memory"
	"careerpulse/internal/store"
)

type fakeMirror struct {
	calls [][]core.Application
	fail  bool
}

func (f *fakeMirror) ReplaceAll(_ context.Context, apps []core.Application) error {
	if f.fail {
		return errors.New("sheet unavailable")
	}
	f.calls = append(f.calls, apps)
	return nil
}

func seedApplications(t *testing.T, snap store.SnapshotStore, apps []core.Application) {
	t.Helper()
	data, err := json.Marshal(apps)
	require.NoError(t, err)
	require.NoError(t, snap.Save(context.Background(), store.KeyApplications, data))
}

func TestHandleEventMirrorsRecords(t *testing.T) {
	snap := memory.New()
	mirror := &fakeMirror{}
	w := NewNotifyWorker(snap, store.NewSettings(snap), mirror)

	apps := []core.Application{
		{ID: 1, Company: "Acme", Title: "Engineer", Status: core.StatusPending, Date: core.NewDate(2024, 3, 1)},
	}
	seedApplications(t, snap, apps)

	env := &amqp.Envelope{
		Kind:    amqp.KindRecords,
		Records: amqp.NewRecordsChangedMessage(amqp.OpAdd, 1, 1),
	}
	require.NoError(t, w.HandleEvent(context.Background(), env))

	require.Len(t, mirror.calls, 1)
	require.Len(t, mirror.calls[0], 1)
	assert.Equal(t, "Acme", mirror.calls[0][0].Company)
}

func TestHandleEventWithoutMirror(t *testing.T) {
	snap := memory.New()
	w := NewNotifyWorker(snap, store.NewSettings(snap), nil)

	env := &amqp.Envelope{
		Kind:    amqp.KindRecords,
		Records: amqp.NewRecordsChangedMessage(amqp.OpDelete, 7, 0),
	}
	require.NoError(t, w.HandleEvent(context.Background(), env))
}

func TestHandleEventMirrorFailureReturned(t *testing.T) {
	snap := memory.New()
	mirror := &fakeMirror{fail: true}
	w := NewNotifyWorker(snap, store.NewSettings(snap), mirror)

	seedApplications(t, snap, []core.Application{
		{ID: 2, Company: "Globex", Title: "Analyst", Status: core.StatusHired, Date: core.NewDate(2024, 1, 15)},
	})

	env := &amqp.Envelope{
		Kind:    amqp.KindRecords,
		Records: amqp.NewRecordsChangedMessage(amqp.OpUpdate, 2, 1),
	}
	assert.Error(t, w.HandleEvent(context.Background(), env))
}

func TestHandleEventRecordsWithoutPayload(t *testing.T) {
	snap := memory.New()
	w := NewNotifyWorker(snap, store.NewSettings(snap), nil)

	assert.Error(t, w.HandleEvent(context.Background(), &amqp.Envelope{Kind: amqp.KindRecords}))
}

func TestHandleEventSettingsKind(t *testing.T) {
	snap := memory.New()
	mirror := &fakeMirror{}
	w := NewNotifyWorker(snap, store.NewSettings(snap), mirror)

	env := &amqp.Envelope{Kind: amqp.KindSettings, Settings: &amqp.SettingsChangedMessage{Timestamp: time.Now()}}
	require.NoError(t, w.HandleEvent(context.Background(), env))
	assert.Empty(t, mirror.calls, "settings events do not trigger a mirror")
}

func TestMirrorNowEmptySnapshot(t *testing.T) {
	snap := memory.New()
	mirror := &fakeMirror{}
	w := NewNotifyWorker(snap, store.NewSettings(snap), mirror)

	require.NoError(t, w.MirrorNow(context.Background()))
	require.Len(t, mirror.calls, 1)
	assert.Empty(t, mirror.calls[0])
}
