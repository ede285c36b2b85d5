package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerpulse/internal/amqp"
	"careerpulse/internal/core"
	"careerpulse/internal/interchange"
	"careerpulse/internal/storage/memory"
	"careerpulse/internal/store"
)

type recordedEvent struct {
	op       string
	recordID int64
	total    int
}

type fakePublisher struct {
	records  []recordedEvent
	settings int
	fail     error
}

func (f *fakePublisher) PublishRecordsChanged(_ context.Context, op string, recordID int64, total int) error {
	if f.fail != nil {
		return f.fail
	}
	f.records = append(f.records, recordedEvent{op, recordID, total})
	return nil
}

func (f *fakePublisher) PublishSettingsChanged(context.Context) error {
	if f.fail != nil {
		return f.fail
	}
	f.settings++
	return nil
}

func newTestTracker(t *testing.T, events EventPublisher) *TrackerService {
	t.Helper()
	records, err := store.NewRecords(context.Background(), memory.New())
	require.NoError(t, err)
	return NewTrackerService(records, events)
}

func engineerAt(company string, year, month, day int) store.Fields {
	return store.Fields{
		Company: company,
		Title:   "Engineer",
		Status:  core.StatusPending,
		Date:    core.NewDate(year, month, day),
	}
}

func TestTrackerAddPublishesEvent(t *testing.T) {
	pub := &fakePublisher{}
	svc := newTestTracker(t, pub)

	app, err := svc.AddApplication(context.Background(), engineerAt("Acme", 2024, 3, 1))
	require.NoError(t, err)

	require.Len(t, pub.records, 1)
	assert.Equal(t, amqp.OpAdd, pub.records[0].op)
	assert.Equal(t, app.ID, pub.records[0].recordID)
	assert.Equal(t, 1, pub.records[0].total)
}

func TestTrackerEventFailureDoesNotFailRequest(t *testing.T) {
	pub := &fakePublisher{fail: errors.New("broker down")}
	svc := newTestTracker(t, pub)

	app, err := svc.AddApplication(context.Background(), engineerAt("Acme", 2024, 3, 1))
	require.NoError(t, err, "the local store is the source of truth")
	assert.NotZero(t, app.ID)
}

func TestTrackerNilPublisher(t *testing.T) {
	svc := newTestTracker(t, nil)
	_, err := svc.AddApplication(context.Background(), engineerAt("Acme", 2024, 3, 1))
	require.NoError(t, err)
	require.NoError(t, svc.DeleteApplication(context.Background(), svc.ListApplications()[0].ID))
}

func TestTrackerDeleteNotFound(t *testing.T) {
	pub := &fakePublisher{}
	svc := newTestTracker(t, pub)

	err := svc.DeleteApplication(context.Background(), 404)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Empty(t, pub.records, "failed operations publish nothing")
}

func TestTrackerExportImportRoundTrip(t *testing.T) {
	pub := &fakePublisher{}
	svc := newTestTracker(t, pub)

	a, err := svc.AddApplication(context.Background(), engineerAt("Acme", 2024, 3, 1))
	require.NoError(t, err)
	b, err := svc.AddApplication(context.Background(), engineerAt("Globex", 2024, 1, 15))
	require.NoError(t, err)

	data, err := svc.ExportData()
	require.NoError(t, err)

	other := newTestTracker(t, pub)
	n, err := other.ImportData(context.Background(), data)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	imported := other.ListApplications()
	require.Len(t, imported, 2)
	assert.Equal(t, a.ID, imported[0].ID) // most recent first
	assert.Equal(t, b.ID, imported[1].ID)

	last := pub.records[len(pub.records)-1]
	assert.Equal(t, amqp.OpReplace, last.op)
}

func TestTrackerImportFailureLeavesStoreUntouched(t *testing.T) {
	svc := newTestTracker(t, nil)
	_, err := svc.AddApplication(context.Background(), engineerAt("Acme", 2024, 3, 1))
	require.NoError(t, err)

	_, err = svc.ImportData(context.Background(), []byte(`{"not": "an array"}`))
	assert.ErrorIs(t, err, interchange.ErrShape)
	assert.Len(t, svc.ListApplications(), 1)

	_, err = svc.ImportData(context.Background(), []byte(`[{"id":`))
	assert.ErrorIs(t, err, interchange.ErrParse)
	assert.Len(t, svc.ListApplications(), 1)

	// A bare null is well-formed JSON but must not be mistaken for an
	// empty collection.
	_, err = svc.ImportData(context.Background(), []byte(`null`))
	assert.ErrorIs(t, err, interchange.ErrShape)
	assert.Len(t, svc.ListApplications(), 1)
}

func TestSettingsServiceSavePublishes(t *testing.T) {
	pub := &fakePublisher{}
	svc := NewSettingsService(store.NewSettings(memory.New()), pub)

	in := core.DefaultSettings()
	in.Theme = core.ThemeLight
	require.NoError(t, svc.Save(context.Background(), in))
	assert.Equal(t, 1, pub.settings)
	assert.Equal(t, core.ThemeLight, svc.Load(context.Background()).Theme)
}

func TestSettingsServiceInvalidEmailNotPublished(t *testing.T) {
	pub := &fakePublisher{}
	svc := NewSettingsService(store.NewSettings(memory.New()), pub)

	in := core.DefaultSettings()
	in.Profile.Email = "broken"
	err := svc.Save(context.Background(), in)
	assert.ErrorIs(t, err, core.ErrInvalidEmail)
	assert.Zero(t, pub.settings)
}
