package services

import (
	"context"
	"fmt"
	"log/slog"

	"careerpulse/internal/amqp"
	"careerpulse/internal/core"
	"careerpulse/internal/interchange"
	"careerpulse/internal/store"
)

// EventPublisher is the outbound port for change events. A nil publisher
// disables events entirely.
type EventPublisher interface {
	PublishRecordsChanged(ctx context.Context, op string, recordID int64, total int) error
	PublishSettingsChanged(ctx context.Context) error
}

// TrackerService orchestrates record operations: mutate the store first,
// then publish a change event. Event failures never fail the request; the
// local store is the source of truth.
type TrackerService struct {
	records *store.Records
	events  EventPublisher
}

func NewTrackerService(records *store.Records, events EventPublisher) *TrackerService {
	return &TrackerService{records: records, events: events}
}

// AddApplication creates a record and announces the change.
func (s *TrackerService) AddApplication(ctx context.Context, f store.Fields) (core.Application, error) {
	app, err := s.records.Add(ctx, f)
	if err != nil {
		return core.Application{}, err
	}
	s.publishRecordsChanged(ctx, amqp.OpAdd, app.ID)
	return app, nil
}

// UpdateApplication replaces all mutable fields of a record.
func (s *TrackerService) UpdateApplication(ctx context.Context, id int64, f store.Fields) (core.Application, error) {
	app, err := s.records.Update(ctx, id, f)
	if err != nil {
		return core.Application{}, err
	}
	s.publishRecordsChanged(ctx, amqp.OpUpdate, app.ID)
	return app, nil
}

// DeleteApplication removes a record.
func (s *TrackerService) DeleteApplication(ctx context.Context, id int64) error {
	if err := s.records.Remove(ctx, id); err != nil {
		return err
	}
	s.publishRecordsChanged(ctx, amqp.OpDelete, id)
	return nil
}

// GetApplication returns one record.
func (s *TrackerService) GetApplication(id int64) (core.Application, error) {
	return s.records.Get(id)
}

// ListApplications returns the collection sorted by date descending.
func (s *TrackerService) ListApplications() []core.Application {
	return s.records.List()
}

// ExportData serializes the full collection for download.
func (s *TrackerService) ExportData() ([]byte, error) {
	return interchange.Export(s.records.Snapshot())
}

// ImportData parses an exported document and replaces the entire
// collection. Parse and shape failures leave the store untouched.
func (s *TrackerService) ImportData(ctx context.Context, data []byte) (int, error) {
	apps, err := interchange.Import(data)
	if err != nil {
		return 0, err
	}
	if err := s.records.ReplaceAll(ctx, apps); err != nil {
		return 0, fmt.Errorf("replace applications: %w", err)
	}
	s.publishRecordsChanged(ctx, amqp.OpReplace, 0)
	return len(apps), nil
}

func (s *TrackerService) publishRecordsChanged(ctx context.Context, op string, recordID int64) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishRecordsChanged(ctx, op, recordID, s.records.Len()); err != nil {
		slog.ErrorContext(ctx, "Failed to publish records-changed event",
			"op", op, "record_id", recordID, "error", err)
	}
}
