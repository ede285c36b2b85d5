package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"careerpulse/internal/core"
)

// Fields holds the mutable fields of an application. Add assigns the id;
// Update replaces every field of the identified record.
type Fields struct {
	Company string
	Title   string
	Status  core.Status
	Date    core.Date
	Notes   string
}

// Records owns the application collection. Every successful mutation
// writes the full collection through to the snapshot store before the
// in-memory state is committed.
type Records struct {
	mu     sync.Mutex
	snap   SnapshotStore
	apps   map[int64]core.Application
	order  []int64 // insertion order, tie-break for equal dates
	lastID int64

	// now is overridable in tests; ids are derived from it.
	now func() time.Time
}

// NewRecords loads the persisted collection, or starts empty when no
// snapshot exists yet.
func NewRecords(ctx context.Context, snap SnapshotStore) (*Records, error) {
	r := &Records{
		snap: snap,
		apps: make(map[int64]core.Application),
		now:  time.Now,
	}

	data, ok, err := snap.Load(ctx, KeyApplications)
	if err != nil {
		return nil, fmt.Errorf("load applications snapshot: %w", err)
	}
	if !ok {
		return r, nil
	}

	var apps []core.Application
	if err := json.Unmarshal(data, &apps); err != nil {
		return nil, fmt.Errorf("decode applications snapshot: %w", err)
	}
	for _, a := range apps {
		if _, dup := r.apps[a.ID]; dup {
			return nil, fmt.Errorf("applications snapshot: duplicate id %d", a.ID)
		}
		r.apps[a.ID] = a
		r.order = append(r.order, a.ID)
		if a.ID > r.lastID {
			r.lastID = a.ID
		}
	}

	slog.DebugContext(ctx, "Applications loaded", "count", len(apps))
	return r, nil
}

// nextID returns a fresh id, time-derived but strictly monotonic within a
// session so rapid adds never collide.
func (r *Records) nextID() int64 {
	id := r.now().UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id
	return id
}

// Add creates a new application with a fresh id and persists the
// collection.
func (r *Records) Add(ctx context.Context, f Fields) (core.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	app := core.Application{
		ID:      r.nextID(),
		Company: f.Company,
		Title:   f.Title,
		Status:  f.Status,
		Date:    f.Date,
		Notes:   f.Notes,
	}
	if err := app.Validate(); err != nil {
		return core.Application{}, err
	}

	if err := r.persist(ctx, append(r.snapshotLocked(), app)); err != nil {
		return core.Application{}, err
	}
	r.apps[app.ID] = app
	r.order = append(r.order, app.ID)
	return app, nil
}

// Update replaces all mutable fields of the record matching id.
func (r *Records) Update(ctx context.Context, id int64, f Fields) (core.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.apps[id]; !ok {
		return core.Application{}, ErrNotFound
	}
	app := core.Application{
		ID:      id,
		Company: f.Company,
		Title:   f.Title,
		Status:  f.Status,
		Date:    f.Date,
		Notes:   f.Notes,
	}
	if err := app.Validate(); err != nil {
		return core.Application{}, err
	}

	updated := r.snapshotLocked()
	for i := range updated {
		if updated[i].ID == id {
			updated[i] = app
		}
	}
	if err := r.persist(ctx, updated); err != nil {
		return core.Application{}, err
	}
	r.apps[id] = app
	return app, nil
}

// Remove deletes the record matching id. A missing id fails with
// ErrNotFound and does not trigger a persistence write.
func (r *Records) Remove(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.apps[id]; !ok {
		return ErrNotFound
	}

	remaining := make([]core.Application, 0, len(r.order)-1)
	order := make([]int64, 0, len(r.order)-1)
	for _, oid := range r.order {
		if oid == id {
			continue
		}
		remaining = append(remaining, r.apps[oid])
		order = append(order, oid)
	}
	if err := r.persist(ctx, remaining); err != nil {
		return err
	}
	delete(r.apps, id)
	r.order = order
	return nil
}

// Get returns the record matching id.
func (r *Records) Get(id int64) (core.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	app, ok := r.apps[id]
	if !ok {
		return core.Application{}, ErrNotFound
	}
	return app, nil
}

// List returns all applications sorted by date descending; equal dates
// keep insertion order.
func (r *Records) List() []core.Application {
	r.mu.Lock()
	defer r.mu.Unlock()
	return core.SortByDateDesc(r.snapshotLocked())
}

// Snapshot returns the collection in insertion order, the same order the
// persisted and exported documents use.
func (r *Records) Snapshot() []core.Application {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

// Len returns the number of live records.
func (r *Records) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.apps)
}

// ReplaceAll swaps the entire collection, used by import. The incoming
// records keep their ids; duplicates are rejected before anything is
// touched.
func (r *Records) ReplaceAll(ctx context.Context, apps []core.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[int64]struct{}, len(apps))
	var lastID int64
	for _, a := range apps {
		if _, dup := seen[a.ID]; dup {
			return fmt.Errorf("duplicate id %d in imported data", a.ID)
		}
		seen[a.ID] = struct{}{}
		if a.ID > lastID {
			lastID = a.ID
		}
	}

	if err := r.persist(ctx, apps); err != nil {
		return err
	}

	r.apps = make(map[int64]core.Application, len(apps))
	r.order = r.order[:0]
	for _, a := range apps {
		r.apps[a.ID] = a
		r.order = append(r.order, a.ID)
	}
	if lastID > r.lastID {
		r.lastID = lastID
	}
	return nil
}

func (r *Records) snapshotLocked() []core.Application {
	out := make([]core.Application, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.apps[id])
	}
	return out
}

func (r *Records) persist(ctx context.Context, apps []core.Application) error {
	if apps == nil {
		apps = []core.Application{}
	}
	data, err := json.Marshal(apps)
	if err != nil {
		return fmt.Errorf("encode applications snapshot: %w", err)
	}
	if err := r.snap.Save(ctx, KeyApplications, data); err != nil {
		return &PersistenceError{Key: KeyApplications, Err: err}
	}
	return nil
}
