package gallery

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/andreyxaxa/Photo-Gallery/internal/entity"
	"github.com/andreyxaxa/Photo-Gallery/pkg/types/errs"
	"github.com/google/uuid"
)

type nopLogger struct{}

func (nopLogger) Debug(interface{}, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})       {}
func (nopLogger) Warn(string, ...interface{})       {}
func (nopLogger) Error(interface{}, ...interface{}) {}
func (nopLogger) Fatal(interface{}, ...interface{}) {}

type memMetadata struct {
	mu        sync.Mutex
	rows      map[uuid.UUID]entity.ImageRecord
	now       func() time.Time
	createErr error
	deleteErr error
}

func newMemMetadata(now func() time.Time) *memMetadata {
	return &memMetadata{rows: make(map[uuid.UUID]entity.ImageRecord), now: now}
}

func (m *memMetadata) add(rec entity.ImageRecord) entity.ImageRecord {
	m.mu.Lock()
	defer m.mu.Unlock()

	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	m.rows[rec.ID] = rec

	return rec
}

func (m *memMetadata) Create(_ context.Context, rec *entity.ImageRecord) error {
	if m.createErr != nil {
		return m.createErr
	}

	rec.ID = uuid.New()
	rec.CreatedAt = m.now()
	m.add(*rec)

	return nil
}

func (m *memMetadata) GetByID(_ context.Context, id uuid.UUID) (*entity.ImageRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.rows[id]
	if !ok {
		return nil, errs.ErrRecordNotFound
	}

	return &rec, nil
}

func (m *memMetadata) ListAll(ctx context.Context) ([]entity.ImageRecord, error) {
	return m.ListBetween(ctx, time.Time{}, time.Time{})
}

func (m *memMetadata) ListBetween(_ context.Context, from, to time.Time) ([]entity.ImageRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]entity.ImageRecord, 0)
	for _, rec := range m.rows {
		if !from.IsZero() && rec.CreatedAt.Before(from) {
			continue
		}
		if !to.IsZero() && !rec.CreatedAt.Before(to) {
			continue
		}
		out = append(out, rec)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	return out, nil
}

func (m *memMetadata) ListCreatedAt(ctx context.Context) ([]time.Time, error) {
	all, _ := m.ListAll(ctx)

	times := make([]time.Time, 0, len(all))
	for _, rec := range all {
		times = append(times, rec.CreatedAt)
	}

	return times, nil
}

func (m *memMetadata) Delete(_ context.Context, id uuid.UUID) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.rows[id]; !ok {
		return errs.ErrRecordNotFound
	}
	delete(m.rows, id)

	return nil
}

type memObjects struct {
	mu        sync.Mutex
	objects   map[string][]byte
	types     map[string]string
	opts      map[string]entity.UploadOptions
	uploadErr map[string]error
	removeErr error
}

func newMemObjects() *memObjects {
	return &memObjects{
		objects:   make(map[string][]byte),
		types:     make(map[string]string),
		opts:      make(map[string]entity.UploadOptions),
		uploadErr: make(map[string]error),
	}
}

func (o *memObjects) Upload(_ context.Context, path string, data []byte, contentType string, opts entity.UploadOptions) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	for suffix, err := range o.uploadErr {
		if len(path) >= len(suffix) && path[len(path)-len(suffix):] == suffix {
			return err
		}
	}

	if _, ok := o.objects[path]; ok && !opts.Upsert {
		return errs.ErrObjectExists
	}

	o.objects[path] = data
	o.types[path] = contentType
	o.opts[path] = opts

	return nil
}

func (o *memObjects) Download(_ context.Context, path string) ([]byte, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	b, ok := o.objects[path]
	if !ok {
		return nil, errs.ErrRecordNotFound
	}

	return b, nil
}

func (o *memObjects) PublicURL(path string) string {
	return "http://storage.local/images-bucket/" + path
}

func (o *memObjects) Remove(_ context.Context, paths []string) error {
	if o.removeErr != nil {
		return o.removeErr
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	for _, p := range paths {
		delete(o.objects, p)
	}

	return nil
}

func (o *memObjects) has(path string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	_, ok := o.objects[path]

	return ok
}

type recordEvents struct {
	events []entity.GalleryEvent
	err    error

	// block makes SendEvent wait for ctx, like a writer with no reachable broker
	block bool
}

func (r *recordEvents) SendEvent(ctx context.Context, e entity.GalleryEvent) error {
	r.events = append(r.events, e)
	if r.block {
		<-ctx.Done()
		return ctx.Err()
	}

	return r.err
}

func (r *recordEvents) Close() error { return nil }

var errBoom = errors.New("boom")
