// Package store provides an insertion-ordered, in-memory repository of
// records with point lookups, deduplicating saves and deletion by id.
package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tailored-agentic-units/recordstore/observability"
	"github.com/tailored-agentic-units/recordstore/record"
)

// Option configures a Store after config-driven initialization.
type Option func(*Store)

// WithObserver overrides the default NoOpObserver. A nil observer is
// ignored.
func WithObserver(o observability.Observer) Option {
	return func(s *Store) {
		if o != nil {
			s.observer = o
		}
	}
}

// WithContext sets the context passed to the observer with every event.
// A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(s *Store) {
		if ctx != nil {
			s.ctx = ctx
		}
	}
}

// Repository is the record access surface shared by the in-memory Store and
// any future persistence backend.
type Repository interface {
	FindByID(id int) (record.Record, bool)
	FindByEmail(email string) (record.Record, bool)
	Save(r record.Record) record.Record
	Delete(id int) bool
	Records() []record.Record
	Len() int
}

var _ Repository = (*Store)(nil)

// Store holds records in insertion order. All methods are safe for
// concurrent use; each operation runs inside a single critical section.
type Store struct {
	id         string
	connection string
	records    []record.Record
	observer   observability.Observer
	ctx        context.Context
	mu         sync.RWMutex
}

// New creates an empty Store from configuration. The connection descriptor
// is retained but never interpreted.
func New(cfg *Config, opts ...Option) *Store {
	s := &Store{
		id:         uuid.Must(uuid.NewV7()).String(),
		connection: cfg.Connection,
		observer:   observability.NoOpObserver{},
		ctx:        context.Background(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewMemoryStore creates an empty Store holding the given connection
// descriptor.
func NewMemoryStore(connection string, opts ...Option) *Store {
	return New(&Config{Connection: connection}, opts...)
}

// ID returns the unique store instance identifier.
func (s *Store) ID() string {
	return s.id
}

// Connection returns the opaque connection descriptor the store was
// configured with.
func (s *Store) Connection() string {
	return s.connection
}

// FindByID returns the first record, in insertion order, whose ID matches.
func (s *Store) FindByID(id int) (record.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexByID(id); i >= 0 {
		return s.records[i], true
	}
	return record.Record{}, false
}

// FindByEmail returns the first record, in insertion order, whose Email
// matches.
func (s *Store) FindByEmail(email string) (record.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := slices.IndexFunc(s.records, func(r record.Record) bool {
		return r.Email == email
	})
	if i < 0 {
		return record.Record{}, false
	}
	return s.records[i], true
}

// Save appends r unless a structurally equal record is already present.
// It returns r in both cases.
func (s *Store) Save(r record.Record) record.Record {
	s.mu.Lock()
	exists := slices.ContainsFunc(s.records, r.Equal)
	if !exists {
		s.records = append(s.records, r)
	}
	count := len(s.records)
	s.mu.Unlock()

	if exists {
		s.emit(EventDuplicate, observability.LevelVerbose, "store.Save", map[string]any{
			"record_id": r.ID,
		})
		return r
	}

	s.emit(EventSaved, observability.LevelInfo, "store.Save", map[string]any{
		"record_id": r.ID,
		"name":      r.Name,
		"count":     count,
	})
	return r
}

// Delete removes the first record with the given id. It reports whether a
// record was removed.
func (s *Store) Delete(id int) bool {
	s.mu.Lock()
	i := s.indexByID(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}

	target := s.records[i]
	i = slices.IndexFunc(s.records, target.Equal)
	s.records = slices.Delete(s.records, i, i+1)
	count := len(s.records)
	s.mu.Unlock()

	s.emit(EventDeleted, observability.LevelInfo, "store.Delete", map[string]any{
		"record_id": id,
		"count":     count,
	})
	return true
}

// Records returns a copy of all records in insertion order.
func (s *Store) Records() []record.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.records)
}

// Adults returns the records whose age is 18 or older, in insertion order.
func (s *Store) Adults() []record.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var adults []record.Record
	for _, r := range s.records {
		if r.IsAdult() {
			adults = append(adults, r)
		}
	}
	return adults
}

// AverageAge returns the mean age of all records, or 0 for an empty store.
func (s *Store) AverageAge() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.records) == 0 {
		return 0
	}

	total := 0
	for _, r := range s.records {
		total += r.Age
	}
	return float64(total) / float64(len(s.records))
}

// Len returns the number of records held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// indexByID must be called with s.mu held.
func (s *Store) indexByID(id int) int {
	return slices.IndexFunc(s.records, func(r record.Record) bool {
		return r.ID == id
	})
}

func (s *Store) emit(typ observability.EventType, level observability.Level, source string, data map[string]any) {
	data["store_id"] = s.id
	s.observer.OnEvent(s.ctx, observability.Event{
		Type:      typ,
		Level:     level,
		Timestamp: time.Now(),
		Source:    source,
		Data:      data,
	})
}
