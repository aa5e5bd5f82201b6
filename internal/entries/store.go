// Package entries holds the ordered collection of timesheet entries and
// persists it as a single serialized blob.
package entries

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/shiftlog-dev/shiftlog/internal/blob"
	"github.com/shiftlog-dev/shiftlog/internal/log"
	"github.com/shiftlog-dev/shiftlog/internal/model"
)

var (
	// ErrNotFound is returned when an ID does not name a stored entry.
	ErrNotFound = errors.New("entry not found")
	// ErrDuplicateID is returned when Add is given an ID that is already stored.
	ErrDuplicateID = errors.New("duplicate entry ID")
)

// Store is an ordered collection keyed by entry ID. Iteration follows
// insertion order; Update keeps an entry's position.
type Store struct {
	order []string
	byID  map[string]model.Entry

	blob   blob.Store
	logger *log.Logger
}

// New returns an empty Store that persists to b. A nil logger discards.
func New(b blob.Store, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Discard()
	}
	return &Store{
		byID:   make(map[string]model.Entry),
		blob:   b,
		logger: logger,
	}
}

// Load reads the collection from b. A missing, empty or undecodable blob
// yields an empty store; only a failing backend is an error.
func Load(ctx context.Context, b blob.Store, logger *log.Logger) (*Store, error) {
	s := New(b, logger)

	data, err := b.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading entries: %w", err)
	}
	if len(data) == 0 {
		return s, nil
	}

	var list []model.Entry
	if err := json.Unmarshal(data, &list); err != nil {
		s.logger.Warn("stored entries are unreadable, starting empty", "error", err)
		return s, nil
	}

	for _, e := range list {
		if e.ID == "" {
			e.ID = NewID()
		}
		if _, dup := s.byID[e.ID]; dup {
			s.logger.Warn("duplicate entry id in stored data, reassigning", "id", e.ID)
			e.ID = NewID()
		}
		s.insert(e)
	}
	s.logger.Debug("loaded entries", "count", len(s.order))
	return s, nil
}

// NewID returns a fresh entry ID.
func NewID() string {
	return uuid.NewString()
}

// Persist writes the whole collection to the blob store.
func (s *Store) Persist(ctx context.Context) error {
	data, err := s.Marshal()
	if err != nil {
		return err
	}
	if err := s.blob.Set(ctx, data); err != nil {
		return fmt.Errorf("persisting entries: %w", err)
	}
	s.logger.Debug("persisted entries", "count", len(s.order), "bytes", len(data))
	return nil
}

// Marshal returns the serialized collection.
func (s *Store) Marshal() ([]byte, error) {
	data, err := json.Marshal(s.All())
	if err != nil {
		return nil, fmt.Errorf("encoding entries: %w", err)
	}
	return data, nil
}

// Add appends e. An empty ID is filled in; the stored entry is returned.
func (s *Store) Add(e model.Entry) (model.Entry, error) {
	if e.ID == "" {
		e.ID = NewID()
	}
	if _, ok := s.byID[e.ID]; ok {
		return model.Entry{}, fmt.Errorf("%w: %s", ErrDuplicateID, e.ID)
	}
	s.insert(e)
	return e, nil
}

// Update replaces the entry with the given ID, keeping its position and ID.
func (s *Store) Update(id string, e model.Entry) (model.Entry, error) {
	if _, ok := s.byID[id]; !ok {
		return model.Entry{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	e.ID = id
	s.byID[id] = e
	return e, nil
}

// Remove deletes the entry with the given ID. Later entries move up one place.
func (s *Store) Remove(id string) (model.Entry, error) {
	e, ok := s.byID[id]
	if !ok {
		return model.Entry{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(s.byID, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return e, nil
}

// Clear removes every entry.
func (s *Store) Clear() {
	s.order = nil
	s.byID = make(map[string]model.Entry)
}

// Get returns the entry with the given ID.
func (s *Store) Get(id string) (model.Entry, bool) {
	e, ok := s.byID[id]
	return e, ok
}

// Index returns the display position of id, or -1.
func (s *Store) Index(id string) int {
	for i, oid := range s.order {
		if oid == id {
			return i
		}
	}
	return -1
}

// All returns a copy of the entries in order.
func (s *Store) All() []model.Entry {
	out := make([]model.Entry, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// Len returns the number of entries.
func (s *Store) Len() int { return len(s.order) }

func (s *Store) insert(e model.Entry) {
	s.order = append(s.order, e.ID)
	s.byID[e.ID] = e
}
