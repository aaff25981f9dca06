// Package memory provides an in-memory snapshot store. It mirrors the
// SQLite store's semantics and backs tests and dry-run exports.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/khangai-labs/khuvaari-cli/internal/core/domain"
	"github.com/khangai-labs/khuvaari-cli/internal/core/ports/driven"
)

var _ driven.SnapshotStore = (*Store)(nil)

// Store keeps the last saved timetable per document kind.
type Store struct {
	mu        sync.RWMutex
	documents map[domain.DocumentKind]*domain.Timetable
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{documents: make(map[domain.DocumentKind]*domain.Timetable)}
}

// SaveTimetable stores one normalised document, replacing any previous
// snapshot of the same kind.
func (s *Store) SaveTimetable(_ context.Context, t *domain.Timetable) error {
	if t == nil {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[t.Kind] = t
	return nil
}

// SectionNames lists the stored section names of one document kind,
// sorted.
func (s *Store) SectionNames(_ context.Context, kind domain.DocumentKind) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.documents[kind]
	if !ok {
		return nil, nil
	}
	names := make([]string, len(t.SectionNames))
	copy(names, t.SectionNames)
	sort.Strings(names)
	return names, nil
}

// Timetable returns the stored document of one kind, or nil.
func (s *Store) Timetable(kind domain.DocumentKind) *domain.Timetable {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.documents[kind]
}

// Close is a no-op for the in-memory store.
func (s *Store) Close() error {
	return nil
}
