package service

import (
	"context"
	"fmt"

	"github.com/bumdes-sale/backend/internal/core/domain"
	"github.com/bumdes-sale/backend/internal/core/ports"
)

// stubStore is an in-memory ports.DocumentStore used by the service
// tests. Patches are recorded rather than applied, so tests assert on
// the exact field-set an operation produced.
type stubStore[T any] struct {
	docs       map[string]*T
	inserted   []*T
	patches    map[string][]ports.Fields
	findResult []*T
	count      int64
	nextID     int

	insertErr error
	findErr   error
	countErr  error
}

func newStubStore[T any]() *stubStore[T] {
	return &stubStore[T]{
		docs:    make(map[string]*T),
		patches: make(map[string][]ports.Fields),
	}
}

func (s *stubStore[T]) Insert(_ context.Context, doc *T) (string, error) {
	if s.insertErr != nil {
		return "", s.insertErr
	}
	s.nextID++
	id := fmt.Sprintf("doc-%d", s.nextID)
	s.docs[id] = doc
	s.inserted = append(s.inserted, doc)
	return id, nil
}

func (s *stubStore[T]) FindByID(_ context.Context, id string) (*T, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	doc, ok := s.docs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return doc, nil
}

func (s *stubStore[T]) Find(_ context.Context, _ ports.Query) ([]*T, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.findResult, nil
}

func (s *stubStore[T]) UpdateByID(_ context.Context, id string, patch ports.Fields) error {
	if _, ok := s.docs[id]; !ok {
		return domain.ErrNotFound
	}
	s.patches[id] = append(s.patches[id], patch)
	return nil
}

func (s *stubStore[T]) DeleteByID(_ context.Context, id string) error {
	if _, ok := s.docs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.docs, id)
	return nil
}

func (s *stubStore[T]) Count(_ context.Context, _ ports.Filter) (int64, error) {
	if s.countErr != nil {
		return 0, s.countErr
	}
	return s.count, nil
}

func (s *stubStore[T]) lastPatch(id string) ports.Fields {
	patches := s.patches[id]
	if len(patches) == 0 {
		return nil
	}
	return patches[len(patches)-1]
}
