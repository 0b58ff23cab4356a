package service

import (
	"context"
	"time"

	"github.com/bumdes-sale/backend/internal/core/domain"
	"github.com/bumdes-sale/backend/internal/core/ports"
)

// DocumentService implements CRUD over regulatory documents, listed
// newest year first.
type DocumentService struct {
	store ports.DocumentStore[domain.Document]
}

func NewDocumentService(store ports.DocumentStore[domain.Document]) *DocumentService {
	return &DocumentService{store: store}
}

func (s *DocumentService) List(ctx context.Context) ([]*domain.Document, error) {
	return s.store.Find(ctx, ports.Query{
		Sort:  []ports.SortField{{Key: "year", Desc: true}},
		Limit: publicListLimit,
	})
}

func (s *DocumentService) Create(ctx context.Context, in ports.DocumentInput) (*domain.Document, error) {
	now := time.Now().UTC()
	doc := &domain.Document{
		Title:       in.Title,
		Description: in.Description,
		Year:        in.Year,
		FileURL:     in.FileURL,
		FileSize:    in.FileSize,
		Category:    in.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	id, err := s.store.Insert(ctx, doc)
	if err != nil {
		return nil, err
	}
	doc.ID = id
	return doc, nil
}

func (s *DocumentService) Update(ctx context.Context, id string, in ports.DocumentInput) (*domain.Document, error) {
	patch := ports.Fields{
		"title":       in.Title,
		"description": in.Description,
		"year":        in.Year,
		"file_url":    in.FileURL,
		"file_size":   in.FileSize,
		"category":    in.Category,
		"updated_at":  time.Now().UTC(),
	}
	if err := s.store.UpdateByID(ctx, id, patch); err != nil {
		return nil, err
	}
	return s.store.FindByID(ctx, id)
}

func (s *DocumentService) Delete(ctx context.Context, id string) error {
	return s.store.DeleteByID(ctx, id)
}
