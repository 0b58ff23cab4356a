package service

import (
	"context"
	"time"

	"github.com/bumdes-sale/backend/internal/core/domain"
	"github.com/bumdes-sale/backend/internal/core/ports"
)

// ResourceService implements CRUD over educational resources.
type ResourceService struct {
	store ports.DocumentStore[domain.EducationalResource]
}

func NewResourceService(store ports.DocumentStore[domain.EducationalResource]) *ResourceService {
	return &ResourceService{store: store}
}

func (s *ResourceService) ListPublished(ctx context.Context) ([]*domain.EducationalResource, error) {
	return s.store.Find(ctx, ports.Query{
		Filter: ports.Filter{"is_published": true},
		Limit:  publicListLimit,
	})
}

func (s *ResourceService) GetPublished(ctx context.Context, id string) (*domain.EducationalResource, error) {
	resource, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !resource.IsPublished {
		return nil, domain.ErrNotFound
	}
	return resource, nil
}

func (s *ResourceService) ListAll(ctx context.Context) ([]*domain.EducationalResource, error) {
	return s.store.Find(ctx, ports.Query{Limit: adminListLimit})
}

func (s *ResourceService) Create(ctx context.Context, in ports.ResourceInput) (*domain.EducationalResource, error) {
	now := time.Now().UTC()
	resource := &domain.EducationalResource{
		Title:       in.Title,
		Description: in.Description,
		Content:     in.Content,
		Type:        in.Type,
		ResourceURL: in.ResourceURL,
		IsPublished: in.IsPublished,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	id, err := s.store.Insert(ctx, resource)
	if err != nil {
		return nil, err
	}
	resource.ID = id
	return resource, nil
}

func (s *ResourceService) Update(ctx context.Context, id string, in ports.ResourceInput) (*domain.EducationalResource, error) {
	patch := ports.Fields{
		"title":        in.Title,
		"description":  in.Description,
		"content":      in.Content,
		"type":         in.Type,
		"resource_url": in.ResourceURL,
		"is_published": in.IsPublished,
		"updated_at":   time.Now().UTC(),
	}
	if err := s.store.UpdateByID(ctx, id, patch); err != nil {
		return nil, err
	}
	return s.store.FindByID(ctx, id)
}

func (s *ResourceService) Delete(ctx context.Context, id string) error {
	return s.store.DeleteByID(ctx, id)
}
