package service

import (
	"context"
	"time"

	"github.com/bumdes-sale/backend/internal/core/domain"
	"github.com/bumdes-sale/backend/internal/core/ports"
)

// NewsService implements CRUD over news articles. Published views are
// newest first by published_at.
type NewsService struct {
	store ports.DocumentStore[domain.News]
}

func NewNewsService(store ports.DocumentStore[domain.News]) *NewsService {
	return &NewsService{store: store}
}

func (s *NewsService) ListPublished(ctx context.Context) ([]*domain.News, error) {
	return s.store.Find(ctx, ports.Query{
		Filter: ports.Filter{"is_published": true},
		Sort:   []ports.SortField{{Key: "published_at", Desc: true}},
		Limit:  publicListLimit,
	})
}

// GetPublished fetches a single article; unpublished articles are
// indistinguishable from missing ones.
func (s *NewsService) GetPublished(ctx context.Context, id string) (*domain.News, error) {
	article, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !article.IsPublished {
		return nil, domain.ErrNotFound
	}
	return article, nil
}

func (s *NewsService) ListAll(ctx context.Context) ([]*domain.News, error) {
	return s.store.Find(ctx, ports.Query{
		Sort:  []ports.SortField{{Key: "published_at", Desc: true}},
		Limit: adminListLimit,
	})
}

// Create stamps the creating admin as author and publishes immediately
// when in.IsPublished is set.
func (s *NewsService) Create(ctx context.Context, authorID string, in ports.NewsInput) (*domain.News, error) {
	now := time.Now().UTC()
	article := &domain.News{
		Title:       in.Title,
		Excerpt:     in.Excerpt,
		Content:     in.Content,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
		IsPublished: in.IsPublished,
		Author:      authorID,
		PublishedAt: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	id, err := s.store.Insert(ctx, article)
	if err != nil {
		return nil, err
	}
	article.ID = id
	return article, nil
}

func (s *NewsService) Update(ctx context.Context, id string, in ports.NewsInput) (*domain.News, error) {
	patch := ports.Fields{
		"title":        in.Title,
		"excerpt":      in.Excerpt,
		"content":      in.Content,
		"category":     in.Category,
		"image_url":    in.ImageURL,
		"is_published": in.IsPublished,
		"updated_at":   time.Now().UTC(),
	}
	if err := s.store.UpdateByID(ctx, id, patch); err != nil {
		return nil, err
	}
	return s.store.FindByID(ctx, id)
}

func (s *NewsService) Delete(ctx context.Context, id string) error {
	return s.store.DeleteByID(ctx, id)
}
