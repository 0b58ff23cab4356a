package service

import (
	"context"
	"time"

	"github.com/bumdes-sale/backend/internal/core/domain"
	"github.com/bumdes-sale/backend/internal/core/ports"
)

// ProductService implements CRUD over products.
type ProductService struct {
	store ports.DocumentStore[domain.Product]
}

func NewProductService(store ports.DocumentStore[domain.Product]) *ProductService {
	return &ProductService{store: store}
}

func (s *ProductService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.store.Find(ctx, ports.Query{Limit: publicListLimit})
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.store.FindByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, in ports.ProductInput) (*domain.Product, error) {
	now := time.Now().UTC()
	product := &domain.Product{
		Name:        in.Name,
		Category:    in.Category,
		Price:       in.Price,
		Description: in.Description,
		StockStatus: in.StockStatus,
		ImageURL:    in.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	id, err := s.store.Insert(ctx, product)
	if err != nil {
		return nil, err
	}
	product.ID = id
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id string, in ports.ProductInput) (*domain.Product, error) {
	patch := ports.Fields{
		"name":         in.Name,
		"category":     in.Category,
		"price":        in.Price,
		"description":  in.Description,
		"stock_status": in.StockStatus,
		"image_url":    in.ImageURL,
		"updated_at":   time.Now().UTC(),
	}
	if err := s.store.UpdateByID(ctx, id, patch); err != nil {
		return nil, err
	}
	return s.store.FindByID(ctx, id)
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	return s.store.DeleteByID(ctx, id)
}
