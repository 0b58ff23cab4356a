package ports

import (
	"context"

	"github.com/bumdes-sale/backend/internal/core/domain"
)

// UnitInput carries the mutable fields of a business unit.
type UnitInput struct {
	Name        domain.BilingualText
	Category    string
	Description domain.BilingualText
	Revenue     string
	Contact     string
	TeamSize    int
	Status      string
}

// UnitService manages business units. ListPublic only returns active units.
type UnitService interface {
	ListPublic(ctx context.Context) ([]*domain.BusinessUnit, error)
	Get(ctx context.Context, id string) (*domain.BusinessUnit, error)
	Create(ctx context.Context, in UnitInput) (*domain.BusinessUnit, error)
	Update(ctx context.Context, id string, in UnitInput) (*domain.BusinessUnit, error)
	Delete(ctx context.Context, id string) error
}

// ProductInput carries the mutable fields of a product.
type ProductInput struct {
	Name        domain.BilingualText
	Category    string
	Price       string
	Description *domain.BilingualText
	StockStatus domain.StockStatus
	ImageURL    string
}

// ProductService manages products.
type ProductService interface {
	List(ctx context.Context) ([]*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, in ProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, in ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

// NewsInput carries the mutable fields of a news article.
type NewsInput struct {
	Title       domain.BilingualText
	Excerpt     domain.BilingualText
	Content     domain.BilingualText
	Category    string
	ImageURL    string
	IsPublished bool
}

// NewsService manages news articles. The public views only expose
// published articles, newest first.
type NewsService interface {
	ListPublished(ctx context.Context) ([]*domain.News, error)
	GetPublished(ctx context.Context, id string) (*domain.News, error)
	ListAll(ctx context.Context) ([]*domain.News, error)
	Create(ctx context.Context, authorID string, in NewsInput) (*domain.News, error)
	Update(ctx context.Context, id string, in NewsInput) (*domain.News, error)
	Delete(ctx context.Context, id string) error
}

// ResourceInput carries the mutable fields of an educational resource.
type ResourceInput struct {
	Title       domain.BilingualText
	Description domain.BilingualText
	Content     domain.BilingualText
	Type        domain.ResourceType
	ResourceURL string
	IsPublished bool
}

// ResourceService manages educational resources.
type ResourceService interface {
	ListPublished(ctx context.Context) ([]*domain.EducationalResource, error)
	GetPublished(ctx context.Context, id string) (*domain.EducationalResource, error)
	ListAll(ctx context.Context) ([]*domain.EducationalResource, error)
	Create(ctx context.Context, in ResourceInput) (*domain.EducationalResource, error)
	Update(ctx context.Context, id string, in ResourceInput) (*domain.EducationalResource, error)
	Delete(ctx context.Context, id string) error
}

// DocumentInput carries the mutable fields of a regulatory document.
type DocumentInput struct {
	Title       domain.BilingualText
	Description domain.BilingualText
	Year        int
	FileURL     string
	FileSize    string
	Category    string
}

// DocumentService manages regulatory documents.
type DocumentService interface {
	List(ctx context.Context) ([]*domain.Document, error)
	Create(ctx context.Context, in DocumentInput) (*domain.Document, error)
	Update(ctx context.Context, id string, in DocumentInput) (*domain.Document, error)
	Delete(ctx context.Context, id string) error
}
