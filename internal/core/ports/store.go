package ports

import "context"

// Filter is a field-match predicate passed to the document store.
// Keys are stored field names.
type Filter map[string]any

// Fields is a field-set patch applied by update operations.
type Fields map[string]any

// SortField orders a query result by one stored field.
type SortField struct {
	Key  string
	Desc bool
}

// Query describes a bounded, ordered view over a collection.
type Query struct {
	Filter Filter
	Sort   []SortField
	Limit  int64
}

// DocumentStore is the persistence contract shared by every content
// collection: single-document operations only, no cross-operation
// atomicity. Implementations must map a missing document to
// domain.ErrNotFound and a malformed identifier to domain.ErrInvalidID.
type DocumentStore[T any] interface {
	// Insert persists doc and returns its generated identifier.
	Insert(ctx context.Context, doc *T) (string, error)
	// FindByID fetches a single document by its string identifier.
	FindByID(ctx context.Context, id string) (*T, error)
	// Find returns documents matching q, in q's order, capped at q.Limit.
	Find(ctx context.Context, q Query) ([]*T, error)
	// UpdateByID applies a field-set patch to the identified document.
	UpdateByID(ctx context.Context, id string, patch Fields) error
	// DeleteByID removes the identified document. Hard delete.
	DeleteByID(ctx context.Context, id string) error
	// Count returns the number of documents matching f.
	Count(ctx context.Context, f Filter) (int64, error)
}
