package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bumdes-sale/backend/internal/core/domain"
	"github.com/bumdes-sale/backend/internal/core/ports"
)

// Collection names match the original site's MongoDB layout.
const (
	CollUsers        = "users"
	CollUnits        = "unit_usaha"
	CollProducts     = "produk"
	CollApplications = "permodalan"
	CollNews         = "berita"
	CollReports      = "transparansi"
	CollSHU          = "shu_distribution"
	CollMessages     = "kontak"
	CollResources    = "edukasi"
	CollDocuments    = "regulasi"
)

// Collection implements ports.DocumentStore for one MongoDB collection.
// Identifiers are ObjectID hex strings generated at insert time and stored
// as string _id values, so entities decode without a per-type mapping
// layer while ids stay opaque strings above the store.
type Collection[T any] struct {
	coll *mongo.Collection
}

// NewCollection wraps the named collection of db.
func NewCollection[T any](db *mongo.Database, name string) *Collection[T] {
	return &Collection[T]{coll: db.Collection(name)}
}

// parseID rejects identifiers that are not ObjectID hex, keeping
// malformed-id failures distinct from not-found.
func parseID(id string) (string, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return "", domain.ErrInvalidID
	}
	return id, nil
}

func (c *Collection[T]) Insert(ctx context.Context, doc *T) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id := primitive.NewObjectID().Hex()
	raw, err := bson.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshal document: %w", err)
	}
	var fields bson.M
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return "", fmt.Errorf("unmarshal document: %w", err)
	}
	fields["_id"] = id

	if _, err := c.coll.InsertOne(ctx, fields); err != nil {
		return "", fmt.Errorf("insert: %w", err)
	}
	return id, nil
}

func (c *Collection[T]) FindByID(ctx context.Context, id string) (*T, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc T
	if err := c.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find by id: %w", err)
	}
	return &doc, nil
}

func (c *Collection[T]) Find(ctx context.Context, q ports.Query) ([]*T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find()
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}
	if len(q.Sort) > 0 {
		sort := bson.D{}
		for _, s := range q.Sort {
			order := 1
			if s.Desc {
				order = -1
			}
			sort = append(sort, bson.E{Key: s.Key, Value: order})
		}
		opts.SetSort(sort)
	}

	cursor, err := c.coll.Find(ctx, toBSON(q.Filter), opts)
	if err != nil {
		return nil, fmt.Errorf("find: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []*T
	for cursor.Next(ctx) {
		var doc T
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
		docs = append(docs, &doc)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor: %w", err)
	}
	return docs, nil
}

func (c *Collection[T]) UpdateByID(ctx context.Context, id string, patch ports.Fields) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := c.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": toBSON(patch)})
	if err != nil {
		return fmt.Errorf("update: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (c *Collection[T]) DeleteByID(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := c.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (c *Collection[T]) Count(ctx context.Context, f ports.Filter) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := c.coll.CountDocuments(ctx, toBSON(f))
	if err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}

func toBSON(m map[string]any) bson.M {
	out := bson.M{}
	for k, v := range m {
		out[k] = v
	}
	return out
}
