// Package repository issues the single store operation behind each route.
package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrAlreadyExists is returned when a guarded insert finds a matching document.
	ErrAlreadyExists = errors.New("document already exists")
	// ErrInvalidID is returned for path ids that are not ObjectID hex strings.
	ErrInvalidID = errors.New("invalid object id")
)

// ParseID converts the hex form of an ObjectID.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}

// guardedInsert inserts doc unless a document matching filter already exists.
// The lookup only produces the friendly rejection; the unique index on the
// collection is what holds under concurrent inserts.
func guardedInsert(ctx context.Context, coll *mongo.Collection, filter bson.M, doc interface{}) (*mongo.InsertOneResult, error) {
	err := coll.FindOne(ctx, filter).Err()
	if err == nil {
		return nil, ErrAlreadyExists
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("check %s: %w", coll.Name(), err)
	}

	res, err := coll.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return nil, ErrAlreadyExists
	}
	if err != nil {
		return nil, fmt.Errorf("insert into %s: %w", coll.Name(), err)
	}
	return res, nil
}

// findAll decodes every document matching filter. An empty result is an empty
// slice, never nil, so it serializes as [].
func findAll[T any](ctx context.Context, coll *mongo.Collection, filter bson.M) ([]T, error) {
	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", coll.Name(), err)
	}
	defer cursor.Close(ctx)

	docs := []T{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", coll.Name(), err)
	}
	return docs, nil
}

// findOne returns nil, nil when nothing matches.
func findOne[T any](ctx context.Context, coll *mongo.Collection, filter bson.M) (*T, error) {
	var doc T
	err := coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find one in %s: %w", coll.Name(), err)
	}
	return &doc, nil
}

func deleteByID(ctx context.Context, coll *mongo.Collection, id string) (*mongo.DeleteResult, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	res, err := coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, fmt.Errorf("delete from %s: %w", coll.Name(), err)
	}
	return res, nil
}
