package repository

import (
	"context"
	"fmt"

	"HostelHub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ReviewRepository struct {
	coll *mongo.Collection
}

func NewReviewRepository(coll *mongo.Collection) *ReviewRepository {
	return &ReviewRepository{coll: coll}
}

func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) (*mongo.InsertOneResult, error) {
	review.ID = primitive.NewObjectID()
	res, err := r.coll.InsertOne(ctx, review)
	if err != nil {
		return nil, fmt.Errorf("insert review: %w", err)
	}
	return res, nil
}

func (r *ReviewRepository) List(ctx context.Context) ([]models.Review, error) {
	return findAll[models.Review](ctx, r.coll, bson.M{})
}

func (r *ReviewRepository) ListByEmail(ctx context.Context, email string) ([]models.Review, error) {
	return findAll[models.Review](ctx, r.coll, bson.M{"userEmail": email})
}

func (r *ReviewRepository) Delete(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	return deleteByID(ctx, r.coll, id)
}
