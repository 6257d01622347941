package repository

import (
	"context"

	"HostelHub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type LikeRepository struct {
	coll *mongo.Collection
}

func NewLikeRepository(coll *mongo.Collection) *LikeRepository {
	return &LikeRepository{coll: coll}
}

// Create records a like once per (mealTitle, userEmail). The new id is set on
// like.
func (r *LikeRepository) Create(ctx context.Context, like *models.Like) (*mongo.InsertOneResult, error) {
	like.ID = primitive.NewObjectID()
	filter := bson.M{"mealTitle": like.MealTitle, "userEmail": like.UserEmail}
	return guardedInsert(ctx, r.coll, filter, like)
}

func (r *LikeRepository) List(ctx context.Context) ([]models.Like, error) {
	return findAll[models.Like](ctx, r.coll, bson.M{})
}
