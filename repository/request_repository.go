package repository

import (
	"context"
	"time"

	"HostelHub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type RequestedMealRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewRequestedMealRepository(coll *mongo.Collection) *RequestedMealRepository {
	return &RequestedMealRepository{coll: coll, now: time.Now}
}

// Create records a meal request once per (mealTitle, userEmail). A request
// without a status starts as pending. req is filled in with the stored
// id, status and time.
func (r *RequestedMealRepository) Create(ctx context.Context, req *models.RequestedMeal) (*mongo.InsertOneResult, error) {
	req.ID = primitive.NewObjectID()
	if req.Status == "" {
		req.Status = models.RequestStatusPending
	}
	if req.RequestedAt.IsZero() {
		req.RequestedAt = r.now().UTC()
	}
	filter := bson.M{"mealTitle": req.MealTitle, "userEmail": req.UserEmail}
	return guardedInsert(ctx, r.coll, filter, req)
}

func (r *RequestedMealRepository) List(ctx context.Context) ([]models.RequestedMeal, error) {
	return findAll[models.RequestedMeal](ctx, r.coll, bson.M{})
}
