package repository

import (
	"context"
	"fmt"

	"HostelHub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MealRepository struct {
	coll *mongo.Collection
}

func NewMealRepository(coll *mongo.Collection) *MealRepository {
	return &MealRepository{coll: coll}
}

func (r *MealRepository) List(ctx context.Context) ([]models.Meal, error) {
	return findAll[models.Meal](ctx, r.coll, bson.M{})
}

// FindByID returns nil when the meal does not exist.
func (r *MealRepository) FindByID(ctx context.Context, id string) (*models.Meal, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	return findOne[models.Meal](ctx, r.coll, bson.M{"_id": oid})
}

func (r *MealRepository) Create(ctx context.Context, meal models.Meal) (*mongo.InsertOneResult, error) {
	meal.ID = primitive.NewObjectID()
	res, err := r.coll.InsertOne(ctx, meal)
	if err != nil {
		return nil, fmt.Errorf("insert meal: %w", err)
	}
	return res, nil
}

// Replace overwrites the whole document. Fields missing from meal are gone
// afterwards.
func (r *MealRepository) Replace(ctx context.Context, id string, meal models.Meal) (*mongo.UpdateResult, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	meal.ID = oid
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, meal)
	if err != nil {
		return nil, fmt.Errorf("replace meal %s: %w", id, err)
	}
	return res, nil
}

func (r *MealRepository) Delete(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	return deleteByID(ctx, r.coll, id)
}
