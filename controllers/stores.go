package controllers

import (
	"context"

	"HostelHub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type UserStore interface {
	Create(ctx context.Context, user models.User) (*mongo.InsertOneResult, error)
	List(ctx context.Context) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	PromoteToAdmin(ctx context.Context, id string) (*mongo.UpdateResult, error)
}

type MealStore interface {
	List(ctx context.Context) ([]models.Meal, error)
	FindByID(ctx context.Context, id string) (*models.Meal, error)
	Create(ctx context.Context, meal models.Meal) (*mongo.InsertOneResult, error)
	Replace(ctx context.Context, id string, meal models.Meal) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id string) (*mongo.DeleteResult, error)
}

type LikeStore interface {
	Create(ctx context.Context, like *models.Like) (*mongo.InsertOneResult, error)
	List(ctx context.Context) ([]models.Like, error)
}

type RequestedMealStore interface {
	Create(ctx context.Context, req *models.RequestedMeal) (*mongo.InsertOneResult, error)
	List(ctx context.Context) ([]models.RequestedMeal, error)
}

type ReviewStore interface {
	Create(ctx context.Context, review *models.Review) (*mongo.InsertOneResult, error)
	List(ctx context.Context) ([]models.Review, error)
	ListByEmail(ctx context.Context, email string) ([]models.Review, error)
	Delete(ctx context.Context, id string) (*mongo.DeleteResult, error)
}

// Pinger reports whether the store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
