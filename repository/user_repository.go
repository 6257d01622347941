package repository

import (
	"context"
	"fmt"

	"HostelHub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(coll *mongo.Collection) *UserRepository {
	return &UserRepository{coll: coll}
}

// Create stores a new user with the default role, keyed by email.
func (r *UserRepository) Create(ctx context.Context, user models.User) (*mongo.InsertOneResult, error) {
	user.ID = primitive.NewObjectID()
	user.Role = models.RoleUser
	return guardedInsert(ctx, r.coll, bson.M{"email": user.Email}, user)
}

func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	return findAll[models.User](ctx, r.coll, bson.M{})
}

// FindByEmail returns nil when no user has the email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return findOne[models.User](ctx, r.coll, bson.M{"email": email})
}

func (r *UserRepository) PromoteToAdmin(ctx context.Context, id string) (*mongo.UpdateResult, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	update := bson.M{"$set": bson.M{"role": models.RoleAdmin}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return nil, fmt.Errorf("promote user %s: %w", id, err)
	}
	return res, nil
}
