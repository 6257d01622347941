package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Like struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	MealID    string             `json:"mealId,omitempty" bson:"mealId,omitempty"`
	MealTitle string             `json:"mealTitle" bson:"mealTitle" binding:"required"`
	UserEmail string             `json:"userEmail" bson:"userEmail" binding:"required"`
}
