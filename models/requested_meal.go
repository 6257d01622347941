package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const RequestStatusPending = "pending"

type RequestedMeal struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	MealID      string             `json:"mealId,omitempty" bson:"mealId,omitempty"`
	MealTitle   string             `json:"mealTitle" bson:"mealTitle" binding:"required"`
	UserEmail   string             `json:"userEmail" bson:"userEmail" binding:"required"`
	UserName    string             `json:"userName,omitempty" bson:"userName,omitempty"`
	Status      string             `json:"status" bson:"status"`
	RequestedAt time.Time          `json:"requestedAt" bson:"requestedAt"`
}
