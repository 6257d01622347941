package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Review struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	MealID    string             `json:"mealId,omitempty" bson:"mealId,omitempty"`
	MealTitle string             `json:"mealTitle,omitempty" bson:"mealTitle,omitempty"`
	UserEmail string             `json:"userEmail" bson:"userEmail" binding:"required"`
	UserName  string             `json:"userName,omitempty" bson:"userName,omitempty"`
	Text      string             `json:"review,omitempty" bson:"review,omitempty"`
	Rating    *float64           `json:"rating,omitempty" bson:"rating,omitempty"`
	Likes     *int               `json:"likes,omitempty" bson:"likes,omitempty"`
	PostTime  *time.Time         `json:"postTime,omitempty" bson:"postTime,omitempty"`
}
