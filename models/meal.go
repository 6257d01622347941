package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Meal is stored as sent by the client. Optional fields are omitted from the
// document when absent, so a replace drops anything the caller left out.
type Meal struct {
	ID               primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title            string             `json:"title" bson:"title" binding:"required"`
	Category         string             `json:"category,omitempty" bson:"category,omitempty"`
	Price            *float64           `json:"price,omitempty" bson:"price,omitempty"`
	Description      string             `json:"description,omitempty" bson:"description,omitempty"`
	Ingredients      []string           `json:"ingredients,omitempty" bson:"ingredients,omitempty"`
	Rating           *float64           `json:"rating,omitempty" bson:"rating,omitempty"`
	PostTime         *time.Time         `json:"postTime,omitempty" bson:"postTime,omitempty"`
	Likes            *int               `json:"likes,omitempty" bson:"likes,omitempty"`
	Reviews          *int               `json:"reviews,omitempty" bson:"reviews,omitempty"`
	Image            string             `json:"image,omitempty" bson:"image,omitempty"`
	DistributorName  string             `json:"name,omitempty" bson:"name,omitempty"`
	DistributorEmail string             `json:"email,omitempty" bson:"email,omitempty"`
}
