package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name     string             `json:"name,omitempty" bson:"name,omitempty"`
	Email    string             `bson:"email" json:"email" binding:"required,email"`
	PhotoURL string             `json:"photo,omitempty" bson:"photo,omitempty"`
	Badge    string             `json:"badge,omitempty" bson:"badge,omitempty"`
	Role     string             `bson:"role" json:"role"` // "admin" or "user"
}

// IsAdmin reports whether the stored role grants admin access.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

type AdminStatusResponse struct {
	Admin bool `json:"admin" example:"false"`
}
