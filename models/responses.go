package models

import "go.mongodb.org/mongo-driver/mongo"

// InsertResult mirrors the acknowledgment the store returns for an insert.
type InsertResult struct {
	Acknowledged bool        `json:"acknowledged" example:"true"`
	InsertedID   interface{} `json:"insertedId" swaggertype:"string" example:"665f1c2e9b1e8a3d4c5b6a79"`
}

type UpdateResult struct {
	Acknowledged  bool        `json:"acknowledged" example:"true"`
	MatchedCount  int64       `json:"matchedCount" example:"1"`
	ModifiedCount int64       `json:"modifiedCount" example:"1"`
	UpsertedCount int64       `json:"upsertedCount" example:"0"`
	UpsertedID    interface{} `json:"upsertedId" swaggertype:"string"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged" example:"true"`
	DeletedCount int64 `json:"deletedCount" example:"1"`
}

// UserExistsResponse is the legacy reply for a repeated user registration.
type UserExistsResponse struct {
	Message    string      `json:"message" example:"user already exist"`
	InsertedID interface{} `json:"insertedId" swaggertype:"string"`
}

type TokenResponse struct {
	Token string `json:"token" example:"your_jwt_token_here"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"Failed to fetch meals"`
}

func NewInsertResult(res *mongo.InsertOneResult) InsertResult {
	if res == nil {
		return InsertResult{}
	}
	return InsertResult{Acknowledged: true, InsertedID: res.InsertedID}
}

func NewUpdateResult(res *mongo.UpdateResult) UpdateResult {
	if res == nil {
		return UpdateResult{}
	}
	return UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}
}

func NewDeleteResult(res *mongo.DeleteResult) DeleteResult {
	if res == nil {
		return DeleteResult{}
	}
	return DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}
}
