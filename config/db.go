package config

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names inside the meals database.
const (
	UsersCollection         = "users"
	MealsCollection         = "meals"
	LikesCollection         = "likes"
	ReviewsCollection       = "reviews"
	RequestedMealCollection = "requestedMeal"
)

// Database owns the client for the lifetime of the process.
type Database struct {
	client *mongo.Client
	db     *mongo.Database
}

// ConnectDB dials MongoDB with the Stable API v1 and pings it before
// returning. The timeout from cfg bounds both steps.
func ConnectDB(ctx context.Context, cfg Config) (*Database, error) {
	slog.Info("connecting to MongoDB", "database", cfg.DBName)

	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)
	clientOptions := options.Client().ApplyURI(cfg.MongoURI).SetServerAPIOptions(serverAPI)

	ctx, cancel := context.WithTimeout(ctx, cfg.MongoTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("MongoDB ping failed: %w", err)
	}

	slog.Info("connected to MongoDB")
	return &Database{client: client, db: client.Database(cfg.DBName)}, nil
}

func (d *Database) Collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}

func (d *Database) Ping(ctx context.Context) error {
	return d.client.Ping(ctx, nil)
}

// Disconnect closes every pooled connection. Call it once on shutdown.
func (d *Database) Disconnect(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

// uniqueIndexes backs the duplicate checks with constraints the server enforces.
var uniqueIndexes = map[string]bson.D{
	UsersCollection:         {{Key: "email", Value: 1}},
	LikesCollection:         {{Key: "mealTitle", Value: 1}, {Key: "userEmail", Value: 1}},
	RequestedMealCollection: {{Key: "mealTitle", Value: 1}, {Key: "userEmail", Value: 1}},
}

// EnsureIndexes creates the unique indexes. It is safe to call on every start.
func (d *Database) EnsureIndexes(ctx context.Context) error {
	for coll, keys := range uniqueIndexes {
		model := mongo.IndexModel{Keys: keys, Options: options.Index().SetUnique(true)}
		name, err := d.Collection(coll).Indexes().CreateOne(ctx, model)
		if err != nil {
			return fmt.Errorf("create unique index on %s: %w", coll, err)
		}
		slog.Debug("index ready", "collection", coll, "index", name)
	}
	return nil
}
