package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names shared by the repositories and EnsureIndexes.
const (
	PostsCollection = "community_posts"
	LikesCollection = "post_likes"
	UsersCollection = "users"
)

// MongoDBClient owns the driver client for the lifetime of the process.
type MongoDBClient struct {
	Client *mongo.Client
}

// NewMongoDBClient connects and pings the server before returning.
func NewMongoDBClient(uri string) (*MongoDBClient, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}
	return &MongoDBClient{Client: client}, nil
}

func (m *MongoDBClient) Database(name string) *mongo.Database {
	return m.Client.Database(name)
}

func (m *MongoDBClient) Disconnect() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.Client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes the repositories rely on. The unique
// (user_id, post_id) index is what keeps one like per user and post.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		LikesCollection: {
			{
				Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "post_id", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_user_post"),
			},
			{Keys: bson.D{{Key: "post_id", Value: 1}}},
		},
		PostsCollection: {
			{Keys: bson.D{{Key: "author_id", Value: 1}, {Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "is_deleted", Value: 1}, {Key: "like_count", Value: -1}}},
			{Keys: bson.D{{Key: "category", Value: 1}, {Key: "created_at", Value: -1}}},
		},
		UsersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
	}
	for coll, models := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", coll, err)
		}
	}
	return nil
}
