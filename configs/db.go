package configs

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var db *mongo.Database

func DB() *mongo.Database {
	return db
}

func ConnectDB(cfg *Config) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("mongo connect failed: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("mongo ping failed: %v", err)
	}
	db = client.Database(cfg.MongoDB)
}

// EnsureIndexes creates the unique email indexes the auth flows rely on.
func EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)
	emailKey := bson.D{{Key: "email", Value: 1}}

	for _, coll := range []string{"customers", "admins"} {
		_, err := db.Collection(coll).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    emailKey,
			Options: unique,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
