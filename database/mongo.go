package database

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	UsersCollection     = "users"
	BlacklistCollection = "blacklist_tokens"
)

// ConnectMongo opens the client and returns a handle on the application
// database. Fatal when the connection string is unreachable: nothing works
// without the document store.
func ConnectMongo(uri, dbName string) *mongo.Database {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection error")
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal().Err(err).Msg("mongodb ping error")
	}

	log.Info().Str("db", dbName).Msg("connected to mongodb")
	return client.Database(dbName)
}

// EnsureIndexes creates the unique email index on users. Signup relies on
// the duplicate key error for its 409.
func EnsureIndexes(db *mongo.Database) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	unique := true
	_, err := db.Collection(UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.M{"email": 1},
		Options: &options.IndexOptions{Unique: &unique},
	})
	if err != nil {
		log.Warn().Err(err).Msg("failed to create unique email index")
	}
}
