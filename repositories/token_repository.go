package repositories

import (
	"context"

	"knightspantry/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ITokenRepository interface {
	Blacklist(token string, exp int64) error
	IsBlacklisted(token string) (bool, error)
}

type TokenRepository struct {
	collection *mongo.Collection
}

func NewTokenRepository(db *mongo.Database) ITokenRepository {
	return &TokenRepository{collection: db.Collection(database.BlacklistCollection)}
}

func (r *TokenRepository) Blacklist(token string, exp int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	_, err := r.collection.InsertOne(ctx, bson.M{"token": token, "exp": exp})
	return err
}

func (r *TokenRepository) IsBlacklisted(token string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	err := r.collection.FindOne(ctx, bson.M{"token": token}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
