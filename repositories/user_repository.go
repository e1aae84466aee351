package repositories

import (
	"context"
	"errors"
	"time"

	"knightspantry/database"
	"knightspantry/metrics"
	"knightspantry/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrEmailRegistered = errors.New("email already registered")
	ErrUserNotFound    = errors.New("user not found")
	ErrItemNotFound    = errors.New("item not found")
)

const queryTimeout = 5 * time.Second

type IUserRepository interface {
	Create(user *models.User) error
	FindByEmail(email string) (*models.User, error)
	FindByID(id primitive.ObjectID) (*models.User, error)
	PushDonatedItem(userID primitive.ObjectID, item models.DonatedItem) error
	FindDonors() ([]models.User, error)
	SetItemStatus(itemID primitive.ObjectID, status string) (*models.DonatedItem, error)
}

type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *mongo.Database) IUserRepository {
	return &UserRepository{collection: db.Collection(database.UsersCollection)}
}

func (r *UserRepository) Create(user *models.User) error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, user)
	metrics.Observe(metrics.DbUserInsert, err)
	if mongo.IsDuplicateKeyError(err) {
		return ErrEmailRegistered
	}
	return err
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	metrics.Observe(metrics.DbUserFind, err)
	if err == mongo.ErrNoDocuments {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(id primitive.ObjectID) (*models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	metrics.Observe(metrics.DbUserFind, err)
	if err == mongo.ErrNoDocuments {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) PushDonatedItem(userID primitive.ObjectID, item models.DonatedItem) error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": userID},
		bson.M{"$push": bson.M{"donatedItems": item}},
	)
	metrics.Observe(metrics.DbItemPush, err)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// FindDonors returns every user with at least one donated item, projected
// down to owner identity plus the embedded items.
func (r *UserRepository) FindDonors() ([]models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	projection := bson.M{
		"firstName":    1,
		"lastName":     1,
		"email":        1,
		"ucfId":        1,
		"donatedItems": 1,
	}
	cursor, err := r.collection.Find(
		ctx,
		bson.M{"donatedItems.0": bson.M{"$exists": true}},
		options.Find().SetProjection(projection),
	)
	metrics.Observe(metrics.DbUserFind, err)
	if err != nil {
		return nil, err
	}

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// SetItemStatus flips a pending embedded item to the given status and
// returns the updated item. The filter insists on pending, so approved and
// denied items stay where they are and a repeat call reports not found.
func (r *UserRepository) SetItemStatus(itemID primitive.ObjectID, status string) (*models.DonatedItem, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	filter := bson.M{"donatedItems": bson.M{"$elemMatch": bson.M{
		"_id":    itemID,
		"status": models.StatusPending,
	}}}
	update := bson.M{"$set": bson.M{"donatedItems.$.status": status}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user models.User
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&user)
	metrics.Observe(metrics.DbItemSetStatus, err)
	if err == mongo.ErrNoDocuments {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}

	for i := range user.DonatedItems {
		if user.DonatedItems[i].ID == itemID {
			return &user.DonatedItems[i], nil
		}
	}
	return nil, ErrItemNotFound
}
