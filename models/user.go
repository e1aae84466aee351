package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email        string             `bson:"email" json:"email"`
	Password     string             `bson:"password" json:"-"`
	FirstName    string             `bson:"firstName" json:"firstName"`
	LastName     string             `bson:"lastName" json:"lastName"`
	UcfID        string             `bson:"ucfId" json:"ucfId"`
	IsAdmin      bool               `bson:"isAdmin" json:"isAdmin"`
	DonatedItems []DonatedItem      `bson:"donatedItems" json:"donatedItems"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

// PublicUser is the projection returned by signup and login. The password
// hash never leaves the users collection.
type PublicUser struct {
	ID        primitive.ObjectID `json:"_id"`
	Email     string             `json:"email"`
	FirstName string             `json:"firstName"`
	LastName  string             `json:"lastName"`
	UcfID     string             `json:"ucfId"`
	IsAdmin   bool               `json:"isAdmin"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		UcfID:     u.UcfID,
		IsAdmin:   u.IsAdmin,
	}
}
