package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Donation lifecycle. An item is created pending and an admin moves it to
// approved or denied exactly once; there is no way back out of either.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusDenied   = "denied"
)

const (
	CategoryFood           = "Food"
	CategoryClothing       = "Clothing"
	CategorySchoolSupplies = "School Supplies"
	CategoryToiletries     = "Toiletries"
	CategoryOther          = "Other"
)

var Categories = []string{
	CategoryFood,
	CategoryClothing,
	CategorySchoolSupplies,
	CategoryToiletries,
	CategoryOther,
}

func ValidCategory(category string) bool {
	for _, c := range Categories {
		if category == c {
			return true
		}
	}
	return false
}

func ValidStatus(status string) bool {
	return status == StatusPending || status == StatusApproved || status == StatusDenied
}

// DonatedItem is embedded in the owning user's donatedItems array.
type DonatedItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Category    string             `bson:"category" json:"category"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// DonorInfo identifies the owner on the flattened admin listing.
type DonorInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	UcfID     string `json:"ucfId"`
}

// AdminDonatedItem is one row of the admin listing: an embedded item
// flattened together with its owner's identity.
type AdminDonatedItem struct {
	ID          primitive.ObjectID `json:"_id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Category    string             `json:"category"`
	Status      string             `json:"status"`
	CreatedAt   time.Time          `json:"createdAt"`
	User        DonorInfo          `json:"user"`
}
