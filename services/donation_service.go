package services

import (
	"sort"
	"time"

	"knightspantry/metrics"
	"knightspantry/models"
	"knightspantry/repositories"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CatalogSyncer mirrors approved donations into the static product catalog.
type CatalogSyncer interface {
	SyncApproved(product models.CatalogProduct) error
}

type IDonationService interface {
	Create(userID primitive.ObjectID, title, description, category string) (*models.DonatedItem, error)
	ListAll() ([]models.AdminDonatedItem, error)
	ListForUser(userID primitive.ObjectID) ([]models.DonatedItem, error)
	Approve(itemID primitive.ObjectID) (*models.DonatedItem, error)
	Deny(itemID primitive.ObjectID) (*models.DonatedItem, error)
}

type DonationService struct {
	users   repositories.IUserRepository
	catalog CatalogSyncer
}

func NewDonationService(users repositories.IUserRepository, catalog CatalogSyncer) IDonationService {
	return &DonationService{users: users, catalog: catalog}
}

// Create appends a pending item to the owning user. Whatever status the
// client sent along is ignored: every item starts pending.
func (s *DonationService) Create(userID primitive.ObjectID, title, description, category string) (*models.DonatedItem, error) {
	if !models.ValidCategory(category) {
		category = models.CategoryOther
	}
	item := models.DonatedItem{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Description: description,
		Category:    category,
		Status:      models.StatusPending,
		CreatedAt:   time.Now(),
	}
	if err := s.users.PushDonatedItem(userID, item); err != nil {
		return nil, err
	}
	return &item, nil
}

// ListAll flattens every donor's embedded items with the owner identity,
// newest first.
func (s *DonationService) ListAll() ([]models.AdminDonatedItem, error) {
	donors, err := s.users.FindDonors()
	if err != nil {
		return nil, err
	}

	items := []models.AdminDonatedItem{}
	for _, donor := range donors {
		owner := models.DonorInfo{
			FirstName: donor.FirstName,
			LastName:  donor.LastName,
			Email:     donor.Email,
			UcfID:     donor.UcfID,
		}
		for _, item := range donor.DonatedItems {
			items = append(items, models.AdminDonatedItem{
				ID:          item.ID,
				Title:       item.Title,
				Description: item.Description,
				Category:    item.Category,
				Status:      item.Status,
				CreatedAt:   item.CreatedAt,
				User:        owner,
			})
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *DonationService) ListForUser(userID primitive.ObjectID) ([]models.DonatedItem, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, err
	}

	items := append([]models.DonatedItem{}, user.DonatedItems...)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

// Approve moves a pending item to approved and mirrors it into the
// catalog. The catalog write is best effort: a failure is logged and
// counted, never surfaced to the admin.
func (s *DonationService) Approve(itemID primitive.ObjectID) (*models.DonatedItem, error) {
	item, err := s.users.SetItemStatus(itemID, models.StatusApproved)
	if err != nil {
		return nil, err
	}

	if s.catalog != nil {
		syncErr := s.catalog.SyncApproved(models.CatalogProduct{
			DonationID:  item.ID.Hex(),
			Title:       item.Title,
			Description: item.Description,
			Category:    item.Category,
		})
		metrics.Observe(metrics.CatalogSync, syncErr)
		if syncErr != nil {
			log.Error().Err(syncErr).Str("item", item.ID.Hex()).Msg("catalog sync failed")
		}
	}
	return item, nil
}

func (s *DonationService) Deny(itemID primitive.ObjectID) (*models.DonatedItem, error) {
	return s.users.SetItemStatus(itemID, models.StatusDenied)
}
