package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"knightspantry/models"
	"knightspantry/repositories"
	"knightspantry/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeDonationService struct {
	knownUser primitive.ObjectID
	items     map[primitive.ObjectID]*models.DonatedItem
}

func newFakeDonationService() *fakeDonationService {
	return &fakeDonationService{
		knownUser: primitive.NewObjectID(),
		items:     map[primitive.ObjectID]*models.DonatedItem{},
	}
}

func (f *fakeDonationService) Create(userID primitive.ObjectID, title, description, category string) (*models.DonatedItem, error) {
	if userID != f.knownUser {
		return nil, repositories.ErrUserNotFound
	}
	item := &models.DonatedItem{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Description: description,
		Category:    category,
		Status:      models.StatusPending,
		CreatedAt:   time.Now(),
	}
	f.items[item.ID] = item
	return item, nil
}

func (f *fakeDonationService) ListAll() ([]models.AdminDonatedItem, error) {
	out := []models.AdminDonatedItem{}
	for _, item := range f.items {
		out = append(out, models.AdminDonatedItem{ID: item.ID, Title: item.Title, Status: item.Status})
	}
	return out, nil
}

func (f *fakeDonationService) ListForUser(userID primitive.ObjectID) ([]models.DonatedItem, error) {
	if userID != f.knownUser {
		return nil, repositories.ErrUserNotFound
	}
	out := []models.DonatedItem{}
	for _, item := range f.items {
		out = append(out, *item)
	}
	return out, nil
}

func (f *fakeDonationService) setStatus(itemID primitive.ObjectID, status string) (*models.DonatedItem, error) {
	item, exists := f.items[itemID]
	if !exists || item.Status != models.StatusPending {
		return nil, repositories.ErrItemNotFound
	}
	item.Status = status
	return item, nil
}

func (f *fakeDonationService) Approve(itemID primitive.ObjectID) (*models.DonatedItem, error) {
	return f.setStatus(itemID, models.StatusApproved)
}

func (f *fakeDonationService) Deny(itemID primitive.ObjectID) (*models.DonatedItem, error) {
	return f.setStatus(itemID, models.StatusDenied)
}

func newDonationRouter(service services.IDonationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctrl := NewDonationController(service)
	admin := NewAdminDonationController(service)
	r.POST("/api/donated-items", ctrl.Create)
	r.GET("/api/my-donated-items", ctrl.MyDonatedItems)
	r.PUT("/api/admin/donated-items/:itemId/approve", admin.Approve)
	r.PUT("/api/admin/donated-items/:itemId/deny", admin.Deny)
	return r
}

func TestCreateMissingFields(t *testing.T) {
	r := newDonationRouter(newFakeDonationService())

	w := postJSON(r, "/api/donated-items", gin.H{"title": "Soap"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Missing fields"}`, w.Body.String())
}

func TestCreateInvalidUserID(t *testing.T) {
	r := newDonationRouter(newFakeDonationService())

	w := postJSON(r, "/api/donated-items", gin.H{
		"title": "Soap", "description": "bar soap", "userId": "not-hex",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateUnknownUser(t *testing.T) {
	r := newDonationRouter(newFakeDonationService())

	w := postJSON(r, "/api/donated-items", gin.H{
		"title": "Soap", "description": "bar soap", "userId": primitive.NewObjectID().Hex(),
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"User not found"}`, w.Body.String())
}

func TestCreatePendingItem(t *testing.T) {
	service := newFakeDonationService()
	r := newDonationRouter(service)

	w := postJSON(r, "/api/donated-items", gin.H{
		"title": "Soap", "description": "bar soap", "userId": service.knownUser.Hex(),
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"pending"`)
}

func TestMyDonatedItemsWithoutClaims(t *testing.T) {
	r := newDonationRouter(newFakeDonationService())

	req := httptest.NewRequest(http.MethodGet, "/api/my-donated-items", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestApproveBadID(t *testing.T) {
	r := newDonationRouter(newFakeDonationService())

	req := httptest.NewRequest(http.MethodPut, "/api/admin/donated-items/bad-id/approve", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Item not found"}`, w.Body.String())
}

func TestApproveUnknownItem(t *testing.T) {
	r := newDonationRouter(newFakeDonationService())

	path := "/api/admin/donated-items/" + primitive.NewObjectID().Hex() + "/approve"
	req := httptest.NewRequest(http.MethodPut, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestApproveThenDeny(t *testing.T) {
	service := newFakeDonationService()
	r := newDonationRouter(service)

	item, err := service.Create(service.knownUser, "Soap", "bar soap", models.CategoryToiletries)
	require.NoError(t, err)

	path := "/api/admin/donated-items/" + item.ID.Hex()
	req := httptest.NewRequest(http.MethodPut, path+"/approve", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	// Approved is terminal: denying the same item is a 404.
	req = httptest.NewRequest(http.MethodPut, path+"/deny", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
