package controllers

import (
	"net/http"

	"knightspantry/metrics"
	"knightspantry/repositories"
	"knightspantry/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type IDonationController interface {
	Create(c *gin.Context)
	MyDonatedItems(c *gin.Context)
}

type DonationController struct {
	service services.IDonationService
}

func NewDonationController(service services.IDonationService) IDonationController {
	return &DonationController{service: service}
}

// Create accepts a donation submission. Any caller supplying a user ID may
// create one; the item always starts pending.
func (ctrl *DonationController) Create(c *gin.Context) {
	var input struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description" binding:"required"`
		UserID      string `json:"userId" binding:"required"`
		Category    string `json:"category"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
		return
	}

	userID, err := primitive.ObjectIDFromHex(input.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid userId"})
		return
	}

	item, err := ctrl.service.Create(userID, input.Title, input.Description, input.Category)
	if err == repositories.ErrUserNotFound {
		metrics.DonationCreate.WithLabelValues("no_user").Inc()
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		metrics.DonationCreate.WithLabelValues("err").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	metrics.DonationCreate.WithLabelValues("ok").Inc()
	c.JSON(http.StatusCreated, gin.H{
		"message": "Donated item created",
		"item":    item,
	})
}

// MyDonatedItems returns the caller's own items, newest first.
func (ctrl *DonationController) MyDonatedItems(c *gin.Context) {
	claims, exists := c.Get("claims")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	userID := claims.(*services.TokenClaims).UserID

	items, err := ctrl.service.ListForUser(userID)
	if err == repositories.ErrUserNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusOK, items)
}
