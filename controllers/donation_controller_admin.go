package controllers

import (
	"net/http"

	"knightspantry/metrics"
	"knightspantry/models"
	"knightspantry/repositories"
	"knightspantry/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type IAdminDonationController interface {
	ListAll(c *gin.Context)
	Approve(c *gin.Context)
	Deny(c *gin.Context)
}

type AdminDonationController struct {
	service services.IDonationService
}

func NewAdminDonationController(service services.IDonationService) IAdminDonationController {
	return &AdminDonationController{service: service}
}

func (ctrl *AdminDonationController) ListAll(c *gin.Context) {
	items, err := ctrl.service.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (ctrl *AdminDonationController) Approve(c *gin.Context) {
	ctrl.moderate(c, models.StatusApproved)
}

func (ctrl *AdminDonationController) Deny(c *gin.Context) {
	ctrl.moderate(c, models.StatusDenied)
}

func (ctrl *AdminDonationController) moderate(c *gin.Context, status string) {
	itemID, err := primitive.ObjectIDFromHex(c.Param("itemId"))
	if err != nil {
		metrics.DonationModerate.WithLabelValues(status, "bad_id").Inc()
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	if status == models.StatusApproved {
		_, err = ctrl.service.Approve(itemID)
	} else {
		_, err = ctrl.service.Deny(itemID)
	}
	if err == repositories.ErrItemNotFound {
		metrics.DonationModerate.WithLabelValues(status, "not_found").Inc()
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}
	if err != nil {
		metrics.DonationModerate.WithLabelValues(status, "err").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	metrics.DonationModerate.WithLabelValues(status, "ok").Inc()
	c.JSON(http.StatusOK, gin.H{"success": true})
}
