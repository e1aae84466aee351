package controllers

import (
	"net/http"

	"knightspantry/catalog"
	"knightspantry/models"

	"github.com/gin-gonic/gin"
)

type ICatalogController interface {
	List(c *gin.Context)
}

type CatalogController struct {
	store *catalog.Store
}

func NewCatalogController(store *catalog.Store) ICatalogController {
	return &CatalogController{store: store}
}

// List serves the static product catalog, optionally filtered by category.
func (ctrl *CatalogController) List(c *gin.Context) {
	category := c.Query("category")
	if category != "" && !models.ValidCategory(category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
		return
	}

	products, err := ctrl.store.Filter(category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": products})
}
