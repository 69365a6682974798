package handlers

import (
	"errors"
	"net/http"

	"maidease/models"
	"maidease/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the services page data.
type CatalogHandler struct {
	Catalog []models.Service
	Logger  *zap.Logger
}

// NewCatalogHandler creates a CatalogHandler over the given catalogue.
func NewCatalogHandler(services []models.Service, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Catalog: services, Logger: logger}
}

// ListServices handles GET /api/services. Filter criteria come from the
// query string; missing params fall back to the page defaults.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	criteria := models.DefaultFilterCriteria()
	criteria.SearchTerm = c.Query("search")
	if v := c.Query("category"); v != "" {
		criteria.Category = v
	}
	if v := c.Query("price"); v != "" {
		criteria.PriceRange = v
	}
	if v := c.Query("sort"); v != "" {
		criteria.SortBy = v
	}

	services, err := catalog.FilterAndSort(h.Catalog, criteria)
	if err != nil {
		var vErr *catalog.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid filter criteria",
				"message": err.Error(),
			})
			return
		}
		h.Logger.Error("ListServices: failed to filter services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to fetch services",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":    len(services),
		"services": services,
	})
}

// CategoryCounts handles GET /api/services/categories.
func (h *CatalogHandler) CategoryCounts(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.CategoryCounts(h.Catalog))
}
