package handlers

import (
	"net/http"

	"maidease/models"
	"maidease/services/provider"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProviderHandler exposes service-provider registration.
type ProviderHandler struct {
	Service provider.ProviderService
	Logger  *zap.Logger
}

// NewProviderHandler creates a ProviderHandler.
func NewProviderHandler(svc provider.ProviderService, logger *zap.Logger) *ProviderHandler {
	return &ProviderHandler{Service: svc, Logger: logger}
}

// RegisterProvider handles POST /api/register. Any validation or persistence
// failure is reported as a 400 with the underlying message.
func (h *ProviderHandler) RegisterProvider(c *gin.Context) {
	var input models.ProviderRegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": err.Error(),
		})
		return
	}

	if _, err := h.Service.Register(input); err != nil {
		h.Logger.Warn("RegisterProvider: registration rejected", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Provider registered successfully",
	})
}

// GetProvider handles GET /api/providers/:id.
func (h *ProviderHandler) GetProvider(c *gin.Context) {
	id := c.Param("id")

	prov, err := h.Service.GetByID(id)
	if err != nil {
		h.Logger.Error("GetProvider: provider not found", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Provider not found"})
		return
	}
	c.JSON(http.StatusOK, prov)
}
