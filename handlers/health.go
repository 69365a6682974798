package handlers

import (
	"net/http"

	"maidease/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles GET /health with the latest monitor snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
