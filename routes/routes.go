package routes

import (
	"time"

	"maidease/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires all endpoints onto the router.
func RegisterRoutes(r *gin.Engine, catalogH *handlers.CatalogHandler, bookingH *handlers.BookingHandler, providerH *handlers.ProviderHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.HealthHandler)

	services := r.Group("/api/services")
	{
		services.GET("", catalogH.ListServices)
		services.GET("/categories", catalogH.CategoryCounts)
	}

	booking := r.Group("/api/booking")
	{
		booking.POST("/session", bookingH.InitiateSession)                   // Phase 1: Start session
		booking.PUT("/session/:sessionID", bookingH.UpdateSession)           // Phase 2: Refine selection
		booking.POST("/session/:sessionID/confirm", bookingH.ConfirmBooking) // Phase 3: Confirm booking
		booking.DELETE("/session/:sessionID", bookingH.CancelSession)
	}

	api := r.Group("/api")
	{
		api.POST("/register", providerH.RegisterProvider)
		api.GET("/providers/:id", providerH.GetProvider)
	}
}
