package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"maidease/config"
	"maidease/database"
	providerRepo "maidease/database/repository/provider"
	"maidease/handlers"
	"maidease/middleware"
	"maidease/routes"
	"maidease/services/booking"
	"maidease/services/catalog"
	"maidease/services/provider"
	"maidease/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	provRepo := providerRepo.NewMongoProviderRepo()

	// Services.
	serviceCatalogue := catalog.Default()

	providerService := &provider.DefaultProviderService{
		Repo: provRepo,
	}

	sessionService := &booking.DefaultSessionService{
		Catalog:       serviceCatalogue,
		Store:         booking.NewRedisSessionStore(utils.GetSessionCacheClient()),
		Submitter:     booking.NewWebhookSubmitter(config.AppConfig.BookingWebhookURL, logger),
		SessionTTL:    time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute,
		SubmitTimeout: time.Duration(config.AppConfig.SubmitTimeoutSec) * time.Second,
		MaxAttempts:   config.AppConfig.MaxSubmitAttempts,
	}

	// Handlers.
	catalogHandler := handlers.NewCatalogHandler(serviceCatalogue, logger)
	bookingHandler := handlers.NewBookingHandler(sessionService, logger)
	providerHandler := handlers.NewProviderHandler(providerService, logger)

	routes.RegisterRoutes(router, catalogHandler, bookingHandler, providerHandler)

	utils.StartHealthMonitor(utils.GetSessionCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
