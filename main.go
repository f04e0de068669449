// File: saunascout/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"saunascout/catalog"
	"saunascout/config"
	"saunascout/cron"
	"saunascout/handlers"
	"saunascout/middleware"
	"saunascout/providers"
	"saunascout/routes"
	"saunascout/services"
	"saunascout/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// Static venue registry.
	venueCatalog := catalog.Default()

	// Vendor adapter plumbing.
	vendorClient := providers.NewClient(
		time.Duration(config.AppConfig.VendorHTTPTimeoutSeconds)*time.Second,
		logger,
	)

	// Services.
	availabilityService := &services.DefaultAvailabilityService{Client: vendorClient}
	tideService := services.NewTideService()
	bulkChecker := &services.BulkChecker{
		Service:     availabilityService,
		Cache:       services.NewRedisCheckCache(utils.GetCacheClient()),
		Concurrency: config.AppConfig.BulkCheckConcurrency,
	}
	healthMonitor := &services.HealthMonitor{
		Service:     availabilityService,
		Concurrency: config.AppConfig.HealthSweepConcurrency,
	}

	// Background provider health sweep.
	cron.InitHealthSweepWorker(healthMonitor, venueCatalog)

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Venues: handlers.NewVenuesHandler(venueCatalog),
		Availability: handlers.NewAvailabilityHandler(
			venueCatalog,
			availabilityService,
			tideService,
			bulkChecker,
			config.AppConfig.AvailabilityWindowDays,
		),
		Tides:  handlers.NewTidesHandler(tideService),
		Health: handlers.NewHealthHandler(healthMonitor),
	}

	routes.SetupRoutes(router, handlerBundle)

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
