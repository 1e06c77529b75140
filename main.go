package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"cabadmin/backend"
	"cabadmin/config"
	"cabadmin/handlers"
	"cabadmin/middleware"
	"cabadmin/routes"
	"cabadmin/services/booking"
	"cabadmin/services/places"
	"cabadmin/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitSessionCache()

	loc := time.Local
	if tz := config.AppConfig.DisplayTimezone; tz != "" && tz != "Local" {
		parsed, err := time.LoadLocation(tz)
		if err != nil {
			logger.Sugar().Fatalf("main: invalid DISPLAY_TZ %q: %v", tz, err)
		}
		loc = parsed
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Upstream client and services.
	apiClient := backend.NewClient(config.AppConfig.APIBaseURL)
	sessionStore := &booking.RedisSessionStore{
		Client: utils.GetSessionCacheClient(),
	}
	wizardService := &booking.DefaultWizardService{
		Gateway: apiClient,
		Store:   sessionStore,
		Loc:     loc,
	}

	handlers.Backend = apiClient
	handlers.WizardService = wizardService
	handlers.PlacesService = places.NewAutocompleter(apiClient)

	routes.RegisterRoutes(router)

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
