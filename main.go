// File: glamora/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"glamora/config"
	"glamora/cron"
	"glamora/database"
	scheduleRepo "glamora/database/repository/schedule"
	"glamora/handlers"
	"glamora/middleware"
	"glamora/routes"
	"glamora/services/availability"
	"glamora/services/schedule"
	"glamora/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitPreviewCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	schedRepo := scheduleRepo.NewMongoScheduleRepo()

	// services.
	scheduleService := &schedule.DefaultScheduleService{
		Repo: schedRepo,
	}
	engine := availability.NewEngine(scheduleService)

	scheduleHandler := handlers.NewScheduleHandler(scheduleService, logger)
	availabilityHandler := handlers.NewAvailabilityHandler(engine, utils.GetPreviewCacheClient(), logger)

	// Register routes.
	routes.RegisterRoutes(router, availabilityHandler, scheduleHandler)

	// Background preview warming.
	cron.InitWarmWorker(engine)
	cron.StartWarmEnqueuer(scheduleService)

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
	database.CloseDB()

	logger.Sugar().Info("main: server stopped gracefully")
}
