package routes

import (
	"net/http"
	"time"

	"glamora/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint onto the router.
func RegisterRoutes(r *gin.Engine, ah *handlers.AvailabilityHandler, sh *handlers.ScheduleHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAvailabilityRoutes(r, ah)
	RegisterScheduleRoutes(r, sh)
}

// RegisterAvailabilityRoutes registers the read-only availability queries.
func RegisterAvailabilityRoutes(r *gin.Engine, ah *handlers.AvailabilityHandler) {
	api := r.Group("/api/availability")
	{
		api.GET("/:providerID/day", ah.GetDayAvailabilityHandler)
		api.GET("/:providerID/range", ah.GetMultiDayAvailabilityHandler)
	}
}

// RegisterScheduleRoutes registers provider schedule management endpoints.
func RegisterScheduleRoutes(r *gin.Engine, sh *handlers.ScheduleHandler) {
	api := r.Group("/api/schedules")
	{
		api.PUT("/:providerID", sh.RegisterScheduleHandler)
		api.GET("/:providerID", sh.GetScheduleHandler)
		api.DELETE("/:providerID", sh.DeleteScheduleHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Glamora"})
	})
}
