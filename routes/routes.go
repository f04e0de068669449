package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"saunascout/handlers"
)

// HandlerBundle carries every handler the router needs.
type HandlerBundle struct {
	Venues       *handlers.VenuesHandler
	Availability *handlers.AvailabilityHandler
	Tides        *handlers.TidesHandler
	Health       *handlers.HealthHandler
}

// RegisterVenueRoutes registers catalog endpoints.
func RegisterVenueRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/venues")
	{
		api.GET("", hb.Venues.ListVenues)
		api.GET("/within", hb.Venues.VenuesWithin)
		api.GET("/:slug", hb.Venues.GetVenue)
	}
}

// RegisterAvailabilityRoutes registers live availability endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.GET("", hb.Availability.GetAvailability)
		api.GET("/by-date", hb.Availability.GetAvailabilityByDate)
		api.GET("/bulk", hb.Availability.GetBulkAvailability)
	}
}

// RegisterTideRoutes registers the tide prediction endpoint.
func RegisterTideRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.GET("/api/tides", hb.Tides.GetTides)
}

// RegisterHealthRoute registers the provider health snapshot endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *HandlerBundle) {
	r.GET("/healthz", hb.Health.Healthz)
}

// SetupRoutes wires CORS and every route group.
func SetupRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterVenueRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterTideRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
