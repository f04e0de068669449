package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"saunascout/catalog"
	"saunascout/models"
	"saunascout/utils"
)

// VenuesHandler serves the static venue catalog.
type VenuesHandler struct {
	Catalog *catalog.Catalog
}

func NewVenuesHandler(cat *catalog.Catalog) *VenuesHandler {
	return &VenuesHandler{Catalog: cat}
}

// ListVenues handles GET /api/venues.
func (h *VenuesHandler) ListVenues(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"venues": h.Catalog.All()})
}

// GetVenue handles GET /api/venues/:slug.
func (h *VenuesHandler) GetVenue(c *gin.Context) {
	venue, ok := h.Catalog.BySlug(c.Param("slug"))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "unknown venue", c.Param("slug"))
		return
	}
	c.JSON(http.StatusOK, venue)
}

// VenuesWithin handles GET /api/venues/within?minLat=&maxLat=&minLng=&maxLng=.
func (h *VenuesHandler) VenuesWithin(c *gin.Context) {
	box := models.BoundingBox{}
	fields := []struct {
		name string
		dst  *float64
	}{
		{"minLat", &box.MinLat},
		{"maxLat", &box.MaxLat},
		{"minLng", &box.MinLng},
		{"maxLng", &box.MaxLng},
	}
	for _, f := range fields {
		raw := c.Query(f.name)
		if raw == "" {
			utils.JSONError(c, http.StatusBadRequest, "missing bound", f.name+" is required")
			return
		}
		val, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid bound", f.name+" must be a number")
			return
		}
		*f.dst = val
	}
	c.JSON(http.StatusOK, gin.H{"venues": h.Catalog.WithinBounds(box)})
}
