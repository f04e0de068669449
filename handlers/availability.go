package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"saunascout/catalog"
	"saunascout/models"
	"saunascout/providers"
	"saunascout/services"
	"saunascout/utils"
)

// AvailabilityHandler serves venue availability endpoints.
type AvailabilityHandler struct {
	Catalog      *catalog.Catalog
	Availability services.AvailabilityService
	Tides        services.TideService
	Bulk         *services.BulkChecker
	WindowDays   int
}

func NewAvailabilityHandler(cat *catalog.Catalog, avail services.AvailabilityService, tides services.TideService, bulk *services.BulkChecker, windowDays int) *AvailabilityHandler {
	return &AvailabilityHandler{
		Catalog:      cat,
		Availability: avail,
		Tides:        tides,
		Bulk:         bulk,
		WindowDays:   windowDays,
	}
}

func (h *AvailabilityHandler) venueAndWindow(c *gin.Context) (models.Venue, providers.DateRange, bool) {
	slug := c.Query("slug")
	if slug == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing slug", "slug query parameter is required")
		return models.Venue{}, providers.DateRange{}, false
	}
	venue, ok := h.Catalog.BySlug(slug)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "unknown venue", slug)
		return models.Venue{}, providers.DateRange{}, false
	}

	start := c.Query("startDate")
	if start == "" {
		start = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", start); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid startDate", "expected YYYY-MM-DD")
		return models.Venue{}, providers.DateRange{}, false
	}
	end := c.Query("endDate")
	if end == "" {
		startDay, _ := time.Parse("2006-01-02", start)
		end = startDay.AddDate(0, 0, h.WindowDays).Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", end); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid endDate", "expected YYYY-MM-DD")
		return models.Venue{}, providers.DateRange{}, false
	}
	return venue, providers.DateRange{Start: start, End: end}, true
}

// GetAvailability handles GET /api/availability?slug=&startDate=.
// It returns the canonical response for the venue's full fetch window.
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	venue, window, ok := h.venueAndWindow(c)
	if !ok {
		return
	}
	if !venue.HasLiveAvailability() {
		c.JSON(http.StatusOK, models.AvailabilityResponse{})
		return
	}

	resp, err := h.Availability.FetchVenueAvailability(c.Request.Context(), venue, window)
	if err != nil {
		h.renderFetchFailure(c, venue.Slug, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetAvailabilityByDate handles GET /api/availability/by-date. It groups the
// venue's availability per day, applies the display window, and — for venues
// with a tide station — annotates surviving slots with tide levels.
func (h *AvailabilityHandler) GetAvailabilityByDate(c *gin.Context) {
	venue, window, ok := h.venueAndWindow(c)
	if !ok {
		return
	}
	if !venue.HasLiveAvailability() {
		c.JSON(http.StatusOK, gin.H{"byDate": gin.H{}, "dates": []string{}})
		return
	}

	resp, err := h.Availability.FetchVenueAvailability(c.Request.Context(), venue, window)
	if err != nil {
		h.renderFetchFailure(c, venue.Slug, err)
		return
	}

	grouped := services.GroupByDate(resp, time.Now())

	maxDays := h.WindowDays
	if v := c.Query("maxDays"); v != "" {
		if n, err := parsePositiveInt(v); err == nil {
			maxDays = n
		}
	}
	windowed := services.WindowDates(grouped, maxDays, c.Query("date"))

	out := gin.H{
		"byDate":         windowed.ByDate,
		"dates":          windowed.Dates,
		"firstDate":      windowed.FirstDate,
		"lastDate":       windowed.LastDate,
		"hasMoreDates":   windowed.HasMoreDates,
		"remainingDates": windowed.RemainingDates,
	}

	if venue.TideStation != "" && len(windowed.Dates) > 0 {
		seriesByDate := h.Tides.FetchTidesByDate(c.Request.Context(), venue.TideStation, windowed.Dates)
		if tides := services.AnnotateSlots(windowed, seriesByDate); len(tides) > 0 {
			out["slotTides"] = tides
		}
	}

	c.JSON(http.StatusOK, out)
}

// GetBulkAvailability handles GET /api/availability/bulk?date=&slugs=a,b,c.
// Omitting slugs sweeps every venue with live availability.
func (h *AvailabilityHandler) GetBulkAvailability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", "expected YYYY-MM-DD")
		return
	}

	var venues []models.Venue
	if raw := c.Query("slugs"); raw != "" {
		for _, slug := range splitCSV(raw) {
			if v, ok := h.Catalog.BySlug(slug); ok && v.HasLiveAvailability() {
				venues = append(venues, v)
			}
		}
	} else {
		venues = h.Catalog.WithLiveAvailability()
	}

	statuses := h.Bulk.CheckMany(c.Request.Context(), venues, date)
	c.JSON(http.StatusOK, gin.H{"date": date, "venues": statuses})
}

// renderFetchFailure maps vendor failures to a neutral "unavailable" state.
// Raw vendor errors stay in the logs.
func (h *AvailabilityHandler) renderFetchFailure(c *gin.Context, slug string, err error) {
	logger := utils.GetLogger()
	var fetchErr *providers.AvailabilityFetchError
	if errors.As(err, &fetchErr) {
		logger.Warn("vendor availability fetch failed",
			zap.String("slug", slug),
			zap.String("vendor", fetchErr.Vendor),
			zap.Int("status", fetchErr.Status),
			zap.String("body", fetchErr.BodyExcerpt))
	} else {
		logger.Warn("availability fetch failed", zap.String("slug", slug), zap.Error(err))
	}
	utils.JSONError(c, http.StatusBadGateway, "unable to load availability", "")
}
