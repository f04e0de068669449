package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"saunascout/services"
	"saunascout/utils"
)

// TidesHandler serves NOAA tide predictions for venue stations.
type TidesHandler struct {
	Tides services.TideService
}

func NewTidesHandler(tides services.TideService) *TidesHandler {
	return &TidesHandler{Tides: tides}
}

// GetTides handles GET /api/tides?station=&date=[&endDate=]. The hourly
// series is trimmed to daylight-ish hours at the span's outer edges.
func (h *TidesHandler) GetTides(c *gin.Context) {
	station := c.Query("station")
	if station == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing station", "station query parameter is required")
		return
	}
	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", "expected YYYY-MM-DD")
		return
	}
	endDate := c.Query("endDate")
	if endDate != "" {
		if _, err := time.Parse("2006-01-02", endDate); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid endDate", "expected YYYY-MM-DD")
			return
		}
	}

	data, err := h.Tides.FetchTides(c.Request.Context(), station, date, endDate)
	if err != nil {
		utils.GetLogger().Warn("tide fetch failed",
			zap.String("station", station), zap.String("date", date), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "unable to load tide data", "")
		return
	}

	data.Hourly = services.TrimOuterHours(data.Hourly)
	c.JSON(http.StatusOK, data)
}
