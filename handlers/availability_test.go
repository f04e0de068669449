package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saunascout/models"
	"saunascout/providers"
	"saunascout/services"
)

func intp(n int) *int { return &n }

func availabilityRouter(h *AvailabilityHandler) *gin.Engine {
	r := gin.New()
	r.GET("/api/availability", h.GetAvailability)
	r.GET("/api/availability/by-date", h.GetAvailabilityByDate)
	r.GET("/api/availability/bulk", h.GetBulkAvailability)
	return r
}

func liveVenue(slug string) models.Venue {
	return models.Venue{
		Slug: slug,
		Name: slug,
		Booking: &models.BookingProviderConfig{
			Type:     models.ProviderAcuity,
			Timezone: "UTC",
			Acuity:   &models.AcuityConfig{OwnerID: "x", AppointmentTypeIDs: []int{1}},
		},
	}
}

func respOn(date string, times ...string) models.AvailabilityResponse {
	slots := make([]models.Slot, len(times))
	for i, at := range times {
		slots[i] = models.Slot{Time: at, SlotsAvailable: intp(2)}
	}
	return models.AvailabilityResponse{AppointmentTypes: []models.AppointmentTypeAvailability{
		{AppointmentTypeID: "communal", Name: "Communal", Dates: map[string][]models.Slot{date: slots}},
	}}
}

func TestGetAvailabilityValidation(t *testing.T) {
	cat := testCatalog(t, liveVenue("hot"))
	h := NewAvailabilityHandler(cat, &stubAvailability{}, &stubTides{}, nil, 14)
	r := availabilityRouter(h)

	assert.Equal(t, http.StatusBadRequest, doGET(r, "/api/availability").Code)
	assert.Equal(t, http.StatusNotFound, doGET(r, "/api/availability?slug=nope").Code)
	assert.Equal(t, http.StatusBadRequest, doGET(r, "/api/availability?slug=hot&startDate=june").Code)
	assert.Equal(t, http.StatusBadRequest, doGET(r, "/api/availability?slug=hot&endDate=june").Code)
}

func TestGetAvailabilityBookingLinkOnly(t *testing.T) {
	cat := testCatalog(t, models.Venue{Slug: "links", Name: "Links", BookingURL: "https://example.com"})
	h := NewAvailabilityHandler(cat, &stubAvailability{}, &stubTides{}, nil, 14)
	r := availabilityRouter(h)

	w := doGET(r, "/api/availability?slug=links")
	require.Equal(t, http.StatusOK, w.Code)

	var out models.AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Empty(t, out.AppointmentTypes)
}

func TestGetAvailabilitySuccess(t *testing.T) {
	cat := testCatalog(t, liveVenue("hot"))
	svc := &stubAvailability{resp: respOn("2025-06-01", "2025-06-01T10:00:00Z")}
	h := NewAvailabilityHandler(cat, svc, &stubTides{}, nil, 14)
	r := availabilityRouter(h)

	w := doGET(r, "/api/availability?slug=hot&startDate=2025-06-01")
	require.Equal(t, http.StatusOK, w.Code)

	var out models.AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out.AppointmentTypes, 1)
	assert.Equal(t, "Communal", out.AppointmentTypes[0].Name)
}

func TestGetAvailabilityVendorFailureIsNeutral(t *testing.T) {
	cat := testCatalog(t, liveVenue("hot"))
	svc := &stubAvailability{err: providers.NewAvailabilityFetchError("acuity", 500, []byte("secret vendor stack trace"))}
	h := NewAvailabilityHandler(cat, svc, &stubTides{}, nil, 14)
	r := availabilityRouter(h)

	w := doGET(r, "/api/availability?slug=hot")
	require.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "unable to load availability")
	// Vendor detail stays in the logs, never in the response.
	assert.NotContains(t, w.Body.String(), "stack trace")
	assert.NotContains(t, w.Body.String(), "acuity")
}

func TestGetAvailabilityByDateGroupsAndWindows(t *testing.T) {
	cat := testCatalog(t, liveVenue("hot"))

	// Future dates so the past-slot filter keeps everything.
	resp := models.AvailabilityResponse{AppointmentTypes: []models.AppointmentTypeAvailability{
		{AppointmentTypeID: "communal", Name: "Communal", Dates: map[string][]models.Slot{}},
	}}
	var dates []string
	for i := 1; i <= 5; i++ {
		d := time.Now().AddDate(0, 0, i).Format("2006-01-02")
		dates = append(dates, d)
		resp.AppointmentTypes[0].Dates[d] = []models.Slot{{Time: d + "T10:00:00Z", SlotsAvailable: intp(2)}}
	}

	h := NewAvailabilityHandler(cat, &stubAvailability{resp: resp}, &stubTides{}, nil, 14)
	r := availabilityRouter(h)

	w := doGET(r, "/api/availability/by-date?slug=hot&maxDays=2")
	require.Equal(t, http.StatusOK, w.Code)

	var out struct {
		Dates          []string         `json:"dates"`
		ByDate         map[string][]any `json:"byDate"`
		FirstDate      string           `json:"firstDate"`
		LastDate       string           `json:"lastDate"`
		HasMoreDates   bool             `json:"hasMoreDates"`
		RemainingDates int              `json:"remainingDates"`
		SlotTides      map[string]any   `json:"slotTides"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, dates[:2], out.Dates)
	assert.True(t, out.HasMoreDates)
	assert.Equal(t, 3, out.RemainingDates)
	assert.Equal(t, dates[0], out.FirstDate)
	assert.Equal(t, dates[4], out.LastDate)
	assert.Empty(t, out.SlotTides)
}

func TestGetAvailabilityByDateSingleDate(t *testing.T) {
	cat := testCatalog(t, liveVenue("hot"))
	d1 := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	d2 := time.Now().AddDate(0, 0, 2).Format("2006-01-02")
	resp := models.AvailabilityResponse{AppointmentTypes: []models.AppointmentTypeAvailability{
		{AppointmentTypeID: "communal", Dates: map[string][]models.Slot{
			d1: {{Time: d1 + "T10:00:00Z"}},
			d2: {{Time: d2 + "T10:00:00Z"}},
		}},
	}}

	h := NewAvailabilityHandler(cat, &stubAvailability{resp: resp}, &stubTides{}, nil, 14)
	r := availabilityRouter(h)

	w := doGET(r, fmt.Sprintf("/api/availability/by-date?slug=hot&date=%s", d2))
	require.Equal(t, http.StatusOK, w.Code)

	var out struct {
		Dates []string `json:"dates"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, []string{d2}, out.Dates)
}

func TestGetAvailabilityByDateAnnotatesTides(t *testing.T) {
	venue := liveVenue("waterfront")
	venue.Waterfront = true
	venue.TideStation = "9447130"
	cat := testCatalog(t, venue)

	d := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	slotTime := d + "T10:00:00Z"
	resp := models.AvailabilityResponse{AppointmentTypes: []models.AppointmentTypeAvailability{
		{AppointmentTypeID: "communal", Dates: map[string][]models.Slot{
			d: {{Time: slotTime, SlotsAvailable: intp(2)}},
		}},
	}}
	tides := &stubTides{seriesBy: map[string][]models.TideDataPoint{
		d: {
			{Time: d + " 09:00", Height: 2.0},
			{Time: d + " 11:00", Height: 6.0},
		},
	}}

	h := NewAvailabilityHandler(cat, &stubAvailability{resp: resp}, tides, nil, 14)
	r := availabilityRouter(h)

	w := doGET(r, "/api/availability/by-date?slug=waterfront")
	require.Equal(t, http.StatusOK, w.Code)

	var out struct {
		SlotTides map[string]models.SlotTide `json:"slotTides"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Contains(t, out.SlotTides, slotTime)
	assert.InDelta(t, 4.0, out.SlotTides[slotTime].Height, 1e-9)
	assert.Equal(t, models.TideLevelOK, out.SlotTides[slotTime].Level)
}

func TestGetBulkAvailability(t *testing.T) {
	cat := testCatalog(t, liveVenue("hot"), liveVenue("warm"),
		models.Venue{Slug: "links", Name: "Links"})

	d := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	svc := &stubAvailability{resp: respOn(d, d+"T10:00:00Z")}
	bulk := &services.BulkChecker{Service: svc, Cache: services.NewMemoryCheckCache(), Concurrency: 2}

	h := NewAvailabilityHandler(cat, svc, &stubTides{}, bulk, 14)
	r := availabilityRouter(h)

	assert.Equal(t, http.StatusBadRequest, doGET(r, "/api/availability/bulk?date=junk").Code)

	w := doGET(r, fmt.Sprintf("/api/availability/bulk?date=%s", d))
	require.Equal(t, http.StatusOK, w.Code)

	var out struct {
		Date   string                    `json:"date"`
		Venues []services.VenueDayStatus `json:"venues"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, d, out.Date)
	// The booking-link-only venue is not swept.
	require.Len(t, out.Venues, 2)
	assert.True(t, out.Venues[0].Open)

	w = doGET(r, fmt.Sprintf("/api/availability/bulk?date=%s&slugs=warm,links,nope", d))
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out.Venues, 1)
	assert.Equal(t, "warm", out.Venues[0].Slug)
}
