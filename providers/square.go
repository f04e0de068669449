package providers

import (
	"context"
	"fmt"
	"time"

	"saunascout/models"
)

// squareAdapter searches Square Bookings availability. Square reports open
// times per service variation without seat counts.
type squareAdapter struct {
	client *Client
}

type squareSearchRequest struct {
	Query struct {
		Filter struct {
			LocationID     string                `json:"location_id"`
			StartAtRange   squareTimeRange       `json:"start_at_range"`
			SegmentFilters []squareSegmentFilter `json:"segment_filters"`
		} `json:"filter"`
	} `json:"query"`
}

type squareTimeRange struct {
	StartAt string `json:"start_at"`
	EndAt   string `json:"end_at"`
}

type squareSegmentFilter struct {
	ServiceVariationID string `json:"service_variation_id"`
}

type squareSearchResponse struct {
	Availabilities []struct {
		StartAt             string `json:"start_at"` // RFC3339 UTC
		AppointmentSegments []struct {
			ServiceVariationID string `json:"service_variation_id"`
			DurationMinutes    int    `json:"duration_minutes"`
		} `json:"appointment_segments"`
	} `json:"availabilities"`
}

func (a *squareAdapter) Name() string { return "square" }

func (a *squareAdapter) FetchAvailability(ctx context.Context, cfg *models.BookingProviderConfig, window DateRange) (models.AvailabilityResponse, error) {
	if cfg.Square == nil {
		return models.AvailabilityResponse{}, fmt.Errorf("square config missing")
	}

	loc := venueZone(cfg)
	var resp models.AvailabilityResponse
	for _, varID := range cfg.Square.ServiceVariationIDs {
		var body squareSearchRequest
		body.Query.Filter.LocationID = cfg.Square.LocationID
		body.Query.Filter.StartAtRange = squareTimeRange{
			StartAt: window.Start + "T00:00:00Z",
			EndAt:   window.EndOrStart() + "T23:59:59Z",
		}
		body.Query.Filter.SegmentFilters = []squareSegmentFilter{{ServiceVariationID: varID}}

		var out squareSearchResponse
		err := a.client.postJSON(ctx, a.Name(), "https://connect.squareup.com/v2/bookings/availability/search", nil, body, &out)
		if err != nil {
			return models.AvailabilityResponse{}, err
		}

		at := typeFor(cfg, varID, "Service "+varID)
		for _, av := range out.Availabilities {
			// Square returns UTC; re-render in the venue zone so the date key
			// matches the local calendar day.
			t, err := time.Parse(time.RFC3339, av.StartAt)
			if err != nil {
				continue
			}
			iso := t.In(loc).Format(time.RFC3339)
			if len(av.AppointmentSegments) > 0 && at.DurationMinutes == 0 {
				at.DurationMinutes = av.AppointmentSegments[0].DurationMinutes
			}
			addSlot(&at, iso, nil)
		}
		resp.AppointmentTypes = append(resp.AppointmentTypes, at)
	}
	return resp, nil
}
