package providers

import (
	"context"
	"fmt"
	"strconv"

	"saunascout/models"
)

type bookerAdapter struct {
	client *Client
}

type bookerSlotsResponse struct {
	ItineraryTimeSlotsLists []struct {
		TreatmentID   int    `json:"TreatmentId"`
		TreatmentName string `json:"TreatmentName"`
		TimeSlots     []struct {
			StartDateTime string `json:"StartDateTime"` // local, "2006-01-02T15:04:05"
		} `json:"TimeSlots"`
	} `json:"ItineraryTimeSlotsLists"`
}

func (a *bookerAdapter) Name() string { return "booker" }

func (a *bookerAdapter) FetchAvailability(ctx context.Context, cfg *models.BookingProviderConfig, window DateRange) (models.AvailabilityResponse, error) {
	if cfg.Booker == nil {
		return models.AvailabilityResponse{}, fmt.Errorf("booker config missing")
	}

	body := map[string]any{
		"LocationID":    cfg.Booker.LocationID,
		"StartDateTime": window.Start + "T00:00:00",
		"EndDateTime":   window.EndOrStart() + "T23:59:59",
	}

	var out bookerSlotsResponse
	err := a.client.postJSON(ctx, a.Name(), "https://apicurrent-app.booker.com/v5/availability/availability", nil, body, &out)
	if err != nil {
		return models.AvailabilityResponse{}, err
	}

	loc := venueZone(cfg)
	var resp models.AvailabilityResponse
	for _, list := range out.ItineraryTimeSlotsLists {
		at := typeFor(cfg, strconv.Itoa(list.TreatmentID), list.TreatmentName)
		for _, ts := range list.TimeSlots {
			iso, err := localToISO(loc, "2006-01-02T15:04:05", ts.StartDateTime)
			if err != nil {
				continue
			}
			// Booker lists open itinerary times only; no seat counts.
			addSlot(&at, iso, nil)
		}
		resp.AppointmentTypes = append(resp.AppointmentTypes, at)
	}
	return resp, nil
}
