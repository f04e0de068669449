package providers

import (
	"context"
	"fmt"

	"saunascout/models"
)

// zenotiAdapter queries a Zenoti center's guest-facing slot endpoint per
// configured service.
type zenotiAdapter struct {
	client *Client
}

type zenotiSlotsResponse struct {
	Slots []struct {
		Time      string `json:"Time"` // local, "2006-01-02T15:04:05"
		Available bool   `json:"Available"`
	} `json:"slots"`
}

func (a *zenotiAdapter) Name() string { return "zenoti" }

func (a *zenotiAdapter) FetchAvailability(ctx context.Context, cfg *models.BookingProviderConfig, window DateRange) (models.AvailabilityResponse, error) {
	if cfg.Zenoti == nil {
		return models.AvailabilityResponse{}, fmt.Errorf("zenoti config missing")
	}

	loc := venueZone(cfg)
	var resp models.AvailabilityResponse
	for _, svcID := range cfg.Zenoti.ServiceIDs {
		endpoint := fmt.Sprintf("https://%s/v1/centers/%s/services/%s/availableslots?from=%s&to=%s",
			cfg.Zenoti.APIHost, cfg.Zenoti.CenterID, svcID, window.Start, window.EndOrStart())

		var out zenotiSlotsResponse
		if err := a.client.getJSON(ctx, a.Name(), endpoint, nil, &out); err != nil {
			return models.AvailabilityResponse{}, err
		}

		at := typeFor(cfg, svcID, "Service "+svcID)
		for _, s := range out.Slots {
			if !s.Available {
				continue
			}
			iso, err := localToISO(loc, "2006-01-02T15:04:05", s.Time)
			if err != nil {
				continue
			}
			// Zenoti reports open/closed only, not seat counts.
			addSlot(&at, iso, nil)
		}
		resp.AppointmentTypes = append(resp.AppointmentTypes, at)
	}
	return resp, nil
}
