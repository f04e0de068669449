package providers

import (
	"context"
	"fmt"

	"saunascout/models"
)

type trybeAdapter struct {
	client *Client
}

type trybeAvailabilityResponse struct {
	Data []struct {
		OfferingID   string `json:"offering_id"`
		OfferingName string `json:"offering_name"`
		StartTime    string `json:"start_time"` // RFC3339
		Remaining    int    `json:"remaining"`
		PriceCents   int    `json:"price"`
	} `json:"data"`
}

func (a *trybeAdapter) Name() string { return "trybe" }

func (a *trybeAdapter) FetchAvailability(ctx context.Context, cfg *models.BookingProviderConfig, window DateRange) (models.AvailabilityResponse, error) {
	if cfg.Trybe == nil {
		return models.AvailabilityResponse{}, fmt.Errorf("trybe config missing")
	}

	var resp models.AvailabilityResponse
	for _, offeringID := range cfg.Trybe.OfferingIDs {
		endpoint := fmt.Sprintf("https://api.try.be/shop/availability?site_id=%s&offering_id=%s&date_from=%s&date_to=%s",
			cfg.Trybe.SiteID, offeringID, window.Start, window.EndOrStart())

		var out trybeAvailabilityResponse
		if err := a.client.getJSON(ctx, a.Name(), endpoint, nil, &out); err != nil {
			return models.AvailabilityResponse{}, err
		}

		at := typeFor(cfg, offeringID, "Offering "+offeringID)
		for _, d := range out.Data {
			if d.OfferingName != "" && at.Name == "Offering "+offeringID {
				at.Name = d.OfferingName
			}
			if at.Price == 0 && d.PriceCents > 0 {
				at.Price = float64(d.PriceCents) / 100
			}
			addSlot(&at, d.StartTime, intPtr(d.Remaining))
		}
		resp.AppointmentTypes = append(resp.AppointmentTypes, at)
	}
	return resp, nil
}
