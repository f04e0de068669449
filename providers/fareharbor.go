package providers

import (
	"context"
	"fmt"

	"saunascout/models"
)

// fareharborAdapter walks FareHarbor's external date-range availabilities per
// configured item.
type fareharborAdapter struct {
	client *Client
}

type fareharborAvailabilitiesResponse struct {
	Availabilities []struct {
		StartAt  string `json:"start_at"` // RFC3339 with offset
		Capacity int    `json:"capacity"`
	} `json:"availabilities"`
}

func (a *fareharborAdapter) Name() string { return "fareharbor" }

func (a *fareharborAdapter) FetchAvailability(ctx context.Context, cfg *models.BookingProviderConfig, window DateRange) (models.AvailabilityResponse, error) {
	if cfg.FareHarbor == nil {
		return models.AvailabilityResponse{}, fmt.Errorf("fareharbor config missing")
	}

	var resp models.AvailabilityResponse
	for _, itemID := range cfg.FareHarbor.ItemIDs {
		endpoint := fmt.Sprintf(
			"https://fareharbor.com/api/external/v1/companies/%s/items/%d/minimal/availabilities/date-range/%s/%s/",
			cfg.FareHarbor.Shortname, itemID, window.Start, window.EndOrStart())

		var out fareharborAvailabilitiesResponse
		if err := a.client.getJSON(ctx, a.Name(), endpoint, nil, &out); err != nil {
			return models.AvailabilityResponse{}, err
		}

		at := typeFor(cfg, fmt.Sprintf("%d", itemID), fmt.Sprintf("Item %d", itemID))
		for _, av := range out.Availabilities {
			addSlot(&at, av.StartAt, intPtr(av.Capacity))
		}
		resp.AppointmentTypes = append(resp.AppointmentTypes, at)
	}
	return resp, nil
}
