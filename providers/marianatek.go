package providers

import (
	"context"
	"fmt"

	"saunascout/models"
)

// marianatekAdapter lists a Mariana Tek tenant's classes for the window.
type marianatekAdapter struct {
	client *Client
}

type marianatekClassesResponse struct {
	Results []struct {
		ID                 string `json:"id"`
		Name               string `json:"name"`
		StartDatetime      string `json:"start_datetime"` // RFC3339
		AvailableSpotCount int    `json:"available_spot_count"`
		IsCancelled        bool   `json:"is_cancelled"`
	} `json:"results"`
}

func (a *marianatekAdapter) Name() string { return "marianatek" }

func (a *marianatekAdapter) FetchAvailability(ctx context.Context, cfg *models.BookingProviderConfig, window DateRange) (models.AvailabilityResponse, error) {
	if cfg.MarianaTek == nil {
		return models.AvailabilityResponse{}, fmt.Errorf("marianatek config missing")
	}

	endpoint := fmt.Sprintf(
		"https://%s.marianatek.com/api/customer/v1/classes?location=%s&min_start_date=%s&max_start_date=%s",
		cfg.MarianaTek.TenantSlug, cfg.MarianaTek.LocationID, window.Start, window.EndOrStart())

	var out marianatekClassesResponse
	if err := a.client.getJSON(ctx, a.Name(), endpoint, nil, &out); err != nil {
		return models.AvailabilityResponse{}, err
	}

	byName := make(map[string]*models.AppointmentTypeAvailability)
	var order []string
	for _, cl := range out.Results {
		if cl.IsCancelled {
			continue
		}
		at, ok := byName[cl.Name]
		if !ok {
			seeded := typeFor(cfg, cl.ID, cl.Name)
			byName[cl.Name] = &seeded
			order = append(order, cl.Name)
			at = &seeded
		}
		addSlot(at, cl.StartDatetime, intPtr(cl.AvailableSpotCount))
	}

	var resp models.AvailabilityResponse
	for _, name := range order {
		resp.AppointmentTypes = append(resp.AppointmentTypes, *byName[name])
	}
	return resp, nil
}
