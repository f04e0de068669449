package providers

import (
	"context"
	"fmt"

	"saunascout/models"
)

type periodeAdapter struct {
	client *Client
}

type periodeSessionsResponse struct {
	Sessions []struct {
		ID        string `json:"id"`
		Title     string `json:"title"`
		StartsAt  string `json:"starts_at"` // RFC3339
		SpotsLeft int    `json:"spots_left"`
	} `json:"sessions"`
}

func (a *periodeAdapter) Name() string { return "periode" }

func (a *periodeAdapter) FetchAvailability(ctx context.Context, cfg *models.BookingProviderConfig, window DateRange) (models.AvailabilityResponse, error) {
	if cfg.Periode == nil {
		return models.AvailabilityResponse{}, fmt.Errorf("periode config missing")
	}

	endpoint := fmt.Sprintf("https://api.periode.co/v1/profiles/%s/sessions?from=%s&to=%s",
		cfg.Periode.ProfileSlug, window.Start, window.EndOrStart())

	var out periodeSessionsResponse
	if err := a.client.getJSON(ctx, a.Name(), endpoint, nil, &out); err != nil {
		return models.AvailabilityResponse{}, err
	}

	// Sessions arrive flat; group them by title so each session type becomes
	// one appointment type.
	byTitle := make(map[string]*models.AppointmentTypeAvailability)
	var order []string
	for _, s := range out.Sessions {
		at, ok := byTitle[s.Title]
		if !ok {
			seeded := typeFor(cfg, s.ID, s.Title)
			byTitle[s.Title] = &seeded
			order = append(order, s.Title)
			at = &seeded
		}
		addSlot(at, s.StartsAt, intPtr(s.SpotsLeft))
	}

	var resp models.AvailabilityResponse
	for _, title := range order {
		resp.AppointmentTypes = append(resp.AppointmentTypes, *byTitle[title])
	}
	return resp, nil
}
