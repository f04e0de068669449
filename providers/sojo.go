package providers

import (
	"context"
	"fmt"

	"saunascout/models"
)

type sojoAdapter struct {
	client *Client
}

type sojoScheduleResponse struct {
	Schedule []struct {
		SessionType string `json:"sessionType"`
		SessionID   string `json:"sessionId"`
		Start       string `json:"start"` // RFC3339
		SpotsLeft   *int   `json:"spotsLeft"`
	} `json:"schedule"`
}

func (a *sojoAdapter) Name() string { return "sojo" }

func (a *sojoAdapter) FetchAvailability(ctx context.Context, cfg *models.BookingProviderConfig, window DateRange) (models.AvailabilityResponse, error) {
	if cfg.SoJo == nil {
		return models.AvailabilityResponse{}, fmt.Errorf("sojo config missing")
	}

	endpoint := fmt.Sprintf("https://book.sojospa.co/api/locations/%s/schedule?from=%s&to=%s",
		cfg.SoJo.LocationSlug, window.Start, window.EndOrStart())

	var out sojoScheduleResponse
	if err := a.client.getJSON(ctx, a.Name(), endpoint, nil, &out); err != nil {
		return models.AvailabilityResponse{}, err
	}

	byType := make(map[string]*models.AppointmentTypeAvailability)
	var order []string
	for _, s := range out.Schedule {
		at, ok := byType[s.SessionType]
		if !ok {
			seeded := typeFor(cfg, s.SessionID, s.SessionType)
			byType[s.SessionType] = &seeded
			order = append(order, s.SessionType)
			at = &seeded
		}
		// SoJo omits spotsLeft for unmetered communal sessions; pass the nil
		// through as "unknown capacity".
		addSlot(at, s.Start, s.SpotsLeft)
	}

	var resp models.AvailabilityResponse
	for _, name := range order {
		resp.AppointmentTypes = append(resp.AppointmentTypes, *byType[name])
	}
	return resp, nil
}
