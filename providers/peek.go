package providers

import (
	"context"
	"fmt"

	"saunascout/models"
)

type peekAdapter struct {
	client *Client
}

type peekAvailabilityResponse struct {
	Activities []struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Times []struct {
			StartsAt  string `json:"starts_at"` // RFC3339
			Remaining int    `json:"remaining"`
		} `json:"times"`
	} `json:"activities"`
}

func (a *peekAdapter) Name() string { return "peek" }

func (a *peekAdapter) FetchAvailability(ctx context.Context, cfg *models.BookingProviderConfig, window DateRange) (models.AvailabilityResponse, error) {
	if cfg.Peek == nil {
		return models.AvailabilityResponse{}, fmt.Errorf("peek config missing")
	}

	endpoint := fmt.Sprintf("https://book.peek.com/services/api/widget/%s/availability?start=%s&end=%s",
		cfg.Peek.WidgetKey, window.Start, window.EndOrStart())

	var out peekAvailabilityResponse
	if err := a.client.getJSON(ctx, a.Name(), endpoint, nil, &out); err != nil {
		return models.AvailabilityResponse{}, err
	}

	var resp models.AvailabilityResponse
	for _, act := range out.Activities {
		at := typeFor(cfg, act.ID, act.Name)
		for _, t := range act.Times {
			addSlot(&at, t.StartsAt, intPtr(t.Remaining))
		}
		resp.AppointmentTypes = append(resp.AppointmentTypes, at)
	}
	return resp, nil
}
