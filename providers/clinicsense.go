package providers

import (
	"context"
	"fmt"

	"saunascout/models"
)

type clinicsenseAdapter struct {
	client *Client
}

type clinicsenseResponse struct {
	Services []struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Duration int    `json:"duration"`
		Openings []struct {
			StartsAt string `json:"startsAt"` // RFC3339
		} `json:"openings"`
	} `json:"services"`
}

func (a *clinicsenseAdapter) Name() string { return "clinicsense" }

func (a *clinicsenseAdapter) FetchAvailability(ctx context.Context, cfg *models.BookingProviderConfig, window DateRange) (models.AvailabilityResponse, error) {
	if cfg.ClinicSense == nil {
		return models.AvailabilityResponse{}, fmt.Errorf("clinicsense config missing")
	}

	endpoint := fmt.Sprintf("https://clinicsense.com/api/online-booking/%s/openings?from=%s&to=%s",
		cfg.ClinicSense.ClinicSlug, window.Start, window.EndOrStart())

	var out clinicsenseResponse
	if err := a.client.getJSON(ctx, a.Name(), endpoint, nil, &out); err != nil {
		return models.AvailabilityResponse{}, err
	}

	var resp models.AvailabilityResponse
	for _, svc := range out.Services {
		at := typeFor(cfg, svc.ID, svc.Name)
		if at.DurationMinutes == 0 {
			at.DurationMinutes = svc.Duration
		}
		for _, o := range svc.Openings {
			// Single-practitioner openings: one seat each.
			addSlot(&at, o.StartsAt, intPtr(1))
		}
		resp.AppointmentTypes = append(resp.AppointmentTypes, at)
	}
	return resp, nil
}
