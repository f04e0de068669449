package providers

import (
	"context"
	"fmt"

	"saunascout/models"
)

type mangomintAdapter struct {
	client *Client
}

type mangomintResponse struct {
	AvailableServices []struct {
		ServiceID string `json:"serviceId"`
		Name      string `json:"name"`
		Slots     []struct {
			StartTime string `json:"startTime"` // RFC3339
		} `json:"slots"`
	} `json:"availableServices"`
}

func (a *mangomintAdapter) Name() string { return "mangomint" }

func (a *mangomintAdapter) FetchAvailability(ctx context.Context, cfg *models.BookingProviderConfig, window DateRange) (models.AvailabilityResponse, error) {
	if cfg.Mangomint == nil {
		return models.AvailabilityResponse{}, fmt.Errorf("mangomint config missing")
	}

	endpoint := fmt.Sprintf("https://booking.mangomint.com/api/v1/companies/%s/availability?startDate=%s&endDate=%s",
		cfg.Mangomint.CompanyID, window.Start, window.EndOrStart())

	var out mangomintResponse
	if err := a.client.getJSON(ctx, a.Name(), endpoint, nil, &out); err != nil {
		return models.AvailabilityResponse{}, err
	}

	var resp models.AvailabilityResponse
	for _, svc := range out.AvailableServices {
		at := typeFor(cfg, svc.ServiceID, svc.Name)
		for _, s := range svc.Slots {
			addSlot(&at, s.StartTime, nil)
		}
		resp.AppointmentTypes = append(resp.AppointmentTypes, at)
	}
	return resp, nil
}
