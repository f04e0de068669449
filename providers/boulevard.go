package providers

import (
	"context"
	"fmt"

	"saunascout/models"
)

// boulevardAdapter uses Boulevard's client GraphQL API. One query per service
// returns bookable times; Boulevard never exposes seat counts.
type boulevardAdapter struct {
	client *Client
}

const boulevardAvailabilityQuery = `query($locationId: ID!, $serviceId: ID!, $lower: Date!, $upper: Date!) {
  business { location(id: $locationId) { availableTimes(serviceId: $serviceId, lower: $lower, upper: $upper) { startTime } } }
}`

type boulevardGraphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type boulevardGraphQLResponse struct {
	Data struct {
		Business struct {
			Location struct {
				AvailableTimes []struct {
					StartTime string `json:"startTime"` // RFC3339
				} `json:"availableTimes"`
			} `json:"location"`
		} `json:"business"`
	} `json:"data"`
}

func (a *boulevardAdapter) Name() string { return "boulevard" }

func (a *boulevardAdapter) FetchAvailability(ctx context.Context, cfg *models.BookingProviderConfig, window DateRange) (models.AvailabilityResponse, error) {
	if cfg.Boulevard == nil {
		return models.AvailabilityResponse{}, fmt.Errorf("boulevard config missing")
	}

	endpoint := fmt.Sprintf("https://dashboard.boulevard.io/api/2020-01/%s/client", cfg.Boulevard.BusinessID)

	var resp models.AvailabilityResponse
	for _, svcID := range cfg.Boulevard.ServiceIDs {
		body := boulevardGraphQLRequest{
			Query: boulevardAvailabilityQuery,
			Variables: map[string]any{
				"locationId": cfg.Boulevard.LocationID,
				"serviceId":  svcID,
				"lower":      window.Start,
				"upper":      window.EndOrStart(),
			},
		}

		var out boulevardGraphQLResponse
		if err := a.client.postJSON(ctx, a.Name(), endpoint, nil, body, &out); err != nil {
			return models.AvailabilityResponse{}, err
		}

		at := typeFor(cfg, svcID, "Service "+svcID)
		for _, t := range out.Data.Business.Location.AvailableTimes {
			addSlot(&at, t.StartTime, nil)
		}
		resp.AppointmentTypes = append(resp.AppointmentTypes, at)
	}
	return resp, nil
}
