package providers

import (
	"context"
	"fmt"

	"saunascout/models"
)

// vagaroAdapter reads the Vagaro widget feed. Vagaro only reports whether a
// time is open, never how many seats remain, so SlotsAvailable stays nil.
type vagaroAdapter struct {
	client *Client
}

type vagaroWidgetResponse struct {
	Services []struct {
		ServiceID   string `json:"serviceId"`
		ServiceName string `json:"serviceName"`
		OpenTimes   []struct {
			Date  string   `json:"date"`  // "2025-06-01"
			Times []string `json:"times"` // local "15:04"
		} `json:"openTimes"`
	} `json:"services"`
}

func (a *vagaroAdapter) Name() string { return "vagaro" }

func (a *vagaroAdapter) FetchAvailability(ctx context.Context, cfg *models.BookingProviderConfig, window DateRange) (models.AvailabilityResponse, error) {
	if cfg.Vagaro == nil {
		return models.AvailabilityResponse{}, fmt.Errorf("vagaro config missing")
	}

	endpoint := fmt.Sprintf("https://www.vagaro.com/websiteapi/homepage/appointments?businessId=%s&startDate=%s&endDate=%s",
		cfg.Vagaro.BusinessID, window.Start, window.EndOrStart())

	var out vagaroWidgetResponse
	if err := a.client.getJSON(ctx, a.Name(), endpoint, nil, &out); err != nil {
		return models.AvailabilityResponse{}, err
	}

	loc := venueZone(cfg)
	var resp models.AvailabilityResponse
	for _, svc := range out.Services {
		at := typeFor(cfg, svc.ServiceID, svc.ServiceName)
		for _, day := range svc.OpenTimes {
			for _, hm := range day.Times {
				iso, err := localToISO(loc, "2006-01-02 15:04", day.Date+" "+hm)
				if err != nil {
					continue
				}
				addSlot(&at, iso, nil)
			}
		}
		resp.AppointmentTypes = append(resp.AppointmentTypes, at)
	}
	return resp, nil
}
