package providers

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"saunascout/models"
)

// simplybookAdapter queries SimplyBook's public slot API per service. Slots
// come back keyed by date with local start times.
type simplybookAdapter struct {
	client *Client
}

type simplybookSlotsResponse map[string][]struct {
	Time      string `json:"time"` // local "15:04:05"
	Available int    `json:"available"`
}

func (a *simplybookAdapter) Name() string { return "simplybook" }

func (a *simplybookAdapter) FetchAvailability(ctx context.Context, cfg *models.BookingProviderConfig, window DateRange) (models.AvailabilityResponse, error) {
	if cfg.SimplyBook == nil {
		return models.AvailabilityResponse{}, fmt.Errorf("simplybook config missing")
	}

	header := http.Header{}
	header.Set("X-Company-Login", cfg.SimplyBook.CompanyLogin)

	loc := venueZone(cfg)
	var resp models.AvailabilityResponse
	for _, svcID := range cfg.SimplyBook.ServiceIDs {
		endpoint := fmt.Sprintf("https://user-api-v2.simplybook.me/public/v1/slots?service_id=%d&date_from=%s&date_to=%s",
			svcID, window.Start, window.EndOrStart())

		var out simplybookSlotsResponse
		if err := a.client.getJSON(ctx, a.Name(), endpoint, header, &out); err != nil {
			return models.AvailabilityResponse{}, err
		}

		at := typeFor(cfg, strconv.Itoa(svcID), fmt.Sprintf("Service %d", svcID))
		dates := make([]string, 0, len(out))
		for d := range out {
			dates = append(dates, d)
		}
		sort.Strings(dates)
		for _, d := range dates {
			for _, s := range out[d] {
				iso, err := localToISO(loc, "2006-01-02 15:04:05", d+" "+s.Time)
				if err != nil {
					continue
				}
				addSlot(&at, iso, intPtr(s.Available))
			}
		}
		resp.AppointmentTypes = append(resp.AppointmentTypes, at)
	}
	return resp, nil
}
