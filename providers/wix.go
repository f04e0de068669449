package providers

import (
	"context"
	"fmt"
	"net/http"

	"saunascout/models"
)

// wixAdapter queries the Wix Bookings availability API for each configured
// service. Wix returns remaining spots per slot.
type wixAdapter struct {
	client *Client
}

type wixQueryRequest struct {
	Query wixQuery `json:"query"`
}

type wixQuery struct {
	Filter wixFilter `json:"filter"`
}

type wixFilter struct {
	ServiceID string `json:"serviceId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type wixQueryResponse struct {
	AvailabilityEntries []struct {
		Slot struct {
			StartDate string `json:"startDate"` // RFC3339
		} `json:"slot"`
		Bookable      bool `json:"bookable"`
		TotalCapacity int  `json:"totalCapacity"`
		OpenSpots     int  `json:"openSpots"`
	} `json:"availabilityEntries"`
}

func (a *wixAdapter) Name() string { return "wix" }

func (a *wixAdapter) FetchAvailability(ctx context.Context, cfg *models.BookingProviderConfig, window DateRange) (models.AvailabilityResponse, error) {
	if cfg.Wix == nil {
		return models.AvailabilityResponse{}, fmt.Errorf("wix config missing")
	}

	header := http.Header{}
	header.Set("wix-site-id", cfg.Wix.SiteID)

	var resp models.AvailabilityResponse
	for _, svcID := range cfg.Wix.ServiceIDs {
		body := wixQueryRequest{Query: wixQuery{Filter: wixFilter{
			ServiceID: svcID,
			StartDate: window.Start + "T00:00:00Z",
			EndDate:   window.EndOrStart() + "T23:59:59Z",
		}}}

		var out wixQueryResponse
		err := a.client.postJSON(ctx, a.Name(), "https://www.wixapis.com/bookings/v2/availability/query", header, body, &out)
		if err != nil {
			return models.AvailabilityResponse{}, err
		}

		at := typeFor(cfg, svcID, "Service "+svcID)
		for _, entry := range out.AvailabilityEntries {
			if !entry.Bookable {
				continue
			}
			addSlot(&at, entry.Slot.StartDate, intPtr(entry.OpenSpots))
		}
		resp.AppointmentTypes = append(resp.AppointmentTypes, at)
	}
	return resp, nil
}
