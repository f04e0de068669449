package providers

import (
	"context"
	"fmt"
	"strconv"

	"saunascout/models"
)

type rollerAdapter struct {
	client *Client
}

type rollerSessionsResponse struct {
	Sessions []struct {
		ProductID   int    `json:"productId"`
		ProductName string `json:"productName"`
		StartTime   string `json:"startTime"` // RFC3339
		Capacity    int    `json:"capacity"`
		Booked      int    `json:"booked"`
	} `json:"sessions"`
}

func (a *rollerAdapter) Name() string { return "roller" }

func (a *rollerAdapter) FetchAvailability(ctx context.Context, cfg *models.BookingProviderConfig, window DateRange) (models.AvailabilityResponse, error) {
	if cfg.Roller == nil {
		return models.AvailabilityResponse{}, fmt.Errorf("roller config missing")
	}

	var resp models.AvailabilityResponse
	for _, productID := range cfg.Roller.ProductIDs {
		endpoint := fmt.Sprintf("https://api.roller.app/v1/venues/%s/products/%d/sessions?startDate=%s&endDate=%s",
			cfg.Roller.VenueID, productID, window.Start, window.EndOrStart())

		var out rollerSessionsResponse
		if err := a.client.getJSON(ctx, a.Name(), endpoint, nil, &out); err != nil {
			return models.AvailabilityResponse{}, err
		}

		at := typeFor(cfg, strconv.Itoa(productID), fmt.Sprintf("Product %d", productID))
		for _, s := range out.Sessions {
			remaining := s.Capacity - s.Booked
			if remaining < 0 {
				remaining = 0
			}
			if at.Name == fmt.Sprintf("Product %d", productID) && s.ProductName != "" {
				at.Name = s.ProductName
			}
			addSlot(&at, s.StartTime, intPtr(remaining))
		}
		resp.AppointmentTypes = append(resp.AppointmentTypes, at)
	}
	return resp, nil
}
