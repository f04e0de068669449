package providers

import (
	"context"
	"fmt"

	"saunascout/models"
)

type glofoxAdapter struct {
	client *Client
}

type glofoxClassesResponse struct {
	Data []struct {
		ID     string `json:"_id"`
		Name   string `json:"name"`
		Date   string `json:"date"`       // "2025-06-01"
		Time   string `json:"start_time"` // local "15:04"
		Size   int    `json:"size"`
		Booked int    `json:"booked"`
	} `json:"data"`
}

func (a *glofoxAdapter) Name() string { return "glofox" }

func (a *glofoxAdapter) FetchAvailability(ctx context.Context, cfg *models.BookingProviderConfig, window DateRange) (models.AvailabilityResponse, error) {
	if cfg.Glofox == nil {
		return models.AvailabilityResponse{}, fmt.Errorf("glofox config missing")
	}

	endpoint := fmt.Sprintf("https://api.glofox.com/2.0/branches/%s/classes?start=%s&end=%s",
		cfg.Glofox.BranchID, window.Start, window.EndOrStart())

	var out glofoxClassesResponse
	if err := a.client.getJSON(ctx, a.Name(), endpoint, nil, &out); err != nil {
		return models.AvailabilityResponse{}, err
	}

	loc := venueZone(cfg)
	byName := make(map[string]*models.AppointmentTypeAvailability)
	var order []string
	for _, cl := range out.Data {
		at, ok := byName[cl.Name]
		if !ok {
			seeded := typeFor(cfg, cl.ID, cl.Name)
			byName[cl.Name] = &seeded
			order = append(order, cl.Name)
			at = &seeded
		}
		iso, err := localToISO(loc, "2006-01-02 15:04", cl.Date+" "+cl.Time)
		if err != nil {
			continue
		}
		remaining := cl.Size - cl.Booked
		if remaining < 0 {
			remaining = 0
		}
		addSlot(at, iso, intPtr(remaining))
	}

	var resp models.AvailabilityResponse
	for _, name := range order {
		resp.AppointmentTypes = append(resp.AppointmentTypes, *byName[name])
	}
	return resp, nil
}
