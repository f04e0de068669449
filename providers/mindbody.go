package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"saunascout/models"
)

// mindbodyAdapter reads the Mindbody public class listing. Capacity comes from
// MaxCapacity minus TotalBooked.
type mindbodyAdapter struct {
	client *Client
}

type mindbodyClassesResponse struct {
	Classes []struct {
		ClassDescription struct {
			ID   int    `json:"Id"`
			Name string `json:"Name"`
		} `json:"ClassDescription"`
		StartDateTime string `json:"StartDateTime"` // local, "2006-01-02T15:04:05"
		MaxCapacity   int    `json:"MaxCapacity"`
		TotalBooked   int    `json:"TotalBooked"`
		IsCanceled    bool   `json:"IsCanceled"`
	} `json:"Classes"`
}

func (a *mindbodyAdapter) Name() string { return "mindbody" }

func (a *mindbodyAdapter) FetchAvailability(ctx context.Context, cfg *models.BookingProviderConfig, window DateRange) (models.AvailabilityResponse, error) {
	if cfg.Mindbody == nil {
		return models.AvailabilityResponse{}, fmt.Errorf("mindbody config missing")
	}

	q := url.Values{}
	q.Set("StartDateTime", window.Start+"T00:00:00")
	q.Set("EndDateTime", window.EndOrStart()+"T23:59:59")
	endpoint := "https://api.mindbodyonline.com/public/v6/class/classes?" + q.Encode()

	header := http.Header{}
	header.Set("Site-Id", cfg.Mindbody.SiteID)

	var out mindbodyClassesResponse
	if err := a.client.getJSON(ctx, a.Name(), endpoint, header, &out); err != nil {
		return models.AvailabilityResponse{}, err
	}

	wanted := make(map[int]bool, len(cfg.Mindbody.ClassIDs))
	for _, id := range cfg.Mindbody.ClassIDs {
		wanted[id] = true
	}

	loc := venueZone(cfg)
	byType := make(map[int]*models.AppointmentTypeAvailability)
	var order []int
	for _, cl := range out.Classes {
		if cl.IsCanceled {
			continue
		}
		if len(wanted) > 0 && !wanted[cl.ClassDescription.ID] {
			continue
		}
		at, ok := byType[cl.ClassDescription.ID]
		if !ok {
			seeded := typeFor(cfg, strconv.Itoa(cl.ClassDescription.ID), cl.ClassDescription.Name)
			byType[cl.ClassDescription.ID] = &seeded
			order = append(order, cl.ClassDescription.ID)
			at = &seeded
		}
		iso, err := localToISO(loc, "2006-01-02T15:04:05", cl.StartDateTime)
		if err != nil {
			continue
		}
		remaining := cl.MaxCapacity - cl.TotalBooked
		if remaining < 0 {
			remaining = 0
		}
		addSlot(at, iso, intPtr(remaining))
	}

	var resp models.AvailabilityResponse
	for _, id := range order {
		resp.AppointmentTypes = append(resp.AppointmentTypes, *byType[id])
	}
	return resp, nil
}
