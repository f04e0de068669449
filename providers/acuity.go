package providers

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"saunascout/models"
)

// acuityAdapter reads the public Acuity scheduling widget API. Acuity reports
// per-slot remaining capacity directly.
type acuityAdapter struct {
	client *Client
}

type acuityTimesResponse []struct {
	Time           string `json:"time"` // e.g. "2025-06-01T10:00:00-0700"
	SlotsAvailable int    `json:"slotsAvailable"`
}

func (a *acuityAdapter) Name() string { return "acuity" }

func (a *acuityAdapter) FetchAvailability(ctx context.Context, cfg *models.BookingProviderConfig, window DateRange) (models.AvailabilityResponse, error) {
	if cfg.Acuity == nil {
		return models.AvailabilityResponse{}, fmt.Errorf("acuity config missing")
	}

	var resp models.AvailabilityResponse
	for _, typeID := range cfg.Acuity.AppointmentTypeIDs {
		id := strconv.Itoa(typeID)
		q := url.Values{}
		q.Set("owner", cfg.Acuity.OwnerID)
		q.Set("appointmentTypeID", id)
		q.Set("startDate", window.Start)
		q.Set("endDate", window.EndOrStart())
		q.Set("timezone", cfg.Timezone)
		endpoint := "https://app.acuityscheduling.com/api/scheduling/v1/availability/times?" + q.Encode()

		var times acuityTimesResponse
		if err := a.client.getJSON(ctx, a.Name(), endpoint, nil, &times); err != nil {
			return models.AvailabilityResponse{}, err
		}

		at := typeFor(cfg, id, "Appointment "+id)
		for _, t := range times {
			// Acuity's offset format has no colon; reparse to RFC3339.
			iso, err := localToISO(venueZone(cfg), "2006-01-02T15:04:05-0700", t.Time)
			if err != nil {
				continue
			}
			addSlot(&at, iso, intPtr(t.SlotsAvailable))
		}
		resp.AppointmentTypes = append(resp.AppointmentTypes, at)
	}
	return resp, nil
}
