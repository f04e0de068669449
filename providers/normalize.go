package providers

import (
	"fmt"
	"time"

	"saunascout/models"
)

func intPtr(n int) *int { return &n }

// typeFor seeds a canonical appointment-type record from the config's service
// list, falling back to the id and given name when the venue did not enumerate
// offerings.
func typeFor(cfg *models.BookingProviderConfig, id, fallbackName string) models.AppointmentTypeAvailability {
	at := models.AppointmentTypeAvailability{
		AppointmentTypeID: id,
		Name:              fallbackName,
		Dates:             make(map[string][]models.Slot),
	}
	for _, svc := range cfg.Services {
		if svc.ID == id {
			at.Name = svc.Name
			at.Price = svc.Price
			at.DurationMinutes = svc.DurationMinutes
			at.Private = svc.Private
			at.Seats = svc.Seats
			break
		}
	}
	return at
}

// addSlot files a slot under its calendar date. The instant must already be
// absolute ISO-8601; the date key is its leading YYYY-MM-DD.
func addSlot(at *models.AppointmentTypeAvailability, iso string, capacity *int) {
	if len(iso) < 10 {
		return
	}
	date := iso[:10]
	at.Dates[date] = append(at.Dates[date], models.Slot{Time: iso, SlotsAvailable: capacity})
}

// venueZone resolves the config's IANA timezone, defaulting to UTC when the
// zone is missing or unknown.
func venueZone(cfg *models.BookingProviderConfig) *time.Location {
	if cfg.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// localToISO parses a vendor-local timestamp in the given layout and renders
// it as an absolute RFC3339 instant in the venue's zone.
func localToISO(loc *time.Location, layout, value string) (string, error) {
	t, err := time.ParseInLocation(layout, value, loc)
	if err != nil {
		return "", fmt.Errorf("parse vendor time %q: %w", value, err)
	}
	return t.Format(time.RFC3339), nil
}
