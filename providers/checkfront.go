package providers

import (
	"context"
	"fmt"
	"sort"

	"saunascout/models"
)

// checkfrontAdapter reads a Checkfront host's item calendar. The calendar is
// keyed by date with start times and remaining stock per time.
type checkfrontAdapter struct {
	client *Client
}

type checkfrontCalResponse struct {
	Item struct {
		Cal map[string][]struct {
			Time  string `json:"time"` // local "15:04"
			Stock int    `json:"stock"`
		} `json:"cal"`
	} `json:"item"`
}

func (a *checkfrontAdapter) Name() string { return "checkfront" }

func (a *checkfrontAdapter) FetchAvailability(ctx context.Context, cfg *models.BookingProviderConfig, window DateRange) (models.AvailabilityResponse, error) {
	if cfg.Checkfront == nil {
		return models.AvailabilityResponse{}, fmt.Errorf("checkfront config missing")
	}

	loc := venueZone(cfg)
	var resp models.AvailabilityResponse
	for _, itemID := range cfg.Checkfront.ItemIDs {
		endpoint := fmt.Sprintf("https://%s/api/3.0/item/%d/cal?start_date=%s&end_date=%s",
			cfg.Checkfront.Host, itemID, window.Start, window.EndOrStart())

		var out checkfrontCalResponse
		if err := a.client.getJSON(ctx, a.Name(), endpoint, nil, &out); err != nil {
			return models.AvailabilityResponse{}, err
		}

		at := typeFor(cfg, fmt.Sprintf("%d", itemID), fmt.Sprintf("Item %d", itemID))

		// Map iteration is unordered; walk dates sorted so slot order within
		// the response stays chronological.
		dates := make([]string, 0, len(out.Item.Cal))
		for d := range out.Item.Cal {
			dates = append(dates, d)
		}
		sort.Strings(dates)
		for _, d := range dates {
			for _, entry := range out.Item.Cal[d] {
				iso, err := localToISO(loc, "2006-01-02 15:04", d+" "+entry.Time)
				if err != nil {
					continue
				}
				addSlot(&at, iso, intPtr(entry.Stock))
			}
		}
		resp.AppointmentTypes = append(resp.AppointmentTypes, at)
	}
	return resp, nil
}
