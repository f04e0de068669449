package providers

import (
	"context"
	"fmt"

	"saunascout/models"
)

type zettlorAdapter struct {
	client *Client
}

type zettlorResponse struct {
	Offerings []struct {
		Slug     string `json:"slug"`
		Title    string `json:"title"`
		Sessions []struct {
			StartsAt   string `json:"starts_at"` // RFC3339
			SeatsOpen  int    `json:"seats_open"`
			SoldOut    bool   `json:"sold_out"`
			Cancelled  bool   `json:"cancelled"`
			PriceCents int    `json:"price_cents"`
		} `json:"sessions"`
	} `json:"offerings"`
}

func (a *zettlorAdapter) Name() string { return "zettlor" }

func (a *zettlorAdapter) FetchAvailability(ctx context.Context, cfg *models.BookingProviderConfig, window DateRange) (models.AvailabilityResponse, error) {
	if cfg.Zettlor == nil {
		return models.AvailabilityResponse{}, fmt.Errorf("zettlor config missing")
	}

	endpoint := fmt.Sprintf("https://zettlor.com/api/spaces/%s/offerings?from=%s&to=%s",
		cfg.Zettlor.SpaceSlug, window.Start, window.EndOrStart())

	var out zettlorResponse
	if err := a.client.getJSON(ctx, a.Name(), endpoint, nil, &out); err != nil {
		return models.AvailabilityResponse{}, err
	}

	var resp models.AvailabilityResponse
	for _, off := range out.Offerings {
		at := typeFor(cfg, off.Slug, off.Title)
		for _, s := range off.Sessions {
			if s.Cancelled {
				continue
			}
			seats := s.SeatsOpen
			if s.SoldOut {
				seats = 0
			}
			if at.Price == 0 && s.PriceCents > 0 {
				at.Price = float64(s.PriceCents) / 100
			}
			addSlot(&at, s.StartsAt, intPtr(seats))
		}
		resp.AppointmentTypes = append(resp.AppointmentTypes, at)
	}
	return resp, nil
}
