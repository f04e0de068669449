package providers

import (
	"context"
	"fmt"

	"saunascout/models"
)

// DateRange is the inclusive fetch window, both ends YYYY-MM-DD. End may be
// empty for single-day fetches.
type DateRange struct {
	Start string
	End   string
}

// EndOrStart returns End when set, otherwise Start.
func (r DateRange) EndOrStart() string {
	if r.End != "" {
		return r.End
	}
	return r.Start
}

// Adapter translates one vendor's API into the canonical availability model.
// Implementations return absolute ISO-8601 instants already adjusted to the
// config's timezone, and a nil SlotsAvailable only when the vendor genuinely
// cannot report remaining capacity.
type Adapter interface {
	Name() string
	FetchAvailability(ctx context.Context, cfg *models.BookingProviderConfig, window DateRange) (models.AvailabilityResponse, error)
}

// ForConfig returns the adapter for the config's vendor. The switch is
// exhaustive over the closed ProviderType set; adding a vendor means adding a
// case here plus its adapter file.
func ForConfig(client *Client, cfg *models.BookingProviderConfig) (Adapter, error) {
	switch cfg.Type {
	case models.ProviderAcuity:
		return &acuityAdapter{client: client}, nil
	case models.ProviderWix:
		return &wixAdapter{client: client}, nil
	case models.ProviderMindbody:
		return &mindbodyAdapter{client: client}, nil
	case models.ProviderVagaro:
		return &vagaroAdapter{client: client}, nil
	case models.ProviderZenoti:
		return &zenotiAdapter{client: client}, nil
	case models.ProviderFareHarbor:
		return &fareharborAdapter{client: client}, nil
	case models.ProviderPeriode:
		return &periodeAdapter{client: client}, nil
	case models.ProviderMarianaTek:
		return &marianatekAdapter{client: client}, nil
	case models.ProviderGlofox:
		return &glofoxAdapter{client: client}, nil
	case models.ProviderBoulevard:
		return &boulevardAdapter{client: client}, nil
	case models.ProviderCheckfront:
		return &checkfrontAdapter{client: client}, nil
	case models.ProviderPeek:
		return &peekAdapter{client: client}, nil
	case models.ProviderSquare:
		return &squareAdapter{client: client}, nil
	case models.ProviderBooker:
		return &bookerAdapter{client: client}, nil
	case models.ProviderSimplyBook:
		return &simplybookAdapter{client: client}, nil
	case models.ProviderClinicSense:
		return &clinicsenseAdapter{client: client}, nil
	case models.ProviderMangomint:
		return &mangomintAdapter{client: client}, nil
	case models.ProviderRoller:
		return &rollerAdapter{client: client}, nil
	case models.ProviderZettlor:
		return &zettlorAdapter{client: client}, nil
	case models.ProviderTrybe:
		return &trybeAdapter{client: client}, nil
	case models.ProviderSoJo:
		return &sojoAdapter{client: client}, nil
	default:
		return nil, fmt.Errorf("no adapter for provider type %q", cfg.Type)
	}
}
