// services/availability.go
package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"saunascout/models"
	"saunascout/providers"
	"saunascout/utils"
)

// AvailabilityService fetches and aggregates live availability for venues.
type AvailabilityService interface {
	FetchVenueAvailability(ctx context.Context, venue models.Venue, window providers.DateRange) (models.AvailabilityResponse, error)
}

// DefaultAvailabilityService is a concrete implementation backed by the
// vendor adapter registry.
type DefaultAvailabilityService struct {
	Client *providers.Client
}

// FetchVenueAvailability dispatches to the venue's vendor adapter and returns
// the canonical response. Venues without a provider config get an empty
// response: booking-link-only venues have no live availability by contract.
func (s *DefaultAvailabilityService) FetchVenueAvailability(ctx context.Context, venue models.Venue, window providers.DateRange) (models.AvailabilityResponse, error) {
	if venue.Booking == nil {
		return models.AvailabilityResponse{}, nil
	}
	adapter, err := providers.ForConfig(s.Client, venue.Booking)
	if err != nil {
		return models.AvailabilityResponse{}, err
	}
	return adapter.FetchAvailability(ctx, venue.Booking, window)
}

// MergeResponses combines several per-service responses for the same venue
// into one, preserving input order.
func MergeResponses(resps ...models.AvailabilityResponse) models.AvailabilityResponse {
	var merged models.AvailabilityResponse
	for _, r := range resps {
		merged.AppointmentTypes = append(merged.AppointmentTypes, r.AppointmentTypes...)
	}
	return merged
}

// FilterPastSlots keeps only slots strictly later than now, preserving order.
// A slot whose time cannot be parsed is a contract violation by the adapter;
// it is dropped, loudly in development.
func FilterPastSlots(slots []models.Slot, now time.Time) []models.Slot {
	var out []models.Slot
	for _, s := range slots {
		t, err := time.Parse(time.RFC3339, s.Time)
		if err != nil {
			utils.GetLogger().DPanic("slot with unparseable time from adapter",
				zap.String("time", s.Time), zap.Error(err))
			continue
		}
		if t.After(now) {
			out = append(out, s)
		}
	}
	return out
}

// FilterOpenSlots keeps slots with remaining capacity. Unknown capacity (nil)
// counts as open; zero means fully booked and is dropped.
func FilterOpenSlots(slots []models.Slot) []models.Slot {
	var out []models.Slot
	for _, s := range slots {
		if s.Open() {
			out = append(out, s)
		}
	}
	return out
}

// GroupByDate builds the per-day view: for each date, every appointment type
// with its surviving future, open slots. Dates where no type keeps a slot are
// omitted. Dates sort lexicographically, which is chronological for
// zero-padded YYYY-MM-DD keys; type order and slot order are preserved.
func GroupByDate(resp models.AvailabilityResponse, now time.Time) models.GroupedAvailability {
	grouped := models.GroupedAvailability{
		ByDate: make(map[string][]models.DateEntry),
	}

	dateSet := make(map[string]bool)
	for _, at := range resp.AppointmentTypes {
		for date := range at.Dates {
			dateSet[date] = true
		}
	}
	allDates := make([]string, 0, len(dateSet))
	for d := range dateSet {
		allDates = append(allDates, d)
	}
	sort.Strings(allDates)

	for _, date := range allDates {
		var entries []models.DateEntry
		for _, at := range resp.AppointmentTypes {
			slots, ok := at.Dates[date]
			if !ok {
				continue
			}
			surviving := FilterOpenSlots(FilterPastSlots(slots, now))
			if len(surviving) == 0 {
				continue
			}
			entries = append(entries, models.DateEntry{AppointmentType: at, Slots: surviving})
		}
		if len(entries) == 0 {
			continue
		}
		grouped.ByDate[date] = entries
		grouped.Dates = append(grouped.Dates, date)
	}

	if len(grouped.Dates) > 0 {
		grouped.FirstDate = grouped.Dates[0]
		grouped.LastDate = grouped.Dates[len(grouped.Dates)-1]
	}
	return grouped
}

// WindowDates applies the display policy over the grouped dates: when only is
// set the view collapses to that single date; otherwise maxDays caps how many
// dates are shown, with HasMoreDates and RemainingDates reporting the rest.
// A maxDays of zero or less means no cap. FirstDate and LastDate keep
// describing the full surviving range so the tide fetch window is unaffected.
func WindowDates(g models.GroupedAvailability, maxDays int, only string) models.GroupedAvailability {
	windowed := models.GroupedAvailability{
		ByDate:    make(map[string][]models.DateEntry),
		FirstDate: g.FirstDate,
		LastDate:  g.LastDate,
	}

	if only != "" {
		if entries, ok := g.ByDate[only]; ok {
			windowed.ByDate[only] = entries
			windowed.Dates = []string{only}
		}
		return windowed
	}

	keep := g.Dates
	if maxDays > 0 && len(keep) > maxDays {
		keep = keep[:maxDays]
		windowed.HasMoreDates = true
		windowed.RemainingDates = len(g.Dates) - maxDays
	}
	for _, d := range keep {
		windowed.ByDate[d] = g.ByDate[d]
		windowed.Dates = append(windowed.Dates, d)
	}
	return windowed
}

// LatestFetcher serializes single-venue fetches so a slow response for a
// stale request never overwrites a newer one. Each Fetch cancels the previous
// in-flight request and bumps the generation; a completion whose generation
// is no longer current is reported as stale and must be discarded.
type LatestFetcher struct {
	Service AvailabilityService

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
}

// Fetch runs a venue fetch, cancelling any request still in flight. The stale
// return is true when a newer Fetch started while this one was running; a
// stale result carries no error, it is simply not current.
func (f *LatestFetcher) Fetch(ctx context.Context, venue models.Venue, window providers.DateRange) (resp models.AvailabilityResponse, stale bool, err error) {
	f.mu.Lock()
	if f.cancel != nil {
		f.cancel()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	f.cancel = cancel
	f.gen++
	myGen := f.gen
	f.mu.Unlock()

	resp, err = f.Service.FetchVenueAvailability(fetchCtx, venue, window)

	f.mu.Lock()
	current := f.gen == myGen
	if current {
		f.cancel = nil
		cancel()
	}
	f.mu.Unlock()

	if !current {
		// Superseded mid-flight: not an error, just discarded.
		return models.AvailabilityResponse{}, true, nil
	}
	return resp, false, err
}
