package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saunascout/models"
	"saunascout/providers"
)

func intp(n int) *int { return &n }

func isoAt(t time.Time) string { return t.Format(time.RFC3339) }

func TestFilterPastSlots(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	slots := []models.Slot{
		{Time: isoAt(now.Add(-2 * time.Hour))},
		{Time: isoAt(now)}, // exactly now is past
		{Time: isoAt(now.Add(time.Hour))},
		{Time: isoAt(now.Add(3 * time.Hour))},
	}

	out := FilterPastSlots(slots, now)
	require.Len(t, out, 2)
	assert.Equal(t, isoAt(now.Add(time.Hour)), out[0].Time)
	assert.Equal(t, isoAt(now.Add(3*time.Hour)), out[1].Time)
}

func TestFilterOpenSlots(t *testing.T) {
	slots := []models.Slot{
		{Time: "a", SlotsAvailable: intp(0)},
		{Time: "b", SlotsAvailable: nil},
		{Time: "c", SlotsAvailable: intp(3)},
	}

	out := FilterOpenSlots(slots)
	require.Len(t, out, 2)
	// nil capacity means unknown, which counts as open.
	assert.Equal(t, "b", out[0].Time)
	assert.Equal(t, "c", out[1].Time)
}

func TestGroupByDateDropsBookedAndKeepsOpen(t *testing.T) {
	now := time.Date(2025, 5, 30, 8, 0, 0, 0, time.UTC)
	resp := models.AvailabilityResponse{
		AppointmentTypes: []models.AppointmentTypeAvailability{
			{
				AppointmentTypeID: "communal",
				Dates: map[string][]models.Slot{
					"2025-06-01": {{Time: "2025-06-01T10:00:00Z", SlotsAvailable: intp(0)}},
				},
			},
			{
				AppointmentTypeID: "private",
				Dates: map[string][]models.Slot{
					"2025-06-01": {{Time: "2025-06-01T11:00:00Z", SlotsAvailable: intp(3)}},
				},
			},
		},
	}

	grouped := GroupByDate(resp, now)
	require.Equal(t, []string{"2025-06-01"}, grouped.Dates)
	entries := grouped.ByDate["2025-06-01"]
	require.Len(t, entries, 1)
	assert.Equal(t, "private", entries[0].AppointmentType.AppointmentTypeID)
	require.Len(t, entries[0].Slots, 1)
	assert.Equal(t, "2025-06-01T11:00:00Z", entries[0].Slots[0].Time)
}

func TestGroupByDateOmitsEmptyDatesAndSortsKeys(t *testing.T) {
	now := time.Date(2025, 5, 30, 8, 0, 0, 0, time.UTC)
	resp := models.AvailabilityResponse{
		AppointmentTypes: []models.AppointmentTypeAvailability{
			{
				AppointmentTypeID: "communal",
				Dates: map[string][]models.Slot{
					"2025-06-03": {{Time: "2025-06-03T10:00:00Z"}},
					"2025-06-01": {{Time: "2025-06-01T10:00:00Z"}},
					// Every slot on the 2nd is booked; the date must vanish.
					"2025-06-02": {{Time: "2025-06-02T10:00:00Z", SlotsAvailable: intp(0)}},
				},
			},
		},
	}

	grouped := GroupByDate(resp, now)
	assert.Equal(t, []string{"2025-06-01", "2025-06-03"}, grouped.Dates)
	assert.Equal(t, "2025-06-01", grouped.FirstDate)
	assert.Equal(t, "2025-06-03", grouped.LastDate)
	_, hasSecond := grouped.ByDate["2025-06-02"]
	assert.False(t, hasSecond)
}

func TestGroupByDateFiltersPastPerDate(t *testing.T) {
	// Midday: the morning slot is gone but the afternoon slot keeps the
	// date alive.
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	resp := models.AvailabilityResponse{
		AppointmentTypes: []models.AppointmentTypeAvailability{
			{
				AppointmentTypeID: "communal",
				Dates: map[string][]models.Slot{
					"2025-06-01": {
						{Time: "2025-06-01T09:00:00Z"},
						{Time: "2025-06-01T15:00:00Z"},
					},
				},
			},
		},
	}

	grouped := GroupByDate(resp, now)
	require.Equal(t, []string{"2025-06-01"}, grouped.Dates)
	slots := grouped.ByDate["2025-06-01"][0].Slots
	require.Len(t, slots, 1)
	assert.Equal(t, "2025-06-01T15:00:00Z", slots[0].Time)
}

func TestWindowDatesCap(t *testing.T) {
	now := time.Date(2025, 5, 30, 8, 0, 0, 0, time.UTC)
	dates := make(map[string][]models.Slot)
	for i := 1; i <= 10; i++ {
		d := fmt.Sprintf("2025-06-%02d", i)
		dates[d] = []models.Slot{{Time: d + "T10:00:00Z"}}
	}
	grouped := GroupByDate(models.AvailabilityResponse{
		AppointmentTypes: []models.AppointmentTypeAvailability{
			{AppointmentTypeID: "communal", Dates: dates},
		},
	}, now)
	require.Len(t, grouped.Dates, 10)

	windowed := WindowDates(grouped, 3, "")
	assert.Len(t, windowed.Dates, 3)
	assert.True(t, windowed.HasMoreDates)
	assert.Equal(t, 7, windowed.RemainingDates)
	// The full range survives for the tide fetch window.
	assert.Equal(t, "2025-06-01", windowed.FirstDate)
	assert.Equal(t, "2025-06-10", windowed.LastDate)
}

func TestWindowDatesSingleDate(t *testing.T) {
	now := time.Date(2025, 5, 30, 8, 0, 0, 0, time.UTC)
	grouped := GroupByDate(models.AvailabilityResponse{
		AppointmentTypes: []models.AppointmentTypeAvailability{
			{AppointmentTypeID: "communal", Dates: map[string][]models.Slot{
				"2025-06-01": {{Time: "2025-06-01T10:00:00Z"}},
				"2025-06-02": {{Time: "2025-06-02T10:00:00Z"}},
			}},
		},
	}, now)

	windowed := WindowDates(grouped, 0, "2025-06-02")
	assert.Equal(t, []string{"2025-06-02"}, windowed.Dates)
	assert.False(t, windowed.HasMoreDates)

	missing := WindowDates(grouped, 0, "2025-07-01")
	assert.Empty(t, missing.Dates)
}

func TestMergeResponses(t *testing.T) {
	a := models.AvailabilityResponse{AppointmentTypes: []models.AppointmentTypeAvailability{
		{AppointmentTypeID: "one"},
	}}
	b := models.AvailabilityResponse{AppointmentTypes: []models.AppointmentTypeAvailability{
		{AppointmentTypeID: "two"}, {AppointmentTypeID: "three"},
	}}

	merged := MergeResponses(a, b)
	require.Len(t, merged.AppointmentTypes, 3)
	assert.Equal(t, "one", merged.AppointmentTypes[0].AppointmentTypeID)
	assert.Equal(t, "three", merged.AppointmentTypes[2].AppointmentTypeID)
}

// blockingService lets a test hold a fetch open until released.
type blockingService struct {
	mu      sync.Mutex
	calls   int
	release chan struct{}
	resp    models.AvailabilityResponse
}

func (s *blockingService) FetchVenueAvailability(ctx context.Context, _ models.Venue, _ providers.DateRange) (models.AvailabilityResponse, error) {
	s.mu.Lock()
	s.calls++
	first := s.calls == 1
	s.mu.Unlock()
	if first && s.release != nil {
		select {
		case <-s.release:
		case <-ctx.Done():
			return models.AvailabilityResponse{}, ctx.Err()
		}
	}
	return s.resp, nil
}

func TestLatestFetcherDiscardsStale(t *testing.T) {
	svc := &blockingService{
		release: make(chan struct{}),
		resp: models.AvailabilityResponse{AppointmentTypes: []models.AppointmentTypeAvailability{
			{AppointmentTypeID: "communal"},
		}},
	}
	fetcher := &LatestFetcher{Service: svc}
	venue := models.Venue{Slug: "test"}

	type result struct {
		stale bool
		err   error
	}
	firstDone := make(chan result, 1)
	go func() {
		_, stale, err := fetcher.Fetch(context.Background(), venue, providers.DateRange{Start: "2025-06-01"})
		firstDone <- result{stale: stale, err: err}
	}()

	// Wait for the first fetch to be in flight.
	require.Eventually(t, func() bool {
		svc.mu.Lock()
		defer svc.mu.Unlock()
		return svc.calls == 1
	}, time.Second, 5*time.Millisecond)

	// The second fetch supersedes the first.
	resp, stale, err := fetcher.Fetch(context.Background(), venue, providers.DateRange{Start: "2025-06-02"})
	require.NoError(t, err)
	assert.False(t, stale)
	assert.Len(t, resp.AppointmentTypes, 1)

	close(svc.release)
	first := <-firstDone
	assert.True(t, first.stale)
	assert.NoError(t, first.err)
}
