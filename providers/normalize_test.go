package providers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saunascout/models"
)

func TestTypeForSeedsFromServiceList(t *testing.T) {
	cfg := &models.BookingProviderConfig{
		Services: []models.ServiceEntry{
			{ID: "42", Name: "Communal Sauna", Price: 35, DurationMinutes: 90, Seats: 8},
		},
	}

	at := typeFor(cfg, "42", "Item 42")
	assert.Equal(t, "Communal Sauna", at.Name)
	assert.Equal(t, 35.0, at.Price)
	assert.Equal(t, 90, at.DurationMinutes)
	assert.Equal(t, 8, at.Seats)
	assert.NotNil(t, at.Dates)
}

func TestTypeForFallsBackToVendorName(t *testing.T) {
	at := typeFor(&models.BookingProviderConfig{}, "42", "Item 42")
	assert.Equal(t, "42", at.AppointmentTypeID)
	assert.Equal(t, "Item 42", at.Name)
	assert.Zero(t, at.Price)
}

func TestAddSlotKeysByDate(t *testing.T) {
	at := typeFor(&models.BookingProviderConfig{}, "x", "x")
	addSlot(&at, "2025-06-01T10:00:00-07:00", intPtr(3))
	addSlot(&at, "2025-06-01T12:00:00-07:00", nil)
	addSlot(&at, "2025-06-02T10:00:00-07:00", intPtr(1))
	addSlot(&at, "bogus", intPtr(1))

	require.Len(t, at.Dates["2025-06-01"], 2)
	require.Len(t, at.Dates["2025-06-02"], 1)
	assert.Nil(t, at.Dates["2025-06-01"][1].SlotsAvailable)
	assert.Len(t, at.Dates, 2)
}

func TestVenueZone(t *testing.T) {
	loc := venueZone(&models.BookingProviderConfig{Timezone: "America/Los_Angeles"})
	assert.Equal(t, "America/Los_Angeles", loc.String())

	assert.Equal(t, time.UTC, venueZone(&models.BookingProviderConfig{}))
	assert.Equal(t, time.UTC, venueZone(&models.BookingProviderConfig{Timezone: "Not/AZone"}))
}

func TestLocalToISO(t *testing.T) {
	loc, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	iso, err := localToISO(loc, "2006-01-02 15:04", "2025-06-01 10:00")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01T10:00:00-07:00", iso)

	_, err = localToISO(loc, "2006-01-02 15:04", "10 o'clock")
	assert.Error(t, err)
}
