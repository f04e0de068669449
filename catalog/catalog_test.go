package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saunascout/models"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	c := Default()
	require.NotEmpty(t, c.All())

	for _, v := range c.All() {
		assert.NotEmpty(t, v.Slug)
		assert.NotEmpty(t, v.Name)
		if v.Booking != nil {
			assert.NotEmpty(t, v.Booking.Type, "venue %s has a config without a type", v.Slug)
			assert.NotEmpty(t, v.Booking.Timezone, "venue %s has a config without a timezone", v.Slug)
		}
		if v.TideStation != "" {
			assert.True(t, v.Waterfront, "venue %s has a tide station but is not waterfront", v.Slug)
		}
	}
}

func TestNewRejectsDuplicateSlugs(t *testing.T) {
	_, err := New([]models.Venue{
		{Slug: "dup", Name: "A"},
		{Slug: "dup", Name: "B"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dup")

	_, err = New([]models.Venue{{Name: "no slug"}})
	assert.Error(t, err)
}

func TestBySlug(t *testing.T) {
	c := Default()

	v, ok := c.BySlug("ballard-shipyard-sauna")
	require.True(t, ok)
	assert.Equal(t, "ballard-shipyard-sauna", v.Slug)

	_, ok = c.BySlug("nowhere")
	assert.False(t, ok)
}

func TestWithLiveAvailability(t *testing.T) {
	c := Default()
	live := c.WithLiveAvailability()
	require.NotEmpty(t, live)
	for _, v := range live {
		assert.NotNil(t, v.Booking)
	}
	// Booking-link-only venues are excluded.
	assert.Less(t, len(live), len(c.All()))
}

func TestWithinBounds(t *testing.T) {
	c, err := New([]models.Venue{
		{Slug: "in", Name: "In", Lat: 47.6, Lng: -122.3},
		{Slug: "edge", Name: "Edge", Lat: 48.0, Lng: -122.0},
		{Slug: "out", Name: "Out", Lat: 45.5, Lng: -122.6},
	})
	require.NoError(t, err)

	box := models.BoundingBox{MinLat: 47.0, MaxLat: 48.0, MinLng: -123.0, MaxLng: -122.0}
	inside := c.WithinBounds(box)
	require.Len(t, inside, 2)
	assert.Equal(t, "in", inside[0].Slug)
	// Edges are inclusive.
	assert.Equal(t, "edge", inside[1].Slug)
}
