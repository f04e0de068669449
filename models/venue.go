package models

// Venue represents one bookable sauna in the static catalog.
type Venue struct {
	Slug        string  `json:"slug"`
	Name        string  `json:"name"`
	City        string  `json:"city,omitempty"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	BookingURL  string  `json:"bookingUrl,omitempty"`
	Waterfront  bool    `json:"waterfront,omitempty"`
	TideStation string  `json:"tideStation,omitempty"` // NOAA CO-OPS station id, waterfront venues only

	// Booking is nil for venues that only expose an outbound booking link.
	Booking *BookingProviderConfig `json:"booking,omitempty"`
}

// HasLiveAvailability reports whether the venue has a provider config we can poll.
func (v Venue) HasLiveAvailability() bool {
	return v.Booking != nil
}

// BoundingBox is a simple lat/lng rectangle used for map containment queries.
type BoundingBox struct {
	MinLat float64 `json:"minLat"`
	MaxLat float64 `json:"maxLat"`
	MinLng float64 `json:"minLng"`
	MaxLng float64 `json:"maxLng"`
}

// Contains reports whether the point falls inside the box (inclusive edges).
func (b BoundingBox) Contains(lat, lng float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lng >= b.MinLng && lng <= b.MaxLng
}
