package catalog

import (
	"fmt"

	"saunascout/models"
)

// Catalog is the static venue registry. Venues are compiled in; there is no
// persistence layer behind this.
type Catalog struct {
	venues []models.Venue
	bySlug map[string]models.Venue
}

// New builds a catalog from a venue list. Duplicate slugs are an error.
func New(venues []models.Venue) (*Catalog, error) {
	bySlug := make(map[string]models.Venue, len(venues))
	for _, v := range venues {
		if v.Slug == "" {
			return nil, fmt.Errorf("venue %q has no slug", v.Name)
		}
		if _, ok := bySlug[v.Slug]; ok {
			return nil, fmt.Errorf("duplicate venue slug %q", v.Slug)
		}
		bySlug[v.Slug] = v
	}
	return &Catalog{venues: venues, bySlug: bySlug}, nil
}

// Default returns the built-in registry.
func Default() *Catalog {
	c, err := New(defaultVenues)
	if err != nil {
		// The built-in list is validated by tests; a bad entry is a bug.
		panic(err)
	}
	return c
}

// All returns every venue in registry order.
func (c *Catalog) All() []models.Venue {
	out := make([]models.Venue, len(c.venues))
	copy(out, c.venues)
	return out
}

// BySlug looks a venue up by its slug.
func (c *Catalog) BySlug(slug string) (models.Venue, bool) {
	v, ok := c.bySlug[slug]
	return v, ok
}

// WithLiveAvailability returns the venues that carry a provider config.
func (c *Catalog) WithLiveAvailability() []models.Venue {
	var out []models.Venue
	for _, v := range c.venues {
		if v.HasLiveAvailability() {
			out = append(out, v)
		}
	}
	return out
}

// WithinBounds returns the venues inside the bounding box, registry order.
func (c *Catalog) WithinBounds(box models.BoundingBox) []models.Venue {
	var out []models.Venue
	for _, v := range c.venues {
		if box.Contains(v.Lat, v.Lng) {
			out = append(out, v)
		}
	}
	return out
}
