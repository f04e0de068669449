package providers

import "fmt"

const bodyExcerptLimit = 256

// AvailabilityFetchError reports a non-2xx vendor response. The body is
// truncated so vendor error pages never reach clients whole.
type AvailabilityFetchError struct {
	Vendor      string
	Status      int
	BodyExcerpt string
}

func (e *AvailabilityFetchError) Error() string {
	return fmt.Sprintf("%s availability fetch failed: status %d: %s", e.Vendor, e.Status, e.BodyExcerpt)
}

func NewAvailabilityFetchError(vendor string, status int, body []byte) error {
	excerpt := string(body)
	if len(excerpt) > bodyExcerptLimit {
		excerpt = excerpt[:bodyExcerptLimit]
	}
	return &AvailabilityFetchError{
		Vendor:      vendor,
		Status:      status,
		BodyExcerpt: excerpt,
	}
}
