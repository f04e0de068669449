package models

// Slot is one concrete bookable instant. SlotsAvailable is nil when the vendor
// cannot report remaining capacity (class-based systems); nil means "open",
// which is distinct from 0 ("fully booked").
type Slot struct {
	Time           string `json:"time"` // absolute ISO-8601 instant
	SlotsAvailable *int   `json:"slotsAvailable"`
}

// Open reports whether the slot still has capacity. Unknown capacity counts
// as open.
func (s Slot) Open() bool {
	return s.SlotsAvailable == nil || *s.SlotsAvailable > 0
}

// AppointmentTypeAvailability is the canonical per-offering record every
// vendor response normalizes into. Dates maps "YYYY-MM-DD" to the vendor's
// chronological slot list for that day.
type AppointmentTypeAvailability struct {
	AppointmentTypeID string            `json:"appointmentTypeId"`
	Name              string            `json:"name"`
	Price             float64           `json:"price"`
	DurationMinutes   int               `json:"durationMinutes"`
	Private           bool              `json:"private,omitempty"`
	Seats             int               `json:"seats,omitempty"`
	Dates             map[string][]Slot `json:"dates"`
}

// AvailabilityResponse covers one venue for one bounded date window.
type AvailabilityResponse struct {
	AppointmentTypes []AppointmentTypeAvailability `json:"appointmentTypes"`
}

// DateEntry pairs an appointment type with its surviving slots for one date.
type DateEntry struct {
	AppointmentType AppointmentTypeAvailability `json:"appointmentType"`
	Slots           []Slot                      `json:"slots"`
}

// GroupedAvailability is the aggregator's per-day view of a venue.
type GroupedAvailability struct {
	ByDate         map[string][]DateEntry `json:"byDate"`
	Dates          []string               `json:"dates"` // sorted surviving date keys
	FirstDate      string                 `json:"firstDate,omitempty"`
	LastDate       string                 `json:"lastDate,omitempty"`
	HasMoreDates   bool                   `json:"hasMoreDates"`
	RemainingDates int                    `json:"remainingDates"`
}
