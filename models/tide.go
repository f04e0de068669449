package models

// TideDataPoint is one hourly tide height sample from a NOAA station.
// Time format is "2006-01-02 15:04" in the station's local zone; Height is feet.
type TideDataPoint struct {
	Time   string  `json:"t"`
	Height float64 `json:"v"`
}

// TidePrediction is a discrete high/low event. Type is "H" or "L"; Height is
// the raw string NOAA returns.
type TidePrediction struct {
	Time   string `json:"t"`
	Type   string `json:"type"`
	Height string `json:"v"`
}

// TideLevel is the qualitative bucket assigned to a slot time.
type TideLevel string

const (
	TideLevelGreat TideLevel = "great"
	TideLevelOK    TideLevel = "ok"
	TideLevelLow   TideLevel = "low"
)

// TideData is the merged response for one station and date span.
type TideData struct {
	Predictions []TidePrediction `json:"predictions"`
	Hourly      []TideDataPoint  `json:"hourly"`
}

// SlotTide annotates one slot instant with the interpolated height and level.
type SlotTide struct {
	Height float64   `json:"height"`
	Level  TideLevel `json:"level"`
}
