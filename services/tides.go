// services/tides.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"saunascout/config"
	"saunascout/models"
	"saunascout/utils"
)

// Tide level thresholds as fractions of the day's observed range. "Great"
// is the upper third of the range: enough water over the plunge ladder.
const (
	tideGreatFraction = 0.65
	tideOKFraction    = 0.35
)

// Trim bounds for the outer days of a multi-day hourly series.
const (
	tideTrimFirstHour = 6
	tideTrimLastHour  = 21
)

const tidePointLayout = "2006-01-02 15:04"

// TideService fetches NOAA tide predictions and classifies slot times.
type TideService interface {
	FetchTides(ctx context.Context, station, date, endDate string) (models.TideData, error)
	FetchTidesByDate(ctx context.Context, station string, dates []string) map[string][]models.TideDataPoint
}

// DefaultTideService reads the NOAA CO-OPS datagetter API.
type DefaultTideService struct {
	HTTPClient *http.Client
	BaseURL    string
}

// NewTideService builds the service from app config.
func NewTideService() *DefaultTideService {
	return &DefaultTideService{
		HTTPClient: &http.Client{Timeout: time.Duration(config.AppConfig.VendorHTTPTimeoutSeconds) * time.Second},
		BaseURL:    config.AppConfig.NOAABaseURL,
	}
}

type noaaPredictionsResponse struct {
	Predictions []models.TidePrediction `json:"predictions"`
}

// FetchTides pulls the discrete high/low events and the hourly height series
// for one station and date span. The two products are independent requests
// issued concurrently.
func (s *DefaultTideService) FetchTides(ctx context.Context, station, date, endDate string) (models.TideData, error) {
	if endDate == "" {
		endDate = date
	}

	var (
		wg      sync.WaitGroup
		data    models.TideData
		hiloErr error
		hourErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		var out noaaPredictionsResponse
		hiloErr = s.fetchProduct(ctx, station, date, endDate, "hilo", &out)
		data.Predictions = out.Predictions
	}()
	go func() {
		defer wg.Done()
		var out struct {
			Predictions []struct {
				T string `json:"t"`
				V string `json:"v"`
			} `json:"predictions"`
		}
		hourErr = s.fetchProduct(ctx, station, date, endDate, "h", &out)
		for _, p := range out.Predictions {
			var h float64
			if _, err := fmt.Sscanf(p.V, "%f", &h); err != nil {
				continue
			}
			data.Hourly = append(data.Hourly, models.TideDataPoint{Time: p.T, Height: h})
		}
	}()
	wg.Wait()

	if hiloErr != nil {
		return models.TideData{}, hiloErr
	}
	if hourErr != nil {
		return models.TideData{}, hourErr
	}
	return data, nil
}

func (s *DefaultTideService) fetchProduct(ctx context.Context, station, beginDate, endDate, interval string, out any) error {
	q := url.Values{}
	q.Set("station", station)
	q.Set("begin_date", noaaDate(beginDate))
	q.Set("end_date", noaaDate(endDate))
	q.Set("product", "predictions")
	q.Set("datum", "MLLW")
	q.Set("units", "english")
	q.Set("time_zone", "lst_ldt")
	q.Set("format", "json")
	if interval != "" {
		q.Set("interval", interval)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return fmt.Errorf("noaa station %s: status %d: %s", station, resp.StatusCode, string(body))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// noaaDate converts "2025-06-01" to the "20250601" form datagetter expects.
func noaaDate(d string) string {
	out := make([]byte, 0, 8)
	for i := 0; i < len(d); i++ {
		if d[i] != '-' {
			out = append(out, d[i])
		}
	}
	return string(out)
}

// FetchTidesByDate fetches the hourly series for several dates in parallel
// and merges results by date key as they resolve. A date whose fetch fails is
// simply absent: availability display degrades to no tide overlay for it.
func (s *DefaultTideService) FetchTidesByDate(ctx context.Context, station string, dates []string) map[string][]models.TideDataPoint {
	logger := utils.GetLogger()
	byDate := make(map[string][]models.TideDataPoint, len(dates))

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for _, date := range dates {
		wg.Add(1)
		go func(date string) {
			defer wg.Done()
			data, err := s.FetchTides(ctx, station, date, "")
			if err != nil {
				logger.Warn("tide fetch failed, date will have no overlay",
					zap.String("station", station), zap.String("date", date), zap.Error(err))
				return
			}
			mu.Lock()
			byDate[date] = data.Hourly
			mu.Unlock()
		}(date)
	}
	wg.Wait()
	return byDate
}

// InterpolateTideHeight returns the height at t, linearly interpolated
// between the bracketing hourly samples. Queries at or before the first
// sample clamp to it, likewise past the last: no extrapolation. Nil means no
// usable series.
func InterpolateTideHeight(series []models.TideDataPoint, t time.Time) *float64 {
	type sample struct {
		ms     int64
		height float64
	}
	samples := make([]sample, 0, len(series))
	for _, p := range series {
		pt, err := time.ParseInLocation(tidePointLayout, p.Time, t.Location())
		if err != nil {
			continue
		}
		samples = append(samples, sample{ms: pt.UnixMilli(), height: p.Height})
	}
	if len(samples) == 0 {
		return nil
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i].ms < samples[j].ms })

	ms := t.UnixMilli()
	if ms <= samples[0].ms {
		h := samples[0].height
		return &h
	}
	last := samples[len(samples)-1]
	if ms >= last.ms {
		h := last.height
		return &h
	}
	for i := 1; i < len(samples); i++ {
		if ms > samples[i].ms {
			continue
		}
		lo, hi := samples[i-1], samples[i]
		frac := float64(ms-lo.ms) / float64(hi.ms-lo.ms)
		h := lo.height + frac*(hi.height-lo.height)
		return &h
	}
	// Unreachable: ms < last.ms guarantees a bracketing pair above.
	return nil
}

// ClassifyTideLevel buckets a height against the series' observed range. A
// degenerate range (single sample, flat water) is always ok.
func ClassifyTideLevel(height float64, series []models.TideDataPoint) models.TideLevel {
	if len(series) == 0 {
		return models.TideLevelOK
	}
	min, max := series[0].Height, series[0].Height
	for _, p := range series[1:] {
		if p.Height < min {
			min = p.Height
		}
		if p.Height > max {
			max = p.Height
		}
	}
	if max == min {
		return models.TideLevelOK
	}
	fraction := (height - min) / (max - min)
	switch {
	case fraction >= tideGreatFraction:
		return models.TideLevelGreat
	case fraction >= tideOKFraction:
		return models.TideLevelOK
	default:
		return models.TideLevelLow
	}
}

// TideForSlot annotates one slot instant against its day's hourly series.
// Nil means no tide opinion: callers must omit the indicator rather than
// defaulting to a level.
func TideForSlot(series []models.TideDataPoint, slotTime string) *models.SlotTide {
	if len(series) == 0 {
		return nil
	}
	t, err := time.Parse(time.RFC3339, slotTime)
	if err != nil {
		return nil
	}
	// Interpolate in the slot's own offset so the series' station-local
	// wall-clock times line up with the slot's wall clock.
	h := InterpolateTideHeight(series, t)
	if h == nil {
		return nil
	}
	return &models.SlotTide{Height: *h, Level: ClassifyTideLevel(*h, series)}
}

// AnnotateSlots maps every surviving slot instant to its tide annotation,
// keyed by the slot's ISO time. Slots on dates with no series are skipped.
func AnnotateSlots(grouped models.GroupedAvailability, seriesByDate map[string][]models.TideDataPoint) map[string]models.SlotTide {
	annotations := make(map[string]models.SlotTide)
	for date, entries := range grouped.ByDate {
		series, ok := seriesByDate[date]
		if !ok {
			continue
		}
		for _, entry := range entries {
			for _, slot := range entry.Slots {
				if tide := TideForSlot(series, slot.Time); tide != nil {
					annotations[slot.Time] = *tide
				}
			}
		}
	}
	return annotations
}

// TrimOuterHours trims a multi-day hourly series to daylight-ish bounds at
// the span's edges: the first day starts at 06:00 and the last day ends at
// 21:00, while interior days stay intact.
func TrimOuterHours(series []models.TideDataPoint) []models.TideDataPoint {
	if len(series) == 0 {
		return series
	}
	firstDate := dateOfPoint(series[0])
	lastDate := dateOfPoint(series[len(series)-1])

	var out []models.TideDataPoint
	for _, p := range series {
		d := dateOfPoint(p)
		hour := hourOfPoint(p)
		if d == firstDate && hour < tideTrimFirstHour {
			continue
		}
		if d == lastDate && hour > tideTrimLastHour {
			continue
		}
		out = append(out, p)
	}
	return out
}

func dateOfPoint(p models.TideDataPoint) string {
	if len(p.Time) < 10 {
		return ""
	}
	return p.Time[:10]
}

func hourOfPoint(p models.TideDataPoint) int {
	t, err := time.Parse(tidePointLayout, p.Time)
	if err != nil {
		return 0
	}
	return t.Hour()
}
