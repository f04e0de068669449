// services/health.go
package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"saunascout/models"
	"saunascout/providers"
	"saunascout/utils"
)

// VenueHealth is the result of probing one venue's booking provider.
type VenueHealth struct {
	Slug    string              `json:"slug"`
	Vendor  models.ProviderType `json:"vendor"`
	Healthy bool                `json:"healthy"`
	Error   string              `json:"error,omitempty"`
}

// HealthStatus is the snapshot the healthz endpoint serves.
type HealthStatus struct {
	Venues    []VenueHealth `json:"venues"`
	Healthy   int           `json:"healthy"`
	Unhealthy int           `json:"unhealthy"`
	CheckedAt time.Time     `json:"checkedAt"`
}

// HealthMonitor sweeps every venue with a provider config and keeps the
// latest snapshot in memory.
type HealthMonitor struct {
	Service     AvailabilityService
	Concurrency int

	mu      sync.RWMutex
	current HealthStatus
}

// Snapshot returns the latest stored sweep result.
func (m *HealthMonitor) Snapshot() HealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// RunSweep probes every venue with at most Concurrency requests in flight,
// pulling the next venue from the queue as each completes, then swaps in the
// new snapshot.
func (m *HealthMonitor) RunSweep(ctx context.Context, venues []models.Venue) HealthStatus {
	logger := utils.GetLogger()
	today := time.Now().Format("2006-01-02")

	workers := m.Concurrency
	if workers <= 0 {
		workers = 4
	}

	checked := make([]VenueHealth, len(venues))
	queue := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range queue {
				v := venues[i]
				health := VenueHealth{Slug: v.Slug}
				if v.Booking != nil {
					health.Vendor = v.Booking.Type
				}
				// A one-day fetch doubles as the probe; vendors expose no
				// cheaper public call.
				_, err := m.Service.FetchVenueAvailability(ctx, v, providers.DateRange{Start: today})
				if err != nil {
					health.Error = err.Error()
					logger.Warn("venue provider unhealthy",
						zap.String("slug", v.Slug), zap.Error(err))
				} else {
					health.Healthy = true
				}
				checked[i] = health
			}
		}()
	}
	for i := range venues {
		queue <- i
	}
	close(queue)
	wg.Wait()

	status := HealthStatus{Venues: checked, CheckedAt: time.Now()}
	for _, h := range checked {
		if h.Healthy {
			status.Healthy++
		} else {
			status.Unhealthy++
		}
	}

	m.mu.Lock()
	m.current = status
	m.mu.Unlock()
	return status
}
