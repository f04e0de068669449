package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saunascout/models"
)

func TestRunSweepRecordsPerVenueHealth(t *testing.T) {
	svc := newCountingService()
	svc.fail["broken"] = true

	monitor := &HealthMonitor{Service: svc, Concurrency: 2}
	venues := []models.Venue{
		{Slug: "hot", Booking: &models.BookingProviderConfig{Type: models.ProviderAcuity}},
		{Slug: "broken", Booking: &models.BookingProviderConfig{Type: models.ProviderMindbody}},
	}

	status := monitor.RunSweep(context.Background(), venues)

	require.Len(t, status.Venues, 2)
	assert.Equal(t, 1, status.Healthy)
	assert.Equal(t, 1, status.Unhealthy)
	assert.False(t, status.CheckedAt.IsZero())

	assert.Equal(t, "hot", status.Venues[0].Slug)
	assert.Equal(t, models.ProviderAcuity, status.Venues[0].Vendor)
	assert.True(t, status.Venues[0].Healthy)

	assert.Equal(t, "broken", status.Venues[1].Slug)
	assert.False(t, status.Venues[1].Healthy)
	assert.Equal(t, "vendor unreachable", status.Venues[1].Error)
}

func TestSnapshotReflectsLatestSweep(t *testing.T) {
	svc := newCountingService()
	monitor := &HealthMonitor{Service: svc}

	assert.Empty(t, monitor.Snapshot().Venues)

	monitor.RunSweep(context.Background(), []models.Venue{
		{Slug: "hot", Booking: &models.BookingProviderConfig{Type: models.ProviderPeek}},
	})

	snap := monitor.Snapshot()
	require.Len(t, snap.Venues, 1)
	assert.Equal(t, 1, snap.Healthy)
}
