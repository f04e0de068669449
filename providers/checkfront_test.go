package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"saunascout/models"
)

func TestCheckfrontFetchAvailability(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/3.0/item/77/cal", r.URL.Path)
		assert.Equal(t, "2025-06-01", r.URL.Query().Get("start_date"))
		assert.Equal(t, "2025-06-02", r.URL.Query().Get("end_date"))
		w.Write([]byte(`{"item":{"cal":{
			"2025-06-02": [{"time":"10:00","stock":4}],
			"2025-06-01": [{"time":"10:00","stock":0},{"time":"12:00","stock":2}]
		}}}`))
	}))
	defer server.Close()

	cfg := &models.BookingProviderConfig{
		Type:     models.ProviderCheckfront,
		Timezone: "America/Los_Angeles",
		Services: []models.ServiceEntry{
			{ID: "77", Name: "Lakeside Session", Price: 40, DurationMinutes: 120},
		},
		Checkfront: &models.CheckfrontConfig{
			Host:    strings.TrimPrefix(server.URL, "https://"),
			ItemIDs: []int{77},
		},
	}

	adapter := &checkfrontAdapter{client: &Client{httpClient: server.Client(), logger: zap.NewNop()}}
	resp, err := adapter.FetchAvailability(context.Background(), cfg, DateRange{Start: "2025-06-01", End: "2025-06-02"})
	require.NoError(t, err)

	require.Len(t, resp.AppointmentTypes, 1)
	at := resp.AppointmentTypes[0]
	assert.Equal(t, "Lakeside Session", at.Name)
	assert.Equal(t, 40.0, at.Price)

	first := at.Dates["2025-06-01"]
	require.Len(t, first, 2)
	assert.Equal(t, "2025-06-01T10:00:00-07:00", first[0].Time)
	require.NotNil(t, first[0].SlotsAvailable)
	assert.Equal(t, 0, *first[0].SlotsAvailable)
	assert.Equal(t, 2, *first[1].SlotsAvailable)

	second := at.Dates["2025-06-02"]
	require.Len(t, second, 1)
	assert.Equal(t, "2025-06-02T10:00:00-07:00", second[0].Time)
}

func TestCheckfrontMissingConfig(t *testing.T) {
	adapter := &checkfrontAdapter{client: NewClient(0, zap.NewNop())}
	_, err := adapter.FetchAvailability(context.Background(), &models.BookingProviderConfig{Type: models.ProviderCheckfront}, DateRange{Start: "2025-06-01"})
	assert.Error(t, err)
}
