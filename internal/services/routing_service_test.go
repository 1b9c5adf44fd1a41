package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"trip_map_system/configs"
	"trip_map_system/internal/mapdata"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func routingTestRegistry() *mapdata.Registry {
	return mapdata.NewRegistry(configs.Map{HikeCategory: "Hike"}, &mapdata.Bundle{
		Pins: []mapdata.Pin{
			{ID: uuid.New(), Name: "Anchorage", Lat: 61.2181, Lng: -149.9003},
			{ID: uuid.New(), Name: "Seward", Lat: 60.1042, Lng: -149.4422},
		},
	})
}

func TestRoutingPlan(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// OSRM expects lng,lat pairs in the path
		assert.Contains(t, r.URL.Path, "/route/v1/driving/-149.900300,61.218100;-149.442200,60.104200")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":"Ok","routes":[{"distance":204800,"duration":9000}]}`))
	}))
	defer server.Close()

	service := NewRoutingService(server.URL, routingTestRegistry())

	route, err := service.Plan("anchorage", "Seward")
	assert.NoError(t, err)
	assert.Equal(t, "Anchorage", route.FromPin)
	assert.Equal(t, "Seward", route.ToPin)
	assert.Equal(t, 204800.0, route.DistanceMeters)
	assert.Equal(t, "127.3 mi", route.Distance)
	assert.Equal(t, "2h 30m", route.Duration)
}

func TestRoutingPlan_UnknownPin(t *testing.T) {
	service := NewRoutingService("http://localhost:0", routingTestRegistry())

	_, err := service.Plan("Nowhere", "Seward")
	assert.ErrorIs(t, err, ErrPinNotFound)

	_, err = service.Plan("Anchorage", "Nowhere")
	assert.ErrorIs(t, err, ErrPinNotFound)
}

func TestRoutingPlan_NoRouteFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"code":"NoRoute","routes":[]}`))
	}))
	defer server.Close()

	service := NewRoutingService(server.URL, routingTestRegistry())

	_, err := service.Plan("Anchorage", "Seward")
	assert.Error(t, err)
}

func TestRoutingPlan_EngineUnreachable(t *testing.T) {
	service := NewRoutingService("http://127.0.0.1:1", routingTestRegistry())

	_, err := service.Plan("Anchorage", "Seward")
	assert.Error(t, err)
}

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "1.0 mi", FormatDistance(1609.34))
	assert.Equal(t, "0.0 mi", FormatDistance(0))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "5m", FormatDuration(300))
	assert.Equal(t, "59m", FormatDuration(3540))
	assert.Equal(t, "1h 0m", FormatDuration(3600))
	assert.Equal(t, "2h 30m", FormatDuration(9000))
}
