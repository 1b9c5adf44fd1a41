package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"trip_map_system/configs"
	"trip_map_system/internal/mapdata"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const sampleGPX = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1">
  <trk>
    <name>Flattop Mountain Trail</name>
    <trkseg>
      <trkpt lat="61.1036" lon="-149.6838"></trkpt>
      <trkpt lat="61.1001" lon="-149.6822"></trkpt>
    </trkseg>
    <trkseg>
      <trkpt lat="61.0968" lon="-149.6801"></trkpt>
    </trkseg>
  </trk>
</gpx>`

func TestParseGPX_FlattensSegments(t *testing.T) {
	points, err := ParseGPX([]byte(sampleGPX))
	assert.NoError(t, err)
	assert.Len(t, points, 3)
	assert.Equal(t, TrackPoint{Lat: 61.1036, Lng: -149.6838}, points[0])
	assert.Equal(t, TrackPoint{Lat: 61.0968, Lng: -149.6801}, points[2])
}

func TestParseGPX_Invalid(t *testing.T) {
	_, err := ParseGPX([]byte("<gpx><trk>"))
	assert.Error(t, err)
}

func trackRegistry(gpxURL string) (*mapdata.Registry, uuid.UUID, uuid.UUID) {
	withTrack := uuid.New()
	withoutTrack := uuid.New()

	registry := mapdata.NewRegistry(configs.Map{HikeCategory: "Hike"}, &mapdata.Bundle{
		Pins: []mapdata.Pin{
			{ID: withTrack, Name: "Flattop Mountain", Category: "Hike", GPX: gpxURL},
			{ID: withoutTrack, Name: "Moose's Tooth", Category: "Eat/Drink"},
		},
	})

	return registry, withTrack, withoutTrack
}

func TestTrack_FetchesAndParses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(sampleGPX))
	}))
	defer server.Close()

	registry, withTrack, _ := trackRegistry(server.URL)
	service := NewTrackService(registry, zap.NewNop().Sugar())

	points, err := service.Track(withTrack)
	assert.NoError(t, err)
	assert.Len(t, points, 3)
}

func TestTrack_PinWithoutTrack(t *testing.T) {
	registry, _, withoutTrack := trackRegistry("")
	service := NewTrackService(registry, zap.NewNop().Sugar())

	points, err := service.Track(withoutTrack)
	assert.NoError(t, err)
	assert.Nil(t, points)
}

func TestTrack_UnknownPin(t *testing.T) {
	registry, _, _ := trackRegistry("")
	service := NewTrackService(registry, zap.NewNop().Sugar())

	_, err := service.Track(uuid.New())
	assert.ErrorIs(t, err, ErrPinNotFound)
}

func TestTrack_FetchFailureDegradesToEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	registry, withTrack, _ := trackRegistry(server.URL)
	service := NewTrackService(registry, zap.NewNop().Sugar())

	points, err := service.Track(withTrack)
	assert.NoError(t, err)
	assert.Nil(t, points)
}

func TestTrack_UnparseableBodyDegradesToEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<gpx><trk>"))
	}))
	defer server.Close()

	registry, withTrack, _ := trackRegistry(server.URL)
	service := NewTrackService(registry, zap.NewNop().Sugar())

	points, err := service.Track(withTrack)
	assert.NoError(t, err)
	assert.Nil(t, points)
}
