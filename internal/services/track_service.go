package services

import (
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"trip_map_system/internal/mapdata"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TrackPoint is one polyline vertex of a hike's GPX track.
type TrackPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type gpxDocument struct {
	Tracks []struct {
		Segments []struct {
			Points []gpxPoint `xml:"trkpt"`
		} `xml:"trkseg"`
	} `xml:"trk"`
}

type gpxPoint struct {
	Lat float64 `xml:"lat,attr"`
	Lng float64 `xml:"lon,attr"`
}

type trackService struct {
	client   *http.Client
	registry *mapdata.Registry
	logger   *zap.SugaredLogger
}

type TrackService interface {
	Track(pinID uuid.UUID) ([]TrackPoint, error)
}

func NewTrackService(registry *mapdata.Registry, logger *zap.SugaredLogger) TrackService {
	return &trackService{
		client:   &http.Client{},
		registry: registry,
		logger:   logger,
	}
}

// Track fetches and parses the pin's GPX file. A pin without a track, or
// a file that fails to fetch or parse, yields an empty result: the route
// is simply not drawn.
func (s *trackService) Track(pinID uuid.UUID) ([]TrackPoint, error) {
	pin, ok := s.registry.PinByID(pinID)
	if !ok {
		return nil, ErrPinNotFound
	}

	if pin.GPX == "" {
		return nil, nil
	}

	response, err := s.client.Get(pin.GPX)
	if err != nil {
		s.logger.Warnw("failed to fetch gpx track", "pin", pin.Name, "error", err)
		return nil, nil
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		s.logger.Warnw("gpx track fetch returned non-ok status", "pin", pin.Name, "status", response.StatusCode)
		return nil, nil
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		s.logger.Warnw("failed to read gpx track", "pin", pin.Name, "error", err)
		return nil, nil
	}

	points, err := ParseGPX(body)
	if err != nil {
		s.logger.Warnw("failed to parse gpx track", "pin", pin.Name, "error", err)
		return nil, nil
	}

	return points, nil
}

// ParseGPX flattens all track segments into one polyline.
func ParseGPX(data []byte) ([]TrackPoint, error) {
	document := &gpxDocument{}
	if err := xml.Unmarshal(data, document); err != nil {
		return nil, fmt.Errorf("failed to parse gpx: %w", err)
	}

	var points []TrackPoint
	for _, track := range document.Tracks {
		for _, segment := range track.Segments {
			for _, point := range segment.Points {
				points = append(points, TrackPoint{Lat: point.Lat, Lng: point.Lng})
			}
		}
	}

	return points, nil
}
