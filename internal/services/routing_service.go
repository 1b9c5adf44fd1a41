package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"trip_map_system/internal/mapdata"
)

// Route is the formatted result handed back for display.
type Route struct {
	FromPin        string  `json:"from_pin"`
	ToPin          string  `json:"to_pin"`
	DistanceMeters float64 `json:"distance_meters"`
	DurationSecs   float64 `json:"duration_seconds"`
	Distance       string  `json:"distance"`
	Duration       string  `json:"duration"`
}

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
	} `json:"routes"`
}

type routingService struct {
	client   *http.Client
	baseURL  string
	registry *mapdata.Registry
}

type RoutingService interface {
	Plan(fromName, toName string) (*Route, error)
}

func NewRoutingService(baseURL string, registry *mapdata.Registry) RoutingService {
	return &routingService{
		client:   &http.Client{},
		baseURL:  baseURL,
		registry: registry,
	}
}

// Plan resolves both endpoints to known pins, then delegates the actual
// path computation to the external engine. One failed request is terminal
// for that plan; the user retries manually.
func (s *routingService) Plan(fromName, toName string) (*Route, error) {
	from, ok := s.registry.PinByName(fromName)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPinNotFound, fromName)
	}

	to, ok := s.registry.PinByName(toName)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPinNotFound, toName)
	}

	// OSRM takes lng,lat pairs
	url := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=false",
		s.baseURL, from.Lng, from.Lat, to.Lng, to.Lat)

	response, err := s.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("routing request failed: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read routing response: %w", err)
	}

	responseData := &osrmResponse{}
	if err := json.Unmarshal(body, responseData); err != nil {
		return nil, fmt.Errorf("failed to parse routing response: %w", err)
	}

	if responseData.Code != "Ok" || len(responseData.Routes) == 0 {
		return nil, fmt.Errorf("routing engine returned no route (code %q)", responseData.Code)
	}

	route := responseData.Routes[0]

	return &Route{
		FromPin:        from.Name,
		ToPin:          to.Name,
		DistanceMeters: route.Distance,
		DurationSecs:   route.Duration,
		Distance:       FormatDistance(route.Distance),
		Duration:       FormatDuration(route.Duration),
	}, nil
}

// FormatDistance renders meters as miles with one decimal.
func FormatDistance(meters float64) string {
	return fmt.Sprintf("%.1f mi", meters*0.000621371)
}

// FormatDuration renders seconds as "Hh Mm" or "Mm" under an hour.
func FormatDuration(seconds float64) string {
	minutes := int(seconds/60 + 0.5)
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
