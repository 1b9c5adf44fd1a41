package geo

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// MapsService identifies which external mapping site a shared URL came from.
type MapsService string

const (
	ServiceGoogle    MapsService = "google"
	ServiceApple     MapsService = "apple"
	ServiceAllTrails MapsService = "alltrails"
	ServiceUnknown   MapsService = "unknown"
)

const (
	metersToMiles = 0.000621371
	metersToFeet  = 3.28084
)

var ErrNoCoordinates = errors.New("no coordinates found")

// DetectMapsService recognizes the supported share-link formats.
func DetectMapsService(url string) MapsService {
	switch {
	case strings.Contains(url, "maps.google.") ||
		strings.Contains(url, "google.com/maps") ||
		strings.Contains(url, "maps.app.goo.gl"):
		return ServiceGoogle
	case strings.Contains(url, "maps.apple.com"):
		return ServiceApple
	case strings.Contains(url, "alltrails.com"):
		return ServiceAllTrails
	default:
		return ServiceUnknown
	}
}

var googleURLPatterns = []*regexp.Regexp{
	// place links carry the pin position after !3d/!4d markers
	regexp.MustCompile(`!3d(-?\d+\.\d+)!4d(-?\d+\.\d+)`),
	// viewport fallback
	regexp.MustCompile(`@(-?\d+\.\d+),(-?\d+\.\d+)`),
	regexp.MustCompile(`[?&]q=(-?\d+\.\d+),(-?\d+\.\d+)`),
}

// ExtractGoogleCoordinates pulls a lat/lng pair out of an expanded Google
// Maps URL. Place coordinates are preferred over the viewport center.
func ExtractGoogleCoordinates(url string) (lat, lng float64, err error) {
	for _, pattern := range googleURLPatterns {
		if match := pattern.FindStringSubmatch(url); match != nil {
			return parsePair(match[1], match[2])
		}
	}
	return 0, 0, ErrNoCoordinates
}

var appleHTMLPattern = regexp.MustCompile(`"latitude":(-?\d+\.\d+),"longitude":(-?\d+\.\d+)`)

// ExtractAppleCoordinates finds the embedded place coordinates in an Apple
// Maps page body.
func ExtractAppleCoordinates(html string) (lat, lng float64, err error) {
	if match := appleHTMLPattern.FindStringSubmatch(html); match != nil {
		return parsePair(match[1], match[2])
	}
	return 0, 0, ErrNoCoordinates
}

var htmlCoordPatterns = []*regexp.Regexp{
	regexp.MustCompile(`"lat":(-?[0-9.]+),"lng":(-?[0-9.]+)`),
	regexp.MustCompile(`"latitude":(-?[0-9.]+),"longitude":(-?[0-9.]+)`),
	regexp.MustCompile(`data-lat="(-?[0-9.]+)"\s+data-lng="(-?[0-9.]+)"`),
	regexp.MustCompile(`center:\s*\[(-?[0-9.]+),\s*(-?[0-9.]+)\]`),
	regexp.MustCompile(`"center":\{"lat":(-?\d+\.\d+),"lng":(-?\d+\.\d+)}`),
}

// ExtractHTMLCoordinates scans page markup for any of the coordinate
// formats the supported sites embed.
func ExtractHTMLCoordinates(html string) (lat, lng float64, err error) {
	for _, pattern := range htmlCoordPatterns {
		if match := pattern.FindStringSubmatch(html); match != nil {
			return parsePair(match[1], match[2])
		}
	}
	return 0, 0, ErrNoCoordinates
}

var (
	trailLengthPatterns = []*regexp.Regexp{
		regexp.MustCompile(`"length":([0-9.]+)`),
		regexp.MustCompile(`data-length="([0-9.]+)"`),
	}
	trailElevationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`"elevationGain":([0-9.]+)`),
		regexp.MustCompile(`data-elevation="([0-9.]+)"`),
	}
)

// ExtractTrailStats reads AllTrails distance and elevation gain from page
// markup. AllTrails stores both in meters; distance is converted to miles
// rounded to one decimal, elevation gain to whole feet. A missing value
// leaves the corresponding pointer nil.
func ExtractTrailStats(html string) (distanceMiles, elevationFeet *float64) {
	for _, pattern := range trailLengthPatterns {
		if match := pattern.FindStringSubmatch(html); match != nil {
			if meters, err := strconv.ParseFloat(match[1], 64); err == nil {
				miles := roundTo(meters*metersToMiles, 1)
				distanceMiles = &miles
			}
			break
		}
	}

	for _, pattern := range trailElevationPatterns {
		if match := pattern.FindStringSubmatch(html); match != nil {
			if meters, err := strconv.ParseFloat(match[1], 64); err == nil {
				feet := float64(int(meters * metersToFeet))
				elevationFeet = &feet
			}
			break
		}
	}

	return distanceMiles, elevationFeet
}

// InferCategory guesses a category name from keywords in the place name and
// description, restricted to names actually present in the configuration.
func InferCategory(name, description string, categoryNames []string) string {
	text := strings.ToLower(name + " " + description)

	keywords := map[string][]string{
		"Eat/Drink":         {"restaurant", "cafe", "coffee", "bar", "food", "burrito", "pizza", "brewery", "bistro", "diner"},
		"Hike":              {"trail", "hike", "hiking", "mountain", "summit", "trek"},
		"City":              {"city", "town", "downtown", "urban"},
		"Landmark":          {"monument", "historic", "building", "tower", "statue", "memorial"},
		"Point of Interest": {"park", "museum", "attraction", "viewpoint", "scenic"},
	}

	for _, categoryName := range categoryNames {
		for _, keyword := range keywords[categoryName] {
			if strings.Contains(text, keyword) {
				return categoryName
			}
		}
	}

	return ""
}

func parsePair(latText, lngText string) (float64, float64, error) {
	lat, err := strconv.ParseFloat(latText, 64)
	if err != nil {
		return 0, 0, err
	}

	lng, err := strconv.ParseFloat(lngText, 64)
	if err != nil {
		return 0, 0, err
	}

	if !ValidCoordinates(lat, lng) {
		return 0, 0, ErrNoCoordinates
	}

	return lat, lng, nil
}

func roundTo(value float64, decimals int) float64 {
	shift := 1.0
	for i := 0; i < decimals; i++ {
		shift *= 10
	}
	return float64(int(value*shift+0.5)) / shift
}
