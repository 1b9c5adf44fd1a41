package mapview

import (
	"strings"
	"trip_map_system/internal/mapdata"
)

// Search returns pins whose name, description or category contains the
// query, case-insensitively. It runs independently of the category and
// hike filters and mutates nothing.
func Search(pins []mapdata.Pin, query string) []mapdata.Pin {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var matches []mapdata.Pin
	for _, pin := range pins {
		if strings.Contains(strings.ToLower(pin.Name), query) ||
			strings.Contains(strings.ToLower(pin.Description), query) ||
			strings.Contains(strings.ToLower(pin.Category), query) {
			matches = append(matches, pin)
		}
	}

	return matches
}
