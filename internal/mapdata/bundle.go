package mapdata

import (
	"trip_map_system/internal/db/models"

	"github.com/google/uuid"
)

// MapView is the initial viewport shown before any interaction.
type MapView struct {
	CenterLat float64 `json:"center_lat"`
	CenterLng float64 `json:"center_lng"`
	Zoom      int     `json:"zoom"`
}

type Category struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Color string    `json:"color"`
}

type Region struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CenterLat   *float64  `json:"center_lat,omitempty"`
	CenterLng   *float64  `json:"center_lng,omitempty"`
}

// Pin is the joined, display-ready shape: category and region ids are
// already resolved to names.
type Pin struct {
	ID                  uuid.UUID         `json:"id"`
	Name                string            `json:"name"`
	Lat                 float64           `json:"lat"`
	Lng                 float64           `json:"lng"`
	Description         string            `json:"description"`
	Category            string            `json:"category"`
	Region              string            `json:"region,omitempty"`
	Votability          models.Votability `json:"votability"`
	Link                string            `json:"link,omitempty"`
	MapsLink            string            `json:"maps_link,omitempty"`
	ExtendedDescription string            `json:"extended_description,omitempty"`
	Cost                string            `json:"cost,omitempty"`
	Tips                string            `json:"tips,omitempty"`
	Photos              []string          `json:"photos,omitempty"`
	Distance            *float64          `json:"distance,omitempty"`
	ElevationGain       *float64          `json:"elevation_gain,omitempty"`
	GPX                 string            `json:"gpx,omitempty"`
}

// Bundle is one immutable snapshot of everything the map needs to draw.
type Bundle struct {
	MapView    MapView
	Categories []Category
	Regions    []Region
	Pins       []Pin
}

// CategoryNames returns configured names in declaration order.
func (b *Bundle) CategoryNames() []string {
	names := make([]string, 0, len(b.Categories))
	for _, category := range b.Categories {
		names = append(names, category.Name)
	}
	return names
}
