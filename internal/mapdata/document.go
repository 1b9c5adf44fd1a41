package mapdata

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is the static configuration file parsed in static mode.
type Document struct {
	Map        DocumentMap        `yaml:"map"`
	Categories []DocumentCategory `yaml:"categories"`
	Pins       []DocumentPin      `yaml:"pins"`
}

type DocumentMap struct {
	Center []float64 `yaml:"center"`
	Zoom   int       `yaml:"zoom"`
}

type DocumentCategory struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

type DocumentPin struct {
	Name                string    `yaml:"name"`
	Coordinates         []float64 `yaml:"coordinates"`
	Description         string    `yaml:"description"`
	Category            string    `yaml:"category"`
	Region              string    `yaml:"region"`
	Votable             *bool     `yaml:"votable"`
	Link                string    `yaml:"link"`
	MapsLink            string    `yaml:"mapsLink"`
	ExtendedDescription string    `yaml:"extendedDescription"`
	Cost                string    `yaml:"cost"`
	Tips                string    `yaml:"tips"`
	Photos              []string  `yaml:"photos"`
	Distance            *float64  `yaml:"distance"`
	ElevationGain       *float64  `yaml:"elevationGain"`
	GPX                 string    `yaml:"gpx"`
}

func ParseDocument(data []byte) (*Document, error) {
	document := &Document{}

	if err := yaml.Unmarshal(data, document); err != nil {
		return nil, fmt.Errorf("failed to parse map document: %w", err)
	}

	if len(document.Map.Center) != 2 {
		return nil, fmt.Errorf("map center must be a [lat, lng] pair, got %d values", len(document.Map.Center))
	}

	return document, nil
}

func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map document: %w", err)
	}

	return ParseDocument(data)
}
