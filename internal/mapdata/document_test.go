package mapdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleDocument = `
map:
  center: [61.2181, -149.9003]
  zoom: 8
categories:
  - name: Hike
    color: "#2e7d32"
  - name: Eat/Drink
    color: "#c62828"
pins:
  - name: Flattop Mountain
    coordinates: [61.082693, -149.683599]
    description: The most climbed peak in Alaska
    category: Hike
    region: Anchorage Area
    distance: 3.3
    elevationGain: 1377
  - name: Moose's Tooth
    coordinates: [61.1894, -149.8393]
    description: Pizza and beer
    category: Eat/Drink
    votable: false
`

func TestParseDocument(t *testing.T) {
	document, err := ParseDocument([]byte(sampleDocument))
	assert.NoError(t, err)

	assert.Equal(t, 61.2181, document.Map.Center[0])
	assert.Equal(t, -149.9003, document.Map.Center[1])
	assert.Equal(t, 8, document.Map.Zoom)
	assert.Len(t, document.Categories, 2)
	assert.Len(t, document.Pins, 2)

	flattop := document.Pins[0]
	assert.Equal(t, "Flattop Mountain", flattop.Name)
	assert.Nil(t, flattop.Votable)
	assert.Equal(t, 3.3, *flattop.Distance)
	assert.Equal(t, 1377.0, *flattop.ElevationGain)

	moose := document.Pins[1]
	assert.NotNil(t, moose.Votable)
	assert.False(t, *moose.Votable)
}

func TestParseDocument_InvalidYAML(t *testing.T) {
	_, err := ParseDocument([]byte("map: [not: valid"))
	assert.Error(t, err)
}

func TestParseDocument_CenterMustBePair(t *testing.T) {
	_, err := ParseDocument([]byte("map:\n  center: [61.2181]\n  zoom: 8\n"))
	assert.Error(t, err)
}
