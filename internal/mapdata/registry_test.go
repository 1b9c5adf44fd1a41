package mapdata

import (
	"testing"
	"trip_map_system/configs"
	"trip_map_system/internal/db/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testMapConfig() configs.Map {
	return configs.Map{
		HikeCategory:      "Hike",
		PeaksCategory:     "Peaks",
		VotableCategories: []string{"Hike", "Tourist Activity"},
	}
}

func testBundle() *Bundle {
	return &Bundle{
		Categories: []Category{
			{ID: uuid.New(), Name: "Hike"},
			{ID: uuid.New(), Name: "Eat/Drink"},
			{ID: uuid.New(), Name: "Tourist Activity"},
		},
		Pins: []Pin{
			{ID: uuid.New(), Name: "Flattop Mountain", Category: "Hike", Votability: models.VotabilityInherit},
			{ID: uuid.New(), Name: "Moose's Tooth", Category: "Eat/Drink", Votability: models.VotabilityInherit},
			{ID: uuid.New(), Name: "Portage Glacier Cruise", Category: "Tourist Activity", Votability: models.VotabilityNever},
			{ID: uuid.New(), Name: "Secret Dinner", Category: "Eat/Drink", Votability: models.VotabilityAlways},
		},
	}
}

func TestRegistry_PinByID(t *testing.T) {
	bundle := testBundle()
	registry := NewRegistry(testMapConfig(), bundle)

	pin, ok := registry.PinByID(bundle.Pins[0].ID)
	assert.True(t, ok)
	assert.Equal(t, "Flattop Mountain", pin.Name)

	_, ok = registry.PinByID(uuid.New())
	assert.False(t, ok)
}

func TestRegistry_PinByName_CaseInsensitive(t *testing.T) {
	registry := NewRegistry(testMapConfig(), testBundle())

	pin, ok := registry.PinByName("flattop mountain")
	assert.True(t, ok)
	assert.Equal(t, "Flattop Mountain", pin.Name)

	_, ok = registry.PinByName("nowhere")
	assert.False(t, ok)
}

func TestRegistry_CategoryByName_CaseInsensitive(t *testing.T) {
	registry := NewRegistry(testMapConfig(), testBundle())

	category, ok := registry.CategoryByName("eat/drink")
	assert.True(t, ok)
	assert.Equal(t, "Eat/Drink", category.Name)
}

func TestRegistry_Votable_InheritUsesCategoryList(t *testing.T) {
	registry := NewRegistry(testMapConfig(), testBundle())

	assert.True(t, registry.Votable(Pin{Category: "Hike", Votability: models.VotabilityInherit}))
	assert.True(t, registry.Votable(Pin{Category: "tourist activity", Votability: models.VotabilityInherit}))
	assert.False(t, registry.Votable(Pin{Category: "Eat/Drink", Votability: models.VotabilityInherit}))
}

func TestRegistry_Votable_ExplicitOverrideWins(t *testing.T) {
	registry := NewRegistry(testMapConfig(), testBundle())

	assert.True(t, registry.Votable(Pin{Category: "Eat/Drink", Votability: models.VotabilityAlways}))
	assert.False(t, registry.Votable(Pin{Category: "Hike", Votability: models.VotabilityNever}))
}

func TestRegistry_VotablePins(t *testing.T) {
	registry := NewRegistry(testMapConfig(), testBundle())

	pins := registry.VotablePins()
	names := make([]string, 0, len(pins))
	for _, pin := range pins {
		names = append(names, pin.Name)
	}

	// the hike inherits, the cruise opts out, the dinner opts in
	assert.Equal(t, []string{"Flattop Mountain", "Secret Dinner"}, names)
}

func TestRegistry_Replace(t *testing.T) {
	registry := NewRegistry(testMapConfig(), testBundle())
	assert.Len(t, registry.Bundle().Pins, 4)

	registry.Replace(&Bundle{Pins: []Pin{{ID: uuid.New(), Name: "Only One", Category: "Hike"}}})

	assert.Len(t, registry.Bundle().Pins, 1)
	_, ok := registry.PinByName("Only One")
	assert.True(t, ok)
}
