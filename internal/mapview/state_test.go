package mapview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestFilterFromState(t *testing.T) {
	state := State{
		ActiveCategories: []string{"hike"},
		HikeMode:         true,
		Distance:         Range{Min: 3, Max: 6},
		Elevation:        Range{Min: 1000, Max: 3000},
	}

	filter := FilterFromState(testRegistry(), state, zap.NewNop().Sugar())

	assert.True(t, filter.HikeMode())
	assert.Equal(t, []string{"Hike"}, filter.ActiveCategories())
	assert.Equal(t, []string{"Flattop Mountain", "Unscouted Trail"}, visibleNames(filter))
}

func TestFilterFromState_SwapsInvertedRanges(t *testing.T) {
	state := State{
		ActiveCategories: []string{"Hike"},
		HikeMode:         true,
		Distance:         Range{Min: 6, Max: 3},
		Elevation:        Range{Min: 3000, Max: 1000},
	}

	filter := FilterFromState(testRegistry(), state, zap.NewNop().Sugar())

	assert.Equal(t, Range{Min: 3, Max: 6}, filter.DistanceRange())
	assert.Equal(t, Range{Min: 1000, Max: 3000}, filter.ElevationRange())
}

func TestFilterFromState_UnknownCategoriesIgnored(t *testing.T) {
	state := State{ActiveCategories: []string{"Hike", "Bogus"}}

	filter := FilterFromState(testRegistry(), state, zap.NewNop().Sugar())

	assert.Equal(t, []string{"Hike"}, filter.ActiveCategories())
}

func TestSnapshot_RoundTrip(t *testing.T) {
	filter := NewFilter(testRegistry(), nil, zap.NewNop().Sugar())
	filter.ToggleCategory("Eat/Drink")
	filter.EnterHikeMode()
	filter.SetDistanceRange(2, 12)
	filter.SetElevationRange(200, 4000)

	rebuilt := FilterFromState(testRegistry(), filter.Snapshot(), zap.NewNop().Sugar())

	assert.Equal(t, filter.HikeMode(), rebuilt.HikeMode())
	assert.Equal(t, filter.ActiveCategories(), rebuilt.ActiveCategories())
	assert.Equal(t, filter.DistanceRange(), rebuilt.DistanceRange())
	assert.Equal(t, filter.ElevationRange(), rebuilt.ElevationRange())
	assert.Equal(t, visibleNames(filter), visibleNames(rebuilt))
}
