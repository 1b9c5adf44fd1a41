package mapview

import (
	"trip_map_system/internal/mapdata"

	"go.uber.org/zap"
)

// State is a filter configuration as posted by a client. Ranges are only
// consulted while hike mode is on.
type State struct {
	ActiveCategories []string `json:"active_categories"`
	HikeMode         bool     `json:"hike_mode"`
	Distance         Range    `json:"distance"`
	Elevation        Range    `json:"elevation"`
}

// FilterFromState rebuilds a Filter from a posted State. Range values run
// through the same swap-on-inversion setters as interactive drags.
func FilterFromState(registry *mapdata.Registry, state State, logger *zap.SugaredLogger) *Filter {
	filter := NewFilter(registry, nil, logger)

	filter.active = make(map[string]bool)
	for _, name := range state.ActiveCategories {
		if category, ok := registry.CategoryByName(name); ok {
			filter.active[category.Name] = true
		} else {
			logger.Warnw("ignoring unknown category in filter state", "category", name)
		}
	}

	filter.hikeMode = state.HikeMode
	filter.distanceRange.Set(state.Distance.Min, state.Distance.Max)
	filter.elevationRange.Set(state.Elevation.Min, state.Elevation.Max)

	return filter
}

// Snapshot exports the filter's current configuration.
func (f *Filter) Snapshot() State {
	return State{
		ActiveCategories: f.ActiveCategories(),
		HikeMode:         f.hikeMode,
		Distance:         f.distanceRange,
		Elevation:        f.elevationRange,
	}
}
