package mapview

import (
	"strings"
	"trip_map_system/internal/mapdata"

	"go.uber.org/zap"
)

// Range is an inclusive numeric interval. Setters keep Min <= Max by
// swapping inverted input, matching slider-handle crossover behavior.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (r *Range) Set(min, max float64) {
	if min > max {
		min, max = max, min
	}
	r.Min = min
	r.Max = max
}

func (r Range) Contains(value float64) bool {
	return value >= r.Min && value <= r.Max
}

// Filter owns all visibility state for one map session: the active
// category set, and while hike mode is on, the distance and elevation
// ranges plus a snapshot of the categories active before the mode was
// entered.
type Filter struct {
	registry *mapdata.Registry
	logger   *zap.SugaredLogger

	active         map[string]bool
	hikeMode       bool
	distanceRange  Range
	elevationRange Range
	snapshot       map[string]bool
}

// DefaultDistanceRange and DefaultElevationRange are the slider extents
// shown when hike mode is first entered.
var (
	DefaultDistanceRange  = Range{Min: 0, Max: 30}
	DefaultElevationRange = Range{Min: 0, Max: 6000}
)

// NewFilter starts with every category active except the peaks category.
// A non-empty override takes its place: names are matched
// case-insensitively against configured categories, and names that match
// nothing are logged and skipped rather than failing the load.
func NewFilter(registry *mapdata.Registry, override []string, logger *zap.SugaredLogger) *Filter {
	filter := &Filter{
		registry:       registry,
		logger:         logger,
		distanceRange:  DefaultDistanceRange,
		elevationRange: DefaultElevationRange,
	}

	if len(override) == 0 {
		filter.active = filter.defaultActiveSet()
		return filter
	}

	filter.active = make(map[string]bool)
	for _, name := range override {
		category, ok := registry.CategoryByName(strings.TrimSpace(name))
		if !ok {
			logger.Warnw("ignoring unknown category in filter override", "category", name)
			continue
		}
		filter.active[category.Name] = true
	}

	if len(filter.active) == 0 {
		filter.active = filter.defaultActiveSet()
	}

	return filter
}

func (f *Filter) defaultActiveSet() map[string]bool {
	active := make(map[string]bool)
	for _, category := range f.registry.Bundle().Categories {
		if strings.EqualFold(category.Name, f.registry.PeaksCategory()) {
			continue
		}
		active[category.Name] = true
	}
	return active
}

// Visible applies the category filter, then the hike-mode range filter.
// Pins missing distance or elevation data always pass the range check so
// incomplete entries stay on the map.
func (f *Filter) Visible(pin mapdata.Pin) bool {
	if !f.active[pin.Category] {
		return false
	}

	if !f.hikeMode || !strings.EqualFold(pin.Category, f.registry.HikeCategory()) {
		return true
	}

	if pin.Distance != nil && !f.distanceRange.Contains(*pin.Distance) {
		return false
	}
	if pin.ElevationGain != nil && !f.elevationRange.Contains(*pin.ElevationGain) {
		return false
	}

	return true
}

// VisiblePins filters the current snapshot.
func (f *Filter) VisiblePins() []mapdata.Pin {
	var pins []mapdata.Pin
	for _, pin := range f.registry.Bundle().Pins {
		if f.Visible(pin) {
			pins = append(pins, pin)
		}
	}
	return pins
}

func (f *Filter) IsActive(category string) bool {
	return f.active[category]
}

func (f *Filter) ActiveCategories() []string {
	var names []string
	for _, category := range f.registry.Bundle().Categories {
		if f.active[category.Name] {
			names = append(names, category.Name)
		}
	}
	return names
}

// ToggleCategory is a pure set add/remove.
func (f *Filter) ToggleCategory(name string) {
	if f.active[name] {
		delete(f.active, name)
	} else {
		f.active[name] = true
	}
}

func (f *Filter) HikeMode() bool {
	return f.hikeMode
}

// EnterHikeMode snapshots the active set, then restricts the view to the
// hike category. Entering twice does not overwrite the snapshot.
func (f *Filter) EnterHikeMode() {
	if f.hikeMode {
		return
	}
	f.hikeMode = true

	f.snapshot = make(map[string]bool, len(f.active))
	for name := range f.active {
		f.snapshot[name] = true
	}

	f.active = map[string]bool{}
	if category, ok := f.registry.CategoryByName(f.registry.HikeCategory()); ok {
		f.active[category.Name] = true
	}
}

// ExitHikeMode restores the snapshot taken on entry, or the default set
// when no snapshot exists.
func (f *Filter) ExitHikeMode() {
	if !f.hikeMode {
		return
	}
	f.hikeMode = false

	if f.snapshot != nil {
		f.active = f.snapshot
		f.snapshot = nil
		return
	}
	f.active = f.defaultActiveSet()
}

func (f *Filter) SetDistanceRange(min, max float64) {
	f.distanceRange.Set(min, max)
}

func (f *Filter) SetElevationRange(min, max float64) {
	f.elevationRange.Set(min, max)
}

func (f *Filter) DistanceRange() Range {
	return f.distanceRange
}

func (f *Filter) ElevationRange() Range {
	return f.elevationRange
}
