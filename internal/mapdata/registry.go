package mapdata

import (
	"strings"
	"sync/atomic"
	"trip_map_system/configs"
	"trip_map_system/internal/db/models"

	"github.com/google/uuid"
)

// Registry serves the current Bundle snapshot and answers identity and
// votability questions about it. Snapshots are replaced atomically when a
// pin or category change notification arrives, so readers never see a
// half-updated set.
type Registry struct {
	bundle            atomic.Value
	hikeCategory      string
	peaksCategory     string
	votableCategories map[string]bool
}

func NewRegistry(config configs.Map, bundle *Bundle) *Registry {
	votable := make(map[string]bool, len(config.VotableCategories))
	for _, name := range config.VotableCategories {
		votable[strings.ToLower(name)] = true
	}

	registry := &Registry{
		hikeCategory:      config.HikeCategory,
		peaksCategory:     config.PeaksCategory,
		votableCategories: votable,
	}
	registry.bundle.Store(bundle)

	return registry
}

func (r *Registry) Bundle() *Bundle {
	return r.bundle.Load().(*Bundle)
}

// Replace swaps in a freshly loaded snapshot.
func (r *Registry) Replace(bundle *Bundle) {
	r.bundle.Store(bundle)
}

func (r *Registry) HikeCategory() string {
	return r.hikeCategory
}

func (r *Registry) PeaksCategory() string {
	return r.peaksCategory
}

func (r *Registry) PinByID(id uuid.UUID) (Pin, bool) {
	for _, pin := range r.Bundle().Pins {
		if pin.ID == id {
			return pin, true
		}
	}
	return Pin{}, false
}

func (r *Registry) PinByName(name string) (Pin, bool) {
	for _, pin := range r.Bundle().Pins {
		if strings.EqualFold(pin.Name, name) {
			return pin, true
		}
	}
	return Pin{}, false
}

func (r *Registry) CategoryByName(name string) (Category, bool) {
	for _, category := range r.Bundle().Categories {
		if strings.EqualFold(category.Name, name) {
			return category, true
		}
	}
	return Category{}, false
}

// Votable resolves the pin's tri-state override: an explicit always/never
// wins, inherit falls back to the configured category allow-list.
func (r *Registry) Votable(pin Pin) bool {
	switch pin.Votability {
	case models.VotabilityAlways:
		return true
	case models.VotabilityNever:
		return false
	default:
		return r.votableCategories[strings.ToLower(pin.Category)]
	}
}

// VotablePins returns the subset of the current snapshot open to voting.
func (r *Registry) VotablePins() []Pin {
	var pins []Pin
	for _, pin := range r.Bundle().Pins {
		if r.Votable(pin) {
			pins = append(pins, pin)
		}
	}
	return pins
}
