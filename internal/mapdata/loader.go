package mapdata

import (
	"context"
	"fmt"
	"trip_map_system/internal/db/models"
	"trip_map_system/internal/db/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// BundleFromDocument converts a parsed static document into a Bundle.
// Pins referencing a category name absent from the document fall back to
// the Unknown sentinel so a typo never hides a pin entirely.
func BundleFromDocument(document *Document, logger *zap.SugaredLogger) *Bundle {
	bundle := &Bundle{
		MapView: MapView{
			CenterLat: document.Map.Center[0],
			CenterLng: document.Map.Center[1],
			Zoom:      document.Map.Zoom,
		},
	}

	known := make(map[string]bool, len(document.Categories))
	for _, category := range document.Categories {
		known[category.Name] = true
		bundle.Categories = append(bundle.Categories, Category{
			ID:    uuid.New(),
			Name:  category.Name,
			Color: category.Color,
		})
	}

	regionIDs := make(map[string]uuid.UUID)

	for _, pin := range document.Pins {
		if len(pin.Coordinates) != 2 {
			logger.Warnw("skipping pin without a coordinate pair", "pin", pin.Name)
			continue
		}

		categoryName := pin.Category
		if !known[categoryName] {
			logger.Warnw("pin references unknown category", "pin", pin.Name, "category", categoryName)
			categoryName = models.UnknownCategoryName
			bundle.ensureUnknownCategory()
		}

		if pin.Region != "" {
			if _, ok := regionIDs[pin.Region]; !ok {
				id := uuid.New()
				regionIDs[pin.Region] = id
				bundle.Regions = append(bundle.Regions, Region{ID: id, Name: pin.Region})
			}
		}

		bundle.Pins = append(bundle.Pins, Pin{
			ID:                  uuid.New(),
			Name:                pin.Name,
			Lat:                 pin.Coordinates[0],
			Lng:                 pin.Coordinates[1],
			Description:         pin.Description,
			Category:            categoryName,
			Region:              pin.Region,
			Votability:          votabilityFromOverride(pin.Votable),
			Link:                pin.Link,
			MapsLink:            pin.MapsLink,
			ExtendedDescription: pin.ExtendedDescription,
			Cost:                pin.Cost,
			Tips:                pin.Tips,
			Photos:              pin.Photos,
			Distance:            pin.Distance,
			ElevationGain:       pin.ElevationGain,
			GPX:                 pin.GPX,
		})
	}

	return bundle
}

func votabilityFromOverride(votable *bool) models.Votability {
	switch {
	case votable == nil:
		return models.VotabilityInherit
	case *votable:
		return models.VotabilityAlways
	default:
		return models.VotabilityNever
	}
}

func (b *Bundle) ensureUnknownCategory() {
	for _, category := range b.Categories {
		if category.Name == models.UnknownCategoryName {
			return
		}
	}
	b.Categories = append(b.Categories, Category{
		ID:    uuid.New(),
		Name:  models.UnknownCategoryName,
		Color: "#808080",
	})
}

// RemoteLoader assembles a Bundle from the database relations.
type RemoteLoader struct {
	categoryRepository  repositories.CategoryRepository
	pinRepository       repositories.PinRepository
	regionRepository    repositories.RegionRepository
	mapConfigRepository repositories.MapConfigRepository
	logger              *zap.SugaredLogger
}

func NewRemoteLoader(
	categoryRepository repositories.CategoryRepository,
	pinRepository repositories.PinRepository,
	regionRepository repositories.RegionRepository,
	mapConfigRepository repositories.MapConfigRepository,
	logger *zap.SugaredLogger,
) *RemoteLoader {
	return &RemoteLoader{
		categoryRepository:  categoryRepository,
		pinRepository:       pinRepository,
		regionRepository:    regionRepository,
		mapConfigRepository: mapConfigRepository,
		logger:              logger,
	}
}

// Load issues the four reads in parallel. Categories, pins and the map
// config are required; a failed regions read degrades to an empty region
// set because regions are optional everywhere they appear.
func (l *RemoteLoader) Load(ctx context.Context) (*Bundle, error) {
	var (
		categories []*models.Category
		pins       []*models.Pin
		regions    []*models.Region
		mapConfig  *models.MapConfig
	)

	group, _ := errgroup.WithContext(ctx)

	group.Go(func() error {
		var err error
		categories, err = l.categoryRepository.GetMany()
		if err != nil {
			return fmt.Errorf("failed to load categories: %w", err)
		}
		return nil
	})

	group.Go(func() error {
		var err error
		pins, err = l.pinRepository.GetMany()
		if err != nil {
			return fmt.Errorf("failed to load pins: %w", err)
		}
		return nil
	})

	group.Go(func() error {
		var err error
		mapConfig, err = l.mapConfigRepository.GetOne()
		if err != nil {
			return fmt.Errorf("failed to load map config: %w", err)
		}
		return nil
	})

	group.Go(func() error {
		var err error
		regions, err = l.regionRepository.GetMany()
		if err != nil {
			l.logger.Warnw("failed to load regions, continuing without them", "error", err)
			regions = nil
		}
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return l.join(categories, pins, regions, mapConfig), nil
}

func (l *RemoteLoader) join(
	categories []*models.Category,
	pins []*models.Pin,
	regions []*models.Region,
	mapConfig *models.MapConfig,
) *Bundle {
	bundle := &Bundle{
		MapView: MapView{
			CenterLat: mapConfig.CenterLat,
			CenterLng: mapConfig.CenterLng,
			Zoom:      mapConfig.Zoom,
		},
	}

	categoryNames := make(map[uuid.UUID]string, len(categories))
	for _, category := range categories {
		categoryNames[category.ID] = category.Name
		bundle.Categories = append(bundle.Categories, Category{
			ID:    category.ID,
			Name:  category.Name,
			Color: category.Color,
		})
	}

	regionNames := make(map[uuid.UUID]string, len(regions))
	for _, region := range regions {
		regionNames[region.ID] = region.Name
		bundle.Regions = append(bundle.Regions, Region{
			ID:          region.ID,
			Name:        region.Name,
			Description: region.Description,
			CenterLat:   region.CenterLat,
			CenterLng:   region.CenterLng,
		})
	}

	for _, pin := range pins {
		categoryName, ok := categoryNames[pin.CategoryID]
		if !ok {
			l.logger.Warnw("pin references unresolved category", "pin", pin.Name, "categoryID", pin.CategoryID)
			categoryName = models.UnknownCategoryName
			bundle.ensureUnknownCategory()
		}

		regionName := ""
		if pin.RegionID != nil {
			regionName = regionNames[*pin.RegionID]
		}

		bundle.Pins = append(bundle.Pins, Pin{
			ID:                  pin.ID,
			Name:                pin.Name,
			Lat:                 pin.Lat,
			Lng:                 pin.Lng,
			Description:         pin.Description,
			Category:            categoryName,
			Region:              regionName,
			Votability:          pin.Votability,
			Link:                pin.Link,
			MapsLink:            pin.MapsLink,
			ExtendedDescription: pin.ExtendedDescription,
			Cost:                pin.Cost,
			Tips:                pin.Tips,
			Photos:              pin.Photos,
			Distance:            pin.Distance,
			ElevationGain:       pin.ElevationGain,
			GPX:                 pin.GPX,
		})
	}

	return bundle
}
