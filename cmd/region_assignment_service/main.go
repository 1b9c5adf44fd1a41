package main

import (
	"flag"
	"time"
	"trip_map_system/configs"
	"trip_map_system/internal/db"
	"trip_map_system/internal/db/models"
	"trip_map_system/internal/db/repositories"
	"trip_map_system/internal/di"
	"trip_map_system/internal/geo"

	"github.com/go-co-op/gocron"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	once := flag.Bool("once", false, "assign regions once and exit")
	flag.Parse()

	config, err := configs.LoadRegionAssignmentServiceConfig()
	logger := di.NewLogger(config.App, config.Logger)
	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}
	logger.Info("config loaded")

	logger.Info("starting db")
	database, err := db.StartDB(config.DB, logger)
	if err != nil {
		logger.Fatalw("failed to start db", "error", err)
	}
	logger.Info("db started")

	pinRepository := repositories.NewPinRepository(database)
	regionRepository := repositories.NewRegionRepository(database)

	if *once {
		assignRegions(pinRepository, regionRepository, logger)
		return
	}

	s := gocron.NewScheduler(time.UTC)
	s.Cron("30 11 * * *").Do(func() {
		assignRegions(pinRepository, regionRepository, logger)
	})
	s.StartBlocking()
}

func assignRegions(
	pinRepository repositories.PinRepository,
	regionRepository repositories.RegionRepository,
	logger *zap.SugaredLogger,
) {
	regions, err := regionRepository.GetMany()
	if err != nil {
		logger.Errorw("failed to get regions", "error", err)
		return
	}
	if len(regions) == 0 {
		logger.Error("no regions found, run migrations first")
		return
	}

	regionIDs := make(map[string]uuid.UUID, len(regions))
	for _, region := range regions {
		regionIDs[region.Name] = region.ID
	}

	pins, err := pinRepository.GetMany()
	if err != nil {
		logger.Errorw("failed to get pins", "error", err)
		return
	}

	updated := 0
	for _, pin := range pins {
		regionID, ok := resolveRegion(pin, regionIDs)
		if !ok {
			continue
		}

		if err := pinRepository.UpdateRegion(pin.ID, regionID); err != nil {
			logger.Errorw("failed to update pin region", "pin", pin.Name, "error", err)
			continue
		}
		updated++
	}

	logger.Infow("region assignment finished", "pins", len(pins), "updated", updated)
}

// resolveRegion classifies the pin and reports whether its stored region
// needs to change.
func resolveRegion(pin *models.Pin, regionIDs map[string]uuid.UUID) (uuid.UUID, bool) {
	regionName := geo.DetermineRegion(pin.Lat, pin.Lng)

	regionID, ok := regionIDs[regionName]
	if !ok {
		return uuid.Nil, false
	}

	if pin.RegionID != nil && *pin.RegionID == regionID {
		return uuid.Nil, false
	}

	return regionID, true
}
