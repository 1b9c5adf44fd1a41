package main

import (
	"context"
	"fmt"
	"net/http"
	"trip_map_system/configs"
	"trip_map_system/internal/api"
	"trip_map_system/internal/db"
	"trip_map_system/internal/db/repositories"
	"trip_map_system/internal/di"
	"trip_map_system/internal/mapdata"
	"trip_map_system/internal/realtime"
	"trip_map_system/internal/services"

	"go.uber.org/zap"
)

func main() {
	config, err := configs.LoadMapAPIServerConfig()
	logger := di.NewLogger(config.App, config.Logger)
	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}
	logger.Info("config loaded")

	var server *api.Server
	if config.DB.IsConfigured() {
		server = buildRemoteServer(config, logger)
	} else {
		server = buildStaticServer(config, logger)
	}

	address := fmt.Sprintf(":%d", config.Server.Port)
	logger.Infow("starting server", "address", address)
	if err := http.ListenAndServe(address, server.Router()); err != nil {
		logger.Fatalw("server stopped", "error", err)
	}
}

func buildRemoteServer(config configs.MapAPIServerConfig, logger *zap.SugaredLogger) *api.Server {
	logger.Info("starting db")
	database, err := db.StartDB(config.DB, logger)
	if err != nil {
		logger.Fatalw("failed to start db", "error", err)
	}
	logger.Info("db started")

	categoryRepository := repositories.NewCategoryRepository(database)
	pinRepository := repositories.NewPinRepository(database)
	regionRepository := repositories.NewRegionRepository(database)
	mapConfigRepository := repositories.NewMapConfigRepository(database)
	profileRepository := repositories.NewProfileRepository(database)
	groupRepository := repositories.NewGroupRepository(database)
	memberRepository := repositories.NewGroupMemberRepository(database)
	voteRepository := repositories.NewVoteRepository(database)
	pollRepository := repositories.NewPollRepository(database)
	pollVoteRepository := repositories.NewPollVoteRepository(database)

	loader := mapdata.NewRemoteLoader(categoryRepository, pinRepository, regionRepository, mapConfigRepository, logger)

	bundle, err := loader.Load(context.Background())
	if err != nil {
		logger.Fatalw("failed to load map data", "error", err)
	}
	logger.Infow("map data loaded", "pins", len(bundle.Pins), "categories", len(bundle.Categories))

	registry := mapdata.NewRegistry(config.Map, bundle)

	authService := services.NewAuthService(profileRepository, config.Auth, logger)
	voteService := services.NewVoteService(voteRepository, memberRepository, profileRepository, registry, logger)
	pollService := services.NewPollService(pollRepository, pollVoteRepository, memberRepository, profileRepository, logger)
	groupService := services.NewGroupService(groupRepository, memberRepository, profileRepository, logger)
	routingService := services.NewRoutingService(config.Routing.URL, registry)
	trackService := services.NewTrackService(registry, logger)

	hub := realtime.NewHub(logger)
	listener := realtime.NewListener(database, hub, registry, loader, logger)
	go listener.Run(context.Background())

	return api.NewServer(
		registry,
		config,
		routingService,
		trackService,
		logger,
		api.WithAccountServices(authService, voteService, pollService, groupService, profileRepository),
		api.WithEventsHandler(hub),
	)
}

func buildStaticServer(config configs.MapAPIServerConfig, logger *zap.SugaredLogger) *api.Server {
	if config.Map.StaticDocumentPath == "" {
		logger.Fatalw("either DATABASE_URL or STATIC_MAP_DOCUMENT must be set")
	}

	document, err := mapdata.LoadDocument(config.Map.StaticDocumentPath)
	if err != nil {
		logger.Fatalw("failed to load static map document", "error", err)
	}

	bundle := mapdata.BundleFromDocument(document, logger)
	logger.Infow("map data loaded", "pins", len(bundle.Pins), "categories", len(bundle.Categories))

	registry := mapdata.NewRegistry(config.Map, bundle)
	routingService := services.NewRoutingService(config.Routing.URL, registry)
	trackService := services.NewTrackService(registry, logger)

	return api.NewServer(registry, config, routingService, trackService, logger)
}
