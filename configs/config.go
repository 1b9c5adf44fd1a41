package configs

import (
	"fmt"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type MapAPIServerConfig struct {
	App     App
	Server  Server
	DB      DB
	Auth    Auth
	Map     Map
	Routing Routing
	Logger  Logger
}

func LoadMapAPIServerConfig() (MapAPIServerConfig, error) {
	_ = godotenv.Load()

	var config MapAPIServerConfig

	if err := env.Parse(&config); err != nil {
		return MapAPIServerConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	// accounts mode signs tokens; an empty HS256 key would accept
	// anything a client mints
	if config.DB.IsConfigured() && config.Auth.JWTSecret == "" {
		return MapAPIServerConfig{}, fmt.Errorf("JWT_SECRET is required when DATABASE_URL is set")
	}

	return config, nil
}

type PinImportToolConfig struct {
	App    App
	DB     DB
	Map    Map
	Logger Logger
}

func LoadPinImportToolConfig() (PinImportToolConfig, error) {
	_ = godotenv.Load()

	var config PinImportToolConfig

	if err := env.Parse(&config); err != nil {
		return PinImportToolConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if !config.DB.IsConfigured() {
		return PinImportToolConfig{}, fmt.Errorf("DATABASE_URL is required for pin import")
	}

	return config, nil
}

type RegionAssignmentServiceConfig struct {
	App    App
	DB     DB
	Logger Logger
}

func LoadRegionAssignmentServiceConfig() (RegionAssignmentServiceConfig, error) {
	_ = godotenv.Load()

	var config RegionAssignmentServiceConfig

	if err := env.Parse(&config); err != nil {
		return RegionAssignmentServiceConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if !config.DB.IsConfigured() {
		return RegionAssignmentServiceConfig{}, fmt.Errorf("DATABASE_URL is required for region assignment")
	}

	return config, nil
}
