package mapdata

import (
	"context"
	"errors"
	"testing"
	"trip_map_system/internal/db/models"
	mock_repositories "trip_map_system/internal/db/repositories/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestBundleFromDocument(t *testing.T) {
	document, err := ParseDocument([]byte(sampleDocument))
	assert.NoError(t, err)

	bundle := BundleFromDocument(document, zap.NewNop().Sugar())

	assert.Equal(t, 61.2181, bundle.MapView.CenterLat)
	assert.Equal(t, -149.9003, bundle.MapView.CenterLng)
	assert.Equal(t, 8, bundle.MapView.Zoom)
	assert.Equal(t, []string{"Hike", "Eat/Drink"}, bundle.CategoryNames())
	assert.Len(t, bundle.Pins, 2)
	assert.Len(t, bundle.Regions, 1)
	assert.Equal(t, "Anchorage Area", bundle.Regions[0].Name)

	assert.Equal(t, models.VotabilityInherit, bundle.Pins[0].Votability)
	assert.Equal(t, models.VotabilityNever, bundle.Pins[1].Votability)
}

func TestBundleFromDocument_UnknownCategoryFallsBack(t *testing.T) {
	document, err := ParseDocument([]byte(`
map:
  center: [61.2181, -149.9003]
  zoom: 8
categories:
  - name: Hike
pins:
  - name: Mystery Spot
    coordinates: [61.1, -149.8]
    category: Hikes
`))
	assert.NoError(t, err)

	bundle := BundleFromDocument(document, zap.NewNop().Sugar())

	// the pin stays on the map under the sentinel category
	assert.Len(t, bundle.Pins, 1)
	assert.Equal(t, models.UnknownCategoryName, bundle.Pins[0].Category)
	assert.Equal(t, []string{"Hike", models.UnknownCategoryName}, bundle.CategoryNames())
}

func TestBundleFromDocument_SkipsPinWithoutCoordinates(t *testing.T) {
	document, err := ParseDocument([]byte(`
map:
  center: [61.2181, -149.9003]
  zoom: 8
categories:
  - name: Hike
pins:
  - name: Broken
    category: Hike
  - name: Whole
    coordinates: [61.1, -149.8]
    category: Hike
`))
	assert.NoError(t, err)

	bundle := BundleFromDocument(document, zap.NewNop().Sugar())
	assert.Len(t, bundle.Pins, 1)
	assert.Equal(t, "Whole", bundle.Pins[0].Name)
}

func TestRemoteLoader_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	categoryRepo := mock_repositories.NewMockCategoryRepository(ctrl)
	pinRepo := mock_repositories.NewMockPinRepository(ctrl)
	regionRepo := mock_repositories.NewMockRegionRepository(ctrl)
	mapConfigRepo := mock_repositories.NewMockMapConfigRepository(ctrl)

	hikeID := uuid.New()
	regionID := uuid.New()

	categoryRepo.EXPECT().GetMany().Return([]*models.Category{
		{ID: hikeID, Name: "Hike", Color: "#2e7d32"},
	}, nil)
	pinRepo.EXPECT().GetMany().Return([]*models.Pin{
		{ID: uuid.New(), Name: "Flattop Mountain", Lat: 61.08, Lng: -149.68, CategoryID: hikeID, RegionID: &regionID},
	}, nil)
	regionRepo.EXPECT().GetMany().Return([]*models.Region{
		{ID: regionID, Name: "Anchorage Area"},
	}, nil)
	mapConfigRepo.EXPECT().GetOne().Return(&models.MapConfig{CenterLat: 61.2181, CenterLng: -149.9003, Zoom: 8}, nil)

	loader := NewRemoteLoader(categoryRepo, pinRepo, regionRepo, mapConfigRepo, zap.NewNop().Sugar())
	bundle, err := loader.Load(context.Background())
	assert.NoError(t, err)

	assert.Equal(t, 8, bundle.MapView.Zoom)
	assert.Len(t, bundle.Pins, 1)
	assert.Equal(t, "Hike", bundle.Pins[0].Category)
	assert.Equal(t, "Anchorage Area", bundle.Pins[0].Region)
}

func TestRemoteLoader_Load_RegionsFailureTolerated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	categoryRepo := mock_repositories.NewMockCategoryRepository(ctrl)
	pinRepo := mock_repositories.NewMockPinRepository(ctrl)
	regionRepo := mock_repositories.NewMockRegionRepository(ctrl)
	mapConfigRepo := mock_repositories.NewMockMapConfigRepository(ctrl)

	hikeID := uuid.New()
	regionID := uuid.New()

	categoryRepo.EXPECT().GetMany().Return([]*models.Category{{ID: hikeID, Name: "Hike"}}, nil)
	pinRepo.EXPECT().GetMany().Return([]*models.Pin{
		{ID: uuid.New(), Name: "Flattop Mountain", CategoryID: hikeID, RegionID: &regionID},
	}, nil)
	regionRepo.EXPECT().GetMany().Return(nil, errors.New("relation does not exist"))
	mapConfigRepo.EXPECT().GetOne().Return(&models.MapConfig{Zoom: 8}, nil)

	loader := NewRemoteLoader(categoryRepo, pinRepo, regionRepo, mapConfigRepo, zap.NewNop().Sugar())
	bundle, err := loader.Load(context.Background())
	assert.NoError(t, err)

	// the pin survives with no region name
	assert.Empty(t, bundle.Regions)
	assert.Len(t, bundle.Pins, 1)
	assert.Equal(t, "", bundle.Pins[0].Region)
}

func TestRemoteLoader_Load_PinsFailureFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	categoryRepo := mock_repositories.NewMockCategoryRepository(ctrl)
	pinRepo := mock_repositories.NewMockPinRepository(ctrl)
	regionRepo := mock_repositories.NewMockRegionRepository(ctrl)
	mapConfigRepo := mock_repositories.NewMockMapConfigRepository(ctrl)

	categoryRepo.EXPECT().GetMany().Return([]*models.Category{}, nil).AnyTimes()
	pinRepo.EXPECT().GetMany().Return(nil, errors.New("database error"))
	regionRepo.EXPECT().GetMany().Return([]*models.Region{}, nil).AnyTimes()
	mapConfigRepo.EXPECT().GetOne().Return(&models.MapConfig{}, nil).AnyTimes()

	loader := NewRemoteLoader(categoryRepo, pinRepo, regionRepo, mapConfigRepo, zap.NewNop().Sugar())
	_, err := loader.Load(context.Background())
	assert.Error(t, err)
}

func TestRemoteLoader_Load_UnresolvedCategoryFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	categoryRepo := mock_repositories.NewMockCategoryRepository(ctrl)
	pinRepo := mock_repositories.NewMockPinRepository(ctrl)
	regionRepo := mock_repositories.NewMockRegionRepository(ctrl)
	mapConfigRepo := mock_repositories.NewMockMapConfigRepository(ctrl)

	categoryRepo.EXPECT().GetMany().Return([]*models.Category{}, nil)
	pinRepo.EXPECT().GetMany().Return([]*models.Pin{
		{ID: uuid.New(), Name: "Orphan", CategoryID: uuid.New()},
	}, nil)
	regionRepo.EXPECT().GetMany().Return([]*models.Region{}, nil)
	mapConfigRepo.EXPECT().GetOne().Return(&models.MapConfig{}, nil)

	loader := NewRemoteLoader(categoryRepo, pinRepo, regionRepo, mapConfigRepo, zap.NewNop().Sugar())
	bundle, err := loader.Load(context.Background())
	assert.NoError(t, err)

	assert.Equal(t, models.UnknownCategoryName, bundle.Pins[0].Category)
	assert.Equal(t, []string{models.UnknownCategoryName}, bundle.CategoryNames())
}
