package realtime

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"trip_map_system/configs"
	"trip_map_system/internal/db/models"
	mock_repositories "trip_map_system/internal/db/repositories/mocks"
	"trip_map_system/internal/mapdata"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestHub_BroadcastReachesSubscriber(t *testing.T) {
	hub := NewHub(zap.NewNop().Sugar())

	server := httptest.NewServer(hub)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	assert.NoError(t, err)
	defer conn.Close()

	// wait for the subscription to register before broadcasting
	deadline := time.Now().Add(2 * time.Second)
	for hub.SubscriberCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	assert.Equal(t, 1, hub.SubscriberCount())

	sent := Change{Table: "user_votes", GroupID: uuid.New().String()}
	hub.Broadcast(sent)

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var received Change
	err = conn.ReadJSON(&received)
	assert.NoError(t, err)
	assert.Equal(t, sent, received)
}

func TestHub_DisconnectRemovesSubscriber(t *testing.T) {
	hub := NewHub(zap.NewNop().Sugar())

	server := httptest.NewServer(hub)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	assert.NoError(t, err)

	deadline := time.Now().Add(2 * time.Second)
	for hub.SubscriberCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	assert.Equal(t, 1, hub.SubscriberCount())

	_ = conn.Close()

	deadline = time.Now().Add(2 * time.Second)
	for hub.SubscriberCount() != 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	assert.Equal(t, 0, hub.SubscriberCount())
}

func TestHub_BroadcastWithoutSubscribers(t *testing.T) {
	hub := NewHub(zap.NewNop().Sugar())

	// nothing to deliver to, nothing to block on
	hub.Broadcast(Change{Table: "pins"})
	assert.Equal(t, 0, hub.SubscriberCount())
}

func TestListener_HandleRelaysVoteChange(t *testing.T) {
	hub := NewHub(zap.NewNop().Sugar())
	listener := NewListener(nil, hub, nil, nil, zap.NewNop().Sugar())

	server := httptest.NewServer(hub)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	assert.NoError(t, err)
	defer conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for hub.SubscriberCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	groupID := uuid.New().String()
	listener.handle(context.Background(), `{"table":"user_votes","group_id":"`+groupID+`"}`)

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var received Change
	err = conn.ReadJSON(&received)
	assert.NoError(t, err)
	assert.Equal(t, "user_votes", received.Table)
	assert.Equal(t, groupID, received.GroupID)
}

func TestListener_HandleIgnoresMalformedPayload(t *testing.T) {
	hub := NewHub(zap.NewNop().Sugar())
	listener := NewListener(nil, hub, nil, nil, zap.NewNop().Sugar())

	// must not panic or reach the loader
	listener.handle(context.Background(), "not json")
}

func TestListener_PinChangeRefreshesSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	categoryRepo := mock_repositories.NewMockCategoryRepository(ctrl)
	pinRepo := mock_repositories.NewMockPinRepository(ctrl)
	regionRepo := mock_repositories.NewMockRegionRepository(ctrl)
	mapConfigRepo := mock_repositories.NewMockMapConfigRepository(ctrl)

	hikeID := uuid.New()
	categoryRepo.EXPECT().GetMany().Return([]*models.Category{{ID: hikeID, Name: "Hike"}}, nil)
	pinRepo.EXPECT().GetMany().Return([]*models.Pin{
		{ID: uuid.New(), Name: "Fresh Pin", CategoryID: hikeID},
	}, nil)
	regionRepo.EXPECT().GetMany().Return([]*models.Region{}, nil)
	mapConfigRepo.EXPECT().GetOne().Return(&models.MapConfig{Zoom: 8}, nil)

	loader := mapdata.NewRemoteLoader(categoryRepo, pinRepo, regionRepo, mapConfigRepo, zap.NewNop().Sugar())
	registry := mapdata.NewRegistry(configs.Map{HikeCategory: "Hike"}, &mapdata.Bundle{})

	hub := NewHub(zap.NewNop().Sugar())
	listener := NewListener(nil, hub, registry, loader, zap.NewNop().Sugar())

	listener.handle(context.Background(), `{"table":"pins"}`)

	_, ok := registry.PinByName("Fresh Pin")
	assert.True(t, ok)
}
