package realtime

import (
	"context"
	"encoding/json"
	"trip_map_system/internal/mapdata"

	"github.com/go-pg/pg/v10"
	"go.uber.org/zap"
)

// NotifyChannel is raised by the schema's triggers on every mutation of
// the vote, poll, membership, pin and category relations.
const NotifyChannel = "map_changes"

// Listener bridges Postgres NOTIFY into the Hub. A pins or categories
// change additionally refreshes the registry snapshot so new data is
// served without a restart.
type Listener struct {
	db       *pg.DB
	hub      *Hub
	registry *mapdata.Registry
	loader   *mapdata.RemoteLoader
	logger   *zap.SugaredLogger
}

func NewListener(db *pg.DB, hub *Hub, registry *mapdata.Registry, loader *mapdata.RemoteLoader, logger *zap.SugaredLogger) *Listener {
	return &Listener{
		db:       db,
		hub:      hub,
		registry: registry,
		loader:   loader,
		logger:   logger,
	}
}

// Run blocks, relaying notifications until the context is canceled.
func (l *Listener) Run(ctx context.Context) {
	listener := l.db.Listen(ctx, NotifyChannel)
	defer listener.Close()

	channel := listener.Channel()

	for {
		select {
		case <-ctx.Done():
			return
		case notification, ok := <-channel:
			if !ok {
				return
			}
			l.handle(ctx, notification.Payload)
		}
	}
}

func (l *Listener) handle(ctx context.Context, payload string) {
	var change Change
	if err := json.Unmarshal([]byte(payload), &change); err != nil {
		l.logger.Warnw("ignoring malformed change notification", "payload", payload, "error", err)
		return
	}

	if change.Table == "pins" || change.Table == "categories" {
		bundle, err := l.loader.Load(ctx)
		if err != nil {
			l.logger.Errorw("failed to refresh map snapshot", "error", err)
		} else {
			l.registry.Replace(bundle)
		}
	}

	l.hub.Broadcast(change)
}
