package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"sitesafe-engine-go/internal/config"
	"sitesafe-engine-go/internal/models"
	"sitesafe-engine-go/internal/services/alerting"
	"sitesafe-engine-go/internal/services/classifier"
	"sitesafe-engine-go/internal/services/detector"
	"sitesafe-engine-go/internal/services/feed"
	"sitesafe-engine-go/internal/services/messaging"
	"sitesafe-engine-go/internal/services/notifier"
	"sitesafe-engine-go/internal/services/persistence"
	"sitesafe-engine-go/internal/services/risk"
	"sitesafe-engine-go/internal/websocket"
)

// ServiceContainer holds all engine services
type ServiceContainer struct {
	Config     *config.Config
	Calculator *risk.Calculator
	Classifier *classifier.Classifier
	Factory    *alerting.Factory
	Feed       *feed.Feed
	Detector   *detector.Client
	Hub        *websocket.Hub
	Notifier   *notifier.Service

	messagingSvc *messaging.Service
	store        *persistence.Store
}

// NewServiceContainer wires the engine. NATS and the snapshot store are
// optional collaborators: failing to reach either degrades to an
// in-memory-only feed instead of aborting startup.
func NewServiceContainer(cfg *config.Config) (*ServiceContainer, error) {
	sc := &ServiceContainer{
		Config:     cfg,
		Calculator: risk.NewCalculator(),
		Classifier: classifier.NewClassifier(),
		Factory:    alerting.NewFactory(),
		Feed:       feed.NewFeed(cfg.FeedCapacity, cfg.SubscriberBuffer),
		Detector:   detector.NewClient(cfg.DetectorURL, cfg.DetectorTimeout),
		Hub:        websocket.NewHub(),
	}

	var publisher models.MessagePublisher
	if cfg.NatsEnabled {
		messagingSvc, err := messaging.NewService(cfg)
		if err != nil {
			log.Warn().Err(err).Msg("NATS unavailable, alerts will not be published to the broker")
		} else {
			sc.messagingSvc = messagingSvc
			publisher = messagingSvc
		}
	}

	var store models.SnapshotStore
	if cfg.SnapshotEnabled {
		snapshotStore, err := persistence.NewStore(cfg.SnapshotDir)
		if err != nil {
			log.Warn().Err(err).Msg("Snapshot store unavailable, feed will be in-memory only")
		} else {
			sc.store = snapshotStore
			store = snapshotStore
		}
	}

	sc.Notifier = notifier.NewService(cfg, sc.Feed, publisher, store, sc.Hub)

	go sc.Hub.Run()
	sc.Notifier.Restore()
	sc.Notifier.Start()

	return sc, nil
}

// Shutdown gracefully shuts down all services
func (sc *ServiceContainer) Shutdown(ctx context.Context) error {
	if sc.Notifier != nil {
		if err := sc.Notifier.Shutdown(ctx); err != nil {
			log.Warn().Err(err).Msg("Notifier did not drain cleanly")
		}
	}

	if sc.messagingSvc != nil {
		if err := sc.messagingSvc.Shutdown(ctx); err != nil {
			return err
		}
	}

	if sc.store != nil {
		if err := sc.store.Shutdown(ctx); err != nil {
			return err
		}
	}

	return nil
}
