package notifier

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"sitesafe-engine-go/internal/config"
	"sitesafe-engine-go/internal/models"
	"sitesafe-engine-go/internal/services/feed"
)

// Service is the notification transport: it forwards every ingested
// alert to the configured outbound channels (NATS subject, WebSocket
// hub) and opportunistically persists feed snapshots. Every outbound
// path is best-effort; failures are logged and never reach the
// ingesting caller.
type Service struct {
	cfg       *config.Config
	feed      *feed.Feed
	publisher models.MessagePublisher
	store     models.SnapshotStore
	hub       models.AlertBroadcaster

	sub    *feed.Subscription
	done   chan struct{}
	logger zerolog.Logger
}

// NewService creates a notifier. Publisher, store and hub may each be
// nil, in which case that outbound path is skipped.
func NewService(cfg *config.Config, alertFeed *feed.Feed, publisher models.MessagePublisher, store models.SnapshotStore, hub models.AlertBroadcaster) *Service {
	return &Service{
		cfg:       cfg,
		feed:      alertFeed,
		publisher: publisher,
		store:     store,
		hub:       hub,
		logger:    log.With().Str("service", "notifier").Logger(),
	}
}

// Start subscribes to the feed and begins forwarding alerts
func (s *Service) Start() {
	s.sub = s.feed.Subscribe()
	s.done = make(chan struct{})

	go s.run()

	s.logger.Info().
		Bool("nats", s.publisher != nil).
		Bool("websocket", s.hub != nil).
		Bool("persistence", s.store != nil).
		Msg("Notification transport started")
}

func (s *Service) run() {
	defer close(s.done)

	for alert := range s.sub.Alerts() {
		s.dispatch(alert)
	}
}

func (s *Service) dispatch(alert models.Alert) {
	if s.hub != nil {
		s.hub.BroadcastAlert(alert)
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(s.cfg.AlertsSubject, alert); err != nil {
			s.logger.Error().
				Err(err).
				Str("alert_id", alert.ID).
				Str("subject", s.cfg.AlertsSubject).
				Msg("Failed to publish alert")
		}
	}

	s.saveSnapshot()
}

// Reconcile purges stale entries, snapshots the feed, persists the
// snapshot best-effort and returns it. Latecomers replace their local
// view wholesale with the result.
func (s *Service) Reconcile(ctx context.Context) []models.Alert {
	purged := s.feed.PurgeStale(s.cfg.FeedStaleHorizon)
	snapshot := s.feed.List()

	s.saveSnapshot()

	s.logger.Debug().
		Int("purged", purged).
		Int("alerts", len(snapshot)).
		Msg("Feed reconciled")
	return snapshot
}

// Restore loads the persisted snapshot into the feed, dropping entries
// already past the stale horizon. Called once at startup; a missing or
// unreadable snapshot leaves the feed empty.
func (s *Service) Restore() {
	if s.store == nil {
		return
	}

	snapshot, err := s.store.Load()
	if err != nil {
		s.logger.Warn().Err(err).Msg("Could not load persisted feed snapshot, starting empty")
		return
	}
	if len(snapshot.Alerts) == 0 {
		return
	}

	s.feed.Restore(snapshot.Alerts)
	s.feed.PurgeStale(s.cfg.FeedStaleHorizon)
}

func (s *Service) saveSnapshot() {
	if s.store == nil {
		return
	}

	err := s.store.Save(models.FeedSnapshot{
		Alerts:  s.feed.List(),
		SavedAt: time.Now().UTC(),
	})
	if err != nil {
		// In-memory feed stays authoritative; durability is best-effort
		s.logger.Warn().Err(err).Msg("Feed snapshot write failed, continuing without persistence")
	}
}

// Shutdown stops forwarding and waits for the dispatch loop to drain
func (s *Service) Shutdown(ctx context.Context) error {
	if s.sub == nil {
		return nil
	}

	s.feed.Unsubscribe(s.sub)

	select {
	case <-s.done:
	case <-ctx.Done():
		return ctx.Err()
	}

	s.logger.Info().Msg("Notification transport stopped")
	return nil
}
