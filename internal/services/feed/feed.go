package feed

import (
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"sitesafe-engine-go/internal/models"
)

const (
	// DefaultCapacity bounds the live feed at the 50 most recent alerts
	DefaultCapacity = 50

	// DefaultStaleHorizon drops alerts older than 24h on reconciliation
	DefaultStaleHorizon = 24 * time.Hour

	defaultSubscriberBuffer = 64
)

// Subscription is a live stream of ingested alerts. The channel is closed
// when the subscription is cancelled or the subscriber falls too far
// behind.
type Subscription struct {
	id uint64
	ch chan models.Alert
}

// Alerts returns the subscription's receive channel
func (s *Subscription) Alerts() <-chan models.Alert {
	return s.ch
}

// Feed owns the bounded, newest-first alert collection. All mutation is
// serialized behind a single mutex; readers get point-in-time copies and
// never observe a partially-applied mutation.
type Feed struct {
	mu               sync.Mutex
	capacity         int
	subscriberBuffer int
	alerts           []models.Alert
	subscribers      map[uint64]chan models.Alert
	nextSubscriber   uint64
	logger           zerolog.Logger
}

// NewFeed creates an alert feed with the given capacity. Non-positive
// values fall back to the defaults.
func NewFeed(capacity, subscriberBuffer int) *Feed {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if subscriberBuffer <= 0 {
		subscriberBuffer = defaultSubscriberBuffer
	}

	return &Feed{
		capacity:         capacity,
		subscriberBuffer: subscriberBuffer,
		alerts:           make([]models.Alert, 0, capacity),
		subscribers:      make(map[uint64]chan models.Alert),
		logger:           log.With().Str("service", "feed").Logger(),
	}
}

// Ingest upserts an alert by id. An existing entry with the same id is
// replaced and moved to the front; a new entry is inserted at the front
// and the tail evicted past capacity. Subscribers are notified once per
// call, in ingestion order, with non-blocking sends.
func (f *Feed) Ingest(alert models.Alert) {
	if alert.Timestamp.IsZero() {
		alert.Timestamp = time.Now().UTC()
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	replaced := f.removeLocked(alert.ID)
	f.alerts = append([]models.Alert{alert}, f.alerts...)

	evicted := 0
	for len(f.alerts) > f.capacity {
		f.alerts = f.alerts[:len(f.alerts)-1]
		evicted++
	}

	f.logger.Debug().
		Str("alert_id", alert.ID).
		Str("severity", string(alert.Severity)).
		Bool("replaced", replaced).
		Int("evicted", evicted).
		Int("feed_size", len(f.alerts)).
		Msg("Alert ingested")

	f.notifyLocked(alert)
}

// List returns a consistent newest-first snapshot of the feed
func (f *Feed) List() []models.Alert {
	f.mu.Lock()
	defer f.mu.Unlock()

	snapshot := make([]models.Alert, len(f.alerts))
	copy(snapshot, f.alerts)
	return snapshot
}

// Len returns the current number of feed entries
func (f *Feed) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.alerts)
}

// Capacity returns the configured feed bound
func (f *Feed) Capacity() int {
	return f.capacity
}

// PurgeStale removes alerts strictly older than the horizon and returns
// how many were dropped. Entries exactly at the boundary are retained.
// Callers decide cadence; the feed runs no timers of its own.
func (f *Feed) PurgeStale(horizon time.Duration) int {
	if horizon <= 0 {
		horizon = DefaultStaleHorizon
	}
	cutoff := time.Now().Add(-horizon)

	f.mu.Lock()
	defer f.mu.Unlock()

	kept := f.alerts[:0]
	for _, alert := range f.alerts {
		if alert.Timestamp.Before(cutoff) {
			continue
		}
		kept = append(kept, alert)
	}

	purged := len(f.alerts) - len(kept)
	f.alerts = kept

	if purged > 0 {
		f.logger.Info().
			Int("purged", purged).
			Dur("horizon", horizon).
			Msg("Stale alerts purged from feed")
	}
	return purged
}

// Restore replaces the feed contents wholesale, used when loading a
// persisted snapshot at startup. Entries are re-sorted newest first and
// capped at capacity.
func (f *Feed) Restore(alerts []models.Alert) {
	restored := make([]models.Alert, len(alerts))
	copy(restored, alerts)
	sort.SliceStable(restored, func(i, j int) bool {
		return restored[i].Timestamp.After(restored[j].Timestamp)
	})
	if len(restored) > f.capacity {
		restored = restored[:f.capacity]
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.alerts = restored

	f.logger.Info().Int("feed_size", len(restored)).Msg("Feed restored from snapshot")
}

// Subscribe registers a listener that receives each subsequently
// ingested alert exactly once, in ingestion order.
func (f *Feed) Subscribe() *Subscription {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextSubscriber++
	sub := &Subscription{
		id: f.nextSubscriber,
		ch: make(chan models.Alert, f.subscriberBuffer),
	}
	f.subscribers[sub.id] = sub.ch

	f.logger.Debug().Uint64("subscriber_id", sub.id).Msg("Feed subscriber registered")
	return sub
}

// Unsubscribe removes a listener and closes its channel. Safe to call
// for a subscription that was already dropped.
func (f *Feed) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if ch, ok := f.subscribers[sub.id]; ok {
		delete(f.subscribers, sub.id)
		close(ch)
		f.logger.Debug().Uint64("subscriber_id", sub.id).Msg("Feed subscriber removed")
	}
}

// removeLocked drops the entry with the given id, if present
func (f *Feed) removeLocked(id string) bool {
	for i, alert := range f.alerts {
		if alert.ID == id {
			f.alerts = append(f.alerts[:i], f.alerts[i+1:]...)
			return true
		}
	}
	return false
}

// notifyLocked pushes to every subscriber without blocking ingestion.
// A subscriber whose buffer is full is dropped, matching best-effort
// delivery to disconnected clients.
func (f *Feed) notifyLocked(alert models.Alert) {
	for id, ch := range f.subscribers {
		select {
		case ch <- alert:
		default:
			delete(f.subscribers, id)
			close(ch)
			f.logger.Warn().Uint64("subscriber_id", id).Msg("Slow feed subscriber dropped")
		}
	}
}
