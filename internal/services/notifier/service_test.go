package notifier

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitesafe-engine-go/internal/config"
	"sitesafe-engine-go/internal/models"
	"sitesafe-engine-go/internal/services/feed"
)

type fakePublisher struct {
	mu       sync.Mutex
	subjects []string
	alerts   []models.Alert
	fail     bool
}

func (p *fakePublisher) Publish(subject string, data interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail {
		return fmt.Errorf("broker unavailable")
	}
	p.subjects = append(p.subjects, subject)
	p.alerts = append(p.alerts, data.(models.Alert))
	return nil
}

func (p *fakePublisher) published() []models.Alert {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]models.Alert(nil), p.alerts...)
}

type fakeStore struct {
	mu      sync.Mutex
	saved   []models.FeedSnapshot
	loaded  models.FeedSnapshot
	saveErr error
	loadErr error
}

func (s *fakeStore) Save(snapshot models.FeedSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = append(s.saved, snapshot)
	return nil
}

func (s *fakeStore) Load() (models.FeedSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded, s.loadErr
}

func (s *fakeStore) saveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.saved)
}

type fakeHub struct {
	mu     sync.Mutex
	alerts []models.Alert
}

func (h *fakeHub) BroadcastAlert(alert models.Alert) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.alerts = append(h.alerts, alert)
}

func (h *fakeHub) broadcasted() []models.Alert {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]models.Alert(nil), h.alerts...)
}

func testConfig() *config.Config {
	return &config.Config{
		AlertsSubject:    "alerts.feed",
		FeedStaleHorizon: 24 * time.Hour,
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestDispatchForwardsToAllChannels(t *testing.T) {
	f := feed.NewFeed(10, 8)
	publisher := &fakePublisher{}
	store := &fakeStore{}
	hub := &fakeHub{}

	svc := NewService(testConfig(), f, publisher, store, hub)
	svc.Start()
	defer svc.Shutdown(context.Background())

	f.Ingest(models.Alert{ID: "risk-w-1", Timestamp: time.Now()})

	waitFor(t, func() bool { return len(publisher.published()) == 1 })
	waitFor(t, func() bool { return len(hub.broadcasted()) == 1 })
	waitFor(t, func() bool { return store.saveCount() >= 1 })

	assert.Equal(t, "risk-w-1", publisher.published()[0].ID)
	assert.Equal(t, "risk-w-1", hub.broadcasted()[0].ID)
}

func TestPublishFailureDoesNotStopDispatch(t *testing.T) {
	f := feed.NewFeed(10, 8)
	publisher := &fakePublisher{fail: true}
	hub := &fakeHub{}

	svc := NewService(testConfig(), f, publisher, nil, hub)
	svc.Start()
	defer svc.Shutdown(context.Background())

	f.Ingest(models.Alert{ID: "a", Timestamp: time.Now()})
	f.Ingest(models.Alert{ID: "b", Timestamp: time.Now()})

	waitFor(t, func() bool { return len(hub.broadcasted()) == 2 })
}

func TestSaveFailureLeavesFeedAuthoritative(t *testing.T) {
	f := feed.NewFeed(10, 8)
	store := &fakeStore{saveErr: fmt.Errorf("disk full")}

	svc := NewService(testConfig(), f, nil, store, nil)
	svc.Start()
	defer svc.Shutdown(context.Background())

	f.Ingest(models.Alert{ID: "a", Timestamp: time.Now()})

	waitFor(t, func() bool { return f.Len() == 1 })
	snapshot := svc.Reconcile(context.Background())
	require.Len(t, snapshot, 1)
}

func TestReconcilePurgesAndReturnsSnapshot(t *testing.T) {
	f := feed.NewFeed(10, 8)
	store := &fakeStore{}

	svc := NewService(testConfig(), f, nil, store, nil)

	f.Ingest(models.Alert{ID: "stale", Timestamp: time.Now().Add(-48 * time.Hour)})
	f.Ingest(models.Alert{ID: "fresh", Timestamp: time.Now()})

	snapshot := svc.Reconcile(context.Background())

	require.Len(t, snapshot, 1)
	assert.Equal(t, "fresh", snapshot[0].ID)
	assert.GreaterOrEqual(t, store.saveCount(), 1)
}

func TestRestoreLoadsPersistedSnapshot(t *testing.T) {
	f := feed.NewFeed(10, 8)
	store := &fakeStore{
		loaded: models.FeedSnapshot{
			Alerts: []models.Alert{
				{ID: "kept", Timestamp: time.Now().Add(-time.Hour)},
				{ID: "expired", Timestamp: time.Now().Add(-48 * time.Hour)},
			},
		},
	}

	svc := NewService(testConfig(), f, nil, store, nil)
	svc.Restore()

	alerts := f.List()
	require.Len(t, alerts, 1)
	assert.Equal(t, "kept", alerts[0].ID)
}

func TestRestoreToleratesLoadFailure(t *testing.T) {
	f := feed.NewFeed(10, 8)
	store := &fakeStore{loadErr: fmt.Errorf("corrupt store")}

	svc := NewService(testConfig(), f, nil, store, nil)
	svc.Restore()

	assert.Zero(t, f.Len())
}

func TestShutdownDrainsDispatchLoop(t *testing.T) {
	f := feed.NewFeed(10, 8)
	hub := &fakeHub{}

	svc := NewService(testConfig(), f, nil, nil, hub)
	svc.Start()

	f.Ingest(models.Alert{ID: "a", Timestamp: time.Now()})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, svc.Shutdown(ctx))
}
