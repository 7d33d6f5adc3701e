package feed

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitesafe-engine-go/internal/models"
)

func alert(id string, ts time.Time) models.Alert {
	return models.Alert{
		ID:         id,
		SourceType: models.SourceTypeRisk,
		SourceID:   id,
		Severity:   models.SeverityMedium,
		Title:      "Alert " + id,
		Timestamp:  ts,
	}
}

func TestIngestOrdersNewestFirst(t *testing.T) {
	f := NewFeed(10, 0)

	f.Ingest(alert("a", time.Now()))
	f.Ingest(alert("b", time.Now()))
	f.Ingest(alert("c", time.Now()))

	alerts := f.List()
	require.Len(t, alerts, 3)
	assert.Equal(t, "c", alerts[0].ID)
	assert.Equal(t, "b", alerts[1].ID)
	assert.Equal(t, "a", alerts[2].ID)
}

func TestIngestUpsertsByIDAndMovesToFront(t *testing.T) {
	f := NewFeed(10, 0)

	f.Ingest(alert("a", time.Now()))
	f.Ingest(alert("b", time.Now()))

	updated := alert("a", time.Now())
	updated.Title = "updated"
	f.Ingest(updated)

	alerts := f.List()
	require.Len(t, alerts, 2)
	assert.Equal(t, "a", alerts[0].ID)
	assert.Equal(t, "updated", alerts[0].Title)
	assert.Equal(t, "b", alerts[1].ID)
}

func TestCapacityEvictsOldest(t *testing.T) {
	f := NewFeed(50, 0)

	for i := 0; i < 51; i++ {
		f.Ingest(alert(fmt.Sprintf("alert-%d", i), time.Now()))
	}

	alerts := f.List()
	require.Len(t, alerts, 50)
	assert.Equal(t, "alert-50", alerts[0].ID)
	assert.Equal(t, "alert-1", alerts[49].ID)
	for _, a := range alerts {
		assert.NotEqual(t, "alert-0", a.ID)
	}
}

func TestCapacityNeverExceededUnderMixedIngest(t *testing.T) {
	f := NewFeed(5, 0)

	for i := 0; i < 100; i++ {
		f.Ingest(alert(fmt.Sprintf("alert-%d", i%8), time.Now()))
		assert.LessOrEqual(t, f.Len(), 5)
	}
}

func TestPurgeStaleRemovesOnlyStrictlyOlder(t *testing.T) {
	f := NewFeed(10, 0)
	now := time.Now()

	f.Ingest(alert("stale", now.Add(-25*time.Hour)))
	f.Ingest(alert("boundary", now.Add(-24*time.Hour+time.Minute)))
	f.Ingest(alert("fresh", now.Add(-time.Hour)))

	purged := f.PurgeStale(24 * time.Hour)

	assert.Equal(t, 1, purged)
	alerts := f.List()
	require.Len(t, alerts, 2)
	assert.Equal(t, "fresh", alerts[0].ID)
	assert.Equal(t, "boundary", alerts[1].ID)
}

func TestPurgeStaleDefaultHorizon(t *testing.T) {
	f := NewFeed(10, 0)

	f.Ingest(alert("old", time.Now().Add(-48*time.Hour)))
	f.Ingest(alert("new", time.Now()))

	assert.Equal(t, 1, f.PurgeStale(0))
	assert.Equal(t, 1, f.Len())
}

func TestListReturnsIndependentSnapshot(t *testing.T) {
	f := NewFeed(10, 0)
	f.Ingest(alert("a", time.Now()))

	snapshot := f.List()
	f.Ingest(alert("b", time.Now()))

	require.Len(t, snapshot, 1)
	assert.Equal(t, "a", snapshot[0].ID)
}

func TestSubscriberReceivesEachIngestInOrder(t *testing.T) {
	f := NewFeed(10, 8)
	sub := f.Subscribe()
	defer f.Unsubscribe(sub)

	f.Ingest(alert("a", time.Now()))
	f.Ingest(alert("b", time.Now()))
	f.Ingest(alert("a", time.Now())) // upsert still notifies

	var got []string
	for i := 0; i < 3; i++ {
		select {
		case a := <-sub.Alerts():
			got = append(got, a.ID)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for subscriber push")
		}
	}
	assert.Equal(t, []string{"a", "b", "a"}, got)
}

func TestSlowSubscriberIsDroppedWithoutBlockingIngest(t *testing.T) {
	f := NewFeed(10, 1)
	sub := f.Subscribe()

	done := make(chan struct{})
	go func() {
		defer close(done)
		// buffer of 1: the second ingest overflows and drops the subscriber
		f.Ingest(alert("a", time.Now()))
		f.Ingest(alert("b", time.Now()))
		f.Ingest(alert("c", time.Now()))
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("ingest blocked on a slow subscriber")
	}

	// drain: one buffered alert, then the closed channel
	a, ok := <-sub.Alerts()
	require.True(t, ok)
	assert.Equal(t, "a", a.ID)

	for {
		if _, open := <-sub.Alerts(); !open {
			return
		}
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	f := NewFeed(10, 4)
	sub := f.Subscribe()

	f.Unsubscribe(sub)
	_, open := <-sub.Alerts()
	assert.False(t, open)

	// double unsubscribe is a no-op
	f.Unsubscribe(sub)
}

func TestRestoreSortsAndCaps(t *testing.T) {
	f := NewFeed(2, 0)
	now := time.Now()

	f.Restore([]models.Alert{
		alert("oldest", now.Add(-3*time.Hour)),
		alert("newest", now),
		alert("middle", now.Add(-time.Hour)),
	})

	alerts := f.List()
	require.Len(t, alerts, 2)
	assert.Equal(t, "newest", alerts[0].ID)
	assert.Equal(t, "middle", alerts[1].ID)
}

func TestConcurrentIngestPreservesInvariants(t *testing.T) {
	f := NewFeed(20, 0)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				f.Ingest(alert(fmt.Sprintf("g%d-i%d", g, i%30), time.Now()))
			}
		}(g)
	}
	wg.Wait()

	alerts := f.List()
	assert.LessOrEqual(t, len(alerts), 20)

	seen := make(map[string]struct{}, len(alerts))
	for _, a := range alerts {
		_, dup := seen[a.ID]
		assert.False(t, dup, "duplicate feed entry %s", a.ID)
		seen[a.ID] = struct{}{}
	}
}
