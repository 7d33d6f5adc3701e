package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitesafe-engine-go/internal/models"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	defer store.Shutdown(context.Background())

	score := 72
	snapshot := models.FeedSnapshot{
		Alerts: []models.Alert{
			{
				ID:         "risk-w-1",
				SourceType: models.SourceTypeRisk,
				SourceID:   "w-1",
				Severity:   models.SeverityHigh,
				Label:      "warning",
				Title:      "Warning Risk: Sam",
				RiskScore:  &score,
				Timestamp:  time.Now().UTC().Truncate(time.Millisecond),
			},
		},
	}

	require.NoError(t, store.Save(snapshot))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Len(t, loaded.Alerts, 1)
	assert.Equal(t, snapshot.Alerts[0].ID, loaded.Alerts[0].ID)
	assert.Equal(t, snapshot.Alerts[0].Title, loaded.Alerts[0].Title)
	require.NotNil(t, loaded.Alerts[0].RiskScore)
	assert.Equal(t, 72, *loaded.Alerts[0].RiskScore)
	assert.False(t, loaded.SavedAt.IsZero())
}

func TestLoadWithoutSnapshotIsEmpty(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	defer store.Shutdown(context.Background())

	snapshot, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, snapshot.Alerts)
}

func TestSaveOverwritesPriorSnapshot(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	defer store.Shutdown(context.Background())

	require.NoError(t, store.Save(models.FeedSnapshot{Alerts: []models.Alert{{ID: "a"}}}))
	require.NoError(t, store.Save(models.FeedSnapshot{Alerts: []models.Alert{{ID: "b"}, {ID: "c"}}}))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Len(t, loaded.Alerts, 2)
	assert.Equal(t, "b", loaded.Alerts[0].ID)
}
