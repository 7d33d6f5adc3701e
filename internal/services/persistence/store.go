package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"sitesafe-engine-go/internal/models"
)

const snapshotKey = "feed/snapshot"

// Store persists feed snapshots in an embedded Badger database. It is a
// best-effort durability layer: the in-memory feed stays authoritative
// and a failed write never rolls back an ingestion.
type Store struct {
	db     *badger.DB
	logger zerolog.Logger
}

// NewStore opens (or creates) the snapshot database at dir
func NewStore(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot store: %w", err)
	}

	logger := log.With().Str("service", "persistence").Logger()
	logger.Info().Str("dir", dir).Msg("Snapshot store opened")

	return &Store{db: db, logger: logger}, nil
}

// Save overwrites the persisted feed snapshot
func (s *Store) Save(snapshot models.FeedSnapshot) error {
	if snapshot.SavedAt.IsZero() {
		snapshot.SavedAt = time.Now().UTC()
	}

	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode feed snapshot: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(snapshotKey), payload)
	})
	if err != nil {
		return fmt.Errorf("failed to write feed snapshot: %w", err)
	}

	s.logger.Debug().Int("alerts", len(snapshot.Alerts)).Msg("Feed snapshot saved")
	return nil
}

// Load returns the persisted feed snapshot. A missing snapshot is not an
// error; it yields an empty feed.
func (s *Store) Load() (models.FeedSnapshot, error) {
	var snapshot models.FeedSnapshot

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(snapshotKey))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &snapshot)
		})
	})
	if err != nil {
		return models.FeedSnapshot{}, fmt.Errorf("failed to read feed snapshot: %w", err)
	}

	return snapshot, nil
}

// Shutdown closes the underlying database
func (s *Store) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("Closing snapshot store")
	return s.db.Close()
}
