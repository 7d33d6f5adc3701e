package models

import (
	"time"
)

// SourceType identifies which assessment kind produced an alert
type SourceType string

const (
	SourceTypeRisk      SourceType = "risk"
	SourceTypeViolation SourceType = "violation"
)

// Severity is the unified display severity of a feed alert
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Alert is the canonical feed-resident record merging either a risk or a
// violation assessment. Its ID is a pure function of (SourceType, SourceID)
// so re-ingesting the same underlying event upserts instead of duplicating.
type Alert struct {
	ID                 string     `json:"id"`
	SourceType         SourceType `json:"source_type"`
	SourceID           string     `json:"source_id"`
	Severity           Severity   `json:"severity"`
	// Label keeps the finer-grained origin: ok/watch/warning/critical
	// for risk alerts, violation/clear for detection alerts.
	Label              string     `json:"label"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	Reasons            []string   `json:"reasons,omitempty"`
	RecommendedActions []string   `json:"recommended_actions,omitempty"`
	WorkerID           string     `json:"worker_id,omitempty"`
	RiskScore          *int       `json:"risk_score,omitempty"`
	SiteLocation       string     `json:"site_location,omitempty"`
	Timestamp          time.Time  `json:"timestamp"`
}

// FeedSnapshot is the persisted point-in-time view of the alert feed
type FeedSnapshot struct {
	Alerts  []Alert   `json:"alerts"`
	SavedAt time.Time `json:"saved_at"`
}

// MessagePublisher interface for publishing alerts to a message broker
type MessagePublisher interface {
	Publish(subject string, data interface{}) error
}

// SnapshotStore interface for best-effort feed durability. Never the
// system of record for a single ingestion's correctness.
type SnapshotStore interface {
	Save(snapshot FeedSnapshot) error
	Load() (FeedSnapshot, error)
}

// AlertBroadcaster interface for pushing alerts to live subscribers
type AlertBroadcaster interface {
	BroadcastAlert(alert Alert)
}
