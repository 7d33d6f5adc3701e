package models

import (
	"time"
)

// AlertLevel represents the ordinal classification of a risk score
type AlertLevel string

const (
	AlertLevelOK       AlertLevel = "ok"
	AlertLevelWatch    AlertLevel = "watch"
	AlertLevelWarning  AlertLevel = "warning"
	AlertLevelCritical AlertLevel = "critical"
)

// Vitals holds optional physiological readings for a worker.
// Zero values mean "not measured" and contribute no risk points.
type Vitals struct {
	HeartRateBPM float64 `json:"heart_rate_bpm,omitempty"`
	TemperatureC float64 `json:"temperature_c,omitempty"`
	SystolicBP   float64 `json:"systolic_bp,omitempty"`
	DiastolicBP  float64 `json:"diastolic_bp,omitempty"`
}

// WorkerSnapshot is the ephemeral per-shift input for risk scoring.
// It is owned by the caller and never persisted by the engine.
type WorkerSnapshot struct {
	WorkerID         string    `json:"worker_id"`
	WorkerName       string    `json:"worker_name"`
	Age              float64   `json:"age"`
	TotalHoursWorked float64   `json:"total_hours_worked"`
	// RestMinutes24h is nil when unreported; scoring assumes 480 (8h).
	RestMinutes24h   *float64  `json:"rest_minutes_24h,omitempty"`
	HealthConditions []string  `json:"health_conditions,omitempty"`
	Medications      string    `json:"medications,omitempty"`
	Vitals           *Vitals   `json:"vitals,omitempty"`
	SiteLocation     string    `json:"site_location,omitempty"`
	SupervisorName   string    `json:"supervisor_name,omitempty"`
	Timestamp        time.Time `json:"timestamp"`
}

// RiskAssessment is the immutable result of scoring one worker snapshot
type RiskAssessment struct {
	WorkerID           string     `json:"worker_id"`
	WorkerName         string     `json:"worker_name"`
	Score              int        `json:"score"`
	AlertLevel         AlertLevel `json:"alert_level"`
	Reasons            []string   `json:"reasons"`
	RecommendedActions []string   `json:"recommended_actions"`
	SiteLocation       string     `json:"site_location,omitempty"`
	ComputedAt         time.Time  `json:"computed_at"`
}
