package alerting

import (
	"fmt"
	"strings"
	"time"

	"sitesafe-engine-go/internal/models"
)

// Title casing for risk alert levels
var levelTitles = map[models.AlertLevel]string{
	models.AlertLevelOK:       "OK",
	models.AlertLevelWatch:    "Watch",
	models.AlertLevelWarning:  "Warning",
	models.AlertLevelCritical: "Critical",
}

// Factory normalizes assessments into canonical feed alerts. Alert IDs
// are a pure function of (source type, source id), so repeated calls for
// the same underlying event are idempotent at the identity level.
type Factory struct{}

// NewFactory creates a new alert factory
func NewFactory() *Factory {
	return &Factory{}
}

// AlertID derives the stable feed identity for a source
func AlertID(sourceType models.SourceType, sourceID string) string {
	if sourceType == models.SourceTypeViolation {
		return "ppe-" + sourceID
	}
	return "risk-" + sourceID
}

// FromRisk converts a risk assessment into a feed alert
func (f *Factory) FromRisk(assessment models.RiskAssessment) (models.Alert, error) {
	if assessment.WorkerID == "" {
		return models.Alert{}, fmt.Errorf("risk assessment missing worker id")
	}

	name := assessment.WorkerName
	if name == "" {
		name = assessment.WorkerID
	}

	description := strings.Join(assessment.Reasons, " | ")
	if description == "" {
		description = fmt.Sprintf("Risk score: %d/100", assessment.Score)
	}

	score := assessment.Score
	return models.Alert{
		ID:                 AlertID(models.SourceTypeRisk, assessment.WorkerID),
		SourceType:         models.SourceTypeRisk,
		SourceID:           assessment.WorkerID,
		Severity:           severityForLevel(assessment.AlertLevel),
		Label:              string(assessment.AlertLevel),
		Title:              fmt.Sprintf("%s Risk: %s", levelTitles[assessment.AlertLevel], name),
		Description:        description,
		Reasons:            assessment.Reasons,
		RecommendedActions: assessment.RecommendedActions,
		WorkerID:           assessment.WorkerID,
		RiskScore:          &score,
		SiteLocation:       assessment.SiteLocation,
		Timestamp:          alertTime(assessment.ComputedAt),
	}, nil
}

// FromViolation converts a single-asset violation assessment into a feed
// alert.
func (f *Factory) FromViolation(assessment models.ViolationAssessment) (models.Alert, error) {
	if assessment.AssetID == "" {
		return models.Alert{}, fmt.Errorf("violation assessment missing asset id")
	}

	alert := models.Alert{
		ID:           AlertID(models.SourceTypeViolation, assessment.AssetID),
		SourceType:   models.SourceTypeViolation,
		SourceID:     assessment.AssetID,
		SiteLocation: assessment.SiteLocation,
		Timestamp:    alertTime(assessment.ComputedAt),
	}

	if assessment.Compliant() {
		alert.Severity = models.SeverityLow
		alert.Label = "clear"
		alert.Title = "All Clear"
		alert.Description = fmt.Sprintf("Checked asset '%s'. All PPE OK.", assessment.AssetID)
		return alert, nil
	}

	alert.Severity = models.SeverityHigh
	alert.Label = "violation"
	alert.Title = "Safety Violation"
	alert.Description = fmt.Sprintf("Asset '%s' → %s", assessment.AssetID, strings.Join(assessment.ViolatingClasses, ", "))
	alert.Reasons = violationReasons(assessment.ViolatingClasses)
	return alert, nil
}

// FromBatch converts a multi-file batch assessment into a feed alert,
// listing violating classes per file the way the upload feed reports
// them.
func (f *Factory) FromBatch(assessment models.BatchAssessment) (models.Alert, error) {
	if assessment.BatchID == "" {
		return models.Alert{}, fmt.Errorf("batch assessment missing batch id")
	}

	alert := models.Alert{
		ID:           AlertID(models.SourceTypeViolation, assessment.BatchID),
		SourceType:   models.SourceTypeViolation,
		SourceID:     assessment.BatchID,
		SiteLocation: assessment.SiteLocation,
		Timestamp:    alertTime(assessment.ComputedAt),
	}

	lines := make([]string, 0, len(assessment.Files))
	for _, file := range assessment.Files {
		if len(file.ViolatingClasses) == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("File '%s' → %s", file.FileName, strings.Join(file.ViolatingClasses, ", ")))
	}

	if len(lines) == 0 {
		alert.Severity = models.SeverityLow
		alert.Label = "clear"
		alert.Title = "All Clear"
		alert.Description = fmt.Sprintf("Checked %d image(s). All PPE OK.", assessment.CheckedFiles)
		return alert, nil
	}

	alert.Severity = models.SeverityHigh
	alert.Label = "violation"
	alert.Title = "Safety Violation"
	alert.Description = strings.Join(lines, " | ")
	alert.Reasons = violationReasons(assessment.Union)
	return alert, nil
}

func severityForLevel(level models.AlertLevel) models.Severity {
	switch level {
	case models.AlertLevelCritical, models.AlertLevelWarning:
		return models.SeverityHigh
	case models.AlertLevelWatch:
		return models.SeverityMedium
	default:
		return models.SeverityLow
	}
}

func violationReasons(classes []string) []string {
	reasons := make([]string, 0, len(classes))
	for _, class := range classes {
		reasons = append(reasons, "Detected "+class)
	}
	return reasons
}

func alertTime(computedAt time.Time) time.Time {
	if computedAt.IsZero() {
		return time.Now().UTC()
	}
	return computedAt
}
