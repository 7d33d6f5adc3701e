package alerting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitesafe-engine-go/internal/models"
)

func TestFromRiskBuildsCriticalAlert(t *testing.T) {
	f := NewFactory()

	alert, err := f.FromRisk(models.RiskAssessment{
		WorkerID:           "w-42",
		WorkerName:         "Jordan Lee",
		Score:              91,
		AlertLevel:         models.AlertLevelCritical,
		Reasons:            []string{"Hours worked (14.0h) contributes 30 pts"},
		RecommendedActions: []string{"Stop work immediately and initiate medical check."},
		ComputedAt:         time.Now(),
	})
	require.NoError(t, err)

	assert.Equal(t, "risk-w-42", alert.ID)
	assert.Equal(t, models.SourceTypeRisk, alert.SourceType)
	assert.Equal(t, models.SeverityHigh, alert.Severity)
	assert.Equal(t, "critical", alert.Label)
	assert.Equal(t, "Critical Risk: Jordan Lee", alert.Title)
	assert.Equal(t, "Hours worked (14.0h) contributes 30 pts", alert.Description)
	require.NotNil(t, alert.RiskScore)
	assert.Equal(t, 91, *alert.RiskScore)
}

func TestFromRiskFallbackDescription(t *testing.T) {
	f := NewFactory()

	alert, err := f.FromRisk(models.RiskAssessment{
		WorkerID:   "w-7",
		Score:      12,
		AlertLevel: models.AlertLevelOK,
	})
	require.NoError(t, err)

	assert.Equal(t, "Risk score: 12/100", alert.Description)
	assert.Equal(t, models.SeverityLow, alert.Severity)
	// worker id stands in for a missing name
	assert.Equal(t, "OK Risk: w-7", alert.Title)
}

func TestFromRiskSeverityMapping(t *testing.T) {
	cases := map[models.AlertLevel]models.Severity{
		models.AlertLevelOK:       models.SeverityLow,
		models.AlertLevelWatch:    models.SeverityMedium,
		models.AlertLevelWarning:  models.SeverityHigh,
		models.AlertLevelCritical: models.SeverityHigh,
	}

	f := NewFactory()
	for level, want := range cases {
		alert, err := f.FromRisk(models.RiskAssessment{WorkerID: "w-1", AlertLevel: level})
		require.NoError(t, err)
		assert.Equal(t, want, alert.Severity, "level %s", level)
	}
}

func TestFromRiskRejectsMissingWorkerID(t *testing.T) {
	f := NewFactory()

	_, err := f.FromRisk(models.RiskAssessment{WorkerName: "anonymous"})
	require.Error(t, err)
}

func TestFromViolationBuildsViolationAlert(t *testing.T) {
	f := NewFactory()

	alert, err := f.FromViolation(models.ViolationAssessment{
		AssetID:          "img1",
		ViolatingClasses: []string{"no_helmet", "no_vest"},
	})
	require.NoError(t, err)

	assert.Equal(t, "ppe-img1", alert.ID)
	assert.Equal(t, models.SeverityHigh, alert.Severity)
	assert.Equal(t, "Safety Violation", alert.Title)
	assert.Contains(t, alert.Description, "no_helmet, no_vest")
}

func TestFromViolationCompliantIsAllClear(t *testing.T) {
	f := NewFactory()

	alert, err := f.FromViolation(models.ViolationAssessment{AssetID: "img2"})
	require.NoError(t, err)

	assert.Equal(t, models.SeverityLow, alert.Severity)
	assert.Equal(t, "All Clear", alert.Title)
	assert.Equal(t, "clear", alert.Label)
}

func TestFromBatchListsPerFileViolations(t *testing.T) {
	f := NewFactory()

	alert, err := f.FromBatch(models.BatchAssessment{
		BatchID: "upload-9",
		Files: []models.FileAssessment{
			{FileName: "a.jpg", ViolatingClasses: []string{"no_helmet"}},
			{FileName: "b.jpg"},
			{FileName: "c.jpg", ViolatingClasses: []string{"no_vest", "no_mask"}},
		},
		Union:        []string{"no_helmet", "no_mask", "no_vest"},
		CheckedFiles: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, "ppe-upload-9", alert.ID)
	assert.Equal(t, "Safety Violation", alert.Title)
	assert.Equal(t, "File 'a.jpg' → no_helmet | File 'c.jpg' → no_vest, no_mask", alert.Description)
}

func TestFromBatchCompliantSummary(t *testing.T) {
	f := NewFactory()

	alert, err := f.FromBatch(models.BatchAssessment{BatchID: "upload-10", CheckedFiles: 4})
	require.NoError(t, err)

	assert.Equal(t, "All Clear", alert.Title)
	assert.Equal(t, "Checked 4 image(s). All PPE OK.", alert.Description)
}

func TestAlertIDIsDeterministic(t *testing.T) {
	assert.Equal(t, AlertID(models.SourceTypeRisk, "w-1"), AlertID(models.SourceTypeRisk, "w-1"))
	assert.Equal(t, "risk-w-1", AlertID(models.SourceTypeRisk, "w-1"))
	assert.Equal(t, "ppe-u-1", AlertID(models.SourceTypeViolation, "u-1"))
}
