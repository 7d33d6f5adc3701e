package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitesafe-engine-go/internal/models"
)

func det(class string, conf float64) models.Detection {
	return models.Detection{ClassName: class, Confidence: conf}
}

func TestClassifyRequiresAssetID(t *testing.T) {
	c := NewClassifier()

	_, err := c.Classify("", nil)
	require.Error(t, err)
}

func TestClassifyFindsViolations(t *testing.T) {
	c := NewClassifier()

	assessment, err := c.Classify("img1", []models.Detection{
		det("no_helmet", 0.91),
		det("person", 0.99),
		det("no_vest", 0.84),
	})
	require.NoError(t, err)

	assert.Equal(t, "img1", assessment.AssetID)
	assert.Equal(t, []string{"no_helmet", "no_vest"}, assessment.ViolatingClasses)
	assert.False(t, assessment.Compliant())
}

func TestClassifyEmptyDetectionsIsCompliant(t *testing.T) {
	c := NewClassifier()

	assessment, err := c.Classify("img2", nil)
	require.NoError(t, err)

	assert.True(t, assessment.Compliant())
	assert.Empty(t, assessment.ViolatingClasses)
}

func TestClassifyDeduplicatesLabels(t *testing.T) {
	c := NewClassifier()

	assessment, err := c.Classify("img3", []models.Detection{
		det("no_helmet", 0.9),
		det("no_helmet", 0.7),
		det("no_mask", 0.8),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"no_helmet", "no_mask"}, assessment.ViolatingClasses)
}

func TestClassifyIgnoresUnknownLabels(t *testing.T) {
	c := NewClassifier()

	assessment, err := c.Classify("img4", []models.Detection{
		det("helmet", 0.95),
		det("vest", 0.93),
		det("excavator", 0.88),
	})
	require.NoError(t, err)

	assert.True(t, assessment.Compliant())
}

func TestClassifyBatchUnionAndPerFileSets(t *testing.T) {
	c := NewClassifier()

	batch, err := c.ClassifyBatch("upload-1", []FileDetections{
		{FileName: "a.jpg", Detections: []models.Detection{det("no_helmet", 0.9)}},
		{FileName: "b.jpg", Detections: []models.Detection{det("no_vest", 0.8), det("no_helmet", 0.7)}},
		{FileName: "c.jpg", Detections: nil},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, batch.CheckedFiles)
	require.Len(t, batch.Files, 3)
	assert.Equal(t, []string{"no_helmet"}, batch.Files[0].ViolatingClasses)
	assert.Equal(t, []string{"no_vest", "no_helmet"}, batch.Files[1].ViolatingClasses)
	assert.Empty(t, batch.Files[2].ViolatingClasses)
	assert.Equal(t, []string{"no_helmet", "no_vest"}, batch.Union)
}

func TestClassifyBatchRequiresBatchID(t *testing.T) {
	c := NewClassifier()

	_, err := c.ClassifyBatch("", nil)
	require.Error(t, err)
}

func TestClassifyBatchEmptyIsCompliant(t *testing.T) {
	c := NewClassifier()

	batch, err := c.ClassifyBatch("upload-2", nil)
	require.NoError(t, err)

	assert.Zero(t, batch.CheckedFiles)
	assert.Empty(t, batch.Union)
}
