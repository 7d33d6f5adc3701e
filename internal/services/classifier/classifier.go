package classifier

import (
	"fmt"
	"sort"
	"time"

	"sitesafe-engine-go/internal/models"
)

// Classifier checks detector output against the fixed PPE violation
// vocabulary. It is stateless and safe for concurrent use.
type Classifier struct{}

// NewClassifier creates a new detection classifier
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify converts the detections for one asset into a violation
// assessment. An empty detection list (detector unavailable or nothing
// found) yields a compliant assessment, never an error.
func (c *Classifier) Classify(assetID string, detections []models.Detection) (models.ViolationAssessment, error) {
	if assetID == "" {
		return models.ViolationAssessment{}, fmt.Errorf("asset id is required")
	}

	return models.ViolationAssessment{
		AssetID:          assetID,
		ViolatingClasses: violatingClasses(detections),
		ComputedAt:       time.Now().UTC(),
	}, nil
}

// FileDetections pairs one file of an upload batch with its detections
type FileDetections struct {
	FileName   string
	Detections []models.Detection
}

// ClassifyBatch classifies every file of an upload batch and exposes the
// union of violating classes for summary reporting. Files with no
// detections count as checked and compliant.
func (c *Classifier) ClassifyBatch(batchID string, files []FileDetections) (models.BatchAssessment, error) {
	if batchID == "" {
		return models.BatchAssessment{}, fmt.Errorf("batch id is required")
	}

	assessment := models.BatchAssessment{
		BatchID:      batchID,
		Files:        make([]models.FileAssessment, 0, len(files)),
		CheckedFiles: len(files),
		ComputedAt:   time.Now().UTC(),
	}

	union := make(map[string]struct{})
	for _, file := range files {
		classes := violatingClasses(file.Detections)
		for _, class := range classes {
			union[class] = struct{}{}
		}
		assessment.Files = append(assessment.Files, models.FileAssessment{
			FileName:         file.FileName,
			ViolatingClasses: classes,
		})
	}

	assessment.Union = sortedKeys(union)
	return assessment, nil
}

// violatingClasses returns the distinct violating labels in detection
// order of first appearance.
func violatingClasses(detections []models.Detection) []string {
	seen := make(map[string]struct{})
	classes := make([]string, 0)

	for _, det := range detections {
		if _, ok := models.ViolationClasses[models.ViolationClass(det.ClassName)]; !ok {
			continue
		}
		if _, dup := seen[det.ClassName]; dup {
			continue
		}
		seen[det.ClassName] = struct{}{}
		classes = append(classes, det.ClassName)
	}

	return classes
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
