package models

import (
	"time"
)

// ViolationClass represents a PPE violation label emitted by the detector
type ViolationClass string

const (
	ViolationNoHelmet   ViolationClass = "no_helmet"
	ViolationNoVest     ViolationClass = "no_vest"
	ViolationNoGlove    ViolationClass = "no_glove"
	ViolationNoMask     ViolationClass = "no_mask"
	ViolationNoFootwear ViolationClass = "no_shoes"
)

// ViolationClasses is the fixed vocabulary checked against detector output
var ViolationClasses = map[ViolationClass]struct{}{
	ViolationNoHelmet:   {},
	ViolationNoVest:     {},
	ViolationNoGlove:    {},
	ViolationNoMask:     {},
	ViolationNoFootwear: {},
}

// BoundingBox is an xyxy pixel-space box from the detector
type BoundingBox struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// Detection is a single object detection returned by the external detector
type Detection struct {
	ClassName  string      `json:"class_name"`
	Confidence float64     `json:"confidence"`
	BBox       BoundingBox `json:"bbox"`
	AssetName  string      `json:"asset_name,omitempty"`
}

// ViolationAssessment is the immutable result of classifying one asset's
// detections against the PPE vocabulary. Empty ViolatingClasses means the
// asset is compliant.
type ViolationAssessment struct {
	AssetID          string    `json:"asset_id"`
	ViolatingClasses []string  `json:"violating_classes"`
	SiteLocation     string    `json:"site_location,omitempty"`
	ComputedAt       time.Time `json:"computed_at"`
}

// Compliant reports whether no violating classes were found
func (v ViolationAssessment) Compliant() bool {
	return len(v.ViolatingClasses) == 0
}

// FileAssessment pairs one file of a batch with its violation set
type FileAssessment struct {
	FileName         string   `json:"file_name"`
	ViolatingClasses []string `json:"violating_classes"`
}

// BatchAssessment aggregates per-file violation sets across one upload
// batch, plus the union for summary reporting.
type BatchAssessment struct {
	BatchID      string           `json:"batch_id"`
	Files        []FileAssessment `json:"files"`
	Union        []string         `json:"union"`
	CheckedFiles int              `json:"checked_files"`
	SiteLocation string           `json:"site_location,omitempty"`
	ComputedAt   time.Time        `json:"computed_at"`
}
