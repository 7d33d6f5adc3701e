package risk

import (
	"fmt"
	"math"
	"strings"
	"time"

	"sitesafe-engine-go/internal/models"
)

// Component point budgets and thresholds for the continuous scoring
// algorithm.
const (
	ageBandLow   = 30.0
	ageBandHigh  = 70.0
	ageMaxPoints = 30.0

	hoursRampStart = 8.0
	hoursRampEnd   = 12.0
	hoursMaxPoints = 30.0

	restShortMinutes   = 360.0
	restReducedMinutes = 480.0
	defaultRestMinutes = 480.0

	vitalsMaxPoints = 20.0

	multiplierStep = 0.2
	medicationsAdd = 0.1
	multiplierCap  = 1.6
)

// Calculator computes risk scores from worker snapshots. It is stateless
// and safe for concurrent use.
type Calculator struct{}

// NewCalculator creates a new risk calculator
func NewCalculator() *Calculator {
	return &Calculator{}
}

// Score computes a RiskAssessment for one worker snapshot. Missing
// optional numeric inputs default to neutral values and never fail;
// only a missing worker id is rejected.
func (c *Calculator) Score(snapshot models.WorkerSnapshot) (models.RiskAssessment, error) {
	if snapshot.WorkerID == "" {
		return models.RiskAssessment{}, fmt.Errorf("worker id is required")
	}

	ageScore := ageComponent(snapshot.Age)
	hoursScore := hoursComponent(snapshot.TotalHoursWorked)

	restMinutes := defaultRestMinutes
	if snapshot.RestMinutes24h != nil {
		restMinutes = *snapshot.RestMinutes24h
	}
	restScore := restComponent(restMinutes)
	vitalsScore := vitalsComponent(snapshot.Vitals)

	raw := clamp(ageScore+hoursScore+restScore+vitalsScore, 0, 100)

	conditionCount := countConditions(snapshot.HealthConditions)
	hasMedications := strings.TrimSpace(snapshot.Medications) != ""
	multiplier := healthMultiplier(conditionCount, hasMedications)

	// Single rounding point: the multiplier is applied to the un-rounded
	// raw sum and math.Round runs exactly once on the product.
	score := int(clamp(math.Round(raw*multiplier), 0, 100))
	level := levelForScore(score)

	return models.RiskAssessment{
		WorkerID:           snapshot.WorkerID,
		WorkerName:         snapshot.WorkerName,
		Score:              score,
		AlertLevel:         level,
		Reasons:            buildReasons(snapshot, ageScore, hoursScore, restScore, vitalsScore, conditionCount, hasMedications, multiplier),
		RecommendedActions: actionsForLevel(level),
		SiteLocation:       snapshot.SiteLocation,
		ComputedAt:         time.Now().UTC(),
	}, nil
}

// ageComponent rises linearly from 0 at the lower band edge to the full
// 30 points at the upper edge, clamped either side.
func ageComponent(age float64) float64 {
	points := (age - ageBandLow) / (ageBandHigh - ageBandLow) * ageMaxPoints
	return clamp(points, 0, ageMaxPoints)
}

// hoursComponent is 0 up to 8h, ramps linearly to 30 at 12h and stays
// capped beyond.
func hoursComponent(hours float64) float64 {
	if hours <= hoursRampStart {
		return 0
	}
	points := (hours - hoursRampStart) / (hoursRampEnd - hoursRampStart) * hoursMaxPoints
	return clamp(points, 0, hoursMaxPoints)
}

func restComponent(restMinutes float64) float64 {
	switch {
	case restMinutes < restShortMinutes:
		return 20
	case restMinutes < restReducedMinutes:
		return 10
	default:
		return 0
	}
}

// vitalsComponent is additive per abnormal reading, then clamped to 20.
// Absent vitals contribute nothing.
func vitalsComponent(vitals *models.Vitals) float64 {
	if vitals == nil {
		return 0
	}

	points := 0.0
	switch {
	case vitals.HeartRateBPM > 120:
		points += 15
	case vitals.HeartRateBPM > 100:
		points += 10
	}
	switch {
	case vitals.TemperatureC > 38.5:
		points += 12
	case vitals.TemperatureC > 37.5:
		points += 7
	}
	switch {
	case vitals.SystolicBP > 160 || vitals.DiastolicBP > 100:
		points += 12
	case vitals.SystolicBP > 140 || vitals.DiastolicBP > 90:
		points += 8
	}

	return clamp(points, 0, vitalsMaxPoints)
}

// countConditions counts health conditions, ignoring the "None" sentinel
func countConditions(conditions []string) int {
	count := 0
	for _, c := range conditions {
		if c != "" && c != "None" {
			count++
		}
	}
	return count
}

func healthMultiplier(conditionCount int, hasMedications bool) float64 {
	if conditionCount == 0 {
		return 1.0
	}
	multiplier := 1.0 + multiplierStep*float64(conditionCount)
	if hasMedications {
		multiplier += medicationsAdd
	}
	return clamp(multiplier, 1.0, multiplierCap)
}

func levelForScore(score int) models.AlertLevel {
	switch {
	case score <= 30:
		return models.AlertLevelOK
	case score <= 60:
		return models.AlertLevelWatch
	case score <= 80:
		return models.AlertLevelWarning
	default:
		return models.AlertLevelCritical
	}
}

func buildReasons(snapshot models.WorkerSnapshot, ageScore, hoursScore, restScore, vitalsScore float64, conditionCount int, hasMedications bool, multiplier float64) []string {
	reasons := make([]string, 0, 6)

	if ageScore > 0 {
		reasons = append(reasons, fmt.Sprintf("Age (%.0f) contributes %.0f pts", snapshot.Age, math.Round(ageScore)))
	}
	if hoursScore > 0 {
		reasons = append(reasons, fmt.Sprintf("Hours worked (%.1fh) contributes %.0f pts", snapshot.TotalHoursWorked, math.Round(hoursScore)))
	}
	if restScore > 0 {
		reasons = append(reasons, fmt.Sprintf("Insufficient rest in last 24h contributes %.0f pts", restScore))
	}
	if vitalsScore > 0 {
		reasons = append(reasons, fmt.Sprintf("Abnormal vitals contribute %.0f pts", vitalsScore))
	}

	if conditionCount > 0 {
		reasons = append(reasons, fmt.Sprintf("%d health condition(s) apply multiplier x%.2f", conditionCount, multiplier))
	} else {
		reasons = append(reasons, "No health conditions - multiplier x1.00")
	}
	if hasMedications {
		reasons = append(reasons, "Medications present - added caution")
	}

	return reasons
}

// actionsForLevel returns the fixed recommended actions per alert level
func actionsForLevel(level models.AlertLevel) []string {
	switch level {
	case models.AlertLevelOK:
		return []string{"Maintain hydration and standard rest schedule."}
	case models.AlertLevelWatch:
		return []string{
			"Add a short 15-minute rest and verify hydration.",
			"Supervisor: brief check-in at shift end.",
		}
	case models.AlertLevelWarning:
		return []string{
			"Require 30-minute rest and reduced physical tasks.",
			"Supervisor to adjust next shift workload.",
		}
	default:
		return []string{
			"Stop work immediately and initiate medical check.",
			"Notify supervisor and emergency contact.",
		}
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
