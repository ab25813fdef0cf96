// Package scoring computes the 1-10 symptom severity from an assessment
// input. The weighted formula is fixed for compatibility with previously
// issued reports; scores are recomputed fresh on every call and never cached,
// since any single field change changes the result.
package scoring

import (
	"math"

	"endoguard/internal/model"
)

// Component caps. The five components sum to at most 100.
const (
	maxSymptomScore  = 40.0
	maxStressScore   = 15.0
	maxExposureScore = 10.0
	pointsPerSymptom = 4.0
)

var durationScores = map[model.SymptomDuration]float64{
	model.DurationUnderOneMonth: 4,
	model.Duration1To3Months:    8,
	model.Duration3To6Months:    12,
	model.Duration6To12Months:   16,
	model.Duration1To2Years:     18,
	model.DurationOver2Years:    20,
}

var dietScores = map[model.OrdinalQuality]float64{
	model.QualityPoor:      5,
	model.QualityFair:      3,
	model.QualityGood:      1,
	model.QualityExcellent: 0,
}

var exerciseScores = map[model.ExerciseFrequency]float64{
	model.ExerciseRarely:     4,
	model.ExerciseOccasional: 2,
	model.ExerciseRegular:    1,
	model.ExerciseDaily:      0,
}

var sleepScores = map[model.OrdinalQuality]float64{
	model.QualityPoor:      6,
	model.QualityFair:      3,
	model.QualityGood:      1,
	model.QualityExcellent: 0,
}

var plasticScores = map[model.PlasticUse]float64{
	model.PlasticMinimal:  0,
	model.PlasticLow:      1,
	model.PlasticModerate: 2,
	model.PlasticHeavy:    3,
}

var processedFoodScores = map[model.ProcessedFood]float64{
	model.ProcessedRarely:           0,
	model.ProcessedFewTimesMonth:    1,
	model.ProcessedSeveralTimesWeek: 2,
	model.ProcessedDaily:            3,
}

var waterSourceScores = map[model.WaterSource]float64{
	model.WaterFiltered:      0,
	model.WaterBottled:       1,
	model.WaterWell:          2,
	model.WaterTapUnfiltered: 3,
}

// Breakdown holds the per-component contributions, exposed so the review
// step can display them
type Breakdown struct {
	Symptom   float64 `json:"symptom"`
	Duration  float64 `json:"duration"`
	Stress    float64 `json:"stress"`
	Lifestyle float64 `json:"lifestyle"`
	Exposure  float64 `json:"exposure"`
	Total     float64 `json:"total"`
}

// Score computes the component breakdown for an input
func Score(in *model.AssessmentInput) Breakdown {
	b := Breakdown{
		Symptom:   math.Min(maxSymptomScore, float64(len(in.Symptoms))*pointsPerSymptom),
		Duration:  durationScores[in.SymptomDuration],
		Stress:    math.Min(maxStressScore, float64(in.StressLevel)*1.5),
		Lifestyle: dietScores[in.DietQuality] + exerciseScores[in.ExerciseFrequency] + sleepScores[in.SleepQuality],
	}

	exposure := plasticScores[in.PlasticUseFrequency] +
		processedFoodScores[in.ProcessedFoodFrequency] +
		waterSourceScores[in.WaterSource]
	if in.OccupationalExposure {
		exposure += 3
	}
	b.Exposure = math.Min(maxExposureScore, exposure)

	b.Total = b.Symptom + b.Duration + b.Stress + b.Lifestyle + b.Exposure
	return b
}

// ComputeSeverity maps an input to the 1-10 severity integer. The total is a
// percentage of the 100-point maximum; severity is that percentage projected
// onto a 10-point scale, rounded up and clamped to [1, 10].
func ComputeSeverity(in *model.AssessmentInput) int {
	total := Score(in).Total
	severity := int(math.Ceil(total / 100 * 10))
	return clamp(severity)
}

func clamp(v int) int {
	if v < 1 {
		return 1
	}
	if v > 10 {
		return 10
	}
	return v
}
