package scoring

import (
	"fmt"
	"testing"

	"endoguard/internal/model"

	"github.com/stretchr/testify/assert"
)

func baseInput() *model.AssessmentInput {
	return &model.AssessmentInput{
		Age:                    30,
		BiologicalSex:          model.SexFemale,
		Symptoms:               []string{"fatigue", "brain_fog", "mood_swings", "irregular_periods", "insomnia"},
		SymptomDuration:        model.Duration6To12Months,
		DietQuality:            model.QualityFair,
		ExerciseFrequency:      model.ExerciseOccasional,
		SleepQuality:           model.QualityFair,
		StressLevel:            7,
		PlasticUseFrequency:    model.PlasticModerate,
		ProcessedFoodFrequency: model.ProcessedSeveralTimesWeek,
		WaterSource:            model.WaterTapUnfiltered,
		OccupationalExposure:   false,
	}
}

func TestScoreReferenceScenario(t *testing.T) {
	b := Score(baseInput())

	assert.Equal(t, 20.0, b.Symptom)
	assert.Equal(t, 16.0, b.Duration)
	assert.Equal(t, 10.5, b.Stress)
	assert.Equal(t, 8.0, b.Lifestyle)
	assert.Equal(t, 7.0, b.Exposure)
	assert.Equal(t, 61.5, b.Total)

	assert.Equal(t, 7, ComputeSeverity(baseInput()))
}

func TestComputeSeverityDeterministic(t *testing.T) {
	in := baseInput()
	first := ComputeSeverity(in)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, ComputeSeverity(in))
	}
	assert.GreaterOrEqual(t, first, 1)
	assert.LessOrEqual(t, first, 10)
}

func TestComputeSeverityMonotonicInSymptoms(t *testing.T) {
	extra := []string{
		"weight_gain", "headaches", "anxiety", "sugar_cravings",
		"hair_thinning", "depression", "salt_cravings", "skin_tags",
	}

	in := &model.AssessmentInput{
		SymptomDuration:   model.Duration1To3Months,
		DietQuality:       model.QualityGood,
		ExerciseFrequency: model.ExerciseRegular,
		SleepQuality:      model.QualityGood,
		StressLevel:       4,
		WaterSource:       model.WaterBottled,
	}

	prev := ComputeSeverity(in)
	for _, s := range extra {
		in.Symptoms = append(in.Symptoms, s)
		next := ComputeSeverity(in)
		assert.GreaterOrEqual(t, next, prev, "adding %q must not decrease severity", s)
		prev = next
	}
}

func TestSymptomScoreCapsAtForty(t *testing.T) {
	in := baseInput()
	in.Symptoms = nil
	for i := 0; i < 12; i++ {
		in.Symptoms = append(in.Symptoms, fmt.Sprintf("symptom_%d", i))
	}
	assert.Equal(t, 40.0, Score(in).Symptom)

	in.Symptoms = append(in.Symptoms, "one_more")
	assert.Equal(t, 40.0, Score(in).Symptom)
}

func TestStressScoreCapped(t *testing.T) {
	in := baseInput()
	in.StressLevel = 10
	assert.Equal(t, 15.0, Score(in).Stress)
}

func TestExposureScoreCapped(t *testing.T) {
	in := baseInput()
	in.PlasticUseFrequency = model.PlasticHeavy
	in.ProcessedFoodFrequency = model.ProcessedDaily
	in.WaterSource = model.WaterTapUnfiltered
	in.OccupationalExposure = true
	assert.Equal(t, 10.0, Score(in).Exposure)
}

func TestSeverityBounds(t *testing.T) {
	empty := &model.AssessmentInput{}
	assert.Equal(t, 1, ComputeSeverity(empty), "empty input clamps to 1")

	worst := &model.AssessmentInput{
		SymptomDuration:        model.DurationOver2Years,
		DietQuality:            model.QualityPoor,
		ExerciseFrequency:      model.ExerciseRarely,
		SleepQuality:           model.QualityPoor,
		StressLevel:            10,
		PlasticUseFrequency:    model.PlasticHeavy,
		ProcessedFoodFrequency: model.ProcessedDaily,
		WaterSource:            model.WaterTapUnfiltered,
		OccupationalExposure:   true,
	}
	for i := 0; i < 10; i++ {
		worst.Symptoms = append(worst.Symptoms, fmt.Sprintf("symptom_%d", i))
	}
	assert.Equal(t, 10, ComputeSeverity(worst))
}

func TestUnknownEnumValuesScoreZero(t *testing.T) {
	in := &model.AssessmentInput{
		Symptoms:        []string{"fatigue"},
		SymptomDuration: model.SymptomDuration("bogus"),
		DietQuality:     model.OrdinalQuality("bogus"),
	}
	b := Score(in)
	assert.Equal(t, 0.0, b.Duration)
	assert.Equal(t, 0.0, b.Lifestyle)
}
