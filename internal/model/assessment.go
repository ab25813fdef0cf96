package model

import "time"

// BiologicalSex determines which reproductive symptom list is offered
type BiologicalSex string

const (
	SexFemale BiologicalSex = "female"
	SexMale   BiologicalSex = "male"
	SexOther  BiologicalSex = "other"
)

// MenstrualStatus is only collected when BiologicalSex is female
type MenstrualStatus string

const (
	MenstrualRegular       MenstrualStatus = "regular"
	MenstrualIrregular     MenstrualStatus = "irregular"
	MenstrualPerimenopause MenstrualStatus = "perimenopause"
	MenstrualPostmenopause MenstrualStatus = "postmenopause"
)

// SymptomDuration buckets how long symptoms have persisted
type SymptomDuration string

const (
	DurationUnderOneMonth SymptomDuration = "less_than_1_month"
	Duration1To3Months    SymptomDuration = "1_3_months"
	Duration3To6Months    SymptomDuration = "3_6_months"
	Duration6To12Months   SymptomDuration = "6_12_months"
	Duration1To2Years     SymptomDuration = "1_2_years"
	DurationOver2Years    SymptomDuration = "more_than_2_years"
)

// OrdinalQuality is the shared 4-point scale for diet and sleep
type OrdinalQuality string

const (
	QualityPoor      OrdinalQuality = "poor"
	QualityFair      OrdinalQuality = "fair"
	QualityGood      OrdinalQuality = "good"
	QualityExcellent OrdinalQuality = "excellent"
)

// ExerciseFrequency is the 4-point exercise scale
type ExerciseFrequency string

const (
	ExerciseRarely     ExerciseFrequency = "rarely"
	ExerciseOccasional ExerciseFrequency = "occasional"
	ExerciseRegular    ExerciseFrequency = "regular"
	ExerciseDaily      ExerciseFrequency = "daily"
)

// PlasticUse is the ordinal plastic-exposure scale
type PlasticUse string

const (
	PlasticMinimal  PlasticUse = "minimal"
	PlasticLow      PlasticUse = "low"
	PlasticModerate PlasticUse = "moderate"
	PlasticHeavy    PlasticUse = "heavy"
)

// ProcessedFood is the ordinal processed-food scale
type ProcessedFood string

const (
	ProcessedRarely           ProcessedFood = "rarely"
	ProcessedFewTimesMonth    ProcessedFood = "few_times_month"
	ProcessedSeveralTimesWeek ProcessedFood = "several_times_week"
	ProcessedDaily            ProcessedFood = "daily"
)

// WaterSource is the ordinal drinking-water scale
type WaterSource string

const (
	WaterFiltered      WaterSource = "filtered"
	WaterBottled       WaterSource = "bottled"
	WaterWell          WaterSource = "well"
	WaterTapUnfiltered WaterSource = "tap_unfiltered"
)

// AssessmentInput is built incrementally across the wizard steps and frozen
// at submission
type AssessmentInput struct {
	Age             int             `json:"age" bson:"age"`
	BiologicalSex   BiologicalSex   `json:"biologicalSex" bson:"biologicalSex"`
	MenstrualStatus MenstrualStatus `json:"menstrualStatus,omitempty" bson:"menstrualStatus,omitempty"`
	HeightCm        float64         `json:"heightCm,omitempty" bson:"heightCm,omitempty"`
	WeightKg        float64         `json:"weightKg,omitempty" bson:"weightKg,omitempty"`

	Symptoms        []string        `json:"symptoms" bson:"symptoms"`
	SymptomDuration SymptomDuration `json:"symptomDuration" bson:"symptomDuration"`

	DietQuality       OrdinalQuality    `json:"dietQuality" bson:"dietQuality"`
	ExerciseFrequency ExerciseFrequency `json:"exerciseFrequency" bson:"exerciseFrequency"`
	SleepQuality      OrdinalQuality    `json:"sleepQuality" bson:"sleepQuality"`
	StressLevel       int               `json:"stressLevel" bson:"stressLevel"`

	PlasticUseFrequency    PlasticUse    `json:"plasticUseFrequency" bson:"plasticUseFrequency"`
	ProcessedFoodFrequency ProcessedFood `json:"processedFoodFrequency" bson:"processedFoodFrequency"`
	WaterSource            WaterSource   `json:"waterSource" bson:"waterSource"`
	OccupationalExposure   bool          `json:"occupationalExposure" bson:"occupationalExposure"`

	ExistingConditions string `json:"existingConditions,omitempty" bson:"existingConditions,omitempty"`
	Medications        string `json:"medications,omitempty" bson:"medications,omitempty"`
	Supplements        string `json:"supplements,omitempty" bson:"supplements,omitempty"`
}

// HasSymptom reports set membership in the symptoms list
func (in *AssessmentInput) HasSymptom(value string) bool {
	for _, s := range in.Symptoms {
		if s == value {
			return true
		}
	}
	return false
}

// Wizard step constants. Transitions are linear and clamped to [MinStep, MaxStep].
const (
	StepDemographics = 1
	StepSymptoms     = 2
	StepLifestyle    = 3
	StepExposure     = 4
	StepHistory      = 5
	StepReview       = 6

	MinStep = StepDemographics
	MaxStep = StepReview
)

// WizardStatus is the lifecycle state of an assessment session
type WizardStatus string

const (
	WizardEditing    WizardStatus = "editing"
	WizardSubmitting WizardStatus = "submitting"
	WizardCompleted  WizardStatus = "completed"
)

// AssessmentSession is the server-held wizard state for one in-progress
// assessment. There is exactly one editor per session; all mutation happens
// through the wizard service.
type AssessmentSession struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId,omitempty"` // empty for anonymous sessions
	Locale    string          `json:"locale"`
	Step      int             `json:"step"`
	Status    WizardStatus    `json:"status"`
	Input     AssessmentInput `json:"input"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// Advance moves to the next step. Calling it at the last step is a no-op.
func (s *AssessmentSession) Advance() {
	if s.Step < MaxStep {
		s.Step++
	}
}

// Retreat moves to the previous step. Calling it at the first step is a no-op.
func (s *AssessmentSession) Retreat() {
	if s.Step > MinStep {
		s.Step--
	}
}

// ToggleArrayField toggles set membership on an array-valued input field:
// present values are removed, absent values appended. Duplicates are never
// created. Unknown fields report false.
func (s *AssessmentSession) ToggleArrayField(field, value string) bool {
	var target *[]string
	switch field {
	case "symptoms":
		target = &s.Input.Symptoms
	default:
		return false
	}

	for i, v := range *target {
		if v == value {
			*target = append((*target)[:i], (*target)[i+1:]...)
			return true
		}
	}
	*target = append(*target, value)
	return true
}

// SetBiologicalSex updates the sex and drops the menstrual status when it no
// longer applies. Already-selected symptoms are kept even if the visible
// taxonomy changes (they came from explicit user action).
func (s *AssessmentSession) SetBiologicalSex(sex BiologicalSex) {
	s.Input.BiologicalSex = sex
	if sex != SexFemale {
		s.Input.MenstrualStatus = ""
	}
}
