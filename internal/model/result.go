package model

import "time"

// RiskLevel is the backend-assigned categorical tier
type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskModerate RiskLevel = "MODERATE"
	RiskHigh     RiskLevel = "HIGH"
	RiskVeryHigh RiskLevel = "VERY_HIGH"
)

// Label returns the display form of the tier
func (l RiskLevel) Label() string {
	if l == RiskVeryHigh {
		return "VERY HIGH"
	}
	return string(l)
}

// OverallRisk summarizes the composite risk tier and 0-100 score
type OverallRisk struct {
	Level RiskLevel `json:"level" bson:"level"`
	Score int       `json:"score" bson:"score"`
}

// EDCExposure scores endocrine-disrupting chemical exposure
type EDCExposure struct {
	RiskScore   int       `json:"riskScore" bson:"riskScore"`
	RiskLevel   RiskLevel `json:"riskLevel" bson:"riskLevel"`
	RiskFactors []string  `json:"riskFactors" bson:"riskFactors"`
}

// HormoneHealth summarizes the symptom burden
type HormoneHealth struct {
	SymptomCount    int      `json:"symptomCount" bson:"symptomCount"`
	SymptomSeverity int      `json:"symptomSeverity" bson:"symptomSeverity"`
	SystemsAffected []string `json:"systemsAffected" bson:"systemsAffected"`
}

// Recommendation is one prioritized advice item
type Recommendation struct {
	Category  string `json:"category" bson:"category"`
	Priority  string `json:"priority" bson:"priority"` // "high", "medium", "low"
	Text      string `json:"text" bson:"text"`
	Rationale string `json:"rationale" bson:"rationale"`
}

// LabTest is a single suggested laboratory test
type LabTest struct {
	Name      string `json:"name" bson:"name"`
	Priority  string `json:"priority" bson:"priority"`
	Cost      string `json:"cost" bson:"cost"`
	Rationale string `json:"rationale" bson:"rationale"`
}

// TestPanel groups suggested tests for one hormone system
type TestPanel struct {
	Name  string    `json:"name" bson:"name"`
	Tests []LabTest `json:"tests" bson:"tests"`
}

// ActionStep is one ordered next step
type ActionStep struct {
	Step   int    `json:"step" bson:"step"`
	Action string `json:"action" bson:"action"`
}

// AIInsights is the optional AI-generated narrative block
type AIInsights struct {
	SymptomPattern              string   `json:"symptomPattern" bson:"symptomPattern"`
	PersonalizedRecommendations []string `json:"personalizedRecommendations" bson:"personalizedRecommendations"`
	Disclaimer                  string   `json:"disclaimer" bson:"disclaimer"`
}

// SectionState tags an optional result section so the renderer branches
// explicitly instead of on truthiness
type SectionState string

const (
	SectionPresent SectionState = "present"
	SectionAbsent  SectionState = "absent"
	SectionErrored SectionState = "errored"
)

// AIInsightsSection is the tagged-variant wrapper around AIInsights.
// Data is non-nil only when State is SectionPresent; Reason is set only
// when State is SectionErrored.
type AIInsightsSection struct {
	State  SectionState `json:"state" bson:"state"`
	Data   *AIInsights  `json:"data,omitempty" bson:"data,omitempty"`
	Reason string       `json:"reason,omitempty" bson:"reason,omitempty"`
}

// Demographics carries the optional computed BMI block
type Demographics struct {
	BMI         float64 `json:"bmi" bson:"bmi"`
	BMICategory string  `json:"bmiCategory" bson:"bmiCategory"`
}

// AssessmentResult is produced by the risk assessor and is read-only
// thereafter
type AssessmentResult struct {
	OverallRisk         OverallRisk       `json:"overallRisk" bson:"overallRisk"`
	EDCExposure         EDCExposure       `json:"edcExposure" bson:"edcExposure"`
	HormoneHealth       HormoneHealth     `json:"hormoneHealth" bson:"hormoneHealth"`
	Recommendations     []Recommendation  `json:"recommendations" bson:"recommendations"`
	TestRecommendations []TestPanel       `json:"testRecommendations" bson:"testRecommendations"`
	NextSteps           []ActionStep      `json:"nextSteps" bson:"nextSteps"`
	AIInsights          AIInsightsSection `json:"aiInsights" bson:"aiInsights"`
	Demographics        *Demographics     `json:"demographics,omitempty" bson:"demographics,omitempty"`
	GeneratedAt         time.Time         `json:"generatedAt" bson:"generatedAt"`
}

// AssessmentRecord is a completed assessment persisted for an authenticated
// user's history
type AssessmentRecord struct {
	ID              string           `json:"id" bson:"_id,omitempty"`
	UserID          string           `json:"userId" bson:"userId"`
	Input           AssessmentInput  `json:"input" bson:"input"`
	SymptomSeverity int              `json:"symptomSeverity" bson:"symptomSeverity"`
	Result          AssessmentResult `json:"result" bson:"result"`
	CompletedAt     time.Time        `json:"completedAt" bson:"completedAt"`
}
