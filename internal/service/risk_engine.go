package service

import (
	"math"
	"time"

	"endoguard/internal/model"
	"endoguard/internal/scoring"
	"endoguard/internal/taxonomy"
)

// Tier thresholds on the 0-100 composite scale
const (
	moderateThreshold = 25
	highThreshold     = 50
	veryHighThreshold = 75
)

func tierFor(score int) model.RiskLevel {
	switch {
	case score < moderateThreshold:
		return model.RiskLow
	case score < highThreshold:
		return model.RiskModerate
	case score < veryHighThreshold:
		return model.RiskHigh
	default:
		return model.RiskVeryHigh
	}
}

// localAssess scores an assessment with the built-in deterministic engine.
// It is used whenever no upstream assessor is configured, so the service is
// fully usable standalone. Local results never carry AI insights.
func (s *AssessorService) localAssess(in *model.AssessmentInput, severity int) *model.AssessmentResult {
	breakdown := scoring.Score(in)

	edcScore := int(math.Round(breakdown.Exposure * 10))
	overallScore := int(math.Round(0.6*float64(severity)*10 + 0.4*float64(edcScore)))

	result := &model.AssessmentResult{
		OverallRisk: model.OverallRisk{
			Level: tierFor(overallScore),
			Score: overallScore,
		},
		EDCExposure: model.EDCExposure{
			RiskScore:   edcScore,
			RiskLevel:   tierFor(edcScore),
			RiskFactors: exposureFactors(in),
		},
		HormoneHealth: model.HormoneHealth{
			SymptomCount:    len(in.Symptoms),
			SymptomSeverity: severity,
			SystemsAffected: taxonomy.SystemsFor(in.Symptoms),
		},
		AIInsights:  model.AIInsightsSection{State: model.SectionAbsent},
		GeneratedAt: time.Now(),
	}

	result.Recommendations = buildRecommendations(in)
	result.TestRecommendations = buildTestPanels(result.HormoneHealth.SystemsAffected)
	result.NextSteps = []model.ActionStep{
		{Step: 1, Action: "Review your risk summary and exposure factors"},
		{Step: 2, Action: "Share this report with your healthcare provider"},
		{Step: 3, Action: "Schedule the suggested laboratory tests"},
		{Step: 4, Action: "Retake the assessment in 8-12 weeks to track changes"},
	}

	if in.HeightCm > 0 && in.WeightKg > 0 {
		bmi := in.WeightKg / math.Pow(in.HeightCm/100, 2)
		bmi = math.Round(bmi*10) / 10
		result.Demographics = &model.Demographics{
			BMI:         bmi,
			BMICategory: bmiCategory(bmi),
		}
	}

	return result
}

func bmiCategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

// exposureFactors lists the concrete EDC exposure drivers present in the
// input, in a fixed order
func exposureFactors(in *model.AssessmentInput) []string {
	factors := []string{}
	switch in.PlasticUseFrequency {
	case model.PlasticModerate:
		factors = append(factors, "Regular use of plastic food containers")
	case model.PlasticHeavy:
		factors = append(factors, "Heavy plastic use, including heated food in plastic")
	}
	switch in.ProcessedFoodFrequency {
	case model.ProcessedSeveralTimesWeek:
		factors = append(factors, "Processed food several times a week")
	case model.ProcessedDaily:
		factors = append(factors, "Daily processed food consumption")
	}
	switch in.WaterSource {
	case model.WaterWell:
		factors = append(factors, "Untested well water supply")
	case model.WaterTapUnfiltered:
		factors = append(factors, "Unfiltered tap water as primary source")
	}
	if in.OccupationalExposure {
		factors = append(factors, "Occupational chemical exposure")
	}
	return factors
}

func buildRecommendations(in *model.AssessmentInput) []model.Recommendation {
	var recs []model.Recommendation

	switch in.DietQuality {
	case model.QualityPoor:
		recs = append(recs, model.Recommendation{
			Category: "diet", Priority: "high",
			Text:      "Shift toward whole, minimally processed foods",
			Rationale: "Poor diet quality is a major modifiable driver of hormone imbalance",
		})
	case model.QualityFair:
		recs = append(recs, model.Recommendation{
			Category: "diet", Priority: "medium",
			Text:      "Add more vegetables, fiber and quality protein to daily meals",
			Rationale: "Diet quality directly affects estrogen metabolism and insulin sensitivity",
		})
	}

	switch in.ExerciseFrequency {
	case model.ExerciseRarely:
		recs = append(recs, model.Recommendation{
			Category: "activity", Priority: "high",
			Text:      "Build up to 150 minutes of moderate activity per week",
			Rationale: "Regular movement improves insulin sensitivity and cortisol regulation",
		})
	case model.ExerciseOccasional:
		recs = append(recs, model.Recommendation{
			Category: "activity", Priority: "medium",
			Text:      "Make existing activity a fixed weekly routine",
			Rationale: "Consistency matters more than intensity for hormonal balance",
		})
	}

	switch in.SleepQuality {
	case model.QualityPoor:
		recs = append(recs, model.Recommendation{
			Category: "sleep", Priority: "high",
			Text:      "Prioritize 7-9 hours with a consistent sleep schedule",
			Rationale: "Poor sleep disrupts cortisol, growth hormone and appetite signaling",
		})
	case model.QualityFair:
		recs = append(recs, model.Recommendation{
			Category: "sleep", Priority: "medium",
			Text:      "Reduce evening screen exposure and keep the bedroom dark",
			Rationale: "Evening light suppresses melatonin and delays sleep onset",
		})
	}

	if in.StressLevel >= 7 {
		recs = append(recs, model.Recommendation{
			Category: "stress", Priority: "high",
			Text:      "Adopt a daily stress practice such as breathing exercises or walking",
			Rationale: "Sustained high stress keeps cortisol chronically elevated",
		})
	} else if in.StressLevel >= 4 {
		recs = append(recs, model.Recommendation{
			Category: "stress", Priority: "medium",
			Text:      "Schedule regular recovery time during the week",
			Rationale: "Moderate chronic stress still accumulates hormonal load",
		})
	}

	if in.PlasticUseFrequency == model.PlasticModerate || in.PlasticUseFrequency == model.PlasticHeavy {
		recs = append(recs, model.Recommendation{
			Category: "exposure", Priority: "high",
			Text:      "Switch to glass or stainless steel for food storage; never heat food in plastic",
			Rationale: "Heated plastics leach bisphenols and phthalates into food",
		})
	}
	if in.WaterSource == model.WaterTapUnfiltered || in.WaterSource == model.WaterWell {
		recs = append(recs, model.Recommendation{
			Category: "exposure", Priority: "medium",
			Text:      "Use an activated-carbon or reverse-osmosis water filter",
			Rationale: "Filtration reduces common waterborne endocrine disruptors",
		})
	}
	if in.OccupationalExposure {
		recs = append(recs, model.Recommendation{
			Category: "exposure", Priority: "high",
			Text:      "Review workplace protective equipment and handling protocols",
			Rationale: "Occupational contact is often the largest single EDC source",
		})
	}

	recs = append(recs, model.Recommendation{
		Category: "medical", Priority: "medium",
		Text:      "Discuss these results with a licensed healthcare provider",
		Rationale: "This assessment is educational and does not replace clinical evaluation",
	})

	return recs
}

// buildTestPanels suggests laboratory panels for each affected hormone
// system
func buildTestPanels(systems []string) []model.TestPanel {
	catalog := map[string]model.TestPanel{
		"Reproductive": {
			Name: "Reproductive Hormone Panel",
			Tests: []model.LabTest{
				{Name: "Estradiol (E2)", Priority: "essential", Cost: "$40-80", Rationale: "Baseline estrogen status"},
				{Name: "Total & Free Testosterone", Priority: "essential", Cost: "$50-100", Rationale: "Androgen balance"},
				{Name: "FSH / LH", Priority: "recommended", Cost: "$40-80", Rationale: "Pituitary signaling to the gonads"},
			},
		},
		"Thyroid": {
			Name: "Thyroid Panel",
			Tests: []model.LabTest{
				{Name: "TSH", Priority: "essential", Cost: "$25-50", Rationale: "First-line thyroid screen"},
				{Name: "Free T4", Priority: "essential", Cost: "$25-50", Rationale: "Active thyroid hormone output"},
				{Name: "Free T3", Priority: "recommended", Cost: "$30-60", Rationale: "Peripheral conversion status"},
				{Name: "TPO Antibodies", Priority: "optional", Cost: "$35-70", Rationale: "Autoimmune thyroid involvement"},
			},
		},
		"Adrenal": {
			Name: "Adrenal Panel",
			Tests: []model.LabTest{
				{Name: "AM Cortisol", Priority: "essential", Cost: "$30-60", Rationale: "Morning HPA-axis output"},
				{Name: "DHEA-S", Priority: "recommended", Cost: "$35-70", Rationale: "Adrenal androgen reserve"},
			},
		},
		"Metabolic": {
			Name: "Metabolic Panel",
			Tests: []model.LabTest{
				{Name: "Fasting Insulin", Priority: "essential", Cost: "$30-60", Rationale: "Early insulin resistance marker"},
				{Name: "HbA1c", Priority: "essential", Cost: "$25-50", Rationale: "Three-month glucose average"},
				{Name: "Lipid Panel", Priority: "recommended", Cost: "$30-60", Rationale: "Metabolic risk context"},
			},
		},
		"Neurological": {
			Name: "Mood & Cognition Support",
			Tests: []model.LabTest{
				{Name: "Vitamin D (25-OH)", Priority: "recommended", Cost: "$40-80", Rationale: "Deficiency mimics mood symptoms"},
				{Name: "Vitamin B12", Priority: "optional", Cost: "$30-60", Rationale: "Deficiency impairs cognition and energy"},
			},
		},
	}

	var panels []model.TestPanel
	for _, system := range systems {
		if panel, ok := catalog[system]; ok {
			panels = append(panels, panel)
		}
	}
	return panels
}
