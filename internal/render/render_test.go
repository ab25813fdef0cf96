package render

import (
	"testing"

	"endoguard/internal/model"
	"endoguard/internal/taxonomy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *model.AssessmentResult {
	return &model.AssessmentResult{
		OverallRisk:   model.OverallRisk{Level: model.RiskHigh, Score: 70},
		EDCExposure:   model.EDCExposure{RiskScore: 70, RiskLevel: model.RiskHigh},
		HormoneHealth: model.HormoneHealth{SymptomCount: 5, SymptomSeverity: 7},
		Recommendations: []model.Recommendation{
			{Category: "diet", Priority: "high", Text: "Eat whole foods"},
		},
		TestRecommendations: []model.TestPanel{{Name: "Thyroid Panel"}},
		NextSteps:           []model.ActionStep{{Step: 1, Action: "Review"}},
		AIInsights:          model.AIInsightsSection{State: model.SectionAbsent},
	}
}

func kinds(sections []Section) []SectionKind {
	out := make([]SectionKind, len(sections))
	for i, s := range sections {
		out[i] = s.Kind
	}
	return out
}

func find(sections []Section, kind SectionKind) *Section {
	for i := range sections {
		if sections[i].Kind == kind {
			return &sections[i]
		}
	}
	return nil
}

func TestAbsentInsightsProduceNoSection(t *testing.T) {
	sections := BuildView(sampleResult(), true, taxonomy.LocaleEnglish)
	assert.Nil(t, find(sections, KindAIInsights))
}

func TestErroredInsightsProduceNoSection(t *testing.T) {
	res := sampleResult()
	res.AIInsights = model.AIInsightsSection{State: model.SectionErrored, Reason: "timed out"}

	sections := BuildView(res, true, taxonomy.LocaleEnglish)
	assert.Nil(t, find(sections, KindAIInsights))
}

func TestPresentInsightsRendered(t *testing.T) {
	res := sampleResult()
	res.AIInsights = model.AIInsightsSection{
		State: model.SectionPresent,
		Data:  &model.AIInsights{SymptomPattern: "thyroid-leaning pattern"},
	}

	sections := BuildView(res, true, taxonomy.LocaleEnglish)
	section := find(sections, KindAIInsights)
	require.NotNil(t, section)
	assert.Equal(t, res.AIInsights.Data, section.Data)
}

func TestBMISectionOnlyWhenMeasured(t *testing.T) {
	sections := BuildView(sampleResult(), true, taxonomy.LocaleEnglish)
	assert.Nil(t, find(sections, KindBMI))

	res := sampleResult()
	res.Demographics = &model.Demographics{BMI: 22.5, BMICategory: "Normal"}
	sections = BuildView(res, true, taxonomy.LocaleEnglish)
	require.NotNil(t, find(sections, KindBMI))
}

func TestAnonymousViewLocksTestPanel(t *testing.T) {
	sections := BuildView(sampleResult(), false, taxonomy.LocaleEnglish)

	tests := find(sections, KindTestRecommendations)
	require.NotNil(t, tests)
	assert.True(t, tests.Locked)
	assert.Nil(t, tests.Data)

	require.NotNil(t, find(sections, KindSignupPrompt))
}

func TestAuthenticatedViewShowsTestPanel(t *testing.T) {
	sections := BuildView(sampleResult(), true, taxonomy.LocaleEnglish)

	tests := find(sections, KindTestRecommendations)
	require.NotNil(t, tests)
	assert.False(t, tests.Locked)
	assert.NotNil(t, tests.Data)

	assert.Nil(t, find(sections, KindSignupPrompt))
}

func TestSectionOrderStartsWithRiskAndEndsWithDisclaimer(t *testing.T) {
	sections := BuildView(sampleResult(), true, taxonomy.LocaleEnglish)
	order := kinds(sections)

	require.NotEmpty(t, order)
	assert.Equal(t, KindRiskSummary, order[0])
	assert.Equal(t, KindDisclaimer, order[len(order)-1])
}

func TestSpanishTitles(t *testing.T) {
	en := BuildView(sampleResult(), true, taxonomy.LocaleEnglish)
	es := BuildView(sampleResult(), true, taxonomy.LocaleSpanish)

	require.Equal(t, len(en), len(es))
	assert.Equal(t, "Recomendaciones", find(es, KindRecommendations).Title)
	assert.NotEqual(t, find(en, KindRiskSummary).Title, find(es, KindRiskSummary).Title)
}

func TestUnknownLocaleFallsBackToEnglish(t *testing.T) {
	en := BuildView(sampleResult(), true, taxonomy.LocaleEnglish)
	fr := BuildView(sampleResult(), true, taxonomy.Locale("fr"))
	assert.Equal(t, find(en, KindRiskSummary).Title, find(fr, KindRiskSummary).Title)
}
