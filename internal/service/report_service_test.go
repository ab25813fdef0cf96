package service

import (
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"endoguard/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireFonts skips rasterization tests on hosts without the DejaVu fonts
// the exporters load
func requireFonts(t *testing.T, svc *ReportService) {
	t.Helper()
	for _, path := range svc.fontPaths {
		if _, err := os.Stat(path); err == nil {
			return
		}
	}
	t.Skip("DejaVu fonts not installed")
}

func reportResult() *model.AssessmentResult {
	return &model.AssessmentResult{
		OverallRisk: model.OverallRisk{Level: model.RiskHigh, Score: 70},
		EDCExposure: model.EDCExposure{
			RiskScore: 70, RiskLevel: model.RiskHigh,
			RiskFactors: []string{"Unfiltered tap water as primary source"},
		},
		HormoneHealth: model.HormoneHealth{
			SymptomCount: 5, SymptomSeverity: 7,
			SystemsAffected: []string{"Thyroid", "Adrenal"},
		},
		Recommendations: []model.Recommendation{
			{Category: "diet", Priority: "high", Text: "Eat whole foods", Rationale: "Diet drives hormone balance"},
		},
		TestRecommendations: []model.TestPanel{{
			Name:  "Thyroid Panel",
			Tests: []model.LabTest{{Name: "TSH", Priority: "essential", Cost: "$25-50", Rationale: "First-line screen"}},
		}},
		NextSteps:   []model.ActionStep{{Step: 1, Action: "Review your results"}},
		AIInsights:  model.AIInsightsSection{State: model.SectionAbsent},
		GeneratedAt: time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC),
	}
}

func TestRiskColorPerTier(t *testing.T) {
	seen := map[[3]uint8]model.RiskLevel{}
	for _, level := range []model.RiskLevel{model.RiskLow, model.RiskModerate, model.RiskHigh, model.RiskVeryHigh} {
		r, g, b := riskColor(level)
		key := [3]uint8{r, g, b}
		prev, dup := seen[key]
		require.False(t, dup, "tiers %s and %s share a color", prev, level)
		seen[key] = level
	}

	// Unknown tiers get the neutral gray, never a tier color
	r, g, b := riskColor(model.RiskLevel("bogus"))
	_, collides := seen[[3]uint8{r, g, b}]
	assert.False(t, collides)
}

func TestReportFileNames(t *testing.T) {
	at := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

	assert.Equal(t, "EndoGuard_Report_2026-03-14.pdf", ReportFileName(at))

	card := CardFileName(at)
	assert.True(t, strings.HasPrefix(card, "EndoGuard-Results-"))
	assert.True(t, strings.HasSuffix(card, ".png"))
}

func TestFooterTextNumbersPages(t *testing.T) {
	assert.Equal(t, "EndoGuard | Page 1", footerText(1))
	assert.Equal(t, "EndoGuard | Page 12", footerText(12))
}

func TestSubjectLines(t *testing.T) {
	assert.Nil(t, subjectLines(nil))
	assert.Empty(t, subjectLines(&ReportSubject{}))

	lines := subjectLines(&ReportSubject{
		Email: "demo@nexusbiomedical.example",
		Input: &model.AssessmentInput{
			Age:             34,
			BiologicalSex:   model.SexFemale,
			MenstrualStatus: model.MenstrualIrregular,
		},
	})
	require.Len(t, lines, 4)
	assert.Equal(t, "Prepared for: demo@nexusbiomedical.example", lines[0])
	assert.Equal(t, "Age: 34", lines[1])
	assert.Equal(t, "Biological sex: female", lines[2])
	assert.Equal(t, "Menstrual status: irregular", lines[3])

	// Uncollected fields leave no lines behind
	partial := subjectLines(&ReportSubject{Input: &model.AssessmentInput{Age: 52, BiologicalSex: model.SexMale}})
	assert.Equal(t, []string{"Age: 52", "Biological sex: male"}, partial)
}

func TestBuildPDFEmitsDocumentWithSubject(t *testing.T) {
	svc := NewReportService()
	requireFonts(t, svc)

	subject := &ReportSubject{
		Email: "demo@nexusbiomedical.example",
		Input: &model.AssessmentInput{Age: 34, BiologicalSex: model.SexFemale},
	}
	data, err := svc.BuildPDF(reportResult(), subject)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))

	// Anonymous reports build too
	data, err = svc.BuildPDF(reportResult(), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestBuildShareCardEmitsPNG(t *testing.T) {
	svc := NewReportService()
	requireFonts(t, svc)

	data, err := svc.BuildShareCard(reportResult())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "\x89PNG"))
}

func TestShareLinks(t *testing.T) {
	res := &model.AssessmentResult{
		OverallRisk: model.OverallRisk{Level: model.RiskVeryHigh, Score: 82},
	}
	links := ShareLinks(res, "https://endoguard.example/results/a_1234")

	require.Len(t, links, 3)
	networks := map[string]string{}
	for _, link := range links {
		networks[link.Network] = link.URL
	}

	twitter, ok := networks["twitter"]
	require.True(t, ok)
	parsed, err := url.Parse(twitter)
	require.NoError(t, err)
	text := parsed.Query().Get("text")
	assert.Contains(t, text, "82/100")
	assert.Contains(t, text, "VERY HIGH")
	assert.Equal(t, "https://endoguard.example/results/a_1234", parsed.Query().Get("url"))

	facebook, ok := networks["facebook"]
	require.True(t, ok)
	parsed, err = url.Parse(facebook)
	require.NoError(t, err)
	assert.Equal(t, "https://endoguard.example/results/a_1234", parsed.Query().Get("u"))

	whatsapp, ok := networks["whatsapp"]
	require.True(t, ok)
	parsed, err = url.Parse(whatsapp)
	require.NoError(t, err)
	assert.Contains(t, parsed.Query().Get("text"), "a_1234")
}
