package render

import (
	"endoguard/internal/model"
	"endoguard/internal/taxonomy"
)

// SectionKind identifies one block of the rendered results view
type SectionKind string

const (
	KindRiskSummary         SectionKind = "risk_summary"
	KindEDCExposure         SectionKind = "edc_exposure"
	KindAIInsights          SectionKind = "ai_insights"
	KindBMI                 SectionKind = "bmi"
	KindHormoneHealth       SectionKind = "hormone_health"
	KindTestRecommendations SectionKind = "test_recommendations"
	KindRecommendations     SectionKind = "recommendations"
	KindNextSteps           SectionKind = "next_steps"
	KindSignupPrompt        SectionKind = "signup_prompt"
	KindDisclaimer          SectionKind = "disclaimer"
)

// Section is one renderable block. Locked sections show a teaser instead of
// their data until the user signs in.
type Section struct {
	Kind   SectionKind `json:"kind"`
	Title  string      `json:"title"`
	Locked bool        `json:"locked,omitempty"`
	Data   interface{} `json:"data,omitempty"`
}

var sectionTitles = map[taxonomy.Locale]map[SectionKind]string{
	taxonomy.LocaleEnglish: {
		KindRiskSummary:         "Your Overall Risk",
		KindEDCExposure:         "EDC Exposure",
		KindAIInsights:          "AI Insights",
		KindBMI:                 "Body Mass Index",
		KindHormoneHealth:       "Hormone Health",
		KindTestRecommendations: "Suggested Lab Tests",
		KindRecommendations:     "Recommendations",
		KindNextSteps:           "Next Steps",
		KindSignupPrompt:        "Unlock Your Full Report",
		KindDisclaimer:          "Disclaimer",
	},
	taxonomy.LocaleSpanish: {
		KindRiskSummary:         "Tu riesgo general",
		KindEDCExposure:         "Exposición a EDC",
		KindAIInsights:          "Análisis de IA",
		KindBMI:                 "Índice de masa corporal",
		KindHormoneHealth:       "Salud hormonal",
		KindTestRecommendations: "Pruebas de laboratorio sugeridas",
		KindRecommendations:     "Recomendaciones",
		KindNextSteps:           "Próximos pasos",
		KindSignupPrompt:        "Desbloquea tu informe completo",
		KindDisclaimer:          "Aviso legal",
	},
}

var disclaimerText = map[taxonomy.Locale]string{
	taxonomy.LocaleEnglish: "This assessment is educational and is not a medical diagnosis. Discuss your results with a licensed healthcare provider.",
	taxonomy.LocaleSpanish: "Esta evaluación es educativa y no constituye un diagnóstico médico. Consulta tus resultados con un profesional de la salud.",
}

var signupText = map[taxonomy.Locale]string{
	taxonomy.LocaleEnglish: "Create a free account to see your personalized lab test panel and save your results.",
	taxonomy.LocaleSpanish: "Crea una cuenta gratuita para ver tu panel de pruebas personalizado y guardar tus resultados.",
}

func title(locale taxonomy.Locale, kind SectionKind) string {
	return sectionTitles[locale][kind]
}

// BuildView assembles the ordered section list for one result. Optional
// sections appear only in their present state; lab test details are gated
// behind authentication.
func BuildView(res *model.AssessmentResult, authed bool, locale taxonomy.Locale) []Section {
	if _, ok := sectionTitles[locale]; !ok {
		locale = taxonomy.LocaleEnglish
	}

	sections := []Section{
		{Kind: KindRiskSummary, Title: title(locale, KindRiskSummary), Data: res.OverallRisk},
		{Kind: KindEDCExposure, Title: title(locale, KindEDCExposure), Data: res.EDCExposure},
		{Kind: KindHormoneHealth, Title: title(locale, KindHormoneHealth), Data: res.HormoneHealth},
	}

	if res.AIInsights.State == model.SectionPresent {
		sections = append(sections, Section{
			Kind:  KindAIInsights,
			Title: title(locale, KindAIInsights),
			Data:  res.AIInsights.Data,
		})
	}

	if res.Demographics != nil {
		sections = append(sections, Section{
			Kind:  KindBMI,
			Title: title(locale, KindBMI),
			Data:  res.Demographics,
		})
	}

	if authed {
		sections = append(sections, Section{
			Kind:  KindTestRecommendations,
			Title: title(locale, KindTestRecommendations),
			Data:  res.TestRecommendations,
		})
	} else {
		sections = append(sections,
			Section{
				Kind:   KindTestRecommendations,
				Title:  title(locale, KindTestRecommendations),
				Locked: true,
			},
			Section{
				Kind:  KindSignupPrompt,
				Title: title(locale, KindSignupPrompt),
				Data:  signupText[locale],
			},
		)
	}

	sections = append(sections,
		Section{Kind: KindRecommendations, Title: title(locale, KindRecommendations), Data: res.Recommendations},
		Section{Kind: KindNextSteps, Title: title(locale, KindNextSteps), Data: res.NextSteps},
		Section{Kind: KindDisclaimer, Title: title(locale, KindDisclaimer), Data: disclaimerText[locale]},
	)

	return sections
}
