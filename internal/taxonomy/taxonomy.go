// Package taxonomy holds the static, localized symptom and exposure option
// lists offered by the assessment form. Everything here is a pure mapping
// (category, sex, locale) -> ordered labeled options, so the form and the
// severity scorer stay decoupled from any UI translation runtime.
package taxonomy

import "endoguard/internal/model"

// Locale selects the label language
type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleSpanish Locale = "es"
)

// ParseLocale maps a raw string to a supported locale, defaulting to English
func ParseLocale(raw string) Locale {
	if raw == string(LocaleSpanish) {
		return LocaleSpanish
	}
	return LocaleEnglish
}

// Category is a symptom category keyed by hormone system
type Category string

const (
	CategoryReproductive Category = "reproductive"
	CategoryThyroid      Category = "thyroid"
	CategoryAdrenal      Category = "adrenal"
	CategoryMetabolic    Category = "metabolic"
	CategoryNeurological Category = "neurological"
)

// Option is one selectable value with its localized label
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// CategoryInfo describes a category for display
type CategoryInfo struct {
	ID    Category `json:"id"`
	Label string   `json:"label"`
}

// Symptom values per category. Reproductive lists switch on biological sex;
// the other systems are shared.
var (
	reproductiveFemale = []string{
		"irregular_periods", "heavy_periods", "severe_pms",
		"hot_flashes", "low_libido", "fertility_difficulty",
	}
	reproductiveMale = []string{
		"low_libido", "erectile_dysfunction", "reduced_muscle_mass",
		"breast_tissue_growth", "low_sperm_count",
	}
	reproductiveOther = []string{
		"low_libido", "fertility_difficulty", "body_hair_changes",
	}
	thyroidSymptoms = []string{
		"fatigue", "weight_gain", "weight_loss",
		"cold_intolerance", "hair_thinning", "brain_fog",
	}
	adrenalSymptoms = []string{
		"anxiety", "insomnia", "salt_cravings",
		"afternoon_crashes", "dizziness_standing",
	}
	metabolicSymptoms = []string{
		"sugar_cravings", "belly_fat_gain", "blood_sugar_swings", "skin_tags",
	}
	neurologicalSymptoms = []string{
		"mood_swings", "depression", "irritability",
		"memory_problems", "headaches",
	}
)

var symptomLabels = map[Locale]map[string]string{
	LocaleEnglish: {
		"irregular_periods":    "Irregular periods",
		"heavy_periods":        "Heavy or painful periods",
		"severe_pms":           "Severe PMS",
		"hot_flashes":          "Hot flashes",
		"low_libido":           "Low libido",
		"fertility_difficulty": "Difficulty conceiving",
		"erectile_dysfunction": "Erectile dysfunction",
		"reduced_muscle_mass":  "Reduced muscle mass",
		"breast_tissue_growth": "Breast tissue growth",
		"low_sperm_count":      "Low sperm count",
		"body_hair_changes":    "Body hair changes",
		"fatigue":              "Persistent fatigue",
		"weight_gain":          "Unexplained weight gain",
		"weight_loss":          "Unexplained weight loss",
		"cold_intolerance":     "Sensitivity to cold",
		"hair_thinning":        "Hair thinning or loss",
		"brain_fog":            "Brain fog",
		"anxiety":              "Anxiety",
		"insomnia":             "Trouble sleeping",
		"salt_cravings":        "Salt cravings",
		"afternoon_crashes":    "Afternoon energy crashes",
		"dizziness_standing":   "Dizziness when standing",
		"sugar_cravings":       "Sugar cravings",
		"belly_fat_gain":       "Abdominal weight gain",
		"blood_sugar_swings":   "Blood sugar swings",
		"skin_tags":            "Skin tags",
		"mood_swings":          "Mood swings",
		"depression":           "Low mood or depression",
		"irritability":         "Irritability",
		"memory_problems":      "Memory problems",
		"headaches":            "Frequent headaches",
	},
	LocaleSpanish: {
		"irregular_periods":    "Períodos irregulares",
		"heavy_periods":        "Períodos abundantes o dolorosos",
		"severe_pms":           "SPM severo",
		"hot_flashes":          "Sofocos",
		"low_libido":           "Libido baja",
		"fertility_difficulty": "Dificultad para concebir",
		"erectile_dysfunction": "Disfunción eréctil",
		"reduced_muscle_mass":  "Pérdida de masa muscular",
		"breast_tissue_growth": "Crecimiento de tejido mamario",
		"low_sperm_count":      "Bajo recuento de espermatozoides",
		"body_hair_changes":    "Cambios en el vello corporal",
		"fatigue":              "Fatiga persistente",
		"weight_gain":          "Aumento de peso inexplicable",
		"weight_loss":          "Pérdida de peso inexplicable",
		"cold_intolerance":     "Sensibilidad al frío",
		"hair_thinning":        "Caída o debilitamiento del cabello",
		"brain_fog":            "Niebla mental",
		"anxiety":              "Ansiedad",
		"insomnia":             "Problemas para dormir",
		"salt_cravings":        "Antojos de sal",
		"afternoon_crashes":    "Bajones de energía por la tarde",
		"dizziness_standing":   "Mareos al ponerse de pie",
		"sugar_cravings":       "Antojos de azúcar",
		"belly_fat_gain":       "Aumento de grasa abdominal",
		"blood_sugar_swings":   "Altibajos de azúcar en sangre",
		"skin_tags":            "Verrugas cutáneas",
		"mood_swings":          "Cambios de humor",
		"depression":           "Ánimo bajo o depresión",
		"irritability":         "Irritabilidad",
		"memory_problems":      "Problemas de memoria",
		"headaches":            "Dolores de cabeza frecuentes",
	},
}

var categoryLabels = map[Locale]map[Category]string{
	LocaleEnglish: {
		CategoryReproductive: "Reproductive hormones",
		CategoryThyroid:      "Thyroid",
		CategoryAdrenal:      "Adrenal & stress",
		CategoryMetabolic:    "Metabolic",
		CategoryNeurological: "Mood & cognition",
	},
	LocaleSpanish: {
		CategoryReproductive: "Hormonas reproductivas",
		CategoryThyroid:      "Tiroides",
		CategoryAdrenal:      "Suprarrenales y estrés",
		CategoryMetabolic:    "Metabólico",
		CategoryNeurological: "Ánimo y cognición",
	},
}

// systemNames maps categories to the hormone-system names reported in
// HormoneHealth.SystemsAffected
var systemNames = map[Category]string{
	CategoryReproductive: "Reproductive",
	CategoryThyroid:      "Thyroid",
	CategoryAdrenal:      "Adrenal",
	CategoryMetabolic:    "Metabolic",
	CategoryNeurological: "Neurological",
}

// Categories returns the symptom categories in display order
func Categories(locale Locale) []CategoryInfo {
	order := []Category{
		CategoryReproductive, CategoryThyroid, CategoryAdrenal,
		CategoryMetabolic, CategoryNeurological,
	}
	labels := categoryLabels[locale]
	if labels == nil {
		labels = categoryLabels[LocaleEnglish]
	}
	infos := make([]CategoryInfo, 0, len(order))
	for _, c := range order {
		infos = append(infos, CategoryInfo{ID: c, Label: labels[c]})
	}
	return infos
}

// SymptomOptions returns the ordered options for a category. The
// reproductive list switches on biological sex; unknown or unset sex gets
// the default list.
func SymptomOptions(category Category, sex model.BiologicalSex, locale Locale) []Option {
	var values []string
	switch category {
	case CategoryReproductive:
		switch sex {
		case model.SexFemale:
			values = reproductiveFemale
		case model.SexMale:
			values = reproductiveMale
		default:
			values = reproductiveOther
		}
	case CategoryThyroid:
		values = thyroidSymptoms
	case CategoryAdrenal:
		values = adrenalSymptoms
	case CategoryMetabolic:
		values = metabolicSymptoms
	case CategoryNeurological:
		values = neurologicalSymptoms
	default:
		return nil
	}
	return labeled(values, locale)
}

// AllSymptomOptions returns every category with its options for the given
// sex and locale, in display order
func AllSymptomOptions(sex model.BiologicalSex, locale Locale) map[Category][]Option {
	out := make(map[Category][]Option)
	for _, info := range Categories(locale) {
		out[info.ID] = SymptomOptions(info.ID, sex, locale)
	}
	return out
}

// SystemsFor maps selected symptom values back to the affected hormone
// systems, in category display order. Unknown values are ignored.
func SystemsFor(symptoms []string) []string {
	selected := make(map[string]bool, len(symptoms))
	for _, s := range symptoms {
		selected[s] = true
	}

	membership := map[Category][]string{
		CategoryReproductive: concat(reproductiveFemale, reproductiveMale, reproductiveOther),
		CategoryThyroid:      thyroidSymptoms,
		CategoryAdrenal:      adrenalSymptoms,
		CategoryMetabolic:    metabolicSymptoms,
		CategoryNeurological: neurologicalSymptoms,
	}

	var systems []string
	for _, info := range Categories(LocaleEnglish) {
		for _, v := range membership[info.ID] {
			if selected[v] {
				systems = append(systems, systemNames[info.ID])
				break
			}
		}
	}
	return systems
}

func labeled(values []string, locale Locale) []Option {
	labels := symptomLabels[locale]
	if labels == nil {
		labels = symptomLabels[LocaleEnglish]
	}
	opts := make([]Option, 0, len(values))
	for _, v := range values {
		label := labels[v]
		if label == "" {
			label = symptomLabels[LocaleEnglish][v]
		}
		opts = append(opts, Option{Value: v, Label: label})
	}
	return opts
}

func concat(lists ...[]string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, list := range lists {
		for _, v := range list {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}
