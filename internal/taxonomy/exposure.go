package taxonomy

import "endoguard/internal/model"

// Exposure fields whose ordinal options the form offers
const (
	ExposurePlasticUse    = "plasticUseFrequency"
	ExposureProcessedFood = "processedFoodFrequency"
	ExposureWaterSource   = "waterSource"
)

var exposureValues = map[string][]string{
	ExposurePlasticUse: {
		string(model.PlasticMinimal), string(model.PlasticLow),
		string(model.PlasticModerate), string(model.PlasticHeavy),
	},
	ExposureProcessedFood: {
		string(model.ProcessedRarely), string(model.ProcessedFewTimesMonth),
		string(model.ProcessedSeveralTimesWeek), string(model.ProcessedDaily),
	},
	ExposureWaterSource: {
		string(model.WaterFiltered), string(model.WaterBottled),
		string(model.WaterWell), string(model.WaterTapUnfiltered),
	},
}

var exposureLabels = map[Locale]map[string]string{
	LocaleEnglish: {
		string(model.PlasticMinimal):            "Rarely use plastic containers",
		string(model.PlasticLow):                "Occasional plastic use",
		string(model.PlasticModerate):           "Moderate daily plastic use",
		string(model.PlasticHeavy):              "Heavy plastic use, including heating food in plastic",
		string(model.ProcessedRarely):           "Rarely",
		string(model.ProcessedFewTimesMonth):    "A few times a month",
		string(model.ProcessedSeveralTimesWeek): "Several times a week",
		string(model.ProcessedDaily):            "Daily",
		string(model.WaterFiltered):             "Filtered water",
		string(model.WaterBottled):              "Bottled water",
		string(model.WaterWell):                 "Well water",
		string(model.WaterTapUnfiltered):        "Unfiltered tap water",
	},
	LocaleSpanish: {
		string(model.PlasticMinimal):            "Rara vez uso envases de plástico",
		string(model.PlasticLow):                "Uso ocasional de plástico",
		string(model.PlasticModerate):           "Uso diario moderado de plástico",
		string(model.PlasticHeavy):              "Uso intensivo, incluso calentando comida en plástico",
		string(model.ProcessedRarely):           "Rara vez",
		string(model.ProcessedFewTimesMonth):    "Algunas veces al mes",
		string(model.ProcessedSeveralTimesWeek): "Varias veces por semana",
		string(model.ProcessedDaily):            "A diario",
		string(model.WaterFiltered):             "Agua filtrada",
		string(model.WaterBottled):              "Agua embotellada",
		string(model.WaterWell):                 "Agua de pozo",
		string(model.WaterTapUnfiltered):        "Agua del grifo sin filtrar",
	},
}

// ExposureOptions returns the ordered options for one exposure field.
// Unknown fields report nil.
func ExposureOptions(field string, locale Locale) []Option {
	values, ok := exposureValues[field]
	if !ok {
		return nil
	}
	labels := exposureLabels[locale]
	if labels == nil {
		labels = exposureLabels[LocaleEnglish]
	}
	opts := make([]Option, 0, len(values))
	for _, v := range values {
		label := labels[v]
		if label == "" {
			label = exposureLabels[LocaleEnglish][v]
		}
		opts = append(opts, Option{Value: v, Label: label})
	}
	return opts
}
