package handler

import (
	"net/http"

	"endoguard/internal/model"
	"endoguard/internal/taxonomy"
)

// TaxonomyHandler serves the localized symptom and exposure catalogs
type TaxonomyHandler struct{}

// NewTaxonomyHandler creates a new taxonomy handler
func NewTaxonomyHandler() *TaxonomyHandler {
	return &TaxonomyHandler{}
}

// Get handles GET /v1/taxonomy
func (h *TaxonomyHandler) Get(w http.ResponseWriter, r *http.Request) {
	locale := taxonomy.ParseLocale(r.URL.Query().Get("locale"))
	sex := model.BiologicalSex(r.URL.Query().Get("sex"))

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"locale":     locale,
		"categories": taxonomy.Categories(locale),
		"symptoms":   taxonomy.AllSymptomOptions(sex, locale),
		"exposure": map[string]interface{}{
			taxonomy.ExposurePlasticUse:    taxonomy.ExposureOptions(taxonomy.ExposurePlasticUse, locale),
			taxonomy.ExposureProcessedFood: taxonomy.ExposureOptions(taxonomy.ExposureProcessedFood, locale),
			taxonomy.ExposureWaterSource:   taxonomy.ExposureOptions(taxonomy.ExposureWaterSource, locale),
		},
	})
}
