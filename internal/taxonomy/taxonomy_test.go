package taxonomy

import (
	"testing"

	"endoguard/internal/model"

	"github.com/stretchr/testify/assert"
)

func values(opts []Option) []string {
	out := make([]string, 0, len(opts))
	for _, o := range opts {
		out = append(out, o.Value)
	}
	return out
}

func TestReproductiveOptionsSwitchOnSex(t *testing.T) {
	female := values(SymptomOptions(CategoryReproductive, model.SexFemale, LocaleEnglish))
	male := values(SymptomOptions(CategoryReproductive, model.SexMale, LocaleEnglish))

	assert.Contains(t, female, "irregular_periods")
	assert.Contains(t, female, "hot_flashes")
	assert.NotContains(t, female, "erectile_dysfunction")
	assert.NotContains(t, female, "low_sperm_count")

	assert.Contains(t, male, "erectile_dysfunction")
	assert.NotContains(t, male, "irregular_periods")
}

func TestReproductiveDefaultListForOtherOrUnset(t *testing.T) {
	other := values(SymptomOptions(CategoryReproductive, model.SexOther, LocaleEnglish))
	unset := values(SymptomOptions(CategoryReproductive, "", LocaleEnglish))

	assert.Equal(t, other, unset)
	assert.Contains(t, other, "body_hair_changes")
	assert.NotContains(t, other, "irregular_periods")
	assert.NotContains(t, other, "erectile_dysfunction")
}

func TestSharedCategoriesIgnoreSex(t *testing.T) {
	forFemale := values(SymptomOptions(CategoryThyroid, model.SexFemale, LocaleEnglish))
	forMale := values(SymptomOptions(CategoryThyroid, model.SexMale, LocaleEnglish))
	assert.Equal(t, forFemale, forMale)
}

func TestEveryOptionIsLabeledInBothLocales(t *testing.T) {
	for _, sex := range []model.BiologicalSex{model.SexFemale, model.SexMale, model.SexOther} {
		for _, locale := range []Locale{LocaleEnglish, LocaleSpanish} {
			for category, opts := range AllSymptomOptions(sex, locale) {
				assert.NotEmpty(t, opts, "category %s has no options", category)
				for _, o := range opts {
					assert.NotEmpty(t, o.Label, "missing %s label for %s", locale, o.Value)
				}
			}
		}
	}
}

func TestLocalizedLabels(t *testing.T) {
	en := SymptomOptions(CategoryThyroid, model.SexFemale, LocaleEnglish)
	es := SymptomOptions(CategoryThyroid, model.SexFemale, LocaleSpanish)

	assert.Equal(t, values(en), values(es), "option values are locale-independent")
	assert.NotEqual(t, en[0].Label, es[0].Label)
}

func TestSystemsFor(t *testing.T) {
	systems := SystemsFor([]string{"fatigue", "irregular_periods", "mood_swings"})
	assert.Equal(t, []string{"Reproductive", "Thyroid", "Neurological"}, systems)

	assert.Empty(t, SystemsFor(nil))
	assert.Empty(t, SystemsFor([]string{"not_a_known_symptom"}))
}

func TestExposureOptions(t *testing.T) {
	plastic := ExposureOptions(ExposurePlasticUse, LocaleEnglish)
	assert.Equal(t, []string{"minimal", "low", "moderate", "heavy"}, values(plastic))

	water := ExposureOptions(ExposureWaterSource, LocaleSpanish)
	assert.Len(t, water, 4)
	for _, o := range water {
		assert.NotEmpty(t, o.Label)
	}

	assert.Nil(t, ExposureOptions("unknownField", LocaleEnglish))
}

func TestParseLocale(t *testing.T) {
	assert.Equal(t, LocaleSpanish, ParseLocale("es"))
	assert.Equal(t, LocaleEnglish, ParseLocale("en"))
	assert.Equal(t, LocaleEnglish, ParseLocale(""))
	assert.Equal(t, LocaleEnglish, ParseLocale("fr"))
}
