package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oguzhnsglm/diyet-sub000/data"
)

func newNutritionService() *NutritionService {
	return NewNutritionService(data.DefaultIndex())
}

func TestEstimateTotality(t *testing.T) {
	svc := newNutritionService()

	texts := []string{
		"", "   ", "pilav", "2 tabak pilav", "yarım tabak mercimek",
		"tavuklu pilav", "xqzwv", "asdf qwerty zxcvb", "yarım", "1 tabak",
		"köfte ekmek ayran", "half portion pilav",
	}
	for _, text := range texts {
		est := svc.Estimate(text)
		assert.GreaterOrEqual(t, est.Confidence, 0, "text %q", text)
		assert.LessOrEqual(t, est.Confidence, 100, "text %q", text)
		assert.GreaterOrEqual(t, est.Calories, 0.0, "text %q", text)
		assert.GreaterOrEqual(t, est.Sugar, 0.0, "text %q", text)
	}
}

func TestEstimateEmptyInput(t *testing.T) {
	svc := newNutritionService()

	for _, text := range []string{"", "   ", "\t\n"} {
		est := svc.Estimate(text)
		assert.Equal(t, "none", est.Source, "text %q", text)
		assert.Equal(t, 0, est.Confidence)
		assert.Zero(t, est.Calories)
		assert.Zero(t, est.Sugar)
	}
}

func TestEstimateExactMatchForEveryIndexKey(t *testing.T) {
	svc := newNutritionService()

	for key := range data.DefaultIndex() {
		est := svc.Estimate(key)
		assert.Equal(t, "exact", est.Source, "key %q", key)
		assert.Equal(t, 100, est.Confidence, "key %q", key)
		assert.Equal(t, data.DefaultIndex()[key].Calories, est.Calories, "key %q", key)
	}
}

func TestEstimatePortionScaling(t *testing.T) {
	svc := newNutritionService()

	single := svc.Estimate("pilav")
	double := svc.Estimate("2 tabak pilav")
	require.Equal(t, "exact", double.Source)
	assert.Equal(t, single.Calories*2, double.Calories)
	assert.Equal(t, single.Sugar*2, double.Sugar)
	assert.Equal(t, 2.0, double.PlateCount)

	mercimek := svc.Estimate("mercimek")
	half := svc.Estimate("yarım tabak mercimek")
	require.Equal(t, "exact", half.Source)
	assert.Equal(t, mercimek.Calories*0.5, half.Calories)
	assert.Equal(t, mercimek.Sugar*0.5, half.Sugar)
	assert.Equal(t, 0.5, half.PlateCount)
}

func TestEstimateNaturalLanguageQuantities(t *testing.T) {
	svc := newNutritionService()
	base := svc.Estimate("pilav")

	cases := []struct {
		text string
		mult float64
	}{
		{"çeyrek tabak pilav", 0.25},
		{"bir buçuk tabak pilav", 1.5},
		{"half portion pilav", 0.5},
		{"one and a half servings pilav", 1.5},
		{"1,5 tabak pilav", 1.5},
	}
	for _, c := range cases {
		est := svc.Estimate(c.text)
		assert.Equal(t, c.mult, est.PlateCount, "text %q", c.text)
		assert.Equal(t, base.Calories*c.mult, est.Calories, "text %q", c.text)
	}
}

func TestEstimateCombinedIngredients(t *testing.T) {
	svc := newNutritionService()
	idx := data.DefaultIndex()

	est := svc.Estimate("tavuk pilav")
	assert.Equal(t, "combined", est.Source)
	assert.Equal(t, 90, est.Confidence)
	assert.Equal(t, idx["tavuk"].Calories+idx["pilav"].Calories, est.Calories)
	assert.Equal(t, idx["tavuk"].Sugar+idx["pilav"].Sugar, est.Sugar)
}

func TestEstimateSuffixStripping(t *testing.T) {
	svc := newNutritionService()
	idx := data.DefaultIndex()

	// "tavuklu" resolves to "tavuk" after stripping the -lu suffix.
	est := svc.Estimate("tavuklu pilav")
	assert.Equal(t, "combined", est.Source)
	assert.Equal(t, idx["tavuk"].Calories+idx["pilav"].Calories, est.Calories)
}

func TestEstimateSingleTokenPartial(t *testing.T) {
	svc := newNutritionService()

	// One resolvable token among noise.
	est := svc.Estimate("ev yapımı pilav")
	assert.Equal(t, "partial", est.Source)
	assert.Equal(t, 85, est.Confidence)
	assert.Equal(t, data.DefaultIndex()["pilav"].Calories, est.Calories)
}

func TestEstimateFuzzyToken(t *testing.T) {
	svc := newNutritionService()

	// Misspelled single ingredient: containment plus similarity > 0.7.
	est := svc.Estimate("pilavv")
	assert.Equal(t, "partial", est.Source)
	assert.Equal(t, 85, est.Confidence)
	assert.Equal(t, data.DefaultIndex()["pilav"].Calories, est.Calories)
}

func TestEstimateDefaultFallback(t *testing.T) {
	svc := newNutritionService()

	est := svc.Estimate("xqzwv")
	assert.Equal(t, "default", est.Source)
	assert.Equal(t, 30, est.Confidence)
	assert.Equal(t, defaultCalories, est.Calories)
	assert.Equal(t, defaultSugar, est.Sugar)

	// The generic estimate still scales by portion.
	scaled := svc.Estimate("2 tabak xqzwv")
	assert.Equal(t, "default", scaled.Source)
	assert.Equal(t, defaultCalories*2, scaled.Calories)
}

func TestEstimateDeterministic(t *testing.T) {
	svc := newNutritionService()

	for _, text := range []string{"pilav", "tavuk pilav", "pilavv", "mercimek çorbas"} {
		first := svc.Estimate(text)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, svc.Estimate(text), "text %q", text)
		}
	}
}
