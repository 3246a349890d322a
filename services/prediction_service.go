package services

import (
	"math"

	"github.com/oguzhnsglm/diyet-sub000/models"
)

// ConfidenceTier is the coarse three-level confidence of a prediction.
// It is deliberately not a continuous score; UI copy stays simple.
type ConfidenceTier string

const (
	ConfidenceLow    ConfidenceTier = "low"
	ConfidenceMedium ConfidenceTier = "medium"
	ConfidenceHigh   ConfidenceTier = "high"
)

// Prediction is a forecast glucose value with confidence and advice.
type Prediction struct {
	Prediction float64        `json:"prediction"` // mg/dL
	Confidence ConfidenceTier `json:"confidence"`
	Advice     string         `json:"advice"`
}

// PredictionService forecasts glucose impact by analogy to the user's own
// history. It is a pure function over a snapshot; nothing is retained
// between calls.
type PredictionService struct{}

func NewPredictionService() *PredictionService { return &PredictionService{} }

const (
	// Fallback rise when no history exists: mg/dL per gram of carbs.
	carbRiseFactor = 3.0
	// Meals within this many grams of carbs count as analogous.
	analogousCarbRange = 20.0
	// Baseline readings must fall within this window before the event.
	baselineWindowMillis = 10 * 60 * 1000
)

// PredictAfterMeal forecasts the glucose value after eating carbGrams of
// carbohydrate, starting from currentGlucose.
//
// Historical deltas are averaged without outlier clipping; a single
// extreme reading can dominate the average. Known sensitivity, kept so
// predictions stay a faithful mirror of the logged data.
func (s *PredictionService) PredictAfterMeal(snap models.Snapshot, carbGrams, currentGlucose float64) Prediction {
	var analogous []models.MealEvent
	for _, m := range snap.Meals {
		if math.Abs(m.Carbs-carbGrams) <= analogousCarbRange {
			analogous = append(analogous, m)
		}
	}

	if len(analogous) == 0 {
		return Prediction{
			Prediction: math.Round(currentGlucose + carbGrams*carbRiseFactor),
			Confidence: ConfidenceLow,
			Advice:     "No similar meals in your history yet. Measure your glucose about 2 hours after eating so future predictions improve.",
		}
	}

	var deltas []float64
	for _, m := range analogous {
		if delta, ok := mealDelta(snap, m); ok {
			deltas = append(deltas, delta)
		}
	}

	if len(deltas) == 0 {
		return Prediction{
			Prediction: math.Round(currentGlucose + carbGrams*carbRiseFactor),
			Confidence: ConfidenceMedium,
			Advice:     mealAdvice(math.Round(currentGlucose + carbGrams*carbRiseFactor)),
		}
	}

	avg := mean(deltas)
	predicted := math.Round(currentGlucose + avg)
	confidence := ConfidenceMedium
	if len(deltas) >= 3 {
		confidence = ConfidenceHigh
	}

	return Prediction{
		Prediction: predicted,
		Confidence: confidence,
		Advice:     mealAdvice(predicted),
	}
}

// PredictAfterActivity forecasts the glucose value after an activity.
// Analogy requires equal type AND equal intensity.
func (s *PredictionService) PredictAfterActivity(snap models.Snapshot, activityType string, duration float64, intensity models.Intensity, currentGlucose float64) Prediction {
	var analogous []models.ActivityEvent
	for _, a := range snap.Activities {
		if a.Type == activityType && a.Intensity == intensity {
			analogous = append(analogous, a)
		}
	}

	fallback := math.Round(currentGlucose - duration*intensityFactor(intensity))

	if len(analogous) == 0 {
		return Prediction{
			Prediction: fallback,
			Confidence: ConfidenceLow,
			Advice:     activityAdvice(fallback),
		}
	}

	var deltas []float64
	for _, a := range analogous {
		if delta, ok := activityDelta(snap, a); ok {
			deltas = append(deltas, delta)
		}
	}

	if len(deltas) == 0 {
		return Prediction{
			Prediction: fallback,
			Confidence: ConfidenceMedium,
			Advice:     activityAdvice(fallback),
		}
	}

	predicted := math.Round(currentGlucose + mean(deltas))
	confidence := ConfidenceMedium
	if len(deltas) >= 3 {
		confidence = ConfidenceHigh
	}

	return Prediction{
		Prediction: predicted,
		Confidence: confidence,
		Advice:     activityAdvice(predicted),
	}
}

func intensityFactor(i models.Intensity) float64 {
	switch i {
	case models.IntensityLow:
		return 0.5
	case models.IntensityHigh:
		return 1.5
	default:
		return 1.0
	}
}

// mealDelta computes afterReading − baselineReading for one meal. The
// after-reading must be linked via RelatedMealID and strictly after the
// meal; the baseline is the latest reading at or before the meal within
// the lookback window. Links may dangle; a missing pair just means no
// usable delta.
func mealDelta(snap models.Snapshot, m models.MealEvent) (float64, bool) {
	after, ok := linkedAfterReading(snap.Glucose, m.Timestamp, func(g models.GlucoseReading) bool {
		return g.RelatedMealID == m.ID
	})
	if !ok {
		return 0, false
	}
	baseline, ok := baselineReading(snap.Glucose, m.Timestamp)
	if !ok {
		return 0, false
	}
	return after.Value - baseline.Value, true
}

func activityDelta(snap models.Snapshot, a models.ActivityEvent) (float64, bool) {
	after, ok := linkedAfterReading(snap.Glucose, a.Timestamp, func(g models.GlucoseReading) bool {
		return g.RelatedActivityID == a.ID
	})
	if !ok {
		return 0, false
	}
	baseline, ok := baselineReading(snap.Glucose, a.Timestamp)
	if !ok {
		return 0, false
	}
	return after.Value - baseline.Value, true
}

// linkedAfterReading returns the first reading matching the link that is
// strictly after the event.
func linkedAfterReading(readings []models.GlucoseReading, eventTS int64, linked func(models.GlucoseReading) bool) (models.GlucoseReading, bool) {
	for _, g := range readings {
		if linked(g) && g.Timestamp > eventTS {
			return g, true
		}
	}
	return models.GlucoseReading{}, false
}

// baselineReading returns the latest reading taken at or before the event
// within the lookback window. Any reading qualifies; linking is not
// required for the "before" value.
func baselineReading(readings []models.GlucoseReading, eventTS int64) (models.GlucoseReading, bool) {
	var best models.GlucoseReading
	found := false
	for _, g := range readings {
		if g.Timestamp > eventTS || eventTS-g.Timestamp > baselineWindowMillis {
			continue
		}
		if !found || g.Timestamp > best.Timestamp {
			best = g
			found = true
		}
	}
	return best, found
}

func mealAdvice(predicted float64) string {
	switch {
	case predicted > 180:
		return "This meal is likely to push your glucose high. Consider a smaller portion or a short walk afterwards."
	case predicted > 140:
		return "Expect a moderate rise. A follow-up measurement about 2 hours after eating is a good idea."
	default:
		return "This meal should keep your glucose in a comfortable range."
	}
}

func activityAdvice(predicted float64) string {
	switch {
	case predicted < 70:
		return "Risk of low glucose during this activity. Carry fast-acting sugar and check before you start."
	case predicted < 90:
		return "Your glucose may dip a little. Keep a snack within reach."
	default:
		return "This activity should sit comfortably within your usual range."
	}
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
