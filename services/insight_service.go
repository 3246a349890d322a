package services

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/oguzhnsglm/diyet-sub000/models"
)

// InsightService mines a rolling window of the event log for rule-based
// observations. Each rule is independent and order-stable: same snapshot
// in, same ordered insight list out. Simple, auditable heuristics on
// purpose, not an opaque model.
type InsightService struct {
	now func() time.Time
}

func NewInsightService() *InsightService {
	return &InsightService{now: time.Now}
}

const defaultWindowDays = 30

// Mine scans the last windowDays of the snapshot and returns the
// insights whose rules fired. The list is never empty: when nothing
// fires, a generic keep-logging message is returned.
func (s *InsightService) Mine(snap models.Snapshot, windowDays int) []string {
	if windowDays <= 0 {
		windowDays = defaultWindowDays
	}
	now := s.now()
	cutoffMillis := now.AddDate(0, 0, -windowDays).UnixMilli()
	cutoffDay := now.AddDate(0, 0, -windowDays).Format("2006-01-02")

	var readings []models.GlucoseReading
	for _, g := range snap.Glucose {
		if g.Timestamp >= cutoffMillis {
			readings = append(readings, g)
		}
	}
	var sleeps []models.SleepEvent
	for _, sl := range snap.Sleep {
		if sl.Date >= cutoffDay {
			sleeps = append(sleeps, sl)
		}
	}
	var stresses []models.StressEvent
	for _, st := range snap.Stress {
		if st.Timestamp >= cutoffMillis {
			stresses = append(stresses, st)
		}
	}

	var insights []string
	if msg, ok := adherenceInsight(readings); ok {
		insights = append(insights, msg)
	}
	if msg, ok := controlBandInsight(readings); ok {
		insights = append(insights, msg)
	}
	if msg, ok := sleepInsight(sleeps, readings); ok {
		insights = append(insights, msg)
	}
	if msg, ok := stressInsight(stresses); ok {
		insights = append(insights, msg)
	}
	if msg, ok := bestDayInsight(readings); ok {
		insights = append(insights, msg)
	}

	if len(insights) == 0 {
		insights = append(insights, "Keep logging your meals and measurements. Insights appear as your history grows.")
	}
	return insights
}

func adherenceInsight(readings []models.GlucoseReading) (string, bool) {
	switch {
	case len(readings) >= 30:
		return fmt.Sprintf("Great measurement habit: %d glucose readings this period. Consistent data makes your predictions sharper.", len(readings)), true
	case len(readings) > 0 && len(readings) < 10:
		return "You logged fewer than 10 glucose readings this period. More measurements mean better insights.", true
	}
	return "", false
}

// controlBandInsight flags a mean above 140 and praises 100-130
// inclusive. Means strictly between 130 and 140, or below 100, produce
// no message; the gap is intentional product behavior.
func controlBandInsight(readings []models.GlucoseReading) (string, bool) {
	if len(readings) == 0 {
		return "", false
	}
	var sum float64
	for _, g := range readings {
		sum += g.Value
	}
	avg := sum / float64(len(readings))

	switch {
	case avg > 140:
		return fmt.Sprintf("Your average glucose is %.0f mg/dL, above the 140 target. Worth discussing with your clinician.", avg), true
	case avg >= 100 && avg <= 130:
		return fmt.Sprintf("Excellent control: your average glucose is %.0f mg/dL.", avg), true
	}
	return "", false
}

// sleepInsight compares average same-day glucose between well-slept
// nights (good/excellent) and the rest.
func sleepInsight(sleeps []models.SleepEvent, readings []models.GlucoseReading) (string, bool) {
	if len(sleeps) < 7 {
		return "", false
	}

	byDay := map[string][]float64{}
	for _, g := range readings {
		day := g.Day()
		byDay[day] = append(byDay[day], g.Value)
	}

	var goodAvgs, otherAvgs []float64
	for _, sl := range sleeps {
		values := byDay[sl.Date]
		if len(values) == 0 {
			continue
		}
		avg := mean(values)
		if sl.Quality == models.SleepGood || sl.Quality == models.SleepExcellent {
			goodAvgs = append(goodAvgs, avg)
		} else {
			otherAvgs = append(otherAvgs, avg)
		}
	}

	if len(goodAvgs) == 0 || len(otherAvgs) == 0 {
		return "", false
	}

	diff := mean(otherAvgs) - mean(goodAvgs)
	if math.Abs(diff) <= 15 {
		return "", false
	}
	if diff > 0 {
		return fmt.Sprintf("On well-slept days your glucose runs about %.0f mg/dL lower. Sleep seems to work in your favor.", math.Round(math.Abs(diff))), true
	}
	return fmt.Sprintf("On well-slept days your glucose runs about %.0f mg/dL higher, an unusual pattern worth watching.", math.Round(math.Abs(diff))), true
}

func stressInsight(stresses []models.StressEvent) (string, bool) {
	if len(stresses) < 5 {
		return "", false
	}
	high := 0
	for _, st := range stresses {
		if st.Level >= 7 {
			high++
		}
	}
	if high == 0 {
		return "", false
	}
	return fmt.Sprintf("You logged %d high-stress entries this period. Stress can raise glucose; short breaks and breathing exercises help.", high), true
}

// bestDayInsight finds the calendar day with the most stable readings:
// lowest variance among days with at least 3 measurements.
func bestDayInsight(readings []models.GlucoseReading) (string, bool) {
	if len(readings) < 7 {
		return "", false
	}

	byDay := map[string][]float64{}
	for _, g := range readings {
		byDay[g.Day()] = append(byDay[g.Day()], g.Value)
	}

	days := make([]string, 0, len(byDay))
	for day, values := range byDay {
		if len(values) >= 3 {
			days = append(days, day)
		}
	}
	if len(days) == 0 {
		return "", false
	}
	sort.Strings(days)

	bestDay := ""
	bestVar := math.MaxFloat64
	for _, day := range days {
		v := variance(byDay[day])
		if v < bestVar {
			bestVar = v
			bestDay = day
		}
	}
	return fmt.Sprintf("%s was your most stable day: glucose barely moved. Whatever you did that day, it worked.", bestDay), true
}

func variance(values []float64) float64 {
	m := mean(values)
	var sumSq float64
	for _, v := range values {
		diff := v - m
		sumSq += diff * diff
	}
	return sumSq / float64(len(values))
}
