package models

import "time"

// Kind names one of the five event collections in a user's store.
type Kind string

const (
	KindMeals      Kind = "meals"
	KindActivities Kind = "activities"
	KindGlucose    Kind = "glucose"
	KindSleep      Kind = "sleep"
	KindStress     Kind = "stress"
)

// ValidKind reports whether k names a known collection.
func ValidKind(k Kind) bool {
	switch k {
	case KindMeals, KindActivities, KindGlucose, KindSleep, KindStress:
		return true
	}
	return false
}

// Intensity of an activity.
type Intensity string

const (
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

// SleepQuality as self-reported by the user.
type SleepQuality string

const (
	SleepPoor      SleepQuality = "poor"
	SleepMedium    SleepQuality = "medium"
	SleepGood      SleepQuality = "good"
	SleepExcellent SleepQuality = "excellent"
)

// MealEvent is one logged meal. Nutrition values are a snapshot taken at
// log time; they are never recomputed afterwards.
type MealEvent struct {
	ID        string  `json:"id"`
	Timestamp int64   `json:"timestamp"` // epoch milliseconds
	FoodName  string  `json:"foodName" binding:"required"`
	Carbs     float64 `json:"carbs" binding:"gte=0"`
	Calories  float64 `json:"calories" binding:"gte=0"`
	Portion   string  `json:"portion"`
	PhotoURI  string  `json:"photoUri,omitempty"`
	// Author-assigned 0-10 severity, independent of the predictor.
	GlucoseImpactScore *int `json:"glucoseImpactScore,omitempty" binding:"omitempty,min=0,max=10"`
}

func (m MealEvent) Time() time.Time { return time.UnixMilli(m.Timestamp) }

// ActivityEvent is one logged physical activity.
type ActivityEvent struct {
	ID        string    `json:"id"`
	Timestamp int64     `json:"timestamp"`
	Type      string    `json:"type" binding:"required"`
	Duration  float64   `json:"duration" binding:"gte=0"` // minutes
	Intensity Intensity `json:"intensity" binding:"required,intensity"`
}

func (a ActivityEvent) Time() time.Time { return time.UnixMilli(a.Timestamp) }

// GlucoseReading is one blood glucose measurement in mg/dL.
//
// RelatedMealID and RelatedActivityID are weak references: they may be
// absent or dangling, and consumers must treat a missing match as "no
// reading associated", never as an error.
type GlucoseReading struct {
	ID                string  `json:"id"`
	Timestamp         int64   `json:"timestamp"`
	Value             float64 `json:"value" binding:"required,gt=0"`
	Note              string  `json:"note,omitempty"`
	BeforeMeal        bool    `json:"beforeMeal,omitempty"`
	AfterMeal         bool    `json:"afterMeal,omitempty"`
	RelatedMealID     string  `json:"relatedMealId,omitempty"`
	RelatedActivityID string  `json:"relatedActivityId,omitempty"`
}

func (g GlucoseReading) Time() time.Time { return time.UnixMilli(g.Timestamp) }

// Day returns the calendar day of the reading, formatted 2006-01-02.
func (g GlucoseReading) Day() string { return g.Time().Format("2006-01-02") }

// SleepEvent is one night of sleep, keyed by calendar day rather than a
// point-in-time timestamp.
type SleepEvent struct {
	ID      string       `json:"id"`
	Date    string       `json:"date" binding:"required,datetime=2006-01-02"`
	Hours   float64      `json:"hours" binding:"gte=0"`
	Quality SleepQuality `json:"quality" binding:"required,sleepquality"`
}

// StressEvent is one self-reported stress entry on a 1-10 scale.
type StressEvent struct {
	ID        string `json:"id"`
	Timestamp int64  `json:"timestamp"`
	Level     int    `json:"level" binding:"required,min=1,max=10"`
	Trigger   string `json:"trigger,omitempty"`
	Note      string `json:"note,omitempty"`
}

func (s StressEvent) Time() time.Time { return time.UnixMilli(s.Timestamp) }

// Snapshot is the full five-collection state of one user's event store.
// It is passed by value; the predictor and insight miner never see the
// store's internal slices.
type Snapshot struct {
	Meals      []MealEvent      `json:"meals"`
	Activities []ActivityEvent  `json:"activities"`
	Glucose    []GlucoseReading `json:"glucose"`
	Sleep      []SleepEvent     `json:"sleep"`
	Stress     []StressEvent    `json:"stress"`
}

// EmptySnapshot returns a snapshot with all five collections present and
// empty, the first-run default.
func EmptySnapshot() Snapshot {
	return Snapshot{
		Meals:      []MealEvent{},
		Activities: []ActivityEvent{},
		Glucose:    []GlucoseReading{},
		Sleep:      []SleepEvent{},
		Stress:     []StressEvent{},
	}
}
