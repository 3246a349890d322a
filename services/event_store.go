package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/oguzhnsglm/diyet-sub000/models"
	"github.com/oguzhnsglm/diyet-sub000/storage"
)

const storeKeyPrefix = "diyet:events:"

// EventStore owns the five event collections of one user. The whole state
// is serialized as a single blob under one well-known key in the backing
// key-value collaborator.
//
// Persistence failures are logged and swallowed: callers always get the
// in-memory result, so a flaky backend never blocks logging or analytics.
type EventStore struct {
	kv     storage.Store
	logger *zap.Logger
	key    string
	snap   models.Snapshot
}

// NewEventStore loads the user's snapshot from the collaborator. A missing
// key, a read failure or a corrupt blob all degrade to the empty-store
// default; on first use the default blob is written back.
func NewEventStore(ctx context.Context, kv storage.Store, logger *zap.Logger, userID string) *EventStore {
	s := &EventStore{
		kv:     kv,
		logger: logger,
		key:    storeKeyPrefix + userID,
		snap:   models.EmptySnapshot(),
	}

	blob, err := kv.Get(ctx, s.key)
	switch {
	case err == storage.ErrNotFound:
		s.persist(ctx)
	case err != nil:
		logger.Warn("event store: read failed, starting empty",
			zap.String("key", s.key), zap.Error(err))
	default:
		var snap models.Snapshot
		if err := json.Unmarshal(blob, &snap); err != nil {
			logger.Warn("event store: corrupt snapshot, starting empty",
				zap.String("key", s.key), zap.Error(err))
		} else {
			s.snap = normalize(snap)
		}
	}
	return s
}

func normalize(snap models.Snapshot) models.Snapshot {
	if snap.Meals == nil {
		snap.Meals = []models.MealEvent{}
	}
	if snap.Activities == nil {
		snap.Activities = []models.ActivityEvent{}
	}
	if snap.Glucose == nil {
		snap.Glucose = []models.GlucoseReading{}
	}
	if snap.Sleep == nil {
		snap.Sleep = []models.SleepEvent{}
	}
	if snap.Stress == nil {
		snap.Stress = []models.StressEvent{}
	}
	return snap
}

// Snapshot returns the full current state by value; callers can hold it
// across a whole computation without seeing later writes.
func (s *EventStore) Snapshot() models.Snapshot {
	out := models.EmptySnapshot()
	out.Meals = append(out.Meals, s.snap.Meals...)
	out.Activities = append(out.Activities, s.snap.Activities...)
	out.Glucose = append(out.Glucose, s.snap.Glucose...)
	out.Sleep = append(out.Sleep, s.snap.Sleep...)
	out.Stress = append(out.Stress, s.snap.Stress...)
	return out
}

// AppendMeal assigns an id, inserts the meal preserving insertion order
// and persists the store. The stored record is returned.
func (s *EventStore) AppendMeal(ctx context.Context, m models.MealEvent) models.MealEvent {
	m.ID = uuid.NewString()
	if m.Timestamp == 0 {
		m.Timestamp = time.Now().UnixMilli()
	}
	s.snap.Meals = append(s.snap.Meals, m)
	s.persist(ctx)
	return m
}

func (s *EventStore) AppendActivity(ctx context.Context, a models.ActivityEvent) models.ActivityEvent {
	a.ID = uuid.NewString()
	if a.Timestamp == 0 {
		a.Timestamp = time.Now().UnixMilli()
	}
	s.snap.Activities = append(s.snap.Activities, a)
	s.persist(ctx)
	return a
}

func (s *EventStore) AppendGlucose(ctx context.Context, g models.GlucoseReading) models.GlucoseReading {
	g.ID = uuid.NewString()
	if g.Timestamp == 0 {
		g.Timestamp = time.Now().UnixMilli()
	}
	s.snap.Glucose = append(s.snap.Glucose, g)
	s.persist(ctx)
	return g
}

func (s *EventStore) AppendSleep(ctx context.Context, sl models.SleepEvent) models.SleepEvent {
	sl.ID = uuid.NewString()
	if sl.Date == "" {
		sl.Date = time.Now().Format("2006-01-02")
	}
	s.snap.Sleep = append(s.snap.Sleep, sl)
	s.persist(ctx)
	return sl
}

func (s *EventStore) AppendStress(ctx context.Context, st models.StressEvent) models.StressEvent {
	st.ID = uuid.NewString()
	if st.Timestamp == 0 {
		st.Timestamp = time.Now().UnixMilli()
	}
	s.snap.Stress = append(s.snap.Stress, st)
	s.persist(ctx)
	return st
}

// Remove deletes one entry from a collection if present; a missing id is
// a no-op, not an error.
func (s *EventStore) Remove(ctx context.Context, kind models.Kind, id string) {
	switch kind {
	case models.KindMeals:
		s.snap.Meals = deleteByID(s.snap.Meals, id, func(m models.MealEvent) string { return m.ID })
	case models.KindActivities:
		s.snap.Activities = deleteByID(s.snap.Activities, id, func(a models.ActivityEvent) string { return a.ID })
	case models.KindGlucose:
		s.snap.Glucose = deleteByID(s.snap.Glucose, id, func(g models.GlucoseReading) string { return g.ID })
	case models.KindSleep:
		s.snap.Sleep = deleteByID(s.snap.Sleep, id, func(sl models.SleepEvent) string { return sl.ID })
	case models.KindStress:
		s.snap.Stress = deleteByID(s.snap.Stress, id, func(st models.StressEvent) string { return st.ID })
	}
	s.persist(ctx)
}

func deleteByID[T any](events []T, id string, idOf func(T) string) []T {
	for i, e := range events {
		if idOf(e) == id {
			return append(events[:i:i], events[i+1:]...)
		}
	}
	return events
}

func (s *EventStore) persist(ctx context.Context) {
	blob, err := json.Marshal(s.snap)
	if err != nil {
		s.logger.Warn("event store: marshal failed", zap.String("key", s.key), zap.Error(err))
		return
	}
	if err := s.kv.Set(ctx, s.key, blob); err != nil {
		s.logger.Warn("event store: persist failed", zap.String("key", s.key), zap.Error(err))
	}
}
