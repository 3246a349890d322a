package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/oguzhnsglm/diyet-sub000/config"
	"github.com/oguzhnsglm/diyet-sub000/storage"
)

type memKV struct {
	m map[string][]byte
}

func (s *memKV) Get(_ context.Context, key string) ([]byte, error) {
	if blob, ok := s.m[key]; ok {
		return blob, nil
	}
	return nil, storage.ErrNotFound
}

func (s *memKV) Set(_ context.Context, key string, blob []byte) error {
	s.m[key] = append([]byte(nil), blob...)
	return nil
}

func (s *memKV) Remove(_ context.Context, key string) error {
	delete(s.m, key)
	return nil
}

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	config.Logger = zap.NewNop()
	config.Store = &memKV{m: map[string][]byte{}}
	return SetupRouter()
}

func doJSON(t *testing.T, r *gin.Engine, method, path, user string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set("X-User-ID", user)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestEstimateEndpoint(t *testing.T) {
	r := setupTestRouter()

	w := doJSON(t, r, http.MethodPost, "/food/estimate", "", gin.H{"text": "2 tabak pilav"})
	require.Equal(t, 200, w.Code)

	var est struct {
		Calories   float64 `json:"calories"`
		PlateCount float64 `json:"plateCount"`
		Confidence int     `json:"confidence"`
		Source     string  `json:"source"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &est))
	assert.Equal(t, "exact", est.Source)
	assert.Equal(t, 100, est.Confidence)
	assert.Equal(t, 2.0, est.PlateCount)
	assert.Equal(t, 420.0, est.Calories)
}

func TestUserScopeRequired(t *testing.T) {
	r := setupTestRouter()

	w := doJSON(t, r, http.MethodGet, "/events", "", nil)
	assert.Equal(t, 400, w.Code)
}

func TestEventLifecycle(t *testing.T) {
	r := setupTestRouter()

	w := doJSON(t, r, http.MethodPost, "/events/meals", "u1", gin.H{
		"foodName": "pilav", "carbs": 45, "calories": 210, "portion": "1 tabak",
	})
	require.Equal(t, 201, w.Code)

	var meal struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &meal))
	require.NotEmpty(t, meal.ID)

	w = doJSON(t, r, http.MethodPost, "/events/glucose", "u1", gin.H{"value": 120})
	require.Equal(t, 201, w.Code)

	// Unknown kinds and invalid enums are rejected.
	w = doJSON(t, r, http.MethodPost, "/events/notes", "u1", gin.H{})
	assert.Equal(t, 400, w.Code)
	w = doJSON(t, r, http.MethodPost, "/events/activities", "u1", gin.H{
		"type": "koşu", "duration": 30, "intensity": "extreme",
	})
	assert.Equal(t, 400, w.Code)

	var snap struct {
		Meals   []json.RawMessage `json:"meals"`
		Glucose []json.RawMessage `json:"glucose"`
	}
	w = doJSON(t, r, http.MethodGet, "/events", "u1", nil)
	require.Equal(t, 200, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Len(t, snap.Meals, 1)
	assert.Len(t, snap.Glucose, 1)

	// Another user sees an empty store.
	w = doJSON(t, r, http.MethodGet, "/events", "u2", nil)
	require.Equal(t, 200, w.Code)
	var other struct {
		Meals []json.RawMessage `json:"meals"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &other))
	assert.Empty(t, other.Meals)

	// Delete the meal; a second delete of the same id is still 204.
	w = doJSON(t, r, http.MethodDelete, "/events/meals/"+meal.ID, "u1", nil)
	assert.Equal(t, 204, w.Code)
	w = doJSON(t, r, http.MethodDelete, "/events/meals/"+meal.ID, "u1", nil)
	assert.Equal(t, 204, w.Code)
}

func TestPredictionEndpoints(t *testing.T) {
	r := setupTestRouter()

	// Seed one meal so meal prediction has analogous history without
	// usable deltas.
	w := doJSON(t, r, http.MethodPost, "/events/meals", "u1", gin.H{
		"foodName": "pilav", "carbs": 45, "calories": 210,
	})
	require.Equal(t, 201, w.Code)

	var pred struct {
		Prediction float64 `json:"prediction"`
		Confidence string  `json:"confidence"`
		Advice     string  `json:"advice"`
	}

	w = doJSON(t, r, http.MethodPost, "/predict/meal", "u1", gin.H{
		"carbs": 45, "currentGlucose": 110,
	})
	require.Equal(t, 200, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pred))
	assert.Equal(t, 245.0, pred.Prediction) // 110 + 45*3
	assert.Equal(t, "medium", pred.Confidence)
	assert.NotEmpty(t, pred.Advice)

	w = doJSON(t, r, http.MethodPost, "/predict/activity", "u1", gin.H{
		"type": "yürüyüş", "duration": 30, "intensity": "medium", "currentGlucose": 120,
	})
	require.Equal(t, 200, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pred))
	assert.Equal(t, 90.0, pred.Prediction) // 120 - 30*1.0
	assert.Equal(t, "low", pred.Confidence)
}

func TestInsightsEndpoint(t *testing.T) {
	r := setupTestRouter()

	w := doJSON(t, r, http.MethodGet, "/insights", "u1", nil)
	require.Equal(t, 200, w.Code)

	var body struct {
		Insights []string `json:"insights"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Insights, 1)
	assert.Contains(t, body.Insights[0], "Keep logging")

	w = doJSON(t, r, http.MethodGet, "/insights?window_days=0", "u1", nil)
	assert.Equal(t, 400, w.Code)
}
