package server

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

	"github.com/prepwise/backend/internal/config"
	"github.com/prepwise/backend/internal/logging"
	"github.com/prepwise/backend/internal/store"
)

func newTestServer(t *testing.T) (*Server, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	st, err := store.Open("file::memory:?cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	srv := New(config.Config{Addr: ":0", Env: "dev"}, st, logging.Nop())
	return srv, st
}

func doJSON(t *testing.T, srv *Server, method, path, user string, body any) *httptest.ResponseRecorder {
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
	srv.Handler().ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func seedQuestion(t *testing.T, st *store.Store, q store.Question) *store.Question {
	t.Helper()
	created, err := st.Repos().Questions.Create(context.Background(), q)
	require.NoError(t, err)
	return created
}

func TestHealthz(t *testing.T) {
	srv, _ := newTestServer(t)
	w := doJSON(t, srv, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMissingUserHeader(t *testing.T) {
	srv, _ := newTestServer(t)
	w := doJSON(t, srv, http.MethodGet, "/api/skills", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSubmitAttempt(t *testing.T) {
	srv, st := newTestServer(t)
	q := seedQuestion(t, st, store.Question{
		SkillID:          "percentages",
		Difficulty:       "easy",
		AnswerFormat:     "single-choice-5",
		CorrectAnswer:    "B",
		ConstructWeights: map[string]float64{"computation": 1.0},
	})

	w := doJSON(t, srv, http.MethodPost, "/api/attempts", "u1", map[string]any{
		"question_id":      q.ID,
		"submitted_answer": "B",
		"time_spent_sec":   40,
		"context_type":     "drill",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		AttemptID string   `json:"attempt_id"`
		IsCorrect bool     `json:"is_correct"`
		ErrorTags []string `json:"error_tags"`
	}
	decode(t, w, &resp)
	assert.NotEmpty(t, resp.AttemptID)
	assert.True(t, resp.IsCorrect)
	assert.Empty(t, resp.ErrorTags)
}

func TestSubmitAttempt_BadRequest(t *testing.T) {
	srv, _ := newTestServer(t)
	w := doJSON(t, srv, http.MethodPost, "/api/attempts", "u1", map[string]any{
		"submitted_answer": "B",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitAttempt_UnknownQuestion(t *testing.T) {
	srv, _ := newTestServer(t)
	w := doJSON(t, srv, http.MethodPost, "/api/attempts", "u1", map[string]any{
		"question_id":      "missing",
		"submitted_answer": "B",
		"time_spent_sec":   40,
		"context_type":     "drill",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGeneratePlan_ProfileIncomplete(t *testing.T) {
	srv, _ := newTestServer(t)
	w := doJSON(t, srv, http.MethodPost, "/api/plans", "u1", nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp struct {
		MissingFields []string `json:"missing_fields"`
	}
	decode(t, w, &resp)
	assert.ElementsMatch(t, []string{"package_length_days", "daily_minutes"}, resp.MissingFields)
}

func TestPlanLifecycle(t *testing.T) {
	srv, st := newTestServer(t)
	ctx := context.Background()
	require.NoError(t, st.Repos().Profiles.Upsert(ctx, store.Profile{
		UserID:            "u1",
		PackageLengthDays: 30,
		DailyMinutes:      60,
		Phase:             "baseline",
	}))

	// No plan yet.
	w := doJSON(t, srv, http.MethodGet, "/api/plans/current", "u1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Generate.
	w = doJSON(t, srv, http.MethodPost, "/api/plans", "u1", nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var plan struct {
		CycleID   string `json:"cycle_id"`
		TaskCount int    `json:"task_count"`
		Tasks     []struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"tasks"`
	}
	decode(t, w, &plan)
	assert.Equal(t, 5, plan.TaskCount)
	require.Len(t, plan.Tasks, 5)

	// Visible as the current plan.
	w = doJSON(t, srv, http.MethodGet, "/api/plans/current", "u1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var current struct {
		CycleID string `json:"cycle_id"`
	}
	decode(t, w, &current)
	assert.Equal(t, plan.CycleID, current.CycleID)

	// Complete the first task.
	w = doJSON(t, srv, http.MethodPatch, "/api/plans/tasks/"+plan.Tasks[0].ID+"/complete", "u1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var task struct {
		Status      string  `json:"status"`
		CompletedAt *string `json:"completed_at"`
	}
	decode(t, w, &task)
	assert.Equal(t, "completed", task.Status)
	assert.NotNil(t, task.CompletedAt)

	// Another user cannot complete it.
	w = doJSON(t, srv, http.MethodPatch, "/api/plans/tasks/"+plan.Tasks[1].ID+"/complete", "u2", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListSkillsAndConstructs(t *testing.T) {
	srv, st := newTestServer(t)
	q := seedQuestion(t, st, store.Question{
		SkillID:          "ratios",
		Difficulty:       "medium",
		AnswerFormat:     "fill-in",
		CorrectAnswer:    "7",
		ConstructWeights: map[string]float64{"computation": 0.6, "reasoning": 0.4},
	})
	w := doJSON(t, srv, http.MethodPost, "/api/attempts", "u1", map[string]any{
		"question_id":      q.ID,
		"submitted_answer": "7",
		"time_spent_sec":   70,
		"context_type":     "drill",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, srv, http.MethodGet, "/api/skills", "u1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var skills struct {
		Skills []struct {
			SkillID      string  `json:"skill_id"`
			Accuracy     float64 `json:"accuracy"`
			MasteryLevel string  `json:"mastery_level"`
		} `json:"skills"`
	}
	decode(t, w, &skills)
	require.Len(t, skills.Skills, 1)
	assert.Equal(t, "ratios", skills.Skills[0].SkillID)
	assert.Equal(t, 100.0, skills.Skills[0].Accuracy)
	assert.Equal(t, "developing", skills.Skills[0].MasteryLevel)

	w = doJSON(t, srv, http.MethodGet, "/api/constructs", "u1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var constructs struct {
		Constructs []struct {
			Construct string  `json:"construct"`
			Score     float64 `json:"score"`
		} `json:"constructs"`
	}
	decode(t, w, &constructs)
	assert.Len(t, constructs.Constructs, 2)

	// Other users see nothing.
	w = doJSON(t, srv, http.MethodGet, "/api/skills", "u2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var empty struct {
		Skills []any `json:"skills"`
	}
	decode(t, w, &empty)
	assert.Empty(t, empty.Skills)
}
