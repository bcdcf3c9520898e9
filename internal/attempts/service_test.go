package attempts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepwise/backend/internal/logging"
	"github.com/prepwise/backend/internal/store"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	st, err := store.Open("file::memory:?cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return NewService(st, logging.Nop()), st
}

func seedQuestion(t *testing.T, st *store.Store, q store.Question) *store.Question {
	t.Helper()
	created, err := st.Repos().Questions.Create(context.Background(), q)
	require.NoError(t, err)
	return created
}

func TestSubmit_QuestionNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Submit(context.Background(), "u1", SubmitRequest{
		QuestionID: "missing", SubmittedAnswer: "A", TimeSpentSec: 30, ContextType: "drill",
	})
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestSubmit_CorrectAnswer(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	q := seedQuestion(t, st, store.Question{
		SkillID:       "percentages",
		Difficulty:    "easy",
		AnswerFormat:  "single-choice-5",
		CorrectAnswer: "B",
		ConstructWeights: map[string]float64{
			"computation": 0.7,
			"speed":       0.3,
		},
	})

	res, err := svc.Submit(ctx, "u1", SubmitRequest{
		QuestionID: q.ID, SubmittedAnswer: "b", TimeSpentSec: 40, ContextType: "drill", ContextID: "d1",
	})
	require.NoError(t, err)
	assert.True(t, res.IsCorrect)
	assert.Empty(t, res.ErrorTags)
	assert.NotEmpty(t, res.AttemptID)

	// Attempt persisted.
	attempts, err := st.Repos().Attempts.ListByUser(ctx, "u1", 0)
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.True(t, attempts[0].IsCorrect)
	assert.Equal(t, "percentages", attempts[0].SkillID)
	assert.Empty(t, attempts[0].ErrorTags)

	// Skill state created.
	skill, err := st.Repos().Skills.Get(ctx, "u1", "percentages")
	require.NoError(t, err)
	require.NotNil(t, skill)
	assert.Equal(t, 1, skill.AttemptCount)
	assert.Equal(t, 100.0, skill.Accuracy)

	// Construct states created from first impacts: 50 + w×10.
	comp, err := st.Repos().Constructs.Get(ctx, "u1", "computation")
	require.NoError(t, err)
	require.NotNil(t, comp)
	assert.InDelta(t, 57.0, comp.Score, 1e-9)

	speed, err := st.Repos().Constructs.Get(ctx, "u1", "speed")
	require.NoError(t, err)
	require.NotNil(t, speed)
	assert.InDelta(t, 53.0, speed.Score, 1e-9)
}

func TestSubmit_WrongRushedAnswer(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	q := seedQuestion(t, st, store.Question{
		SkillID:        "inference",
		Difficulty:     "hard",
		CognitiveLevel: "L3",
		AnswerFormat:   "single-choice-5",
		CorrectAnswer:  "C",
		ConstructWeights: map[string]float64{
			"attention": 0.2,
			"reasoning": 0.8,
		},
	})

	// 40s on a hard question (expected 120s) is rushed.
	res, err := svc.Submit(ctx, "u1", SubmitRequest{
		QuestionID: q.ID, SubmittedAnswer: "A", TimeSpentSec: 40, ContextType: "baseline",
	})
	require.NoError(t, err)
	assert.False(t, res.IsCorrect)
	assert.Contains(t, res.ErrorTags, "rushed")
	assert.Contains(t, res.ErrorTags, "advanced-topic-review")
	assert.Contains(t, res.ErrorTags, "analytical-weakness")

	// Attention: 50 + (−0.2 − 0.1)×10 = 47. Reasoning: 50 + (−0.8 − 0.1)×10 = 41.
	att, err := st.Repos().Constructs.Get(ctx, "u1", "attention")
	require.NoError(t, err)
	assert.InDelta(t, 47.0, att.Score, 1e-9)

	rsn, err := st.Repos().Constructs.Get(ctx, "u1", "reasoning")
	require.NoError(t, err)
	assert.InDelta(t, 41.0, rsn.Score, 1e-9)

	// Persisted attempt carries the impact map.
	attempts, err := st.Repos().Attempts.ListByUser(ctx, "u1", 0)
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.InDelta(t, -0.3, attempts[0].ConstructImpacts["attention"], 1e-9)
	assert.InDelta(t, -0.9, attempts[0].ConstructImpacts["reasoning"], 1e-9)
}

func TestSubmit_AggregatesAcrossAttempts(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	q := seedQuestion(t, st, store.Question{
		SkillID:       "ratios",
		Difficulty:    "medium",
		AnswerFormat:  "fill-in",
		CorrectAnswer: "12",
		ConstructWeights: map[string]float64{
			"computation": 1.0,
		},
	})

	answers := []struct {
		submitted string
		correct   bool
	}{
		{"12", true},
		{"13", false},
		{"12.0", true},
		{"12", true},
	}
	for _, a := range answers {
		res, err := svc.Submit(ctx, "u1", SubmitRequest{
			QuestionID: q.ID, SubmittedAnswer: a.submitted, TimeSpentSec: 60, ContextType: "drill",
		})
		require.NoError(t, err)
		assert.Equal(t, a.correct, res.IsCorrect)
	}

	skill, err := st.Repos().Skills.Get(ctx, "u1", "ratios")
	require.NoError(t, err)
	assert.Equal(t, 4, skill.AttemptCount)
	assert.Equal(t, 3, skill.CorrectCount)
	assert.InDelta(t, 75.0, skill.Accuracy, 1e-9)
	assert.InDelta(t, 60.0, skill.AvgTimeSec, 1e-9)

	comp, err := st.Repos().Constructs.Get(ctx, "u1", "computation")
	require.NoError(t, err)
	assert.Equal(t, 4, comp.DataPoints)
	// 50 +10 (create) then −5, +5, +5.
	assert.InDelta(t, 65.0, comp.Score, 1e-9)
	assert.Equal(t, 16.0, comp.Confidence)
}

func TestSubmit_ScoreStaysBounded(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	q := seedQuestion(t, st, store.Question{
		SkillID:       "vocab",
		Difficulty:    "easy",
		AnswerFormat:  "single-choice-5",
		CorrectAnswer: "A",
		ConstructWeights: map[string]float64{
			"reading": 1.0,
		},
	})

	for i := 0; i < 30; i++ {
		_, err := svc.Submit(ctx, "u1", SubmitRequest{
			QuestionID: q.ID, SubmittedAnswer: "A", TimeSpentSec: 20, ContextType: "flashcard",
		})
		require.NoError(t, err)

		state, err := st.Repos().Constructs.Get(ctx, "u1", "reading")
		require.NoError(t, err)
		assert.LessOrEqual(t, state.Score, 100.0)
		assert.GreaterOrEqual(t, state.Score, 0.0)
		assert.LessOrEqual(t, state.Confidence, 90.0)
	}

	state, err := st.Repos().Constructs.Get(ctx, "u1", "reading")
	require.NoError(t, err)
	assert.Equal(t, 100.0, state.Score)
	assert.Equal(t, 68.0, state.Confidence)
}

func TestSubmit_UnknownFormatScoredIncorrect(t *testing.T) {
	svc, st := newTestService(t)
	q := seedQuestion(t, st, store.Question{
		SkillID:       "essays",
		Difficulty:    "medium",
		AnswerFormat:  "essay",
		CorrectAnswer: "anything",
	})

	res, err := svc.Submit(context.Background(), "u1", SubmitRequest{
		QuestionID: q.ID, SubmittedAnswer: "anything", TimeSpentSec: 90, ContextType: "drill",
	})
	require.NoError(t, err)
	assert.False(t, res.IsCorrect)
	assert.Contains(t, res.ErrorTags, "needs-practice")
}
