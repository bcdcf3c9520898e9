package planner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepwise/backend/internal/logging"
	"github.com/prepwise/backend/internal/mastery"
	"github.com/prepwise/backend/internal/store"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	st, err := store.Open("file::memory:?cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return NewService(st, logging.Nop()), st
}

func TestGenerate_NoProfile(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Generate(context.Background(), "u1")
	var pe *PreconditionError
	require.True(t, errors.As(err, &pe))
	assert.ElementsMatch(t, []string{"package_length_days", "daily_minutes"}, pe.MissingFields)
}

func TestGenerate_PartialProfile(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	require.NoError(t, st.Repos().Profiles.Upsert(ctx, store.Profile{
		UserID:            "u1",
		PackageLengthDays: 30,
		Phase:             "baseline",
	}))

	_, err := svc.Generate(ctx, "u1")
	var pe *PreconditionError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, []string{"daily_minutes"}, pe.MissingFields)
	assert.Contains(t, pe.Error(), "daily_minutes")
}

func TestGenerate_FreshPackage(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	require.NoError(t, st.Repos().Profiles.Upsert(ctx, store.Profile{
		UserID:            "u1",
		PackageLengthDays: 30,
		DailyMinutes:      60, // budget of 5 tasks
		Phase:             "baseline",
	}))

	res, err := svc.Generate(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 5, res.TaskCount)
	assert.Equal(t, 30, res.DaysRemaining)
	assert.Equal(t, 0, res.WeakSkills)

	require.NotNil(t, res.Cycle)
	assert.Equal(t, "active", res.Cycle.Status)
	assert.Len(t, res.Cycle.Tasks, 5)

	// total ≥ 5 forces a mock; no weak skills means no focused drills.
	c := res.Cycle.Counts
	assert.Equal(t, 1, c.Mock)
	assert.Equal(t, 0, c.FocusedDrill)
	assert.Equal(t, 5, c.FocusedDrill+c.MixedDrill+c.Mock+c.Flashcard+c.Review)

	// Tasks come out in sequence order with pending status.
	for i, task := range res.Cycle.Tasks {
		assert.Equal(t, i+1, task.Sequence)
		assert.Equal(t, "pending", task.Status)
	}

	// Generation flips the profile phase.
	profile, err := st.Repos().Profiles.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "plan-active", profile.Phase)
}

func TestGenerate_CountsWeakSkills(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	require.NoError(t, st.Repos().Profiles.Upsert(ctx, store.Profile{
		UserID:            "u1",
		PackageLengthDays: 45,
		DailyMinutes:      90, // budget of 6 tasks
	}))

	now := time.Now().UTC()
	states := []struct {
		skill string
		level mastery.Level
	}{
		{"percentages", mastery.LevelWeak},
		{"ratios", mastery.LevelWeak},
		{"inference", mastery.LevelStrong},
		{"vocab", mastery.LevelDeveloping},
	}
	for _, s := range states {
		require.NoError(t, st.Repos().Skills.Upsert(ctx, mastery.SkillState{
			UserID:          "u1",
			SkillID:         s.skill,
			AttemptCount:    6,
			CorrectCount:    3,
			Accuracy:        50,
			AvgTimeSec:      80,
			Level:           s.level,
			LastAttemptedAt: now,
		}))
	}

	res, err := svc.Generate(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, res.WeakSkills)
	assert.Equal(t, 2, res.Cycle.Counts.FocusedDrill)
	assert.Equal(t, 2, res.Cycle.WeakSkillCount)
}

func TestGenerate_DaysRemainingFromStart(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	started := time.Now().UTC().Add(-10 * 24 * time.Hour)
	require.NoError(t, st.Repos().Profiles.Upsert(ctx, store.Profile{
		UserID:            "u1",
		PackageLengthDays: 30,
		DailyMinutes:      45,
		PackageStartedAt:  &started,
	}))

	res, err := svc.Generate(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 20, res.DaysRemaining)
}

func TestGenerate_ExpiredPackageClampsToZero(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	started := time.Now().UTC().Add(-60 * 24 * time.Hour)
	require.NoError(t, st.Repos().Profiles.Upsert(ctx, store.Profile{
		UserID:            "u1",
		PackageLengthDays: 30,
		DailyMinutes:      45,
		PackageStartedAt:  &started,
	}))

	res, err := svc.Generate(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, res.DaysRemaining)
	// days ≤ 7 forces a mock even on a small budget.
	assert.Equal(t, 1, res.Cycle.Counts.Mock)
}
