package store

import (
	"context"
	"testing"
	"time"

	"github.com/prepwise/backend/internal/construct"
	"github.com/prepwise/backend/internal/mastery"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestQuestionCreateAndGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Repos().Questions

	created, err := repo.Create(ctx, Question{
		SkillID:       "fractions-add",
		Difficulty:    "medium",
		AnswerFormat:  "single-choice-5",
		CorrectAnswer: "C",
		ConstructWeights: map[string]float64{
			"computation": 0.6,
			"reasoning":   0.4,
		},
	})
	if err != nil {
		t.Fatalf("create question: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated question id")
	}
	if created.CognitiveLevel != "L1" {
		t.Errorf("cognitive level = %q, want default L1", created.CognitiveLevel)
	}

	got, err := repo.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get question: %v", err)
	}
	if got == nil {
		t.Fatal("expected question, got nil")
	}
	if got.CorrectAnswer != "C" || got.SkillID != "fractions-add" {
		t.Errorf("roundtrip mismatch: %+v", got)
	}
	if got.ConstructWeights["computation"] != 0.6 {
		t.Errorf("weights not persisted: %v", got.ConstructWeights)
	}

	missing, err := repo.Get(ctx, "no-such-id")
	if err != nil {
		t.Fatalf("get missing question: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown question id")
	}
}

func TestAttemptAppendAndList(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Repos().Attempts

	_, err := repo.Append(ctx, AttemptData{
		UserID:          "u1",
		QuestionID:      "q1",
		SkillID:         "s1",
		ContextType:     "drill",
		ContextID:       "d1",
		SubmittedAnswer: "B",
		IsCorrect:       false,
		TimeSpentSec:    40,
		ErrorTags:       []string{"rushed", "needs-practice"},
		ConstructImpacts: map[string]float64{
			"attention": -0.4,
		},
	})
	if err != nil {
		t.Fatalf("append attempt: %v", err)
	}

	_, err = repo.Append(ctx, AttemptData{
		UserID: "u1", QuestionID: "q2", SkillID: "s1",
		ContextType: "drill", SubmittedAnswer: "C", IsCorrect: true, TimeSpentSec: 55,
	})
	if err != nil {
		t.Fatalf("append second attempt: %v", err)
	}

	attempts, err := repo.ListByUser(ctx, "u1", 0)
	if err != nil {
		t.Fatalf("list attempts: %v", err)
	}
	if len(attempts) != 2 {
		t.Fatalf("got %d attempts, want 2", len(attempts))
	}

	var wrong *Attempt
	for i := range attempts {
		if !attempts[i].IsCorrect {
			wrong = &attempts[i]
		}
	}
	if wrong == nil {
		t.Fatal("wrong attempt not found")
	}
	if len(wrong.ErrorTags) != 2 {
		t.Errorf("error tags = %v, want 2 entries", wrong.ErrorTags)
	}
	if wrong.ConstructImpacts["attention"] != -0.4 {
		t.Errorf("impacts = %v", wrong.ConstructImpacts)
	}

	other, err := repo.ListByUser(ctx, "u2", 0)
	if err != nil {
		t.Fatalf("list other user: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("got %d attempts for other user, want 0", len(other))
	}
}

func TestSkillStateUpsertRoundtrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Repos().Skills

	if st, err := repo.Get(ctx, "u1", "s1"); err != nil || st != nil {
		t.Fatalf("expected nil state before first upsert, got %v / %v", st, err)
	}

	now := time.Now().UTC().Truncate(time.Second)
	first := mastery.Apply(nil, "u1", "s1", true, 45, now)
	if err := repo.Upsert(ctx, first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	got, err := repo.Get(ctx, "u1", "s1")
	if err != nil {
		t.Fatalf("get after create: %v", err)
	}
	if got == nil || got.AttemptCount != 1 || got.Accuracy != 100 {
		t.Fatalf("got %+v", got)
	}

	second := mastery.Apply(got, "u1", "s1", false, 90, now.Add(time.Minute))
	if err := repo.Upsert(ctx, second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	got, err = repo.Get(ctx, "u1", "s1")
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if got.AttemptCount != 2 || got.Accuracy != 50 {
		t.Errorf("after update: %+v", got)
	}
}

func TestSkillStateWeakSkillIDs(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Repos().Skills
	now := time.Now().UTC()

	seed := []struct {
		skill   string
		level   mastery.Level
	}{
		{"algebra", mastery.LevelWeak},
		{"geometry", mastery.LevelDeveloping},
		{"arithmetic", mastery.LevelWeak},
	}
	for _, sd := range seed {
		err := repo.Upsert(ctx, mastery.SkillState{
			UserID: "u1", SkillID: sd.skill, AttemptCount: 4, CorrectCount: 1,
			Accuracy: 25, Level: sd.level, LastAttemptedAt: now,
		})
		if err != nil {
			t.Fatalf("seed %s: %v", sd.skill, err)
		}
	}

	weak, err := repo.WeakSkillIDs(ctx, "u1")
	if err != nil {
		t.Fatalf("weak skills: %v", err)
	}
	if len(weak) != 2 || weak[0] != "algebra" || weak[1] != "arithmetic" {
		t.Errorf("weak = %v, want [algebra arithmetic]", weak)
	}
}

func TestConstructStateUpsertRoundtrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Repos().Constructs

	first := construct.ApplyImpact(nil, "u1", "reasoning", 0.5)
	if err := repo.Upsert(ctx, first); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.Get(ctx, "u1", "reasoning")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Score != 55 || got.DataPoints != 1 {
		t.Fatalf("got %+v", got)
	}

	second := construct.ApplyImpact(got, "u1", "reasoning", -1)
	if err := repo.Upsert(ctx, second); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err = repo.Get(ctx, "u1", "reasoning")
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if got.Score != 50 || got.DataPoints != 2 || got.Confidence != 12 {
		t.Errorf("after update: %+v", got)
	}

	all, err := repo.ListByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("got %d states, want 1", len(all))
	}
}

func TestPlanCycleCreateAndLatest(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Repos().Plans

	if c, err := repo.LatestCycle(ctx, "u1"); err != nil || c != nil {
		t.Fatalf("expected no cycle yet, got %v / %v", c, err)
	}

	counts := CycleCounts{Mock: 1, MixedDrill: 2, Flashcard: 1, Review: 1}
	cycle, err := repo.CreateCycle(ctx, CycleData{
		UserID: "u1",
		Counts: counts,
		TaskTypes: []string{
			"mixed-drill", "mixed-drill", "mock", "flashcard", "review",
		},
		DaysRemaining:  10,
		WeakSkillCount: 0,
	})
	if err != nil {
		t.Fatalf("create cycle: %v", err)
	}
	if cycle.TaskCount != 5 {
		t.Errorf("task count = %d, want 5", cycle.TaskCount)
	}
	if len(cycle.Tasks) != 5 {
		t.Fatalf("got %d tasks, want 5", len(cycle.Tasks))
	}
	for i, task := range cycle.Tasks {
		if task.Sequence != i+1 {
			t.Errorf("task %d sequence = %d", i, task.Sequence)
		}
		if task.Status != "pending" {
			t.Errorf("task %d status = %q, want pending", i, task.Status)
		}
	}

	latest, err := repo.LatestCycle(ctx, "u1")
	if err != nil {
		t.Fatalf("latest cycle: %v", err)
	}
	if latest == nil || latest.ID != cycle.ID {
		t.Fatalf("latest = %+v, want cycle %s", latest, cycle.ID)
	}
	if latest.Counts != counts {
		t.Errorf("counts = %+v, want %+v", latest.Counts, counts)
	}
}

func TestPlanCompleteTask(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Repos().Plans

	cycle, err := repo.CreateCycle(ctx, CycleData{
		UserID:        "u1",
		Counts:        CycleCounts{Flashcard: 1, Review: 1},
		TaskTypes:     []string{"flashcard", "review"},
		DaysRemaining: 20,
	})
	if err != nil {
		t.Fatalf("create cycle: %v", err)
	}

	task, err := repo.CompleteTask(ctx, "u1", cycle.Tasks[0].ID)
	if err != nil {
		t.Fatalf("complete task: %v", err)
	}
	if task == nil || task.Status != "completed" || task.CompletedAt == nil {
		t.Fatalf("task = %+v", task)
	}

	// Unknown task and wrong owner both resolve to nil.
	if task, err := repo.CompleteTask(ctx, "u1", "no-such-task"); err != nil || task != nil {
		t.Errorf("unknown task: %v / %v", task, err)
	}
	if task, err := repo.CompleteTask(ctx, "u2", cycle.Tasks[1].ID); err != nil || task != nil {
		t.Errorf("foreign task: %v / %v", task, err)
	}
}

func TestProfileUpsertAndPhase(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Repos().Profiles

	if p, err := repo.Get(ctx, "u1"); err != nil || p != nil {
		t.Fatalf("expected no profile, got %v / %v", p, err)
	}

	started := time.Now().UTC().Truncate(time.Second)
	err := repo.Upsert(ctx, Profile{
		UserID: "u1", PackageLengthDays: 60, DailyMinutes: 45, PackageStartedAt: &started,
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	p, err := repo.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.PackageLengthDays != 60 || p.DailyMinutes != 45 {
		t.Errorf("profile = %+v", p)
	}
	if p.Phase != "onboarding" {
		t.Errorf("phase = %q, want default onboarding", p.Phase)
	}

	if err := repo.SetPhase(ctx, "u1", "plan-active"); err != nil {
		t.Fatalf("set phase: %v", err)
	}
	p, _ = repo.Get(ctx, "u1")
	if p.Phase != "plan-active" {
		t.Errorf("phase = %q, want plan-active", p.Phase)
	}

	if err := repo.SetPhase(ctx, "nobody", "baseline"); err == nil {
		t.Error("expected error setting phase for missing profile")
	}
}

func TestWithTxRollsBackOnError(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	errBoom := context.DeadlineExceeded // any sentinel works here
	err := s.WithTx(ctx, func(r *Repos) error {
		_, err := r.Attempts.Append(ctx, AttemptData{
			UserID: "u1", QuestionID: "q1", SkillID: "s1",
			ContextType: "drill", SubmittedAnswer: "A", TimeSpentSec: 10,
		})
		if err != nil {
			return err
		}
		return errBoom
	})
	if err == nil {
		t.Fatal("expected error from WithTx")
	}

	attempts, err := s.Repos().Attempts.ListByUser(ctx, "u1", 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(attempts) != 0 {
		t.Errorf("got %d attempts after rollback, want 0", len(attempts))
	}
}

func TestWithTxCommits(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.WithTx(ctx, func(r *Repos) error {
		_, err := r.Attempts.Append(ctx, AttemptData{
			UserID: "u1", QuestionID: "q1", SkillID: "s1",
			ContextType: "baseline", SubmittedAnswer: "A", IsCorrect: true, TimeSpentSec: 30,
		})
		if err != nil {
			return err
		}
		return r.Skills.Upsert(ctx, mastery.Apply(nil, "u1", "s1", true, 30, time.Now().UTC()))
	})
	if err != nil {
		t.Fatalf("WithTx: %v", err)
	}

	attempts, _ := s.Repos().Attempts.ListByUser(ctx, "u1", 0)
	if len(attempts) != 1 {
		t.Errorf("got %d attempts, want 1", len(attempts))
	}
	st, _ := s.Repos().Skills.Get(ctx, "u1", "s1")
	if st == nil || st.AttemptCount != 1 {
		t.Errorf("skill state = %+v", st)
	}
}

func TestDeleteUserData(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	r := s.Repos()

	q, err := r.Questions.Create(ctx, Question{
		SkillID: "ratios", Difficulty: "easy",
		AnswerFormat: "single-choice-5", CorrectAnswer: "A",
	})
	if err != nil {
		t.Fatalf("create question: %v", err)
	}

	for _, user := range []string{"u1", "u2"} {
		if _, err := r.Attempts.Append(ctx, AttemptData{
			UserID: user, QuestionID: q.ID, SkillID: "ratios",
			ContextType: "drill", SubmittedAnswer: "A", IsCorrect: true, TimeSpentSec: 30,
		}); err != nil {
			t.Fatalf("append attempt: %v", err)
		}
		if err := r.Skills.Upsert(ctx, mastery.SkillState{
			UserID: user, SkillID: "ratios", AttemptCount: 1, CorrectCount: 1,
			Accuracy: 100, AvgTimeSec: 30, Level: mastery.LevelDeveloping,
			LastAttemptedAt: time.Now().UTC(),
		}); err != nil {
			t.Fatalf("upsert skill: %v", err)
		}
		if err := r.Constructs.Upsert(ctx, construct.State{
			UserID: user, Construct: "speed", Score: 55, Confidence: 10,
			Trend: construct.TrendStable, DataPoints: 1,
		}); err != nil {
			t.Fatalf("upsert construct: %v", err)
		}
		if err := r.Profiles.Upsert(ctx, Profile{
			UserID: user, PackageLengthDays: 30, DailyMinutes: 45, Phase: "baseline",
		}); err != nil {
			t.Fatalf("upsert profile: %v", err)
		}
		if _, err := r.Plans.CreateCycle(ctx, CycleData{
			UserID: user,
			Counts: CycleCounts{Flashcard: 1, Review: 1},
			TaskTypes: []string{"flashcard", "review"},
			DaysRemaining: 20,
		}); err != nil {
			t.Fatalf("create cycle: %v", err)
		}
	}

	// 1 attempt + 1 skill + 1 construct + 1 profile + 1 cycle + 2 tasks.
	n, err := s.DeleteUserData(ctx, "u1")
	if err != nil {
		t.Fatalf("delete user data: %v", err)
	}
	if n != 7 {
		t.Errorf("deleted %d rows, want 7", n)
	}

	if got, err := r.Skills.Get(ctx, "u1", "ratios"); err != nil || got != nil {
		t.Errorf("u1 skill state survived delete: %v, %v", got, err)
	}
	if got, err := r.Profiles.Get(ctx, "u1"); err != nil || got != nil {
		t.Errorf("u1 profile survived delete: %v, %v", got, err)
	}

	// The other user is untouched.
	if got, err := r.Skills.Get(ctx, "u2", "ratios"); err != nil || got == nil {
		t.Errorf("u2 skill state missing after delete: %v, %v", got, err)
	}
	if got, err := r.Plans.LatestCycle(ctx, "u2"); err != nil || got == nil {
		t.Errorf("u2 cycle missing after delete: %v, %v", got, err)
	}
}
