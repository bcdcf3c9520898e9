package mastery

import (
	"math"
	"testing"
	"time"
)

var now = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func TestApply_CreateCorrect(t *testing.T) {
	st := Apply(nil, "u1", "s1", true, 45, now)
	if st.AttemptCount != 1 || st.CorrectCount != 1 {
		t.Errorf("counts = %d/%d, want 1/1", st.CorrectCount, st.AttemptCount)
	}
	if st.Accuracy != 100 {
		t.Errorf("accuracy = %f, want 100", st.Accuracy)
	}
	if st.AvgTimeSec != 45 || st.TotalTimeSec != 45 {
		t.Errorf("time = total %d avg %f, want 45/45", st.TotalTimeSec, st.AvgTimeSec)
	}
	if st.Level != LevelDeveloping {
		t.Errorf("level = %q, want developing on first attempt", st.Level)
	}
	if !st.LastAttemptedAt.Equal(now) {
		t.Errorf("last attempted = %v, want %v", st.LastAttemptedAt, now)
	}
}

func TestApply_CreateIncorrect(t *testing.T) {
	st := Apply(nil, "u1", "s1", false, 80, now)
	if st.CorrectCount != 0 || st.Accuracy != 0 {
		t.Errorf("got correct=%d accuracy=%f, want 0/0", st.CorrectCount, st.Accuracy)
	}
	if st.Level != LevelDeveloping {
		t.Errorf("level = %q, want developing on first attempt", st.Level)
	}
}

func TestApply_UpdateAggregates(t *testing.T) {
	st := Apply(nil, "u1", "s1", true, 60, now)
	st = Apply(&st, "u1", "s1", false, 120, now.Add(time.Minute))

	if st.AttemptCount != 2 || st.CorrectCount != 1 {
		t.Errorf("counts = %d/%d, want 1/2", st.CorrectCount, st.AttemptCount)
	}
	if st.Accuracy != 50 {
		t.Errorf("accuracy = %f, want 50", st.Accuracy)
	}
	if st.TotalTimeSec != 180 || st.AvgTimeSec != 90 {
		t.Errorf("time = total %d avg %f, want 180/90", st.TotalTimeSec, st.AvgTimeSec)
	}
}

func TestApply_LevelThresholds(t *testing.T) {
	tests := []struct {
		name     string
		correct  int
		total    int
		want     Level
	}{
		{"under 50 is weak", 2, 5, LevelWeak},
		{"exactly 50 is developing", 3, 6, LevelDeveloping},
		{"high accuracy low volume stays developing", 4, 4, LevelDeveloping},
		{"80 with 5 attempts is strong", 4, 5, LevelStrong},
		{"high accuracy high volume is strong", 9, 10, LevelStrong},
		{"79 with many attempts is developing", 79, 100, LevelDeveloping},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var st SkillState
			var prior *SkillState
			at := now
			for i := 0; i < tt.total; i++ {
				st = Apply(prior, "u", "s", i < tt.correct, 60, at)
				prior = &st
				at = at.Add(time.Second)
			}
			if st.Level != tt.want {
				t.Errorf("%d/%d: level = %q, want %q", tt.correct, tt.total, st.Level, tt.want)
			}
		})
	}
}

// Accuracy always equals 100 × correct/attempts, whatever the sequence.
func TestApply_AccuracyConsistency(t *testing.T) {
	pattern := []bool{true, false, true, true, false, false, true, true, true, false}
	var prior *SkillState
	var st SkillState
	at := now
	for i, correct := range pattern {
		st = Apply(prior, "u", "s", correct, 30+i, at)
		prior = &st
		at = at.Add(time.Minute)

		want := float64(st.CorrectCount) / float64(st.AttemptCount) * 100
		if math.Abs(st.Accuracy-want) > 1e-9 {
			t.Fatalf("step %d: accuracy = %f, want %f", i, st.Accuracy, want)
		}
		if st.Accuracy < 0 || st.Accuracy > 100 {
			t.Fatalf("step %d: accuracy %f out of [0,100]", i, st.Accuracy)
		}
	}
}

func TestApply_DoesNotMutatePrior(t *testing.T) {
	st := Apply(nil, "u", "s", true, 60, now)
	snapshot := st
	Apply(&st, "u", "s", false, 90, now.Add(time.Minute))
	if st != snapshot {
		t.Errorf("prior mutated: %+v != %+v", st, snapshot)
	}
}
