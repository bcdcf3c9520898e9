package construct

import (
	"math/rand"
	"testing"
)

func TestApplyImpact_Create(t *testing.T) {
	st := ApplyImpact(nil, "u1", "reasoning", 0.5)
	if st.Score != 55 {
		t.Errorf("score = %f, want 55 (50 + 0.5×10)", st.Score)
	}
	if st.Confidence != 10 {
		t.Errorf("confidence = %f, want 10", st.Confidence)
	}
	if st.Trend != TrendStable {
		t.Errorf("trend = %q, want stable", st.Trend)
	}
	if st.DataPoints != 1 {
		t.Errorf("data points = %d, want 1", st.DataPoints)
	}
	if st.UserID != "u1" || st.Construct != "reasoning" {
		t.Errorf("identity not carried: %+v", st)
	}
}

func TestApplyImpact_CreateClamped(t *testing.T) {
	st := ApplyImpact(nil, "u1", "attention", -8)
	if st.Score != 0 {
		t.Errorf("score = %f, want clamp at 0", st.Score)
	}
	st = ApplyImpact(nil, "u1", "attention", 8)
	if st.Score != 100 {
		t.Errorf("score = %f, want clamp at 100", st.Score)
	}
}

func TestApplyImpact_UpdateUsesSmallerGain(t *testing.T) {
	prior := &State{UserID: "u1", Construct: "speed", Score: 50, Confidence: 10, Trend: TrendStable, DataPoints: 1}
	st := ApplyImpact(prior, "u1", "speed", 1)
	if st.Score != 55 {
		t.Errorf("score = %f, want 55 (50 + 1×5)", st.Score)
	}
	if st.DataPoints != 2 {
		t.Errorf("data points = %d, want 2", st.DataPoints)
	}
}

func TestApplyImpact_TrendDeadband(t *testing.T) {
	prior := &State{Score: 50, Confidence: 10, DataPoints: 3}

	// +0.4 impact moves score by exactly +2: inside the deadband.
	st := ApplyImpact(prior, "u", "c", 0.4)
	if st.Trend != TrendStable {
		t.Errorf("+2 move: trend = %q, want stable", st.Trend)
	}

	st = ApplyImpact(prior, "u", "c", 0.5)
	if st.Trend != TrendImproving {
		t.Errorf("+2.5 move: trend = %q, want improving", st.Trend)
	}

	st = ApplyImpact(prior, "u", "c", -0.5)
	if st.Trend != TrendDeclining {
		t.Errorf("-2.5 move: trend = %q, want declining", st.Trend)
	}
}

func TestApplyImpact_ConfidenceMonotoneCapped(t *testing.T) {
	st := ApplyImpact(nil, "u", "reading", 0)
	prev := st.Confidence
	for i := 0; i < 60; i++ {
		st = ApplyImpact(&st, "u", "reading", 0.1)
		if st.Confidence < prev {
			t.Fatalf("confidence decreased: %f -> %f", prev, st.Confidence)
		}
		if st.Confidence > MaxConfidence {
			t.Fatalf("confidence %f exceeds cap %f", st.Confidence, MaxConfidence)
		}
		prev = st.Confidence
	}
	if st.Confidence != MaxConfidence {
		t.Errorf("confidence = %f after 60 updates, want %f", st.Confidence, MaxConfidence)
	}
}

// Score stays within bounds for any sequence of impacts.
func TestApplyImpact_ScoreBoundedUnderRandomSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for run := 0; run < 20; run++ {
		st := ApplyImpact(nil, "u", "computation", rng.Float64()*4-2)
		for i := 0; i < 200; i++ {
			st = ApplyImpact(&st, "u", "computation", rng.Float64()*4-2)
			if st.Score < MinScore || st.Score > MaxScore {
				t.Fatalf("score %f out of bounds at step %d", st.Score, i)
			}
		}
	}
}

func TestApplyImpact_DataPointsMonotonic(t *testing.T) {
	st := ApplyImpact(nil, "u", "speed", 0.2)
	for i := 2; i <= 10; i++ {
		st = ApplyImpact(&st, "u", "speed", -0.2)
		if st.DataPoints != i {
			t.Fatalf("data points = %d, want %d", st.DataPoints, i)
		}
	}
}
