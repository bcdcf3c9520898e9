package diagnosis

import "testing"

func TestDeriveTags_CorrectAlwaysEmpty(t *testing.T) {
	for _, d := range []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, "unknown"} {
		for _, lvl := range []CognitiveLevel{LevelL1, LevelL2, LevelL3} {
			for _, ts := range []int{0, 30, 90, 500} {
				tags := DeriveTags(DeriveInput{Correct: true, Difficulty: d, TimeSpentSec: ts, CognitiveLevel: lvl})
				if len(tags) != 0 {
					t.Errorf("correct answer (d=%s lvl=%s ts=%d) got tags %v, want none", d, lvl, ts, tags)
				}
			}
		}
	}
}

func TestDeriveTags_WrongNeverEmpty(t *testing.T) {
	for _, d := range []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, "unknown"} {
		tags := DeriveTags(DeriveInput{Correct: false, Difficulty: d, TimeSpentSec: 90})
		if len(tags) == 0 {
			t.Errorf("wrong answer with difficulty %q got no tags", d)
		}
	}
}

func TestDeriveTags_RushedHard(t *testing.T) {
	// Hard expects 120s; 40s is under the 60s rushed threshold.
	tags := DeriveTags(DeriveInput{Correct: false, Difficulty: DifficultyHard, TimeSpentSec: 40})
	if !HasTag(tags, TagRushed) {
		t.Errorf("got %v, want rushed tag", tags)
	}
	if !HasTag(tags, TagAdvancedTopicReview) {
		t.Errorf("got %v, want advanced-topic-review tag", tags)
	}
}

func TestDeriveTags_RushedBoundary(t *testing.T) {
	// Easy expects 60s; rushed requires strictly under 30s.
	tags := DeriveTags(DeriveInput{Correct: false, Difficulty: DifficultyEasy, TimeSpentSec: 30})
	if HasTag(tags, TagRushed) {
		t.Errorf("exactly 50%% of expected time should not be rushed, got %v", tags)
	}
	tags = DeriveTags(DeriveInput{Correct: false, Difficulty: DifficultyEasy, TimeSpentSec: 29})
	if !HasTag(tags, TagRushed) {
		t.Errorf("29s on easy should be rushed, got %v", tags)
	}
}

func TestDeriveTags_WeakConceptBoundary(t *testing.T) {
	// Medium expects 90s; weak-concept requires strictly over 135s.
	tags := DeriveTags(DeriveInput{Correct: false, Difficulty: DifficultyMedium, TimeSpentSec: 135})
	if HasTag(tags, TagWeakConcept) {
		t.Errorf("exactly 150%% of expected time should not be weak-concept, got %v", tags)
	}
	tags = DeriveTags(DeriveInput{Correct: false, Difficulty: DifficultyMedium, TimeSpentSec: 136})
	if !HasTag(tags, TagWeakConcept) {
		t.Errorf("136s on medium should be weak-concept, got %v", tags)
	}
}

func TestDeriveTags_DifficultyTag(t *testing.T) {
	tests := []struct {
		difficulty Difficulty
		want       ErrorTag
	}{
		{DifficultyEasy, TagFundamentalGap},
		{DifficultyMedium, TagNeedsPractice},
		{DifficultyHard, TagAdvancedTopicReview},
		{"unknown", TagNeedsPractice},
	}
	for _, tt := range tests {
		tags := DeriveTags(DeriveInput{Correct: false, Difficulty: tt.difficulty, TimeSpentSec: 90})
		if !HasTag(tags, tt.want) {
			t.Errorf("difficulty %q: got %v, want %q", tt.difficulty, tags, tt.want)
		}
	}
}

func TestDeriveTags_AnalyticalWeakness(t *testing.T) {
	tags := DeriveTags(DeriveInput{Correct: false, Difficulty: DifficultyMedium, TimeSpentSec: 90, CognitiveLevel: LevelL3})
	if !HasTag(tags, TagAnalyticalWeakness) {
		t.Errorf("L3 wrong answer should carry analytical-weakness, got %v", tags)
	}
	tags = DeriveTags(DeriveInput{Correct: false, Difficulty: DifficultyMedium, TimeSpentSec: 90, CognitiveLevel: LevelL2})
	if HasTag(tags, TagAnalyticalWeakness) {
		t.Errorf("L2 wrong answer should not carry analytical-weakness, got %v", tags)
	}
}

func TestDeriveTags_UnknownDifficultyUsesDefaultTime(t *testing.T) {
	// Default expected time is 90s, so 44s is rushed and 136s is weak-concept.
	tags := DeriveTags(DeriveInput{Correct: false, Difficulty: "impossible", TimeSpentSec: 44})
	if !HasTag(tags, TagRushed) {
		t.Errorf("got %v, want rushed under default expected time", tags)
	}
	tags = DeriveTags(DeriveInput{Correct: false, Difficulty: "impossible", TimeSpentSec: 136})
	if !HasTag(tags, TagWeakConcept) {
		t.Errorf("got %v, want weak-concept over default expected time", tags)
	}
}

func TestTagStrings(t *testing.T) {
	if got := TagStrings(nil); got != nil {
		t.Errorf("TagStrings(nil) = %v, want nil", got)
	}
	got := TagStrings([]ErrorTag{TagRushed, TagNeedsPractice})
	if len(got) != 2 || got[0] != "rushed" || got[1] != "needs-practice" {
		t.Errorf("TagStrings = %v", got)
	}
}
