package construct

import (
	"math"
	"testing"

	"github.com/prepwise/backend/internal/diagnosis"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestImpacts_CorrectPositive(t *testing.T) {
	weights := map[string]float64{"reasoning": 0.6, "computation": 0.4}
	impacts := Impacts(true, weights, nil)
	if len(impacts) != 2 {
		t.Fatalf("got %d impacts, want 2", len(impacts))
	}
	if !almostEqual(impacts["reasoning"], 0.6) {
		t.Errorf("reasoning = %f, want 0.6", impacts["reasoning"])
	}
	if !almostEqual(impacts["computation"], 0.4) {
		t.Errorf("computation = %f, want 0.4", impacts["computation"])
	}
}

func TestImpacts_IncorrectNegative(t *testing.T) {
	weights := map[string]float64{"speed": 0.5, "reading": 0.5}
	impacts := Impacts(false, weights, nil)
	if !almostEqual(impacts["speed"], -0.5) {
		t.Errorf("speed = %f, want -0.5", impacts["speed"])
	}
	if !almostEqual(impacts["reading"], -0.5) {
		t.Errorf("reading = %f, want -0.5", impacts["reading"])
	}
}

func TestImpacts_RushedPenaltyHitsAttention(t *testing.T) {
	weights := map[string]float64{"attention": 0.3, "reasoning": 0.7}
	tags := []diagnosis.ErrorTag{diagnosis.TagRushed, diagnosis.TagNeedsPractice}
	impacts := Impacts(false, weights, tags)
	if !almostEqual(impacts["attention"], -0.4) {
		t.Errorf("attention = %f, want -0.4 (base -0.3 minus 0.1 penalty)", impacts["attention"])
	}
	if !almostEqual(impacts["reasoning"], -0.7) {
		t.Errorf("reasoning = %f, want -0.7 (no penalty)", impacts["reasoning"])
	}
}

func TestImpacts_AnalyticalPenaltyHitsReasoning(t *testing.T) {
	weights := map[string]float64{"reasoning": 0.5}
	tags := []diagnosis.ErrorTag{diagnosis.TagAnalyticalWeakness, diagnosis.TagAdvancedTopicReview}
	impacts := Impacts(false, weights, tags)
	if !almostEqual(impacts["reasoning"], -0.6) {
		t.Errorf("reasoning = %f, want -0.6", impacts["reasoning"])
	}
}

func TestImpacts_PenaltySkippedWhenConstructUnweighted(t *testing.T) {
	// Rushed tag present but the question carries no attention weight.
	weights := map[string]float64{"computation": 1.0}
	tags := []diagnosis.ErrorTag{diagnosis.TagRushed, diagnosis.TagFundamentalGap}
	impacts := Impacts(false, weights, tags)
	if len(impacts) != 1 {
		t.Fatalf("got %d impacts, want 1 (penalties never add entries)", len(impacts))
	}
	if !almostEqual(impacts["computation"], -1.0) {
		t.Errorf("computation = %f, want -1.0", impacts["computation"])
	}
}

func TestImpacts_NoPenaltyWhenCorrect(t *testing.T) {
	// Tags should never appear with a correct answer, but the calculator
	// guards on correctness anyway.
	weights := map[string]float64{"attention": 1.0}
	tags := []diagnosis.ErrorTag{diagnosis.TagRushed}
	impacts := Impacts(true, weights, tags)
	if !almostEqual(impacts["attention"], 1.0) {
		t.Errorf("attention = %f, want 1.0", impacts["attention"])
	}
}

func TestImpacts_EmptyWeights(t *testing.T) {
	impacts := Impacts(false, nil, []diagnosis.ErrorTag{diagnosis.TagRushed})
	if len(impacts) != 0 {
		t.Errorf("got %v, want empty map", impacts)
	}
}
