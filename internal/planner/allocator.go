package planner

import "math"

// Allocation rule constants.
const (
	// A mock is reserved when the cycle is large enough or the exam is close.
	mockMinTotal   = 5
	mockUrgentDays = 7

	// Both drill steps claim 40% (rounded up) of the remainder they see.
	drillShare = 0.4

	focusedDrillCap = 3
	mixedDrillCap   = 2
)

// AllocateTaskMix partitions total tasks across the five task types.
//
// The steps run in a fixed order and each consumes from the remainder left
// by the previous one, so the allocation is greedy, not globally optimal:
//
//  1. Reserve one mock if total ≥ 5 or days remaining ≤ 7.
//  2. Focused drills: min(ceil(rem × 0.4), weak skills, 3).
//  3. Mixed drills: min(ceil(rem × 0.4), 2), on the post-focused remainder.
//  4. Split the rest evenly between flashcards and review, review taking
//     the odd leftover unit.
//
// The sub-counts always sum exactly to total.
func AllocateTaskMix(total, daysRemaining, weakSkillCount int) TaskMix {
	var mix TaskMix
	remainder := total

	if total >= mockMinTotal || daysRemaining <= mockUrgentDays {
		mix.Mock = 1
		remainder--
	}

	mix.FocusedDrill = minInt(ceilShare(remainder), weakSkillCount, focusedDrillCap)
	remainder -= mix.FocusedDrill

	mix.MixedDrill = minInt(ceilShare(remainder), mixedDrillCap)
	remainder -= mix.MixedDrill

	mix.Flashcard = remainder / 2
	mix.Review = remainder - mix.Flashcard

	return mix
}

func ceilShare(remainder int) int {
	return int(math.Ceil(float64(remainder) * drillShare))
}

func minInt(vals ...int) int {
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
