package construct

import "github.com/prepwise/backend/internal/diagnosis"

// tagPenalty is an extra deduction applied to one construct's impact when a
// specific error tag is present on a wrong answer.
type tagPenalty struct {
	Tag       diagnosis.ErrorTag
	Construct Construct
	Penalty   float64
}

// tagPenalties couples error tags to the constructs they implicate. Kept as
// an explicit table so the coupling is visible and extensible.
var tagPenalties = []tagPenalty{
	{diagnosis.TagRushed, Attention, 0.1},
	{diagnosis.TagAnalyticalWeakness, Reasoning, 0.1},
}

// Impacts converts one attempt's outcome into signed per-construct deltas.
// Each weighted construct gets weight × (+1 if correct, −1 if not); on wrong
// answers, tag-keyed penalties are subtracted from the implicated constructs.
// The output has exactly one entry per weighted input construct and is not
// normalized — damping happens at the state-update step.
func Impacts(correct bool, weights map[string]float64, tags []diagnosis.ErrorTag) map[string]float64 {
	impacts := make(map[string]float64, len(weights))

	sign := -1.0
	if correct {
		sign = 1.0
	}
	for name, w := range weights {
		impacts[name] = w * sign
	}

	if !correct {
		for _, p := range tagPenalties {
			if !diagnosis.HasTag(tags, p.Tag) {
				continue
			}
			if _, ok := impacts[string(p.Construct)]; ok {
				impacts[string(p.Construct)] -= p.Penalty
			}
		}
	}

	return impacts
}
