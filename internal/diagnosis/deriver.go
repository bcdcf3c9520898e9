package diagnosis

// DeriveInput holds the context the tag rules look at.
type DeriveInput struct {
	Correct        bool
	Difficulty     Difficulty
	TimeSpentSec   int
	CognitiveLevel CognitiveLevel
}

// Timing thresholds, as fractions of the expected answer time.
const (
	rushedFraction      = 0.5
	weakConceptFraction = 1.5
)

// DeriveTags returns the error tags for one attempt. Correct answers get no
// tags. Wrong answers always get the difficulty-specific tag, plus timing
// and cognitive-level tags when their rules apply.
//
// Deterministic and total over its inputs; no I/O.
func DeriveTags(input DeriveInput) []ErrorTag {
	if input.Correct {
		return nil
	}

	expected := float64(ExpectedTimeSec(input.Difficulty))
	spent := float64(input.TimeSpentSec)

	var tags []ErrorTag
	if spent < rushedFraction*expected {
		tags = append(tags, TagRushed)
	}
	if spent > weakConceptFraction*expected {
		tags = append(tags, TagWeakConcept)
	}
	tags = append(tags, difficultyTag(input.Difficulty))
	if input.CognitiveLevel == LevelL3 {
		tags = append(tags, TagAnalyticalWeakness)
	}
	return tags
}

// HasTag reports whether tag is present in tags.
func HasTag(tags []ErrorTag, tag ErrorTag) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// TagStrings converts tags to plain strings for persistence.
func TagStrings(tags []ErrorTag) []string {
	if len(tags) == 0 {
		return nil
	}
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = string(t)
	}
	return out
}
