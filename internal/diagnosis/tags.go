package diagnosis

// ErrorTag labels a pattern observed in a wrong answer.
type ErrorTag string

const (
	// TagRushed marks answers submitted in under half the expected time —
	// a proxy for carelessness rather than a knowledge gap.
	TagRushed ErrorTag = "rushed"

	// TagWeakConcept marks answers that took over 1.5× the expected time.
	TagWeakConcept ErrorTag = "weak-concept"

	// TagAnalyticalWeakness marks wrong answers on top-tier (L3) items.
	TagAnalyticalWeakness ErrorTag = "analytical-weakness"

	// Difficulty-specific tags; exactly one is present on every wrong answer.
	TagFundamentalGap      ErrorTag = "fundamental-gap"
	TagNeedsPractice       ErrorTag = "needs-practice"
	TagAdvancedTopicReview ErrorTag = "advanced-topic-review"
)

// Difficulty buckets questions carry.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// CognitiveLevel is the question's cognitive tier.
type CognitiveLevel string

const (
	LevelL1 CognitiveLevel = "L1"
	LevelL2 CognitiveLevel = "L2"
	LevelL3 CognitiveLevel = "L3"
)

// Expected answer time in seconds by difficulty. Unknown difficulties use
// DefaultExpectedTimeSec.
const (
	ExpectedTimeEasySec    = 60
	ExpectedTimeMediumSec  = 90
	ExpectedTimeHardSec    = 120
	DefaultExpectedTimeSec = 90
)

// ExpectedTimeSec returns the expected answer time for a difficulty.
func ExpectedTimeSec(d Difficulty) int {
	switch d {
	case DifficultyEasy:
		return ExpectedTimeEasySec
	case DifficultyMedium:
		return ExpectedTimeMediumSec
	case DifficultyHard:
		return ExpectedTimeHardSec
	default:
		return DefaultExpectedTimeSec
	}
}

// difficultyTag returns the tag every wrong answer of this difficulty gets.
func difficultyTag(d Difficulty) ErrorTag {
	switch d {
	case DifficultyEasy:
		return TagFundamentalGap
	case DifficultyHard:
		return TagAdvancedTopicReview
	default:
		return TagNeedsPractice
	}
}
