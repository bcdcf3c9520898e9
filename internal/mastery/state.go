package mastery

import "time"

// Level is the coarse mastery bucket derived from accuracy and volume.
type Level string

const (
	LevelWeak       Level = "weak"
	LevelDeveloping Level = "developing"
	LevelStrong     Level = "strong"
)

// Thresholds for deriving Level.
const (
	// WeakAccuracyThreshold: below this accuracy a skill reads weak.
	WeakAccuracyThreshold = 50.0
	// StrongAccuracyThreshold: at or above this accuracy, with enough
	// attempts, a skill reads strong.
	StrongAccuracyThreshold = 80.0
	// StrongMinAttempts guards against promoting a skill on a tiny sample.
	StrongMinAttempts = 5
)

// SkillState is the running per-(user, micro-skill) aggregate.
type SkillState struct {
	UserID          string
	SkillID         string
	AttemptCount    int
	CorrectCount    int
	Accuracy        float64 // correct/attempts × 100
	TotalTimeSec    int
	AvgTimeSec      float64
	Level           Level
	LastAttemptedAt time.Time
}

// Apply folds one attempt into the aggregate. A nil prior creates the
// state; otherwise the prior is advanced. Pure function of (prior, attempt):
// replay-safe only if the caller enforces idempotency.
func Apply(prior *SkillState, userID, skillID string, correct bool, timeSpentSec int, now time.Time) SkillState {
	if prior == nil {
		st := SkillState{
			UserID:          userID,
			SkillID:         skillID,
			AttemptCount:    1,
			TotalTimeSec:    timeSpentSec,
			AvgTimeSec:      float64(timeSpentSec),
			Level:           LevelDeveloping,
			LastAttemptedAt: now,
		}
		if correct {
			st.CorrectCount = 1
			st.Accuracy = 100
		}
		return st
	}

	st := *prior
	st.AttemptCount++
	if correct {
		st.CorrectCount++
	}
	st.Accuracy = float64(st.CorrectCount) / float64(st.AttemptCount) * 100
	st.TotalTimeSec += timeSpentSec
	st.AvgTimeSec = float64(st.TotalTimeSec) / float64(st.AttemptCount)
	st.Level = deriveLevel(st.Accuracy, st.AttemptCount)
	st.LastAttemptedAt = now
	return st
}

// deriveLevel buckets accuracy into weak/developing/strong. Strong
// additionally requires StrongMinAttempts attempts.
func deriveLevel(accuracy float64, attempts int) Level {
	switch {
	case accuracy < WeakAccuracyThreshold:
		return LevelWeak
	case accuracy >= StrongAccuracyThreshold && attempts >= StrongMinAttempts:
		return LevelStrong
	default:
		return LevelDeveloping
	}
}
