package construct

// Trend describes score movement across the last update.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

// Score bounds and update constants.
const (
	InitialScore  = 50.0
	MinScore      = 0.0
	MaxScore      = 100.0
	MaxConfidence = 90.0

	// A newly created state scales the first impact by createGain; later
	// updates use the smaller updateGain so one attempt can't whipsaw an
	// established score. The asymmetry is intentional.
	createGain = 10.0
	updateGain = 5.0

	initialConfidence = 10.0
	confidenceStep    = 2.0

	// trendDeadband is the ± window around the prior score inside which
	// the trend reads stable.
	trendDeadband = 2.0
)

// State is the per-(user, construct) score aggregate.
type State struct {
	UserID     string
	Construct  string
	Score      float64 // bounded [MinScore, MaxScore]
	Confidence float64 // non-decreasing, capped at MaxConfidence
	Trend      Trend
	DataPoints int
}

// ApplyImpact folds one signed impact into the state. A nil prior creates
// the state from InitialScore; otherwise the prior is advanced. Pure: the
// result depends only on (prior, impact).
func ApplyImpact(prior *State, userID, name string, impact float64) State {
	if prior == nil {
		return State{
			UserID:     userID,
			Construct:  name,
			Score:      clampScore(InitialScore + impact*createGain),
			Confidence: initialConfidence,
			Trend:      TrendStable,
			DataPoints: 1,
		}
	}

	newScore := clampScore(prior.Score + impact*updateGain)

	trend := TrendStable
	switch {
	case newScore > prior.Score+trendDeadband:
		trend = TrendImproving
	case newScore < prior.Score-trendDeadband:
		trend = TrendDeclining
	}

	confidence := prior.Confidence + confidenceStep
	if confidence > MaxConfidence {
		confidence = MaxConfidence
	}

	return State{
		UserID:     prior.UserID,
		Construct:  prior.Construct,
		Score:      newScore,
		Confidence: confidence,
		Trend:      trend,
		DataPoints: prior.DataPoints + 1,
	}
}

func clampScore(s float64) float64 {
	if s < MinScore {
		return MinScore
	}
	if s > MaxScore {
		return MaxScore
	}
	return s
}
