package attempts

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/prepwise/backend/internal/construct"
	"github.com/prepwise/backend/internal/diagnosis"
	"github.com/prepwise/backend/internal/grading"
	"github.com/prepwise/backend/internal/logging"
	"github.com/prepwise/backend/internal/mastery"
	"github.com/prepwise/backend/internal/store"
)

// ErrQuestionNotFound signals that the submitted question id doesn't
// resolve in the content store.
var ErrQuestionNotFound = errors.New("question not found")

// SubmitRequest is one answer submission.
type SubmitRequest struct {
	QuestionID      string
	SubmittedAnswer string
	TimeSpentSec    int
	ContextType     string
	ContextID       string
	ModuleID        string
}

// SubmitResult is what the caller sees synchronously.
type SubmitResult struct {
	AttemptID string
	IsCorrect bool
	ErrorTags []string
}

// Service runs the scoring pipeline: validate the answer, derive error
// tags, compute construct impacts, then persist the attempt and both state
// updates in one transaction.
type Service struct {
	store *store.Store
	log   *logging.Logger
	now   func() time.Time
}

// NewService creates an attempt service.
func NewService(st *store.Store, log *logging.Logger) *Service {
	return &Service{
		store: st,
		log:   log.With("service", "attempts"),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Submit scores one answer for userID and applies all state updates.
// The attempt insert, the skill-state upsert, and the construct-state
// upserts share a transaction: a storage failure anywhere leaves no
// partial state.
func (s *Service) Submit(ctx context.Context, userID string, req SubmitRequest) (*SubmitResult, error) {
	q, err := s.store.Repos().Questions.Get(ctx, req.QuestionID)
	if err != nil {
		return nil, fmt.Errorf("resolve question: %w", err)
	}
	if q == nil {
		return nil, ErrQuestionNotFound
	}

	correct := grading.Validate(req.SubmittedAnswer, q.CorrectAnswer, grading.AnswerFormat(q.AnswerFormat))
	tags := diagnosis.DeriveTags(diagnosis.DeriveInput{
		Correct:        correct,
		Difficulty:     diagnosis.Difficulty(q.Difficulty),
		TimeSpentSec:   req.TimeSpentSec,
		CognitiveLevel: diagnosis.CognitiveLevel(q.CognitiveLevel),
	})
	impacts := construct.Impacts(correct, q.ConstructWeights, tags)
	now := s.now()

	var result SubmitResult
	err = s.store.WithTx(ctx, func(r *store.Repos) error {
		attempt, err := r.Attempts.Append(ctx, store.AttemptData{
			UserID:           userID,
			QuestionID:       q.ID,
			SkillID:          q.SkillID,
			ContextType:      req.ContextType,
			ContextID:        req.ContextID,
			ModuleID:         req.ModuleID,
			SubmittedAnswer:  req.SubmittedAnswer,
			IsCorrect:        correct,
			TimeSpentSec:     req.TimeSpentSec,
			ErrorTags:        diagnosis.TagStrings(tags),
			ConstructImpacts: impacts,
		})
		if err != nil {
			return err
		}
		result.AttemptID = attempt.ID

		prior, err := r.Skills.Get(ctx, userID, q.SkillID)
		if err != nil {
			return err
		}
		next := mastery.Apply(prior, userID, q.SkillID, correct, req.TimeSpentSec, now)
		if err := r.Skills.Upsert(ctx, next); err != nil {
			return err
		}

		// Deterministic order keeps replays and logs comparable.
		for _, name := range sortedKeys(impacts) {
			prior, err := r.Constructs.Get(ctx, userID, name)
			if err != nil {
				return err
			}
			next := construct.ApplyImpact(prior, userID, name, impacts[name])
			if err := r.Constructs.Upsert(ctx, next); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("persist attempt: %w", err)
	}

	result.IsCorrect = correct
	result.ErrorTags = diagnosis.TagStrings(tags)
	s.log.Debug("attempt scored",
		"user_id", userID,
		"question_id", q.ID,
		"correct", correct,
		"tags", result.ErrorTags,
	)
	return &result, nil
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
