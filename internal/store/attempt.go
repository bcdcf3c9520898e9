package store

import (
	"context"
	"fmt"

	"github.com/prepwise/backend/ent"
	"github.com/prepwise/backend/ent/attempt"
)

// attemptRepo implements AttemptRepo using the ent client.
type attemptRepo struct {
	client *ent.Client
}

func (r *attemptRepo) Append(ctx context.Context, data AttemptData) (*Attempt, error) {
	builder := r.client.Attempt.Create().
		SetUserID(data.UserID).
		SetQuestionID(data.QuestionID).
		SetSkillID(data.SkillID).
		SetContextType(data.ContextType).
		SetSubmittedAnswer(data.SubmittedAnswer).
		SetIsCorrect(data.IsCorrect).
		SetTimeSpentSec(data.TimeSpentSec)

	if data.ContextID != "" {
		builder = builder.SetContextID(data.ContextID)
	}
	if data.ModuleID != "" {
		builder = builder.SetModuleID(data.ModuleID)
	}
	if len(data.ErrorTags) > 0 {
		builder = builder.SetErrorTags(data.ErrorTags)
	}
	if len(data.ConstructImpacts) > 0 {
		builder = builder.SetConstructImpacts(data.ConstructImpacts)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save attempt: %w", err)
	}
	return entAttemptToAttempt(row), nil
}

func (r *attemptRepo) ListByUser(ctx context.Context, userID string, limit int) ([]Attempt, error) {
	q := r.client.Attempt.Query().
		Where(attempt.UserID(userID)).
		Order(ent.Desc(attempt.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}

	out := make([]Attempt, len(rows))
	for i, row := range rows {
		out[i] = *entAttemptToAttempt(row)
	}
	return out, nil
}

func entAttemptToAttempt(row *ent.Attempt) *Attempt {
	return &Attempt{
		AttemptData: AttemptData{
			UserID:           row.UserID,
			QuestionID:       row.QuestionID,
			SkillID:          row.SkillID,
			ContextType:      row.ContextType,
			ContextID:        row.ContextID,
			ModuleID:         row.ModuleID,
			SubmittedAnswer:  row.SubmittedAnswer,
			IsCorrect:        row.IsCorrect,
			TimeSpentSec:     row.TimeSpentSec,
			ErrorTags:        row.ErrorTags,
			ConstructImpacts: row.ConstructImpacts,
		},
		ID:        row.ID,
		CreatedAt: row.CreatedAt,
	}
}
