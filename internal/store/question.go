package store

import (
	"context"
	"fmt"

	"github.com/prepwise/backend/ent"
)

// questionRepo implements QuestionRepo using the ent client.
type questionRepo struct {
	client *ent.Client
}

func (r *questionRepo) Create(ctx context.Context, q Question) (*Question, error) {
	builder := r.client.Question.Create().
		SetSkillID(q.SkillID).
		SetDifficulty(q.Difficulty).
		SetAnswerFormat(q.AnswerFormat).
		SetCorrectAnswer(q.CorrectAnswer)

	if q.ID != "" {
		builder = builder.SetID(q.ID)
	}
	if q.CognitiveLevel != "" {
		builder = builder.SetCognitiveLevel(q.CognitiveLevel)
	}
	if len(q.ConstructWeights) > 0 {
		builder = builder.SetConstructWeights(q.ConstructWeights)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save question: %w", err)
	}
	return entQuestionToQuestion(row), nil
}

func (r *questionRepo) Get(ctx context.Context, id string) (*Question, error) {
	row, err := r.client.Question.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query question: %w", err)
	}
	return entQuestionToQuestion(row), nil
}

func entQuestionToQuestion(row *ent.Question) *Question {
	return &Question{
		ID:               row.ID,
		SkillID:          row.SkillID,
		Difficulty:       row.Difficulty,
		CognitiveLevel:   row.CognitiveLevel,
		AnswerFormat:     row.AnswerFormat,
		CorrectAnswer:    row.CorrectAnswer,
		ConstructWeights: row.ConstructWeights,
	}
}
