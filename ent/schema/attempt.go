package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Attempt records one answer submission. Attempts are append-only: a row
// is written exactly once per submission and never mutated afterwards.
type Attempt struct {
	ent.Schema
}

func (Attempt) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

func (Attempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Unique().
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("question_id").
			NotEmpty().
			Immutable(),
		field.String("skill_id").
			NotEmpty().
			Immutable().
			Comment("Denormalized from the question for per-skill queries"),
		field.String("context_type").
			NotEmpty().
			Immutable().
			Comment("baseline, drill, mock, recycle, flashcard, or swipe"),
		field.String("context_id").
			Optional().
			Immutable(),
		field.String("module_id").
			Optional().
			Immutable(),
		field.String("submitted_answer").
			Immutable(),
		field.Bool("is_correct").
			Immutable(),
		field.Int("time_spent_sec").
			Immutable(),
		field.JSON("error_tags", []string{}).
			Optional().
			Immutable().
			Comment("Non-empty only for incorrect answers"),
		field.JSON("construct_impacts", map[string]float64{}).
			Optional().
			Immutable().
			Comment("Signed per-construct deltas derived at scoring time"),
	}
}

func (Attempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("question_id"),
		index.Fields("user_id", "skill_id"),
	}
}
