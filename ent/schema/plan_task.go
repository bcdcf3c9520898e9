package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// PlanTask is a single generated assignment within a cycle. Tasks are
// written once at cycle creation and mutated only by completion tracking.
type PlanTask struct {
	ent.Schema
}

func (PlanTask) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

func (PlanTask) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Unique().
			Immutable(),
		field.String("cycle_id").
			NotEmpty().
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("task_type").
			NotEmpty().
			Immutable().
			Comment("focused-drill, mixed-drill, mock, flashcard, or review"),
		field.Int("sequence").
			Immutable().
			Comment("Position within the cycle, 1-based"),
		field.String("status").
			Default("pending").
			Comment("pending or completed"),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (PlanTask) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("cycle_id"),
		index.Fields("user_id", "status"),
	}
}
