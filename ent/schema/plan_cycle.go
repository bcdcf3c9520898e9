package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// PlanCycle is one generated study cycle: the computed task count, the
// per-type sub-counts, and the inputs the allocator saw at creation time.
type PlanCycle struct {
	ent.Schema
}

func (PlanCycle) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

func (PlanCycle) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Unique().
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.Int("task_count"),
		field.Int("focused_drill_count").Default(0),
		field.Int("mixed_drill_count").Default(0),
		field.Int("mock_count").Default(0),
		field.Int("flashcard_count").Default(0),
		field.Int("review_count").Default(0),
		field.Int("days_remaining"),
		field.Int("weak_skill_count"),
		field.String("status").
			Default("active").
			Comment("active or completed"),
	}
}

func (PlanCycle) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "status"),
	}
}
