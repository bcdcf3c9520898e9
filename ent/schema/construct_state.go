package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// ConstructState is the per-(user, cognitive-construct) score row.
// Score stays within [0,100]; confidence only ever grows, capped at 90.
type ConstructState struct {
	ent.Schema
}

func (ConstructState) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

func (ConstructState) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Unique().
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("construct").
			NotEmpty().
			Immutable().
			Comment("attention, speed, reasoning, computation, or reading"),
		field.Float("score").
			Default(50).
			Comment("Bounded 0–100"),
		field.Float("confidence").
			Default(10).
			Comment("Monotonically non-decreasing, capped at 90"),
		field.String("trend").
			Default("stable").
			Comment("improving, declining, or stable"),
		field.Int("data_points").
			Default(0),
	}
}

func (ConstructState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "construct").Unique(),
	}
}
