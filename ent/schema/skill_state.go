package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// SkillState is the running per-(user, micro-skill) aggregate updated on
// every attempt. Rows are created on first attempt and never deleted by
// the scoring pipeline.
type SkillState struct {
	ent.Schema
}

func (SkillState) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

func (SkillState) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Unique().
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("skill_id").
			NotEmpty().
			Immutable(),
		field.Int("attempt_count").
			Default(0),
		field.Int("correct_count").
			Default(0),
		field.Float("accuracy").
			Default(0).
			Comment("correct_count/attempt_count × 100"),
		field.Int("total_time_sec").
			Default(0),
		field.Float("avg_time_sec").
			Default(0),
		field.String("mastery_level").
			Default("developing").
			Comment("weak, developing, or strong"),
		field.Time("last_attempted_at").
			Optional().
			Nillable(),
	}
}

func (SkillState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "skill_id").Unique(),
		index.Fields("user_id", "mastery_level"),
	}
}
