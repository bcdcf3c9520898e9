package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Question is a single practice item owned by a micro-skill.
// Rows are treated as immutable once attempts reference them; content
// editing is an admin-console concern outside this service.
type Question struct {
	ent.Schema
}

func (Question) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Unique().
			Immutable(),
		field.String("skill_id").
			NotEmpty().
			Comment("Micro-skill this question is tagged against"),
		field.String("difficulty").
			NotEmpty().
			Comment("easy, medium, or hard"),
		field.String("cognitive_level").
			Default("L1").
			Comment("L1, L2, or L3"),
		field.String("answer_format").
			NotEmpty().
			Comment("single-choice-5, matrix-multi-select, or fill-in"),
		field.String("correct_answer").
			NotEmpty().
			Comment("Format-dependent encoding of the correct answer"),
		field.JSON("construct_weights", map[string]float64{}).
			Optional().
			Comment("Per-construct weight vector, nominally summing to 1.0"),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("skill_id"),
		index.Fields("difficulty"),
	}
}
