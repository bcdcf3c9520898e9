package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// UserProfile holds the onboarding fields plan generation depends on.
// Identity and session handling live in the auth gateway; this row only
// carries study-package settings and the coarse phase marker.
type UserProfile struct {
	ent.Schema
}

func (UserProfile) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

func (UserProfile) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Unique().
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Unique().
			Immutable(),
		field.Int("package_length_days").
			Default(0).
			Comment("Study package duration; 0 means not yet set"),
		field.Int("daily_minutes").
			Default(0).
			Comment("Daily time budget in minutes; 0 means not yet set"),
		field.Time("package_started_at").
			Optional().
			Nillable(),
		field.String("phase").
			Default("onboarding").
			Comment("onboarding, baseline, or plan-active"),
	}
}

func (UserProfile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
