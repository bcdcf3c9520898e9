// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Attempt is the predicate function for attempt builders.
type Attempt func(*sql.Selector)

// ConstructState is the predicate function for constructstate builders.
type ConstructState func(*sql.Selector)

// PlanCycle is the predicate function for plancycle builders.
type PlanCycle func(*sql.Selector)

// PlanTask is the predicate function for plantask builders.
type PlanTask func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)

// SkillState is the predicate function for skillstate builders.
type SkillState func(*sql.Selector)

// UserProfile is the predicate function for userprofile builders.
type UserProfile func(*sql.Selector)
