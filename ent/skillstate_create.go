// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/prepwise/backend/ent/skillstate"
)

// SkillStateCreate is the builder for creating a SkillState entity.
type SkillStateCreate struct {
	config
	mutation *SkillStateMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *SkillStateCreate) SetCreatedAt(v time.Time) *SkillStateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SkillStateCreate) SetNillableCreatedAt(v *time.Time) *SkillStateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SkillStateCreate) SetUpdatedAt(v time.Time) *SkillStateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SkillStateCreate) SetNillableUpdatedAt(v *time.Time) *SkillStateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *SkillStateCreate) SetUserID(v string) *SkillStateCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSkillID sets the "skill_id" field.
func (_c *SkillStateCreate) SetSkillID(v string) *SkillStateCreate {
	_c.mutation.SetSkillID(v)
	return _c
}

// SetAttemptCount sets the "attempt_count" field.
func (_c *SkillStateCreate) SetAttemptCount(v int) *SkillStateCreate {
	_c.mutation.SetAttemptCount(v)
	return _c
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_c *SkillStateCreate) SetNillableAttemptCount(v *int) *SkillStateCreate {
	if v != nil {
		_c.SetAttemptCount(*v)
	}
	return _c
}

// SetCorrectCount sets the "correct_count" field.
func (_c *SkillStateCreate) SetCorrectCount(v int) *SkillStateCreate {
	_c.mutation.SetCorrectCount(v)
	return _c
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_c *SkillStateCreate) SetNillableCorrectCount(v *int) *SkillStateCreate {
	if v != nil {
		_c.SetCorrectCount(*v)
	}
	return _c
}

// SetAccuracy sets the "accuracy" field.
func (_c *SkillStateCreate) SetAccuracy(v float64) *SkillStateCreate {
	_c.mutation.SetAccuracy(v)
	return _c
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_c *SkillStateCreate) SetNillableAccuracy(v *float64) *SkillStateCreate {
	if v != nil {
		_c.SetAccuracy(*v)
	}
	return _c
}

// SetTotalTimeSec sets the "total_time_sec" field.
func (_c *SkillStateCreate) SetTotalTimeSec(v int) *SkillStateCreate {
	_c.mutation.SetTotalTimeSec(v)
	return _c
}

// SetNillableTotalTimeSec sets the "total_time_sec" field if the given value is not nil.
func (_c *SkillStateCreate) SetNillableTotalTimeSec(v *int) *SkillStateCreate {
	if v != nil {
		_c.SetTotalTimeSec(*v)
	}
	return _c
}

// SetAvgTimeSec sets the "avg_time_sec" field.
func (_c *SkillStateCreate) SetAvgTimeSec(v float64) *SkillStateCreate {
	_c.mutation.SetAvgTimeSec(v)
	return _c
}

// SetNillableAvgTimeSec sets the "avg_time_sec" field if the given value is not nil.
func (_c *SkillStateCreate) SetNillableAvgTimeSec(v *float64) *SkillStateCreate {
	if v != nil {
		_c.SetAvgTimeSec(*v)
	}
	return _c
}

// SetMasteryLevel sets the "mastery_level" field.
func (_c *SkillStateCreate) SetMasteryLevel(v string) *SkillStateCreate {
	_c.mutation.SetMasteryLevel(v)
	return _c
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_c *SkillStateCreate) SetNillableMasteryLevel(v *string) *SkillStateCreate {
	if v != nil {
		_c.SetMasteryLevel(*v)
	}
	return _c
}

// SetLastAttemptedAt sets the "last_attempted_at" field.
func (_c *SkillStateCreate) SetLastAttemptedAt(v time.Time) *SkillStateCreate {
	_c.mutation.SetLastAttemptedAt(v)
	return _c
}

// SetNillableLastAttemptedAt sets the "last_attempted_at" field if the given value is not nil.
func (_c *SkillStateCreate) SetNillableLastAttemptedAt(v *time.Time) *SkillStateCreate {
	if v != nil {
		_c.SetLastAttemptedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SkillStateCreate) SetID(v string) *SkillStateCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SkillStateCreate) SetNillableID(v *string) *SkillStateCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the SkillStateMutation object of the builder.
func (_c *SkillStateCreate) Mutation() *SkillStateMutation {
	return _c.mutation
}

// Save creates the SkillState in the database.
func (_c *SkillStateCreate) Save(ctx context.Context) (*SkillState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SkillStateCreate) SaveX(ctx context.Context) *SkillState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SkillStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SkillStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SkillStateCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := skillstate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := skillstate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.AttemptCount(); !ok {
		v := skillstate.DefaultAttemptCount
		_c.mutation.SetAttemptCount(v)
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		v := skillstate.DefaultCorrectCount
		_c.mutation.SetCorrectCount(v)
	}
	if _, ok := _c.mutation.Accuracy(); !ok {
		v := skillstate.DefaultAccuracy
		_c.mutation.SetAccuracy(v)
	}
	if _, ok := _c.mutation.TotalTimeSec(); !ok {
		v := skillstate.DefaultTotalTimeSec
		_c.mutation.SetTotalTimeSec(v)
	}
	if _, ok := _c.mutation.AvgTimeSec(); !ok {
		v := skillstate.DefaultAvgTimeSec
		_c.mutation.SetAvgTimeSec(v)
	}
	if _, ok := _c.mutation.MasteryLevel(); !ok {
		v := skillstate.DefaultMasteryLevel
		_c.mutation.SetMasteryLevel(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := skillstate.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SkillStateCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SkillState.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SkillState.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "SkillState.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := skillstate.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SkillState.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SkillID(); !ok {
		return &ValidationError{Name: "skill_id", err: errors.New(`ent: missing required field "SkillState.skill_id"`)}
	}
	if v, ok := _c.mutation.SkillID(); ok {
		if err := skillstate.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "SkillState.skill_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AttemptCount(); !ok {
		return &ValidationError{Name: "attempt_count", err: errors.New(`ent: missing required field "SkillState.attempt_count"`)}
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		return &ValidationError{Name: "correct_count", err: errors.New(`ent: missing required field "SkillState.correct_count"`)}
	}
	if _, ok := _c.mutation.Accuracy(); !ok {
		return &ValidationError{Name: "accuracy", err: errors.New(`ent: missing required field "SkillState.accuracy"`)}
	}
	if _, ok := _c.mutation.TotalTimeSec(); !ok {
		return &ValidationError{Name: "total_time_sec", err: errors.New(`ent: missing required field "SkillState.total_time_sec"`)}
	}
	if _, ok := _c.mutation.AvgTimeSec(); !ok {
		return &ValidationError{Name: "avg_time_sec", err: errors.New(`ent: missing required field "SkillState.avg_time_sec"`)}
	}
	if _, ok := _c.mutation.MasteryLevel(); !ok {
		return &ValidationError{Name: "mastery_level", err: errors.New(`ent: missing required field "SkillState.mastery_level"`)}
	}
	return nil
}

func (_c *SkillStateCreate) sqlSave(ctx context.Context) (*SkillState, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected SkillState.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SkillStateCreate) createSpec() (*SkillState, *sqlgraph.CreateSpec) {
	var (
		_node = &SkillState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(skillstate.Table, sqlgraph.NewFieldSpec(skillstate.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(skillstate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(skillstate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(skillstate.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SkillID(); ok {
		_spec.SetField(skillstate.FieldSkillID, field.TypeString, value)
		_node.SkillID = value
	}
	if value, ok := _c.mutation.AttemptCount(); ok {
		_spec.SetField(skillstate.FieldAttemptCount, field.TypeInt, value)
		_node.AttemptCount = value
	}
	if value, ok := _c.mutation.CorrectCount(); ok {
		_spec.SetField(skillstate.FieldCorrectCount, field.TypeInt, value)
		_node.CorrectCount = value
	}
	if value, ok := _c.mutation.Accuracy(); ok {
		_spec.SetField(skillstate.FieldAccuracy, field.TypeFloat64, value)
		_node.Accuracy = value
	}
	if value, ok := _c.mutation.TotalTimeSec(); ok {
		_spec.SetField(skillstate.FieldTotalTimeSec, field.TypeInt, value)
		_node.TotalTimeSec = value
	}
	if value, ok := _c.mutation.AvgTimeSec(); ok {
		_spec.SetField(skillstate.FieldAvgTimeSec, field.TypeFloat64, value)
		_node.AvgTimeSec = value
	}
	if value, ok := _c.mutation.MasteryLevel(); ok {
		_spec.SetField(skillstate.FieldMasteryLevel, field.TypeString, value)
		_node.MasteryLevel = value
	}
	if value, ok := _c.mutation.LastAttemptedAt(); ok {
		_spec.SetField(skillstate.FieldLastAttemptedAt, field.TypeTime, value)
		_node.LastAttemptedAt = &value
	}
	return _node, _spec
}

// SkillStateCreateBulk is the builder for creating many SkillState entities in bulk.
type SkillStateCreateBulk struct {
	config
	err      error
	builders []*SkillStateCreate
}

// Save creates the SkillState entities in the database.
func (_c *SkillStateCreateBulk) Save(ctx context.Context) ([]*SkillState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SkillState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SkillStateMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SkillStateCreateBulk) SaveX(ctx context.Context) []*SkillState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SkillStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SkillStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
