// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/prepwise/backend/ent/attempt"
)

// AttemptCreate is the builder for creating a Attempt entity.
type AttemptCreate struct {
	config
	mutation *AttemptMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *AttemptCreate) SetCreatedAt(v time.Time) *AttemptCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableCreatedAt(v *time.Time) *AttemptCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AttemptCreate) SetUpdatedAt(v time.Time) *AttemptCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableUpdatedAt(v *time.Time) *AttemptCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *AttemptCreate) SetUserID(v string) *AttemptCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *AttemptCreate) SetQuestionID(v string) *AttemptCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetSkillID sets the "skill_id" field.
func (_c *AttemptCreate) SetSkillID(v string) *AttemptCreate {
	_c.mutation.SetSkillID(v)
	return _c
}

// SetContextType sets the "context_type" field.
func (_c *AttemptCreate) SetContextType(v string) *AttemptCreate {
	_c.mutation.SetContextType(v)
	return _c
}

// SetContextID sets the "context_id" field.
func (_c *AttemptCreate) SetContextID(v string) *AttemptCreate {
	_c.mutation.SetContextID(v)
	return _c
}

// SetNillableContextID sets the "context_id" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableContextID(v *string) *AttemptCreate {
	if v != nil {
		_c.SetContextID(*v)
	}
	return _c
}

// SetModuleID sets the "module_id" field.
func (_c *AttemptCreate) SetModuleID(v string) *AttemptCreate {
	_c.mutation.SetModuleID(v)
	return _c
}

// SetNillableModuleID sets the "module_id" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableModuleID(v *string) *AttemptCreate {
	if v != nil {
		_c.SetModuleID(*v)
	}
	return _c
}

// SetSubmittedAnswer sets the "submitted_answer" field.
func (_c *AttemptCreate) SetSubmittedAnswer(v string) *AttemptCreate {
	_c.mutation.SetSubmittedAnswer(v)
	return _c
}

// SetIsCorrect sets the "is_correct" field.
func (_c *AttemptCreate) SetIsCorrect(v bool) *AttemptCreate {
	_c.mutation.SetIsCorrect(v)
	return _c
}

// SetTimeSpentSec sets the "time_spent_sec" field.
func (_c *AttemptCreate) SetTimeSpentSec(v int) *AttemptCreate {
	_c.mutation.SetTimeSpentSec(v)
	return _c
}

// SetErrorTags sets the "error_tags" field.
func (_c *AttemptCreate) SetErrorTags(v []string) *AttemptCreate {
	_c.mutation.SetErrorTags(v)
	return _c
}

// SetConstructImpacts sets the "construct_impacts" field.
func (_c *AttemptCreate) SetConstructImpacts(v map[string]float64) *AttemptCreate {
	_c.mutation.SetConstructImpacts(v)
	return _c
}

// SetID sets the "id" field.
func (_c *AttemptCreate) SetID(v string) *AttemptCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableID(v *string) *AttemptCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the AttemptMutation object of the builder.
func (_c *AttemptCreate) Mutation() *AttemptMutation {
	return _c.mutation
}

// Save creates the Attempt in the database.
func (_c *AttemptCreate) Save(ctx context.Context) (*Attempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttemptCreate) SaveX(ctx context.Context) *Attempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttemptCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := attempt.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := attempt.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := attempt.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttemptCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Attempt.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Attempt.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Attempt.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := attempt.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Attempt.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "Attempt.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := attempt.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "Attempt.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SkillID(); !ok {
		return &ValidationError{Name: "skill_id", err: errors.New(`ent: missing required field "Attempt.skill_id"`)}
	}
	if v, ok := _c.mutation.SkillID(); ok {
		if err := attempt.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "Attempt.skill_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContextType(); !ok {
		return &ValidationError{Name: "context_type", err: errors.New(`ent: missing required field "Attempt.context_type"`)}
	}
	if v, ok := _c.mutation.ContextType(); ok {
		if err := attempt.ContextTypeValidator(v); err != nil {
			return &ValidationError{Name: "context_type", err: fmt.Errorf(`ent: validator failed for field "Attempt.context_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubmittedAnswer(); !ok {
		return &ValidationError{Name: "submitted_answer", err: errors.New(`ent: missing required field "Attempt.submitted_answer"`)}
	}
	if _, ok := _c.mutation.IsCorrect(); !ok {
		return &ValidationError{Name: "is_correct", err: errors.New(`ent: missing required field "Attempt.is_correct"`)}
	}
	if _, ok := _c.mutation.TimeSpentSec(); !ok {
		return &ValidationError{Name: "time_spent_sec", err: errors.New(`ent: missing required field "Attempt.time_spent_sec"`)}
	}
	return nil
}

func (_c *AttemptCreate) sqlSave(ctx context.Context) (*Attempt, error) {
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
			return nil, fmt.Errorf("unexpected Attempt.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AttemptCreate) createSpec() (*Attempt, *sqlgraph.CreateSpec) {
	var (
		_node = &Attempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attempt.Table, sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(attempt.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(attempt.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(attempt.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(attempt.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.SkillID(); ok {
		_spec.SetField(attempt.FieldSkillID, field.TypeString, value)
		_node.SkillID = value
	}
	if value, ok := _c.mutation.ContextType(); ok {
		_spec.SetField(attempt.FieldContextType, field.TypeString, value)
		_node.ContextType = value
	}
	if value, ok := _c.mutation.ContextID(); ok {
		_spec.SetField(attempt.FieldContextID, field.TypeString, value)
		_node.ContextID = value
	}
	if value, ok := _c.mutation.ModuleID(); ok {
		_spec.SetField(attempt.FieldModuleID, field.TypeString, value)
		_node.ModuleID = value
	}
	if value, ok := _c.mutation.SubmittedAnswer(); ok {
		_spec.SetField(attempt.FieldSubmittedAnswer, field.TypeString, value)
		_node.SubmittedAnswer = value
	}
	if value, ok := _c.mutation.IsCorrect(); ok {
		_spec.SetField(attempt.FieldIsCorrect, field.TypeBool, value)
		_node.IsCorrect = value
	}
	if value, ok := _c.mutation.TimeSpentSec(); ok {
		_spec.SetField(attempt.FieldTimeSpentSec, field.TypeInt, value)
		_node.TimeSpentSec = value
	}
	if value, ok := _c.mutation.ErrorTags(); ok {
		_spec.SetField(attempt.FieldErrorTags, field.TypeJSON, value)
		_node.ErrorTags = value
	}
	if value, ok := _c.mutation.ConstructImpacts(); ok {
		_spec.SetField(attempt.FieldConstructImpacts, field.TypeJSON, value)
		_node.ConstructImpacts = value
	}
	return _node, _spec
}

// AttemptCreateBulk is the builder for creating many Attempt entities in bulk.
type AttemptCreateBulk struct {
	config
	err      error
	builders []*AttemptCreate
}

// Save creates the Attempt entities in the database.
func (_c *AttemptCreateBulk) Save(ctx context.Context) ([]*Attempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Attempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttemptMutation)
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
func (_c *AttemptCreateBulk) SaveX(ctx context.Context) []*Attempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
