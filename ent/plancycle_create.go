// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/prepwise/backend/ent/plancycle"
)

// PlanCycleCreate is the builder for creating a PlanCycle entity.
type PlanCycleCreate struct {
	config
	mutation *PlanCycleMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *PlanCycleCreate) SetCreatedAt(v time.Time) *PlanCycleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PlanCycleCreate) SetNillableCreatedAt(v *time.Time) *PlanCycleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PlanCycleCreate) SetUpdatedAt(v time.Time) *PlanCycleCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PlanCycleCreate) SetNillableUpdatedAt(v *time.Time) *PlanCycleCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *PlanCycleCreate) SetUserID(v string) *PlanCycleCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTaskCount sets the "task_count" field.
func (_c *PlanCycleCreate) SetTaskCount(v int) *PlanCycleCreate {
	_c.mutation.SetTaskCount(v)
	return _c
}

// SetFocusedDrillCount sets the "focused_drill_count" field.
func (_c *PlanCycleCreate) SetFocusedDrillCount(v int) *PlanCycleCreate {
	_c.mutation.SetFocusedDrillCount(v)
	return _c
}

// SetNillableFocusedDrillCount sets the "focused_drill_count" field if the given value is not nil.
func (_c *PlanCycleCreate) SetNillableFocusedDrillCount(v *int) *PlanCycleCreate {
	if v != nil {
		_c.SetFocusedDrillCount(*v)
	}
	return _c
}

// SetMixedDrillCount sets the "mixed_drill_count" field.
func (_c *PlanCycleCreate) SetMixedDrillCount(v int) *PlanCycleCreate {
	_c.mutation.SetMixedDrillCount(v)
	return _c
}

// SetNillableMixedDrillCount sets the "mixed_drill_count" field if the given value is not nil.
func (_c *PlanCycleCreate) SetNillableMixedDrillCount(v *int) *PlanCycleCreate {
	if v != nil {
		_c.SetMixedDrillCount(*v)
	}
	return _c
}

// SetMockCount sets the "mock_count" field.
func (_c *PlanCycleCreate) SetMockCount(v int) *PlanCycleCreate {
	_c.mutation.SetMockCount(v)
	return _c
}

// SetNillableMockCount sets the "mock_count" field if the given value is not nil.
func (_c *PlanCycleCreate) SetNillableMockCount(v *int) *PlanCycleCreate {
	if v != nil {
		_c.SetMockCount(*v)
	}
	return _c
}

// SetFlashcardCount sets the "flashcard_count" field.
func (_c *PlanCycleCreate) SetFlashcardCount(v int) *PlanCycleCreate {
	_c.mutation.SetFlashcardCount(v)
	return _c
}

// SetNillableFlashcardCount sets the "flashcard_count" field if the given value is not nil.
func (_c *PlanCycleCreate) SetNillableFlashcardCount(v *int) *PlanCycleCreate {
	if v != nil {
		_c.SetFlashcardCount(*v)
	}
	return _c
}

// SetReviewCount sets the "review_count" field.
func (_c *PlanCycleCreate) SetReviewCount(v int) *PlanCycleCreate {
	_c.mutation.SetReviewCount(v)
	return _c
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_c *PlanCycleCreate) SetNillableReviewCount(v *int) *PlanCycleCreate {
	if v != nil {
		_c.SetReviewCount(*v)
	}
	return _c
}

// SetDaysRemaining sets the "days_remaining" field.
func (_c *PlanCycleCreate) SetDaysRemaining(v int) *PlanCycleCreate {
	_c.mutation.SetDaysRemaining(v)
	return _c
}

// SetWeakSkillCount sets the "weak_skill_count" field.
func (_c *PlanCycleCreate) SetWeakSkillCount(v int) *PlanCycleCreate {
	_c.mutation.SetWeakSkillCount(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PlanCycleCreate) SetStatus(v string) *PlanCycleCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PlanCycleCreate) SetNillableStatus(v *string) *PlanCycleCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PlanCycleCreate) SetID(v string) *PlanCycleCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PlanCycleCreate) SetNillableID(v *string) *PlanCycleCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the PlanCycleMutation object of the builder.
func (_c *PlanCycleCreate) Mutation() *PlanCycleMutation {
	return _c.mutation
}

// Save creates the PlanCycle in the database.
func (_c *PlanCycleCreate) Save(ctx context.Context) (*PlanCycle, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PlanCycleCreate) SaveX(ctx context.Context) *PlanCycle {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlanCycleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlanCycleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PlanCycleCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := plancycle.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := plancycle.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.FocusedDrillCount(); !ok {
		v := plancycle.DefaultFocusedDrillCount
		_c.mutation.SetFocusedDrillCount(v)
	}
	if _, ok := _c.mutation.MixedDrillCount(); !ok {
		v := plancycle.DefaultMixedDrillCount
		_c.mutation.SetMixedDrillCount(v)
	}
	if _, ok := _c.mutation.MockCount(); !ok {
		v := plancycle.DefaultMockCount
		_c.mutation.SetMockCount(v)
	}
	if _, ok := _c.mutation.FlashcardCount(); !ok {
		v := plancycle.DefaultFlashcardCount
		_c.mutation.SetFlashcardCount(v)
	}
	if _, ok := _c.mutation.ReviewCount(); !ok {
		v := plancycle.DefaultReviewCount
		_c.mutation.SetReviewCount(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := plancycle.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := plancycle.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PlanCycleCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PlanCycle.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PlanCycle.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "PlanCycle.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := plancycle.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PlanCycle.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TaskCount(); !ok {
		return &ValidationError{Name: "task_count", err: errors.New(`ent: missing required field "PlanCycle.task_count"`)}
	}
	if _, ok := _c.mutation.FocusedDrillCount(); !ok {
		return &ValidationError{Name: "focused_drill_count", err: errors.New(`ent: missing required field "PlanCycle.focused_drill_count"`)}
	}
	if _, ok := _c.mutation.MixedDrillCount(); !ok {
		return &ValidationError{Name: "mixed_drill_count", err: errors.New(`ent: missing required field "PlanCycle.mixed_drill_count"`)}
	}
	if _, ok := _c.mutation.MockCount(); !ok {
		return &ValidationError{Name: "mock_count", err: errors.New(`ent: missing required field "PlanCycle.mock_count"`)}
	}
	if _, ok := _c.mutation.FlashcardCount(); !ok {
		return &ValidationError{Name: "flashcard_count", err: errors.New(`ent: missing required field "PlanCycle.flashcard_count"`)}
	}
	if _, ok := _c.mutation.ReviewCount(); !ok {
		return &ValidationError{Name: "review_count", err: errors.New(`ent: missing required field "PlanCycle.review_count"`)}
	}
	if _, ok := _c.mutation.DaysRemaining(); !ok {
		return &ValidationError{Name: "days_remaining", err: errors.New(`ent: missing required field "PlanCycle.days_remaining"`)}
	}
	if _, ok := _c.mutation.WeakSkillCount(); !ok {
		return &ValidationError{Name: "weak_skill_count", err: errors.New(`ent: missing required field "PlanCycle.weak_skill_count"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PlanCycle.status"`)}
	}
	return nil
}

func (_c *PlanCycleCreate) sqlSave(ctx context.Context) (*PlanCycle, error) {
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
			return nil, fmt.Errorf("unexpected PlanCycle.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PlanCycleCreate) createSpec() (*PlanCycle, *sqlgraph.CreateSpec) {
	var (
		_node = &PlanCycle{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(plancycle.Table, sqlgraph.NewFieldSpec(plancycle.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(plancycle.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(plancycle.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(plancycle.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.TaskCount(); ok {
		_spec.SetField(plancycle.FieldTaskCount, field.TypeInt, value)
		_node.TaskCount = value
	}
	if value, ok := _c.mutation.FocusedDrillCount(); ok {
		_spec.SetField(plancycle.FieldFocusedDrillCount, field.TypeInt, value)
		_node.FocusedDrillCount = value
	}
	if value, ok := _c.mutation.MixedDrillCount(); ok {
		_spec.SetField(plancycle.FieldMixedDrillCount, field.TypeInt, value)
		_node.MixedDrillCount = value
	}
	if value, ok := _c.mutation.MockCount(); ok {
		_spec.SetField(plancycle.FieldMockCount, field.TypeInt, value)
		_node.MockCount = value
	}
	if value, ok := _c.mutation.FlashcardCount(); ok {
		_spec.SetField(plancycle.FieldFlashcardCount, field.TypeInt, value)
		_node.FlashcardCount = value
	}
	if value, ok := _c.mutation.ReviewCount(); ok {
		_spec.SetField(plancycle.FieldReviewCount, field.TypeInt, value)
		_node.ReviewCount = value
	}
	if value, ok := _c.mutation.DaysRemaining(); ok {
		_spec.SetField(plancycle.FieldDaysRemaining, field.TypeInt, value)
		_node.DaysRemaining = value
	}
	if value, ok := _c.mutation.WeakSkillCount(); ok {
		_spec.SetField(plancycle.FieldWeakSkillCount, field.TypeInt, value)
		_node.WeakSkillCount = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(plancycle.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	return _node, _spec
}

// PlanCycleCreateBulk is the builder for creating many PlanCycle entities in bulk.
type PlanCycleCreateBulk struct {
	config
	err      error
	builders []*PlanCycleCreate
}

// Save creates the PlanCycle entities in the database.
func (_c *PlanCycleCreateBulk) Save(ctx context.Context) ([]*PlanCycle, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PlanCycle, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PlanCycleMutation)
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
func (_c *PlanCycleCreateBulk) SaveX(ctx context.Context) []*PlanCycle {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlanCycleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlanCycleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
