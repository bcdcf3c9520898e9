// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/prepwise/backend/ent/plantask"
)

// PlanTaskCreate is the builder for creating a PlanTask entity.
type PlanTaskCreate struct {
	config
	mutation *PlanTaskMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *PlanTaskCreate) SetCreatedAt(v time.Time) *PlanTaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PlanTaskCreate) SetNillableCreatedAt(v *time.Time) *PlanTaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PlanTaskCreate) SetUpdatedAt(v time.Time) *PlanTaskCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PlanTaskCreate) SetNillableUpdatedAt(v *time.Time) *PlanTaskCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCycleID sets the "cycle_id" field.
func (_c *PlanTaskCreate) SetCycleID(v string) *PlanTaskCreate {
	_c.mutation.SetCycleID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *PlanTaskCreate) SetUserID(v string) *PlanTaskCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTaskType sets the "task_type" field.
func (_c *PlanTaskCreate) SetTaskType(v string) *PlanTaskCreate {
	_c.mutation.SetTaskType(v)
	return _c
}

// SetSequence sets the "sequence" field.
func (_c *PlanTaskCreate) SetSequence(v int) *PlanTaskCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PlanTaskCreate) SetStatus(v string) *PlanTaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PlanTaskCreate) SetNillableStatus(v *string) *PlanTaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *PlanTaskCreate) SetCompletedAt(v time.Time) *PlanTaskCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *PlanTaskCreate) SetNillableCompletedAt(v *time.Time) *PlanTaskCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PlanTaskCreate) SetID(v string) *PlanTaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PlanTaskCreate) SetNillableID(v *string) *PlanTaskCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the PlanTaskMutation object of the builder.
func (_c *PlanTaskCreate) Mutation() *PlanTaskMutation {
	return _c.mutation
}

// Save creates the PlanTask in the database.
func (_c *PlanTaskCreate) Save(ctx context.Context) (*PlanTask, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PlanTaskCreate) SaveX(ctx context.Context) *PlanTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlanTaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlanTaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PlanTaskCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := plantask.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := plantask.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := plantask.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := plantask.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PlanTaskCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PlanTask.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PlanTask.updated_at"`)}
	}
	if _, ok := _c.mutation.CycleID(); !ok {
		return &ValidationError{Name: "cycle_id", err: errors.New(`ent: missing required field "PlanTask.cycle_id"`)}
	}
	if v, ok := _c.mutation.CycleID(); ok {
		if err := plantask.CycleIDValidator(v); err != nil {
			return &ValidationError{Name: "cycle_id", err: fmt.Errorf(`ent: validator failed for field "PlanTask.cycle_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "PlanTask.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := plantask.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PlanTask.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TaskType(); !ok {
		return &ValidationError{Name: "task_type", err: errors.New(`ent: missing required field "PlanTask.task_type"`)}
	}
	if v, ok := _c.mutation.TaskType(); ok {
		if err := plantask.TaskTypeValidator(v); err != nil {
			return &ValidationError{Name: "task_type", err: fmt.Errorf(`ent: validator failed for field "PlanTask.task_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "PlanTask.sequence"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PlanTask.status"`)}
	}
	return nil
}

func (_c *PlanTaskCreate) sqlSave(ctx context.Context) (*PlanTask, error) {
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
			return nil, fmt.Errorf("unexpected PlanTask.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PlanTaskCreate) createSpec() (*PlanTask, *sqlgraph.CreateSpec) {
	var (
		_node = &PlanTask{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(plantask.Table, sqlgraph.NewFieldSpec(plantask.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(plantask.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(plantask.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CycleID(); ok {
		_spec.SetField(plantask.FieldCycleID, field.TypeString, value)
		_node.CycleID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(plantask.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.TaskType(); ok {
		_spec.SetField(plantask.FieldTaskType, field.TypeString, value)
		_node.TaskType = value
	}
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(plantask.FieldSequence, field.TypeInt, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(plantask.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(plantask.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// PlanTaskCreateBulk is the builder for creating many PlanTask entities in bulk.
type PlanTaskCreateBulk struct {
	config
	err      error
	builders []*PlanTaskCreate
}

// Save creates the PlanTask entities in the database.
func (_c *PlanTaskCreateBulk) Save(ctx context.Context) ([]*PlanTask, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PlanTask, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PlanTaskMutation)
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
func (_c *PlanTaskCreateBulk) SaveX(ctx context.Context) []*PlanTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlanTaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlanTaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
