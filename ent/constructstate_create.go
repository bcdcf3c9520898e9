// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/prepwise/backend/ent/constructstate"
)

// ConstructStateCreate is the builder for creating a ConstructState entity.
type ConstructStateCreate struct {
	config
	mutation *ConstructStateMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ConstructStateCreate) SetCreatedAt(v time.Time) *ConstructStateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ConstructStateCreate) SetNillableCreatedAt(v *time.Time) *ConstructStateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ConstructStateCreate) SetUpdatedAt(v time.Time) *ConstructStateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ConstructStateCreate) SetNillableUpdatedAt(v *time.Time) *ConstructStateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ConstructStateCreate) SetUserID(v string) *ConstructStateCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetConstruct sets the "construct" field.
func (_c *ConstructStateCreate) SetConstruct(v string) *ConstructStateCreate {
	_c.mutation.SetConstruct(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *ConstructStateCreate) SetScore(v float64) *ConstructStateCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *ConstructStateCreate) SetNillableScore(v *float64) *ConstructStateCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *ConstructStateCreate) SetConfidence(v float64) *ConstructStateCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *ConstructStateCreate) SetNillableConfidence(v *float64) *ConstructStateCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetTrend sets the "trend" field.
func (_c *ConstructStateCreate) SetTrend(v string) *ConstructStateCreate {
	_c.mutation.SetTrend(v)
	return _c
}

// SetNillableTrend sets the "trend" field if the given value is not nil.
func (_c *ConstructStateCreate) SetNillableTrend(v *string) *ConstructStateCreate {
	if v != nil {
		_c.SetTrend(*v)
	}
	return _c
}

// SetDataPoints sets the "data_points" field.
func (_c *ConstructStateCreate) SetDataPoints(v int) *ConstructStateCreate {
	_c.mutation.SetDataPoints(v)
	return _c
}

// SetNillableDataPoints sets the "data_points" field if the given value is not nil.
func (_c *ConstructStateCreate) SetNillableDataPoints(v *int) *ConstructStateCreate {
	if v != nil {
		_c.SetDataPoints(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ConstructStateCreate) SetID(v string) *ConstructStateCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ConstructStateCreate) SetNillableID(v *string) *ConstructStateCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ConstructStateMutation object of the builder.
func (_c *ConstructStateCreate) Mutation() *ConstructStateMutation {
	return _c.mutation
}

// Save creates the ConstructState in the database.
func (_c *ConstructStateCreate) Save(ctx context.Context) (*ConstructState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConstructStateCreate) SaveX(ctx context.Context) *ConstructState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConstructStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConstructStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConstructStateCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := constructstate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := constructstate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Score(); !ok {
		v := constructstate.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := constructstate.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.Trend(); !ok {
		v := constructstate.DefaultTrend
		_c.mutation.SetTrend(v)
	}
	if _, ok := _c.mutation.DataPoints(); !ok {
		v := constructstate.DefaultDataPoints
		_c.mutation.SetDataPoints(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := constructstate.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConstructStateCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ConstructState.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ConstructState.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ConstructState.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := constructstate.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ConstructState.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Construct(); !ok {
		return &ValidationError{Name: "construct", err: errors.New(`ent: missing required field "ConstructState.construct"`)}
	}
	if v, ok := _c.mutation.Construct(); ok {
		if err := constructstate.ConstructValidator(v); err != nil {
			return &ValidationError{Name: "construct", err: fmt.Errorf(`ent: validator failed for field "ConstructState.construct": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "ConstructState.score"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "ConstructState.confidence"`)}
	}
	if _, ok := _c.mutation.Trend(); !ok {
		return &ValidationError{Name: "trend", err: errors.New(`ent: missing required field "ConstructState.trend"`)}
	}
	if _, ok := _c.mutation.DataPoints(); !ok {
		return &ValidationError{Name: "data_points", err: errors.New(`ent: missing required field "ConstructState.data_points"`)}
	}
	return nil
}

func (_c *ConstructStateCreate) sqlSave(ctx context.Context) (*ConstructState, error) {
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
			return nil, fmt.Errorf("unexpected ConstructState.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ConstructStateCreate) createSpec() (*ConstructState, *sqlgraph.CreateSpec) {
	var (
		_node = &ConstructState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(constructstate.Table, sqlgraph.NewFieldSpec(constructstate.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(constructstate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(constructstate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(constructstate.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Construct(); ok {
		_spec.SetField(constructstate.FieldConstruct, field.TypeString, value)
		_node.Construct = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(constructstate.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(constructstate.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Trend(); ok {
		_spec.SetField(constructstate.FieldTrend, field.TypeString, value)
		_node.Trend = value
	}
	if value, ok := _c.mutation.DataPoints(); ok {
		_spec.SetField(constructstate.FieldDataPoints, field.TypeInt, value)
		_node.DataPoints = value
	}
	return _node, _spec
}

// ConstructStateCreateBulk is the builder for creating many ConstructState entities in bulk.
type ConstructStateCreateBulk struct {
	config
	err      error
	builders []*ConstructStateCreate
}

// Save creates the ConstructState entities in the database.
func (_c *ConstructStateCreateBulk) Save(ctx context.Context) ([]*ConstructState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ConstructState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConstructStateMutation)
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
func (_c *ConstructStateCreateBulk) SaveX(ctx context.Context) []*ConstructState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConstructStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConstructStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
