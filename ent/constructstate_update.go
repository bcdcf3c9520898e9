// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/prepwise/backend/ent/constructstate"
	"github.com/prepwise/backend/ent/predicate"
)

// ConstructStateUpdate is the builder for updating ConstructState entities.
type ConstructStateUpdate struct {
	config
	hooks    []Hook
	mutation *ConstructStateMutation
}

// Where appends a list predicates to the ConstructStateUpdate builder.
func (_u *ConstructStateUpdate) Where(ps ...predicate.ConstructState) *ConstructStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConstructStateUpdate) SetUpdatedAt(v time.Time) *ConstructStateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *ConstructStateUpdate) SetScore(v float64) *ConstructStateUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ConstructStateUpdate) SetNillableScore(v *float64) *ConstructStateUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ConstructStateUpdate) AddScore(v float64) *ConstructStateUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ConstructStateUpdate) SetConfidence(v float64) *ConstructStateUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ConstructStateUpdate) SetNillableConfidence(v *float64) *ConstructStateUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ConstructStateUpdate) AddConfidence(v float64) *ConstructStateUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetTrend sets the "trend" field.
func (_u *ConstructStateUpdate) SetTrend(v string) *ConstructStateUpdate {
	_u.mutation.SetTrend(v)
	return _u
}

// SetNillableTrend sets the "trend" field if the given value is not nil.
func (_u *ConstructStateUpdate) SetNillableTrend(v *string) *ConstructStateUpdate {
	if v != nil {
		_u.SetTrend(*v)
	}
	return _u
}

// SetDataPoints sets the "data_points" field.
func (_u *ConstructStateUpdate) SetDataPoints(v int) *ConstructStateUpdate {
	_u.mutation.ResetDataPoints()
	_u.mutation.SetDataPoints(v)
	return _u
}

// SetNillableDataPoints sets the "data_points" field if the given value is not nil.
func (_u *ConstructStateUpdate) SetNillableDataPoints(v *int) *ConstructStateUpdate {
	if v != nil {
		_u.SetDataPoints(*v)
	}
	return _u
}

// AddDataPoints adds value to the "data_points" field.
func (_u *ConstructStateUpdate) AddDataPoints(v int) *ConstructStateUpdate {
	_u.mutation.AddDataPoints(v)
	return _u
}

// Mutation returns the ConstructStateMutation object of the builder.
func (_u *ConstructStateUpdate) Mutation() *ConstructStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConstructStateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConstructStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConstructStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConstructStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConstructStateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := constructstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ConstructStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(constructstate.Table, constructstate.Columns, sqlgraph.NewFieldSpec(constructstate.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(constructstate.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(constructstate.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(constructstate.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(constructstate.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(constructstate.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Trend(); ok {
		_spec.SetField(constructstate.FieldTrend, field.TypeString, value)
	}
	if value, ok := _u.mutation.DataPoints(); ok {
		_spec.SetField(constructstate.FieldDataPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDataPoints(); ok {
		_spec.AddField(constructstate.FieldDataPoints, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{constructstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConstructStateUpdateOne is the builder for updating a single ConstructState entity.
type ConstructStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConstructStateMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConstructStateUpdateOne) SetUpdatedAt(v time.Time) *ConstructStateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *ConstructStateUpdateOne) SetScore(v float64) *ConstructStateUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ConstructStateUpdateOne) SetNillableScore(v *float64) *ConstructStateUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ConstructStateUpdateOne) AddScore(v float64) *ConstructStateUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ConstructStateUpdateOne) SetConfidence(v float64) *ConstructStateUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ConstructStateUpdateOne) SetNillableConfidence(v *float64) *ConstructStateUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ConstructStateUpdateOne) AddConfidence(v float64) *ConstructStateUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetTrend sets the "trend" field.
func (_u *ConstructStateUpdateOne) SetTrend(v string) *ConstructStateUpdateOne {
	_u.mutation.SetTrend(v)
	return _u
}

// SetNillableTrend sets the "trend" field if the given value is not nil.
func (_u *ConstructStateUpdateOne) SetNillableTrend(v *string) *ConstructStateUpdateOne {
	if v != nil {
		_u.SetTrend(*v)
	}
	return _u
}

// SetDataPoints sets the "data_points" field.
func (_u *ConstructStateUpdateOne) SetDataPoints(v int) *ConstructStateUpdateOne {
	_u.mutation.ResetDataPoints()
	_u.mutation.SetDataPoints(v)
	return _u
}

// SetNillableDataPoints sets the "data_points" field if the given value is not nil.
func (_u *ConstructStateUpdateOne) SetNillableDataPoints(v *int) *ConstructStateUpdateOne {
	if v != nil {
		_u.SetDataPoints(*v)
	}
	return _u
}

// AddDataPoints adds value to the "data_points" field.
func (_u *ConstructStateUpdateOne) AddDataPoints(v int) *ConstructStateUpdateOne {
	_u.mutation.AddDataPoints(v)
	return _u
}

// Mutation returns the ConstructStateMutation object of the builder.
func (_u *ConstructStateUpdateOne) Mutation() *ConstructStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConstructStateUpdate builder.
func (_u *ConstructStateUpdateOne) Where(ps ...predicate.ConstructState) *ConstructStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConstructStateUpdateOne) Select(field string, fields ...string) *ConstructStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConstructState entity.
func (_u *ConstructStateUpdateOne) Save(ctx context.Context) (*ConstructState, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConstructStateUpdateOne) SaveX(ctx context.Context) *ConstructState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConstructStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConstructStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConstructStateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := constructstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ConstructStateUpdateOne) sqlSave(ctx context.Context) (_node *ConstructState, err error) {
	_spec := sqlgraph.NewUpdateSpec(constructstate.Table, constructstate.Columns, sqlgraph.NewFieldSpec(constructstate.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConstructState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, constructstate.FieldID)
		for _, f := range fields {
			if !constructstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != constructstate.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(constructstate.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(constructstate.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(constructstate.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(constructstate.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(constructstate.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Trend(); ok {
		_spec.SetField(constructstate.FieldTrend, field.TypeString, value)
	}
	if value, ok := _u.mutation.DataPoints(); ok {
		_spec.SetField(constructstate.FieldDataPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDataPoints(); ok {
		_spec.AddField(constructstate.FieldDataPoints, field.TypeInt, value)
	}
	_node = &ConstructState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{constructstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
