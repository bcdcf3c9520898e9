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
	"github.com/prepwise/backend/ent/predicate"
	"github.com/prepwise/backend/ent/skillstate"
)

// SkillStateUpdate is the builder for updating SkillState entities.
type SkillStateUpdate struct {
	config
	hooks    []Hook
	mutation *SkillStateMutation
}

// Where appends a list predicates to the SkillStateUpdate builder.
func (_u *SkillStateUpdate) Where(ps ...predicate.SkillState) *SkillStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SkillStateUpdate) SetUpdatedAt(v time.Time) *SkillStateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *SkillStateUpdate) SetAttemptCount(v int) *SkillStateUpdate {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *SkillStateUpdate) SetNillableAttemptCount(v *int) *SkillStateUpdate {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *SkillStateUpdate) AddAttemptCount(v int) *SkillStateUpdate {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *SkillStateUpdate) SetCorrectCount(v int) *SkillStateUpdate {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *SkillStateUpdate) SetNillableCorrectCount(v *int) *SkillStateUpdate {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *SkillStateUpdate) AddCorrectCount(v int) *SkillStateUpdate {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *SkillStateUpdate) SetAccuracy(v float64) *SkillStateUpdate {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *SkillStateUpdate) SetNillableAccuracy(v *float64) *SkillStateUpdate {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *SkillStateUpdate) AddAccuracy(v float64) *SkillStateUpdate {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetTotalTimeSec sets the "total_time_sec" field.
func (_u *SkillStateUpdate) SetTotalTimeSec(v int) *SkillStateUpdate {
	_u.mutation.ResetTotalTimeSec()
	_u.mutation.SetTotalTimeSec(v)
	return _u
}

// SetNillableTotalTimeSec sets the "total_time_sec" field if the given value is not nil.
func (_u *SkillStateUpdate) SetNillableTotalTimeSec(v *int) *SkillStateUpdate {
	if v != nil {
		_u.SetTotalTimeSec(*v)
	}
	return _u
}

// AddTotalTimeSec adds value to the "total_time_sec" field.
func (_u *SkillStateUpdate) AddTotalTimeSec(v int) *SkillStateUpdate {
	_u.mutation.AddTotalTimeSec(v)
	return _u
}

// SetAvgTimeSec sets the "avg_time_sec" field.
func (_u *SkillStateUpdate) SetAvgTimeSec(v float64) *SkillStateUpdate {
	_u.mutation.ResetAvgTimeSec()
	_u.mutation.SetAvgTimeSec(v)
	return _u
}

// SetNillableAvgTimeSec sets the "avg_time_sec" field if the given value is not nil.
func (_u *SkillStateUpdate) SetNillableAvgTimeSec(v *float64) *SkillStateUpdate {
	if v != nil {
		_u.SetAvgTimeSec(*v)
	}
	return _u
}

// AddAvgTimeSec adds value to the "avg_time_sec" field.
func (_u *SkillStateUpdate) AddAvgTimeSec(v float64) *SkillStateUpdate {
	_u.mutation.AddAvgTimeSec(v)
	return _u
}

// SetMasteryLevel sets the "mastery_level" field.
func (_u *SkillStateUpdate) SetMasteryLevel(v string) *SkillStateUpdate {
	_u.mutation.SetMasteryLevel(v)
	return _u
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_u *SkillStateUpdate) SetNillableMasteryLevel(v *string) *SkillStateUpdate {
	if v != nil {
		_u.SetMasteryLevel(*v)
	}
	return _u
}

// SetLastAttemptedAt sets the "last_attempted_at" field.
func (_u *SkillStateUpdate) SetLastAttemptedAt(v time.Time) *SkillStateUpdate {
	_u.mutation.SetLastAttemptedAt(v)
	return _u
}

// SetNillableLastAttemptedAt sets the "last_attempted_at" field if the given value is not nil.
func (_u *SkillStateUpdate) SetNillableLastAttemptedAt(v *time.Time) *SkillStateUpdate {
	if v != nil {
		_u.SetLastAttemptedAt(*v)
	}
	return _u
}

// ClearLastAttemptedAt clears the value of the "last_attempted_at" field.
func (_u *SkillStateUpdate) ClearLastAttemptedAt() *SkillStateUpdate {
	_u.mutation.ClearLastAttemptedAt()
	return _u
}

// Mutation returns the SkillStateMutation object of the builder.
func (_u *SkillStateUpdate) Mutation() *SkillStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SkillStateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SkillStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SkillStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SkillStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SkillStateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := skillstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SkillStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(skillstate.Table, skillstate.Columns, sqlgraph.NewFieldSpec(skillstate.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(skillstate.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(skillstate.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(skillstate.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(skillstate.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(skillstate.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(skillstate.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(skillstate.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalTimeSec(); ok {
		_spec.SetField(skillstate.FieldTotalTimeSec, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTimeSec(); ok {
		_spec.AddField(skillstate.FieldTotalTimeSec, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgTimeSec(); ok {
		_spec.SetField(skillstate.FieldAvgTimeSec, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgTimeSec(); ok {
		_spec.AddField(skillstate.FieldAvgTimeSec, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MasteryLevel(); ok {
		_spec.SetField(skillstate.FieldMasteryLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastAttemptedAt(); ok {
		_spec.SetField(skillstate.FieldLastAttemptedAt, field.TypeTime, value)
	}
	if _u.mutation.LastAttemptedAtCleared() {
		_spec.ClearField(skillstate.FieldLastAttemptedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{skillstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SkillStateUpdateOne is the builder for updating a single SkillState entity.
type SkillStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SkillStateMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SkillStateUpdateOne) SetUpdatedAt(v time.Time) *SkillStateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *SkillStateUpdateOne) SetAttemptCount(v int) *SkillStateUpdateOne {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *SkillStateUpdateOne) SetNillableAttemptCount(v *int) *SkillStateUpdateOne {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *SkillStateUpdateOne) AddAttemptCount(v int) *SkillStateUpdateOne {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *SkillStateUpdateOne) SetCorrectCount(v int) *SkillStateUpdateOne {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *SkillStateUpdateOne) SetNillableCorrectCount(v *int) *SkillStateUpdateOne {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *SkillStateUpdateOne) AddCorrectCount(v int) *SkillStateUpdateOne {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *SkillStateUpdateOne) SetAccuracy(v float64) *SkillStateUpdateOne {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *SkillStateUpdateOne) SetNillableAccuracy(v *float64) *SkillStateUpdateOne {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *SkillStateUpdateOne) AddAccuracy(v float64) *SkillStateUpdateOne {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetTotalTimeSec sets the "total_time_sec" field.
func (_u *SkillStateUpdateOne) SetTotalTimeSec(v int) *SkillStateUpdateOne {
	_u.mutation.ResetTotalTimeSec()
	_u.mutation.SetTotalTimeSec(v)
	return _u
}

// SetNillableTotalTimeSec sets the "total_time_sec" field if the given value is not nil.
func (_u *SkillStateUpdateOne) SetNillableTotalTimeSec(v *int) *SkillStateUpdateOne {
	if v != nil {
		_u.SetTotalTimeSec(*v)
	}
	return _u
}

// AddTotalTimeSec adds value to the "total_time_sec" field.
func (_u *SkillStateUpdateOne) AddTotalTimeSec(v int) *SkillStateUpdateOne {
	_u.mutation.AddTotalTimeSec(v)
	return _u
}

// SetAvgTimeSec sets the "avg_time_sec" field.
func (_u *SkillStateUpdateOne) SetAvgTimeSec(v float64) *SkillStateUpdateOne {
	_u.mutation.ResetAvgTimeSec()
	_u.mutation.SetAvgTimeSec(v)
	return _u
}

// SetNillableAvgTimeSec sets the "avg_time_sec" field if the given value is not nil.
func (_u *SkillStateUpdateOne) SetNillableAvgTimeSec(v *float64) *SkillStateUpdateOne {
	if v != nil {
		_u.SetAvgTimeSec(*v)
	}
	return _u
}

// AddAvgTimeSec adds value to the "avg_time_sec" field.
func (_u *SkillStateUpdateOne) AddAvgTimeSec(v float64) *SkillStateUpdateOne {
	_u.mutation.AddAvgTimeSec(v)
	return _u
}

// SetMasteryLevel sets the "mastery_level" field.
func (_u *SkillStateUpdateOne) SetMasteryLevel(v string) *SkillStateUpdateOne {
	_u.mutation.SetMasteryLevel(v)
	return _u
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_u *SkillStateUpdateOne) SetNillableMasteryLevel(v *string) *SkillStateUpdateOne {
	if v != nil {
		_u.SetMasteryLevel(*v)
	}
	return _u
}

// SetLastAttemptedAt sets the "last_attempted_at" field.
func (_u *SkillStateUpdateOne) SetLastAttemptedAt(v time.Time) *SkillStateUpdateOne {
	_u.mutation.SetLastAttemptedAt(v)
	return _u
}

// SetNillableLastAttemptedAt sets the "last_attempted_at" field if the given value is not nil.
func (_u *SkillStateUpdateOne) SetNillableLastAttemptedAt(v *time.Time) *SkillStateUpdateOne {
	if v != nil {
		_u.SetLastAttemptedAt(*v)
	}
	return _u
}

// ClearLastAttemptedAt clears the value of the "last_attempted_at" field.
func (_u *SkillStateUpdateOne) ClearLastAttemptedAt() *SkillStateUpdateOne {
	_u.mutation.ClearLastAttemptedAt()
	return _u
}

// Mutation returns the SkillStateMutation object of the builder.
func (_u *SkillStateUpdateOne) Mutation() *SkillStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the SkillStateUpdate builder.
func (_u *SkillStateUpdateOne) Where(ps ...predicate.SkillState) *SkillStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SkillStateUpdateOne) Select(field string, fields ...string) *SkillStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SkillState entity.
func (_u *SkillStateUpdateOne) Save(ctx context.Context) (*SkillState, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SkillStateUpdateOne) SaveX(ctx context.Context) *SkillState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SkillStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SkillStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SkillStateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := skillstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SkillStateUpdateOne) sqlSave(ctx context.Context) (_node *SkillState, err error) {
	_spec := sqlgraph.NewUpdateSpec(skillstate.Table, skillstate.Columns, sqlgraph.NewFieldSpec(skillstate.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SkillState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, skillstate.FieldID)
		for _, f := range fields {
			if !skillstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != skillstate.FieldID {
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
		_spec.SetField(skillstate.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(skillstate.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(skillstate.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(skillstate.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(skillstate.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(skillstate.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(skillstate.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalTimeSec(); ok {
		_spec.SetField(skillstate.FieldTotalTimeSec, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTimeSec(); ok {
		_spec.AddField(skillstate.FieldTotalTimeSec, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgTimeSec(); ok {
		_spec.SetField(skillstate.FieldAvgTimeSec, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgTimeSec(); ok {
		_spec.AddField(skillstate.FieldAvgTimeSec, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MasteryLevel(); ok {
		_spec.SetField(skillstate.FieldMasteryLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastAttemptedAt(); ok {
		_spec.SetField(skillstate.FieldLastAttemptedAt, field.TypeTime, value)
	}
	if _u.mutation.LastAttemptedAtCleared() {
		_spec.ClearField(skillstate.FieldLastAttemptedAt, field.TypeTime)
	}
	_node = &SkillState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{skillstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
