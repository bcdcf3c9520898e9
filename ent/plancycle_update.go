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
	"github.com/prepwise/backend/ent/plancycle"
	"github.com/prepwise/backend/ent/predicate"
)

// PlanCycleUpdate is the builder for updating PlanCycle entities.
type PlanCycleUpdate struct {
	config
	hooks    []Hook
	mutation *PlanCycleMutation
}

// Where appends a list predicates to the PlanCycleUpdate builder.
func (_u *PlanCycleUpdate) Where(ps ...predicate.PlanCycle) *PlanCycleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PlanCycleUpdate) SetUpdatedAt(v time.Time) *PlanCycleUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTaskCount sets the "task_count" field.
func (_u *PlanCycleUpdate) SetTaskCount(v int) *PlanCycleUpdate {
	_u.mutation.ResetTaskCount()
	_u.mutation.SetTaskCount(v)
	return _u
}

// SetNillableTaskCount sets the "task_count" field if the given value is not nil.
func (_u *PlanCycleUpdate) SetNillableTaskCount(v *int) *PlanCycleUpdate {
	if v != nil {
		_u.SetTaskCount(*v)
	}
	return _u
}

// AddTaskCount adds value to the "task_count" field.
func (_u *PlanCycleUpdate) AddTaskCount(v int) *PlanCycleUpdate {
	_u.mutation.AddTaskCount(v)
	return _u
}

// SetFocusedDrillCount sets the "focused_drill_count" field.
func (_u *PlanCycleUpdate) SetFocusedDrillCount(v int) *PlanCycleUpdate {
	_u.mutation.ResetFocusedDrillCount()
	_u.mutation.SetFocusedDrillCount(v)
	return _u
}

// SetNillableFocusedDrillCount sets the "focused_drill_count" field if the given value is not nil.
func (_u *PlanCycleUpdate) SetNillableFocusedDrillCount(v *int) *PlanCycleUpdate {
	if v != nil {
		_u.SetFocusedDrillCount(*v)
	}
	return _u
}

// AddFocusedDrillCount adds value to the "focused_drill_count" field.
func (_u *PlanCycleUpdate) AddFocusedDrillCount(v int) *PlanCycleUpdate {
	_u.mutation.AddFocusedDrillCount(v)
	return _u
}

// SetMixedDrillCount sets the "mixed_drill_count" field.
func (_u *PlanCycleUpdate) SetMixedDrillCount(v int) *PlanCycleUpdate {
	_u.mutation.ResetMixedDrillCount()
	_u.mutation.SetMixedDrillCount(v)
	return _u
}

// SetNillableMixedDrillCount sets the "mixed_drill_count" field if the given value is not nil.
func (_u *PlanCycleUpdate) SetNillableMixedDrillCount(v *int) *PlanCycleUpdate {
	if v != nil {
		_u.SetMixedDrillCount(*v)
	}
	return _u
}

// AddMixedDrillCount adds value to the "mixed_drill_count" field.
func (_u *PlanCycleUpdate) AddMixedDrillCount(v int) *PlanCycleUpdate {
	_u.mutation.AddMixedDrillCount(v)
	return _u
}

// SetMockCount sets the "mock_count" field.
func (_u *PlanCycleUpdate) SetMockCount(v int) *PlanCycleUpdate {
	_u.mutation.ResetMockCount()
	_u.mutation.SetMockCount(v)
	return _u
}

// SetNillableMockCount sets the "mock_count" field if the given value is not nil.
func (_u *PlanCycleUpdate) SetNillableMockCount(v *int) *PlanCycleUpdate {
	if v != nil {
		_u.SetMockCount(*v)
	}
	return _u
}

// AddMockCount adds value to the "mock_count" field.
func (_u *PlanCycleUpdate) AddMockCount(v int) *PlanCycleUpdate {
	_u.mutation.AddMockCount(v)
	return _u
}

// SetFlashcardCount sets the "flashcard_count" field.
func (_u *PlanCycleUpdate) SetFlashcardCount(v int) *PlanCycleUpdate {
	_u.mutation.ResetFlashcardCount()
	_u.mutation.SetFlashcardCount(v)
	return _u
}

// SetNillableFlashcardCount sets the "flashcard_count" field if the given value is not nil.
func (_u *PlanCycleUpdate) SetNillableFlashcardCount(v *int) *PlanCycleUpdate {
	if v != nil {
		_u.SetFlashcardCount(*v)
	}
	return _u
}

// AddFlashcardCount adds value to the "flashcard_count" field.
func (_u *PlanCycleUpdate) AddFlashcardCount(v int) *PlanCycleUpdate {
	_u.mutation.AddFlashcardCount(v)
	return _u
}

// SetReviewCount sets the "review_count" field.
func (_u *PlanCycleUpdate) SetReviewCount(v int) *PlanCycleUpdate {
	_u.mutation.ResetReviewCount()
	_u.mutation.SetReviewCount(v)
	return _u
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_u *PlanCycleUpdate) SetNillableReviewCount(v *int) *PlanCycleUpdate {
	if v != nil {
		_u.SetReviewCount(*v)
	}
	return _u
}

// AddReviewCount adds value to the "review_count" field.
func (_u *PlanCycleUpdate) AddReviewCount(v int) *PlanCycleUpdate {
	_u.mutation.AddReviewCount(v)
	return _u
}

// SetDaysRemaining sets the "days_remaining" field.
func (_u *PlanCycleUpdate) SetDaysRemaining(v int) *PlanCycleUpdate {
	_u.mutation.ResetDaysRemaining()
	_u.mutation.SetDaysRemaining(v)
	return _u
}

// SetNillableDaysRemaining sets the "days_remaining" field if the given value is not nil.
func (_u *PlanCycleUpdate) SetNillableDaysRemaining(v *int) *PlanCycleUpdate {
	if v != nil {
		_u.SetDaysRemaining(*v)
	}
	return _u
}

// AddDaysRemaining adds value to the "days_remaining" field.
func (_u *PlanCycleUpdate) AddDaysRemaining(v int) *PlanCycleUpdate {
	_u.mutation.AddDaysRemaining(v)
	return _u
}

// SetWeakSkillCount sets the "weak_skill_count" field.
func (_u *PlanCycleUpdate) SetWeakSkillCount(v int) *PlanCycleUpdate {
	_u.mutation.ResetWeakSkillCount()
	_u.mutation.SetWeakSkillCount(v)
	return _u
}

// SetNillableWeakSkillCount sets the "weak_skill_count" field if the given value is not nil.
func (_u *PlanCycleUpdate) SetNillableWeakSkillCount(v *int) *PlanCycleUpdate {
	if v != nil {
		_u.SetWeakSkillCount(*v)
	}
	return _u
}

// AddWeakSkillCount adds value to the "weak_skill_count" field.
func (_u *PlanCycleUpdate) AddWeakSkillCount(v int) *PlanCycleUpdate {
	_u.mutation.AddWeakSkillCount(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *PlanCycleUpdate) SetStatus(v string) *PlanCycleUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PlanCycleUpdate) SetNillableStatus(v *string) *PlanCycleUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the PlanCycleMutation object of the builder.
func (_u *PlanCycleUpdate) Mutation() *PlanCycleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PlanCycleUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanCycleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PlanCycleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanCycleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PlanCycleUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := plancycle.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *PlanCycleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(plancycle.Table, plancycle.Columns, sqlgraph.NewFieldSpec(plancycle.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(plancycle.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TaskCount(); ok {
		_spec.SetField(plancycle.FieldTaskCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTaskCount(); ok {
		_spec.AddField(plancycle.FieldTaskCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FocusedDrillCount(); ok {
		_spec.SetField(plancycle.FieldFocusedDrillCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFocusedDrillCount(); ok {
		_spec.AddField(plancycle.FieldFocusedDrillCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MixedDrillCount(); ok {
		_spec.SetField(plancycle.FieldMixedDrillCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMixedDrillCount(); ok {
		_spec.AddField(plancycle.FieldMixedDrillCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MockCount(); ok {
		_spec.SetField(plancycle.FieldMockCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMockCount(); ok {
		_spec.AddField(plancycle.FieldMockCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FlashcardCount(); ok {
		_spec.SetField(plancycle.FieldFlashcardCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFlashcardCount(); ok {
		_spec.AddField(plancycle.FieldFlashcardCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReviewCount(); ok {
		_spec.SetField(plancycle.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewCount(); ok {
		_spec.AddField(plancycle.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DaysRemaining(); ok {
		_spec.SetField(plancycle.FieldDaysRemaining, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDaysRemaining(); ok {
		_spec.AddField(plancycle.FieldDaysRemaining, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WeakSkillCount(); ok {
		_spec.SetField(plancycle.FieldWeakSkillCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeakSkillCount(); ok {
		_spec.AddField(plancycle.FieldWeakSkillCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(plancycle.FieldStatus, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{plancycle.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PlanCycleUpdateOne is the builder for updating a single PlanCycle entity.
type PlanCycleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlanCycleMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PlanCycleUpdateOne) SetUpdatedAt(v time.Time) *PlanCycleUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTaskCount sets the "task_count" field.
func (_u *PlanCycleUpdateOne) SetTaskCount(v int) *PlanCycleUpdateOne {
	_u.mutation.ResetTaskCount()
	_u.mutation.SetTaskCount(v)
	return _u
}

// SetNillableTaskCount sets the "task_count" field if the given value is not nil.
func (_u *PlanCycleUpdateOne) SetNillableTaskCount(v *int) *PlanCycleUpdateOne {
	if v != nil {
		_u.SetTaskCount(*v)
	}
	return _u
}

// AddTaskCount adds value to the "task_count" field.
func (_u *PlanCycleUpdateOne) AddTaskCount(v int) *PlanCycleUpdateOne {
	_u.mutation.AddTaskCount(v)
	return _u
}

// SetFocusedDrillCount sets the "focused_drill_count" field.
func (_u *PlanCycleUpdateOne) SetFocusedDrillCount(v int) *PlanCycleUpdateOne {
	_u.mutation.ResetFocusedDrillCount()
	_u.mutation.SetFocusedDrillCount(v)
	return _u
}

// SetNillableFocusedDrillCount sets the "focused_drill_count" field if the given value is not nil.
func (_u *PlanCycleUpdateOne) SetNillableFocusedDrillCount(v *int) *PlanCycleUpdateOne {
	if v != nil {
		_u.SetFocusedDrillCount(*v)
	}
	return _u
}

// AddFocusedDrillCount adds value to the "focused_drill_count" field.
func (_u *PlanCycleUpdateOne) AddFocusedDrillCount(v int) *PlanCycleUpdateOne {
	_u.mutation.AddFocusedDrillCount(v)
	return _u
}

// SetMixedDrillCount sets the "mixed_drill_count" field.
func (_u *PlanCycleUpdateOne) SetMixedDrillCount(v int) *PlanCycleUpdateOne {
	_u.mutation.ResetMixedDrillCount()
	_u.mutation.SetMixedDrillCount(v)
	return _u
}

// SetNillableMixedDrillCount sets the "mixed_drill_count" field if the given value is not nil.
func (_u *PlanCycleUpdateOne) SetNillableMixedDrillCount(v *int) *PlanCycleUpdateOne {
	if v != nil {
		_u.SetMixedDrillCount(*v)
	}
	return _u
}

// AddMixedDrillCount adds value to the "mixed_drill_count" field.
func (_u *PlanCycleUpdateOne) AddMixedDrillCount(v int) *PlanCycleUpdateOne {
	_u.mutation.AddMixedDrillCount(v)
	return _u
}

// SetMockCount sets the "mock_count" field.
func (_u *PlanCycleUpdateOne) SetMockCount(v int) *PlanCycleUpdateOne {
	_u.mutation.ResetMockCount()
	_u.mutation.SetMockCount(v)
	return _u
}

// SetNillableMockCount sets the "mock_count" field if the given value is not nil.
func (_u *PlanCycleUpdateOne) SetNillableMockCount(v *int) *PlanCycleUpdateOne {
	if v != nil {
		_u.SetMockCount(*v)
	}
	return _u
}

// AddMockCount adds value to the "mock_count" field.
func (_u *PlanCycleUpdateOne) AddMockCount(v int) *PlanCycleUpdateOne {
	_u.mutation.AddMockCount(v)
	return _u
}

// SetFlashcardCount sets the "flashcard_count" field.
func (_u *PlanCycleUpdateOne) SetFlashcardCount(v int) *PlanCycleUpdateOne {
	_u.mutation.ResetFlashcardCount()
	_u.mutation.SetFlashcardCount(v)
	return _u
}

// SetNillableFlashcardCount sets the "flashcard_count" field if the given value is not nil.
func (_u *PlanCycleUpdateOne) SetNillableFlashcardCount(v *int) *PlanCycleUpdateOne {
	if v != nil {
		_u.SetFlashcardCount(*v)
	}
	return _u
}

// AddFlashcardCount adds value to the "flashcard_count" field.
func (_u *PlanCycleUpdateOne) AddFlashcardCount(v int) *PlanCycleUpdateOne {
	_u.mutation.AddFlashcardCount(v)
	return _u
}

// SetReviewCount sets the "review_count" field.
func (_u *PlanCycleUpdateOne) SetReviewCount(v int) *PlanCycleUpdateOne {
	_u.mutation.ResetReviewCount()
	_u.mutation.SetReviewCount(v)
	return _u
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_u *PlanCycleUpdateOne) SetNillableReviewCount(v *int) *PlanCycleUpdateOne {
	if v != nil {
		_u.SetReviewCount(*v)
	}
	return _u
}

// AddReviewCount adds value to the "review_count" field.
func (_u *PlanCycleUpdateOne) AddReviewCount(v int) *PlanCycleUpdateOne {
	_u.mutation.AddReviewCount(v)
	return _u
}

// SetDaysRemaining sets the "days_remaining" field.
func (_u *PlanCycleUpdateOne) SetDaysRemaining(v int) *PlanCycleUpdateOne {
	_u.mutation.ResetDaysRemaining()
	_u.mutation.SetDaysRemaining(v)
	return _u
}

// SetNillableDaysRemaining sets the "days_remaining" field if the given value is not nil.
func (_u *PlanCycleUpdateOne) SetNillableDaysRemaining(v *int) *PlanCycleUpdateOne {
	if v != nil {
		_u.SetDaysRemaining(*v)
	}
	return _u
}

// AddDaysRemaining adds value to the "days_remaining" field.
func (_u *PlanCycleUpdateOne) AddDaysRemaining(v int) *PlanCycleUpdateOne {
	_u.mutation.AddDaysRemaining(v)
	return _u
}

// SetWeakSkillCount sets the "weak_skill_count" field.
func (_u *PlanCycleUpdateOne) SetWeakSkillCount(v int) *PlanCycleUpdateOne {
	_u.mutation.ResetWeakSkillCount()
	_u.mutation.SetWeakSkillCount(v)
	return _u
}

// SetNillableWeakSkillCount sets the "weak_skill_count" field if the given value is not nil.
func (_u *PlanCycleUpdateOne) SetNillableWeakSkillCount(v *int) *PlanCycleUpdateOne {
	if v != nil {
		_u.SetWeakSkillCount(*v)
	}
	return _u
}

// AddWeakSkillCount adds value to the "weak_skill_count" field.
func (_u *PlanCycleUpdateOne) AddWeakSkillCount(v int) *PlanCycleUpdateOne {
	_u.mutation.AddWeakSkillCount(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *PlanCycleUpdateOne) SetStatus(v string) *PlanCycleUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PlanCycleUpdateOne) SetNillableStatus(v *string) *PlanCycleUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the PlanCycleMutation object of the builder.
func (_u *PlanCycleUpdateOne) Mutation() *PlanCycleMutation {
	return _u.mutation
}

// Where appends a list predicates to the PlanCycleUpdate builder.
func (_u *PlanCycleUpdateOne) Where(ps ...predicate.PlanCycle) *PlanCycleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PlanCycleUpdateOne) Select(field string, fields ...string) *PlanCycleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PlanCycle entity.
func (_u *PlanCycleUpdateOne) Save(ctx context.Context) (*PlanCycle, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanCycleUpdateOne) SaveX(ctx context.Context) *PlanCycle {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PlanCycleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanCycleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PlanCycleUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := plancycle.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *PlanCycleUpdateOne) sqlSave(ctx context.Context) (_node *PlanCycle, err error) {
	_spec := sqlgraph.NewUpdateSpec(plancycle.Table, plancycle.Columns, sqlgraph.NewFieldSpec(plancycle.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PlanCycle.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, plancycle.FieldID)
		for _, f := range fields {
			if !plancycle.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != plancycle.FieldID {
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
		_spec.SetField(plancycle.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TaskCount(); ok {
		_spec.SetField(plancycle.FieldTaskCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTaskCount(); ok {
		_spec.AddField(plancycle.FieldTaskCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FocusedDrillCount(); ok {
		_spec.SetField(plancycle.FieldFocusedDrillCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFocusedDrillCount(); ok {
		_spec.AddField(plancycle.FieldFocusedDrillCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MixedDrillCount(); ok {
		_spec.SetField(plancycle.FieldMixedDrillCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMixedDrillCount(); ok {
		_spec.AddField(plancycle.FieldMixedDrillCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MockCount(); ok {
		_spec.SetField(plancycle.FieldMockCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMockCount(); ok {
		_spec.AddField(plancycle.FieldMockCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FlashcardCount(); ok {
		_spec.SetField(plancycle.FieldFlashcardCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFlashcardCount(); ok {
		_spec.AddField(plancycle.FieldFlashcardCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReviewCount(); ok {
		_spec.SetField(plancycle.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewCount(); ok {
		_spec.AddField(plancycle.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DaysRemaining(); ok {
		_spec.SetField(plancycle.FieldDaysRemaining, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDaysRemaining(); ok {
		_spec.AddField(plancycle.FieldDaysRemaining, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WeakSkillCount(); ok {
		_spec.SetField(plancycle.FieldWeakSkillCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeakSkillCount(); ok {
		_spec.AddField(plancycle.FieldWeakSkillCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(plancycle.FieldStatus, field.TypeString, value)
	}
	_node = &PlanCycle{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{plancycle.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
