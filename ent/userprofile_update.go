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
	"github.com/prepwise/backend/ent/userprofile"
)

// UserProfileUpdate is the builder for updating UserProfile entities.
type UserProfileUpdate struct {
	config
	hooks    []Hook
	mutation *UserProfileMutation
}

// Where appends a list predicates to the UserProfileUpdate builder.
func (_u *UserProfileUpdate) Where(ps ...predicate.UserProfile) *UserProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserProfileUpdate) SetUpdatedAt(v time.Time) *UserProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPackageLengthDays sets the "package_length_days" field.
func (_u *UserProfileUpdate) SetPackageLengthDays(v int) *UserProfileUpdate {
	_u.mutation.ResetPackageLengthDays()
	_u.mutation.SetPackageLengthDays(v)
	return _u
}

// SetNillablePackageLengthDays sets the "package_length_days" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillablePackageLengthDays(v *int) *UserProfileUpdate {
	if v != nil {
		_u.SetPackageLengthDays(*v)
	}
	return _u
}

// AddPackageLengthDays adds value to the "package_length_days" field.
func (_u *UserProfileUpdate) AddPackageLengthDays(v int) *UserProfileUpdate {
	_u.mutation.AddPackageLengthDays(v)
	return _u
}

// SetDailyMinutes sets the "daily_minutes" field.
func (_u *UserProfileUpdate) SetDailyMinutes(v int) *UserProfileUpdate {
	_u.mutation.ResetDailyMinutes()
	_u.mutation.SetDailyMinutes(v)
	return _u
}

// SetNillableDailyMinutes sets the "daily_minutes" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableDailyMinutes(v *int) *UserProfileUpdate {
	if v != nil {
		_u.SetDailyMinutes(*v)
	}
	return _u
}

// AddDailyMinutes adds value to the "daily_minutes" field.
func (_u *UserProfileUpdate) AddDailyMinutes(v int) *UserProfileUpdate {
	_u.mutation.AddDailyMinutes(v)
	return _u
}

// SetPackageStartedAt sets the "package_started_at" field.
func (_u *UserProfileUpdate) SetPackageStartedAt(v time.Time) *UserProfileUpdate {
	_u.mutation.SetPackageStartedAt(v)
	return _u
}

// SetNillablePackageStartedAt sets the "package_started_at" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillablePackageStartedAt(v *time.Time) *UserProfileUpdate {
	if v != nil {
		_u.SetPackageStartedAt(*v)
	}
	return _u
}

// ClearPackageStartedAt clears the value of the "package_started_at" field.
func (_u *UserProfileUpdate) ClearPackageStartedAt() *UserProfileUpdate {
	_u.mutation.ClearPackageStartedAt()
	return _u
}

// SetPhase sets the "phase" field.
func (_u *UserProfileUpdate) SetPhase(v string) *UserProfileUpdate {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillablePhase(v *string) *UserProfileUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// Mutation returns the UserProfileMutation object of the builder.
func (_u *UserProfileUpdate) Mutation() *UserProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := userprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *UserProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(userprofile.Table, userprofile.Columns, sqlgraph.NewFieldSpec(userprofile.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(userprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PackageLengthDays(); ok {
		_spec.SetField(userprofile.FieldPackageLengthDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPackageLengthDays(); ok {
		_spec.AddField(userprofile.FieldPackageLengthDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DailyMinutes(); ok {
		_spec.SetField(userprofile.FieldDailyMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDailyMinutes(); ok {
		_spec.AddField(userprofile.FieldDailyMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PackageStartedAt(); ok {
		_spec.SetField(userprofile.FieldPackageStartedAt, field.TypeTime, value)
	}
	if _u.mutation.PackageStartedAtCleared() {
		_spec.ClearField(userprofile.FieldPackageStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(userprofile.FieldPhase, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserProfileUpdateOne is the builder for updating a single UserProfile entity.
type UserProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserProfileMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserProfileUpdateOne) SetUpdatedAt(v time.Time) *UserProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPackageLengthDays sets the "package_length_days" field.
func (_u *UserProfileUpdateOne) SetPackageLengthDays(v int) *UserProfileUpdateOne {
	_u.mutation.ResetPackageLengthDays()
	_u.mutation.SetPackageLengthDays(v)
	return _u
}

// SetNillablePackageLengthDays sets the "package_length_days" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillablePackageLengthDays(v *int) *UserProfileUpdateOne {
	if v != nil {
		_u.SetPackageLengthDays(*v)
	}
	return _u
}

// AddPackageLengthDays adds value to the "package_length_days" field.
func (_u *UserProfileUpdateOne) AddPackageLengthDays(v int) *UserProfileUpdateOne {
	_u.mutation.AddPackageLengthDays(v)
	return _u
}

// SetDailyMinutes sets the "daily_minutes" field.
func (_u *UserProfileUpdateOne) SetDailyMinutes(v int) *UserProfileUpdateOne {
	_u.mutation.ResetDailyMinutes()
	_u.mutation.SetDailyMinutes(v)
	return _u
}

// SetNillableDailyMinutes sets the "daily_minutes" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableDailyMinutes(v *int) *UserProfileUpdateOne {
	if v != nil {
		_u.SetDailyMinutes(*v)
	}
	return _u
}

// AddDailyMinutes adds value to the "daily_minutes" field.
func (_u *UserProfileUpdateOne) AddDailyMinutes(v int) *UserProfileUpdateOne {
	_u.mutation.AddDailyMinutes(v)
	return _u
}

// SetPackageStartedAt sets the "package_started_at" field.
func (_u *UserProfileUpdateOne) SetPackageStartedAt(v time.Time) *UserProfileUpdateOne {
	_u.mutation.SetPackageStartedAt(v)
	return _u
}

// SetNillablePackageStartedAt sets the "package_started_at" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillablePackageStartedAt(v *time.Time) *UserProfileUpdateOne {
	if v != nil {
		_u.SetPackageStartedAt(*v)
	}
	return _u
}

// ClearPackageStartedAt clears the value of the "package_started_at" field.
func (_u *UserProfileUpdateOne) ClearPackageStartedAt() *UserProfileUpdateOne {
	_u.mutation.ClearPackageStartedAt()
	return _u
}

// SetPhase sets the "phase" field.
func (_u *UserProfileUpdateOne) SetPhase(v string) *UserProfileUpdateOne {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillablePhase(v *string) *UserProfileUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// Mutation returns the UserProfileMutation object of the builder.
func (_u *UserProfileUpdateOne) Mutation() *UserProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserProfileUpdate builder.
func (_u *UserProfileUpdateOne) Where(ps ...predicate.UserProfile) *UserProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserProfileUpdateOne) Select(field string, fields ...string) *UserProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserProfile entity.
func (_u *UserProfileUpdateOne) Save(ctx context.Context) (*UserProfile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserProfileUpdateOne) SaveX(ctx context.Context) *UserProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := userprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *UserProfileUpdateOne) sqlSave(ctx context.Context) (_node *UserProfile, err error) {
	_spec := sqlgraph.NewUpdateSpec(userprofile.Table, userprofile.Columns, sqlgraph.NewFieldSpec(userprofile.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userprofile.FieldID)
		for _, f := range fields {
			if !userprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != userprofile.FieldID {
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
		_spec.SetField(userprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PackageLengthDays(); ok {
		_spec.SetField(userprofile.FieldPackageLengthDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPackageLengthDays(); ok {
		_spec.AddField(userprofile.FieldPackageLengthDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DailyMinutes(); ok {
		_spec.SetField(userprofile.FieldDailyMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDailyMinutes(); ok {
		_spec.AddField(userprofile.FieldDailyMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PackageStartedAt(); ok {
		_spec.SetField(userprofile.FieldPackageStartedAt, field.TypeTime, value)
	}
	if _u.mutation.PackageStartedAtCleared() {
		_spec.ClearField(userprofile.FieldPackageStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(userprofile.FieldPhase, field.TypeString, value)
	}
	_node = &UserProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
