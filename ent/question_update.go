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
	"github.com/prepwise/backend/ent/question"
)

// QuestionUpdate is the builder for updating Question entities.
type QuestionUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionMutation
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdate) Where(ps ...predicate.Question) *QuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QuestionUpdate) SetUpdatedAt(v time.Time) *QuestionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *QuestionUpdate) SetSkillID(v string) *QuestionUpdate {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableSkillID(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *QuestionUpdate) SetDifficulty(v string) *QuestionUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableDifficulty(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetCognitiveLevel sets the "cognitive_level" field.
func (_u *QuestionUpdate) SetCognitiveLevel(v string) *QuestionUpdate {
	_u.mutation.SetCognitiveLevel(v)
	return _u
}

// SetNillableCognitiveLevel sets the "cognitive_level" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableCognitiveLevel(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetCognitiveLevel(*v)
	}
	return _u
}

// SetAnswerFormat sets the "answer_format" field.
func (_u *QuestionUpdate) SetAnswerFormat(v string) *QuestionUpdate {
	_u.mutation.SetAnswerFormat(v)
	return _u
}

// SetNillableAnswerFormat sets the "answer_format" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableAnswerFormat(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetAnswerFormat(*v)
	}
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *QuestionUpdate) SetCorrectAnswer(v string) *QuestionUpdate {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableCorrectAnswer(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetConstructWeights sets the "construct_weights" field.
func (_u *QuestionUpdate) SetConstructWeights(v map[string]float64) *QuestionUpdate {
	_u.mutation.SetConstructWeights(v)
	return _u
}

// ClearConstructWeights clears the value of the "construct_weights" field.
func (_u *QuestionUpdate) ClearConstructWeights() *QuestionUpdate {
	_u.mutation.ClearConstructWeights()
	return _u
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdate) Mutation() *QuestionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QuestionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := question.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionUpdate) check() error {
	if v, ok := _u.mutation.SkillID(); ok {
		if err := question.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "Question.skill_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := question.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Question.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AnswerFormat(); ok {
		if err := question.AnswerFormatValidator(v); err != nil {
			return &ValidationError{Name: "answer_format", err: fmt.Errorf(`ent: validator failed for field "Question.answer_format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAnswer(); ok {
		if err := question.CorrectAnswerValidator(v); err != nil {
			return &ValidationError{Name: "correct_answer", err: fmt.Errorf(`ent: validator failed for field "Question.correct_answer": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(question.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(question.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(question.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.CognitiveLevel(); ok {
		_spec.SetField(question.FieldCognitiveLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnswerFormat(); ok {
		_spec.SetField(question.FieldAnswerFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(question.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConstructWeights(); ok {
		_spec.SetField(question.FieldConstructWeights, field.TypeJSON, value)
	}
	if _u.mutation.ConstructWeightsCleared() {
		_spec.ClearField(question.FieldConstructWeights, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionUpdateOne is the builder for updating a single Question entity.
type QuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QuestionUpdateOne) SetUpdatedAt(v time.Time) *QuestionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *QuestionUpdateOne) SetSkillID(v string) *QuestionUpdateOne {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableSkillID(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *QuestionUpdateOne) SetDifficulty(v string) *QuestionUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableDifficulty(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetCognitiveLevel sets the "cognitive_level" field.
func (_u *QuestionUpdateOne) SetCognitiveLevel(v string) *QuestionUpdateOne {
	_u.mutation.SetCognitiveLevel(v)
	return _u
}

// SetNillableCognitiveLevel sets the "cognitive_level" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableCognitiveLevel(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetCognitiveLevel(*v)
	}
	return _u
}

// SetAnswerFormat sets the "answer_format" field.
func (_u *QuestionUpdateOne) SetAnswerFormat(v string) *QuestionUpdateOne {
	_u.mutation.SetAnswerFormat(v)
	return _u
}

// SetNillableAnswerFormat sets the "answer_format" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableAnswerFormat(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetAnswerFormat(*v)
	}
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *QuestionUpdateOne) SetCorrectAnswer(v string) *QuestionUpdateOne {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableCorrectAnswer(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetConstructWeights sets the "construct_weights" field.
func (_u *QuestionUpdateOne) SetConstructWeights(v map[string]float64) *QuestionUpdateOne {
	_u.mutation.SetConstructWeights(v)
	return _u
}

// ClearConstructWeights clears the value of the "construct_weights" field.
func (_u *QuestionUpdateOne) ClearConstructWeights() *QuestionUpdateOne {
	_u.mutation.ClearConstructWeights()
	return _u
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdateOne) Mutation() *QuestionMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdateOne) Where(ps ...predicate.Question) *QuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionUpdateOne) Select(field string, fields ...string) *QuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Question entity.
func (_u *QuestionUpdateOne) Save(ctx context.Context) (*Question, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdateOne) SaveX(ctx context.Context) *Question {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QuestionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := question.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionUpdateOne) check() error {
	if v, ok := _u.mutation.SkillID(); ok {
		if err := question.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "Question.skill_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := question.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Question.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AnswerFormat(); ok {
		if err := question.AnswerFormatValidator(v); err != nil {
			return &ValidationError{Name: "answer_format", err: fmt.Errorf(`ent: validator failed for field "Question.answer_format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAnswer(); ok {
		if err := question.CorrectAnswerValidator(v); err != nil {
			return &ValidationError{Name: "correct_answer", err: fmt.Errorf(`ent: validator failed for field "Question.correct_answer": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionUpdateOne) sqlSave(ctx context.Context) (_node *Question, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Question.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, question.FieldID)
		for _, f := range fields {
			if !question.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != question.FieldID {
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
		_spec.SetField(question.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(question.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(question.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.CognitiveLevel(); ok {
		_spec.SetField(question.FieldCognitiveLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnswerFormat(); ok {
		_spec.SetField(question.FieldAnswerFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(question.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConstructWeights(); ok {
		_spec.SetField(question.FieldConstructWeights, field.TypeJSON, value)
	}
	if _u.mutation.ConstructWeightsCleared() {
		_spec.ClearField(question.FieldConstructWeights, field.TypeJSON)
	}
	_node = &Question{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
