// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/prepwise/backend/ent/attempt"
	"github.com/prepwise/backend/ent/constructstate"
	"github.com/prepwise/backend/ent/plancycle"
	"github.com/prepwise/backend/ent/plantask"
	"github.com/prepwise/backend/ent/predicate"
	"github.com/prepwise/backend/ent/question"
	"github.com/prepwise/backend/ent/skillstate"
	"github.com/prepwise/backend/ent/userprofile"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAttempt        = "Attempt"
	TypeConstructState = "ConstructState"
	TypePlanCycle      = "PlanCycle"
	TypePlanTask       = "PlanTask"
	TypeQuestion       = "Question"
	TypeSkillState     = "SkillState"
	TypeUserProfile    = "UserProfile"
)

// AttemptMutation represents an operation that mutates the Attempt nodes in the graph.
type AttemptMutation struct {
	config
	op                Op
	typ               string
	id                *string
	created_at        *time.Time
	updated_at        *time.Time
	user_id           *string
	question_id       *string
	skill_id          *string
	context_type      *string
	context_id        *string
	module_id         *string
	submitted_answer  *string
	is_correct        *bool
	time_spent_sec    *int
	addtime_spent_sec *int
	error_tags        *[]string
	appenderror_tags  []string
	construct_impacts *map[string]float64
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Attempt, error)
	predicates        []predicate.Attempt
}

var _ ent.Mutation = (*AttemptMutation)(nil)

// attemptOption allows management of the mutation configuration using functional options.
type attemptOption func(*AttemptMutation)

// newAttemptMutation creates new mutation for the Attempt entity.
func newAttemptMutation(c config, op Op, opts ...attemptOption) *AttemptMutation {
	m := &AttemptMutation{
		config:        c,
		op:            op,
		typ:           TypeAttempt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAttemptID sets the ID field of the mutation.
func withAttemptID(id string) attemptOption {
	return func(m *AttemptMutation) {
		var (
			err   error
			once  sync.Once
			value *Attempt
		)
		m.oldValue = func(ctx context.Context) (*Attempt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Attempt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAttempt sets the old Attempt of the mutation.
func withAttempt(node *Attempt) attemptOption {
	return func(m *AttemptMutation) {
		m.oldValue = func(context.Context) (*Attempt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AttemptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AttemptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Attempt entities.
func (m *AttemptMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AttemptMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AttemptMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Attempt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AttemptMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AttemptMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AttemptMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AttemptMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AttemptMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AttemptMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUserID sets the "user_id" field.
func (m *AttemptMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AttemptMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AttemptMutation) ResetUserID() {
	m.user_id = nil
}

// SetQuestionID sets the "question_id" field.
func (m *AttemptMutation) SetQuestionID(s string) {
	m.question_id = &s
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *AttemptMutation) QuestionID() (r string, exists bool) {
	v := m.question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldQuestionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *AttemptMutation) ResetQuestionID() {
	m.question_id = nil
}

// SetSkillID sets the "skill_id" field.
func (m *AttemptMutation) SetSkillID(s string) {
	m.skill_id = &s
}

// SkillID returns the value of the "skill_id" field in the mutation.
func (m *AttemptMutation) SkillID() (r string, exists bool) {
	v := m.skill_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillID returns the old "skill_id" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldSkillID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillID: %w", err)
	}
	return oldValue.SkillID, nil
}

// ResetSkillID resets all changes to the "skill_id" field.
func (m *AttemptMutation) ResetSkillID() {
	m.skill_id = nil
}

// SetContextType sets the "context_type" field.
func (m *AttemptMutation) SetContextType(s string) {
	m.context_type = &s
}

// ContextType returns the value of the "context_type" field in the mutation.
func (m *AttemptMutation) ContextType() (r string, exists bool) {
	v := m.context_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContextType returns the old "context_type" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldContextType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContextType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContextType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContextType: %w", err)
	}
	return oldValue.ContextType, nil
}

// ResetContextType resets all changes to the "context_type" field.
func (m *AttemptMutation) ResetContextType() {
	m.context_type = nil
}

// SetContextID sets the "context_id" field.
func (m *AttemptMutation) SetContextID(s string) {
	m.context_id = &s
}

// ContextID returns the value of the "context_id" field in the mutation.
func (m *AttemptMutation) ContextID() (r string, exists bool) {
	v := m.context_id
	if v == nil {
		return
	}
	return *v, true
}

// OldContextID returns the old "context_id" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldContextID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContextID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContextID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContextID: %w", err)
	}
	return oldValue.ContextID, nil
}

// ClearContextID clears the value of the "context_id" field.
func (m *AttemptMutation) ClearContextID() {
	m.context_id = nil
	m.clearedFields[attempt.FieldContextID] = struct{}{}
}

// ContextIDCleared returns if the "context_id" field was cleared in this mutation.
func (m *AttemptMutation) ContextIDCleared() bool {
	_, ok := m.clearedFields[attempt.FieldContextID]
	return ok
}

// ResetContextID resets all changes to the "context_id" field.
func (m *AttemptMutation) ResetContextID() {
	m.context_id = nil
	delete(m.clearedFields, attempt.FieldContextID)
}

// SetModuleID sets the "module_id" field.
func (m *AttemptMutation) SetModuleID(s string) {
	m.module_id = &s
}

// ModuleID returns the value of the "module_id" field in the mutation.
func (m *AttemptMutation) ModuleID() (r string, exists bool) {
	v := m.module_id
	if v == nil {
		return
	}
	return *v, true
}

// OldModuleID returns the old "module_id" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldModuleID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModuleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModuleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModuleID: %w", err)
	}
	return oldValue.ModuleID, nil
}

// ClearModuleID clears the value of the "module_id" field.
func (m *AttemptMutation) ClearModuleID() {
	m.module_id = nil
	m.clearedFields[attempt.FieldModuleID] = struct{}{}
}

// ModuleIDCleared returns if the "module_id" field was cleared in this mutation.
func (m *AttemptMutation) ModuleIDCleared() bool {
	_, ok := m.clearedFields[attempt.FieldModuleID]
	return ok
}

// ResetModuleID resets all changes to the "module_id" field.
func (m *AttemptMutation) ResetModuleID() {
	m.module_id = nil
	delete(m.clearedFields, attempt.FieldModuleID)
}

// SetSubmittedAnswer sets the "submitted_answer" field.
func (m *AttemptMutation) SetSubmittedAnswer(s string) {
	m.submitted_answer = &s
}

// SubmittedAnswer returns the value of the "submitted_answer" field in the mutation.
func (m *AttemptMutation) SubmittedAnswer() (r string, exists bool) {
	v := m.submitted_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmittedAnswer returns the old "submitted_answer" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldSubmittedAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmittedAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmittedAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmittedAnswer: %w", err)
	}
	return oldValue.SubmittedAnswer, nil
}

// ResetSubmittedAnswer resets all changes to the "submitted_answer" field.
func (m *AttemptMutation) ResetSubmittedAnswer() {
	m.submitted_answer = nil
}

// SetIsCorrect sets the "is_correct" field.
func (m *AttemptMutation) SetIsCorrect(b bool) {
	m.is_correct = &b
}

// IsCorrect returns the value of the "is_correct" field in the mutation.
func (m *AttemptMutation) IsCorrect() (r bool, exists bool) {
	v := m.is_correct
	if v == nil {
		return
	}
	return *v, true
}

// OldIsCorrect returns the old "is_correct" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldIsCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsCorrect: %w", err)
	}
	return oldValue.IsCorrect, nil
}

// ResetIsCorrect resets all changes to the "is_correct" field.
func (m *AttemptMutation) ResetIsCorrect() {
	m.is_correct = nil
}

// SetTimeSpentSec sets the "time_spent_sec" field.
func (m *AttemptMutation) SetTimeSpentSec(i int) {
	m.time_spent_sec = &i
	m.addtime_spent_sec = nil
}

// TimeSpentSec returns the value of the "time_spent_sec" field in the mutation.
func (m *AttemptMutation) TimeSpentSec() (r int, exists bool) {
	v := m.time_spent_sec
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeSpentSec returns the old "time_spent_sec" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldTimeSpentSec(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeSpentSec is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeSpentSec requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeSpentSec: %w", err)
	}
	return oldValue.TimeSpentSec, nil
}

// AddTimeSpentSec adds i to the "time_spent_sec" field.
func (m *AttemptMutation) AddTimeSpentSec(i int) {
	if m.addtime_spent_sec != nil {
		*m.addtime_spent_sec += i
	} else {
		m.addtime_spent_sec = &i
	}
}

// AddedTimeSpentSec returns the value that was added to the "time_spent_sec" field in this mutation.
func (m *AttemptMutation) AddedTimeSpentSec() (r int, exists bool) {
	v := m.addtime_spent_sec
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeSpentSec resets all changes to the "time_spent_sec" field.
func (m *AttemptMutation) ResetTimeSpentSec() {
	m.time_spent_sec = nil
	m.addtime_spent_sec = nil
}

// SetErrorTags sets the "error_tags" field.
func (m *AttemptMutation) SetErrorTags(s []string) {
	m.error_tags = &s
	m.appenderror_tags = nil
}

// ErrorTags returns the value of the "error_tags" field in the mutation.
func (m *AttemptMutation) ErrorTags() (r []string, exists bool) {
	v := m.error_tags
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorTags returns the old "error_tags" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldErrorTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorTags: %w", err)
	}
	return oldValue.ErrorTags, nil
}

// AppendErrorTags adds s to the "error_tags" field.
func (m *AttemptMutation) AppendErrorTags(s []string) {
	m.appenderror_tags = append(m.appenderror_tags, s...)
}

// AppendedErrorTags returns the list of values that were appended to the "error_tags" field in this mutation.
func (m *AttemptMutation) AppendedErrorTags() ([]string, bool) {
	if len(m.appenderror_tags) == 0 {
		return nil, false
	}
	return m.appenderror_tags, true
}

// ClearErrorTags clears the value of the "error_tags" field.
func (m *AttemptMutation) ClearErrorTags() {
	m.error_tags = nil
	m.appenderror_tags = nil
	m.clearedFields[attempt.FieldErrorTags] = struct{}{}
}

// ErrorTagsCleared returns if the "error_tags" field was cleared in this mutation.
func (m *AttemptMutation) ErrorTagsCleared() bool {
	_, ok := m.clearedFields[attempt.FieldErrorTags]
	return ok
}

// ResetErrorTags resets all changes to the "error_tags" field.
func (m *AttemptMutation) ResetErrorTags() {
	m.error_tags = nil
	m.appenderror_tags = nil
	delete(m.clearedFields, attempt.FieldErrorTags)
}

// SetConstructImpacts sets the "construct_impacts" field.
func (m *AttemptMutation) SetConstructImpacts(value map[string]float64) {
	m.construct_impacts = &value
}

// ConstructImpacts returns the value of the "construct_impacts" field in the mutation.
func (m *AttemptMutation) ConstructImpacts() (r map[string]float64, exists bool) {
	v := m.construct_impacts
	if v == nil {
		return
	}
	return *v, true
}

// OldConstructImpacts returns the old "construct_impacts" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldConstructImpacts(ctx context.Context) (v map[string]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConstructImpacts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConstructImpacts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConstructImpacts: %w", err)
	}
	return oldValue.ConstructImpacts, nil
}

// ClearConstructImpacts clears the value of the "construct_impacts" field.
func (m *AttemptMutation) ClearConstructImpacts() {
	m.construct_impacts = nil
	m.clearedFields[attempt.FieldConstructImpacts] = struct{}{}
}

// ConstructImpactsCleared returns if the "construct_impacts" field was cleared in this mutation.
func (m *AttemptMutation) ConstructImpactsCleared() bool {
	_, ok := m.clearedFields[attempt.FieldConstructImpacts]
	return ok
}

// ResetConstructImpacts resets all changes to the "construct_impacts" field.
func (m *AttemptMutation) ResetConstructImpacts() {
	m.construct_impacts = nil
	delete(m.clearedFields, attempt.FieldConstructImpacts)
}

// Where appends a list predicates to the AttemptMutation builder.
func (m *AttemptMutation) Where(ps ...predicate.Attempt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AttemptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AttemptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Attempt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AttemptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AttemptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Attempt).
func (m *AttemptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AttemptMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.created_at != nil {
		fields = append(fields, attempt.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, attempt.FieldUpdatedAt)
	}
	if m.user_id != nil {
		fields = append(fields, attempt.FieldUserID)
	}
	if m.question_id != nil {
		fields = append(fields, attempt.FieldQuestionID)
	}
	if m.skill_id != nil {
		fields = append(fields, attempt.FieldSkillID)
	}
	if m.context_type != nil {
		fields = append(fields, attempt.FieldContextType)
	}
	if m.context_id != nil {
		fields = append(fields, attempt.FieldContextID)
	}
	if m.module_id != nil {
		fields = append(fields, attempt.FieldModuleID)
	}
	if m.submitted_answer != nil {
		fields = append(fields, attempt.FieldSubmittedAnswer)
	}
	if m.is_correct != nil {
		fields = append(fields, attempt.FieldIsCorrect)
	}
	if m.time_spent_sec != nil {
		fields = append(fields, attempt.FieldTimeSpentSec)
	}
	if m.error_tags != nil {
		fields = append(fields, attempt.FieldErrorTags)
	}
	if m.construct_impacts != nil {
		fields = append(fields, attempt.FieldConstructImpacts)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AttemptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case attempt.FieldCreatedAt:
		return m.CreatedAt()
	case attempt.FieldUpdatedAt:
		return m.UpdatedAt()
	case attempt.FieldUserID:
		return m.UserID()
	case attempt.FieldQuestionID:
		return m.QuestionID()
	case attempt.FieldSkillID:
		return m.SkillID()
	case attempt.FieldContextType:
		return m.ContextType()
	case attempt.FieldContextID:
		return m.ContextID()
	case attempt.FieldModuleID:
		return m.ModuleID()
	case attempt.FieldSubmittedAnswer:
		return m.SubmittedAnswer()
	case attempt.FieldIsCorrect:
		return m.IsCorrect()
	case attempt.FieldTimeSpentSec:
		return m.TimeSpentSec()
	case attempt.FieldErrorTags:
		return m.ErrorTags()
	case attempt.FieldConstructImpacts:
		return m.ConstructImpacts()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AttemptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case attempt.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case attempt.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case attempt.FieldUserID:
		return m.OldUserID(ctx)
	case attempt.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case attempt.FieldSkillID:
		return m.OldSkillID(ctx)
	case attempt.FieldContextType:
		return m.OldContextType(ctx)
	case attempt.FieldContextID:
		return m.OldContextID(ctx)
	case attempt.FieldModuleID:
		return m.OldModuleID(ctx)
	case attempt.FieldSubmittedAnswer:
		return m.OldSubmittedAnswer(ctx)
	case attempt.FieldIsCorrect:
		return m.OldIsCorrect(ctx)
	case attempt.FieldTimeSpentSec:
		return m.OldTimeSpentSec(ctx)
	case attempt.FieldErrorTags:
		return m.OldErrorTags(ctx)
	case attempt.FieldConstructImpacts:
		return m.OldConstructImpacts(ctx)
	}
	return nil, fmt.Errorf("unknown Attempt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case attempt.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case attempt.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case attempt.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case attempt.FieldQuestionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case attempt.FieldSkillID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillID(v)
		return nil
	case attempt.FieldContextType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContextType(v)
		return nil
	case attempt.FieldContextID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContextID(v)
		return nil
	case attempt.FieldModuleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModuleID(v)
		return nil
	case attempt.FieldSubmittedAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmittedAnswer(v)
		return nil
	case attempt.FieldIsCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsCorrect(v)
		return nil
	case attempt.FieldTimeSpentSec:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeSpentSec(v)
		return nil
	case attempt.FieldErrorTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorTags(v)
		return nil
	case attempt.FieldConstructImpacts:
		v, ok := value.(map[string]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConstructImpacts(v)
		return nil
	}
	return fmt.Errorf("unknown Attempt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AttemptMutation) AddedFields() []string {
	var fields []string
	if m.addtime_spent_sec != nil {
		fields = append(fields, attempt.FieldTimeSpentSec)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AttemptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case attempt.FieldTimeSpentSec:
		return m.AddedTimeSpentSec()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case attempt.FieldTimeSpentSec:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeSpentSec(v)
		return nil
	}
	return fmt.Errorf("unknown Attempt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AttemptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(attempt.FieldContextID) {
		fields = append(fields, attempt.FieldContextID)
	}
	if m.FieldCleared(attempt.FieldModuleID) {
		fields = append(fields, attempt.FieldModuleID)
	}
	if m.FieldCleared(attempt.FieldErrorTags) {
		fields = append(fields, attempt.FieldErrorTags)
	}
	if m.FieldCleared(attempt.FieldConstructImpacts) {
		fields = append(fields, attempt.FieldConstructImpacts)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AttemptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AttemptMutation) ClearField(name string) error {
	switch name {
	case attempt.FieldContextID:
		m.ClearContextID()
		return nil
	case attempt.FieldModuleID:
		m.ClearModuleID()
		return nil
	case attempt.FieldErrorTags:
		m.ClearErrorTags()
		return nil
	case attempt.FieldConstructImpacts:
		m.ClearConstructImpacts()
		return nil
	}
	return fmt.Errorf("unknown Attempt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AttemptMutation) ResetField(name string) error {
	switch name {
	case attempt.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case attempt.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case attempt.FieldUserID:
		m.ResetUserID()
		return nil
	case attempt.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case attempt.FieldSkillID:
		m.ResetSkillID()
		return nil
	case attempt.FieldContextType:
		m.ResetContextType()
		return nil
	case attempt.FieldContextID:
		m.ResetContextID()
		return nil
	case attempt.FieldModuleID:
		m.ResetModuleID()
		return nil
	case attempt.FieldSubmittedAnswer:
		m.ResetSubmittedAnswer()
		return nil
	case attempt.FieldIsCorrect:
		m.ResetIsCorrect()
		return nil
	case attempt.FieldTimeSpentSec:
		m.ResetTimeSpentSec()
		return nil
	case attempt.FieldErrorTags:
		m.ResetErrorTags()
		return nil
	case attempt.FieldConstructImpacts:
		m.ResetConstructImpacts()
		return nil
	}
	return fmt.Errorf("unknown Attempt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AttemptMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AttemptMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AttemptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AttemptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AttemptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AttemptMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AttemptMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Attempt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AttemptMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Attempt edge %s", name)
}

// ConstructStateMutation represents an operation that mutates the ConstructState nodes in the graph.
type ConstructStateMutation struct {
	config
	op             Op
	typ            string
	id             *string
	created_at     *time.Time
	updated_at     *time.Time
	user_id        *string
	construct      *string
	score          *float64
	addscore       *float64
	confidence     *float64
	addconfidence  *float64
	trend          *string
	data_points    *int
	adddata_points *int
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*ConstructState, error)
	predicates     []predicate.ConstructState
}

var _ ent.Mutation = (*ConstructStateMutation)(nil)

// constructstateOption allows management of the mutation configuration using functional options.
type constructstateOption func(*ConstructStateMutation)

// newConstructStateMutation creates new mutation for the ConstructState entity.
func newConstructStateMutation(c config, op Op, opts ...constructstateOption) *ConstructStateMutation {
	m := &ConstructStateMutation{
		config:        c,
		op:            op,
		typ:           TypeConstructState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConstructStateID sets the ID field of the mutation.
func withConstructStateID(id string) constructstateOption {
	return func(m *ConstructStateMutation) {
		var (
			err   error
			once  sync.Once
			value *ConstructState
		)
		m.oldValue = func(ctx context.Context) (*ConstructState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ConstructState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConstructState sets the old ConstructState of the mutation.
func withConstructState(node *ConstructState) constructstateOption {
	return func(m *ConstructStateMutation) {
		m.oldValue = func(context.Context) (*ConstructState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConstructStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConstructStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ConstructState entities.
func (m *ConstructStateMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConstructStateMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConstructStateMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ConstructState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ConstructStateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ConstructStateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ConstructState entity.
// If the ConstructState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConstructStateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ConstructStateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ConstructStateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ConstructStateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ConstructState entity.
// If the ConstructState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConstructStateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ConstructStateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUserID sets the "user_id" field.
func (m *ConstructStateMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ConstructStateMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ConstructState entity.
// If the ConstructState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConstructStateMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ConstructStateMutation) ResetUserID() {
	m.user_id = nil
}

// SetConstruct sets the "construct" field.
func (m *ConstructStateMutation) SetConstruct(s string) {
	m.construct = &s
}

// Construct returns the value of the "construct" field in the mutation.
func (m *ConstructStateMutation) Construct() (r string, exists bool) {
	v := m.construct
	if v == nil {
		return
	}
	return *v, true
}

// OldConstruct returns the old "construct" field's value of the ConstructState entity.
// If the ConstructState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConstructStateMutation) OldConstruct(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConstruct is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConstruct requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConstruct: %w", err)
	}
	return oldValue.Construct, nil
}

// ResetConstruct resets all changes to the "construct" field.
func (m *ConstructStateMutation) ResetConstruct() {
	m.construct = nil
}

// SetScore sets the "score" field.
func (m *ConstructStateMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *ConstructStateMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the ConstructState entity.
// If the ConstructState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConstructStateMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *ConstructStateMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *ConstructStateMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *ConstructStateMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetConfidence sets the "confidence" field.
func (m *ConstructStateMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *ConstructStateMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the ConstructState entity.
// If the ConstructState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConstructStateMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *ConstructStateMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *ConstructStateMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *ConstructStateMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetTrend sets the "trend" field.
func (m *ConstructStateMutation) SetTrend(s string) {
	m.trend = &s
}

// Trend returns the value of the "trend" field in the mutation.
func (m *ConstructStateMutation) Trend() (r string, exists bool) {
	v := m.trend
	if v == nil {
		return
	}
	return *v, true
}

// OldTrend returns the old "trend" field's value of the ConstructState entity.
// If the ConstructState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConstructStateMutation) OldTrend(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrend is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrend requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrend: %w", err)
	}
	return oldValue.Trend, nil
}

// ResetTrend resets all changes to the "trend" field.
func (m *ConstructStateMutation) ResetTrend() {
	m.trend = nil
}

// SetDataPoints sets the "data_points" field.
func (m *ConstructStateMutation) SetDataPoints(i int) {
	m.data_points = &i
	m.adddata_points = nil
}

// DataPoints returns the value of the "data_points" field in the mutation.
func (m *ConstructStateMutation) DataPoints() (r int, exists bool) {
	v := m.data_points
	if v == nil {
		return
	}
	return *v, true
}

// OldDataPoints returns the old "data_points" field's value of the ConstructState entity.
// If the ConstructState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConstructStateMutation) OldDataPoints(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDataPoints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDataPoints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDataPoints: %w", err)
	}
	return oldValue.DataPoints, nil
}

// AddDataPoints adds i to the "data_points" field.
func (m *ConstructStateMutation) AddDataPoints(i int) {
	if m.adddata_points != nil {
		*m.adddata_points += i
	} else {
		m.adddata_points = &i
	}
}

// AddedDataPoints returns the value that was added to the "data_points" field in this mutation.
func (m *ConstructStateMutation) AddedDataPoints() (r int, exists bool) {
	v := m.adddata_points
	if v == nil {
		return
	}
	return *v, true
}

// ResetDataPoints resets all changes to the "data_points" field.
func (m *ConstructStateMutation) ResetDataPoints() {
	m.data_points = nil
	m.adddata_points = nil
}

// Where appends a list predicates to the ConstructStateMutation builder.
func (m *ConstructStateMutation) Where(ps ...predicate.ConstructState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConstructStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConstructStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ConstructState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConstructStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConstructStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ConstructState).
func (m *ConstructStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConstructStateMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, constructstate.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, constructstate.FieldUpdatedAt)
	}
	if m.user_id != nil {
		fields = append(fields, constructstate.FieldUserID)
	}
	if m.construct != nil {
		fields = append(fields, constructstate.FieldConstruct)
	}
	if m.score != nil {
		fields = append(fields, constructstate.FieldScore)
	}
	if m.confidence != nil {
		fields = append(fields, constructstate.FieldConfidence)
	}
	if m.trend != nil {
		fields = append(fields, constructstate.FieldTrend)
	}
	if m.data_points != nil {
		fields = append(fields, constructstate.FieldDataPoints)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConstructStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case constructstate.FieldCreatedAt:
		return m.CreatedAt()
	case constructstate.FieldUpdatedAt:
		return m.UpdatedAt()
	case constructstate.FieldUserID:
		return m.UserID()
	case constructstate.FieldConstruct:
		return m.Construct()
	case constructstate.FieldScore:
		return m.Score()
	case constructstate.FieldConfidence:
		return m.Confidence()
	case constructstate.FieldTrend:
		return m.Trend()
	case constructstate.FieldDataPoints:
		return m.DataPoints()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConstructStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case constructstate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case constructstate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case constructstate.FieldUserID:
		return m.OldUserID(ctx)
	case constructstate.FieldConstruct:
		return m.OldConstruct(ctx)
	case constructstate.FieldScore:
		return m.OldScore(ctx)
	case constructstate.FieldConfidence:
		return m.OldConfidence(ctx)
	case constructstate.FieldTrend:
		return m.OldTrend(ctx)
	case constructstate.FieldDataPoints:
		return m.OldDataPoints(ctx)
	}
	return nil, fmt.Errorf("unknown ConstructState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConstructStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case constructstate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case constructstate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case constructstate.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case constructstate.FieldConstruct:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConstruct(v)
		return nil
	case constructstate.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case constructstate.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case constructstate.FieldTrend:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrend(v)
		return nil
	case constructstate.FieldDataPoints:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDataPoints(v)
		return nil
	}
	return fmt.Errorf("unknown ConstructState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConstructStateMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, constructstate.FieldScore)
	}
	if m.addconfidence != nil {
		fields = append(fields, constructstate.FieldConfidence)
	}
	if m.adddata_points != nil {
		fields = append(fields, constructstate.FieldDataPoints)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConstructStateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case constructstate.FieldScore:
		return m.AddedScore()
	case constructstate.FieldConfidence:
		return m.AddedConfidence()
	case constructstate.FieldDataPoints:
		return m.AddedDataPoints()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConstructStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case constructstate.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case constructstate.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case constructstate.FieldDataPoints:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDataPoints(v)
		return nil
	}
	return fmt.Errorf("unknown ConstructState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConstructStateMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConstructStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConstructStateMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ConstructState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConstructStateMutation) ResetField(name string) error {
	switch name {
	case constructstate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case constructstate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case constructstate.FieldUserID:
		m.ResetUserID()
		return nil
	case constructstate.FieldConstruct:
		m.ResetConstruct()
		return nil
	case constructstate.FieldScore:
		m.ResetScore()
		return nil
	case constructstate.FieldConfidence:
		m.ResetConfidence()
		return nil
	case constructstate.FieldTrend:
		m.ResetTrend()
		return nil
	case constructstate.FieldDataPoints:
		m.ResetDataPoints()
		return nil
	}
	return fmt.Errorf("unknown ConstructState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConstructStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConstructStateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConstructStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConstructStateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConstructStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConstructStateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConstructStateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ConstructState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConstructStateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ConstructState edge %s", name)
}

// PlanCycleMutation represents an operation that mutates the PlanCycle nodes in the graph.
type PlanCycleMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	created_at             *time.Time
	updated_at             *time.Time
	user_id                *string
	task_count             *int
	addtask_count          *int
	focused_drill_count    *int
	addfocused_drill_count *int
	mixed_drill_count      *int
	addmixed_drill_count   *int
	mock_count             *int
	addmock_count          *int
	flashcard_count        *int
	addflashcard_count     *int
	review_count           *int
	addreview_count        *int
	days_remaining         *int
	adddays_remaining      *int
	weak_skill_count       *int
	addweak_skill_count    *int
	status                 *string
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*PlanCycle, error)
	predicates             []predicate.PlanCycle
}

var _ ent.Mutation = (*PlanCycleMutation)(nil)

// plancycleOption allows management of the mutation configuration using functional options.
type plancycleOption func(*PlanCycleMutation)

// newPlanCycleMutation creates new mutation for the PlanCycle entity.
func newPlanCycleMutation(c config, op Op, opts ...plancycleOption) *PlanCycleMutation {
	m := &PlanCycleMutation{
		config:        c,
		op:            op,
		typ:           TypePlanCycle,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPlanCycleID sets the ID field of the mutation.
func withPlanCycleID(id string) plancycleOption {
	return func(m *PlanCycleMutation) {
		var (
			err   error
			once  sync.Once
			value *PlanCycle
		)
		m.oldValue = func(ctx context.Context) (*PlanCycle, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PlanCycle.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPlanCycle sets the old PlanCycle of the mutation.
func withPlanCycle(node *PlanCycle) plancycleOption {
	return func(m *PlanCycleMutation) {
		m.oldValue = func(context.Context) (*PlanCycle, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PlanCycleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PlanCycleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PlanCycle entities.
func (m *PlanCycleMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PlanCycleMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PlanCycleMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PlanCycle.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PlanCycleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PlanCycleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PlanCycle entity.
// If the PlanCycle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanCycleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PlanCycleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PlanCycleMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PlanCycleMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PlanCycle entity.
// If the PlanCycle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanCycleMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PlanCycleMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUserID sets the "user_id" field.
func (m *PlanCycleMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *PlanCycleMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the PlanCycle entity.
// If the PlanCycle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanCycleMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *PlanCycleMutation) ResetUserID() {
	m.user_id = nil
}

// SetTaskCount sets the "task_count" field.
func (m *PlanCycleMutation) SetTaskCount(i int) {
	m.task_count = &i
	m.addtask_count = nil
}

// TaskCount returns the value of the "task_count" field in the mutation.
func (m *PlanCycleMutation) TaskCount() (r int, exists bool) {
	v := m.task_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskCount returns the old "task_count" field's value of the PlanCycle entity.
// If the PlanCycle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanCycleMutation) OldTaskCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskCount: %w", err)
	}
	return oldValue.TaskCount, nil
}

// AddTaskCount adds i to the "task_count" field.
func (m *PlanCycleMutation) AddTaskCount(i int) {
	if m.addtask_count != nil {
		*m.addtask_count += i
	} else {
		m.addtask_count = &i
	}
}

// AddedTaskCount returns the value that was added to the "task_count" field in this mutation.
func (m *PlanCycleMutation) AddedTaskCount() (r int, exists bool) {
	v := m.addtask_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetTaskCount resets all changes to the "task_count" field.
func (m *PlanCycleMutation) ResetTaskCount() {
	m.task_count = nil
	m.addtask_count = nil
}

// SetFocusedDrillCount sets the "focused_drill_count" field.
func (m *PlanCycleMutation) SetFocusedDrillCount(i int) {
	m.focused_drill_count = &i
	m.addfocused_drill_count = nil
}

// FocusedDrillCount returns the value of the "focused_drill_count" field in the mutation.
func (m *PlanCycleMutation) FocusedDrillCount() (r int, exists bool) {
	v := m.focused_drill_count
	if v == nil {
		return
	}
	return *v, true
}

// OldFocusedDrillCount returns the old "focused_drill_count" field's value of the PlanCycle entity.
// If the PlanCycle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanCycleMutation) OldFocusedDrillCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFocusedDrillCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFocusedDrillCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFocusedDrillCount: %w", err)
	}
	return oldValue.FocusedDrillCount, nil
}

// AddFocusedDrillCount adds i to the "focused_drill_count" field.
func (m *PlanCycleMutation) AddFocusedDrillCount(i int) {
	if m.addfocused_drill_count != nil {
		*m.addfocused_drill_count += i
	} else {
		m.addfocused_drill_count = &i
	}
}

// AddedFocusedDrillCount returns the value that was added to the "focused_drill_count" field in this mutation.
func (m *PlanCycleMutation) AddedFocusedDrillCount() (r int, exists bool) {
	v := m.addfocused_drill_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetFocusedDrillCount resets all changes to the "focused_drill_count" field.
func (m *PlanCycleMutation) ResetFocusedDrillCount() {
	m.focused_drill_count = nil
	m.addfocused_drill_count = nil
}

// SetMixedDrillCount sets the "mixed_drill_count" field.
func (m *PlanCycleMutation) SetMixedDrillCount(i int) {
	m.mixed_drill_count = &i
	m.addmixed_drill_count = nil
}

// MixedDrillCount returns the value of the "mixed_drill_count" field in the mutation.
func (m *PlanCycleMutation) MixedDrillCount() (r int, exists bool) {
	v := m.mixed_drill_count
	if v == nil {
		return
	}
	return *v, true
}

// OldMixedDrillCount returns the old "mixed_drill_count" field's value of the PlanCycle entity.
// If the PlanCycle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanCycleMutation) OldMixedDrillCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMixedDrillCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMixedDrillCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMixedDrillCount: %w", err)
	}
	return oldValue.MixedDrillCount, nil
}

// AddMixedDrillCount adds i to the "mixed_drill_count" field.
func (m *PlanCycleMutation) AddMixedDrillCount(i int) {
	if m.addmixed_drill_count != nil {
		*m.addmixed_drill_count += i
	} else {
		m.addmixed_drill_count = &i
	}
}

// AddedMixedDrillCount returns the value that was added to the "mixed_drill_count" field in this mutation.
func (m *PlanCycleMutation) AddedMixedDrillCount() (r int, exists bool) {
	v := m.addmixed_drill_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetMixedDrillCount resets all changes to the "mixed_drill_count" field.
func (m *PlanCycleMutation) ResetMixedDrillCount() {
	m.mixed_drill_count = nil
	m.addmixed_drill_count = nil
}

// SetMockCount sets the "mock_count" field.
func (m *PlanCycleMutation) SetMockCount(i int) {
	m.mock_count = &i
	m.addmock_count = nil
}

// MockCount returns the value of the "mock_count" field in the mutation.
func (m *PlanCycleMutation) MockCount() (r int, exists bool) {
	v := m.mock_count
	if v == nil {
		return
	}
	return *v, true
}

// OldMockCount returns the old "mock_count" field's value of the PlanCycle entity.
// If the PlanCycle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanCycleMutation) OldMockCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMockCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMockCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMockCount: %w", err)
	}
	return oldValue.MockCount, nil
}

// AddMockCount adds i to the "mock_count" field.
func (m *PlanCycleMutation) AddMockCount(i int) {
	if m.addmock_count != nil {
		*m.addmock_count += i
	} else {
		m.addmock_count = &i
	}
}

// AddedMockCount returns the value that was added to the "mock_count" field in this mutation.
func (m *PlanCycleMutation) AddedMockCount() (r int, exists bool) {
	v := m.addmock_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetMockCount resets all changes to the "mock_count" field.
func (m *PlanCycleMutation) ResetMockCount() {
	m.mock_count = nil
	m.addmock_count = nil
}

// SetFlashcardCount sets the "flashcard_count" field.
func (m *PlanCycleMutation) SetFlashcardCount(i int) {
	m.flashcard_count = &i
	m.addflashcard_count = nil
}

// FlashcardCount returns the value of the "flashcard_count" field in the mutation.
func (m *PlanCycleMutation) FlashcardCount() (r int, exists bool) {
	v := m.flashcard_count
	if v == nil {
		return
	}
	return *v, true
}

// OldFlashcardCount returns the old "flashcard_count" field's value of the PlanCycle entity.
// If the PlanCycle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanCycleMutation) OldFlashcardCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFlashcardCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFlashcardCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFlashcardCount: %w", err)
	}
	return oldValue.FlashcardCount, nil
}

// AddFlashcardCount adds i to the "flashcard_count" field.
func (m *PlanCycleMutation) AddFlashcardCount(i int) {
	if m.addflashcard_count != nil {
		*m.addflashcard_count += i
	} else {
		m.addflashcard_count = &i
	}
}

// AddedFlashcardCount returns the value that was added to the "flashcard_count" field in this mutation.
func (m *PlanCycleMutation) AddedFlashcardCount() (r int, exists bool) {
	v := m.addflashcard_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetFlashcardCount resets all changes to the "flashcard_count" field.
func (m *PlanCycleMutation) ResetFlashcardCount() {
	m.flashcard_count = nil
	m.addflashcard_count = nil
}

// SetReviewCount sets the "review_count" field.
func (m *PlanCycleMutation) SetReviewCount(i int) {
	m.review_count = &i
	m.addreview_count = nil
}

// ReviewCount returns the value of the "review_count" field in the mutation.
func (m *PlanCycleMutation) ReviewCount() (r int, exists bool) {
	v := m.review_count
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewCount returns the old "review_count" field's value of the PlanCycle entity.
// If the PlanCycle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanCycleMutation) OldReviewCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewCount: %w", err)
	}
	return oldValue.ReviewCount, nil
}

// AddReviewCount adds i to the "review_count" field.
func (m *PlanCycleMutation) AddReviewCount(i int) {
	if m.addreview_count != nil {
		*m.addreview_count += i
	} else {
		m.addreview_count = &i
	}
}

// AddedReviewCount returns the value that was added to the "review_count" field in this mutation.
func (m *PlanCycleMutation) AddedReviewCount() (r int, exists bool) {
	v := m.addreview_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetReviewCount resets all changes to the "review_count" field.
func (m *PlanCycleMutation) ResetReviewCount() {
	m.review_count = nil
	m.addreview_count = nil
}

// SetDaysRemaining sets the "days_remaining" field.
func (m *PlanCycleMutation) SetDaysRemaining(i int) {
	m.days_remaining = &i
	m.adddays_remaining = nil
}

// DaysRemaining returns the value of the "days_remaining" field in the mutation.
func (m *PlanCycleMutation) DaysRemaining() (r int, exists bool) {
	v := m.days_remaining
	if v == nil {
		return
	}
	return *v, true
}

// OldDaysRemaining returns the old "days_remaining" field's value of the PlanCycle entity.
// If the PlanCycle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanCycleMutation) OldDaysRemaining(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDaysRemaining is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDaysRemaining requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDaysRemaining: %w", err)
	}
	return oldValue.DaysRemaining, nil
}

// AddDaysRemaining adds i to the "days_remaining" field.
func (m *PlanCycleMutation) AddDaysRemaining(i int) {
	if m.adddays_remaining != nil {
		*m.adddays_remaining += i
	} else {
		m.adddays_remaining = &i
	}
}

// AddedDaysRemaining returns the value that was added to the "days_remaining" field in this mutation.
func (m *PlanCycleMutation) AddedDaysRemaining() (r int, exists bool) {
	v := m.adddays_remaining
	if v == nil {
		return
	}
	return *v, true
}

// ResetDaysRemaining resets all changes to the "days_remaining" field.
func (m *PlanCycleMutation) ResetDaysRemaining() {
	m.days_remaining = nil
	m.adddays_remaining = nil
}

// SetWeakSkillCount sets the "weak_skill_count" field.
func (m *PlanCycleMutation) SetWeakSkillCount(i int) {
	m.weak_skill_count = &i
	m.addweak_skill_count = nil
}

// WeakSkillCount returns the value of the "weak_skill_count" field in the mutation.
func (m *PlanCycleMutation) WeakSkillCount() (r int, exists bool) {
	v := m.weak_skill_count
	if v == nil {
		return
	}
	return *v, true
}

// OldWeakSkillCount returns the old "weak_skill_count" field's value of the PlanCycle entity.
// If the PlanCycle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanCycleMutation) OldWeakSkillCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeakSkillCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeakSkillCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeakSkillCount: %w", err)
	}
	return oldValue.WeakSkillCount, nil
}

// AddWeakSkillCount adds i to the "weak_skill_count" field.
func (m *PlanCycleMutation) AddWeakSkillCount(i int) {
	if m.addweak_skill_count != nil {
		*m.addweak_skill_count += i
	} else {
		m.addweak_skill_count = &i
	}
}

// AddedWeakSkillCount returns the value that was added to the "weak_skill_count" field in this mutation.
func (m *PlanCycleMutation) AddedWeakSkillCount() (r int, exists bool) {
	v := m.addweak_skill_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetWeakSkillCount resets all changes to the "weak_skill_count" field.
func (m *PlanCycleMutation) ResetWeakSkillCount() {
	m.weak_skill_count = nil
	m.addweak_skill_count = nil
}

// SetStatus sets the "status" field.
func (m *PlanCycleMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *PlanCycleMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PlanCycle entity.
// If the PlanCycle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanCycleMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PlanCycleMutation) ResetStatus() {
	m.status = nil
}

// Where appends a list predicates to the PlanCycleMutation builder.
func (m *PlanCycleMutation) Where(ps ...predicate.PlanCycle) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PlanCycleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PlanCycleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PlanCycle, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PlanCycleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PlanCycleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PlanCycle).
func (m *PlanCycleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PlanCycleMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.created_at != nil {
		fields = append(fields, plancycle.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, plancycle.FieldUpdatedAt)
	}
	if m.user_id != nil {
		fields = append(fields, plancycle.FieldUserID)
	}
	if m.task_count != nil {
		fields = append(fields, plancycle.FieldTaskCount)
	}
	if m.focused_drill_count != nil {
		fields = append(fields, plancycle.FieldFocusedDrillCount)
	}
	if m.mixed_drill_count != nil {
		fields = append(fields, plancycle.FieldMixedDrillCount)
	}
	if m.mock_count != nil {
		fields = append(fields, plancycle.FieldMockCount)
	}
	if m.flashcard_count != nil {
		fields = append(fields, plancycle.FieldFlashcardCount)
	}
	if m.review_count != nil {
		fields = append(fields, plancycle.FieldReviewCount)
	}
	if m.days_remaining != nil {
		fields = append(fields, plancycle.FieldDaysRemaining)
	}
	if m.weak_skill_count != nil {
		fields = append(fields, plancycle.FieldWeakSkillCount)
	}
	if m.status != nil {
		fields = append(fields, plancycle.FieldStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PlanCycleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case plancycle.FieldCreatedAt:
		return m.CreatedAt()
	case plancycle.FieldUpdatedAt:
		return m.UpdatedAt()
	case plancycle.FieldUserID:
		return m.UserID()
	case plancycle.FieldTaskCount:
		return m.TaskCount()
	case plancycle.FieldFocusedDrillCount:
		return m.FocusedDrillCount()
	case plancycle.FieldMixedDrillCount:
		return m.MixedDrillCount()
	case plancycle.FieldMockCount:
		return m.MockCount()
	case plancycle.FieldFlashcardCount:
		return m.FlashcardCount()
	case plancycle.FieldReviewCount:
		return m.ReviewCount()
	case plancycle.FieldDaysRemaining:
		return m.DaysRemaining()
	case plancycle.FieldWeakSkillCount:
		return m.WeakSkillCount()
	case plancycle.FieldStatus:
		return m.Status()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PlanCycleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case plancycle.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case plancycle.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case plancycle.FieldUserID:
		return m.OldUserID(ctx)
	case plancycle.FieldTaskCount:
		return m.OldTaskCount(ctx)
	case plancycle.FieldFocusedDrillCount:
		return m.OldFocusedDrillCount(ctx)
	case plancycle.FieldMixedDrillCount:
		return m.OldMixedDrillCount(ctx)
	case plancycle.FieldMockCount:
		return m.OldMockCount(ctx)
	case plancycle.FieldFlashcardCount:
		return m.OldFlashcardCount(ctx)
	case plancycle.FieldReviewCount:
		return m.OldReviewCount(ctx)
	case plancycle.FieldDaysRemaining:
		return m.OldDaysRemaining(ctx)
	case plancycle.FieldWeakSkillCount:
		return m.OldWeakSkillCount(ctx)
	case plancycle.FieldStatus:
		return m.OldStatus(ctx)
	}
	return nil, fmt.Errorf("unknown PlanCycle field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlanCycleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case plancycle.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case plancycle.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case plancycle.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case plancycle.FieldTaskCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskCount(v)
		return nil
	case plancycle.FieldFocusedDrillCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFocusedDrillCount(v)
		return nil
	case plancycle.FieldMixedDrillCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMixedDrillCount(v)
		return nil
	case plancycle.FieldMockCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMockCount(v)
		return nil
	case plancycle.FieldFlashcardCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFlashcardCount(v)
		return nil
	case plancycle.FieldReviewCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewCount(v)
		return nil
	case plancycle.FieldDaysRemaining:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDaysRemaining(v)
		return nil
	case plancycle.FieldWeakSkillCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeakSkillCount(v)
		return nil
	case plancycle.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	}
	return fmt.Errorf("unknown PlanCycle field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PlanCycleMutation) AddedFields() []string {
	var fields []string
	if m.addtask_count != nil {
		fields = append(fields, plancycle.FieldTaskCount)
	}
	if m.addfocused_drill_count != nil {
		fields = append(fields, plancycle.FieldFocusedDrillCount)
	}
	if m.addmixed_drill_count != nil {
		fields = append(fields, plancycle.FieldMixedDrillCount)
	}
	if m.addmock_count != nil {
		fields = append(fields, plancycle.FieldMockCount)
	}
	if m.addflashcard_count != nil {
		fields = append(fields, plancycle.FieldFlashcardCount)
	}
	if m.addreview_count != nil {
		fields = append(fields, plancycle.FieldReviewCount)
	}
	if m.adddays_remaining != nil {
		fields = append(fields, plancycle.FieldDaysRemaining)
	}
	if m.addweak_skill_count != nil {
		fields = append(fields, plancycle.FieldWeakSkillCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PlanCycleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case plancycle.FieldTaskCount:
		return m.AddedTaskCount()
	case plancycle.FieldFocusedDrillCount:
		return m.AddedFocusedDrillCount()
	case plancycle.FieldMixedDrillCount:
		return m.AddedMixedDrillCount()
	case plancycle.FieldMockCount:
		return m.AddedMockCount()
	case plancycle.FieldFlashcardCount:
		return m.AddedFlashcardCount()
	case plancycle.FieldReviewCount:
		return m.AddedReviewCount()
	case plancycle.FieldDaysRemaining:
		return m.AddedDaysRemaining()
	case plancycle.FieldWeakSkillCount:
		return m.AddedWeakSkillCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlanCycleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case plancycle.FieldTaskCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTaskCount(v)
		return nil
	case plancycle.FieldFocusedDrillCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFocusedDrillCount(v)
		return nil
	case plancycle.FieldMixedDrillCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMixedDrillCount(v)
		return nil
	case plancycle.FieldMockCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMockCount(v)
		return nil
	case plancycle.FieldFlashcardCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFlashcardCount(v)
		return nil
	case plancycle.FieldReviewCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReviewCount(v)
		return nil
	case plancycle.FieldDaysRemaining:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDaysRemaining(v)
		return nil
	case plancycle.FieldWeakSkillCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeakSkillCount(v)
		return nil
	}
	return fmt.Errorf("unknown PlanCycle numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PlanCycleMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PlanCycleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PlanCycleMutation) ClearField(name string) error {
	return fmt.Errorf("unknown PlanCycle nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PlanCycleMutation) ResetField(name string) error {
	switch name {
	case plancycle.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case plancycle.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case plancycle.FieldUserID:
		m.ResetUserID()
		return nil
	case plancycle.FieldTaskCount:
		m.ResetTaskCount()
		return nil
	case plancycle.FieldFocusedDrillCount:
		m.ResetFocusedDrillCount()
		return nil
	case plancycle.FieldMixedDrillCount:
		m.ResetMixedDrillCount()
		return nil
	case plancycle.FieldMockCount:
		m.ResetMockCount()
		return nil
	case plancycle.FieldFlashcardCount:
		m.ResetFlashcardCount()
		return nil
	case plancycle.FieldReviewCount:
		m.ResetReviewCount()
		return nil
	case plancycle.FieldDaysRemaining:
		m.ResetDaysRemaining()
		return nil
	case plancycle.FieldWeakSkillCount:
		m.ResetWeakSkillCount()
		return nil
	case plancycle.FieldStatus:
		m.ResetStatus()
		return nil
	}
	return fmt.Errorf("unknown PlanCycle field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PlanCycleMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PlanCycleMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PlanCycleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PlanCycleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PlanCycleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PlanCycleMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PlanCycleMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PlanCycle unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PlanCycleMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PlanCycle edge %s", name)
}

// PlanTaskMutation represents an operation that mutates the PlanTask nodes in the graph.
type PlanTaskMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	updated_at    *time.Time
	cycle_id      *string
	user_id       *string
	task_type     *string
	sequence      *int
	addsequence   *int
	status        *string
	completed_at  *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*PlanTask, error)
	predicates    []predicate.PlanTask
}

var _ ent.Mutation = (*PlanTaskMutation)(nil)

// plantaskOption allows management of the mutation configuration using functional options.
type plantaskOption func(*PlanTaskMutation)

// newPlanTaskMutation creates new mutation for the PlanTask entity.
func newPlanTaskMutation(c config, op Op, opts ...plantaskOption) *PlanTaskMutation {
	m := &PlanTaskMutation{
		config:        c,
		op:            op,
		typ:           TypePlanTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPlanTaskID sets the ID field of the mutation.
func withPlanTaskID(id string) plantaskOption {
	return func(m *PlanTaskMutation) {
		var (
			err   error
			once  sync.Once
			value *PlanTask
		)
		m.oldValue = func(ctx context.Context) (*PlanTask, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PlanTask.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPlanTask sets the old PlanTask of the mutation.
func withPlanTask(node *PlanTask) plantaskOption {
	return func(m *PlanTaskMutation) {
		m.oldValue = func(context.Context) (*PlanTask, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PlanTaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PlanTaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PlanTask entities.
func (m *PlanTaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PlanTaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PlanTaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PlanTask.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PlanTaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PlanTaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PlanTask entity.
// If the PlanTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanTaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PlanTaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PlanTaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PlanTaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PlanTask entity.
// If the PlanTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanTaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PlanTaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCycleID sets the "cycle_id" field.
func (m *PlanTaskMutation) SetCycleID(s string) {
	m.cycle_id = &s
}

// CycleID returns the value of the "cycle_id" field in the mutation.
func (m *PlanTaskMutation) CycleID() (r string, exists bool) {
	v := m.cycle_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCycleID returns the old "cycle_id" field's value of the PlanTask entity.
// If the PlanTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanTaskMutation) OldCycleID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCycleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCycleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCycleID: %w", err)
	}
	return oldValue.CycleID, nil
}

// ResetCycleID resets all changes to the "cycle_id" field.
func (m *PlanTaskMutation) ResetCycleID() {
	m.cycle_id = nil
}

// SetUserID sets the "user_id" field.
func (m *PlanTaskMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *PlanTaskMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the PlanTask entity.
// If the PlanTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanTaskMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *PlanTaskMutation) ResetUserID() {
	m.user_id = nil
}

// SetTaskType sets the "task_type" field.
func (m *PlanTaskMutation) SetTaskType(s string) {
	m.task_type = &s
}

// TaskType returns the value of the "task_type" field in the mutation.
func (m *PlanTaskMutation) TaskType() (r string, exists bool) {
	v := m.task_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskType returns the old "task_type" field's value of the PlanTask entity.
// If the PlanTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanTaskMutation) OldTaskType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskType: %w", err)
	}
	return oldValue.TaskType, nil
}

// ResetTaskType resets all changes to the "task_type" field.
func (m *PlanTaskMutation) ResetTaskType() {
	m.task_type = nil
}

// SetSequence sets the "sequence" field.
func (m *PlanTaskMutation) SetSequence(i int) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *PlanTaskMutation) Sequence() (r int, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the PlanTask entity.
// If the PlanTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanTaskMutation) OldSequence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *PlanTaskMutation) AddSequence(i int) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *PlanTaskMutation) AddedSequence() (r int, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *PlanTaskMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetStatus sets the "status" field.
func (m *PlanTaskMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *PlanTaskMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PlanTask entity.
// If the PlanTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanTaskMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PlanTaskMutation) ResetStatus() {
	m.status = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *PlanTaskMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *PlanTaskMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the PlanTask entity.
// If the PlanTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanTaskMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *PlanTaskMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[plantask.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *PlanTaskMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[plantask.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *PlanTaskMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, plantask.FieldCompletedAt)
}

// Where appends a list predicates to the PlanTaskMutation builder.
func (m *PlanTaskMutation) Where(ps ...predicate.PlanTask) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PlanTaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PlanTaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PlanTask, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PlanTaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PlanTaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PlanTask).
func (m *PlanTaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PlanTaskMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, plantask.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, plantask.FieldUpdatedAt)
	}
	if m.cycle_id != nil {
		fields = append(fields, plantask.FieldCycleID)
	}
	if m.user_id != nil {
		fields = append(fields, plantask.FieldUserID)
	}
	if m.task_type != nil {
		fields = append(fields, plantask.FieldTaskType)
	}
	if m.sequence != nil {
		fields = append(fields, plantask.FieldSequence)
	}
	if m.status != nil {
		fields = append(fields, plantask.FieldStatus)
	}
	if m.completed_at != nil {
		fields = append(fields, plantask.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PlanTaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case plantask.FieldCreatedAt:
		return m.CreatedAt()
	case plantask.FieldUpdatedAt:
		return m.UpdatedAt()
	case plantask.FieldCycleID:
		return m.CycleID()
	case plantask.FieldUserID:
		return m.UserID()
	case plantask.FieldTaskType:
		return m.TaskType()
	case plantask.FieldSequence:
		return m.Sequence()
	case plantask.FieldStatus:
		return m.Status()
	case plantask.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PlanTaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case plantask.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case plantask.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case plantask.FieldCycleID:
		return m.OldCycleID(ctx)
	case plantask.FieldUserID:
		return m.OldUserID(ctx)
	case plantask.FieldTaskType:
		return m.OldTaskType(ctx)
	case plantask.FieldSequence:
		return m.OldSequence(ctx)
	case plantask.FieldStatus:
		return m.OldStatus(ctx)
	case plantask.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PlanTask field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlanTaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case plantask.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case plantask.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case plantask.FieldCycleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCycleID(v)
		return nil
	case plantask.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case plantask.FieldTaskType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskType(v)
		return nil
	case plantask.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case plantask.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case plantask.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PlanTask field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PlanTaskMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, plantask.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PlanTaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case plantask.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlanTaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case plantask.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown PlanTask numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PlanTaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(plantask.FieldCompletedAt) {
		fields = append(fields, plantask.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PlanTaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PlanTaskMutation) ClearField(name string) error {
	switch name {
	case plantask.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown PlanTask nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PlanTaskMutation) ResetField(name string) error {
	switch name {
	case plantask.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case plantask.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case plantask.FieldCycleID:
		m.ResetCycleID()
		return nil
	case plantask.FieldUserID:
		m.ResetUserID()
		return nil
	case plantask.FieldTaskType:
		m.ResetTaskType()
		return nil
	case plantask.FieldSequence:
		m.ResetSequence()
		return nil
	case plantask.FieldStatus:
		m.ResetStatus()
		return nil
	case plantask.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown PlanTask field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PlanTaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PlanTaskMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PlanTaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PlanTaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PlanTaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PlanTaskMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PlanTaskMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PlanTask unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PlanTaskMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PlanTask edge %s", name)
}

// QuestionMutation represents an operation that mutates the Question nodes in the graph.
type QuestionMutation struct {
	config
	op                Op
	typ               string
	id                *string
	created_at        *time.Time
	updated_at        *time.Time
	skill_id          *string
	difficulty        *string
	cognitive_level   *string
	answer_format     *string
	correct_answer    *string
	construct_weights *map[string]float64
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Question, error)
	predicates        []predicate.Question
}

var _ ent.Mutation = (*QuestionMutation)(nil)

// questionOption allows management of the mutation configuration using functional options.
type questionOption func(*QuestionMutation)

// newQuestionMutation creates new mutation for the Question entity.
func newQuestionMutation(c config, op Op, opts ...questionOption) *QuestionMutation {
	m := &QuestionMutation{
		config:        c,
		op:            op,
		typ:           TypeQuestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuestionID sets the ID field of the mutation.
func withQuestionID(id string) questionOption {
	return func(m *QuestionMutation) {
		var (
			err   error
			once  sync.Once
			value *Question
		)
		m.oldValue = func(ctx context.Context) (*Question, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Question.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuestion sets the old Question of the mutation.
func withQuestion(node *Question) questionOption {
	return func(m *QuestionMutation) {
		m.oldValue = func(context.Context) (*Question, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Question entities.
func (m *QuestionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuestionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuestionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Question.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *QuestionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QuestionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QuestionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *QuestionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *QuestionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *QuestionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetSkillID sets the "skill_id" field.
func (m *QuestionMutation) SetSkillID(s string) {
	m.skill_id = &s
}

// SkillID returns the value of the "skill_id" field in the mutation.
func (m *QuestionMutation) SkillID() (r string, exists bool) {
	v := m.skill_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillID returns the old "skill_id" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldSkillID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillID: %w", err)
	}
	return oldValue.SkillID, nil
}

// ResetSkillID resets all changes to the "skill_id" field.
func (m *QuestionMutation) ResetSkillID() {
	m.skill_id = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *QuestionMutation) SetDifficulty(s string) {
	m.difficulty = &s
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *QuestionMutation) Difficulty() (r string, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldDifficulty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *QuestionMutation) ResetDifficulty() {
	m.difficulty = nil
}

// SetCognitiveLevel sets the "cognitive_level" field.
func (m *QuestionMutation) SetCognitiveLevel(s string) {
	m.cognitive_level = &s
}

// CognitiveLevel returns the value of the "cognitive_level" field in the mutation.
func (m *QuestionMutation) CognitiveLevel() (r string, exists bool) {
	v := m.cognitive_level
	if v == nil {
		return
	}
	return *v, true
}

// OldCognitiveLevel returns the old "cognitive_level" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldCognitiveLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCognitiveLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCognitiveLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCognitiveLevel: %w", err)
	}
	return oldValue.CognitiveLevel, nil
}

// ResetCognitiveLevel resets all changes to the "cognitive_level" field.
func (m *QuestionMutation) ResetCognitiveLevel() {
	m.cognitive_level = nil
}

// SetAnswerFormat sets the "answer_format" field.
func (m *QuestionMutation) SetAnswerFormat(s string) {
	m.answer_format = &s
}

// AnswerFormat returns the value of the "answer_format" field in the mutation.
func (m *QuestionMutation) AnswerFormat() (r string, exists bool) {
	v := m.answer_format
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswerFormat returns the old "answer_format" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldAnswerFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswerFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswerFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswerFormat: %w", err)
	}
	return oldValue.AnswerFormat, nil
}

// ResetAnswerFormat resets all changes to the "answer_format" field.
func (m *QuestionMutation) ResetAnswerFormat() {
	m.answer_format = nil
}

// SetCorrectAnswer sets the "correct_answer" field.
func (m *QuestionMutation) SetCorrectAnswer(s string) {
	m.correct_answer = &s
}

// CorrectAnswer returns the value of the "correct_answer" field in the mutation.
func (m *QuestionMutation) CorrectAnswer() (r string, exists bool) {
	v := m.correct_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectAnswer returns the old "correct_answer" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldCorrectAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectAnswer: %w", err)
	}
	return oldValue.CorrectAnswer, nil
}

// ResetCorrectAnswer resets all changes to the "correct_answer" field.
func (m *QuestionMutation) ResetCorrectAnswer() {
	m.correct_answer = nil
}

// SetConstructWeights sets the "construct_weights" field.
func (m *QuestionMutation) SetConstructWeights(value map[string]float64) {
	m.construct_weights = &value
}

// ConstructWeights returns the value of the "construct_weights" field in the mutation.
func (m *QuestionMutation) ConstructWeights() (r map[string]float64, exists bool) {
	v := m.construct_weights
	if v == nil {
		return
	}
	return *v, true
}

// OldConstructWeights returns the old "construct_weights" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldConstructWeights(ctx context.Context) (v map[string]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConstructWeights is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConstructWeights requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConstructWeights: %w", err)
	}
	return oldValue.ConstructWeights, nil
}

// ClearConstructWeights clears the value of the "construct_weights" field.
func (m *QuestionMutation) ClearConstructWeights() {
	m.construct_weights = nil
	m.clearedFields[question.FieldConstructWeights] = struct{}{}
}

// ConstructWeightsCleared returns if the "construct_weights" field was cleared in this mutation.
func (m *QuestionMutation) ConstructWeightsCleared() bool {
	_, ok := m.clearedFields[question.FieldConstructWeights]
	return ok
}

// ResetConstructWeights resets all changes to the "construct_weights" field.
func (m *QuestionMutation) ResetConstructWeights() {
	m.construct_weights = nil
	delete(m.clearedFields, question.FieldConstructWeights)
}

// Where appends a list predicates to the QuestionMutation builder.
func (m *QuestionMutation) Where(ps ...predicate.Question) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Question, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Question).
func (m *QuestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuestionMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, question.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, question.FieldUpdatedAt)
	}
	if m.skill_id != nil {
		fields = append(fields, question.FieldSkillID)
	}
	if m.difficulty != nil {
		fields = append(fields, question.FieldDifficulty)
	}
	if m.cognitive_level != nil {
		fields = append(fields, question.FieldCognitiveLevel)
	}
	if m.answer_format != nil {
		fields = append(fields, question.FieldAnswerFormat)
	}
	if m.correct_answer != nil {
		fields = append(fields, question.FieldCorrectAnswer)
	}
	if m.construct_weights != nil {
		fields = append(fields, question.FieldConstructWeights)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case question.FieldCreatedAt:
		return m.CreatedAt()
	case question.FieldUpdatedAt:
		return m.UpdatedAt()
	case question.FieldSkillID:
		return m.SkillID()
	case question.FieldDifficulty:
		return m.Difficulty()
	case question.FieldCognitiveLevel:
		return m.CognitiveLevel()
	case question.FieldAnswerFormat:
		return m.AnswerFormat()
	case question.FieldCorrectAnswer:
		return m.CorrectAnswer()
	case question.FieldConstructWeights:
		return m.ConstructWeights()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case question.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case question.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case question.FieldSkillID:
		return m.OldSkillID(ctx)
	case question.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case question.FieldCognitiveLevel:
		return m.OldCognitiveLevel(ctx)
	case question.FieldAnswerFormat:
		return m.OldAnswerFormat(ctx)
	case question.FieldCorrectAnswer:
		return m.OldCorrectAnswer(ctx)
	case question.FieldConstructWeights:
		return m.OldConstructWeights(ctx)
	}
	return nil, fmt.Errorf("unknown Question field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case question.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case question.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case question.FieldSkillID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillID(v)
		return nil
	case question.FieldDifficulty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case question.FieldCognitiveLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCognitiveLevel(v)
		return nil
	case question.FieldAnswerFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswerFormat(v)
		return nil
	case question.FieldCorrectAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectAnswer(v)
		return nil
	case question.FieldConstructWeights:
		v, ok := value.(map[string]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConstructWeights(v)
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuestionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuestionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Question numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuestionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(question.FieldConstructWeights) {
		fields = append(fields, question.FieldConstructWeights)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuestionMutation) ClearField(name string) error {
	switch name {
	case question.FieldConstructWeights:
		m.ClearConstructWeights()
		return nil
	}
	return fmt.Errorf("unknown Question nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuestionMutation) ResetField(name string) error {
	switch name {
	case question.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case question.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case question.FieldSkillID:
		m.ResetSkillID()
		return nil
	case question.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case question.FieldCognitiveLevel:
		m.ResetCognitiveLevel()
		return nil
	case question.FieldAnswerFormat:
		m.ResetAnswerFormat()
		return nil
	case question.FieldCorrectAnswer:
		m.ResetCorrectAnswer()
		return nil
	case question.FieldConstructWeights:
		m.ResetConstructWeights()
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuestionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuestionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuestionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuestionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Question unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuestionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Question edge %s", name)
}

// SkillStateMutation represents an operation that mutates the SkillState nodes in the graph.
type SkillStateMutation struct {
	config
	op                Op
	typ               string
	id                *string
	created_at        *time.Time
	updated_at        *time.Time
	user_id           *string
	skill_id          *string
	attempt_count     *int
	addattempt_count  *int
	correct_count     *int
	addcorrect_count  *int
	accuracy          *float64
	addaccuracy       *float64
	total_time_sec    *int
	addtotal_time_sec *int
	avg_time_sec      *float64
	addavg_time_sec   *float64
	mastery_level     *string
	last_attempted_at *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*SkillState, error)
	predicates        []predicate.SkillState
}

var _ ent.Mutation = (*SkillStateMutation)(nil)

// skillstateOption allows management of the mutation configuration using functional options.
type skillstateOption func(*SkillStateMutation)

// newSkillStateMutation creates new mutation for the SkillState entity.
func newSkillStateMutation(c config, op Op, opts ...skillstateOption) *SkillStateMutation {
	m := &SkillStateMutation{
		config:        c,
		op:            op,
		typ:           TypeSkillState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSkillStateID sets the ID field of the mutation.
func withSkillStateID(id string) skillstateOption {
	return func(m *SkillStateMutation) {
		var (
			err   error
			once  sync.Once
			value *SkillState
		)
		m.oldValue = func(ctx context.Context) (*SkillState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SkillState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSkillState sets the old SkillState of the mutation.
func withSkillState(node *SkillState) skillstateOption {
	return func(m *SkillStateMutation) {
		m.oldValue = func(context.Context) (*SkillState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SkillStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SkillStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SkillState entities.
func (m *SkillStateMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SkillStateMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SkillStateMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SkillState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *SkillStateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SkillStateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SkillState entity.
// If the SkillState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillStateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SkillStateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SkillStateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SkillStateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SkillState entity.
// If the SkillState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillStateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SkillStateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUserID sets the "user_id" field.
func (m *SkillStateMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SkillStateMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the SkillState entity.
// If the SkillState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillStateMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SkillStateMutation) ResetUserID() {
	m.user_id = nil
}

// SetSkillID sets the "skill_id" field.
func (m *SkillStateMutation) SetSkillID(s string) {
	m.skill_id = &s
}

// SkillID returns the value of the "skill_id" field in the mutation.
func (m *SkillStateMutation) SkillID() (r string, exists bool) {
	v := m.skill_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillID returns the old "skill_id" field's value of the SkillState entity.
// If the SkillState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillStateMutation) OldSkillID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillID: %w", err)
	}
	return oldValue.SkillID, nil
}

// ResetSkillID resets all changes to the "skill_id" field.
func (m *SkillStateMutation) ResetSkillID() {
	m.skill_id = nil
}

// SetAttemptCount sets the "attempt_count" field.
func (m *SkillStateMutation) SetAttemptCount(i int) {
	m.attempt_count = &i
	m.addattempt_count = nil
}

// AttemptCount returns the value of the "attempt_count" field in the mutation.
func (m *SkillStateMutation) AttemptCount() (r int, exists bool) {
	v := m.attempt_count
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptCount returns the old "attempt_count" field's value of the SkillState entity.
// If the SkillState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillStateMutation) OldAttemptCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptCount: %w", err)
	}
	return oldValue.AttemptCount, nil
}

// AddAttemptCount adds i to the "attempt_count" field.
func (m *SkillStateMutation) AddAttemptCount(i int) {
	if m.addattempt_count != nil {
		*m.addattempt_count += i
	} else {
		m.addattempt_count = &i
	}
}

// AddedAttemptCount returns the value that was added to the "attempt_count" field in this mutation.
func (m *SkillStateMutation) AddedAttemptCount() (r int, exists bool) {
	v := m.addattempt_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttemptCount resets all changes to the "attempt_count" field.
func (m *SkillStateMutation) ResetAttemptCount() {
	m.attempt_count = nil
	m.addattempt_count = nil
}

// SetCorrectCount sets the "correct_count" field.
func (m *SkillStateMutation) SetCorrectCount(i int) {
	m.correct_count = &i
	m.addcorrect_count = nil
}

// CorrectCount returns the value of the "correct_count" field in the mutation.
func (m *SkillStateMutation) CorrectCount() (r int, exists bool) {
	v := m.correct_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectCount returns the old "correct_count" field's value of the SkillState entity.
// If the SkillState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillStateMutation) OldCorrectCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectCount: %w", err)
	}
	return oldValue.CorrectCount, nil
}

// AddCorrectCount adds i to the "correct_count" field.
func (m *SkillStateMutation) AddCorrectCount(i int) {
	if m.addcorrect_count != nil {
		*m.addcorrect_count += i
	} else {
		m.addcorrect_count = &i
	}
}

// AddedCorrectCount returns the value that was added to the "correct_count" field in this mutation.
func (m *SkillStateMutation) AddedCorrectCount() (r int, exists bool) {
	v := m.addcorrect_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectCount resets all changes to the "correct_count" field.
func (m *SkillStateMutation) ResetCorrectCount() {
	m.correct_count = nil
	m.addcorrect_count = nil
}

// SetAccuracy sets the "accuracy" field.
func (m *SkillStateMutation) SetAccuracy(f float64) {
	m.accuracy = &f
	m.addaccuracy = nil
}

// Accuracy returns the value of the "accuracy" field in the mutation.
func (m *SkillStateMutation) Accuracy() (r float64, exists bool) {
	v := m.accuracy
	if v == nil {
		return
	}
	return *v, true
}

// OldAccuracy returns the old "accuracy" field's value of the SkillState entity.
// If the SkillState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillStateMutation) OldAccuracy(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccuracy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccuracy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccuracy: %w", err)
	}
	return oldValue.Accuracy, nil
}

// AddAccuracy adds f to the "accuracy" field.
func (m *SkillStateMutation) AddAccuracy(f float64) {
	if m.addaccuracy != nil {
		*m.addaccuracy += f
	} else {
		m.addaccuracy = &f
	}
}

// AddedAccuracy returns the value that was added to the "accuracy" field in this mutation.
func (m *SkillStateMutation) AddedAccuracy() (r float64, exists bool) {
	v := m.addaccuracy
	if v == nil {
		return
	}
	return *v, true
}

// ResetAccuracy resets all changes to the "accuracy" field.
func (m *SkillStateMutation) ResetAccuracy() {
	m.accuracy = nil
	m.addaccuracy = nil
}

// SetTotalTimeSec sets the "total_time_sec" field.
func (m *SkillStateMutation) SetTotalTimeSec(i int) {
	m.total_time_sec = &i
	m.addtotal_time_sec = nil
}

// TotalTimeSec returns the value of the "total_time_sec" field in the mutation.
func (m *SkillStateMutation) TotalTimeSec() (r int, exists bool) {
	v := m.total_time_sec
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTimeSec returns the old "total_time_sec" field's value of the SkillState entity.
// If the SkillState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillStateMutation) OldTotalTimeSec(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTimeSec is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTimeSec requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTimeSec: %w", err)
	}
	return oldValue.TotalTimeSec, nil
}

// AddTotalTimeSec adds i to the "total_time_sec" field.
func (m *SkillStateMutation) AddTotalTimeSec(i int) {
	if m.addtotal_time_sec != nil {
		*m.addtotal_time_sec += i
	} else {
		m.addtotal_time_sec = &i
	}
}

// AddedTotalTimeSec returns the value that was added to the "total_time_sec" field in this mutation.
func (m *SkillStateMutation) AddedTotalTimeSec() (r int, exists bool) {
	v := m.addtotal_time_sec
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTimeSec resets all changes to the "total_time_sec" field.
func (m *SkillStateMutation) ResetTotalTimeSec() {
	m.total_time_sec = nil
	m.addtotal_time_sec = nil
}

// SetAvgTimeSec sets the "avg_time_sec" field.
func (m *SkillStateMutation) SetAvgTimeSec(f float64) {
	m.avg_time_sec = &f
	m.addavg_time_sec = nil
}

// AvgTimeSec returns the value of the "avg_time_sec" field in the mutation.
func (m *SkillStateMutation) AvgTimeSec() (r float64, exists bool) {
	v := m.avg_time_sec
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgTimeSec returns the old "avg_time_sec" field's value of the SkillState entity.
// If the SkillState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillStateMutation) OldAvgTimeSec(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgTimeSec is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgTimeSec requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgTimeSec: %w", err)
	}
	return oldValue.AvgTimeSec, nil
}

// AddAvgTimeSec adds f to the "avg_time_sec" field.
func (m *SkillStateMutation) AddAvgTimeSec(f float64) {
	if m.addavg_time_sec != nil {
		*m.addavg_time_sec += f
	} else {
		m.addavg_time_sec = &f
	}
}

// AddedAvgTimeSec returns the value that was added to the "avg_time_sec" field in this mutation.
func (m *SkillStateMutation) AddedAvgTimeSec() (r float64, exists bool) {
	v := m.addavg_time_sec
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgTimeSec resets all changes to the "avg_time_sec" field.
func (m *SkillStateMutation) ResetAvgTimeSec() {
	m.avg_time_sec = nil
	m.addavg_time_sec = nil
}

// SetMasteryLevel sets the "mastery_level" field.
func (m *SkillStateMutation) SetMasteryLevel(s string) {
	m.mastery_level = &s
}

// MasteryLevel returns the value of the "mastery_level" field in the mutation.
func (m *SkillStateMutation) MasteryLevel() (r string, exists bool) {
	v := m.mastery_level
	if v == nil {
		return
	}
	return *v, true
}

// OldMasteryLevel returns the old "mastery_level" field's value of the SkillState entity.
// If the SkillState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillStateMutation) OldMasteryLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMasteryLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMasteryLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMasteryLevel: %w", err)
	}
	return oldValue.MasteryLevel, nil
}

// ResetMasteryLevel resets all changes to the "mastery_level" field.
func (m *SkillStateMutation) ResetMasteryLevel() {
	m.mastery_level = nil
}

// SetLastAttemptedAt sets the "last_attempted_at" field.
func (m *SkillStateMutation) SetLastAttemptedAt(t time.Time) {
	m.last_attempted_at = &t
}

// LastAttemptedAt returns the value of the "last_attempted_at" field in the mutation.
func (m *SkillStateMutation) LastAttemptedAt() (r time.Time, exists bool) {
	v := m.last_attempted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastAttemptedAt returns the old "last_attempted_at" field's value of the SkillState entity.
// If the SkillState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillStateMutation) OldLastAttemptedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastAttemptedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastAttemptedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastAttemptedAt: %w", err)
	}
	return oldValue.LastAttemptedAt, nil
}

// ClearLastAttemptedAt clears the value of the "last_attempted_at" field.
func (m *SkillStateMutation) ClearLastAttemptedAt() {
	m.last_attempted_at = nil
	m.clearedFields[skillstate.FieldLastAttemptedAt] = struct{}{}
}

// LastAttemptedAtCleared returns if the "last_attempted_at" field was cleared in this mutation.
func (m *SkillStateMutation) LastAttemptedAtCleared() bool {
	_, ok := m.clearedFields[skillstate.FieldLastAttemptedAt]
	return ok
}

// ResetLastAttemptedAt resets all changes to the "last_attempted_at" field.
func (m *SkillStateMutation) ResetLastAttemptedAt() {
	m.last_attempted_at = nil
	delete(m.clearedFields, skillstate.FieldLastAttemptedAt)
}

// Where appends a list predicates to the SkillStateMutation builder.
func (m *SkillStateMutation) Where(ps ...predicate.SkillState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SkillStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SkillStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SkillState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SkillStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SkillStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SkillState).
func (m *SkillStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SkillStateMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.created_at != nil {
		fields = append(fields, skillstate.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, skillstate.FieldUpdatedAt)
	}
	if m.user_id != nil {
		fields = append(fields, skillstate.FieldUserID)
	}
	if m.skill_id != nil {
		fields = append(fields, skillstate.FieldSkillID)
	}
	if m.attempt_count != nil {
		fields = append(fields, skillstate.FieldAttemptCount)
	}
	if m.correct_count != nil {
		fields = append(fields, skillstate.FieldCorrectCount)
	}
	if m.accuracy != nil {
		fields = append(fields, skillstate.FieldAccuracy)
	}
	if m.total_time_sec != nil {
		fields = append(fields, skillstate.FieldTotalTimeSec)
	}
	if m.avg_time_sec != nil {
		fields = append(fields, skillstate.FieldAvgTimeSec)
	}
	if m.mastery_level != nil {
		fields = append(fields, skillstate.FieldMasteryLevel)
	}
	if m.last_attempted_at != nil {
		fields = append(fields, skillstate.FieldLastAttemptedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SkillStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case skillstate.FieldCreatedAt:
		return m.CreatedAt()
	case skillstate.FieldUpdatedAt:
		return m.UpdatedAt()
	case skillstate.FieldUserID:
		return m.UserID()
	case skillstate.FieldSkillID:
		return m.SkillID()
	case skillstate.FieldAttemptCount:
		return m.AttemptCount()
	case skillstate.FieldCorrectCount:
		return m.CorrectCount()
	case skillstate.FieldAccuracy:
		return m.Accuracy()
	case skillstate.FieldTotalTimeSec:
		return m.TotalTimeSec()
	case skillstate.FieldAvgTimeSec:
		return m.AvgTimeSec()
	case skillstate.FieldMasteryLevel:
		return m.MasteryLevel()
	case skillstate.FieldLastAttemptedAt:
		return m.LastAttemptedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SkillStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case skillstate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case skillstate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case skillstate.FieldUserID:
		return m.OldUserID(ctx)
	case skillstate.FieldSkillID:
		return m.OldSkillID(ctx)
	case skillstate.FieldAttemptCount:
		return m.OldAttemptCount(ctx)
	case skillstate.FieldCorrectCount:
		return m.OldCorrectCount(ctx)
	case skillstate.FieldAccuracy:
		return m.OldAccuracy(ctx)
	case skillstate.FieldTotalTimeSec:
		return m.OldTotalTimeSec(ctx)
	case skillstate.FieldAvgTimeSec:
		return m.OldAvgTimeSec(ctx)
	case skillstate.FieldMasteryLevel:
		return m.OldMasteryLevel(ctx)
	case skillstate.FieldLastAttemptedAt:
		return m.OldLastAttemptedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SkillState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SkillStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case skillstate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case skillstate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case skillstate.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case skillstate.FieldSkillID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillID(v)
		return nil
	case skillstate.FieldAttemptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptCount(v)
		return nil
	case skillstate.FieldCorrectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectCount(v)
		return nil
	case skillstate.FieldAccuracy:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccuracy(v)
		return nil
	case skillstate.FieldTotalTimeSec:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTimeSec(v)
		return nil
	case skillstate.FieldAvgTimeSec:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgTimeSec(v)
		return nil
	case skillstate.FieldMasteryLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMasteryLevel(v)
		return nil
	case skillstate.FieldLastAttemptedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastAttemptedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SkillState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SkillStateMutation) AddedFields() []string {
	var fields []string
	if m.addattempt_count != nil {
		fields = append(fields, skillstate.FieldAttemptCount)
	}
	if m.addcorrect_count != nil {
		fields = append(fields, skillstate.FieldCorrectCount)
	}
	if m.addaccuracy != nil {
		fields = append(fields, skillstate.FieldAccuracy)
	}
	if m.addtotal_time_sec != nil {
		fields = append(fields, skillstate.FieldTotalTimeSec)
	}
	if m.addavg_time_sec != nil {
		fields = append(fields, skillstate.FieldAvgTimeSec)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SkillStateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case skillstate.FieldAttemptCount:
		return m.AddedAttemptCount()
	case skillstate.FieldCorrectCount:
		return m.AddedCorrectCount()
	case skillstate.FieldAccuracy:
		return m.AddedAccuracy()
	case skillstate.FieldTotalTimeSec:
		return m.AddedTotalTimeSec()
	case skillstate.FieldAvgTimeSec:
		return m.AddedAvgTimeSec()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SkillStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case skillstate.FieldAttemptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttemptCount(v)
		return nil
	case skillstate.FieldCorrectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectCount(v)
		return nil
	case skillstate.FieldAccuracy:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAccuracy(v)
		return nil
	case skillstate.FieldTotalTimeSec:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTimeSec(v)
		return nil
	case skillstate.FieldAvgTimeSec:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgTimeSec(v)
		return nil
	}
	return fmt.Errorf("unknown SkillState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SkillStateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(skillstate.FieldLastAttemptedAt) {
		fields = append(fields, skillstate.FieldLastAttemptedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SkillStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SkillStateMutation) ClearField(name string) error {
	switch name {
	case skillstate.FieldLastAttemptedAt:
		m.ClearLastAttemptedAt()
		return nil
	}
	return fmt.Errorf("unknown SkillState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SkillStateMutation) ResetField(name string) error {
	switch name {
	case skillstate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case skillstate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case skillstate.FieldUserID:
		m.ResetUserID()
		return nil
	case skillstate.FieldSkillID:
		m.ResetSkillID()
		return nil
	case skillstate.FieldAttemptCount:
		m.ResetAttemptCount()
		return nil
	case skillstate.FieldCorrectCount:
		m.ResetCorrectCount()
		return nil
	case skillstate.FieldAccuracy:
		m.ResetAccuracy()
		return nil
	case skillstate.FieldTotalTimeSec:
		m.ResetTotalTimeSec()
		return nil
	case skillstate.FieldAvgTimeSec:
		m.ResetAvgTimeSec()
		return nil
	case skillstate.FieldMasteryLevel:
		m.ResetMasteryLevel()
		return nil
	case skillstate.FieldLastAttemptedAt:
		m.ResetLastAttemptedAt()
		return nil
	}
	return fmt.Errorf("unknown SkillState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SkillStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SkillStateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SkillStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SkillStateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SkillStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SkillStateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SkillStateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SkillState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SkillStateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SkillState edge %s", name)
}

// UserProfileMutation represents an operation that mutates the UserProfile nodes in the graph.
type UserProfileMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	created_at             *time.Time
	updated_at             *time.Time
	user_id                *string
	package_length_days    *int
	addpackage_length_days *int
	daily_minutes          *int
	adddaily_minutes       *int
	package_started_at     *time.Time
	phase                  *string
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*UserProfile, error)
	predicates             []predicate.UserProfile
}

var _ ent.Mutation = (*UserProfileMutation)(nil)

// userprofileOption allows management of the mutation configuration using functional options.
type userprofileOption func(*UserProfileMutation)

// newUserProfileMutation creates new mutation for the UserProfile entity.
func newUserProfileMutation(c config, op Op, opts ...userprofileOption) *UserProfileMutation {
	m := &UserProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeUserProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserProfileID sets the ID field of the mutation.
func withUserProfileID(id string) userprofileOption {
	return func(m *UserProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *UserProfile
		)
		m.oldValue = func(ctx context.Context) (*UserProfile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserProfile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserProfile sets the old UserProfile of the mutation.
func withUserProfile(node *UserProfile) userprofileOption {
	return func(m *UserProfileMutation) {
		m.oldValue = func(context.Context) (*UserProfile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UserProfile entities.
func (m *UserProfileMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserProfileMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserProfileMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserProfile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UserProfileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserProfileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserProfileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserProfileMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserProfileMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserProfileMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUserID sets the "user_id" field.
func (m *UserProfileMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UserProfileMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UserProfileMutation) ResetUserID() {
	m.user_id = nil
}

// SetPackageLengthDays sets the "package_length_days" field.
func (m *UserProfileMutation) SetPackageLengthDays(i int) {
	m.package_length_days = &i
	m.addpackage_length_days = nil
}

// PackageLengthDays returns the value of the "package_length_days" field in the mutation.
func (m *UserProfileMutation) PackageLengthDays() (r int, exists bool) {
	v := m.package_length_days
	if v == nil {
		return
	}
	return *v, true
}

// OldPackageLengthDays returns the old "package_length_days" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldPackageLengthDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPackageLengthDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPackageLengthDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPackageLengthDays: %w", err)
	}
	return oldValue.PackageLengthDays, nil
}

// AddPackageLengthDays adds i to the "package_length_days" field.
func (m *UserProfileMutation) AddPackageLengthDays(i int) {
	if m.addpackage_length_days != nil {
		*m.addpackage_length_days += i
	} else {
		m.addpackage_length_days = &i
	}
}

// AddedPackageLengthDays returns the value that was added to the "package_length_days" field in this mutation.
func (m *UserProfileMutation) AddedPackageLengthDays() (r int, exists bool) {
	v := m.addpackage_length_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetPackageLengthDays resets all changes to the "package_length_days" field.
func (m *UserProfileMutation) ResetPackageLengthDays() {
	m.package_length_days = nil
	m.addpackage_length_days = nil
}

// SetDailyMinutes sets the "daily_minutes" field.
func (m *UserProfileMutation) SetDailyMinutes(i int) {
	m.daily_minutes = &i
	m.adddaily_minutes = nil
}

// DailyMinutes returns the value of the "daily_minutes" field in the mutation.
func (m *UserProfileMutation) DailyMinutes() (r int, exists bool) {
	v := m.daily_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldDailyMinutes returns the old "daily_minutes" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldDailyMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDailyMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDailyMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDailyMinutes: %w", err)
	}
	return oldValue.DailyMinutes, nil
}

// AddDailyMinutes adds i to the "daily_minutes" field.
func (m *UserProfileMutation) AddDailyMinutes(i int) {
	if m.adddaily_minutes != nil {
		*m.adddaily_minutes += i
	} else {
		m.adddaily_minutes = &i
	}
}

// AddedDailyMinutes returns the value that was added to the "daily_minutes" field in this mutation.
func (m *UserProfileMutation) AddedDailyMinutes() (r int, exists bool) {
	v := m.adddaily_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetDailyMinutes resets all changes to the "daily_minutes" field.
func (m *UserProfileMutation) ResetDailyMinutes() {
	m.daily_minutes = nil
	m.adddaily_minutes = nil
}

// SetPackageStartedAt sets the "package_started_at" field.
func (m *UserProfileMutation) SetPackageStartedAt(t time.Time) {
	m.package_started_at = &t
}

// PackageStartedAt returns the value of the "package_started_at" field in the mutation.
func (m *UserProfileMutation) PackageStartedAt() (r time.Time, exists bool) {
	v := m.package_started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPackageStartedAt returns the old "package_started_at" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldPackageStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPackageStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPackageStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPackageStartedAt: %w", err)
	}
	return oldValue.PackageStartedAt, nil
}

// ClearPackageStartedAt clears the value of the "package_started_at" field.
func (m *UserProfileMutation) ClearPackageStartedAt() {
	m.package_started_at = nil
	m.clearedFields[userprofile.FieldPackageStartedAt] = struct{}{}
}

// PackageStartedAtCleared returns if the "package_started_at" field was cleared in this mutation.
func (m *UserProfileMutation) PackageStartedAtCleared() bool {
	_, ok := m.clearedFields[userprofile.FieldPackageStartedAt]
	return ok
}

// ResetPackageStartedAt resets all changes to the "package_started_at" field.
func (m *UserProfileMutation) ResetPackageStartedAt() {
	m.package_started_at = nil
	delete(m.clearedFields, userprofile.FieldPackageStartedAt)
}

// SetPhase sets the "phase" field.
func (m *UserProfileMutation) SetPhase(s string) {
	m.phase = &s
}

// Phase returns the value of the "phase" field in the mutation.
func (m *UserProfileMutation) Phase() (r string, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldPhase(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// ResetPhase resets all changes to the "phase" field.
func (m *UserProfileMutation) ResetPhase() {
	m.phase = nil
}

// Where appends a list predicates to the UserProfileMutation builder.
func (m *UserProfileMutation) Where(ps ...predicate.UserProfile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserProfile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserProfile).
func (m *UserProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserProfileMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, userprofile.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, userprofile.FieldUpdatedAt)
	}
	if m.user_id != nil {
		fields = append(fields, userprofile.FieldUserID)
	}
	if m.package_length_days != nil {
		fields = append(fields, userprofile.FieldPackageLengthDays)
	}
	if m.daily_minutes != nil {
		fields = append(fields, userprofile.FieldDailyMinutes)
	}
	if m.package_started_at != nil {
		fields = append(fields, userprofile.FieldPackageStartedAt)
	}
	if m.phase != nil {
		fields = append(fields, userprofile.FieldPhase)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case userprofile.FieldCreatedAt:
		return m.CreatedAt()
	case userprofile.FieldUpdatedAt:
		return m.UpdatedAt()
	case userprofile.FieldUserID:
		return m.UserID()
	case userprofile.FieldPackageLengthDays:
		return m.PackageLengthDays()
	case userprofile.FieldDailyMinutes:
		return m.DailyMinutes()
	case userprofile.FieldPackageStartedAt:
		return m.PackageStartedAt()
	case userprofile.FieldPhase:
		return m.Phase()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case userprofile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case userprofile.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case userprofile.FieldUserID:
		return m.OldUserID(ctx)
	case userprofile.FieldPackageLengthDays:
		return m.OldPackageLengthDays(ctx)
	case userprofile.FieldDailyMinutes:
		return m.OldDailyMinutes(ctx)
	case userprofile.FieldPackageStartedAt:
		return m.OldPackageStartedAt(ctx)
	case userprofile.FieldPhase:
		return m.OldPhase(ctx)
	}
	return nil, fmt.Errorf("unknown UserProfile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case userprofile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case userprofile.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case userprofile.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case userprofile.FieldPackageLengthDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPackageLengthDays(v)
		return nil
	case userprofile.FieldDailyMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDailyMinutes(v)
		return nil
	case userprofile.FieldPackageStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPackageStartedAt(v)
		return nil
	case userprofile.FieldPhase:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	}
	return fmt.Errorf("unknown UserProfile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserProfileMutation) AddedFields() []string {
	var fields []string
	if m.addpackage_length_days != nil {
		fields = append(fields, userprofile.FieldPackageLengthDays)
	}
	if m.adddaily_minutes != nil {
		fields = append(fields, userprofile.FieldDailyMinutes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserProfileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case userprofile.FieldPackageLengthDays:
		return m.AddedPackageLengthDays()
	case userprofile.FieldDailyMinutes:
		return m.AddedDailyMinutes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case userprofile.FieldPackageLengthDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPackageLengthDays(v)
		return nil
	case userprofile.FieldDailyMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDailyMinutes(v)
		return nil
	}
	return fmt.Errorf("unknown UserProfile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserProfileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(userprofile.FieldPackageStartedAt) {
		fields = append(fields, userprofile.FieldPackageStartedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserProfileMutation) ClearField(name string) error {
	switch name {
	case userprofile.FieldPackageStartedAt:
		m.ClearPackageStartedAt()
		return nil
	}
	return fmt.Errorf("unknown UserProfile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserProfileMutation) ResetField(name string) error {
	switch name {
	case userprofile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case userprofile.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case userprofile.FieldUserID:
		m.ResetUserID()
		return nil
	case userprofile.FieldPackageLengthDays:
		m.ResetPackageLengthDays()
		return nil
	case userprofile.FieldDailyMinutes:
		m.ResetDailyMinutes()
		return nil
	case userprofile.FieldPackageStartedAt:
		m.ResetPackageStartedAt()
		return nil
	case userprofile.FieldPhase:
		m.ResetPhase()
		return nil
	}
	return fmt.Errorf("unknown UserProfile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserProfileMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserProfileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserProfileMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserProfileMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UserProfile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserProfileMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UserProfile edge %s", name)
}
