// Code generated by ent, DO NOT EDIT.

package attempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/prepwise/backend/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldUserID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldQuestionID, v))
}

// SkillID applies equality check predicate on the "skill_id" field. It's identical to SkillIDEQ.
func SkillID(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldSkillID, v))
}

// ContextType applies equality check predicate on the "context_type" field. It's identical to ContextTypeEQ.
func ContextType(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldContextType, v))
}

// ContextID applies equality check predicate on the "context_id" field. It's identical to ContextIDEQ.
func ContextID(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldContextID, v))
}

// ModuleID applies equality check predicate on the "module_id" field. It's identical to ModuleIDEQ.
func ModuleID(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldModuleID, v))
}

// SubmittedAnswer applies equality check predicate on the "submitted_answer" field. It's identical to SubmittedAnswerEQ.
func SubmittedAnswer(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldSubmittedAnswer, v))
}

// IsCorrect applies equality check predicate on the "is_correct" field. It's identical to IsCorrectEQ.
func IsCorrect(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldIsCorrect, v))
}

// TimeSpentSec applies equality check predicate on the "time_spent_sec" field. It's identical to TimeSpentSecEQ.
func TimeSpentSec(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldTimeSpentSec, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContainsFold(FieldUserID, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContainsFold(FieldQuestionID, v))
}

// SkillIDEQ applies the EQ predicate on the "skill_id" field.
func SkillIDEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldSkillID, v))
}

// SkillIDNEQ applies the NEQ predicate on the "skill_id" field.
func SkillIDNEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldSkillID, v))
}

// SkillIDIn applies the In predicate on the "skill_id" field.
func SkillIDIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldSkillID, vs...))
}

// SkillIDNotIn applies the NotIn predicate on the "skill_id" field.
func SkillIDNotIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldSkillID, vs...))
}

// SkillIDGT applies the GT predicate on the "skill_id" field.
func SkillIDGT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldSkillID, v))
}

// SkillIDGTE applies the GTE predicate on the "skill_id" field.
func SkillIDGTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldSkillID, v))
}

// SkillIDLT applies the LT predicate on the "skill_id" field.
func SkillIDLT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldSkillID, v))
}

// SkillIDLTE applies the LTE predicate on the "skill_id" field.
func SkillIDLTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldSkillID, v))
}

// SkillIDContains applies the Contains predicate on the "skill_id" field.
func SkillIDContains(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContains(FieldSkillID, v))
}

// SkillIDHasPrefix applies the HasPrefix predicate on the "skill_id" field.
func SkillIDHasPrefix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasPrefix(FieldSkillID, v))
}

// SkillIDHasSuffix applies the HasSuffix predicate on the "skill_id" field.
func SkillIDHasSuffix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasSuffix(FieldSkillID, v))
}

// SkillIDEqualFold applies the EqualFold predicate on the "skill_id" field.
func SkillIDEqualFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEqualFold(FieldSkillID, v))
}

// SkillIDContainsFold applies the ContainsFold predicate on the "skill_id" field.
func SkillIDContainsFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContainsFold(FieldSkillID, v))
}

// ContextTypeEQ applies the EQ predicate on the "context_type" field.
func ContextTypeEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldContextType, v))
}

// ContextTypeNEQ applies the NEQ predicate on the "context_type" field.
func ContextTypeNEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldContextType, v))
}

// ContextTypeIn applies the In predicate on the "context_type" field.
func ContextTypeIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldContextType, vs...))
}

// ContextTypeNotIn applies the NotIn predicate on the "context_type" field.
func ContextTypeNotIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldContextType, vs...))
}

// ContextTypeGT applies the GT predicate on the "context_type" field.
func ContextTypeGT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldContextType, v))
}

// ContextTypeGTE applies the GTE predicate on the "context_type" field.
func ContextTypeGTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldContextType, v))
}

// ContextTypeLT applies the LT predicate on the "context_type" field.
func ContextTypeLT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldContextType, v))
}

// ContextTypeLTE applies the LTE predicate on the "context_type" field.
func ContextTypeLTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldContextType, v))
}

// ContextTypeContains applies the Contains predicate on the "context_type" field.
func ContextTypeContains(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContains(FieldContextType, v))
}

// ContextTypeHasPrefix applies the HasPrefix predicate on the "context_type" field.
func ContextTypeHasPrefix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasPrefix(FieldContextType, v))
}

// ContextTypeHasSuffix applies the HasSuffix predicate on the "context_type" field.
func ContextTypeHasSuffix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasSuffix(FieldContextType, v))
}

// ContextTypeEqualFold applies the EqualFold predicate on the "context_type" field.
func ContextTypeEqualFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEqualFold(FieldContextType, v))
}

// ContextTypeContainsFold applies the ContainsFold predicate on the "context_type" field.
func ContextTypeContainsFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContainsFold(FieldContextType, v))
}

// ContextIDEQ applies the EQ predicate on the "context_id" field.
func ContextIDEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldContextID, v))
}

// ContextIDNEQ applies the NEQ predicate on the "context_id" field.
func ContextIDNEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldContextID, v))
}

// ContextIDIn applies the In predicate on the "context_id" field.
func ContextIDIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldContextID, vs...))
}

// ContextIDNotIn applies the NotIn predicate on the "context_id" field.
func ContextIDNotIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldContextID, vs...))
}

// ContextIDGT applies the GT predicate on the "context_id" field.
func ContextIDGT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldContextID, v))
}

// ContextIDGTE applies the GTE predicate on the "context_id" field.
func ContextIDGTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldContextID, v))
}

// ContextIDLT applies the LT predicate on the "context_id" field.
func ContextIDLT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldContextID, v))
}

// ContextIDLTE applies the LTE predicate on the "context_id" field.
func ContextIDLTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldContextID, v))
}

// ContextIDContains applies the Contains predicate on the "context_id" field.
func ContextIDContains(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContains(FieldContextID, v))
}

// ContextIDHasPrefix applies the HasPrefix predicate on the "context_id" field.
func ContextIDHasPrefix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasPrefix(FieldContextID, v))
}

// ContextIDHasSuffix applies the HasSuffix predicate on the "context_id" field.
func ContextIDHasSuffix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasSuffix(FieldContextID, v))
}

// ContextIDIsNil applies the IsNil predicate on the "context_id" field.
func ContextIDIsNil() predicate.Attempt {
	return predicate.Attempt(sql.FieldIsNull(FieldContextID))
}

// ContextIDNotNil applies the NotNil predicate on the "context_id" field.
func ContextIDNotNil() predicate.Attempt {
	return predicate.Attempt(sql.FieldNotNull(FieldContextID))
}

// ContextIDEqualFold applies the EqualFold predicate on the "context_id" field.
func ContextIDEqualFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEqualFold(FieldContextID, v))
}

// ContextIDContainsFold applies the ContainsFold predicate on the "context_id" field.
func ContextIDContainsFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContainsFold(FieldContextID, v))
}

// ModuleIDEQ applies the EQ predicate on the "module_id" field.
func ModuleIDEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldModuleID, v))
}

// ModuleIDNEQ applies the NEQ predicate on the "module_id" field.
func ModuleIDNEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldModuleID, v))
}

// ModuleIDIn applies the In predicate on the "module_id" field.
func ModuleIDIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldModuleID, vs...))
}

// ModuleIDNotIn applies the NotIn predicate on the "module_id" field.
func ModuleIDNotIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldModuleID, vs...))
}

// ModuleIDGT applies the GT predicate on the "module_id" field.
func ModuleIDGT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldModuleID, v))
}

// ModuleIDGTE applies the GTE predicate on the "module_id" field.
func ModuleIDGTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldModuleID, v))
}

// ModuleIDLT applies the LT predicate on the "module_id" field.
func ModuleIDLT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldModuleID, v))
}

// ModuleIDLTE applies the LTE predicate on the "module_id" field.
func ModuleIDLTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldModuleID, v))
}

// ModuleIDContains applies the Contains predicate on the "module_id" field.
func ModuleIDContains(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContains(FieldModuleID, v))
}

// ModuleIDHasPrefix applies the HasPrefix predicate on the "module_id" field.
func ModuleIDHasPrefix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasPrefix(FieldModuleID, v))
}

// ModuleIDHasSuffix applies the HasSuffix predicate on the "module_id" field.
func ModuleIDHasSuffix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasSuffix(FieldModuleID, v))
}

// ModuleIDIsNil applies the IsNil predicate on the "module_id" field.
func ModuleIDIsNil() predicate.Attempt {
	return predicate.Attempt(sql.FieldIsNull(FieldModuleID))
}

// ModuleIDNotNil applies the NotNil predicate on the "module_id" field.
func ModuleIDNotNil() predicate.Attempt {
	return predicate.Attempt(sql.FieldNotNull(FieldModuleID))
}

// ModuleIDEqualFold applies the EqualFold predicate on the "module_id" field.
func ModuleIDEqualFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEqualFold(FieldModuleID, v))
}

// ModuleIDContainsFold applies the ContainsFold predicate on the "module_id" field.
func ModuleIDContainsFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContainsFold(FieldModuleID, v))
}

// SubmittedAnswerEQ applies the EQ predicate on the "submitted_answer" field.
func SubmittedAnswerEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldSubmittedAnswer, v))
}

// SubmittedAnswerNEQ applies the NEQ predicate on the "submitted_answer" field.
func SubmittedAnswerNEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldSubmittedAnswer, v))
}

// SubmittedAnswerIn applies the In predicate on the "submitted_answer" field.
func SubmittedAnswerIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldSubmittedAnswer, vs...))
}

// SubmittedAnswerNotIn applies the NotIn predicate on the "submitted_answer" field.
func SubmittedAnswerNotIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldSubmittedAnswer, vs...))
}

// SubmittedAnswerGT applies the GT predicate on the "submitted_answer" field.
func SubmittedAnswerGT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldSubmittedAnswer, v))
}

// SubmittedAnswerGTE applies the GTE predicate on the "submitted_answer" field.
func SubmittedAnswerGTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldSubmittedAnswer, v))
}

// SubmittedAnswerLT applies the LT predicate on the "submitted_answer" field.
func SubmittedAnswerLT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldSubmittedAnswer, v))
}

// SubmittedAnswerLTE applies the LTE predicate on the "submitted_answer" field.
func SubmittedAnswerLTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldSubmittedAnswer, v))
}

// SubmittedAnswerContains applies the Contains predicate on the "submitted_answer" field.
func SubmittedAnswerContains(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContains(FieldSubmittedAnswer, v))
}

// SubmittedAnswerHasPrefix applies the HasPrefix predicate on the "submitted_answer" field.
func SubmittedAnswerHasPrefix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasPrefix(FieldSubmittedAnswer, v))
}

// SubmittedAnswerHasSuffix applies the HasSuffix predicate on the "submitted_answer" field.
func SubmittedAnswerHasSuffix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasSuffix(FieldSubmittedAnswer, v))
}

// SubmittedAnswerEqualFold applies the EqualFold predicate on the "submitted_answer" field.
func SubmittedAnswerEqualFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEqualFold(FieldSubmittedAnswer, v))
}

// SubmittedAnswerContainsFold applies the ContainsFold predicate on the "submitted_answer" field.
func SubmittedAnswerContainsFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContainsFold(FieldSubmittedAnswer, v))
}

// IsCorrectEQ applies the EQ predicate on the "is_correct" field.
func IsCorrectEQ(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldIsCorrect, v))
}

// IsCorrectNEQ applies the NEQ predicate on the "is_correct" field.
func IsCorrectNEQ(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldIsCorrect, v))
}

// TimeSpentSecEQ applies the EQ predicate on the "time_spent_sec" field.
func TimeSpentSecEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldTimeSpentSec, v))
}

// TimeSpentSecNEQ applies the NEQ predicate on the "time_spent_sec" field.
func TimeSpentSecNEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldTimeSpentSec, v))
}

// TimeSpentSecIn applies the In predicate on the "time_spent_sec" field.
func TimeSpentSecIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldTimeSpentSec, vs...))
}

// TimeSpentSecNotIn applies the NotIn predicate on the "time_spent_sec" field.
func TimeSpentSecNotIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldTimeSpentSec, vs...))
}

// TimeSpentSecGT applies the GT predicate on the "time_spent_sec" field.
func TimeSpentSecGT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldTimeSpentSec, v))
}

// TimeSpentSecGTE applies the GTE predicate on the "time_spent_sec" field.
func TimeSpentSecGTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldTimeSpentSec, v))
}

// TimeSpentSecLT applies the LT predicate on the "time_spent_sec" field.
func TimeSpentSecLT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldTimeSpentSec, v))
}

// TimeSpentSecLTE applies the LTE predicate on the "time_spent_sec" field.
func TimeSpentSecLTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldTimeSpentSec, v))
}

// ErrorTagsIsNil applies the IsNil predicate on the "error_tags" field.
func ErrorTagsIsNil() predicate.Attempt {
	return predicate.Attempt(sql.FieldIsNull(FieldErrorTags))
}

// ErrorTagsNotNil applies the NotNil predicate on the "error_tags" field.
func ErrorTagsNotNil() predicate.Attempt {
	return predicate.Attempt(sql.FieldNotNull(FieldErrorTags))
}

// ConstructImpactsIsNil applies the IsNil predicate on the "construct_impacts" field.
func ConstructImpactsIsNil() predicate.Attempt {
	return predicate.Attempt(sql.FieldIsNull(FieldConstructImpacts))
}

// ConstructImpactsNotNil applies the NotNil predicate on the "construct_impacts" field.
func ConstructImpactsNotNil() predicate.Attempt {
	return predicate.Attempt(sql.FieldNotNull(FieldConstructImpacts))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Attempt) predicate.Attempt {
	return predicate.Attempt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Attempt) predicate.Attempt {
	return predicate.Attempt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Attempt) predicate.Attempt {
	return predicate.Attempt(sql.NotPredicates(p))
}
