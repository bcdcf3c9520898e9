// Code generated by ent, DO NOT EDIT.

package skillstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/prepwise/backend/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SkillState {
	return predicate.SkillState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SkillState {
	return predicate.SkillState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SkillState {
	return predicate.SkillState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SkillState {
	return predicate.SkillState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SkillState {
	return predicate.SkillState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SkillState {
	return predicate.SkillState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SkillState {
	return predicate.SkillState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SkillState {
	return predicate.SkillState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SkillState {
	return predicate.SkillState(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SkillState {
	return predicate.SkillState(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SkillState {
	return predicate.SkillState(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SkillState {
	return predicate.SkillState(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SkillState {
	return predicate.SkillState(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.SkillState {
	return predicate.SkillState(sql.FieldEQ(FieldUserID, v))
}

// SkillID applies equality check predicate on the "skill_id" field. It's identical to SkillIDEQ.
func SkillID(v string) predicate.SkillState {
	return predicate.SkillState(sql.FieldEQ(FieldSkillID, v))
}

// AttemptCount applies equality check predicate on the "attempt_count" field. It's identical to AttemptCountEQ.
func AttemptCount(v int) predicate.SkillState {
	return predicate.SkillState(sql.FieldEQ(FieldAttemptCount, v))
}

// CorrectCount applies equality check predicate on the "correct_count" field. It's identical to CorrectCountEQ.
func CorrectCount(v int) predicate.SkillState {
	return predicate.SkillState(sql.FieldEQ(FieldCorrectCount, v))
}

// Accuracy applies equality check predicate on the "accuracy" field. It's identical to AccuracyEQ.
func Accuracy(v float64) predicate.SkillState {
	return predicate.SkillState(sql.FieldEQ(FieldAccuracy, v))
}

// TotalTimeSec applies equality check predicate on the "total_time_sec" field. It's identical to TotalTimeSecEQ.
func TotalTimeSec(v int) predicate.SkillState {
	return predicate.SkillState(sql.FieldEQ(FieldTotalTimeSec, v))
}

// AvgTimeSec applies equality check predicate on the "avg_time_sec" field. It's identical to AvgTimeSecEQ.
func AvgTimeSec(v float64) predicate.SkillState {
	return predicate.SkillState(sql.FieldEQ(FieldAvgTimeSec, v))
}

// MasteryLevel applies equality check predicate on the "mastery_level" field. It's identical to MasteryLevelEQ.
func MasteryLevel(v string) predicate.SkillState {
	return predicate.SkillState(sql.FieldEQ(FieldMasteryLevel, v))
}

// LastAttemptedAt applies equality check predicate on the "last_attempted_at" field. It's identical to LastAttemptedAtEQ.
func LastAttemptedAt(v time.Time) predicate.SkillState {
	return predicate.SkillState(sql.FieldEQ(FieldLastAttemptedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SkillState {
	return predicate.SkillState(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SkillState {
	return predicate.SkillState(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SkillState {
	return predicate.SkillState(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SkillState {
	return predicate.SkillState(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SkillState {
	return predicate.SkillState(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SkillState {
	return predicate.SkillState(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SkillState {
	return predicate.SkillState(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SkillState {
	return predicate.SkillState(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SkillState {
	return predicate.SkillState(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SkillState {
	return predicate.SkillState(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SkillState {
	return predicate.SkillState(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SkillState {
	return predicate.SkillState(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SkillState {
	return predicate.SkillState(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SkillState {
	return predicate.SkillState(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SkillState {
	return predicate.SkillState(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SkillState {
	return predicate.SkillState(sql.FieldLTE(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.SkillState {
	return predicate.SkillState(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.SkillState {
	return predicate.SkillState(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.SkillState {
	return predicate.SkillState(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.SkillState {
	return predicate.SkillState(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.SkillState {
	return predicate.SkillState(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.SkillState {
	return predicate.SkillState(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.SkillState {
	return predicate.SkillState(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.SkillState {
	return predicate.SkillState(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.SkillState {
	return predicate.SkillState(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.SkillState {
	return predicate.SkillState(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.SkillState {
	return predicate.SkillState(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.SkillState {
	return predicate.SkillState(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.SkillState {
	return predicate.SkillState(sql.FieldContainsFold(FieldUserID, v))
}

// SkillIDEQ applies the EQ predicate on the "skill_id" field.
func SkillIDEQ(v string) predicate.SkillState {
	return predicate.SkillState(sql.FieldEQ(FieldSkillID, v))
}

// SkillIDNEQ applies the NEQ predicate on the "skill_id" field.
func SkillIDNEQ(v string) predicate.SkillState {
	return predicate.SkillState(sql.FieldNEQ(FieldSkillID, v))
}

// SkillIDIn applies the In predicate on the "skill_id" field.
func SkillIDIn(vs ...string) predicate.SkillState {
	return predicate.SkillState(sql.FieldIn(FieldSkillID, vs...))
}

// SkillIDNotIn applies the NotIn predicate on the "skill_id" field.
func SkillIDNotIn(vs ...string) predicate.SkillState {
	return predicate.SkillState(sql.FieldNotIn(FieldSkillID, vs...))
}

// SkillIDGT applies the GT predicate on the "skill_id" field.
func SkillIDGT(v string) predicate.SkillState {
	return predicate.SkillState(sql.FieldGT(FieldSkillID, v))
}

// SkillIDGTE applies the GTE predicate on the "skill_id" field.
func SkillIDGTE(v string) predicate.SkillState {
	return predicate.SkillState(sql.FieldGTE(FieldSkillID, v))
}

// SkillIDLT applies the LT predicate on the "skill_id" field.
func SkillIDLT(v string) predicate.SkillState {
	return predicate.SkillState(sql.FieldLT(FieldSkillID, v))
}

// SkillIDLTE applies the LTE predicate on the "skill_id" field.
func SkillIDLTE(v string) predicate.SkillState {
	return predicate.SkillState(sql.FieldLTE(FieldSkillID, v))
}

// SkillIDContains applies the Contains predicate on the "skill_id" field.
func SkillIDContains(v string) predicate.SkillState {
	return predicate.SkillState(sql.FieldContains(FieldSkillID, v))
}

// SkillIDHasPrefix applies the HasPrefix predicate on the "skill_id" field.
func SkillIDHasPrefix(v string) predicate.SkillState {
	return predicate.SkillState(sql.FieldHasPrefix(FieldSkillID, v))
}

// SkillIDHasSuffix applies the HasSuffix predicate on the "skill_id" field.
func SkillIDHasSuffix(v string) predicate.SkillState {
	return predicate.SkillState(sql.FieldHasSuffix(FieldSkillID, v))
}

// SkillIDEqualFold applies the EqualFold predicate on the "skill_id" field.
func SkillIDEqualFold(v string) predicate.SkillState {
	return predicate.SkillState(sql.FieldEqualFold(FieldSkillID, v))
}

// SkillIDContainsFold applies the ContainsFold predicate on the "skill_id" field.
func SkillIDContainsFold(v string) predicate.SkillState {
	return predicate.SkillState(sql.FieldContainsFold(FieldSkillID, v))
}

// AttemptCountEQ applies the EQ predicate on the "attempt_count" field.
func AttemptCountEQ(v int) predicate.SkillState {
	return predicate.SkillState(sql.FieldEQ(FieldAttemptCount, v))
}

// AttemptCountNEQ applies the NEQ predicate on the "attempt_count" field.
func AttemptCountNEQ(v int) predicate.SkillState {
	return predicate.SkillState(sql.FieldNEQ(FieldAttemptCount, v))
}

// AttemptCountIn applies the In predicate on the "attempt_count" field.
func AttemptCountIn(vs ...int) predicate.SkillState {
	return predicate.SkillState(sql.FieldIn(FieldAttemptCount, vs...))
}

// AttemptCountNotIn applies the NotIn predicate on the "attempt_count" field.
func AttemptCountNotIn(vs ...int) predicate.SkillState {
	return predicate.SkillState(sql.FieldNotIn(FieldAttemptCount, vs...))
}

// AttemptCountGT applies the GT predicate on the "attempt_count" field.
func AttemptCountGT(v int) predicate.SkillState {
	return predicate.SkillState(sql.FieldGT(FieldAttemptCount, v))
}

// AttemptCountGTE applies the GTE predicate on the "attempt_count" field.
func AttemptCountGTE(v int) predicate.SkillState {
	return predicate.SkillState(sql.FieldGTE(FieldAttemptCount, v))
}

// AttemptCountLT applies the LT predicate on the "attempt_count" field.
func AttemptCountLT(v int) predicate.SkillState {
	return predicate.SkillState(sql.FieldLT(FieldAttemptCount, v))
}

// AttemptCountLTE applies the LTE predicate on the "attempt_count" field.
func AttemptCountLTE(v int) predicate.SkillState {
	return predicate.SkillState(sql.FieldLTE(FieldAttemptCount, v))
}

// CorrectCountEQ applies the EQ predicate on the "correct_count" field.
func CorrectCountEQ(v int) predicate.SkillState {
	return predicate.SkillState(sql.FieldEQ(FieldCorrectCount, v))
}

// CorrectCountNEQ applies the NEQ predicate on the "correct_count" field.
func CorrectCountNEQ(v int) predicate.SkillState {
	return predicate.SkillState(sql.FieldNEQ(FieldCorrectCount, v))
}

// CorrectCountIn applies the In predicate on the "correct_count" field.
func CorrectCountIn(vs ...int) predicate.SkillState {
	return predicate.SkillState(sql.FieldIn(FieldCorrectCount, vs...))
}

// CorrectCountNotIn applies the NotIn predicate on the "correct_count" field.
func CorrectCountNotIn(vs ...int) predicate.SkillState {
	return predicate.SkillState(sql.FieldNotIn(FieldCorrectCount, vs...))
}

// CorrectCountGT applies the GT predicate on the "correct_count" field.
func CorrectCountGT(v int) predicate.SkillState {
	return predicate.SkillState(sql.FieldGT(FieldCorrectCount, v))
}

// CorrectCountGTE applies the GTE predicate on the "correct_count" field.
func CorrectCountGTE(v int) predicate.SkillState {
	return predicate.SkillState(sql.FieldGTE(FieldCorrectCount, v))
}

// CorrectCountLT applies the LT predicate on the "correct_count" field.
func CorrectCountLT(v int) predicate.SkillState {
	return predicate.SkillState(sql.FieldLT(FieldCorrectCount, v))
}

// CorrectCountLTE applies the LTE predicate on the "correct_count" field.
func CorrectCountLTE(v int) predicate.SkillState {
	return predicate.SkillState(sql.FieldLTE(FieldCorrectCount, v))
}

// AccuracyEQ applies the EQ predicate on the "accuracy" field.
func AccuracyEQ(v float64) predicate.SkillState {
	return predicate.SkillState(sql.FieldEQ(FieldAccuracy, v))
}

// AccuracyNEQ applies the NEQ predicate on the "accuracy" field.
func AccuracyNEQ(v float64) predicate.SkillState {
	return predicate.SkillState(sql.FieldNEQ(FieldAccuracy, v))
}

// AccuracyIn applies the In predicate on the "accuracy" field.
func AccuracyIn(vs ...float64) predicate.SkillState {
	return predicate.SkillState(sql.FieldIn(FieldAccuracy, vs...))
}

// AccuracyNotIn applies the NotIn predicate on the "accuracy" field.
func AccuracyNotIn(vs ...float64) predicate.SkillState {
	return predicate.SkillState(sql.FieldNotIn(FieldAccuracy, vs...))
}

// AccuracyGT applies the GT predicate on the "accuracy" field.
func AccuracyGT(v float64) predicate.SkillState {
	return predicate.SkillState(sql.FieldGT(FieldAccuracy, v))
}

// AccuracyGTE applies the GTE predicate on the "accuracy" field.
func AccuracyGTE(v float64) predicate.SkillState {
	return predicate.SkillState(sql.FieldGTE(FieldAccuracy, v))
}

// AccuracyLT applies the LT predicate on the "accuracy" field.
func AccuracyLT(v float64) predicate.SkillState {
	return predicate.SkillState(sql.FieldLT(FieldAccuracy, v))
}

// AccuracyLTE applies the LTE predicate on the "accuracy" field.
func AccuracyLTE(v float64) predicate.SkillState {
	return predicate.SkillState(sql.FieldLTE(FieldAccuracy, v))
}

// TotalTimeSecEQ applies the EQ predicate on the "total_time_sec" field.
func TotalTimeSecEQ(v int) predicate.SkillState {
	return predicate.SkillState(sql.FieldEQ(FieldTotalTimeSec, v))
}

// TotalTimeSecNEQ applies the NEQ predicate on the "total_time_sec" field.
func TotalTimeSecNEQ(v int) predicate.SkillState {
	return predicate.SkillState(sql.FieldNEQ(FieldTotalTimeSec, v))
}

// TotalTimeSecIn applies the In predicate on the "total_time_sec" field.
func TotalTimeSecIn(vs ...int) predicate.SkillState {
	return predicate.SkillState(sql.FieldIn(FieldTotalTimeSec, vs...))
}

// TotalTimeSecNotIn applies the NotIn predicate on the "total_time_sec" field.
func TotalTimeSecNotIn(vs ...int) predicate.SkillState {
	return predicate.SkillState(sql.FieldNotIn(FieldTotalTimeSec, vs...))
}

// TotalTimeSecGT applies the GT predicate on the "total_time_sec" field.
func TotalTimeSecGT(v int) predicate.SkillState {
	return predicate.SkillState(sql.FieldGT(FieldTotalTimeSec, v))
}

// TotalTimeSecGTE applies the GTE predicate on the "total_time_sec" field.
func TotalTimeSecGTE(v int) predicate.SkillState {
	return predicate.SkillState(sql.FieldGTE(FieldTotalTimeSec, v))
}

// TotalTimeSecLT applies the LT predicate on the "total_time_sec" field.
func TotalTimeSecLT(v int) predicate.SkillState {
	return predicate.SkillState(sql.FieldLT(FieldTotalTimeSec, v))
}

// TotalTimeSecLTE applies the LTE predicate on the "total_time_sec" field.
func TotalTimeSecLTE(v int) predicate.SkillState {
	return predicate.SkillState(sql.FieldLTE(FieldTotalTimeSec, v))
}

// AvgTimeSecEQ applies the EQ predicate on the "avg_time_sec" field.
func AvgTimeSecEQ(v float64) predicate.SkillState {
	return predicate.SkillState(sql.FieldEQ(FieldAvgTimeSec, v))
}

// AvgTimeSecNEQ applies the NEQ predicate on the "avg_time_sec" field.
func AvgTimeSecNEQ(v float64) predicate.SkillState {
	return predicate.SkillState(sql.FieldNEQ(FieldAvgTimeSec, v))
}

// AvgTimeSecIn applies the In predicate on the "avg_time_sec" field.
func AvgTimeSecIn(vs ...float64) predicate.SkillState {
	return predicate.SkillState(sql.FieldIn(FieldAvgTimeSec, vs...))
}

// AvgTimeSecNotIn applies the NotIn predicate on the "avg_time_sec" field.
func AvgTimeSecNotIn(vs ...float64) predicate.SkillState {
	return predicate.SkillState(sql.FieldNotIn(FieldAvgTimeSec, vs...))
}

// AvgTimeSecGT applies the GT predicate on the "avg_time_sec" field.
func AvgTimeSecGT(v float64) predicate.SkillState {
	return predicate.SkillState(sql.FieldGT(FieldAvgTimeSec, v))
}

// AvgTimeSecGTE applies the GTE predicate on the "avg_time_sec" field.
func AvgTimeSecGTE(v float64) predicate.SkillState {
	return predicate.SkillState(sql.FieldGTE(FieldAvgTimeSec, v))
}

// AvgTimeSecLT applies the LT predicate on the "avg_time_sec" field.
func AvgTimeSecLT(v float64) predicate.SkillState {
	return predicate.SkillState(sql.FieldLT(FieldAvgTimeSec, v))
}

// AvgTimeSecLTE applies the LTE predicate on the "avg_time_sec" field.
func AvgTimeSecLTE(v float64) predicate.SkillState {
	return predicate.SkillState(sql.FieldLTE(FieldAvgTimeSec, v))
}

// MasteryLevelEQ applies the EQ predicate on the "mastery_level" field.
func MasteryLevelEQ(v string) predicate.SkillState {
	return predicate.SkillState(sql.FieldEQ(FieldMasteryLevel, v))
}

// MasteryLevelNEQ applies the NEQ predicate on the "mastery_level" field.
func MasteryLevelNEQ(v string) predicate.SkillState {
	return predicate.SkillState(sql.FieldNEQ(FieldMasteryLevel, v))
}

// MasteryLevelIn applies the In predicate on the "mastery_level" field.
func MasteryLevelIn(vs ...string) predicate.SkillState {
	return predicate.SkillState(sql.FieldIn(FieldMasteryLevel, vs...))
}

// MasteryLevelNotIn applies the NotIn predicate on the "mastery_level" field.
func MasteryLevelNotIn(vs ...string) predicate.SkillState {
	return predicate.SkillState(sql.FieldNotIn(FieldMasteryLevel, vs...))
}

// MasteryLevelGT applies the GT predicate on the "mastery_level" field.
func MasteryLevelGT(v string) predicate.SkillState {
	return predicate.SkillState(sql.FieldGT(FieldMasteryLevel, v))
}

// MasteryLevelGTE applies the GTE predicate on the "mastery_level" field.
func MasteryLevelGTE(v string) predicate.SkillState {
	return predicate.SkillState(sql.FieldGTE(FieldMasteryLevel, v))
}

// MasteryLevelLT applies the LT predicate on the "mastery_level" field.
func MasteryLevelLT(v string) predicate.SkillState {
	return predicate.SkillState(sql.FieldLT(FieldMasteryLevel, v))
}

// MasteryLevelLTE applies the LTE predicate on the "mastery_level" field.
func MasteryLevelLTE(v string) predicate.SkillState {
	return predicate.SkillState(sql.FieldLTE(FieldMasteryLevel, v))
}

// MasteryLevelContains applies the Contains predicate on the "mastery_level" field.
func MasteryLevelContains(v string) predicate.SkillState {
	return predicate.SkillState(sql.FieldContains(FieldMasteryLevel, v))
}

// MasteryLevelHasPrefix applies the HasPrefix predicate on the "mastery_level" field.
func MasteryLevelHasPrefix(v string) predicate.SkillState {
	return predicate.SkillState(sql.FieldHasPrefix(FieldMasteryLevel, v))
}

// MasteryLevelHasSuffix applies the HasSuffix predicate on the "mastery_level" field.
func MasteryLevelHasSuffix(v string) predicate.SkillState {
	return predicate.SkillState(sql.FieldHasSuffix(FieldMasteryLevel, v))
}

// MasteryLevelEqualFold applies the EqualFold predicate on the "mastery_level" field.
func MasteryLevelEqualFold(v string) predicate.SkillState {
	return predicate.SkillState(sql.FieldEqualFold(FieldMasteryLevel, v))
}

// MasteryLevelContainsFold applies the ContainsFold predicate on the "mastery_level" field.
func MasteryLevelContainsFold(v string) predicate.SkillState {
	return predicate.SkillState(sql.FieldContainsFold(FieldMasteryLevel, v))
}

// LastAttemptedAtEQ applies the EQ predicate on the "last_attempted_at" field.
func LastAttemptedAtEQ(v time.Time) predicate.SkillState {
	return predicate.SkillState(sql.FieldEQ(FieldLastAttemptedAt, v))
}

// LastAttemptedAtNEQ applies the NEQ predicate on the "last_attempted_at" field.
func LastAttemptedAtNEQ(v time.Time) predicate.SkillState {
	return predicate.SkillState(sql.FieldNEQ(FieldLastAttemptedAt, v))
}

// LastAttemptedAtIn applies the In predicate on the "last_attempted_at" field.
func LastAttemptedAtIn(vs ...time.Time) predicate.SkillState {
	return predicate.SkillState(sql.FieldIn(FieldLastAttemptedAt, vs...))
}

// LastAttemptedAtNotIn applies the NotIn predicate on the "last_attempted_at" field.
func LastAttemptedAtNotIn(vs ...time.Time) predicate.SkillState {
	return predicate.SkillState(sql.FieldNotIn(FieldLastAttemptedAt, vs...))
}

// LastAttemptedAtGT applies the GT predicate on the "last_attempted_at" field.
func LastAttemptedAtGT(v time.Time) predicate.SkillState {
	return predicate.SkillState(sql.FieldGT(FieldLastAttemptedAt, v))
}

// LastAttemptedAtGTE applies the GTE predicate on the "last_attempted_at" field.
func LastAttemptedAtGTE(v time.Time) predicate.SkillState {
	return predicate.SkillState(sql.FieldGTE(FieldLastAttemptedAt, v))
}

// LastAttemptedAtLT applies the LT predicate on the "last_attempted_at" field.
func LastAttemptedAtLT(v time.Time) predicate.SkillState {
	return predicate.SkillState(sql.FieldLT(FieldLastAttemptedAt, v))
}

// LastAttemptedAtLTE applies the LTE predicate on the "last_attempted_at" field.
func LastAttemptedAtLTE(v time.Time) predicate.SkillState {
	return predicate.SkillState(sql.FieldLTE(FieldLastAttemptedAt, v))
}

// LastAttemptedAtIsNil applies the IsNil predicate on the "last_attempted_at" field.
func LastAttemptedAtIsNil() predicate.SkillState {
	return predicate.SkillState(sql.FieldIsNull(FieldLastAttemptedAt))
}

// LastAttemptedAtNotNil applies the NotNil predicate on the "last_attempted_at" field.
func LastAttemptedAtNotNil() predicate.SkillState {
	return predicate.SkillState(sql.FieldNotNull(FieldLastAttemptedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SkillState) predicate.SkillState {
	return predicate.SkillState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SkillState) predicate.SkillState {
	return predicate.SkillState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SkillState) predicate.SkillState {
	return predicate.SkillState(sql.NotPredicates(p))
}
