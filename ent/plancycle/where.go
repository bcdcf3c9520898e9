// Code generated by ent, DO NOT EDIT.

package plancycle

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/prepwise/backend/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldEQ(FieldUserID, v))
}

// TaskCount applies equality check predicate on the "task_count" field. It's identical to TaskCountEQ.
func TaskCount(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldEQ(FieldTaskCount, v))
}

// FocusedDrillCount applies equality check predicate on the "focused_drill_count" field. It's identical to FocusedDrillCountEQ.
func FocusedDrillCount(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldEQ(FieldFocusedDrillCount, v))
}

// MixedDrillCount applies equality check predicate on the "mixed_drill_count" field. It's identical to MixedDrillCountEQ.
func MixedDrillCount(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldEQ(FieldMixedDrillCount, v))
}

// MockCount applies equality check predicate on the "mock_count" field. It's identical to MockCountEQ.
func MockCount(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldEQ(FieldMockCount, v))
}

// FlashcardCount applies equality check predicate on the "flashcard_count" field. It's identical to FlashcardCountEQ.
func FlashcardCount(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldEQ(FieldFlashcardCount, v))
}

// ReviewCount applies equality check predicate on the "review_count" field. It's identical to ReviewCountEQ.
func ReviewCount(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldEQ(FieldReviewCount, v))
}

// DaysRemaining applies equality check predicate on the "days_remaining" field. It's identical to DaysRemainingEQ.
func DaysRemaining(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldEQ(FieldDaysRemaining, v))
}

// WeakSkillCount applies equality check predicate on the "weak_skill_count" field. It's identical to WeakSkillCountEQ.
func WeakSkillCount(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldEQ(FieldWeakSkillCount, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldEQ(FieldStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldLTE(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldContainsFold(FieldUserID, v))
}

// TaskCountEQ applies the EQ predicate on the "task_count" field.
func TaskCountEQ(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldEQ(FieldTaskCount, v))
}

// TaskCountNEQ applies the NEQ predicate on the "task_count" field.
func TaskCountNEQ(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldNEQ(FieldTaskCount, v))
}

// TaskCountIn applies the In predicate on the "task_count" field.
func TaskCountIn(vs ...int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldIn(FieldTaskCount, vs...))
}

// TaskCountNotIn applies the NotIn predicate on the "task_count" field.
func TaskCountNotIn(vs ...int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldNotIn(FieldTaskCount, vs...))
}

// TaskCountGT applies the GT predicate on the "task_count" field.
func TaskCountGT(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldGT(FieldTaskCount, v))
}

// TaskCountGTE applies the GTE predicate on the "task_count" field.
func TaskCountGTE(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldGTE(FieldTaskCount, v))
}

// TaskCountLT applies the LT predicate on the "task_count" field.
func TaskCountLT(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldLT(FieldTaskCount, v))
}

// TaskCountLTE applies the LTE predicate on the "task_count" field.
func TaskCountLTE(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldLTE(FieldTaskCount, v))
}

// FocusedDrillCountEQ applies the EQ predicate on the "focused_drill_count" field.
func FocusedDrillCountEQ(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldEQ(FieldFocusedDrillCount, v))
}

// FocusedDrillCountNEQ applies the NEQ predicate on the "focused_drill_count" field.
func FocusedDrillCountNEQ(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldNEQ(FieldFocusedDrillCount, v))
}

// FocusedDrillCountIn applies the In predicate on the "focused_drill_count" field.
func FocusedDrillCountIn(vs ...int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldIn(FieldFocusedDrillCount, vs...))
}

// FocusedDrillCountNotIn applies the NotIn predicate on the "focused_drill_count" field.
func FocusedDrillCountNotIn(vs ...int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldNotIn(FieldFocusedDrillCount, vs...))
}

// FocusedDrillCountGT applies the GT predicate on the "focused_drill_count" field.
func FocusedDrillCountGT(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldGT(FieldFocusedDrillCount, v))
}

// FocusedDrillCountGTE applies the GTE predicate on the "focused_drill_count" field.
func FocusedDrillCountGTE(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldGTE(FieldFocusedDrillCount, v))
}

// FocusedDrillCountLT applies the LT predicate on the "focused_drill_count" field.
func FocusedDrillCountLT(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldLT(FieldFocusedDrillCount, v))
}

// FocusedDrillCountLTE applies the LTE predicate on the "focused_drill_count" field.
func FocusedDrillCountLTE(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldLTE(FieldFocusedDrillCount, v))
}

// MixedDrillCountEQ applies the EQ predicate on the "mixed_drill_count" field.
func MixedDrillCountEQ(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldEQ(FieldMixedDrillCount, v))
}

// MixedDrillCountNEQ applies the NEQ predicate on the "mixed_drill_count" field.
func MixedDrillCountNEQ(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldNEQ(FieldMixedDrillCount, v))
}

// MixedDrillCountIn applies the In predicate on the "mixed_drill_count" field.
func MixedDrillCountIn(vs ...int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldIn(FieldMixedDrillCount, vs...))
}

// MixedDrillCountNotIn applies the NotIn predicate on the "mixed_drill_count" field.
func MixedDrillCountNotIn(vs ...int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldNotIn(FieldMixedDrillCount, vs...))
}

// MixedDrillCountGT applies the GT predicate on the "mixed_drill_count" field.
func MixedDrillCountGT(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldGT(FieldMixedDrillCount, v))
}

// MixedDrillCountGTE applies the GTE predicate on the "mixed_drill_count" field.
func MixedDrillCountGTE(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldGTE(FieldMixedDrillCount, v))
}

// MixedDrillCountLT applies the LT predicate on the "mixed_drill_count" field.
func MixedDrillCountLT(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldLT(FieldMixedDrillCount, v))
}

// MixedDrillCountLTE applies the LTE predicate on the "mixed_drill_count" field.
func MixedDrillCountLTE(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldLTE(FieldMixedDrillCount, v))
}

// MockCountEQ applies the EQ predicate on the "mock_count" field.
func MockCountEQ(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldEQ(FieldMockCount, v))
}

// MockCountNEQ applies the NEQ predicate on the "mock_count" field.
func MockCountNEQ(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldNEQ(FieldMockCount, v))
}

// MockCountIn applies the In predicate on the "mock_count" field.
func MockCountIn(vs ...int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldIn(FieldMockCount, vs...))
}

// MockCountNotIn applies the NotIn predicate on the "mock_count" field.
func MockCountNotIn(vs ...int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldNotIn(FieldMockCount, vs...))
}

// MockCountGT applies the GT predicate on the "mock_count" field.
func MockCountGT(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldGT(FieldMockCount, v))
}

// MockCountGTE applies the GTE predicate on the "mock_count" field.
func MockCountGTE(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldGTE(FieldMockCount, v))
}

// MockCountLT applies the LT predicate on the "mock_count" field.
func MockCountLT(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldLT(FieldMockCount, v))
}

// MockCountLTE applies the LTE predicate on the "mock_count" field.
func MockCountLTE(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldLTE(FieldMockCount, v))
}

// FlashcardCountEQ applies the EQ predicate on the "flashcard_count" field.
func FlashcardCountEQ(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldEQ(FieldFlashcardCount, v))
}

// FlashcardCountNEQ applies the NEQ predicate on the "flashcard_count" field.
func FlashcardCountNEQ(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldNEQ(FieldFlashcardCount, v))
}

// FlashcardCountIn applies the In predicate on the "flashcard_count" field.
func FlashcardCountIn(vs ...int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldIn(FieldFlashcardCount, vs...))
}

// FlashcardCountNotIn applies the NotIn predicate on the "flashcard_count" field.
func FlashcardCountNotIn(vs ...int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldNotIn(FieldFlashcardCount, vs...))
}

// FlashcardCountGT applies the GT predicate on the "flashcard_count" field.
func FlashcardCountGT(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldGT(FieldFlashcardCount, v))
}

// FlashcardCountGTE applies the GTE predicate on the "flashcard_count" field.
func FlashcardCountGTE(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldGTE(FieldFlashcardCount, v))
}

// FlashcardCountLT applies the LT predicate on the "flashcard_count" field.
func FlashcardCountLT(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldLT(FieldFlashcardCount, v))
}

// FlashcardCountLTE applies the LTE predicate on the "flashcard_count" field.
func FlashcardCountLTE(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldLTE(FieldFlashcardCount, v))
}

// ReviewCountEQ applies the EQ predicate on the "review_count" field.
func ReviewCountEQ(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldEQ(FieldReviewCount, v))
}

// ReviewCountNEQ applies the NEQ predicate on the "review_count" field.
func ReviewCountNEQ(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldNEQ(FieldReviewCount, v))
}

// ReviewCountIn applies the In predicate on the "review_count" field.
func ReviewCountIn(vs ...int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldIn(FieldReviewCount, vs...))
}

// ReviewCountNotIn applies the NotIn predicate on the "review_count" field.
func ReviewCountNotIn(vs ...int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldNotIn(FieldReviewCount, vs...))
}

// ReviewCountGT applies the GT predicate on the "review_count" field.
func ReviewCountGT(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldGT(FieldReviewCount, v))
}

// ReviewCountGTE applies the GTE predicate on the "review_count" field.
func ReviewCountGTE(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldGTE(FieldReviewCount, v))
}

// ReviewCountLT applies the LT predicate on the "review_count" field.
func ReviewCountLT(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldLT(FieldReviewCount, v))
}

// ReviewCountLTE applies the LTE predicate on the "review_count" field.
func ReviewCountLTE(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldLTE(FieldReviewCount, v))
}

// DaysRemainingEQ applies the EQ predicate on the "days_remaining" field.
func DaysRemainingEQ(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldEQ(FieldDaysRemaining, v))
}

// DaysRemainingNEQ applies the NEQ predicate on the "days_remaining" field.
func DaysRemainingNEQ(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldNEQ(FieldDaysRemaining, v))
}

// DaysRemainingIn applies the In predicate on the "days_remaining" field.
func DaysRemainingIn(vs ...int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldIn(FieldDaysRemaining, vs...))
}

// DaysRemainingNotIn applies the NotIn predicate on the "days_remaining" field.
func DaysRemainingNotIn(vs ...int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldNotIn(FieldDaysRemaining, vs...))
}

// DaysRemainingGT applies the GT predicate on the "days_remaining" field.
func DaysRemainingGT(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldGT(FieldDaysRemaining, v))
}

// DaysRemainingGTE applies the GTE predicate on the "days_remaining" field.
func DaysRemainingGTE(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldGTE(FieldDaysRemaining, v))
}

// DaysRemainingLT applies the LT predicate on the "days_remaining" field.
func DaysRemainingLT(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldLT(FieldDaysRemaining, v))
}

// DaysRemainingLTE applies the LTE predicate on the "days_remaining" field.
func DaysRemainingLTE(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldLTE(FieldDaysRemaining, v))
}

// WeakSkillCountEQ applies the EQ predicate on the "weak_skill_count" field.
func WeakSkillCountEQ(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldEQ(FieldWeakSkillCount, v))
}

// WeakSkillCountNEQ applies the NEQ predicate on the "weak_skill_count" field.
func WeakSkillCountNEQ(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldNEQ(FieldWeakSkillCount, v))
}

// WeakSkillCountIn applies the In predicate on the "weak_skill_count" field.
func WeakSkillCountIn(vs ...int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldIn(FieldWeakSkillCount, vs...))
}

// WeakSkillCountNotIn applies the NotIn predicate on the "weak_skill_count" field.
func WeakSkillCountNotIn(vs ...int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldNotIn(FieldWeakSkillCount, vs...))
}

// WeakSkillCountGT applies the GT predicate on the "weak_skill_count" field.
func WeakSkillCountGT(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldGT(FieldWeakSkillCount, v))
}

// WeakSkillCountGTE applies the GTE predicate on the "weak_skill_count" field.
func WeakSkillCountGTE(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldGTE(FieldWeakSkillCount, v))
}

// WeakSkillCountLT applies the LT predicate on the "weak_skill_count" field.
func WeakSkillCountLT(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldLT(FieldWeakSkillCount, v))
}

// WeakSkillCountLTE applies the LTE predicate on the "weak_skill_count" field.
func WeakSkillCountLTE(v int) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldLTE(FieldWeakSkillCount, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.PlanCycle {
	return predicate.PlanCycle(sql.FieldContainsFold(FieldStatus, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PlanCycle) predicate.PlanCycle {
	return predicate.PlanCycle(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PlanCycle) predicate.PlanCycle {
	return predicate.PlanCycle(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PlanCycle) predicate.PlanCycle {
	return predicate.PlanCycle(sql.NotPredicates(p))
}
