// Code generated by ent, DO NOT EDIT.

package userprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/prepwise/backend/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldUserID, v))
}

// PackageLengthDays applies equality check predicate on the "package_length_days" field. It's identical to PackageLengthDaysEQ.
func PackageLengthDays(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldPackageLengthDays, v))
}

// DailyMinutes applies equality check predicate on the "daily_minutes" field. It's identical to DailyMinutesEQ.
func DailyMinutes(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldDailyMinutes, v))
}

// PackageStartedAt applies equality check predicate on the "package_started_at" field. It's identical to PackageStartedAtEQ.
func PackageStartedAt(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldPackageStartedAt, v))
}

// Phase applies equality check predicate on the "phase" field. It's identical to PhaseEQ.
func Phase(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldPhase, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContainsFold(FieldUserID, v))
}

// PackageLengthDaysEQ applies the EQ predicate on the "package_length_days" field.
func PackageLengthDaysEQ(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldPackageLengthDays, v))
}

// PackageLengthDaysNEQ applies the NEQ predicate on the "package_length_days" field.
func PackageLengthDaysNEQ(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldPackageLengthDays, v))
}

// PackageLengthDaysIn applies the In predicate on the "package_length_days" field.
func PackageLengthDaysIn(vs ...int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldPackageLengthDays, vs...))
}

// PackageLengthDaysNotIn applies the NotIn predicate on the "package_length_days" field.
func PackageLengthDaysNotIn(vs ...int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldPackageLengthDays, vs...))
}

// PackageLengthDaysGT applies the GT predicate on the "package_length_days" field.
func PackageLengthDaysGT(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldPackageLengthDays, v))
}

// PackageLengthDaysGTE applies the GTE predicate on the "package_length_days" field.
func PackageLengthDaysGTE(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldPackageLengthDays, v))
}

// PackageLengthDaysLT applies the LT predicate on the "package_length_days" field.
func PackageLengthDaysLT(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldPackageLengthDays, v))
}

// PackageLengthDaysLTE applies the LTE predicate on the "package_length_days" field.
func PackageLengthDaysLTE(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldPackageLengthDays, v))
}

// DailyMinutesEQ applies the EQ predicate on the "daily_minutes" field.
func DailyMinutesEQ(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldDailyMinutes, v))
}

// DailyMinutesNEQ applies the NEQ predicate on the "daily_minutes" field.
func DailyMinutesNEQ(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldDailyMinutes, v))
}

// DailyMinutesIn applies the In predicate on the "daily_minutes" field.
func DailyMinutesIn(vs ...int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldDailyMinutes, vs...))
}

// DailyMinutesNotIn applies the NotIn predicate on the "daily_minutes" field.
func DailyMinutesNotIn(vs ...int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldDailyMinutes, vs...))
}

// DailyMinutesGT applies the GT predicate on the "daily_minutes" field.
func DailyMinutesGT(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldDailyMinutes, v))
}

// DailyMinutesGTE applies the GTE predicate on the "daily_minutes" field.
func DailyMinutesGTE(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldDailyMinutes, v))
}

// DailyMinutesLT applies the LT predicate on the "daily_minutes" field.
func DailyMinutesLT(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldDailyMinutes, v))
}

// DailyMinutesLTE applies the LTE predicate on the "daily_minutes" field.
func DailyMinutesLTE(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldDailyMinutes, v))
}

// PackageStartedAtEQ applies the EQ predicate on the "package_started_at" field.
func PackageStartedAtEQ(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldPackageStartedAt, v))
}

// PackageStartedAtNEQ applies the NEQ predicate on the "package_started_at" field.
func PackageStartedAtNEQ(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldPackageStartedAt, v))
}

// PackageStartedAtIn applies the In predicate on the "package_started_at" field.
func PackageStartedAtIn(vs ...time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldPackageStartedAt, vs...))
}

// PackageStartedAtNotIn applies the NotIn predicate on the "package_started_at" field.
func PackageStartedAtNotIn(vs ...time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldPackageStartedAt, vs...))
}

// PackageStartedAtGT applies the GT predicate on the "package_started_at" field.
func PackageStartedAtGT(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldPackageStartedAt, v))
}

// PackageStartedAtGTE applies the GTE predicate on the "package_started_at" field.
func PackageStartedAtGTE(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldPackageStartedAt, v))
}

// PackageStartedAtLT applies the LT predicate on the "package_started_at" field.
func PackageStartedAtLT(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldPackageStartedAt, v))
}

// PackageStartedAtLTE applies the LTE predicate on the "package_started_at" field.
func PackageStartedAtLTE(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldPackageStartedAt, v))
}

// PackageStartedAtIsNil applies the IsNil predicate on the "package_started_at" field.
func PackageStartedAtIsNil() predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIsNull(FieldPackageStartedAt))
}

// PackageStartedAtNotNil applies the NotNil predicate on the "package_started_at" field.
func PackageStartedAtNotNil() predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotNull(FieldPackageStartedAt))
}

// PhaseEQ applies the EQ predicate on the "phase" field.
func PhaseEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldPhase, v))
}

// PhaseNEQ applies the NEQ predicate on the "phase" field.
func PhaseNEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldPhase, v))
}

// PhaseIn applies the In predicate on the "phase" field.
func PhaseIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldPhase, vs...))
}

// PhaseNotIn applies the NotIn predicate on the "phase" field.
func PhaseNotIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldPhase, vs...))
}

// PhaseGT applies the GT predicate on the "phase" field.
func PhaseGT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldPhase, v))
}

// PhaseGTE applies the GTE predicate on the "phase" field.
func PhaseGTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldPhase, v))
}

// PhaseLT applies the LT predicate on the "phase" field.
func PhaseLT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldPhase, v))
}

// PhaseLTE applies the LTE predicate on the "phase" field.
func PhaseLTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldPhase, v))
}

// PhaseContains applies the Contains predicate on the "phase" field.
func PhaseContains(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContains(FieldPhase, v))
}

// PhaseHasPrefix applies the HasPrefix predicate on the "phase" field.
func PhaseHasPrefix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasPrefix(FieldPhase, v))
}

// PhaseHasSuffix applies the HasSuffix predicate on the "phase" field.
func PhaseHasSuffix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasSuffix(FieldPhase, v))
}

// PhaseEqualFold applies the EqualFold predicate on the "phase" field.
func PhaseEqualFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEqualFold(FieldPhase, v))
}

// PhaseContainsFold applies the ContainsFold predicate on the "phase" field.
func PhaseContainsFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContainsFold(FieldPhase, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserProfile) predicate.UserProfile {
	return predicate.UserProfile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserProfile) predicate.UserProfile {
	return predicate.UserProfile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserProfile) predicate.UserProfile {
	return predicate.UserProfile(sql.NotPredicates(p))
}
