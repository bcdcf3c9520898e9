// Code generated by ent, DO NOT EDIT.

package constructstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/prepwise/backend/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldEQ(FieldUserID, v))
}

// Construct applies equality check predicate on the "construct" field. It's identical to ConstructEQ.
func Construct(v string) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldEQ(FieldConstruct, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldEQ(FieldScore, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldEQ(FieldConfidence, v))
}

// Trend applies equality check predicate on the "trend" field. It's identical to TrendEQ.
func Trend(v string) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldEQ(FieldTrend, v))
}

// DataPoints applies equality check predicate on the "data_points" field. It's identical to DataPointsEQ.
func DataPoints(v int) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldEQ(FieldDataPoints, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldLTE(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldContainsFold(FieldUserID, v))
}

// ConstructEQ applies the EQ predicate on the "construct" field.
func ConstructEQ(v string) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldEQ(FieldConstruct, v))
}

// ConstructNEQ applies the NEQ predicate on the "construct" field.
func ConstructNEQ(v string) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldNEQ(FieldConstruct, v))
}

// ConstructIn applies the In predicate on the "construct" field.
func ConstructIn(vs ...string) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldIn(FieldConstruct, vs...))
}

// ConstructNotIn applies the NotIn predicate on the "construct" field.
func ConstructNotIn(vs ...string) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldNotIn(FieldConstruct, vs...))
}

// ConstructGT applies the GT predicate on the "construct" field.
func ConstructGT(v string) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldGT(FieldConstruct, v))
}

// ConstructGTE applies the GTE predicate on the "construct" field.
func ConstructGTE(v string) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldGTE(FieldConstruct, v))
}

// ConstructLT applies the LT predicate on the "construct" field.
func ConstructLT(v string) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldLT(FieldConstruct, v))
}

// ConstructLTE applies the LTE predicate on the "construct" field.
func ConstructLTE(v string) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldLTE(FieldConstruct, v))
}

// ConstructContains applies the Contains predicate on the "construct" field.
func ConstructContains(v string) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldContains(FieldConstruct, v))
}

// ConstructHasPrefix applies the HasPrefix predicate on the "construct" field.
func ConstructHasPrefix(v string) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldHasPrefix(FieldConstruct, v))
}

// ConstructHasSuffix applies the HasSuffix predicate on the "construct" field.
func ConstructHasSuffix(v string) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldHasSuffix(FieldConstruct, v))
}

// ConstructEqualFold applies the EqualFold predicate on the "construct" field.
func ConstructEqualFold(v string) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldEqualFold(FieldConstruct, v))
}

// ConstructContainsFold applies the ContainsFold predicate on the "construct" field.
func ConstructContainsFold(v string) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldContainsFold(FieldConstruct, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldLTE(FieldScore, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldLTE(FieldConfidence, v))
}

// TrendEQ applies the EQ predicate on the "trend" field.
func TrendEQ(v string) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldEQ(FieldTrend, v))
}

// TrendNEQ applies the NEQ predicate on the "trend" field.
func TrendNEQ(v string) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldNEQ(FieldTrend, v))
}

// TrendIn applies the In predicate on the "trend" field.
func TrendIn(vs ...string) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldIn(FieldTrend, vs...))
}

// TrendNotIn applies the NotIn predicate on the "trend" field.
func TrendNotIn(vs ...string) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldNotIn(FieldTrend, vs...))
}

// TrendGT applies the GT predicate on the "trend" field.
func TrendGT(v string) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldGT(FieldTrend, v))
}

// TrendGTE applies the GTE predicate on the "trend" field.
func TrendGTE(v string) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldGTE(FieldTrend, v))
}

// TrendLT applies the LT predicate on the "trend" field.
func TrendLT(v string) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldLT(FieldTrend, v))
}

// TrendLTE applies the LTE predicate on the "trend" field.
func TrendLTE(v string) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldLTE(FieldTrend, v))
}

// TrendContains applies the Contains predicate on the "trend" field.
func TrendContains(v string) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldContains(FieldTrend, v))
}

// TrendHasPrefix applies the HasPrefix predicate on the "trend" field.
func TrendHasPrefix(v string) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldHasPrefix(FieldTrend, v))
}

// TrendHasSuffix applies the HasSuffix predicate on the "trend" field.
func TrendHasSuffix(v string) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldHasSuffix(FieldTrend, v))
}

// TrendEqualFold applies the EqualFold predicate on the "trend" field.
func TrendEqualFold(v string) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldEqualFold(FieldTrend, v))
}

// TrendContainsFold applies the ContainsFold predicate on the "trend" field.
func TrendContainsFold(v string) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldContainsFold(FieldTrend, v))
}

// DataPointsEQ applies the EQ predicate on the "data_points" field.
func DataPointsEQ(v int) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldEQ(FieldDataPoints, v))
}

// DataPointsNEQ applies the NEQ predicate on the "data_points" field.
func DataPointsNEQ(v int) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldNEQ(FieldDataPoints, v))
}

// DataPointsIn applies the In predicate on the "data_points" field.
func DataPointsIn(vs ...int) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldIn(FieldDataPoints, vs...))
}

// DataPointsNotIn applies the NotIn predicate on the "data_points" field.
func DataPointsNotIn(vs ...int) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldNotIn(FieldDataPoints, vs...))
}

// DataPointsGT applies the GT predicate on the "data_points" field.
func DataPointsGT(v int) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldGT(FieldDataPoints, v))
}

// DataPointsGTE applies the GTE predicate on the "data_points" field.
func DataPointsGTE(v int) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldGTE(FieldDataPoints, v))
}

// DataPointsLT applies the LT predicate on the "data_points" field.
func DataPointsLT(v int) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldLT(FieldDataPoints, v))
}

// DataPointsLTE applies the LTE predicate on the "data_points" field.
func DataPointsLTE(v int) predicate.ConstructState {
	return predicate.ConstructState(sql.FieldLTE(FieldDataPoints, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ConstructState) predicate.ConstructState {
	return predicate.ConstructState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ConstructState) predicate.ConstructState {
	return predicate.ConstructState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ConstructState) predicate.ConstructState {
	return predicate.ConstructState(sql.NotPredicates(p))
}
