// Code generated by ent, DO NOT EDIT.

package question

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/prepwise/backend/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldUpdatedAt, v))
}

// SkillID applies equality check predicate on the "skill_id" field. It's identical to SkillIDEQ.
func SkillID(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldSkillID, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldDifficulty, v))
}

// CognitiveLevel applies equality check predicate on the "cognitive_level" field. It's identical to CognitiveLevelEQ.
func CognitiveLevel(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCognitiveLevel, v))
}

// AnswerFormat applies equality check predicate on the "answer_format" field. It's identical to AnswerFormatEQ.
func AnswerFormat(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldAnswerFormat, v))
}

// CorrectAnswer applies equality check predicate on the "correct_answer" field. It's identical to CorrectAnswerEQ.
func CorrectAnswer(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCorrectAnswer, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldUpdatedAt, v))
}

// SkillIDEQ applies the EQ predicate on the "skill_id" field.
func SkillIDEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldSkillID, v))
}

// SkillIDNEQ applies the NEQ predicate on the "skill_id" field.
func SkillIDNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldSkillID, v))
}

// SkillIDIn applies the In predicate on the "skill_id" field.
func SkillIDIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldSkillID, vs...))
}

// SkillIDNotIn applies the NotIn predicate on the "skill_id" field.
func SkillIDNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldSkillID, vs...))
}

// SkillIDGT applies the GT predicate on the "skill_id" field.
func SkillIDGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldSkillID, v))
}

// SkillIDGTE applies the GTE predicate on the "skill_id" field.
func SkillIDGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldSkillID, v))
}

// SkillIDLT applies the LT predicate on the "skill_id" field.
func SkillIDLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldSkillID, v))
}

// SkillIDLTE applies the LTE predicate on the "skill_id" field.
func SkillIDLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldSkillID, v))
}

// SkillIDContains applies the Contains predicate on the "skill_id" field.
func SkillIDContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldSkillID, v))
}

// SkillIDHasPrefix applies the HasPrefix predicate on the "skill_id" field.
func SkillIDHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldSkillID, v))
}

// SkillIDHasSuffix applies the HasSuffix predicate on the "skill_id" field.
func SkillIDHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldSkillID, v))
}

// SkillIDEqualFold applies the EqualFold predicate on the "skill_id" field.
func SkillIDEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldSkillID, v))
}

// SkillIDContainsFold applies the ContainsFold predicate on the "skill_id" field.
func SkillIDContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldSkillID, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldDifficulty, v))
}

// CognitiveLevelEQ applies the EQ predicate on the "cognitive_level" field.
func CognitiveLevelEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCognitiveLevel, v))
}

// CognitiveLevelNEQ applies the NEQ predicate on the "cognitive_level" field.
func CognitiveLevelNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldCognitiveLevel, v))
}

// CognitiveLevelIn applies the In predicate on the "cognitive_level" field.
func CognitiveLevelIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldCognitiveLevel, vs...))
}

// CognitiveLevelNotIn applies the NotIn predicate on the "cognitive_level" field.
func CognitiveLevelNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldCognitiveLevel, vs...))
}

// CognitiveLevelGT applies the GT predicate on the "cognitive_level" field.
func CognitiveLevelGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldCognitiveLevel, v))
}

// CognitiveLevelGTE applies the GTE predicate on the "cognitive_level" field.
func CognitiveLevelGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldCognitiveLevel, v))
}

// CognitiveLevelLT applies the LT predicate on the "cognitive_level" field.
func CognitiveLevelLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldCognitiveLevel, v))
}

// CognitiveLevelLTE applies the LTE predicate on the "cognitive_level" field.
func CognitiveLevelLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldCognitiveLevel, v))
}

// CognitiveLevelContains applies the Contains predicate on the "cognitive_level" field.
func CognitiveLevelContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldCognitiveLevel, v))
}

// CognitiveLevelHasPrefix applies the HasPrefix predicate on the "cognitive_level" field.
func CognitiveLevelHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldCognitiveLevel, v))
}

// CognitiveLevelHasSuffix applies the HasSuffix predicate on the "cognitive_level" field.
func CognitiveLevelHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldCognitiveLevel, v))
}

// CognitiveLevelEqualFold applies the EqualFold predicate on the "cognitive_level" field.
func CognitiveLevelEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldCognitiveLevel, v))
}

// CognitiveLevelContainsFold applies the ContainsFold predicate on the "cognitive_level" field.
func CognitiveLevelContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldCognitiveLevel, v))
}

// AnswerFormatEQ applies the EQ predicate on the "answer_format" field.
func AnswerFormatEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldAnswerFormat, v))
}

// AnswerFormatNEQ applies the NEQ predicate on the "answer_format" field.
func AnswerFormatNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldAnswerFormat, v))
}

// AnswerFormatIn applies the In predicate on the "answer_format" field.
func AnswerFormatIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldAnswerFormat, vs...))
}

// AnswerFormatNotIn applies the NotIn predicate on the "answer_format" field.
func AnswerFormatNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldAnswerFormat, vs...))
}

// AnswerFormatGT applies the GT predicate on the "answer_format" field.
func AnswerFormatGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldAnswerFormat, v))
}

// AnswerFormatGTE applies the GTE predicate on the "answer_format" field.
func AnswerFormatGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldAnswerFormat, v))
}

// AnswerFormatLT applies the LT predicate on the "answer_format" field.
func AnswerFormatLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldAnswerFormat, v))
}

// AnswerFormatLTE applies the LTE predicate on the "answer_format" field.
func AnswerFormatLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldAnswerFormat, v))
}

// AnswerFormatContains applies the Contains predicate on the "answer_format" field.
func AnswerFormatContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldAnswerFormat, v))
}

// AnswerFormatHasPrefix applies the HasPrefix predicate on the "answer_format" field.
func AnswerFormatHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldAnswerFormat, v))
}

// AnswerFormatHasSuffix applies the HasSuffix predicate on the "answer_format" field.
func AnswerFormatHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldAnswerFormat, v))
}

// AnswerFormatEqualFold applies the EqualFold predicate on the "answer_format" field.
func AnswerFormatEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldAnswerFormat, v))
}

// AnswerFormatContainsFold applies the ContainsFold predicate on the "answer_format" field.
func AnswerFormatContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldAnswerFormat, v))
}

// CorrectAnswerEQ applies the EQ predicate on the "correct_answer" field.
func CorrectAnswerEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCorrectAnswer, v))
}

// CorrectAnswerNEQ applies the NEQ predicate on the "correct_answer" field.
func CorrectAnswerNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldCorrectAnswer, v))
}

// CorrectAnswerIn applies the In predicate on the "correct_answer" field.
func CorrectAnswerIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldCorrectAnswer, vs...))
}

// CorrectAnswerNotIn applies the NotIn predicate on the "correct_answer" field.
func CorrectAnswerNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldCorrectAnswer, vs...))
}

// CorrectAnswerGT applies the GT predicate on the "correct_answer" field.
func CorrectAnswerGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldCorrectAnswer, v))
}

// CorrectAnswerGTE applies the GTE predicate on the "correct_answer" field.
func CorrectAnswerGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldCorrectAnswer, v))
}

// CorrectAnswerLT applies the LT predicate on the "correct_answer" field.
func CorrectAnswerLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldCorrectAnswer, v))
}

// CorrectAnswerLTE applies the LTE predicate on the "correct_answer" field.
func CorrectAnswerLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldCorrectAnswer, v))
}

// CorrectAnswerContains applies the Contains predicate on the "correct_answer" field.
func CorrectAnswerContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldCorrectAnswer, v))
}

// CorrectAnswerHasPrefix applies the HasPrefix predicate on the "correct_answer" field.
func CorrectAnswerHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldCorrectAnswer, v))
}

// CorrectAnswerHasSuffix applies the HasSuffix predicate on the "correct_answer" field.
func CorrectAnswerHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldCorrectAnswer, v))
}

// CorrectAnswerEqualFold applies the EqualFold predicate on the "correct_answer" field.
func CorrectAnswerEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldCorrectAnswer, v))
}

// CorrectAnswerContainsFold applies the ContainsFold predicate on the "correct_answer" field.
func CorrectAnswerContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldCorrectAnswer, v))
}

// ConstructWeightsIsNil applies the IsNil predicate on the "construct_weights" field.
func ConstructWeightsIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldConstructWeights))
}

// ConstructWeightsNotNil applies the NotNil predicate on the "construct_weights" field.
func ConstructWeightsNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldConstructWeights))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Question) predicate.Question {
	return predicate.Question(sql.NotPredicates(p))
}
