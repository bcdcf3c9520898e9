// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/prepwise/backend/ent/attempt"
	"github.com/prepwise/backend/ent/constructstate"
	"github.com/prepwise/backend/ent/plancycle"
	"github.com/prepwise/backend/ent/plantask"
	"github.com/prepwise/backend/ent/question"
	"github.com/prepwise/backend/ent/schema"
	"github.com/prepwise/backend/ent/skillstate"
	"github.com/prepwise/backend/ent/userprofile"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attemptMixin := schema.Attempt{}.Mixin()
	attemptMixinFields0 := attemptMixin[0].Fields()
	_ = attemptMixinFields0
	attemptFields := schema.Attempt{}.Fields()
	_ = attemptFields
	// attemptDescCreatedAt is the schema descriptor for created_at field.
	attemptDescCreatedAt := attemptMixinFields0[0].Descriptor()
	// attempt.DefaultCreatedAt holds the default value on creation for the created_at field.
	attempt.DefaultCreatedAt = attemptDescCreatedAt.Default.(func() time.Time)
	// attemptDescUpdatedAt is the schema descriptor for updated_at field.
	attemptDescUpdatedAt := attemptMixinFields0[1].Descriptor()
	// attempt.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	attempt.DefaultUpdatedAt = attemptDescUpdatedAt.Default.(func() time.Time)
	// attempt.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	attempt.UpdateDefaultUpdatedAt = attemptDescUpdatedAt.UpdateDefault.(func() time.Time)
	// attemptDescUserID is the schema descriptor for user_id field.
	attemptDescUserID := attemptFields[1].Descriptor()
	// attempt.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	attempt.UserIDValidator = attemptDescUserID.Validators[0].(func(string) error)
	// attemptDescQuestionID is the schema descriptor for question_id field.
	attemptDescQuestionID := attemptFields[2].Descriptor()
	// attempt.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	attempt.QuestionIDValidator = attemptDescQuestionID.Validators[0].(func(string) error)
	// attemptDescSkillID is the schema descriptor for skill_id field.
	attemptDescSkillID := attemptFields[3].Descriptor()
	// attempt.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	attempt.SkillIDValidator = attemptDescSkillID.Validators[0].(func(string) error)
	// attemptDescContextType is the schema descriptor for context_type field.
	attemptDescContextType := attemptFields[4].Descriptor()
	// attempt.ContextTypeValidator is a validator for the "context_type" field. It is called by the builders before save.
	attempt.ContextTypeValidator = attemptDescContextType.Validators[0].(func(string) error)
	// attemptDescID is the schema descriptor for id field.
	attemptDescID := attemptFields[0].Descriptor()
	// attempt.DefaultID holds the default value on creation for the id field.
	attempt.DefaultID = attemptDescID.Default.(func() string)
	constructstateMixin := schema.ConstructState{}.Mixin()
	constructstateMixinFields0 := constructstateMixin[0].Fields()
	_ = constructstateMixinFields0
	constructstateFields := schema.ConstructState{}.Fields()
	_ = constructstateFields
	// constructstateDescCreatedAt is the schema descriptor for created_at field.
	constructstateDescCreatedAt := constructstateMixinFields0[0].Descriptor()
	// constructstate.DefaultCreatedAt holds the default value on creation for the created_at field.
	constructstate.DefaultCreatedAt = constructstateDescCreatedAt.Default.(func() time.Time)
	// constructstateDescUpdatedAt is the schema descriptor for updated_at field.
	constructstateDescUpdatedAt := constructstateMixinFields0[1].Descriptor()
	// constructstate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	constructstate.DefaultUpdatedAt = constructstateDescUpdatedAt.Default.(func() time.Time)
	// constructstate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	constructstate.UpdateDefaultUpdatedAt = constructstateDescUpdatedAt.UpdateDefault.(func() time.Time)
	// constructstateDescUserID is the schema descriptor for user_id field.
	constructstateDescUserID := constructstateFields[1].Descriptor()
	// constructstate.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	constructstate.UserIDValidator = constructstateDescUserID.Validators[0].(func(string) error)
	// constructstateDescConstruct is the schema descriptor for construct field.
	constructstateDescConstruct := constructstateFields[2].Descriptor()
	// constructstate.ConstructValidator is a validator for the "construct" field. It is called by the builders before save.
	constructstate.ConstructValidator = constructstateDescConstruct.Validators[0].(func(string) error)
	// constructstateDescScore is the schema descriptor for score field.
	constructstateDescScore := constructstateFields[3].Descriptor()
	// constructstate.DefaultScore holds the default value on creation for the score field.
	constructstate.DefaultScore = constructstateDescScore.Default.(float64)
	// constructstateDescConfidence is the schema descriptor for confidence field.
	constructstateDescConfidence := constructstateFields[4].Descriptor()
	// constructstate.DefaultConfidence holds the default value on creation for the confidence field.
	constructstate.DefaultConfidence = constructstateDescConfidence.Default.(float64)
	// constructstateDescTrend is the schema descriptor for trend field.
	constructstateDescTrend := constructstateFields[5].Descriptor()
	// constructstate.DefaultTrend holds the default value on creation for the trend field.
	constructstate.DefaultTrend = constructstateDescTrend.Default.(string)
	// constructstateDescDataPoints is the schema descriptor for data_points field.
	constructstateDescDataPoints := constructstateFields[6].Descriptor()
	// constructstate.DefaultDataPoints holds the default value on creation for the data_points field.
	constructstate.DefaultDataPoints = constructstateDescDataPoints.Default.(int)
	// constructstateDescID is the schema descriptor for id field.
	constructstateDescID := constructstateFields[0].Descriptor()
	// constructstate.DefaultID holds the default value on creation for the id field.
	constructstate.DefaultID = constructstateDescID.Default.(func() string)
	plancycleMixin := schema.PlanCycle{}.Mixin()
	plancycleMixinFields0 := plancycleMixin[0].Fields()
	_ = plancycleMixinFields0
	plancycleFields := schema.PlanCycle{}.Fields()
	_ = plancycleFields
	// plancycleDescCreatedAt is the schema descriptor for created_at field.
	plancycleDescCreatedAt := plancycleMixinFields0[0].Descriptor()
	// plancycle.DefaultCreatedAt holds the default value on creation for the created_at field.
	plancycle.DefaultCreatedAt = plancycleDescCreatedAt.Default.(func() time.Time)
	// plancycleDescUpdatedAt is the schema descriptor for updated_at field.
	plancycleDescUpdatedAt := plancycleMixinFields0[1].Descriptor()
	// plancycle.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	plancycle.DefaultUpdatedAt = plancycleDescUpdatedAt.Default.(func() time.Time)
	// plancycle.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	plancycle.UpdateDefaultUpdatedAt = plancycleDescUpdatedAt.UpdateDefault.(func() time.Time)
	// plancycleDescUserID is the schema descriptor for user_id field.
	plancycleDescUserID := plancycleFields[1].Descriptor()
	// plancycle.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	plancycle.UserIDValidator = plancycleDescUserID.Validators[0].(func(string) error)
	// plancycleDescFocusedDrillCount is the schema descriptor for focused_drill_count field.
	plancycleDescFocusedDrillCount := plancycleFields[3].Descriptor()
	// plancycle.DefaultFocusedDrillCount holds the default value on creation for the focused_drill_count field.
	plancycle.DefaultFocusedDrillCount = plancycleDescFocusedDrillCount.Default.(int)
	// plancycleDescMixedDrillCount is the schema descriptor for mixed_drill_count field.
	plancycleDescMixedDrillCount := plancycleFields[4].Descriptor()
	// plancycle.DefaultMixedDrillCount holds the default value on creation for the mixed_drill_count field.
	plancycle.DefaultMixedDrillCount = plancycleDescMixedDrillCount.Default.(int)
	// plancycleDescMockCount is the schema descriptor for mock_count field.
	plancycleDescMockCount := plancycleFields[5].Descriptor()
	// plancycle.DefaultMockCount holds the default value on creation for the mock_count field.
	plancycle.DefaultMockCount = plancycleDescMockCount.Default.(int)
	// plancycleDescFlashcardCount is the schema descriptor for flashcard_count field.
	plancycleDescFlashcardCount := plancycleFields[6].Descriptor()
	// plancycle.DefaultFlashcardCount holds the default value on creation for the flashcard_count field.
	plancycle.DefaultFlashcardCount = plancycleDescFlashcardCount.Default.(int)
	// plancycleDescReviewCount is the schema descriptor for review_count field.
	plancycleDescReviewCount := plancycleFields[7].Descriptor()
	// plancycle.DefaultReviewCount holds the default value on creation for the review_count field.
	plancycle.DefaultReviewCount = plancycleDescReviewCount.Default.(int)
	// plancycleDescStatus is the schema descriptor for status field.
	plancycleDescStatus := plancycleFields[10].Descriptor()
	// plancycle.DefaultStatus holds the default value on creation for the status field.
	plancycle.DefaultStatus = plancycleDescStatus.Default.(string)
	// plancycleDescID is the schema descriptor for id field.
	plancycleDescID := plancycleFields[0].Descriptor()
	// plancycle.DefaultID holds the default value on creation for the id field.
	plancycle.DefaultID = plancycleDescID.Default.(func() string)
	plantaskMixin := schema.PlanTask{}.Mixin()
	plantaskMixinFields0 := plantaskMixin[0].Fields()
	_ = plantaskMixinFields0
	plantaskFields := schema.PlanTask{}.Fields()
	_ = plantaskFields
	// plantaskDescCreatedAt is the schema descriptor for created_at field.
	plantaskDescCreatedAt := plantaskMixinFields0[0].Descriptor()
	// plantask.DefaultCreatedAt holds the default value on creation for the created_at field.
	plantask.DefaultCreatedAt = plantaskDescCreatedAt.Default.(func() time.Time)
	// plantaskDescUpdatedAt is the schema descriptor for updated_at field.
	plantaskDescUpdatedAt := plantaskMixinFields0[1].Descriptor()
	// plantask.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	plantask.DefaultUpdatedAt = plantaskDescUpdatedAt.Default.(func() time.Time)
	// plantask.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	plantask.UpdateDefaultUpdatedAt = plantaskDescUpdatedAt.UpdateDefault.(func() time.Time)
	// plantaskDescCycleID is the schema descriptor for cycle_id field.
	plantaskDescCycleID := plantaskFields[1].Descriptor()
	// plantask.CycleIDValidator is a validator for the "cycle_id" field. It is called by the builders before save.
	plantask.CycleIDValidator = plantaskDescCycleID.Validators[0].(func(string) error)
	// plantaskDescUserID is the schema descriptor for user_id field.
	plantaskDescUserID := plantaskFields[2].Descriptor()
	// plantask.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	plantask.UserIDValidator = plantaskDescUserID.Validators[0].(func(string) error)
	// plantaskDescTaskType is the schema descriptor for task_type field.
	plantaskDescTaskType := plantaskFields[3].Descriptor()
	// plantask.TaskTypeValidator is a validator for the "task_type" field. It is called by the builders before save.
	plantask.TaskTypeValidator = plantaskDescTaskType.Validators[0].(func(string) error)
	// plantaskDescStatus is the schema descriptor for status field.
	plantaskDescStatus := plantaskFields[5].Descriptor()
	// plantask.DefaultStatus holds the default value on creation for the status field.
	plantask.DefaultStatus = plantaskDescStatus.Default.(string)
	// plantaskDescID is the schema descriptor for id field.
	plantaskDescID := plantaskFields[0].Descriptor()
	// plantask.DefaultID holds the default value on creation for the id field.
	plantask.DefaultID = plantaskDescID.Default.(func() string)
	questionMixin := schema.Question{}.Mixin()
	questionMixinFields0 := questionMixin[0].Fields()
	_ = questionMixinFields0
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescCreatedAt is the schema descriptor for created_at field.
	questionDescCreatedAt := questionMixinFields0[0].Descriptor()
	// question.DefaultCreatedAt holds the default value on creation for the created_at field.
	question.DefaultCreatedAt = questionDescCreatedAt.Default.(func() time.Time)
	// questionDescUpdatedAt is the schema descriptor for updated_at field.
	questionDescUpdatedAt := questionMixinFields0[1].Descriptor()
	// question.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	question.DefaultUpdatedAt = questionDescUpdatedAt.Default.(func() time.Time)
	// question.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	question.UpdateDefaultUpdatedAt = questionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// questionDescSkillID is the schema descriptor for skill_id field.
	questionDescSkillID := questionFields[1].Descriptor()
	// question.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	question.SkillIDValidator = questionDescSkillID.Validators[0].(func(string) error)
	// questionDescDifficulty is the schema descriptor for difficulty field.
	questionDescDifficulty := questionFields[2].Descriptor()
	// question.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	question.DifficultyValidator = questionDescDifficulty.Validators[0].(func(string) error)
	// questionDescCognitiveLevel is the schema descriptor for cognitive_level field.
	questionDescCognitiveLevel := questionFields[3].Descriptor()
	// question.DefaultCognitiveLevel holds the default value on creation for the cognitive_level field.
	question.DefaultCognitiveLevel = questionDescCognitiveLevel.Default.(string)
	// questionDescAnswerFormat is the schema descriptor for answer_format field.
	questionDescAnswerFormat := questionFields[4].Descriptor()
	// question.AnswerFormatValidator is a validator for the "answer_format" field. It is called by the builders before save.
	question.AnswerFormatValidator = questionDescAnswerFormat.Validators[0].(func(string) error)
	// questionDescCorrectAnswer is the schema descriptor for correct_answer field.
	questionDescCorrectAnswer := questionFields[5].Descriptor()
	// question.CorrectAnswerValidator is a validator for the "correct_answer" field. It is called by the builders before save.
	question.CorrectAnswerValidator = questionDescCorrectAnswer.Validators[0].(func(string) error)
	// questionDescID is the schema descriptor for id field.
	questionDescID := questionFields[0].Descriptor()
	// question.DefaultID holds the default value on creation for the id field.
	question.DefaultID = questionDescID.Default.(func() string)
	skillstateMixin := schema.SkillState{}.Mixin()
	skillstateMixinFields0 := skillstateMixin[0].Fields()
	_ = skillstateMixinFields0
	skillstateFields := schema.SkillState{}.Fields()
	_ = skillstateFields
	// skillstateDescCreatedAt is the schema descriptor for created_at field.
	skillstateDescCreatedAt := skillstateMixinFields0[0].Descriptor()
	// skillstate.DefaultCreatedAt holds the default value on creation for the created_at field.
	skillstate.DefaultCreatedAt = skillstateDescCreatedAt.Default.(func() time.Time)
	// skillstateDescUpdatedAt is the schema descriptor for updated_at field.
	skillstateDescUpdatedAt := skillstateMixinFields0[1].Descriptor()
	// skillstate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	skillstate.DefaultUpdatedAt = skillstateDescUpdatedAt.Default.(func() time.Time)
	// skillstate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	skillstate.UpdateDefaultUpdatedAt = skillstateDescUpdatedAt.UpdateDefault.(func() time.Time)
	// skillstateDescUserID is the schema descriptor for user_id field.
	skillstateDescUserID := skillstateFields[1].Descriptor()
	// skillstate.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	skillstate.UserIDValidator = skillstateDescUserID.Validators[0].(func(string) error)
	// skillstateDescSkillID is the schema descriptor for skill_id field.
	skillstateDescSkillID := skillstateFields[2].Descriptor()
	// skillstate.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	skillstate.SkillIDValidator = skillstateDescSkillID.Validators[0].(func(string) error)
	// skillstateDescAttemptCount is the schema descriptor for attempt_count field.
	skillstateDescAttemptCount := skillstateFields[3].Descriptor()
	// skillstate.DefaultAttemptCount holds the default value on creation for the attempt_count field.
	skillstate.DefaultAttemptCount = skillstateDescAttemptCount.Default.(int)
	// skillstateDescCorrectCount is the schema descriptor for correct_count field.
	skillstateDescCorrectCount := skillstateFields[4].Descriptor()
	// skillstate.DefaultCorrectCount holds the default value on creation for the correct_count field.
	skillstate.DefaultCorrectCount = skillstateDescCorrectCount.Default.(int)
	// skillstateDescAccuracy is the schema descriptor for accuracy field.
	skillstateDescAccuracy := skillstateFields[5].Descriptor()
	// skillstate.DefaultAccuracy holds the default value on creation for the accuracy field.
	skillstate.DefaultAccuracy = skillstateDescAccuracy.Default.(float64)
	// skillstateDescTotalTimeSec is the schema descriptor for total_time_sec field.
	skillstateDescTotalTimeSec := skillstateFields[6].Descriptor()
	// skillstate.DefaultTotalTimeSec holds the default value on creation for the total_time_sec field.
	skillstate.DefaultTotalTimeSec = skillstateDescTotalTimeSec.Default.(int)
	// skillstateDescAvgTimeSec is the schema descriptor for avg_time_sec field.
	skillstateDescAvgTimeSec := skillstateFields[7].Descriptor()
	// skillstate.DefaultAvgTimeSec holds the default value on creation for the avg_time_sec field.
	skillstate.DefaultAvgTimeSec = skillstateDescAvgTimeSec.Default.(float64)
	// skillstateDescMasteryLevel is the schema descriptor for mastery_level field.
	skillstateDescMasteryLevel := skillstateFields[8].Descriptor()
	// skillstate.DefaultMasteryLevel holds the default value on creation for the mastery_level field.
	skillstate.DefaultMasteryLevel = skillstateDescMasteryLevel.Default.(string)
	// skillstateDescID is the schema descriptor for id field.
	skillstateDescID := skillstateFields[0].Descriptor()
	// skillstate.DefaultID holds the default value on creation for the id field.
	skillstate.DefaultID = skillstateDescID.Default.(func() string)
	userprofileMixin := schema.UserProfile{}.Mixin()
	userprofileMixinFields0 := userprofileMixin[0].Fields()
	_ = userprofileMixinFields0
	userprofileFields := schema.UserProfile{}.Fields()
	_ = userprofileFields
	// userprofileDescCreatedAt is the schema descriptor for created_at field.
	userprofileDescCreatedAt := userprofileMixinFields0[0].Descriptor()
	// userprofile.DefaultCreatedAt holds the default value on creation for the created_at field.
	userprofile.DefaultCreatedAt = userprofileDescCreatedAt.Default.(func() time.Time)
	// userprofileDescUpdatedAt is the schema descriptor for updated_at field.
	userprofileDescUpdatedAt := userprofileMixinFields0[1].Descriptor()
	// userprofile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	userprofile.DefaultUpdatedAt = userprofileDescUpdatedAt.Default.(func() time.Time)
	// userprofile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	userprofile.UpdateDefaultUpdatedAt = userprofileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userprofileDescUserID is the schema descriptor for user_id field.
	userprofileDescUserID := userprofileFields[1].Descriptor()
	// userprofile.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	userprofile.UserIDValidator = userprofileDescUserID.Validators[0].(func(string) error)
	// userprofileDescPackageLengthDays is the schema descriptor for package_length_days field.
	userprofileDescPackageLengthDays := userprofileFields[2].Descriptor()
	// userprofile.DefaultPackageLengthDays holds the default value on creation for the package_length_days field.
	userprofile.DefaultPackageLengthDays = userprofileDescPackageLengthDays.Default.(int)
	// userprofileDescDailyMinutes is the schema descriptor for daily_minutes field.
	userprofileDescDailyMinutes := userprofileFields[3].Descriptor()
	// userprofile.DefaultDailyMinutes holds the default value on creation for the daily_minutes field.
	userprofile.DefaultDailyMinutes = userprofileDescDailyMinutes.Default.(int)
	// userprofileDescPhase is the schema descriptor for phase field.
	userprofileDescPhase := userprofileFields[5].Descriptor()
	// userprofile.DefaultPhase holds the default value on creation for the phase field.
	userprofile.DefaultPhase = userprofileDescPhase.Default.(string)
	// userprofileDescID is the schema descriptor for id field.
	userprofileDescID := userprofileFields[0].Descriptor()
	// userprofile.DefaultID holds the default value on creation for the id field.
	userprofile.DefaultID = userprofileDescID.Default.(func() string)
}
