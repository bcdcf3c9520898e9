// Code generated by ent, DO NOT EDIT.

package plancycle

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the plancycle type in the database.
	Label = "plan_cycle"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTaskCount holds the string denoting the task_count field in the database.
	FieldTaskCount = "task_count"
	// FieldFocusedDrillCount holds the string denoting the focused_drill_count field in the database.
	FieldFocusedDrillCount = "focused_drill_count"
	// FieldMixedDrillCount holds the string denoting the mixed_drill_count field in the database.
	FieldMixedDrillCount = "mixed_drill_count"
	// FieldMockCount holds the string denoting the mock_count field in the database.
	FieldMockCount = "mock_count"
	// FieldFlashcardCount holds the string denoting the flashcard_count field in the database.
	FieldFlashcardCount = "flashcard_count"
	// FieldReviewCount holds the string denoting the review_count field in the database.
	FieldReviewCount = "review_count"
	// FieldDaysRemaining holds the string denoting the days_remaining field in the database.
	FieldDaysRemaining = "days_remaining"
	// FieldWeakSkillCount holds the string denoting the weak_skill_count field in the database.
	FieldWeakSkillCount = "weak_skill_count"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// Table holds the table name of the plancycle in the database.
	Table = "plan_cycles"
)

// Columns holds all SQL columns for plancycle fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldUserID,
	FieldTaskCount,
	FieldFocusedDrillCount,
	FieldMixedDrillCount,
	FieldMockCount,
	FieldFlashcardCount,
	FieldReviewCount,
	FieldDaysRemaining,
	FieldWeakSkillCount,
	FieldStatus,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// DefaultFocusedDrillCount holds the default value on creation for the "focused_drill_count" field.
	DefaultFocusedDrillCount int
	// DefaultMixedDrillCount holds the default value on creation for the "mixed_drill_count" field.
	DefaultMixedDrillCount int
	// DefaultMockCount holds the default value on creation for the "mock_count" field.
	DefaultMockCount int
	// DefaultFlashcardCount holds the default value on creation for the "flashcard_count" field.
	DefaultFlashcardCount int
	// DefaultReviewCount holds the default value on creation for the "review_count" field.
	DefaultReviewCount int
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() string
)

// OrderOption defines the ordering options for the PlanCycle queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByTaskCount orders the results by the task_count field.
func ByTaskCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskCount, opts...).ToFunc()
}

// ByFocusedDrillCount orders the results by the focused_drill_count field.
func ByFocusedDrillCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFocusedDrillCount, opts...).ToFunc()
}

// ByMixedDrillCount orders the results by the mixed_drill_count field.
func ByMixedDrillCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMixedDrillCount, opts...).ToFunc()
}

// ByMockCount orders the results by the mock_count field.
func ByMockCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMockCount, opts...).ToFunc()
}

// ByFlashcardCount orders the results by the flashcard_count field.
func ByFlashcardCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFlashcardCount, opts...).ToFunc()
}

// ByReviewCount orders the results by the review_count field.
func ByReviewCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewCount, opts...).ToFunc()
}

// ByDaysRemaining orders the results by the days_remaining field.
func ByDaysRemaining(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDaysRemaining, opts...).ToFunc()
}

// ByWeakSkillCount orders the results by the weak_skill_count field.
func ByWeakSkillCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeakSkillCount, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}
