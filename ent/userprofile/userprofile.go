// Code generated by ent, DO NOT EDIT.

package userprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the userprofile type in the database.
	Label = "user_profile"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldPackageLengthDays holds the string denoting the package_length_days field in the database.
	FieldPackageLengthDays = "package_length_days"
	// FieldDailyMinutes holds the string denoting the daily_minutes field in the database.
	FieldDailyMinutes = "daily_minutes"
	// FieldPackageStartedAt holds the string denoting the package_started_at field in the database.
	FieldPackageStartedAt = "package_started_at"
	// FieldPhase holds the string denoting the phase field in the database.
	FieldPhase = "phase"
	// Table holds the table name of the userprofile in the database.
	Table = "user_profiles"
)

// Columns holds all SQL columns for userprofile fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldUserID,
	FieldPackageLengthDays,
	FieldDailyMinutes,
	FieldPackageStartedAt,
	FieldPhase,
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
	// DefaultPackageLengthDays holds the default value on creation for the "package_length_days" field.
	DefaultPackageLengthDays int
	// DefaultDailyMinutes holds the default value on creation for the "daily_minutes" field.
	DefaultDailyMinutes int
	// DefaultPhase holds the default value on creation for the "phase" field.
	DefaultPhase string
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() string
)

// OrderOption defines the ordering options for the UserProfile queries.
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

// ByPackageLengthDays orders the results by the package_length_days field.
func ByPackageLengthDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPackageLengthDays, opts...).ToFunc()
}

// ByDailyMinutes orders the results by the daily_minutes field.
func ByDailyMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDailyMinutes, opts...).ToFunc()
}

// ByPackageStartedAt orders the results by the package_started_at field.
func ByPackageStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPackageStartedAt, opts...).ToFunc()
}

// ByPhase orders the results by the phase field.
func ByPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhase, opts...).ToFunc()
}
