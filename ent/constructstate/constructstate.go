// Code generated by ent, DO NOT EDIT.

package constructstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the constructstate type in the database.
	Label = "construct_state"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldConstruct holds the string denoting the construct field in the database.
	FieldConstruct = "construct"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldTrend holds the string denoting the trend field in the database.
	FieldTrend = "trend"
	// FieldDataPoints holds the string denoting the data_points field in the database.
	FieldDataPoints = "data_points"
	// Table holds the table name of the constructstate in the database.
	Table = "construct_states"
)

// Columns holds all SQL columns for constructstate fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldUserID,
	FieldConstruct,
	FieldScore,
	FieldConfidence,
	FieldTrend,
	FieldDataPoints,
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
	// ConstructValidator is a validator for the "construct" field. It is called by the builders before save.
	ConstructValidator func(string) error
	// DefaultScore holds the default value on creation for the "score" field.
	DefaultScore float64
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// DefaultTrend holds the default value on creation for the "trend" field.
	DefaultTrend string
	// DefaultDataPoints holds the default value on creation for the "data_points" field.
	DefaultDataPoints int
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() string
)

// OrderOption defines the ordering options for the ConstructState queries.
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

// ByConstruct orders the results by the construct field.
func ByConstruct(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConstruct, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByTrend orders the results by the trend field.
func ByTrend(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrend, opts...).ToFunc()
}

// ByDataPoints orders the results by the data_points field.
func ByDataPoints(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDataPoints, opts...).ToFunc()
}
