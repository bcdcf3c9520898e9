// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/prepwise/backend/ent/constructstate"
)

// ConstructState is the model entity for the ConstructState schema.
type ConstructState struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UTC wall-clock time the row was created
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UTC wall-clock time of the last write
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// attention, speed, reasoning, computation, or reading
	Construct string `json:"construct,omitempty"`
	// Bounded 0–100
	Score float64 `json:"score,omitempty"`
	// Monotonically non-decreasing, capped at 90
	Confidence float64 `json:"confidence,omitempty"`
	// improving, declining, or stable
	Trend string `json:"trend,omitempty"`
	// DataPoints holds the value of the "data_points" field.
	DataPoints   int `json:"data_points,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ConstructState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case constructstate.FieldScore, constructstate.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case constructstate.FieldDataPoints:
			values[i] = new(sql.NullInt64)
		case constructstate.FieldID, constructstate.FieldUserID, constructstate.FieldConstruct, constructstate.FieldTrend:
			values[i] = new(sql.NullString)
		case constructstate.FieldCreatedAt, constructstate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ConstructState fields.
func (_m *ConstructState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case constructstate.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case constructstate.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case constructstate.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case constructstate.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case constructstate.FieldConstruct:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field construct", values[i])
			} else if value.Valid {
				_m.Construct = value.String
			}
		case constructstate.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		case constructstate.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case constructstate.FieldTrend:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trend", values[i])
			} else if value.Valid {
				_m.Trend = value.String
			}
		case constructstate.FieldDataPoints:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field data_points", values[i])
			} else if value.Valid {
				_m.DataPoints = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ConstructState.
// This includes values selected through modifiers, order, etc.
func (_m *ConstructState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ConstructState.
// Note that you need to call ConstructState.Unwrap() before calling this method if this ConstructState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ConstructState) Update() *ConstructStateUpdateOne {
	return NewConstructStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ConstructState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ConstructState) Unwrap() *ConstructState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ConstructState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ConstructState) String() string {
	var builder strings.Builder
	builder.WriteString("ConstructState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("construct=")
	builder.WriteString(_m.Construct)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("trend=")
	builder.WriteString(_m.Trend)
	builder.WriteString(", ")
	builder.WriteString("data_points=")
	builder.WriteString(fmt.Sprintf("%v", _m.DataPoints))
	builder.WriteByte(')')
	return builder.String()
}

// ConstructStates is a parsable slice of ConstructState.
type ConstructStates []*ConstructState
