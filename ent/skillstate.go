// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/prepwise/backend/ent/skillstate"
)

// SkillState is the model entity for the SkillState schema.
type SkillState struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UTC wall-clock time the row was created
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UTC wall-clock time of the last write
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// SkillID holds the value of the "skill_id" field.
	SkillID string `json:"skill_id,omitempty"`
	// AttemptCount holds the value of the "attempt_count" field.
	AttemptCount int `json:"attempt_count,omitempty"`
	// CorrectCount holds the value of the "correct_count" field.
	CorrectCount int `json:"correct_count,omitempty"`
	// correct_count/attempt_count × 100
	Accuracy float64 `json:"accuracy,omitempty"`
	// TotalTimeSec holds the value of the "total_time_sec" field.
	TotalTimeSec int `json:"total_time_sec,omitempty"`
	// AvgTimeSec holds the value of the "avg_time_sec" field.
	AvgTimeSec float64 `json:"avg_time_sec,omitempty"`
	// weak, developing, or strong
	MasteryLevel string `json:"mastery_level,omitempty"`
	// LastAttemptedAt holds the value of the "last_attempted_at" field.
	LastAttemptedAt *time.Time `json:"last_attempted_at,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SkillState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case skillstate.FieldAccuracy, skillstate.FieldAvgTimeSec:
			values[i] = new(sql.NullFloat64)
		case skillstate.FieldAttemptCount, skillstate.FieldCorrectCount, skillstate.FieldTotalTimeSec:
			values[i] = new(sql.NullInt64)
		case skillstate.FieldID, skillstate.FieldUserID, skillstate.FieldSkillID, skillstate.FieldMasteryLevel:
			values[i] = new(sql.NullString)
		case skillstate.FieldCreatedAt, skillstate.FieldUpdatedAt, skillstate.FieldLastAttemptedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SkillState fields.
func (_m *SkillState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case skillstate.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case skillstate.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case skillstate.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case skillstate.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case skillstate.FieldSkillID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill_id", values[i])
			} else if value.Valid {
				_m.SkillID = value.String
			}
		case skillstate.FieldAttemptCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_count", values[i])
			} else if value.Valid {
				_m.AttemptCount = int(value.Int64)
			}
		case skillstate.FieldCorrectCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_count", values[i])
			} else if value.Valid {
				_m.CorrectCount = int(value.Int64)
			}
		case skillstate.FieldAccuracy:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field accuracy", values[i])
			} else if value.Valid {
				_m.Accuracy = value.Float64
			}
		case skillstate.FieldTotalTimeSec:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_time_sec", values[i])
			} else if value.Valid {
				_m.TotalTimeSec = int(value.Int64)
			}
		case skillstate.FieldAvgTimeSec:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_time_sec", values[i])
			} else if value.Valid {
				_m.AvgTimeSec = value.Float64
			}
		case skillstate.FieldMasteryLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mastery_level", values[i])
			} else if value.Valid {
				_m.MasteryLevel = value.String
			}
		case skillstate.FieldLastAttemptedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_attempted_at", values[i])
			} else if value.Valid {
				_m.LastAttemptedAt = new(time.Time)
				*_m.LastAttemptedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SkillState.
// This includes values selected through modifiers, order, etc.
func (_m *SkillState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SkillState.
// Note that you need to call SkillState.Unwrap() before calling this method if this SkillState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SkillState) Update() *SkillStateUpdateOne {
	return NewSkillStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SkillState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SkillState) Unwrap() *SkillState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SkillState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SkillState) String() string {
	var builder strings.Builder
	builder.WriteString("SkillState(")
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
	builder.WriteString("skill_id=")
	builder.WriteString(_m.SkillID)
	builder.WriteString(", ")
	builder.WriteString("attempt_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttemptCount))
	builder.WriteString(", ")
	builder.WriteString("correct_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectCount))
	builder.WriteString(", ")
	builder.WriteString("accuracy=")
	builder.WriteString(fmt.Sprintf("%v", _m.Accuracy))
	builder.WriteString(", ")
	builder.WriteString("total_time_sec=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalTimeSec))
	builder.WriteString(", ")
	builder.WriteString("avg_time_sec=")
	builder.WriteString(fmt.Sprintf("%v", _m.AvgTimeSec))
	builder.WriteString(", ")
	builder.WriteString("mastery_level=")
	builder.WriteString(_m.MasteryLevel)
	builder.WriteString(", ")
	if v := _m.LastAttemptedAt; v != nil {
		builder.WriteString("last_attempted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// SkillStates is a parsable slice of SkillState.
type SkillStates []*SkillState
