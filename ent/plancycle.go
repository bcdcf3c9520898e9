// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/prepwise/backend/ent/plancycle"
)

// PlanCycle is the model entity for the PlanCycle schema.
type PlanCycle struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UTC wall-clock time the row was created
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UTC wall-clock time of the last write
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// TaskCount holds the value of the "task_count" field.
	TaskCount int `json:"task_count,omitempty"`
	// FocusedDrillCount holds the value of the "focused_drill_count" field.
	FocusedDrillCount int `json:"focused_drill_count,omitempty"`
	// MixedDrillCount holds the value of the "mixed_drill_count" field.
	MixedDrillCount int `json:"mixed_drill_count,omitempty"`
	// MockCount holds the value of the "mock_count" field.
	MockCount int `json:"mock_count,omitempty"`
	// FlashcardCount holds the value of the "flashcard_count" field.
	FlashcardCount int `json:"flashcard_count,omitempty"`
	// ReviewCount holds the value of the "review_count" field.
	ReviewCount int `json:"review_count,omitempty"`
	// DaysRemaining holds the value of the "days_remaining" field.
	DaysRemaining int `json:"days_remaining,omitempty"`
	// WeakSkillCount holds the value of the "weak_skill_count" field.
	WeakSkillCount int `json:"weak_skill_count,omitempty"`
	// active or completed
	Status       string `json:"status,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PlanCycle) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case plancycle.FieldTaskCount, plancycle.FieldFocusedDrillCount, plancycle.FieldMixedDrillCount, plancycle.FieldMockCount, plancycle.FieldFlashcardCount, plancycle.FieldReviewCount, plancycle.FieldDaysRemaining, plancycle.FieldWeakSkillCount:
			values[i] = new(sql.NullInt64)
		case plancycle.FieldID, plancycle.FieldUserID, plancycle.FieldStatus:
			values[i] = new(sql.NullString)
		case plancycle.FieldCreatedAt, plancycle.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PlanCycle fields.
func (_m *PlanCycle) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case plancycle.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case plancycle.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case plancycle.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case plancycle.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case plancycle.FieldTaskCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field task_count", values[i])
			} else if value.Valid {
				_m.TaskCount = int(value.Int64)
			}
		case plancycle.FieldFocusedDrillCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field focused_drill_count", values[i])
			} else if value.Valid {
				_m.FocusedDrillCount = int(value.Int64)
			}
		case plancycle.FieldMixedDrillCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field mixed_drill_count", values[i])
			} else if value.Valid {
				_m.MixedDrillCount = int(value.Int64)
			}
		case plancycle.FieldMockCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field mock_count", values[i])
			} else if value.Valid {
				_m.MockCount = int(value.Int64)
			}
		case plancycle.FieldFlashcardCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field flashcard_count", values[i])
			} else if value.Valid {
				_m.FlashcardCount = int(value.Int64)
			}
		case plancycle.FieldReviewCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field review_count", values[i])
			} else if value.Valid {
				_m.ReviewCount = int(value.Int64)
			}
		case plancycle.FieldDaysRemaining:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field days_remaining", values[i])
			} else if value.Valid {
				_m.DaysRemaining = int(value.Int64)
			}
		case plancycle.FieldWeakSkillCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field weak_skill_count", values[i])
			} else if value.Valid {
				_m.WeakSkillCount = int(value.Int64)
			}
		case plancycle.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PlanCycle.
// This includes values selected through modifiers, order, etc.
func (_m *PlanCycle) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PlanCycle.
// Note that you need to call PlanCycle.Unwrap() before calling this method if this PlanCycle
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PlanCycle) Update() *PlanCycleUpdateOne {
	return NewPlanCycleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PlanCycle entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PlanCycle) Unwrap() *PlanCycle {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PlanCycle is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PlanCycle) String() string {
	var builder strings.Builder
	builder.WriteString("PlanCycle(")
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
	builder.WriteString("task_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.TaskCount))
	builder.WriteString(", ")
	builder.WriteString("focused_drill_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.FocusedDrillCount))
	builder.WriteString(", ")
	builder.WriteString("mixed_drill_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.MixedDrillCount))
	builder.WriteString(", ")
	builder.WriteString("mock_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.MockCount))
	builder.WriteString(", ")
	builder.WriteString("flashcard_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.FlashcardCount))
	builder.WriteString(", ")
	builder.WriteString("review_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReviewCount))
	builder.WriteString(", ")
	builder.WriteString("days_remaining=")
	builder.WriteString(fmt.Sprintf("%v", _m.DaysRemaining))
	builder.WriteString(", ")
	builder.WriteString("weak_skill_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.WeakSkillCount))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteByte(')')
	return builder.String()
}

// PlanCycles is a parsable slice of PlanCycle.
type PlanCycles []*PlanCycle
