// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/atlas/ent/lessonplandoc"
)

// LessonPlanDoc is the model entity for the LessonPlanDoc schema.
type LessonPlanDoc struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Ordered plan entries: node_id plus order_index
	Entries []map[string]interface{} `json:"entries,omitempty"`
	// Node ids removed during refinement
	Dropped []string `json:"dropped,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LessonPlanDoc) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lessonplandoc.FieldEntries, lessonplandoc.FieldDropped:
			values[i] = new([]byte)
		case lessonplandoc.FieldID:
			values[i] = new(sql.NullInt64)
		case lessonplandoc.FieldSessionID:
			values[i] = new(sql.NullString)
		case lessonplandoc.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LessonPlanDoc fields.
func (_m *LessonPlanDoc) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lessonplandoc.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case lessonplandoc.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case lessonplandoc.FieldEntries:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field entries", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Entries); err != nil {
					return fmt.Errorf("unmarshal field entries: %w", err)
				}
			}
		case lessonplandoc.FieldDropped:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field dropped", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Dropped); err != nil {
					return fmt.Errorf("unmarshal field dropped: %w", err)
				}
			}
		case lessonplandoc.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LessonPlanDoc.
// This includes values selected through modifiers, order, etc.
func (_m *LessonPlanDoc) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LessonPlanDoc.
// Note that you need to call LessonPlanDoc.Unwrap() before calling this method if this LessonPlanDoc
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LessonPlanDoc) Update() *LessonPlanDocUpdateOne {
	return NewLessonPlanDocClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LessonPlanDoc entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LessonPlanDoc) Unwrap() *LessonPlanDoc {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LessonPlanDoc is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LessonPlanDoc) String() string {
	var builder strings.Builder
	builder.WriteString("LessonPlanDoc(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("entries=")
	builder.WriteString(fmt.Sprintf("%v", _m.Entries))
	builder.WriteString(", ")
	builder.WriteString("dropped=")
	builder.WriteString(fmt.Sprintf("%v", _m.Dropped))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LessonPlanDocs is a parsable slice of LessonPlanDoc.
type LessonPlanDocs []*LessonPlanDoc
