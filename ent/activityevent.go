// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/atlas/ent/activityevent"
)

// ActivityEvent is the model entity for the ActivityEvent schema.
type ActivityEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Client-assigned id used for replay deduplication
	EventID string `json:"event_id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// NodeID holds the value of the "node_id" field.
	NodeID string `json:"node_id,omitempty"`
	// correct, incorrect, too_easy or confused
	Outcome string `json:"outcome,omitempty"`
	// Mastery level after the event was applied
	MasteryAfter float64 `json:"mastery_after,omitempty"`
	// StateAfter holds the value of the "state_after" field.
	StateAfter   string `json:"state_after,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ActivityEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case activityevent.FieldMasteryAfter:
			values[i] = new(sql.NullFloat64)
		case activityevent.FieldID, activityevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case activityevent.FieldEventID, activityevent.FieldSessionID, activityevent.FieldNodeID, activityevent.FieldOutcome, activityevent.FieldStateAfter:
			values[i] = new(sql.NullString)
		case activityevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ActivityEvent fields.
func (_m *ActivityEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case activityevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case activityevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case activityevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case activityevent.FieldEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_id", values[i])
			} else if value.Valid {
				_m.EventID = value.String
			}
		case activityevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case activityevent.FieldNodeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field node_id", values[i])
			} else if value.Valid {
				_m.NodeID = value.String
			}
		case activityevent.FieldOutcome:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field outcome", values[i])
			} else if value.Valid {
				_m.Outcome = value.String
			}
		case activityevent.FieldMasteryAfter:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field mastery_after", values[i])
			} else if value.Valid {
				_m.MasteryAfter = value.Float64
			}
		case activityevent.FieldStateAfter:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state_after", values[i])
			} else if value.Valid {
				_m.StateAfter = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ActivityEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ActivityEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ActivityEvent.
// Note that you need to call ActivityEvent.Unwrap() before calling this method if this ActivityEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ActivityEvent) Update() *ActivityEventUpdateOne {
	return NewActivityEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ActivityEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ActivityEvent) Unwrap() *ActivityEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ActivityEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ActivityEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ActivityEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("event_id=")
	builder.WriteString(_m.EventID)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("node_id=")
	builder.WriteString(_m.NodeID)
	builder.WriteString(", ")
	builder.WriteString("outcome=")
	builder.WriteString(_m.Outcome)
	builder.WriteString(", ")
	builder.WriteString("mastery_after=")
	builder.WriteString(fmt.Sprintf("%v", _m.MasteryAfter))
	builder.WriteString(", ")
	builder.WriteString("state_after=")
	builder.WriteString(_m.StateAfter)
	builder.WriteByte(')')
	return builder.String()
}

// ActivityEvents is a parsable slice of ActivityEvent.
type ActivityEvents []*ActivityEvent
