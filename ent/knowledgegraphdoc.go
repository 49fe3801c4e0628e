// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/atlas/ent/knowledgegraphdoc"
)

// KnowledgeGraphDoc is the model entity for the KnowledgeGraphDoc schema.
type KnowledgeGraphDoc struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Graph in the nodes/edges wire format
	Document map[string]interface{} `json:"document,omitempty"`
	// NodeCount holds the value of the "node_count" field.
	NodeCount int `json:"node_count,omitempty"`
	// EdgeCount holds the value of the "edge_count" field.
	EdgeCount int `json:"edge_count,omitempty"`
	// MaxDepth holds the value of the "max_depth" field.
	MaxDepth int `json:"max_depth,omitempty"`
	// Model that produced the extraction, empty for file imports
	Model string `json:"model,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*KnowledgeGraphDoc) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case knowledgegraphdoc.FieldDocument:
			values[i] = new([]byte)
		case knowledgegraphdoc.FieldID, knowledgegraphdoc.FieldNodeCount, knowledgegraphdoc.FieldEdgeCount, knowledgegraphdoc.FieldMaxDepth:
			values[i] = new(sql.NullInt64)
		case knowledgegraphdoc.FieldSessionID, knowledgegraphdoc.FieldModel:
			values[i] = new(sql.NullString)
		case knowledgegraphdoc.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the KnowledgeGraphDoc fields.
func (_m *KnowledgeGraphDoc) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case knowledgegraphdoc.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case knowledgegraphdoc.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case knowledgegraphdoc.FieldDocument:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field document", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Document); err != nil {
					return fmt.Errorf("unmarshal field document: %w", err)
				}
			}
		case knowledgegraphdoc.FieldNodeCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field node_count", values[i])
			} else if value.Valid {
				_m.NodeCount = int(value.Int64)
			}
		case knowledgegraphdoc.FieldEdgeCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field edge_count", values[i])
			} else if value.Valid {
				_m.EdgeCount = int(value.Int64)
			}
		case knowledgegraphdoc.FieldMaxDepth:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_depth", values[i])
			} else if value.Valid {
				_m.MaxDepth = int(value.Int64)
			}
		case knowledgegraphdoc.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case knowledgegraphdoc.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the KnowledgeGraphDoc.
// This includes values selected through modifiers, order, etc.
func (_m *KnowledgeGraphDoc) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this KnowledgeGraphDoc.
// Note that you need to call KnowledgeGraphDoc.Unwrap() before calling this method if this KnowledgeGraphDoc
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *KnowledgeGraphDoc) Update() *KnowledgeGraphDocUpdateOne {
	return NewKnowledgeGraphDocClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the KnowledgeGraphDoc entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *KnowledgeGraphDoc) Unwrap() *KnowledgeGraphDoc {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: KnowledgeGraphDoc is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *KnowledgeGraphDoc) String() string {
	var builder strings.Builder
	builder.WriteString("KnowledgeGraphDoc(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("document=")
	builder.WriteString(fmt.Sprintf("%v", _m.Document))
	builder.WriteString(", ")
	builder.WriteString("node_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.NodeCount))
	builder.WriteString(", ")
	builder.WriteString("edge_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.EdgeCount))
	builder.WriteString(", ")
	builder.WriteString("max_depth=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxDepth))
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// KnowledgeGraphDocs is a parsable slice of KnowledgeGraphDoc.
type KnowledgeGraphDocs []*KnowledgeGraphDoc
