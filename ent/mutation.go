// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/atlas/ent/activityevent"
	"github.com/abhisek/atlas/ent/knowledgegraphdoc"
	"github.com/abhisek/atlas/ent/lessonplandoc"
	"github.com/abhisek/atlas/ent/llmcallevent"
	"github.com/abhisek/atlas/ent/masteryrecord"
	"github.com/abhisek/atlas/ent/predicate"
	"github.com/abhisek/atlas/ent/session"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeActivityEvent     = "ActivityEvent"
	TypeKnowledgeGraphDoc = "KnowledgeGraphDoc"
	TypeLLMCallEvent      = "LLMCallEvent"
	TypeLessonPlanDoc     = "LessonPlanDoc"
	TypeMasteryRecord     = "MasteryRecord"
	TypeSession           = "Session"
)

// ActivityEventMutation represents an operation that mutates the ActivityEvent nodes in the graph.
type ActivityEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	event_id         *string
	session_id       *string
	node_id          *string
	outcome          *string
	mastery_after    *float64
	addmastery_after *float64
	state_after      *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*ActivityEvent, error)
	predicates       []predicate.ActivityEvent
}

var _ ent.Mutation = (*ActivityEventMutation)(nil)

// activityeventOption allows management of the mutation configuration using functional options.
type activityeventOption func(*ActivityEventMutation)

// newActivityEventMutation creates new mutation for the ActivityEvent entity.
func newActivityEventMutation(c config, op Op, opts ...activityeventOption) *ActivityEventMutation {
	m := &ActivityEventMutation{
		config:        c,
		op:            op,
		typ:           TypeActivityEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withActivityEventID sets the ID field of the mutation.
func withActivityEventID(id int) activityeventOption {
	return func(m *ActivityEventMutation) {
		var (
			err   error
			once  sync.Once
			value *ActivityEvent
		)
		m.oldValue = func(ctx context.Context) (*ActivityEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ActivityEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withActivityEvent sets the old ActivityEvent of the mutation.
func withActivityEvent(node *ActivityEvent) activityeventOption {
	return func(m *ActivityEventMutation) {
		m.oldValue = func(context.Context) (*ActivityEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ActivityEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ActivityEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ActivityEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ActivityEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ActivityEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *ActivityEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *ActivityEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the ActivityEvent entity.
// If the ActivityEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *ActivityEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *ActivityEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *ActivityEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ActivityEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ActivityEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ActivityEvent entity.
// If the ActivityEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ActivityEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetEventID sets the "event_id" field.
func (m *ActivityEventMutation) SetEventID(s string) {
	m.event_id = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *ActivityEventMutation) EventID() (r string, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the ActivityEvent entity.
// If the ActivityEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityEventMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *ActivityEventMutation) ResetEventID() {
	m.event_id = nil
}

// SetSessionID sets the "session_id" field.
func (m *ActivityEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ActivityEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ActivityEvent entity.
// If the ActivityEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ActivityEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetNodeID sets the "node_id" field.
func (m *ActivityEventMutation) SetNodeID(s string) {
	m.node_id = &s
}

// NodeID returns the value of the "node_id" field in the mutation.
func (m *ActivityEventMutation) NodeID() (r string, exists bool) {
	v := m.node_id
	if v == nil {
		return
	}
	return *v, true
}

// OldNodeID returns the old "node_id" field's value of the ActivityEvent entity.
// If the ActivityEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityEventMutation) OldNodeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodeID: %w", err)
	}
	return oldValue.NodeID, nil
}

// ResetNodeID resets all changes to the "node_id" field.
func (m *ActivityEventMutation) ResetNodeID() {
	m.node_id = nil
}

// SetOutcome sets the "outcome" field.
func (m *ActivityEventMutation) SetOutcome(s string) {
	m.outcome = &s
}

// Outcome returns the value of the "outcome" field in the mutation.
func (m *ActivityEventMutation) Outcome() (r string, exists bool) {
	v := m.outcome
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcome returns the old "outcome" field's value of the ActivityEvent entity.
// If the ActivityEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityEventMutation) OldOutcome(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcome: %w", err)
	}
	return oldValue.Outcome, nil
}

// ResetOutcome resets all changes to the "outcome" field.
func (m *ActivityEventMutation) ResetOutcome() {
	m.outcome = nil
}

// SetMasteryAfter sets the "mastery_after" field.
func (m *ActivityEventMutation) SetMasteryAfter(f float64) {
	m.mastery_after = &f
	m.addmastery_after = nil
}

// MasteryAfter returns the value of the "mastery_after" field in the mutation.
func (m *ActivityEventMutation) MasteryAfter() (r float64, exists bool) {
	v := m.mastery_after
	if v == nil {
		return
	}
	return *v, true
}

// OldMasteryAfter returns the old "mastery_after" field's value of the ActivityEvent entity.
// If the ActivityEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityEventMutation) OldMasteryAfter(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMasteryAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMasteryAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMasteryAfter: %w", err)
	}
	return oldValue.MasteryAfter, nil
}

// AddMasteryAfter adds f to the "mastery_after" field.
func (m *ActivityEventMutation) AddMasteryAfter(f float64) {
	if m.addmastery_after != nil {
		*m.addmastery_after += f
	} else {
		m.addmastery_after = &f
	}
}

// AddedMasteryAfter returns the value that was added to the "mastery_after" field in this mutation.
func (m *ActivityEventMutation) AddedMasteryAfter() (r float64, exists bool) {
	v := m.addmastery_after
	if v == nil {
		return
	}
	return *v, true
}

// ResetMasteryAfter resets all changes to the "mastery_after" field.
func (m *ActivityEventMutation) ResetMasteryAfter() {
	m.mastery_after = nil
	m.addmastery_after = nil
}

// SetStateAfter sets the "state_after" field.
func (m *ActivityEventMutation) SetStateAfter(s string) {
	m.state_after = &s
}

// StateAfter returns the value of the "state_after" field in the mutation.
func (m *ActivityEventMutation) StateAfter() (r string, exists bool) {
	v := m.state_after
	if v == nil {
		return
	}
	return *v, true
}

// OldStateAfter returns the old "state_after" field's value of the ActivityEvent entity.
// If the ActivityEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityEventMutation) OldStateAfter(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStateAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStateAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStateAfter: %w", err)
	}
	return oldValue.StateAfter, nil
}

// ResetStateAfter resets all changes to the "state_after" field.
func (m *ActivityEventMutation) ResetStateAfter() {
	m.state_after = nil
}

// Where appends a list predicates to the ActivityEventMutation builder.
func (m *ActivityEventMutation) Where(ps ...predicate.ActivityEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ActivityEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ActivityEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ActivityEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ActivityEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ActivityEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ActivityEvent).
func (m *ActivityEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ActivityEventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.sequence != nil {
		fields = append(fields, activityevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, activityevent.FieldTimestamp)
	}
	if m.event_id != nil {
		fields = append(fields, activityevent.FieldEventID)
	}
	if m.session_id != nil {
		fields = append(fields, activityevent.FieldSessionID)
	}
	if m.node_id != nil {
		fields = append(fields, activityevent.FieldNodeID)
	}
	if m.outcome != nil {
		fields = append(fields, activityevent.FieldOutcome)
	}
	if m.mastery_after != nil {
		fields = append(fields, activityevent.FieldMasteryAfter)
	}
	if m.state_after != nil {
		fields = append(fields, activityevent.FieldStateAfter)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ActivityEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case activityevent.FieldSequence:
		return m.Sequence()
	case activityevent.FieldTimestamp:
		return m.Timestamp()
	case activityevent.FieldEventID:
		return m.EventID()
	case activityevent.FieldSessionID:
		return m.SessionID()
	case activityevent.FieldNodeID:
		return m.NodeID()
	case activityevent.FieldOutcome:
		return m.Outcome()
	case activityevent.FieldMasteryAfter:
		return m.MasteryAfter()
	case activityevent.FieldStateAfter:
		return m.StateAfter()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ActivityEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case activityevent.FieldSequence:
		return m.OldSequence(ctx)
	case activityevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case activityevent.FieldEventID:
		return m.OldEventID(ctx)
	case activityevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case activityevent.FieldNodeID:
		return m.OldNodeID(ctx)
	case activityevent.FieldOutcome:
		return m.OldOutcome(ctx)
	case activityevent.FieldMasteryAfter:
		return m.OldMasteryAfter(ctx)
	case activityevent.FieldStateAfter:
		return m.OldStateAfter(ctx)
	}
	return nil, fmt.Errorf("unknown ActivityEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActivityEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case activityevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case activityevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case activityevent.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case activityevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case activityevent.FieldNodeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodeID(v)
		return nil
	case activityevent.FieldOutcome:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcome(v)
		return nil
	case activityevent.FieldMasteryAfter:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMasteryAfter(v)
		return nil
	case activityevent.FieldStateAfter:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStateAfter(v)
		return nil
	}
	return fmt.Errorf("unknown ActivityEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ActivityEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, activityevent.FieldSequence)
	}
	if m.addmastery_after != nil {
		fields = append(fields, activityevent.FieldMasteryAfter)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ActivityEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case activityevent.FieldSequence:
		return m.AddedSequence()
	case activityevent.FieldMasteryAfter:
		return m.AddedMasteryAfter()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActivityEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case activityevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case activityevent.FieldMasteryAfter:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMasteryAfter(v)
		return nil
	}
	return fmt.Errorf("unknown ActivityEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ActivityEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ActivityEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ActivityEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ActivityEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ActivityEventMutation) ResetField(name string) error {
	switch name {
	case activityevent.FieldSequence:
		m.ResetSequence()
		return nil
	case activityevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case activityevent.FieldEventID:
		m.ResetEventID()
		return nil
	case activityevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case activityevent.FieldNodeID:
		m.ResetNodeID()
		return nil
	case activityevent.FieldOutcome:
		m.ResetOutcome()
		return nil
	case activityevent.FieldMasteryAfter:
		m.ResetMasteryAfter()
		return nil
	case activityevent.FieldStateAfter:
		m.ResetStateAfter()
		return nil
	}
	return fmt.Errorf("unknown ActivityEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ActivityEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ActivityEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ActivityEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ActivityEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ActivityEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ActivityEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ActivityEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ActivityEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ActivityEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ActivityEvent edge %s", name)
}

// KnowledgeGraphDocMutation represents an operation that mutates the KnowledgeGraphDoc nodes in the graph.
type KnowledgeGraphDocMutation struct {
	config
	op            Op
	typ           string
	id            *int
	session_id    *string
	document      *map[string]interface{}
	node_count    *int
	addnode_count *int
	edge_count    *int
	addedge_count *int
	max_depth     *int
	addmax_depth  *int
	model         *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*KnowledgeGraphDoc, error)
	predicates    []predicate.KnowledgeGraphDoc
}

var _ ent.Mutation = (*KnowledgeGraphDocMutation)(nil)

// knowledgegraphdocOption allows management of the mutation configuration using functional options.
type knowledgegraphdocOption func(*KnowledgeGraphDocMutation)

// newKnowledgeGraphDocMutation creates new mutation for the KnowledgeGraphDoc entity.
func newKnowledgeGraphDocMutation(c config, op Op, opts ...knowledgegraphdocOption) *KnowledgeGraphDocMutation {
	m := &KnowledgeGraphDocMutation{
		config:        c,
		op:            op,
		typ:           TypeKnowledgeGraphDoc,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withKnowledgeGraphDocID sets the ID field of the mutation.
func withKnowledgeGraphDocID(id int) knowledgegraphdocOption {
	return func(m *KnowledgeGraphDocMutation) {
		var (
			err   error
			once  sync.Once
			value *KnowledgeGraphDoc
		)
		m.oldValue = func(ctx context.Context) (*KnowledgeGraphDoc, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().KnowledgeGraphDoc.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withKnowledgeGraphDoc sets the old KnowledgeGraphDoc of the mutation.
func withKnowledgeGraphDoc(node *KnowledgeGraphDoc) knowledgegraphdocOption {
	return func(m *KnowledgeGraphDocMutation) {
		m.oldValue = func(context.Context) (*KnowledgeGraphDoc, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m KnowledgeGraphDocMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m KnowledgeGraphDocMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *KnowledgeGraphDocMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *KnowledgeGraphDocMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().KnowledgeGraphDoc.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *KnowledgeGraphDocMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *KnowledgeGraphDocMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the KnowledgeGraphDoc entity.
// If the KnowledgeGraphDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeGraphDocMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *KnowledgeGraphDocMutation) ResetSessionID() {
	m.session_id = nil
}

// SetDocument sets the "document" field.
func (m *KnowledgeGraphDocMutation) SetDocument(value map[string]interface{}) {
	m.document = &value
}

// Document returns the value of the "document" field in the mutation.
func (m *KnowledgeGraphDocMutation) Document() (r map[string]interface{}, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocument returns the old "document" field's value of the KnowledgeGraphDoc entity.
// If the KnowledgeGraphDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeGraphDocMutation) OldDocument(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocument is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocument requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocument: %w", err)
	}
	return oldValue.Document, nil
}

// ResetDocument resets all changes to the "document" field.
func (m *KnowledgeGraphDocMutation) ResetDocument() {
	m.document = nil
}

// SetNodeCount sets the "node_count" field.
func (m *KnowledgeGraphDocMutation) SetNodeCount(i int) {
	m.node_count = &i
	m.addnode_count = nil
}

// NodeCount returns the value of the "node_count" field in the mutation.
func (m *KnowledgeGraphDocMutation) NodeCount() (r int, exists bool) {
	v := m.node_count
	if v == nil {
		return
	}
	return *v, true
}

// OldNodeCount returns the old "node_count" field's value of the KnowledgeGraphDoc entity.
// If the KnowledgeGraphDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeGraphDocMutation) OldNodeCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodeCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodeCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodeCount: %w", err)
	}
	return oldValue.NodeCount, nil
}

// AddNodeCount adds i to the "node_count" field.
func (m *KnowledgeGraphDocMutation) AddNodeCount(i int) {
	if m.addnode_count != nil {
		*m.addnode_count += i
	} else {
		m.addnode_count = &i
	}
}

// AddedNodeCount returns the value that was added to the "node_count" field in this mutation.
func (m *KnowledgeGraphDocMutation) AddedNodeCount() (r int, exists bool) {
	v := m.addnode_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetNodeCount resets all changes to the "node_count" field.
func (m *KnowledgeGraphDocMutation) ResetNodeCount() {
	m.node_count = nil
	m.addnode_count = nil
}

// SetEdgeCount sets the "edge_count" field.
func (m *KnowledgeGraphDocMutation) SetEdgeCount(i int) {
	m.edge_count = &i
	m.addedge_count = nil
}

// EdgeCount returns the value of the "edge_count" field in the mutation.
func (m *KnowledgeGraphDocMutation) EdgeCount() (r int, exists bool) {
	v := m.edge_count
	if v == nil {
		return
	}
	return *v, true
}

// OldEdgeCount returns the old "edge_count" field's value of the KnowledgeGraphDoc entity.
// If the KnowledgeGraphDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeGraphDocMutation) OldEdgeCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEdgeCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEdgeCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEdgeCount: %w", err)
	}
	return oldValue.EdgeCount, nil
}

// AddEdgeCount adds i to the "edge_count" field.
func (m *KnowledgeGraphDocMutation) AddEdgeCount(i int) {
	if m.addedge_count != nil {
		*m.addedge_count += i
	} else {
		m.addedge_count = &i
	}
}

// AddedEdgeCount returns the value that was added to the "edge_count" field in this mutation.
func (m *KnowledgeGraphDocMutation) AddedEdgeCount() (r int, exists bool) {
	v := m.addedge_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetEdgeCount resets all changes to the "edge_count" field.
func (m *KnowledgeGraphDocMutation) ResetEdgeCount() {
	m.edge_count = nil
	m.addedge_count = nil
}

// SetMaxDepth sets the "max_depth" field.
func (m *KnowledgeGraphDocMutation) SetMaxDepth(i int) {
	m.max_depth = &i
	m.addmax_depth = nil
}

// MaxDepth returns the value of the "max_depth" field in the mutation.
func (m *KnowledgeGraphDocMutation) MaxDepth() (r int, exists bool) {
	v := m.max_depth
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxDepth returns the old "max_depth" field's value of the KnowledgeGraphDoc entity.
// If the KnowledgeGraphDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeGraphDocMutation) OldMaxDepth(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxDepth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxDepth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxDepth: %w", err)
	}
	return oldValue.MaxDepth, nil
}

// AddMaxDepth adds i to the "max_depth" field.
func (m *KnowledgeGraphDocMutation) AddMaxDepth(i int) {
	if m.addmax_depth != nil {
		*m.addmax_depth += i
	} else {
		m.addmax_depth = &i
	}
}

// AddedMaxDepth returns the value that was added to the "max_depth" field in this mutation.
func (m *KnowledgeGraphDocMutation) AddedMaxDepth() (r int, exists bool) {
	v := m.addmax_depth
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxDepth resets all changes to the "max_depth" field.
func (m *KnowledgeGraphDocMutation) ResetMaxDepth() {
	m.max_depth = nil
	m.addmax_depth = nil
}

// SetModel sets the "model" field.
func (m *KnowledgeGraphDocMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *KnowledgeGraphDocMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the KnowledgeGraphDoc entity.
// If the KnowledgeGraphDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeGraphDocMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *KnowledgeGraphDocMutation) ResetModel() {
	m.model = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *KnowledgeGraphDocMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *KnowledgeGraphDocMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the KnowledgeGraphDoc entity.
// If the KnowledgeGraphDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeGraphDocMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *KnowledgeGraphDocMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the KnowledgeGraphDocMutation builder.
func (m *KnowledgeGraphDocMutation) Where(ps ...predicate.KnowledgeGraphDoc) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the KnowledgeGraphDocMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *KnowledgeGraphDocMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.KnowledgeGraphDoc, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *KnowledgeGraphDocMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *KnowledgeGraphDocMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (KnowledgeGraphDoc).
func (m *KnowledgeGraphDocMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *KnowledgeGraphDocMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.session_id != nil {
		fields = append(fields, knowledgegraphdoc.FieldSessionID)
	}
	if m.document != nil {
		fields = append(fields, knowledgegraphdoc.FieldDocument)
	}
	if m.node_count != nil {
		fields = append(fields, knowledgegraphdoc.FieldNodeCount)
	}
	if m.edge_count != nil {
		fields = append(fields, knowledgegraphdoc.FieldEdgeCount)
	}
	if m.max_depth != nil {
		fields = append(fields, knowledgegraphdoc.FieldMaxDepth)
	}
	if m.model != nil {
		fields = append(fields, knowledgegraphdoc.FieldModel)
	}
	if m.created_at != nil {
		fields = append(fields, knowledgegraphdoc.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *KnowledgeGraphDocMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case knowledgegraphdoc.FieldSessionID:
		return m.SessionID()
	case knowledgegraphdoc.FieldDocument:
		return m.Document()
	case knowledgegraphdoc.FieldNodeCount:
		return m.NodeCount()
	case knowledgegraphdoc.FieldEdgeCount:
		return m.EdgeCount()
	case knowledgegraphdoc.FieldMaxDepth:
		return m.MaxDepth()
	case knowledgegraphdoc.FieldModel:
		return m.Model()
	case knowledgegraphdoc.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *KnowledgeGraphDocMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case knowledgegraphdoc.FieldSessionID:
		return m.OldSessionID(ctx)
	case knowledgegraphdoc.FieldDocument:
		return m.OldDocument(ctx)
	case knowledgegraphdoc.FieldNodeCount:
		return m.OldNodeCount(ctx)
	case knowledgegraphdoc.FieldEdgeCount:
		return m.OldEdgeCount(ctx)
	case knowledgegraphdoc.FieldMaxDepth:
		return m.OldMaxDepth(ctx)
	case knowledgegraphdoc.FieldModel:
		return m.OldModel(ctx)
	case knowledgegraphdoc.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown KnowledgeGraphDoc field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KnowledgeGraphDocMutation) SetField(name string, value ent.Value) error {
	switch name {
	case knowledgegraphdoc.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case knowledgegraphdoc.FieldDocument:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocument(v)
		return nil
	case knowledgegraphdoc.FieldNodeCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodeCount(v)
		return nil
	case knowledgegraphdoc.FieldEdgeCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEdgeCount(v)
		return nil
	case knowledgegraphdoc.FieldMaxDepth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxDepth(v)
		return nil
	case knowledgegraphdoc.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case knowledgegraphdoc.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown KnowledgeGraphDoc field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *KnowledgeGraphDocMutation) AddedFields() []string {
	var fields []string
	if m.addnode_count != nil {
		fields = append(fields, knowledgegraphdoc.FieldNodeCount)
	}
	if m.addedge_count != nil {
		fields = append(fields, knowledgegraphdoc.FieldEdgeCount)
	}
	if m.addmax_depth != nil {
		fields = append(fields, knowledgegraphdoc.FieldMaxDepth)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *KnowledgeGraphDocMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case knowledgegraphdoc.FieldNodeCount:
		return m.AddedNodeCount()
	case knowledgegraphdoc.FieldEdgeCount:
		return m.AddedEdgeCount()
	case knowledgegraphdoc.FieldMaxDepth:
		return m.AddedMaxDepth()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KnowledgeGraphDocMutation) AddField(name string, value ent.Value) error {
	switch name {
	case knowledgegraphdoc.FieldNodeCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNodeCount(v)
		return nil
	case knowledgegraphdoc.FieldEdgeCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEdgeCount(v)
		return nil
	case knowledgegraphdoc.FieldMaxDepth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxDepth(v)
		return nil
	}
	return fmt.Errorf("unknown KnowledgeGraphDoc numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *KnowledgeGraphDocMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *KnowledgeGraphDocMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *KnowledgeGraphDocMutation) ClearField(name string) error {
	return fmt.Errorf("unknown KnowledgeGraphDoc nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *KnowledgeGraphDocMutation) ResetField(name string) error {
	switch name {
	case knowledgegraphdoc.FieldSessionID:
		m.ResetSessionID()
		return nil
	case knowledgegraphdoc.FieldDocument:
		m.ResetDocument()
		return nil
	case knowledgegraphdoc.FieldNodeCount:
		m.ResetNodeCount()
		return nil
	case knowledgegraphdoc.FieldEdgeCount:
		m.ResetEdgeCount()
		return nil
	case knowledgegraphdoc.FieldMaxDepth:
		m.ResetMaxDepth()
		return nil
	case knowledgegraphdoc.FieldModel:
		m.ResetModel()
		return nil
	case knowledgegraphdoc.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown KnowledgeGraphDoc field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *KnowledgeGraphDocMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *KnowledgeGraphDocMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *KnowledgeGraphDocMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *KnowledgeGraphDocMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *KnowledgeGraphDocMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *KnowledgeGraphDocMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *KnowledgeGraphDocMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown KnowledgeGraphDoc unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *KnowledgeGraphDocMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown KnowledgeGraphDoc edge %s", name)
}

// LLMCallEventMutation represents an operation that mutates the LLMCallEvent nodes in the graph.
type LLMCallEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMCallEvent, error)
	predicates       []predicate.LLMCallEvent
}

var _ ent.Mutation = (*LLMCallEventMutation)(nil)

// llmcalleventOption allows management of the mutation configuration using functional options.
type llmcalleventOption func(*LLMCallEventMutation)

// newLLMCallEventMutation creates new mutation for the LLMCallEvent entity.
func newLLMCallEventMutation(c config, op Op, opts ...llmcalleventOption) *LLMCallEventMutation {
	m := &LLMCallEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMCallEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMCallEventID sets the ID field of the mutation.
func withLLMCallEventID(id int) llmcalleventOption {
	return func(m *LLMCallEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMCallEvent
		)
		m.oldValue = func(ctx context.Context) (*LLMCallEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMCallEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMCallEvent sets the old LLMCallEvent of the mutation.
func withLLMCallEvent(node *LLMCallEvent) llmcalleventOption {
	return func(m *LLMCallEventMutation) {
		m.oldValue = func(context.Context) (*LLMCallEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMCallEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMCallEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMCallEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMCallEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMCallEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *LLMCallEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *LLMCallEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the LLMCallEvent entity.
// If the LLMCallEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMCallEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *LLMCallEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *LLMCallEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *LLMCallEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *LLMCallEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *LLMCallEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the LLMCallEvent entity.
// If the LLMCallEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMCallEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *LLMCallEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProvider sets the "provider" field.
func (m *LLMCallEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMCallEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMCallEvent entity.
// If the LLMCallEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMCallEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMCallEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMCallEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMCallEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMCallEvent entity.
// If the LLMCallEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMCallEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMCallEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMCallEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMCallEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMCallEvent entity.
// If the LLMCallEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMCallEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMCallEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMCallEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMCallEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMCallEvent entity.
// If the LLMCallEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMCallEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMCallEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMCallEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMCallEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMCallEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMCallEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMCallEvent entity.
// If the LLMCallEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMCallEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMCallEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMCallEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMCallEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMCallEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMCallEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMCallEvent entity.
// If the LLMCallEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMCallEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMCallEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMCallEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMCallEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *LLMCallEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMCallEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMCallEvent entity.
// If the LLMCallEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMCallEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LLMCallEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMCallEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMCallEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMCallEvent entity.
// If the LLMCallEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMCallEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMCallEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// Where appends a list predicates to the LLMCallEventMutation builder.
func (m *LLMCallEventMutation) Where(ps ...predicate.LLMCallEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMCallEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMCallEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMCallEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMCallEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMCallEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMCallEvent).
func (m *LLMCallEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMCallEventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.sequence != nil {
		fields = append(fields, llmcallevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, llmcallevent.FieldTimestamp)
	}
	if m.provider != nil {
		fields = append(fields, llmcallevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmcallevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llmcallevent.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmcallevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmcallevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmcallevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, llmcallevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, llmcallevent.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMCallEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmcallevent.FieldSequence:
		return m.Sequence()
	case llmcallevent.FieldTimestamp:
		return m.Timestamp()
	case llmcallevent.FieldProvider:
		return m.Provider()
	case llmcallevent.FieldModel:
		return m.Model()
	case llmcallevent.FieldPurpose:
		return m.Purpose()
	case llmcallevent.FieldInputTokens:
		return m.InputTokens()
	case llmcallevent.FieldOutputTokens:
		return m.OutputTokens()
	case llmcallevent.FieldLatencyMs:
		return m.LatencyMs()
	case llmcallevent.FieldSuccess:
		return m.Success()
	case llmcallevent.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMCallEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmcallevent.FieldSequence:
		return m.OldSequence(ctx)
	case llmcallevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case llmcallevent.FieldProvider:
		return m.OldProvider(ctx)
	case llmcallevent.FieldModel:
		return m.OldModel(ctx)
	case llmcallevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmcallevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmcallevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmcallevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmcallevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case llmcallevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown LLMCallEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMCallEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmcallevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case llmcallevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case llmcallevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmcallevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmcallevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmcallevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmcallevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmcallevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmcallevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llmcallevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown LLMCallEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMCallEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, llmcallevent.FieldSequence)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, llmcallevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmcallevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmcallevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMCallEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmcallevent.FieldSequence:
		return m.AddedSequence()
	case llmcallevent.FieldInputTokens:
		return m.AddedInputTokens()
	case llmcallevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmcallevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMCallEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmcallevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case llmcallevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmcallevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmcallevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMCallEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMCallEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMCallEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMCallEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LLMCallEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMCallEventMutation) ResetField(name string) error {
	switch name {
	case llmcallevent.FieldSequence:
		m.ResetSequence()
		return nil
	case llmcallevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case llmcallevent.FieldProvider:
		m.ResetProvider()
		return nil
	case llmcallevent.FieldModel:
		m.ResetModel()
		return nil
	case llmcallevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmcallevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmcallevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmcallevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmcallevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llmcallevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown LLMCallEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMCallEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMCallEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMCallEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMCallEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMCallEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMCallEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMCallEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMCallEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMCallEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMCallEvent edge %s", name)
}

// LessonPlanDocMutation represents an operation that mutates the LessonPlanDoc nodes in the graph.
type LessonPlanDocMutation struct {
	config
	op            Op
	typ           string
	id            *int
	session_id    *string
	entries       *[]map[string]interface{}
	appendentries []map[string]interface{}
	dropped       *[]string
	appenddropped []string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*LessonPlanDoc, error)
	predicates    []predicate.LessonPlanDoc
}

var _ ent.Mutation = (*LessonPlanDocMutation)(nil)

// lessonplandocOption allows management of the mutation configuration using functional options.
type lessonplandocOption func(*LessonPlanDocMutation)

// newLessonPlanDocMutation creates new mutation for the LessonPlanDoc entity.
func newLessonPlanDocMutation(c config, op Op, opts ...lessonplandocOption) *LessonPlanDocMutation {
	m := &LessonPlanDocMutation{
		config:        c,
		op:            op,
		typ:           TypeLessonPlanDoc,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLessonPlanDocID sets the ID field of the mutation.
func withLessonPlanDocID(id int) lessonplandocOption {
	return func(m *LessonPlanDocMutation) {
		var (
			err   error
			once  sync.Once
			value *LessonPlanDoc
		)
		m.oldValue = func(ctx context.Context) (*LessonPlanDoc, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LessonPlanDoc.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLessonPlanDoc sets the old LessonPlanDoc of the mutation.
func withLessonPlanDoc(node *LessonPlanDoc) lessonplandocOption {
	return func(m *LessonPlanDocMutation) {
		m.oldValue = func(context.Context) (*LessonPlanDoc, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LessonPlanDocMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LessonPlanDocMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LessonPlanDocMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LessonPlanDocMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LessonPlanDoc.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *LessonPlanDocMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *LessonPlanDocMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the LessonPlanDoc entity.
// If the LessonPlanDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonPlanDocMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *LessonPlanDocMutation) ResetSessionID() {
	m.session_id = nil
}

// SetEntries sets the "entries" field.
func (m *LessonPlanDocMutation) SetEntries(value []map[string]interface{}) {
	m.entries = &value
	m.appendentries = nil
}

// Entries returns the value of the "entries" field in the mutation.
func (m *LessonPlanDocMutation) Entries() (r []map[string]interface{}, exists bool) {
	v := m.entries
	if v == nil {
		return
	}
	return *v, true
}

// OldEntries returns the old "entries" field's value of the LessonPlanDoc entity.
// If the LessonPlanDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonPlanDocMutation) OldEntries(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntries: %w", err)
	}
	return oldValue.Entries, nil
}

// AppendEntries adds value to the "entries" field.
func (m *LessonPlanDocMutation) AppendEntries(value []map[string]interface{}) {
	m.appendentries = append(m.appendentries, value...)
}

// AppendedEntries returns the list of values that were appended to the "entries" field in this mutation.
func (m *LessonPlanDocMutation) AppendedEntries() ([]map[string]interface{}, bool) {
	if len(m.appendentries) == 0 {
		return nil, false
	}
	return m.appendentries, true
}

// ResetEntries resets all changes to the "entries" field.
func (m *LessonPlanDocMutation) ResetEntries() {
	m.entries = nil
	m.appendentries = nil
}

// SetDropped sets the "dropped" field.
func (m *LessonPlanDocMutation) SetDropped(s []string) {
	m.dropped = &s
	m.appenddropped = nil
}

// Dropped returns the value of the "dropped" field in the mutation.
func (m *LessonPlanDocMutation) Dropped() (r []string, exists bool) {
	v := m.dropped
	if v == nil {
		return
	}
	return *v, true
}

// OldDropped returns the old "dropped" field's value of the LessonPlanDoc entity.
// If the LessonPlanDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonPlanDocMutation) OldDropped(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDropped is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDropped requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDropped: %w", err)
	}
	return oldValue.Dropped, nil
}

// AppendDropped adds s to the "dropped" field.
func (m *LessonPlanDocMutation) AppendDropped(s []string) {
	m.appenddropped = append(m.appenddropped, s...)
}

// AppendedDropped returns the list of values that were appended to the "dropped" field in this mutation.
func (m *LessonPlanDocMutation) AppendedDropped() ([]string, bool) {
	if len(m.appenddropped) == 0 {
		return nil, false
	}
	return m.appenddropped, true
}

// ClearDropped clears the value of the "dropped" field.
func (m *LessonPlanDocMutation) ClearDropped() {
	m.dropped = nil
	m.appenddropped = nil
	m.clearedFields[lessonplandoc.FieldDropped] = struct{}{}
}

// DroppedCleared returns if the "dropped" field was cleared in this mutation.
func (m *LessonPlanDocMutation) DroppedCleared() bool {
	_, ok := m.clearedFields[lessonplandoc.FieldDropped]
	return ok
}

// ResetDropped resets all changes to the "dropped" field.
func (m *LessonPlanDocMutation) ResetDropped() {
	m.dropped = nil
	m.appenddropped = nil
	delete(m.clearedFields, lessonplandoc.FieldDropped)
}

// SetCreatedAt sets the "created_at" field.
func (m *LessonPlanDocMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LessonPlanDocMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LessonPlanDoc entity.
// If the LessonPlanDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonPlanDocMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LessonPlanDocMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the LessonPlanDocMutation builder.
func (m *LessonPlanDocMutation) Where(ps ...predicate.LessonPlanDoc) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LessonPlanDocMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LessonPlanDocMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LessonPlanDoc, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LessonPlanDocMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LessonPlanDocMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LessonPlanDoc).
func (m *LessonPlanDocMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LessonPlanDocMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.session_id != nil {
		fields = append(fields, lessonplandoc.FieldSessionID)
	}
	if m.entries != nil {
		fields = append(fields, lessonplandoc.FieldEntries)
	}
	if m.dropped != nil {
		fields = append(fields, lessonplandoc.FieldDropped)
	}
	if m.created_at != nil {
		fields = append(fields, lessonplandoc.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LessonPlanDocMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lessonplandoc.FieldSessionID:
		return m.SessionID()
	case lessonplandoc.FieldEntries:
		return m.Entries()
	case lessonplandoc.FieldDropped:
		return m.Dropped()
	case lessonplandoc.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LessonPlanDocMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lessonplandoc.FieldSessionID:
		return m.OldSessionID(ctx)
	case lessonplandoc.FieldEntries:
		return m.OldEntries(ctx)
	case lessonplandoc.FieldDropped:
		return m.OldDropped(ctx)
	case lessonplandoc.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LessonPlanDoc field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LessonPlanDocMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lessonplandoc.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case lessonplandoc.FieldEntries:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntries(v)
		return nil
	case lessonplandoc.FieldDropped:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDropped(v)
		return nil
	case lessonplandoc.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LessonPlanDoc field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LessonPlanDocMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LessonPlanDocMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LessonPlanDocMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown LessonPlanDoc numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LessonPlanDocMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(lessonplandoc.FieldDropped) {
		fields = append(fields, lessonplandoc.FieldDropped)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LessonPlanDocMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LessonPlanDocMutation) ClearField(name string) error {
	switch name {
	case lessonplandoc.FieldDropped:
		m.ClearDropped()
		return nil
	}
	return fmt.Errorf("unknown LessonPlanDoc nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LessonPlanDocMutation) ResetField(name string) error {
	switch name {
	case lessonplandoc.FieldSessionID:
		m.ResetSessionID()
		return nil
	case lessonplandoc.FieldEntries:
		m.ResetEntries()
		return nil
	case lessonplandoc.FieldDropped:
		m.ResetDropped()
		return nil
	case lessonplandoc.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown LessonPlanDoc field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LessonPlanDocMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LessonPlanDocMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LessonPlanDocMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LessonPlanDocMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LessonPlanDocMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LessonPlanDocMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LessonPlanDocMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LessonPlanDoc unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LessonPlanDocMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LessonPlanDoc edge %s", name)
}

// MasteryRecordMutation represents an operation that mutates the MasteryRecord nodes in the graph.
type MasteryRecordMutation struct {
	config
	op               Op
	typ              string
	id               *int
	session_id       *string
	node_id          *string
	state            *string
	mastery_level    *float64
	addmastery_level *float64
	completed_at     *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*MasteryRecord, error)
	predicates       []predicate.MasteryRecord
}

var _ ent.Mutation = (*MasteryRecordMutation)(nil)

// masteryrecordOption allows management of the mutation configuration using functional options.
type masteryrecordOption func(*MasteryRecordMutation)

// newMasteryRecordMutation creates new mutation for the MasteryRecord entity.
func newMasteryRecordMutation(c config, op Op, opts ...masteryrecordOption) *MasteryRecordMutation {
	m := &MasteryRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeMasteryRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMasteryRecordID sets the ID field of the mutation.
func withMasteryRecordID(id int) masteryrecordOption {
	return func(m *MasteryRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *MasteryRecord
		)
		m.oldValue = func(ctx context.Context) (*MasteryRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MasteryRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMasteryRecord sets the old MasteryRecord of the mutation.
func withMasteryRecord(node *MasteryRecord) masteryrecordOption {
	return func(m *MasteryRecordMutation) {
		m.oldValue = func(context.Context) (*MasteryRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MasteryRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MasteryRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MasteryRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MasteryRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MasteryRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *MasteryRecordMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *MasteryRecordMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *MasteryRecordMutation) ResetSessionID() {
	m.session_id = nil
}

// SetNodeID sets the "node_id" field.
func (m *MasteryRecordMutation) SetNodeID(s string) {
	m.node_id = &s
}

// NodeID returns the value of the "node_id" field in the mutation.
func (m *MasteryRecordMutation) NodeID() (r string, exists bool) {
	v := m.node_id
	if v == nil {
		return
	}
	return *v, true
}

// OldNodeID returns the old "node_id" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldNodeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodeID: %w", err)
	}
	return oldValue.NodeID, nil
}

// ResetNodeID resets all changes to the "node_id" field.
func (m *MasteryRecordMutation) ResetNodeID() {
	m.node_id = nil
}

// SetState sets the "state" field.
func (m *MasteryRecordMutation) SetState(s string) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *MasteryRecordMutation) State() (r string, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *MasteryRecordMutation) ResetState() {
	m.state = nil
}

// SetMasteryLevel sets the "mastery_level" field.
func (m *MasteryRecordMutation) SetMasteryLevel(f float64) {
	m.mastery_level = &f
	m.addmastery_level = nil
}

// MasteryLevel returns the value of the "mastery_level" field in the mutation.
func (m *MasteryRecordMutation) MasteryLevel() (r float64, exists bool) {
	v := m.mastery_level
	if v == nil {
		return
	}
	return *v, true
}

// OldMasteryLevel returns the old "mastery_level" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldMasteryLevel(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMasteryLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMasteryLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMasteryLevel: %w", err)
	}
	return oldValue.MasteryLevel, nil
}

// AddMasteryLevel adds f to the "mastery_level" field.
func (m *MasteryRecordMutation) AddMasteryLevel(f float64) {
	if m.addmastery_level != nil {
		*m.addmastery_level += f
	} else {
		m.addmastery_level = &f
	}
}

// AddedMasteryLevel returns the value that was added to the "mastery_level" field in this mutation.
func (m *MasteryRecordMutation) AddedMasteryLevel() (r float64, exists bool) {
	v := m.addmastery_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetMasteryLevel resets all changes to the "mastery_level" field.
func (m *MasteryRecordMutation) ResetMasteryLevel() {
	m.mastery_level = nil
	m.addmastery_level = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *MasteryRecordMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *MasteryRecordMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *MasteryRecordMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[masteryrecord.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *MasteryRecordMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[masteryrecord.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *MasteryRecordMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, masteryrecord.FieldCompletedAt)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MasteryRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MasteryRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MasteryRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the MasteryRecordMutation builder.
func (m *MasteryRecordMutation) Where(ps ...predicate.MasteryRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MasteryRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MasteryRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MasteryRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MasteryRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MasteryRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MasteryRecord).
func (m *MasteryRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MasteryRecordMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.session_id != nil {
		fields = append(fields, masteryrecord.FieldSessionID)
	}
	if m.node_id != nil {
		fields = append(fields, masteryrecord.FieldNodeID)
	}
	if m.state != nil {
		fields = append(fields, masteryrecord.FieldState)
	}
	if m.mastery_level != nil {
		fields = append(fields, masteryrecord.FieldMasteryLevel)
	}
	if m.completed_at != nil {
		fields = append(fields, masteryrecord.FieldCompletedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, masteryrecord.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MasteryRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case masteryrecord.FieldSessionID:
		return m.SessionID()
	case masteryrecord.FieldNodeID:
		return m.NodeID()
	case masteryrecord.FieldState:
		return m.State()
	case masteryrecord.FieldMasteryLevel:
		return m.MasteryLevel()
	case masteryrecord.FieldCompletedAt:
		return m.CompletedAt()
	case masteryrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MasteryRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case masteryrecord.FieldSessionID:
		return m.OldSessionID(ctx)
	case masteryrecord.FieldNodeID:
		return m.OldNodeID(ctx)
	case masteryrecord.FieldState:
		return m.OldState(ctx)
	case masteryrecord.FieldMasteryLevel:
		return m.OldMasteryLevel(ctx)
	case masteryrecord.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case masteryrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MasteryRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MasteryRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case masteryrecord.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case masteryrecord.FieldNodeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodeID(v)
		return nil
	case masteryrecord.FieldState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case masteryrecord.FieldMasteryLevel:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMasteryLevel(v)
		return nil
	case masteryrecord.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case masteryrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MasteryRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MasteryRecordMutation) AddedFields() []string {
	var fields []string
	if m.addmastery_level != nil {
		fields = append(fields, masteryrecord.FieldMasteryLevel)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MasteryRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case masteryrecord.FieldMasteryLevel:
		return m.AddedMasteryLevel()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MasteryRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case masteryrecord.FieldMasteryLevel:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMasteryLevel(v)
		return nil
	}
	return fmt.Errorf("unknown MasteryRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MasteryRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(masteryrecord.FieldCompletedAt) {
		fields = append(fields, masteryrecord.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MasteryRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MasteryRecordMutation) ClearField(name string) error {
	switch name {
	case masteryrecord.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown MasteryRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MasteryRecordMutation) ResetField(name string) error {
	switch name {
	case masteryrecord.FieldSessionID:
		m.ResetSessionID()
		return nil
	case masteryrecord.FieldNodeID:
		m.ResetNodeID()
		return nil
	case masteryrecord.FieldState:
		m.ResetState()
		return nil
	case masteryrecord.FieldMasteryLevel:
		m.ResetMasteryLevel()
		return nil
	case masteryrecord.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case masteryrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown MasteryRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MasteryRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MasteryRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MasteryRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MasteryRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MasteryRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MasteryRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MasteryRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MasteryRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MasteryRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MasteryRecord edge %s", name)
}

// SessionMutation represents an operation that mutates the Session nodes in the graph.
type SessionMutation struct {
	config
	op            Op
	typ           string
	id            *int
	session_id    *string
	goal          *string
	status        *string
	profile       *map[string]interface{}
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Session, error)
	predicates    []predicate.Session
}

var _ ent.Mutation = (*SessionMutation)(nil)

// sessionOption allows management of the mutation configuration using functional options.
type sessionOption func(*SessionMutation)

// newSessionMutation creates new mutation for the Session entity.
func newSessionMutation(c config, op Op, opts ...sessionOption) *SessionMutation {
	m := &SessionMutation{
		config:        c,
		op:            op,
		typ:           TypeSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionID sets the ID field of the mutation.
func withSessionID(id int) sessionOption {
	return func(m *SessionMutation) {
		var (
			err   error
			once  sync.Once
			value *Session
		)
		m.oldValue = func(ctx context.Context) (*Session, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Session.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSession sets the old Session of the mutation.
func withSession(node *Session) sessionOption {
	return func(m *SessionMutation) {
		m.oldValue = func(context.Context) (*Session, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Session.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *SessionMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SessionMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SessionMutation) ResetSessionID() {
	m.session_id = nil
}

// SetGoal sets the "goal" field.
func (m *SessionMutation) SetGoal(s string) {
	m.goal = &s
}

// Goal returns the value of the "goal" field in the mutation.
func (m *SessionMutation) Goal() (r string, exists bool) {
	v := m.goal
	if v == nil {
		return
	}
	return *v, true
}

// OldGoal returns the old "goal" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldGoal(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoal: %w", err)
	}
	return oldValue.Goal, nil
}

// ResetGoal resets all changes to the "goal" field.
func (m *SessionMutation) ResetGoal() {
	m.goal = nil
}

// SetStatus sets the "status" field.
func (m *SessionMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SessionMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SessionMutation) ResetStatus() {
	m.status = nil
}

// SetProfile sets the "profile" field.
func (m *SessionMutation) SetProfile(value map[string]interface{}) {
	m.profile = &value
}

// Profile returns the value of the "profile" field in the mutation.
func (m *SessionMutation) Profile() (r map[string]interface{}, exists bool) {
	v := m.profile
	if v == nil {
		return
	}
	return *v, true
}

// OldProfile returns the old "profile" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldProfile(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfile: %w", err)
	}
	return oldValue.Profile, nil
}

// ClearProfile clears the value of the "profile" field.
func (m *SessionMutation) ClearProfile() {
	m.profile = nil
	m.clearedFields[session.FieldProfile] = struct{}{}
}

// ProfileCleared returns if the "profile" field was cleared in this mutation.
func (m *SessionMutation) ProfileCleared() bool {
	_, ok := m.clearedFields[session.FieldProfile]
	return ok
}

// ResetProfile resets all changes to the "profile" field.
func (m *SessionMutation) ResetProfile() {
	m.profile = nil
	delete(m.clearedFields, session.FieldProfile)
}

// SetCreatedAt sets the "created_at" field.
func (m *SessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SessionMutation builder.
func (m *SessionMutation) Where(ps ...predicate.Session) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Session, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Session).
func (m *SessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.session_id != nil {
		fields = append(fields, session.FieldSessionID)
	}
	if m.goal != nil {
		fields = append(fields, session.FieldGoal)
	}
	if m.status != nil {
		fields = append(fields, session.FieldStatus)
	}
	if m.profile != nil {
		fields = append(fields, session.FieldProfile)
	}
	if m.created_at != nil {
		fields = append(fields, session.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, session.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case session.FieldSessionID:
		return m.SessionID()
	case session.FieldGoal:
		return m.Goal()
	case session.FieldStatus:
		return m.Status()
	case session.FieldProfile:
		return m.Profile()
	case session.FieldCreatedAt:
		return m.CreatedAt()
	case session.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case session.FieldSessionID:
		return m.OldSessionID(ctx)
	case session.FieldGoal:
		return m.OldGoal(ctx)
	case session.FieldStatus:
		return m.OldStatus(ctx)
	case session.FieldProfile:
		return m.OldProfile(ctx)
	case session.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case session.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Session field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case session.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case session.FieldGoal:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoal(v)
		return nil
	case session.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case session.FieldProfile:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfile(v)
		return nil
	case session.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case session.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Session numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(session.FieldProfile) {
		fields = append(fields, session.FieldProfile)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionMutation) ClearField(name string) error {
	switch name {
	case session.FieldProfile:
		m.ClearProfile()
		return nil
	}
	return fmt.Errorf("unknown Session nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionMutation) ResetField(name string) error {
	switch name {
	case session.FieldSessionID:
		m.ResetSessionID()
		return nil
	case session.FieldGoal:
		m.ResetGoal()
		return nil
	case session.FieldStatus:
		m.ResetStatus()
		return nil
	case session.FieldProfile:
		m.ResetProfile()
		return nil
	case session.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case session.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Session unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Session edge %s", name)
}
