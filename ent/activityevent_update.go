// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/atlas/ent/activityevent"
	"github.com/abhisek/atlas/ent/predicate"
)

// ActivityEventUpdate is the builder for updating ActivityEvent entities.
type ActivityEventUpdate struct {
	config
	hooks    []Hook
	mutation *ActivityEventMutation
}

// Where appends a list predicates to the ActivityEventUpdate builder.
func (_u *ActivityEventUpdate) Where(ps ...predicate.ActivityEvent) *ActivityEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *ActivityEventUpdate) SetEventID(v string) *ActivityEventUpdate {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableEventID(v *string) *ActivityEventUpdate {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ActivityEventUpdate) SetSessionID(v string) *ActivityEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableSessionID(v *string) *ActivityEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *ActivityEventUpdate) SetNodeID(v string) *ActivityEventUpdate {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableNodeID(v *string) *ActivityEventUpdate {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *ActivityEventUpdate) SetOutcome(v string) *ActivityEventUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableOutcome(v *string) *ActivityEventUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetMasteryAfter sets the "mastery_after" field.
func (_u *ActivityEventUpdate) SetMasteryAfter(v float64) *ActivityEventUpdate {
	_u.mutation.ResetMasteryAfter()
	_u.mutation.SetMasteryAfter(v)
	return _u
}

// SetNillableMasteryAfter sets the "mastery_after" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableMasteryAfter(v *float64) *ActivityEventUpdate {
	if v != nil {
		_u.SetMasteryAfter(*v)
	}
	return _u
}

// AddMasteryAfter adds value to the "mastery_after" field.
func (_u *ActivityEventUpdate) AddMasteryAfter(v float64) *ActivityEventUpdate {
	_u.mutation.AddMasteryAfter(v)
	return _u
}

// SetStateAfter sets the "state_after" field.
func (_u *ActivityEventUpdate) SetStateAfter(v string) *ActivityEventUpdate {
	_u.mutation.SetStateAfter(v)
	return _u
}

// SetNillableStateAfter sets the "state_after" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableStateAfter(v *string) *ActivityEventUpdate {
	if v != nil {
		_u.SetStateAfter(*v)
	}
	return _u
}

// Mutation returns the ActivityEventMutation object of the builder.
func (_u *ActivityEventUpdate) Mutation() *ActivityEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ActivityEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ActivityEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActivityEventUpdate) check() error {
	if v, ok := _u.mutation.EventID(); ok {
		if err := activityevent.EventIDValidator(v); err != nil {
			return &ValidationError{Name: "event_id", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.event_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := activityevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NodeID(); ok {
		if err := activityevent.NodeIDValidator(v); err != nil {
			return &ValidationError{Name: "node_id", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.node_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := activityevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.outcome": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StateAfter(); ok {
		if err := activityevent.StateAfterValidator(v); err != nil {
			return &ValidationError{Name: "state_after", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.state_after": %w`, err)}
		}
	}
	return nil
}

func (_u *ActivityEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activityevent.Table, activityevent.Columns, sqlgraph.NewFieldSpec(activityevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(activityevent.FieldEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(activityevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.NodeID(); ok {
		_spec.SetField(activityevent.FieldNodeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(activityevent.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.MasteryAfter(); ok {
		_spec.SetField(activityevent.FieldMasteryAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryAfter(); ok {
		_spec.AddField(activityevent.FieldMasteryAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.StateAfter(); ok {
		_spec.SetField(activityevent.FieldStateAfter, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activityevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ActivityEventUpdateOne is the builder for updating a single ActivityEvent entity.
type ActivityEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActivityEventMutation
}

// SetEventID sets the "event_id" field.
func (_u *ActivityEventUpdateOne) SetEventID(v string) *ActivityEventUpdateOne {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableEventID(v *string) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ActivityEventUpdateOne) SetSessionID(v string) *ActivityEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableSessionID(v *string) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *ActivityEventUpdateOne) SetNodeID(v string) *ActivityEventUpdateOne {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableNodeID(v *string) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *ActivityEventUpdateOne) SetOutcome(v string) *ActivityEventUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableOutcome(v *string) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetMasteryAfter sets the "mastery_after" field.
func (_u *ActivityEventUpdateOne) SetMasteryAfter(v float64) *ActivityEventUpdateOne {
	_u.mutation.ResetMasteryAfter()
	_u.mutation.SetMasteryAfter(v)
	return _u
}

// SetNillableMasteryAfter sets the "mastery_after" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableMasteryAfter(v *float64) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetMasteryAfter(*v)
	}
	return _u
}

// AddMasteryAfter adds value to the "mastery_after" field.
func (_u *ActivityEventUpdateOne) AddMasteryAfter(v float64) *ActivityEventUpdateOne {
	_u.mutation.AddMasteryAfter(v)
	return _u
}

// SetStateAfter sets the "state_after" field.
func (_u *ActivityEventUpdateOne) SetStateAfter(v string) *ActivityEventUpdateOne {
	_u.mutation.SetStateAfter(v)
	return _u
}

// SetNillableStateAfter sets the "state_after" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableStateAfter(v *string) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetStateAfter(*v)
	}
	return _u
}

// Mutation returns the ActivityEventMutation object of the builder.
func (_u *ActivityEventUpdateOne) Mutation() *ActivityEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ActivityEventUpdate builder.
func (_u *ActivityEventUpdateOne) Where(ps ...predicate.ActivityEvent) *ActivityEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ActivityEventUpdateOne) Select(field string, fields ...string) *ActivityEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ActivityEvent entity.
func (_u *ActivityEventUpdateOne) Save(ctx context.Context) (*ActivityEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityEventUpdateOne) SaveX(ctx context.Context) *ActivityEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ActivityEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActivityEventUpdateOne) check() error {
	if v, ok := _u.mutation.EventID(); ok {
		if err := activityevent.EventIDValidator(v); err != nil {
			return &ValidationError{Name: "event_id", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.event_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := activityevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NodeID(); ok {
		if err := activityevent.NodeIDValidator(v); err != nil {
			return &ValidationError{Name: "node_id", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.node_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := activityevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.outcome": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StateAfter(); ok {
		if err := activityevent.StateAfterValidator(v); err != nil {
			return &ValidationError{Name: "state_after", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.state_after": %w`, err)}
		}
	}
	return nil
}

func (_u *ActivityEventUpdateOne) sqlSave(ctx context.Context) (_node *ActivityEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activityevent.Table, activityevent.Columns, sqlgraph.NewFieldSpec(activityevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ActivityEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, activityevent.FieldID)
		for _, f := range fields {
			if !activityevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != activityevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(activityevent.FieldEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(activityevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.NodeID(); ok {
		_spec.SetField(activityevent.FieldNodeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(activityevent.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.MasteryAfter(); ok {
		_spec.SetField(activityevent.FieldMasteryAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryAfter(); ok {
		_spec.AddField(activityevent.FieldMasteryAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.StateAfter(); ok {
		_spec.SetField(activityevent.FieldStateAfter, field.TypeString, value)
	}
	_node = &ActivityEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activityevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
