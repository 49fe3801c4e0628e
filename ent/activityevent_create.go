// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/atlas/ent/activityevent"
)

// ActivityEventCreate is the builder for creating a ActivityEvent entity.
type ActivityEventCreate struct {
	config
	mutation *ActivityEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ActivityEventCreate) SetSequence(v int64) *ActivityEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ActivityEventCreate) SetTimestamp(v time.Time) *ActivityEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ActivityEventCreate) SetNillableTimestamp(v *time.Time) *ActivityEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetEventID sets the "event_id" field.
func (_c *ActivityEventCreate) SetEventID(v string) *ActivityEventCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ActivityEventCreate) SetSessionID(v string) *ActivityEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNodeID sets the "node_id" field.
func (_c *ActivityEventCreate) SetNodeID(v string) *ActivityEventCreate {
	_c.mutation.SetNodeID(v)
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *ActivityEventCreate) SetOutcome(v string) *ActivityEventCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetMasteryAfter sets the "mastery_after" field.
func (_c *ActivityEventCreate) SetMasteryAfter(v float64) *ActivityEventCreate {
	_c.mutation.SetMasteryAfter(v)
	return _c
}

// SetStateAfter sets the "state_after" field.
func (_c *ActivityEventCreate) SetStateAfter(v string) *ActivityEventCreate {
	_c.mutation.SetStateAfter(v)
	return _c
}

// Mutation returns the ActivityEventMutation object of the builder.
func (_c *ActivityEventCreate) Mutation() *ActivityEventMutation {
	return _c.mutation
}

// Save creates the ActivityEvent in the database.
func (_c *ActivityEventCreate) Save(ctx context.Context) (*ActivityEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ActivityEventCreate) SaveX(ctx context.Context) *ActivityEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActivityEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActivityEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ActivityEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := activityevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ActivityEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ActivityEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ActivityEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "ActivityEvent.event_id"`)}
	}
	if v, ok := _c.mutation.EventID(); ok {
		if err := activityevent.EventIDValidator(v); err != nil {
			return &ValidationError{Name: "event_id", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.event_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ActivityEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := activityevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NodeID(); !ok {
		return &ValidationError{Name: "node_id", err: errors.New(`ent: missing required field "ActivityEvent.node_id"`)}
	}
	if v, ok := _c.mutation.NodeID(); ok {
		if err := activityevent.NodeIDValidator(v); err != nil {
			return &ValidationError{Name: "node_id", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.node_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		return &ValidationError{Name: "outcome", err: errors.New(`ent: missing required field "ActivityEvent.outcome"`)}
	}
	if v, ok := _c.mutation.Outcome(); ok {
		if err := activityevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.outcome": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MasteryAfter(); !ok {
		return &ValidationError{Name: "mastery_after", err: errors.New(`ent: missing required field "ActivityEvent.mastery_after"`)}
	}
	if _, ok := _c.mutation.StateAfter(); !ok {
		return &ValidationError{Name: "state_after", err: errors.New(`ent: missing required field "ActivityEvent.state_after"`)}
	}
	if v, ok := _c.mutation.StateAfter(); ok {
		if err := activityevent.StateAfterValidator(v); err != nil {
			return &ValidationError{Name: "state_after", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.state_after": %w`, err)}
		}
	}
	return nil
}

func (_c *ActivityEventCreate) sqlSave(ctx context.Context) (*ActivityEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ActivityEventCreate) createSpec() (*ActivityEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ActivityEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(activityevent.Table, sqlgraph.NewFieldSpec(activityevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(activityevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(activityevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(activityevent.FieldEventID, field.TypeString, value)
		_node.EventID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(activityevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.NodeID(); ok {
		_spec.SetField(activityevent.FieldNodeID, field.TypeString, value)
		_node.NodeID = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(activityevent.FieldOutcome, field.TypeString, value)
		_node.Outcome = value
	}
	if value, ok := _c.mutation.MasteryAfter(); ok {
		_spec.SetField(activityevent.FieldMasteryAfter, field.TypeFloat64, value)
		_node.MasteryAfter = value
	}
	if value, ok := _c.mutation.StateAfter(); ok {
		_spec.SetField(activityevent.FieldStateAfter, field.TypeString, value)
		_node.StateAfter = value
	}
	return _node, _spec
}

// ActivityEventCreateBulk is the builder for creating many ActivityEvent entities in bulk.
type ActivityEventCreateBulk struct {
	config
	err      error
	builders []*ActivityEventCreate
}

// Save creates the ActivityEvent entities in the database.
func (_c *ActivityEventCreateBulk) Save(ctx context.Context) ([]*ActivityEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ActivityEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ActivityEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ActivityEventCreateBulk) SaveX(ctx context.Context) []*ActivityEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActivityEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActivityEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
