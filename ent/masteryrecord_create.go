// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/atlas/ent/masteryrecord"
)

// MasteryRecordCreate is the builder for creating a MasteryRecord entity.
type MasteryRecordCreate struct {
	config
	mutation *MasteryRecordMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *MasteryRecordCreate) SetSessionID(v string) *MasteryRecordCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNodeID sets the "node_id" field.
func (_c *MasteryRecordCreate) SetNodeID(v string) *MasteryRecordCreate {
	_c.mutation.SetNodeID(v)
	return _c
}

// SetState sets the "state" field.
func (_c *MasteryRecordCreate) SetState(v string) *MasteryRecordCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableState(v *string) *MasteryRecordCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetMasteryLevel sets the "mastery_level" field.
func (_c *MasteryRecordCreate) SetMasteryLevel(v float64) *MasteryRecordCreate {
	_c.mutation.SetMasteryLevel(v)
	return _c
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableMasteryLevel(v *float64) *MasteryRecordCreate {
	if v != nil {
		_c.SetMasteryLevel(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *MasteryRecordCreate) SetCompletedAt(v time.Time) *MasteryRecordCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableCompletedAt(v *time.Time) *MasteryRecordCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MasteryRecordCreate) SetUpdatedAt(v time.Time) *MasteryRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableUpdatedAt(v *time.Time) *MasteryRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the MasteryRecordMutation object of the builder.
func (_c *MasteryRecordCreate) Mutation() *MasteryRecordMutation {
	return _c.mutation
}

// Save creates the MasteryRecord in the database.
func (_c *MasteryRecordCreate) Save(ctx context.Context) (*MasteryRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MasteryRecordCreate) SaveX(ctx context.Context) *MasteryRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasteryRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasteryRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MasteryRecordCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := masteryrecord.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.MasteryLevel(); !ok {
		v := masteryrecord.DefaultMasteryLevel
		_c.mutation.SetMasteryLevel(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := masteryrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MasteryRecordCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "MasteryRecord.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := masteryrecord.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NodeID(); !ok {
		return &ValidationError{Name: "node_id", err: errors.New(`ent: missing required field "MasteryRecord.node_id"`)}
	}
	if v, ok := _c.mutation.NodeID(); ok {
		if err := masteryrecord.NodeIDValidator(v); err != nil {
			return &ValidationError{Name: "node_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.node_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "MasteryRecord.state"`)}
	}
	if _, ok := _c.mutation.MasteryLevel(); !ok {
		return &ValidationError{Name: "mastery_level", err: errors.New(`ent: missing required field "MasteryRecord.mastery_level"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "MasteryRecord.updated_at"`)}
	}
	return nil
}

func (_c *MasteryRecordCreate) sqlSave(ctx context.Context) (*MasteryRecord, error) {
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

func (_c *MasteryRecordCreate) createSpec() (*MasteryRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &MasteryRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(masteryrecord.Table, sqlgraph.NewFieldSpec(masteryrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(masteryrecord.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.NodeID(); ok {
		_spec.SetField(masteryrecord.FieldNodeID, field.TypeString, value)
		_node.NodeID = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(masteryrecord.FieldState, field.TypeString, value)
		_node.State = value
	}
	if value, ok := _c.mutation.MasteryLevel(); ok {
		_spec.SetField(masteryrecord.FieldMasteryLevel, field.TypeFloat64, value)
		_node.MasteryLevel = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(masteryrecord.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(masteryrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// MasteryRecordCreateBulk is the builder for creating many MasteryRecord entities in bulk.
type MasteryRecordCreateBulk struct {
	config
	err      error
	builders []*MasteryRecordCreate
}

// Save creates the MasteryRecord entities in the database.
func (_c *MasteryRecordCreateBulk) Save(ctx context.Context) ([]*MasteryRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MasteryRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MasteryRecordMutation)
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
func (_c *MasteryRecordCreateBulk) SaveX(ctx context.Context) []*MasteryRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasteryRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasteryRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
