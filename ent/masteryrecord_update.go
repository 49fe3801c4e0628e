// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/atlas/ent/masteryrecord"
	"github.com/abhisek/atlas/ent/predicate"
)

// MasteryRecordUpdate is the builder for updating MasteryRecord entities.
type MasteryRecordUpdate struct {
	config
	hooks    []Hook
	mutation *MasteryRecordMutation
}

// Where appends a list predicates to the MasteryRecordUpdate builder.
func (_u *MasteryRecordUpdate) Where(ps ...predicate.MasteryRecord) *MasteryRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *MasteryRecordUpdate) SetSessionID(v string) *MasteryRecordUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableSessionID(v *string) *MasteryRecordUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *MasteryRecordUpdate) SetNodeID(v string) *MasteryRecordUpdate {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableNodeID(v *string) *MasteryRecordUpdate {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *MasteryRecordUpdate) SetState(v string) *MasteryRecordUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableState(v *string) *MasteryRecordUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetMasteryLevel sets the "mastery_level" field.
func (_u *MasteryRecordUpdate) SetMasteryLevel(v float64) *MasteryRecordUpdate {
	_u.mutation.ResetMasteryLevel()
	_u.mutation.SetMasteryLevel(v)
	return _u
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableMasteryLevel(v *float64) *MasteryRecordUpdate {
	if v != nil {
		_u.SetMasteryLevel(*v)
	}
	return _u
}

// AddMasteryLevel adds value to the "mastery_level" field.
func (_u *MasteryRecordUpdate) AddMasteryLevel(v float64) *MasteryRecordUpdate {
	_u.mutation.AddMasteryLevel(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *MasteryRecordUpdate) SetCompletedAt(v time.Time) *MasteryRecordUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableCompletedAt(v *time.Time) *MasteryRecordUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *MasteryRecordUpdate) ClearCompletedAt() *MasteryRecordUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MasteryRecordUpdate) SetUpdatedAt(v time.Time) *MasteryRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MasteryRecordMutation object of the builder.
func (_u *MasteryRecordUpdate) Mutation() *MasteryRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MasteryRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MasteryRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MasteryRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := masteryrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryRecordUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := masteryrecord.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NodeID(); ok {
		if err := masteryrecord.NodeIDValidator(v); err != nil {
			return &ValidationError{Name: "node_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.node_id": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryrecord.Table, masteryrecord.Columns, sqlgraph.NewFieldSpec(masteryrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(masteryrecord.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.NodeID(); ok {
		_spec.SetField(masteryrecord.FieldNodeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(masteryrecord.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.MasteryLevel(); ok {
		_spec.SetField(masteryrecord.FieldMasteryLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryLevel(); ok {
		_spec.AddField(masteryrecord.FieldMasteryLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(masteryrecord.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(masteryrecord.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(masteryrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MasteryRecordUpdateOne is the builder for updating a single MasteryRecord entity.
type MasteryRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MasteryRecordMutation
}

// SetSessionID sets the "session_id" field.
func (_u *MasteryRecordUpdateOne) SetSessionID(v string) *MasteryRecordUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableSessionID(v *string) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *MasteryRecordUpdateOne) SetNodeID(v string) *MasteryRecordUpdateOne {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableNodeID(v *string) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *MasteryRecordUpdateOne) SetState(v string) *MasteryRecordUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableState(v *string) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetMasteryLevel sets the "mastery_level" field.
func (_u *MasteryRecordUpdateOne) SetMasteryLevel(v float64) *MasteryRecordUpdateOne {
	_u.mutation.ResetMasteryLevel()
	_u.mutation.SetMasteryLevel(v)
	return _u
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableMasteryLevel(v *float64) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetMasteryLevel(*v)
	}
	return _u
}

// AddMasteryLevel adds value to the "mastery_level" field.
func (_u *MasteryRecordUpdateOne) AddMasteryLevel(v float64) *MasteryRecordUpdateOne {
	_u.mutation.AddMasteryLevel(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *MasteryRecordUpdateOne) SetCompletedAt(v time.Time) *MasteryRecordUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableCompletedAt(v *time.Time) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *MasteryRecordUpdateOne) ClearCompletedAt() *MasteryRecordUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MasteryRecordUpdateOne) SetUpdatedAt(v time.Time) *MasteryRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MasteryRecordMutation object of the builder.
func (_u *MasteryRecordUpdateOne) Mutation() *MasteryRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the MasteryRecordUpdate builder.
func (_u *MasteryRecordUpdateOne) Where(ps ...predicate.MasteryRecord) *MasteryRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MasteryRecordUpdateOne) Select(field string, fields ...string) *MasteryRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MasteryRecord entity.
func (_u *MasteryRecordUpdateOne) Save(ctx context.Context) (*MasteryRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryRecordUpdateOne) SaveX(ctx context.Context) *MasteryRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MasteryRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MasteryRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := masteryrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryRecordUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := masteryrecord.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NodeID(); ok {
		if err := masteryrecord.NodeIDValidator(v); err != nil {
			return &ValidationError{Name: "node_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.node_id": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryRecordUpdateOne) sqlSave(ctx context.Context) (_node *MasteryRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryrecord.Table, masteryrecord.Columns, sqlgraph.NewFieldSpec(masteryrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MasteryRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, masteryrecord.FieldID)
		for _, f := range fields {
			if !masteryrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != masteryrecord.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(masteryrecord.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.NodeID(); ok {
		_spec.SetField(masteryrecord.FieldNodeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(masteryrecord.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.MasteryLevel(); ok {
		_spec.SetField(masteryrecord.FieldMasteryLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryLevel(); ok {
		_spec.AddField(masteryrecord.FieldMasteryLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(masteryrecord.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(masteryrecord.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(masteryrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &MasteryRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
