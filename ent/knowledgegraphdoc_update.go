// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/atlas/ent/knowledgegraphdoc"
	"github.com/abhisek/atlas/ent/predicate"
)

// KnowledgeGraphDocUpdate is the builder for updating KnowledgeGraphDoc entities.
type KnowledgeGraphDocUpdate struct {
	config
	hooks    []Hook
	mutation *KnowledgeGraphDocMutation
}

// Where appends a list predicates to the KnowledgeGraphDocUpdate builder.
func (_u *KnowledgeGraphDocUpdate) Where(ps ...predicate.KnowledgeGraphDoc) *KnowledgeGraphDocUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *KnowledgeGraphDocUpdate) SetSessionID(v string) *KnowledgeGraphDocUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *KnowledgeGraphDocUpdate) SetNillableSessionID(v *string) *KnowledgeGraphDocUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetDocument sets the "document" field.
func (_u *KnowledgeGraphDocUpdate) SetDocument(v map[string]interface{}) *KnowledgeGraphDocUpdate {
	_u.mutation.SetDocument(v)
	return _u
}

// SetNodeCount sets the "node_count" field.
func (_u *KnowledgeGraphDocUpdate) SetNodeCount(v int) *KnowledgeGraphDocUpdate {
	_u.mutation.ResetNodeCount()
	_u.mutation.SetNodeCount(v)
	return _u
}

// SetNillableNodeCount sets the "node_count" field if the given value is not nil.
func (_u *KnowledgeGraphDocUpdate) SetNillableNodeCount(v *int) *KnowledgeGraphDocUpdate {
	if v != nil {
		_u.SetNodeCount(*v)
	}
	return _u
}

// AddNodeCount adds value to the "node_count" field.
func (_u *KnowledgeGraphDocUpdate) AddNodeCount(v int) *KnowledgeGraphDocUpdate {
	_u.mutation.AddNodeCount(v)
	return _u
}

// SetEdgeCount sets the "edge_count" field.
func (_u *KnowledgeGraphDocUpdate) SetEdgeCount(v int) *KnowledgeGraphDocUpdate {
	_u.mutation.ResetEdgeCount()
	_u.mutation.SetEdgeCount(v)
	return _u
}

// SetNillableEdgeCount sets the "edge_count" field if the given value is not nil.
func (_u *KnowledgeGraphDocUpdate) SetNillableEdgeCount(v *int) *KnowledgeGraphDocUpdate {
	if v != nil {
		_u.SetEdgeCount(*v)
	}
	return _u
}

// AddEdgeCount adds value to the "edge_count" field.
func (_u *KnowledgeGraphDocUpdate) AddEdgeCount(v int) *KnowledgeGraphDocUpdate {
	_u.mutation.AddEdgeCount(v)
	return _u
}

// SetMaxDepth sets the "max_depth" field.
func (_u *KnowledgeGraphDocUpdate) SetMaxDepth(v int) *KnowledgeGraphDocUpdate {
	_u.mutation.ResetMaxDepth()
	_u.mutation.SetMaxDepth(v)
	return _u
}

// SetNillableMaxDepth sets the "max_depth" field if the given value is not nil.
func (_u *KnowledgeGraphDocUpdate) SetNillableMaxDepth(v *int) *KnowledgeGraphDocUpdate {
	if v != nil {
		_u.SetMaxDepth(*v)
	}
	return _u
}

// AddMaxDepth adds value to the "max_depth" field.
func (_u *KnowledgeGraphDocUpdate) AddMaxDepth(v int) *KnowledgeGraphDocUpdate {
	_u.mutation.AddMaxDepth(v)
	return _u
}

// SetModel sets the "model" field.
func (_u *KnowledgeGraphDocUpdate) SetModel(v string) *KnowledgeGraphDocUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *KnowledgeGraphDocUpdate) SetNillableModel(v *string) *KnowledgeGraphDocUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// Mutation returns the KnowledgeGraphDocMutation object of the builder.
func (_u *KnowledgeGraphDocUpdate) Mutation() *KnowledgeGraphDocMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *KnowledgeGraphDocUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KnowledgeGraphDocUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *KnowledgeGraphDocUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KnowledgeGraphDocUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KnowledgeGraphDocUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := knowledgegraphdoc.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "KnowledgeGraphDoc.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *KnowledgeGraphDocUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(knowledgegraphdoc.Table, knowledgegraphdoc.Columns, sqlgraph.NewFieldSpec(knowledgegraphdoc.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(knowledgegraphdoc.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Document(); ok {
		_spec.SetField(knowledgegraphdoc.FieldDocument, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.NodeCount(); ok {
		_spec.SetField(knowledgegraphdoc.FieldNodeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNodeCount(); ok {
		_spec.AddField(knowledgegraphdoc.FieldNodeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EdgeCount(); ok {
		_spec.SetField(knowledgegraphdoc.FieldEdgeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEdgeCount(); ok {
		_spec.AddField(knowledgegraphdoc.FieldEdgeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxDepth(); ok {
		_spec.SetField(knowledgegraphdoc.FieldMaxDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxDepth(); ok {
		_spec.AddField(knowledgegraphdoc.FieldMaxDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(knowledgegraphdoc.FieldModel, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{knowledgegraphdoc.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// KnowledgeGraphDocUpdateOne is the builder for updating a single KnowledgeGraphDoc entity.
type KnowledgeGraphDocUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *KnowledgeGraphDocMutation
}

// SetSessionID sets the "session_id" field.
func (_u *KnowledgeGraphDocUpdateOne) SetSessionID(v string) *KnowledgeGraphDocUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *KnowledgeGraphDocUpdateOne) SetNillableSessionID(v *string) *KnowledgeGraphDocUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetDocument sets the "document" field.
func (_u *KnowledgeGraphDocUpdateOne) SetDocument(v map[string]interface{}) *KnowledgeGraphDocUpdateOne {
	_u.mutation.SetDocument(v)
	return _u
}

// SetNodeCount sets the "node_count" field.
func (_u *KnowledgeGraphDocUpdateOne) SetNodeCount(v int) *KnowledgeGraphDocUpdateOne {
	_u.mutation.ResetNodeCount()
	_u.mutation.SetNodeCount(v)
	return _u
}

// SetNillableNodeCount sets the "node_count" field if the given value is not nil.
func (_u *KnowledgeGraphDocUpdateOne) SetNillableNodeCount(v *int) *KnowledgeGraphDocUpdateOne {
	if v != nil {
		_u.SetNodeCount(*v)
	}
	return _u
}

// AddNodeCount adds value to the "node_count" field.
func (_u *KnowledgeGraphDocUpdateOne) AddNodeCount(v int) *KnowledgeGraphDocUpdateOne {
	_u.mutation.AddNodeCount(v)
	return _u
}

// SetEdgeCount sets the "edge_count" field.
func (_u *KnowledgeGraphDocUpdateOne) SetEdgeCount(v int) *KnowledgeGraphDocUpdateOne {
	_u.mutation.ResetEdgeCount()
	_u.mutation.SetEdgeCount(v)
	return _u
}

// SetNillableEdgeCount sets the "edge_count" field if the given value is not nil.
func (_u *KnowledgeGraphDocUpdateOne) SetNillableEdgeCount(v *int) *KnowledgeGraphDocUpdateOne {
	if v != nil {
		_u.SetEdgeCount(*v)
	}
	return _u
}

// AddEdgeCount adds value to the "edge_count" field.
func (_u *KnowledgeGraphDocUpdateOne) AddEdgeCount(v int) *KnowledgeGraphDocUpdateOne {
	_u.mutation.AddEdgeCount(v)
	return _u
}

// SetMaxDepth sets the "max_depth" field.
func (_u *KnowledgeGraphDocUpdateOne) SetMaxDepth(v int) *KnowledgeGraphDocUpdateOne {
	_u.mutation.ResetMaxDepth()
	_u.mutation.SetMaxDepth(v)
	return _u
}

// SetNillableMaxDepth sets the "max_depth" field if the given value is not nil.
func (_u *KnowledgeGraphDocUpdateOne) SetNillableMaxDepth(v *int) *KnowledgeGraphDocUpdateOne {
	if v != nil {
		_u.SetMaxDepth(*v)
	}
	return _u
}

// AddMaxDepth adds value to the "max_depth" field.
func (_u *KnowledgeGraphDocUpdateOne) AddMaxDepth(v int) *KnowledgeGraphDocUpdateOne {
	_u.mutation.AddMaxDepth(v)
	return _u
}

// SetModel sets the "model" field.
func (_u *KnowledgeGraphDocUpdateOne) SetModel(v string) *KnowledgeGraphDocUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *KnowledgeGraphDocUpdateOne) SetNillableModel(v *string) *KnowledgeGraphDocUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// Mutation returns the KnowledgeGraphDocMutation object of the builder.
func (_u *KnowledgeGraphDocUpdateOne) Mutation() *KnowledgeGraphDocMutation {
	return _u.mutation
}

// Where appends a list predicates to the KnowledgeGraphDocUpdate builder.
func (_u *KnowledgeGraphDocUpdateOne) Where(ps ...predicate.KnowledgeGraphDoc) *KnowledgeGraphDocUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *KnowledgeGraphDocUpdateOne) Select(field string, fields ...string) *KnowledgeGraphDocUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated KnowledgeGraphDoc entity.
func (_u *KnowledgeGraphDocUpdateOne) Save(ctx context.Context) (*KnowledgeGraphDoc, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KnowledgeGraphDocUpdateOne) SaveX(ctx context.Context) *KnowledgeGraphDoc {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *KnowledgeGraphDocUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KnowledgeGraphDocUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KnowledgeGraphDocUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := knowledgegraphdoc.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "KnowledgeGraphDoc.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *KnowledgeGraphDocUpdateOne) sqlSave(ctx context.Context) (_node *KnowledgeGraphDoc, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(knowledgegraphdoc.Table, knowledgegraphdoc.Columns, sqlgraph.NewFieldSpec(knowledgegraphdoc.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "KnowledgeGraphDoc.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, knowledgegraphdoc.FieldID)
		for _, f := range fields {
			if !knowledgegraphdoc.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != knowledgegraphdoc.FieldID {
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
		_spec.SetField(knowledgegraphdoc.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Document(); ok {
		_spec.SetField(knowledgegraphdoc.FieldDocument, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.NodeCount(); ok {
		_spec.SetField(knowledgegraphdoc.FieldNodeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNodeCount(); ok {
		_spec.AddField(knowledgegraphdoc.FieldNodeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EdgeCount(); ok {
		_spec.SetField(knowledgegraphdoc.FieldEdgeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEdgeCount(); ok {
		_spec.AddField(knowledgegraphdoc.FieldEdgeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxDepth(); ok {
		_spec.SetField(knowledgegraphdoc.FieldMaxDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxDepth(); ok {
		_spec.AddField(knowledgegraphdoc.FieldMaxDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(knowledgegraphdoc.FieldModel, field.TypeString, value)
	}
	_node = &KnowledgeGraphDoc{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{knowledgegraphdoc.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
