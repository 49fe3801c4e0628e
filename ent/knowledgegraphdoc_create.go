// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/atlas/ent/knowledgegraphdoc"
)

// KnowledgeGraphDocCreate is the builder for creating a KnowledgeGraphDoc entity.
type KnowledgeGraphDocCreate struct {
	config
	mutation *KnowledgeGraphDocMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *KnowledgeGraphDocCreate) SetSessionID(v string) *KnowledgeGraphDocCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetDocument sets the "document" field.
func (_c *KnowledgeGraphDocCreate) SetDocument(v map[string]interface{}) *KnowledgeGraphDocCreate {
	_c.mutation.SetDocument(v)
	return _c
}

// SetNodeCount sets the "node_count" field.
func (_c *KnowledgeGraphDocCreate) SetNodeCount(v int) *KnowledgeGraphDocCreate {
	_c.mutation.SetNodeCount(v)
	return _c
}

// SetEdgeCount sets the "edge_count" field.
func (_c *KnowledgeGraphDocCreate) SetEdgeCount(v int) *KnowledgeGraphDocCreate {
	_c.mutation.SetEdgeCount(v)
	return _c
}

// SetMaxDepth sets the "max_depth" field.
func (_c *KnowledgeGraphDocCreate) SetMaxDepth(v int) *KnowledgeGraphDocCreate {
	_c.mutation.SetMaxDepth(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *KnowledgeGraphDocCreate) SetModel(v string) *KnowledgeGraphDocCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *KnowledgeGraphDocCreate) SetNillableModel(v *string) *KnowledgeGraphDocCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *KnowledgeGraphDocCreate) SetCreatedAt(v time.Time) *KnowledgeGraphDocCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *KnowledgeGraphDocCreate) SetNillableCreatedAt(v *time.Time) *KnowledgeGraphDocCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the KnowledgeGraphDocMutation object of the builder.
func (_c *KnowledgeGraphDocCreate) Mutation() *KnowledgeGraphDocMutation {
	return _c.mutation
}

// Save creates the KnowledgeGraphDoc in the database.
func (_c *KnowledgeGraphDocCreate) Save(ctx context.Context) (*KnowledgeGraphDoc, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *KnowledgeGraphDocCreate) SaveX(ctx context.Context) *KnowledgeGraphDoc {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KnowledgeGraphDocCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KnowledgeGraphDocCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *KnowledgeGraphDocCreate) defaults() {
	if _, ok := _c.mutation.Model(); !ok {
		v := knowledgegraphdoc.DefaultModel
		_c.mutation.SetModel(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := knowledgegraphdoc.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *KnowledgeGraphDocCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "KnowledgeGraphDoc.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := knowledgegraphdoc.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "KnowledgeGraphDoc.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Document(); !ok {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required field "KnowledgeGraphDoc.document"`)}
	}
	if _, ok := _c.mutation.NodeCount(); !ok {
		return &ValidationError{Name: "node_count", err: errors.New(`ent: missing required field "KnowledgeGraphDoc.node_count"`)}
	}
	if _, ok := _c.mutation.EdgeCount(); !ok {
		return &ValidationError{Name: "edge_count", err: errors.New(`ent: missing required field "KnowledgeGraphDoc.edge_count"`)}
	}
	if _, ok := _c.mutation.MaxDepth(); !ok {
		return &ValidationError{Name: "max_depth", err: errors.New(`ent: missing required field "KnowledgeGraphDoc.max_depth"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "KnowledgeGraphDoc.model"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "KnowledgeGraphDoc.created_at"`)}
	}
	return nil
}

func (_c *KnowledgeGraphDocCreate) sqlSave(ctx context.Context) (*KnowledgeGraphDoc, error) {
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

func (_c *KnowledgeGraphDocCreate) createSpec() (*KnowledgeGraphDoc, *sqlgraph.CreateSpec) {
	var (
		_node = &KnowledgeGraphDoc{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(knowledgegraphdoc.Table, sqlgraph.NewFieldSpec(knowledgegraphdoc.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(knowledgegraphdoc.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Document(); ok {
		_spec.SetField(knowledgegraphdoc.FieldDocument, field.TypeJSON, value)
		_node.Document = value
	}
	if value, ok := _c.mutation.NodeCount(); ok {
		_spec.SetField(knowledgegraphdoc.FieldNodeCount, field.TypeInt, value)
		_node.NodeCount = value
	}
	if value, ok := _c.mutation.EdgeCount(); ok {
		_spec.SetField(knowledgegraphdoc.FieldEdgeCount, field.TypeInt, value)
		_node.EdgeCount = value
	}
	if value, ok := _c.mutation.MaxDepth(); ok {
		_spec.SetField(knowledgegraphdoc.FieldMaxDepth, field.TypeInt, value)
		_node.MaxDepth = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(knowledgegraphdoc.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(knowledgegraphdoc.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// KnowledgeGraphDocCreateBulk is the builder for creating many KnowledgeGraphDoc entities in bulk.
type KnowledgeGraphDocCreateBulk struct {
	config
	err      error
	builders []*KnowledgeGraphDocCreate
}

// Save creates the KnowledgeGraphDoc entities in the database.
func (_c *KnowledgeGraphDocCreateBulk) Save(ctx context.Context) ([]*KnowledgeGraphDoc, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*KnowledgeGraphDoc, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*KnowledgeGraphDocMutation)
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
func (_c *KnowledgeGraphDocCreateBulk) SaveX(ctx context.Context) []*KnowledgeGraphDoc {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KnowledgeGraphDocCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KnowledgeGraphDocCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
