// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/atlas/ent/lessonplandoc"
)

// LessonPlanDocCreate is the builder for creating a LessonPlanDoc entity.
type LessonPlanDocCreate struct {
	config
	mutation *LessonPlanDocMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *LessonPlanDocCreate) SetSessionID(v string) *LessonPlanDocCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetEntries sets the "entries" field.
func (_c *LessonPlanDocCreate) SetEntries(v []map[string]interface{}) *LessonPlanDocCreate {
	_c.mutation.SetEntries(v)
	return _c
}

// SetDropped sets the "dropped" field.
func (_c *LessonPlanDocCreate) SetDropped(v []string) *LessonPlanDocCreate {
	_c.mutation.SetDropped(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LessonPlanDocCreate) SetCreatedAt(v time.Time) *LessonPlanDocCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LessonPlanDocCreate) SetNillableCreatedAt(v *time.Time) *LessonPlanDocCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the LessonPlanDocMutation object of the builder.
func (_c *LessonPlanDocCreate) Mutation() *LessonPlanDocMutation {
	return _c.mutation
}

// Save creates the LessonPlanDoc in the database.
func (_c *LessonPlanDocCreate) Save(ctx context.Context) (*LessonPlanDoc, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LessonPlanDocCreate) SaveX(ctx context.Context) *LessonPlanDoc {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonPlanDocCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonPlanDocCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LessonPlanDocCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := lessonplandoc.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LessonPlanDocCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "LessonPlanDoc.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := lessonplandoc.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "LessonPlanDoc.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Entries(); !ok {
		return &ValidationError{Name: "entries", err: errors.New(`ent: missing required field "LessonPlanDoc.entries"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LessonPlanDoc.created_at"`)}
	}
	return nil
}

func (_c *LessonPlanDocCreate) sqlSave(ctx context.Context) (*LessonPlanDoc, error) {
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

func (_c *LessonPlanDocCreate) createSpec() (*LessonPlanDoc, *sqlgraph.CreateSpec) {
	var (
		_node = &LessonPlanDoc{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lessonplandoc.Table, sqlgraph.NewFieldSpec(lessonplandoc.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(lessonplandoc.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Entries(); ok {
		_spec.SetField(lessonplandoc.FieldEntries, field.TypeJSON, value)
		_node.Entries = value
	}
	if value, ok := _c.mutation.Dropped(); ok {
		_spec.SetField(lessonplandoc.FieldDropped, field.TypeJSON, value)
		_node.Dropped = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(lessonplandoc.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// LessonPlanDocCreateBulk is the builder for creating many LessonPlanDoc entities in bulk.
type LessonPlanDocCreateBulk struct {
	config
	err      error
	builders []*LessonPlanDocCreate
}

// Save creates the LessonPlanDoc entities in the database.
func (_c *LessonPlanDocCreateBulk) Save(ctx context.Context) ([]*LessonPlanDoc, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LessonPlanDoc, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LessonPlanDocMutation)
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
func (_c *LessonPlanDocCreateBulk) SaveX(ctx context.Context) []*LessonPlanDoc {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonPlanDocCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonPlanDocCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
