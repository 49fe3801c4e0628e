// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/atlas/ent/knowledgegraphdoc"
	"github.com/abhisek/atlas/ent/predicate"
)

// KnowledgeGraphDocDelete is the builder for deleting a KnowledgeGraphDoc entity.
type KnowledgeGraphDocDelete struct {
	config
	hooks    []Hook
	mutation *KnowledgeGraphDocMutation
}

// Where appends a list predicates to the KnowledgeGraphDocDelete builder.
func (_d *KnowledgeGraphDocDelete) Where(ps ...predicate.KnowledgeGraphDoc) *KnowledgeGraphDocDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *KnowledgeGraphDocDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *KnowledgeGraphDocDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *KnowledgeGraphDocDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(knowledgegraphdoc.Table, sqlgraph.NewFieldSpec(knowledgegraphdoc.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// KnowledgeGraphDocDeleteOne is the builder for deleting a single KnowledgeGraphDoc entity.
type KnowledgeGraphDocDeleteOne struct {
	_d *KnowledgeGraphDocDelete
}

// Where appends a list predicates to the KnowledgeGraphDocDelete builder.
func (_d *KnowledgeGraphDocDeleteOne) Where(ps ...predicate.KnowledgeGraphDoc) *KnowledgeGraphDocDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *KnowledgeGraphDocDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{knowledgegraphdoc.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *KnowledgeGraphDocDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
