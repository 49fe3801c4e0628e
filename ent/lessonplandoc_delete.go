// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/atlas/ent/lessonplandoc"
	"github.com/abhisek/atlas/ent/predicate"
)

// LessonPlanDocDelete is the builder for deleting a LessonPlanDoc entity.
type LessonPlanDocDelete struct {
	config
	hooks    []Hook
	mutation *LessonPlanDocMutation
}

// Where appends a list predicates to the LessonPlanDocDelete builder.
func (_d *LessonPlanDocDelete) Where(ps ...predicate.LessonPlanDoc) *LessonPlanDocDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *LessonPlanDocDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LessonPlanDocDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *LessonPlanDocDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(lessonplandoc.Table, sqlgraph.NewFieldSpec(lessonplandoc.FieldID, field.TypeInt))
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

// LessonPlanDocDeleteOne is the builder for deleting a single LessonPlanDoc entity.
type LessonPlanDocDeleteOne struct {
	_d *LessonPlanDocDelete
}

// Where appends a list predicates to the LessonPlanDocDelete builder.
func (_d *LessonPlanDocDeleteOne) Where(ps ...predicate.LessonPlanDoc) *LessonPlanDocDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *LessonPlanDocDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{lessonplandoc.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LessonPlanDocDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
