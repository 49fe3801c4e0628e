// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/atlas/ent/lessonplandoc"
	"github.com/abhisek/atlas/ent/predicate"
)

// LessonPlanDocUpdate is the builder for updating LessonPlanDoc entities.
type LessonPlanDocUpdate struct {
	config
	hooks    []Hook
	mutation *LessonPlanDocMutation
}

// Where appends a list predicates to the LessonPlanDocUpdate builder.
func (_u *LessonPlanDocUpdate) Where(ps ...predicate.LessonPlanDoc) *LessonPlanDocUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *LessonPlanDocUpdate) SetSessionID(v string) *LessonPlanDocUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *LessonPlanDocUpdate) SetNillableSessionID(v *string) *LessonPlanDocUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetEntries sets the "entries" field.
func (_u *LessonPlanDocUpdate) SetEntries(v []map[string]interface{}) *LessonPlanDocUpdate {
	_u.mutation.SetEntries(v)
	return _u
}

// AppendEntries appends value to the "entries" field.
func (_u *LessonPlanDocUpdate) AppendEntries(v []map[string]interface{}) *LessonPlanDocUpdate {
	_u.mutation.AppendEntries(v)
	return _u
}

// SetDropped sets the "dropped" field.
func (_u *LessonPlanDocUpdate) SetDropped(v []string) *LessonPlanDocUpdate {
	_u.mutation.SetDropped(v)
	return _u
}

// AppendDropped appends value to the "dropped" field.
func (_u *LessonPlanDocUpdate) AppendDropped(v []string) *LessonPlanDocUpdate {
	_u.mutation.AppendDropped(v)
	return _u
}

// ClearDropped clears the value of the "dropped" field.
func (_u *LessonPlanDocUpdate) ClearDropped() *LessonPlanDocUpdate {
	_u.mutation.ClearDropped()
	return _u
}

// Mutation returns the LessonPlanDocMutation object of the builder.
func (_u *LessonPlanDocUpdate) Mutation() *LessonPlanDocMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LessonPlanDocUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonPlanDocUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LessonPlanDocUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonPlanDocUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonPlanDocUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := lessonplandoc.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "LessonPlanDoc.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonPlanDocUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonplandoc.Table, lessonplandoc.Columns, sqlgraph.NewFieldSpec(lessonplandoc.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(lessonplandoc.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Entries(); ok {
		_spec.SetField(lessonplandoc.FieldEntries, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEntries(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lessonplandoc.FieldEntries, value)
		})
	}
	if value, ok := _u.mutation.Dropped(); ok {
		_spec.SetField(lessonplandoc.FieldDropped, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDropped(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lessonplandoc.FieldDropped, value)
		})
	}
	if _u.mutation.DroppedCleared() {
		_spec.ClearField(lessonplandoc.FieldDropped, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonplandoc.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LessonPlanDocUpdateOne is the builder for updating a single LessonPlanDoc entity.
type LessonPlanDocUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonPlanDocMutation
}

// SetSessionID sets the "session_id" field.
func (_u *LessonPlanDocUpdateOne) SetSessionID(v string) *LessonPlanDocUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *LessonPlanDocUpdateOne) SetNillableSessionID(v *string) *LessonPlanDocUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetEntries sets the "entries" field.
func (_u *LessonPlanDocUpdateOne) SetEntries(v []map[string]interface{}) *LessonPlanDocUpdateOne {
	_u.mutation.SetEntries(v)
	return _u
}

// AppendEntries appends value to the "entries" field.
func (_u *LessonPlanDocUpdateOne) AppendEntries(v []map[string]interface{}) *LessonPlanDocUpdateOne {
	_u.mutation.AppendEntries(v)
	return _u
}

// SetDropped sets the "dropped" field.
func (_u *LessonPlanDocUpdateOne) SetDropped(v []string) *LessonPlanDocUpdateOne {
	_u.mutation.SetDropped(v)
	return _u
}

// AppendDropped appends value to the "dropped" field.
func (_u *LessonPlanDocUpdateOne) AppendDropped(v []string) *LessonPlanDocUpdateOne {
	_u.mutation.AppendDropped(v)
	return _u
}

// ClearDropped clears the value of the "dropped" field.
func (_u *LessonPlanDocUpdateOne) ClearDropped() *LessonPlanDocUpdateOne {
	_u.mutation.ClearDropped()
	return _u
}

// Mutation returns the LessonPlanDocMutation object of the builder.
func (_u *LessonPlanDocUpdateOne) Mutation() *LessonPlanDocMutation {
	return _u.mutation
}

// Where appends a list predicates to the LessonPlanDocUpdate builder.
func (_u *LessonPlanDocUpdateOne) Where(ps ...predicate.LessonPlanDoc) *LessonPlanDocUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LessonPlanDocUpdateOne) Select(field string, fields ...string) *LessonPlanDocUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LessonPlanDoc entity.
func (_u *LessonPlanDocUpdateOne) Save(ctx context.Context) (*LessonPlanDoc, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonPlanDocUpdateOne) SaveX(ctx context.Context) *LessonPlanDoc {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LessonPlanDocUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonPlanDocUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonPlanDocUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := lessonplandoc.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "LessonPlanDoc.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonPlanDocUpdateOne) sqlSave(ctx context.Context) (_node *LessonPlanDoc, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonplandoc.Table, lessonplandoc.Columns, sqlgraph.NewFieldSpec(lessonplandoc.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LessonPlanDoc.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lessonplandoc.FieldID)
		for _, f := range fields {
			if !lessonplandoc.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lessonplandoc.FieldID {
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
		_spec.SetField(lessonplandoc.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Entries(); ok {
		_spec.SetField(lessonplandoc.FieldEntries, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEntries(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lessonplandoc.FieldEntries, value)
		})
	}
	if value, ok := _u.mutation.Dropped(); ok {
		_spec.SetField(lessonplandoc.FieldDropped, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDropped(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lessonplandoc.FieldDropped, value)
		})
	}
	if _u.mutation.DroppedCleared() {
		_spec.ClearField(lessonplandoc.FieldDropped, field.TypeJSON)
	}
	_node = &LessonPlanDoc{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonplandoc.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
