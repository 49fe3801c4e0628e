// Code generated by ent, DO NOT EDIT.

package lessonplandoc

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/atlas/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LessonPlanDoc {
	return predicate.LessonPlanDoc(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LessonPlanDoc {
	return predicate.LessonPlanDoc(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LessonPlanDoc {
	return predicate.LessonPlanDoc(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LessonPlanDoc {
	return predicate.LessonPlanDoc(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LessonPlanDoc {
	return predicate.LessonPlanDoc(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LessonPlanDoc {
	return predicate.LessonPlanDoc(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LessonPlanDoc {
	return predicate.LessonPlanDoc(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LessonPlanDoc {
	return predicate.LessonPlanDoc(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LessonPlanDoc {
	return predicate.LessonPlanDoc(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.LessonPlanDoc {
	return predicate.LessonPlanDoc(sql.FieldEQ(FieldSessionID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LessonPlanDoc {
	return predicate.LessonPlanDoc(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.LessonPlanDoc {
	return predicate.LessonPlanDoc(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.LessonPlanDoc {
	return predicate.LessonPlanDoc(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.LessonPlanDoc {
	return predicate.LessonPlanDoc(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.LessonPlanDoc {
	return predicate.LessonPlanDoc(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.LessonPlanDoc {
	return predicate.LessonPlanDoc(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.LessonPlanDoc {
	return predicate.LessonPlanDoc(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.LessonPlanDoc {
	return predicate.LessonPlanDoc(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.LessonPlanDoc {
	return predicate.LessonPlanDoc(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.LessonPlanDoc {
	return predicate.LessonPlanDoc(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.LessonPlanDoc {
	return predicate.LessonPlanDoc(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.LessonPlanDoc {
	return predicate.LessonPlanDoc(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.LessonPlanDoc {
	return predicate.LessonPlanDoc(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.LessonPlanDoc {
	return predicate.LessonPlanDoc(sql.FieldContainsFold(FieldSessionID, v))
}

// DroppedIsNil applies the IsNil predicate on the "dropped" field.
func DroppedIsNil() predicate.LessonPlanDoc {
	return predicate.LessonPlanDoc(sql.FieldIsNull(FieldDropped))
}

// DroppedNotNil applies the NotNil predicate on the "dropped" field.
func DroppedNotNil() predicate.LessonPlanDoc {
	return predicate.LessonPlanDoc(sql.FieldNotNull(FieldDropped))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LessonPlanDoc {
	return predicate.LessonPlanDoc(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LessonPlanDoc {
	return predicate.LessonPlanDoc(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LessonPlanDoc {
	return predicate.LessonPlanDoc(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LessonPlanDoc {
	return predicate.LessonPlanDoc(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LessonPlanDoc {
	return predicate.LessonPlanDoc(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LessonPlanDoc {
	return predicate.LessonPlanDoc(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LessonPlanDoc {
	return predicate.LessonPlanDoc(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LessonPlanDoc {
	return predicate.LessonPlanDoc(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LessonPlanDoc) predicate.LessonPlanDoc {
	return predicate.LessonPlanDoc(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LessonPlanDoc) predicate.LessonPlanDoc {
	return predicate.LessonPlanDoc(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LessonPlanDoc) predicate.LessonPlanDoc {
	return predicate.LessonPlanDoc(sql.NotPredicates(p))
}
