// Code generated by ent, DO NOT EDIT.

package masteryrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/atlas/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldSessionID, v))
}

// NodeID applies equality check predicate on the "node_id" field. It's identical to NodeIDEQ.
func NodeID(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldNodeID, v))
}

// State applies equality check predicate on the "state" field. It's identical to StateEQ.
func State(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldState, v))
}

// MasteryLevel applies equality check predicate on the "mastery_level" field. It's identical to MasteryLevelEQ.
func MasteryLevel(v float64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldMasteryLevel, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldCompletedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldContainsFold(FieldSessionID, v))
}

// NodeIDEQ applies the EQ predicate on the "node_id" field.
func NodeIDEQ(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldNodeID, v))
}

// NodeIDNEQ applies the NEQ predicate on the "node_id" field.
func NodeIDNEQ(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldNodeID, v))
}

// NodeIDIn applies the In predicate on the "node_id" field.
func NodeIDIn(vs ...string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldNodeID, vs...))
}

// NodeIDNotIn applies the NotIn predicate on the "node_id" field.
func NodeIDNotIn(vs ...string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldNodeID, vs...))
}

// NodeIDGT applies the GT predicate on the "node_id" field.
func NodeIDGT(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldNodeID, v))
}

// NodeIDGTE applies the GTE predicate on the "node_id" field.
func NodeIDGTE(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldNodeID, v))
}

// NodeIDLT applies the LT predicate on the "node_id" field.
func NodeIDLT(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldNodeID, v))
}

// NodeIDLTE applies the LTE predicate on the "node_id" field.
func NodeIDLTE(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldNodeID, v))
}

// NodeIDContains applies the Contains predicate on the "node_id" field.
func NodeIDContains(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldContains(FieldNodeID, v))
}

// NodeIDHasPrefix applies the HasPrefix predicate on the "node_id" field.
func NodeIDHasPrefix(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldHasPrefix(FieldNodeID, v))
}

// NodeIDHasSuffix applies the HasSuffix predicate on the "node_id" field.
func NodeIDHasSuffix(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldHasSuffix(FieldNodeID, v))
}

// NodeIDEqualFold applies the EqualFold predicate on the "node_id" field.
func NodeIDEqualFold(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEqualFold(FieldNodeID, v))
}

// NodeIDContainsFold applies the ContainsFold predicate on the "node_id" field.
func NodeIDContainsFold(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldContainsFold(FieldNodeID, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldState, vs...))
}

// StateGT applies the GT predicate on the "state" field.
func StateGT(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldState, v))
}

// StateGTE applies the GTE predicate on the "state" field.
func StateGTE(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldState, v))
}

// StateLT applies the LT predicate on the "state" field.
func StateLT(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldState, v))
}

// StateLTE applies the LTE predicate on the "state" field.
func StateLTE(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldState, v))
}

// StateContains applies the Contains predicate on the "state" field.
func StateContains(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldContains(FieldState, v))
}

// StateHasPrefix applies the HasPrefix predicate on the "state" field.
func StateHasPrefix(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldHasPrefix(FieldState, v))
}

// StateHasSuffix applies the HasSuffix predicate on the "state" field.
func StateHasSuffix(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldHasSuffix(FieldState, v))
}

// StateEqualFold applies the EqualFold predicate on the "state" field.
func StateEqualFold(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEqualFold(FieldState, v))
}

// StateContainsFold applies the ContainsFold predicate on the "state" field.
func StateContainsFold(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldContainsFold(FieldState, v))
}

// MasteryLevelEQ applies the EQ predicate on the "mastery_level" field.
func MasteryLevelEQ(v float64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldMasteryLevel, v))
}

// MasteryLevelNEQ applies the NEQ predicate on the "mastery_level" field.
func MasteryLevelNEQ(v float64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldMasteryLevel, v))
}

// MasteryLevelIn applies the In predicate on the "mastery_level" field.
func MasteryLevelIn(vs ...float64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldMasteryLevel, vs...))
}

// MasteryLevelNotIn applies the NotIn predicate on the "mastery_level" field.
func MasteryLevelNotIn(vs ...float64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldMasteryLevel, vs...))
}

// MasteryLevelGT applies the GT predicate on the "mastery_level" field.
func MasteryLevelGT(v float64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldMasteryLevel, v))
}

// MasteryLevelGTE applies the GTE predicate on the "mastery_level" field.
func MasteryLevelGTE(v float64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldMasteryLevel, v))
}

// MasteryLevelLT applies the LT predicate on the "mastery_level" field.
func MasteryLevelLT(v float64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldMasteryLevel, v))
}

// MasteryLevelLTE applies the LTE predicate on the "mastery_level" field.
func MasteryLevelLTE(v float64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldMasteryLevel, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotNull(FieldCompletedAt))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MasteryRecord) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MasteryRecord) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MasteryRecord) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.NotPredicates(p))
}
