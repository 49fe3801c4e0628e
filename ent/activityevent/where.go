// Code generated by ent, DO NOT EDIT.

package activityevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/atlas/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldEQ(FieldTimestamp, v))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldEQ(FieldEventID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldEQ(FieldSessionID, v))
}

// NodeID applies equality check predicate on the "node_id" field. It's identical to NodeIDEQ.
func NodeID(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldEQ(FieldNodeID, v))
}

// Outcome applies equality check predicate on the "outcome" field. It's identical to OutcomeEQ.
func Outcome(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldEQ(FieldOutcome, v))
}

// MasteryAfter applies equality check predicate on the "mastery_after" field. It's identical to MasteryAfterEQ.
func MasteryAfter(v float64) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldEQ(FieldMasteryAfter, v))
}

// StateAfter applies equality check predicate on the "state_after" field. It's identical to StateAfterEQ.
func StateAfter(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldEQ(FieldStateAfter, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldLTE(FieldTimestamp, v))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldNotIn(FieldEventID, vs...))
}

// EventIDGT applies the GT predicate on the "event_id" field.
func EventIDGT(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldGT(FieldEventID, v))
}

// EventIDGTE applies the GTE predicate on the "event_id" field.
func EventIDGTE(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldGTE(FieldEventID, v))
}

// EventIDLT applies the LT predicate on the "event_id" field.
func EventIDLT(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldLT(FieldEventID, v))
}

// EventIDLTE applies the LTE predicate on the "event_id" field.
func EventIDLTE(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldLTE(FieldEventID, v))
}

// EventIDContains applies the Contains predicate on the "event_id" field.
func EventIDContains(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldContains(FieldEventID, v))
}

// EventIDHasPrefix applies the HasPrefix predicate on the "event_id" field.
func EventIDHasPrefix(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldHasPrefix(FieldEventID, v))
}

// EventIDHasSuffix applies the HasSuffix predicate on the "event_id" field.
func EventIDHasSuffix(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldHasSuffix(FieldEventID, v))
}

// EventIDEqualFold applies the EqualFold predicate on the "event_id" field.
func EventIDEqualFold(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldEqualFold(FieldEventID, v))
}

// EventIDContainsFold applies the ContainsFold predicate on the "event_id" field.
func EventIDContainsFold(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldContainsFold(FieldEventID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// NodeIDEQ applies the EQ predicate on the "node_id" field.
func NodeIDEQ(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldEQ(FieldNodeID, v))
}

// NodeIDNEQ applies the NEQ predicate on the "node_id" field.
func NodeIDNEQ(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldNEQ(FieldNodeID, v))
}

// NodeIDIn applies the In predicate on the "node_id" field.
func NodeIDIn(vs ...string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldIn(FieldNodeID, vs...))
}

// NodeIDNotIn applies the NotIn predicate on the "node_id" field.
func NodeIDNotIn(vs ...string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldNotIn(FieldNodeID, vs...))
}

// NodeIDGT applies the GT predicate on the "node_id" field.
func NodeIDGT(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldGT(FieldNodeID, v))
}

// NodeIDGTE applies the GTE predicate on the "node_id" field.
func NodeIDGTE(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldGTE(FieldNodeID, v))
}

// NodeIDLT applies the LT predicate on the "node_id" field.
func NodeIDLT(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldLT(FieldNodeID, v))
}

// NodeIDLTE applies the LTE predicate on the "node_id" field.
func NodeIDLTE(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldLTE(FieldNodeID, v))
}

// NodeIDContains applies the Contains predicate on the "node_id" field.
func NodeIDContains(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldContains(FieldNodeID, v))
}

// NodeIDHasPrefix applies the HasPrefix predicate on the "node_id" field.
func NodeIDHasPrefix(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldHasPrefix(FieldNodeID, v))
}

// NodeIDHasSuffix applies the HasSuffix predicate on the "node_id" field.
func NodeIDHasSuffix(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldHasSuffix(FieldNodeID, v))
}

// NodeIDEqualFold applies the EqualFold predicate on the "node_id" field.
func NodeIDEqualFold(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldEqualFold(FieldNodeID, v))
}

// NodeIDContainsFold applies the ContainsFold predicate on the "node_id" field.
func NodeIDContainsFold(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldContainsFold(FieldNodeID, v))
}

// OutcomeEQ applies the EQ predicate on the "outcome" field.
func OutcomeEQ(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldEQ(FieldOutcome, v))
}

// OutcomeNEQ applies the NEQ predicate on the "outcome" field.
func OutcomeNEQ(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldNEQ(FieldOutcome, v))
}

// OutcomeIn applies the In predicate on the "outcome" field.
func OutcomeIn(vs ...string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldIn(FieldOutcome, vs...))
}

// OutcomeNotIn applies the NotIn predicate on the "outcome" field.
func OutcomeNotIn(vs ...string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldNotIn(FieldOutcome, vs...))
}

// OutcomeGT applies the GT predicate on the "outcome" field.
func OutcomeGT(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldGT(FieldOutcome, v))
}

// OutcomeGTE applies the GTE predicate on the "outcome" field.
func OutcomeGTE(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldGTE(FieldOutcome, v))
}

// OutcomeLT applies the LT predicate on the "outcome" field.
func OutcomeLT(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldLT(FieldOutcome, v))
}

// OutcomeLTE applies the LTE predicate on the "outcome" field.
func OutcomeLTE(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldLTE(FieldOutcome, v))
}

// OutcomeContains applies the Contains predicate on the "outcome" field.
func OutcomeContains(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldContains(FieldOutcome, v))
}

// OutcomeHasPrefix applies the HasPrefix predicate on the "outcome" field.
func OutcomeHasPrefix(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldHasPrefix(FieldOutcome, v))
}

// OutcomeHasSuffix applies the HasSuffix predicate on the "outcome" field.
func OutcomeHasSuffix(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldHasSuffix(FieldOutcome, v))
}

// OutcomeEqualFold applies the EqualFold predicate on the "outcome" field.
func OutcomeEqualFold(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldEqualFold(FieldOutcome, v))
}

// OutcomeContainsFold applies the ContainsFold predicate on the "outcome" field.
func OutcomeContainsFold(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldContainsFold(FieldOutcome, v))
}

// MasteryAfterEQ applies the EQ predicate on the "mastery_after" field.
func MasteryAfterEQ(v float64) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldEQ(FieldMasteryAfter, v))
}

// MasteryAfterNEQ applies the NEQ predicate on the "mastery_after" field.
func MasteryAfterNEQ(v float64) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldNEQ(FieldMasteryAfter, v))
}

// MasteryAfterIn applies the In predicate on the "mastery_after" field.
func MasteryAfterIn(vs ...float64) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldIn(FieldMasteryAfter, vs...))
}

// MasteryAfterNotIn applies the NotIn predicate on the "mastery_after" field.
func MasteryAfterNotIn(vs ...float64) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldNotIn(FieldMasteryAfter, vs...))
}

// MasteryAfterGT applies the GT predicate on the "mastery_after" field.
func MasteryAfterGT(v float64) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldGT(FieldMasteryAfter, v))
}

// MasteryAfterGTE applies the GTE predicate on the "mastery_after" field.
func MasteryAfterGTE(v float64) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldGTE(FieldMasteryAfter, v))
}

// MasteryAfterLT applies the LT predicate on the "mastery_after" field.
func MasteryAfterLT(v float64) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldLT(FieldMasteryAfter, v))
}

// MasteryAfterLTE applies the LTE predicate on the "mastery_after" field.
func MasteryAfterLTE(v float64) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldLTE(FieldMasteryAfter, v))
}

// StateAfterEQ applies the EQ predicate on the "state_after" field.
func StateAfterEQ(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldEQ(FieldStateAfter, v))
}

// StateAfterNEQ applies the NEQ predicate on the "state_after" field.
func StateAfterNEQ(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldNEQ(FieldStateAfter, v))
}

// StateAfterIn applies the In predicate on the "state_after" field.
func StateAfterIn(vs ...string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldIn(FieldStateAfter, vs...))
}

// StateAfterNotIn applies the NotIn predicate on the "state_after" field.
func StateAfterNotIn(vs ...string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldNotIn(FieldStateAfter, vs...))
}

// StateAfterGT applies the GT predicate on the "state_after" field.
func StateAfterGT(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldGT(FieldStateAfter, v))
}

// StateAfterGTE applies the GTE predicate on the "state_after" field.
func StateAfterGTE(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldGTE(FieldStateAfter, v))
}

// StateAfterLT applies the LT predicate on the "state_after" field.
func StateAfterLT(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldLT(FieldStateAfter, v))
}

// StateAfterLTE applies the LTE predicate on the "state_after" field.
func StateAfterLTE(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldLTE(FieldStateAfter, v))
}

// StateAfterContains applies the Contains predicate on the "state_after" field.
func StateAfterContains(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldContains(FieldStateAfter, v))
}

// StateAfterHasPrefix applies the HasPrefix predicate on the "state_after" field.
func StateAfterHasPrefix(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldHasPrefix(FieldStateAfter, v))
}

// StateAfterHasSuffix applies the HasSuffix predicate on the "state_after" field.
func StateAfterHasSuffix(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldHasSuffix(FieldStateAfter, v))
}

// StateAfterEqualFold applies the EqualFold predicate on the "state_after" field.
func StateAfterEqualFold(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldEqualFold(FieldStateAfter, v))
}

// StateAfterContainsFold applies the ContainsFold predicate on the "state_after" field.
func StateAfterContainsFold(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldContainsFold(FieldStateAfter, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ActivityEvent) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ActivityEvent) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ActivityEvent) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.NotPredicates(p))
}
