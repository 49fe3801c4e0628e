// Code generated by ent, DO NOT EDIT.

package knowledgegraphdoc

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/atlas/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldEQ(FieldSessionID, v))
}

// NodeCount applies equality check predicate on the "node_count" field. It's identical to NodeCountEQ.
func NodeCount(v int) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldEQ(FieldNodeCount, v))
}

// EdgeCount applies equality check predicate on the "edge_count" field. It's identical to EdgeCountEQ.
func EdgeCount(v int) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldEQ(FieldEdgeCount, v))
}

// MaxDepth applies equality check predicate on the "max_depth" field. It's identical to MaxDepthEQ.
func MaxDepth(v int) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldEQ(FieldMaxDepth, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldEQ(FieldModel, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldContainsFold(FieldSessionID, v))
}

// NodeCountEQ applies the EQ predicate on the "node_count" field.
func NodeCountEQ(v int) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldEQ(FieldNodeCount, v))
}

// NodeCountNEQ applies the NEQ predicate on the "node_count" field.
func NodeCountNEQ(v int) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldNEQ(FieldNodeCount, v))
}

// NodeCountIn applies the In predicate on the "node_count" field.
func NodeCountIn(vs ...int) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldIn(FieldNodeCount, vs...))
}

// NodeCountNotIn applies the NotIn predicate on the "node_count" field.
func NodeCountNotIn(vs ...int) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldNotIn(FieldNodeCount, vs...))
}

// NodeCountGT applies the GT predicate on the "node_count" field.
func NodeCountGT(v int) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldGT(FieldNodeCount, v))
}

// NodeCountGTE applies the GTE predicate on the "node_count" field.
func NodeCountGTE(v int) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldGTE(FieldNodeCount, v))
}

// NodeCountLT applies the LT predicate on the "node_count" field.
func NodeCountLT(v int) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldLT(FieldNodeCount, v))
}

// NodeCountLTE applies the LTE predicate on the "node_count" field.
func NodeCountLTE(v int) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldLTE(FieldNodeCount, v))
}

// EdgeCountEQ applies the EQ predicate on the "edge_count" field.
func EdgeCountEQ(v int) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldEQ(FieldEdgeCount, v))
}

// EdgeCountNEQ applies the NEQ predicate on the "edge_count" field.
func EdgeCountNEQ(v int) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldNEQ(FieldEdgeCount, v))
}

// EdgeCountIn applies the In predicate on the "edge_count" field.
func EdgeCountIn(vs ...int) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldIn(FieldEdgeCount, vs...))
}

// EdgeCountNotIn applies the NotIn predicate on the "edge_count" field.
func EdgeCountNotIn(vs ...int) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldNotIn(FieldEdgeCount, vs...))
}

// EdgeCountGT applies the GT predicate on the "edge_count" field.
func EdgeCountGT(v int) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldGT(FieldEdgeCount, v))
}

// EdgeCountGTE applies the GTE predicate on the "edge_count" field.
func EdgeCountGTE(v int) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldGTE(FieldEdgeCount, v))
}

// EdgeCountLT applies the LT predicate on the "edge_count" field.
func EdgeCountLT(v int) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldLT(FieldEdgeCount, v))
}

// EdgeCountLTE applies the LTE predicate on the "edge_count" field.
func EdgeCountLTE(v int) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldLTE(FieldEdgeCount, v))
}

// MaxDepthEQ applies the EQ predicate on the "max_depth" field.
func MaxDepthEQ(v int) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldEQ(FieldMaxDepth, v))
}

// MaxDepthNEQ applies the NEQ predicate on the "max_depth" field.
func MaxDepthNEQ(v int) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldNEQ(FieldMaxDepth, v))
}

// MaxDepthIn applies the In predicate on the "max_depth" field.
func MaxDepthIn(vs ...int) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldIn(FieldMaxDepth, vs...))
}

// MaxDepthNotIn applies the NotIn predicate on the "max_depth" field.
func MaxDepthNotIn(vs ...int) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldNotIn(FieldMaxDepth, vs...))
}

// MaxDepthGT applies the GT predicate on the "max_depth" field.
func MaxDepthGT(v int) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldGT(FieldMaxDepth, v))
}

// MaxDepthGTE applies the GTE predicate on the "max_depth" field.
func MaxDepthGTE(v int) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldGTE(FieldMaxDepth, v))
}

// MaxDepthLT applies the LT predicate on the "max_depth" field.
func MaxDepthLT(v int) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldLT(FieldMaxDepth, v))
}

// MaxDepthLTE applies the LTE predicate on the "max_depth" field.
func MaxDepthLTE(v int) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldLTE(FieldMaxDepth, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldContainsFold(FieldModel, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.KnowledgeGraphDoc) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.KnowledgeGraphDoc) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.KnowledgeGraphDoc) predicate.KnowledgeGraphDoc {
	return predicate.KnowledgeGraphDoc(sql.NotPredicates(p))
}
