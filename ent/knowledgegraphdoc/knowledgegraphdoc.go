// Code generated by ent, DO NOT EDIT.

package knowledgegraphdoc

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the knowledgegraphdoc type in the database.
	Label = "knowledge_graph_doc"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldDocument holds the string denoting the document field in the database.
	FieldDocument = "document"
	// FieldNodeCount holds the string denoting the node_count field in the database.
	FieldNodeCount = "node_count"
	// FieldEdgeCount holds the string denoting the edge_count field in the database.
	FieldEdgeCount = "edge_count"
	// FieldMaxDepth holds the string denoting the max_depth field in the database.
	FieldMaxDepth = "max_depth"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the knowledgegraphdoc in the database.
	Table = "knowledge_graph_docs"
)

// Columns holds all SQL columns for knowledgegraphdoc fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldDocument,
	FieldNodeCount,
	FieldEdgeCount,
	FieldMaxDepth,
	FieldModel,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// DefaultModel holds the default value on creation for the "model" field.
	DefaultModel string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the KnowledgeGraphDoc queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByNodeCount orders the results by the node_count field.
func ByNodeCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNodeCount, opts...).ToFunc()
}

// ByEdgeCount orders the results by the edge_count field.
func ByEdgeCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEdgeCount, opts...).ToFunc()
}

// ByMaxDepth orders the results by the max_depth field.
func ByMaxDepth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxDepth, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
