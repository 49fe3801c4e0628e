package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// KnowledgeGraphDoc stores a validated knowledge graph in its wire
// format. Each extraction produces a new row; the latest row per
// session is the current graph.
type KnowledgeGraphDoc struct {
	ent.Schema
}

func (KnowledgeGraphDoc) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.JSON("document", map[string]any{}).
			Comment("Graph in the nodes/edges wire format"),
		field.Int("node_count"),
		field.Int("edge_count"),
		field.Int("max_depth"),
		field.String("model").
			Default("").
			Comment("Model that produced the extraction, empty for file imports"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (KnowledgeGraphDoc) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "created_at"),
	}
}
