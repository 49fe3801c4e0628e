package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MasteryRecord is the authoritative per-node progress row. The
// in-memory tracker treats this table as the source of truth it
// reconciles against.
type MasteryRecord struct {
	ent.Schema
}

func (MasteryRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("node_id").
			NotEmpty(),
		field.String("state").
			Default("not_started").
			Comment("not_started, in_progress or mastered"),
		field.Float("mastery_level").
			Default(0).
			Comment("Accumulated mastery in [0,1]"),
		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("Set once the node reaches mastered"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (MasteryRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "node_id").
			Unique(),
		index.Fields("session_id", "state"),
	}
}
