package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LessonPlanDoc stores a sequenced lesson plan. Re-planning after a
// profile change appends a new row; the latest row per session wins.
type LessonPlanDoc struct {
	ent.Schema
}

func (LessonPlanDoc) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.JSON("entries", []map[string]any{}).
			Comment("Ordered plan entries: node_id plus order_index"),
		field.JSON("dropped", []string{}).
			Optional().
			Comment("Node ids removed during refinement"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (LessonPlanDoc) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "created_at"),
	}
}
