package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session is one learner's run through the pipeline: a goal, the
// materials-derived graph, the refined plan and the progress that
// accumulates against it.
type Session struct {
	ent.Schema
}

func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Unique().
			NotEmpty().
			Immutable(),
		field.String("goal").
			NotEmpty().
			Comment("Learner's stated objective"),
		field.String("status").
			Default("ingested").
			Comment("Pipeline stage: ingested, refined, planned, active, complete"),
		field.JSON("profile", map[string]any{}).
			Optional().
			Comment("Raw learner-profile signals attached at refinement time"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
	}
}
