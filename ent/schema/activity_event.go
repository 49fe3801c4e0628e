package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ActivityEvent is the append-only log of learning activity outcomes.
// Mastery records are derived state; this log is what they are derived
// from, so a session can always be rebuilt by replay.
type ActivityEvent struct {
	ent.Schema
}

func (ActivityEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ActivityEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("event_id").
			Unique().
			NotEmpty().
			Comment("Client-assigned id used for replay deduplication"),
		field.String("session_id").
			NotEmpty(),
		field.String("node_id").
			NotEmpty(),
		field.String("outcome").
			NotEmpty().
			Comment("correct, incorrect, too_easy or confused"),
		field.Float("mastery_after").
			Comment("Mastery level after the event was applied"),
		field.String("state_after").
			NotEmpty(),
	}
}

func (ActivityEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "node_id"),
	}
}
