package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMCallEvent records every model API call for cost tracking and
// debugging.
type LLMCallEvent struct {
	ent.Schema
}

func (LLMCallEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LLMCallEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").
			Comment("Backend name: gemini, anthropic, openai, openrouter"),
		field.String("model").
			Comment("Model ID that served the request"),
		field.String("purpose").
			Comment("Caller label: graph-extraction, profile-analysis"),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Int64("latency_ms").
			Default(0),
		field.Bool("success"),
		field.String("error_message").
			Default(""),
	}
}

func (LLMCallEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider"),
		index.Fields("purpose"),
		index.Fields("success"),
	}
}
