package llm

import (
	"context"
	"encoding/json"
)

// Provider abstracts a structured-output LLM backend. The extraction and
// refinement layers depend only on this interface, never on a vendor SDK.
type Provider interface {
	// Generate sends one request and returns the model's output. When the
	// request carries a Schema, the returned Content is JSON that has been
	// validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request describes a single generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Extraction calls are single-turn, so
	// this usually holds one user message carrying the source material.
	Messages []Message

	// Schema, when set, makes the provider use its native structured
	// output mechanism and validates the response against the schema.
	// When nil, Content is the raw text reply.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0,1]. Zero means deterministic.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a JSON Schema the model output must conform to.
type Schema struct {
	// Name identifies the schema, kebab-case, e.g. "knowledge-graph".
	Name string

	// Description is sent to the model to guide generation.
	Description string

	// Definition is the schema body as a map.
	Definition map[string]any
}

// Response is the model's output for one request.
type Response struct {
	// Content is validated JSON when the request had a Schema, otherwise
	// the raw text wrapped as a JSON value.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Usage tracks token counts for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

type contextKey string

const purposeKey contextKey = "llm_purpose"

// WithPurpose tags the context with a purpose label ("graph-extraction",
// "profile-analysis", ...) so request events can be attributed.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom returns the purpose label, or "unknown" when none was set.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
