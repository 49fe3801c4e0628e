package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func nodeListSchema() *Schema {
	return &Schema{
		Name:        "node-list",
		Description: "a list of concept identifiers",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"ids": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"ids"},
		},
	}
}

func TestValidateResponseAccepts(t *testing.T) {
	raw := json.RawMessage(`{"ids":["limits","derivatives"]}`)
	if err := validateResponse(nodeListSchema(), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponseRejectsMissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"names":["limits"]}`)
	err := validateResponse(nodeListSchema(), raw)
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
	if string(inv.Content) != string(raw) {
		t.Fatalf("offending content not preserved: %s", inv.Content)
	}
}

func TestValidateResponseRejectsMalformedJSON(t *testing.T) {
	err := validateResponse(nodeListSchema(), json.RawMessage(`{"ids": [truncated`))
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("nil schema must skip validation: %v", err)
	}
}

func TestValidateResponseCachesCompiledSchema(t *testing.T) {
	s := nodeListSchema()
	for range 3 {
		if err := validateResponse(s, json.RawMessage(`{"ids":[]}`)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if _, ok := schemaCache.Load(s.Name); !ok {
		t.Fatal("compiled schema not cached")
	}
}
