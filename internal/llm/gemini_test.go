package llm

import (
	"context"
	"testing"

	"google.golang.org/genai"
)

func TestToGeminiSchemaConversion(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"relationship": map[string]any{
				"type": "string",
				"enum": []any{"requires", "builds_on", "related"},
			},
			"nodes": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"depth": map[string]any{"type": "integer"},
		},
		"required": []any{"relationship", "nodes"},
	}

	s := toGeminiSchema(def)

	if s.Type != genai.TypeObject {
		t.Fatalf("root type = %v", s.Type)
	}
	rel := s.Properties["relationship"]
	if rel == nil || rel.Type != genai.TypeString {
		t.Fatalf("relationship schema = %+v", rel)
	}
	if len(rel.Enum) != 3 || rel.Enum[0] != "requires" {
		t.Fatalf("enum not converted: %v", rel.Enum)
	}
	nodes := s.Properties["nodes"]
	if nodes == nil || nodes.Type != genai.TypeArray || nodes.Items == nil || nodes.Items.Type != genai.TypeString {
		t.Fatalf("nodes schema = %+v", nodes)
	}
	if s.Properties["depth"].Type != genai.TypeInteger {
		t.Fatalf("depth type = %v", s.Properties["depth"].Type)
	}
	if len(s.Required) != 2 {
		t.Fatalf("required = %v", s.Required)
	}
}

func TestGeminiProviderRequiresKey(t *testing.T) {
	if _, err := NewGeminiProvider(context.Background(), GeminiConfig{}); err == nil {
		t.Fatal("expected error for missing API key")
	}
}
