package extract

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/atlas/internal/knowledge"
	"github.com/abhisek/atlas/internal/llm"
)

const candidateDoc = `{
  "nodes": [
    {"id": "calculus", "label": "Calculus", "type": "domain", "depth": 0, "mastery_likelihood": 0.2, "source_material_ids": ["m1"]},
    {"id": "limits", "label": "Limits", "type": "concept", "depth": 1, "mastery_likelihood": 0.3, "source_material_ids": ["m1"]},
    {"id": "derivatives", "label": "Derivatives", "type": "concept", "depth": 2, "mastery_likelihood": 0.1, "source_material_ids": ["m1", "m2"]}
  ],
  "edges": [
    {"node_id": "limits", "prerequisite_node_id": "calculus", "relationship": "requires", "reasoning": "limits are a calculus topic"},
    {"node_id": "derivatives", "prerequisite_node_id": "limits", "relationship": "requires", "reasoning": "derivatives are defined via limits"}
  ]
}`

func testInput() Input {
	return Input{
		Goal: "learn single-variable calculus",
		Materials: []Material{
			{ID: "m1", Title: "Calculus notes", Content: "limits, derivatives"},
			{ID: "m2", Title: "Problem set", Content: "differentiation drills"},
		},
	}
}

func TestExtractBuildsCandidateGraph(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(candidateDoc),
		Usage:   llm.Usage{InputTokens: 900, OutputTokens: 400, TotalTokens: 1300},
	})
	e := New(mock, DefaultConfig())

	res, err := e.Extract(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Stats.NodeCount != 3 || res.Stats.EdgeCount != 2 {
		t.Fatalf("stats = %+v", res.Stats)
	}
	if res.Stats.MaxDepth != 2 || res.Stats.RootCount != 1 {
		t.Fatalf("stats = %+v", res.Stats)
	}
	if res.Stats.Relationships[knowledge.RelRequires] != 2 {
		t.Fatalf("relationship counts = %v", res.Stats.Relationships)
	}
	if res.Usage.TotalTokens != 1300 {
		t.Fatalf("usage = %+v", res.Usage)
	}

	// Candidate output must still pass semantic validation downstream.
	if err := res.Graph.Validate(); err != nil {
		t.Fatalf("candidate failed validation: %v", err)
	}
}

func TestExtractRequestShape(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(candidateDoc)})
	e := New(mock, Config{MaxTokens: 2048, Temperature: 0.1})

	if _, err := e.Extract(context.Background(), testInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "knowledge-graph" {
		t.Fatalf("schema = %+v", req.Schema)
	}
	if req.MaxTokens != 2048 {
		t.Fatalf("max tokens = %d", req.MaxTokens)
	}
	if len(req.Messages) != 1 {
		t.Fatalf("messages = %d", len(req.Messages))
	}
	user := req.Messages[0].Content
	if !strings.Contains(user, "learn single-variable calculus") {
		t.Fatalf("goal missing from prompt:\n%s", user)
	}
	if !strings.Contains(user, "material id=m2") {
		t.Fatalf("material ids missing from prompt:\n%s", user)
	}
}

func TestExtractRejectsBadInput(t *testing.T) {
	e := New(llm.NewMockProvider(), DefaultConfig())

	if _, err := e.Extract(context.Background(), Input{Goal: "  ", Materials: []Material{{ID: "m1"}}}); err == nil {
		t.Fatal("expected error for empty goal")
	}
	if _, err := e.Extract(context.Background(), Input{Goal: "g"}); err == nil {
		t.Fatal("expected error for no materials")
	}
	in := testInput()
	in.Materials[0].ID = ""
	if _, err := e.Extract(context.Background(), in); err == nil {
		t.Fatal("expected error for material without id")
	}
}

func TestExtractProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	e := New(mock, DefaultConfig())

	_, err := e.Extract(context.Background(), testInput())
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected wrapped ErrProviderUnavailable, got %v", err)
	}
}

func TestExtractRejectsMalformedCandidate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"nodes": [{"id": "x"}], "edges": []}`),
	})
	e := New(mock, DefaultConfig())

	if _, err := e.Extract(context.Background(), testInput()); err == nil {
		t.Fatal("expected decode error for incomplete node")
	}
}

func TestClipTruncatesLongMaterial(t *testing.T) {
	long := strings.Repeat("a", maxMaterialChars+100)
	got := clip(long, maxMaterialChars)
	if len(got) >= len(long) {
		t.Fatal("material not truncated")
	}
	if !strings.HasSuffix(got, "[... truncated ...]") {
		t.Fatalf("missing truncation marker: %q", got[len(got)-30:])
	}
}
