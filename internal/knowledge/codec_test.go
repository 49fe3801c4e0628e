package knowledge

import (
	"strings"
	"testing"
)

const sampleCandidate = `{
  "nodes": [
    {"id": "linear-algebra", "label": "Linear Algebra", "type": "foundation", "depth": 1,
     "mastery_likelihood": 0.6, "source_material_ids": ["paper-1"]},
    {"id": "math", "label": "Mathematics", "type": "domain", "depth": 0,
     "mastery_likelihood": 0.8, "source_material_ids": []},
    {"id": "gradient-descent", "label": "Gradient Descent", "type": "method", "depth": 2,
     "mastery_likelihood": 0.3, "source_material_ids": ["paper-2"]}
  ],
  "edges": [
    {"node_id": "linear-algebra", "prerequisite_node_id": "math",
     "relationship": "requires", "reasoning": "algebra sits inside mathematics"},
    {"node_id": "gradient-descent", "prerequisite_node_id": "linear-algebra",
     "relationship": "requires", "reasoning": "descent steps are vector operations"}
  ]
}`

func TestDecodeCandidate_RoundTrip(t *testing.T) {
	g, err := DecodeCandidate([]byte(sampleCandidate))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if g.Len() != 3 {
		t.Fatalf("nodes = %d, want 3", g.Len())
	}

	n, err := g.Node("gradient-descent")
	if err != nil {
		t.Fatal(err)
	}
	if n.Type != TypeMethod || n.Depth != 2 || n.MasteryLikelihood != 0.3 {
		t.Errorf("node = %+v", n)
	}
	if len(n.EvidenceRefs) != 1 || n.EvidenceRefs[0] != "paper-2" {
		t.Errorf("evidence refs = %v", n.EvidenceRefs)
	}

	prereqs := g.Prerequisites("gradient-descent")
	if len(prereqs) != 1 || prereqs[0] != "linear-algebra" {
		t.Errorf("prerequisites = %v, want [linear-algebra]", prereqs)
	}

	// The decoded sample is also structurally valid.
	if err := g.Validate(); err != nil {
		t.Errorf("sample should validate: %v", err)
	}
}

func TestDecodeCandidate_RejectsBadJSON(t *testing.T) {
	_, err := DecodeCandidate([]byte(`{"nodes": [`))
	if err == nil {
		t.Fatal("expected error for truncated JSON, got nil")
	}
}

func TestDecodeCandidate_RejectsUnknownRelationship(t *testing.T) {
	doc := strings.Replace(sampleCandidate, `"relationship": "requires"`, `"relationship": "needs"`, 1)
	_, err := DecodeCandidate([]byte(doc))
	if err == nil {
		t.Fatal("expected schema rejection for unknown relationship, got nil")
	}
	if !strings.Contains(err.Error(), "schema") {
		t.Errorf("error should come from the schema check, got: %v", err)
	}
}

func TestDecodeCandidate_RejectsDepthOutOfRange(t *testing.T) {
	doc := strings.Replace(sampleCandidate, `"depth": 2`, `"depth": 9`, 1)
	_, err := DecodeCandidate([]byte(doc))
	if err == nil {
		t.Fatal("expected schema rejection for depth 9, got nil")
	}
}

func TestDecodeCandidate_RejectsMissingFields(t *testing.T) {
	_, err := DecodeCandidate([]byte(`{"nodes": [{"id": "a"}], "edges": []}`))
	if err == nil {
		t.Fatal("expected schema rejection for missing node fields, got nil")
	}
}

func TestEncodeDocument_RoundTrips(t *testing.T) {
	g, err := DecodeCandidate([]byte(sampleCandidate))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	raw, err := EncodeDocument(g)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	again, err := DecodeCandidate(raw)
	if err != nil {
		t.Fatalf("re-decode: %v", err)
	}
	if again.Len() != g.Len() || len(again.Edges()) != len(g.Edges()) {
		t.Errorf("round trip changed sizes: %d/%d vs %d/%d",
			again.Len(), len(again.Edges()), g.Len(), len(g.Edges()))
	}
}
