package knowledge

import (
	"strings"
	"testing"
)

func TestNew_RejectsDuplicateID(t *testing.T) {
	_, err := New([]ConceptNode{
		node("a", TypeDomain, 0),
		node("a", TypeDomain, 0),
	}, nil)
	if err == nil {
		t.Fatal("expected error for duplicate id, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("error should mention duplicate, got: %v", err)
	}
}

func TestNew_RejectsDanglingEdge(t *testing.T) {
	_, err := New(
		[]ConceptNode{node("a", TypeDomain, 0)},
		[]PrerequisiteEdge{requires("a", "ghost")},
	)
	if err == nil {
		t.Fatal("expected error for dangling edge, got nil")
	}
	if !strings.Contains(err.Error(), "ghost") {
		t.Errorf("error should name the missing node, got: %v", err)
	}
}

func TestNew_RejectsUnknownRelationship(t *testing.T) {
	_, err := New(
		[]ConceptNode{node("a", TypeDomain, 0), node("b", TypeConcept, 1)},
		[]PrerequisiteEdge{{From: "a", To: "b", Relationship: "depends", Reasoning: "x"}},
	)
	if err == nil {
		t.Fatal("expected error for unknown relationship, got nil")
	}
}

func TestNew_RejectsUnknownNodeType(t *testing.T) {
	_, err := New([]ConceptNode{{ID: "a", Label: "a", Type: "topic", Depth: 0}}, nil)
	if err == nil {
		t.Fatal("expected error for unknown node type, got nil")
	}
}

func TestNew_RejectsDepthOutOfRange(t *testing.T) {
	_, err := New([]ConceptNode{{ID: "a", Label: "a", Type: TypeConcept, Depth: MaxDepth + 1}}, nil)
	if err == nil {
		t.Fatal("expected error for depth out of range, got nil")
	}
}

func TestNew_RejectsMissingReasoning(t *testing.T) {
	_, err := New(
		[]ConceptNode{node("a", TypeDomain, 0), node("b", TypeConcept, 1)},
		[]PrerequisiteEdge{{From: "a", To: "b", Relationship: RelRequires}},
	)
	if err == nil {
		t.Fatal("expected error for requires edge without reasoning, got nil")
	}
	if !strings.Contains(err.Error(), "reasoning") {
		t.Errorf("error should mention reasoning, got: %v", err)
	}
}

func TestNew_RelatedNeedsNoReasoning(t *testing.T) {
	_, err := New(
		[]ConceptNode{node("a", TypeDomain, 0), node("b", TypeConcept, 1)},
		[]PrerequisiteEdge{related("a", "b")},
	)
	if err != nil {
		t.Fatalf("related edge without reasoning should be fine, got: %v", err)
	}
}

func TestGraph_PrerequisitesAndDependents(t *testing.T) {
	g := makeGraph(t,
		[]ConceptNode{
			node("a", TypeDomain, 0),
			node("b", TypeConcept, 1),
			node("c", TypeConcept, 1),
			node("d", TypeMethod, 2),
		},
		[]PrerequisiteEdge{
			requires("a", "b"),
			requires("a", "c"),
			buildsOn("b", "d"),
			related("c", "d"),
		},
	)

	prereqs := g.Prerequisites("d")
	if len(prereqs) != 1 || prereqs[0] != "b" {
		t.Errorf("Prerequisites(d) = %v, want [b] (related excluded)", prereqs)
	}

	deps := g.Dependents("a")
	if len(deps) != 2 || deps[0] != "b" || deps[1] != "c" {
		t.Errorf("Dependents(a) = %v, want [b c]", deps)
	}
}

func TestGraph_Roots(t *testing.T) {
	g := makeGraph(t,
		[]ConceptNode{
			node("a", TypeDomain, 0),
			node("b", TypeConcept, 1),
		},
		[]PrerequisiteEdge{requires("a", "b")},
	)
	roots := g.Roots()
	if len(roots) != 1 || roots[0].ID != "a" {
		t.Errorf("Roots() = %v, want [a]", roots)
	}
}

func TestGraph_RelationshipCounts(t *testing.T) {
	g := makeGraph(t,
		[]ConceptNode{
			node("a", TypeDomain, 0),
			node("b", TypeConcept, 1),
			node("c", TypeConcept, 1),
		},
		[]PrerequisiteEdge{
			requires("a", "b"),
			requires("a", "c"),
			related("b", "c"),
		},
	)
	counts := g.RelationshipCounts()
	if counts[RelRequires] != 2 || counts[RelRelated] != 1 || counts[RelBuildsOn] != 0 {
		t.Errorf("counts = %v", counts)
	}
}
