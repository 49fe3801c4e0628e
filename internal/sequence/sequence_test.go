package sequence

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/abhisek/atlas/internal/knowledge"
)

func buildGraph(t *testing.T, nodes []knowledge.ConceptNode, edges []knowledge.PrerequisiteEdge) *knowledge.Graph {
	t.Helper()
	g, err := knowledge.New(nodes, edges)
	if err != nil {
		t.Fatalf("build graph: %v", err)
	}
	return g
}

func req(from, to string) knowledge.PrerequisiteEdge {
	return knowledge.PrerequisiteEdge{From: from, To: to, Relationship: knowledge.RelRequires, Reasoning: from + " before " + to}
}

func cn(id string, depth int) knowledge.ConceptNode {
	typ := knowledge.TypeConcept
	if depth == 0 {
		typ = knowledge.TypeDomain
	}
	return knowledge.ConceptNode{ID: id, Label: id, Type: typ, Depth: depth, MasteryLikelihood: 0.1}
}

func TestBuild_ScenarioTriangle(t *testing.T) {
	// A(depth0) gates B and C (depth1): A first, then B before C by id.
	g := buildGraph(t,
		[]knowledge.ConceptNode{cn("a", 0), cn("b", 1), cn("c", 1)},
		[]knowledge.PrerequisiteEdge{req("a", "b"), req("a", "c")},
	)

	plan, err := Build(g, []string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(plan.NodeIDs(), want) {
		t.Errorf("order = %v, want %v", plan.NodeIDs(), want)
	}
	for i, e := range plan.Entries {
		if e.OrderIndex != i {
			t.Errorf("entry %d has order index %d", i, e.OrderIndex)
		}
	}
}

func TestBuild_PrerequisitesAlwaysPrecedeDependents(t *testing.T) {
	g := buildGraph(t,
		[]knowledge.ConceptNode{
			cn("math", 0), cn("algebra", 1), cn("calculus", 2),
			cn("stats", 1), cn("regression", 2), cn("glm", 3),
		},
		[]knowledge.PrerequisiteEdge{
			req("math", "algebra"),
			req("algebra", "calculus"),
			req("math", "stats"),
			req("stats", "regression"),
			req("calculus", "glm"),
			req("regression", "glm"),
		},
	)

	retained := []string{"math", "algebra", "calculus", "stats", "regression", "glm"}
	plan, err := Build(g, retained)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	for _, e := range g.Edges() {
		if !e.Relationship.Ordering() {
			continue
		}
		if plan.Index(e.From) >= plan.Index(e.To) {
			t.Errorf("edge %s -> %s out of order: %d >= %d",
				e.From, e.To, plan.Index(e.From), plan.Index(e.To))
		}
	}
}

func TestBuild_TieBreakByDepthThenID(t *testing.T) {
	// Two independent roots: zebra at depth 0 must come before apple at
	// depth 1 despite the id order; equal depths fall back to id.
	g := buildGraph(t,
		[]knowledge.ConceptNode{cn("zebra", 0), cn("apple", 1), cn("mango", 1)},
		[]knowledge.PrerequisiteEdge{req("zebra", "apple"), req("zebra", "mango")},
	)

	plan, err := Build(g, []string{"apple", "mango", "zebra"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	want := []string{"zebra", "apple", "mango"}
	if !reflect.DeepEqual(plan.NodeIDs(), want) {
		t.Errorf("order = %v, want %v", plan.NodeIDs(), want)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	// Random DAG: edges only from lower depth to higher depth.
	rng := rand.New(rand.NewSource(7))
	var nodes []knowledge.ConceptNode
	var edges []knowledge.PrerequisiteEdge
	ids := make([]string, 30)
	for i := range ids {
		ids[i] = string(rune('a'+i%26)) + string(rune('0'+i/26))
		nodes = append(nodes, cn(ids[i], i%5))
	}
	for i := range ids {
		for j := range ids {
			if nodes[i].Depth < nodes[j].Depth && rng.Float64() < 0.15 {
				edges = append(edges, req(ids[i], ids[j]))
			}
		}
	}

	g := buildGraph(t, nodes, edges)
	first, err := Build(g, ids)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	second, err := Build(g, ids)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !reflect.DeepEqual(first.NodeIDs(), second.NodeIDs()) {
		t.Error("two runs over the same input produced different orders")
	}
}

func TestBuild_DroppedNodeDoesNotGateDependents(t *testing.T) {
	// b is dropped (already known): c schedules without waiting for it.
	g := buildGraph(t,
		[]knowledge.ConceptNode{cn("a", 0), cn("b", 1), cn("c", 2)},
		[]knowledge.PrerequisiteEdge{req("a", "b"), req("b", "c")},
	)

	plan, err := Build(g, []string{"a", "c"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	want := []string{"a", "c"}
	if !reflect.DeepEqual(plan.NodeIDs(), want) {
		t.Errorf("order = %v, want %v", plan.NodeIDs(), want)
	}
}

func TestBuild_RelatedEdgesImposeNoOrder(t *testing.T) {
	g := buildGraph(t,
		[]knowledge.ConceptNode{cn("a", 1), cn("b", 1)},
		[]knowledge.PrerequisiteEdge{
			{From: "a", To: "b", Relationship: knowledge.RelRelated},
			{From: "b", To: "a", Relationship: knowledge.RelRelated},
		},
	)

	plan, err := Build(g, []string{"a", "b"})
	if err != nil {
		t.Fatalf("related edges must not constrain: %v", err)
	}
	if len(plan.Entries) != 2 {
		t.Errorf("entries = %d, want 2", len(plan.Entries))
	}
}

func TestBuild_DetectsCyclicSubgraph(t *testing.T) {
	g := buildGraph(t,
		[]knowledge.ConceptNode{cn("a", 1), cn("b", 1)},
		[]knowledge.PrerequisiteEdge{
			{From: "a", To: "b", Relationship: knowledge.RelBuildsOn, Reasoning: "x"},
			{From: "b", To: "a", Relationship: knowledge.RelBuildsOn, Reasoning: "y"},
		},
	)

	_, err := Build(g, []string{"a", "b"})
	if err == nil {
		t.Fatal("expected cyclic subgraph error, got nil")
	}
	var cyclic *CyclicSubgraphError
	if !errors.As(err, &cyclic) {
		t.Fatalf("expected CyclicSubgraphError, got: %v", err)
	}
	if len(cyclic.Nodes) != 2 {
		t.Errorf("cycle nodes = %v, want both", cyclic.Nodes)
	}
}

func TestBuild_RejectsUnknownRetainedID(t *testing.T) {
	g := buildGraph(t, []knowledge.ConceptNode{cn("a", 0)}, nil)
	if _, err := Build(g, []string{"a", "ghost"}); err == nil {
		t.Fatal("expected error for unknown retained id, got nil")
	}
}

func TestBuild_EmptyRetainedSet(t *testing.T) {
	g := buildGraph(t, []knowledge.ConceptNode{cn("a", 0)}, nil)
	plan, err := Build(g, nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(plan.Entries) != 0 {
		t.Errorf("entries = %d, want 0", len(plan.Entries))
	}
}
