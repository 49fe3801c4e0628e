package knowledge

import (
	"errors"
	"slices"
	"testing"
)

// makeGraph builds a graph from shorthand, failing the test on index errors.
func makeGraph(t *testing.T, nodes []ConceptNode, edges []PrerequisiteEdge) *Graph {
	t.Helper()
	g, err := New(nodes, edges)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func node(id string, typ NodeType, depth int) ConceptNode {
	return ConceptNode{ID: id, Label: id, Type: typ, Depth: depth, MasteryLikelihood: 0.1}
}

func requires(from, to string) PrerequisiteEdge {
	return PrerequisiteEdge{From: from, To: to, Relationship: RelRequires, Reasoning: from + " gates " + to}
}

func buildsOn(from, to string) PrerequisiteEdge {
	return PrerequisiteEdge{From: from, To: to, Relationship: RelBuildsOn, Reasoning: from + " supports " + to}
}

func related(from, to string) PrerequisiteEdge {
	return PrerequisiteEdge{From: from, To: to, Relationship: RelRelated}
}

func TestValidate_AcceptsWellFormedGraph(t *testing.T) {
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
	if err := g.Validate(); err != nil {
		t.Fatalf("expected valid graph, got: %v", err)
	}
}

func TestValidate_DetectsCycle(t *testing.T) {
	g := makeGraph(t,
		[]ConceptNode{
			node("a", TypeDomain, 0),
			node("b", TypeConcept, 1),
			node("c", TypeConcept, 1),
		},
		[]PrerequisiteEdge{
			requires("a", "b"),
			requires("a", "c"),
			// Injected back-edge closing the cycle a -> c -> a.
			{From: "c", To: "a", Relationship: RelRequires, Reasoning: "bogus"},
		},
	)
	err := g.Validate()
	if err == nil {
		t.Fatal("expected cycle error, got nil")
	}

	var cycleErr *CycleError
	if !errors.As(err, &cycleErr) {
		t.Fatalf("expected CycleError in chain, got: %v", err)
	}
	for _, id := range []string{"a", "c"} {
		if !slices.Contains(cycleErr.Nodes, id) {
			t.Errorf("cycle %v should contain %q", cycleErr.Nodes, id)
		}
	}
}

func TestValidate_CycleThroughRelatedIsPermitted(t *testing.T) {
	g := makeGraph(t,
		[]ConceptNode{
			node("a", TypeDomain, 0),
			node("b", TypeConcept, 1),
		},
		[]PrerequisiteEdge{
			requires("a", "b"),
			// related carries no ordering obligation, so b -> a is fine.
			related("b", "a"),
		},
	)
	err := g.Validate()
	var cycleErr *CycleError
	if errors.As(err, &cycleErr) {
		t.Fatalf("related edges must not form ordering cycles, got: %v", err)
	}
}

func TestValidate_DetectsUngroundedNode(t *testing.T) {
	// d sits at depth 4 with no ordering ancestor reaching depth <= 1.
	g := makeGraph(t,
		[]ConceptNode{
			node("a", TypeDomain, 0),
			node("c", TypeMethod, 3),
			node("d", TypeTheory, 4),
		},
		[]PrerequisiteEdge{
			requires("c", "d"),
			related("a", "c"),
		},
	)
	err := g.Validate()
	if err == nil {
		t.Fatal("expected ungrounded error, got nil")
	}
	var ungrounded *UngroundedNodeError
	if !errors.As(err, &ungrounded) {
		t.Fatalf("expected UngroundedNodeError, got: %v", err)
	}
}

func TestValidate_GroundingFollowsOrderingChain(t *testing.T) {
	// e(depth 4) grounds through d(3) -> b(1), a multi-hop chain.
	g := makeGraph(t,
		[]ConceptNode{
			node("a", TypeDomain, 0),
			node("b", TypeFoundation, 1),
			node("d", TypeMethod, 3),
			node("e", TypeTheory, 4),
		},
		[]PrerequisiteEdge{
			requires("a", "b"),
			requires("b", "d"),
			buildsOn("d", "e"),
		},
	)
	if err := g.Validate(); err != nil {
		t.Fatalf("chain-grounded graph should validate, got: %v", err)
	}
}

func TestValidate_DetectsDepthViolations(t *testing.T) {
	g := makeGraph(t,
		[]ConceptNode{
			node("a", TypeDomain, 0),
			node("b", TypeConcept, 2),
			node("c", TypeConcept, 1),
		},
		[]PrerequisiteEdge{
			requires("a", "c"),
			requires("a", "b"),
			// requires needs depth(from) < depth(to); 2 >= 1 violates.
			requires("b", "c"),
		},
	)
	err := g.Validate()
	if err == nil {
		t.Fatal("expected depth violation, got nil")
	}
	var depthErr *DepthViolationError
	if !errors.As(err, &depthErr) {
		t.Fatalf("expected DepthViolationError, got: %v", err)
	}
	if len(depthErr.Violations) != 1 {
		t.Fatalf("violations = %d, want 1", len(depthErr.Violations))
	}
	v := depthErr.Violations[0]
	if v.Edge.From != "b" || v.Edge.To != "c" {
		t.Errorf("violating edge = %s -> %s, want b -> c", v.Edge.From, v.Edge.To)
	}
}

func TestValidate_BuildsOnPermitsEqualDepth(t *testing.T) {
	g := makeGraph(t,
		[]ConceptNode{
			node("a", TypeDomain, 0),
			node("b", TypeConcept, 1),
			node("c", TypeConcept, 1),
		},
		[]PrerequisiteEdge{
			requires("a", "b"),
			requires("a", "c"),
			buildsOn("b", "c"),
		},
	)
	if err := g.Validate(); err != nil {
		t.Fatalf("builds_on at equal depth should validate, got: %v", err)
	}
}

func TestValidate_DetectsCircularDomains(t *testing.T) {
	g := makeGraph(t,
		[]ConceptNode{
			node("math", TypeDomain, 0),
			node("stats", TypeDomain, 0),
		},
		[]PrerequisiteEdge{
			{From: "math", To: "stats", Relationship: RelRequires, Reasoning: "bogus"},
		},
	)
	err := g.Validate()
	if err == nil {
		t.Fatal("expected circular domain error, got nil")
	}
	var domErr *CircularDomainError
	if !errors.As(err, &domErr) {
		t.Fatalf("expected CircularDomainError, got: %v", err)
	}
	if domErr.From != "math" || domErr.To != "stats" {
		t.Errorf("edge = %s -> %s, want math -> stats", domErr.From, domErr.To)
	}
}

func TestValidate_DetectsOrphanPrerequisite(t *testing.T) {
	// b has incoming edges but only related ones: nothing can schedule it.
	g := makeGraph(t,
		[]ConceptNode{
			node("a", TypeDomain, 0),
			node("b", TypeConcept, 1),
		},
		[]PrerequisiteEdge{
			related("a", "b"),
		},
	)
	err := g.Validate()
	if err == nil {
		t.Fatal("expected orphan error, got nil")
	}
	var ungrounded *UngroundedNodeError
	if !errors.As(err, &ungrounded) {
		t.Fatalf("expected UngroundedNodeError, got: %v", err)
	}
	if ungrounded.NodeID != "b" {
		t.Errorf("orphan node = %q, want b", ungrounded.NodeID)
	}
}

func TestValidate_ReportsAllIssuesTogether(t *testing.T) {
	g := makeGraph(t,
		[]ConceptNode{
			node("math", TypeDomain, 0),
			node("stats", TypeDomain, 0),
			node("x", TypeTheory, 4),
			node("y", TypeTheory, 4),
		},
		[]PrerequisiteEdge{
			{From: "math", To: "stats", Relationship: RelRequires, Reasoning: "bogus"},
			requires("x", "y"),
			{From: "y", To: "x", Relationship: RelBuildsOn, Reasoning: "bogus"},
		},
	)
	err := g.Validate()
	if err == nil {
		t.Fatal("expected validation failure, got nil")
	}

	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got: %v", err)
	}
	// One pass reports the cycle, depth violations, domain dependency and
	// the ungrounded deep nodes without stopping at the first failure.
	var cycleErr *CycleError
	var domErr *CircularDomainError
	var ungrounded *UngroundedNodeError
	if !errors.As(err, &cycleErr) {
		t.Error("missing CycleError")
	}
	if !errors.As(err, &domErr) {
		t.Error("missing CircularDomainError")
	}
	if !errors.As(err, &ungrounded) {
		t.Error("missing UngroundedNodeError")
	}
}

func TestValidate_DeterministicDiagnostics(t *testing.T) {
	nodes := []ConceptNode{
		node("a", TypeDomain, 0),
		node("b", TypeConcept, 1),
		node("c", TypeConcept, 1),
	}
	edges := []PrerequisiteEdge{
		requires("a", "b"),
		requires("a", "c"),
		{From: "c", To: "a", Relationship: RelRequires, Reasoning: "bogus"},
	}

	first := makeGraph(t, nodes, edges).Validate()
	second := makeGraph(t, nodes, edges).Validate()
	if first == nil || second == nil {
		t.Fatal("expected validation failures")
	}
	if first.Error() != second.Error() {
		t.Errorf("diagnostics differ across runs:\n%v\n%v", first, second)
	}
}
