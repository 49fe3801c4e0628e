package refine

import (
	"testing"

	"github.com/abhisek/atlas/internal/knowledge"
)

// triangle builds the A(depth0) <- B,C(depth1) scenario graph with the
// given per-node priors.
func triangle(t *testing.T, priorA, priorB, priorC float64) *knowledge.Graph {
	t.Helper()
	g, err := knowledge.New(
		[]knowledge.ConceptNode{
			{ID: "a", Label: "A", Type: knowledge.TypeDomain, Depth: 0, MasteryLikelihood: priorA},
			{ID: "b", Label: "B", Type: knowledge.TypeConcept, Depth: 1, MasteryLikelihood: priorB},
			{ID: "c", Label: "C", Type: knowledge.TypeConcept, Depth: 1, MasteryLikelihood: priorC},
		},
		[]knowledge.PrerequisiteEdge{
			{From: "a", To: "b", Relationship: knowledge.RelRequires, Reasoning: "a before b"},
			{From: "a", To: "c", Relationship: knowledge.RelRequires, Reasoning: "a before c"},
		},
	)
	if err != nil {
		t.Fatalf("build graph: %v", err)
	}
	if err := g.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	return g
}

func TestRefine_AllLowPriorsLandInKeep(t *testing.T) {
	g := triangle(t, 0.1, 0.1, 0.1)

	result, err := Refine(g, nil, Options{})
	if err != nil {
		t.Fatalf("refine: %v", err)
	}

	for _, id := range []string{"a", "b", "c"} {
		d, ok := result.Decision(id)
		if !ok {
			t.Fatalf("missing decision for %q", id)
		}
		if d.Bucket != BucketKeep {
			t.Errorf("bucket(%s) = %s, want keep", id, d.Bucket)
		}
	}
}

func TestRefine_Partition(t *testing.T) {
	g := triangle(t, 0.9, 0.5, 0.1)

	result, err := Refine(g, nil, Options{})
	if err != nil {
		t.Fatalf("refine: %v", err)
	}

	tests := []struct {
		id   string
		want Bucket
	}{
		{"a", BucketDrop},    // 0.9 >= 0.75
		{"b", BucketConfirm}, // 0.5 between thresholds
		{"c", BucketKeep},    // 0.1 <= 0.3
	}
	for _, tt := range tests {
		d, _ := result.Decision(tt.id)
		if d.Bucket != tt.want {
			t.Errorf("bucket(%s) = %s, want %s", tt.id, d.Bucket, tt.want)
		}
	}
}

func TestRefine_UnmasteredPrerequisiteCapsComposite(t *testing.T) {
	// a is unmastered (0.1 < low); b's confident prior 0.9 must be capped
	// at low and land in keep, not drop.
	g := triangle(t, 0.1, 0.9, 0.9)

	result, err := Refine(g, nil, Options{})
	if err != nil {
		t.Fatalf("refine: %v", err)
	}

	b, _ := result.Decision("b")
	if b.Composite > 0.3 {
		t.Errorf("composite(b) = %g, want <= 0.3 (capped)", b.Composite)
	}
	if b.Bucket != BucketKeep {
		t.Errorf("bucket(b) = %s, want keep", b.Bucket)
	}
}

func TestRefine_CapPropagatesDownChain(t *testing.T) {
	// a(0.1) -> b(0.9) -> d(0.9): b is capped to low, and since the cap
	// leaves b at exactly low (not below), d keeps its own prior.
	g, err := knowledge.New(
		[]knowledge.ConceptNode{
			{ID: "a", Label: "A", Type: knowledge.TypeDomain, Depth: 0, MasteryLikelihood: 0.1},
			{ID: "b", Label: "B", Type: knowledge.TypeConcept, Depth: 1, MasteryLikelihood: 0.9},
			{ID: "d", Label: "D", Type: knowledge.TypeMethod, Depth: 2, MasteryLikelihood: 0.9},
		},
		[]knowledge.PrerequisiteEdge{
			{From: "a", To: "b", Relationship: knowledge.RelRequires, Reasoning: "a before b"},
			{From: "b", To: "d", Relationship: knowledge.RelRequires, Reasoning: "b before d"},
		},
	)
	if err != nil {
		t.Fatal(err)
	}

	result, err := Refine(g, nil, Options{})
	if err != nil {
		t.Fatalf("refine: %v", err)
	}

	b, _ := result.Decision("b")
	if b.Composite != 0.3 {
		t.Errorf("composite(b) = %g, want 0.3", b.Composite)
	}
	d, _ := result.Decision("d")
	if d.Composite != 0.9 {
		t.Errorf("composite(d) = %g, want 0.9 (b sits at low, not below)", d.Composite)
	}
}

func TestRefine_BuildsOnDoesNotCap(t *testing.T) {
	g, err := knowledge.New(
		[]knowledge.ConceptNode{
			{ID: "a", Label: "A", Type: knowledge.TypeDomain, Depth: 0, MasteryLikelihood: 0.1},
			{ID: "b", Label: "B", Type: knowledge.TypeConcept, Depth: 1, MasteryLikelihood: 0.9},
		},
		[]knowledge.PrerequisiteEdge{
			{From: "a", To: "b", Relationship: knowledge.RelBuildsOn, Reasoning: "soft"},
		},
	)
	if err != nil {
		t.Fatal(err)
	}

	result, err := Refine(g, nil, Options{})
	if err != nil {
		t.Fatalf("refine: %v", err)
	}
	b, _ := result.Decision("b")
	if b.Bucket != BucketDrop {
		t.Errorf("bucket(b) = %s, want drop (builds_on never caps)", b.Bucket)
	}
}

func TestRefine_ProfileSignalsOverridePriors(t *testing.T) {
	g := triangle(t, 0.9, 0.9, 0.9)

	priors := map[string]float64{"b": 0.1}
	result, err := Refine(g, priors, Options{})
	if err != nil {
		t.Fatalf("refine: %v", err)
	}

	b, _ := result.Decision("b")
	if b.Bucket != BucketKeep {
		t.Errorf("bucket(b) = %s, want keep after profile override", b.Bucket)
	}
	a, _ := result.Decision("a")
	if a.Bucket != BucketDrop {
		t.Errorf("bucket(a) = %s, want drop (no override)", a.Bucket)
	}
}

func TestRefine_SkipPropagationFlagsLowConfidence(t *testing.T) {
	g := triangle(t, 0.1, 0.9, 0.9)

	result, err := Refine(g, nil, Options{SkipPropagation: true})
	if err != nil {
		t.Fatalf("refine: %v", err)
	}
	if !result.LowConfidence {
		t.Error("expected low-confidence flag")
	}

	// Without propagation b keeps its own confident prior.
	b, _ := result.Decision("b")
	if b.Bucket != BucketDrop {
		t.Errorf("bucket(b) = %s, want drop when propagation is off", b.Bucket)
	}
}

func TestRefine_ThresholdMonotonicity(t *testing.T) {
	g := triangle(t, 0.9, 0.5, 0.1)

	base, err := Refine(g, nil, Options{Thresholds: Thresholds{Low: 0.3, High: 0.75}})
	if err != nil {
		t.Fatal(err)
	}
	lowered, err := Refine(g, nil, Options{Thresholds: Thresholds{Low: 0.05, High: 0.75}})
	if err != nil {
		t.Fatal(err)
	}

	// Lowering low never moves a node from confirm/drop into keep.
	for _, d := range lowered.Decisions {
		if d.Bucket != BucketKeep {
			continue
		}
		before, _ := base.Decision(d.NodeID)
		if before.Bucket != BucketKeep {
			t.Errorf("node %s entered keep after lowering low (was %s)", d.NodeID, before.Bucket)
		}
	}

	raised, err := Refine(g, nil, Options{Thresholds: Thresholds{Low: 0.3, High: 0.95}})
	if err != nil {
		t.Fatal(err)
	}
	// Raising high never moves a node out of drop... check the contrapositive:
	// everything in drop under the raised threshold was in drop before.
	for _, d := range raised.Decisions {
		if d.Bucket != BucketDrop {
			continue
		}
		before, _ := base.Decision(d.NodeID)
		if before.Bucket != BucketDrop {
			t.Errorf("node %s entered drop after raising high (was %s)", d.NodeID, before.Bucket)
		}
	}
}

func TestRefine_RejectsInvalidThresholds(t *testing.T) {
	g := triangle(t, 0.1, 0.1, 0.1)
	_, err := Refine(g, nil, Options{Thresholds: Thresholds{Low: 0.8, High: 0.3}})
	if err == nil {
		t.Fatal("expected error for inverted thresholds, got nil")
	}
}

func TestRefine_RejectsCyclicGraph(t *testing.T) {
	// Bypassing validation with a cyclic graph must fail, not hang.
	g, err := knowledge.New(
		[]knowledge.ConceptNode{
			{ID: "a", Label: "A", Type: knowledge.TypeConcept, Depth: 1, MasteryLikelihood: 0.1},
			{ID: "b", Label: "B", Type: knowledge.TypeConcept, Depth: 1, MasteryLikelihood: 0.1},
		},
		[]knowledge.PrerequisiteEdge{
			{From: "a", To: "b", Relationship: knowledge.RelRequires, Reasoning: "x"},
			{From: "b", To: "a", Relationship: knowledge.RelRequires, Reasoning: "y"},
		},
	)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Refine(g, nil, Options{}); err == nil {
		t.Fatal("expected error for cyclic requires edges, got nil")
	}
}

func TestResult_Retained(t *testing.T) {
	g := triangle(t, 0.9, 0.5, 0.1)
	result, err := Refine(g, nil, Options{})
	if err != nil {
		t.Fatal(err)
	}

	// Nothing confirmed: only keep survives.
	got := result.Retained(nil)
	if len(got) != 1 || got[0] != "c" {
		t.Errorf("Retained(nil) = %v, want [c]", got)
	}

	// Confirming b adds it.
	got = result.Retained(map[string]bool{"b": true})
	if len(got) != 2 {
		t.Fatalf("Retained(b) = %v, want 2 ids", got)
	}
}
