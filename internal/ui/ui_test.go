package ui

import (
	"strings"
	"testing"

	"github.com/abhisek/atlas/internal/progress"
	"github.com/abhisek/atlas/internal/refine"
	"github.com/abhisek/atlas/internal/sequence"
)

func TestBucketsGroupsDecisions(t *testing.T) {
	r := &refine.Result{
		Decisions: []refine.Decision{
			{NodeID: "a", Label: "Algebra", Bucket: refine.BucketKeep, Composite: 0.1, Reasoning: "extraction prior 0.10"},
			{NodeID: "b", Label: "Calculus", Bucket: refine.BucketConfirm, Composite: 0.5, Reasoning: "profile signal 0.50"},
		},
		LowConfidence: true,
	}

	out := Buckets(r)
	for _, want := range []string{"Algebra", "Calculus", "KEEP", "CONFIRM", "low confidence"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPlanViewNumbersEntries(t *testing.T) {
	plan := &sequence.Plan{Entries: []sequence.PlanEntry{
		{NodeID: "limits", OrderIndex: 0},
		{NodeID: "derivatives", OrderIndex: 1},
	}}

	out := PlanView(plan, nil, []string{"algebra"})
	if !strings.Contains(out, "1. limits") || !strings.Contains(out, "2. derivatives") {
		t.Errorf("entries not numbered:\n%s", out)
	}
	if !strings.Contains(out, "algebra") {
		t.Errorf("dropped nodes missing:\n%s", out)
	}
}

func TestProgressSummaryStates(t *testing.T) {
	sum := &progress.Summary{
		TotalTopics:        4,
		CompletedTopics:    1,
		AverageMastery:     0.4,
		ProgressPercentage: 25,
	}
	out := ProgressSummary(sum, "derivatives")
	if !strings.Contains(out, "1/4") || !strings.Contains(out, "derivatives") {
		t.Errorf("summary incomplete:\n%s", out)
	}

	sum.CourseComplete = true
	out = ProgressSummary(sum, "")
	if !strings.Contains(out, "course complete") {
		t.Errorf("completion not shown:\n%s", out)
	}
}

func TestBarBounds(t *testing.T) {
	if !strings.Contains(bar(0, 10), strings.Repeat("░", 10)) {
		t.Error("empty bar wrong")
	}
	if !strings.Contains(bar(100, 10), strings.Repeat("█", 10)) {
		t.Error("full bar wrong")
	}
	// Out-of-range inputs clamp instead of panicking.
	bar(-5, 10)
	bar(250, 10)
}
