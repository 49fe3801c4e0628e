package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/atlas/internal/extract"
	"github.com/abhisek/atlas/internal/knowledge"
	"github.com/abhisek/atlas/internal/llm"
	"github.com/abhisek/atlas/internal/profile"
	"github.com/abhisek/atlas/internal/progress"
	"github.com/abhisek/atlas/internal/refine"
	"github.com/abhisek/atlas/internal/store"
)

// Three concepts in a requires chain with staggered priors: networking
// (0.9, drop), tcp (0.5, confirm), sockets (0.2, keep).
const extractedDoc = `{
  "nodes": [
    {"id": "networking", "label": "Networking", "type": "domain", "depth": 0, "mastery_likelihood": 0.9, "source_material_ids": ["m1"]},
    {"id": "tcp", "label": "TCP", "type": "concept", "depth": 1, "mastery_likelihood": 0.5, "source_material_ids": ["m1"]},
    {"id": "sockets", "label": "Socket programming", "type": "method", "depth": 2, "mastery_likelihood": 0.2, "source_material_ids": ["m1"]}
  ],
  "edges": [
    {"node_id": "tcp", "prerequisite_node_id": "networking", "relationship": "requires", "reasoning": "tcp sits inside the networking stack"},
    {"node_id": "sockets", "prerequisite_node_id": "tcp", "relationship": "requires", "reasoning": "sockets expose tcp to programs"}
  ]
}`

// Same shape but with a requires cycle between tcp and sockets.
const cyclicDoc = `{
  "nodes": [
    {"id": "tcp", "label": "TCP", "type": "domain", "depth": 0, "mastery_likelihood": 0.5, "source_material_ids": ["m1"]},
    {"id": "sockets", "label": "Sockets", "type": "concept", "depth": 0, "mastery_likelihood": 0.2, "source_material_ids": ["m1"]}
  ],
  "edges": [
    {"node_id": "sockets", "prerequisite_node_id": "tcp", "relationship": "builds_on", "reasoning": "a"},
    {"node_id": "tcp", "prerequisite_node_id": "sockets", "relationship": "builds_on", "reasoning": "b"}
  ]
}`

func newTestPipeline(t *testing.T, responses ...llm.MockResponse) (*Pipeline, *store.Store) {
	t.Helper()
	st, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	mock := llm.NewMockProvider(responses...)
	p := FromStore(st, extract.New(mock, extract.DefaultConfig()))
	return p, st
}

func materials() []extract.Material {
	return []extract.Material{{ID: "m1", Title: "Networking course", Content: "tcp, sockets"}}
}

func freshProfile(now time.Time) *profile.Signals {
	prof := profile.New("s1", now.Add(-time.Hour), profile.DefaultTTL)
	prof.Observe("networking", 0.9)
	prof.Observe("tcp", 0.5)
	prof.Observe("sockets", 0.1)
	return prof
}

func TestIngestPersistsValidatedGraph(t *testing.T) {
	p, st := newTestPipeline(t, llm.MockResponse{
		Content: json.RawMessage(extractedDoc),
		Usage:   llm.Usage{InputTokens: 500, OutputTokens: 200, TotalTokens: 700},
	})
	ctx := context.Background()

	report, err := p.Ingest(ctx, "s1", "learn networking", materials())
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if report.Stats.NodeCount != 3 || report.Stats.MaxDepth != 2 {
		t.Fatalf("report stats = %+v", report.Stats)
	}

	sess, err := st.SessionRepo().Get(ctx, "s1")
	if err != nil {
		t.Fatalf("session not created: %v", err)
	}
	if sess.Status != store.StatusIngested {
		t.Fatalf("status = %q", sess.Status)
	}

	g, _, err := p.Graph(ctx, "s1")
	if err != nil {
		t.Fatalf("graph not stored: %v", err)
	}
	if g.Len() != 3 {
		t.Fatalf("stored graph has %d nodes", g.Len())
	}
}

func TestIngestRejectsInvalidGraph(t *testing.T) {
	p, st := newTestPipeline(t, llm.MockResponse{Content: json.RawMessage(cyclicDoc)})
	ctx := context.Background()

	_, err := p.Ingest(ctx, "s1", "goal", materials())
	var verr *knowledge.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	// Nothing persisted on rejection.
	if _, err := st.SessionRepo().Get(ctx, "s1"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("session created despite invalid graph: %v", err)
	}
}

func TestImportValidatesDocument(t *testing.T) {
	p, _ := newTestPipeline(t)
	ctx := context.Background()

	g, err := p.Import(ctx, "s1", "goal", []byte(extractedDoc))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if g.Len() != 3 {
		t.Fatalf("imported graph has %d nodes", g.Len())
	}

	if _, err := p.Import(ctx, "s2", "goal", []byte(cyclicDoc)); err == nil {
		t.Fatal("expected rejection of cyclic document")
	}
}

func TestRefineWithFreshProfile(t *testing.T) {
	p, st := newTestPipeline(t)
	ctx := context.Background()

	if _, err := p.Import(ctx, "s1", "goal", []byte(extractedDoc)); err != nil {
		t.Fatalf("import: %v", err)
	}

	report, err := p.Refine(ctx, "s1", freshProfile(p.now()), refine.DefaultThresholds())
	if err != nil {
		t.Fatalf("refine: %v", err)
	}
	if report.ProfileStale != nil {
		t.Fatalf("fresh profile flagged stale: %v", report.ProfileStale)
	}
	if report.Result.LowConfidence {
		t.Fatal("fresh profile run flagged low confidence")
	}

	want := map[string]refine.Bucket{
		"networking": refine.BucketDrop,
		"tcp":        refine.BucketConfirm,
		"sockets":    refine.BucketKeep,
	}
	for id, bucket := range want {
		d, ok := report.Result.Decision(id)
		if !ok || d.Bucket != bucket {
			t.Fatalf("decision for %s = %+v, want %s", id, d, bucket)
		}
	}

	sess, err := st.SessionRepo().Get(ctx, "s1")
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if sess.Status != store.StatusRefined {
		t.Fatalf("status = %q", sess.Status)
	}
	if sess.Profile == nil {
		t.Fatal("refinement priors not stored on session")
	}
}

func TestRefineStaleProfileFallsBack(t *testing.T) {
	p, _ := newTestPipeline(t)
	ctx := context.Background()

	if _, err := p.Import(ctx, "s1", "goal", []byte(extractedDoc)); err != nil {
		t.Fatalf("import: %v", err)
	}

	expired := profile.New("s1", p.now().Add(-48*time.Hour), profile.DefaultTTL)
	expired.Observe("tcp", 0.9)

	report, err := p.Refine(ctx, "s1", expired, refine.DefaultThresholds())
	if err != nil {
		t.Fatalf("refine must not fail on stale profile: %v", err)
	}
	if report.ProfileStale == nil {
		t.Fatal("expected stale profile notice")
	}
	if !report.Result.LowConfidence {
		t.Fatal("fallback run must be flagged low confidence")
	}

	// Stale signals are ignored: tcp keeps its extraction prior bucket.
	d, _ := report.Result.Decision("tcp")
	if d.Bucket != refine.BucketConfirm {
		t.Fatalf("tcp bucket = %s, stale signal leaked into scoring", d.Bucket)
	}
}

func TestRefineMissingProfile(t *testing.T) {
	p, _ := newTestPipeline(t)
	ctx := context.Background()

	if _, err := p.Import(ctx, "s1", "goal", []byte(extractedDoc)); err != nil {
		t.Fatalf("import: %v", err)
	}

	report, err := p.Refine(ctx, "s1", nil, refine.DefaultThresholds())
	if err != nil {
		t.Fatalf("refine: %v", err)
	}
	if report.ProfileStale == nil || !report.Result.LowConfidence {
		t.Fatalf("missing profile must fall back flagged: %+v", report)
	}
}

func TestPlanSequencesRetainedNodes(t *testing.T) {
	p, st := newTestPipeline(t)
	ctx := context.Background()

	if _, err := p.Import(ctx, "s1", "goal", []byte(extractedDoc)); err != nil {
		t.Fatalf("import: %v", err)
	}
	if _, err := p.Refine(ctx, "s1", freshProfile(p.now()), refine.DefaultThresholds()); err != nil {
		t.Fatalf("refine: %v", err)
	}

	plan, err := p.Plan(ctx, "s1", map[string]bool{"tcp": true}, refine.DefaultThresholds())
	if err != nil {
		t.Fatalf("plan: %v", err)
	}

	ids := plan.NodeIDs()
	if len(ids) != 2 || ids[0] != "tcp" || ids[1] != "sockets" {
		t.Fatalf("plan order = %v, want [tcp sockets]", ids)
	}

	stored, dropped, err := st.PlanRepo().Latest(ctx, "s1")
	if err != nil {
		t.Fatalf("plan not persisted: %v", err)
	}
	if len(stored.Entries) != 2 {
		t.Fatalf("stored plan = %v", stored.NodeIDs())
	}
	if len(dropped) != 1 || dropped[0] != "networking" {
		t.Fatalf("dropped = %v", dropped)
	}

	sess, _ := st.SessionRepo().Get(ctx, "s1")
	if sess.Status != store.StatusActive {
		t.Fatalf("status = %q", sess.Status)
	}

	// Tracking is seeded with refinement composites.
	rec, err := p.Tracker().Record(ctx, "s1", "tcp")
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if rec.MasteryLevel != 0.5 {
		t.Fatalf("tcp seeded at %v, want 0.5", rec.MasteryLevel)
	}
}

func TestPlanWithoutConfirmationDropsConfirmBucket(t *testing.T) {
	p, _ := newTestPipeline(t)
	ctx := context.Background()

	if _, err := p.Import(ctx, "s1", "goal", []byte(extractedDoc)); err != nil {
		t.Fatalf("import: %v", err)
	}
	if _, err := p.Refine(ctx, "s1", freshProfile(p.now()), refine.DefaultThresholds()); err != nil {
		t.Fatalf("refine: %v", err)
	}

	plan, err := p.Plan(ctx, "s1", nil, refine.DefaultThresholds())
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if ids := plan.NodeIDs(); len(ids) != 1 || ids[0] != "sockets" {
		t.Fatalf("plan = %v, want [sockets]", ids)
	}
}

func TestPlanRequiresRefinement(t *testing.T) {
	p, _ := newTestPipeline(t)
	ctx := context.Background()

	if _, err := p.Import(ctx, "s1", "goal", []byte(extractedDoc)); err != nil {
		t.Fatalf("import: %v", err)
	}
	if _, err := p.Plan(ctx, "s1", nil, refine.DefaultThresholds()); err == nil {
		t.Fatal("expected error when planning before refinement")
	}
}

func TestApplyLogsActivityAndCompletesSession(t *testing.T) {
	p, st := newTestPipeline(t)
	ctx := context.Background()

	if _, err := p.Import(ctx, "s1", "goal", []byte(extractedDoc)); err != nil {
		t.Fatalf("import: %v", err)
	}
	if _, err := p.Refine(ctx, "s1", freshProfile(p.now()), refine.DefaultThresholds()); err != nil {
		t.Fatalf("refine: %v", err)
	}
	if _, err := p.Plan(ctx, "s1", nil, refine.DefaultThresholds()); err != nil {
		t.Fatalf("plan: %v", err)
	}

	// Single planned node (sockets, seeded 0.1). Drive it to mastery.
	var rec *progress.MasteryRecord
	var err error
	for i, outcome := range []progress.Outcome{progress.OutcomeCorrect, progress.OutcomeCorrect, progress.OutcomeTooEasy} {
		rec, err = p.Apply(ctx, progress.ActivityEvent{
			EventID:   "ev-" + string(rune('a'+i)),
			SessionID: "s1",
			NodeID:    "sockets",
			Outcome:   outcome,
			At:        p.now(),
		})
		if err != nil {
			t.Fatalf("apply: %v", err)
		}
	}
	if rec.State != progress.StateMastered {
		t.Fatalf("final state = %s, mastery %v", rec.State, rec.MasteryLevel)
	}

	hist, err := st.EventRepo().ActivityHistory(ctx, "s1")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(hist) != 3 {
		t.Fatalf("activity log has %d rows, want 3", len(hist))
	}

	sess, _ := st.SessionRepo().Get(ctx, "s1")
	if sess.Status != store.StatusComplete {
		t.Fatalf("status = %q, want complete", sess.Status)
	}
}

func TestResumeRestoresFromAuthority(t *testing.T) {
	p, st := newTestPipeline(t)
	ctx := context.Background()

	if _, err := p.Import(ctx, "s1", "goal", []byte(extractedDoc)); err != nil {
		t.Fatalf("import: %v", err)
	}
	if _, err := p.Refine(ctx, "s1", freshProfile(p.now()), refine.DefaultThresholds()); err != nil {
		t.Fatalf("refine: %v", err)
	}
	if _, err := p.Plan(ctx, "s1", map[string]bool{"tcp": true}, refine.DefaultThresholds()); err != nil {
		t.Fatalf("plan: %v", err)
	}
	if _, err := p.Apply(ctx, progress.ActivityEvent{
		EventID: "ev-1", SessionID: "s1", NodeID: "tcp",
		Outcome: progress.OutcomeCorrect, At: p.now(),
	}); err != nil {
		t.Fatalf("apply: %v", err)
	}

	// A second pipeline over the same store simulates a process restart.
	p2 := FromStore(st, nil)
	plan, err := p2.Resume(ctx, "s1")
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
	if len(plan.Entries) != 2 {
		t.Fatalf("resumed plan = %v", plan.NodeIDs())
	}

	rec, err := p2.Tracker().Record(ctx, "s1", "tcp")
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if rec.MasteryLevel != 0.75 {
		t.Fatalf("resumed mastery = %v, want 0.75", rec.MasteryLevel)
	}
}
