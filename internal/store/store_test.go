package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/atlas/internal/knowledge"
	"github.com/abhisek/atlas/internal/progress"
	"github.com/abhisek/atlas/internal/sequence"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testGraph(t *testing.T) *knowledge.Graph {
	t.Helper()
	g, err := knowledge.New(
		[]knowledge.ConceptNode{
			{ID: "networking", Label: "Networking", Type: knowledge.TypeDomain, Depth: 0, MasteryLikelihood: 0.4, EvidenceRefs: []string{"m1"}},
			{ID: "tcp", Label: "TCP", Type: knowledge.TypeConcept, Depth: 1, MasteryLikelihood: 0.2, EvidenceRefs: []string{"m1"}},
		},
		[]knowledge.PrerequisiteEdge{
			{From: "networking", To: "tcp", Relationship: knowledge.RelRequires, Reasoning: "tcp is a networking topic"},
		},
	)
	if err != nil {
		t.Fatalf("build graph: %v", err)
	}
	return g
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// journal_mode reports "memory" for in-memory databases, so it
		// is only meaningful against file-backed stores.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		if err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got); err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounterMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64 = -1
	for range 5 {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if seq <= prev {
			t.Fatalf("sequence not increasing: %d after %d", seq, prev)
		}
		prev = seq
	}
}

func TestSessionLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, "s1", "learn networking"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(ctx, "s1", "again"); err == nil {
		t.Fatal("expected duplicate session error")
	}

	sess, err := repo.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if sess.Goal != "learn networking" || sess.Status != StatusIngested {
		t.Fatalf("session = %+v", sess)
	}

	if err := repo.SetStatus(ctx, "s1", StatusPlanned); err != nil {
		t.Fatalf("set status: %v", err)
	}
	sess, _ = repo.Get(ctx, "s1")
	if sess.Status != StatusPlanned {
		t.Fatalf("status = %q", sess.Status)
	}

	if err := repo.SetStatus(ctx, "missing", StatusActive); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if _, err := repo.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGraphSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.GraphRepo()
	ctx := context.Background()

	if _, _, err := repo.Latest(ctx, "s1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	g := testGraph(t)
	if err := repo.Save(ctx, "s1", g, "gemini-2.0-flash"); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, meta, err := repo.Latest(ctx, "s1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if got.Len() != 2 || len(got.Edges()) != 1 {
		t.Fatalf("round-tripped graph has %d nodes, %d edges", got.Len(), len(got.Edges()))
	}
	n, err := got.Node("tcp")
	if err != nil {
		t.Fatalf("node: %v", err)
	}
	if n.Depth != 1 || n.Type != knowledge.TypeConcept {
		t.Fatalf("node = %+v", n)
	}
	if meta.NodeCount != 2 || meta.Model != "gemini-2.0-flash" {
		t.Fatalf("meta = %+v", meta)
	}
}

func TestPlanSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.PlanRepo()
	ctx := context.Background()

	plan := &sequence.Plan{Entries: []sequence.PlanEntry{
		{NodeID: "networking", OrderIndex: 0},
		{NodeID: "tcp", OrderIndex: 1},
	}}
	if err := repo.Save(ctx, "s1", plan, []string{"http"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, dropped, err := repo.Latest(ctx, "s1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if ids := got.NodeIDs(); len(ids) != 2 || ids[0] != "networking" || ids[1] != "tcp" {
		t.Fatalf("plan ids = %v", ids)
	}
	if len(dropped) != 1 || dropped[0] != "http" {
		t.Fatalf("dropped = %v", dropped)
	}

	// A second save supersedes the first.
	plan2 := &sequence.Plan{Entries: []sequence.PlanEntry{{NodeID: "tcp", OrderIndex: 0}}}
	if err := repo.Save(ctx, "s1", plan2, nil); err != nil {
		t.Fatalf("save second: %v", err)
	}
	got, _, err = repo.Latest(ctx, "s1")
	if err != nil {
		t.Fatalf("latest second: %v", err)
	}
	if len(got.Entries) != 1 {
		t.Fatalf("expected superseding plan, got %v", got.NodeIDs())
	}
}

func TestMasteryRepoRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.MasteryRepo()
	ctx := context.Background()

	if _, err := repo.Get(ctx, "s1", "tcp"); !errors.Is(err, progress.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}

	rec := &progress.MasteryRecord{
		SessionID:    "s1",
		NodeID:       "tcp",
		State:        progress.StateInProgress,
		MasteryLevel: 0.5,
	}
	if err := repo.Put(ctx, rec); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := repo.Get(ctx, "s1", "tcp")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.State != progress.StateInProgress || got.MasteryLevel != 0.5 {
		t.Fatalf("record = %+v", got)
	}

	// Put on an existing pair updates in place.
	done := time.Now().UTC()
	rec.State = progress.StateMastered
	rec.MasteryLevel = 0.85
	rec.CompletedAt = &done
	if err := repo.Put(ctx, rec); err != nil {
		t.Fatalf("put update: %v", err)
	}

	got, _ = repo.Get(ctx, "s1", "tcp")
	if got.State != progress.StateMastered || got.CompletedAt == nil {
		t.Fatalf("record after update = %+v", got)
	}

	list, err := repo.List(ctx, "s1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("list = %d records, want 1 (update must not insert)", len(list))
	}
}

func TestLLMCallEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	calls := []LLMCallData{
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "graph-extraction", InputTokens: 900, OutputTokens: 300, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "graph-extraction", InputTokens: 100, OutputTokens: 0, Success: false, ErrorMessage: "rate limited"},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "profile-analysis", InputTokens: 50, OutputTokens: 20, Success: true},
	}
	for _, c := range calls {
		if err := repo.AppendLLMCall(ctx, c); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.QueryLLMCalls(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("limit ignored: %d rows", len(got))
	}
	// Descending sequence order: newest first.
	if got[0].Purpose != "profile-analysis" {
		t.Fatalf("order wrong: %+v", got[0])
	}

	usage, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	byPurpose := map[string]PurposeUsage{}
	for _, u := range usage {
		byPurpose[u.Purpose] = u
	}
	extraction := byPurpose["graph-extraction"]
	if extraction.Calls != 2 || extraction.Failures != 1 || extraction.InputTokens != 1000 {
		t.Fatalf("extraction usage = %+v", extraction)
	}
}

func TestActivityAppendIdempotent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	ev := ActivityData{
		EventID:      "ev-1",
		SessionID:    "s1",
		NodeID:       "tcp",
		Outcome:      "correct",
		MasteryAfter: 0.25,
		StateAfter:   "in_progress",
	}
	for range 3 {
		if err := repo.AppendActivity(ctx, ev); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	hist, err := repo.ActivityHistory(ctx, "s1")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(hist) != 1 {
		t.Fatalf("replayed appends must dedupe: %d rows", len(hist))
	}
	if hist[0].EventID != "ev-1" || hist[0].MasteryAfter != 0.25 {
		t.Fatalf("event = %+v", hist[0])
	}
}

func TestSessionResetCascades(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.SessionRepo().Create(ctx, "s1", "goal"); err != nil {
		t.Fatalf("create session: %v", err)
	}
	if err := s.GraphRepo().Save(ctx, "s1", testGraph(t), ""); err != nil {
		t.Fatalf("save graph: %v", err)
	}
	plan := &sequence.Plan{Entries: []sequence.PlanEntry{{NodeID: "tcp", OrderIndex: 0}}}
	if err := s.PlanRepo().Save(ctx, "s1", plan, nil); err != nil {
		t.Fatalf("save plan: %v", err)
	}
	if err := s.MasteryRepo().Put(ctx, &progress.MasteryRecord{SessionID: "s1", NodeID: "tcp", State: progress.StateNotStarted}); err != nil {
		t.Fatalf("put mastery: %v", err)
	}
	if err := s.EventRepo().AppendActivity(ctx, ActivityData{EventID: "e1", SessionID: "s1", NodeID: "tcp", Outcome: "correct", StateAfter: "in_progress"}); err != nil {
		t.Fatalf("append activity: %v", err)
	}

	if err := s.SessionRepo().Reset(ctx, "s1"); err != nil {
		t.Fatalf("reset: %v", err)
	}

	if _, err := s.SessionRepo().Get(ctx, "s1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("session survived reset: %v", err)
	}
	if _, _, err := s.GraphRepo().Latest(ctx, "s1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("graph survived reset: %v", err)
	}
	if _, _, err := s.PlanRepo().Latest(ctx, "s1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("plan survived reset: %v", err)
	}
	recs, err := s.MasteryRepo().List(ctx, "s1")
	if err != nil {
		t.Fatalf("list mastery: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("mastery records survived reset: %d", len(recs))
	}
	hist, err := s.EventRepo().ActivityHistory(ctx, "s1")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(hist) != 0 {
		t.Fatalf("activity events survived reset: %d", len(hist))
	}
}
