package progress

import (
	"context"
	"fmt"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/atlas/internal/sequence"
)

func testPlan(ids ...string) *sequence.Plan {
	p := &sequence.Plan{}
	for i, id := range ids {
		p.Entries = append(p.Entries, sequence.PlanEntry{NodeID: id, OrderIndex: i})
	}
	return p
}

func newTestTracker(t *testing.T, auth Authority) *Tracker {
	t.Helper()
	tr := NewTracker(auth, DefaultConfig())
	return tr
}

func startSession(t *testing.T, tr *Tracker, sessionID string, ids ...string) {
	t.Helper()
	if err := tr.StartSession(context.Background(), sessionID, testPlan(ids...), nil); err != nil {
		t.Fatalf("start session: %v", err)
	}
}

func event(session, node string, outcome Outcome) ActivityEvent {
	return ActivityEvent{
		EventID:   fmt.Sprintf("%s-%s-%s-%d", session, node, outcome, time.Now().UnixNano()),
		SessionID: session,
		NodeID:    node,
		Outcome:   outcome,
		At:        time.Now(),
	}
}

func TestStartSession_SeedsPriorsAndPushes(t *testing.T) {
	auth := NewMemoryAuthority()
	tr := newTestTracker(t, auth)

	priors := map[string]float64{"a": 0.3}
	if err := tr.StartSession(context.Background(), "s1", testPlan("a", "b"), priors); err != nil {
		t.Fatalf("start: %v", err)
	}

	rec, err := tr.Record(context.Background(), "s1", "a")
	if err != nil {
		t.Fatal(err)
	}
	if rec.State != StateNotStarted || rec.MasteryLevel != 0.3 {
		t.Errorf("record = %+v", rec)
	}

	stored, err := auth.Get(context.Background(), "s1", "b")
	if err != nil {
		t.Fatalf("authority should hold seeded records: %v", err)
	}
	if stored.MasteryLevel != 0 {
		t.Errorf("b seeded to %g, want 0", stored.MasteryLevel)
	}
}

func TestStartSession_RejectsEmptyPlanAndDuplicates(t *testing.T) {
	tr := newTestTracker(t, NewMemoryAuthority())
	if err := tr.StartSession(context.Background(), "s1", &sequence.Plan{}, nil); err == nil {
		t.Error("expected error for empty plan")
	}
	startSession(t, tr, "s2", "a")
	if err := tr.StartSession(context.Background(), "s2", testPlan("a"), nil); err == nil {
		t.Error("expected error for duplicate session")
	}
}

func TestApply_StateTransitions(t *testing.T) {
	tr := newTestTracker(t, NewMemoryAuthority())
	startSession(t, tr, "s1", "a")

	rec, err := tr.Apply(context.Background(), event("s1", "a", OutcomeCorrect))
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if rec.State != StateInProgress {
		t.Errorf("state = %s, want in_progress after first event", rec.State)
	}
	if rec.MasteryLevel != 0.25 {
		t.Errorf("level = %g, want 0.25", rec.MasteryLevel)
	}

	// Three more corrects cross the 0.8 threshold.
	for range 3 {
		rec, err = tr.Apply(context.Background(), event("s1", "a", OutcomeCorrect))
		if err != nil {
			t.Fatal(err)
		}
	}
	if rec.State != StateMastered {
		t.Errorf("state = %s, want mastered at level %g", rec.State, rec.MasteryLevel)
	}
	if rec.CompletedAt == nil {
		t.Error("mastered record should carry CompletedAt")
	}
}

func TestApply_MasteredIsTerminal(t *testing.T) {
	tr := newTestTracker(t, NewMemoryAuthority())
	startSession(t, tr, "s1", "a")

	for range 4 {
		if _, err := tr.Apply(context.Background(), event("s1", "a", OutcomeCorrect)); err != nil {
			t.Fatal(err)
		}
	}
	rec, err := tr.Apply(context.Background(), event("s1", "a", OutcomeConfused))
	if err != nil {
		t.Fatal(err)
	}
	if rec.State != StateMastered {
		t.Errorf("state = %s, confusion must not un-master", rec.State)
	}
	if rec.MasteryLevel != 1.0 {
		t.Errorf("level = %g, want 1.0 retained", rec.MasteryLevel)
	}
}

func TestApply_ConfusedDampensWithoutGoingNegative(t *testing.T) {
	tr := newTestTracker(t, NewMemoryAuthority())
	startSession(t, tr, "s1", "a")

	rec, err := tr.Apply(context.Background(), event("s1", "a", OutcomeConfused))
	if err != nil {
		t.Fatal(err)
	}
	if rec.MasteryLevel != 0 {
		t.Errorf("level = %g, want clamped at 0", rec.MasteryLevel)
	}
	if rec.State != StateInProgress {
		t.Errorf("state = %s, want in_progress (event still counts as a start)", rec.State)
	}
}

func TestApply_TooEasyOutpacesCorrect(t *testing.T) {
	tr := newTestTracker(t, NewMemoryAuthority())
	startSession(t, tr, "s1", "a", "b")

	recA, _ := tr.Apply(context.Background(), event("s1", "a", OutcomeTooEasy))
	recB, _ := tr.Apply(context.Background(), event("s1", "b", OutcomeCorrect))
	if recA.MasteryLevel <= recB.MasteryLevel {
		t.Errorf("too_easy %g should exceed correct %g", recA.MasteryLevel, recB.MasteryLevel)
	}
}

func TestApply_ReplayedEventDoesNotDoubleCount(t *testing.T) {
	tr := newTestTracker(t, NewMemoryAuthority())
	startSession(t, tr, "s1", "a")

	ev := event("s1", "a", OutcomeCorrect)
	first, err := tr.Apply(context.Background(), ev)
	if err != nil {
		t.Fatal(err)
	}
	second, err := tr.Apply(context.Background(), ev)
	if err != nil {
		t.Fatal(err)
	}
	if second.MasteryLevel != first.MasteryLevel {
		t.Errorf("replay changed level: %g -> %g", first.MasteryLevel, second.MasteryLevel)
	}
}

func TestApply_ConcurrentReplaysConverge(t *testing.T) {
	tr := newTestTracker(t, NewMemoryAuthority())
	startSession(t, tr, "s1", "a")

	ev := event("s1", "a", OutcomeCorrect)
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := tr.Apply(context.Background(), ev); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	rec, err := tr.Record(context.Background(), "s1", "a")
	if err != nil {
		t.Fatal(err)
	}
	if rec.MasteryLevel != 0.25 {
		t.Errorf("level = %g, want 0.25 (single application)", rec.MasteryLevel)
	}
}

func TestApply_ConcurrentDistinctEventsAllCount(t *testing.T) {
	tr := newTestTracker(t, NewMemoryAuthority())
	startSession(t, tr, "s1", "a")

	var wg sync.WaitGroup
	for i := range 3 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ev := ActivityEvent{
				EventID:   fmt.Sprintf("e%d", i),
				SessionID: "s1",
				NodeID:    "a",
				Outcome:   OutcomeCorrect,
			}
			if _, err := tr.Apply(context.Background(), ev); err != nil {
				t.Error(err)
			}
		}(i)
	}
	wg.Wait()

	rec, err := tr.Record(context.Background(), "s1", "a")
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(rec.MasteryLevel-0.75) > 1e-9 {
		t.Errorf("level = %g, want 0.75 after three distinct events", rec.MasteryLevel)
	}
}

func TestApply_UnknownSessionOrNode(t *testing.T) {
	tr := newTestTracker(t, NewMemoryAuthority())
	startSession(t, tr, "s1", "a")

	if _, err := tr.Apply(context.Background(), event("ghost", "a", OutcomeCorrect)); err == nil {
		t.Error("expected error for unknown session")
	}
	if _, err := tr.Apply(context.Background(), event("s1", "ghost", OutcomeCorrect)); err == nil {
		t.Error("expected error for node outside the plan")
	}
	bad := event("s1", "a", "shrug")
	if _, err := tr.Apply(context.Background(), bad); err == nil {
		t.Error("expected error for unknown outcome")
	}
}

func TestCurrentTopic_FollowsPlanOrder(t *testing.T) {
	tr := newTestTracker(t, NewMemoryAuthority())
	startSession(t, tr, "s1", "a", "b")

	topic, ok := tr.CurrentTopic("s1")
	if !ok || topic != "a" {
		t.Fatalf("topic = %q, want a", topic)
	}

	for range 4 {
		if _, err := tr.Apply(context.Background(), event("s1", "a", OutcomeCorrect)); err != nil {
			t.Fatal(err)
		}
	}
	topic, ok = tr.CurrentTopic("s1")
	if !ok || topic != "b" {
		t.Fatalf("topic = %q, want b after mastering a", topic)
	}

	if tr.Unlocked("s1", "a") != true {
		t.Error("a should be unlocked")
	}
	if !tr.Unlocked("s1", "b") {
		t.Error("b should unlock once a is mastered")
	}
}

func TestUnlocked_GatesOnEarlierTopics(t *testing.T) {
	tr := newTestTracker(t, NewMemoryAuthority())
	startSession(t, tr, "s1", "a", "b")
	if tr.Unlocked("s1", "b") {
		t.Error("b should be locked while a is unmastered")
	}
}

func TestSummarize(t *testing.T) {
	tr := newTestTracker(t, NewMemoryAuthority())
	startSession(t, tr, "s1", "a", "b")

	for range 4 {
		if _, err := tr.Apply(context.Background(), event("s1", "a", OutcomeCorrect)); err != nil {
			t.Fatal(err)
		}
	}

	sum, err := tr.Summarize("s1")
	if err != nil {
		t.Fatal(err)
	}
	if sum.TotalTopics != 2 || sum.CompletedTopics != 1 {
		t.Errorf("topics = %d/%d, want 1/2", sum.CompletedTopics, sum.TotalTopics)
	}
	if sum.ProgressPercentage != 50 {
		t.Errorf("progress = %g, want 50", sum.ProgressPercentage)
	}
	if sum.AverageMastery != 0.5 {
		t.Errorf("average = %g, want 0.5", sum.AverageMastery)
	}
	if sum.CourseComplete {
		t.Error("course should not be complete")
	}

	for range 4 {
		if _, err := tr.Apply(context.Background(), event("s1", "b", OutcomeCorrect)); err != nil {
			t.Fatal(err)
		}
	}
	sum, err = tr.Summarize("s1")
	if err != nil {
		t.Fatal(err)
	}
	if !sum.CourseComplete {
		t.Error("course should be complete after mastering every topic")
	}
}

func TestApply_AuthorityOutageIsNonFatal(t *testing.T) {
	auth := NewMemoryAuthority()
	tr := newTestTracker(t, auth)
	startSession(t, tr, "s1", "a")

	auth.FailPuts = true
	rec, err := tr.Apply(context.Background(), event("s1", "a", OutcomeCorrect))
	if err != nil {
		t.Fatalf("apply must not fail on a push outage: %v", err)
	}
	if rec.MasteryLevel != 0.25 {
		t.Errorf("optimistic level = %g, want 0.25", rec.MasteryLevel)
	}

	// Store recovers; the dirty record flushes on the next apply.
	auth.FailPuts = false
	if _, err := tr.Apply(context.Background(), event("s1", "a", OutcomeCorrect)); err != nil {
		t.Fatal(err)
	}
	stored, err := auth.Get(context.Background(), "s1", "a")
	if err != nil {
		t.Fatal(err)
	}
	if stored.MasteryLevel != 0.5 {
		t.Errorf("authority level = %g, want 0.5 after flush", stored.MasteryLevel)
	}
}

func TestRecord_StaleCacheForcesResync_AuthorityWins(t *testing.T) {
	auth := NewMemoryAuthority()
	tr := newTestTracker(t, auth)
	startSession(t, tr, "s1", "a")

	// Another writer advances the authoritative record.
	now := time.Now()
	auth.Set(MasteryRecord{
		SessionID: "s1", NodeID: "a",
		State: StateInProgress, MasteryLevel: 0.6, UpdatedAt: now,
	})

	// Within the staleness window the cache is served as-is.
	rec, err := tr.Record(context.Background(), "s1", "a")
	if err != nil {
		t.Fatal(err)
	}
	if rec.MasteryLevel != 0 {
		t.Errorf("cached level = %g, want 0", rec.MasteryLevel)
	}

	// Jump the clock past the window; the authoritative value wins.
	tr.now = func() time.Time { return now.Add(10 * time.Minute) }
	rec, err = tr.Record(context.Background(), "s1", "a")
	if err != nil {
		t.Fatal(err)
	}
	if rec.MasteryLevel != 0.6 {
		t.Errorf("resynced level = %g, want authoritative 0.6", rec.MasteryLevel)
	}
}

func TestRecord_ResyncFailureRetainsLocal(t *testing.T) {
	auth := NewMemoryAuthority()
	tr := newTestTracker(t, auth)
	startSession(t, tr, "s1", "a")

	if _, err := tr.Apply(context.Background(), event("s1", "a", OutcomeCorrect)); err != nil {
		t.Fatal(err)
	}

	auth.FailGets = true
	tr.now = func() time.Time { return time.Now().Add(time.Hour) }

	rec, err := tr.Record(context.Background(), "s1", "a")
	if err != nil {
		t.Fatalf("record must not fail on a resync outage: %v", err)
	}
	if rec.MasteryLevel != 0.25 {
		t.Errorf("level = %g, want locally retained 0.25", rec.MasteryLevel)
	}
}

func TestForceResync_FlushesDirtyThenAdopts(t *testing.T) {
	auth := NewMemoryAuthority()
	tr := newTestTracker(t, auth)
	startSession(t, tr, "s1", "a")

	auth.FailPuts = true
	if _, err := tr.Apply(context.Background(), event("s1", "a", OutcomeCorrect)); err != nil {
		t.Fatal(err)
	}
	auth.FailPuts = false

	rec, err := tr.ForceResync(context.Background(), "s1", "a")
	if err != nil {
		t.Fatal(err)
	}
	// The dirty local value was flushed before the read, so local and
	// authority converge on the same record.
	stored, err := auth.Get(context.Background(), "s1", "a")
	if err != nil {
		t.Fatal(err)
	}
	if stored.MasteryLevel != rec.MasteryLevel {
		t.Errorf("local %g and authority %g diverge", rec.MasteryLevel, stored.MasteryLevel)
	}
}

func TestResumeSession_RestoresFromAuthority(t *testing.T) {
	auth := NewMemoryAuthority()
	now := time.Now()
	done := now.Add(-time.Hour)
	auth.Set(MasteryRecord{
		SessionID: "s1", NodeID: "a",
		State: StateMastered, MasteryLevel: 0.9, CompletedAt: &done, UpdatedAt: now,
	})

	tr := newTestTracker(t, auth)
	if err := tr.ResumeSession(context.Background(), "s1", testPlan("a", "b")); err != nil {
		t.Fatalf("resume: %v", err)
	}

	rec, err := tr.Record(context.Background(), "s1", "a")
	if err != nil {
		t.Fatal(err)
	}
	if rec.State != StateMastered || rec.MasteryLevel != 0.9 {
		t.Errorf("restored record = %+v", rec)
	}

	topic, ok := tr.CurrentTopic("s1")
	if !ok || topic != "b" {
		t.Errorf("topic = %q, want b", topic)
	}
}
