package progress

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/abhisek/atlas/internal/sequence"
)

// Tracker maintains mastery state for active sessions.
//
// Updates for the same (session, node) are serialized: a second concurrent
// event for a node waits for the first. Different nodes and different
// sessions proceed in parallel.
type Tracker struct {
	authority Authority
	cfg       Config
	now       func() time.Time

	mu       sync.Mutex
	sessions map[string]*sessionState
}

type sessionState struct {
	order []string // plan order, gates progression
	nodes map[string]*nodeState
}

type nodeState struct {
	mu       sync.Mutex
	rec      MasteryRecord
	applied  map[string]bool // event ids absorbed, for replay idempotence
	syncedAt time.Time       // last successful authority exchange
	dirty    bool            // local ahead of authority
}

// NewTracker creates a Tracker backed by the given authority.
func NewTracker(authority Authority, cfg Config) *Tracker {
	if cfg.Signals == nil {
		cfg = DefaultConfig()
	}
	return &Tracker{
		authority: authority,
		cfg:       cfg,
		now:       time.Now,
		sessions:  make(map[string]*sessionState),
	}
}

// StartSession registers a fresh session over the given plan. Each planned
// node gets a record seeded from priors (the node's refinement composite or
// extraction prior), or zero when absent. Records are pushed to the
// authority best-effort; a failed push leaves the record dirty for a later
// retry rather than failing the session.
func (t *Tracker) StartSession(ctx context.Context, sessionID string, plan *sequence.Plan, priors map[string]float64) error {
	if len(plan.Entries) == 0 {
		return fmt.Errorf("session %q has an empty plan", sessionID)
	}

	t.mu.Lock()
	if _, exists := t.sessions[sessionID]; exists {
		t.mu.Unlock()
		return fmt.Errorf("session %q already active", sessionID)
	}
	ss := &sessionState{nodes: make(map[string]*nodeState, len(plan.Entries))}
	now := t.now()
	for _, entry := range plan.Entries {
		ss.order = append(ss.order, entry.NodeID)
		ss.nodes[entry.NodeID] = &nodeState{
			rec: MasteryRecord{
				SessionID:    sessionID,
				NodeID:       entry.NodeID,
				State:        StateNotStarted,
				MasteryLevel: clamp01(priors[entry.NodeID]),
				UpdatedAt:    now,
			},
			applied: make(map[string]bool),
			dirty:   true,
		}
	}
	t.sessions[sessionID] = ss
	t.mu.Unlock()

	for _, id := range ss.order {
		ns := ss.nodes[id]
		ns.mu.Lock()
		t.tryPush(ctx, ns)
		ns.mu.Unlock()
	}
	return nil
}

// ResumeSession rebuilds session state from the authority, e.g. after a
// restart. Nodes in the plan without a stored record start fresh.
func (t *Tracker) ResumeSession(ctx context.Context, sessionID string, plan *sequence.Plan) error {
	if len(plan.Entries) == 0 {
		return fmt.Errorf("session %q has an empty plan", sessionID)
	}

	syncCtx, cancel := context.WithTimeout(ctx, t.cfg.SyncTimeout)
	stored, err := t.authority.List(syncCtx, sessionID)
	cancel()
	if err != nil {
		return fmt.Errorf("load session %q: %w", sessionID, err)
	}
	byNode := make(map[string]*MasteryRecord, len(stored))
	for _, rec := range stored {
		byNode[rec.NodeID] = rec
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	ss := &sessionState{nodes: make(map[string]*nodeState, len(plan.Entries))}
	now := t.now()
	for _, entry := range plan.Entries {
		ss.order = append(ss.order, entry.NodeID)
		ns := &nodeState{applied: make(map[string]bool), syncedAt: now}
		if rec, ok := byNode[entry.NodeID]; ok {
			ns.rec = *rec
		} else {
			ns.rec = MasteryRecord{
				SessionID: sessionID,
				NodeID:    entry.NodeID,
				State:     StateNotStarted,
				UpdatedAt: now,
			}
			ns.dirty = true
		}
		ss.nodes[entry.NodeID] = ns
	}
	t.sessions[sessionID] = ss
	return nil
}

// Apply consumes one activity-completion event. The local record updates
// immediately (optimistic); the authoritative push is best-effort and a
// failure never blocks the learner. Replaying an event id that was already
// absorbed returns the current record unchanged.
func (t *Tracker) Apply(ctx context.Context, ev ActivityEvent) (*MasteryRecord, error) {
	if !ValidOutcome(ev.Outcome) {
		return nil, fmt.Errorf("unknown outcome %q", ev.Outcome)
	}
	if ev.EventID == "" {
		return nil, fmt.Errorf("activity event has no id")
	}

	ns, err := t.node(ev.SessionID, ev.NodeID)
	if err != nil {
		return nil, err
	}

	ns.mu.Lock()
	defer ns.mu.Unlock()

	if ns.applied[ev.EventID] {
		out := ns.rec
		return &out, nil
	}
	ns.applied[ev.EventID] = true

	rec := &ns.rec
	if rec.State == StateNotStarted {
		rec.State = StateInProgress
	}

	if rec.State != StateMastered {
		rec.MasteryLevel = clamp01(rec.MasteryLevel + t.cfg.Signals[ev.Outcome])
		if rec.MasteryLevel >= t.cfg.CompletionThreshold {
			rec.State = StateMastered
			at := t.now()
			rec.CompletedAt = &at
		}
	}
	rec.UpdatedAt = t.now()
	ns.dirty = true

	t.tryPush(ctx, ns)

	out := ns.rec
	return &out, nil
}

// Record returns the mastery record for a node. Cached values are served
// until the staleness window elapses; past that a resync is forced and the
// authoritative value wins. A failed resync retains the local value: the
// cache may be stale but the learner is never blocked.
func (t *Tracker) Record(ctx context.Context, sessionID, nodeID string) (*MasteryRecord, error) {
	ns, err := t.node(sessionID, nodeID)
	if err != nil {
		return nil, err
	}

	ns.mu.Lock()
	defer ns.mu.Unlock()

	if t.now().Sub(ns.syncedAt) > t.cfg.StalenessWindow {
		t.resync(ctx, ns)
	}

	out := ns.rec
	return &out, nil
}

// ForceResync flushes any dirty local value and reloads the node from the
// authority regardless of staleness.
func (t *Tracker) ForceResync(ctx context.Context, sessionID, nodeID string) (*MasteryRecord, error) {
	ns, err := t.node(sessionID, nodeID)
	if err != nil {
		return nil, err
	}
	ns.mu.Lock()
	defer ns.mu.Unlock()
	t.resync(ctx, ns)
	out := ns.rec
	return &out, nil
}

// CurrentTopic returns the first planned node not yet mastered, in plan
// order. ok is false when the course is complete.
func (t *Tracker) CurrentTopic(sessionID string) (nodeID string, ok bool) {
	t.mu.Lock()
	ss, exists := t.sessions[sessionID]
	t.mu.Unlock()
	if !exists {
		return "", false
	}
	for _, id := range ss.order {
		ns := ss.nodes[id]
		ns.mu.Lock()
		mastered := ns.rec.State == StateMastered
		ns.mu.Unlock()
		if !mastered {
			return id, true
		}
	}
	return "", false
}

// Unlocked reports whether the node is reachable in plan order: every node
// scheduled before it is mastered. The plan is a total order, so gating is
// simply positional.
func (t *Tracker) Unlocked(sessionID, nodeID string) bool {
	t.mu.Lock()
	ss, exists := t.sessions[sessionID]
	t.mu.Unlock()
	if !exists {
		return false
	}
	for _, id := range ss.order {
		if id == nodeID {
			return true
		}
		ns := ss.nodes[id]
		ns.mu.Lock()
		mastered := ns.rec.State == StateMastered
		ns.mu.Unlock()
		if !mastered {
			return false
		}
	}
	return false
}

// Summarize computes session aggregates from the local cache.
func (t *Tracker) Summarize(sessionID string) (*Summary, error) {
	t.mu.Lock()
	ss, exists := t.sessions[sessionID]
	t.mu.Unlock()
	if !exists {
		return nil, fmt.Errorf("unknown session %q", sessionID)
	}

	sum := &Summary{SessionID: sessionID, TotalTopics: len(ss.order)}
	var total float64
	for _, id := range ss.order {
		ns := ss.nodes[id]
		ns.mu.Lock()
		total += ns.rec.MasteryLevel
		if ns.rec.State == StateMastered {
			sum.CompletedTopics++
		}
		ns.mu.Unlock()
	}
	if sum.TotalTopics > 0 {
		sum.AverageMastery = total / float64(sum.TotalTopics)
		sum.ProgressPercentage = float64(sum.CompletedTopics) / float64(sum.TotalTopics) * 100
	}
	sum.CourseComplete = sum.CompletedTopics == sum.TotalTopics
	return sum, nil
}

// node resolves the per-node state. The caller must not hold t.mu.
func (t *Tracker) node(sessionID, nodeID string) (*nodeState, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	ss, ok := t.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("unknown session %q", sessionID)
	}
	ns, ok := ss.nodes[nodeID]
	if !ok {
		return nil, fmt.Errorf("node %q is not in session %q's plan", nodeID, sessionID)
	}
	return ns, nil
}

// tryPush writes the local record to the authority under the sync timeout.
// Failures are absorbed: the record stays dirty and a later push or resync
// retries. The caller must hold ns.mu.
func (t *Tracker) tryPush(ctx context.Context, ns *nodeState) {
	if !ns.dirty {
		return
	}
	syncCtx, cancel := context.WithTimeout(ctx, t.cfg.SyncTimeout)
	defer cancel()
	rec := ns.rec
	if err := t.authority.Put(syncCtx, &rec); err != nil {
		return
	}
	ns.dirty = false
	ns.syncedAt = t.now()
}

// resync flushes a dirty local value, then adopts the authoritative record.
// Last authoritative write wins; the optimistic cache is never a second
// source of truth. The caller must hold ns.mu.
func (t *Tracker) resync(ctx context.Context, ns *nodeState) {
	t.tryPush(ctx, ns)

	syncCtx, cancel := context.WithTimeout(ctx, t.cfg.SyncTimeout)
	defer cancel()
	rec, err := t.authority.Get(syncCtx, ns.rec.SessionID, ns.rec.NodeID)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			// Authority has nothing yet; keep the local value dirty so the
			// next push recreates it.
			ns.dirty = true
		}
		return // transient failure: retain local, retry later
	}
	ns.rec = *rec
	ns.syncedAt = t.now()
	ns.dirty = false
}
