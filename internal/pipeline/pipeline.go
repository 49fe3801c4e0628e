// Package pipeline orchestrates the personalization flow: ingest material
// into a validated knowledge graph, refine it against the learner profile,
// confirm and sequence the surviving concepts, then track progress while
// lessons run.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/atlas/internal/extract"
	"github.com/abhisek/atlas/internal/knowledge"
	"github.com/abhisek/atlas/internal/llm"
	"github.com/abhisek/atlas/internal/profile"
	"github.com/abhisek/atlas/internal/progress"
	"github.com/abhisek/atlas/internal/refine"
	"github.com/abhisek/atlas/internal/sequence"
	"github.com/abhisek/atlas/internal/store"
)

// Pipeline wires the stages together over the store's repositories.
type Pipeline struct {
	sessions  store.SessionRepo
	graphs    store.GraphRepo
	plans     store.PlanRepo
	events    store.EventRepo
	extractor extract.Extractor
	tracker   *progress.Tracker

	now func() time.Time
}

// Deps are the collaborators a Pipeline needs.
type Deps struct {
	Sessions  store.SessionRepo
	Graphs    store.GraphRepo
	Plans     store.PlanRepo
	Events    store.EventRepo
	Authority progress.Authority
	Extractor extract.Extractor

	// Progress tunes the tracker. Zero value means progress.DefaultConfig.
	Progress progress.Config
}

// New creates a Pipeline from explicit dependencies.
func New(d Deps) *Pipeline {
	cfg := d.Progress
	if cfg.CompletionThreshold == 0 {
		cfg = progress.DefaultConfig()
	}
	return &Pipeline{
		sessions:  d.Sessions,
		graphs:    d.Graphs,
		plans:     d.Plans,
		events:    d.Events,
		extractor: d.Extractor,
		tracker:   progress.NewTracker(d.Authority, cfg),
		now:       time.Now,
	}
}

// FromStore creates a Pipeline backed by a single store.
func FromStore(st *store.Store, extractor extract.Extractor) *Pipeline {
	return New(Deps{
		Sessions:  st.SessionRepo(),
		Graphs:    st.GraphRepo(),
		Plans:     st.PlanRepo(),
		Events:    st.EventRepo(),
		Authority: st.MasteryRepo(),
		Extractor: extractor,
	})
}

// Tracker exposes the progress tracker for direct queries.
func (p *Pipeline) Tracker() *progress.Tracker {
	return p.tracker
}

// IngestReport summarizes a successful ingestion.
type IngestReport struct {
	SessionID string
	Stats     extract.Stats
	Model     string
	Usage     llm.Usage
}

// Ingest extracts a knowledge graph from the materials, validates it and
// persists it under a new session. Nothing is persisted when extraction
// or validation fails.
func (p *Pipeline) Ingest(ctx context.Context, sessionID, goal string, materials []extract.Material) (*IngestReport, error) {
	if p.extractor == nil {
		return nil, fmt.Errorf("no extractor configured")
	}
	res, err := p.extractor.Extract(ctx, extract.Input{Goal: goal, Materials: materials})
	if err != nil {
		return nil, err
	}

	if err := res.Graph.Validate(); err != nil {
		return nil, fmt.Errorf("extracted graph rejected: %w", err)
	}

	if err := p.sessions.Create(ctx, sessionID, goal); err != nil {
		return nil, err
	}
	if err := p.graphs.Save(ctx, sessionID, res.Graph, res.Model); err != nil {
		return nil, err
	}

	return &IngestReport{
		SessionID: sessionID,
		Stats:     res.Stats,
		Model:     res.Model,
		Usage:     res.Usage,
	}, nil
}

// Import persists a pre-built graph document under a new session,
// bypassing extraction. The document still goes through full validation.
func (p *Pipeline) Import(ctx context.Context, sessionID, goal string, raw []byte) (*knowledge.Graph, error) {
	g, err := knowledge.DecodeCandidate(raw)
	if err != nil {
		return nil, err
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("imported graph rejected: %w", err)
	}

	if err := p.sessions.Create(ctx, sessionID, goal); err != nil {
		return nil, err
	}
	if err := p.graphs.Save(ctx, sessionID, g, ""); err != nil {
		return nil, err
	}
	return g, nil
}

// Graph returns the session's current knowledge graph.
func (p *Pipeline) Graph(ctx context.Context, sessionID string) (*knowledge.Graph, *store.GraphMeta, error) {
	return p.graphs.Latest(ctx, sessionID)
}

// RefineReport carries a refinement run plus how it handled the profile.
type RefineReport struct {
	Result *refine.Result

	// ProfileStale is the reason profile signals were ignored, nil when
	// fresh signals were applied.
	ProfileStale *profile.StaleProfileError
}

// Refine partitions the session's graph into keep, confirm and drop
// buckets. Stale or missing profile signals do not fail the run: the
// refinement falls back to extraction priors and the result is flagged
// low confidence. The priors used are stored on the session so that
// Plan replays the same refinement deterministically.
func (p *Pipeline) Refine(ctx context.Context, sessionID string, prof *profile.Signals, th refine.Thresholds) (*RefineReport, error) {
	g, _, err := p.graphs.Latest(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	report := &RefineReport{}
	opts := refine.Options{Thresholds: th}
	var priors map[string]float64

	switch {
	case prof == nil:
		opts.SkipPropagation = true
		report.ProfileStale = &profile.StaleProfileError{Reason: "no profile signals provided"}
	default:
		if err := prof.Fresh(p.now()); err != nil {
			var stale *profile.StaleProfileError
			if !errors.As(err, &stale) {
				return nil, err
			}
			opts.SkipPropagation = true
			report.ProfileStale = stale
		} else {
			priors = prof.Priors()
		}
	}

	report.Result, err = refine.Refine(g, priors, opts)
	if err != nil {
		return nil, err
	}

	if err := p.sessions.SetProfile(ctx, sessionID, profileDoc(priors, report)); err != nil {
		return nil, err
	}
	if err := p.sessions.SetStatus(ctx, sessionID, store.StatusRefined); err != nil {
		return nil, err
	}
	return report, nil
}

// Plan replays the stored refinement with the learner's confirmations
// applied, sequences the retained nodes, persists the plan and seeds
// progress tracking for it. The session becomes active.
func (p *Pipeline) Plan(ctx context.Context, sessionID string, confirmed map[string]bool, th refine.Thresholds) (*sequence.Plan, error) {
	g, _, err := p.graphs.Latest(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	sess, err := p.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	priors, skip, err := storedPriors(sess)
	if err != nil {
		return nil, err
	}

	result, err := refine.Refine(g, priors, refine.Options{Thresholds: th, SkipPropagation: skip})
	if err != nil {
		return nil, err
	}

	retained := result.Retained(confirmed)
	if len(retained) == 0 {
		return nil, fmt.Errorf("refinement retained no concepts; nothing to plan")
	}

	plan, err := sequence.Build(g, retained)
	if err != nil {
		return nil, err
	}

	var dropped []string
	for _, d := range result.Decisions {
		if d.Bucket == refine.BucketDrop || (d.Bucket == refine.BucketConfirm && !confirmed[d.NodeID]) {
			dropped = append(dropped, d.NodeID)
		}
	}

	if err := p.plans.Save(ctx, sessionID, plan, dropped); err != nil {
		return nil, err
	}

	// Seed mastery tracking with the refinement composites so a learner
	// who half-knows a topic does not start from zero.
	seed := make(map[string]float64, len(plan.Entries))
	for _, e := range plan.Entries {
		if d, ok := result.Decision(e.NodeID); ok {
			seed[e.NodeID] = d.Composite
		}
	}
	if err := p.tracker.StartSession(ctx, sessionID, plan, seed); err != nil {
		return nil, err
	}

	if err := p.sessions.SetStatus(ctx, sessionID, store.StatusActive); err != nil {
		return nil, err
	}
	return plan, nil
}

// Resume restores progress tracking for a previously planned session
// from the authoritative store.
func (p *Pipeline) Resume(ctx context.Context, sessionID string) (*sequence.Plan, error) {
	plan, _, err := p.plans.Latest(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := p.tracker.ResumeSession(ctx, sessionID, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// Apply feeds one activity outcome through the tracker and appends it
// to the activity log. Log failures never fail the learner's progress.
func (p *Pipeline) Apply(ctx context.Context, ev progress.ActivityEvent) (*progress.MasteryRecord, error) {
	rec, err := p.tracker.Apply(ctx, ev)
	if err != nil {
		return nil, err
	}

	logErr := p.events.AppendActivity(ctx, store.ActivityData{
		EventID:      ev.EventID,
		SessionID:    ev.SessionID,
		NodeID:       ev.NodeID,
		Outcome:      string(ev.Outcome),
		MasteryAfter: rec.MasteryLevel,
		StateAfter:   string(rec.State),
	})
	if logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log activity event: %v\n", logErr)
	}

	if sum, err := p.tracker.Summarize(ev.SessionID); err == nil && sum.CourseComplete {
		if err := p.sessions.SetStatus(ctx, ev.SessionID, store.StatusComplete); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to mark session complete: %v\n", err)
		}
	}

	return rec, nil
}

// profileDoc serializes the refinement inputs for storage on the session.
func profileDoc(priors map[string]float64, report *RefineReport) map[string]any {
	doc := map[string]any{
		"low_confidence": report.ProfileStale != nil,
	}
	if report.ProfileStale != nil {
		doc["stale_reason"] = report.ProfileStale.Reason
	}
	pm := make(map[string]any, len(priors))
	for id, v := range priors {
		pm[id] = v
	}
	doc["priors"] = pm
	return doc
}

// storedPriors reads back what profileDoc wrote.
func storedPriors(sess *store.Session) (map[string]float64, bool, error) {
	if sess.Profile == nil {
		return nil, false, fmt.Errorf("session %q has not been refined", sess.SessionID)
	}

	skip, _ := sess.Profile["low_confidence"].(bool)

	priors := map[string]float64{}
	if pm, ok := sess.Profile["priors"].(map[string]any); ok {
		for id, v := range pm {
			f, ok := v.(float64)
			if !ok {
				return nil, false, fmt.Errorf("stored prior for %q is not a number", id)
			}
			priors[id] = f
		}
	}
	if len(priors) == 0 {
		priors = nil
	}
	return priors, skip, nil
}
