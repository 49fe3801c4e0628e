// Package refine scores a validated knowledge graph against the learner's
// prior mastery and partitions its nodes into keep, confirm and drop buckets.
//
// Refinement is pure: it never mutates the graph and can be re-run freely
// whenever the profile or the thresholds change.
package refine

import (
	"fmt"
	"sort"

	"github.com/abhisek/atlas/internal/knowledge"
)

// Bucket classifies a node after refinement.
type Bucket string

const (
	// BucketKeep marks a required concept: composite at or below the low
	// threshold, the learner almost certainly needs to study it.
	BucketKeep Bucket = "keep"

	// BucketConfirm marks a mid-range concept the learner must decide on.
	BucketConfirm Bucket = "confirm"

	// BucketDrop marks a concept treated as already known.
	BucketDrop Bucket = "drop"
)

// Thresholds are the bucket boundaries on the composite score.
type Thresholds struct {
	Low  float64
	High float64
}

// DefaultThresholds returns the suggested boundaries.
func DefaultThresholds() Thresholds {
	return Thresholds{Low: 0.3, High: 0.75}
}

func (t Thresholds) validate() error {
	if t.Low < 0 || t.High > 1 || t.Low >= t.High {
		return fmt.Errorf("invalid thresholds: low=%g high=%g (need 0 <= low < high <= 1)", t.Low, t.High)
	}
	return nil
}

// Options configures a refinement run.
type Options struct {
	Thresholds Thresholds

	// SkipPropagation disables the prerequisite cap, leaving each composite
	// at the node's own prior. Set when profile signals are missing or
	// expired; the result is then flagged low confidence.
	SkipPropagation bool
}

// Decision is the per-node refinement outcome.
type Decision struct {
	NodeID    string
	Label     string
	Bucket    Bucket
	Composite float64

	// Reasoning summarizes how the composite was derived, for display
	// and audit.
	Reasoning string
}

// Result holds one refinement run. Results are transient: they are
// recomputed on every profile or threshold change, never persisted as
// graph state.
type Result struct {
	Decisions []Decision // sorted by node id

	// LowConfidence is set when the run fell back to raw priors because
	// profile signals were stale or missing.
	LowConfidence bool

	byID map[string]*Decision
}

// Decision returns the decision for a node id.
func (r *Result) Decision(id string) (Decision, bool) {
	d, ok := r.byID[id]
	if !ok {
		return Decision{}, false
	}
	return *d, true
}

// InBucket returns the decisions in the given bucket, sorted by node id.
func (r *Result) InBucket(b Bucket) []Decision {
	var out []Decision
	for _, d := range r.Decisions {
		if d.Bucket == b {
			out = append(out, d)
		}
	}
	return out
}

// Retained returns the ids outside the drop bucket plus any confirmed ids.
// This is the node set handed to the sequencer.
func (r *Result) Retained(confirmed map[string]bool) []string {
	var ids []string
	for _, d := range r.Decisions {
		switch d.Bucket {
		case BucketKeep:
			ids = append(ids, d.NodeID)
		case BucketConfirm:
			if confirmed[d.NodeID] {
				ids = append(ids, d.NodeID)
			}
		}
	}
	return ids
}

// Refine computes a composite mastery score per node and partitions the
// graph. priors carries per-node confidence contributions from profile
// analysis; nodes absent from priors fall back to their own
// MasteryLikelihood.
//
// The composite starts at the node's prior, but a concept cannot count as
// mastered while a strict prerequisite is unmastered: if any requires
// predecessor has composite below the low threshold, the node's composite
// is capped at low regardless of its own prior. The cap resolves
// overconfident priors from the extraction step. Propagation runs in
// topological order over requires edges so predecessors are always scored
// first.
func Refine(g *knowledge.Graph, priors map[string]float64, opts Options) (*Result, error) {
	th := opts.Thresholds
	if th == (Thresholds{}) {
		th = DefaultThresholds()
	}
	if err := th.validate(); err != nil {
		return nil, err
	}

	order, err := requiresOrder(g)
	if err != nil {
		return nil, err
	}

	composite := make(map[string]float64, g.Len())
	result := &Result{
		LowConfidence: opts.SkipPropagation,
		byID:          make(map[string]*Decision, g.Len()),
	}

	for _, id := range order {
		n, _ := g.Node(id)

		prior := n.MasteryLikelihood
		priorSource := "extraction prior"
		if p, ok := priors[id]; ok {
			prior = clamp01(p)
			priorSource = "profile signal"
		}

		score := prior
		reasoning := fmt.Sprintf("%s %.2f", priorSource, prior)

		if !opts.SkipPropagation {
			if capped, blocker := requiresCap(g, id, composite, th.Low); capped && score > th.Low {
				score = th.Low
				reasoning = fmt.Sprintf("%s, capped at %.2f: prerequisite %q unmastered", reasoning, th.Low, blocker)
			}
		}

		composite[id] = score

		d := Decision{
			NodeID:    id,
			Label:     n.Label,
			Composite: score,
			Reasoning: reasoning,
		}
		switch {
		case score >= th.High:
			d.Bucket = BucketDrop
		case score <= th.Low:
			d.Bucket = BucketKeep
		default:
			d.Bucket = BucketConfirm
		}
		result.Decisions = append(result.Decisions, d)
	}

	sort.Slice(result.Decisions, func(i, j int) bool {
		return result.Decisions[i].NodeID < result.Decisions[j].NodeID
	})
	for i := range result.Decisions {
		result.byID[result.Decisions[i].NodeID] = &result.Decisions[i]
	}

	return result, nil
}

// requiresCap reports whether any requires predecessor of id has a
// composite below low, returning the first blocking predecessor id.
func requiresCap(g *knowledge.Graph, id string, composite map[string]float64, low float64) (bool, string) {
	for _, e := range g.Incoming(id) {
		if e.Relationship != knowledge.RelRequires {
			continue
		}
		if composite[e.From] < low {
			return true, e.From
		}
	}
	return false, ""
}

// requiresOrder returns node ids topologically sorted over requires edges,
// ties broken by id. A validated graph always has such an order; the error
// only fires on an unvalidated input.
func requiresOrder(g *knowledge.Graph) ([]string, error) {
	inDegree := make(map[string]int, g.Len())
	for _, n := range g.Nodes() {
		inDegree[n.ID] = 0
	}
	for _, e := range g.Edges() {
		if e.Relationship == knowledge.RelRequires {
			inDegree[e.To]++
		}
	}

	var ready []string
	for id, deg := range inDegree {
		if deg == 0 {
			ready = append(ready, id)
		}
	}
	sort.Strings(ready)

	var order []string
	for len(ready) > 0 {
		id := ready[0]
		ready = ready[1:]
		order = append(order, id)

		changed := false
		for _, e := range g.Outgoing(id) {
			if e.Relationship != knowledge.RelRequires {
				continue
			}
			inDegree[e.To]--
			if inDegree[e.To] == 0 {
				ready = append(ready, e.To)
				changed = true
			}
		}
		if changed {
			sort.Strings(ready)
		}
	}

	if len(order) != g.Len() {
		return nil, fmt.Errorf("requires edges contain a cycle; graph was not validated")
	}
	return order, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
