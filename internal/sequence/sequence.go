// Package sequence turns the retained subgraph of a knowledge graph into
// a total lesson order that never places a prerequisite after its
// dependent.
package sequence

import (
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/atlas/internal/knowledge"
)

// PlanEntry is one scheduled concept in a lesson plan.
type PlanEntry struct {
	NodeID     string `json:"node_id"`
	OrderIndex int    `json:"order_index"`
}

// Plan is the ordered lesson sequence over the retained node set.
type Plan struct {
	Entries []PlanEntry `json:"entries"`
}

// NodeIDs returns the plan's node ids in order.
func (p *Plan) NodeIDs() []string {
	ids := make([]string, len(p.Entries))
	for i, e := range p.Entries {
		ids[i] = e.NodeID
	}
	return ids
}

// Index returns the order index for a node id, or -1 if not planned.
func (p *Plan) Index(id string) int {
	for _, e := range p.Entries {
		if e.NodeID == id {
			return e.OrderIndex
		}
	}
	return -1
}

// CyclicSubgraphError reports a cycle in the induced subgraph. Validation
// makes this unreachable for graphs that went through the normal pipeline,
// but the retained set is caller-controlled, so the sequencer checks anyway.
type CyclicSubgraphError struct {
	Nodes []string
}

func (e *CyclicSubgraphError) Error() string {
	return fmt.Sprintf("retained subgraph contains a cycle among: %s", strings.Join(e.Nodes, ", "))
}

// Build produces a lesson plan over the retained node set.
//
// The induced subgraph keeps only ordering edges whose both endpoints are
// retained. Edges crossing into dropped nodes vanish: a dropped node is
// treated as already satisfied and does not gate its dependents.
//
// The order is a topological sort of requires/builds_on edges. Ties among
// schedulable nodes break deterministically: lowest depth first, then
// lexicographically lowest node id. Running Build twice on the same input
// yields an identical plan.
func Build(g *knowledge.Graph, retained []string) (*Plan, error) {
	keep := make(map[string]bool, len(retained))
	for _, id := range retained {
		if !g.Has(id) {
			return nil, fmt.Errorf("retained node %q not in graph", id)
		}
		keep[id] = true
	}

	// Induced in-degrees and adjacency over ordering edges.
	inDegree := make(map[string]int, len(keep))
	next := make(map[string][]string, len(keep))
	for id := range keep {
		inDegree[id] = 0
	}
	for _, e := range g.Edges() {
		if !e.Relationship.Ordering() || !keep[e.From] || !keep[e.To] {
			continue
		}
		inDegree[e.To]++
		next[e.From] = append(next[e.From], e.To)
	}

	var ready []string
	for id, deg := range inDegree {
		if deg == 0 {
			ready = append(ready, id)
		}
	}

	depth := func(id string) int {
		n, _ := g.Node(id)
		return n.Depth
	}
	sortReady := func() {
		sort.Slice(ready, func(i, j int) bool {
			di, dj := depth(ready[i]), depth(ready[j])
			if di != dj {
				return di < dj
			}
			return ready[i] < ready[j]
		})
	}

	plan := &Plan{}
	for len(ready) > 0 {
		sortReady()
		id := ready[0]
		ready = ready[1:]

		plan.Entries = append(plan.Entries, PlanEntry{
			NodeID:     id,
			OrderIndex: len(plan.Entries),
		})

		for _, to := range next[id] {
			inDegree[to]--
			if inDegree[to] == 0 {
				ready = append(ready, to)
			}
		}
	}

	if len(plan.Entries) != len(keep) {
		var stuck []string
		for id, deg := range inDegree {
			if deg > 0 {
				stuck = append(stuck, id)
			}
		}
		sort.Strings(stuck)
		return nil, &CyclicSubgraphError{Nodes: stuck}
	}

	return plan, nil
}
