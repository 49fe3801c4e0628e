package knowledge

import (
	"sort"
)

// Validate performs all structural checks on the graph in one pass.
// It returns a *ValidationError carrying every diagnostic found, or nil
// if the graph is acceptable.
//
// Validation is deterministic and side-effect-free. Failures are terminal
// for the candidate: no check attempts a repair, because silently dropping
// or rewriting an edge changes pedagogical meaning. The caller must request
// a fresh candidate from the extraction step instead.
func (g *Graph) Validate() error {
	var issues []error

	if cycle := g.findCycle(); cycle != nil {
		issues = append(issues, &CycleError{Nodes: cycle})
	}

	issues = append(issues, g.checkDepths()...)
	issues = append(issues, g.checkDomainIndependence()...)
	issues = append(issues, g.checkGrounding()...)
	issues = append(issues, g.checkOrphans()...)

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

// findCycle runs Kahn's algorithm restricted to ordering edges. If any node
// remains unprocessed the residue contains at least one cycle; a DFS over
// the residue extracts one concrete cycle to report.
func (g *Graph) findCycle() []string {
	inDegree := make(map[string]int, len(g.nodes))
	for _, n := range g.nodes {
		inDegree[n.ID] = 0
	}
	for _, e := range g.edges {
		if e.Relationship.Ordering() {
			inDegree[e.To]++
		}
	}

	var queue []string
	for _, n := range g.nodes {
		if inDegree[n.ID] == 0 {
			queue = append(queue, n.ID)
		}
	}
	sort.Strings(queue)

	processed := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		processed++
		for _, e := range g.outgoing[id] {
			if !e.Relationship.Ordering() {
				continue
			}
			inDegree[e.To]--
			if inDegree[e.To] == 0 {
				queue = append(queue, e.To)
			}
		}
	}

	if processed == len(g.nodes) {
		return nil
	}

	// Residue: nodes still holding ordering in-degree. Every residue node
	// lies on or downstream of a cycle, so walking unvisited residue edges
	// must eventually revisit a node on the current path.
	residue := make(map[string]bool)
	var residueIDs []string
	for id, deg := range inDegree {
		if deg > 0 {
			residue[id] = true
			residueIDs = append(residueIDs, id)
		}
	}
	sort.Strings(residueIDs)

	onPath := make(map[string]int)
	var path []string
	var walk func(id string) []string
	walk = func(id string) []string {
		if pos, ok := onPath[id]; ok {
			return append([]string(nil), path[pos:]...)
		}
		onPath[id] = len(path)
		path = append(path, id)
		for _, to := range g.Dependents(id) {
			if !residue[to] {
				continue
			}
			if cycle := walk(to); cycle != nil {
				return cycle
			}
		}
		delete(onPath, id)
		path = path[:len(path)-1]
		return nil
	}

	for _, id := range residueIDs {
		if cycle := walk(id); cycle != nil {
			return cycle
		}
	}
	return residueIDs // unreachable, but never return nil with a residue
}

// checkDepths verifies the per-relationship depth invariants:
// requires needs depth(from) < depth(to); builds_on and related need
// depth(from) <= depth(to).
func (g *Graph) checkDepths() []error {
	var violations []DepthViolation
	for _, e := range g.edges {
		from := g.byID[e.From]
		to := g.byID[e.To]
		bad := false
		switch e.Relationship {
		case RelRequires:
			bad = from.Depth >= to.Depth
		case RelBuildsOn, RelRelated:
			bad = from.Depth > to.Depth
		}
		if bad {
			violations = append(violations, DepthViolation{
				Edge:      e,
				FromDepth: from.Depth,
				ToDepth:   to.Depth,
			})
		}
	}
	if len(violations) == 0 {
		return nil
	}
	return []error{&DepthViolationError{Violations: violations}}
}

// checkDomainIndependence rejects requires edges between two depth-0 nodes.
func (g *Graph) checkDomainIndependence() []error {
	var issues []error
	for _, e := range g.edges {
		if e.Relationship != RelRequires {
			continue
		}
		if g.byID[e.From].Depth == 0 && g.byID[e.To].Depth == 0 {
			issues = append(issues, &CircularDomainError{From: e.From, To: e.To})
		}
	}
	return issues
}

// checkGrounding verifies that every node with depth >= 2 has an ordering
// ancestor chain terminating at a node with depth <= 1.
func (g *Graph) checkGrounding() []error {
	grounded := make(map[string]bool, len(g.nodes))

	var reach func(id string, seen map[string]bool) bool
	reach = func(id string, seen map[string]bool) bool {
		if grounded[id] {
			return true
		}
		if seen[id] {
			return false
		}
		seen[id] = true
		if g.byID[id].Depth <= 1 {
			grounded[id] = true
			return true
		}
		for _, e := range g.incoming[id] {
			if !e.Relationship.Ordering() {
				continue
			}
			if reach(e.From, seen) {
				grounded[id] = true
				return true
			}
		}
		return false
	}

	var issues []error
	for _, n := range g.nodes {
		if n.Depth < 2 {
			continue
		}
		if !reach(n.ID, make(map[string]bool)) {
			issues = append(issues, &UngroundedNodeError{
				NodeID: n.ID,
				Reason: "no requires/builds_on ancestor chain reaches a node with depth <= 1",
			})
		}
	}
	return issues
}

// checkOrphans flags nodes that have incoming edges but none of them
// ordering. Such a node is not a root, yet nothing can schedule before it.
func (g *Graph) checkOrphans() []error {
	var issues []error
	for _, n := range g.nodes {
		in := g.incoming[n.ID]
		if len(in) == 0 {
			continue // true root
		}
		hasOrdering := false
		for _, e := range in {
			if e.Relationship.Ordering() {
				hasOrdering = true
				break
			}
		}
		if !hasOrdering {
			issues = append(issues, &UngroundedNodeError{
				NodeID: n.ID,
				Reason: "non-root node has no incoming requires/builds_on edge",
			})
		}
	}
	return issues
}
