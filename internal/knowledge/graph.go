package knowledge

import (
	"fmt"
	"slices"
	"sort"
)

// Graph holds a concept DAG with precomputed indices.
//
// A Graph built with New is only a candidate: it carries whatever the
// extraction collaborator proposed, including structurally invalid data.
// Call Validate before letting any other component consume it.
type Graph struct {
	nodes []ConceptNode
	edges []PrerequisiteEdge

	byID map[string]*ConceptNode

	// incoming and outgoing index all edges by endpoint.
	incoming map[string][]PrerequisiteEdge
	outgoing map[string][]PrerequisiteEdge
}

// New constructs a Graph and builds its indices. It fails only on data
// that makes indexing impossible (duplicate or dangling ids, malformed
// enums); structural invariants are checked separately by Validate.
func New(nodes []ConceptNode, edges []PrerequisiteEdge) (*Graph, error) {
	g := &Graph{
		nodes:    slices.Clone(nodes),
		edges:    slices.Clone(edges),
		byID:     make(map[string]*ConceptNode, len(nodes)),
		incoming: make(map[string][]PrerequisiteEdge),
		outgoing: make(map[string][]PrerequisiteEdge),
	}

	for i := range g.nodes {
		n := &g.nodes[i]
		if n.ID == "" {
			return nil, fmt.Errorf("node %d has empty id", i)
		}
		if _, dup := g.byID[n.ID]; dup {
			return nil, fmt.Errorf("duplicate node id %q", n.ID)
		}
		if !ValidNodeType(n.Type) {
			return nil, fmt.Errorf("node %q has unknown type %q", n.ID, n.Type)
		}
		if n.Depth < 0 || n.Depth > MaxDepth {
			return nil, fmt.Errorf("node %q depth %d outside [0, %d]", n.ID, n.Depth, MaxDepth)
		}
		if n.MasteryLikelihood < 0 || n.MasteryLikelihood > 1 {
			return nil, fmt.Errorf("node %q mastery likelihood %g outside [0, 1]", n.ID, n.MasteryLikelihood)
		}
		g.byID[n.ID] = n
	}

	for _, e := range g.edges {
		if !ValidRelationship(e.Relationship) {
			return nil, fmt.Errorf("edge %s -> %s has unknown relationship %q", e.From, e.To, e.Relationship)
		}
		if _, ok := g.byID[e.From]; !ok {
			return nil, fmt.Errorf("edge references nonexistent node %q", e.From)
		}
		if _, ok := g.byID[e.To]; !ok {
			return nil, fmt.Errorf("edge references nonexistent node %q", e.To)
		}
		if e.From == e.To {
			return nil, fmt.Errorf("edge %q -> %q is a self-loop", e.From, e.To)
		}
		if e.Relationship.Ordering() && e.Reasoning == "" {
			return nil, fmt.Errorf("%s edge %s -> %s has no reasoning", e.Relationship, e.From, e.To)
		}
		g.outgoing[e.From] = append(g.outgoing[e.From], e)
		g.incoming[e.To] = append(g.incoming[e.To], e)
	}

	return g, nil
}

// Node returns a node by id, or an error if not found.
func (g *Graph) Node(id string) (ConceptNode, error) {
	n, ok := g.byID[id]
	if !ok {
		return ConceptNode{}, fmt.Errorf("node not found: %q", id)
	}
	return *n, nil
}

// Has reports whether a node with the given id exists.
func (g *Graph) Has(id string) bool {
	_, ok := g.byID[id]
	return ok
}

// Nodes returns all nodes.
func (g *Graph) Nodes() []ConceptNode {
	return slices.Clone(g.nodes)
}

// Edges returns all edges.
func (g *Graph) Edges() []PrerequisiteEdge {
	return slices.Clone(g.edges)
}

// Len returns the node count.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Incoming returns the edges targeting id.
func (g *Graph) Incoming(id string) []PrerequisiteEdge {
	return slices.Clone(g.incoming[id])
}

// Outgoing returns the edges originating at id.
func (g *Graph) Outgoing(id string) []PrerequisiteEdge {
	return slices.Clone(g.outgoing[id])
}

// Prerequisites returns the ids of direct ordering prerequisites of id,
// sorted for determinism. Related edges are excluded.
func (g *Graph) Prerequisites(id string) []string {
	var result []string
	for _, e := range g.incoming[id] {
		if e.Relationship.Ordering() {
			result = append(result, e.From)
		}
	}
	sort.Strings(result)
	return result
}

// Dependents returns the ids of nodes that directly depend on id through
// ordering edges, sorted for determinism.
func (g *Graph) Dependents(id string) []string {
	var result []string
	for _, e := range g.outgoing[id] {
		if e.Relationship.Ordering() {
			result = append(result, e.To)
		}
	}
	sort.Strings(result)
	return result
}

// Roots returns all nodes with no incoming edges of any relationship.
func (g *Graph) Roots() []ConceptNode {
	var roots []ConceptNode
	for _, n := range g.nodes {
		if len(g.incoming[n.ID]) == 0 {
			roots = append(roots, n)
		}
	}
	return roots
}

// MaxNodeDepth returns the deepest depth present in the graph.
func (g *Graph) MaxNodeDepth() int {
	max := 0
	for _, n := range g.nodes {
		if n.Depth > max {
			max = n.Depth
		}
	}
	return max
}

// RelationshipCounts tallies edges by relationship kind.
func (g *Graph) RelationshipCounts() map[Relationship]int {
	counts := make(map[Relationship]int, 3)
	for _, e := range g.edges {
		counts[e.Relationship]++
	}
	return counts
}
