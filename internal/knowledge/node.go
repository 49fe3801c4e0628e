package knowledge

// NodeType classifies a concept node by its pedagogical role.
type NodeType string

const (
	TypeDomain     NodeType = "domain"
	TypeConcept    NodeType = "concept"
	TypeMethod     NodeType = "method"
	TypeTheory     NodeType = "theory"
	TypeTool       NodeType = "tool"
	TypeFoundation NodeType = "foundation"
)

// AllNodeTypes returns the closed set of node types.
func AllNodeTypes() []NodeType {
	return []NodeType{
		TypeDomain,
		TypeConcept,
		TypeMethod,
		TypeTheory,
		TypeTool,
		TypeFoundation,
	}
}

// ValidNodeType reports whether t is one of the closed node type variants.
func ValidNodeType(t NodeType) bool {
	switch t {
	case TypeDomain, TypeConcept, TypeMethod, TypeTheory, TypeTool, TypeFoundation:
		return true
	}
	return false
}

// Relationship classifies a prerequisite edge.
type Relationship string

const (
	// RelRequires is a strict pedagogical dependency: the prerequisite must
	// be mastered before the dependent can be learned.
	RelRequires Relationship = "requires"

	// RelBuildsOn is a soft dependency: the prerequisite helps but does not
	// strictly gate the dependent.
	RelBuildsOn Relationship = "builds_on"

	// RelRelated marks conceptual adjacency with no ordering obligation.
	RelRelated Relationship = "related"
)

// ValidRelationship reports whether r is one of the closed relationship variants.
func ValidRelationship(r Relationship) bool {
	switch r {
	case RelRequires, RelBuildsOn, RelRelated:
		return true
	}
	return false
}

// Ordering reports whether the relationship imposes an ordering constraint.
// Only requires and builds_on edges constrain the lesson sequence; related
// edges are annotations.
func (r Relationship) Ordering() bool {
	return r == RelRequires || r == RelBuildsOn
}

// MaxDepth is the deepest pedagogical level a node may carry.
// Depth 0 is foundational (domains); 6 is the most advanced.
const MaxDepth = 6

// ConceptNode is a single concept in the knowledge graph.
type ConceptNode struct {
	// ID is a stable identifier, unique within a graph.
	ID string

	// Label is the short human-readable concept name.
	Label string

	// Type classifies the node's pedagogical role.
	Type NodeType

	// Depth is the pedagogical level, 0 (foundational) through MaxDepth.
	Depth int

	// MasteryLikelihood is the prior estimate (0-1) that the learner
	// already knows this concept.
	MasteryLikelihood float64

	// EvidenceRefs lists source-material identifiers supporting the estimate.
	EvidenceRefs []string
}

// PrerequisiteEdge is a directed edge From -> To meaning From is a
// prerequisite of To.
type PrerequisiteEdge struct {
	From         string
	To           string
	Relationship Relationship

	// Reasoning explains why the dependency holds. Required (non-empty)
	// for requires and builds_on edges.
	Reasoning string
}
