package knowledge

import (
	"fmt"
	"strings"
)

// CycleError reports a dependency cycle among ordering edges.
// Nodes are the ids on one offending cycle, in traversal order.
type CycleError struct {
	Nodes []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("dependency cycle: %s", strings.Join(e.Nodes, " -> "))
}

// UngroundedNodeError reports a node whose prerequisite chain never reaches
// a foundational concept, or a non-root node with no ordering prerequisite
// at all.
type UngroundedNodeError struct {
	NodeID string
	Reason string
}

func (e *UngroundedNodeError) Error() string {
	return fmt.Sprintf("ungrounded node %q: %s", e.NodeID, e.Reason)
}

// DepthViolation is one edge whose endpoint depths break the invariant
// table for its relationship kind.
type DepthViolation struct {
	Edge      PrerequisiteEdge
	FromDepth int
	ToDepth   int
}

func (v DepthViolation) String() string {
	op := "<"
	if v.Edge.Relationship != RelRequires {
		op = "<="
	}
	return fmt.Sprintf("%s edge %s(depth %d) -> %s(depth %d) violates depth(from) %s depth(to)",
		v.Edge.Relationship, v.Edge.From, v.FromDepth, v.Edge.To, v.ToDepth, op)
}

// DepthViolationError lists all edges with inconsistent endpoint depths.
type DepthViolationError struct {
	Violations []DepthViolation
}

func (e *DepthViolationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return fmt.Sprintf("depth violations:\n  %s", strings.Join(parts, "\n  "))
}

// CircularDomainError reports a requires edge between two depth-0 domain
// nodes. Domains must be independent roots.
type CircularDomainError struct {
	From string
	To   string
}

func (e *CircularDomainError) Error() string {
	return fmt.Sprintf("domain %q requires domain %q: domains must not depend on each other", e.To, e.From)
}

// ValidationError aggregates every diagnostic found in one validation pass.
// The individual typed errors are reachable through errors.As via Unwrap.
type ValidationError struct {
	Issues []error
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		parts[i] = issue.Error()
	}
	return fmt.Sprintf("knowledge graph validation failed:\n  %s", strings.Join(parts, "\n  "))
}

func (e *ValidationError) Unwrap() []error {
	return e.Issues
}
