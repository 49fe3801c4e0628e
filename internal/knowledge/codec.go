package knowledge

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Candidate-graph wire format.
//
// This is the document the extraction collaborator emits: a node list plus
// an edge list where prerequisite_node_id -> node_id. The document is
// untrusted; DecodeCandidate checks it against a JSON Schema before
// building a Graph, so malformed shapes fail at the boundary instead of
// surfacing as odd graphs later. Structural invariants (cycles, grounding,
// depths) are still the validator's job.

type wireDocument struct {
	Nodes []wireNode `json:"nodes"`
	Edges []wireEdge `json:"edges"`
}

type wireNode struct {
	ID                string   `json:"id"`
	Label             string   `json:"label"`
	Type              string   `json:"type"`
	Depth             int      `json:"depth"`
	MasteryLikelihood float64  `json:"mastery_likelihood"`
	SourceMaterialIDs []string `json:"source_material_ids,omitempty"`
}

type wireEdge struct {
	NodeID             string `json:"node_id"`
	PrerequisiteNodeID string `json:"prerequisite_node_id"`
	Relationship       string `json:"relationship"`
	Reasoning          string `json:"reasoning"`
}

// CandidateSchema is the JSON Schema for the candidate-graph document.
// It is shared with the LLM structured-output request so that generation
// and ingestion enforce the same shape.
func CandidateSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"required":             []any{"nodes", "edges"},
		"additionalProperties": false,
		"properties": map[string]any{
			"nodes": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []any{"id", "label", "type", "depth", "mastery_likelihood"},
					"properties": map[string]any{
						"id":    map[string]any{"type": "string", "minLength": 1},
						"label": map[string]any{"type": "string", "minLength": 1},
						"type": map[string]any{
							"type": "string",
							"enum": []any{"domain", "concept", "method", "theory", "tool", "foundation"},
						},
						"depth":              map[string]any{"type": "integer", "minimum": 0, "maximum": MaxDepth},
						"mastery_likelihood": map[string]any{"type": "number", "minimum": 0, "maximum": 1},
						"source_material_ids": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
					},
				},
			},
			"edges": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []any{"node_id", "prerequisite_node_id", "relationship"},
					"properties": map[string]any{
						"node_id":              map[string]any{"type": "string", "minLength": 1},
						"prerequisite_node_id": map[string]any{"type": "string", "minLength": 1},
						"relationship": map[string]any{
							"type": "string",
							"enum": []any{"requires", "builds_on", "related"},
						},
						"reasoning": map[string]any{"type": "string"},
					},
				},
			},
		},
	}
}

var compileCandidateSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema://candidate-graph.json", CandidateSchema()); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile("schema://candidate-graph.json")
})

// DecodeCandidate parses a candidate-graph JSON document into a Graph.
// The result has NOT passed structural validation; callers must run
// Validate before using it anywhere else.
func DecodeCandidate(raw []byte) (*Graph, error) {
	schema, err := compileCandidateSchema()
	if err != nil {
		return nil, fmt.Errorf("compile candidate schema: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("candidate document is not valid JSON: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("candidate document rejected by schema: %w", err)
	}

	var doc wireDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode candidate document: %w", err)
	}

	nodes := make([]ConceptNode, 0, len(doc.Nodes))
	for _, wn := range doc.Nodes {
		nodes = append(nodes, ConceptNode{
			ID:                wn.ID,
			Label:             wn.Label,
			Type:              NodeType(wn.Type),
			Depth:             wn.Depth,
			MasteryLikelihood: wn.MasteryLikelihood,
			EvidenceRefs:      wn.SourceMaterialIDs,
		})
	}

	edges := make([]PrerequisiteEdge, 0, len(doc.Edges))
	for _, we := range doc.Edges {
		edges = append(edges, PrerequisiteEdge{
			From:         we.PrerequisiteNodeID,
			To:           we.NodeID,
			Relationship: Relationship(we.Relationship),
			Reasoning:    we.Reasoning,
		})
	}

	return New(nodes, edges)
}

// EncodeDocument serializes a graph back to the wire format, used when
// persisting a validated graph.
func EncodeDocument(g *Graph) ([]byte, error) {
	doc := wireDocument{
		Nodes: make([]wireNode, 0, g.Len()),
		Edges: make([]wireEdge, 0, len(g.edges)),
	}
	for _, n := range g.nodes {
		doc.Nodes = append(doc.Nodes, wireNode{
			ID:                n.ID,
			Label:             n.Label,
			Type:              string(n.Type),
			Depth:             n.Depth,
			MasteryLikelihood: n.MasteryLikelihood,
			SourceMaterialIDs: n.EvidenceRefs,
		})
	}
	for _, e := range g.edges {
		doc.Edges = append(doc.Edges, wireEdge{
			NodeID:             e.To,
			PrerequisiteNodeID: e.From,
			Relationship:       string(e.Relationship),
			Reasoning:          e.Reasoning,
		})
	}
	return json.MarshalIndent(doc, "", "  ")
}
