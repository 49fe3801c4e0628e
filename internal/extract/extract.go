// Package extract turns raw learning material into a candidate knowledge
// graph by prompting an LLM with a decomposition schema. Output is
// structurally sound but untrusted: the caller must run semantic
// validation before using it.
package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/atlas/internal/knowledge"
	"github.com/abhisek/atlas/internal/llm"
)

// Material is one source document to decompose.
type Material struct {
	// ID identifies the material for evidence grounding. Node
	// source_material_ids refer back to these.
	ID string

	// Title is a short human-readable label.
	Title string

	// Content is the material text.
	Content string
}

// Input describes one extraction request.
type Input struct {
	// Goal is the learner's stated objective, e.g. "pass the AWS SAA exam".
	Goal string

	// Materials is the source corpus. At least one is required.
	Materials []Material
}

// Stats summarizes the shape of an extracted candidate graph.
type Stats struct {
	NodeCount     int
	EdgeCount     int
	RootCount     int
	MaxDepth      int
	Relationships map[knowledge.Relationship]int
}

// Result is a candidate graph plus extraction metadata.
type Result struct {
	Graph *knowledge.Graph
	Stats Stats
	Usage llm.Usage
	Model string
}

// Config bounds a single extraction call.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns extraction defaults. Temperature is kept low so
// repeated runs over the same material produce similar decompositions.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   8192,
		Temperature: 0.2,
	}
}

// Extractor produces candidate knowledge graphs from learning material.
type Extractor interface {
	Extract(ctx context.Context, input Input) (*Result, error)
}

// LLMExtractor implements Extractor using an LLM provider.
type LLMExtractor struct {
	provider llm.Provider
	config   Config
}

// New creates an LLMExtractor with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMExtractor {
	return &LLMExtractor{provider: provider, config: cfg}
}

// Extract decomposes the input materials into a candidate graph.
func (e *LLMExtractor) Extract(ctx context.Context, input Input) (*Result, error) {
	if strings.TrimSpace(input.Goal) == "" {
		return nil, fmt.Errorf("extraction goal is required")
	}
	if len(input.Materials) == 0 {
		return nil, fmt.Errorf("at least one source material is required")
	}
	for _, m := range input.Materials {
		if m.ID == "" {
			return nil, fmt.Errorf("material %q has no id", m.Title)
		}
	}

	ctx = llm.WithPurpose(ctx, "graph-extraction")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		Schema: &llm.Schema{
			Name:        "knowledge-graph",
			Description: "concept nodes and prerequisite edges decomposed from learning material",
			Definition:  knowledge.CandidateSchema(),
		},
		MaxTokens:   e.config.MaxTokens,
		Temperature: e.config.Temperature,
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("graph extraction failed: %w", err)
	}

	g, err := knowledge.DecodeCandidate(resp.Content)
	if err != nil {
		return nil, fmt.Errorf("decode candidate graph: %w", err)
	}

	return &Result{
		Graph: g,
		Stats: statsFor(g),
		Usage: resp.Usage,
		Model: resp.Model,
	}, nil
}

func statsFor(g *knowledge.Graph) Stats {
	return Stats{
		NodeCount:     g.Len(),
		EdgeCount:     len(g.Edges()),
		RootCount:     len(g.Roots()),
		MaxDepth:      g.MaxNodeDepth(),
		Relationships: g.RelationshipCounts(),
	}
}
