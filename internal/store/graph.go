package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/atlas/ent"
	"github.com/abhisek/atlas/ent/knowledgegraphdoc"
	"github.com/abhisek/atlas/internal/knowledge"
)

// graphRepo implements GraphRepo using the ent client.
type graphRepo struct {
	client *ent.Client
}

func (r *graphRepo) Save(ctx context.Context, sessionID string, g *knowledge.Graph, model string) error {
	raw, err := knowledge.EncodeDocument(g)
	if err != nil {
		return fmt.Errorf("encode graph: %w", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("reshape graph document: %w", err)
	}

	_, err = r.client.KnowledgeGraphDoc.Create().
		SetSessionID(sessionID).
		SetDocument(doc).
		SetNodeCount(g.Len()).
		SetEdgeCount(len(g.Edges())).
		SetMaxDepth(g.MaxNodeDepth()).
		SetModel(model).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save graph document: %w", err)
	}
	return nil
}

func (r *graphRepo) Latest(ctx context.Context, sessionID string) (*knowledge.Graph, *GraphMeta, error) {
	row, err := r.client.KnowledgeGraphDoc.Query().
		Where(knowledgegraphdoc.SessionID(sessionID)).
		Order(ent.Desc(knowledgegraphdoc.FieldCreatedAt), ent.Desc(knowledgegraphdoc.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("query latest graph: %w", err)
	}

	raw, err := json.Marshal(row.Document)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal stored document: %w", err)
	}
	g, err := knowledge.DecodeCandidate(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("decode stored graph: %w", err)
	}

	return g, &GraphMeta{
		NodeCount: row.NodeCount,
		EdgeCount: row.EdgeCount,
		MaxDepth:  row.MaxDepth,
		Model:     row.Model,
		CreatedAt: row.CreatedAt,
	}, nil
}
