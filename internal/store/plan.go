package store

import (
	"context"
	"fmt"

	"github.com/abhisek/atlas/ent"
	"github.com/abhisek/atlas/ent/lessonplandoc"
	"github.com/abhisek/atlas/internal/sequence"
)

// planRepo implements PlanRepo using the ent client.
type planRepo struct {
	client *ent.Client
}

func (r *planRepo) Save(ctx context.Context, sessionID string, plan *sequence.Plan, dropped []string) error {
	entries := make([]map[string]any, 0, len(plan.Entries))
	for _, e := range plan.Entries {
		entries = append(entries, map[string]any{
			"node_id":     e.NodeID,
			"order_index": e.OrderIndex,
		})
	}

	_, err := r.client.LessonPlanDoc.Create().
		SetSessionID(sessionID).
		SetEntries(entries).
		SetDropped(dropped).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save lesson plan: %w", err)
	}
	return nil
}

func (r *planRepo) Latest(ctx context.Context, sessionID string) (*sequence.Plan, []string, error) {
	row, err := r.client.LessonPlanDoc.Query().
		Where(lessonplandoc.SessionID(sessionID)).
		Order(ent.Desc(lessonplandoc.FieldCreatedAt), ent.Desc(lessonplandoc.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("query latest plan: %w", err)
	}

	plan := &sequence.Plan{Entries: make([]sequence.PlanEntry, 0, len(row.Entries))}
	for _, e := range row.Entries {
		nodeID, _ := e["node_id"].(string)
		if nodeID == "" {
			return nil, nil, fmt.Errorf("stored plan entry missing node_id: %v", e)
		}
		// JSON numbers come back as float64.
		idx, ok := e["order_index"].(float64)
		if !ok {
			return nil, nil, fmt.Errorf("stored plan entry missing order_index: %v", e)
		}
		plan.Entries = append(plan.Entries, sequence.PlanEntry{
			NodeID:     nodeID,
			OrderIndex: int(idx),
		})
	}

	return plan, row.Dropped, nil
}
