package store

import (
	"context"
	"fmt"

	"github.com/abhisek/atlas/ent"
	"github.com/abhisek/atlas/ent/activityevent"
)

func (r *eventRepo) AppendActivity(ctx context.Context, data ActivityData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ActivityEvent.Create().
		SetSequence(seqNum).
		SetEventID(data.EventID).
		SetSessionID(data.SessionID).
		SetNodeID(data.NodeID).
		SetOutcome(data.Outcome).
		SetMasteryAfter(data.MasteryAfter).
		SetStateAfter(data.StateAfter).
		Save(ctx)
	if err != nil {
		// The event_id unique constraint makes replayed appends fail;
		// a replay is not an error from the caller's point of view.
		if ent.IsConstraintError(err) {
			return nil
		}
		return fmt.Errorf("save activity event: %w", err)
	}
	return nil
}

func (r *eventRepo) ActivityHistory(ctx context.Context, sessionID string) ([]Activity, error) {
	rows, err := r.client.ActivityEvent.Query().
		Where(activityevent.SessionID(sessionID)).
		Order(ent.Asc(activityevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query activity events: %w", err)
	}

	out := make([]Activity, 0, len(rows))
	for _, e := range rows {
		out = append(out, Activity{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			ActivityData: ActivityData{
				EventID:      e.EventID,
				SessionID:    e.SessionID,
				NodeID:       e.NodeID,
				Outcome:      e.Outcome,
				MasteryAfter: e.MasteryAfter,
				StateAfter:   e.StateAfter,
			},
		})
	}
	return out, nil
}
