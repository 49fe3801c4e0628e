package store

import (
	"context"
	"fmt"

	"github.com/abhisek/atlas/ent"
	"github.com/abhisek/atlas/ent/masteryrecord"
	"github.com/abhisek/atlas/internal/progress"
)

// MasteryRepo is the authoritative mastery store. It implements
// progress.Authority, so the in-memory tracker reconciles its
// optimistic cache against these rows.
type MasteryRepo struct {
	client *ent.Client
}

var _ progress.Authority = (*MasteryRepo)(nil)

func (r *MasteryRepo) Get(ctx context.Context, sessionID, nodeID string) (*progress.MasteryRecord, error) {
	row, err := r.client.MasteryRecord.Query().
		Where(
			masteryrecord.SessionID(sessionID),
			masteryrecord.NodeID(nodeID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, progress.ErrRecordNotFound
		}
		return nil, fmt.Errorf("query mastery record: %w", err)
	}
	return toProgressRecord(row), nil
}

func (r *MasteryRepo) Put(ctx context.Context, rec *progress.MasteryRecord) error {
	existing, err := r.client.MasteryRecord.Query().
		Where(
			masteryrecord.SessionID(rec.SessionID),
			masteryrecord.NodeID(rec.NodeID),
		).
		Only(ctx)
	switch {
	case err == nil:
		upd := existing.Update().
			SetState(string(rec.State)).
			SetMasteryLevel(rec.MasteryLevel)
		if rec.CompletedAt != nil {
			upd = upd.SetCompletedAt(*rec.CompletedAt)
		}
		if _, err := upd.Save(ctx); err != nil {
			return fmt.Errorf("update mastery record: %w", err)
		}
		return nil
	case ent.IsNotFound(err):
		create := r.client.MasteryRecord.Create().
			SetSessionID(rec.SessionID).
			SetNodeID(rec.NodeID).
			SetState(string(rec.State)).
			SetMasteryLevel(rec.MasteryLevel)
		if rec.CompletedAt != nil {
			create = create.SetCompletedAt(*rec.CompletedAt)
		}
		if _, err := create.Save(ctx); err != nil {
			return fmt.Errorf("create mastery record: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("query mastery record: %w", err)
	}
}

func (r *MasteryRepo) List(ctx context.Context, sessionID string) ([]*progress.MasteryRecord, error) {
	rows, err := r.client.MasteryRecord.Query().
		Where(masteryrecord.SessionID(sessionID)).
		Order(ent.Asc(masteryrecord.FieldNodeID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list mastery records: %w", err)
	}

	out := make([]*progress.MasteryRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, toProgressRecord(row))
	}
	return out, nil
}

func toProgressRecord(row *ent.MasteryRecord) *progress.MasteryRecord {
	rec := &progress.MasteryRecord{
		SessionID:    row.SessionID,
		NodeID:       row.NodeID,
		State:        progress.State(row.State),
		MasteryLevel: row.MasteryLevel,
		UpdatedAt:    row.UpdatedAt,
	}
	if row.CompletedAt != nil {
		t := *row.CompletedAt
		rec.CompletedAt = &t
	}
	return rec
}
