package store

import (
	"context"
	"fmt"

	"github.com/abhisek/atlas/ent"
	"github.com/abhisek/atlas/ent/llmcallevent"
)

// eventRepo implements EventRepo backed by ent and the global
// sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendLLMCall(ctx context.Context, data LLMCallData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMCallEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM call event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMCalls(ctx context.Context, opts QueryOpts) ([]LLMCall, error) {
	q := r.client.LLMCallEvent.Query().
		Order(ent.Desc(llmcallevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(llmcallevent.SequenceGT(opts.After))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM call events: %w", err)
	}

	out := make([]LLMCall, 0, len(rows))
	for _, e := range rows {
		out = append(out, LLMCall{
			ID:        e.ID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			LLMCallData: LLMCallData{
				Provider:     e.Provider,
				Model:        e.Model,
				Purpose:      e.Purpose,
				InputTokens:  e.InputTokens,
				OutputTokens: e.OutputTokens,
				LatencyMs:    e.LatencyMs,
				Success:      e.Success,
				ErrorMessage: e.ErrorMessage,
			},
		})
	}
	return out, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error) {
	rows, err := r.client.LLMCallEvent.Query().
		Order(ent.Asc(llmcallevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM call events: %w", err)
	}

	// Aggregate in Go. The table is small for a single-user tool and
	// this avoids ent's aggregation API contortions.
	byPurpose := map[string]*PurposeUsage{}
	var order []string
	for _, e := range rows {
		u, ok := byPurpose[e.Purpose]
		if !ok {
			u = &PurposeUsage{Purpose: e.Purpose}
			byPurpose[e.Purpose] = u
			order = append(order, e.Purpose)
		}
		u.Calls++
		if !e.Success {
			u.Failures++
		}
		u.InputTokens += e.InputTokens
		u.OutputTokens += e.OutputTokens
	}

	out := make([]PurposeUsage, 0, len(order))
	for _, p := range order {
		out = append(out, *byPurpose[p])
	}
	return out, nil
}
