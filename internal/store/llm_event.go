package store

import (
	"context"
	"fmt"

	"github.com/abhisek/numsense/ent"
	"github.com/abhisek/numsense/ent/llmrequestevent"
)

const defaultLLMQueryLimit = 50

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}

	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts LLMQueryOpts) ([]LLMEvent, error) {
	q := r.client.LLMRequestEvent.Query()

	if opts.Purpose != "" {
		q = q.Where(llmrequestevent.Purpose(opts.Purpose))
	}
	if opts.Model != "" {
		q = q.Where(llmrequestevent.Model(opts.Model))
	}
	if opts.FailedOnly {
		q = q.Where(llmrequestevent.Success(false))
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = defaultLLMQueryLimit
	}

	events, err := q.
		Order(ent.Desc(llmrequestevent.FieldSequence)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	out := make([]LLMEvent, len(events))
	for i, e := range events {
		out[i] = entLLMEventToLLMEvent(e)
	}
	return out, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error) {
	e, err := r.client.LLMRequestEvent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get LLM event %d: %w", id, err)
	}
	ev := entLLMEventToLLMEvent(e)
	return &ev, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]UsageRow, error) {
	return r.llmUsageBy(ctx, llmrequestevent.FieldPurpose)
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]UsageRow, error) {
	return r.llmUsageBy(ctx, llmrequestevent.FieldModel)
}

// llmUsageBy aggregates request counts and token totals grouped by the
// given field. The scan destination carries both candidate group columns;
// only the one matching the grouping field is populated.
func (r *eventRepo) llmUsageBy(ctx context.Context, field string) ([]UsageRow, error) {
	var rows []struct {
		Purpose      string `json:"purpose"`
		Model        string `json:"model"`
		Requests     int    `json:"requests"`
		InputTokens  int    `json:"input_tokens"`
		OutputTokens int    `json:"output_tokens"`
	}
	err := r.client.LLMRequestEvent.Query().
		GroupBy(field).
		Aggregate(
			ent.As(ent.Count(), "requests"),
			ent.As(ent.Sum(llmrequestevent.FieldInputTokens), "input_tokens"),
			ent.As(ent.Sum(llmrequestevent.FieldOutputTokens), "output_tokens"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate LLM usage by %s: %w", field, err)
	}

	out := make([]UsageRow, len(rows))
	for i, row := range rows {
		key := row.Purpose
		if field == llmrequestevent.FieldModel {
			key = row.Model
		}
		out[i] = UsageRow{
			Key:          key,
			Requests:     row.Requests,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
		}
	}
	return out, nil
}

func entLLMEventToLLMEvent(e *ent.LLMRequestEvent) LLMEvent {
	return LLMEvent{
		ID:           e.ID,
		Sequence:     e.Sequence,
		Timestamp:    e.Timestamp,
		Provider:     e.Provider,
		Model:        e.Model,
		Purpose:      e.Purpose,
		InputTokens:  e.InputTokens,
		OutputTokens: e.OutputTokens,
		LatencyMs:    e.LatencyMs,
		Success:      e.Success,
		ErrorMessage: e.ErrorMessage,
		RequestBody:  e.RequestBody,
		ResponseBody: e.ResponseBody,
	}
}
