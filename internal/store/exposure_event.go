package store

import (
	"context"
	"fmt"

	"github.com/abhisek/numsense/ent"
	"github.com/abhisek/numsense/ent/exposureevent"
	"github.com/abhisek/numsense/ent/stressevent"
)

func (r *eventRepo) AppendExposureEvent(ctx context.Context, data ExposureEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.ExposureEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID)
	if len(data.Payload) > 0 {
		builder = builder.SetPayload(data.Payload)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save exposure event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendStressEvent(ctx context.Context, data StressEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.StressEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID)
	if len(data.Payload) > 0 {
		builder = builder.SetPayload(data.Payload)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save stress event: %w", err)
	}
	return nil
}

func (r *eventRepo) SessionExposures(ctx context.Context, sessionID string) ([]map[string]any, error) {
	events, err := r.client.ExposureEvent.Query().
		Where(exposureevent.SessionID(sessionID)).
		Order(ent.Asc(exposureevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session exposures: %w", err)
	}

	out := make([]map[string]any, len(events))
	for i, e := range events {
		out[i] = e.Payload
	}
	return out, nil
}

func (r *eventRepo) SessionStressIndicators(ctx context.Context, sessionID string) ([]map[string]any, error) {
	events, err := r.client.StressEvent.Query().
		Where(stressevent.SessionID(sessionID)).
		Order(ent.Asc(stressevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session stress indicators: %w", err)
	}

	out := make([]map[string]any, len(events))
	for i, e := range events {
		out[i] = e.Payload
	}
	return out, nil
}
