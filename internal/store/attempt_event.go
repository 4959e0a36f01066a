package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/numsense/ent"
	"github.com/abhisek/numsense/ent/attemptevent"
	"github.com/abhisek/numsense/ent/exposureevent"
	"github.com/abhisek/numsense/ent/stressevent"
)

func (r *eventRepo) AppendAttemptEvent(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	attempts := data.Attempts
	if attempts < 1 {
		attempts = 1
	}

	builder := r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetTaskType(data.TaskType).
		SetCorrect(data.Correct).
		SetSelectedAnswer(encodeAnswer(data.SelectedAnswer)).
		SetCorrectAnswer(encodeAnswer(data.CorrectAnswer)).
		SetLatency(data.Latency).
		SetAttempts(attempts).
		SetClientTimestamp(data.ClientTimestamp)

	if data.Difficulty != nil {
		builder = builder.SetDifficulty(*data.Difficulty)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

// SessionIDs returns the distinct session identifiers across every event
// type. A session that only logged exposures or stress indicators still
// counts; replay must not lose it.
func (r *eventRepo) SessionIDs(ctx context.Context) ([]string, error) {
	attemptIDs, err := r.client.AttemptEvent.Query().
		GroupBy(attemptevent.FieldSessionID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempt session IDs: %w", err)
	}

	exposureIDs, err := r.client.ExposureEvent.Query().
		GroupBy(exposureevent.FieldSessionID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query exposure session IDs: %w", err)
	}

	stressIDs, err := r.client.StressEvent.Query().
		GroupBy(stressevent.FieldSessionID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query stress session IDs: %w", err)
	}

	seen := make(map[string]struct{})
	var out []string
	for _, ids := range [][]string{attemptIDs, exposureIDs, stressIDs} {
		for _, id := range ids {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out, nil
}

func (r *eventRepo) SessionAttempts(ctx context.Context, sessionID string) ([]AttemptEventData, error) {
	events, err := r.client.AttemptEvent.Query().
		Where(attemptevent.SessionID(sessionID)).
		Order(ent.Asc(attemptevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session attempts: %w", err)
	}

	out := make([]AttemptEventData, len(events))
	for i, e := range events {
		out[i] = AttemptEventData{
			SessionID:       e.SessionID,
			TaskType:        e.TaskType,
			Correct:         e.Correct,
			SelectedAnswer:  decodeAnswer(e.SelectedAnswer),
			CorrectAnswer:   decodeAnswer(e.CorrectAnswer),
			Latency:         e.Latency,
			Attempts:        e.Attempts,
			ClientTimestamp: e.ClientTimestamp,
			Difficulty:      e.Difficulty,
		}
	}
	return out, nil
}

// encodeAnswer serializes an answer value to JSON for storage.
// Answers are caller-defined (numbers, strings, lists).
func encodeAnswer(v any) string {
	if v == nil {
		return ""
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

// decodeAnswer restores an answer value from its stored JSON form.
func decodeAnswer(s string) any {
	if s == "" {
		return nil
	}
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return s
	}
	return v
}
