// Package engine is the composition root for the assessment analytics:
// it owns the in-memory session store and fans recorded observations out
// to the analyzers, the classifier, the flash controller, the event log
// and the insight service.
package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/numsense/internal/analysis"
	"github.com/abhisek/numsense/internal/explain"
	"github.com/abhisek/numsense/internal/features"
	"github.com/abhisek/numsense/internal/flash"
	"github.com/abhisek/numsense/internal/narrative"
	"github.com/abhisek/numsense/internal/session"
	"github.com/abhisek/numsense/internal/store"
)

// ErrSessionNotFound is returned by read operations on unknown sessions.
// Record operations never return it; they create the session instead.
var ErrSessionNotFound = errors.New("session not found")

// Config wires the engine's optional collaborators. All fields may be
// nil: without Events nothing is persisted, without Insight the Insight
// method always degrades to the local narrative.
type Config struct {
	Events    store.EventRepo
	Snapshots store.SnapshotRepo
	Insight   *narrative.Service
}

// Engine exposes every operation of the analytics service over an
// in-memory session store, with best-effort event persistence.
type Engine struct {
	sessions  *session.Store
	events    store.EventRepo
	snapshots store.SnapshotRepo
	insight   *narrative.Service
}

// New creates an Engine with an empty session store.
func New(cfg Config) *Engine {
	return &Engine{
		sessions:  session.NewStore(),
		events:    cfg.Events,
		snapshots: cfg.Snapshots,
		insight:   cfg.Insight,
	}
}

// RecordAttempt appends a task attempt to the session, creating the
// session on first reference. Persistence is best-effort: an event-log
// failure is reported on stderr but never fails the recording.
func (e *Engine) RecordAttempt(ctx context.Context, sessionID string, a session.Attempt) {
	e.sessions.GetOrCreate(sessionID).AppendAttempt(a)

	if e.events == nil {
		return
	}
	err := e.events.AppendAttemptEvent(ctx, store.AttemptEventData{
		SessionID:       sessionID,
		TaskType:        string(a.TaskType),
		Correct:         a.Correct,
		SelectedAnswer:  a.SelectedAnswer,
		CorrectAnswer:   a.CorrectAnswer,
		Latency:         a.Latency,
		Attempts:        a.Attempts,
		ClientTimestamp: a.Timestamp,
		Difficulty:      a.Difficulty,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to persist attempt event: %v\n", err)
	}
}

// RecordExposure appends a prior-exposure record to the session.
func (e *Engine) RecordExposure(ctx context.Context, sessionID string, r session.Record) {
	e.sessions.GetOrCreate(sessionID).AppendExposure(r)

	if e.events == nil {
		return
	}
	err := e.events.AppendExposureEvent(ctx, store.ExposureEventData{
		SessionID: sessionID,
		Payload:   r,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to persist exposure event: %v\n", err)
	}
}

// RecordStressIndicator appends a stress indicator to the session.
func (e *Engine) RecordStressIndicator(ctx context.Context, sessionID string, r session.Record) {
	e.sessions.GetOrCreate(sessionID).AppendStressIndicator(r)

	if e.events == nil {
		return
	}
	err := e.events.AppendStressEvent(ctx, store.StressEventData{
		SessionID: sessionID,
		Payload:   r,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to persist stress event: %v\n", err)
	}
}

// Session returns the session for id, or ErrSessionNotFound.
func (e *Engine) Session(sessionID string) (*session.Session, error) {
	s, ok := e.sessions.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// SessionIDs returns the identifiers of all in-memory sessions.
func (e *Engine) SessionIDs() []string {
	return e.sessions.IDs()
}

// Analyze classifies the session's attempt log into a pattern with
// confidence, reasoning and sub-scores.
func (e *Engine) Analyze(sessionID string) (analysis.Result, error) {
	s, ok := e.sessions.Get(sessionID)
	if !ok {
		return analysis.Result{}, ErrSessionNotFound
	}
	return analysis.AnalyzePatterns(s.Attempts()), nil
}

// Score returns the 0-100 overall performance score.
func (e *Engine) Score(sessionID string) (float64, error) {
	s, ok := e.sessions.Get(sessionID)
	if !ok {
		return 0, ErrSessionNotFound
	}
	return analysis.OverallScore(s.Attempts()), nil
}

// ScoreReport is the consumer-facing score summary: the overall score
// together with the classification it was derived from.
type ScoreReport struct {
	Score      float64            `json:"score"`
	Pattern    analysis.Pattern   `json:"pattern"`
	Confidence float64            `json:"confidence"`
	SubScores  map[string]float64 `json:"sub_scores"`
}

// ScoreSession returns the overall score with the pattern, confidence
// and sub-scores it was derived from, computed from one snapshot of the
// attempt log.
func (e *Engine) ScoreSession(sessionID string) (ScoreReport, error) {
	s, ok := e.sessions.Get(sessionID)
	if !ok {
		return ScoreReport{}, ErrSessionNotFound
	}

	attempts := s.Attempts()
	res := analysis.AnalyzePatterns(attempts)
	return ScoreReport{
		Score:      analysis.OverallScore(attempts),
		Pattern:    res.Pattern,
		Confidence: res.Confidence,
		SubScores:  res.SubScores,
	}, nil
}

// Explain renders the session analysis as a tiered narrative.
func (e *Engine) Explain(sessionID string) (string, error) {
	res, err := e.Analyze(sessionID)
	if err != nil {
		return "", err
	}
	return explain.Narrative(res), nil
}

// Classify runs the feature-based probability model and the continuation
// policy over the session's attempt log.
func (e *Engine) Classify(sessionID string) (features.Prediction, features.Decision, error) {
	s, ok := e.sessions.Get(sessionID)
	if !ok {
		return features.Prediction{}, features.Decision{}, ErrSessionNotFound
	}
	attempts := s.Attempts()
	pred := features.Predict(attempts)
	dec := features.ShouldExtendTesting(pred.Probability, pred.Confidence, len(attempts))
	return pred, dec, nil
}

// NextStimulusDuration computes the flash exposure duration for the
// session at the given difficulty. Unknown sessions get the base duration
// for the difficulty, matching an empty attempt log.
func (e *Engine) NextStimulusDuration(sessionID string, difficulty int) flash.Duration {
	var attempts []session.Attempt
	if s, ok := e.sessions.Get(sessionID); ok {
		attempts = s.Attempts()
	}
	return flash.NextDuration(attempts, difficulty)
}

// Insight produces the structured interpretation of a session. When no
// insight service is configured, or every provider fails, it degrades to
// an insight assembled from the local analyzer and narrative.
func (e *Engine) Insight(ctx context.Context, sessionID string) (*narrative.Insight, error) {
	s, ok := e.sessions.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	attempts := s.Attempts()
	res := analysis.AnalyzePatterns(attempts)

	if e.insight != nil {
		data := narrative.SessionData{
			SessionID:        sessionID,
			Attempts:         attempts,
			Exposures:        s.Exposures(),
			StressIndicators: s.StressIndicators(),
		}
		insight, err := e.insight.Insight(ctx, data)
		if err == nil {
			return insight, nil
		}
		fmt.Fprintf(os.Stderr, "warning: insight generation failed, using local narrative: %v\n", err)
	}

	return narrative.Fallback(res, analysis.OverallScore(attempts), explain.Narrative(res)), nil
}

// LoadFromEvents hydrates the in-memory session store by replaying the
// persisted event log. Safe to call on a fresh engine at startup.
func (e *Engine) LoadFromEvents(ctx context.Context) error {
	if e.events == nil {
		return nil
	}

	ids, err := e.events.SessionIDs(ctx)
	if err != nil {
		return fmt.Errorf("replay session IDs: %w", err)
	}

	for _, id := range ids {
		s := e.sessions.GetOrCreate(id)

		attempts, err := e.events.SessionAttempts(ctx, id)
		if err != nil {
			return fmt.Errorf("replay attempts for %s: %w", id, err)
		}
		for _, a := range attempts {
			s.AppendAttempt(session.Attempt{
				TaskType:       session.TaskType(a.TaskType),
				Correct:        a.Correct,
				SelectedAnswer: a.SelectedAnswer,
				CorrectAnswer:  a.CorrectAnswer,
				Latency:        a.Latency,
				Attempts:       a.Attempts,
				Timestamp:      a.ClientTimestamp,
				Difficulty:     a.Difficulty,
			})
		}

		exposures, err := e.events.SessionExposures(ctx, id)
		if err != nil {
			return fmt.Errorf("replay exposures for %s: %w", id, err)
		}
		for _, r := range exposures {
			s.AppendExposure(r)
		}

		stress, err := e.events.SessionStressIndicators(ctx, id)
		if err != nil {
			return fmt.Errorf("replay stress indicators for %s: %w", id, err)
		}
		for _, r := range stress {
			s.AppendStressIndicator(r)
		}
	}

	return nil
}

// SaveSnapshot captures the current analysis of every session. No-op
// when no snapshot repo is configured.
func (e *Engine) SaveSnapshot(ctx context.Context, sequence int64) error {
	if e.snapshots == nil {
		return nil
	}

	summaries := make(map[string]store.SessionSummary)
	for _, id := range e.sessions.IDs() {
		s, ok := e.sessions.Get(id)
		if !ok {
			continue
		}
		attempts := s.Attempts()
		res := analysis.AnalyzePatterns(attempts)
		pred := features.Predict(attempts)
		summaries[id] = store.SessionSummary{
			Pattern:     string(res.Pattern),
			Confidence:  res.Confidence,
			Probability: pred.Probability,
			Score:       analysis.OverallScore(attempts),
			Attempts:    len(attempts),
		}
	}

	err := e.snapshots.Save(ctx, &store.Snapshot{
		Sequence:  sequence,
		Timestamp: time.Now().UTC(),
		Data: store.SnapshotData{
			Version:  1,
			Sessions: summaries,
		},
	})
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}
