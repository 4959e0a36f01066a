package engine

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/numsense/internal/analysis"
	"github.com/abhisek/numsense/internal/features"
	"github.com/abhisek/numsense/internal/llm"
	"github.com/abhisek/numsense/internal/narrative"
	"github.com/abhisek/numsense/internal/session"
)

func newBareEngine() *Engine {
	return New(Config{})
}

func recordN(e *Engine, id string, n int, correct bool) {
	ctx := context.Background()
	for i := range n {
		e.RecordAttempt(ctx, id, session.Attempt{
			TaskType:       session.TaskQuantity,
			Correct:        correct,
			SelectedAnswer: i,
			CorrectAnswer:  i + 10,
			Latency:        2,
			Attempts:       1,
			Timestamp:      float64(i + 1),
		})
	}
}

func TestRecordAttemptCreatesSession(t *testing.T) {
	e := newBareEngine()
	recordN(e, "sess-1", 1, true)

	s, err := e.Session("sess-1")
	if err != nil {
		t.Fatalf("Session: %v", err)
	}
	if s.AttemptCount() != 1 {
		t.Fatalf("attempt count = %d, want 1", s.AttemptCount())
	}
}

func TestReadOperationsOnUnknownSession(t *testing.T) {
	e := newBareEngine()

	if _, err := e.Session("missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Session error = %v", err)
	}
	if _, err := e.Analyze("missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Analyze error = %v", err)
	}
	if _, err := e.Score("missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Score error = %v", err)
	}
	if _, err := e.Explain("missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Explain error = %v", err)
	}
	if _, _, err := e.Classify("missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Classify error = %v", err)
	}
	if _, err := e.Insight(context.Background(), "missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Insight error = %v", err)
	}
}

func TestAnalyzeShortSession(t *testing.T) {
	e := newBareEngine()
	recordN(e, "sess-1", 2, true)

	res, err := e.Analyze("sess-1")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.Pattern != analysis.PatternInsufficientData {
		t.Fatalf("pattern = %q, want %q", res.Pattern, analysis.PatternInsufficientData)
	}
}

func TestClassifyFeedsCountIntoPolicy(t *testing.T) {
	e := newBareEngine()
	recordN(e, "sess-1", 9, true) // all correct, probability stays low

	pred, dec, err := e.Classify("sess-1")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if pred.Confidence != 0.45 {
		t.Errorf("confidence = %v, want 0.45 at 9 attempts", pred.Confidence)
	}
	// Probability is low but confidence is still undecided: the policy
	// asks for a few more tasks to settle.
	want := features.Decision{ShouldContinue: true, AdditionalTests: 4}
	if dec != want {
		t.Errorf("decision = %+v, want %+v", dec, want)
	}
}

func TestScoreSession(t *testing.T) {
	e := newBareEngine()
	recordN(e, "sess-1", 6, true)

	rep, err := e.ScoreSession("sess-1")
	if err != nil {
		t.Fatalf("ScoreSession: %v", err)
	}

	// Steady all-correct session: (70+0)*0.4 + mean(80,70,70)*0.6 = 72.
	if rep.Score != 72 {
		t.Errorf("score = %v, want 72", rep.Score)
	}
	if rep.Pattern != analysis.PatternExposureRelated {
		t.Errorf("pattern = %q, want %q", rep.Pattern, analysis.PatternExposureRelated)
	}
	if rep.Confidence != 0.95 {
		t.Errorf("confidence = %v, want 0.95", rep.Confidence)
	}
	for _, key := range []string{"quantity", "comparison", "symbol", "improvement"} {
		if _, ok := rep.SubScores[key]; !ok {
			t.Errorf("sub-scores missing %q: %v", key, rep.SubScores)
		}
	}

	if _, err := e.ScoreSession("missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("ScoreSession error = %v", err)
	}
}

func TestNextStimulusDurationUnknownSession(t *testing.T) {
	e := newBareEngine()

	got := e.NextStimulusDuration("missing", 3)
	if got.DurationMs != 2500 {
		t.Fatalf("duration = %d, want base 2500", got.DurationMs)
	}
	if got.PerformancePct != nil {
		t.Errorf("performance pct = %v, want nil", *got.PerformancePct)
	}
}

func TestNextStimulusDurationUsesFlashHistory(t *testing.T) {
	e := newBareEngine()
	ctx := context.Background()
	for i := range 10 {
		e.RecordAttempt(ctx, "sess-1", session.Attempt{
			TaskType: session.TaskFlashCounting,
			Correct:  i < 9,
			Attempts: 1,
		})
	}

	got := e.NextStimulusDuration("sess-1", 3)
	if got.DurationMs != 2100 {
		t.Fatalf("duration = %d, want 2100 at 90%% accuracy", got.DurationMs)
	}
}

func TestInsightDegradesToLocalNarrative(t *testing.T) {
	e := newBareEngine() // no insight service configured
	recordN(e, "sess-1", 6, false)

	got, err := e.Insight(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("Insight: %v", err)
	}
	if got.Source != "local" {
		t.Errorf("source = %q, want local", got.Source)
	}
	if got.Pattern == "" || got.Interpretation == "" {
		t.Errorf("incomplete local insight: %+v", got)
	}
	if !strings.Contains(got.Interpretation, "Suggestions for supporting number development:") {
		t.Errorf("interpretation missing narrative body:\n%s", got.Interpretation)
	}
}

func TestInsightUsesConfiguredService(t *testing.T) {
	content := json.RawMessage(`{
		"pattern": "unclear",
		"confidence": 0.5,
		"score": 60,
		"sub_scores": {"quantity": 55, "comparison": 60, "symbol": 50, "flash_counting": 58},
		"reasoning": "mixed evidence",
		"interpretation": "keep practicing"
	}`)
	svc := narrative.NewService(0, llm.NewMockProvider(llm.MockResponse{Content: content}))

	e := New(Config{Insight: svc})
	recordN(e, "sess-1", 6, true)

	got, err := e.Insight(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("Insight: %v", err)
	}
	if got.Source != "mock" {
		t.Errorf("source = %q, want mock", got.Source)
	}
	if got.Score != 60 {
		t.Errorf("score = %d, want 60", got.Score)
	}
}

func TestInsightFallsBackWhenProvidersFail(t *testing.T) {
	svc := narrative.NewService(0, llm.NewMockProvider()) // empty queue: always fails

	e := New(Config{Insight: svc})
	recordN(e, "sess-1", 6, true)

	got, err := e.Insight(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("Insight: %v", err)
	}
	if got.Source != "local" {
		t.Errorf("source = %q, want local after provider failure", got.Source)
	}
}

func TestSessionIDs(t *testing.T) {
	e := newBareEngine()
	recordN(e, "a", 1, true)
	recordN(e, "b", 1, true)
	e.RecordExposure(context.Background(), "c", session.Record{"app": "counting-game"})

	if got := len(e.SessionIDs()); got != 3 {
		t.Fatalf("session count = %d, want 3", got)
	}
}

func TestSaveSnapshotWithoutRepoIsNoop(t *testing.T) {
	e := newBareEngine()
	recordN(e, "sess-1", 3, true)

	if err := e.SaveSnapshot(context.Background(), 1); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}
}
