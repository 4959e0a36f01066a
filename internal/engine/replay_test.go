package engine

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/abhisek/numsense/internal/session"
	"github.com/abhisek/numsense/internal/store"
)

func openEngineStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "numsense.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestReplayRestoresSessions(t *testing.T) {
	st := openEngineStore(t)
	ctx := context.Background()

	diff := 4
	writer := New(Config{Events: st.EventRepo()})
	writer.RecordAttempt(ctx, "sess-1", session.Attempt{
		TaskType:       session.TaskQuantity,
		Correct:        true,
		SelectedAnswer: float64(7),
		CorrectAnswer:  float64(7),
		Latency:        2.5,
		Attempts:       1,
		Timestamp:      100,
		Difficulty:     &diff,
	})
	writer.RecordAttempt(ctx, "sess-1", session.Attempt{
		TaskType:       session.TaskSymbol,
		Correct:        false,
		SelectedAnswer: "6",
		CorrectAnswer:  "9",
		Latency:        4,
		Attempts:       2,
		Timestamp:      101,
	})
	writer.RecordExposure(ctx, "sess-1", session.Record{"app": "counting-game"})
	writer.RecordStressIndicator(ctx, "sess-2", session.Record{"kind": "long_pause"})

	// A fresh engine on the same event log sees both sessions.
	reader := New(Config{Events: st.EventRepo()})
	if err := reader.LoadFromEvents(ctx); err != nil {
		t.Fatalf("LoadFromEvents: %v", err)
	}

	if got := len(reader.SessionIDs()); got != 2 {
		t.Fatalf("session count = %d, want 2", got)
	}

	s, err := reader.Session("sess-1")
	if err != nil {
		t.Fatalf("Session: %v", err)
	}
	attempts := s.Attempts()
	if len(attempts) != 2 {
		t.Fatalf("attempt count = %d, want 2", len(attempts))
	}

	first := attempts[0]
	if first.TaskType != session.TaskQuantity || !first.Correct {
		t.Errorf("first attempt = %+v", first)
	}
	if first.Difficulty == nil || *first.Difficulty != 4 {
		t.Errorf("difficulty = %v, want 4", first.Difficulty)
	}
	if first.SelectedAnswer != float64(7) {
		t.Errorf("selected answer = %v (%T), want 7", first.SelectedAnswer, first.SelectedAnswer)
	}

	second := attempts[1]
	if second.SelectedAnswer != "6" || second.CorrectAnswer != "9" {
		t.Errorf("second attempt answers = %v/%v", second.SelectedAnswer, second.CorrectAnswer)
	}
	if second.Attempts != 2 || second.Timestamp != 101 {
		t.Errorf("second attempt = %+v", second)
	}

	if got := len(s.Exposures()); got != 1 {
		t.Errorf("exposures = %d, want 1", got)
	}

	s2, err := reader.Session("sess-2")
	if err != nil {
		t.Fatalf("Session sess-2: %v", err)
	}
	if got := len(s2.StressIndicators()); got != 1 {
		t.Errorf("stress indicators = %d, want 1", got)
	}
}

func TestSaveSnapshotPersistsSummaries(t *testing.T) {
	st := openEngineStore(t)
	ctx := context.Background()

	e := New(Config{Events: st.EventRepo(), Snapshots: st.SnapshotRepo()})
	recordN(e, "sess-1", 6, true)

	if err := e.SaveSnapshot(ctx, 42); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}

	snap, err := st.SnapshotRepo().Latest(ctx)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected a snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}

	summary, ok := snap.Data.Sessions["sess-1"]
	if !ok {
		t.Fatalf("snapshot missing sess-1: %+v", snap.Data.Sessions)
	}
	if summary.Attempts != 6 {
		t.Errorf("attempts = %d, want 6", summary.Attempts)
	}
	if summary.Pattern == "" || summary.Score <= 0 {
		t.Errorf("incomplete summary: %+v", summary)
	}
}
