package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAttemptEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	diff := 4
	events := []AttemptEventData{
		{
			SessionID:       "sess-1",
			TaskType:        "comparison",
			Correct:         true,
			SelectedAnswer:  float64(7),
			CorrectAnswer:   float64(7),
			Latency:         2.4,
			Attempts:        1,
			ClientTimestamp: 100,
			Difficulty:      &diff,
		},
		{
			SessionID:       "sess-1",
			TaskType:        "symbol",
			Correct:         false,
			SelectedAnswer:  "6",
			CorrectAnswer:   "9",
			Latency:         4.1,
			Attempts:        2,
			ClientTimestamp: 105,
		},
	}
	for _, e := range events {
		if err := repo.AppendAttemptEvent(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.SessionAttempts(ctx, "sess-1")
	if err != nil {
		t.Fatalf("session attempts: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 attempts, got %d", len(got))
	}
	if got[0].TaskType != "comparison" || got[1].TaskType != "symbol" {
		t.Errorf("wrong order: %q then %q", got[0].TaskType, got[1].TaskType)
	}
	if got[0].Difficulty == nil || *got[0].Difficulty != 4 {
		t.Errorf("difficulty not preserved: %v", got[0].Difficulty)
	}
	if got[1].Difficulty != nil {
		t.Errorf("expected nil difficulty, got %v", *got[1].Difficulty)
	}
	if got[0].SelectedAnswer != float64(7) {
		t.Errorf("selected answer = %v (%T), want 7", got[0].SelectedAnswer, got[0].SelectedAnswer)
	}
	if got[1].SelectedAnswer != "6" {
		t.Errorf("selected answer = %v, want \"6\"", got[1].SelectedAnswer)
	}
}

func TestSessionIDs(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, id := range []string{"a", "b", "a", "c"} {
		err := repo.AppendAttemptEvent(ctx, AttemptEventData{
			SessionID: id,
			TaskType:  "quantity",
			Correct:   true,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	ids, err := repo.SessionIDs(ctx)
	if err != nil {
		t.Fatalf("session IDs: %v", err)
	}
	if len(ids) != 3 {
		t.Fatalf("expected 3 distinct IDs, got %d: %v", len(ids), ids)
	}
}

func TestSessionIDsSpanAllEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendAttemptEvent(ctx, AttemptEventData{
		SessionID: "with-attempts",
		TaskType:  "quantity",
		Correct:   true,
	})
	if err != nil {
		t.Fatalf("append attempt: %v", err)
	}
	err = repo.AppendExposureEvent(ctx, ExposureEventData{
		SessionID: "exposure-only",
		Payload:   map[string]any{"app": "counting-game"},
	})
	if err != nil {
		t.Fatalf("append exposure: %v", err)
	}
	err = repo.AppendStressEvent(ctx, StressEventData{
		SessionID: "stress-only",
		Payload:   map[string]any{"kind": "long_pause"},
	})
	if err != nil {
		t.Fatalf("append stress: %v", err)
	}

	ids, err := repo.SessionIDs(ctx)
	if err != nil {
		t.Fatalf("session IDs: %v", err)
	}

	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		seen[id] = true
	}
	// Sessions without attempts must still be discoverable for replay.
	for _, want := range []string{"with-attempts", "exposure-only", "stress-only"} {
		if !seen[want] {
			t.Errorf("session %q missing from IDs: %v", want, ids)
		}
	}
	if len(ids) != 3 {
		t.Errorf("expected 3 IDs, got %d: %v", len(ids), ids)
	}
}

func TestExposureAndStressEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendExposureEvent(ctx, ExposureEventData{
		SessionID: "sess-1",
		Payload:   map[string]any{"format": "flash_counting", "seen": true},
	})
	if err != nil {
		t.Fatalf("append exposure: %v", err)
	}
	err = repo.AppendStressEvent(ctx, StressEventData{
		SessionID: "sess-1",
		Payload:   map[string]any{"kind": "rapid_clicking"},
	})
	if err != nil {
		t.Fatalf("append stress: %v", err)
	}

	exposures, err := repo.SessionExposures(ctx, "sess-1")
	if err != nil {
		t.Fatalf("session exposures: %v", err)
	}
	if len(exposures) != 1 || exposures[0]["format"] != "flash_counting" {
		t.Errorf("unexpected exposures: %v", exposures)
	}

	stress, err := repo.SessionStressIndicators(ctx, "sess-1")
	if err != nil {
		t.Fatalf("session stress: %v", err)
	}
	if len(stress) != 1 || stress[0]["kind"] != "rapid_clicking" {
		t.Errorf("unexpected stress indicators: %v", stress)
	}
}

func TestLLMEventsQueryAndUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appends := []LLMRequestEventData{
		{Provider: "groq", Model: "llama-3.1-8b-instant", Purpose: "session-insight", InputTokens: 100, OutputTokens: 50, Success: true},
		{Provider: "groq", Model: "llama-3.1-8b-instant", Purpose: "session-insight", InputTokens: 120, OutputTokens: 60, Success: false, ErrorMessage: "rate limited"},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "report", InputTokens: 200, OutputTokens: 80, Success: true},
	}
	for _, a := range appends {
		if err := repo.AppendLLMRequest(ctx, a); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	// Newest first.
	events, err := repo.QueryLLMEvents(ctx, LLMQueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	if events[0].Purpose != "report" {
		t.Errorf("expected newest first, got %q", events[0].Purpose)
	}

	// Filter by failure.
	failed, err := repo.QueryLLMEvents(ctx, LLMQueryOpts{FailedOnly: true})
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(failed) != 1 || failed[0].ErrorMessage != "rate limited" {
		t.Errorf("unexpected failed events: %v", failed)
	}

	// Fetch one by ID.
	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Model != "gemini-2.5-flash" {
		t.Errorf("unexpected event: %v", got)
	}

	// Missing ID returns nil, nil.
	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing event, got %v", missing)
	}

	// Usage by purpose.
	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	totals := map[string]UsageRow{}
	for _, row := range byPurpose {
		totals[row.Key] = row
	}
	if totals["session-insight"].Requests != 2 {
		t.Errorf("session-insight requests = %d, want 2", totals["session-insight"].Requests)
	}
	if totals["session-insight"].InputTokens != 220 {
		t.Errorf("session-insight input tokens = %d, want 220", totals["session-insight"].InputTokens)
	}
	if totals["report"].OutputTokens != 80 {
		t.Errorf("report output tokens = %d, want 80", totals["report"].OutputTokens)
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	// Save a snapshot.
	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version: 1,
			Sessions: map[string]SessionSummary{
				"sess-1": {Pattern: "unclear", Confidence: 0.4, Score: 62.5, Attempts: 6},
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	// Retrieve it.
	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Sessions["sess-1"].Pattern != "unclear" {
		t.Errorf("session summary not preserved: %+v", snap.Data.Sessions)
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: i + 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
	if snap.Data.Version != 3 {
		t.Errorf("data.version = %d, want 3", snap.Data.Version)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune to keep 5.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	// Count remaining snapshots.
	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	// Latest should still be sequence 7.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// Save only 2 snapshots.
	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"attempt_events", "exposure_events", "stress_events", "llm_request_events", "snapshots"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("table %s missing: %v", table, err)
		}
	}
}
