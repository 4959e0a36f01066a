package session

import (
	"sync"
	"testing"
)

func TestErrorKey(t *testing.T) {
	a := Attempt{TaskType: TaskSymbol, SelectedAnswer: 6, CorrectAnswer: 9}
	if got := a.ErrorKey(); got != "6-9" {
		t.Fatalf("ErrorKey = %q, want %q", got, "6-9")
	}
	if got := a.GlobalErrorKey(); got != "symbol-6-9" {
		t.Fatalf("GlobalErrorKey = %q, want %q", got, "symbol-6-9")
	}
}

func TestErrorKeyMixedTypes(t *testing.T) {
	// Answers are opaque; string and numeric forms must both key cleanly.
	a := Attempt{TaskType: TaskComparison, SelectedAnswer: "left", CorrectAnswer: 3.5}
	if got := a.ErrorKey(); got != "left-3.5" {
		t.Fatalf("ErrorKey = %q, want %q", got, "left-3.5")
	}
}

func TestFilterByType(t *testing.T) {
	attempts := []Attempt{
		{TaskType: TaskQuantity},
		{TaskType: TaskSymbol},
		{TaskType: TaskQuantity},
		{TaskType: TaskFlashCounting},
	}

	got := FilterByType(attempts, TaskQuantity)
	if len(got) != 2 {
		t.Fatalf("expected 2 quantity attempts, got %d", len(got))
	}

	if got := FilterByType(attempts, TaskOrder); got != nil {
		t.Fatalf("expected nil for absent type, got %v", got)
	}
}

func TestSessionAppendAndSnapshot(t *testing.T) {
	st := NewStore()
	s := st.GetOrCreate("sess-1")

	s.AppendAttempt(Attempt{TaskType: TaskQuantity, Correct: true})
	s.AppendExposure(Record{"format": "flash"})
	s.AppendStressIndicator(Record{"kind": "pause"})

	if s.AttemptCount() != 1 {
		t.Fatalf("attempt count = %d, want 1", s.AttemptCount())
	}

	// Reads are snapshots: mutating the returned slice must not affect
	// the session.
	attempts := s.Attempts()
	attempts[0].Correct = false
	if !s.Attempts()[0].Correct {
		t.Fatal("snapshot mutation leaked into the session")
	}

	if len(s.Exposures()) != 1 || len(s.StressIndicators()) != 1 {
		t.Fatal("exposure or stress record missing")
	}
}

func TestStoreGetUnknown(t *testing.T) {
	st := NewStore()
	if s, ok := st.Get("missing"); ok || s != nil {
		t.Fatalf("expected (nil, false) for unknown session, got (%v, %v)", s, ok)
	}
}

func TestStoreGetOrCreateIdempotent(t *testing.T) {
	st := NewStore()
	a := st.GetOrCreate("sess-1")
	b := st.GetOrCreate("sess-1")
	if a != b {
		t.Fatal("GetOrCreate returned distinct sessions for the same ID")
	}
	if a.ID() != "sess-1" {
		t.Fatalf("ID = %q, want %q", a.ID(), "sess-1")
	}
}

func TestStoreConcurrentAppends(t *testing.T) {
	st := NewStore()
	const goroutines = 8
	const perGoroutine = 50

	var wg sync.WaitGroup
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := st.GetOrCreate("shared")
			for range perGoroutine {
				s.AppendAttempt(Attempt{TaskType: TaskQuantity, Correct: true})
			}
		}()
	}
	wg.Wait()

	s, _ := st.Get("shared")
	if got := s.AttemptCount(); got != goroutines*perGoroutine {
		t.Fatalf("attempt count = %d, want %d", got, goroutines*perGoroutine)
	}
}

func TestStoreIDs(t *testing.T) {
	st := NewStore()
	st.GetOrCreate("a")
	st.GetOrCreate("b")

	ids := st.IDs()
	if len(ids) != 2 {
		t.Fatalf("expected 2 IDs, got %d", len(ids))
	}
}
