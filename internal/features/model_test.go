package features

import (
	"math"
	"testing"

	"github.com/abhisek/numsense/internal/session"
)

func TestPredictBelowMinimum(t *testing.T) {
	got := Predict([]session.Attempt{
		attempt(session.TaskQuantity, false, 2),
		attempt(session.TaskQuantity, false, 2),
	})

	if got.Probability != 0 || got.Confidence != 0 {
		t.Fatalf("expected zero prediction, got %+v", got)
	}
	if got.Importance == nil || len(got.Importance) != 0 {
		t.Fatalf("importance = %v, want empty map", got.Importance)
	}
}

func TestProbabilityWeights(t *testing.T) {
	v := make([]float64, VectorSize)
	v[idxErrSymbol] = 1
	v[idxErrQuantity] = 1
	v[idxErrComparison] = 1
	v[idxErrorConsistency] = 1
	v[idxMultiAttempt] = 1
	v[idxDifficultyAdaptation] = 0.2

	// 0.25 + 0.20 + 0.15 + 0.15 + 0.10 plus the 0.15 adaptation penalty.
	if got := Probability(v); got != 1 {
		t.Fatalf("probability = %v, want 1", got)
	}

	// Adequate adaptation drops the penalty.
	v[idxDifficultyAdaptation] = 0.5
	if got := Probability(v); math.Abs(got-0.85) > 1e-9 {
		t.Fatalf("probability = %v, want 0.85", got)
	}
}

func TestProbabilityAdaptationPenaltyAlone(t *testing.T) {
	// A zero vector still carries the adaptation penalty.
	v := make([]float64, VectorSize)
	if got := Probability(v); math.Abs(got-0.15) > 1e-9 {
		t.Fatalf("probability = %v, want 0.15", got)
	}
}

func TestPredictConfidenceScaling(t *testing.T) {
	build := func(n int) []session.Attempt {
		out := make([]session.Attempt, n)
		for i := range out {
			out[i] = attempt(session.TaskQuantity, true, 2)
		}
		return out
	}

	if got := Predict(build(10)).Confidence; got != 0.5 {
		t.Errorf("confidence at 10 attempts = %v, want 0.5", got)
	}
	if got := Predict(build(40)).Confidence; got != 1 {
		t.Errorf("confidence at 40 attempts = %v, want 1", got)
	}
}

func TestPredictOrdersByAccuracy(t *testing.T) {
	build := func(wrongEvery int) []session.Attempt {
		out := make([]session.Attempt, 10)
		for i := range out {
			a := attempt(session.TaskQuantity, i%wrongEvery != 0, 2)
			a.SelectedAnswer, a.CorrectAnswer = i, i+10
			out[i] = a
		}
		return out
	}

	strong := Predict(build(10)) // one error
	weak := Predict(build(3))    // four errors

	if weak.Probability <= strong.Probability {
		t.Fatalf("expected weaker session to score higher: %v <= %v",
			weak.Probability, strong.Probability)
	}
}

func TestImportanceConstantVector(t *testing.T) {
	v := make([]float64, VectorSize)
	for i := range v {
		v[i] = 0.5
	}

	got := importance(v)
	if len(got) != VectorSize {
		t.Fatalf("importance has %d entries, want %d", len(got), VectorSize)
	}
	for name, val := range got {
		if val != 0 {
			t.Errorf("importance[%s] = %v, want 0 for constant vector", name, val)
		}
	}
}

func TestImportanceCoversAllFeatures(t *testing.T) {
	attempts := []session.Attempt{
		attempt(session.TaskQuantity, true, 2),
		attempt(session.TaskSymbol, false, 4),
		attempt(session.TaskComparison, true, 3),
		attempt(session.TaskQuantity, false, 5),
	}

	got := Predict(attempts).Importance
	for _, name := range Names {
		val, ok := got[name]
		if !ok {
			t.Errorf("importance missing feature %s", name)
			continue
		}
		if val < 0 {
			t.Errorf("importance[%s] = %v, want >= 0", name, val)
		}
	}
}
