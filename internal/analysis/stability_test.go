package analysis

import (
	"math"
	"testing"

	"github.com/abhisek/numsense/internal/session"
)

func quantityAttempt(correct bool, selected, expected any, latency float64) session.Attempt {
	return session.Attempt{
		TaskType:       session.TaskQuantity,
		Correct:        correct,
		SelectedAnswer: selected,
		CorrectAnswer:  expected,
		Latency:        latency,
		Attempts:       1,
	}
}

func TestAnalyzeStabilityNoData(t *testing.T) {
	got := AnalyzeStability(nil)
	if got.Stability != StabilityNoData {
		t.Fatalf("class = %q, want %q", got.Stability, StabilityNoData)
	}
	if got.Score != 70 {
		t.Fatalf("score = %v, want 70", got.Score)
	}
}

func TestAnalyzeStabilityAllCorrect(t *testing.T) {
	attempts := []session.Attempt{
		quantityAttempt(true, 3, 3, 2),
		quantityAttempt(true, 5, 5, 2),
		quantityAttempt(true, 7, 7, 2),
		quantityAttempt(true, 2, 2, 2),
	}

	got := AnalyzeStability(attempts)
	if got.Score != 80 {
		t.Errorf("score = %v, want 80", got.Score)
	}
	if got.Stability != StabilityVariable {
		t.Errorf("class = %q, want %q", got.Stability, StabilityVariable)
	}
	if got.ErrorRate != 0 {
		t.Errorf("error rate = %v, want 0", got.ErrorRate)
	}
	if got.AvgLatency != 2 {
		t.Errorf("avg latency = %v, want 2", got.AvgLatency)
	}
}

func TestAnalyzeStabilityConsistentErrors(t *testing.T) {
	// Same wrong answer for the same target every time.
	attempts := []session.Attempt{
		quantityAttempt(false, 6, 9, 2),
		quantityAttempt(false, 6, 9, 2),
		quantityAttempt(false, 6, 9, 2),
		quantityAttempt(false, 6, 9, 2),
	}

	got := AnalyzeStability(attempts)
	if got.Stability != StabilityConsistentErrors {
		t.Fatalf("class = %q, want %q", got.Stability, StabilityConsistentErrors)
	}
	if got.ErrorConsistency != 1 {
		t.Errorf("consistency = %v, want 1", got.ErrorConsistency)
	}
	// 80 - 1*30 - 1*10 with a flat latency trend.
	if got.Score != 40 {
		t.Errorf("score = %v, want 40", got.Score)
	}
}

func TestAnalyzeStabilityLatencyTrendRewardsSpeedup(t *testing.T) {
	attempts := []session.Attempt{
		quantityAttempt(true, 3, 3, 4),
		quantityAttempt(true, 5, 5, 4),
		quantityAttempt(true, 7, 7, 2),
		quantityAttempt(true, 2, 2, 2),
	}

	// Trend = (4-2)/4 = 0.5, worth +2.5 points.
	got := AnalyzeStability(attempts)
	if math.Abs(got.Score-82.5) > 1e-9 {
		t.Fatalf("score = %v, want 82.5", got.Score)
	}
}

func TestAnalyzeStabilityScoreFloor(t *testing.T) {
	// All wrong, fully consistent, badly slowing down: the raw score goes
	// negative and must clamp to 20.
	attempts := []session.Attempt{
		quantityAttempt(false, 6, 9, 1),
		quantityAttempt(false, 6, 9, 1),
		quantityAttempt(false, 6, 9, 9),
		quantityAttempt(false, 6, 9, 9),
	}

	got := AnalyzeStability(attempts)
	if got.Score != 20 {
		t.Fatalf("score = %v, want 20", got.Score)
	}
}

func TestErrorConsistencyNeedsTwoErrors(t *testing.T) {
	attempts := []session.Attempt{
		quantityAttempt(false, 6, 9, 2),
		quantityAttempt(true, 3, 3, 2),
		quantityAttempt(true, 5, 5, 2),
	}

	if got := AnalyzeStability(attempts).ErrorConsistency; got != 0 {
		t.Fatalf("consistency = %v, want 0 with a single error", got)
	}
}

func TestErrorConsistencyPartialRepeat(t *testing.T) {
	attempts := []session.Attempt{
		quantityAttempt(false, 6, 9, 2),
		quantityAttempt(false, 6, 9, 2),
		quantityAttempt(false, 2, 9, 2),
	}

	got := AnalyzeStability(attempts).ErrorConsistency
	if math.Abs(got-2.0/3.0) > 1e-9 {
		t.Fatalf("consistency = %v, want 2/3", got)
	}
}

func TestLatencyTrendNeedsThreeAttempts(t *testing.T) {
	attempts := []session.Attempt{
		quantityAttempt(true, 3, 3, 10),
		quantityAttempt(true, 5, 5, 1),
	}

	// With only two attempts the trend term is zero: score stays at 80.
	if got := AnalyzeStability(attempts).Score; got != 80 {
		t.Fatalf("score = %v, want 80", got)
	}
}
