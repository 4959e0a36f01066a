package analysis

import (
	"math"
	"strings"
	"testing"

	"github.com/abhisek/numsense/internal/session"
)

func timedQuantity(correct bool, selected, expected any, ts float64) session.Attempt {
	a := quantityAttempt(correct, selected, expected, 2)
	a.Timestamp = ts
	return a
}

func TestAnalyzePatternsInsufficientData(t *testing.T) {
	attempts := []session.Attempt{
		quantityAttempt(true, 3, 3, 2),
		quantityAttempt(false, 6, 9, 2),
	}

	got := AnalyzePatterns(attempts)
	if got.Pattern != PatternInsufficientData {
		t.Fatalf("pattern = %q, want %q", got.Pattern, PatternInsufficientData)
	}
	if got.Confidence != 0 {
		t.Errorf("confidence = %v, want 0", got.Confidence)
	}
	if got.Reasoning != "Not enough attempts to identify patterns yet." {
		t.Errorf("reasoning = %q", got.Reasoning)
	}
	if got.SubScores == nil || len(got.SubScores) != 0 {
		t.Errorf("sub-scores = %v, want empty map", got.SubScores)
	}
}

func TestAnalyzePatternsPossibleSignal(t *testing.T) {
	// Systematic errors, no improvement over the session.
	var attempts []session.Attempt
	for i := range 6 {
		attempts = append(attempts, timedQuantity(false, 6, 9, float64(i+1)))
	}

	got := AnalyzePatterns(attempts)
	if got.Pattern != PatternPossibleSignal {
		t.Fatalf("pattern = %q, want %q", got.Pattern, PatternPossibleSignal)
	}
	if got.Confidence != 0.95 {
		t.Errorf("confidence = %v, want capped at 0.95", got.Confidence)
	}
	if !strings.Contains(got.Reasoning, "quantity errors were consistent rather than variable") {
		t.Errorf("reasoning missing consistency clause: %q", got.Reasoning)
	}

	// Quantity: 80 - 30 - 10 = 40; untouched task types report 70.
	if got.SubScores["quantity"] != 40 {
		t.Errorf("quantity score = %v, want 40", got.SubScores["quantity"])
	}
	if got.SubScores["comparison"] != 70 || got.SubScores["symbol"] != 70 {
		t.Errorf("no-data scores = %v/%v, want 70/70",
			got.SubScores["comparison"], got.SubScores["symbol"])
	}
	if got.SubScores["improvement"] != 0 {
		t.Errorf("improvement = %v, want 0", got.SubScores["improvement"])
	}
}

func TestAnalyzePatternsExposureRelated(t *testing.T) {
	// Early struggles with varied errors, then a clean second half.
	attempts := []session.Attempt{
		timedQuantity(false, 2, 9, 1),
		timedQuantity(false, 4, 7, 2),
		timedQuantity(false, 1, 5, 3),
		timedQuantity(true, 9, 9, 4),
		timedQuantity(true, 7, 7, 5),
		timedQuantity(true, 5, 5, 6),
	}

	got := AnalyzePatterns(attempts)
	if got.Pattern != PatternExposureRelated {
		t.Fatalf("pattern = %q, want %q", got.Pattern, PatternExposureRelated)
	}
	if got.SubScores["improvement"] != 1 {
		t.Errorf("improvement = %v, want 1", got.SubScores["improvement"])
	}
	if !strings.Contains(got.Reasoning, "performance improved notably with practice") {
		t.Errorf("reasoning missing improvement clause: %q", got.Reasoning)
	}
}

func TestAnalyzePatternsUnclear(t *testing.T) {
	// High error rate, but the errors are scattered and performance is
	// flat: neither rule fires cleanly.
	attempts := []session.Attempt{
		timedQuantity(false, 2, 9, 1),
		timedQuantity(false, 4, 7, 2),
		timedQuantity(true, 5, 5, 3),
		timedQuantity(false, 1, 8, 4),
		timedQuantity(false, 3, 6, 5),
		timedQuantity(true, 9, 9, 6),
	}

	got := AnalyzePatterns(attempts)
	if got.Pattern != PatternUnclear {
		t.Fatalf("pattern = %q, want %q", got.Pattern, PatternUnclear)
	}
}

func TestAnalyzePatternsConfidenceGrowsWithData(t *testing.T) {
	// Three single-type attempts: no subset reaches the improvement
	// threshold, so confidence is the bare attempt count term.
	attempts := []session.Attempt{
		{TaskType: session.TaskQuantity, Correct: true},
		{TaskType: session.TaskComparison, Correct: true},
		{TaskType: session.TaskSymbol, Correct: true},
	}

	got := AnalyzePatterns(attempts)
	if math.Abs(got.Confidence-0.3) > 1e-9 {
		t.Fatalf("confidence = %v, want 0.3", got.Confidence)
	}
	if got.Pattern != PatternExposureRelated {
		t.Errorf("pattern = %q, want %q", got.Pattern, PatternExposureRelated)
	}
}

func TestImprovementRateSortsByTimestamp(t *testing.T) {
	// Presented out of order: the correct attempts happened last by clock
	// time, so the improvement must come out positive.
	attempts := []session.Attempt{
		timedQuantity(true, 9, 9, 4),
		timedQuantity(true, 7, 7, 5),
		timedQuantity(true, 5, 5, 6),
		timedQuantity(false, 2, 9, 1),
		timedQuantity(false, 4, 7, 2),
		timedQuantity(false, 1, 5, 3),
	}

	got := AnalyzePatterns(attempts)
	if got.SubScores["improvement"] != 1 {
		t.Fatalf("improvement = %v, want 1", got.SubScores["improvement"])
	}
}

func TestOverallScoreSteadyPerfectSession(t *testing.T) {
	var attempts []session.Attempt
	for i := range 6 {
		attempts = append(attempts, timedQuantity(true, i, i, float64(i+1)))
	}

	// (70 + 0*20)*0.4 + mean(80, 70, 70)*0.6 = 28 + 44 = 72.
	got := OverallScore(attempts)
	if math.Abs(got-72) > 1e-9 {
		t.Fatalf("score = %v, want 72", got)
	}
}

func TestOverallScoreOrdersByAccuracy(t *testing.T) {
	var strong, weak []session.Attempt
	for i := range 10 {
		strong = append(strong, timedQuantity(i != 0, i, i, float64(i+1)))
		weak = append(weak, timedQuantity(i%3 != 0, i, i+10, float64(i+1)))
	}

	hi := OverallScore(strong)
	lo := OverallScore(weak)
	if hi <= lo {
		t.Fatalf("expected stronger session to score higher: %v <= %v", hi, lo)
	}
	if hi > 100 || lo < 0 {
		t.Fatalf("scores out of range: %v, %v", hi, lo)
	}
}
