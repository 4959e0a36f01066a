package analysis

import (
	"sort"
	"strings"

	"github.com/abhisek/numsense/internal/session"
)

// Pattern is the categorical outcome of pattern analysis.
type Pattern string

const (
	// PatternInsufficientData means fewer than MinAttempts were logged.
	PatternInsufficientData Pattern = "insufficient_data"

	// PatternExposureRelated means difficulties look like limited exposure
	// to number activities rather than a stable deficit.
	PatternExposureRelated Pattern = "exposure_related"

	// PatternPossibleSignal means errors were systematic and did not
	// respond to practice. Provisional screening signal only, never a
	// diagnosis.
	PatternPossibleSignal Pattern = "possible_dyscalculia_signal"

	// PatternUnclear means the evidence cuts both ways.
	PatternUnclear Pattern = "unclear"
)

// MinAttempts is the minimum attempt count before any pattern can be read.
const MinAttempts = 3

// maxConfidence caps classifier confidence below certainty; screening
// output is never treated as certain.
const maxConfidence = 0.95

// Result is the outcome of AnalyzePatterns. Recomputed on every call,
// never cached.
type Result struct {
	Pattern    Pattern            `json:"pattern"`
	Confidence float64            `json:"confidence"`
	Reasoning  string             `json:"reasoning"`
	SubScores  map[string]float64 `json:"sub_scores"`
}

// insufficientResult is returned whenever the log is too short to read.
func insufficientResult() Result {
	return Result{
		Pattern:    PatternInsufficientData,
		Confidence: 0,
		Reasoning:  "Not enough attempts to identify patterns yet.",
		SubScores:  map[string]float64{},
	}
}

// AnalyzePatterns classifies the full attempt log into a pattern with
// confidence, reasoning and sub-scores. Pure function of the log: calling
// it twice on the same snapshot yields identical results.
func AnalyzePatterns(attempts []session.Attempt) Result {
	if len(attempts) < MinAttempts {
		return insufficientResult()
	}

	quantity := session.FilterByType(attempts, session.TaskQuantity)
	comparison := session.FilterByType(attempts, session.TaskComparison)
	symbol := session.FilterByType(attempts, session.TaskSymbol)

	qs := AnalyzeStability(quantity)
	cs := AnalyzeStability(comparison)
	ss := AnalyzeStability(symbol)

	var rates []float64
	for _, subset := range [][]session.Attempt{quantity, comparison, symbol} {
		if len(subset) >= MinAttempts {
			rates = append(rates, improvementRate(subset))
		}
	}

	avgImprovement := 0.0
	if len(rates) > 0 {
		sum := 0.0
		for _, r := range rates {
			sum += r
		}
		avgImprovement = sum / float64(len(rates))
	}

	confidence := float64(len(attempts)) / 10
	if len(rates) > 0 {
		confidence++
	}
	if confidence > maxConfidence {
		confidence = maxConfidence
	}

	return Result{
		Pattern:    determinePattern(qs, cs, ss, avgImprovement),
		Confidence: confidence,
		Reasoning:  buildReasoning(qs, cs, ss, avgImprovement),
		SubScores: map[string]float64{
			"quantity":    qs.Score,
			"comparison":  cs.Score,
			"symbol":      ss.Score,
			"improvement": avgImprovement,
		},
	}
}

// improvementRate is second-half accuracy minus first-half accuracy over
// the subset sorted by timestamp (untimed attempts sort first), clamped
// to [-1, 1]. Zero below three attempts.
func improvementRate(attempts []session.Attempt) float64 {
	if len(attempts) < MinAttempts {
		return 0
	}

	sorted := make([]session.Attempt, len(attempts))
	copy(sorted, attempts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp < sorted[j].Timestamp
	})

	mid := len(sorted) / 2
	first := accuracy(sorted[:mid])
	second := accuracy(sorted[mid:])

	return clamp(second-first, -1, 1)
}

func accuracy(attempts []session.Attempt) float64 {
	if len(attempts) == 0 {
		return 0
	}
	correct := 0
	for _, a := range attempts {
		if a.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(attempts))
}

// determinePattern applies the decision rules in priority order;
// the first match wins.
func determinePattern(quantity, comparison, symbol Stability, improvement float64) Pattern {
	hasConsistentErrors := quantity.Stability == StabilityConsistentErrors ||
		comparison.Stability == StabilityConsistentErrors ||
		symbol.Stability == StabilityConsistentErrors

	lowImprovement := improvement < 0.1
	highErrors := quantity.ErrorRate > 0.4 || comparison.ErrorRate > 0.4

	if hasConsistentErrors && (lowImprovement || highErrors) {
		return PatternPossibleSignal
	}
	if improvement > 0.2 || (!hasConsistentErrors && !highErrors) {
		return PatternExposureRelated
	}
	return PatternUnclear
}

// buildReasoning concatenates every triggered observation. The clause
// wording is fixed; downstream narrative text keys off it.
func buildReasoning(quantity, comparison, symbol Stability, improvement float64) string {
	var reasons []string

	if quantity.ErrorRate > 0.3 {
		reasons = append(reasons, "quantity recognition showed elevated error rates")
	}
	if comparison.ErrorRate > 0.3 {
		reasons = append(reasons, "comparison tasks were frequently challenging")
	}
	if symbol.ErrorRate > 0.4 {
		reasons = append(reasons, "symbol-based tasks were notably difficult")
	}
	if quantity.Stability == StabilityConsistentErrors {
		reasons = append(reasons, "quantity errors were consistent rather than variable")
	}
	if symbol.Stability == StabilityConsistentErrors {
		reasons = append(reasons, "symbol errors repeated in similar patterns")
	}
	if improvement > 0.2 {
		reasons = append(reasons, "performance improved notably with practice")
	}
	if improvement < 0.05 {
		reasons = append(reasons, "practice did not lead to noticeable improvement")
	}

	if len(reasons) == 0 {
		return "Performance was generally stable across tasks."
	}
	return strings.Join(reasons, "; ") + "."
}

// OverallScore is the consumer-facing 0-100 score blending improvement
// with the mean of the three task-type stability scores.
func OverallScore(attempts []session.Attempt) float64 {
	res := AnalyzePatterns(attempts)

	score := 70 + res.SubScores["improvement"]*20
	avgSub := (res.SubScores["quantity"] + res.SubScores["comparison"] + res.SubScores["symbol"]) / 3
	score = score*0.4 + avgSub*0.6

	return clamp(score, 0, 100)
}
