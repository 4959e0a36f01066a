package features

import (
	"math"
	"sort"

	"github.com/abhisek/numsense/internal/session"
)

// VectorSize is the fixed length of the feature vector. Consumers index
// by position, so the order below is load-bearing.
const VectorSize = 15

// Feature positions.
const (
	idxErrQuantity = iota
	idxErrComparison
	idxErrSymbol
	idxErrOrder
	idxErrFlash
	idxLatQuantity
	idxLatComparison
	idxLatSymbol
	idxLatOrder
	idxLatFlash
	idxErrorConsistency
	idxLatencyTrend
	idxMultiAttempt
	idxDifficultyAdaptation
	idxStability
)

// Names lists the feature names in vector order.
var Names = [VectorSize]string{
	"quantity_error_rate",
	"comparison_error_rate",
	"symbol_error_rate",
	"order_error_rate",
	"flash_error_rate",
	"quantity_latency",
	"comparison_latency",
	"symbol_latency",
	"order_latency",
	"flash_latency",
	"error_consistency",
	"latency_trend",
	"multiple_attempts",
	"difficulty_adaptation",
	"stability",
}

// minAttempts is the attempt count below which the vector is all zeros.
const minAttempts = 3

// neutral is the value used for features that cannot be computed from an
// empty or too-small subset.
const neutral = 0.5

// Extract derives the fixed-length feature vector from the attempt log.
// Below minAttempts the whole vector is zeros. Total over all logs.
func Extract(attempts []session.Attempt) []float64 {
	v := make([]float64, VectorSize)
	if len(attempts) < minAttempts {
		return v
	}

	byType := map[int][]session.Attempt{
		idxErrQuantity:   session.FilterByType(attempts, session.TaskQuantity),
		idxErrComparison: session.FilterByType(attempts, session.TaskComparison),
		idxErrSymbol:     session.FilterByType(attempts, session.TaskSymbol),
		idxErrOrder:      session.FilterByType(attempts, session.TaskOrder),
		idxErrFlash:      session.FilterByType(attempts, session.TaskFlashCounting),
	}

	// Positions 0-4: error rate per task type, 5-9: squashed mean latency.
	for errIdx, subset := range byType {
		v[errIdx] = errorRate(subset)
		v[errIdx+idxLatQuantity] = squashedLatency(subset)
	}

	v[idxErrorConsistency] = globalErrorConsistency(attempts)
	v[idxLatencyTrend] = globalLatencyTrend(attempts)
	v[idxMultiAttempt] = multiAttemptRate(attempts)
	v[idxDifficultyAdaptation] = difficultyAdaptation(attempts)
	v[idxStability] = performanceStability(attempts)

	return v
}

// errorRate is the fraction of incorrect attempts, or neutral for an
// empty subset.
func errorRate(attempts []session.Attempt) float64 {
	if len(attempts) == 0 {
		return neutral
	}
	wrong := 0
	for _, a := range attempts {
		if !a.Correct {
			wrong++
		}
	}
	return float64(wrong) / float64(len(attempts))
}

// squashedLatency is the mean latency passed through a logistic squash
// centered at 3s with scale 2, or neutral for an empty subset.
func squashedLatency(attempts []session.Attempt) float64 {
	if len(attempts) == 0 {
		return neutral
	}
	sum := 0.0
	for _, a := range attempts {
		sum += a.Latency
	}
	avg := sum / float64(len(attempts))
	return sigmoid((avg - 3) / 2)
}

// globalErrorConsistency measures repeated error patterns across all task
// types: 1 minus the share of unique type+selected+correct keys among
// wrong attempts. Zero below two errors.
func globalErrorConsistency(attempts []session.Attempt) float64 {
	unique := make(map[string]struct{})
	wrong := 0
	for _, a := range attempts {
		if a.Correct {
			continue
		}
		wrong++
		unique[a.GlobalErrorKey()] = struct{}{}
	}
	if wrong < 2 {
		return 0
	}
	return 1 - float64(len(unique))/float64(wrong)
}

// globalLatencyTrend is the first-vs-second-half latency improvement
// squashed to (0,1). Neutral below four attempts or on a zero first half.
func globalLatencyTrend(attempts []session.Attempt) float64 {
	if len(attempts) < 4 {
		return neutral
	}

	mid := len(attempts) / 2
	firstAvg := meanLatency(attempts[:mid])
	secondAvg := meanLatency(attempts[mid:])

	if firstAvg == 0 {
		return neutral
	}

	improvement := (firstAvg - secondAvg) / firstAvg
	return sigmoid(improvement * 5)
}

func meanLatency(attempts []session.Attempt) float64 {
	sum := 0.0
	for _, a := range attempts {
		sum += a.Latency
	}
	return sum / float64(len(attempts))
}

// multiAttemptRate is the fraction of prompts that needed more than one try.
func multiAttemptRate(attempts []session.Attempt) float64 {
	if len(attempts) == 0 {
		return 0
	}
	multi := 0
	for _, a := range attempts {
		if a.Attempts > 1 {
			multi++
		}
	}
	return float64(multi) / float64(len(attempts))
}

// difficultyAdaptation correlates declared difficulty with per-level
// success rate and squashes the coefficient. Neutral when fewer than
// three tagged attempts or fewer than two distinct levels exist, or when
// either series has zero variance.
func difficultyAdaptation(attempts []session.Attempt) float64 {
	byLevel := make(map[int][]bool)
	tagged := 0
	for _, a := range attempts {
		if a.Difficulty == nil {
			continue
		}
		tagged++
		byLevel[*a.Difficulty] = append(byLevel[*a.Difficulty], a.Correct)
	}
	if tagged < 3 || len(byLevel) < 2 {
		return neutral
	}

	levels := make([]float64, 0, len(byLevel))
	for d := range byLevel {
		levels = append(levels, float64(d))
	}
	sort.Float64s(levels)

	rates := make([]float64, len(levels))
	for i, d := range levels {
		results := byLevel[int(d)]
		correct := 0
		for _, ok := range results {
			if ok {
				correct++
			}
		}
		rates[i] = float64(correct) / float64(len(results))
	}

	return sigmoid(pearson(levels, rates) * 3)
}

// performanceStability is 1 minus the population standard deviation of
// the correct/incorrect sequence. Neutral below four attempts.
func performanceStability(attempts []session.Attempt) float64 {
	if len(attempts) < 4 {
		return neutral
	}

	seq := make([]float64, len(attempts))
	for i, a := range attempts {
		if a.Correct {
			seq[i] = 1
		}
	}
	return 1 - stddev(seq)
}

// pearson is the sample correlation coefficient. Returns 0 when either
// series has zero variance, keeping downstream arithmetic total.
func pearson(xs, ys []float64) float64 {
	meanX, meanY := mean(xs), mean(ys)

	var cov, varX, varY float64
	for i := range xs {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0
	}
	return cov / math.Sqrt(varX*varY)
}

func mean(xs []float64) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// stddev is the population (ddof=0) standard deviation.
func stddev(xs []float64) float64 {
	m := mean(xs)
	var ss float64
	for _, x := range xs {
		d := x - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(xs)))
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
