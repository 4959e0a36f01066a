package analysis

import "github.com/abhisek/numsense/internal/session"

// StabilityClass describes how a task type's errors behave.
type StabilityClass string

const (
	StabilityNoData           StabilityClass = "no_data"
	StabilityConsistentErrors StabilityClass = "consistent_errors"
	StabilityVariable         StabilityClass = "variable"
)

// consistentErrorThreshold is the error-consistency value above which a
// task type is classified as showing consistent (systematic) errors.
const consistentErrorThreshold = 0.7

// Stability is the per-task-type quality report.
type Stability struct {
	// Score is a soft quality index in [20, 100].
	Score            float64
	Stability        StabilityClass
	ErrorRate        float64
	AvgLatency       float64
	ErrorConsistency float64
}

// noDataStability is the fixed report for a task type with zero attempts.
var noDataStability = Stability{Score: 70, Stability: StabilityNoData}

// AnalyzeStability computes the stability report for the attempts of one
// task type. Total over all inputs: an empty subset yields the no_data
// report, never an error.
func AnalyzeStability(attempts []session.Attempt) Stability {
	if len(attempts) == 0 {
		return noDataStability
	}

	correct := 0
	latencySum := 0.0
	for _, a := range attempts {
		if a.Correct {
			correct++
		}
		latencySum += a.Latency
	}
	errorRate := 1 - float64(correct)/float64(len(attempts))

	consistency := errorConsistency(attempts)
	trend := latencyTrend(attempts)

	score := 80 - errorRate*30 - consistency*10 + trend*5

	class := StabilityVariable
	if consistency > consistentErrorThreshold {
		class = StabilityConsistentErrors
	}

	return Stability{
		Score:            clamp(score, 20, 100),
		Stability:        class,
		ErrorRate:        errorRate,
		AvgLatency:       latencySum / float64(len(attempts)),
		ErrorConsistency: consistency,
	}
}

// errorConsistency measures how often the same wrong answer was given for
// the same expected answer: the share of the most frequent selected→correct
// pairing among all wrong attempts. Zero below two errors.
func errorConsistency(attempts []session.Attempt) float64 {
	counts := make(map[string]int)
	wrong := 0
	for _, a := range attempts {
		if a.Correct {
			continue
		}
		wrong++
		counts[a.ErrorKey()]++
	}
	if wrong < 2 {
		return 0
	}

	maxRepeat := 0
	for _, c := range counts {
		if c > maxRepeat {
			maxRepeat = c
		}
	}
	return float64(maxRepeat) / float64(wrong)
}

// latencyTrend compares average response time between the first and second
// half of the attempts in original order. Positive means getting faster.
// Zero below three attempts, or when the first half averaged zero latency.
func latencyTrend(attempts []session.Attempt) float64 {
	if len(attempts) < 3 {
		return 0
	}

	mid := len(attempts) / 2
	firstAvg := avgLatency(attempts[:mid])
	secondAvg := avgLatency(attempts[mid:])

	if firstAvg == 0 {
		return 0
	}
	return (firstAvg - secondAvg) / firstAvg
}

func avgLatency(attempts []session.Attempt) float64 {
	if len(attempts) == 0 {
		return 0
	}
	sum := 0.0
	for _, a := range attempts {
		sum += a.Latency
	}
	return sum / float64(len(attempts))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
