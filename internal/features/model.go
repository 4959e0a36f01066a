package features

import (
	"math"

	"github.com/abhisek/numsense/internal/session"
)

// Prediction is the output of the heuristic concern model.
type Prediction struct {
	// Probability is the probability-of-concern score in [0, 1].
	Probability float64

	// Confidence grows with data volume, maxing out at 20 attempts.
	Confidence float64

	// Importance maps feature names to diagnostic importance values.
	// Empty below the minimum attempt count.
	Importance map[string]float64
}

// Predict extracts features from the attempt log and reduces them to a
// probability-of-concern and a confidence score.
//
// The probability is a fixed, hand-tuned weighted rule over six features;
// there are no trained weights anywhere in this model.
func Predict(attempts []session.Attempt) Prediction {
	if len(attempts) < minAttempts {
		return Prediction{Importance: map[string]float64{}}
	}

	v := Extract(attempts)

	return Prediction{
		Probability: Probability(v),
		Confidence:  math.Min(float64(len(attempts))/20, 1),
		Importance:  importance(v),
	}
}

// Probability applies the fixed weighted scoring rule to a feature
// vector. Symbolic and quantity errors are the strongest indicators,
// followed by systematic error patterns, poor difficulty adaptation and
// high retry rates.
func Probability(v []float64) float64 {
	score := v[idxErrSymbol]*0.25 +
		v[idxErrQuantity]*0.20 +
		v[idxErrComparison]*0.15 +
		v[idxErrorConsistency]*0.15 +
		v[idxMultiAttempt]*0.10

	if v[idxDifficultyAdaptation] < 0.4 {
		score += 0.15
	}

	return clamp01(score)
}

// importance reports |z| of each feature normalized against the single
// vector itself. This per-vector normalization is degenerate (one sample
// against its own mean and deviation) but is kept for output
// compatibility; treat the values as diagnostic, not statistical.
func importance(v []float64) map[string]float64 {
	m := mean(v)
	sd := stddev(v)

	out := make(map[string]float64, VectorSize)
	for i, name := range Names {
		if sd == 0 {
			out[name] = 0
			continue
		}
		out[name] = math.Abs((v[i] - m) / sd)
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
