package features

import (
	"testing"

	"github.com/abhisek/numsense/internal/session"
	"github.com/stretchr/testify/require"
)

func attempt(tt session.TaskType, correct bool, latency float64) session.Attempt {
	return session.Attempt{
		TaskType: tt,
		Correct:  correct,
		Latency:  latency,
		Attempts: 1,
	}
}

func TestExtractBelowMinimum(t *testing.T) {
	attempts := []session.Attempt{
		attempt(session.TaskQuantity, true, 2),
		attempt(session.TaskQuantity, false, 2),
	}

	v := Extract(attempts)
	require.Len(t, v, VectorSize)
	for i, x := range v {
		require.Zerof(t, x, "feature %s", Names[i])
	}
}

func TestExtractErrorRates(t *testing.T) {
	attempts := []session.Attempt{
		attempt(session.TaskQuantity, true, 3),
		attempt(session.TaskQuantity, true, 3),
		attempt(session.TaskQuantity, false, 3),
	}
	attempts[2].SelectedAnswer, attempts[2].CorrectAnswer = 6, 9

	v := Extract(attempts)
	require.InDelta(t, 1.0/3.0, v[idxErrQuantity], 1e-9)

	// Task types never attempted stay at the neutral midpoint.
	require.Equal(t, neutral, v[idxErrComparison])
	require.Equal(t, neutral, v[idxErrSymbol])
	require.Equal(t, neutral, v[idxErrOrder])
	require.Equal(t, neutral, v[idxErrFlash])

	// Mean latency of exactly 3s sits at the squash midpoint.
	require.InDelta(t, 0.5, v[idxLatQuantity], 1e-9)
}

func TestGlobalErrorConsistency(t *testing.T) {
	repeat := attempt(session.TaskSymbol, false, 2)
	repeat.SelectedAnswer, repeat.CorrectAnswer = 6, 9

	attempts := []session.Attempt{
		repeat,
		repeat,
		attempt(session.TaskSymbol, true, 2),
		attempt(session.TaskQuantity, true, 2),
	}

	// Two errors, one unique pattern: 1 - 1/2.
	v := Extract(attempts)
	require.InDelta(t, 0.5, v[idxErrorConsistency], 1e-9)
}

func TestGlobalErrorConsistencySingleError(t *testing.T) {
	attempts := []session.Attempt{
		attempt(session.TaskQuantity, false, 2),
		attempt(session.TaskQuantity, true, 2),
		attempt(session.TaskQuantity, true, 2),
	}

	v := Extract(attempts)
	require.Zero(t, v[idxErrorConsistency])
}

func TestGlobalLatencyTrend(t *testing.T) {
	// Three attempts are below the trend window: neutral.
	v := Extract([]session.Attempt{
		attempt(session.TaskQuantity, true, 4),
		attempt(session.TaskQuantity, true, 4),
		attempt(session.TaskQuantity, true, 2),
	})
	require.Equal(t, neutral, v[idxLatencyTrend])

	// Halving the latency between halves: sigmoid(0.5 * 5).
	v = Extract([]session.Attempt{
		attempt(session.TaskQuantity, true, 4),
		attempt(session.TaskQuantity, true, 4),
		attempt(session.TaskQuantity, true, 2),
		attempt(session.TaskQuantity, true, 2),
	})
	require.InDelta(t, 0.924142, v[idxLatencyTrend], 1e-5)
}

func TestMultiAttemptRate(t *testing.T) {
	retried := attempt(session.TaskQuantity, true, 2)
	retried.Attempts = 2

	attempts := []session.Attempt{
		retried,
		retried,
		attempt(session.TaskQuantity, true, 2),
		attempt(session.TaskQuantity, true, 2),
	}

	v := Extract(attempts)
	require.InDelta(t, 0.5, v[idxMultiAttempt], 1e-9)
}

func TestDifficultyAdaptation(t *testing.T) {
	tagged := func(correct bool, difficulty int) session.Attempt {
		a := attempt(session.TaskQuantity, correct, 2)
		a.Difficulty = &difficulty
		return a
	}

	// Untagged attempts: neutral.
	v := Extract([]session.Attempt{
		attempt(session.TaskQuantity, true, 2),
		attempt(session.TaskQuantity, true, 2),
		attempt(session.TaskQuantity, true, 2),
	})
	require.Equal(t, neutral, v[idxDifficultyAdaptation])

	// Success collapses as difficulty rises: perfect negative correlation,
	// squashed to sigmoid(-3).
	v = Extract([]session.Attempt{
		tagged(true, 1),
		tagged(true, 1),
		tagged(false, 2),
		tagged(false, 2),
	})
	require.InDelta(t, 0.047426, v[idxDifficultyAdaptation], 1e-5)

	// The inverse pattern lands symmetrically at sigmoid(+3).
	v = Extract([]session.Attempt{
		tagged(false, 1),
		tagged(false, 1),
		tagged(true, 2),
		tagged(true, 2),
	})
	require.InDelta(t, 0.952574, v[idxDifficultyAdaptation], 1e-5)

	// Flat success across levels has zero variance: correlation degrades
	// to 0 and the feature stays neutral.
	v = Extract([]session.Attempt{
		tagged(true, 1),
		tagged(true, 1),
		tagged(true, 2),
		tagged(true, 2),
	})
	require.Equal(t, neutral, v[idxDifficultyAdaptation])
}

func TestPerformanceStability(t *testing.T) {
	// All correct: zero deviation, maximal stability.
	v := Extract([]session.Attempt{
		attempt(session.TaskQuantity, true, 2),
		attempt(session.TaskQuantity, true, 2),
		attempt(session.TaskQuantity, true, 2),
		attempt(session.TaskQuantity, true, 2),
	})
	require.InDelta(t, 1.0, v[idxStability], 1e-9)

	// Alternating outcomes: population stddev 0.5.
	v = Extract([]session.Attempt{
		attempt(session.TaskQuantity, true, 2),
		attempt(session.TaskQuantity, false, 2),
		attempt(session.TaskQuantity, true, 2),
		attempt(session.TaskQuantity, false, 2),
	})
	require.InDelta(t, 0.5, v[idxStability], 1e-9)
}

func TestPearsonZeroVariance(t *testing.T) {
	require.Zero(t, pearson([]float64{1, 2, 3}, []float64{4, 4, 4}))
	require.Zero(t, pearson([]float64{2, 2, 2}, []float64{1, 2, 3}))
	require.InDelta(t, 1.0, pearson([]float64{1, 2, 3}, []float64{10, 20, 30}), 1e-9)
}
