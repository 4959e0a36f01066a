package features

// Continuation decision thresholds.
const (
	highProbability     = 0.6
	moderateProbability = 0.4
	lowConfidence       = 0.5

	// MaxTests is the hard ceiling on total tests per session.
	MaxTests = 20
)

// Decision is the adaptive test-continuation outcome.
type Decision struct {
	ShouldContinue  bool
	AdditionalTests int
}

// ShouldExtendTesting decides whether the live assessment needs more
// tasks. Pure function of (probability, confidence, current count); once
// the ceiling is reached it never asks for more.
func ShouldExtendTesting(probability, confidence float64, currentTestCount int) Decision {
	if currentTestCount >= MaxTests {
		return Decision{}
	}

	room := MaxTests - currentTestCount
	additional := 0

	switch {
	case probability >= highProbability:
		// The more concerning the signal, the more evidence we want.
		additional = min(9, room)
	case probability >= moderateProbability:
		if confidence < lowConfidence {
			additional = min(5, room)
		} else {
			additional = min(3, room)
		}
	case confidence < lowConfidence:
		additional = min(4, room)
	}

	return Decision{
		ShouldContinue:  additional > 0,
		AdditionalTests: additional,
	}
}
