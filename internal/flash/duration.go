// Package flash adapts the stimulus exposure duration for flash-counting
// tasks: strong recent performance shortens the flash, struggling
// lengthens it.
package flash

import (
	"fmt"
	"math"

	"github.com/abhisek/numsense/internal/session"
)

// Duration bounds and adjustment step.
const (
	MinDurationMs = 1000
	MaxDurationMs = 5000

	// targetPct is the accuracy the controller steers toward.
	targetPct = 70

	// stepMs is the adjustment per full 10% away from target.
	stepMs = 200
)

// Duration is the controller output.
type Duration struct {
	DurationMs     int    `json:"duration_ms"`
	BaseDurationMs int    `json:"base_duration_ms"`
	Reason         string `json:"adjustment_reason"`

	// PerformancePct is the flash-task accuracy the adjustment was based
	// on, rounded to 0.1%. Nil when no flash attempts exist yet.
	PerformancePct *float64 `json:"performance_percentage"`
}

// BaseDuration returns the starting exposure duration in milliseconds for
// a difficulty level.
func BaseDuration(difficulty int) int {
	switch {
	case difficulty <= 2:
		return 3000
	case difficulty <= 4:
		return 2500
	case difficulty <= 6:
		return 2000
	default:
		return 1500
	}
}

// NextDuration computes the next stimulus exposure duration from the
// session's attempt log and the declared difficulty. Only flash-counting
// attempts count toward performance; with none logged the base duration
// is returned unchanged.
func NextDuration(attempts []session.Attempt, difficulty int) Duration {
	flashAttempts := session.FilterByType(attempts, session.TaskFlashCounting)

	base := BaseDuration(difficulty)
	out := Duration{
		DurationMs:     base,
		BaseDurationMs: base,
		Reason:         "Base duration for difficulty level",
	}

	if len(flashAttempts) == 0 {
		return out
	}

	correct := 0
	for _, a := range flashAttempts {
		if a.Correct {
			correct++
		}
	}
	pct := math.Round(float64(correct)/float64(len(flashAttempts))*1000) / 10
	out.PerformancePct = &pct

	switch {
	case pct > targetPct:
		steps := int(math.Floor((pct - targetPct) / 10))
		out.DurationMs = base - steps*stepMs
		out.Reason = fmt.Sprintf("Exemplary performance (%.1f%%): Decreased by %.1fs", pct, float64(steps)*0.2)
	case pct < targetPct:
		steps := int(math.Floor((targetPct - pct) / 10))
		out.DurationMs = base + steps*stepMs
		out.Reason = fmt.Sprintf("Below target (%.1f%%): Increased by %.1fs", pct, float64(steps)*0.2)
	default:
		out.Reason = "At target performance (70%)"
	}

	if out.DurationMs < MinDurationMs {
		out.DurationMs = MinDurationMs
	}
	if out.DurationMs > MaxDurationMs {
		out.DurationMs = MaxDurationMs
	}

	return out
}
