package flash

import (
	"testing"

	"github.com/abhisek/numsense/internal/session"
)

func flashAttempts(correct, total int) []session.Attempt {
	out := make([]session.Attempt, total)
	for i := range out {
		out[i] = session.Attempt{
			TaskType: session.TaskFlashCounting,
			Correct:  i < correct,
			Attempts: 1,
		}
	}
	return out
}

func TestBaseDuration(t *testing.T) {
	tests := []struct {
		difficulty int
		want       int
	}{
		{1, 3000},
		{2, 3000},
		{3, 2500},
		{4, 2500},
		{5, 2000},
		{6, 2000},
		{7, 1500},
		{10, 1500},
	}
	for _, tc := range tests {
		if got := BaseDuration(tc.difficulty); got != tc.want {
			t.Errorf("BaseDuration(%d) = %d, want %d", tc.difficulty, got, tc.want)
		}
	}
}

func TestNextDurationNoFlashAttempts(t *testing.T) {
	// Other task types never influence the flash controller.
	attempts := []session.Attempt{
		{TaskType: session.TaskQuantity, Correct: false},
		{TaskType: session.TaskSymbol, Correct: false},
	}

	got := NextDuration(attempts, 3)
	if got.DurationMs != 2500 || got.BaseDurationMs != 2500 {
		t.Fatalf("duration = %d/%d, want 2500/2500", got.DurationMs, got.BaseDurationMs)
	}
	if got.Reason != "Base duration for difficulty level" {
		t.Errorf("reason = %q", got.Reason)
	}
	if got.PerformancePct != nil {
		t.Errorf("performance pct = %v, want nil", *got.PerformancePct)
	}
}

func TestNextDurationStrongPerformance(t *testing.T) {
	// 90% at difficulty 3: two full steps above target, 2500 - 400.
	got := NextDuration(flashAttempts(9, 10), 3)
	if got.DurationMs != 2100 {
		t.Fatalf("duration = %d, want 2100", got.DurationMs)
	}
	if got.Reason != "Exemplary performance (90.0%): Decreased by 0.4s" {
		t.Errorf("reason = %q", got.Reason)
	}
	if got.PerformancePct == nil || *got.PerformancePct != 90 {
		t.Errorf("performance pct = %v, want 90", got.PerformancePct)
	}
}

func TestNextDurationWeakPerformance(t *testing.T) {
	// 40% at difficulty 8: three steps below target, 1500 + 600.
	got := NextDuration(flashAttempts(2, 5), 8)
	if got.DurationMs != 2100 {
		t.Fatalf("duration = %d, want 2100", got.DurationMs)
	}
	if got.Reason != "Below target (40.0%): Increased by 0.6s" {
		t.Errorf("reason = %q", got.Reason)
	}
}

func TestNextDurationAtTarget(t *testing.T) {
	got := NextDuration(flashAttempts(7, 10), 5)
	if got.DurationMs != 2000 {
		t.Fatalf("duration = %d, want 2000 unchanged", got.DurationMs)
	}
	if got.Reason != "At target performance (70%)" {
		t.Errorf("reason = %q", got.Reason)
	}
}

func TestNextDurationClampsAtFloor(t *testing.T) {
	// Perfect accuracy at the hardest level: 1500 - 600 would undershoot
	// the floor.
	got := NextDuration(flashAttempts(10, 10), 9)
	if got.DurationMs != MinDurationMs {
		t.Fatalf("duration = %d, want %d", got.DurationMs, MinDurationMs)
	}
}

func TestNextDurationMonotonicInAccuracy(t *testing.T) {
	// Better accuracy never yields a longer flash.
	prev := NextDuration(flashAttempts(6, 10), 4).DurationMs
	for correct := 7; correct <= 10; correct++ {
		cur := NextDuration(flashAttempts(correct, 10), 4).DurationMs
		if cur > prev {
			t.Fatalf("duration rose from %d to %d at %d/10 correct", prev, cur, correct)
		}
		prev = cur
	}
}

func TestNextDurationFractionalAccuracy(t *testing.T) {
	// 2/3 correct is 66.7% after rounding: zero full steps below target.
	got := NextDuration(flashAttempts(2, 3), 5)
	if got.DurationMs != 2000 {
		t.Fatalf("duration = %d, want 2000", got.DurationMs)
	}
	if got.PerformancePct == nil || *got.PerformancePct != 66.7 {
		t.Errorf("performance pct = %v, want 66.7", got.PerformancePct)
	}
	if got.Reason != "Below target (66.7%): Increased by 0.0s" {
		t.Errorf("reason = %q", got.Reason)
	}
}
