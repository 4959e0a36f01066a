package session

import "fmt"

// TaskType identifies one of the numeracy task families presented during
// an assessment session.
type TaskType string

const (
	TaskQuantity      TaskType = "quantity"
	TaskComparison    TaskType = "comparison"
	TaskSymbol        TaskType = "symbol"
	TaskOrder         TaskType = "order"
	TaskFlashCounting TaskType = "flash_counting"
)

// Attempt is one answered prompt. Immutable once recorded; owned by the
// session that logged it.
type Attempt struct {
	TaskType TaskType `json:"task_type"`
	Correct  bool     `json:"correct"`

	// SelectedAnswer and CorrectAnswer are opaque comparable values.
	// The engine never interprets them beyond equality of their string
	// forms when grouping repeated errors.
	SelectedAnswer any `json:"selected_answer"`
	CorrectAnswer  any `json:"correct_answer"`

	// Latency is the response time in seconds.
	Latency float64 `json:"latency"`

	// Attempts is the number of tries before the final answer (>= 1).
	Attempts int `json:"attempts"`

	// Timestamp is the client clock at answer time. Zero means absent;
	// absent timestamps sort before any timed attempt.
	Timestamp float64 `json:"timestamp,omitempty"`

	// Difficulty is the declared difficulty level, nil when untagged.
	Difficulty *int `json:"difficulty,omitempty"`
}

// ErrorKey returns the selected→correct pairing used to group repeated
// errors within one task type.
func (a Attempt) ErrorKey() string {
	return fmt.Sprintf("%v-%v", a.SelectedAnswer, a.CorrectAnswer)
}

// GlobalErrorKey is ErrorKey prefixed with the task type, used when
// grouping errors across the whole session.
func (a Attempt) GlobalErrorKey() string {
	return fmt.Sprintf("%s-%v-%v", a.TaskType, a.SelectedAnswer, a.CorrectAnswer)
}

// Record is an opaque structured payload attached to a session: an
// exposure event or a stress indicator. The engine never inspects its
// fields; it is stored and forwarded as-is.
type Record map[string]any

// FilterByType returns the attempts matching the given task type,
// preserving order.
func FilterByType(attempts []Attempt, t TaskType) []Attempt {
	var out []Attempt
	for _, a := range attempts {
		if a.TaskType == t {
			out = append(out, a)
		}
	}
	return out
}
