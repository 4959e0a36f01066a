package store

import (
	"context"
	"time"
)

// AttemptEventData captures a single task attempt for persistence.
type AttemptEventData struct {
	SessionID       string
	TaskType        string
	Correct         bool
	SelectedAnswer  any
	CorrectAnswer   any
	Latency         float64
	Attempts        int
	ClientTimestamp float64
	Difficulty      *int
}

// ExposureEventData captures a prior-exposure observation.
type ExposureEventData struct {
	SessionID string
	Payload   map[string]any
}

// StressEventData captures a stress indicator observation.
type StressEventData struct {
	SessionID string
	Payload   map[string]any
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a persisted LLM request event, as returned by queries.
type LLMEvent struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMQueryOpts filters LLM event queries.
type LLMQueryOpts struct {
	Limit      int    // max results (0 = default 50)
	Purpose    string // filter by purpose label
	Model      string // filter by model ID
	FailedOnly bool   // only failed requests
}

// UsageRow is one row of an LLM usage aggregation.
type UsageRow struct {
	Key          string `json:"key"`
	Requests     int    `json:"requests"`
	InputTokens  int    `json:"input_tokens"`
	OutputTokens int    `json:"output_tokens"`
}

// SessionSummary is the per-session state captured in a snapshot.
type SessionSummary struct {
	Pattern     string  `json:"pattern"`
	Confidence  float64 `json:"confidence"`
	Probability float64 `json:"probability"`
	Score       float64 `json:"score"`
	Attempts    int     `json:"attempts"`
}

// SnapshotData captures analysis summaries for all sessions at a point
// in time.
type SnapshotData struct {
	Version  int                       `json:"version"`
	Sessions map[string]SessionSummary `json:"sessions,omitempty"`
}

// Snapshot represents a point-in-time capture of analysis state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages analysis state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// EventRepo provides append and query access to the assessment event log.
type EventRepo interface {
	// AppendAttemptEvent records a task attempt.
	AppendAttemptEvent(ctx context.Context, data AttemptEventData) error

	// AppendExposureEvent records a prior-exposure observation.
	AppendExposureEvent(ctx context.Context, data ExposureEventData) error

	// AppendStressEvent records a stress indicator.
	AppendStressEvent(ctx context.Context, data StressEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// SessionIDs returns the distinct session IDs with recorded attempts,
	// ordered by first appearance.
	SessionIDs(ctx context.Context) ([]string, error)

	// SessionAttempts returns all attempts for a session in event order.
	SessionAttempts(ctx context.Context, sessionID string) ([]AttemptEventData, error)

	// SessionExposures returns all exposure payloads for a session.
	SessionExposures(ctx context.Context, sessionID string) ([]map[string]any, error)

	// SessionStressIndicators returns all stress payloads for a session.
	SessionStressIndicators(ctx context.Context, sessionID string) ([]map[string]any, error)

	// QueryLLMEvents returns LLM events matching opts, newest first.
	QueryLLMEvents(ctx context.Context, opts LLMQueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns a single LLM event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage grouped by purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]UsageRow, error)

	// LLMUsageByModel aggregates token usage grouped by model ID.
	LLMUsageByModel(ctx context.Context) ([]UsageRow, error)
}
