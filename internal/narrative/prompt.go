package narrative

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/abhisek/numsense/internal/session"
)

const systemPrompt = "You are an expert educational psychologist analyzing learning assessment data. Always respond with valid JSON only."

// SessionData is the session content sent for insight generation.
type SessionData struct {
	SessionID        string            `json:"session_id"`
	Attempts         []session.Attempt `json:"attempts"`
	Exposures        []session.Record  `json:"exposures,omitempty"`
	StressIndicators []session.Record  `json:"stress_indicators,omitempty"`
}

// buildPrompt formats session data for the insight request: an aggregate
// summary, per-task accuracy, then the raw data for detail the summary
// loses.
func buildPrompt(data SessionData) string {
	var b strings.Builder

	correct := 0
	var latencySum float64
	for _, a := range data.Attempts {
		if a.Correct {
			correct++
		}
		latencySum += a.Latency
	}
	avgLatencyMs := 0.0
	if len(data.Attempts) > 0 {
		avgLatencyMs = latencySum / float64(len(data.Attempts)) * 1000
	}

	b.WriteString("Analyze this dyscalculia assessment session data and provide a structured analysis:\n\n")
	b.WriteString("SESSION SUMMARY:\n")
	fmt.Fprintf(&b, "- Total attempts: %d\n", len(data.Attempts))
	fmt.Fprintf(&b, "- Correct answers: %d\n", correct)
	fmt.Fprintf(&b, "- Incorrect answers: %d\n", len(data.Attempts)-correct)
	fmt.Fprintf(&b, "- Average response time: %dms\n", int(math.Round(avgLatencyMs)))

	b.WriteString("\nTASK PERFORMANCE:\n")
	type taskTally struct {
		correct, total int
	}
	tallies := map[session.TaskType]*taskTally{}
	var order []session.TaskType
	for _, a := range data.Attempts {
		t, ok := tallies[a.TaskType]
		if !ok {
			t = &taskTally{}
			tallies[a.TaskType] = t
			order = append(order, a.TaskType)
		}
		t.total++
		if a.Correct {
			t.correct++
		}
	}
	for _, taskType := range order {
		t := tallies[taskType]
		pct := int(math.Round(float64(t.correct) / float64(t.total) * 100))
		fmt.Fprintf(&b, "- %s: %d/%d correct (%d%%)\n", taskType, t.correct, t.total, pct)
	}

	raw, err := json.MarshalIndent(data, "", "  ")
	if err == nil {
		b.WriteString("\nRAW DATA:\n")
		b.Write(raw)
		b.WriteString("\n")
	}

	b.WriteString(`
Based on this data, provide an analysis in the following JSON format:
{
  "pattern": "exposure_related" | "possible_dyscalculia_signal" | "unclear",
  "confidence": 0.0-1.0,
  "score": 0-100,
  "sub_scores": {
    "quantity": 0-100,
    "comparison": 0-100,
    "symbol": 0-100,
    "flash_counting": 0-100
  },
  "reasoning": "brief explanation of the analysis",
  "interpretation": "user-friendly interpretation"
}

Return ONLY the JSON object, no additional text.`)

	return b.String()
}
