package narrative

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/numsense/internal/analysis"
	"github.com/abhisek/numsense/internal/llm"
	"github.com/abhisek/numsense/internal/session"
)

var insightJSON = json.RawMessage(`{
	"pattern": "exposure_related",
	"confidence": 0.7,
	"score": 72,
	"sub_scores": {"quantity": 75, "comparison": 70, "symbol": 60, "flash_counting": 65},
	"reasoning": "Accuracy improved through the session.",
	"interpretation": "The child is still building number familiarity."
}`)

func sampleData() SessionData {
	return SessionData{
		SessionID: "sess-1",
		Attempts: []session.Attempt{
			{TaskType: session.TaskQuantity, Correct: true, Latency: 2, Attempts: 1},
			{TaskType: session.TaskQuantity, Correct: false, Latency: 3, Attempts: 1},
			{TaskType: session.TaskSymbol, Correct: true, Latency: 2.5, Attempts: 1},
		},
	}
}

func TestServiceInsight(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: insightJSON})
	svc := NewService(0, mock)

	got, err := svc.Insight(context.Background(), sampleData())
	if err != nil {
		t.Fatalf("Insight: %v", err)
	}

	if got.Pattern != "exposure_related" {
		t.Errorf("pattern = %q", got.Pattern)
	}
	if got.Score != 72 {
		t.Errorf("score = %d, want 72", got.Score)
	}
	if got.SubScores["flash_counting"] != 65 {
		t.Errorf("flash_counting sub-score = %v, want 65", got.SubScores["flash_counting"])
	}
	if got.Source != "mock" {
		t.Errorf("source = %q, want mock", got.Source)
	}

	// One structured request with the schema attached.
	if mock.CallCount() != 1 {
		t.Fatalf("call count = %d, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.System != systemPrompt {
		t.Errorf("system prompt = %q", req.System)
	}
	if req.Schema == nil || req.Schema.Name != "session-insight" {
		t.Errorf("schema = %+v", req.Schema)
	}
	if req.Temperature != 0.3 || req.MaxTokens != 1000 {
		t.Errorf("sampling params = %v/%d", req.Temperature, req.MaxTokens)
	}
}

func TestServiceFallsBackToSecondProvider(t *testing.T) {
	// The first provider's queue is empty, so it reports unavailable; the
	// second one answers.
	broken := llm.NewMockProvider()
	working := llm.NewMockProvider(llm.MockResponse{Content: insightJSON})
	svc := NewService(0, broken, working)

	got, err := svc.Insight(context.Background(), sampleData())
	if err != nil {
		t.Fatalf("Insight: %v", err)
	}
	if got.Pattern != "exposure_related" {
		t.Errorf("pattern = %q", got.Pattern)
	}
	if broken.CallCount() != 1 || working.CallCount() != 1 {
		t.Errorf("call counts = %d/%d, want 1/1", broken.CallCount(), working.CallCount())
	}
}

func TestServiceAllProvidersFail(t *testing.T) {
	svc := NewService(0, llm.NewMockProvider(), llm.NewMockProvider())

	_, err := svc.Insight(context.Background(), sampleData())
	if err == nil {
		t.Fatal("expected error when every provider fails")
	}
	if !strings.Contains(err.Error(), "all insight providers failed") {
		t.Errorf("error = %v", err)
	}
}

func TestServiceNoProviders(t *testing.T) {
	svc := NewService(0)
	if _, err := svc.Insight(context.Background(), sampleData()); err == nil {
		t.Fatal("expected error with no providers configured")
	}
}

func TestServiceRejectsMalformedContent(t *testing.T) {
	bad := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json`)})
	good := llm.NewMockProvider(llm.MockResponse{Content: insightJSON})
	svc := NewService(0, bad, good)

	got, err := svc.Insight(context.Background(), sampleData())
	if err != nil {
		t.Fatalf("Insight: %v", err)
	}
	if got.Source != "mock" {
		t.Errorf("source = %q", got.Source)
	}
	if good.CallCount() != 1 {
		t.Errorf("fallback provider not consulted")
	}
}

func TestBuildPrompt(t *testing.T) {
	got := buildPrompt(sampleData())

	for _, want := range []string{
		"SESSION SUMMARY:",
		"- Total attempts: 3",
		"- Correct answers: 2",
		"- Incorrect answers: 1",
		"- Average response time: 2500ms",
		"TASK PERFORMANCE:",
		"- quantity: 1/2 correct (50%)",
		"- symbol: 1/1 correct (100%)",
		"RAW DATA:",
		"Return ONLY the JSON object, no additional text.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildPromptTaskOrderFollowsFirstAppearance(t *testing.T) {
	data := sampleData()
	got := buildPrompt(data)

	qi := strings.Index(got, "- quantity:")
	si := strings.Index(got, "- symbol:")
	if qi < 0 || si < 0 || qi > si {
		t.Fatalf("task lines out of order: quantity at %d, symbol at %d", qi, si)
	}
}

func TestFallback(t *testing.T) {
	res := analysis.Result{
		Pattern:    analysis.PatternUnclear,
		Confidence: 0.6,
		Reasoning:  "mixed evidence.",
		SubScores:  map[string]float64{"quantity": 55},
	}

	got := Fallback(res, 71.6, "narrative text")
	if got.Source != "local" {
		t.Errorf("source = %q, want local", got.Source)
	}
	if got.Score != 72 {
		t.Errorf("score = %d, want rounded 72", got.Score)
	}
	if got.Pattern != "unclear" || got.Confidence != 0.6 {
		t.Errorf("pattern/confidence = %q/%v", got.Pattern, got.Confidence)
	}
	if got.Interpretation != "narrative text" {
		t.Errorf("interpretation = %q", got.Interpretation)
	}

	// The sub-score map is copied, not aliased.
	got.SubScores["quantity"] = 0
	if res.SubScores["quantity"] != 55 {
		t.Error("fallback aliased the analyzer's sub-score map")
	}
}
