package narrative

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/abhisek/numsense/internal/analysis"
	"github.com/abhisek/numsense/internal/llm"
)

// Purpose is the event-log label attached to insight requests.
const Purpose = "session-insight"

// Insight is the structured interpretation of a session, produced by an
// LLM or assembled locally when no provider is reachable.
type Insight struct {
	Pattern        string             `json:"pattern"`
	Confidence     float64            `json:"confidence"`
	Score          int                `json:"score"`
	SubScores      map[string]float64 `json:"sub_scores"`
	Reasoning      string             `json:"reasoning"`
	Interpretation string             `json:"interpretation"`

	// Source names what produced the insight: a model ID, or "local"
	// for the degraded path.
	Source string `json:"source"`
}

// Service generates session insights, trying each configured provider in
// order until one succeeds. The intended ordering is Groq first, then
// Gemini.
type Service struct {
	providers []llm.Provider
	timeout   time.Duration
}

// NewService creates a Service. A zero timeout defaults to 5s.
func NewService(timeout time.Duration, providers ...llm.Provider) *Service {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Service{providers: providers, timeout: timeout}
}

// ProviderIDs lists the model IDs of the configured providers in the
// order they are tried.
func (s *Service) ProviderIDs() []string {
	out := make([]string, len(s.providers))
	for i, p := range s.providers {
		out[i] = p.ModelID()
	}
	return out
}

// Insight requests an interpretation of the session from the first
// responsive provider. Each provider gets its own timeout budget.
func (s *Service) Insight(ctx context.Context, data SessionData) (*Insight, error) {
	if len(s.providers) == 0 {
		return nil, errors.New("no LLM providers configured")
	}

	req := llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildPrompt(data)}},
		Schema:      insightSchema,
		MaxTokens:   1000,
		Temperature: 0.3,
	}

	ctx = llm.WithPurpose(ctx, Purpose)

	var errs []error
	for _, p := range s.providers {
		insight, err := s.tryProvider(ctx, p, req)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", p.ModelID(), err))
			continue
		}
		return insight, nil
	}

	return nil, fmt.Errorf("all insight providers failed: %w", errors.Join(errs...))
}

func (s *Service) tryProvider(ctx context.Context, p llm.Provider, req llm.Request) (*Insight, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := p.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	var insight Insight
	if err := json.Unmarshal(resp.Content, &insight); err != nil {
		return nil, fmt.Errorf("decode insight: %w", err)
	}
	insight.Source = resp.Model
	return &insight, nil
}

// Fallback assembles an Insight from the local analyzer's output when no
// provider is reachable. The interpretation text is the locally generated
// narrative.
func Fallback(result analysis.Result, score float64, interpretation string) *Insight {
	subScores := make(map[string]float64, len(result.SubScores))
	for k, v := range result.SubScores {
		subScores[k] = v
	}
	return &Insight{
		Pattern:        string(result.Pattern),
		Confidence:     result.Confidence,
		Score:          int(math.Round(score)),
		SubScores:      subScores,
		Reasoning:      result.Reasoning,
		Interpretation: interpretation,
		Source:         "local",
	}
}
