package cmd

import (
	"path/filepath"
	"testing"

	"github.com/abhisek/numsense/internal/store"
)

func clearLLMEnv(t *testing.T) {
	t.Helper()
	for _, v := range []string{
		"NUMSENSE_LLM_PROVIDER",
		"NUMSENSE_GROQ_API_KEY", "NUMSENSE_GROQ_MODEL", "NUMSENSE_GROQ_BASE_URL",
		"NUMSENSE_GEMINI_API_KEY", "NUMSENSE_GEMINI_MODEL",
		"NUMSENSE_OPENAI_API_KEY", "NUMSENSE_OPENAI_MODEL", "NUMSENSE_OPENAI_BASE_URL",
		"NUMSENSE_ANTHROPIC_API_KEY", "NUMSENSE_ANTHROPIC_MODEL",
		"GROQ_API_KEY", "GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY",
	} {
		t.Setenv(v, "")
	}
}

func testEventRepo(t *testing.T) store.EventRepo {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "numsense.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s.EventRepo()
}

func TestInsightServiceNoKeys(t *testing.T) {
	clearLLMEnv(t)

	if svc := insightService(testEventRepo(t)); svc != nil {
		t.Fatalf("expected nil service without API keys, got providers %v", svc.ProviderIDs())
	}
}

func TestInsightServiceDiscoversBareKeys(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("GROQ_API_KEY", "test-key")
	t.Setenv("GEMINI_API_KEY", "test-key")

	svc := insightService(testEventRepo(t))
	if svc == nil {
		t.Fatal("expected a service from bare API key discovery")
	}

	// Groq primary with Gemini riding along as fallback.
	ids := svc.ProviderIDs()
	if len(ids) != 2 || ids[0] != "llama-3.1-8b-instant" || ids[1] != "gemini-2.5-flash" {
		t.Fatalf("provider chain = %v, want [llama-3.1-8b-instant gemini-2.5-flash]", ids)
	}
}

func TestInsightServiceHonorsProviderSelection(t *testing.T) {
	tests := []struct {
		provider string
		keyVar   string
		wantID   string
	}{
		{"groq", "NUMSENSE_GROQ_API_KEY", "llama-3.1-8b-instant"},
		{"gemini", "NUMSENSE_GEMINI_API_KEY", "gemini-2.5-flash"},
		{"openai", "NUMSENSE_OPENAI_API_KEY", "gpt-4o-mini"},
		{"anthropic", "NUMSENSE_ANTHROPIC_API_KEY", "claude-haiku-4-5-20251001"},
	}

	for _, tc := range tests {
		t.Run(tc.provider, func(t *testing.T) {
			clearLLMEnv(t)
			t.Setenv("NUMSENSE_LLM_PROVIDER", tc.provider)
			t.Setenv(tc.keyVar, "test-key")

			svc := insightService(testEventRepo(t))
			if svc == nil {
				t.Fatalf("expected a %s service", tc.provider)
			}
			ids := svc.ProviderIDs()
			if len(ids) == 0 || ids[0] != tc.wantID {
				t.Fatalf("provider chain = %v, want primary %s", ids, tc.wantID)
			}
		})
	}
}

func TestInsightServiceFallsBackToConfiguredKey(t *testing.T) {
	// No provider selected and no Groq key: the Gemini key alone picks
	// Gemini as primary.
	clearLLMEnv(t)
	t.Setenv("NUMSENSE_GEMINI_API_KEY", "test-key")

	svc := insightService(testEventRepo(t))
	if svc == nil {
		t.Fatal("expected a service from the configured Gemini key")
	}
	ids := svc.ProviderIDs()
	if len(ids) != 1 || ids[0] != "gemini-2.5-flash" {
		t.Fatalf("provider chain = %v, want [gemini-2.5-flash]", ids)
	}
}
