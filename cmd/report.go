package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/abhisek/numsense/internal/engine"
	"github.com/abhisek/numsense/internal/llm"
	"github.com/abhisek/numsense/internal/narrative"
	"github.com/abhisek/numsense/internal/store"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report <session-id>",
	Short: "Analyze a recorded session",
	Long: "Replays the session from the event log and prints the pattern\n" +
		"classification, screening probability, continuation decision, flash\n" +
		"duration and narrative explanation.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionID := args[0]
		difficulty, _ := cmd.Flags().GetInt("difficulty")
		useAI, _ := cmd.Flags().GetBool("ai")
		asJSON, _ := cmd.Flags().GetBool("json")

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		repo := s.EventRepo()
		cfg := engine.Config{Events: repo, Snapshots: s.SnapshotRepo()}
		if useAI {
			cfg.Insight = insightService(repo)
			if cfg.Insight == nil {
				fmt.Fprintln(os.Stderr, "warning: no LLM API key configured, using local narrative")
			}
		}
		eng := engine.New(cfg)

		ctx := context.Background()
		if err := eng.LoadFromEvents(ctx); err != nil {
			return fmt.Errorf("replay event log: %w", err)
		}

		res, err := eng.Analyze(sessionID)
		if err != nil {
			return fmt.Errorf("analyze session %s: %w", sessionID, err)
		}
		rep, _ := eng.ScoreSession(sessionID)
		pred, dec, _ := eng.Classify(sessionID)
		duration := eng.NextStimulusDuration(sessionID, difficulty)
		explanation, _ := eng.Explain(sessionID)

		var insight *narrative.Insight
		if useAI {
			insight, err = eng.Insight(ctx, sessionID)
			if err != nil {
				return fmt.Errorf("generate insight: %w", err)
			}
		}

		if asJSON {
			out := map[string]any{
				"session_id":     sessionID,
				"analysis":       res,
				"score":          rep.Score,
				"probability":    pred.Probability,
				"confidence":     pred.Confidence,
				"continue":       dec,
				"flash_duration": duration,
				"explanation":    explanation,
			}
			if insight != nil {
				out["insight"] = insight
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}

		sep := strings.Repeat("─", 60)

		fmt.Printf("Session:      %s\n", sessionID)
		fmt.Printf("Pattern:      %s (confidence %.2f)\n", res.Pattern, res.Confidence)
		fmt.Printf("Score:        %.1f / 100\n", rep.Score)
		fmt.Printf("Probability:  %.2f (model confidence %.2f)\n", pred.Probability, pred.Confidence)
		if dec.ShouldContinue {
			fmt.Printf("Continue:     yes, %d more tests recommended\n", dec.AdditionalTests)
		} else {
			fmt.Println("Continue:     no")
		}
		fmt.Printf("Flash:        %dms (base %dms, %s)\n",
			duration.DurationMs, duration.BaseDurationMs, duration.Reason)

		if len(res.SubScores) > 0 {
			fmt.Println()
			fmt.Println("Sub-scores:")
			keys := make([]string, 0, len(res.SubScores))
			for k := range res.SubScores {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Printf("  %-12s  %.2f\n", k, res.SubScores[k])
			}
		}

		fmt.Println()
		fmt.Println(sep)
		fmt.Println("REASONING")
		fmt.Println(sep)
		fmt.Println(res.Reasoning)

		fmt.Println()
		fmt.Println(sep)
		fmt.Println("EXPLANATION")
		fmt.Println(sep)
		fmt.Println(explanation)

		if insight != nil {
			fmt.Println()
			fmt.Println(sep)
			fmt.Printf("AI INSIGHT (%s)\n", insight.Source)
			fmt.Println(sep)
			fmt.Println(insight.Interpretation)
		}

		return nil
	},
}

// insightService assembles the LLM insight service from environment
// configuration. NUMSENSE_LLM_PROVIDER with its NUMSENSE_*_API_KEY
// selects the primary provider; without a valid selection the first
// configured NUMSENSE_* key wins in Groq → Gemini → OpenAI → Anthropic
// order, then the bare GROQ_API_KEY-style variables are probed. When the
// primary is Groq and a Gemini key exists, Gemini rides along as
// fallback, matching the insight service ordering. Returns nil when no
// API key is configured.
func insightService(repo store.EventRepo) *narrative.Service {
	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		switch {
		case cfg.Gemini.APIKey != "":
			cfg.Provider = "gemini"
		case cfg.OpenAI.APIKey != "":
			cfg.Provider = "openai"
		case cfg.Anthropic.APIKey != "":
			cfg.Provider = "anthropic"
		default:
			discovered, ok := llm.DiscoverConfig()
			if !ok {
				return nil
			}
			cfg = discovered
		}
	}

	ctx := context.Background()
	var providers []llm.Provider

	primary, err := llm.NewProvider(ctx, cfg, repo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %s provider unavailable: %v\n", cfg.Provider, err)
	} else {
		providers = append(providers, primary)
	}

	if cfg.Provider == "groq" {
		if cfg.Gemini.APIKey == "" {
			cfg.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
		}
		if cfg.Gemini.APIKey != "" {
			fallback := cfg
			fallback.Provider = "gemini"
			if p, err := llm.NewProvider(ctx, fallback, repo); err == nil {
				providers = append(providers, p)
			} else {
				fmt.Fprintf(os.Stderr, "warning: gemini provider unavailable: %v\n", err)
			}
		}
	}

	if len(providers) == 0 {
		return nil
	}
	return narrative.NewService(cfg.Timeout, providers...)
}

func init() {
	reportCmd.Flags().IntP("difficulty", "d", 3, "Difficulty level for the flash duration calculation")
	reportCmd.Flags().Bool("ai", false, "Generate an AI insight (requires GROQ_API_KEY or GEMINI_API_KEY)")
	reportCmd.Flags().Bool("json", false, "Emit the full report as JSON")
}
