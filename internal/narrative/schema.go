package narrative

import "github.com/abhisek/numsense/internal/llm"

// insightSchema is the response contract for session insight generation.
// The sub-score keys match the scored task families.
var insightSchema = &llm.Schema{
	Name:        "session-insight",
	Description: "Structured interpretation of a numeracy assessment session",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"pattern": map[string]any{
				"type":        "string",
				"enum":        []any{"exposure_related", "possible_dyscalculia_signal", "unclear"},
				"description": "Most likely explanation for the observed performance",
			},
			"confidence": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     1,
				"description": "Confidence in the pattern classification",
			},
			"score": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     100,
				"description": "Overall performance score",
			},
			"sub_scores": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"quantity":       map[string]any{"type": "number", "minimum": 0, "maximum": 100},
					"comparison":     map[string]any{"type": "number", "minimum": 0, "maximum": 100},
					"symbol":         map[string]any{"type": "number", "minimum": 0, "maximum": 100},
					"flash_counting": map[string]any{"type": "number", "minimum": 0, "maximum": 100},
				},
				"required": []any{"quantity", "comparison", "symbol", "flash_counting"},
			},
			"reasoning": map[string]any{
				"type":        "string",
				"description": "Brief explanation of the analysis",
			},
			"interpretation": map[string]any{
				"type":        "string",
				"description": "Parent-friendly interpretation",
			},
		},
		"required": []any{"pattern", "confidence", "score", "sub_scores", "reasoning", "interpretation"},
	},
}
