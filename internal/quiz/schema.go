package quiz

import "github.com/hayashik/onramp/internal/llm"

// Schema is the strict-stage schema for the extracted quiz JSON. Only
// structural requirements are enforced here; question-count and
// correct-choice invariants are repaired during normalization.
var Schema = &llm.Schema{
	Name:        "diagnostic-quiz",
	Description: "A multiple-choice quiz probing familiarity with the project's technologies",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"technology": map[string]any{
							"type":        "string",
							"description": "The technology this question probes",
						},
						"difficulty": map[string]any{
							"type": "string",
							"enum": []any{"beginner", "intermediate", "advanced"},
						},
						"questionText": map[string]any{"type": "string"},
						"choices": map[string]any{
							"type":     "array",
							"minItems": 2,
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"text":      map[string]any{"type": "string"},
									"isCorrect": map[string]any{"type": "boolean"},
								},
								"required": []any{"text"},
							},
						},
						"explanation": map[string]any{"type": "string"},
					},
					"required": []any{"technology", "questionText", "choices"},
				},
			},
		},
		"required": []any{"questions"},
	},
}
