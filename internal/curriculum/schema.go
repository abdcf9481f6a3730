package curriculum

import "github.com/hayashik/onramp/internal/llm"

// Schema is the strict-stage schema for the extracted curriculum JSON.
// Only structural requirements are enforced here; missing optional
// fields are filled with defaults during normalization.
var Schema = &llm.Schema{
	Name:        "learning-curriculum",
	Description: "A personalized onboarding curriculum of chapters and tasks",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Curriculum title",
			},
			"description": map[string]any{
				"type":        "string",
				"description": "What the curriculum covers and for whom",
			},
			"chapters": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title":       map[string]any{"type": "string"},
						"description": map[string]any{"type": "string"},
						"tasks": map[string]any{
							"type":     "array",
							"minItems": 1,
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"title":       map[string]any{"type": "string"},
									"description": map[string]any{"type": "string"},
									"targetFiles": map[string]any{
										"type":  "array",
										"items": map[string]any{"type": "string"},
									},
									"estimatedTime": map[string]any{"type": "string"},
									"prerequisites": map[string]any{
										"type":  "array",
										"items": map[string]any{"type": "string"},
									},
								},
								"required": []any{"title", "description"},
							},
						},
					},
					"required": []any{"title", "tasks"},
				},
			},
		},
		"required": []any{"title", "chapters"},
	},
}
