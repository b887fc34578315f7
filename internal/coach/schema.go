package coach

import "github.com/adixit/intervue/internal/llm"

// FeedbackSchema defines the JSON schema for answer feedback.
var FeedbackSchema = &llm.Schema{
	Name:        "interview-feedback",
	Description: "Structured feedback on a candidate's free-text interview answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"assessment": map[string]any{
				"type":        "string",
				"description": "2-3 sentence assessment of the answer's substance",
			},
			"strengths": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "1-3 things the answer did well (5-10 words each)",
			},
			"gaps": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "1-3 things the answer missed (5-10 words each)",
			},
			"model_tip": map[string]any{
				"type":        "string",
				"description": "One sentence on how a strong candidate would answer",
			},
		},
		"required":             []any{"assessment", "strengths", "gaps", "model_tip"},
		"additionalProperties": false,
	},
}
