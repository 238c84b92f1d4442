package catalog

// catalogSchema is the JSON Schema a catalog file must satisfy. Structural
// checks beyond the schema's reach (duplicate IDs, unknown axes) happen in
// validateItems.
var catalogSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"items": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"content_type": map[string]any{
						"type": "string",
						"enum": []any{"vocabulary", "phrase", "grammar", "texting"},
					},
					"spanish": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"english": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"example": map[string]any{"type": "string"},
					"notes":   map[string]any{"type": "string"},
					"topic": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"difficulty": map[string]any{
						"type":    "integer",
						"minimum": 1,
						"maximum": 5,
					},
					"cefr": map[string]any{
						"type": "string",
						"enum": []any{"A1", "A2", "B1", "B2", "C1", "C2"},
					},
					"skill_requirements": map[string]any{
						"type": "object",
						"additionalProperties": map[string]any{
							"type":    "integer",
							"minimum": 1,
							"maximum": 5,
						},
					},
					"skill_contributions": map[string]any{
						"type": "object",
						"additionalProperties": map[string]any{
							"type":    "integer",
							"minimum": 1,
							"maximum": 5,
						},
					},
					"prompt_forms": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "string",
							"enum": []any{"recognition", "cued_production", "free_production", "application"},
						},
					},
				},
				"required":             []any{"id", "content_type", "spanish", "english", "topic", "cefr"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"items"},
	"additionalProperties": false,
}
