package schema

import "encoding/json"

// ResultJSONSchema returns the strict JSON schema for QuoteCheckResult. It is
// embedded in the prompt and sent as the structured-output constraint, so it
// must stay in lockstep with the Go types in this package.
//
// Strict mode only supports a subset of JSON Schema (type, enum, properties,
// required, items, additionalProperties), so numeric ranges live in
// descriptions and are enforced by Validate instead.
func ResultJSONSchema() map[string]any {
	priceSchema := map[string]any{
		"type": []string{"object", "null"},
		"properties": map[string]any{
			"amount":   map[string]any{"type": "number", "description": "Price amount, >= 0"},
			"currency": map[string]any{"type": "string", "description": "Currency code or symbol (e.g., INR, USD)"},
		},
		"required":             []string{"amount", "currency"},
		"additionalProperties": false,
	}

	lineItemSchema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name_raw": map[string]any{"type": "string", "description": "Original text as present in the quote"},
			"normalized_category": map[string]any{
				"type": "string",
				"enum": []string{"safety_critical", "preventive_maintenance", "wear_and_tear", "cosmetic_or_upsell", "unknown_needs_clarification"},
			},
			"recommended_action": map[string]any{
				"type": "string",
				"enum": []string{"approve", "consider", "defer", "ask_for_evidence", "needs_inspection", "unknown"},
			},
			"risk_level": map[string]any{
				"type": "string",
				"enum": []string{"green", "yellow", "red"},
			},
			"confidence":      map[string]any{"type": "number", "description": "Classification confidence in [0, 1]"},
			"rationale_short": map[string]any{"type": "string", "description": "Short explanation, 1-2 sentences"},
			"price":           priceSchema,
			"evidence_needed": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Evidence to ask for (photos, measurements, codes)",
			},
		},
		"required":             []string{"name_raw", "normalized_category", "recommended_action", "risk_level", "confidence", "rationale_short", "price", "evidence_needed"},
		"additionalProperties": false,
	}

	uncertaintySchema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"ambiguous_items_present":     map[string]any{"type": "boolean"},
			"missing_vehicle_context":     map[string]any{"type": "boolean"},
			"needs_mechanic_confirmation": map[string]any{"type": "boolean"},
		},
		"required":             []string{"ambiguous_items_present", "missing_vehicle_context", "needs_mechanic_confirmation"},
		"additionalProperties": false,
	}

	refusalSchema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"type": map[string]any{
				"type": "string",
				"enum": []string{"unsafe_instruction", "illegal", "medical_like_advice", "other"},
			},
			"message": map[string]any{"type": "string"},
		},
		"required":             []string{"type", "message"},
		"additionalProperties": false,
	}

	metadataSchema := map[string]any{
		"type":        "object",
		"description": "Per-run metadata; overwritten with server truth after generation",
		"properties": map[string]any{
			"prompt_version": map[string]any{"type": "string"},
			"model":          map[string]any{"type": "string"},
			"created_at":     map[string]any{"type": "string", "description": "RFC 3339 timestamp"},
			"request_id":     map[string]any{"type": "string"},
			"latency_ms":     map[string]any{"type": "integer"},
			"schema_valid":   map[string]any{"type": "boolean"},
		},
		"required":             []string{"prompt_version", "model", "created_at", "request_id", "latency_ms", "schema_valid"},
		"additionalProperties": false,
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"line_items": map[string]any{
				"type":        "array",
				"items":       lineItemSchema,
				"description": "At least one item",
			},
			"overall_summary": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "3-5 short bullet strings",
			},
			"verification_questions": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "3-8 questions for the service center",
			},
			"things_to_verify": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "At least 3 concrete checks",
			},
			"uncertainty_markers": uncertaintySchema,
			"refusals": map[string]any{
				"type":  "array",
				"items": refusalSchema,
			},
			"disclaimer": map[string]any{"type": "string"},
			"metadata":   metadataSchema,
		},
		"required":             []string{"line_items", "overall_summary", "verification_questions", "things_to_verify", "uncertainty_markers", "refusals", "disclaimer", "metadata"},
		"additionalProperties": false,
	}
}

// ResultJSONSchemaString is the compact string form used inside the prompt.
func ResultJSONSchemaString() string {
	b, _ := json.Marshal(ResultJSONSchema())
	return string(b)
}
