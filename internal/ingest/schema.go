package ingest

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/framedesk/order-intake/internal/entity"
)

// BuildIngestResultSchema returns the engine-output contract as a
// JSON-Schema (draft 2020-12 subset) generic map. The persistence layer
// consumes exactly this shape; validating here catches contract drift
// before anything is stored.
func BuildIngestResultSchema() map[string]any {
	itemProps := map[string]any{
		"sku":               map[string]any{"type": "string"},
		"brand":             map[string]any{"type": "string"},
		"model":             map[string]any{"type": "string"},
		"color_code":        map[string]any{"type": "string"},
		"size":              map[string]any{"type": "string"},
		"quantity":          map[string]any{"type": "integer", "minimum": 1},
		"api_verified":      map[string]any{"type": "boolean"},
		"confidence_score":  map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
		"validation_reason": map[string]any{"type": "string"},
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"vendor":         map[string]any{"type": "string", "minLength": 1},
			"account_number": map[string]any{"type": []string{"string", "null"}},
			"order": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"order_number":  map[string]any{"type": "string"},
					"customer_name": map[string]any{"type": "string"},
					"order_date":    map[string]any{"type": "string"},
					"total_pieces":  map[string]any{"type": "integer", "minimum": 0},
					"parse_status":  map[string]any{"type": "string", "enum": []string{"PARSED", "PARTIAL", "FAILED"}},
				},
				"required": []string{"order_number", "parse_status"},
			},
			"items": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":       "object",
					"properties": itemProps,
					"required":   []string{"sku", "quantity", "api_verified", "confidence_score"},
				},
			},
			"parsed_at": map[string]any{"type": "string", "format": "date-time"},
			"enrichment_stats": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"totalFrames":           map[string]any{"type": "integer", "minimum": 0},
					"validated":             map[string]any{"type": "integer", "minimum": 0},
					"validationRate":        map[string]any{"type": "number", "minimum": 0, "maximum": 100},
					"processingTimeSeconds": map[string]any{"type": "number", "minimum": 0},
					"framesPerSecond":       map[string]any{"type": "number", "minimum": 0},
				},
				"required": []string{"totalFrames", "validated", "validationRate"},
			},
		},
		"required": []string{"vendor", "order", "items", "parsed_at", "enrichment_stats"},
	}
}

// ValidateResultPayload checks an IngestResult against the output schema.
func ValidateResultPayload(result *entity.IngestResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	return ValidateJSONAgainstSchema(BuildIngestResultSchema(), data)
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
