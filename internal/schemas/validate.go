// Package schemas provides JSON Schema validation for the recommendation
// service's wire shapes.
package schemas

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// The service's response contract evolved, so two shapes coexist. The legacy
// shape wraps the payload in a JSON string; the direct shape carries the two
// lists natively. Both schemas check presence only: list fields that exist
// but are malformed are recovered downstream by substituting empty lists, so
// constraining their types here would turn a recoverable defect into a full
// fallback.
const (
	legacySchema = `{
		"type": "object",
		"required": ["recommendations"],
		"properties": {
			"recommendations": {"type": "string"}
		}
	}`

	directSchema = `{
		"type": "object",
		"required": ["direct_matches", "trending_roles"]
	}`
)

// ValidationError reports why a payload failed schema validation, with one
// entry per violated field.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single validation failure at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateLegacyShape checks that a response body carries the legacy
// string-wrapped payload.
func ValidateLegacyShape(body []byte) error {
	return validate(legacySchema, body)
}

// ValidateDirectShape checks that a response body carries both recommendation
// lists natively.
func ValidateDirectShape(body []byte) error {
	return validate(directSchema, body)
}

func validate(schema string, body []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(body),
	)
	if err != nil {
		return fmt.Errorf("failed to validate payload: %w", err)
	}

	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}
