package types

import (
	"github.com/go-playground/validator/v10"
)

// AnalyzeRequest represents an analysis request submitted over the API.
// The engine itself imposes no minimum length; the boundary does, so a
// degenerate paste gets rejected before it produces an empty result.
type AnalyzeRequest struct {
	Description string `json:"description" validate:"required,min=1"`
}

// AnalyzeResponse wraps an AnalysisResult for API responses, together with
// the request id and an advisory notice when the local fallback was used.
type AnalyzeResponse struct {
	RequestID string          `json:"request_id"`
	Result    *AnalysisResult `json:"result"`
	Notice    string          `json:"notice,omitempty"`
	// Description echoes the text extracted from an uploaded document so the
	// caller can show it for review.
	Description string `json:"description,omitempty"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
