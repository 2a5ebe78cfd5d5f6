package recommend

import (
	"encoding/json"
	"strings"

	"github.com/jonathan/role-recommender/internal/schemas"
	"github.com/jonathan/role-recommender/internal/types"
)

// parseRecommendations performs the tagged-shape dispatch on a raw response
// body. It tries the legacy string-wrapped shape first, then the direct
// shape, and returns a FailureError when neither applies. List fields that
// are present but malformed are coerced to empty lists rather than treated
// as a failure; only a missing shape or unparseable JSON aborts.
func parseRecommendations(body []byte) (*types.ParsedRecommendations, *FailureError) {
	var resp types.RemoteResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &FailureError{Kind: FailureDecode, Cause: err}
	}

	if wrapped, ok := legacyPayload(resp.Recommendations); ok {
		var inner types.RemoteResponse
		if err := json.Unmarshal([]byte(stripCodeFences(wrapped)), &inner); err != nil {
			return nil, &FailureError{Kind: FailureDecode, Cause: err}
		}
		return coerce(inner), nil
	}

	if err := schemas.ValidateDirectShape(body); err != nil {
		return nil, &FailureError{Kind: FailureShape, Cause: err}
	}
	if isNull(resp.DirectMatches) || isNull(resp.TrendingRoles) {
		return nil, &FailureError{Kind: FailureShape}
	}
	return coerce(resp), nil
}

// legacyPayload reports whether the recommendations field carries the legacy
// string-wrapped payload, and returns the wrapped string.
func legacyPayload(raw json.RawMessage) (string, bool) {
	if isNull(raw) {
		return "", false
	}
	var wrapped string
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return "", false
	}
	return wrapped, true
}

// coerce converts raw list fields into the normalized payload, substituting
// empty lists for missing or malformed fields.
func coerce(resp types.RemoteResponse) *types.ParsedRecommendations {
	parsed := &types.ParsedRecommendations{
		DirectMatches: []types.DirectMatch{},
		TrendingRoles: []types.RemoteTrendingRole{},
	}

	if !isNull(resp.DirectMatches) {
		var matches []types.DirectMatch
		if err := json.Unmarshal(resp.DirectMatches, &matches); err == nil && matches != nil {
			parsed.DirectMatches = matches
		}
	}
	if !isNull(resp.TrendingRoles) {
		var roles []types.RemoteTrendingRole
		if err := json.Unmarshal(resp.TrendingRoles, &roles); err == nil && roles != nil {
			parsed.TrendingRoles = roles
		}
	}

	return parsed
}

// isNull reports whether a raw field is absent or JSON null.
func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

// stripCodeFences removes the markdown code fences the legacy payload is
// often wrapped in.
func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
	}
	if idx := strings.LastIndex(text, "```"); idx >= 0 && strings.HasSuffix(text, "```") {
		text = text[:idx]
	}

	return strings.TrimSpace(text)
}
