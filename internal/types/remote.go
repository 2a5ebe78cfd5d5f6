package types

import "encoding/json"

// RemoteResponse is the raw wire response from the recommendation service.
// Two shapes coexist because the service contract evolved:
//
//   - legacy: {"recommendations": "<JSON string, possibly fenced in ```json>"}
//   - direct: {"direct_matches": [...], "trending_roles": [...]}
//
// Fields are kept as RawMessage so shape dispatch can distinguish "absent"
// from "present but malformed".
type RemoteResponse struct {
	Recommendations json.RawMessage `json:"recommendations,omitempty"`
	DirectMatches   json.RawMessage `json:"direct_matches,omitempty"`
	TrendingRoles   json.RawMessage `json:"trending_roles,omitempty"`
}

// RemoteErrorBody is the structured error body some service errors carry.
// It is read purely for diagnostic reporting; its content never changes
// control flow.
type RemoteErrorBody struct {
	Error   string `json:"error,omitempty"`
	Details string `json:"details,omitempty"`
}

// DirectMatch is one remote direct-fit recommendation before enrichment.
type DirectMatch struct {
	Title  string `json:"title"`
	Reason string `json:"reason"`
}

// RemoteTrendingRole is one remote trending recommendation before enrichment.
type RemoteTrendingRole struct {
	Title          string   `json:"title"`
	ExistingSkills []string `json:"existing_skills"`
	MissingSkills  []string `json:"missing_skills"`
}

// ParsedRecommendations is the normalized payload shared by both wire shapes.
type ParsedRecommendations struct {
	DirectMatches []DirectMatch        `json:"direct_matches"`
	TrendingRoles []RemoteTrendingRole `json:"trending_roles"`
}
