package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/role-recommender/internal/types"
)

const directBody = `{
	"direct_matches": [{"title": "Backend Developer", "reason": "server work"}],
	"trending_roles": [{"title": "AI Engineer", "existing_skills": ["Python"], "missing_skills": ["Machine Learning"]}]
}`

func TestParseRecommendations_DirectShape(t *testing.T) {
	parsed, ferr := parseRecommendations([]byte(directBody))

	require.Nil(t, ferr)
	require.Len(t, parsed.DirectMatches, 1)
	assert.Equal(t, "Backend Developer", parsed.DirectMatches[0].Title)
	assert.Equal(t, "server work", parsed.DirectMatches[0].Reason)
	require.Len(t, parsed.TrendingRoles, 1)
	assert.Equal(t, []string{"Machine Learning"}, parsed.TrendingRoles[0].MissingSkills)
}

func TestParseRecommendations_LegacyShape(t *testing.T) {
	body := `{"recommendations": "{\"direct_matches\": [{\"title\": \"Backend Developer\", \"reason\": \"server work\"}], \"trending_roles\": []}"}`

	parsed, ferr := parseRecommendations([]byte(body))

	require.Nil(t, ferr)
	require.Len(t, parsed.DirectMatches, 1)
	assert.Equal(t, "Backend Developer", parsed.DirectMatches[0].Title)
	assert.Empty(t, parsed.TrendingRoles)
}

func TestParseRecommendations_LegacyShapeWithCodeFences(t *testing.T) {
	body := "{\"recommendations\": \"```json\\n{\\\"direct_matches\\\": [{\\\"title\\\": \\\"QA Engineer\\\", \\\"reason\\\": \\\"testing\\\"}], \\\"trending_roles\\\": []}\\n```\"}"

	parsed, ferr := parseRecommendations([]byte(body))

	require.Nil(t, ferr)
	require.Len(t, parsed.DirectMatches, 1)
	assert.Equal(t, "QA Engineer", parsed.DirectMatches[0].Title)
}

func TestParseRecommendations_LegacyAndDirectEquivalent(t *testing.T) {
	legacy := `{"recommendations": "{\"direct_matches\": [{\"title\": \"Backend Developer\", \"reason\": \"server work\"}], \"trending_roles\": [{\"title\": \"AI Engineer\", \"existing_skills\": [\"Python\"], \"missing_skills\": [\"Machine Learning\"]}]}"}`

	fromLegacy, ferr := parseRecommendations([]byte(legacy))
	require.Nil(t, ferr)
	fromDirect, ferr := parseRecommendations([]byte(directBody))
	require.Nil(t, ferr)

	assert.Equal(t, fromDirect, fromLegacy)
}

func TestParseRecommendations_MalformedListsCoercedToEmpty(t *testing.T) {
	body := `{"direct_matches": "oops", "trending_roles": 17}`

	parsed, ferr := parseRecommendations([]byte(body))

	require.Nil(t, ferr, "malformed list fields are recoverable, not a failure")
	assert.Equal(t, []types.DirectMatch{}, parsed.DirectMatches)
	assert.Equal(t, []types.RemoteTrendingRole{}, parsed.TrendingRoles)
}

func TestParseRecommendations_MissingFieldsIsShapeFailure(t *testing.T) {
	parsed, ferr := parseRecommendations([]byte(`{"something_else": true}`))

	assert.Nil(t, parsed)
	require.NotNil(t, ferr)
	assert.Equal(t, FailureShape, ferr.Kind)
}

func TestParseRecommendations_NullListsIsShapeFailure(t *testing.T) {
	parsed, ferr := parseRecommendations([]byte(`{"direct_matches": null, "trending_roles": null}`))

	assert.Nil(t, parsed)
	require.NotNil(t, ferr)
	assert.Equal(t, FailureShape, ferr.Kind)
}

func TestParseRecommendations_BadJSONIsDecodeFailure(t *testing.T) {
	parsed, ferr := parseRecommendations([]byte(`{truncated`))

	assert.Nil(t, parsed)
	require.NotNil(t, ferr)
	assert.Equal(t, FailureDecode, ferr.Kind)
}

func TestParseRecommendations_BadLegacyInnerIsDecodeFailure(t *testing.T) {
	parsed, ferr := parseRecommendations([]byte(`{"recommendations": "not valid json"}`))

	assert.Nil(t, parsed)
	require.NotNil(t, ferr)
	assert.Equal(t, FailureDecode, ferr.Kind)
}

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `{"a": 1}`, stripCodeFences("```json\n{\"a\": 1}\n```"))
	assert.Equal(t, `{"a": 1}`, stripCodeFences("```\n{\"a\": 1}\n```"))
	assert.Equal(t, `{"a": 1}`, stripCodeFences(`{"a": 1}`))
	assert.Equal(t, `{"a": 1}`, stripCodeFences("  {\"a\": 1}  "))
}

func TestFailureError_AdvisoriesAreDistinct(t *testing.T) {
	kinds := []FailureKind{
		FailureDisabled, FailureTransport, FailureTimeout,
		FailureStatus, FailureDecode, FailureShape,
	}

	seen := map[string]FailureKind{}
	for _, kind := range kinds {
		advisory := (&FailureError{Kind: kind}).Advisory()
		prev, dup := seen[advisory]
		assert.False(t, dup, "kinds %s and %s share advisory text", prev, kind)
		seen[advisory] = kind
		assert.Contains(t, advisory, "locally computed recommendations")
	}
}
