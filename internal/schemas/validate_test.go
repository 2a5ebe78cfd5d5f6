package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLegacyShape_Valid(t *testing.T) {
	body := []byte(`{"recommendations": "{\"directFitJobs\": []}"}`)

	assert.NoError(t, ValidateLegacyShape(body))
}

func TestValidateLegacyShape_MissingField(t *testing.T) {
	err := ValidateLegacyShape([]byte(`{"other": 1}`))

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.NotEmpty(t, ve.Errors)
	assert.Contains(t, err.Error(), "recommendations")
}

func TestValidateLegacyShape_WrongType(t *testing.T) {
	err := ValidateLegacyShape([]byte(`{"recommendations": 42}`))

	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestValidateDirectShape_Valid(t *testing.T) {
	body := []byte(`{"direct_matches": [], "trending_roles": []}`)

	assert.NoError(t, ValidateDirectShape(body))
}

func TestValidateDirectShape_PresenceOnly(t *testing.T) {
	// Malformed list values still pass: type recovery happens downstream.
	body := []byte(`{"direct_matches": "oops", "trending_roles": 3}`)

	assert.NoError(t, ValidateDirectShape(body))
}

func TestValidateDirectShape_MissingOneList(t *testing.T) {
	err := ValidateDirectShape([]byte(`{"direct_matches": []}`))

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, err.Error(), "trending_roles")
}

func TestValidateDirectShape_NotJSON(t *testing.T) {
	err := ValidateDirectShape([]byte(`not json at all`))

	assert.Error(t, err)
	var ve *ValidationError
	assert.False(t, errors.As(err, &ve), "malformed JSON is not a field-level validation error")
}
