package contracts

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKeyFromPath(t *testing.T) {
	assert.Equal(t, "Contact", generateKeyFromPath("schemas/contact.json"))
	assert.Equal(t, "PropertyRequest", generateKeyFromPath("schemas/property-request.json"))
	assert.Equal(t, "SearchFilters", generateKeyFromPath("schemas/search-filters.json"))
}

func TestValidateContact(t *testing.T) {
	valid := []byte(`{"name":"أحمد","phone":"0790000000","message":"مرحبا"}`)
	assert.NoError(t, ValidateRequest("Contact", valid))

	missingPhone := []byte(`{"name":"أحمد","message":"مرحبا"}`)
	err := ValidateRequest("Contact", missingPhone)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Details)
}

func TestValidatePropertyRequiresCoreFields(t *testing.T) {
	valid := []byte(`{"title":"شقة مميزة","price":85000,"size":150,"property_type":"apartment"}`)
	assert.NoError(t, ValidateRequest("Property", valid))

	negativePrice := []byte(`{"title":"شقة","price":-5,"size":150,"property_type":"apartment"}`)
	assert.Error(t, ValidateRequest("Property", negativePrice))

	noTitle := []byte(`{"price":85000,"size":150,"property_type":"apartment"}`)
	assert.Error(t, ValidateRequest("Property", noTitle))
}

func TestValidateNewsletterEmailFormat(t *testing.T) {
	assert.NoError(t, ValidateRequest("Newsletter", []byte(`{"email":"reader@example.com"}`)))
	assert.Error(t, ValidateRequest("Newsletter", []byte(`{"email":"not-an-email"}`)))
	assert.Error(t, ValidateRequest("Newsletter", []byte(`{}`)))
}

func TestValidateSearchFiltersAcceptsEmptyObject(t *testing.T) {
	assert.NoError(t, ValidateRequest("SearchFilters", []byte(`{}`)))
	assert.NoError(t, ValidateRequest("SearchFilters", []byte(`{"min_price":1000,"location":"عبدون"}`)))
	assert.Error(t, ValidateRequest("SearchFilters", []byte(`{"min_price":-1}`)))
}

func TestValidateRejectsMalformedJSON(t *testing.T) {
	err := ValidateRequest("Contact", []byte(`{not json`))
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Details[0], "not valid JSON")
}

func TestValidateUnknownSchema(t *testing.T) {
	err := ValidateRequest("NoSuchSchema", []byte(`{}`))
	require.Error(t, err)

	// Not a validation error: the schema key itself is wrong.
	var ve *ValidationError
	assert.False(t, errors.As(err, &ve))
}
