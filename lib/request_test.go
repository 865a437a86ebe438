package lib

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createBody struct {
	Name string  `json:"nombre" validate:"required,min=1,max=10"`
	URL  *string `json:"url" validate:"omitempty,url"`
}

func bodyRequest(payload string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload))
	r.Header.Set("Content-Type", "application/json")
	return r
}

func TestExtractAndValidateBody(t *testing.T) {
	body, err := ExtractAndValidateBody[createBody](bodyRequest(`{"nombre": "Tortas"}`))
	require.NoError(t, err)
	assert.Equal(t, "Tortas", body.Name)
}

func TestExtractAndValidateBodyRejectsUnknownFields(t *testing.T) {
	_, err := ExtractAndValidateBody[createBody](bodyRequest(`{"nombre": "Tortas", "hacker": true}`))
	assert.Error(t, err)
}

func TestExtractAndValidateBodyValidation(t *testing.T) {
	_, err := ExtractAndValidateBody[createBody](bodyRequest(`{}`))
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Errors, 1)
	assert.Equal(t, "name", ve.Errors[0].Field)
	assert.Equal(t, "is required", ve.Errors[0].Message)

	_, err = ExtractAndValidateBody[createBody](bodyRequest(`{"nombre": "Tortas", "url": "not a url"}`))
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "must be a valid URL", ve.Errors[0].Message)
}

func TestExtractAndValidateBodyMalformedJSON(t *testing.T) {
	_, err := ExtractAndValidateBody[createBody](bodyRequest(`{"nombre":`))
	assert.Error(t, err)
}

func TestExtractAndValidateBodyDecodeFailuresAreInvalidInput(t *testing.T) {
	_, err := ExtractAndValidateBody[createBody](bodyRequest(`{not json`))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = ExtractAndValidateBody[createBody](bodyRequest(`{"nombre": "Tortas", "hack": 1}`))
	assert.ErrorIs(t, err, ErrInvalidInput)
}
