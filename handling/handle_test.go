package handling

import (
	"dulcemasa_server/lib"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MonkyMars/gecho"
	"github.com/stretchr/testify/assert"
)

type namedBody struct {
	Name string `json:"nombre" validate:"required"`
}

func decodeError(t *testing.T, payload string) error {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload))
	r.Header.Set("Content-Type", "application/json")
	_, err := lib.ExtractAndValidateBody[namedBody](r)
	return err
}

type opaqueErr string

func (e opaqueErr) Error() string { return string(e) }

func TestHandleErrorStatusMapping(t *testing.T) {
	logger := gecho.NewDefaultLogger()

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid input", lib.ErrInvalidInput, http.StatusBadRequest},
		{"not found", lib.ErrNotFound, http.StatusNotFound},
		{"conflict", lib.ErrConflict, http.StatusConflict},
		{"unauthorized", lib.ErrUnauthorized, http.StatusUnauthorized},
		{"forbidden", lib.ErrForbidden, http.StatusForbidden},
		{"opaque backend failure", opaqueErr("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			HandleError(tc.err, "error.test", logger, w)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestHandleErrorMalformedBodyIsBadRequest(t *testing.T) {
	logger := gecho.NewDefaultLogger()

	for _, payload := range []string{`{not json`, `{"nombre": "x", "hack": 1}`} {
		err := decodeError(t, payload)
		assert.Error(t, err)

		w := httptest.NewRecorder()
		HandleError(err, "error.invalidBody", logger, w)
		assert.Equal(t, http.StatusBadRequest, w.Code, payload)
	}
}

func TestHandleErrorValidationFailureIsBadRequest(t *testing.T) {
	logger := gecho.NewDefaultLogger()

	err := decodeError(t, `{}`)
	assert.Error(t, err)

	w := httptest.NewRecorder()
	HandleError(err, "error.invalidBody", logger, w)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
