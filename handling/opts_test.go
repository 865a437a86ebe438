package handling

import (
	"context"
	"dulcemasa_server/lib"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithParam(name, value string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(name, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestParseUUIDParam(t *testing.T) {
	want := uuid.New()

	got, err := ParseUUIDParam(requestWithParam("id", want.String()), "id")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = ParseUUIDParam(requestWithParam("id", "not-a-uuid"), "id")
	assert.ErrorIs(t, err, lib.ErrInvalidInput)

	_, err = ParseUUIDParam(requestWithParam("id", uuid.Nil.String()), "id")
	assert.ErrorIs(t, err, lib.ErrInvalidInput)
}

func TestCategorySlugQuery(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/productos?categoriaSlug=Tortas", nil)
	slug, err := CategorySlugQuery(r)
	require.NoError(t, err)
	assert.Equal(t, "tortas", slug)

	// short form accepted too
	r = httptest.NewRequest(http.MethodGet, "/productos?categoria=panes", nil)
	slug, err = CategorySlugQuery(r)
	require.NoError(t, err)
	assert.Equal(t, "panes", slug)

	r = httptest.NewRequest(http.MethodGet, "/productos", nil)
	_, err = CategorySlugQuery(r)
	assert.ErrorIs(t, err, lib.ErrInvalidInput)
}
