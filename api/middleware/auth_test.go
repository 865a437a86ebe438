package middleware

import (
	"dulcemasa_server/config"
	"dulcemasa_server/structs"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func testMiddleware(t *testing.T, emails ...string) *Middleware {
	t.Helper()
	config.InitializeLogger()
	cfg := &structs.Config{
		Admin: &structs.AdminConfig{
			SessionSecret: testSecret,
			SessionCookie: "dm_session",
			AdminEmails:   emails,
		},
	}
	return NewMiddleware(cfg, nil)
}

func signSession(t *testing.T, email string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"email": email})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func gatedRequest(t *testing.T, mw *Middleware, cookie string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	var sawAdmin bool
	handler := mw.AdminAuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAdmin = GetAdminFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	r := httptest.NewRequest(http.MethodGet, "/admin/categorias", nil)
	if cookie != "" {
		r.AddCookie(&http.Cookie{Name: "dm_session", Value: cookie})
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	return w, sawAdmin
}

func TestAdminAuthMiddlewareAllowsListedEmail(t *testing.T) {
	mw := testMiddleware(t, "ana@bakery.com")

	w, sawAdmin := gatedRequest(t, mw, signSession(t, "ana@bakery.com"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, sawAdmin)
}

func TestAdminAuthMiddlewareRejectsMissingSession(t *testing.T) {
	mw := testMiddleware(t, "ana@bakery.com")

	w, sawAdmin := gatedRequest(t, mw, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, sawAdmin)
}

func TestAdminAuthMiddlewareRejectsUnlistedEmail(t *testing.T) {
	mw := testMiddleware(t, "ana@bakery.com")

	w, sawAdmin := gatedRequest(t, mw, signSession(t, "eve@other.com"))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, sawAdmin)
}

func TestAdminAuthMiddlewareEmptyAllowListAdmitsVerified(t *testing.T) {
	mw := testMiddleware(t)

	w, sawAdmin := gatedRequest(t, mw, signSession(t, "anyone@anywhere.com"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, sawAdmin)
}

func TestAdminAuthMiddlewareRejectsGarbageToken(t *testing.T) {
	mw := testMiddleware(t, "ana@bakery.com")

	w, sawAdmin := gatedRequest(t, mw, "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, sawAdmin)
}
