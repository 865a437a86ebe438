package lib

import (
	"dulcemasa_server/structs"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signSession(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func adminConfig(emails ...string) *structs.AdminConfig {
	return &structs.AdminConfig{
		SessionSecret: testSecret,
		SessionCookie: "dm_session",
		AdminEmails:   emails,
	}
}

func requestWithSession(token string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/admin/categorias", nil)
	if token != "" {
		r.AddCookie(&http.Cookie{Name: "dm_session", Value: token})
	}
	return r
}

func TestIsAllowedEmail(t *testing.T) {
	list := []string{"Ana@Bakery.com", " jorge@bakery.com "}

	assert.True(t, IsAllowedEmail("ana@bakery.com", list))
	assert.True(t, IsAllowedEmail("ANA@BAKERY.COM", list))
	assert.True(t, IsAllowedEmail("jorge@bakery.com", list))
	assert.False(t, IsAllowedEmail("eve@other.com", list))
	assert.False(t, IsAllowedEmail("", list))

	// empty allow-list admits any verified identity
	assert.True(t, IsAllowedEmail("anyone@anywhere.com", nil))
	assert.True(t, IsAllowedEmail("", nil))
}

func TestResolveAdminSuccess(t *testing.T) {
	token := signSession(t, testSecret, jwt.MapClaims{"email": "ana@bakery.com"})

	admin, err := ResolveAdmin(requestWithSession(token), adminConfig("ana@bakery.com"))
	require.NoError(t, err)
	assert.Equal(t, "ana@bakery.com", admin.Email)
}

func TestResolveAdminNoCookie(t *testing.T) {
	_, err := ResolveAdmin(requestWithSession(""), adminConfig("ana@bakery.com"))
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestResolveAdminBadSignature(t *testing.T) {
	token := signSession(t, "other-secret", jwt.MapClaims{"email": "ana@bakery.com"})

	_, err := ResolveAdmin(requestWithSession(token), adminConfig("ana@bakery.com"))
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestResolveAdminMissingEmailClaim(t *testing.T) {
	token := signSession(t, testSecret, jwt.MapClaims{"sub": "123"})

	_, err := ResolveAdmin(requestWithSession(token), adminConfig("ana@bakery.com"))
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestResolveAdminNotOnAllowList(t *testing.T) {
	token := signSession(t, testSecret, jwt.MapClaims{"email": "eve@other.com"})

	_, err := ResolveAdmin(requestWithSession(token), adminConfig("ana@bakery.com"))
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestResolveAdminEmptyAllowList(t *testing.T) {
	token := signSession(t, testSecret, jwt.MapClaims{"email": "anyone@anywhere.com"})

	admin, err := ResolveAdmin(requestWithSession(token), adminConfig())
	require.NoError(t, err)
	assert.Equal(t, "anyone@anywhere.com", admin.Email)
}
