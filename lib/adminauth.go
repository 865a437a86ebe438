package lib

import (
	"dulcemasa_server/structs"
	"net/http"
	"strings"
)

// ResolveAdmin is the access gate: it resolves the caller's identity from the
// session cookie and checks it against the allow-list. It is the ONE place
// this decision lives; the routing middleware and every mutating admin
// handler both call it, so the two checks cannot drift apart.
//
// Returns ErrUnauthorized when no identity resolves and ErrForbidden when the
// identity is not allow-listed. Side-effect free.
func ResolveAdmin(r *http.Request, cfg *structs.AdminConfig) (*structs.AdminIdentity, error) {
	token, err := GetCookieValue(cfg.SessionCookie, r)
	if err != nil {
		return nil, ErrUnauthorized
	}

	email, err := ParseSessionToken(token, cfg.SessionSecret)
	if err != nil {
		return nil, ErrUnauthorized
	}

	if !IsAllowedEmail(email, cfg.AdminEmails) {
		return nil, ErrForbidden
	}

	return &structs.AdminIdentity{Email: email}, nil
}

// IsAllowedEmail checks email against the allow-list, case-insensitively.
// An empty allow-list admits everyone with a verified identity; that is the
// operator's explicit opt-out, not an accident.
func IsAllowedEmail(email string, allowList []string) bool {
	if len(allowList) == 0 {
		return true
	}
	if email == "" {
		return false
	}

	needle := strings.ToLower(strings.TrimSpace(email))
	for _, allowed := range allowList {
		if strings.ToLower(strings.TrimSpace(allowed)) == needle {
			return true
		}
	}
	return false
}
