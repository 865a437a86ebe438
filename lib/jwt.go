package lib

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ParseSessionToken verifies an externally issued session JWT and returns the
// verified email. The token is the auth provider's; this service never mints
// one, it only checks the signature and reads the identity out.
func ParseSessionToken(tokenStr, secret string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", jwt.ErrInvalidKey
	}

	email, ok := claims["email"].(string)
	if !ok || strings.TrimSpace(email) == "" {
		return "", fmt.Errorf("missing email claim")
	}

	return email, nil
}
