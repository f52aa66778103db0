package utils

import (
	"time" // Time for token expiration

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// SessionClaims carries the opaque session ID inside the signed cookie.
// Identity stays server-side so logout can revoke it immediately.
type SessionClaims struct {
	SessionID            string `json:"sid"` // Custom claim for the session ID
	jwt.RegisteredClaims        // Standard JWT claims
}

// SignSessionToken creates a signed cookie value for a session ID.
func SignSessionToken(sessionID, secret string) (string, error) {
	claims := SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseSessionToken validates a cookie value and returns the session ID.
func ParseSessionToken(tokenStr, secret string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims.SessionID, nil
	}
	return "", jwt.ErrSignatureInvalid
}
