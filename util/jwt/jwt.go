package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaim is the claim carrying the storefront session id.
const SessionClaim = "sid"

// Issue signs a session token. It identifies a browsing session, not a user.
func Issue(secret, sessionID string, ttlHours int) (string, error) {
	claims := jwt.MapClaims{
		SessionClaim: sessionID,
		"iat":        time.Now().Unix(),
		"exp":        time.Now().Add(time.Duration(ttlHours) * time.Hour).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// SessionID extracts the sid claim from an already verified token.
func SessionID(tok *jwt.Token) (string, error) {
	if tok == nil || !tok.Valid {
		return "", errors.New("invalid token")
	}
	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims")
	}
	sid, ok := mc[SessionClaim].(string)
	if !ok || sid == "" {
		return "", errors.New("sid missing in claims")
	}
	return sid, nil
}
