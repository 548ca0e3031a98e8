package services

import (
	"errors"

	"github.com/google/uuid"
)

// Cookie carrying the anonymous session token. Whoever holds the value
// owns the meals recorded under it; there is no revocation or rotation.
const (
	SessionCookieName   = "sessionId"
	SessionCookieMaxAge = 60 * 60 * 24 * 365 // 365 days
)

var ErrNoSession = errors.New("session cookie missing")

// ResolveOrCreateSession returns the incoming token untouched when present,
// otherwise mints a fresh random UUID. The caller is responsible for
// sending a newly minted token back as a persistent cookie.
func ResolveOrCreateSession(incoming string) (string, bool) {
	if incoming != "" {
		return incoming, false
	}
	return uuid.NewString(), true
}

// RequireSession fails when no token was presented. It deliberately does
// not check the token against storage or validate its format: possession
// of any non-empty value is the entire proof of identity.
func RequireSession(incoming string) (string, error) {
	if incoming == "" {
		return "", ErrNoSession
	}
	return incoming, nil
}
