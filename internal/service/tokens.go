package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var unverifiedParser = jwt.NewParser()

// TokenExpired reports whether token is a JWT whose exp claim is at or before
// now. The signature is not checked; the backend remains the authority and
// this only spares a round trip with a token it would reject. Opaque tokens
// and JWTs without exp are never expired.
func TokenExpired(token string, now time.Time) bool {
	if token == "" {
		return false
	}
	parsed, _, err := unverifiedParser.ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !now.Before(exp.Time)
}
