package jwtmw

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Generator issues the signed tokens handed out at login. AuthRequired in
// this package verifies them on the protected dashboard and assistant routes.
type Generator interface {
	// GenerateToken returns a signed JWT identifying the user.
	GenerateToken(userID uint, email string) (string, error)
}

// generator signs tokens with the HMAC secret shared with the middleware.
type generator struct {
	secret     []byte
	expiration time.Duration
}

// NewGenerator creates a Generator. expiration bounds how long a login
// session stays valid before the client has to sign in again.
func NewGenerator(secret string, expiration time.Duration) Generator {
	return &generator{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

// GenerateToken signs HS256 claims for the user. The sub claim carries the
// user ID that AuthRequired later puts into the Gin context.
func (g *generator) GenerateToken(userID uint, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(g.expiration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}
