// Package jwt issues and checks catalog session tokens. A token only names
// the user and the session; privileges are read from the database on every
// request, so the claim set stays small.
package jwt

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrMissingToken = errors.New("missing authorization token")
)

const (
	Issuer   = "product-catalog-api"
	Audience = "catalog"

	// DefaultTTL applies when JWT_TTL is unset or unparsable.
	DefaultTTL = 24 * time.Hour
)

// Claims carries the session. The subject is the user's UUID; UserID is
// filled from it by ValidateToken.
type Claims struct {
	TokenVersion string    `json:"ver"`
	Role         string    `json:"role,omitempty"`
	UserID       uuid.UUID `json:"-"`
	jwt.RegisteredClaims
}

func secret() []byte {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("change-me-in-production")
}

// TTL reads JWT_TTL as a Go duration ("12h", "30m").
func TTL() time.Duration {
	if d, err := time.ParseDuration(os.Getenv("JWT_TTL")); err == nil && d > 0 {
		return d
	}
	return DefaultTTL
}

// GenerateToken signs a session token for userID. tokenVersion must match
// the user's stored version for the token to stay valid.
func GenerateToken(userID uuid.UUID, role, tokenVersion string) (string, error) {
	now := time.Now()
	claims := &Claims{
		TokenVersion: tokenVersion,
		Role:         role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Audience:  jwt.ClaimStrings{Audience},
			Issuer:    Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TTL())),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

// ValidateToken checks signature, issuer, audience and expiry, and requires
// a UUID subject.
func ValidateToken(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return secret(), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithAudience(Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, ErrInvalidToken
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims.UserID = id
	return claims, nil
}
