package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func TestGenerateAndValidate(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	id := uuid.New()
	token, err := GenerateToken(id, "CATALOG_EDITOR", "v1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != id || claims.TokenVersion != "v1" || claims.Role != "CATALOG_EDITOR" {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestValidateRejectsOtherSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "one")
	token, err := GenerateToken(uuid.New(), "", "v1")
	if err != nil {
		t.Fatal(err)
	}
	t.Setenv("JWT_SECRET", "two")
	if _, err := ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken, got %v", err)
	}
	if _, err := ValidateToken(""); !errors.Is(err, ErrMissingToken) {
		t.Fatalf("want ErrMissingToken, got %v", err)
	}
}

func TestValidateRejectsForeignTokens(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	sign := func(c jwt.RegisteredClaims) string {
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{TokenVersion: "v1", RegisteredClaims: c}).SignedString([]byte("test-secret"))
		if err != nil {
			t.Fatal(err)
		}
		return s
	}
	exp := jwt.NewNumericDate(time.Now().Add(time.Hour))
	cases := map[string]jwt.RegisteredClaims{
		"wrong audience": {Subject: uuid.NewString(), Issuer: Issuer, Audience: jwt.ClaimStrings{"other"}, ExpiresAt: exp},
		"no expiry":      {Subject: uuid.NewString(), Issuer: Issuer, Audience: jwt.ClaimStrings{Audience}},
		"bad subject":    {Subject: "admin", Issuer: Issuer, Audience: jwt.ClaimStrings{Audience}, ExpiresAt: exp},
		"expired":        {Subject: uuid.NewString(), Issuer: Issuer, Audience: jwt.ClaimStrings{Audience}, ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour))},
	}
	for name, c := range cases {
		if _, err := ValidateToken(sign(c)); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("%s: want ErrInvalidToken, got %v", name, err)
		}
	}
}

func TestTTL(t *testing.T) {
	t.Setenv("JWT_TTL", "")
	if TTL() != DefaultTTL {
		t.Fatalf("default ttl = %v", TTL())
	}
	t.Setenv("JWT_TTL", "90m")
	if TTL() != 90*time.Minute {
		t.Fatalf("ttl = %v", TTL())
	}
	t.Setenv("JWT_TTL", "soon")
	if TTL() != DefaultTTL {
		t.Fatalf("bad ttl = %v", TTL())
	}
}
