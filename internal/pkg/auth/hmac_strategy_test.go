package auth

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestHMACStrategyIssueAndParse(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{TTL: time.Hour})

	token, err := strategy.IssueToken(Claims{UserID: 42, Admin: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := strategy.ParseToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != 42 || !claims.Admin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestHMACStrategyRejectsTamperedToken(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{TTL: time.Hour})

	token, err := strategy.IssueToken(Claims{UserID: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw, _ := base64.StdEncoding.DecodeString(token)
	parts := strings.Split(string(raw), ":")
	parts[1] = "1" // promote to admin
	forged := base64.StdEncoding.EncodeToString([]byte(strings.Join(parts, ":")))

	if _, err := strategy.ParseToken(forged); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestHMACStrategyRejectsWrongSecret(t *testing.T) {
	issuer := NewHMACStrategy("secret", Options{TTL: time.Hour})
	verifier := NewHMACStrategy("other", Options{TTL: time.Hour})

	token, _ := issuer.IssueToken(Claims{UserID: 1})
	if _, err := verifier.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestHMACStrategyRejectsExpiredToken(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{TTL: -time.Minute})
	strategy.ttl = -time.Minute

	token, _ := strategy.IssueToken(Claims{UserID: 1})
	if _, err := strategy.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestHMACStrategyRejectsGarbage(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})

	for _, token := range []string{"", "not-base64!!", base64.StdEncoding.EncodeToString([]byte("a:b"))} {
		if _, err := strategy.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected invalid token for %q, got %v", token, err)
		}
	}
}

func TestHMACStrategyName(t *testing.T) {
	if NewHMACStrategy("s", Options{}).Name() != "hmac" {
		t.Fatal("unexpected strategy name")
	}
}
