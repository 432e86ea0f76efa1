package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/somnia/sleep-tracker-api/internal/core/domain"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue(map[string]any{"sub": "alice"})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims["sub"] != "alice" {
		t.Fatalf("expected sub=alice, got %v", claims["sub"])
	}
}

func TestTokenService_IssueDoesNotMutateCallerMap(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	in := map[string]any{"sub": "alice"}
	if _, err := svc.Issue(in); err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, ok := in["exp"]; ok {
		t.Fatalf("caller map was mutated with exp claim")
	}
}

func TestTokenService_ExpiryClaim(t *testing.T) {
	svc := NewTokenService("secret", 0) // falls back to the 60-minute default

	token, err := svc.Issue(map[string]any{"sub": "alice"})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		t.Fatalf("expected numeric exp claim, got %T", claims["exp"])
	}
	want := time.Now().Add(defaultTokenTTL).Unix()
	if got := int64(exp); got < want-5 || got > want+5 {
		t.Fatalf("exp %d not within 5s of %d", got, want)
	}
}

func TestTokenService_VerifyWrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a", time.Hour).Issue(map[string]any{"sub": "alice"})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := NewTokenService("secret-b", time.Hour).Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_VerifyExpired(t *testing.T) {
	claims := jwt.MapClaims{
		"sub": "alice",
		"exp": time.Now().Add(-time.Minute).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := NewTokenService("secret", time.Hour).Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_VerifyGarbage(t *testing.T) {
	if _, err := NewTokenService("secret", time.Hour).Verify("not-a-token"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
