package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/corepay/payments-platform/internal/core/domain"
)

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubAccountRepo()
	accounts := newTestAccountService(repo, nil)
	if _, err := accounts.CreateAccount(context.Background(), "alice", "pw1"); err != nil {
		t.Fatalf("create account failed: %v", err)
	}

	svc := NewAuthService(repo, "secret", time.Hour)
	token, err := svc.Login(context.Background(), "alice", "pw1")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["username"] != "alice" {
		t.Fatalf("expected username claim alice, got %v", claims["username"])
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		t.Fatalf("expected expiry claim: %v", err)
	}
	ttl := time.Until(exp.Time)
	if ttl <= 55*time.Minute || ttl > time.Hour {
		t.Fatalf("expected ~1h expiry, got %v", ttl)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubAccountRepo()
	accounts := newTestAccountService(repo, nil)
	if _, err := accounts.CreateAccount(context.Background(), "bob", "goodpass"); err != nil {
		t.Fatalf("create account failed: %v", err)
	}

	svc := NewAuthService(repo, "secret", time.Hour)
	if _, err := svc.Login(context.Background(), "bob", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc := NewAuthService(newStubAccountRepo(), "secret", time.Hour)
	if _, err := svc.Login(context.Background(), "ghost", "pw"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_MissingCredentials(t *testing.T) {
	svc := NewAuthService(newStubAccountRepo(), "secret", time.Hour)
	if _, err := svc.Login(context.Background(), "", "pw"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "alice", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
