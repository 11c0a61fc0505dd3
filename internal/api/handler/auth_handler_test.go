package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/corepay/payments-platform/internal/api"
	"github.com/corepay/payments-platform/internal/api/handler"
	"github.com/corepay/payments-platform/internal/core/domain"
)

type fakeAuthService struct {
	username string
	password string
	token    string
	calls    int
}

func (f *fakeAuthService) Login(_ context.Context, username, password string) (string, error) {
	f.calls++
	if username != f.username || password != f.password {
		return "", domain.ErrInvalidCredentials
	}
	return f.token, nil
}

func newAuthTestServer(svc *fakeAuthService) *echo.Echo {
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())
	e.POST("/login", handler.NewAuthHandler(svc).Login)
	return e
}

func TestAuthHandler_Login(t *testing.T) {
	svc := &fakeAuthService{username: "alice", password: "pw1", token: "signed-token"}
	e := newAuthTestServer(svc)

	rec := doJSON(e, http.MethodPost, "/login", `{"username":"alice","password":"pw1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body = %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "signed-token" {
		t.Errorf("token = %q", resp.Token)
	}
}

func TestAuthHandler_LoginValidation(t *testing.T) {
	svc := &fakeAuthService{username: "alice", password: "pw1", token: "signed-token"}
	e := newAuthTestServer(svc)

	// Missing fields are rejected before the service is consulted.
	for _, body := range []string{
		`{"username":"alice"}`,
		`{"password":"pw1"}`,
		`{}`,
	} {
		rec := doJSON(e, http.MethodPost, "/login", body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("login %s: status = %d, want 400", body, rec.Code)
		}
	}
	if svc.calls != 0 {
		t.Errorf("service called %d times for invalid payloads", svc.calls)
	}
}

func TestAuthHandler_LoginInvalidCredentials(t *testing.T) {
	svc := &fakeAuthService{username: "alice", password: "pw1", token: "signed-token"}
	e := newAuthTestServer(svc)

	rec := doJSON(e, http.MethodPost, "/login", `{"username":"alice","password":"wrong"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401; body = %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "invalid credentials") {
		t.Errorf("body = %s", rec.Body.String())
	}
}
