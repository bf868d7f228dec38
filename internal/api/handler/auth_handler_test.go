package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/tibtennis/roster-api/internal/core/domain"
	"github.com/tibtennis/roster-api/internal/core/ports"
)

type stubAuthService struct {
	playerLoginFn func(ctx context.Context, name, teamID string) (*ports.LoginResult, error)
	adminLoginFn  func(ctx context.Context, username, password string) (*ports.LoginResult, error)
}

func (s *stubAuthService) PlayerLogin(ctx context.Context, name, teamID string) (*ports.LoginResult, error) {
	return s.playerLoginFn(ctx, name, teamID)
}

func (s *stubAuthService) AdminLogin(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	return s.adminLoginFn(ctx, username, password)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func TestAuthHandler_PlayerLogin_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		playerLoginFn: func(ctx context.Context, name, teamID string) (*ports.LoginResult, error) {
			if name != "Anna" || teamID != "tib-damen-50" {
				t.Fatalf("unexpected args: %s %s", name, teamID)
			}
			return &ports.LoginResult{
				Token:   "token123",
				User:    &domain.User{Name: "Anna", Role: domain.RolePlayer},
				Created: true,
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	req := jsonRequest(http.MethodPost, "/api/auth/login", `{"name":"Anna","team_id":"tib-damen-50"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.PlayerLogin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["name"] != "Anna" || user["role"] != "player" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
}

func TestAuthHandler_PlayerLogin_MissingTeam(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		playerLoginFn: func(ctx context.Context, name, teamID string) (*ports.LoginResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	req := jsonRequest(http.MethodPost, "/api/auth/login", `{"name":"Anna"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.PlayerLogin(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_PlayerLogin_InvalidPayload(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		playerLoginFn: func(ctx context.Context, name, teamID string) (*ports.LoginResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	req := jsonRequest(http.MethodPost, "/api/auth/login", "not-json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.PlayerLogin(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_AdminLogin_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		adminLoginFn: func(ctx context.Context, username, password string) (*ports.LoginResult, error) {
			if username != "chef" || password != "s3cret" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return &ports.LoginResult{
				Token: "admintoken",
				User:  &domain.User{Name: "chef", Role: domain.RoleAdmin},
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	req := jsonRequest(http.MethodPost, "/api/auth/admin/login", `{"username":"chef","password":"s3cret"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.AdminLogin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["role"] != "admin" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
}

func TestAuthHandler_AdminLogin_InvalidCredentials(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		adminLoginFn: func(ctx context.Context, username, password string) (*ports.LoginResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	req := jsonRequest(http.MethodPost, "/api/auth/admin/login", `{"username":"chef","password":"wrong"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Domain errors propagate to the central error handler for mapping.
	if err := handler.AdminLogin(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_AdminLogin_Throttled(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		adminLoginFn: func(ctx context.Context, username, password string) (*ports.LoginResult, error) {
			return nil, domain.ErrTooManyLoginAttempts
		},
	}
	handler := NewAuthHandler(stub)

	req := jsonRequest(http.MethodPost, "/api/auth/admin/login", `{"username":"chef","password":"s3cret"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.AdminLogin(c); !errors.Is(err, domain.ErrTooManyLoginAttempts) {
		t.Fatalf("expected ErrTooManyLoginAttempts, got %v", err)
	}
}

func TestAuthHandler_Verify_Success(t *testing.T) {
	e := newTestEcho()
	handler := NewAuthHandler(&stubAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("identity", &ports.TokenClaims{UserID: "user_1", Name: "Anna", Role: domain.RolePlayer, TeamID: "tib-damen-50"})

	if err := handler.Verify(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["valid"] != true {
		t.Fatalf("expected valid true, got %v", resp["valid"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["name"] != "Anna" || user["role"] != "player" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
}

func TestAuthHandler_Verify_NoIdentity(t *testing.T) {
	e := newTestEcho()
	handler := NewAuthHandler(&stubAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Verify(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
