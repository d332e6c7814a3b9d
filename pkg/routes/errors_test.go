package routes

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"ImpactFlow/internal/auth"
	"ImpactFlow/internal/store"
	"ImpactFlow/pkg/middleware"
	"ImpactFlow/pkg/validation"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"validation", validation.Errorf("invalid request body"), http.StatusBadRequest, "invalid request body"},
		{"duplicate email", auth.ErrDuplicateIdentity, http.StatusBadRequest, "Email already registered"},
		{"bad credentials", auth.ErrInvalidCredentials, http.StatusBadRequest, "Invalid credentials"},
		{"inactive", auth.ErrInactiveAccount, http.StatusForbidden, "User is inactive"},
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized, "Could not validate credentials"},
		{"wrapped invalid token", fmt.Errorf("parse: %w", auth.ErrInvalidToken), http.StatusUnauthorized, "Could not validate credentials"},
		{"forbidden", middleware.ErrForbidden, http.StatusForbidden, "Forbidden: insufficient permissions"},
		{"duplicate key", store.ErrDuplicateKey, http.StatusBadRequest, "Duplicate record"},
		{"store unavailable", fmt.Errorf("insert events: %w", store.ErrStoreUnavailable), http.StatusInternalServerError, "Database not available"},
		{"echo not found", echo.ErrNotFound, http.StatusNotFound, "Not Found"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := StatusFor(tt.err)
			if status != tt.wantStatus || msg != tt.wantMsg {
				t.Errorf("StatusFor(%v) = (%d, %q), want (%d, %q)", tt.err, status, msg, tt.wantStatus, tt.wantMsg)
			}
		})
	}
}

func TestErrorHandler(t *testing.T) {
	e := echo.New()
	handler := ErrorHandler(zap.NewNop())

	rec := httptest.NewRecorder()
	handler(auth.ErrInvalidToken, e.NewContext(httptest.NewRequest(http.MethodGet, "/auth/me", nil), rec))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d", rec.Code)
	}
	if got := rec.Header().Get(echo.HeaderWWWAuthenticate); got != "Bearer" {
		t.Errorf("WWW-Authenticate: got %q", got)
	}
	var body map[string]string
	decode(t, rec, &body)
	if body["error"] != "Could not validate credentials" {
		t.Errorf("body: got %v", body)
	}

	rec = httptest.NewRecorder()
	handler(errors.New("boom"), e.NewContext(httptest.NewRequest(http.MethodHead, "/events", nil), rec))
	if rec.Code != http.StatusInternalServerError || rec.Body.Len() != 0 {
		t.Errorf("HEAD: got %d with %d body bytes", rec.Code, rec.Body.Len())
	}
}
