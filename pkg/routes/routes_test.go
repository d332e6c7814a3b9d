package routes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"ImpactFlow/internal/auth"
	"ImpactFlow/internal/config"
	"ImpactFlow/internal/diagnostics"
	"ImpactFlow/internal/resources"
	"ImpactFlow/internal/store"
	"ImpactFlow/internal/testutil"
	"ImpactFlow/pkg/middleware"
	"ImpactFlow/pkg/validation"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// newTestServer wires the real routes over an in-memory user store and a
// store with no database behind it.
func newTestServer(t *testing.T) (*echo.Echo, *testutil.MemoryUsers) {
	t.Helper()
	logger := zap.NewNop()
	v := validation.New()
	cfg := &config.JWTConfig{
		Secret:     []byte("routes-test-secret"),
		Algorithm:  "HS256",
		TTL:        time.Hour,
		BcryptCost: bcrypt.MinCost,
	}

	users := testutil.NewMemoryUsers()
	svc, err := auth.NewUserService(users, auth.NewTokenManager(cfg), v, cfg, logger)
	if err != nil {
		t.Fatalf("NewUserService: %v", err)
	}
	enforcer, err := middleware.NewEnforcer(logger)
	if err != nil {
		t.Fatalf("NewEnforcer: %v", err)
	}
	st := store.New(nil, logger)

	e := echo.New()
	e.Validator = v
	e.HTTPErrorHandler = ErrorHandler(logger)
	RegisterRoutes(e, Handlers{
		Auth:        auth.NewAuthHandler(svc),
		Users:       svc,
		Resources:   resources.New(st, v, svc),
		Diagnostics: diagnostics.NewHandler(st, &config.MongoDBClient{}, logger),
		Enforcer:    enforcer,
		Logger:      logger,
	})
	return e, users
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to parse response %q: %v", rec.Body.String(), err)
	}
}

func TestAuthFlow(t *testing.T) {
	e, _ := newTestServer(t)

	rec := serve(e, testutil.JSONRequest(t, http.MethodPost, "/auth/register",
		map[string]string{"name": "Alice", "email": "a@x.com", "password": "pw1"}))
	if rec.Code != http.StatusOK {
		t.Fatalf("register: %d %s", rec.Code, rec.Body)
	}
	var created map[string]string
	decode(t, rec, &created)

	rec = serve(e, testutil.JSONRequest(t, http.MethodPost, "/auth/register",
		map[string]string{"name": "Alice", "email": "a@x.com", "password": "other"}))
	var failure map[string]string
	decode(t, rec, &failure)
	if rec.Code != http.StatusBadRequest || failure["error"] != "Email already registered" {
		t.Fatalf("duplicate register: %d %v", rec.Code, failure)
	}

	rec = serve(e, testutil.FormRequest(http.MethodPost, "/auth/login",
		url.Values{"username": {"a@x.com"}, "password": {"pw1"}}))
	if rec.Code != http.StatusOK {
		t.Fatalf("login: %d %s", rec.Code, rec.Body)
	}
	var token auth.TokenResponse
	decode(t, rec, &token)
	if token.AccessToken == "" || token.TokenType != "bearer" {
		t.Fatalf("unexpected token response %+v", token)
	}

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token.AccessToken)
	rec = serve(e, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("me: %d %s", rec.Code, rec.Body)
	}
	var me map[string]any
	decode(t, rec, &me)
	if me["id"] != created["id"] || me["email"] != "a@x.com" || me["role"] != "volunteer" || me["is_active"] != true {
		t.Errorf("unexpected identity %v", me)
	}
	if _, ok := me["password"]; ok {
		t.Error("identity response leaked the password")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	e, _ := newTestServer(t)
	serve(e, testutil.JSONRequest(t, http.MethodPost, "/auth/register",
		map[string]string{"name": "Alice", "email": "a@x.com", "password": "pw1"}))

	for _, form := range []url.Values{
		{"username": {"a@x.com"}, "password": {"nope"}},
		{"username": {"ghost@x.com"}, "password": {"pw1"}},
	} {
		rec := serve(e, testutil.FormRequest(http.MethodPost, "/auth/login", form))
		var body map[string]string
		decode(t, rec, &body)
		if rec.Code != http.StatusBadRequest || body["error"] != "Invalid credentials" {
			t.Errorf("login %v: %d %v", form, rec.Code, body)
		}
	}
}

func TestMe_Unauthorized(t *testing.T) {
	e, _ := newTestServer(t)

	for _, header := range []string{"", "Bearer not-a-token", "Basic abc"} {
		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		if header != "" {
			req.Header.Set(echo.HeaderAuthorization, header)
		}
		rec := serve(e, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%q: status %d", header, rec.Code)
		}
		if got := rec.Header().Get(echo.HeaderWWWAuthenticate); got != "Bearer" {
			t.Errorf("%q: WWW-Authenticate %q", header, got)
		}
	}
}

func TestMe_UnknownRoleForbidden(t *testing.T) {
	e, users := newTestServer(t)
	rec := serve(e, testutil.JSONRequest(t, http.MethodPost, "/auth/register",
		map[string]string{"name": "Mallory", "email": "m@x.com", "password": "pw"}))
	var created map[string]string
	decode(t, rec, &created)

	u, ok := users.Get(created["id"])
	if !ok {
		t.Fatal("registered user not stored")
	}
	u.Role = "auditor"
	users.Delete(created["id"])
	if _, err := users.CreateUser(context.Background(), &u); err != nil {
		t.Fatal(err)
	}

	rec = serve(e, testutil.FormRequest(http.MethodPost, "/auth/login",
		url.Values{"username": {"m@x.com"}, "password": {"pw"}}))
	var token auth.TokenResponse
	decode(t, rec, &token)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token.AccessToken)
	rec = serve(e, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d %s", rec.Code, rec.Body)
	}
}

func TestMe_RecordWithoutRole(t *testing.T) {
	e, users := newTestServer(t)
	rec := serve(e, testutil.JSONRequest(t, http.MethodPost, "/auth/register",
		map[string]string{"name": "Old", "email": "old@x.com", "password": "pw"}))
	var created map[string]string
	decode(t, rec, &created)

	u, ok := users.Get(created["id"])
	if !ok {
		t.Fatal("registered user not stored")
	}
	u.Role = ""
	users.Delete(created["id"])
	if _, err := users.CreateUser(context.Background(), &u); err != nil {
		t.Fatal(err)
	}

	rec = serve(e, testutil.FormRequest(http.MethodPost, "/auth/login",
		url.Values{"username": {"old@x.com"}, "password": {"pw"}}))
	var token auth.TokenResponse
	decode(t, rec, &token)
	if token.AccessToken == "" {
		t.Fatalf("login: %d %s", rec.Code, rec.Body)
	}

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token.AccessToken)
	rec = serve(e, req)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 for a record without a role, got %d %s", rec.Code, rec.Body)
	}
}

func TestResources_StoreUnavailable(t *testing.T) {
	e, _ := newTestServer(t)

	rec := serve(e, testutil.JSONRequest(t, http.MethodPost, "/events",
		map[string]any{"event_title": "Beach Cleanup", "date": "2025-05-20", "location": "Bay"}))
	var body map[string]string
	decode(t, rec, &body)
	if rec.Code != http.StatusInternalServerError || body["error"] != "Database not available" {
		t.Errorf("create: %d %v", rec.Code, body)
	}

	rec = serve(e, httptest.NewRequest(http.MethodGet, "/tasks?event_id=E", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("list: %d", rec.Code)
	}

	rec = serve(e, testutil.JSONRequest(t, http.MethodPost, "/events", map[string]any{"budget": -1}))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("invalid payload should fail validation before the store, got %d", rec.Code)
	}
}

func TestDiagnostics(t *testing.T) {
	e, _ := newTestServer(t)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/", nil))
	var root map[string]string
	decode(t, rec, &root)
	if rec.Code != http.StatusOK || root["status"] != "ok" {
		t.Errorf("root: %d %v", rec.Code, root)
	}

	rec = serve(e, httptest.NewRequest(http.MethodGet, "/test", nil))
	var report map[string]any
	decode(t, rec, &report)
	if rec.Code != http.StatusOK || report["database"] != "not available" || report["database_url"] != "not set" {
		t.Errorf("test: %d %v", rec.Code, report)
	}
}

func TestUnknownRoute(t *testing.T) {
	e, _ := newTestServer(t)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/auth/nowhere", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestNewStore_WithoutDatabase(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	s := NewStore(lc, &config.MongoDBClient{}, zap.NewNop())
	lc.RequireStart().RequireStop()

	if s.Available() {
		t.Error("expected an unavailable store")
	}
	if err := s.EnsureIndexes(context.Background()); !errors.Is(err, store.ErrStoreUnavailable) {
		t.Errorf("expected the email index to stay pending, got %v", err)
	}
}
