package test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"jobdesk/auth"
	"jobdesk/test/infra"
	"jobdesk/user"
)

// TestLoginFlowAgainstPostgres exercises the full credential path: account
// creation with a cost-12 hash, login through the HTTP handler, and gate
// admission with the resulting cookie.  It needs Docker (or a DSN via
// JOBDESK_TEST_PG_DSN) and is opt-in.
func TestLoginFlowAgainstPostgres(t *testing.T) {
	if os.Getenv("JOBDESK_E2E") == "" {
		t.Skip("JOBDESK_E2E not set; skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pgC, dsn, err := infra.StartPostgres16(ctx, "")
	if err != nil {
		t.Fatalf("start postgres: %v", err)
	}
	defer pgC.Terminate(context.Background())

	pool, err := infra.ApplyMigrations(ctx, dsn)
	if err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	defer pool.Close()

	log := zap.NewNop().Sugar()

	userSvc := user.NewService(user.NewRepository(pool))
	if _, err := userSvc.Create(ctx, user.CreateRequest{
		Email:    "admin@test.com",
		Password: "secret123",
		UserType: "admin",
		Name:     "Ada",
		Lastname: "Admin",
	}); err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	codec := auth.NewCodec("integration-secret")
	authSvc := auth.NewService(auth.NewRepository(pool), codec)
	authHandler := auth.NewHandler(authSvc, false, log)

	loginReq := httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"email":"admin@test.com","password":"secret123"}`))
	loginRec := httptest.NewRecorder()
	authHandler.Routes().ServeHTTP(loginRec, loginReq)

	if loginRec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", loginRec.Code, loginRec.Body.String())
	}

	var cookie *http.Cookie
	for _, c := range loginRec.Result().Cookies() {
		if c.Name == auth.CookieName {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("login: expected session cookie")
	}

	gate := auth.NewGate(codec)
	gated := gate.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	adminReq := httptest.NewRequest(http.MethodGet, "/admin", nil)
	adminReq.AddCookie(cookie)
	adminRec := httptest.NewRecorder()
	gated.ServeHTTP(adminRec, adminReq)

	if adminRec.Code != http.StatusOK {
		t.Fatalf("gate: expected admin cookie to reach /admin, got %d", adminRec.Code)
	}

	// Wrong-password and unknown-account logins must be byte-identical.
	badPass := httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"email":"admin@test.com","password":"wrongpassword"}`))
	badPassRec := httptest.NewRecorder()
	authHandler.Routes().ServeHTTP(badPassRec, badPass)

	unknown := httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"email":"doesnotexist@example.com","password":"x"}`))
	unknownRec := httptest.NewRecorder()
	authHandler.Routes().ServeHTTP(unknownRec, unknown)

	if badPassRec.Code != http.StatusUnauthorized || unknownRec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", badPassRec.Code, unknownRec.Code)
	}
	if badPassRec.Body.String() != unknownRec.Body.String() {
		t.Fatalf("failure bodies differ: %q vs %q", badPassRec.Body.String(), unknownRec.Body.String())
	}
}
