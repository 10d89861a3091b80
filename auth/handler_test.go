package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func handlerHarness(t *testing.T) (*fakeRepository, *Codec, http.Handler) {
	t.Helper()
	repo := newFakeRepository()
	codec := NewCodec("test-secret")
	svc := NewService(repo, codec)
	h := NewHandler(svc, false, zap.NewNop().Sugar())
	return repo, codec, h.Routes()
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == CookieName {
			return c
		}
	}
	return nil
}

func TestHandleLogin_SuccessSetsCookie(t *testing.T) {
	repo, codec, handler := handlerHarness(t)
	repo.add(t, "admin@test.com", "secret123", RoleAdmin)

	req := httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"email":"admin@test.com","password":"secret123"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	cookie := sessionCookie(t, rec)
	if cookie == nil {
		t.Fatal("expected session cookie to be set")
	}
	if !cookie.HttpOnly {
		t.Fatal("cookie must be HttpOnly")
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Fatalf("expected SameSite=Lax, got %v", cookie.SameSite)
	}
	if cookie.Path != "/" {
		t.Fatalf("expected path /, got %q", cookie.Path)
	}
	if cookie.MaxAge != 604800 {
		t.Fatalf("expected max-age 604800, got %d", cookie.MaxAge)
	}
	if claims := codec.Verify(cookie.Value); claims == nil || claims.Email != "admin@test.com" {
		t.Fatalf("cookie does not carry a valid token: %+v", claims)
	}

	var body struct {
		Success bool `json:"success"`
		User    struct {
			Email    string `json:"email"`
			UserType Role   `json:"userType"`
		} `json:"user"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !body.Success || body.User.Email != "admin@test.com" || body.User.UserType != RoleAdmin {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestHandleLogin_FailuresAreIndistinguishable(t *testing.T) {
	repo, _, handler := handlerHarness(t)
	repo.add(t, "realuser@example.com", "correct-password", RoleIndividual)

	post := func(payload string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(payload))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	unknown := post(`{"email":"doesnotexist@example.com","password":"x"}`)
	wrongPass := post(`{"email":"realuser@example.com","password":"wrongpassword"}`)

	if unknown.Code != http.StatusUnauthorized || wrongPass.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", unknown.Code, wrongPass.Code)
	}
	if unknown.Body.String() != wrongPass.Body.String() {
		t.Fatalf("bodies differ: %q vs %q", unknown.Body.String(), wrongPass.Body.String())
	}
	if sessionCookie(t, unknown) != nil || sessionCookie(t, wrongPass) != nil {
		t.Fatal("no cookie may be set on failed login")
	}
}

func TestHandleLogin_MalformedInputIsClientError(t *testing.T) {
	_, _, handler := handlerHarness(t)

	for _, payload := range []string{
		`{"email":"not-an-email","password":"x"}`,
		`{"email":"user@example.com","password":""}`,
		`{not json`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(payload))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("payload %q: expected 400, got %d", payload, rec.Code)
		}
	}
}

func TestHandleMe(t *testing.T) {
	repo, codec, handler := handlerHarness(t)
	u := repo.add(t, "user@example.com", "password1", RoleCompany)

	// No cookie: explicit unauthenticated status.
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without cookie, got %d", rec.Code)
	}

	token, err := codec.Sign(NewClaims(u))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		User *Claims `json:"user"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.User == nil || body.User.Email != "user@example.com" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestHandleLogout_ClearsCookie(t *testing.T) {
	_, _, handler := handlerHarness(t)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	cookie := sessionCookie(t, rec)
	if cookie == nil {
		t.Fatal("expected clearing cookie")
	}
	if cookie.Value != "" || cookie.MaxAge >= 0 {
		t.Fatalf("expected expired empty cookie, got value=%q max-age=%d", cookie.Value, cookie.MaxAge)
	}
}
