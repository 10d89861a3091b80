package auth

import (
	"strings"
	"testing"
	"time"
)

func testClaims() Claims {
	return Claims{
		UserID:   42,
		Email:    "admin@test.com",
		Role:     RoleAdmin,
		Name:     "Ada",
		Lastname: "Admin",
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	codec := NewCodec("test-secret")

	token, err := codec.Sign(testClaims())
	if err != nil {
		t.Fatalf("sign: unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("sign: expected token, got empty string")
	}

	claims := codec.Verify(token)
	if claims == nil {
		t.Fatal("verify: expected claims, got nil")
	}
	if claims.UserID != 42 {
		t.Fatalf("expected user id 42 got %d", claims.UserID)
	}
	if claims.Email != "admin@test.com" {
		t.Fatalf("expected email admin@test.com got %q", claims.Email)
	}
	if claims.Role != RoleAdmin {
		t.Fatalf("expected role %s got %s", RoleAdmin, claims.Role)
	}
	if claims.Name != "Ada" || claims.Lastname != "Admin" {
		t.Fatalf("name snapshot mismatch: %q %q", claims.Name, claims.Lastname)
	}
	if claims.ExpiresAt == nil || claims.IssuedAt == nil {
		t.Fatal("expected issued-at and expiration to be set")
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != TokenTTL {
		t.Fatalf("expected 7-day lifetime, got %v", got)
	}
}

func TestCodec_VerifyIsIdempotent(t *testing.T) {
	codec := NewCodec("test-secret")

	token, err := codec.Sign(testClaims())
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	first := codec.Verify(token)
	second := codec.Verify(token)
	if first == nil || second == nil {
		t.Fatal("expected both verifications to succeed")
	}
	if first.UserID != second.UserID || first.Email != second.Email ||
		first.Role != second.Role || !first.ExpiresAt.Equal(second.ExpiresAt.Time) {
		t.Fatalf("expected identical claims, got %+v vs %+v", first, second)
	}
}

func TestCodec_ExpiredToken(t *testing.T) {
	codec := NewCodec("test-secret")
	codec.now = func() time.Time { return time.Now().Add(-8 * 24 * time.Hour) }

	token, err := codec.Sign(testClaims())
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	codec.now = time.Now
	if claims := codec.Verify(token); claims != nil {
		t.Fatalf("expected nil for expired token, got %+v", claims)
	}
}

func TestCodec_TamperedSignature(t *testing.T) {
	codec := NewCodec("test-secret")

	token, err := codec.Sign(testClaims())
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("expected three token segments, got %d", len(parts))
	}

	// The final base64url char carries unused trailing bits, so flip every
	// position before it and separately check truncation.
	sig := []byte(parts[2])
	for i := 0; i < len(sig)-1; i++ {
		mangled := append([]byte(nil), sig...)
		if mangled[i] == 'A' {
			mangled[i] = 'B'
		} else {
			mangled[i] = 'A'
		}
		forged := parts[0] + "." + parts[1] + "." + string(mangled)
		if claims := codec.Verify(forged); claims != nil {
			t.Fatalf("expected nil for signature flipped at byte %d", i)
		}
	}

	truncated := parts[0] + "." + parts[1] + "." + parts[2][:len(parts[2])-2]
	if claims := codec.Verify(truncated); claims != nil {
		t.Fatal("expected nil for truncated signature")
	}
}

func TestCodec_WrongSecret(t *testing.T) {
	signer := NewCodec("secret-a")
	verifier := NewCodec("secret-b")

	token, err := signer.Sign(testClaims())
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if claims := verifier.Verify(token); claims != nil {
		t.Fatal("expected nil for token signed with a different secret")
	}
}

func TestCodec_MalformedToken(t *testing.T) {
	codec := NewCodec("test-secret")

	for _, bad := range []string{"", "not-a-token", "a.b", "a.b.c.d", "!!!.!!!.!!!"} {
		if claims := codec.Verify(bad); claims != nil {
			t.Fatalf("expected nil for malformed token %q", bad)
		}
	}
}

func TestCodec_EmptySecretFallsBack(t *testing.T) {
	codec := NewCodec("")
	fallback := NewCodec(FallbackSecret)

	token, err := codec.Sign(testClaims())
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if fallback.Verify(token) == nil {
		t.Fatal("expected fallback secret to verify tokens from an empty-secret codec")
	}
}
