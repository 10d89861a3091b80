package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the absolute lifetime of a session token.  There is no
// sliding refresh: a token expires seven days after issuance regardless of
// activity.
const TokenTTL = 7 * 24 * time.Hour

// FallbackSecret is used when no signing secret is configured.  It exists
// so development setups work out of the box; deployments must set
// JWT_SECRET.
const FallbackSecret = "default-dev-secret-change-in-production"

// Codec signs and verifies session tokens with a process-wide HMAC secret.
// The secret is loaded once at startup and is immutable afterwards, so the
// codec is safe for concurrent use without locking.
type Codec struct {
	secret []byte
	now    func() time.Time
}

// NewCodec builds a Codec.  An empty secret falls back to the insecure
// development default; callers should log a warning when that happens.
func NewCodec(secret string) *Codec {
	if secret == "" {
		secret = FallbackSecret
	}
	return &Codec{secret: []byte(secret), now: time.Now}
}

// Sign produces a compact HS256 token carrying the claims plus issued-at
// and expiration timestamps.
func (c *Codec) Sign(claims Claims) (string, error) {
	now := c.now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(TokenTTL))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Verify decodes and checks a token.  It returns nil on any failure —
// malformed input, signature mismatch, wrong algorithm, or expiry — without
// distinguishing between them, so callers cannot be used as a verification
// oracle.
func (c *Codec) Verify(tokenString string) *Claims {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(c.now))
	if err != nil || !token.Valid {
		return nil
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !isValidRole(claims.Role) {
		return nil
	}
	return claims
}
