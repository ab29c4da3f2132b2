package crypto

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func newTestIssuer(t *testing.T) *TokenIssuer {
	t.Helper()
	ti, err := NewTokenIssuer("test-secret")
	if err != nil {
		t.Fatalf("NewTokenIssuer() unexpected error: %v", err)
	}
	return ti
}

func TestNewTokenIssuerEmptySecret(t *testing.T) {
	if _, err := NewTokenIssuer(""); err != ErrEmptySecret {
		t.Errorf("expected ErrEmptySecret, got %v", err)
	}
}

func TestIssueAndVerify(t *testing.T) {
	ti := newTestIssuer(t)

	token, err := ti.Issue("alice", time.Hour)
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("Issue() returned empty string")
	}

	subject, err := ti.Verify(token)
	if err != nil {
		t.Fatalf("Verify() unexpected error: %v", err)
	}
	if subject != "alice" {
		t.Errorf("Verify() subject = %q, want %q", subject, "alice")
	}
}

func TestIssueDefaultTTL(t *testing.T) {
	ti := newTestIssuer(t)

	token, err := ti.Issue("alice", 0)
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}

	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		t.Fatalf("ParseUnverified() unexpected error: %v", err)
	}

	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if ttl != DefaultTokenTTL {
		t.Errorf("default ttl = %v, want %v", ttl, DefaultTokenTTL)
	}
}

func TestVerifyMalformed(t *testing.T) {
	ti := newTestIssuer(t)

	if _, err := ti.Verify("not-a-valid-token"); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	ti := newTestIssuer(t)

	other, err := NewTokenIssuer("a-different-secret")
	if err != nil {
		t.Fatalf("NewTokenIssuer() unexpected error: %v", err)
	}
	token, err := other.Issue("alice", time.Hour)
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}

	if _, err := ti.Verify(token); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyExpired(t *testing.T) {
	ti := newTestIssuer(t)

	token, err := ti.Issue("alice", time.Millisecond)
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	if _, err := ti.Verify(token); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerifyMissingSubject(t *testing.T) {
	ti := newTestIssuer(t)

	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("SignedString() unexpected error: %v", err)
	}

	if _, err := ti.Verify(signed); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for missing subject, got %v", err)
	}
}

func TestVerifyWrongSigningMethod(t *testing.T) {
	ti := newTestIssuer(t)

	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("SignedString() unexpected error: %v", err)
	}

	if _, err := ti.Verify(signed); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for alg=none token, got %v", err)
	}
}
