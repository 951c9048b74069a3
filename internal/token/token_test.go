package token

import (
	"errors"
	"testing"
	"time"
)

func newTestIssuer() *Issuer {
	return NewIssuer("test-secret", time.Hour, 14*24*time.Hour)
}

func TestIssueAndVerifyAccessToken(t *testing.T) {
	issuer := newTestIssuer()

	tok, err := issuer.IssueAccessToken("user-1", "user", "a@b.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := issuer.VerifyAccess(tok)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID() != "user-1" {
		t.Fatalf("subject = %q, want user-1", claims.UserID())
	}
	if claims.Role != "user" {
		t.Fatalf("role = %q, want user", claims.Role)
	}
	if claims.Email != "a@b.com" {
		t.Fatalf("email = %q, want a@b.com", claims.Email)
	}
}

func TestVerifyRejectsWrongTokenType(t *testing.T) {
	issuer := newTestIssuer()

	refresh, err := issuer.IssueRefreshToken("user-1", "user", "a@b.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := issuer.VerifyAccess(refresh); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for refresh token on access path, got %v", err)
	}

	access, err := issuer.IssueAccessToken("user-1", "user", "a@b.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := issuer.VerifyRefresh(access); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for access token on refresh path, got %v", err)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	tok, err := newTestIssuer().IssueAccessToken("user-1", "user", "a@b.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	other := NewIssuer("other-secret", time.Hour, time.Hour)
	if _, err := other.VerifyAccess(tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	issuer := newTestIssuer()
	issued := time.Now()
	issuer.now = func() time.Time { return issued }

	tok, err := issuer.IssueAccessToken("user-1", "user", "a@b.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	issuer.now = func() time.Time { return issued.Add(2 * time.Hour) }
	if _, err := issuer.VerifyAccess(tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	issuer := newTestIssuer()
	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := issuer.VerifyAccess(tok); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("token %q: expected ErrInvalidToken, got %v", tok, err)
		}
	}
}
