package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	token, err := issuer.Issue("user-42", "alice@example.com", "Alice Smith")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a token string")
	}

	claims, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.UserID != "user-42" {
		t.Fatalf("unexpected user_id: %s", claims.UserID)
	}
	if claims.Subject != "alice@example.com" {
		t.Fatalf("unexpected subject: %s", claims.Subject)
	}
	if claims.FullName != "Alice Smith" {
		t.Fatalf("unexpected full_name: %s", claims.FullName)
	}
}

func TestTokenIssuer_ZeroTTLExpiresImmediately(t *testing.T) {
	issuer := NewTokenIssuer("secret", 0)

	token, err := issuer.Issue("user-1", "a@example.com", "A")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// Any clock movement past issuance puts the token beyond its expiry.
	time.Sleep(10 * time.Millisecond)

	if _, err := issuer.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestTokenIssuer_WrongSecretRejected(t *testing.T) {
	token, err := NewTokenIssuer("secret-a", time.Hour).Issue("user-1", "a@example.com", "A")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := NewTokenIssuer("secret-b", time.Hour).Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestTokenIssuer_RejectsUnexpectedAlgorithm(t *testing.T) {
	// A token signed with "none" must fail even though the claims parse.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "user-1"})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	issuer := NewTokenIssuer("secret", time.Hour)
	if _, err := issuer.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for alg=none, got %v", err)
	}
}

func TestTokenIssuer_MalformedToken(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	if _, err := issuer.Verify("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
