package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: bad signature, wrong
// algorithm, malformed token, or expiry.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims are the identity assertions embedded in every issued token. Subject
// carries the email, matching what the login response reports.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	FullName string `json:"full_name"`
}

// TokenIssuer signs and verifies bearer tokens with a process-held secret.
// The lifetime is fixed per deployment, not chosen by callers.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token whose expiry is now + the configured ttl.
func (i *TokenIssuer) Issue(userID, email, fullName string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		UserID:   userID,
		FullName: fullName,
	})
	return token.SignedString(i.secret)
}

// Verify parses and validates a token string, returning its claims. Tokens
// signed with any algorithm other than HS256 are rejected outright.
func (i *TokenIssuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
